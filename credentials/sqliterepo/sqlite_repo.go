package sqliterepo

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/jrsteele09/go-social-client/credentials"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

var _ credentials.Repo = (*SQLiteRepo)(nil)

// SQLiteRepo persists credentials in a single key/value table
type SQLiteRepo struct {
	db *sql.DB
}

// New opens (or creates) the credentials database at path.
// Parent directories are created if needed.
func New(path string) (*SQLiteRepo, error) {
	if path == "" {
		return nil, errors.New("[sqliterepo.New] path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(err, "[sqliterepo.New] creating database directory")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "[sqliterepo.New] opening database")
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "[sqliterepo.New] enabling WAL mode")
	}

	schema := `
		CREATE TABLE IF NOT EXISTS credentials (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "[sqliterepo.New] creating schema")
	}

	log.Debug().Str("path", path).Msg("Credential store opened")
	return &SQLiteRepo{db: db}, nil
}

func (r *SQLiteRepo) Get(key string) (*string, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM credentials WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "[Get] reading %s", key)
	}
	return &value, nil
}

func (r *SQLiteRepo) Set(key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO credentials (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	return errors.Wrapf(err, "[Set] writing %s", key)
}

func (r *SQLiteRepo) Delete(keys ...string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return errors.Wrap(err, "[Delete] begin")
	}
	for _, key := range keys {
		if _, err := tx.Exec("DELETE FROM credentials WHERE key = ?", key); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "[Delete] removing %s", key)
		}
	}
	return errors.Wrap(tx.Commit(), "[Delete] commit")
}

// Close releases the database handle
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}
