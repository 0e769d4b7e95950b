package sqliterepo_test

import (
	"path/filepath"
	"testing"

	"github.com/jrsteele09/go-social-client/credentials"
	"github.com/jrsteele09/go-social-client/credentials/sqliterepo"
	"github.com/stretchr/testify/require"
)

func openRepo(t *testing.T, path string) *sqliterepo.SQLiteRepo {
	t.Helper()

	repo, err := sqliterepo.New(path)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

// TestSQLiteRepo_SetGetDelete covers the basic key/value contract
func TestSQLiteRepo_SetGetDelete(t *testing.T) {
	repo := openRepo(t, filepath.Join(t.TempDir(), "nested", "credentials.db"))

	value, err := repo.Get("accessToken")
	require.NoError(t, err)
	require.Nil(t, value)

	require.NoError(t, repo.Set("accessToken", "abc"))
	require.NoError(t, repo.Set("accessToken", "def"))

	value, err = repo.Get("accessToken")
	require.NoError(t, err)
	require.Equal(t, "def", *value)

	require.NoError(t, repo.Delete("accessToken", "never-set"))
	value, err = repo.Get("accessToken")
	require.NoError(t, err)
	require.Nil(t, value)
}

// TestSQLiteRepo_EmptyValueIsNotAbsent keeps "" distinct from a missing key
func TestSQLiteRepo_EmptyValueIsNotAbsent(t *testing.T) {
	repo := openRepo(t, filepath.Join(t.TempDir(), "credentials.db"))

	require.NoError(t, repo.Set("apiKey", ""))
	value, err := repo.Get("apiKey")
	require.NoError(t, err)
	require.NotNil(t, value)
	require.Equal(t, "", *value)
}

// TestSQLiteRepo_SurvivesReopen tests that a session saved through the store is durable
func TestSQLiteRepo_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.db")

	first, err := sqliterepo.New(path)
	require.NoError(t, err)
	store, err := credentials.New(first)
	require.NoError(t, err)
	require.NoError(t, store.SaveSession("token-1", "ola_nordmann", "ola@stud.noroff.no"))
	require.NoError(t, store.SaveAPIKey("key-1"))
	require.NoError(t, first.Close())

	store, err = credentials.New(openRepo(t, path))
	require.NoError(t, err)

	bundle, err := store.Bundle()
	require.NoError(t, err)
	require.Equal(t, "token-1", bundle.Token)
	require.Equal(t, "key-1", bundle.APIKey)
	require.Equal(t, &credentials.User{Name: "ola_nordmann", Email: "ola@stud.noroff.no"}, bundle.User)
}

// TestNew_RequiresPath rejects an empty path
func TestNew_RequiresPath(t *testing.T) {
	_, err := sqliterepo.New("")
	require.Error(t, err)
}
