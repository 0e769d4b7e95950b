package credentials

import (
	"encoding/json"

	apperrors "github.com/jrsteele09/go-social-client/internal/errors"
	"github.com/jrsteele09/go-social-client/internal/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Storage keys. No versioning: a value that cannot be read back clears the whole bundle.
const (
	TokenKey  = "accessToken"
	UserKey   = "user"
	APIKeyKey = "apiKey"
)

// User is the cached identity of the logged in user
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Bundle is the credential bundle inspected by the session policy
type Bundle struct {
	Token  string
	APIKey string
	User   *User
}

// Store owns the persisted access token, API key and user identity
type Store struct {
	repo Repo
}

// New creates a credential store on top of the given repo
func New(repo Repo) (*Store, error) {
	if repo == nil {
		return nil, errors.New("[credentials.New] repo is required")
	}
	return &Store{repo: repo}, nil
}

// SaveSession persists the token and user identity as a unit
func (s *Store) SaveSession(token, name, email string) error {
	user, err := json.Marshal(User{Name: name, Email: email})
	if err != nil {
		return errors.Wrap(err, "[SaveSession] encoding user")
	}
	if err := s.repo.Set(TokenKey, token); err != nil {
		return errors.Wrap(err, "[SaveSession] saving token")
	}
	if err := s.repo.Set(UserKey, string(user)); err != nil {
		// A token without its identity must not survive
		if delErr := s.repo.Delete(TokenKey, UserKey); delErr != nil {
			log.Err(delErr).Msg("Removing token after failed session save")
		}
		return errors.Wrap(err, "[SaveSession] saving user")
	}
	return nil
}

// SaveUser replaces the cached identity, leaving the token and API key untouched
func (s *Store) SaveUser(user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "[SaveUser] encoding user")
	}
	return errors.Wrap(s.repo.Set(UserKey, string(data)), "[SaveUser]")
}

// SaveAPIKey persists the API key. It is created after login, never with the session.
func (s *Store) SaveAPIKey(key string) error {
	return errors.Wrap(s.repo.Set(APIKeyKey, key), "[SaveAPIKey]")
}

// GetToken returns the access token, or nil when none is stored
func (s *Store) GetToken() (*string, error) {
	token, err := s.repo.Get(TokenKey)
	return token, errors.Wrap(err, "[GetToken]")
}

// GetAPIKey returns the API key, or nil when none is stored
func (s *Store) GetAPIKey() (*string, error) {
	key, err := s.repo.Get(APIKeyKey)
	return key, errors.Wrap(err, "[GetAPIKey]")
}

// GetUser returns the cached identity. A corrupted value clears every credential
// and reads as "no user" instead of failing.
func (s *Store) GetUser() (*User, error) {
	raw, err := s.repo.Get(UserKey)
	if err != nil {
		return nil, errors.Wrap(err, "[GetUser]")
	}
	if raw == nil {
		return nil, nil
	}

	var user *User
	if err := json.Unmarshal([]byte(*raw), &user); err != nil {
		log.Warn().Err(apperrors.ErrCorruptSession).Msg("Clearing credentials")
		if clearErr := s.ClearSession(); clearErr != nil {
			return nil, errors.Wrap(clearErr, "[GetUser] clearing corrupted session")
		}
		return nil, nil
	}
	return user, nil
}

// Bundle reads the three entries together
func (s *Store) Bundle() (Bundle, error) {
	// User first: a corrupted identity clears the other two entries
	user, err := s.GetUser()
	if err != nil {
		return Bundle{}, err
	}
	token, err := s.GetToken()
	if err != nil {
		return Bundle{}, err
	}
	apiKey, err := s.GetAPIKey()
	if err != nil {
		return Bundle{}, err
	}

	return Bundle{
		Token:  utils.Value(token),
		APIKey: utils.Value(apiKey),
		User:   user,
	}, nil
}

// ClearSession removes the token, user and API key. Safe to call when nothing is stored.
func (s *Store) ClearSession() error {
	return errors.Wrap(s.repo.Delete(TokenKey, UserKey, APIKeyKey), "[ClearSession]")
}
