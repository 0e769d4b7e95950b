package session

import (
	"context"
	"strings"
	"time"

	"github.com/jrsteele09/go-social-client/credentials"
	"github.com/jrsteele09/go-social-client/gateway"
	apperrors "github.com/jrsteele09/go-social-client/internal/errors"
	"github.com/jrsteele09/go-social-client/internal/utils"
	"github.com/jrsteele09/go-social-client/token/jwt"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// API is the part of the remote gateway the session policy depends on
type API interface {
	Login(ctx context.Context, email, password string) (*gateway.LoginResult, error)
	CreateAPIKey(ctx context.Context) (string, error)
	Register(ctx context.Context, in gateway.RegisterRequest) (*gateway.Profile, error)
}

// RegisterInput is the registration form
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Bio       string
	AvatarURL string
}

// TokenInfo describes the stored access token. It is decoded without verification and is
// for display only.
type TokenInfo struct {
	Subject   string
	Name      string
	ExpiresAt time.Time
	Expired   bool
}

// Manager decides whether the client is logged in and runs the login/logout workflows
type Manager struct {
	store   *credentials.Store
	api     API
	nowTime func() time.Time
}

// Option defines a function type to modify the Manager instance
type Option func(*Manager)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) Option {
	return func(m *Manager) {
		m.nowTime = nowFunc
	}
}

// New creates a session manager
func New(store *credentials.Store, api API, options ...Option) (*Manager, error) {
	if store == nil {
		return nil, errors.New("[session.New] store is required")
	}
	if api == nil {
		return nil, errors.New("[session.New] api is required")
	}

	m := &Manager{
		store:   store,
		api:     api,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(m)
	}
	return m, nil
}

// HasValidSession reports whether both a token and an API key are stored.
// It never calls the network; expiry is the server's business.
func (m *Manager) HasValidSession() bool {
	bundle, err := m.store.Bundle()
	if err != nil {
		log.Warn().Err(err).Msg("Reading credentials")
		return false
	}
	return bundle.Token != "" && bundle.APIKey != ""
}

// Login authenticates, persists the session and makes sure an API key exists.
// A failed API key bootstrap clears the partial session.
func (m *Manager) Login(ctx context.Context, email, password string) (*credentials.User, error) {
	if err := ValidateLogin(email, password); err != nil {
		return nil, err
	}

	result, err := m.api.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, err
	}

	if err := m.store.SaveSession(result.AccessToken, result.Name, result.Email); err != nil {
		return nil, errors.Wrap(err, "[Login] saving session")
	}

	if err := m.EnsureAPIKey(ctx); err != nil {
		if clearErr := m.store.ClearSession(); clearErr != nil {
			log.Err(clearErr).Msg("Clearing partial session")
		}
		return nil, err
	}

	log.Info().Str("name", result.Name).Msg("Logged in")
	return &credentials.User{Name: result.Name, Email: result.Email}, nil
}

// EnsureAPIKey creates and stores an API key unless one is already stored.
// The access token must already be persisted.
func (m *Manager) EnsureAPIKey(ctx context.Context) error {
	existing, err := m.store.GetAPIKey()
	if err != nil {
		return &apperrors.SessionError{Reason: err}
	}
	if utils.NonEmpty(existing) {
		return nil
	}

	key, err := m.api.CreateAPIKey(ctx)
	if err != nil {
		return err
	}
	if key == "" {
		return &apperrors.ResponseError{Reason: apperrors.ErrAPIKeyMissing}
	}
	return errors.Wrap(m.store.SaveAPIKey(key), "[EnsureAPIKey]")
}

// Register validates the form and creates the account. It never logs in.
func (m *Manager) Register(ctx context.Context, in RegisterInput) (*gateway.Profile, error) {
	if err := ValidateRegistration(in); err != nil {
		return nil, err
	}

	req := gateway.RegisterRequest{
		Name:     in.Name,
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
		Bio:      strings.TrimSpace(in.Bio),
	}
	if avatar := strings.TrimSpace(in.AvatarURL); avatar != "" {
		req.Avatar = &gateway.Media{URL: avatar, Alt: in.Name}
	}
	return m.api.Register(ctx, req)
}

// Logout clears every stored credential. Storage failures are logged, never returned.
func (m *Manager) Logout() {
	if err := m.store.ClearSession(); err != nil {
		log.Err(err).Msg("Clearing session on logout")
	}
}

// CurrentUser returns the cached identity, or nil when logged out
func (m *Manager) CurrentUser() *credentials.User {
	user, err := m.store.GetUser()
	if err != nil {
		log.Warn().Err(err).Msg("Reading cached user")
		return nil
	}
	return user
}

// IsCurrentUser reports whether name is the logged in user's profile name (case-sensitive)
func (m *Manager) IsCurrentUser(name string) bool {
	user := m.CurrentUser()
	return user != nil && name != "" && user.Name == name
}

// UpdateCachedUser refreshes the stored identity after a profile change
func (m *Manager) UpdateCachedUser(user credentials.User) error {
	return errors.Wrap(m.store.SaveUser(user), "[UpdateCachedUser]")
}

// TokenInfo decodes the stored token for display. It returns nil when no token is stored
// or the token is not a JWT.
func (m *Manager) TokenInfo() *TokenInfo {
	token, err := m.store.GetToken()
	if err != nil || !utils.NonEmpty(token) {
		return nil
	}

	claims, err := jwt.Peek(*token)
	if err != nil {
		log.Debug().Err(err).Msg("Access token is not a readable JWT")
		return nil
	}

	name := claims.Name
	if name == "" {
		name = claims.Subject
	}
	return &TokenInfo{
		Subject:   claims.Subject,
		Name:      name,
		ExpiresAt: claims.ExpiresAt,
		Expired:   claims.Expired(m.nowTime()),
	}
}
