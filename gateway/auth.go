package gateway

import (
	"context"
	"net/http"

	apperrors "github.com/jrsteele09/go-social-client/internal/errors"
	"github.com/jrsteele09/go-social-client/internal/utils"
)

// Route paths of the auth endpoints
const (
	PathRegister     = "/auth/register"
	PathLogin        = "/auth/login"
	PathCreateAPIKey = "/auth/create-api-key"
)

// Register creates a new user. It does not log in.
func (g *Gateway) Register(ctx context.Context, in RegisterRequest) (*Profile, error) {
	raw, err := g.do(ctx, request{
		method:   http.MethodPost,
		path:     PathRegister,
		body:     in,
		auth:     authNone,
		fallback: "Registration failed",
	})
	if err != nil {
		return nil, err
	}
	return decode[Profile](raw, "Register")
}

// Login exchanges email and password for an access token and identity
func (g *Gateway) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	raw, err := g.do(ctx, request{
		method:   http.MethodPost,
		path:     PathLogin,
		body:     map[string]string{"email": email, "password": password},
		auth:     authNone,
		fallback: "Login failed",
	})
	if err != nil {
		return nil, err
	}

	result, err := decode[LoginResult](raw, "Login")
	if err != nil {
		return nil, err
	}
	if result == nil || result.AccessToken == "" {
		return nil, &apperrors.ResponseError{Reason: apperrors.ErrTokenMissing}
	}
	return result, nil
}

// CreateAPIKey mints an API key authenticated by the token currently in the credential store.
// The token must be persisted before this is called.
func (g *Gateway) CreateAPIKey(ctx context.Context) (string, error) {
	token, err := g.creds.GetToken()
	if err != nil {
		return "", &apperrors.SessionError{Reason: err}
	}
	if !utils.NonEmpty(token) {
		return "", &apperrors.SessionError{Reason: apperrors.ErrTokenRequired}
	}

	raw, err := g.do(ctx, request{
		method:   http.MethodPost,
		path:     PathCreateAPIKey,
		auth:     authBearer,
		fallback: "Failed to create API key",
	})
	if err != nil {
		return "", err
	}

	key, err := decode[APIKey](raw, "CreateAPIKey")
	if err != nil {
		return "", err
	}
	if key == nil || key.Key == "" {
		return "", &apperrors.ResponseError{Reason: apperrors.ErrAPIKeyMissing}
	}
	return key.Key, nil
}
