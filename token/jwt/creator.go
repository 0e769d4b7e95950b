package jwt

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jrsteele09/go-social-client/token/keys"
	"github.com/jrsteele09/go-social-client/users"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Creator handles access token creation for the stub API
type Creator struct {
	signer keys.Signer
	expiry time.Duration
}

// NewCreator creates a new JWT creator
func NewCreator(signer keys.Signer, expiry time.Duration) *Creator {
	return &Creator{
		signer: signer,
		expiry: expiry,
	}
}

// CreateAccessToken creates the bearer token returned by /auth/login
func (c *Creator) CreateAccessToken(user *users.User) (string, error) {
	claims := jwtlib.MapClaims{
		"sub":   user.Name,
		"name":  user.Name,
		"email": user.Email,
		"iat":   NowTimeFunc().Unix(),
		"exp":   NowTimeFunc().Add(c.expiry).Unix(),
		"jti":   uuid.New().String(),
	}

	signedToken, err := c.signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT token: %w", err)
	}
	return signedToken, nil
}
