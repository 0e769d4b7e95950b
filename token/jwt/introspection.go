package jwt

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-social-client/token/keys"
)

// Claims is the subset of access token claims the client and stub API care about
type Claims struct {
	Subject   string
	Name      string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token has an expiry that lies before now
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}

// Inspector verifies access tokens issued by Creator
type Inspector struct {
	signer keys.Signer
}

// NewInspector creates a new JWT inspector
func NewInspector(signer keys.Signer) *Inspector {
	return &Inspector{signer: signer}
}

// Introspect validates the signature and expiry of rawToken and returns its claims
func (i *Inspector) Introspect(rawToken string) (*Claims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, errors.New("empty token")
	}

	token, err := jwtlib.ParseWithClaims(rawToken, jwtlib.MapClaims{}, i.signer.GetVerificationKey,
		jwtlib.WithValidMethods([]string{i.signer.GetSigningMethod().Alg()}),
		jwtlib.WithTimeFunc(NowTimeFunc))
	if err != nil || !token.Valid {
		return nil, errors.Join(errors.New("invalid token"), err)
	}

	return claimsFrom(token)
}

// Peek decodes rawToken without verifying it. The result is for display only.
func Peek(rawToken string) (*Claims, error) {
	token, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return nil, err
	}
	return claimsFrom(token)
}

func claimsFrom(token *jwtlib.Token) (*Claims, error) {
	mapClaims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.New("error extracting claims")
	}

	c := &Claims{}
	c.Subject, _ = mapClaims.GetSubject()
	c.Name, _ = mapClaims["name"].(string)
	c.Email, _ = mapClaims["email"].(string)
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		c.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}
