package jwt_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-social-client/token/jwt"
	"github.com/jrsteele09/go-social-client/token/keys"
	"github.com/jrsteele09/go-social-client/users"
	"github.com/stretchr/testify/require"
)

func newSigner(t *testing.T, secret string) *keys.HMACSigner {
	t.Helper()
	signer, err := keys.NewHMACSigner(secret)
	require.NoError(t, err)
	return signer
}

// TestCreateAndIntrospect round-trips an access token through the inspector
func TestCreateAndIntrospect(t *testing.T) {
	signer := newSigner(t, "secret")
	creator := jwt.NewCreator(signer, time.Hour)

	raw, err := creator.CreateAccessToken(&users.User{Name: "kari", Email: "kari@stud.noroff.no"})
	require.NoError(t, err)

	claims, err := jwt.NewInspector(signer).Introspect(raw)
	require.NoError(t, err)
	require.Equal(t, "kari", claims.Subject)
	require.Equal(t, "kari@stud.noroff.no", claims.Email)
	require.False(t, claims.Expired(time.Now()))
	require.True(t, claims.Expired(time.Now().Add(2*time.Hour)))
}

// TestIntrospect_Rejects tests wrong secrets, garbage and empty tokens
func TestIntrospect_Rejects(t *testing.T) {
	raw, err := jwt.NewCreator(newSigner(t, "secret"), time.Hour).CreateAccessToken(&users.User{Name: "kari"})
	require.NoError(t, err)

	inspector := jwt.NewInspector(newSigner(t, "other-secret"))

	_, err = inspector.Introspect(raw)
	require.Error(t, err)

	_, err = inspector.Introspect("garbage")
	require.Error(t, err)

	_, err = inspector.Introspect("  ")
	require.Error(t, err)
}

// TestIntrospect_Expired rejects tokens past their expiry
func TestIntrospect_Expired(t *testing.T) {
	signer := newSigner(t, "secret")
	jwt.NowTimeFunc = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	raw, err := jwt.NewCreator(signer, time.Hour).CreateAccessToken(&users.User{Name: "kari"})
	jwt.NowTimeFunc = time.Now
	require.NoError(t, err)

	_, err = jwt.NewInspector(signer).Introspect(raw)
	require.Error(t, err)
}

// TestPeek decodes without a key
func TestPeek(t *testing.T) {
	raw, err := jwt.NewCreator(newSigner(t, "secret"), time.Hour).CreateAccessToken(&users.User{Name: "ola", Email: "ola@stud.noroff.no"})
	require.NoError(t, err)

	claims, err := jwt.Peek(raw)
	require.NoError(t, err)
	require.Equal(t, "ola", claims.Name)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)

	_, err = jwt.Peek("not-a-jwt")
	require.Error(t, err)
}

// TestNewHMACSigner_RequiresSecret tests constructor validation
func TestNewHMACSigner_RequiresSecret(t *testing.T) {
	_, err := keys.NewHMACSigner("")
	require.Error(t, err)
}
