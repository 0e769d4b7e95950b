package errors_test

import (
	stderrors "errors"
	"net"
	"testing"

	"github.com/jrsteele09/go-social-client/internal/errors"
	"github.com/stretchr/testify/require"
)

// TestNetworkError_MessageAndChain checks the fixed message and that both causes are reachable
func TestNetworkError_MessageAndChain(t *testing.T) {
	cause := &net.OpError{Op: "dial", Err: stderrors.New("connection refused")}
	err := errors.Wrapf(&errors.NetworkError{Err: cause}, "[ListPosts] request")

	require.Equal(t, "[ListPosts] request: Unable to connect to the server.", err.Error())
	require.True(t, errors.Is(err, errors.ErrNetwork))

	var opErr *net.OpError
	require.True(t, errors.As(err, &opErr))
}

// TestStatusCode extracts the status of an APIError anywhere in the chain
func TestStatusCode(t *testing.T) {
	err := errors.Wrapf(&errors.APIError{Status: 404, Message: "No post with such ID"}, "[GetPost]")
	require.Equal(t, 404, errors.StatusCode(err))
	require.Equal(t, 0, errors.StatusCode(stderrors.New("plain")))
	require.Equal(t, 0, errors.StatusCode(nil))
}

// TestSessionError_DefaultsToNoSession tests the message of an empty SessionError
func TestSessionError_DefaultsToNoSession(t *testing.T) {
	require.Equal(t, "no active session", (&errors.SessionError{}).Error())

	err := &errors.SessionError{Reason: errors.ErrCorruptSession}
	require.True(t, errors.Is(err, errors.ErrCorruptSession))
}

// TestWrapf_Nil returns nil when there is nothing to wrap
func TestWrapf_Nil(t *testing.T) {
	require.NoError(t, errors.Wrapf(nil, "context %d", 1))
}

// TestResponseError_ShowsReason tests the message and chain of a ResponseError
func TestResponseError_ShowsReason(t *testing.T) {
	err := &errors.ResponseError{Reason: errors.ErrAPIKeyMissing}
	require.Equal(t, "API key not found in response.", err.Error())
	require.True(t, errors.Is(err, errors.ErrAPIKeyMissing))
}
