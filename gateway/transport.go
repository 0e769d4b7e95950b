package gateway

import (
	"net/http"

	"github.com/jrsteele09/go-social-client/internal/utils"
	"golang.org/x/oauth2"
)

// credentialReadError marks a failure to read credentials, as opposed to a transport failure
type credentialReadError struct {
	err error
}

func (e *credentialReadError) Error() string {
	return "reading credentials: " + e.err.Error()
}

func (e *credentialReadError) Unwrap() error {
	return e.err
}

// storeTokenSource hands the oauth2 transport whatever token is stored right now.
// An absent token yields an empty bearer and the API rejects the request.
type storeTokenSource struct {
	creds CredentialSource
}

var _ oauth2.TokenSource = (*storeTokenSource)(nil)

func (s *storeTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.creds.GetToken()
	if err != nil {
		return nil, &credentialReadError{err: err}
	}
	return &oauth2.Token{AccessToken: utils.Value(token), TokenType: "Bearer"}, nil
}

// apiKeyTransport adds the API key header, read fresh for every request
type apiKeyTransport struct {
	header string
	creds  CredentialSource
	base   http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	key, err := t.creds.GetAPIKey()
	if err != nil {
		if req.Body != nil {
			req.Body.Close()
		}
		return nil, &credentialReadError{err: err}
	}

	req2 := req.Clone(req.Context())
	if utils.NonEmpty(key) {
		req2.Header.Set(t.header, *key)
	}
	return t.base.RoundTrip(req2)
}
