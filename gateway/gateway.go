package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/jrsteele09/go-social-client/internal/errors"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const (
	defaultAPIKeyHeader = "X-Noroff-API-Key"
	requestIDHeader     = "X-Request-ID"
	contentTypeJSON     = "application/json"
)

// CredentialSource supplies the credentials attached to authenticated requests.
// It is read on every request so an update takes effect on the very next call.
type CredentialSource interface {
	GetToken() (*string, error)
	GetAPIKey() (*string, error)
}

type authMode int

const (
	authNone   authMode = iota // register, login
	authBearer                 // create-api-key
	authFull                   // every /social endpoint
)

// Gateway turns logical operations into HTTP requests against the remote API
// and normalizes their results.
type Gateway struct {
	baseURL      string
	creds        CredentialSource
	apiKeyHeader string
	transport    http.RoundTripper
	timeout      time.Duration

	clients map[authMode]*http.Client
}

// Option configures a Gateway
type Option func(*Gateway)

// WithTransport sets the base round tripper (primarily for testing)
func WithTransport(rt http.RoundTripper) Option {
	return func(g *Gateway) {
		g.transport = rt
	}
}

// WithAPIKeyHeader overrides the header carrying the API key
func WithAPIKeyHeader(header string) Option {
	return func(g *Gateway) {
		if header != "" {
			g.apiKeyHeader = header
		}
	}
}

// WithTimeout bounds every request
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		g.timeout = d
	}
}

// New creates a Gateway for the API at baseURL
func New(baseURL string, creds CredentialSource, options ...Option) (*Gateway, error) {
	if baseURL == "" {
		return nil, errors.New("[gateway.New] baseURL is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, errors.Wrap(err, "[gateway.New] invalid baseURL")
	}
	if creds == nil {
		return nil, errors.New("[gateway.New] credential source is required")
	}

	g := &Gateway{
		baseURL:      strings.TrimRight(baseURL, "/"),
		creds:        creds,
		apiKeyHeader: defaultAPIKeyHeader,
		transport:    http.DefaultTransport,
	}
	for _, opt := range options {
		opt(g)
	}

	bearer := &oauth2.Transport{Source: &storeTokenSource{creds: creds}, Base: g.transport}
	g.clients = map[authMode]*http.Client{
		authNone:   {Transport: g.transport, Timeout: g.timeout},
		authBearer: {Transport: bearer, Timeout: g.timeout},
		authFull: {
			Transport: &oauth2.Transport{
				Source: &storeTokenSource{creds: creds},
				Base:   &apiKeyTransport{header: g.apiKeyHeader, creds: creds, base: g.transport},
			},
			Timeout: g.timeout,
		},
	}

	return g, nil
}

// request describes one call; path must already be escaped
type request struct {
	method   string
	path     string
	query    url.Values
	body     any
	auth     authMode
	fallback string
}

// do sends the request and applies the response contract:
// transport failure -> NetworkError, 204 -> nil, non-2xx -> APIError, 2xx -> data or body.
func (g *Gateway) do(ctx context.Context, r request) (json.RawMessage, error) {
	target := g.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, errors.Wrap(err, "[do] encoding request body")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, errors.Wrap(err, "[do] building request")
	}
	if r.body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	req.Header.Set("Accept", contentTypeJSON)
	requestID := uuid.New().String()
	req.Header.Set(requestIDHeader, requestID)

	started := time.Now()
	resp, err := g.clients[r.auth].Do(req)
	if err != nil {
		var credErr *credentialReadError
		if errors.As(err, &credErr) {
			return nil, &apperrors.SessionError{Reason: credErr.err}
		}
		log.Debug().Err(err).Str("request_id", requestID).Str("method", r.method).Str("path", r.path).Msg("API request failed")
		return nil, &apperrors.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	log.Debug().
		Str("request_id", requestID).
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("API request")

	return normalize(resp, r.fallback)
}

func normalize(resp *http.Response, fallback string) (json.RawMessage, error) {
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	body := parseBody(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apperrors.APIError{
			Status:  resp.StatusCode,
			Message: errorMessage(body, fmt.Sprintf("%s (Status: %d)", fallback, resp.StatusCode)),
		}
	}

	return unwrapData(body), nil
}

// parseBody returns the JSON body, or nil if it is empty or not JSON
func parseBody(r io.Reader) json.RawMessage {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil
	}
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || string(raw) == "null" {
		return nil
	}
	return raw
}

// errorMessage prefers errors[0].message, then message, then the fallback
func errorMessage(body json.RawMessage, fallback string) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return fallback
	}

	var list []struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(fields["errors"], &list); err == nil && len(list) > 0 && list[0].Message != nil {
		return *list[0].Message
	}

	var message *string
	if err := json.Unmarshal(fields["message"], &message); err == nil && message != nil {
		return *message
	}

	return fallback
}

// unwrapData returns the nested data field when present, else the whole body
func unwrapData(body json.RawMessage) json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil {
		if data, ok := fields["data"]; ok && string(data) != "null" {
			return data
		}
	}
	return body
}

func decode[T any](raw json.RawMessage, op string) (*T, error) {
	if raw == nil {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, errors.Wrapf(err, "[%s] decoding response", op)
	}
	return &v, nil
}

// escapeSegment percent-encodes a user supplied identifier for use as one path segment
func escapeSegment(field, value string, missing error) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperrors.NewValidationError(field, missing.Error())
	}
	return url.PathEscape(value), nil
}
