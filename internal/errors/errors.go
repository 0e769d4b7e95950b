package errors

import (
	"errors"
	"fmt"
)

// Common error values for the social client
var (
	// Transport errors
	ErrNetwork = errors.New("Unable to connect to the server.")

	// Session errors
	ErrNoSession        = errors.New("no active session")
	ErrCorruptSession   = errors.New("stored session is corrupted")
	ErrNotLoggedIn      = errors.New("User not logged in.")
	ErrAPIKeyMissing    = errors.New("API key not found in response.")
	ErrTokenMissing     = errors.New("Access token not found in response.")
	ErrTokenRequired    = errors.New("Please log in to create an API key.")
	ErrCredentialsStore = errors.New("credential storage failure")

	// Request errors
	ErrMissingProfileName = errors.New("Missing profile name.")
	ErrMissingPostID      = errors.New("Missing post id.")
	ErrInvalidProfileData = errors.New("Invalid profile data.")
	ErrPostNotFound       = errors.New("Post not found.")
	ErrProfileNotFound    = errors.New("Profile not found.")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// NetworkError is returned when a request never completed (DNS, refused connection, timeout...)
type NetworkError struct {
	Err error // Underlying transport error
}

func (e *NetworkError) Error() string {
	return ErrNetwork.Error()
}

func (e *NetworkError) Unwrap() []error {
	return []error{ErrNetwork, e.Err}
}

// APIError is returned for any non-2xx response from the remote API
type APIError struct {
	Status  int    // HTTP status code
	Message string // Human readable message taken from the response or a fallback
}

func (e *APIError) Error() string {
	return e.Message
}

// ValidationError is a client-side field check that failed before any request was sent
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ResponseError is a successful response that lacks what the operation needs
type ResponseError struct {
	Reason error
}

func (e *ResponseError) Error() string {
	return e.Reason.Error()
}

func (e *ResponseError) Unwrap() error {
	return e.Reason
}

// SessionError reports a missing or corrupted credential bundle
type SessionError struct {
	Reason error
}

func (e *SessionError) Error() string {
	if e.Reason == nil {
		return ErrNoSession.Error()
	}
	return e.Reason.Error()
}

func (e *SessionError) Unwrap() error {
	return e.Reason
}

// NewValidationError builds a ValidationError for a form field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StatusCode returns the HTTP status of an APIError in err's chain, or 0
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
