// ABOUTME: Error taxonomy shared by the dispatcher, backends, and boundaries
// ABOUTME: BackendError carries a kind so callers can map failures to statuses
package models

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMessage is returned when a request has no message text
	ErrEmptyMessage = errors.New("message is required")

	// ErrMissingCredential is wrapped by configuration failures
	ErrMissingCredential = errors.New("missing credential")

	// ErrMalformedResponse is wrapped when a backend reply lacks its text field
	ErrMalformedResponse = errors.New("malformed response")
)

// ErrorKind classifies a backend failure
type ErrorKind string

const (
	ErrorKindConfiguration ErrorKind = "configuration"
	ErrorKindTransport     ErrorKind = "transport"
	ErrorKindResponseShape ErrorKind = "response_shape"
)

// BackendError is the Failure side of a backend reply
type BackendError struct {
	Kind    ErrorKind
	Backend string
	Err     error
}

func (e *BackendError) Error() string {
	switch e.Kind {
	case ErrorKindConfiguration:
		return fmt.Sprintf("%s is not configured: %v", e.Backend, e.Err)
	case ErrorKindResponseShape:
		return fmt.Sprintf("%s returned an unexpected response: %v", e.Backend, e.Err)
	default:
		return fmt.Sprintf("%s request failed: %v", e.Backend, e.Err)
	}
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewConfigError reports a required setting (usually an API key) as absent
func NewConfigError(backend, setting string) *BackendError {
	return &BackendError{
		Kind:    ErrorKindConfiguration,
		Backend: backend,
		Err:     fmt.Errorf("%w: %s is not set", ErrMissingCredential, setting),
	}
}

// NewTransportError wraps a failed outbound call
func NewTransportError(backend string, err error) *BackendError {
	return &BackendError{Kind: ErrorKindTransport, Backend: backend, Err: err}
}

// NewShapeError reports a reply missing its primary text field
func NewShapeError(backend, detail string) *BackendError {
	return &BackendError{
		Kind:    ErrorKindResponseShape,
		Backend: backend,
		Err:     fmt.Errorf("%w: %s", ErrMalformedResponse, detail),
	}
}

// KindOf returns the failure kind of err, or "" when err is not a BackendError
func KindOf(err error) ErrorKind {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}
