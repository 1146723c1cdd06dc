package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoSession is returned when an authenticated call is attempted
	// without an established session. Callers must treat it as fatal to the
	// action and send the user back to authentication.
	ErrNoSession = errors.New("no active session")

	// ErrNotFound matches any RequestError with status 404.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized matches any RequestError with status 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")
)

// RequestError reports a non-2xx HTTP response. Body holds the raw response
// body when one was readable.
type RequestError struct {
	Status int
	Body   []byte
}

func (e *RequestError) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("request failed: %s: %s", http.StatusText(e.Status), e.Body)
	}
	return fmt.Sprintf("request failed: %s", http.StatusText(e.Status))
}

// Is maps well-known statuses onto the package sentinels so callers can use
// errors.Is without inspecting status codes.
func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	}
	return false
}

// NetworkError reports a transport-level failure: the request never produced
// an HTTP response. It is always distinct from RequestError, so "no such
// user" and "server unreachable" can never be conflated.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ValidationError reports client-side input rejected before any call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
