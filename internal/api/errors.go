package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the failure classes callers branch on.
// Use errors.Is to match.
var (
	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the backend rejected the session token. The
	// client has already wiped the session by the time this is returned.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRegistrationRejected marks a registration the server declined
	// inside a successful HTTP response ({"success": false, ...}).
	ErrRegistrationRejected = errors.New("registration rejected")
)

// Error carries the backend's HTTP status and reported message for a
// non-2xx response.
type Error struct {
	Status  int
	Message string
	err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *Error) Unwrap() error { return e.err }

// statusError wraps a non-2xx status and server message into an *Error,
// attaching the matching sentinel so errors.Is keeps working.
func statusError(status int, message string) error {
	e := &Error{Status: status, Message: message}
	switch status {
	case http.StatusUnauthorized:
		e.err = ErrUnauthorized
	case http.StatusNotFound:
		e.err = ErrNotFound
	}
	return e
}
