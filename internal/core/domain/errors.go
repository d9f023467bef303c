package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the backend answers 401. It is
	// session-fatal: the caller's persisted session record has already been
	// cleared by the time this error surfaces.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned by a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionSuperseded is returned when a login result arrives after the
	// session was logged out in the meantime. The result is discarded.
	ErrSessionSuperseded = errors.New("session superseded")

	ErrNotFound   = errors.New("resource not found")
	ErrBadRequest = errors.New("invalid request")
)

// RequestError carries the upstream HTTP status and the human-readable
// message extracted from the backend's {"detail": "..."} error body, or the
// generic fallback when no body could be parsed.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// NewRequestError builds a RequestError with the generic fallback message
// when detail is empty.
func NewRequestError(status int, detail string) *RequestError {
	if detail == "" {
		detail = fmt.Sprintf("request failed (%d)", status)
	}
	return &RequestError{Status: status, Message: detail}
}
