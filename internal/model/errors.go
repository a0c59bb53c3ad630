package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Storage errors
	ErrDocumentNotFound = errors.New("document not found")

	// Identifier errors
	ErrInvalidIdentifier  = errors.New("identifier must be a non-empty string")
	ErrNotFound           = errors.New("not found")
	ErrUsernameNotFound   = errors.New("username not found")
	ErrNoAssociatedEmail  = errors.New("no associated email")
	ErrInvalidPeriod      = errors.New("invalid leaderboard period")
	ErrBackendUnavailable = errors.New("backend not initialized")
)

// ConfigError reports a backend handle that was not published
type ConfigError struct {
	Handle string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("backend handle %q is not configured", e.Handle)
}

// NotFoundError reports an identifier that could not be turned into an email.
// Err is ErrUsernameNotFound or ErrNoAssociatedEmail.
type NotFoundError struct {
	Identifier string
	Err        error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s for %q", e.Err, e.Identifier)
}

func (e *NotFoundError) Unwrap() []error {
	return []error{e.Err, ErrNotFound}
}

// QueryError wraps any failure while reading from the document store
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
