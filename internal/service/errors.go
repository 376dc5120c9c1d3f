// Package service holds the error taxonomy shared by the domain services.
// It is the single authority for what a caller is allowed to see: repository
// failures caused by the caller keep their message, everything else collapses
// to a generic internal error.
package service

import (
	"errors"

	"github.com/bookclub/bookclub-api/internal/repository"
)

const internalMessage = "An internal error occurred."

// Error is the error type handed to the HTTP layer. A user error carries the
// message to show the caller; an internal error carries the underlying cause
// for server-side diagnostics only.
type Error struct {
	message  string
	internal error
}

// User builds a caller-attributable error with the given message.
func User(message string) *Error {
	return &Error{message: message}
}

// Internal wraps an unexpected failure. Its detail never reaches a client.
func Internal(err error) *Error {
	return &Error{message: internalMessage, internal: err}
}

func (e *Error) Error() string { return e.message }

// Unwrap exposes the underlying cause of an internal error, nil for user
// errors.
func (e *Error) Unwrap() error { return e.internal }

// IsUser reports whether the error may be surfaced to the caller verbatim.
func (e *Error) IsUser() bool { return e.internal == nil }

// FromRepository maps any repository error into the two-tier taxonomy.
// Invalid identifiers and missing entities surface as user errors; every
// other kind is internal. The mapping is total: a nil error stays nil and an
// unrecognized error is treated as internal.
func FromRepository(err error) error {
	if err == nil {
		return nil
	}
	var repoErr *repository.Error
	if errors.As(err, &repoErr) && repoErr.UserFacing() {
		return User(repoErr.Error())
	}
	return Internal(err)
}
