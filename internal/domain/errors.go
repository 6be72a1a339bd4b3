package domain

import "errors"

var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the entity exists but a business rule blocks the caller.
	ErrForbidden = errors.New("forbidden")
	// ErrBusy means a shared resource stayed locked past the wait deadline. Retryable.
	ErrBusy = errors.New("busy")
)
