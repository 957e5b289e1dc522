package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks an external response that does not match its schema.
	ErrValidation = errors.New("response validation failed")
	// ErrRateLimited marks an HTTP 429 from the activity service.
	ErrRateLimited = errors.New("strava rate limit exceeded, please try again later")
	// ErrRequestFailed marks any other transport or non-2xx failure.
	ErrRequestFailed = errors.New("strava request failed")

	ErrNotFound        = errors.New("not found")
	ErrPersistence     = errors.New("persistence error")
	ErrAlreadyReplaced = errors.New("component already replaced")
	ErrInvalidInput    = errors.New("invalid input")
)

// PersistenceError wraps a failed row read or write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Err}
}

// NotFoundError is returned when a referenced bike or component is missing.
func NotFoundError(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotFound)
}
