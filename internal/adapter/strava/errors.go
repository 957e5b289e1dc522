package strava

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

// RequestError reports a failed call. Err is domain.ErrRateLimited for
// HTTP 429 and domain.ErrRequestFailed otherwise; StatusCode is 0 when no
// response was received.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
	cause      error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%v: %s", e.Err, e.Message)
	}
	return fmt.Sprintf("%v (HTTP %d): %s", e.Err, e.StatusCode, e.Message)
}

func (e *RequestError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Err, e.cause}
	}
	return []error{e.Err}
}

// ValidationError reports a response that could not be decoded or did not
// match its schema.
type ValidationError struct {
	Operation string
	Err       error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Operation, domain.ErrValidation, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{domain.ErrValidation, e.Err}
}

func classifyStatus(code int) error {
	if code == http.StatusTooManyRequests {
		return domain.ErrRateLimited
	}
	return domain.ErrRequestFailed
}

func transportError(op string, err error) error {
	var reqErr *RequestError
	var valErr *ValidationError
	if errors.As(err, &reqErr) || errors.As(err, &valErr) {
		return err
	}
	return &RequestError{
		Message: fmt.Sprintf("%s: %v", op, err),
		Err:     domain.ErrRequestFailed,
		cause:   err,
	}
}
