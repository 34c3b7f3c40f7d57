package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed client error with HTTP awareness. Status carries
// the upstream response code when the error originates from the backend.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors covering the panel's failure taxonomy: authentication
// failures trigger a redirect, load failures keep stale caches, mutation
// rejections surface the server's message without touching local state.
var (
	ErrUnauthenticated  = New("UNAUTHENTICATED", http.StatusUnauthorized, "authentication required")
	ErrForbidden        = New("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrNotFound         = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrValidation       = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrLoadFailed       = New("LOAD_FAILED", http.StatusBadGateway, "failed to load data")
	ErrMutationRejected = New("MUTATION_REJECTED", http.StatusUnprocessableEntity, "the server rejected this operation")
	ErrUpstream         = New("UPSTREAM_ERROR", http.StatusBadGateway, "upstream request failed")
	ErrNotConfirmed     = New("NOT_CONFIRMED", http.StatusBadRequest, "operation was not confirmed")
	ErrInternal         = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// Is reports whether err carries the same code as target. Upstream messages
// vary per response, so identity is by code rather than by value.
func Is(err error, target *Error) bool {
	if err == nil || target == nil {
		return false
	}
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == target.Code
}
