// Package apperr defines the error taxonomy shared by all route handlers.
//
// Services return *apperr.Error values; handlers map them onto HTTP status
// codes with HTTPStatus and surface the message in the response envelope.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error category.
type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeForbidden       Code = "FORBIDDEN"
	CodeNotFound        Code = "NOT_FOUND"
	CodeStore           Code = "STORE"
)

// HTTPStatus maps an error category to its response status.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a category, a client-visible message and an optional cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error carrying the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the HTTP status for this error.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// InvalidArgument reports malformed or missing input.
func InvalidArgument(msg string) *Error {
	return &Error{Code: CodeInvalidArgument, Message: msg}
}

// Forbidden reports a missing or mismatched admin credential.
func Forbidden(msg string) *Error {
	return &Error{Code: CodeForbidden, Message: msg}
}

// NotFound reports an absent record.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// Store wraps a data-store failure. The underlying message is kept verbatim
// so the client sees what the store reported.
func Store(err error) *Error {
	return &Error{Code: CodeStore, Message: err.Error(), cause: err}
}

// Sentinels for errors.Is checks in handlers.
var (
	ErrInvalidArgument = &Error{Code: CodeInvalidArgument}
	ErrForbidden       = &Error{Code: CodeForbidden}
	ErrNotFound        = &Error{Code: CodeNotFound}
	ErrStore           = &Error{Code: CodeStore}
)

// StatusFor resolves any error to an HTTP status code. Non-taxonomy errors
// fall back to 500.
func StatusFor(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.HTTPStatus()
	}
	return http.StatusInternalServerError
}
