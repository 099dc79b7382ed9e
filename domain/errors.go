package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies request failures independently of the transport.
type ErrorCode string

const (
	ErrCodeInvalid     ErrorCode = "INVALID"
	ErrCodeValidation  ErrorCode = "VALIDATION"
	ErrCodeNotFound    ErrorCode = "NOT_FOUND"
	ErrCodeUnsupported ErrorCode = "UNSUPPORTED"
	ErrCodeInternal    ErrorCode = "INTERNAL"
)

// Error is a classified error whose Message is safe to put in an envelope.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

var (
	ErrInvalidPayload   = NewError(ErrCodeInvalid, "invalid payload")
	ErrRouteNotFound    = NewError(ErrCodeNotFound, "route not found")
	ErrMethodNotAllowed = NewError(ErrCodeUnsupported, "method not allowed")
)

// IsDomainError reports whether err carries the given code.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// Describe returns the envelope message and status code for err. Errors
// without a classification are reported as a generic 500.
func Describe(err error) (string, int) {
	var dErr *Error
	if !errors.As(err, &dErr) {
		return "internal error", http.StatusInternalServerError
	}
	switch dErr.Code {
	case ErrCodeInvalid:
		return dErr.Message, http.StatusBadRequest
	case ErrCodeValidation:
		return dErr.Message, http.StatusUnprocessableEntity
	case ErrCodeNotFound:
		return dErr.Message, http.StatusNotFound
	case ErrCodeUnsupported:
		return dErr.Message, http.StatusMethodNotAllowed
	default:
		return dErr.Message, http.StatusInternalServerError
	}
}
