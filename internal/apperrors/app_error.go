package apperrors

import (
	"errors"
	"fmt"
)

// AppError carries an HTTP-ish status code alongside a message and the wrapped cause.
// Repositories use it to surface storage failures without losing the underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an AppError against the shared sentinels by code.
func (e *AppError) Is(target error) bool {
	switch {
	case errors.Is(target, ErrNotFound):
		return e.Code == 404
	case errors.Is(target, ErrInternal):
		return e.Code == 500
	}
	return false
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError with the given message.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
