package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// Error taxonomy. Validation failures carry a field map and are returned to
// callers, never surfaced to users as-is; the remaining codes map one-to-one
// onto the user-facing failure classes.
const (
	ErrValidation ErrorCode = iota + 1000
	ErrPersistence
	ErrPermissionDenied
	ErrSchedulingRejected
	ErrInternal
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
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

// Error constructors
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: message,
	}
}

func Persistence(err error) *AppError {
	return &AppError{
		Code:    ErrPersistence,
		Message: "storage operation failed",
		Err:     err,
	}
}

func PermissionDenied(err error) *AppError {
	return &AppError{
		Code:    ErrPermissionDenied,
		Message: "notification permission denied",
		Err:     err,
	}
}

func SchedulingRejected(message string) *AppError {
	return &AppError{
		Code:    ErrSchedulingRejected,
		Message: message,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal error",
		Err:     err,
	}
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
