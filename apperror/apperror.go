package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("conflict")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type AppError struct {
	Err     error  // sentinel error kind
	Message string // human-readable error message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string, id uint) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %d", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func Conflict(resource, field string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("%s with this %s already exists", resource, field),
		Field:   field,
	}
}

// StorageUnavailable wraps a store-connectivity failure so HTTP handlers can
// map it to 503 instead of a generic 500.
func StorageUnavailable(err error) *AppError {
	return &AppError{
		Err:     ErrStorageUnavailable,
		Message: fmt.Sprintf("storage unavailable: %v", err),
	}
}
