package apperrors

import (
	"errors"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrUserNotFound     = errors.New("user not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed   = errors.New("validation failed")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// ValidationError carries every collected field message for a 400 response.
type ValidationError struct {
	Messages []string
}

// Error implements error interface
func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return ErrValidationFailed.Error()
	}
	return strings.Join(e.Messages, "; ")
}

// Unwrap makes errors.Is(err, ErrValidationFailed) hold.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a ValidationError from collected messages.
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}
