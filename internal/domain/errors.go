package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is normally wrapped by a *ValidationError naming the field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or nil.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmptyContent is returned when required text is empty or blank.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrOutOfRange is returned when a numeric value falls outside its bounds.
	ErrOutOfRange = errors.New("value out of range")

	// ErrTooLong is returned when a text value exceeds its maximum length.
	ErrTooLong = errors.New("value too long")
)

// ValidationError describes a single field that failed validation.
// Message is written for API clients and is safe to return verbatim.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field. err is the
// underlying sentinel; ErrValidation is used when it is nil.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports every ValidationError as ErrValidation so callers can branch on
// the category without knowing the specific sentinel.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// IsValidationError reports whether err is, or wraps, a validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
