// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyUsername is returned when a username is empty after trimming.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrEmptyPassword is returned when a password is empty.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrEmptyCategoryName is returned when a category name is empty after trimming.
	ErrEmptyCategoryName = errors.New("category name cannot be empty")

	// ErrEmptyGroupName is returned when a group name is empty after trimming.
	ErrEmptyGroupName = errors.New("group name cannot be empty")

	// ErrEmptyCardContent is returned when a card is missing both of its
	// required word fields.
	ErrEmptyCardContent = errors.New("card must have russian and english words")
)

// ValidationError describes a validation failure on a named field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped sentinel error to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
