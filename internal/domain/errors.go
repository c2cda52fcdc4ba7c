package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation error")
	ErrFutureDate    = errors.New("date is in the future")
	ErrDataIntegrity = errors.New("data integrity violation")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// IntegrityError reports a stored record that failed schema validation.
// Key identifies the lookup that produced it (a date or a slug).
type IntegrityError struct {
	Key    string
	Errors []FieldError
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("data integrity: record %q has %d invalid field(s)", e.Key, len(e.Errors))
}

func (e *IntegrityError) Unwrap() error { return ErrDataIntegrity }

// NewIntegrityError converts a validation failure of stored data into an IntegrityError.
// Errors that are not *ValidationError are reported as a single "record" field.
func NewIntegrityError(key string, err error) *IntegrityError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return &IntegrityError{Key: key, Errors: ve.Errors}
	}
	return &IntegrityError{Key: key, Errors: []FieldError{{Field: "record", Message: err.Error()}}}
}
