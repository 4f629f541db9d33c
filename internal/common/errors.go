package common

import (
	"fmt"
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context information
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// InputNotFoundError indicates one of the analysis root directories is missing.
// It is the only per-run error that aborts the whole analysis.
type InputNotFoundError struct {
	Role string
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("%s directory does not exist: %s", e.Role, e.Path)
}

// NewInputNotFoundError creates a new input-not-found error
func NewInputNotFoundError(role, path string) *InputNotFoundError {
	return &InputNotFoundError{Role: role, Path: path}
}
