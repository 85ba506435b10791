// Package errors provides consistent error types for the Habitkeep CLI.
// It defines two main categories: UserError (fixable by the user) and
// SystemError (storage or environment issues).
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrHabitNotFound     = errors.New("habit not found")
	ErrNotScheduled      = errors.New("habit is not scheduled for this date")
	ErrInvalidTarget     = errors.New("target must be greater than zero")
	ErrNegativeValue     = errors.New("entry value cannot be negative")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidSchedule   = errors.New("invalid schedule")
	ErrTemplateNotFound  = errors.New("template not found")
	ErrDatabaseCorrupted = errors.New("database corrupted")
)

// UserError represents an error that the user can fix.
// Examples: invalid input, missing required arguments, incorrect format.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
	Value      string // The invalid value (optional)
	wrapped    error  // Sentinel this error refines (optional)
}

func (e *UserError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.wrapped
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// WrapUserError creates a UserError that also matches a sentinel via errors.Is.
func WrapUserError(sentinel error, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
		wrapped:    sentinel,
	}
}

// SystemError represents a system-level error that the user cannot directly
// fix. Examples: disk full, database corruption.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
	}
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// IsUserError checks if an error is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// AsUserError extracts a UserError from an error chain.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	ok := errors.As(err, &ue)
	return ue, ok
}
