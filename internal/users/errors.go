package users

import (
	"errors"
)

const (
	msgRequiredFields = "Name, email and age are required."
	msgUnderage       = "User must be an adult."
)

// Sentinels for errors.Is; they match any ValidationError carrying the same message.
var (
	ErrRequiredFields = &ValidationError{Message: msgRequiredFields}
	ErrUnderage       = &ValidationError{Message: msgUnderage}
)

// ValidationError represents a rejected CreateUser request
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is a ValidationError of the same kind
func (e *ValidationError) Is(target error) bool {
	var other *ValidationError
	if !errors.As(target, &other) {
		return false
	}
	return e.Message == other.Message
}

// IsValidationError reports whether err is, or wraps, a ValidationError
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

func newRequiredFieldsError(field string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: msgRequiredFields,
	}
}
