package models

import "fmt"

// ValidationError marks a failure the caller can fix by correcting the
// request. The boundary layer maps it to a 400 response.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

func NewValidationError(field string, reason string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: reason,
	}
}
