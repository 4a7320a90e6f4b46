package task

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by ValidationError.
var (
	ErrInvalidTitle       = errors.New("required, 1..100 characters")
	ErrInvalidDescription = errors.New("must be at most 500 characters")
	ErrInvalidStatus      = errors.New("use P/E/T/C or its name")
	ErrInvalidDifficulty  = errors.New("use 1/2/3 or F/M/D")
	ErrInvalidDueDate     = errors.New("unrecognized date")
	ErrInvalidTimestamp   = errors.New("not a valid timestamp")
)

// ValidationError reports a field that failed its constraint. No state is
// changed when one is returned.
type ValidationError struct {
	Field string // human field name, e.g. "title" or "due date"
	Err   error  // underlying cause
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}
