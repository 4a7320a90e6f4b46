package store

import "fmt"

// CorruptDataError reports a task file that exists but is not a JSON array.
// It is fatal for the session: the file must not be overwritten.
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt task file %s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *CorruptDataError) Unwrap() error {
	return e.Err
}

// WriteError reports a failed save. The in-memory store remains authoritative.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write task file %s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error {
	return e.Err
}
