// Package dataerror defines the error types raised while loading and
// aggregating the travel datasets.
package dataerror

import "fmt"

// FileNotFoundError signals that a source data file is absent. Callers are
// expected to degrade to an empty table and surface the message to the user.
type FileNotFoundError struct {
	FilePath string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("data file not found: %s", e.FilePath)
}

// LoadError represents a failure while reading or parsing a source file.
// It wraps the underlying cause so callers can inspect it with errors.As.
type LoadError struct {
	FilePath string
	Stage    string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s during %s: %v", e.FilePath, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// FieldParseError represents a field-level coercion failure. Rows with such
// failures survive with the field nulled; the error exists for logging only.
type FieldParseError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *FieldParseError) Unwrap() error {
	return e.Err
}

// MissingColumnError signals that a computation cannot run because the loaded
// table lacks a required logical column. Soft condition, never fatal.
type MissingColumnError struct {
	Operation string
	Column    string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s requires a %s column which the dataset does not provide", e.Operation, e.Column)
}
