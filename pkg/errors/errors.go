// Package errors provides custom error types for the bracketfix system.
// These errors enable programmatic error checking and better diagnostics
// when tournament files cannot be reconciled.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the bracketfix system
var (
	// ErrFormatUnknown indicates that no entry in a tournament file matched
	// either known record shape
	ErrFormatUnknown = errors.New("tournament format unknown")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoRecords indicates that a tournament file produced no usable records
	ErrNoRecords = errors.New("no usable records")
)

// FormatError reports a tournament file whose entries match neither the
// paired-identity nor the split-identity shape.
type FormatError struct {
	File    string
	Entries int
}

// Error implements the error interface
func (e *FormatError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("unrecognized record format in %s (%d entries scanned)", e.File, e.Entries)
	}
	return fmt.Sprintf("unrecognized record format (%d entries scanned)", e.Entries)
}

// Is implements errors.Is support
func (e *FormatError) Is(target error) bool {
	return target == ErrFormatUnknown
}

// NewFormatError creates a new FormatError
func NewFormatError(file string, entries int) *FormatError {
	return &FormatError{File: file, Entries: entries}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing tournament data
type ParseError struct {
	Format  string // "json", "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "copy"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ReconcileError represents an error while reconciling one tournament
type ReconcileError struct {
	Tournament string
	Teams      []string
	Err        error
}

// Error implements the error interface
func (e *ReconcileError) Error() string {
	if len(e.Teams) > 0 {
		return fmt.Sprintf("reconcile error for %s (affected teams: %v): %v", e.Tournament, e.Teams, e.Err)
	}
	return fmt.Sprintf("reconcile error for %s: %v", e.Tournament, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ReconcileError) Unwrap() error {
	return e.Err
}

// NewReconcileError creates a new ReconcileError
func NewReconcileError(tournament string, teams []string, err error) *ReconcileError {
	return &ReconcileError{
		Tournament: tournament,
		Teams:      teams,
		Err:        err,
	}
}

// Helper functions for error checking

// IsFormatUnknown checks if an error indicates an unrecognized record format
func IsFormatUnknown(err error) bool {
	return errors.Is(err, ErrFormatUnknown)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
