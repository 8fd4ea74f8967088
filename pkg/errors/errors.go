// Package errors provides custom error types for the ctrlmap system.
// These errors enable programmatic error checking across the loaders,
// the reconciler and the report writer, and carry enough context
// (file, column, identifier) to explain why a run was aborted.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As forward to the standard library so callers need one import.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the ctrlmap system
var (
	// ErrConfig indicates missing or malformed configuration or a missing required input file
	ErrConfig = errors.New("configuration error")

	// ErrParse indicates malformed structured or tabular input
	ErrParse = errors.New("parse error")

	// ErrLookup indicates access to an accumulator that was never initialized
	ErrLookup = errors.New("lookup error")

	// ErrFormat indicates a non-numeric value where a numeric conversion is required
	ErrFormat = errors.New("format error")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// ConfigError represents a configuration error, including a required
// input file that cannot be opened.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", "xlsx", "text"
	File    string
	Line    int // row number for tabular input, line number otherwise
	Column  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		if e.Column != "" {
			return fmt.Sprintf("parse error in %s at %s row %d column %s: %s", e.Format, e.File, e.Line, e.Column, e.Message)
		}
		return fmt.Sprintf("parse error in %s at %s:%d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// LookupError represents access to a keyed accumulator that does not exist.
type LookupError struct {
	Resource string // "control", "technique"
	Key      string
}

// Error implements the error interface
func (e *LookupError) Error() string {
	return fmt.Sprintf("no %s accumulator initialized for %q", e.Resource, e.Key)
}

// Is implements errors.Is support
func (e *LookupError) Is(target error) bool {
	return target == ErrLookup || target == ErrNotFound
}

// NewLookupError creates a new LookupError
func NewLookupError(resource, key string) *LookupError {
	return &LookupError{Resource: resource, Key: key}
}

// FormatError represents a value that could not be converted to the
// representation a report requires.
type FormatError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface
func (e *FormatError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("cannot format %s value %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("cannot format value %q: %v", e.Value, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// NewFormatError creates a new FormatError
func NewFormatError(field, value string, err error) *FormatError {
	return &FormatError{Field: field, Value: value, Err: err}
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

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename", "close"
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

// Helper functions for error checking

// IsConfigError checks if an error is a configuration error
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfig)
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsLookupError checks if an error is a lookup error
func IsLookupError(err error) bool {
	return errors.Is(err, ErrLookup)
}

// IsFormatError checks if an error is a format error
func IsFormatError(err error) bool {
	return errors.Is(err, ErrFormat)
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

// WrapConfig wraps an error as a ConfigError
func WrapConfig(component string, err error) error {
	if err == nil {
		return nil
	}
	return NewConfigError(component, err.Error(), err)
}
