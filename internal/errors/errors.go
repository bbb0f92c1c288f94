// Package errors provides custom error types and utilities for wryte.
//
// Document persistence has a single failure kind at its contract level,
// the I/O failure. Validation and configuration errors only occur at the
// outer surfaces (the shell bridge and the CLI).
package errors

import (
	"errors"
	"fmt"
)

// Error categories for wryte operations
var (
	ErrIO            = errors.New("i/o failure")
	ErrInvalidInput  = errors.New("invalid input")
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidText is the cause reported when a loaded file is not valid UTF-8.
	ErrInvalidText = errors.New("stream did not contain valid UTF-8")
)

// Operations carried by IOError.
const (
	OpSave = "save"
	OpLoad = "load"
)

// IOError represents any file system access failure during a save or load.
// "not found", "permission denied", "disk full" and invalid text all share
// this shape; the underlying cause stays reachable through Unwrap.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Failed to %s file: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError creates a new I/O error
func NewIOError(op, path string, err error) *IOError {
	return &IOError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// IsIO checks if an error is an I/O failure
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field, value, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// IsConfiguration checks if an error is configuration-related
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Value   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new validation error
func NewValidationError(field, value, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// IsValidation checks if an error is validation-related
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
