// Package errors provides structured error types for dctopo.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the topology core
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Topology construction failures carry INVALID_PARAMETER, capacity dispatch
// failures carry CAPACITY_FUNCTION, and everything downstream of graph
// generation (DOT emission, rasterization, file output) carries RENDER_ERROR
// or INVALID_FORMAT.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidParameter, "port count must be even, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidParameter) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRender, origErr, "rasterize %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// ErrCodeInvalidParameter marks non-positive, non-integral, or structurally
	// degenerate construction arguments. Detected before any graph is built.
	ErrCodeInvalidParameter Code = "INVALID_PARAMETER"

	// ErrCodeCapacityFunction marks a failure of the caller-supplied capacity
	// function during dispatch. Aborts the capacity-assignment pass.
	ErrCodeCapacityFunction Code = "CAPACITY_FUNCTION"

	// Output errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeRender        Code = "RENDER_ERROR"

	// ErrCodeInternal marks unexpected internal errors.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
