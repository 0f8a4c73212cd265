// Package errors provides structured error types for pixelgrid.
//
// Every failure the tools can report carries a machine-readable [Code] so the
// CLI and tests can tell a bad input file from a programming defect without
// matching on message text.
//
// # Error Codes
//
//   - INVALID_*: Input validation failures (flags, paths, formats)
//   - FILE_*: The image codec could not open, decode, or write a file
//   - DIMENSION_MISMATCH: Two inputs that must share a size do not
//   - BOUNDARY_VIOLATION: A render or copy would leave its canvas. This
//     indicates a defect in the caller, never bad user input.
//   - INTERNAL_ERROR: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDimensionMismatch, "images must have the same width (%d != %d)", w1, w2)
//	if errors.Is(err, errors.ErrCodeDimensionMismatch) {
//	    // Report to the user
//	}
//
//	// Wrap codec errors with the file name
//	err := errors.Wrap(errors.ErrCodeFileOpen, origErr, "opening image file %q", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// File and codec errors
	ErrCodeFileOpen     Code = "FILE_OPEN"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeFileWrite    Code = "FILE_WRITE"

	// Image geometry errors
	ErrCodeDimensionMismatch Code = "DIMENSION_MISMATCH"
	ErrCodeBoundaryViolation Code = "BOUNDARY_VIOLATION"

	// Internal errors
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
// Only the outermost *Error is inspected, so a wrapped FILE_OPEN error
// reports FILE_OPEN even when its cause carries another code.
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
// For *Error types, returns the message (and cause) without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// Boundary reports a write or read outside a canvas. Callers that respect
// the documented contracts never trigger it.
func Boundary(format string, args ...any) *Error {
	return New(ErrCodeBoundaryViolation, format, args...)
}
