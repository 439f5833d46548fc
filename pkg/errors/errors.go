// Package errors provides structured error types for cmdgraph.
//
// Every failure in a conversion run carries a machine-readable [Code] so the
// CLI can report a specific message and tests can assert on the failure class
// without string matching.
//
//	err := errors.New(errors.ErrCodeRedirectNotFound, "redirect target %q not found", name)
//	if errors.Is(err, errors.ErrCodeRedirectNotFound) {
//	    // handle lookup failure
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the different failure classes of a conversion run.
const (
	// Input-access errors, detected before any parsing.
	ErrCodeInvalidPath  Code = "INVALID_PATH"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeFileExists   Code = "FILE_EXISTS"
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// Deserialization errors.
	ErrCodeDecode Code = "DECODE_ERROR"

	// Data-integrity errors raised during tree traversal.
	ErrCodeMissingNamespace Code = "MISSING_NAMESPACE"
	ErrCodeRedirectNotFound Code = "REDIRECT_NOT_FOUND"

	// Output errors, raised after the graph has been fully computed.
	ErrCodeWrite Code = "WRITE_ERROR"
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
