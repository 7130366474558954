// Package errors provides structured error types for the startuppong client.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with cause preservation
//
// # Error Codes
//
// Every failure the library can surface maps to exactly one code. The
// taxonomy is flat: nothing is retried or suppressed internally, callers
// decide what is recoverable.
//
// # Usage
//
//	err := errors.New(errors.ErrCodePlayerNotFound, "no player matching %q", name)
//	if errors.Is(err, errors.ErrCodePlayerNotFound) {
//	    // Handle missing player
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "GET %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// ErrCodePlayerNotFound means a name fragment matched no player.
	// The message carries the offending fragment.
	ErrCodePlayerNotFound Code = "PLAYER_NOT_FOUND"

	// ErrCodeNetwork means the HTTP request could not be completed
	// (connection refused, DNS, TLS, timeout).
	ErrCodeNetwork Code = "NETWORK_ERROR"

	// ErrCodeIO means the response body could not be fully read.
	ErrCodeIO Code = "IO_ERROR"

	// ErrCodeDecode means the response body was not valid JSON or did
	// not match the expected shape.
	ErrCodeDecode Code = "DECODE_ERROR"

	// ErrCodeStatus means the remote answered with a non-2xx status.
	ErrCodeStatus Code = "UNEXPECTED_STATUS"

	// ErrCodeMissingEnv means a required environment variable was absent
	// or empty during Account construction.
	ErrCodeMissingEnv Code = "MISSING_ENV"

	// ErrCodeInvalidInput means the caller passed arguments the library
	// cannot act on (e.g. an empty fragment list).
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// ErrCodeInvalidConfig means a credentials config file was
	// unreadable or malformed.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
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
