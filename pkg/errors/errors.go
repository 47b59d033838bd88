// Package errors provides structured error types for blocklink.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the loaders
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// The engine packages (block, rules, link) report programming errors with
// plain sentinel values; coded errors are for user-supplied input such as
// scene files, rule configuration and command-line arguments.
//
// # Error Codes
//
//   - INVALID_*: the input was read but is malformed
//   - UNKNOWN_RULE: a rule configuration names a kind blocklink lacks
//   - *_NOT_FOUND: a named file or block does not exist
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownRule, "unknown rule kind %q", kind)
//	err = errors.Within(err, "rules[%d]", i) // UNKNOWN_RULE: rules[2]: unknown rule kind "x"
//	if errors.Is(err, errors.ErrCodeUnknownRule) {
//	    // Handle configuration error
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes, grouped by the input they describe.
const (
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidBlockID Code = "INVALID_BLOCK_ID"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Scene files
	ErrCodeInvalidScene  Code = "INVALID_SCENE"
	ErrCodeBlockNotFound Code = "BLOCK_NOT_FOUND"

	// Rule configuration
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidRule   Code = "INVALID_RULE"
	ErrCodeUnknownRule   Code = "UNKNOWN_RULE"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Within places err at a location in the input, such as "rules[2]" or
// "blocks[0]". A coded err keeps its code and cause and gains the location
// as a message prefix; any other error is wrapped as INVALID_INPUT.
func Within(err error, format string, args ...any) *Error {
	loc := fmt.Sprintf(format, args...)
	var e *Error
	if !errors.As(err, &e) {
		return Wrap(ErrCodeInvalidInput, err, "%s", loc)
	}
	return &Error{Code: e.Code, Message: loc + ": " + e.Message, Cause: e.Cause}
}

// Is reports whether any *Error in err's chain carries code.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// if there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the outermost *Error without its code
// prefix, or err.Error() for other errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
