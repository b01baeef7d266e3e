// Package errors provides standardized domain errors with codes for the
// devotional pipeline.
//
// The pipeline threads explicit result errors through every resolution step
// so callers can tell "substitute a placeholder and continue" apart from
// "abort this run":
//
//	text, err := verses.VerseRange(ctx, ref.Book, ref.Chapter, ref.VerseStart, ref.VerseEnd)
//	if errors.Is(err, errors.ErrEmpty) {
//	    // verse absent: placeholder, keep composing
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the application.
const (
	// CodeNotFound: a lookup key does not exist (unknown book, no active week).
	CodeNotFound Code = "NOT_FOUND"
	// CodeMalformed: input that cannot be parsed (citation, date, days JSON).
	CodeMalformed Code = "MALFORMED"
	// CodeEmpty: a range query matched zero rows. Distinct from an empty
	// string so callers substitute a placeholder instead of blank text.
	CodeEmpty Code = "EMPTY"
	// CodeUnavailable: a remote collaborator could not be reached.
	CodeUnavailable Code = "UNAVAILABLE"
	// CodeOutOfRange: an index past the end of a composed sequence.
	CodeOutOfRange Code = "OUT_OF_RANGE"
	CodeValidation Code = "VALIDATION"
	CodeInternal   Code = "INTERNAL"
)

// Error is a domain error with a code, message, and optional cause.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	cause   error  // unexported, for wrapping
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		cause:   err,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrNotFound    = &Error{Code: CodeNotFound, Message: "not found"}
	ErrMalformed   = &Error{Code: CodeMalformed, Message: "malformed input"}
	ErrEmpty       = &Error{Code: CodeEmpty, Message: "no rows matched"}
	ErrUnavailable = &Error{Code: CodeUnavailable, Message: "unavailable"}
	ErrOutOfRange  = &Error{Code: CodeOutOfRange, Message: "out of range"}
	ErrValidation  = &Error{Code: CodeValidation, Message: "validation error"}
	ErrInternal    = &Error{Code: CodeInternal, Message: "internal error"}
)

// Constructor functions for creating errors with custom messages.

// NotFound creates a not found error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// NotFoundf creates a not found error with formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Malformed creates a malformed input error.
func Malformed(msg string) *Error {
	return &Error{Code: CodeMalformed, Message: msg}
}

// Malformedf creates a malformed input error with formatted message.
func Malformedf(format string, args ...any) *Error {
	return &Error{Code: CodeMalformed, Message: fmt.Sprintf(format, args...)}
}

// Empty creates an empty result error.
func Empty(msg string) *Error {
	return &Error{Code: CodeEmpty, Message: msg}
}

// Unavailable creates an unavailable error.
func Unavailable(msg string) *Error {
	return &Error{Code: CodeUnavailable, Message: msg}
}

// Unavailablef creates an unavailable error with formatted message.
func Unavailablef(format string, args ...any) *Error {
	return &Error{Code: CodeUnavailable, Message: fmt.Sprintf(format, args...)}
}

// OutOfRange creates an out of range error.
func OutOfRange(msg string) *Error {
	return &Error{Code: CodeOutOfRange, Message: msg}
}

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// Validationf creates a validation error with formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// Internal creates an internal error.
func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}

// Wrapf wraps an error with a code and formatted message.
func Wrapf(err error, code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: err}
}
