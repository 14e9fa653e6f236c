package flake

import (
	"errors"
	"fmt"
)

// Error represents a generator error with a structured error code.
type Error struct {
	Code    string // Error code (e.g., "FLK-TOK-4000")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *Error) WithDetails(details string) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsCode checks if an error is a flake Error with the given code.
// If code is empty, it only checks if the error is a flake Error.
func IsCode(err error, code string) bool {
	var fe *Error
	if errors.As(err, &fe) {
		if code == "" {
			return true
		}
		return fe.Code == code
	}
	return false
}

// ErrorCode extracts the error code from an error if it's a flake Error.
func ErrorCode(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}

var (
	// ErrOutOfRange indicates a numeric field argument does not fit in
	// its fixed byte width at encode time.
	ErrOutOfRange = NewError("FLK-GEN-4001", "field value out of range")

	// ErrMalformedToken indicates a token presented for validation is
	// not exactly 50 bytes (or not representable in 50 bytes).
	ErrMalformedToken = NewError("FLK-TOK-4000", "malformed token")

	// ErrCounterOverflow indicates the intra-tick counter would wrap.
	// Returned only by generators in strict sequencing mode.
	ErrCounterOverflow = NewError("FLK-SEQ-4002", "intra-tick counter exhausted")

	// ErrClockRegression indicates the wall clock moved backwards.
	// Returned only by generators in strict sequencing mode.
	ErrClockRegression = NewError("FLK-SEQ-4003", "wall clock moved backwards")

	// ErrEntropy indicates the system CSPRNG failed while sampling a
	// default device marker.
	ErrEntropy = NewError("FLK-SYS-5000", "entropy source unavailable")
)
