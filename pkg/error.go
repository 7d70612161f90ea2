package pkg

// Sentinel errors for the smlog package and its subpackages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrAlreadyInstalled is returned when the process-wide sink is registered
// with the slog facade more than once.
//
// Registration is one-shot. A second attempt indicates a programming error,
// since it would leave the active sink ambiguous.
var ErrAlreadyInstalled = MakeErrorf("logger already installed")

// ErrInvalidLevel is returned when a severity level name cannot be parsed.
//
// This error should be wrapped with the offending name and, when available,
// a suggested level.
var ErrInvalidLevel = MakeErrorf("invalid level")

// ErrInvalidMatch is returned when an ignore-prefix match mode cannot be
// parsed.
var ErrInvalidMatch = MakeErrorf("invalid match mode")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
//
// The receiver's backing array is never shared with the result, so package
// sentinels may be wrapped concurrently.
func (e Error) Wrap(err ...error) Error {
	return append(slices.Clip(e), err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// Is reports whether target is an [Error] whose chain is a prefix of the
// receiver's chain. This lets sentinels created by [MakeErrorf] match any
// error derived from them with [Error.Wrap] or [Error.Wrapf].
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 || len(t) > len(e) {
		return false
	}

	for i := range t {
		if !sameError(e[i], t[i]) {
			return false
		}
	}

	return true
}

// sameError compares two errors by identity without panicking on
// uncomparable dynamic types.
func sameError(a, b error) bool {
	if _, ok := a.(Error); ok {
		return false
	}

	if _, ok := b.(Error); ok {
		return false
	}

	return a == b
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
