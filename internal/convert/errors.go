package convert

import (
	"errors"
	"fmt"

	"github.com/roach88/wireconv/internal/wire"
)

// Kind classifies a conversion failure.
type Kind string

const (
	// KindFormatMismatch indicates string input that no candidate format
	// matched, or that matched a format but named an impossible value.
	KindFormatMismatch Kind = "FORMAT_MISMATCH"

	// KindOutOfRange indicates a parsed value outside the target's range.
	KindOutOfRange Kind = "OUT_OF_RANGE"

	// KindTypeMismatch indicates a token shape the target does not accept.
	KindTypeMismatch Kind = "TYPE_MISMATCH"

	// KindUnsupportedNullability indicates null for a non-nullable target.
	KindUnsupportedNullability Kind = "UNSUPPORTED_NULLABILITY"
)

// Error is a classified conversion failure.
type Error struct {
	// Kind identifies the failure category.
	Kind Kind

	// Target names the converter that rejected the input.
	Target string

	// Input is a diagnostic rendering of the rejected token or value.
	Input string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg += ": " + e.Err.Error()
		}
	}
	if e.Input != "" {
		return fmt.Sprintf("%s: %s: %s (input=%s)", e.Kind, e.Target, msg, e.Input)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Target, msg)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there
// is none.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// IsFormatMismatch returns true if err is a FORMAT_MISMATCH conversion error.
func IsFormatMismatch(err error) bool {
	return KindOf(err) == KindFormatMismatch
}

// IsOutOfRange returns true if err is an OUT_OF_RANGE conversion error.
func IsOutOfRange(err error) bool {
	return KindOf(err) == KindOutOfRange
}

// IsTypeMismatch returns true if err is a TYPE_MISMATCH conversion error.
func IsTypeMismatch(err error) bool {
	return KindOf(err) == KindTypeMismatch
}

// IsUnsupportedNullability returns true if err is an UNSUPPORTED_NULLABILITY
// conversion error.
func IsUnsupportedNullability(err error) bool {
	return KindOf(err) == KindUnsupportedNullability
}

// NewFormatMismatch creates an Error for text that matched no format.
func NewFormatMismatch(target string, tok wire.Token, cause error) *Error {
	return &Error{
		Kind:    KindFormatMismatch,
		Target:  target,
		Input:   wire.Describe(tok),
		Message: "no accepted format matches",
		Err:     cause,
	}
}

// NewOutOfRange creates an Error for a value the target cannot represent.
// input is already rendered so callers can report typed values as well as
// tokens.
func NewOutOfRange(target, input string, cause error) *Error {
	return &Error{
		Kind:    KindOutOfRange,
		Target:  target,
		Input:   input,
		Message: "value out of range",
		Err:     cause,
	}
}

// NewTypeMismatch creates an Error for a token shape the target rejects.
func NewTypeMismatch(target string, tok wire.Token) *Error {
	return &Error{
		Kind:    KindTypeMismatch,
		Target:  target,
		Input:   wire.Describe(tok),
		Message: "unsupported token type",
	}
}

// NewValueTypeMismatch creates an Error for a host value of the wrong Go
// type handed to Serialize.
func NewValueTypeMismatch(target string, v any) *Error {
	return &Error{
		Kind:    KindTypeMismatch,
		Target:  target,
		Input:   fmt.Sprintf("value %T", v),
		Message: "unsupported value type",
	}
}

// NewUnsupportedNullability creates an Error for null given to a
// non-nullable target.
func NewUnsupportedNullability(target string) *Error {
	return &Error{
		Kind:    KindUnsupportedNullability,
		Target:  target,
		Input:   "null",
		Message: "target is not nullable",
	}
}
