package domain

import (
	"errors"
	"fmt"
)

// InvalidFormatMessage is what a shell shows in place of the output when a
// conversion fails.
const InvalidFormatMessage = "Error: Invalid input format."

// Sentinel errors for use with errors.Is().
var (
	// ErrConversion matches every *ConversionError.
	ErrConversion = errors.New("conversion error")

	// ErrInvalidBinaryToken indicates a token with characters other than 0 and 1.
	ErrInvalidBinaryToken = errors.New("invalid binary token")

	// ErrCodePointOutOfRange indicates a token whose value does not fit the unit.
	ErrCodePointOutOfRange = errors.New("code point out of range")
)

// ErrorKind classifies a ConversionError.
type ErrorKind int

const (
	KindInvalidBinaryToken ErrorKind = iota + 1
	KindCodePointOutOfRange
)

// String returns the wire name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidBinaryToken:
		return "invalid_binary_token"
	case KindCodePointOutOfRange:
		return "code_point_out_of_range"
	default:
		return "unknown"
	}
}

// ParseErrorKind is the inverse of ErrorKind.String. Unknown names map to
// KindInvalidBinaryToken.
func ParseErrorKind(s string) ErrorKind {
	if s == KindCodePointOutOfRange.String() {
		return KindCodePointOutOfRange
	}
	return KindInvalidBinaryToken
}

// ConversionError reports a decode failure. No output is produced alongside it.
type ConversionError struct {
	Kind ErrorKind
	// Token is the offending whitespace-delimited token.
	Token string
	// Index is the zero-based position of Token in the input.
	Index int
	// Unit is set for KindCodePointOutOfRange.
	Unit Unit
	// Cause is the underlying parse error, if any.
	Cause error
}

// Error returns a human-readable error message.
func (e *ConversionError) Error() string {
	switch e.Kind {
	case KindCodePointOutOfRange:
		return fmt.Sprintf("token %d (%q) is out of range for unit %s", e.Index, e.Token, e.Unit)
	default:
		return fmt.Sprintf("invalid binary token %d (%q)", e.Index, e.Token)
	}
}

// Unwrap returns the underlying cause.
func (e *ConversionError) Unwrap() error { return e.Cause }

// Is matches ErrConversion and the sentinel for the error's kind.
func (e *ConversionError) Is(target error) bool {
	switch target {
	case ErrConversion:
		return true
	case ErrInvalidBinaryToken:
		return e.Kind == KindInvalidBinaryToken
	case ErrCodePointOutOfRange:
		return e.Kind == KindCodePointOutOfRange
	}
	return false
}
