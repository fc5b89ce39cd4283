package token

import (
	"errors"
	"fmt"
)

// ErrRange is the sentinel wrapped by every RangeError. Callers test for it
// with errors.Is.
var ErrRange = errors.New("argument out of range")

// RangeError reports an argument rejected while building a pattern
// fragment: a quantifier bound, a character code, a control letter, a class
// range endpoint or a back-reference number.
type RangeError struct {
	// Op is the operation that rejected the argument, e.g. "ascii".
	Op string
	// Value is the offending argument.
	Value any
	// Reason describes the accepted domain.
	Reason string
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("rebuild: %s: %s (got %#v)", e.Op, e.Reason, e.Value)
}

// Unwrap returns ErrRange.
func (e *RangeError) Unwrap() error {
	return ErrRange
}

func rangeError(op string, value any, reason string) error {
	return &RangeError{Op: op, Value: value, Reason: reason}
}
