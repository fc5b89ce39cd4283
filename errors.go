package rebuild

import (
	"errors"
	"fmt"

	"github.com/coregx/rebuild/quantifier"
	"github.com/coregx/rebuild/token"
)

// Quantifier bound markers for Between.
const (
	// Unset leaves a bound out.
	Unset = quantifier.Unset
	// Infinity is an unbounded maximum.
	Infinity = quantifier.Infinity
)

var (
	// ErrRange is wrapped by every argument range error.
	ErrRange = token.ErrRange

	// ErrIllegalOperation indicates an operation that is not legal in the
	// context it was applied to.
	ErrIllegalOperation = errors.New("illegal operation")

	// ErrInvalidArgument indicates an argument of the wrong type or count
	// passed through Apply.
	ErrInvalidArgument = errors.New("invalid argument")
)

// RangeError reports an argument outside its valid range.
type RangeError = token.RangeError

// OperationError reports an operation applied in a context that does not
// offer it.
type OperationError struct {
	Kind Kind
	Op   string
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	return fmt.Sprintf("rebuild: %s: not legal in %s context", e.Op, e.Kind)
}

// Unwrap returns ErrIllegalOperation.
func (e *OperationError) Unwrap() error {
	return ErrIllegalOperation
}

// ArgumentError reports an unusable argument passed through Apply.
type ArgumentError struct {
	Op      string
	Index   int
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("rebuild: %s: argument %d: %s (got %#v)", e.Op, e.Index, e.Message, e.Value)
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
