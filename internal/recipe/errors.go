package recipe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coregx/rebuild"
)

// ErrEmpty is returned for a document without a recipe.
var ErrEmpty = errors.New("recipe: empty document")

// ErrInvalid is wrapped by every *ValidationError.
var ErrInvalid = errors.New("recipe: invalid recipe")

// Problem is one failed validation rule.
type Problem struct {
	Field   string
	Message string
}

// ValidationError lists every problem found in a recipe.
type ValidationError struct {
	Problems []Problem
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.Field + ": " + p.Message
	}
	return "recipe: invalid recipe: " + strings.Join(parts, "; ")
}

// Unwrap returns ErrInvalid.
func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// StepError reports the step at Path that could not be applied.
type StepError struct {
	Path string
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("recipe: %s (%s): %v", e.Path, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *StepError) Unwrap() error {
	return e.Err
}

// IncompleteError is returned when a chain or a nested fragment stops at a
// position that still expects a token.
type IncompleteError struct {
	Kind rebuild.Kind
}

// Error implements the error interface.
func (e *IncompleteError) Error() string {
	return fmt.Sprintf("recipe: chain ends in %s position, a token is still expected", e.Kind)
}
