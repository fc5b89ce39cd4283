package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidFlags indicates a flag string with an unknown or repeated letter.
var ErrInvalidFlags = errors.New("invalid flags")

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rebuild: invalid config: " + e.Field + ": " + e.Message
}

// CompileError reports a pattern the host engine rejected.
type CompileError struct {
	Source string
	Flags  string
	Err    error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("rebuild: compiling /%s/%s: %v", e.Source, e.Flags, e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}
