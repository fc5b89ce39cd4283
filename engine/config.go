package engine

import "time"

// Config controls which engines a compiled pattern may use and how matching
// is bounded.
//
// Example:
//
//	config := engine.DefaultConfig()
//	config.EnableRE2 = false // Always answer Test with the backtracker
//	e, err := engine.Compile(`\d+`, "g", config)
type Config struct {
	// EnableRE2 allows Test to run on the coregex engine when the pattern is
	// provably RE2-equivalent.
	// Default: true
	EnableRE2 bool

	// EnableLiteralSet allows Test to run on an Aho-Corasick automaton when
	// the pattern is an alternation of plain literals.
	// Default: true
	EnableLiteralSet bool

	// MinLiterals is the smallest number of alternatives for which the
	// literal-set path is chosen. Smaller alternations go to RE2.
	// Default: 3
	MinLiterals int

	// MatchTimeout bounds a single backtracking match. Zero disables the
	// timeout.
	// Default: 0
	MatchTimeout time.Duration
}

// DefaultConfig returns a configuration with every fast path enabled and no
// match timeout.
func DefaultConfig() Config {
	return Config{
		EnableRE2:        true,
		EnableLiteralSet: true,
		MinLiterals:      3,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MinLiterals: 1 to 10,000 (only checked when EnableLiteralSet is set)
//   - MatchTimeout: zero or positive
func (c Config) Validate() error {
	if c.EnableLiteralSet {
		if c.MinLiterals < 1 || c.MinLiterals > 10_000 {
			return &ConfigError{
				Field:   "MinLiterals",
				Message: "must be between 1 and 10,000",
			}
		}
	}

	if c.MatchTimeout < 0 {
		return &ConfigError{
			Field:   "MatchTimeout",
			Message: "must not be negative",
		}
	}

	return nil
}
