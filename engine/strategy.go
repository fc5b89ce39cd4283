package engine

// Strategy names the engine that answers Test for a compiled pattern.
//
// Exec, Replace, Split and Search always run on the backtracker, whose
// leftmost-first semantics define match positions.
type Strategy int

const (
	// UseBacktracker runs every operation on regexp2 in ECMAScript mode.
	// Selected when the pattern uses a construct RE2 cannot express with
	// identical semantics, or when the fast paths are disabled.
	UseBacktracker Strategy = iota

	// UseRE2 answers Test with coregex.
	// Selected for patterns made only of constructs that behave the same
	// under ECMAScript and RE2 rules, with flags limited to g and u.
	UseRE2

	// UseLiteralSet answers Test with an Aho-Corasick automaton.
	// Selected for top-level alternations of plain literals such as
	// `error|warning|fatal`, with flags limited to g and u.
	UseLiteralSet
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseBacktracker:
		return "UseBacktracker"
	case UseRE2:
		return "UseRE2"
	case UseLiteralSet:
		return "UseLiteralSet"
	default:
		return "Unknown"
	}
}

// selectStrategy picks the Test engine for source under flags.
func selectStrategy(source string, f flagSet, config Config) Strategy {
	if !f.fastPathSafe() {
		return UseBacktracker
	}

	if config.EnableLiteralSet {
		if seq, ok := extractLiterals(source); ok && seq.Len() >= config.MinLiterals {
			return UseLiteralSet
		}
	}

	if config.EnableRE2 && re2Compatible(source, f.unicode) {
		return UseRE2
	}

	return UseBacktracker
}
