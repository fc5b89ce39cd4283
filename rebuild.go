// Package rebuild builds regular expressions from readable method chains.
//
// A chain starts at one of the entry points, accumulates pattern syntax one
// operation at a time and ends in a *Pattern that compiles the result with
// an ECMAScript engine. Literal text is always escaped, quantifiers are
// placed after the atom that follows them, and multi-atom fragments are
// wrapped in non-capturing groups before being quantified.
//
// Basic usage:
//
//	p := rebuild.Matching().
//	    Between(2, 4).Digit().
//	    Then("-").
//	    OneOrMore().AlphaNumeric().
//	    Pattern()
//	fmt.Println(p) // /\d{2,4}-\w+/
//
// Flags are chosen once, before the first token:
//
//	p := rebuild.AnyCase().Globally().Text("a.b").Pattern()
//	fmt.Println(p) // /a\.b/gi
//
// Every step returns a new immutable value whose type exposes only the
// operations that are grammatically legal at that point:
//   - Open: the start of a token (every token, group, class and quantifier)
//   - Quantified: a quantifier is pending and waits for its atom
//   - Lazy: a lazy marker is pending and waits for its quantifier
//   - Negated, NegatedQuantified, NegatedClass: Not was called
//   - Sequence: an atom was appended; continue with Then, Or or FollowedBy
//   - Class: inside a character class
//
// Intermediate values may be reused freely as branch points.
//
// For name-driven construction (configuration files, tooling) the same
// operations are reachable through Apply, and Legal lists what a value
// accepts.
package rebuild

// Text starts a chain without flags from literal text and fragments.
func Text(parts ...any) Sequence {
	return newFlagger(Flags{}).Text(parts...)
}

// Matching opens a chain without flags at a token start.
func Matching() Open {
	return newFlagger(Flags{}).Matching()
}

// Globally starts a chain with the global flag.
func Globally() Flagger {
	return newFlagger(Flags{}).Globally()
}

// AnyCase starts a chain with the case-insensitive flag.
func AnyCase() Flagger {
	return newFlagger(Flags{}).AnyCase()
}

// FullText starts a chain with the multiline flag.
func FullText() Flagger {
	return newFlagger(Flags{}).FullText()
}

// WithUnicode starts a chain with the unicode flag.
func WithUnicode() Flagger {
	return newFlagger(Flags{}).WithUnicode()
}

// Stickily starts a chain with the sticky flag.
func Stickily() Flagger {
	return newFlagger(Flags{}).Stickily()
}

// WithFlags starts a chain with the flags named by the letters of s.
// Unknown letters are ignored.
func WithFlags(s string) Flagger {
	return newFlagger(ParseFlags(s))
}

// WithFlagList starts a chain with the named flags (FlagGlobal,
// FlagIgnoreCase, ...). Unknown names are ignored.
func WithFlagList(names ...string) Flagger {
	var f Flags
	for _, name := range names {
		f.set(name)
	}
	return newFlagger(f)
}

// WithOptions starts a chain with the given flags.
func WithOptions(f Flags) Flagger {
	return newFlagger(f)
}
