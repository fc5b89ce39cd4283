// Package token holds the vocabulary of named pattern fragments and the
// generators for escape sequences computed from arguments.
//
// Every named token has a positive fragment, an optional negated fragment and
// a capability mask telling whether it may be quantified and whether it may
// appear at the top level or inside a character class. The table is built
// once at package initialization and never modified.
package token

import "sort"

// Capability is a bit mask restricting where a token may be used.
type Capability uint8

const (
	// NoQuantify marks zero-width tokens that cannot take a quantifier.
	NoQuantify Capability = 1 << iota
	// NoClass marks tokens that have no meaning inside a character class.
	NoClass
	// NoTop marks tokens that only exist inside a character class.
	NoTop
)

// Token names.
const (
	Digit        = "digit"
	AlphaNumeric = "alphaNumeric"
	WhiteSpace   = "whiteSpace"
	WordBoundary = "wordBoundary"
	AnyChar      = "anyChar"
	Tab          = "tab"
	VTab         = "vTab"
	CReturn      = "cReturn"
	NewLine      = "newLine"
	FormFeed     = "formFeed"
	Null         = "null"
	Slash        = "slash"
	Backslash    = "backslash"
	TheStart     = "theStart"
	TheEnd       = "theEnd"
	Backspace    = "backspace"
)

// Definition describes one named token.
type Definition struct {
	Name     string
	Positive string
	// Negated is empty when the token has no negated form.
	Negated string
	Caps    Capability
}

// Fragment returns the negated fragment when negate is set and one is
// defined, and the positive fragment otherwise. A token without a negated
// form silently ignores negation.
func (d Definition) Fragment(negate bool) string {
	if negate && d.Negated != "" {
		return d.Negated
	}
	return d.Positive
}

// Negatable reports whether the token has a negated fragment.
func (d Definition) Negatable() bool {
	return d.Negated != ""
}

// Quantifiable reports whether a quantifier may follow the token.
func (d Definition) Quantifiable() bool {
	return d.Caps&NoQuantify == 0 && d.Caps&NoTop == 0
}

// InClass reports whether the token may appear inside a character class.
func (d Definition) InClass() bool {
	return d.Caps&NoClass == 0
}

// AtTop reports whether the token may appear outside a character class.
func (d Definition) AtTop() bool {
	return d.Caps&NoTop == 0
}

var table = map[string]Definition{}

func define(name, positive, negated string, caps Capability) {
	table[name] = Definition{Name: name, Positive: positive, Negated: negated, Caps: caps}
}

func init() {
	define(Digit, `\d`, `\D`, 0)
	define(AlphaNumeric, `\w`, `\W`, 0)
	define(WhiteSpace, `\s`, `\S`, 0)
	define(WordBoundary, `\b`, `\B`, NoQuantify|NoClass)
	define(AnyChar, `.`, "", NoClass)

	define(Tab, `\t`, "", 0)
	define(VTab, `\v`, "", 0)
	define(CReturn, `\r`, "", 0)
	define(NewLine, `\n`, "", 0)
	define(FormFeed, `\f`, "", 0)
	define(Null, `\0`, "", 0)
	define(Slash, `\/`, "", 0)
	define(Backslash, `\\`, "", 0)

	define(TheStart, `^`, "", NoQuantify|NoClass)
	define(TheEnd, `$`, "", NoQuantify|NoClass)

	// Inside a class \b is a backspace, not a word boundary.
	define(Backspace, `\b`, "", NoTop)
}

// Lookup returns the definition registered under name.
func Lookup(name string) (Definition, bool) {
	d, ok := table[name]
	return d, ok
}

// MustLookup is like Lookup but panics on an unknown name. It is meant for
// the fixed names declared in this package.
func MustLookup(name string) Definition {
	d, ok := table[name]
	if !ok {
		panic("token: unknown token " + name)
	}
	return d
}

// Names returns every token name in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
