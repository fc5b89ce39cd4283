package rebuild

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/coregx/rebuild/escape"
	"github.com/coregx/rebuild/quantifier"
	"github.com/coregx/rebuild/token"
)

// Fragment is a value that contributes raw pattern syntax when passed as a
// part. Every chain value and *Pattern is a Fragment.
//
// Only the accumulated source is spliced. Bounds, laziness or negation still
// pending on an unfinished chain value (a Quantified, Lazy or Negated one)
// are not carried over, so Matching().OneOrMore() contributes nothing.
type Fragment interface {
	Source() string
}

// state is the data carried by every chain value.
type state struct {
	source string
	flags  Flags
	negate bool
	bounds quantifier.Bounds
}

// Source returns the pattern syntax accumulated so far.
func (s state) Source() string {
	return s.source
}

// Flags returns the flag string of the chain in canonical order.
func (s state) Flags() string {
	return s.flags.String()
}

// Options returns the flags of the chain.
func (s state) Options() Flags {
	return s.flags
}

func (s state) base() state {
	return s
}

func (state) sealed() {}

// reset drops the pending negation and quantifier.
func (s state) reset(source string) state {
	return state{source: source, flags: s.flags}
}

// atom appends fragment, quantified by the pending bounds.
func (s state) atom(fragment string) Sequence {
	return newSequence(s.reset(s.source + quantifier.Apply(fragment, s.bounds)))
}

func (s state) atomErr(fragment string, err error) (Sequence, error) {
	if err != nil {
		return Sequence{}, err
	}
	return s.atom(fragment), nil
}

// member inserts fragment before the closing bracket of the last class.
func (s state) member(fragment string) Class {
	i := strings.LastIndexByte(s.source, ']')
	return newClass(s.reset(s.source[:i] + fragment + s.source[i:]))
}

func (s state) memberErr(fragment string, err error) (Class, error) {
	if err != nil {
		return Class{}, err
	}
	return s.member(fragment), nil
}

func (s state) token(name string) Sequence {
	return s.atom(token.MustLookup(name).Fragment(s.negate))
}

func (s state) classToken(name string) Class {
	return s.member(token.MustLookup(name).Fragment(s.negate))
}

// tokenByName resolves a token through the vocabulary, checking that legal
// allows it in kind.
func (s state) tokenByName(kind Kind, name string, legal func(token.Definition) bool) (token.Definition, error) {
	def, ok := token.Lookup(name)
	if !ok || !legal(def) {
		return token.Definition{}, &OperationError{Kind: kind, Op: name}
	}
	return def, nil
}

func (s state) then(parts []any) Sequence {
	return newSequence(s.reset(s.source + composeSequence(parts)))
}

func (s state) or(parts []any) Sequence {
	return newSequence(s.reset(s.source + "|" + composeSequence(parts)))
}

func (s state) text(parts []any) Sequence {
	return s.atom(composeSequence(parts))
}

func (s state) group(parts []any) Sequence {
	return s.atom(groupFragment(composeSequence(parts)))
}

func (s state) capture(parts []any) Sequence {
	return s.atom(captureFragment(composeSequence(parts)))
}

func (s state) followedBy(parts []any) Sequence {
	marker := "(?="
	if s.negate {
		marker = "(?!"
	}
	inner := composeSequence(parts)
	if !quantifier.GroupSpans(inner, marker) {
		inner = marker + inner + ")"
	}
	return newSequence(s.reset(s.source + inner))
}

func (s state) oneOf(parts []any) Class {
	open := "["
	if s.negate {
		open = "[^"
	}
	return newClass(s.reset(s.source + quantifier.Apply(open+composeClassMembers(parts)+"]", s.bounds)))
}

func (s state) and(parts []any) Class {
	return s.member(composeClassMembers(parts))
}

func (s state) rangeOf(start, end any) (Class, error) {
	lo, err := rangeBoundary(start)
	if err != nil {
		return Class{}, err
	}
	hi, err := rangeBoundary(end)
	if err != nil {
		return Class{}, err
	}
	return s.member(lo + "-" + hi), nil
}

func (s state) between(min, max int) (Quantified, error) {
	b, err := quantifier.New(min, max)
	if err != nil {
		return Quantified{}, err
	}
	b.Lazy = s.bounds.Lazy
	return Quantified{state{source: s.source, flags: s.flags, negate: s.negate, bounds: b}}, nil
}

func (s state) mustBetween(min, max int) Quantified {
	q, err := s.between(min, max)
	if err != nil {
		panic("rebuild: " + err.Error())
	}
	return q
}

func (s state) lazily() state {
	s.bounds.Lazy = true
	return s
}

func (s state) not() state {
	s.negate = true
	return s
}

func composeSequence(parts []any) string {
	return compose(parts, escape.Quote)
}

func composeClassMembers(parts []any) string {
	return compose(parts, escape.QuoteClass)
}

// compose concatenates parts. Strings and runes are escaped with quote.
// Fragments and compiled *regexp2.Regexp values contribute their source
// unchanged, nil is skipped and any other value is formatted with fmt.Sprint
// and escaped.
func compose(parts []any, quote func(string) string) string {
	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			return quote(s)
		}
	}

	var b strings.Builder
	for _, part := range parts {
		switch v := part.(type) {
		case nil:
		case string:
			b.WriteString(quote(v))
		case rune:
			b.WriteString(quote(string(v)))
		case Fragment:
			b.WriteString(v.Source())
		case *regexp2.Regexp:
			b.WriteString(v.String())
		default:
			b.WriteString(quote(fmt.Sprint(v)))
		}
	}
	return b.String()
}

// groupFragment wraps inner in a non-capturing group unless it already is
// one.
func groupFragment(inner string) string {
	if quantifier.GroupSpans(inner, "(?:") {
		return inner
	}
	return "(?:" + inner + ")"
}

// captureFragment wraps inner in a capturing group. A spanning
// non-capturing group is turned into a capture and a spanning capture is
// kept as is.
func captureFragment(inner string) string {
	if quantifier.GroupSpans(inner, "(?:") {
		return "(" + inner[3:]
	}
	if quantifier.GroupSpans(inner, "(") && !strings.HasPrefix(inner, "(?") {
		return inner
	}
	return "(" + inner + ")"
}

// rangeBoundary validates one endpoint of a class range. An endpoint is a
// single character, or a Fragment whose source is one character or one
// single-character escape.
func rangeBoundary(v any) (string, error) {
	switch b := v.(type) {
	case string:
		if utf8.RuneCountInString(b) == 1 {
			return escape.QuoteClass(b), nil
		}
	case rune:
		return escape.QuoteClass(string(b)), nil
	case Fragment:
		src := b.Source()
		if utf8.RuneCountInString(src) == 1 || isRangeEscape(src) {
			return src, nil
		}
	}
	return "", &RangeError{Op: "range", Value: v, Reason: "incorrect character range"}
}

// isRangeEscape matches \0 \b \t \n \v \f \r \/ \\ \xHH \uHHHH and \cX.
func isRangeEscape(s string) bool {
	if len(s) < 2 || s[0] != '\\' {
		return false
	}
	switch s[1] {
	case '0', 'b', 't', 'n', 'v', 'f', 'r', '/', '\\':
		return len(s) == 2
	case 'x':
		return len(s) == 4 && isHex(s[2:])
	case 'u':
		return len(s) == 6 && isHex(s[2:])
	case 'c':
		return len(s) == 3 && (s[2]|0x20 >= 'a' && s[2]|0x20 <= 'z')
	}
	return false
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c|0x20 >= 'a' && c|0x20 <= 'f') {
			return false
		}
	}
	return true
}
