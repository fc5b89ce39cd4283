package rebuild

import "github.com/coregx/rebuild/token"

// Quantified is a token start with a pending quantifier. Only atoms that
// can be repeated are legal; the quantifier is attached to the first one
// appended.
type Quantified struct {
	state
}

// Kind returns KindQuantified.
func (Quantified) Kind() Kind { return KindQuantified }

// Text appends literal text and fragments as one quantified atom, grouping
// them when needed.
func (q Quantified) Text(parts ...any) Sequence { return q.text(parts) }

// Digit appends \d under the pending quantifier.
func (q Quantified) Digit() Sequence { return q.token(token.Digit) }

// AlphaNumeric appends \w under the pending quantifier.
func (q Quantified) AlphaNumeric() Sequence { return q.token(token.AlphaNumeric) }

// WhiteSpace appends \s under the pending quantifier.
func (q Quantified) WhiteSpace() Sequence { return q.token(token.WhiteSpace) }

// AnyChar appends the dot under the pending quantifier.
func (q Quantified) AnyChar() Sequence { return q.token(token.AnyChar) }

// Tab appends \t under the pending quantifier.
func (q Quantified) Tab() Sequence { return q.token(token.Tab) }

// VTab appends \v under the pending quantifier.
func (q Quantified) VTab() Sequence { return q.token(token.VTab) }

// CReturn appends \r under the pending quantifier.
func (q Quantified) CReturn() Sequence { return q.token(token.CReturn) }

// NewLine appends \n under the pending quantifier.
func (q Quantified) NewLine() Sequence { return q.token(token.NewLine) }

// FormFeed appends \f under the pending quantifier.
func (q Quantified) FormFeed() Sequence { return q.token(token.FormFeed) }

// Null appends \0 under the pending quantifier.
func (q Quantified) Null() Sequence { return q.token(token.Null) }

// Slash appends \/ under the pending quantifier.
func (q Quantified) Slash() Sequence { return q.token(token.Slash) }

// Backslash appends \\ under the pending quantifier.
func (q Quantified) Backslash() Sequence { return q.token(token.Backslash) }

// Token appends the named token. Zero-width tokens cannot be quantified and
// are rejected.
func (q Quantified) Token(name string) (Sequence, error) {
	def, err := q.tokenByName(KindQuantified, name, token.Definition.Quantifiable)
	if err != nil {
		return Sequence{}, err
	}
	return q.atom(def.Fragment(q.negate)), nil
}

// ASCII appends \xHH escapes under the pending quantifier.
func (q Quantified) ASCII(args ...any) (Sequence, error) { return q.atomErr(token.ASCII(args...)) }

// CodePoint appends code point escapes under the pending quantifier.
func (q Quantified) CodePoint(args ...any) (Sequence, error) {
	return q.atomErr(token.CodePoint(q.flags.Unicode, args...))
}

// Control appends the control escape for letter under the pending quantifier.
func (q Quantified) Control(letter string) (Sequence, error) {
	return q.atomErr(token.Control(letter))
}

// Reference appends a quantified back-reference to capture n.
func (q Quantified) Reference(n int) (Sequence, error) { return q.atomErr(token.Reference(n)) }

// Group wraps parts in a quantified non-capturing group.
func (q Quantified) Group(parts ...any) Sequence { return q.group(parts) }

// Capture wraps parts in a quantified capturing group.
func (q Quantified) Capture(parts ...any) Sequence { return q.capture(parts) }

// OneOf opens a quantified character class.
func (q Quantified) OneOf(parts ...any) Class { return q.oneOf(parts) }

// Lazily makes the pending quantifier non-greedy.
func (q Quantified) Lazily() Quantified { return Quantified{q.lazily()} }

// Not negates the quantified atom.
func (q Quantified) Not() NegatedQuantified { return NegatedQuantified{q.not()} }

// Lazy is a pending lazy marker. A quantifier must follow.
type Lazy struct {
	state
}

// Kind returns KindLazy.
func (Lazy) Kind() Kind { return KindLazy }

// Between sets lazy bounds. Either bound may be Unset.
func (l Lazy) Between(min, max int) (Quantified, error) { return l.between(min, max) }

// Exactly is Between(n, n).
func (l Lazy) Exactly(n int) (Quantified, error) { return l.between(n, n) }

// AtLeast sets a lazy lower bound.
func (l Lazy) AtLeast(n int) (Quantified, error) { return l.between(n, l.bounds.Upper()) }

// AtMost sets a lazy upper bound.
func (l Lazy) AtMost(n int) (Quantified, error) { return l.between(l.bounds.Lower(), n) }

// AnyAmountOf quantifies the next token with *?.
func (l Lazy) AnyAmountOf() Quantified { return l.mustBetween(0, Infinity) }

// NoneOrOne quantifies the next token with ??.
func (l Lazy) NoneOrOne() Quantified { return l.mustBetween(0, 1) }

// OneOrMore quantifies the next token with +?.
func (l Lazy) OneOrMore() Quantified { return l.mustBetween(1, Infinity) }

// NegatedQuantified is a pending quantifier followed by Not. Only tokens
// with a negated form and classes are offered.
type NegatedQuantified struct {
	state
}

// Kind returns KindNegatedQuantified.
func (NegatedQuantified) Kind() Kind { return KindNegatedQuantified }

// Digit appends \D under the pending quantifier.
func (n NegatedQuantified) Digit() Sequence { return n.token(token.Digit) }

// AlphaNumeric appends \W under the pending quantifier.
func (n NegatedQuantified) AlphaNumeric() Sequence { return n.token(token.AlphaNumeric) }

// WhiteSpace appends \S under the pending quantifier.
func (n NegatedQuantified) WhiteSpace() Sequence { return n.token(token.WhiteSpace) }

// OneOf opens a quantified negated class.
func (n NegatedQuantified) OneOf(parts ...any) Class { return n.oneOf(parts) }

// Token appends the named quantifiable token. A token without a negated
// form is appended in its positive form.
func (n NegatedQuantified) Token(name string) (Sequence, error) {
	def, err := n.tokenByName(KindNegatedQuantified, name, token.Definition.Quantifiable)
	if err != nil {
		return Sequence{}, err
	}
	return n.atom(def.Fragment(true)), nil
}
