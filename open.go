package rebuild

import "github.com/coregx/rebuild/token"

// Open is the start of a token. Every token, generator, group, class and
// quantifier is legal here.
type Open struct {
	state
}

// Kind returns KindOpen.
func (Open) Kind() Kind { return KindOpen }

// Text appends literal text and fragments.
func (o Open) Text(parts ...any) Sequence { return o.text(parts) }

// Digit appends \d.
func (o Open) Digit() Sequence { return o.token(token.Digit) }

// AlphaNumeric appends \w.
func (o Open) AlphaNumeric() Sequence { return o.token(token.AlphaNumeric) }

// WhiteSpace appends \s.
func (o Open) WhiteSpace() Sequence { return o.token(token.WhiteSpace) }

// WordBoundary appends \b.
func (o Open) WordBoundary() Sequence { return o.token(token.WordBoundary) }

// AnyChar appends the dot.
func (o Open) AnyChar() Sequence { return o.token(token.AnyChar) }

// Tab appends \t.
func (o Open) Tab() Sequence { return o.token(token.Tab) }

// VTab appends \v.
func (o Open) VTab() Sequence { return o.token(token.VTab) }

// CReturn appends \r.
func (o Open) CReturn() Sequence { return o.token(token.CReturn) }

// NewLine appends \n.
func (o Open) NewLine() Sequence { return o.token(token.NewLine) }

// FormFeed appends \f.
func (o Open) FormFeed() Sequence { return o.token(token.FormFeed) }

// Null appends \0.
func (o Open) Null() Sequence { return o.token(token.Null) }

// Slash appends \/.
func (o Open) Slash() Sequence { return o.token(token.Slash) }

// Backslash appends \\.
func (o Open) Backslash() Sequence { return o.token(token.Backslash) }

// TheStart appends the ^ anchor.
func (o Open) TheStart() Sequence { return o.token(token.TheStart) }

// TheEnd appends the $ anchor.
func (o Open) TheEnd() Sequence { return o.token(token.TheEnd) }

// Token appends the named token. It fails for unknown names and for tokens
// that only exist inside a class.
func (o Open) Token(name string) (Sequence, error) {
	def, err := o.tokenByName(KindOpen, name, token.Definition.AtTop)
	if err != nil {
		return Sequence{}, err
	}
	return o.atom(def.Fragment(o.negate)), nil
}

// ASCII appends one \xHH escape per byte code. Strings contribute one code
// per character.
func (o Open) ASCII(args ...any) (Sequence, error) { return o.atomErr(token.ASCII(args...)) }

// CodePoint appends one escape per code point. Outside unicode mode code
// points above U+FFFF become surrogate pairs.
func (o Open) CodePoint(args ...any) (Sequence, error) {
	return o.atomErr(token.CodePoint(o.flags.Unicode, args...))
}

// Control appends the control escape for letter.
func (o Open) Control(letter string) (Sequence, error) { return o.atomErr(token.Control(letter)) }

// Reference appends a back-reference to capture n.
func (o Open) Reference(n int) (Sequence, error) { return o.atomErr(token.Reference(n)) }

// Group wraps parts in a non-capturing group.
func (o Open) Group(parts ...any) Sequence { return o.group(parts) }

// Capture wraps parts in a capturing group.
func (o Open) Capture(parts ...any) Sequence { return o.capture(parts) }

// OneOf opens a character class holding parts. Called without parts it
// opens an empty class to be filled through the returned Class.
func (o Open) OneOf(parts ...any) Class { return o.oneOf(parts) }

// FollowedBy appends a lookahead for parts.
func (o Open) FollowedBy(parts ...any) Sequence { return o.followedBy(parts) }

// Between sets the pending quantifier for the next atom. Either bound may be
// Unset, max may be Infinity.
func (o Open) Between(min, max int) (Quantified, error) { return o.between(min, max) }

// Exactly is Between(n, n).
func (o Open) Exactly(n int) (Quantified, error) { return o.between(n, n) }

// AtLeast is Between(n, Unset).
func (o Open) AtLeast(n int) (Quantified, error) { return o.between(n, o.bounds.Upper()) }

// AtMost is Between(Unset, n).
func (o Open) AtMost(n int) (Quantified, error) { return o.between(o.bounds.Lower(), n) }

// AnyAmountOf quantifies the next atom with *.
func (o Open) AnyAmountOf() Quantified { return o.mustBetween(0, Infinity) }

// NoneOrOne quantifies the next atom with ?.
func (o Open) NoneOrOne() Quantified { return o.mustBetween(0, 1) }

// OneOrMore quantifies the next atom with +.
func (o Open) OneOrMore() Quantified { return o.mustBetween(1, Infinity) }

// Lazily makes the quantifier that follows non-greedy.
func (o Open) Lazily() Lazy { return Lazy{o.lazily()} }

// Not negates the next token, class or lookahead.
func (o Open) Not() Negated { return Negated{o.not()} }
