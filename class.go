package rebuild

import "github.com/coregx/rebuild/token"

// Class is inside a character class. Members are inserted before the
// closing bracket; Then and Or leave the class.
type Class struct {
	state
	pattern *Pattern
}

func newClass(s state) Class {
	return Class{state: s, pattern: newPattern(s.source, s.flags.String())}
}

// Kind returns KindClass.
func (Class) Kind() Kind { return KindClass }

// And inserts more members. Strings are escaped for use inside a class.
func (c Class) And(parts ...any) Class { return c.and(parts) }

// Range inserts the range start-end. Each endpoint must be a single
// character, or a fragment holding one character or one character escape.
func (c Class) Range(start, end any) (Class, error) { return c.rangeOf(start, end) }

// Digit adds \d to the class.
func (c Class) Digit() Class { return c.classToken(token.Digit) }

// AlphaNumeric adds \w to the class.
func (c Class) AlphaNumeric() Class { return c.classToken(token.AlphaNumeric) }

// WhiteSpace adds \s to the class.
func (c Class) WhiteSpace() Class { return c.classToken(token.WhiteSpace) }

// Tab adds \t to the class.
func (c Class) Tab() Class { return c.classToken(token.Tab) }

// VTab adds \v to the class.
func (c Class) VTab() Class { return c.classToken(token.VTab) }

// CReturn adds \r to the class.
func (c Class) CReturn() Class { return c.classToken(token.CReturn) }

// NewLine adds \n to the class.
func (c Class) NewLine() Class { return c.classToken(token.NewLine) }

// FormFeed adds \f to the class.
func (c Class) FormFeed() Class { return c.classToken(token.FormFeed) }

// Null adds \0 to the class.
func (c Class) Null() Class { return c.classToken(token.Null) }

// Slash adds \/ to the class.
func (c Class) Slash() Class { return c.classToken(token.Slash) }

// Backslash adds \\ to the class.
func (c Class) Backslash() Class { return c.classToken(token.Backslash) }

// Backspace inserts \b, which means backspace inside a class.
func (c Class) Backspace() Class { return c.classToken(token.Backspace) }

// Token inserts the named class token.
func (c Class) Token(name string) (Class, error) {
	def, err := c.tokenByName(KindClass, name, token.Definition.InClass)
	if err != nil {
		return Class{}, err
	}
	return c.member(def.Positive), nil
}

// ASCII adds one \xHH escape per byte code to the class.
func (c Class) ASCII(args ...any) (Class, error) { return c.memberErr(token.ASCII(args...)) }

// CodePoint adds one escape per code point to the class.
func (c Class) CodePoint(args ...any) (Class, error) {
	return c.memberErr(token.CodePoint(c.flags.Unicode, args...))
}

// Control adds the control escape for letter to the class.
func (c Class) Control(letter string) (Class, error) { return c.memberErr(token.Control(letter)) }

// Not negates the next class token.
func (c Class) Not() NegatedClass { return NegatedClass{c.not()} }

// Then closes the class and appends literal text and fragments.
func (c Class) Then(parts ...any) Sequence { return c.then(parts) }

// Or closes the class and appends an alternative.
func (c Class) Or(parts ...any) Sequence { return c.or(parts) }

// ThenMatching closes the class and continues at a token start.
func (c Class) ThenMatching() Open { return Open{c.reset(c.source)} }

// OrMatching closes the class and opens a new alternative.
func (c Class) OrMatching() Open { return Open{c.reset(c.source + "|")} }

// FollowedBy closes the class and appends a lookahead.
func (c Class) FollowedBy(parts ...any) Sequence { return c.followedBy(parts) }

// Pattern returns the compiled form of the chain.
func (c Class) Pattern() *Pattern {
	if c.pattern == nil {
		return newPattern("", c.flags.String())
	}
	return c.pattern
}

// String renders the chain as /source/flags.
func (c Class) String() string { return literalNotation(c.source, c.flags.String()) }
