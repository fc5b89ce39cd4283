package rebuild

import "github.com/coregx/rebuild/token"

// Negated is a token start after Not. Only tokens with a negated form,
// classes and lookaheads are offered.
type Negated struct {
	state
}

// Kind returns KindNegated.
func (Negated) Kind() Kind { return KindNegated }

// Digit appends \D.
func (n Negated) Digit() Sequence { return n.token(token.Digit) }

// AlphaNumeric appends \W.
func (n Negated) AlphaNumeric() Sequence { return n.token(token.AlphaNumeric) }

// WhiteSpace appends \S.
func (n Negated) WhiteSpace() Sequence { return n.token(token.WhiteSpace) }

// WordBoundary appends \B.
func (n Negated) WordBoundary() Sequence { return n.token(token.WordBoundary) }

// OneOf opens a negated class [^...].
func (n Negated) OneOf(parts ...any) Class { return n.oneOf(parts) }

// FollowedBy appends a negative lookahead (?!...).
func (n Negated) FollowedBy(parts ...any) Sequence { return n.followedBy(parts) }

// Token appends the named token in its negated form. A token without a
// negated form is appended in its positive form.
func (n Negated) Token(name string) (Sequence, error) {
	def, err := n.tokenByName(KindNegated, name, token.Definition.AtTop)
	if err != nil {
		return Sequence{}, err
	}
	return n.atom(def.Fragment(true)), nil
}

// NegatedClass is a class member after Not.
type NegatedClass struct {
	state
}

// Kind returns KindNegatedClass.
func (NegatedClass) Kind() Kind { return KindNegatedClass }

// Digit adds \D to the class.
func (n NegatedClass) Digit() Class { return n.classToken(token.Digit) }

// AlphaNumeric adds \W to the class.
func (n NegatedClass) AlphaNumeric() Class { return n.classToken(token.AlphaNumeric) }

// WhiteSpace adds \S to the class.
func (n NegatedClass) WhiteSpace() Class { return n.classToken(token.WhiteSpace) }

// Token inserts the named class token in its negated form, or in its
// positive form when it has none.
func (n NegatedClass) Token(name string) (Class, error) {
	def, err := n.tokenByName(KindNegatedClass, name, token.Definition.InClass)
	if err != nil {
		return Class{}, err
	}
	return n.member(def.Fragment(true)), nil
}
