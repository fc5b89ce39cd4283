package rebuild

import (
	"math"
	"sort"
	"strings"

	"github.com/coregx/rebuild/token"
)

// Operation names that are not token names.
const (
	OpText          = "text"
	OpMatching      = "matching"
	OpThen          = "then"
	OpOr            = "or"
	OpGroup         = "group"
	OpCapture       = "capture"
	OpFollowedBy    = "followedBy"
	OpNotFollowedBy = "notFollowedBy"
	OpOneOf         = "oneOf"
	OpAnd           = "and"
	OpRange         = "range"
	OpNot           = "not"
	OpToken         = "token"
	OpBetween       = "between"
	OpExactly       = "exactly"
	OpAtLeast       = "atLeast"
	OpAtMost        = "atMost"
	OpAnyAmountOf   = "anyAmountOf"
	OpNoneOrOne     = "noneOrOne"
	OpOneOrMore     = "oneOrMore"
	OpLazily        = "lazily"
	OpGlobally      = "globally"
	OpAnyCase       = "anyCase"
	OpFullText      = "fullText"
	OpWithUnicode   = "withUnicode"
	OpStickily      = "stickily"
)

// op applies one named operation to a context. Entries are only reached
// through the table of the context's kind, so the concrete type is known.
type op func(c Context, args []any) (Context, error)

var dispatch = map[Kind]map[string]op{}

func init() {
	dispatch[KindFlagger] = map[string]op{
		OpGlobally:    flagOp(Flagger.Globally),
		OpAnyCase:     flagOp(Flagger.AnyCase),
		OpFullText:    flagOp(Flagger.FullText),
		OpWithUnicode: flagOp(Flagger.WithUnicode),
		OpStickily:    flagOp(Flagger.Stickily),
		OpMatching: func(c Context, args []any) (Context, error) {
			if err := arity(OpMatching, args, 0); err != nil {
				return nil, err
			}
			return c.(Flagger).Matching(), nil
		},
		OpText: func(c Context, args []any) (Context, error) {
			return c.(Flagger).Text(args...), nil
		},
	}

	open := map[string]op{
		OpText:        func(c Context, args []any) (Context, error) { return c.base().text(args), nil },
		OpFollowedBy:  followedByOp,
		OpBetween:     betweenOp,
		OpExactly:     exactlyOp,
		OpAtLeast:     atLeastOp,
		OpAtMost:      atMostOp,
		OpAnyAmountOf: fixedOp(OpAnyAmountOf, 0, Infinity),
		OpNoneOrOne:   fixedOp(OpNoneOrOne, 0, 1),
		OpOneOrMore:   fixedOp(OpOneOrMore, 1, Infinity),
		OpLazily: func(c Context, args []any) (Context, error) {
			return c.(Open).Lazily(), arity(OpLazily, args, 0)
		},
		OpNot: func(c Context, args []any) (Context, error) {
			return c.(Open).Not(), arity(OpNot, args, 0)
		},
		OpToken: topTokenOp(token.Definition.AtTop),
	}
	addAtoms(open, token.Definition.AtTop)
	dispatch[KindOpen] = open

	quantified := map[string]op{
		OpText: func(c Context, args []any) (Context, error) { return c.base().text(args), nil },
		OpLazily: func(c Context, args []any) (Context, error) {
			return c.(Quantified).Lazily(), arity(OpLazily, args, 0)
		},
		OpNot: func(c Context, args []any) (Context, error) {
			return c.(Quantified).Not(), arity(OpNot, args, 0)
		},
		OpToken: topTokenOp(token.Definition.Quantifiable),
	}
	addAtoms(quantified, token.Definition.Quantifiable)
	dispatch[KindQuantified] = quantified

	dispatch[KindLazy] = map[string]op{
		OpBetween:     betweenOp,
		OpExactly:     exactlyOp,
		OpAtLeast:     atLeastOp,
		OpAtMost:      atMostOp,
		OpAnyAmountOf: fixedOp(OpAnyAmountOf, 0, Infinity),
		OpNoneOrOne:   fixedOp(OpNoneOrOne, 0, 1),
		OpOneOrMore:   fixedOp(OpOneOrMore, 1, Infinity),
	}

	negated := map[string]op{
		OpOneOf:      oneOfOp,
		OpFollowedBy: followedByOp,
		OpToken:      topTokenOp(token.Definition.AtTop),
	}
	addNegatable(negated, token.Definition.AtTop, tokenOp)
	dispatch[KindNegated] = negated

	negatedQuantified := map[string]op{
		OpOneOf: oneOfOp,
		OpToken: topTokenOp(token.Definition.Quantifiable),
	}
	addNegatable(negatedQuantified, token.Definition.Quantifiable, tokenOp)
	dispatch[KindNegatedQuantified] = negatedQuantified

	negatedClass := map[string]op{
		OpToken: classTokenByNameOp,
	}
	addNegatable(negatedClass, token.Definition.InClass, classTokenOp)
	dispatch[KindNegatedClass] = negatedClass

	dispatch[KindSequence] = map[string]op{
		OpThen:          thenOp,
		OpOr:            orOp,
		OpFollowedBy:    followedByOp,
		OpNotFollowedBy: notFollowedByOp,
	}

	class := map[string]op{
		OpAnd: func(c Context, args []any) (Context, error) { return c.base().and(args), nil },
		OpRange: func(c Context, args []any) (Context, error) {
			if err := arity(OpRange, args, 2); err != nil {
				return nil, err
			}
			return c.base().rangeOf(args[0], args[1])
		},
		OpNot: func(c Context, args []any) (Context, error) {
			return c.(Class).Not(), arity(OpNot, args, 0)
		},
		OpThen:       thenOp,
		OpOr:         orOp,
		OpFollowedBy: followedByOp,
		OpToken:      classTokenByNameOp,
		token.OpASCII: func(c Context, args []any) (Context, error) {
			return c.base().memberErr(token.ASCII(args...))
		},
		token.OpCodePoint: func(c Context, args []any) (Context, error) {
			s := c.base()
			return s.memberErr(token.CodePoint(s.flags.Unicode, args...))
		},
		token.OpControl: func(c Context, args []any) (Context, error) {
			letter, err := stringArg(token.OpControl, args)
			if err != nil {
				return nil, err
			}
			return c.base().memberErr(token.Control(letter))
		},
	}
	for _, name := range token.Names() {
		if token.MustLookup(name).InClass() {
			class[name] = classTokenOp(name)
		}
	}
	dispatch[KindClass] = class
}

// addAtoms registers every token allowed by legal plus the generators,
// groups and classes that start an atom.
func addAtoms(t map[string]op, legal func(token.Definition) bool) {
	for _, name := range token.Names() {
		if legal(token.MustLookup(name)) {
			t[name] = tokenOp(name)
		}
	}
	t[token.OpASCII] = func(c Context, args []any) (Context, error) {
		return c.base().atomErr(token.ASCII(args...))
	}
	t[token.OpCodePoint] = func(c Context, args []any) (Context, error) {
		s := c.base()
		return s.atomErr(token.CodePoint(s.flags.Unicode, args...))
	}
	t[token.OpControl] = func(c Context, args []any) (Context, error) {
		letter, err := stringArg(token.OpControl, args)
		if err != nil {
			return nil, err
		}
		return c.base().atomErr(token.Control(letter))
	}
	t[token.OpReference] = func(c Context, args []any) (Context, error) {
		if err := arity(token.OpReference, args, 1); err != nil {
			return nil, err
		}
		n, err := intArg(token.OpReference, args, 0)
		if err != nil {
			return nil, err
		}
		return c.base().atomErr(token.Reference(n))
	}
	t[OpGroup] = func(c Context, args []any) (Context, error) { return c.base().group(args), nil }
	t[OpCapture] = func(c Context, args []any) (Context, error) { return c.base().capture(args), nil }
	t[OpOneOf] = oneOfOp
}

// addNegatable registers the tokens allowed by legal that have a negated
// form.
func addNegatable(t map[string]op, legal func(token.Definition) bool, mk func(string) op) {
	for _, name := range token.Names() {
		def := token.MustLookup(name)
		if def.Negatable() && legal(def) {
			t[name] = mk(name)
		}
	}
}

func tokenOp(name string) op {
	return func(c Context, args []any) (Context, error) {
		return c.base().token(name), arity(name, args, 0)
	}
}

func classTokenOp(name string) op {
	return func(c Context, args []any) (Context, error) {
		return c.base().classToken(name), arity(name, args, 0)
	}
}

// topTokenOp resolves a token named by the first argument. Under negation a
// token without a negated form falls back to its positive form.
func topTokenOp(legal func(token.Definition) bool) op {
	return func(c Context, args []any) (Context, error) {
		name, err := stringArg(OpToken, args)
		if err != nil {
			return nil, err
		}
		s := c.base()
		def, err := s.tokenByName(c.Kind(), name, legal)
		if err != nil {
			return nil, err
		}
		return s.atom(def.Fragment(s.negate)), nil
	}
}

func classTokenByNameOp(c Context, args []any) (Context, error) {
	name, err := stringArg(OpToken, args)
	if err != nil {
		return nil, err
	}
	s := c.base()
	def, err := s.tokenByName(c.Kind(), name, token.Definition.InClass)
	if err != nil {
		return nil, err
	}
	return s.member(def.Fragment(s.negate)), nil
}

func flagOp(f func(Flagger) Flagger) op {
	return func(c Context, args []any) (Context, error) {
		return f(c.(Flagger)), arity("flag", args, 0)
	}
}

func oneOfOp(c Context, args []any) (Context, error) {
	return c.base().oneOf(args), nil
}

func followedByOp(c Context, args []any) (Context, error) {
	return c.base().followedBy(args), nil
}

func notFollowedByOp(c Context, args []any) (Context, error) {
	return c.base().not().followedBy(args), nil
}

// thenOp appends its arguments, or opens a token start when there are none.
func thenOp(c Context, args []any) (Context, error) {
	s := c.base()
	if len(args) == 0 {
		return Open{s.reset(s.source)}, nil
	}
	return s.then(args), nil
}

func orOp(c Context, args []any) (Context, error) {
	s := c.base()
	if len(args) == 0 {
		return Open{s.reset(s.source + "|")}, nil
	}
	return s.or(args), nil
}

func betweenOp(c Context, args []any) (Context, error) {
	if err := arity(OpBetween, args, 2); err != nil {
		return nil, err
	}
	min, err := intArg(OpBetween, args, 0)
	if err != nil {
		return nil, err
	}
	max, err := intArg(OpBetween, args, 1)
	if err != nil {
		return nil, err
	}
	return c.base().between(min, max)
}

func exactlyOp(c Context, args []any) (Context, error) {
	n, err := singleInt(OpExactly, args)
	if err != nil {
		return nil, err
	}
	return c.base().between(n, n)
}

func atLeastOp(c Context, args []any) (Context, error) {
	n, err := singleInt(OpAtLeast, args)
	if err != nil {
		return nil, err
	}
	s := c.base()
	return s.between(n, s.bounds.Upper())
}

func atMostOp(c Context, args []any) (Context, error) {
	n, err := singleInt(OpAtMost, args)
	if err != nil {
		return nil, err
	}
	s := c.base()
	return s.between(s.bounds.Lower(), n)
}

func fixedOp(name string, min, max int) op {
	return func(c Context, args []any) (Context, error) {
		return c.base().mustBetween(min, max), arity(name, args, 0)
	}
}

// Apply applies the operation named op to c. It fails with an
// *OperationError when c does not offer op, and with an *ArgumentError or a
// *RangeError when the arguments are unusable.
//
// Operations with a callable and an open form (then, or) take the open form
// when called without arguments. Between-style bounds accept nil for Unset
// and "inf" for Infinity.
//
// Example:
//
//	c, _ := rebuild.Apply(rebuild.Matching(), "between", 2, 4)
//	c, _ = rebuild.Apply(c, "digit")
//	fmt.Println(c.Source()) // \d{2,4}
func Apply(c Context, op string, args ...any) (Context, error) {
	f, ok := dispatch[c.Kind()][op]
	if !ok {
		return nil, &OperationError{Kind: c.Kind(), Op: op}
	}
	next, err := f(c, args)
	if err != nil {
		return nil, err
	}
	return next, nil
}

// Legal returns the names of the operations c offers, sorted.
func Legal(c Context) []string {
	t := dispatch[c.Kind()]
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func arity(op string, args []any, n int) error {
	if len(args) != n {
		return &ArgumentError{Op: op, Index: len(args), Value: args, Message: "wrong number of arguments"}
	}
	return nil
}

func stringArg(op string, args []any) (string, error) {
	if err := arity(op, args, 1); err != nil {
		return "", err
	}
	s, ok := args[0].(string)
	if !ok {
		return "", &ArgumentError{Op: op, Index: 0, Value: args[0], Message: "string expected"}
	}
	return s, nil
}

func singleInt(op string, args []any) (int, error) {
	if err := arity(op, args, 1); err != nil {
		return 0, err
	}
	return intArg(op, args, 0)
}

// intArg converts args[i] to an int bound. nil means Unset; "inf",
// "infinity" and +Inf mean Infinity.
func intArg(op string, args []any, i int) (int, error) {
	switch v := args[i].(type) {
	case nil:
		return Unset, nil
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint:
		if v <= math.MaxInt {
			return int(v), nil
		}
	case uint64:
		if v <= math.MaxInt {
			return int(v), nil
		}
	case float64:
		if math.IsInf(v, 1) {
			return Infinity, nil
		}
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			return int(v), nil
		}
	case string:
		switch strings.ToLower(v) {
		case "inf", "infinity":
			return Infinity, nil
		}
	}
	return 0, &ArgumentError{Op: op, Index: i, Value: args[i], Message: "integer expected"}
}
