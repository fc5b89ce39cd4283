package rebuild

// Kind identifies the grammatical position of a chain value.
type Kind int

const (
	// KindFlagger is a chain start that may still collect flags.
	KindFlagger Kind = iota
	// KindOpen is the start of a token.
	KindOpen
	// KindQuantified is a token start with a pending quantifier.
	KindQuantified
	// KindLazy is a pending lazy marker waiting for its quantifier.
	KindLazy
	// KindNegated is a token start with a pending negation.
	KindNegated
	// KindNegatedQuantified is a pending quantifier and negation.
	KindNegatedQuantified
	// KindNegatedClass is a class member with a pending negation.
	KindNegatedClass
	// KindSequence follows a complete atom.
	KindSequence
	// KindClass is inside a character class.
	KindClass
)

// String returns the name of the context kind.
func (k Kind) String() string {
	switch k {
	case KindFlagger:
		return "flagger"
	case KindOpen:
		return "open"
	case KindQuantified:
		return "quantified"
	case KindLazy:
		return "lazy"
	case KindNegated:
		return "negated"
	case KindNegatedQuantified:
		return "negatedQuantified"
	case KindNegatedClass:
		return "negatedClass"
	case KindSequence:
		return "sequence"
	case KindClass:
		return "class"
	default:
		return "unknown"
	}
}

// Context is the union of all chain values. The set of implementations is
// closed: Flagger, Open, Quantified, Lazy, Negated, NegatedQuantified,
// NegatedClass, Sequence and Class.
type Context interface {
	Fragment
	Kind() Kind
	Flags() string

	base() state
	sealed()
}

var (
	_ Context = Flagger{}
	_ Context = Open{}
	_ Context = Quantified{}
	_ Context = Lazy{}
	_ Context = Negated{}
	_ Context = NegatedQuantified{}
	_ Context = NegatedClass{}
	_ Context = Sequence{}
	_ Context = Class{}
)

// Flagger is a chain start. It collects further flags until Matching or
// Text begins the pattern.
type Flagger struct {
	state
}

func newFlagger(f Flags) Flagger {
	return Flagger{state{flags: f}}
}

// Kind returns KindFlagger.
func (Flagger) Kind() Kind { return KindFlagger }

// Globally adds the global flag.
func (f Flagger) Globally() Flagger { return f.with(FlagGlobal) }

// AnyCase adds the case-insensitive flag.
func (f Flagger) AnyCase() Flagger { return f.with(FlagIgnoreCase) }

// FullText adds the multiline flag.
func (f Flagger) FullText() Flagger { return f.with(FlagMultiline) }

// WithUnicode adds the unicode flag.
func (f Flagger) WithUnicode() Flagger { return f.with(FlagUnicode) }

// Stickily adds the sticky flag.
func (f Flagger) Stickily() Flagger { return f.with(FlagSticky) }

func (f Flagger) with(name string) Flagger {
	flags := f.flags
	flags.set(name)
	return newFlagger(flags)
}

// Matching opens the pattern at a token start.
func (f Flagger) Matching() Open {
	return Open{f.reset("")}
}

// Text begins the pattern with literal text and fragments.
func (f Flagger) Text(parts ...any) Sequence {
	return f.reset("").then(parts)
}
