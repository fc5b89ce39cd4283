package rebuild

// Sequence follows a complete atom. It can be continued, alternated or
// turned into a Pattern.
type Sequence struct {
	state
	pattern *Pattern
}

func newSequence(s state) Sequence {
	return Sequence{state: s, pattern: newPattern(s.source, s.flags.String())}
}

// Kind returns KindSequence.
func (Sequence) Kind() Kind { return KindSequence }

// Then appends literal text and fragments.
func (s Sequence) Then(parts ...any) Sequence { return s.then(parts) }

// Or appends an alternative made of literal text and fragments.
func (s Sequence) Or(parts ...any) Sequence { return s.or(parts) }

// ThenMatching continues at a token start.
func (s Sequence) ThenMatching() Open { return Open{s.reset(s.source)} }

// OrMatching opens a new alternative at a token start.
func (s Sequence) OrMatching() Open { return Open{s.reset(s.source + "|")} }

// FollowedBy appends a lookahead for parts.
func (s Sequence) FollowedBy(parts ...any) Sequence { return s.followedBy(parts) }

// NotFollowedBy appends a negative lookahead for parts.
func (s Sequence) NotFollowedBy(parts ...any) Sequence { return s.not().followedBy(parts) }

// Pattern returns the compiled form of the chain. Calls on the same value
// return the same *Pattern.
func (s Sequence) Pattern() *Pattern {
	if s.pattern == nil {
		return newPattern("", s.flags.String())
	}
	return s.pattern
}

// String renders the chain as /source/flags.
func (s Sequence) String() string { return literalNotation(s.source, s.flags.String()) }
