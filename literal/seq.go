// Package literal extracts plain literal alternations from pattern sources.
//
// The primary use case is the literal-set fast path of the engine: a source
// such as `foo|bar|baz\.com` contains no operator other than top-level
// alternation, so whether it matches some text is decided by multi-pattern
// substring search alone.
//
// Key concepts:
//   - A Literal is a concrete byte sequence that must appear in a match
//   - A Seq is a set of alternative literals (from `foo|bar`)
//   - Minimize drops literals that cannot change a containment test
package literal

import (
	"bytes"
	"sort"
)

// Literal represents a literal byte sequence taken from one alternative of a
// pattern.
type Literal struct {
	Bytes []byte
}

// NewLiteral creates a new Literal from the given byte sequence.
func NewLiteral(b []byte) Literal {
	return Literal{Bytes: b}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// Seq represents a set of alternative literals.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo")),
//	    literal.NewLiteral([]byte("bar")),
//	)
//	fmt.Printf("Sequence has %d literals\n", seq.Len()) // Output: Sequence has 2 literals
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{
		literals: lits,
	}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// Minimize removes literals that are redundant for a containment test.
//
// A literal L is redundant if a shorter literal S occurs inside it: any text
// containing L also contains S. For example, in ["foo", "xfoox"], "foo"
// makes "xfoox" redundant. Duplicates collapse to one entry.
//
// Time complexity: O(n² * m) where n = number of literals, m = average literal length
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}

	sort.SliceStable(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})

	kept := make([]Literal, 0, len(s.literals))
	for _, current := range s.literals {
		redundant := false
		for _, k := range kept {
			if bytes.Contains(current.Bytes, k.Bytes) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, current)
		}
	}

	s.literals = kept
}
