// Package quantifier computes quantifier suffixes and decides when a pattern
// fragment has to be wrapped in a non-capturing group before one is
// appended.
//
// A quantifier binds to the single atom before it. When a fragment is made of
// several atoms, e.g. `ab` or `a|b`, appending `+` directly would only repeat
// the last atom (or the last alternative), so the fragment is wrapped as
// `(?:ab)+` first. NeedsGrouping makes that decision with an escape-aware
// scan of the fragment.
package quantifier

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/coregx/rebuild/token"
)

const (
	// Unset marks an absent bound in Between-style arguments.
	Unset = math.MinInt
	// Infinity marks an unbounded maximum.
	Infinity = math.MaxInt
)

// Bounds holds a pending quantifier. The zero value has no bound set.
type Bounds struct {
	Min, Max       int
	HasMin, HasMax bool
	Lazy           bool
}

// New validates min and max (either may be Unset) and returns the bounds.
func New(min, max int) (Bounds, error) {
	if err := Validate(min, max); err != nil {
		return Bounds{}, err
	}
	return Bounds{
		Min:    min,
		Max:    max,
		HasMin: min != Unset,
		HasMax: max != Unset,
	}, nil
}

// Validate checks a pair of quantifier bounds. Each bound must be Unset or a
// non-negative integer, the maximum may also be Infinity, at least one bound
// must be set and the minimum may not exceed the maximum.
func Validate(min, max int) error {
	if min != Unset && (min < 0 || min == Infinity) {
		return &token.RangeError{Op: "between", Value: min, Reason: "non-negative integer expected"}
	}
	if max != Unset && max < 0 {
		return &token.RangeError{Op: "between", Value: max, Reason: "non-negative integer expected"}
	}
	if min == Unset && max == Unset {
		return &token.RangeError{Op: "between", Value: nil, Reason: "range expected"}
	}
	if min != Unset && max != Unset && min > max {
		return &token.RangeError{Op: "between", Value: [2]int{min, max}, Reason: "minimum exceeds maximum"}
	}
	return nil
}

// Pending reports whether at least one bound is set.
func (b Bounds) Pending() bool {
	return b.HasMin || b.HasMax
}

// Lower returns the minimum, or Unset.
func (b Bounds) Lower() int {
	if !b.HasMin {
		return Unset
	}
	return b.Min
}

// Upper returns the maximum, or Unset.
func (b Bounds) Upper() int {
	if !b.HasMax {
		return Unset
	}
	return b.Max
}

// Token returns the quantifier suffix for the bounds, without the lazy marker.
func (b Bounds) Token() string {
	return Token(b.Lower(), b.Upper())
}

// Token returns the canonical quantifier for min and max. An unset minimum
// counts as 0 and an unset maximum as Infinity. The empty string means the
// bounds are exactly one and no quantifier is needed.
func Token(min, max int) string {
	if min == Unset {
		min = 0
	}
	if max == Unset {
		max = Infinity
	}

	switch {
	case min == max:
		if min == 1 {
			return ""
		}
		return "{" + strconv.Itoa(min) + "}"
	case min == 0:
		switch max {
		case 1:
			return "?"
		case Infinity:
			return "*"
		}
		return "{," + strconv.Itoa(max) + "}"
	case min == 1 && max == Infinity:
		return "+"
	case max == Infinity:
		return "{" + strconv.Itoa(min) + ",}"
	}
	return "{" + strconv.Itoa(min) + "," + strconv.Itoa(max) + "}"
}

// Apply appends the quantifier described by b to fragment, grouping the
// fragment first when it is not a single atom.
//
// Example:
//
//	b, _ := quantifier.New(2, 4)
//	quantifier.Apply(`\d`, b)  // `\d{2,4}`
//	quantifier.Apply(`ab`, b)  // `(?:ab){2,4}`
func Apply(fragment string, b Bounds) string {
	if !b.Pending() {
		return fragment
	}
	q := b.Token()
	if q == "" {
		return fragment
	}
	if fragment == "" || NeedsGrouping(fragment) {
		fragment = "(?:" + fragment + ")"
	}
	if b.Lazy {
		q += "?"
	}
	return fragment + q
}

// NeedsGrouping reports whether fragment must be wrapped in a group before a
// quantifier is appended. It returns false only for fragments that already
// form one atom: a single character, a single escape sequence, or a single
// character class or group spanning the whole fragment.
func NeedsGrouping(fragment string) bool {
	n := len(fragment)
	if n < 2 || utf8.RuneCountInString(fragment) == 1 {
		return false
	}
	if n == 2 && (fragment[0] == '\\' || fragment == "[]" || fragment == "()") {
		return false
	}
	if isSingleEscape(fragment) {
		return false
	}

	switch {
	case fragment[0] == '[' && fragment[n-1] == ']':
		return classEnd(fragment, 0) != n-1
	case fragment[0] == '(' && fragment[n-1] == ')':
		return groupEnd(fragment) != n-1
	}
	return true
}

// GroupSpans reports whether fragment is one group, opened by prefix (for
// example "(?:" or "(?="), whose closing parenthesis is the last byte.
func GroupSpans(fragment, prefix string) bool {
	n := len(fragment)
	if n < len(prefix)+1 || fragment[:len(prefix)] != prefix || fragment[n-1] != ')' {
		return false
	}
	return groupEnd(fragment) == n-1
}

// classEnd returns the index of the bracket closing the class opened at
// start, or -1. An unescaped ']' right after '[' or '[^' closes the class,
// as ECMAScript allows empty classes.
func classEnd(s string, start int) int {
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case ']':
			return i
		}
	}
	return -1
}

// groupEnd returns the index at which the parenthesis depth of the group
// opened at index 0 returns to zero, or -1. Escaped parentheses and
// parentheses inside character classes are not counted.
func groupEnd(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			end := classEnd(s, i)
			if end < 0 {
				return -1
			}
			i = end
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// isSingleEscape recognizes the generated escapes that always denote one
// character: \xHH, \uHHHH, \u{H...} and \cX.
func isSingleEscape(s string) bool {
	if len(s) < 3 || s[0] != '\\' {
		return false
	}
	switch s[1] {
	case 'x':
		return len(s) == 4 && isHex(s[2:])
	case 'u':
		if len(s) == 6 && isHex(s[2:]) {
			return true
		}
		return len(s) > 4 && s[2] == '{' && s[len(s)-1] == '}' && isHex(s[3:len(s)-1])
	case 'c':
		return len(s) == 3 && (s[2] >= 'A' && s[2] <= 'Z' || s[2] >= 'a' && s[2] <= 'z')
	}
	return false
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}
