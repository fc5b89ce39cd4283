// Package engine compiles ECMAScript pattern sources and runs them.
//
// Every pattern is compiled with regexp2 in ECMAScript mode, which defines
// the semantics of all operations. Existence checks (Test) may instead be
// answered by a faster engine when the pattern allows it:
//   - UseLiteralSet: an Aho-Corasick automaton over a literal alternation
//   - UseRE2: coregex, for patterns whose meaning is identical under RE2
//
// Offsets reported by this package are byte offsets into the input string.
package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"

	"github.com/coregx/rebuild/internal/conv"
	"github.com/coregx/rebuild/literal"
)

// Engine is a compiled pattern. It is safe for concurrent use.
type Engine struct {
	source   string
	flags    string
	set      flagSet
	strategy Strategy

	re  *regexp2.Regexp
	re2 *coregex.Regex
	ac  *ahocorasick.Automaton
}

// Match is the result of Exec.
type Match struct {
	// Index is the byte offset of the match in the input.
	Index int
	// Groups holds the whole match at index 0 followed by every capture.
	Groups []Group
}

// Group is one capture of a match. Text is empty and Index is -1 when the
// group did not participate in the match.
type Group struct {
	Text    string
	Index   int
	Matched bool
}

// Compile compiles source under flags (any subset of "gimuy").
func Compile(source, flags string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	set, err := parseFlags(flags)
	if err != nil {
		return nil, &CompileError{Source: source, Flags: flags, Err: err}
	}

	re, err := regexp2.Compile(source, set.options())
	if err != nil {
		return nil, &CompileError{Source: source, Flags: flags, Err: err}
	}
	if config.MatchTimeout > 0 {
		re.MatchTimeout = config.MatchTimeout
	}

	e := &Engine{
		source:   source,
		flags:    flags,
		set:      set,
		strategy: selectStrategy(source, set, config),
		re:       re,
	}
	e.buildFastPath()
	return e, nil
}

// buildFastPath constructs the engine chosen by the strategy, falling back
// to the backtracker if construction fails.
func (e *Engine) buildFastPath() {
	switch e.strategy {
	case UseLiteralSet:
		seq, _ := extractLiterals(e.source)
		builder := ahocorasick.NewBuilder()
		for i := 0; i < seq.Len(); i++ {
			builder.AddPattern(seq.Get(i).Bytes)
		}
		auto, err := builder.Build()
		if err != nil {
			e.strategy = UseBacktracker
			return
		}
		e.ac = auto
	case UseRE2:
		re2, err := coregex.Compile(e.source)
		if err != nil {
			e.strategy = UseBacktracker
			return
		}
		e.re2 = re2
	}
}

func extractLiterals(source string) (*literal.Seq, bool) {
	seq, ok := literal.ExtractAlternation(source)
	if !ok {
		return nil, false
	}
	seq.Minimize()
	return seq, true
}

// Source returns the pattern source.
func (e *Engine) Source() string {
	return e.source
}

// Flags returns the flag string the engine was compiled with.
func (e *Engine) Flags() string {
	return e.flags
}

// Strategy returns the engine that answers Test.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// NumGroups returns the number of capture groups, not counting the whole
// match.
func (e *Engine) NumGroups() int {
	return len(e.re.GetGroupNumbers()) - 1
}

// Test reports whether s contains a match. With the sticky flag the match
// must start at offset 0.
//
// Text that is not valid UTF-8 always goes to the backtracker, which reads
// each invalid byte as U+FFFD while the fast paths compare raw bytes.
func (e *Engine) Test(s string) (bool, error) {
	if utf8.ValidString(s) {
		switch e.strategy {
		case UseLiteralSet:
			return e.ac.IsMatch([]byte(s)), nil
		case UseRE2:
			return e.re2.MatchString(s), nil
		}
	}

	if e.set.sticky {
		m, err := e.first(s)
		return m != nil, err
	}
	return e.re.MatchString(s)
}

// first returns the first match in s, honoring the sticky flag. Leftmost
// search finds a match at offset 0 whenever one exists, so a sticky match
// exists exactly when the first match starts there.
func (e *Engine) first(s string) (*regexp2.Match, error) {
	m, err := e.re.FindStringMatch(s)
	if err != nil || m == nil {
		return nil, err
	}
	if e.set.sticky && m.Index != 0 {
		return nil, nil
	}
	return m, nil
}

// Exec returns the first match in s, or nil.
func (e *Engine) Exec(s string) (*Match, error) {
	m, err := e.first(s)
	if err != nil || m == nil {
		return nil, err
	}

	groups := m.Groups()
	out := &Match{
		Index:  conv.RuneToByte(s, m.Index),
		Groups: make([]Group, len(groups)),
	}
	for i := range groups {
		g := &groups[i]
		if len(g.Captures) == 0 {
			out.Groups[i] = Group{Index: -1}
			continue
		}
		start, end := conv.RuneSpan(s, g.Index, g.Length)
		out.Groups[i] = Group{Text: s[start:end], Index: start, Matched: true}
	}
	return out, nil
}

// Search returns the byte offset of the first match in s, or -1.
func (e *Engine) Search(s string) (int, error) {
	m, err := e.first(s)
	if err != nil {
		return -1, err
	}
	if m == nil {
		return -1, nil
	}
	return conv.RuneToByte(s, m.Index), nil
}

// Replace substitutes repl for the first match in s, or for every match
// when the global flag is set. repl may reference captures as $1, the whole
// match as $& and a literal dollar as $$.
//
// With the sticky flag only matches adjacent to the start of s (or to the
// previous replaced match) are replaced.
func (e *Engine) Replace(s, repl string) (string, error) {
	count := 1
	if e.set.global {
		count = -1
	}

	if e.set.sticky {
		n, err := e.adjacent(s, e.set.global)
		if err != nil {
			return "", err
		}
		if n == 0 {
			return s, nil
		}
		count = n
	}

	return e.re.Replace(s, repl, -1, count)
}

// adjacent counts the matches that form an unbroken run from offset 0.
func (e *Engine) adjacent(s string, all bool) (int, error) {
	n := 0
	pos := 0
	m, err := e.re.FindStringMatch(s)
	for m != nil && err == nil && m.Index == pos {
		n++
		if !all {
			break
		}
		pos = m.Index + m.Length
		if m.Length == 0 {
			pos++
		}
		m, err = e.re.FindNextMatch(m)
	}
	return n, err
}

// Split divides s around the matches of the pattern, as String.prototype.split
// does. Captured groups of each separator are spliced into the result; a group
// that did not participate contributes an empty string. An empty match never
// splits at the very start or end of s.
func (e *Engine) Split(s string) ([]string, error) {
	runes := []rune(s)
	size := len(runes)

	if size == 0 {
		m, err := e.matchAt(runes, 0)
		if err != nil {
			return nil, err
		}
		if m != nil {
			return []string{}, nil
		}
		return []string{s}, nil
	}

	var out []string
	p := 0
	q := p
	for q < size {
		m, err := e.re.FindRunesMatchStartingAt(runes, q)
		if err != nil {
			return nil, err
		}
		if m == nil {
			break
		}
		// No match starts between q and m.Index.
		q = m.Index
		end := m.Index + m.Length
		if q >= size {
			break
		}
		if end == p {
			q++
			continue
		}
		out = append(out, string(runes[p:q]))
		groups := m.Groups()
		for i := 1; i < len(groups); i++ {
			if len(groups[i].Captures) == 0 {
				out = append(out, "")
				continue
			}
			out = append(out, groups[i].String())
		}
		p = end
		q = p
	}
	out = append(out, string(runes[p:]))
	return out, nil
}

// matchAt returns a match that starts exactly at rune offset at, or nil.
func (e *Engine) matchAt(runes []rune, at int) (*regexp2.Match, error) {
	m, err := e.re.FindRunesMatchStartingAt(runes, at)
	if err != nil || m == nil {
		return nil, err
	}
	if m.Index != at {
		return nil, nil
	}
	return m, nil
}

// String returns the pattern in literal notation, e.g. /a+b/gi.
func (e *Engine) String() string {
	var b strings.Builder
	b.Grow(len(e.source) + len(e.flags) + 2)
	b.WriteByte('/')
	b.WriteString(e.source)
	b.WriteByte('/')
	b.WriteString(e.flags)
	return b.String()
}
