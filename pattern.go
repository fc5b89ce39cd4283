package rebuild

import (
	"strings"
	"sync"

	"github.com/coregx/rebuild/engine"
)

// Pattern is the terminal value of a chain: the final source and flags plus
// a matcher compiled on first use and cached afterwards.
//
// A Pattern is safe for concurrent use by multiple goroutines.
//
// Example:
//
//	p := rebuild.AnyCase().Text("a").Then("b").Pattern()
//	ok, _ := p.Test("AB") // true
type Pattern struct {
	source string
	flags  string
	config engine.Config

	once   sync.Once
	engine *engine.Engine
	err    error
}

func newPattern(source, flags string) *Pattern {
	return &Pattern{source: source, flags: flags, config: engine.DefaultConfig()}
}

// PatternWithConfig returns a new Pattern for the chain value c whose
// matcher is compiled with config.
//
// Example:
//
//	config := engine.DefaultConfig()
//	config.MatchTimeout = time.Second
//	seq := rebuild.Matching().OneOrMore().Digit()
//	p := rebuild.PatternWithConfig(seq, config)
func PatternWithConfig(c Context, config engine.Config) *Pattern {
	return &Pattern{source: c.Source(), flags: c.Flags(), config: config}
}

// Source returns the pattern source.
func (p *Pattern) Source() string {
	return p.source
}

// Flags returns the flag string in canonical order.
func (p *Pattern) Flags() string {
	return p.flags
}

// String returns the pattern in literal notation, e.g. /\d+/g.
func (p *Pattern) String() string {
	return literalNotation(p.source, p.flags)
}

// Engine returns the compiled matcher, compiling it on the first call.
// The compile error, if any, is cached as well.
func (p *Pattern) Engine() (*engine.Engine, error) {
	p.once.Do(func() {
		p.engine, p.err = engine.Compile(p.source, p.flags, p.config)
	})
	return p.engine, p.err
}

// MustEngine is like Engine but panics if the pattern does not compile.
func (p *Pattern) MustEngine() *engine.Engine {
	e, err := p.Engine()
	if err != nil {
		panic("rebuild: Compile(`" + p.String() + "`): " + err.Error())
	}
	return e
}

// Test reports whether s contains a match.
func (p *Pattern) Test(s string) (bool, error) {
	e, err := p.Engine()
	if err != nil {
		return false, err
	}
	return e.Test(s)
}

// Exec returns the first match in s, or nil when there is none.
func (p *Pattern) Exec(s string) (*engine.Match, error) {
	e, err := p.Engine()
	if err != nil {
		return nil, err
	}
	return e.Exec(s)
}

// Replace replaces the first match in s, or every match with the global
// flag, by repl. repl may use $1, $& and $$.
func (p *Pattern) Replace(s, repl string) (string, error) {
	e, err := p.Engine()
	if err != nil {
		return "", err
	}
	return e.Replace(s, repl)
}

// Split divides s around the matches of the pattern.
func (p *Pattern) Split(s string) ([]string, error) {
	e, err := p.Engine()
	if err != nil {
		return nil, err
	}
	return e.Split(s)
}

// Search returns the byte offset of the first match in s, or -1.
func (p *Pattern) Search(s string) (int, error) {
	e, err := p.Engine()
	if err != nil {
		return -1, err
	}
	return e.Search(s)
}

func literalNotation(source, flags string) string {
	var b strings.Builder
	b.Grow(len(source) + len(flags) + 2)
	b.WriteByte('/')
	b.WriteString(source)
	b.WriteByte('/')
	b.WriteString(flags)
	return b.String()
}
