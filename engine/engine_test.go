package engine

import (
	"errors"
	"reflect"
	"testing"
	"unicode/utf8"
)

func mustCompile(t *testing.T, source, flags string) *Engine {
	t.Helper()
	e, err := Compile(source, flags, DefaultConfig())
	if err != nil {
		t.Fatalf("Compile(%q, %q) error: %v", source, flags, err)
	}
	return e
}

func backtrackOnly() Config {
	c := DefaultConfig()
	c.EnableRE2 = false
	c.EnableLiteralSet = false
	return c
}

func TestStrategySelection(t *testing.T) {
	tests := []struct {
		source string
		flags  string
		want   Strategy
	}{
		{`foo|bar|baz`, "", UseLiteralSet},
		{`foo|bar|baz`, "g", UseLiteralSet},
		{`a\.com|b\.org|c\/d`, "", UseLiteralSet},
		{`foo|bar`, "", UseRE2},
		{`\d{2,4}`, "g", UseRE2},
		{`[\d\-]+`, "", UseRE2},
		{`héllo`, "u", UseRE2},
		{`héllo`, "", UseBacktracker},
		{`foo|bar|baz`, "i", UseBacktracker},
		{`\d+`, "m", UseBacktracker},
		{`\d+`, "y", UseBacktracker},
		{`a.b`, "", UseBacktracker},
		{`(?=a)b`, "", UseBacktracker},
		{`\s+`, "", UseBacktracker},
	}

	for _, tt := range tests {
		t.Run(tt.source+"/"+tt.flags, func(t *testing.T) {
			e := mustCompile(t, tt.source, tt.flags)
			if got := e.Strategy(); got != tt.want {
				t.Errorf("Strategy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrategyDisabled(t *testing.T) {
	e, err := Compile(`foo|bar|baz`, "", backtrackOnly())
	if err != nil {
		t.Fatal(err)
	}
	if e.Strategy() != UseBacktracker {
		t.Errorf("Strategy() = %v, want UseBacktracker", e.Strategy())
	}
}

func TestStrategyString(t *testing.T) {
	tests := []struct {
		s    Strategy
		want string
	}{
		{UseBacktracker, "UseBacktracker"},
		{UseRE2, "UseRE2"},
		{UseLiteralSet, "UseLiteralSet"},
		{Strategy(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// Fast paths must agree with the backtracker on every input.
func TestTestAgreesWithBacktracker(t *testing.T) {
	patterns := []struct{ source, flags string }{
		{`foo|bar|baz`, ""},
		{`foo|bar`, "g"},
		{`\d{2,4}`, ""},
		{`^\w+$`, ""},
		{`[a-c]+x`, ""},
		{`\bcat\b`, ""},
		{`(?:ab)+`, "u"},
		{`\Bat`, ""},
		{string(utf8.RuneError) + `|b|c`, "u"},
	}
	inputs := []string{"", "foo", "xbarx", "ba", "12", "1", "abc", "cat", "concat", "a cat!", "ababx", "ccx", "héllo",
		"écat", "é", "\xff", "a\xffb", "12\xff"}

	for _, p := range patterns {
		fast := mustCompile(t, p.source, p.flags)
		slow, err := Compile(p.source, p.flags, backtrackOnly())
		if err != nil {
			t.Fatal(err)
		}
		for _, in := range inputs {
			got, err := fast.Test(in)
			if err != nil {
				t.Fatal(err)
			}
			want, err := slow.Test(in)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("/%s/%s (%v).Test(%q) = %v, backtracker says %v",
					p.source, p.flags, fast.Strategy(), in, got, want)
			}
		}
	}
}

func TestTestInvalidUTF8(t *testing.T) {
	replacement := string(utf8.RuneError)
	tests := []struct {
		source, flags string
		in            string
		want          bool
	}{
		{replacement + `|b|c`, "u", "\xff", true},
		{replacement + `|b|c`, "u", "a\xfe", true},
		{`x|y|z`, "", "\xffx", true},
		{`\d{2}`, "", "1\xff2", false},
		{`\d{2}`, "", "\xff12", true},
	}
	for _, tt := range tests {
		e := mustCompile(t, tt.source, tt.flags)
		got, err := e.Test(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("/%s/%s (%v).Test(%q) = %v, want %v", tt.source, tt.flags, e.Strategy(), tt.in, got, tt.want)
		}
		m, err := e.Exec(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if (m != nil) != got {
			t.Errorf("/%s/%s: Test = %v but Exec = %v", tt.source, tt.flags, got, m)
		}
	}
}

func TestTestSticky(t *testing.T) {
	e := mustCompile(t, `b`, "y")
	tests := []struct {
		in   string
		want bool
	}{
		{"ba", true},
		{"ab", false},
		{"", false},
	}
	for _, tt := range tests {
		got, err := e.Test(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Test(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTestIgnoreCase(t *testing.T) {
	e := mustCompile(t, `ab`, "i")
	for in, want := range map[string]bool{"AB": true, "ab": true, "aB": true, "ac": false} {
		got, err := e.Test(in)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Test(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestExec(t *testing.T) {
	e := mustCompile(t, `(é)(x)?(l+)`, "")
	m, err := e.Exec("héllo")
	if err != nil {
		t.Fatal(err)
	}
	if m == nil {
		t.Fatal("Exec returned nil")
	}
	if m.Index != 1 {
		t.Errorf("Index = %d, want 1", m.Index)
	}
	want := []Group{
		{Text: "éll", Index: 1, Matched: true},
		{Text: "é", Index: 1, Matched: true},
		{Index: -1},
		{Text: "ll", Index: 3, Matched: true},
	}
	if !reflect.DeepEqual(m.Groups, want) {
		t.Errorf("Groups = %+v, want %+v", m.Groups, want)
	}
	if e.NumGroups() != 3 {
		t.Errorf("NumGroups() = %d, want 3", e.NumGroups())
	}
}

func TestExecNoMatch(t *testing.T) {
	e := mustCompile(t, `z`, "")
	m, err := e.Exec("abc")
	if err != nil {
		t.Fatal(err)
	}
	if m != nil {
		t.Errorf("Exec = %+v, want nil", m)
	}

	sticky := mustCompile(t, `b`, "y")
	m, err = sticky.Exec("ab")
	if err != nil {
		t.Fatal(err)
	}
	if m != nil {
		t.Errorf("sticky Exec = %+v, want nil", m)
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		source, flags, in string
		want              int
	}{
		{`o`, "", "héllo", 5},
		{`z`, "", "héllo", -1},
		{`h`, "y", "héllo", 0},
		{`l`, "y", "héllo", -1},
		{`^`, "", "", 0},
	}
	for _, tt := range tests {
		e := mustCompile(t, tt.source, tt.flags)
		got, err := e.Search(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("/%s/%s.Search(%q) = %d, want %d", tt.source, tt.flags, tt.in, got, tt.want)
		}
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		source, flags, in, repl string
		want                    string
	}{
		{`a`, "", "banana", "o", "bonana"},
		{`a`, "g", "banana", "o", "bonono"},
		{`(\w+)@(\w+)`, "", "me@host", "$2 at $1", "host at me"},
		{`b`, "", "abc", "$&$&", "abbc"},
		{`b`, "", "abc", "$$", "a$c"},
		{`z`, "g", "abc", "x", "abc"},
		{`a`, "y", "aab", "x", "xab"},
		{`a`, "gy", "aaba", "x", "xxba"},
		{`a`, "y", "baa", "x", "baa"},
		{`A`, "gi", "aAa", "-", "---"},
	}
	for _, tt := range tests {
		t.Run(tt.source+"/"+tt.flags, func(t *testing.T) {
			e := mustCompile(t, tt.source, tt.flags)
			got, err := e.Replace(tt.in, tt.repl)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Replace(%q, %q) = %q, want %q", tt.in, tt.repl, got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		source, in string
		want       []string
	}{
		{`,`, "a,b,,c", []string{"a", "b", "", "c"}},
		{`,`, "a,", []string{"a", ""}},
		{`(?:)`, "abc", []string{"a", "b", "c"}},
		{`(\d)`, "a1b2c", []string{"a", "1", "b", "2", "c"}},
		{`(x)?b`, "ab", []string{"a", "", ""}},
		{`\s`, "héllo wörld", []string{"héllo", "wörld"}},
		{`z`, "abc", []string{"abc"}},
		{`a`, "", []string{""}},
		{`(?:)`, "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.source+"/"+tt.in, func(t *testing.T) {
			e := mustCompile(t, tt.source, "")
			got, err := e.Split(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		source, flags string
		flagErr       bool
	}{
		{`(a`, "", false},
		{`a**`, "", false},
		{`a`, "x", true},
		{`a`, "gg", true},
	}
	for _, tt := range tests {
		_, err := Compile(tt.source, tt.flags, DefaultConfig())
		var ce *CompileError
		if !errors.As(err, &ce) {
			t.Fatalf("Compile(%q, %q) = %v, want *CompileError", tt.source, tt.flags, err)
		}
		if ce.Source != tt.source || ce.Flags != tt.flags {
			t.Errorf("CompileError = %+v", ce)
		}
		if got := errors.Is(err, ErrInvalidFlags); got != tt.flagErr {
			t.Errorf("errors.Is(%v, ErrInvalidFlags) = %v, want %v", err, got, tt.flagErr)
		}
	}
}

func TestEngineString(t *testing.T) {
	e := mustCompile(t, `a\/b`, "gi")
	if got := e.String(); got != `/a\/b/gi` {
		t.Errorf("String() = %q", got)
	}
	if e.Source() != `a\/b` || e.Flags() != "gi" {
		t.Errorf("Source/Flags = %q %q", e.Source(), e.Flags())
	}
}
