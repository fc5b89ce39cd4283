package rebuild

import (
	"errors"
	"reflect"
	"testing"
)

type step struct {
	op   string
	args []any
}

func applyAll(t *testing.T, c Context, steps ...step) Context {
	t.Helper()
	for _, s := range steps {
		next, err := Apply(c, s.op, s.args...)
		if err != nil {
			t.Fatalf("Apply(%v, %q, %v) error: %v", c.Kind(), s.op, s.args, err)
		}
		c = next
	}
	return c
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		start Context
		steps []step
		want  string
		kind  Kind
	}{
		{
			name:  "between digit",
			start: Matching(),
			steps: []step{{"between", []any{2, 4}}, {"digit", nil}},
			want:  `\d{2,4}`,
			kind:  KindSequence,
		},
		{
			name:  "negated class",
			start: Matching(),
			steps: []step{{"not", nil}, {"oneOf", []any{"a", "b", "c"}}},
			want:  `[^abc]`,
			kind:  KindClass,
		},
		{
			name:  "flagger",
			start: WithFlags(""),
			steps: []step{{"anyCase", nil}, {"text", []any{"a"}}, {"then", []any{"b"}}},
			want:  "ab",
			kind:  KindSequence,
		},
		{
			name:  "open then",
			start: Text("a"),
			steps: []step{{"then", nil}, {"oneOrMore", nil}, {"whiteSpace", nil}},
			want:  `a\s+`,
			kind:  KindSequence,
		},
		{
			name:  "open or",
			start: Text("a"),
			steps: []step{{"or", nil}, {"theEnd", nil}},
			want:  `a|$`,
			kind:  KindSequence,
		},
		{
			name:  "float and unset bounds",
			start: Matching(),
			steps: []step{{"between", []any{nil, 1.0}}, {"anyChar", nil}},
			want:  `.?`,
			kind:  KindSequence,
		},
		{
			name:  "infinity bound",
			start: Matching(),
			steps: []step{{"lazily", nil}, {"between", []any{int64(2), "inf"}}, {"text", []any{"ab"}}},
			want:  `(?:ab){2,}?`,
			kind:  KindSequence,
		},
		{
			name:  "class members",
			start: Matching(),
			steps: []step{{"oneOf", nil}, {"digit", nil}, {"range", []any{"a", "f"}}, {"not", nil}, {"whiteSpace", nil}, {"and", []any{"_"}}},
			want:  `[\da-f\S_]`,
			kind:  KindClass,
		},
		{
			name:  "class generators",
			start: Matching(),
			steps: []step{{"oneOf", nil}, {"ascii", []any{65}}, {"control", []any{"m"}}, {"codePoint", []any{"é"}}, {"backspace", nil}},
			want:  `[\x41\cM\u` + `00e9\b]`,
			kind:  KindClass,
		},
		{
			name:  "token fallback",
			start: Matching(),
			steps: []step{{"not", nil}, {"token", []any{"tab"}}},
			want:  `\t`,
			kind:  KindSequence,
		},
		{
			name:  "negated class token fallback",
			start: Matching(),
			steps: []step{{"oneOf", nil}, {"not", nil}, {"token", []any{"newLine"}}},
			want:  `[\n]`,
			kind:  KindClass,
		},
		{
			name:  "groups and lookahead",
			start: Matching(),
			steps: []step{{"capture", []any{"a"}}, {"then", nil}, {"reference", []any{1}}, {"notFollowedBy", []any{"b"}}, {"followedBy", []any{"c"}}},
			want:  `(a)\1(?!b)(?=c)`,
			kind:  KindSequence,
		},
		{
			name:  "group fragment",
			start: Matching(),
			steps: []step{{"exactly", []any{3}}, {"group", []any{Text("a").Or("b")}}},
			want:  `(?:a|b){3}`,
			kind:  KindSequence,
		},
		{
			name:  "at least at most",
			start: Matching(),
			steps: []step{{"atMost", []any{5}}, {"not", nil}, {"alphaNumeric", nil}, {"then", nil}, {"atLeast", []any{2}}},
			want:  `\W{,5}`,
			kind:  KindQuantified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := applyAll(t, tt.start, tt.steps...)
			if c.Source() != tt.want {
				t.Errorf("Source() = %q, want %q", c.Source(), tt.want)
			}
			if c.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", c.Kind(), tt.kind)
			}
		})
	}
}

func TestApplyIllegal(t *testing.T) {
	tests := []struct {
		name string
		c    Context
		op   string
	}{
		{"token after atom", Text("a"), "digit"},
		{"then at token start", Matching(), "then"},
		{"quantify anchor", Matching().OneOrMore(), "theStart"},
		{"quantify twice", Matching().OneOrMore(), "between"},
		{"lazy token", Matching().Lazily(), "digit"},
		{"negate tab", Matching().Not(), "tab"},
		{"negated boundary quantified", Matching().OneOrMore().Not(), "wordBoundary"},
		{"anyChar in class", Matching().OneOf(), "anyChar"},
		{"group in class", Matching().OneOf(), "group"},
		{"unknown", Matching(), "frobnicate"},
		{"flag mid chain", Matching(), "globally"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(tt.c, tt.op)
			if !errors.Is(err, ErrIllegalOperation) {
				t.Fatalf("Apply error = %v, want ErrIllegalOperation", err)
			}
			var oe *OperationError
			if errors.As(err, &oe) && (oe.Op != tt.op || oe.Kind != tt.c.Kind()) {
				t.Errorf("OperationError = %+v", oe)
			}
		})
	}
}

func TestApplyArguments(t *testing.T) {
	tests := []struct {
		name string
		c    Context
		op   string
		args []any
		want error
	}{
		{"between arity", Matching(), "between", []any{1}, ErrInvalidArgument},
		{"between type", Matching(), "between", []any{"x", 2}, ErrInvalidArgument},
		{"between fraction", Matching(), "between", []any{1.5, 2}, ErrInvalidArgument},
		{"between range", Matching(), "between", []any{-1, 2}, ErrRange},
		{"digit with args", Matching(), "digit", []any{1}, ErrInvalidArgument},
		{"control type", Matching(), "control", []any{1}, ErrInvalidArgument},
		{"control range", Matching(), "control", []any{"1"}, ErrRange},
		{"reference arity", Matching(), "reference", nil, ErrInvalidArgument},
		{"range arity", Matching().OneOf(), "range", []any{"a"}, ErrInvalidArgument},
		{"range value", Matching().OneOf(), "range", []any{"ab", "c"}, ErrRange},
		{"token unknown", Matching(), "token", []any{"nope"}, ErrIllegalOperation},
		{"not with args", Matching(), "not", []any{true}, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(tt.c, tt.op, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Apply error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLegal(t *testing.T) {
	tests := []struct {
		c    Context
		want []string
	}{
		{Globally(), []string{"anyCase", "fullText", "globally", "matching", "stickily", "text", "withUnicode"}},
		{Matching().Lazily(), []string{"anyAmountOf", "atLeast", "atMost", "between", "exactly", "noneOrOne", "oneOrMore"}},
		{Matching().Not(), []string{"alphaNumeric", "digit", "followedBy", "oneOf", "token", "whiteSpace", "wordBoundary"}},
		{Matching().OneOrMore().Not(), []string{"alphaNumeric", "digit", "oneOf", "token", "whiteSpace"}},
		{Matching().OneOf().Not(), []string{"alphaNumeric", "digit", "token", "whiteSpace"}},
		{Text("a"), []string{"followedBy", "notFollowedBy", "or", "then"}},
	}

	for _, tt := range tests {
		t.Run(tt.c.Kind().String(), func(t *testing.T) {
			if got := Legal(tt.c); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Legal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLegalMatchesTypedSurface(t *testing.T) {
	open := Legal(Matching())
	for _, name := range []string{"digit", "wordBoundary", "theStart", "ascii", "codePoint", "control", "reference",
		"group", "capture", "oneOf", "followedBy", "between", "lazily", "not", "text", "token"} {
		if !contains(open, name) {
			t.Errorf("open context lacks %q", name)
		}
	}
	if contains(open, "backspace") {
		t.Error("open context offers backspace")
	}

	quantified := Legal(Matching().OneOrMore())
	for _, name := range []string{"wordBoundary", "theStart", "theEnd", "between", "followedBy"} {
		if contains(quantified, name) {
			t.Errorf("quantified context offers %q", name)
		}
	}

	class := Legal(Matching().OneOf())
	for _, name := range []string{"backspace", "digit", "range", "and", "then", "or", "ascii"} {
		if !contains(class, name) {
			t.Errorf("class context lacks %q", name)
		}
	}
	for _, name := range []string{"anyChar", "wordBoundary", "theStart", "group"} {
		if contains(class, name) {
			t.Errorf("class context offers %q", name)
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
