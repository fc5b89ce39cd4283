package token

import (
	"errors"
	"testing"
)

func TestDefinitionFragment(t *testing.T) {
	tests := []struct {
		name   string
		negate bool
		want   string
	}{
		{Digit, false, `\d`},
		{Digit, true, `\D`},
		{AlphaNumeric, true, `\W`},
		{WhiteSpace, true, `\S`},
		{WordBoundary, true, `\B`},
		// No negated form: negation falls back to the positive fragment.
		{AnyChar, true, `.`},
		{Tab, true, `\t`},
		{TheStart, true, `^`},
		{Backspace, true, `\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := MustLookup(tt.name)
			if got := d.Fragment(tt.negate); got != tt.want {
				t.Errorf("Fragment(%v) = %q, want %q", tt.negate, got, tt.want)
			}
		})
	}
}

func TestCapabilities(t *testing.T) {
	tests := []struct {
		name         string
		quantifiable bool
		inClass      bool
		atTop        bool
	}{
		{Digit, true, true, true},
		{AnyChar, true, false, true},
		{WordBoundary, false, false, true},
		{TheStart, false, false, true},
		{TheEnd, false, false, true},
		{Backspace, false, true, false},
		{Slash, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := MustLookup(tt.name)
			if d.Quantifiable() != tt.quantifiable {
				t.Errorf("Quantifiable() = %v, want %v", d.Quantifiable(), tt.quantifiable)
			}
			if d.InClass() != tt.inClass {
				t.Errorf("InClass() = %v, want %v", d.InClass(), tt.inClass)
			}
			if d.AtTop() != tt.atTop {
				t.Errorf("AtTop() = %v, want %v", d.AtTop(), tt.atTop)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 16 {
		t.Fatalf("Names() returned %d names, want 16", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) succeeded")
	}
}

func TestMustLookupPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustLookup did not panic on unknown name")
		}
	}()
	MustLookup("nope")
}

func TestASCII(t *testing.T) {
	tests := []struct {
		name    string
		args    []any
		want    string
		wantErr bool
	}{
		{"single int", []any{65}, `\x41`, false},
		{"zero", []any{0}, `\x00`, false},
		{"max", []any{255}, `\xff`, false},
		{"string", []any{"Ab"}, `\x41\x62`, false},
		{"mixed", []any{"a", 9, 'b'}, `\x61\x09\x62`, false},
		{"byte", []any{byte(10)}, `\x0a`, false},
		{"latin1 char", []any{"é"}, `\xe9`, false},
		{"empty", nil, "", false},
		{"too big", []any{256}, "", true},
		{"negative", []any{-1}, "", true},
		{"non latin1 char", []any{"ā"}, "", true},
		{"wrong type", []any{1.5}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ASCII(tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ASCII(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrRange) {
					t.Errorf("error %v does not wrap ErrRange", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ASCII(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestCodePoint(t *testing.T) {
	tests := []struct {
		name    string
		unicode bool
		args    []any
		want    string
		wantErr bool
	}{
		{"bmp int", false, []any{0x41}, `\u0041`, false},
		{"bmp string", false, []any{"é"}, `\u00e9`, false},
		{"bmp unicode mode", true, []any{0x20AC}, `\u20ac`, false},
		{"astral surrogates", false, []any{0x1F600}, `\ud83d\ude00`, false},
		{"astral string surrogates", false, []any{"😀"}, `\ud83d\ude00`, false},
		{"astral braced", true, []any{0x1F600}, `\u{1f600}`, false},
		{"astral string braced", true, []any{"😀"}, `\u{1f600}`, false},
		{"max", true, []any{MaxCodePoint}, `\u{10ffff}`, false},
		{"max surrogates", false, []any{MaxCodePoint}, `\udbff\udfff`, false},
		{"multiple", false, []any{"ab", 0x63}, `\u0061\u0062\u0063`, false},
		{"too big", false, []any{MaxCodePoint + 1}, "", true},
		{"negative", true, []any{-5}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CodePoint(tt.unicode, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CodePoint(%v, %v) error = %v, wantErr %v", tt.unicode, tt.args, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("CodePoint(%v, %v) = %q, want %q", tt.unicode, tt.args, got, tt.want)
			}
		})
	}
}

func TestControl(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"a", `\cA`, false},
		{"M", `\cM`, false},
		{"z", `\cZ`, false},
		{"", "", true},
		{"ab", "", true},
		{"1", "", true},
		{"@", "", true},
		{"é", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Control(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Control(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Control(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReference(t *testing.T) {
	got, err := Reference(2)
	if err != nil || got != `\2` {
		t.Errorf("Reference(2) = %q, %v", got, err)
	}

	_, err = Reference(-1)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("Reference(-1) error = %v, want *RangeError", err)
	}
	if re.Op != OpReference || re.Value != -1 {
		t.Errorf("RangeError = %+v", re)
	}
}
