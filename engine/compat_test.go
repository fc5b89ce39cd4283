package engine

import "testing"

func TestRE2Compatible(t *testing.T) {
	tests := []struct {
		source  string
		unicode bool
		want    bool
	}{
		{`abc`, false, true},
		{`\d{2,4}`, false, true},
		{`\d{3,}`, false, true},
		{`a{1000}`, false, true},
		{`(?:ab)+c?`, false, true},
		{`(a|b)*?`, false, true},
		{`^\w+$`, false, true},
		{`[\d\-a-z]`, false, true},
		{`[^\/\]]`, false, true},
		{`[^^]`, false, true},
		{`\x41\t\n`, false, true},
		{`a\.b\/c`, false, true},
		{`héllo`, true, true},

		{`a.b`, false, false},
		{`\s`, false, false},
		{`\S`, false, false},
		{`(?=a)`, false, false},
		{`(?!a)`, false, false},
		{`(?<n>a)`, false, false},
		{`(a)\1`, false, false},
		{`\0`, false, false},
		{`\u0041`, false, false},
		{`\cA`, false, false},
		{`[\b]`, false, false},
		{`\bcat`, false, false},
		{`\B`, false, false},
		{`^\w+\b$`, false, false},
		{`[]`, false, false},
		{`[^]`, false, false},
		{`[[:alpha:]]`, false, false},
		{`[abc`, false, false},
		{`a{,3}`, false, false},
		{`a{1001}`, false, false},
		{`a{3,2}`, false, false},
		{`a{`, false, false},
		{`a}`, false, false},
		{`héllo`, false, false},
		{`a\`, false, false},
		{`\k`, false, false},
		{`\x4`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := re2Compatible(tt.source, tt.unicode); got != tt.want {
				t.Errorf("re2Compatible(%q, %v) = %v, want %v", tt.source, tt.unicode, got, tt.want)
			}
		})
	}
}
