package rebuild

import "strings"

// Flags is the set of pattern flags fixed at the start of a chain.
type Flags struct {
	Global     bool
	IgnoreCase bool
	Multiline  bool
	Unicode    bool
	Sticky     bool
}

// Flag names accepted by WithFlagList.
const (
	FlagGlobal     = "global"
	FlagIgnoreCase = "ignoreCase"
	FlagMultiline  = "multiline"
	FlagUnicode    = "unicode"
	FlagSticky     = "sticky"
)

// ParseFlags reads a flag string such as "gi". Letters other than g, i, m,
// u and y are ignored.
func ParseFlags(s string) Flags {
	return Flags{
		Global:     strings.IndexByte(s, 'g') >= 0,
		IgnoreCase: strings.IndexByte(s, 'i') >= 0,
		Multiline:  strings.IndexByte(s, 'm') >= 0,
		Unicode:    strings.IndexByte(s, 'u') >= 0,
		Sticky:     strings.IndexByte(s, 'y') >= 0,
	}
}

// String renders the flags in canonical order, e.g. "gimuy".
func (f Flags) String() string {
	var b [5]byte
	n := 0
	for _, flag := range [...]struct {
		on     bool
		letter byte
	}{
		{f.Global, 'g'},
		{f.IgnoreCase, 'i'},
		{f.Multiline, 'm'},
		{f.Unicode, 'u'},
		{f.Sticky, 'y'},
	} {
		if flag.on {
			b[n] = flag.letter
			n++
		}
	}
	return string(b[:n])
}

// set turns on the flag called name and reports whether name is known.
func (f *Flags) set(name string) bool {
	switch name {
	case FlagGlobal:
		f.Global = true
	case FlagIgnoreCase:
		f.IgnoreCase = true
	case FlagMultiline:
		f.Multiline = true
	case FlagUnicode:
		f.Unicode = true
	case FlagSticky:
		f.Sticky = true
	default:
		return false
	}
	return true
}
