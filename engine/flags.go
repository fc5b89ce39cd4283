package engine

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// flagSet is the parsed form of an ECMAScript flag string.
type flagSet struct {
	global     bool
	ignoreCase bool
	multiline  bool
	unicode    bool
	sticky     bool
}

func parseFlags(flags string) (flagSet, error) {
	var f flagSet
	for i := 0; i < len(flags); i++ {
		var p *bool
		switch flags[i] {
		case 'g':
			p = &f.global
		case 'i':
			p = &f.ignoreCase
		case 'm':
			p = &f.multiline
		case 'u':
			p = &f.unicode
		case 'y':
			p = &f.sticky
		default:
			return flagSet{}, fmt.Errorf("%w: unknown flag %q", ErrInvalidFlags, flags[i])
		}
		if *p {
			return flagSet{}, fmt.Errorf("%w: repeated flag %q", ErrInvalidFlags, flags[i])
		}
		*p = true
	}
	return f, nil
}

// options maps the flags onto regexp2 options. ECMAScript is always set.
func (f flagSet) options() regexp2.RegexOptions {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if f.ignoreCase {
		opts |= regexp2.IgnoreCase
	}
	if f.multiline {
		opts |= regexp2.Multiline
	}
	if f.unicode {
		opts |= regexp2.Unicode
	}
	return opts
}

// fastPathSafe reports whether the flags leave existence checks unchanged
// on an engine that knows nothing about them.
func (f flagSet) fastPathSafe() bool {
	return !f.ignoreCase && !f.multiline && !f.sticky
}
