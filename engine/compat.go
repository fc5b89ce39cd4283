package engine

import "unicode/utf8"

// maxRepeat is the largest repetition count coregex accepts.
const maxRepeat = 1000

// re2Compatible reports whether source means the same thing to an RE2
// engine as to an ECMAScript engine, for the purpose of deciding whether a
// match exists. The scan is conservative: anything it does not recognize
// makes the source incompatible.
//
// Rejected constructs:
//   - lookaheads and every (? form except (?:
//   - back-references, \0, \u and \c escapes
//   - . (ECMAScript excludes \r and the Unicode line separators)
//   - \s and \S (ECMAScript whitespace is Unicode-aware)
//   - \b and \B (the ECMAScript word boundary sees non-ASCII letters)
//   - empty classes, unescaped [ inside a class
//   - non-ASCII text unless unicode is set
//   - {,n}, unbalanced braces and counts above 1000
func re2Compatible(source string, unicode bool) bool {
	inClass := false
	classStart := false

	for i := 0; i < len(source); i++ {
		c := source[i]

		if c >= utf8.RuneSelf {
			if !unicode {
				return false
			}
			_, size := utf8.DecodeRuneInString(source[i:])
			i += size - 1
			classStart = false
			continue
		}

		if c == '\\' {
			if i+1 >= len(source) {
				return false
			}
			n, ok := compatEscape(source[i+1:])
			if !ok {
				return false
			}
			i += n
			classStart = false
			continue
		}

		if inClass {
			switch c {
			case ']':
				if classStart {
					return false
				}
				inClass = false
			case '[':
				return false
			case '^':
				if classStart && source[i-1] == '[' {
					continue
				}
			}
			classStart = false
			continue
		}

		switch c {
		case '[':
			inClass = true
			classStart = true
		case '.':
			return false
		case '(':
			if i+1 < len(source) && source[i+1] == '?' {
				if i+2 >= len(source) || source[i+2] != ':' {
					return false
				}
				i += 2
			}
		case '{':
			n, ok := repeatLen(source[i:])
			if !ok {
				return false
			}
			i += n - 1
		case '}':
			return false
		}
	}

	return !inClass
}

// compatEscape checks the escape whose letter starts rest and returns how
// many bytes it consumes after the backslash.
func compatEscape(rest string) (int, bool) {
	c := rest[0]
	switch c {
	case 'd', 'D', 'w', 'W', 't', 'n', 'r', 'f', 'v':
		return 1, true
	case 'b', 'B':
		return 0, false
	case 'x':
		if len(rest) < 3 || !isHexDigit(rest[1]) || !isHexDigit(rest[2]) {
			return 0, false
		}
		return 3, true
	}
	if c < utf8.RuneSelf && isPunct(c) {
		return 1, true
	}
	return 0, false
}

// repeatLen parses a counted repetition at the start of s and returns its
// length. Only {n}, {n,} and {n,m} with counts up to maxRepeat are
// accepted.
func repeatLen(s string) (int, bool) {
	i := 1
	lo, ok := number(s, &i)
	if !ok || lo > maxRepeat {
		return 0, false
	}
	if i < len(s) && s[i] == ',' {
		i++
		if i < len(s) && s[i] != '}' {
			hi, ok := number(s, &i)
			if !ok || hi > maxRepeat || hi < lo {
				return 0, false
			}
		}
	}
	if i >= len(s) || s[i] != '}' {
		return 0, false
	}
	return i + 1, true
}

func number(s string, i *int) (int, bool) {
	start := *i
	n := 0
	for *i < len(s) && s[*i] >= '0' && s[*i] <= '9' {
		n = n*10 + int(s[*i]-'0')
		if n > maxRepeat {
			n = maxRepeat + 1
		}
		*i++
	}
	return n, *i > start
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isPunct(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return false
	case c <= ' ' || c == 0x7f:
		return false
	}
	return true
}
