package literal

import "github.com/coregx/rebuild/escape"

// ExtractAlternation returns the alternatives of source when source is a
// top-level alternation of plain literals, e.g. `foo|bar\.com|a\/b`.
//
// Escaped metacharacters and the escapes \t \n \v \f \r stand for their
// literal characters. Any other construct (classes, groups, quantifiers,
// anchors, character-type escapes) makes the source non-literal and the
// second result false. Empty alternatives are rejected as well, since an
// empty alternative matches everywhere.
func ExtractAlternation(source string) (*Seq, bool) {
	if source == "" {
		return nil, false
	}

	seq := NewSeq()
	cur := make([]byte, 0, len(source))
	flush := func() bool {
		if len(cur) == 0 {
			return false
		}
		seq.literals = append(seq.literals, NewLiteral(cur))
		cur = make([]byte, 0, len(source))
		return true
	}

	for i := 0; i < len(source); i++ {
		c := source[i]
		switch {
		case c == '|':
			if !flush() {
				return nil, false
			}
		case c == '\\':
			if i+1 >= len(source) {
				return nil, false
			}
			i++
			b, ok := unescape(source[i])
			if !ok {
				return nil, false
			}
			cur = append(cur, b)
		case escape.IsMeta(c):
			return nil, false
		default:
			cur = append(cur, c)
		}
	}
	if !flush() {
		return nil, false
	}
	return seq, true
}

func unescape(c byte) (byte, bool) {
	switch c {
	case 't':
		return '\t', true
	case 'n':
		return '\n', true
	case 'v':
		return '\v', true
	case 'f':
		return '\f', true
	case 'r':
		return '\r', true
	}
	if escape.IsMeta(c) {
		return c, true
	}
	return 0, false
}
