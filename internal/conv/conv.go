// Package conv converts the rune offsets reported by the backtracking
// engine to Go byte offsets.
//
// The functions panic when an index falls outside the text, since that
// indicates a programming error (an index taken from a different string).
package conv

// RuneToByte converts a rune index into s to the byte offset of that rune.
// An index equal to the rune count maps to len(s).
// Panics if idx < 0 or idx exceeds the rune count of s.
func RuneToByte(s string, idx int) int {
	if idx < 0 {
		panic("index out of range: negative rune index")
	}
	n := 0
	for i := range s {
		if n == idx {
			return i
		}
		n++
	}
	if n == idx {
		return len(s)
	}
	panic("index out of range: rune index past end of text")
}

// RuneSpan converts a rune span [idx, idx+length) to a byte span.
func RuneSpan(s string, idx, length int) (start, end int) {
	start = RuneToByte(s, idx)
	end = start + RuneToByte(s[start:], length)
	return start, end
}
