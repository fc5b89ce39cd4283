// Package escape implements the two escaping rules used when literal text is
// spliced into an ECMAScript pattern source.
//
// Text appearing at the top level of a pattern has every syntax
// metacharacter escaped. Text appearing inside a character class only needs
// the smaller set of characters that keep a special meaning there.
package escape

const (
	// Meta lists the characters escaped by Quote.
	Meta = `^$/.*+?|()[]{}\`

	// ClassMeta lists the characters escaped by QuoteClass.
	ClassMeta = `^/[]\-`
)

// Quote returns s with every top-level metacharacter preceded by a
// backslash. The result matches s literally.
//
// Example:
//
//	escape.Quote("a.b(c)") // `a\.b\(c\)`
func Quote(s string) string {
	return quote(s, Meta)
}

// QuoteClass returns s escaped for use between the brackets of a character
// class.
//
// Example:
//
//	escape.QuoteClass("a-z]") // `a\-z\]`
func QuoteClass(s string) string {
	return quote(s, ClassMeta)
}

// IsMeta reports whether c is a top-level metacharacter.
func IsMeta(c byte) bool {
	return isSpecial(c, Meta)
}

func quote(s, special string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

// All metacharacters are ASCII, so scanning bytes never splits a rune.
func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}
