package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Generator names, used in errors and by the dispatch table of the builder.
const (
	OpASCII     = "ascii"
	OpCodePoint = "codePoint"
	OpControl   = "control"
	OpReference = "reference"
)

// MaxCodePoint is the largest valid Unicode code point.
const MaxCodePoint = 0x10FFFF

// ASCII returns one `\xHH` escape per character code. Arguments are integers
// in [0, 255] or strings, whose characters are consumed one at a time.
//
// Example:
//
//	token.ASCII("A", 9) // `\x41\x09`
func ASCII(args ...any) (string, error) {
	codes, err := charCodes(OpASCII, args)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, code := range codes {
		if code < 0 || code > 0xFF {
			return "", rangeError(OpASCII, code, "character code must be in [0, 255]")
		}
		fmt.Fprintf(&b, `\x%02x`, code)
	}
	return b.String(), nil
}

// CodePoint returns `\uHHHH` escapes for the given code points. Arguments are
// integers in [0, 0x10FFFF] or strings.
//
// Outside unicode mode a code point above 0xFFFF is emitted as its UTF-16
// surrogate pair, since the pattern then works on code units. In unicode
// mode it is emitted in the braced form `\u{HHHHH}`.
func CodePoint(unicode bool, args ...any) (string, error) {
	codes, err := charCodes(OpCodePoint, args)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, code := range codes {
		if code < 0 || code > MaxCodePoint {
			return "", rangeError(OpCodePoint, code, "code point must be in [0, 0x10ffff]")
		}
		switch {
		case code <= 0xFFFF:
			fmt.Fprintf(&b, `\u%04x`, code)
		case unicode:
			fmt.Fprintf(&b, `\u{%x}`, code)
		default:
			code -= 0x10000
			fmt.Fprintf(&b, `\u%04x\u%04x`, 0xD800+(code>>10), 0xDC00+(code&0x3FF))
		}
	}
	return b.String(), nil
}

// Control returns the control escape `\cX` for a single ASCII letter.
// Lower-case letters are upper-cased.
func Control(letter string) (string, error) {
	if len(letter) != 1 || !isASCIILetter(letter[0]) {
		return "", rangeError(OpControl, letter, "expected a single ASCII letter")
	}
	return `\c` + strings.ToUpper(letter), nil
}

// Reference returns a back-reference to capture group n.
func Reference(n int) (string, error) {
	if n < 0 {
		return "", rangeError(OpReference, n, "back-reference number must be a non-negative integer")
	}
	return `\` + strconv.Itoa(n), nil
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// charCodes flattens a mix of numbers and strings into character codes.
// Strings contribute one code per rune.
func charCodes(op string, args []any) ([]int, error) {
	codes := make([]int, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			for _, r := range v {
				codes = append(codes, int(r))
			}
		case int:
			codes = append(codes, v)
		case int8:
			codes = append(codes, int(v))
		case int16:
			codes = append(codes, int(v))
		case int32:
			codes = append(codes, int(v))
		case int64:
			if v < -1<<31 || v > 1<<31 {
				return nil, rangeError(op, v, "character code out of range")
			}
			codes = append(codes, int(v))
		case uint8:
			codes = append(codes, int(v))
		case uint16:
			codes = append(codes, int(v))
		case uint32:
			if v > MaxCodePoint {
				return nil, rangeError(op, v, "character code out of range")
			}
			codes = append(codes, int(v))
		case uint:
			if v > MaxCodePoint {
				return nil, rangeError(op, v, "character code out of range")
			}
			codes = append(codes, int(v))
		default:
			return nil, rangeError(op, arg, "expected an integer or a string")
		}
	}
	return codes, nil
}
