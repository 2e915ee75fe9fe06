package scan

import "github.com/joshuapare/inikit/internal/format"

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsIdentChar reports whether c may appear in a key, value or section name.
// The same set is accepted at the start of an identifier.
func IsIdentChar(c byte) bool {
	return IsLetter(c) || IsDigit(c) || c == format.Underscore
}

// IsWhitespace reports whether c is skipped between statements.
func IsWhitespace(c byte) bool {
	switch c {
	case format.Space, format.Tab, format.CarriageReturn, format.LineFeed:
		return true
	}
	return false
}
