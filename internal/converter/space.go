package converter

import (
	"strings"
	"unicode"
)

// IsSpace reports whether r separates tokens: the ECMAScript WhiteSpace and
// LineTerminator set. Unlike unicode.IsSpace it includes U+FEFF and excludes
// U+0085.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// IsBlank reports whether s holds nothing but IsSpace characters.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !IsSpace(r) }) < 0
}
