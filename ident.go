package casegen

import (
	"go/token"
	"strings"
)

// Sanitize maps a case display name to a Go identifier. Every rune other than
// an ASCII letter, digit or underscore becomes an underscore, and a leading
// digit or a result that is a Go keyword is prefixed with an underscore.
//
// Example:
//
//	Sanitize("99 bottles of beer")
//
// Output: _99_bottles_of_beer
func Sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	s := b.String()
	if s != "" && (s[0] >= '0' && s[0] <= '9' || token.IsKeyword(s)) {
		s = "_" + s
	}
	return s
}

// usableIdent reports whether s can name a generated method.
func usableIdent(s string) bool {
	return s != "" && s != "_"
}
