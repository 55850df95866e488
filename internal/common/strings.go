package common

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownStr is the String() value of out-of-range enum values.
const UnknownStr = "unknown"

// Capitalize returns s with its first rune upper-cased.
// Strings that already start with an upper-case rune are returned unchanged.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsUpper(r) {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// IsExported reports whether name starts with an upper-case rune.
func IsExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// SnakeCase converts a Go identifier to lower snake case: "OrderItem" becomes
// "order_item", "HTTPServer" becomes "http_server".
func SnakeCase(s string) string {
	runes := []rune(s)

	var b strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1]) && runes[i-1] != '_'
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1])

			if prevLower || nextLower {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(r))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
