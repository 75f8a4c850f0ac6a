package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// sanitizeInput drops invalid UTF-8 sequences and control characters other
// than newline and tab, then trims surrounding whitespace.
func sanitizeInput(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		if r == utf8.RuneError && size == 1 {
			continue
		}
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		result.WriteRune(r)
	}

	return strings.TrimSpace(result.String())
}
