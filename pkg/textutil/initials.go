package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultInitialsFallback is what callers conventionally show for a missing name.
const DefaultInitialsFallback = "?"

// Initials returns the uppercased first letter of the first two words of
// fullName, with diacritics removed ("José García" -> "JG"). Blank names
// return fallback.
func Initials(fullName, fallback string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return fallback
	}
	if len(parts) > 2 {
		parts = parts[:2]
	}

	var sb strings.Builder
	for _, part := range parts {
		r, _ := utf8.DecodeRuneInString(part)
		sb.WriteString(strings.ToUpper(stripMarks(string(r))))
	}
	return sb.String()
}

// stripMarks decomposes s and drops combining marks.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
