// Package search implements the text normalization, filtering and product
// resolution used by the catalog views. All matching is substring-based over
// normalized text; callers never compare raw strings.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var combiningMarks = runes.Remove(runes.In(unicode.Mn))

// Normalize reduces arbitrary text to a canonical comparable token string:
// lowercased, accents stripped ("Memória" -> "memoria"), every run of
// non-alphanumeric characters folded to a single space, trimmed. Normalize is
// idempotent. Both stored text and query text go through it before any
// comparison.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)

	// NFD decomposition, then drop the combining marks
	folded, _, err := transform.String(transform.Chain(norm.NFD, combiningMarks), s)
	if err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		pendingSpace = true
	}
	return b.String()
}
