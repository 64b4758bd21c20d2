package api

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripControl = runes.Remove(runes.In(unicode.Cc))

// NormalizeKeyword prepares user search input for the backend's LIKE matching. Full-width forms typed on CJK
// keyboards are folded to their ASCII equivalents (NFKC), control characters are dropped and runs of whitespace
// collapse to a single space.
func NormalizeKeyword(keyword string) string {
	folded := norm.NFKC.String(keyword)

	cleaned, _, err := transform.String(stripControl, folded)
	if err != nil {
		cleaned = folded
	}

	return strings.Join(strings.Fields(cleaned), " ")
}

// Keyword sets key to the normalised keyword, omitting it when nothing is left
func (q Query) Keyword(key, keyword string) {
	q.Set(key, NormalizeKeyword(keyword))
}
