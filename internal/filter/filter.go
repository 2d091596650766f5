package filter

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// IsFresh reports whether postedAt falls inside the window ending at now.
// Both sides are absolute instants, so posts reporting their own timezone
// compare correctly.
func IsFresh(postedAt time.Time, window time.Duration, now time.Time) bool {
	return postedAt.After(now.Add(-window))
}

// MatchesNegativeFilter reports whether text contains any of the filter
// phrases. Matching is case-insensitive with diacritics stripped. A match
// excludes the post.
func MatchesNegativeFilter(text string, filters []string) bool {
	folded := normalizeText(text)
	for _, f := range filters {
		if f == "" {
			continue
		}
		if strings.Contains(folded, normalizeText(f)) {
			return true
		}
	}
	return false
}

func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}
