package lookup

import (
	"strings"
	"unicode"
)

// Normalize strips whitespace and hyphen separators from a raw business
// registration number, so "123-45-67890" and " 12345 67890 " both
// become "1234567890". No format validation happens here; malformed
// tokens are sent to the API unchanged.
func Normalize(token string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, token)
}

// NormalizeAll normalizes a list of raw tokens, dropping empties and
// duplicates while keeping first-seen order.
func NormalizeAll(tokens []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		n := Normalize(token)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// ParseLines splits free-form textarea or file input into normalized
// identifiers, one per line.
func ParseLines(text string) []string {
	return NormalizeAll(strings.Split(text, "\n"))
}
