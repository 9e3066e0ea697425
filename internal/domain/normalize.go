package domain

import (
	"strings"
	"unicode"
)

// NormalizeWord prepares a word or phrase for storage and lookup:
//   - trims leading/trailing whitespace
//   - compresses any run of whitespace into a single space
//
// Case is preserved: card identity is case-sensitive.
func NormalizeWord(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeDeck returns the canonical deck name: trimmed and lowercased.
func NormalizeDeck(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
