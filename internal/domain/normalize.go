package domain

import (
	"strings"
)

// Slugify derives the URL slug of a word:
//   - converts to lowercase
//   - replaces every run of characters outside [a-z0-9] with a single hyphen
//
// Leading and trailing hyphens are kept, so "(Coffee)" becomes "-coffee-".
func Slugify(word string) string {
	word = strings.ToLower(word)

	var b strings.Builder
	b.Grow(len(word))
	inRun := false
	for _, r := range word {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte('-')
			inRun = true
		}
	}
	return b.String()
}
