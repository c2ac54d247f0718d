// Package slug derives stable, URL-safe handles from free text.
package slug

import (
	"strings"
	"unicode"
)

// Make lowercases input and joins its letter and digit runs with hyphens.
// Letters outside ASCII are kept.
func Make(input string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	if b.Len() == 0 {
		return "untitled"
	}
	return b.String()
}

// Matches reports whether ref names the same thing as title once both are
// slugged.
func Matches(ref, title string) bool {
	return ref != "" && Make(ref) == Make(title)
}
