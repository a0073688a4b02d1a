package filter

import (
	"strings"
	"unicode"
)

const (
	minLetters   = 3
	scriptShare  = 0.8
	allowedPunct = "-.,!?()[]\":;@#$%^&*+=<>/\\|`~"
)

// IsPermittedLanguage accepts text that is predominantly Latin or Cyrillic
// and carries no characters outside letters, digits, whitespace and common
// punctuation. Emoji and apostrophes count as disallowed.
func IsPermittedLanguage(text string) bool {
	if text == "" {
		return false
	}
	var latin, cyrillic int
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z':
			latin++
		case (r >= 'а' && r <= 'я') || r == 'ё':
			cyrillic++
		}
		if !allowedRune(r) {
			return false
		}
	}
	total := latin + cyrillic
	if total < minLetters {
		return false
	}
	return float64(cyrillic)/float64(total) > scriptShare ||
		float64(latin)/float64(total) > scriptShare
}

func allowedRune(r rune) bool {
	if r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
		return true
	}
	return strings.ContainsRune(allowedPunct, r)
}
