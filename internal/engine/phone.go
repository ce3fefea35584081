package engine

import (
	"regexp"
	"strings"
)

// phoneShape covers PH mobile numbers and basic international forms.
var (
	phoneShape     = regexp.MustCompile(`(?:\+?\d{1,3})?[\s\-]?(?:09|\d{2,3})\d{7,9}`)
	phoneShapeLine = regexp.MustCompile(`^(?:\+?\d{1,3})?[\s\-]?(?:09|\d{2,3})\d{7,9}$`)
)

// MatchPhone returns the first phone-shaped token found in text.
func MatchPhone(text string) (string, bool) {
	m := phoneShape.FindString(text)
	if m == "" {
		return "", false
	}
	return strings.TrimSpace(m), true
}

// IsPhoneLine reports whether the trimmed line is nothing but a phone number.
func IsPhoneLine(line string) bool {
	return phoneShapeLine.MatchString(strings.TrimSpace(line))
}
