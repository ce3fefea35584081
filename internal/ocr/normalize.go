package ocr

import (
	"regexp"
	"strings"
)

var (
	reBoxNoise   = regexp.MustCompile(`[|¦]{2,}`)
	reBlankLines = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans up obvious OCR line noise without touching the content the
// extractors match against.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\x0c", "\n")
	s = reBoxNoise.ReplaceAllString(s, "")

	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " \t")
	}
	s = strings.Join(lines, "\n")
	s = reBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
