package engine

import (
	"regexp"
	"strings"
)

var (
	// Inter-word gaps must not cross line ends or the capture swallows the
	// first word of the next line.
	receiverAnchor = regexp.MustCompile(`(?i:to|receiver|sent\s+to|paid\s+to)[:\s]+([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+){0,3})`)
	senderAnchor   = regexp.MustCompile(`(?i:from|sender|you)[\s:]+([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+){0,3})`)

	// Letters, spaces and light punctuation only. A digit disqualifies a line
	// from being read as a person's name.
	nameLine = regexp.MustCompile(`^[A-Za-z][A-Za-z .,'\-]*$`)
)

// ExtractReceiver finds the receiver name via its keyword anchors. When no
// anchor matches, it falls back to the line immediately above the first
// phone-shaped line, a layout many wallet receipts share.
func ExtractReceiver(text string) (string, bool) {
	if m := receiverAnchor.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}

	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if !IsPhoneLine(ln) {
			continue
		}
		if i == 0 {
			break
		}
		prev := strings.TrimSpace(lines[i-1])
		if prev != "" && nameLine.MatchString(prev) {
			return prev, true
		}
		break
	}
	return "", false
}

// ExtractSender finds the sender name via its keyword anchors.
func ExtractSender(text string) (string, bool) {
	if m := senderAnchor.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
