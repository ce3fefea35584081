package engine

import (
	"regexp"
)

var (
	// Month tokens mark where a greedy reference capture has run into an
	// adjacent date and must be cut off.
	monthToken = regexp.MustCompile(`(?i)\b(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\b`)
	nonAlnum   = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// CleanIdentifier post-processes a raw reference/ID capture: truncate at the
// first month-name token, then strip everything non-alphanumeric.
func CleanIdentifier(raw string) (string, bool) {
	if loc := monthToken.FindStringIndex(raw); loc != nil {
		raw = raw[:loc[0]]
	}
	cleaned := nonAlnum.ReplaceAllString(raw, "")
	if cleaned == "" {
		return "", false
	}
	return cleaned, true
}

// ReferenceMatcher locates a transaction/reference identifier after one of a
// fixed set of keyword anchors and cleans it up.
type ReferenceMatcher struct {
	re *regexp.Regexp
}

func NewReferenceMatcher(keywords []string) ReferenceMatcher {
	re := regexp.MustCompile(
		`(?i:` + joinAlternates(keywords) + `)` +
			`\s*(?:No\.?|Number|#)?\s*[:#\-]?\s*([A-Za-z\d\- ]{8,})`)
	return ReferenceMatcher{re: re}
}

func (m ReferenceMatcher) Match(text string) (string, bool) {
	g := m.re.FindStringSubmatch(text)
	if g == nil {
		return "", false
	}
	return CleanIdentifier(g[1])
}
