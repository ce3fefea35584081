package preset

import (
	"regexp"
	"strings"
	"time"

	"github.com/mikocoral05/viscera/constants"
	"github.com/mikocoral05/viscera/internal/engine"
)

// TransactionScreenshotRecord covers generic banking-app screenshots showing
// a balance and a recent transaction.
type TransactionScreenshotRecord struct {
	Category        constants.Category `json:"category"`
	Balance         *float64           `json:"balance,omitempty"`
	AccountNo       *string            `json:"account_no,omitempty"`
	TransactionDate *time.Time         `json:"transaction_date,omitempty"`
}

func (r TransactionScreenshotRecord) Tag() constants.Category { return r.Category }

var (
	screenshotDates   = engine.NewDateNormalizer(nil)
	screenshotBalance = engine.NewAmountMatcher([]string{"Balance", "Available Funds"}, false)

	screenshotAccount = regexp.MustCompile(`(?i)(?:Acct\.?\s*#?|Card Number)\s*:?\s*([\d\-]+)`)
	// Date with an independent optional time group on the same line.
	screenshotWhen = regexp.MustCompile(`([A-Za-z]{3,9} \d{1,2},? \d{4})(?:[^\n]*?(\d{1,2}:\d{2} ?[APMapm]{2}))?`)
)

// ParseTransactionScreenshot extracts the screenshot field set from text.
func ParseTransactionScreenshot(text string) Record {
	rec := TransactionScreenshotRecord{Category: constants.TransactionScreenshot}

	if a, ok := screenshotBalance.Match(text); ok {
		rec.Balance = &a.Value
	}
	if m := screenshotAccount.FindStringSubmatch(text); m != nil {
		acct := strings.TrimSpace(m[1])
		rec.AccountNo = &acct
	}
	if m := screenshotWhen.FindStringSubmatch(text); m != nil {
		if t, ok := parseDayAndTime(m[1], m[2]); ok {
			rec.TransactionDate = &t
		}
	}
	return rec
}

// parseDayAndTime combines a date capture with its optional clock capture.
func parseDayAndTime(day, clock string) (time.Time, bool) {
	t, ok := screenshotDates.ParseDay(day)
	if !ok {
		return time.Time{}, false
	}
	if clock == "" {
		return t, true
	}
	normalized := strings.ToUpper(strings.TrimSpace(clock))
	if !strings.Contains(normalized, " ") {
		normalized = normalized[:len(normalized)-2] + " " + normalized[len(normalized)-2:]
	}
	c, err := time.Parse("3:04 PM", normalized)
	if err != nil {
		return t, true
	}
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour(), c.Minute(), 0, 0, t.Location()), true
}
