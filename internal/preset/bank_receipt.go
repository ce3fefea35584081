package preset

import (
	"regexp"
	"strings"
	"time"

	"github.com/mikocoral05/viscera/constants"
	"github.com/mikocoral05/viscera/internal/engine"
)

// BankReceiptRecord covers deposit and transfer slips issued at the counter
// or by an ATM.
type BankReceiptRecord struct {
	Category  constants.Category `json:"category"`
	Reference *string            `json:"reference,omitempty"`
	Sender    *string            `json:"sender,omitempty"`
	Receiver  *string            `json:"receiver,omitempty"`
	AccountNo *string            `json:"account_no,omitempty"`
	Amount    *float64           `json:"amount,omitempty"`
	Currency  *string            `json:"currency,omitempty"`
	Date      *time.Time         `json:"date,omitempty"`
	Remarks   *string            `json:"remarks,omitempty"`
}

func (r BankReceiptRecord) Tag() constants.Category { return r.Category }

var (
	bankDates  = engine.NewDateNormalizer(nil)
	bankAmount = engine.NewAmountMatcher([]string{"Amount", "Deposit"}, false)
	bankRef    = engine.NewReferenceMatcher([]string{"Reference", "Ref", "Trans ID", "Transaction"})

	bankAccountNo = regexp.MustCompile(`(?i)(?:Account No|Acct\.?\s*#?)\s*:?\s*([\d\-]+)`)
	bankDepositor = regexp.MustCompile(`(?i)(?:Depositor|Sender)\s*[:\-]?\s*(.+)`)
	bankDateRaw   = regexp.MustCompile(`(?i)(?:Transaction\s+Date|Date)\s*:?\s*([A-Za-z]{3,9} \d{1,2},? \d{4}[^\n]*|\d{4}[-/]\d{1,2}[-/]\d{1,2}[^\n]*)`)
	bankRemarks   = regexp.MustCompile(`(?i)(?:Remarks?|Notes?|Memo)\s*[:\-]?\s*(.+)`)
)

// ParseBankReceipt extracts the bank-receipt field set from text.
func ParseBankReceipt(text string) Record {
	rec := BankReceiptRecord{Category: constants.BankReceipt}

	if ref, ok := bankRef.Match(text); ok {
		rec.Reference = &ref
	}
	if m := bankDepositor.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		if name != "" {
			rec.Sender = &name
		}
	}
	if r, ok := engine.ExtractReceiver(text); ok {
		rec.Receiver = &r
	}
	if m := bankAccountNo.FindStringSubmatch(text); m != nil {
		acct := strings.TrimSpace(m[1])
		rec.AccountNo = &acct
	}
	if a, ok := bankAmount.Match(text); ok {
		rec.Amount = &a.Value
		if a.Symbol != "" {
			rec.Currency = &a.Symbol
		}
	}
	if m := bankDateRaw.FindStringSubmatch(text); m != nil {
		if t, ok := bankDates.ParseLoose(m[1]); ok {
			rec.Date = &t
		}
	}
	if m := bankRemarks.FindStringSubmatch(text); m != nil {
		remarks := strings.TrimSpace(m[1])
		if remarks != "" {
			rec.Remarks = &remarks
		}
	}
	return rec
}
