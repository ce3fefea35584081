package preset

import (
	"time"

	"github.com/mikocoral05/viscera/constants"
	"github.com/mikocoral05/viscera/internal/engine"
)

// MobileReceiptRecord covers wallet transfer receipts, local (GCash, Maya,
// Palawan, ShopeePay, GrabPay) and international (PayPal, Stripe, Wise,
// Venmo, remittance services).
type MobileReceiptRecord struct {
	Category  constants.Category `json:"category"`
	Platform  string             `json:"platform"`
	Amount    *float64           `json:"amount,omitempty"`
	Date      *time.Time         `json:"date,omitempty"`
	Reference *string            `json:"reference,omitempty"`
	Phone     *string            `json:"phone,omitempty"`
	Receiver  *string            `json:"receiver,omitempty"`
	Sender    *string            `json:"sender,omitempty"`
}

func (r MobileReceiptRecord) Tag() constants.Category { return r.Category }

var (
	mobileDates  = engine.NewDateNormalizer(nil)
	mobileAmount = engine.NewAmountMatcher([]string{
		"Total Amount Sent", "You have sent", "Transferred", "Amount", "Paid", "Total",
	}, true)
	mobileReference = engine.NewReferenceMatcher([]string{
		"Reference", "Ref", "Trans ID", "Transaction", "Confirmation",
	})
)

// ParseMobileReceipt extracts the mobile-wallet field set from text.
func ParseMobileReceipt(text string) Record {
	rec := MobileReceiptRecord{
		Category: constants.MobileReceipt,
		Platform: engine.DetectPlatform(text),
	}
	if a, ok := mobileAmount.Match(text); ok {
		rec.Amount = &a.Value
	}
	if t, ok := mobileDates.Parse(text); ok {
		rec.Date = &t
	}
	if ref, ok := mobileReference.Match(text); ok {
		rec.Reference = &ref
	}
	if p, ok := engine.MatchPhone(text); ok {
		rec.Phone = &p
	}
	if r, ok := engine.ExtractReceiver(text); ok {
		rec.Receiver = &r
	}
	if s, ok := engine.ExtractSender(text); ok {
		rec.Sender = &s
	}
	return rec
}
