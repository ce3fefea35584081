package preset

import (
	"regexp"
	"strings"
	"time"

	"github.com/mikocoral05/viscera/constants"
	"github.com/mikocoral05/viscera/internal/engine"
)

// InvoiceRecord covers freelance invoices, utility bills, eCommerce receipts
// and corporate invoices.
type InvoiceRecord struct {
	Category    constants.Category `json:"category"`
	InvoiceNo   *string            `json:"invoice_no,omitempty"`
	TotalAmount *float64           `json:"total_amount,omitempty"`
	Currency    *string            `json:"currency,omitempty"`
	DueDate     *time.Time         `json:"due_date,omitempty"`
	BillDate    *time.Time         `json:"bill_date,omitempty"`
	Vendor      *string            `json:"vendor,omitempty"`
	Client      *string            `json:"client,omitempty"`
}

func (r InvoiceRecord) Tag() constants.Category { return r.Category }

var (
	invoiceDates = engine.NewDateNormalizer(nil)
	invoiceTotal = engine.NewAmountMatcher([]string{"Total Amount", "Amount Due", "Grand Total"}, false)

	invoiceNo      = regexp.MustCompile(`(?i)(?:Invoice|Bill)\s*(?:No\.?|Number|#)?\s*[:\-]?\s*([\w\-]+)`)
	invoiceDueRaw  = regexp.MustCompile(`(?i)(?:Due\s*Date|Pay\s*By)\s*[:\-]?\s*([\w ,/\-]+)`)
	invoiceBillRaw = regexp.MustCompile(`(?i)(?:Date\s*Issued|Bill\s*Date|Invoice\s*Date)\s*[:\-]?\s*([\w ,/\-]+)`)
	invoiceVendor  = regexp.MustCompile(`(?i)(?:From|Vendor|Supplier)\s*[:\-]?\s*(.+)`)
	invoiceClient  = regexp.MustCompile(`(?i)(?:To|Client|Customer|Billed\s*To)\s*[:\-]?\s*(.+)`)
)

// ParseInvoiceOrBill extracts the invoice/bill field set from text.
func ParseInvoiceOrBill(text string) Record {
	rec := InvoiceRecord{Category: constants.InvoiceOrBill}

	if m := invoiceNo.FindStringSubmatch(text); m != nil {
		no := strings.TrimSpace(m[1])
		rec.InvoiceNo = &no
	}
	if a, ok := invoiceTotal.Match(text); ok {
		rec.TotalAmount = &a.Value
		if a.Symbol != "" {
			rec.Currency = &a.Symbol
		}
	}
	if m := invoiceDueRaw.FindStringSubmatch(text); m != nil {
		if t, ok := invoiceDates.ParseLoose(m[1]); ok {
			rec.DueDate = &t
		}
	}
	if m := invoiceBillRaw.FindStringSubmatch(text); m != nil {
		if t, ok := invoiceDates.ParseLoose(m[1]); ok {
			rec.BillDate = &t
		}
	}
	if m := invoiceVendor.FindStringSubmatch(text); m != nil {
		vendor := strings.TrimSpace(m[1])
		if vendor != "" {
			rec.Vendor = &vendor
		}
	}
	if m := invoiceClient.FindStringSubmatch(text); m != nil {
		client := strings.TrimSpace(m[1])
		if client != "" {
			rec.Client = &client
		}
	}
	return rec
}
