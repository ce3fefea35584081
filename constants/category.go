package constants

import (
	"strings"
)

// Category tags a document with the preset used to parse it.
type Category string

const (
	MobileReceipt         Category = "mobile_receipt"
	BankReceipt           Category = "bank_receipt"
	IDCard                Category = "id_card"
	InvoiceOrBill         Category = "invoice_or_bill"
	TransactionScreenshot Category = "transaction_screenshot"
	GenericText           Category = "generic_text"
)

var allCategories = []Category{
	MobileReceipt,
	BankReceipt,
	IDCard,
	InvoiceOrBill,
	TransactionScreenshot,
	GenericText,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-form user input to a known category tag.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return GenericText, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"receipt":      MobileReceipt,
		"wallet":       MobileReceipt,
		"gcash":        MobileReceipt,
		"deposit slip": BankReceipt,
		"bank":         BankReceipt,
		"id":           IDCard,
		"license":      IDCard,
		"passport":     IDCard,
		"invoice":      InvoiceOrBill,
		"bill":         InvoiceOrBill,
		"screenshot":   TransactionScreenshot,
		"balance":      TransactionScreenshot,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return GenericText, false
}
