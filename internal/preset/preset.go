// Package preset holds the per-category field extractors. Each preset is a
// pure function from recognized text to a typed record; optional fields are
// pointers so absence stays distinct from zero or empty.
package preset

import (
	"github.com/mikocoral05/viscera/constants"
)

// Record is a structured, category-tagged field set produced by a preset.
type Record interface {
	Tag() constants.Category
}

// ParseFunc parses recognized text into a Record. Implementations never fail:
// a field whose pattern does not match is left absent.
type ParseFunc func(text string) Record

// registry is populated once at init and read-only afterwards, so it is safe
// to share across concurrent pipeline invocations.
var registry = map[constants.Category]ParseFunc{
	constants.MobileReceipt:         ParseMobileReceipt,
	constants.BankReceipt:           ParseBankReceipt,
	constants.IDCard:                ParseIDCard,
	constants.InvoiceOrBill:         ParseInvoiceOrBill,
	constants.TransactionScreenshot: ParseTransactionScreenshot,
}

// Lookup returns the parser registered for cat.
func Lookup(cat constants.Category) (ParseFunc, bool) {
	fn, ok := registry[cat]
	return fn, ok
}

// Names lists the registered category names in their canonical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, name := range constants.AsStringSlice() {
		if _, ok := registry[constants.Category(name)]; ok {
			names = append(names, name)
		}
	}
	return names
}
