package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikocoral05/viscera/constants"
)

func TestLookup(t *testing.T) {
	for _, cat := range []constants.Category{
		constants.MobileReceipt,
		constants.BankReceipt,
		constants.IDCard,
		constants.InvoiceOrBill,
		constants.TransactionScreenshot,
	} {
		fn, ok := Lookup(cat)
		require.True(t, ok, "category %s should be registered", cat)
		require.NotNil(t, fn)
		assert.Equal(t, cat, fn("").Tag())
	}

	_, ok := Lookup(constants.GenericText)
	assert.False(t, ok, "generic text has no preset")
	_, ok = Lookup(constants.Category("bogus"))
	assert.False(t, ok)
}

func TestNamesFollowCanonicalOrder(t *testing.T) {
	assert.Equal(t, []string{
		string(constants.MobileReceipt),
		string(constants.BankReceipt),
		string(constants.IDCard),
		string(constants.InvoiceOrBill),
		string(constants.TransactionScreenshot),
	}, Names())
}

// Parsing text with no recognizable fields must leave every optional field
// absent rather than zero-valued.
func TestParseEmptyTextLeavesFieldsAbsent(t *testing.T) {
	const noise = "lorem ipsum dolor sit amet"

	t.Run("mobile receipt", func(t *testing.T) {
		rec := ParseMobileReceipt(noise).(MobileReceiptRecord)
		assert.Equal(t, constants.MobileReceipt, rec.Category)
		assert.Equal(t, "unknown", rec.Platform)
		assert.Nil(t, rec.Amount)
		assert.Nil(t, rec.Date)
		assert.Nil(t, rec.Reference)
		assert.Nil(t, rec.Phone)
		assert.Nil(t, rec.Receiver)
		assert.Nil(t, rec.Sender)
	})
	t.Run("bank receipt", func(t *testing.T) {
		rec := ParseBankReceipt(noise).(BankReceiptRecord)
		assert.Equal(t, constants.BankReceipt, rec.Category)
		assert.Nil(t, rec.Reference)
		assert.Nil(t, rec.Sender)
		assert.Nil(t, rec.Receiver)
		assert.Nil(t, rec.AccountNo)
		assert.Nil(t, rec.Amount)
		assert.Nil(t, rec.Currency)
		assert.Nil(t, rec.Date)
		assert.Nil(t, rec.Remarks)
	})
	t.Run("id card", func(t *testing.T) {
		rec := ParseIDCard(noise).(IDCardRecord)
		assert.Equal(t, constants.IDCard, rec.Category)
		assert.Nil(t, rec.FullName)
		assert.Nil(t, rec.IDNumber)
		assert.Nil(t, rec.BirthDate)
		assert.Nil(t, rec.Gender)
		assert.Nil(t, rec.Nationality)
		assert.Nil(t, rec.Address)
	})
	t.Run("invoice or bill", func(t *testing.T) {
		rec := ParseInvoiceOrBill(noise).(InvoiceRecord)
		assert.Equal(t, constants.InvoiceOrBill, rec.Category)
		assert.Nil(t, rec.InvoiceNo)
		assert.Nil(t, rec.TotalAmount)
		assert.Nil(t, rec.Currency)
		assert.Nil(t, rec.DueDate)
		assert.Nil(t, rec.BillDate)
		assert.Nil(t, rec.Vendor)
		assert.Nil(t, rec.Client)
	})
	t.Run("transaction screenshot", func(t *testing.T) {
		rec := ParseTransactionScreenshot(noise).(TransactionScreenshotRecord)
		assert.Equal(t, constants.TransactionScreenshot, rec.Category)
		assert.Nil(t, rec.Balance)
		assert.Nil(t, rec.AccountNo)
		assert.Nil(t, rec.TransactionDate)
	})
}
