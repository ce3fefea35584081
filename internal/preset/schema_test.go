package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikocoral05/viscera/constants"
)

func TestBuildRecordSchema(t *testing.T) {
	for _, cat := range []constants.Category{
		constants.MobileReceipt,
		constants.BankReceipt,
		constants.IDCard,
		constants.InvoiceOrBill,
		constants.TransactionScreenshot,
	} {
		schema, ok := BuildRecordSchema(cat)
		require.True(t, ok, "category %s should have a schema", cat)
		assert.Equal(t, "object", schema["type"])
		assert.Equal(t, false, schema["additionalProperties"])

		props, isMap := schema["properties"].(map[string]any)
		require.True(t, isMap)
		assert.Contains(t, props, "category")
	}

	_, ok := BuildRecordSchema(constants.GenericText)
	assert.False(t, ok)
}

func TestValidateRecordAcceptsParserOutput(t *testing.T) {
	texts := map[constants.Category]string{
		constants.MobileReceipt: "GCash\nYou have sent ₱1,500.00\nTo: Juan Dela Cruz\n" +
			"Ref No. 123456789012\nMay 14, 2025 9:21 PM",
		constants.BankReceipt:           "Depositor: Maria Santos\nAmount ₱5,000.00\nRef: 987654321001",
		constants.IDCard:                "Name: Juan Dela Cruz\nSSS 34-5678901-2\nSex: M",
		constants.InvoiceOrBill:         "Invoice No: INV-001234\nGrand Total $99.95",
		constants.TransactionScreenshot: "Balance ₱10,250.50\nMay 14, 2025",
	}
	for cat, text := range texts {
		parse, ok := Lookup(cat)
		require.True(t, ok)
		rec := parse(text)
		assert.NoError(t, ValidateRecord(rec), "category %s", cat)
	}
}

func TestValidateRecordEmptyParseStillValid(t *testing.T) {
	// A record whose optional fields are all absent is still schema-valid.
	for _, cat := range []constants.Category{
		constants.MobileReceipt,
		constants.BankReceipt,
		constants.IDCard,
		constants.InvoiceOrBill,
		constants.TransactionScreenshot,
	} {
		parse, ok := Lookup(cat)
		require.True(t, ok)
		assert.NoError(t, ValidateRecord(parse("")), "category %s", cat)
	}
}

func TestValidateRecordRejectsWrongCategoryTag(t *testing.T) {
	rec := MobileReceiptRecord{Category: constants.BankReceipt, Platform: "gcash"}
	// The bank schema has no "platform" property and additionalProperties is
	// false, so the mismatch surfaces as a validation error.
	assert.Error(t, ValidateRecord(rec))
}
