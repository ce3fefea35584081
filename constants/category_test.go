package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Category
		wantOK bool
	}{
		{"exact tag", "mobile_receipt", MobileReceipt, true},
		{"uppercase tag", "BANK_RECEIPT", BankReceipt, true},
		{"padded", "  id_card  ", IDCard, true},
		{"synonym wallet", "wallet", MobileReceipt, true},
		{"synonym gcash", "gcash", MobileReceipt, true},
		{"synonym bank", "bank", BankReceipt, true},
		{"synonym passport", "passport", IDCard, true},
		{"synonym bill", "bill", InvoiceOrBill, true},
		{"synonym balance", "balance", TransactionScreenshot, true},
		{"empty", "", GenericText, false},
		{"unknown", "receiptzilla", GenericText, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Canonicalize(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsStringSlice(t *testing.T) {
	got := AsStringSlice()
	assert.Equal(t, []string{
		"mobile_receipt",
		"bank_receipt",
		"id_card",
		"invoice_or_bill",
		"transaction_screenshot",
		"generic_text",
	}, got)
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "jpg", NormalizeExt(".JPG"))
	assert.Equal(t, "png", NormalizeExt("png"))
	assert.True(t, IsImageExt("heic"))
	assert.False(t, IsImageExt("txt"))
	assert.True(t, IsHEICExt("heif"))
	assert.False(t, IsHEICExt("jpg"))
}
