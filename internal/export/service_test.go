package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mikocoral05/viscera/constants"
	"github.com/mikocoral05/viscera/internal/store"
)

func fptr(v float64) *float64 { return &v }
func sptr(s string) *string   { return &s }

func TestRenderXLSX(t *testing.T) {
	now := time.Now().UTC()
	rows := []store.Row{
		{
			ID:            uuid.New(),
			SourcePath:    "/images/gcash.jpg",
			Category:      string(constants.MobileReceipt),
			Status:        constants.JobStatusDone,
			ConfidenceAvg: fptr(93.5),
			ParsedJSON: []byte(`{"category":"mobile_receipt","platform":"gcash",` +
				`"amount":1500,"reference":"123456789012","receiver":"Juan Dela Cruz",` +
				`"date":"2025-05-14T21:21:00+08:00"}`),
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:         uuid.New(),
			SourcePath: "/images/broken.jpg",
			Status:     constants.JobStatusFailed,
			Error:      sptr("ocr failed: tesseract exited 1"),
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}

	data, err := RenderXLSX(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.NotContains(t, f.GetSheetList(), "Sheet1")

	const sheet = "Extractions"
	got, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, got, 3, "header plus two data rows")

	assert.Equal(t, "Source File", got[0][0])
	assert.Equal(t, "Details (JSON)", got[0][8])

	assert.Equal(t, "/images/gcash.jpg", got[1][0])
	assert.Equal(t, string(constants.MobileReceipt), got[1][1])
	assert.Equal(t, string(constants.JobStatusDone), got[1][2])
	assert.Equal(t, "93.5", got[1][3])
	assert.Equal(t, "1500", got[1][4])
	assert.Equal(t, "2025-05-14T21:21:00+08:00", got[1][5])
	assert.Equal(t, "123456789012", got[1][6])
	assert.Equal(t, "Juan Dela Cruz", got[1][7])

	assert.Equal(t, "/images/broken.jpg", got[2][0])
	assert.Equal(t, string(constants.JobStatusFailed), got[2][2])
}

func TestExportXLSXRoundTripsThroughStore(t *testing.T) {
	st, err := store.Open(":memory:", nil)
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	id := uuid.New()
	require.NoError(t, st.EnqueueJob(ctx, id, "/images/a.jpg", constants.BankReceipt))
	require.NoError(t, st.FinishSuccess(ctx, id, fptr(88), []byte(`{"category":"bank_receipt"}`)))

	data, err := NewService(st, nil).ExportXLSX(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Extractions")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "/images/a.jpg", got[1][0])
}

func TestSummarizeFieldProbing(t *testing.T) {
	tests := []struct {
		name string
		json string
		want recordSummary
	}{
		{
			name: "invoice fields",
			json: `{"category":"invoice_or_bill","total_amount":2350.75,"due_date":"2025-05-31T00:00:00+08:00","invoice_no":"INV-001","client":"Acme Corp"}`,
			want: recordSummary{amount: 2350.75, date: "2025-05-31T00:00:00+08:00", reference: "INV-001", counterparty: "Acme Corp"},
		},
		{
			name: "screenshot fields",
			json: `{"category":"transaction_screenshot","balance":10250.5,"account_no":"1234-5678"}`,
			want: recordSummary{amount: 10250.5, reference: "1234-5678"},
		},
		{
			name: "empty",
			json: "",
			want: recordSummary{},
		},
		{
			name: "invalid json",
			json: "{",
			want: recordSummary{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, summarize([]byte(tt.json)))
		})
	}
}
