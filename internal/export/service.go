// Package export renders stored extraction results as an XLSX workbook.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/mikocoral05/viscera/internal/common"
	"github.com/mikocoral05/viscera/internal/store"
)

// Service is a tiny façade over the store that produces XLSX bytes.
type Service struct {
	store  *store.Store
	logger *slog.Logger
}

func NewService(st *store.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: st, logger: logger}
}

// ExportXLSX returns an XLSX workbook (as bytes) covering every stored job.
func (s *Service) ExportXLSX(ctx context.Context) ([]byte, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, common.WrapError(err, "query extractions")
	}
	return RenderXLSX(rows)
}

// RenderXLSX builds the workbook from already-loaded rows.
func RenderXLSX(rows []store.Row) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Source File",
		"Category",
		"Status",
		"Confidence Avg",
		"Amount",
		"Date",
		"Reference",
		"Counterparty",
		"Details (JSON)",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowIdx := 2
	for _, r := range rows {
		summary := summarize(r.ParsedJSON)

		values := []any{
			r.SourcePath,
			r.Category,
			string(r.Status),
			floatOrBlank(r.ConfidenceAvg),
			summary.amount,
			summary.date,
			summary.reference,
			summary.counterparty,
			string(r.ParsedJSON),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowIdx)
			_ = f.SetCellValue(sheet, cell, v)
		}
		rowIdx++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

type recordSummary struct {
	amount       any
	date         string
	reference    string
	counterparty string
}

// summarize probes the serialized record for the recurring field semantics
// (amount, date, identifier, counterparty) without caring which category
// produced it.
func summarize(parsedJSON []byte) recordSummary {
	var sum recordSummary
	if len(parsedJSON) == 0 {
		return sum
	}
	var m map[string]any
	if err := json.Unmarshal(parsedJSON, &m); err != nil {
		return sum
	}
	for _, key := range []string{"amount", "total_amount", "balance"} {
		if v, ok := m[key]; ok {
			sum.amount = v
			break
		}
	}
	for _, key := range []string{"date", "due_date", "transaction_date", "birth_date"} {
		if v, ok := m[key].(string); ok {
			sum.date = v
			break
		}
	}
	for _, key := range []string{"reference", "invoice_no", "id_number", "account_no"} {
		if v, ok := m[key].(string); ok {
			sum.reference = v
			break
		}
	}
	for _, key := range []string{"receiver", "client", "full_name", "sender", "vendor"} {
		if v, ok := m[key].(string); ok {
			sum.counterparty = v
			break
		}
	}
	return sum
}

func floatOrBlank(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
