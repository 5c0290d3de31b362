package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/suriya388/backoffice-api/internal/domain/entity"
	"github.com/suriya388/backoffice-api/internal/domain/enum"
	"github.com/suriya388/backoffice-api/internal/domain/repository"
	"github.com/suriya388/backoffice-api/pkg/layout"
	"github.com/suriya388/backoffice-api/pkg/ledger"
)

// SummaryService aggregates purchase data for the dashboard summary and the
// spreadsheet report.
type SummaryService struct {
	recordRepo repository.RecordRepository
}

// NewSummaryService creates a new summary service
func NewSummaryService(recordRepo repository.RecordRepository) *SummaryService {
	return &SummaryService{recordRepo: recordRepo}
}

// SummaryOutput is the purchase summary: overall totals plus the four
// groupings the dashboard charts from.
type SummaryOutput struct {
	TotalAmount    float64                   `json:"total_amount"`
	TotalWeight    float64                   `json:"total_weight"`
	ByDate         map[string]ledger.Measure `json:"by_date"`
	ByVariety      map[string]ledger.Measure `json:"by_variety"`
	ByGrade        map[string]ledger.Measure `json:"by_grade"`
	ByVarietyGrade map[string]ledger.Measure `json:"by_variety_grade"`
}

type summaryItem struct {
	item   entity.LineItem
	record entity.Record
}

// Summary folds every purchase-bill line item into per-date, per-variety,
// per-grade and per-variety-and-grade running totals.
func (s *SummaryService) Summary(ctx context.Context) (*SummaryOutput, error) {
	items, records, err := s.recordRepo.ListItems(ctx, enum.KindPurchaseBill)
	if err != nil {
		return nil, err
	}

	joined := make([]summaryItem, 0, len(items))
	for _, it := range items {
		rec, ok := records[it.RecordID]
		if !ok {
			continue
		}
		joined = append(joined, summaryItem{item: it, record: rec})
	}

	measure := func(si summaryItem) ledger.Measure {
		return ledger.Measure{
			Total:  si.item.Quantity * si.item.UnitPrice,
			Weight: si.item.Quantity,
		}
	}

	byDate := ledger.GroupBy(joined, func(si summaryItem) string {
		return si.record.Date.Format("2006-01-02")
	}, measure)
	byVariety := ledger.GroupBy(joined, func(si summaryItem) string {
		return si.item.Variety
	}, measure)
	byGrade := ledger.GroupBy(joined, func(si summaryItem) string {
		return si.item.Grade
	}, measure)
	// The combined key is space-joined ("หมอนทอง A"); existing dashboard
	// consumers key off that exact form.
	byVarietyGrade := ledger.GroupBy(joined, func(si summaryItem) string {
		return si.item.Variety + " " + si.item.Grade
	}, measure)

	out := &SummaryOutput{
		ByDate:         byDate.Map(),
		ByVariety:      byVariety.Map(),
		ByGrade:        byGrade.Map(),
		ByVarietyGrade: byVarietyGrade.Map(),
	}
	for _, si := range joined {
		m := measure(si)
		out.TotalAmount += m.Total
		out.TotalWeight += m.Weight
	}
	return out, nil
}

// PurchaseReportXLSX renders the purchase records as a spreadsheet, one row
// per record with its stored totals.
func (s *SummaryService) PurchaseReportXLSX(ctx context.Context) ([]byte, error) {
	records, err := s.recordRepo.List(ctx, enum.KindPurchaseBill)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Purchases"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	setCell := func(col, row int, v interface{}) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}

	headers := []string{"วันที่", "รหัสบิล", "ผู้ขาย", "จำนวนรายการ", "น้ำหนักรวม (กก.)", "รวมเงิน", "หักเบิก", "คงเหลือ"}
	for i, h := range headers {
		if err := setCell(i+1, 1, h); err != nil {
			return nil, err
		}
	}

	for row, rec := range records {
		var weight float64
		for _, it := range rec.Items {
			weight += it.Quantity
		}
		values := []interface{}{
			layout.ThaiDateShort(rec.Date),
			rec.VoucherNo,
			rec.Counterparty,
			len(rec.Items),
			weight,
			rec.TotalAmount,
			rec.TotalDeduction,
			rec.NetAmount,
		}
		for col, v := range values {
			if err := setCell(col+1, row+2, v); err != nil {
				return nil, err
			}
		}
	}

	// Totals row
	totalRow := len(records) + 2
	if err := setCell(1, totalRow, "รวม"); err != nil {
		return nil, err
	}
	for _, col := range []string{"F", "G", "H"} {
		cell := fmt.Sprintf("%s%d", col, totalRow)
		formula := fmt.Sprintf("SUM(%s2:%s%d)", col, col, totalRow-1)
		if err := f.SetCellFormula(sheet, cell, formula); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
