package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/suriya388/backoffice-api/internal/domain/entity"
	"github.com/suriya388/backoffice-api/internal/domain/enum"
	"github.com/suriya388/backoffice-api/pkg/layout"
	"github.com/suriya388/backoffice-api/pkg/ledger"
	"github.com/suriya388/backoffice-api/pkg/pdfrender"
)

// VoucherService produces the printable PDF for stored records, ad-hoc
// payloads and export invoices.
type VoucherService struct {
	recordService *RecordService
	engine        *layout.Engine
	renderer      *pdfrender.Renderer
}

// NewVoucherService creates a new voucher service
func NewVoucherService(recordService *RecordService, engine *layout.Engine, renderer *pdfrender.Renderer) *VoucherService {
	return &VoucherService{
		recordService: recordService,
		engine:        engine,
		renderer:      renderer,
	}
}

// RecordPDF renders a stored record's voucher. It returns the PDF bytes and
// the download filename.
func (s *VoucherService) RecordPDF(ctx context.Context, kind enum.RecordKind, id uuid.UUID) ([]byte, string, error) {
	record, err := s.recordService.GetByID(ctx, kind, id)
	if err != nil {
		return nil, "", err
	}
	return s.render(recordVoucher(record), kind.Slug()+"-"+record.VoucherNo+".pdf")
}

// AdHocPDF renders a voucher straight from a payload without storing
// anything, for previewing a document before it is saved.
func (s *VoucherService) AdHocPDF(ctx context.Context, kind enum.RecordKind, input *RecordInput) ([]byte, string, error) {
	record, err := s.recordService.buildRecord(kind, input)
	if err != nil {
		return nil, "", err
	}
	record.VoucherNo = kind.VoucherPrefix() + "-DRAFT"
	return s.render(recordVoucher(record), kind.Slug()+".pdf")
}

// ExportItemInput is one export invoice row: boxed fruit priced per kilogram.
type ExportItemInput struct {
	Label        string
	Boxes        float64
	WeightPerBox float64
	PricePerKg   float64
}

// BrandCountInput is one row of the brand-wise box summary.
type BrandCountInput struct {
	Brand string
	Boxes float64
}

// ExportInput is the export invoice payload
type ExportInput struct {
	InvoiceNo   string
	Date        time.Time
	Customer    string
	Destination string
	Items       []ExportItemInput
	Brands      []BrandCountInput
}

// ExportPDF renders the export invoice: a multi-line box-and-weight breakdown
// with an optional brand summary.
func (s *VoucherService) ExportPDF(ctx context.Context, input *ExportInput) ([]byte, string, error) {
	lines := make([]ledger.Line, len(input.Items))
	for i, it := range input.Items {
		lines[i] = ledger.Line{Quantity: it.Boxes * it.WeightPerBox, UnitPrice: it.PricePerKg}
	}
	agg, err := ledger.AggregateLines(lines)
	if err != nil {
		return nil, "", toAppError(err)
	}

	items := make([]layout.Line, len(input.Items))
	for i, it := range input.Items {
		weight := it.Boxes * it.WeightPerBox
		items[i] = layout.Line{
			Label:    fmt.Sprintf("%d. %s", i+1, it.Label),
			Subtotal: agg.Subtotals[i],
			Breakdown: fmt.Sprintf("%s กล่อง × %s กก. = %s กก. × %s บาท = %s บาท",
				layout.Num(it.Boxes), layout.Num(it.WeightPerBox), layout.Num(weight),
				layout.Money(it.PricePerKg), layout.Money(agg.Subtotals[i])),
		}
	}

	v := &layout.Voucher{
		Kind:      layout.KindExport,
		VoucherNo: input.InvoiceNo,
		Date:      input.Date,
		Meta:      exportMeta(input),
		Sections: []layout.Section{
			{Heading: "รายการทุเรียนส่งออก / Export Items:", Items: items},
		},
		Gross: agg.Gross,
		Net:   agg.Gross,
	}

	if len(input.Brands) > 0 {
		v.NoteHeading = "สรุปกล่องตามแบรนด์ / Brand-wise Box Summary:"
		var note bytes.Buffer
		for _, b := range input.Brands {
			fmt.Fprintf(&note, "%s: %s กล่อง\n", b.Brand, layout.Num(b.Boxes))
		}
		v.Note = note.String()
	}

	name := "export-invoice.pdf"
	if input.InvoiceNo != "" {
		name = "export-invoice-" + input.InvoiceNo + ".pdf"
	}
	return s.render(v, name)
}

func (s *VoucherService) render(v *layout.Voucher, filename string) ([]byte, string, error) {
	doc, err := s.engine.Render(v)
	if err != nil {
		return nil, "", toAppError(err)
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(doc, &buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), filename, nil
}

func exportMeta(input *ExportInput) []string {
	meta := make([]string, 0, 3)
	if input.InvoiceNo != "" {
		meta = append(meta, "เลขที่ใบส่งออก / Invoice No: "+input.InvoiceNo)
	}
	if input.Customer != "" {
		meta = append(meta, "ลูกค้า / Customer: "+input.Customer)
	}
	if input.Destination != "" {
		meta = append(meta, "ปลายทาง / Destination: "+input.Destination)
	}
	return meta
}

// recordVoucher maps a persisted record onto the layout value object. Money
// figures come straight from the stored totals.
func recordVoucher(record *entity.Record) *layout.Voucher {
	v := &layout.Voucher{
		Kind:         layout.Kind(record.Kind),
		VoucherNo:    record.VoucherNo,
		Counterparty: record.Counterparty,
		Date:         record.Date,
		PayMethod:    record.PayMethod,

		PayType:       string(record.PayType),
		WorkDays:      deref(record.WorkDays),
		PricePerDay:   deref(record.PricePerDay),
		MonthlySalary: deref(record.MonthlySalary),
		Months:        deref(record.Months),

		Gross:          record.TotalAmount,
		TotalDeduction: record.TotalDeduction,
		Net:            record.NetAmount,
	}
	if record.PeriodStart != nil {
		v.PeriodStart = *record.PeriodStart
	}
	if record.PeriodEnd != nil {
		v.PeriodEnd = *record.PeriodEnd
	}

	v.Items = make([]layout.Line, len(record.Items))
	for i, it := range record.Items {
		v.Items[i] = layout.Line{
			Label:      it.DisplayLabel(),
			SubWeights: it.SubWeights,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			Subtotal:   it.Quantity * it.UnitPrice,
		}
	}

	v.Deductions = make([]layout.DeductionLine, len(record.Deductions))
	for i, d := range record.Deductions {
		v.Deductions[i] = layout.DeductionLine{
			Label:     d.Label,
			Quantity:  deref(d.Quantity),
			UnitPrice: deref(d.UnitPrice),
			Amount:    d.Amount,
			Extra:     d.Extra,
		}
	}

	return v
}
