package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/suriya388/backoffice-api/internal/domain/entity"
	"github.com/suriya388/backoffice-api/internal/domain/enum"
	"github.com/suriya388/backoffice-api/internal/domain/repository"
	"github.com/suriya388/backoffice-api/pkg/apperror"
	"github.com/suriya388/backoffice-api/pkg/ledger"
)

// RecordService handles the CRUD lifecycle of every record kind. All totals
// are recomputed from the submitted items on every write; totals supplied by
// the client are ignored.
type RecordService struct {
	recordRepo repository.RecordRepository
}

// NewRecordService creates a new record service
func NewRecordService(recordRepo repository.RecordRepository) *RecordService {
	return &RecordService{recordRepo: recordRepo}
}

// ItemInput is one submitted line item
type ItemInput struct {
	Variety    string
	Grade      string
	Label      string
	Quantity   float64
	UnitPrice  float64
	SubWeights []float64
}

// DeductionInput is one submitted deduction. Itemized deductions carry
// Quantity and UnitPrice and their amount is recomputed; flat deductions
// carry Amount only. Extra marks rows for the voucher's second deduction
// block.
type DeductionInput struct {
	Label     string
	Quantity  *float64
	UnitPrice *float64
	Amount    float64
	Extra     bool
}

// RecordInput is the kind-agnostic create/update payload
type RecordInput struct {
	Counterparty string
	Date         time.Time
	PayMethod    string

	PeriodStart *time.Time
	PeriodEnd   *time.Time

	PayType       enum.PayType
	Period        string
	WorkDays      *float64
	PricePerDay   *float64
	MonthlySalary *float64
	Months        *float64

	Items      []ItemInput
	Deductions []DeductionInput
}

// Create validates the input, computes totals and persists a new record with
// a freshly issued voucher number.
func (s *RecordService) Create(ctx context.Context, kind enum.RecordKind, input *RecordInput) (*entity.Record, error) {
	record, err := s.buildRecord(kind, input)
	if err != nil {
		return nil, err
	}
	record.ID = uuid.New()
	record.VoucherNo = newVoucherNo(kind, record.ID)

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetByID fetches one record of a kind with its children
func (s *RecordService) GetByID(ctx context.Context, kind enum.RecordKind, id uuid.UUID) (*entity.Record, error) {
	record, err := s.recordRepo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.ErrNotFound
	}
	return record, nil
}

// List returns all records of a kind, newest first
func (s *RecordService) List(ctx context.Context, kind enum.RecordKind) ([]entity.Record, error) {
	return s.recordRepo.List(ctx, kind)
}

// Update replaces a record's content wholesale, keeping its identity and
// voucher number, and recomputes all totals.
func (s *RecordService) Update(ctx context.Context, kind enum.RecordKind, id uuid.UUID, input *RecordInput) (*entity.Record, error) {
	existing, err := s.recordRepo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.ErrNotFound
	}

	record, err := s.buildRecord(kind, input)
	if err != nil {
		return nil, err
	}
	record.ID = existing.ID
	record.VoucherNo = existing.VoucherNo
	record.CreatedAt = existing.CreatedAt

	if err := s.recordRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, kind, id)
}

// Delete removes a record and its children
func (s *RecordService) Delete(ctx context.Context, kind enum.RecordKind, id uuid.UUID) error {
	existing, err := s.recordRepo.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.ErrNotFound
	}
	return s.recordRepo.Delete(ctx, kind, id)
}

// buildRecord validates and totals the input into a persistable record. It is
// also used for ad-hoc PDF generation, where the record is rendered without
// ever being stored.
func (s *RecordService) buildRecord(kind enum.RecordKind, input *RecordInput) (*entity.Record, error) {
	if err := validateInput(kind, input); err != nil {
		return nil, err
	}

	items := input.Items
	if kind == enum.KindPayroll {
		items = payrollItems(input)
	}

	lines := make([]ledger.Line, len(items))
	for i, it := range items {
		lines[i] = ledger.Line{Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	agg, err := ledger.AggregateLines(lines)
	if err != nil {
		return nil, toAppError(err)
	}

	deductions, dedTotal, err := buildDeductions(input.Deductions)
	if err != nil {
		return nil, err
	}
	totalDeduction, net := ledger.ApplyDeductions(agg.Gross, dedTotal)

	record := &entity.Record{
		Kind:         kind,
		Counterparty: input.Counterparty,
		Date:         input.Date,
		PayMethod:    input.PayMethod,
		PeriodStart:  input.PeriodStart,
		PeriodEnd:    input.PeriodEnd,

		PayType:       input.PayType,
		Period:        input.Period,
		WorkDays:      input.WorkDays,
		PricePerDay:   input.PricePerDay,
		MonthlySalary: input.MonthlySalary,
		Months:        input.Months,

		TotalAmount:    agg.Gross,
		TotalDeduction: totalDeduction,
		NetAmount:      net,
		Deductions:     deductions,
	}

	record.Items = make([]entity.LineItem, len(items))
	for i, it := range items {
		record.Items[i] = entity.LineItem{
			Position:   i,
			Variety:    it.Variety,
			Grade:      it.Grade,
			Label:      it.Label,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			SubWeights: it.SubWeights,
		}
	}

	return record, nil
}

// buildDeductions recomputes itemized deduction amounts and validates every
// figure, returning the rows plus the ledger deductions used for the net.
func buildDeductions(inputs []DeductionInput) ([]entity.Deduction, []ledger.Deduction, error) {
	rows := make([]entity.Deduction, len(inputs))
	dedLines := make([]ledger.Line, len(inputs))
	for i, d := range inputs {
		if d.Quantity != nil && d.UnitPrice != nil {
			dedLines[i] = ledger.Line{Quantity: *d.Quantity, UnitPrice: *d.UnitPrice}
		} else {
			dedLines[i] = ledger.Line{Quantity: 1, UnitPrice: d.Amount}
		}
	}
	agg, err := ledger.AggregateLines(dedLines)
	if err != nil {
		return nil, nil, toAppError(renameItemsField(err, "deductions"))
	}

	ledgerDeds := make([]ledger.Deduction, len(inputs))
	for i, d := range inputs {
		rows[i] = entity.Deduction{
			Position:  i,
			Label:     d.Label,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Amount:    agg.Subtotals[i],
			Extra:     d.Extra,
		}
		ledgerDeds[i] = ledger.Deduction{Label: d.Label, Amount: agg.Subtotals[i]}
	}
	return rows, ledgerDeds, nil
}

// payrollItems derives the single wage line from the pay fields so the
// aggregator and layout see payroll like any other itemized record.
func payrollItems(input *RecordInput) []ItemInput {
	if input.PayType == enum.PayTypeMonthly {
		return []ItemInput{{
			Label:     string(enum.PayTypeMonthly),
			Quantity:  deref(input.Months),
			UnitPrice: deref(input.MonthlySalary),
		}}
	}
	return []ItemInput{{
		Label:     string(enum.PayTypeDaily),
		Quantity:  deref(input.WorkDays),
		UnitPrice: deref(input.PricePerDay),
	}}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func validateInput(kind enum.RecordKind, input *RecordInput) error {
	var fieldErrors []apperror.FieldError
	add := func(field, msg string) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: field, Message: msg})
	}

	if input.Date.IsZero() {
		add("date", "is required")
	}

	switch kind {
	case enum.KindPurchaseBill, enum.KindSellBill, enum.KindCuttingBill, enum.KindPayroll:
		if input.Counterparty == "" {
			add("counterparty", "is required")
		}
	}

	switch kind {
	case enum.KindCuttingBill:
		if input.PeriodStart == nil || input.PeriodEnd == nil {
			add("period", "start and end dates are required")
		}
	case enum.KindPayroll:
		validatePayroll(input, add)
	}

	if kind != enum.KindPayroll && len(input.Items) == 0 {
		add("items", "at least one item is required")
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// validatePayroll enforces that exactly one wage model is used: daily
// (work days and price per day) or monthly (salary and months).
func validatePayroll(input *RecordInput, add func(field, msg string)) {
	switch input.PayType {
	case enum.PayTypeDaily:
		if input.WorkDays == nil || input.PricePerDay == nil {
			add("workDays", "daily payroll requires workDays and pricePerDay")
		}
		if input.MonthlySalary != nil || input.Months != nil {
			add("monthlySalary", "daily payroll must not carry monthly fields")
		}
	case enum.PayTypeMonthly:
		if input.MonthlySalary == nil || input.Months == nil {
			add("monthlySalary", "monthly payroll requires monthlySalary and months")
		}
		if input.WorkDays != nil || input.PricePerDay != nil {
			add("workDays", "monthly payroll must not carry daily fields")
		}
	default:
		add("payType", "must be รายวัน or รายเดือน")
	}
}

// newVoucherNo derives a human-readable voucher number from the record's
// identity, e.g. PB-1a2b3c4d.
func newVoucherNo(kind enum.RecordKind, id uuid.UUID) string {
	return kind.VoucherPrefix() + "-" + strings.Split(id.String(), "-")[0]
}
