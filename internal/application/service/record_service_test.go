package service

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suriya388/backoffice-api/internal/domain/entity"
	"github.com/suriya388/backoffice-api/internal/domain/enum"
	"github.com/suriya388/backoffice-api/pkg/apperror"
)

// fakeRecordRepo is an in-memory RecordRepository for service tests.
type fakeRecordRepo struct {
	records map[uuid.UUID]*entity.Record
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[uuid.UUID]*entity.Record)}
}

func (f *fakeRecordRepo) Create(_ context.Context, record *entity.Record) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	cp := *record
	f.records[record.ID] = &cp
	return nil
}

func (f *fakeRecordRepo) GetByID(_ context.Context, kind enum.RecordKind, id uuid.UUID) (*entity.Record, error) {
	rec, ok := f.records[id]
	if !ok || rec.Kind != kind {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeRecordRepo) List(_ context.Context, kind enum.RecordKind) ([]entity.Record, error) {
	var out []entity.Record
	for _, rec := range f.records {
		if rec.Kind == kind {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeRecordRepo) Update(_ context.Context, record *entity.Record) error {
	cp := *record
	f.records[record.ID] = &cp
	return nil
}

func (f *fakeRecordRepo) Delete(_ context.Context, kind enum.RecordKind, id uuid.UUID) error {
	rec, ok := f.records[id]
	if ok && rec.Kind == kind {
		delete(f.records, id)
	}
	return nil
}

func (f *fakeRecordRepo) ListItems(_ context.Context, kind enum.RecordKind) ([]entity.LineItem, map[uuid.UUID]entity.Record, error) {
	var items []entity.LineItem
	byID := make(map[uuid.UUID]entity.Record)
	for _, rec := range f.records {
		if rec.Kind != kind {
			continue
		}
		byID[rec.ID] = *rec
		for _, it := range rec.Items {
			it.RecordID = rec.ID
			items = append(items, it)
		}
	}
	return items, byID, nil
}

func billDate() time.Time {
	return time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)
}

func purchaseInput() *RecordInput {
	return &RecordInput{
		Counterparty: "สมชาย",
		Date:         billDate(),
		Items: []ItemInput{
			{Variety: "หมอนทอง", Grade: "A", Quantity: 350, UnitPrice: 120, SubWeights: []float64{18, 17.5}},
			{Variety: "ชะนี", Grade: "B", Quantity: 100, UnitPrice: 80},
		},
		Deductions: []DeductionInput{
			{Label: "เบิกล่วงหน้า", Amount: 5000},
		},
	}
}

func TestCreateComputesTotals(t *testing.T) {
	svc := NewRecordService(newFakeRecordRepo())

	record, err := svc.Create(context.Background(), enum.KindPurchaseBill, purchaseInput())
	require.NoError(t, err)

	assert.Equal(t, 350*120.0+100*80, record.TotalAmount)
	assert.Equal(t, 5000.0, record.TotalDeduction)
	assert.Equal(t, record.TotalAmount-5000, record.NetAmount)

	require.Len(t, record.Items, 2)
	assert.Equal(t, 0, record.Items[0].Position)
	assert.Equal(t, 1, record.Items[1].Position)
	assert.Equal(t, []float64{18, 17.5}, record.Items[0].SubWeights)

	assert.True(t, strings.HasPrefix(record.VoucherNo, "PB-"), "voucher no %q", record.VoucherNo)
	assert.Len(t, record.VoucherNo, len("PB-")+8)
}

func TestCreateRejectsNegativeQuantity(t *testing.T) {
	svc := NewRecordService(newFakeRecordRepo())

	input := purchaseInput()
	input.Items[1].Quantity = -5

	_, err := svc.Create(context.Background(), enum.KindPurchaseBill, input)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "items[1].quantity", appErr.Errors[0].Field)
}

func TestCreateRejectsBadDeduction(t *testing.T) {
	svc := NewRecordService(newFakeRecordRepo())

	input := purchaseInput()
	input.Deductions[0].Amount = -100

	_, err := svc.Create(context.Background(), enum.KindPurchaseBill, input)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "deductions[0].unitPrice", appErr.Errors[0].Field)
}

func TestCreateRequiresCounterpartyAndItems(t *testing.T) {
	svc := NewRecordService(newFakeRecordRepo())

	_, err := svc.Create(context.Background(), enum.KindPurchaseBill, &RecordInput{Date: billDate()})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)

	fields := make([]string, len(appErr.Errors))
	for i, fe := range appErr.Errors {
		fields[i] = fe.Field
	}
	assert.Contains(t, fields, "counterparty")
	assert.Contains(t, fields, "items")
}

func TestCreateItemizedDeductionAmountRecomputed(t *testing.T) {
	svc := NewRecordService(newFakeRecordRepo())

	qty, price := 5.0, 400.0
	input := purchaseInput()
	input.Deductions = []DeductionInput{
		{Label: "ค่าแรงลูกทีม", Quantity: &qty, UnitPrice: &price, Amount: 999999},
	}

	record, err := svc.Create(context.Background(), enum.KindPurchaseBill, input)
	require.NoError(t, err)

	// Submitted amount is ignored for itemized rows.
	require.Len(t, record.Deductions, 1)
	assert.Equal(t, 2000.0, record.Deductions[0].Amount)
	assert.Equal(t, 2000.0, record.TotalDeduction)
}

func TestCreateKeepsExtraDeductionFlag(t *testing.T) {
	svc := NewRecordService(newFakeRecordRepo())

	input := purchaseInput()
	input.Deductions = []DeductionInput{
		{Label: "เบิกล่วงหน้า", Amount: 1000},
		{Label: "ค่าน้ำมัน", Amount: 300, Extra: true},
	}

	record, err := svc.Create(context.Background(), enum.KindPurchaseBill, input)
	require.NoError(t, err)

	require.Len(t, record.Deductions, 2)
	assert.False(t, record.Deductions[0].Extra)
	assert.True(t, record.Deductions[1].Extra)
	assert.Equal(t, 1300.0, record.TotalDeduction)
}

func TestCreatePayrollDaily(t *testing.T) {
	svc := NewRecordService(newFakeRecordRepo())

	days, rate := 26.0, 450.0
	record, err := svc.Create(context.Background(), enum.KindPayroll, &RecordInput{
		Counterparty: "สมหญิง",
		Date:         billDate(),
		PayType:      enum.PayTypeDaily,
		WorkDays:     &days,
		PricePerDay:  &rate,
	})
	require.NoError(t, err)

	assert.Equal(t, 26*450.0, record.TotalAmount)
	require.Len(t, record.Items, 1)
	assert.Equal(t, string(enum.PayTypeDaily), record.Items[0].Label)
}

func TestCreatePayrollRejectsMixedModels(t *testing.T) {
	svc := NewRecordService(newFakeRecordRepo())

	days, rate, salary := 26.0, 450.0, 15000.0
	_, err := svc.Create(context.Background(), enum.KindPayroll, &RecordInput{
		Counterparty:  "สมหญิง",
		Date:          billDate(),
		PayType:       enum.PayTypeDaily,
		WorkDays:      &days,
		PricePerDay:   &rate,
		MonthlySalary: &salary,
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
}

func TestCreatePayrollRequiresPayType(t *testing.T) {
	svc := NewRecordService(newFakeRecordRepo())

	_, err := svc.Create(context.Background(), enum.KindPayroll, &RecordInput{
		Counterparty: "สมหญิง",
		Date:         billDate(),
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
}

func TestCreateCuttingRequiresPeriod(t *testing.T) {
	svc := NewRecordService(newFakeRecordRepo())

	_, err := svc.Create(context.Background(), enum.KindCuttingBill, &RecordInput{
		Counterparty: "สายตัดเหนือ",
		Date:         billDate(),
		Items:        []ItemInput{{Label: "ค่าตัดทุเรียน", Quantity: 900, UnitPrice: 2}},
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "period", appErr.Errors[0].Field)
}

func TestUpdateReplacesChildrenAndKeepsVoucherNo(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewRecordService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, enum.KindPurchaseBill, purchaseInput())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, enum.KindPurchaseBill, created.ID, &RecordInput{
		Counterparty: "สมชาย",
		Date:         billDate(),
		Items:        []ItemInput{{Variety: "ก้านยาว", Grade: "A", Quantity: 40, UnitPrice: 200}},
	})
	require.NoError(t, err)

	assert.Equal(t, created.VoucherNo, updated.VoucherNo)
	assert.Equal(t, created.ID, updated.ID)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "ก้านยาว", updated.Items[0].Variety)
	assert.Empty(t, updated.Deductions)
	assert.Equal(t, 8000.0, updated.TotalAmount)
	assert.Equal(t, 8000.0, updated.NetAmount)
}

func TestUpdateMissingRecord(t *testing.T) {
	svc := NewRecordService(newFakeRecordRepo())

	_, err := svc.Update(context.Background(), enum.KindPurchaseBill, uuid.New(), purchaseInput())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetByIDScopedToKind(t *testing.T) {
	svc := NewRecordService(newFakeRecordRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, enum.KindPurchaseBill, purchaseInput())
	require.NoError(t, err)

	// The same ID is invisible through another kind's lens.
	_, err = svc.GetByID(ctx, enum.KindSellBill, created.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	got, err := svc.GetByID(ctx, enum.KindPurchaseBill, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestDeleteMissingRecord(t *testing.T) {
	svc := NewRecordService(newFakeRecordRepo())

	err := svc.Delete(context.Background(), enum.KindPurchaseBill, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
