package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suriya388/backoffice-api/internal/domain/enum"
	"github.com/suriya388/backoffice-api/pkg/apperror"
)

func f(v float64) *float64 { return &v }

func TestToInputResolvesAliases(t *testing.T) {
	req := &RecordRequest{
		Seller: "สมชาย",
		Date:   "2025-08-15",
		Items: []RecordItemRequest{
			{Variety: "หมอนทอง", Grade: "A", Weights: []float64{18, 17.5}, Weight: f(35.5), PricePerKg: f(120)},
		},
		DeductItems: []RecordDeductionRequest{{Label: "เบิก", Amount: 500}},
	}

	input, err := req.ToInput(enum.KindPurchaseBill)
	require.NoError(t, err)

	assert.Equal(t, "สมชาย", input.Counterparty)
	assert.Equal(t, "2025-08-15", input.Date.Format("2006-01-02"))

	require.Len(t, input.Items, 1)
	assert.Equal(t, 35.5, input.Items[0].Quantity)
	assert.Equal(t, 120.0, input.Items[0].UnitPrice)
	assert.Equal(t, []float64{18, 17.5}, input.Items[0].SubWeights)

	require.Len(t, input.Deductions, 1)
	assert.Equal(t, "เบิก", input.Deductions[0].Label)
}

func TestToInputCounterpartyPrecedence(t *testing.T) {
	req := &RecordRequest{Customer: "ลูกค้า ก", Name: "สมหญิง", Date: "2025-08-15"}
	input, err := req.ToInput(enum.KindSellBill)
	require.NoError(t, err)
	assert.Equal(t, "ลูกค้า ก", input.Counterparty)
}

func TestToInputCuttingShorthand(t *testing.T) {
	req := &RecordRequest{
		CutterName:  "สายตัดเหนือ",
		Date:        "2025-08-15",
		StartDate:   "2025-08-08",
		EndDate:     "2025-08-15",
		TotalWeight: f(900),
		PricePerKg:  f(2),
	}

	input, err := req.ToInput(enum.KindCuttingBill)
	require.NoError(t, err)

	require.NotNil(t, input.PeriodStart)
	require.NotNil(t, input.PeriodEnd)
	require.Len(t, input.Items, 1)
	assert.Equal(t, 900.0, input.Items[0].Quantity)
	assert.Equal(t, 2.0, input.Items[0].UnitPrice)
}

func TestToInputMarksExtraDeductions(t *testing.T) {
	req := &RecordRequest{
		CutterName:  "สายตัดเหนือ",
		Date:        "2025-08-15",
		StartDate:   "2025-08-08",
		EndDate:     "2025-08-15",
		TotalWeight: f(900),
		PricePerKg:  f(2),
		DeductItems: []RecordDeductionRequest{
			{Label: "ค่าแรงลูกทีม", Qty: f(5), PricePerUnit: f(400)},
		},
		ExtraDeductions: []RecordDeductionRequest{
			{Label: "ค่าน้ำมัน", Amount: 300},
		},
	}

	input, err := req.ToInput(enum.KindCuttingBill)
	require.NoError(t, err)

	require.Len(t, input.Deductions, 2)
	assert.False(t, input.Deductions[0].Extra)
	assert.True(t, input.Deductions[1].Extra)
}

func TestToInputChemicalShorthand(t *testing.T) {
	req := &RecordRequest{
		Date:        "2025-08-15",
		WeightTons:  f(2.5),
		PricePerTon: f(9000),
	}

	input, err := req.ToInput(enum.KindChemicalDip)
	require.NoError(t, err)

	require.Len(t, input.Items, 1)
	assert.Equal(t, 2.5, input.Items[0].Quantity)
	assert.Equal(t, 9000.0, input.Items[0].UnitPrice)
}

func TestToInputContainerDefaultsToOneUnit(t *testing.T) {
	req := &RecordRequest{
		Date: "2025-08-15",
		Items: []RecordItemRequest{
			{Label: "ตู้", ContainerCode: "TGHU-1234567", Price: f(25000)},
		},
	}

	input, err := req.ToInput(enum.KindContainerLoading)
	require.NoError(t, err)

	require.Len(t, input.Items, 1)
	assert.Equal(t, "ตู้ TGHU-1234567", input.Items[0].Label)
	assert.Equal(t, 1.0, input.Items[0].Quantity)
	assert.Equal(t, 25000.0, input.Items[0].UnitPrice)
}

func TestToInputBadDate(t *testing.T) {
	req := &RecordRequest{Seller: "x", Date: "15/08/2025"}
	_, err := req.ToInput(enum.KindPurchaseBill)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
}

func TestToInputAcceptsRFC3339(t *testing.T) {
	req := &RecordRequest{Seller: "x", Date: "2025-08-15T10:30:00+07:00"}
	input, err := req.ToInput(enum.KindPurchaseBill)
	require.NoError(t, err)
	assert.Equal(t, 15, input.Date.Day())
}
