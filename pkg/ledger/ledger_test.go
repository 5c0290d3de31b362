package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateLines(t *testing.T) {
	agg, err := AggregateLines([]Line{
		{Label: "หมอนทอง เกรด A", Quantity: 350, UnitPrice: 120},
		{Label: "หมอนทอง เกรด B", Quantity: 180.5, UnitPrice: 95},
		{Label: "ชะนี เกรด A", Quantity: 0, UnitPrice: 110},
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{42000, 180.5 * 95, 0}, agg.Subtotals)
	assert.Equal(t, 42000+180.5*95, agg.Gross)
}

func TestAggregateLinesEmpty(t *testing.T) {
	agg, err := AggregateLines(nil)
	require.NoError(t, err)
	assert.Zero(t, agg.Gross)
	assert.Empty(t, agg.Subtotals)
}

func TestAggregateLinesRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		items []Line
		field string
	}{
		{"negative quantity", []Line{{Quantity: -1, UnitPrice: 10}}, "items[0].quantity"},
		{"negative price", []Line{{Quantity: 1, UnitPrice: -10}}, "items[0].unitPrice"},
		{"nan", []Line{{Quantity: math.NaN(), UnitPrice: 10}}, "items[0].quantity"},
		{"inf", []Line{{Quantity: 1, UnitPrice: math.Inf(1)}}, "items[0].unitPrice"},
		{"second line", []Line{{Quantity: 1, UnitPrice: 10}, {Quantity: 2, UnitPrice: -1}}, "items[1].unitPrice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AggregateLines(tt.items)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestApplyDeductions(t *testing.T) {
	total, net := ApplyDeductions(50000, []Deduction{
		{Label: "เบิกล่วงหน้า", Amount: 10000},
		{Label: "ค่าน้ำมัน", Amount: 1500},
	})
	assert.Equal(t, 11500.0, total)
	assert.Equal(t, 38500.0, net)
}

func TestApplyDeductionsNetMayGoNegative(t *testing.T) {
	total, net := ApplyDeductions(1000, []Deduction{{Label: "เบิกเกิน", Amount: 2500}})
	assert.Equal(t, 2500.0, total)
	assert.Equal(t, -1500.0, net)
}

func TestGroupByKeepsInsertionOrder(t *testing.T) {
	type row struct {
		variety string
		total   float64
		weight  float64
	}
	rows := []row{
		{"หมอนทอง", 100, 10},
		{"ชะนี", 50, 5},
		{"หมอนทอง", 200, 20},
		{"ก้านยาว", 30, 3},
		{"ชะนี", 70, 7},
	}

	g := GroupBy(rows, func(r row) string { return r.variety }, func(r row) Measure {
		return Measure{Total: r.total, Weight: r.weight}
	})

	assert.Equal(t, []string{"หมอนทอง", "ชะนี", "ก้านยาว"}, g.Keys())
	assert.Equal(t, 3, g.Len())

	m, ok := g.Get("หมอนทอง")
	require.True(t, ok)
	assert.Equal(t, Measure{Total: 300, Weight: 30}, m)
}

// Grouping must partition the input: the group totals always sum back to the
// overall total, no matter the key function.
func TestGroupByPartitionsTotals(t *testing.T) {
	items := []Line{
		{Label: "a", Quantity: 10, UnitPrice: 3},
		{Label: "b", Quantity: 20, UnitPrice: 7},
		{Label: "a", Quantity: 5, UnitPrice: 11},
		{Label: "c", Quantity: 2, UnitPrice: 13},
	}

	var total float64
	for _, it := range items {
		total += it.Quantity * it.UnitPrice
	}

	g := GroupBy(items, func(l Line) string { return l.Label }, func(l Line) Measure {
		return Measure{Total: l.Quantity * l.UnitPrice}
	})

	var grouped float64
	for _, k := range g.Keys() {
		m, _ := g.Get(k)
		grouped += m.Total
	}
	assert.Equal(t, total, grouped)
}

func TestComputeWeightedAverage(t *testing.T) {
	avg, err := ComputeWeightedAverage(28650, 1000, 70)
	require.NoError(t, err)
	assert.Equal(t, 930.0, avg.RemainingWeight)
	assert.Equal(t, 28650.0/930, avg.FinalPrice)
}

func TestComputeWeightedAverageZeroRemaining(t *testing.T) {
	_, err := ComputeWeightedAverage(1000, 500, 500)
	var derr *DivisionByZeroError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "remainingWeight", derr.Field)
}

func TestGradeCut(t *testing.T) {
	result, err := GradeCut(1000, 30, []Line{
		{Label: "ตกไซส์", Quantity: 50, UnitPrice: 15},
		{Label: "เน่า", Quantity: 20, UnitPrice: 30},
	})
	require.NoError(t, err)

	assert.Equal(t, 50*15.0+20*30, result.TotalDeductions)
	assert.Equal(t, 70.0, result.DeductedWeight)
	assert.Equal(t, 1000*30.0-1350, result.NetAmount)
	assert.Equal(t, 930.0, result.RemainingWeight)
	assert.Equal(t, 28650.0/930, result.FinalPrice)
}

func TestGradeCutNoGrades(t *testing.T) {
	result, err := GradeCut(500, 40, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.TotalDeductions)
	assert.Equal(t, 500.0, result.RemainingWeight)
	assert.Equal(t, 40.0, result.FinalPrice)
}

func TestGradeCutAllWeightDeducted(t *testing.T) {
	_, err := GradeCut(100, 25, []Line{{Label: "เน่า", Quantity: 100, UnitPrice: 5}})
	var derr *DivisionByZeroError
	require.ErrorAs(t, err, &derr)
}

func TestGradeCutRejectsNegativeBase(t *testing.T) {
	_, err := GradeCut(100, -1, nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "basePrice", verr.Field)
}
