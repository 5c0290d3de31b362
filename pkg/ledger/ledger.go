// Package ledger derives financial totals from itemized bill data. It is pure
// computation: deterministic, side-effect free, and safe to call from any
// number of request workers.
//
// All arithmetic is plain IEEE-754 float64, matching the totals the business
// has already printed and signed. Switching to decimal money would change
// rounding on repeating binary fractions, so it is deliberately not done here.
package ledger

import (
	"fmt"
	"math"
)

// Line is one aggregatable item: a quantity (weight in kilograms, box count,
// work days) priced per unit.
type Line struct {
	Label     string
	Quantity  float64
	UnitPrice float64
}

// Deduction is a labeled amount subtracted from a gross total.
type Deduction struct {
	Label  string
	Amount float64
}

// Aggregate is the result of AggregateLines: one subtotal per input line, in
// input order, and their sum.
type Aggregate struct {
	Subtotals []float64
	Gross     float64
}

// AggregateLines computes Quantity × UnitPrice per line and the gross total.
// Every quantity and price must be a finite, non-negative number; the first
// offending value fails the whole call with a *ValidationError naming it.
func AggregateLines(items []Line) (*Aggregate, error) {
	agg := &Aggregate{Subtotals: make([]float64, 0, len(items))}
	for i, item := range items {
		if err := checkAmount(fmt.Sprintf("items[%d].quantity", i), item.Quantity); err != nil {
			return nil, err
		}
		if err := checkAmount(fmt.Sprintf("items[%d].unitPrice", i), item.UnitPrice); err != nil {
			return nil, err
		}
		subtotal := item.Quantity * item.UnitPrice
		agg.Subtotals = append(agg.Subtotals, subtotal)
		agg.Gross += subtotal
	}
	return agg, nil
}

// Measure is the aggregated contribution of one item to a group: its monetary
// total and its weight.
type Measure struct {
	Total  float64
	Weight float64
}

// GroupedTotals accumulates measures per grouping key. Iteration over Keys
// follows first-occurrence insertion order; callers that need a different
// order re-sort the keys themselves.
type GroupedTotals struct {
	keys   []string
	groups map[string]Measure
}

// Keys returns the grouping keys in first-occurrence order.
func (g *GroupedTotals) Keys() []string {
	return g.keys
}

// Get returns the accumulated measure for key.
func (g *GroupedTotals) Get(key string) (Measure, bool) {
	m, ok := g.groups[key]
	return m, ok
}

// Len returns the number of distinct groups.
func (g *GroupedTotals) Len() int {
	return len(g.keys)
}

// Map returns the accumulated groups as a plain map, for JSON responses.
func (g *GroupedTotals) Map() map[string]Measure {
	out := make(map[string]Measure, len(g.groups))
	for k, v := range g.groups {
		out[k] = v
	}
	return out
}

// GroupBy folds items into per-key running totals in a single pass. Key
// equality is exact string match.
func GroupBy[T any](items []T, key func(T) string, measure func(T) Measure) *GroupedTotals {
	g := &GroupedTotals{groups: make(map[string]Measure)}
	for _, item := range items {
		k := key(item)
		acc, seen := g.groups[k]
		if !seen {
			g.keys = append(g.keys, k)
		}
		m := measure(item)
		acc.Total += m.Total
		acc.Weight += m.Weight
		g.groups[k] = acc
	}
	return g
}

// ApplyDeductions subtracts the deductions from the gross total. The net may
// be negative when deductions exceed gross; that is a legitimate overpayment
// correction, not an error.
func ApplyDeductions(gross float64, deductions []Deduction) (totalDeduction, net float64) {
	for _, d := range deductions {
		totalDeduction += d.Amount
	}
	return totalDeduction, gross - totalDeduction
}

// WeightedAverage is the result of the net-price-after-grade-deductions
// calculation.
type WeightedAverage struct {
	RemainingWeight float64
	FinalPrice      float64
}

// ComputeWeightedAverage spreads a net amount over the weight left after
// grade deductions. A remaining weight of exactly zero is a data-entry
// contradiction (everything was deducted) and fails with a
// *DivisionByZeroError rather than producing Inf or NaN.
func ComputeWeightedAverage(netAmount, totalWeight, deductedWeight float64) (*WeightedAverage, error) {
	remaining := totalWeight - deductedWeight
	if remaining == 0 {
		return nil, &DivisionByZeroError{Field: "remainingWeight"}
	}
	return &WeightedAverage{
		RemainingWeight: remaining,
		FinalPrice:      netAmount / remaining,
	}, nil
}

// GradeCutResult is the full output of a grade-deduction price calculation.
type GradeCutResult struct {
	TotalDeductions float64
	DeductedWeight  float64
	NetAmount       float64
	RemainingWeight float64
	FinalPrice      float64
}

// GradeCut prices a whole lot after per-grade deductions: each grade entry
// deducts Quantity × UnitPrice from the lot's base value and Quantity from
// its weight, then the remainder is averaged back to a final price per unit.
func GradeCut(totalWeight, basePrice float64, grades []Line) (*GradeCutResult, error) {
	if err := checkAmount("totalWeight", totalWeight); err != nil {
		return nil, err
	}
	if err := checkAmount("basePrice", basePrice); err != nil {
		return nil, err
	}
	agg, err := AggregateLines(grades)
	if err != nil {
		return nil, err
	}

	var deductedWeight float64
	for _, g := range grades {
		deductedWeight += g.Quantity
	}

	netAmount := totalWeight*basePrice - agg.Gross
	avg, err := ComputeWeightedAverage(netAmount, totalWeight, deductedWeight)
	if err != nil {
		return nil, err
	}

	return &GradeCutResult{
		TotalDeductions: agg.Gross,
		DeductedWeight:  deductedWeight,
		NetAmount:       netAmount,
		RemainingWeight: avg.RemainingWeight,
		FinalPrice:      avg.FinalPrice,
	}, nil
}

func checkAmount(field string, v float64) error {
	switch {
	case math.IsNaN(v):
		return &ValidationError{Field: field, Reason: "is not a number"}
	case math.IsInf(v, 0):
		return &ValidationError{Field: field, Reason: "is not finite"}
	case v < 0:
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return nil
}
