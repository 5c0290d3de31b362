package service

import (
	"github.com/suriya388/backoffice-api/pkg/ledger"
)

// CalculatorService exposes the grade-cut price calculator. It is stateless;
// nothing it computes is persisted.
type CalculatorService struct{}

// NewCalculatorService creates a new calculator service
func NewCalculatorService() *CalculatorService {
	return &CalculatorService{}
}

// GradeInput is one grade deduction of a grade-cut calculation
type GradeInput struct {
	Label  string
	Weight float64
	Price  float64
}

// GradeCutInput is the grade-cut calculation payload
type GradeCutInput struct {
	TotalWeight float64
	BasePrice   float64
	Grades      []GradeInput
}

// GradeCut prices a fruit lot after per-grade deductions and averages the
// remainder back to a final price per kilogram.
func (s *CalculatorService) GradeCut(input *GradeCutInput) (*ledger.GradeCutResult, error) {
	grades := make([]ledger.Line, len(input.Grades))
	for i, g := range input.Grades {
		grades[i] = ledger.Line{Label: g.Label, Quantity: g.Weight, UnitPrice: g.Price}
	}

	result, err := ledger.GradeCut(input.TotalWeight, input.BasePrice, grades)
	if err != nil {
		return nil, toAppError(err)
	}
	return result, nil
}
