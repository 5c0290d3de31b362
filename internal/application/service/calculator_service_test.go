package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suriya388/backoffice-api/pkg/apperror"
)

func TestGradeCut(t *testing.T) {
	svc := NewCalculatorService()

	result, err := svc.GradeCut(&GradeCutInput{
		TotalWeight: 1000,
		BasePrice:   30,
		Grades: []GradeInput{
			{Label: "ตกไซซ์", Weight: 50, Price: 15},
			{Label: "หนอนเจาะ", Weight: 20, Price: 30},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1350.0, result.TotalDeductions)
	assert.Equal(t, 70.0, result.DeductedWeight)
	assert.Equal(t, 28650.0, result.NetAmount)
	assert.Equal(t, 930.0, result.RemainingWeight)
	assert.InDelta(t, 28650.0/930.0, result.FinalPrice, 1e-9)
}

func TestGradeCutZeroRemainingWeight(t *testing.T) {
	svc := NewCalculatorService()

	_, err := svc.GradeCut(&GradeCutInput{
		TotalWeight: 1000,
		BasePrice:   30,
		Grades:      []GradeInput{{Label: "ตกไซซ์", Weight: 1000, Price: 10}},
	})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "remainingWeight", appErr.Errors[0].Field)
}

func TestGradeCutZeroTotalWeight(t *testing.T) {
	svc := NewCalculatorService()

	// Zero is a legitimate submitted value; it must reach the computation and
	// fail there with field context, not bounce off input validation.
	_, err := svc.GradeCut(&GradeCutInput{TotalWeight: 0, BasePrice: 30})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "remainingWeight", appErr.Errors[0].Field)
}

func TestGradeCutNegativeBasePrice(t *testing.T) {
	svc := NewCalculatorService()

	_, err := svc.GradeCut(&GradeCutInput{TotalWeight: 100, BasePrice: -1})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "basePrice", appErr.Errors[0].Field)
}
