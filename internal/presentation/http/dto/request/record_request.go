package request

import (
	"time"

	"github.com/suriya388/backoffice-api/internal/application/service"
	"github.com/suriya388/backoffice-api/internal/domain/enum"
	"github.com/suriya388/backoffice-api/pkg/apperror"
)

// RecordItemRequest is one submitted line item. The front office sends
// different field names per document kind (weight for fruit rows, boxes for
// packing rows); the aliases resolve to one quantity and unit price.
type RecordItemRequest struct {
	Variety string `json:"variety"`
	Grade   string `json:"grade"`
	Label   string `json:"label"`

	Weights []float64 `json:"weights"`

	Quantity *float64 `json:"quantity"`
	Weight   *float64 `json:"weight"`
	Boxes    *float64 `json:"boxes"`

	UnitPrice   *float64 `json:"unitPrice"`
	PricePerKg  *float64 `json:"pricePerKg"`
	PricePerBox *float64 `json:"pricePerBox"`
	Price       *float64 `json:"price"`

	ContainerCode string `json:"containerCode"`
}

// RecordDeductionRequest is one submitted deduction row. Itemized rows carry
// qty and pricePerUnit; flat rows carry amount.
type RecordDeductionRequest struct {
	Label        string   `json:"label"`
	Qty          *float64 `json:"qty"`
	PricePerUnit *float64 `json:"pricePerUnit"`
	Amount       float64  `json:"amount"`
}

// RecordRequest is the create/update payload shared by every record kind.
// Counterparty arrives under a kind-specific name (seller, customer,
// cutterName, name); the first one present wins.
type RecordRequest struct {
	Seller     string `json:"seller"`
	Customer   string `json:"customer"`
	CutterName string `json:"cutterName"`
	Name       string `json:"name"`

	Date      string `json:"date" binding:"required"`
	PayMethod string `json:"payMethod"`

	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	// Cutting shorthand: a single weight × price body line.
	TotalWeight *float64 `json:"totalWeight"`
	PricePerKg  *float64 `json:"pricePerKg"`

	// Chemical-dip shorthand.
	WeightTons  *float64 `json:"weightTons"`
	PricePerTon *float64 `json:"pricePerTon"`

	// Payroll wage model.
	PayType       string   `json:"payType"`
	Period        string   `json:"period"`
	WorkDays      *float64 `json:"workDays"`
	PricePerDay   *float64 `json:"pricePerDay"`
	MonthlySalary *float64 `json:"monthlySalary"`
	Months        *float64 `json:"months"`

	Items []RecordItemRequest `json:"items"`

	Deductions      []RecordDeductionRequest `json:"deductions"`
	DeductItems     []RecordDeductionRequest `json:"deductItems"`
	ExtraDeductions []RecordDeductionRequest `json:"extraDeductions"`
}

// ToInput resolves the aliases into the service-level input for a kind
func (r *RecordRequest) ToInput(kind enum.RecordKind) (*service.RecordInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "date", Message: "must be YYYY-MM-DD or RFC 3339"},
		})
	}

	input := &service.RecordInput{
		Counterparty: firstNonEmpty(r.Seller, r.Customer, r.CutterName, r.Name),
		Date:         date,
		PayMethod:    r.PayMethod,

		PayType:       enum.PayType(r.PayType),
		Period:        r.Period,
		WorkDays:      r.WorkDays,
		PricePerDay:   r.PricePerDay,
		MonthlySalary: r.MonthlySalary,
		Months:        r.Months,
	}

	if r.StartDate != "" {
		start, err := parseDate(r.StartDate)
		if err != nil {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "startDate", Message: "must be YYYY-MM-DD or RFC 3339"},
			})
		}
		input.PeriodStart = &start
	}
	if r.EndDate != "" {
		end, err := parseDate(r.EndDate)
		if err != nil {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "endDate", Message: "must be YYYY-MM-DD or RFC 3339"},
			})
		}
		input.PeriodEnd = &end
	}

	input.Items = r.resolveItems(kind)

	for _, group := range []struct {
		rows  []RecordDeductionRequest
		extra bool
	}{
		{r.Deductions, false},
		{r.DeductItems, false},
		{r.ExtraDeductions, true},
	} {
		for _, d := range group.rows {
			input.Deductions = append(input.Deductions, service.DeductionInput{
				Label:     d.Label,
				Quantity:  d.Qty,
				UnitPrice: d.PricePerUnit,
				Amount:    d.Amount,
				Extra:     group.extra,
			})
		}
	}

	return input, nil
}

func (r *RecordRequest) resolveItems(kind enum.RecordKind) []service.ItemInput {
	// Shorthand bodies expand to a single line item.
	if len(r.Items) == 0 {
		switch {
		case kind == enum.KindCuttingBill && r.TotalWeight != nil && r.PricePerKg != nil:
			return []service.ItemInput{{
				Label:     "ค่าตัดทุเรียน",
				Quantity:  *r.TotalWeight,
				UnitPrice: *r.PricePerKg,
			}}
		case kind == enum.KindChemicalDip && r.WeightTons != nil && r.PricePerTon != nil:
			return []service.ItemInput{{
				Label:     "ชุบน้ำยาทุเรียน",
				Quantity:  *r.WeightTons,
				UnitPrice: *r.PricePerTon,
			}}
		}
	}

	items := make([]service.ItemInput, len(r.Items))
	for i, it := range r.Items {
		label := it.Label
		if it.ContainerCode != "" {
			if label == "" {
				label = "ตู้ " + it.ContainerCode
			} else {
				label = label + " " + it.ContainerCode
			}
		}
		items[i] = service.ItemInput{
			Variety:    it.Variety,
			Grade:      it.Grade,
			Label:      label,
			Quantity:   firstSet(it.Quantity, it.Weight, it.Boxes),
			UnitPrice:  firstSet(it.UnitPrice, it.PricePerKg, it.PricePerBox, it.Price),
			SubWeights: it.Weights,
		}
		// A container row with no explicit count is one container.
		if kind == enum.KindContainerLoading && it.Quantity == nil && it.Weight == nil && it.Boxes == nil {
			items[i].Quantity = 1
		}
	}
	return items
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstSet(values ...*float64) float64 {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}
