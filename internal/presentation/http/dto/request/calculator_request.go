package request

import "github.com/suriya388/backoffice-api/internal/application/service"

// GradeCutGradeRequest is one grade deduction of a grade-cut calculation
type GradeCutGradeRequest struct {
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
	Price  float64 `json:"price"`
}

// GradeCutRequest is the grade-cut calculation payload. The amounts carry no
// `required` tag: zero is a legitimate submitted value (a zero total weight
// must reach the calculator and fail there with field context, not bounce off
// binding as missing).
type GradeCutRequest struct {
	TotalWeight float64                `json:"totalWeight"`
	BasePrice   float64                `json:"basePrice"`
	Grades      []GradeCutGradeRequest `json:"grades"`
}

// ToInput converts the request into the service-level calculator input
func (r *GradeCutRequest) ToInput() *service.GradeCutInput {
	input := &service.GradeCutInput{
		TotalWeight: r.TotalWeight,
		BasePrice:   r.BasePrice,
		Grades:      make([]service.GradeInput, len(r.Grades)),
	}
	for i, g := range r.Grades {
		input.Grades[i] = service.GradeInput{Label: g.Label, Weight: g.Weight, Price: g.Price}
	}
	return input
}
