package request

import (
	"github.com/suriya388/backoffice-api/internal/application/service"
	"github.com/suriya388/backoffice-api/pkg/apperror"
)

// ExportItemRequest is one export invoice row
type ExportItemRequest struct {
	Label        string  `json:"label" binding:"required"`
	Boxes        float64 `json:"boxes"`
	WeightPerBox float64 `json:"weightPerBox"`
	PricePerKg   float64 `json:"pricePerKg"`
}

// ExportBrandRequest is one row of the brand-wise box summary
type ExportBrandRequest struct {
	Brand string  `json:"brand" binding:"required"`
	Boxes float64 `json:"boxes"`
}

// ExportRequest is the export invoice payload
type ExportRequest struct {
	InvoiceNo   string               `json:"invoiceNo"`
	Date        string               `json:"date" binding:"required"`
	Customer    string               `json:"customer"`
	Destination string               `json:"destination"`
	Items       []ExportItemRequest  `json:"items" binding:"required,min=1"`
	Brands      []ExportBrandRequest `json:"brands"`
}

// ToInput converts the request into the service-level export input
func (r *ExportRequest) ToInput() (*service.ExportInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "date", Message: "must be YYYY-MM-DD or RFC 3339"},
		})
	}

	input := &service.ExportInput{
		InvoiceNo:   r.InvoiceNo,
		Date:        date,
		Customer:    r.Customer,
		Destination: r.Destination,
	}

	input.Items = make([]service.ExportItemInput, len(r.Items))
	for i, it := range r.Items {
		input.Items[i] = service.ExportItemInput{
			Label:        it.Label,
			Boxes:        it.Boxes,
			WeightPerBox: it.WeightPerBox,
			PricePerKg:   it.PricePerKg,
		}
	}

	input.Brands = make([]service.BrandCountInput, len(r.Brands))
	for i, b := range r.Brands {
		input.Brands[i] = service.BrandCountInput{Brand: b.Brand, Boxes: b.Boxes}
	}

	return input, nil
}
