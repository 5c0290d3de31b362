package service

import (
	"errors"
	"net/http"
	"strings"

	"github.com/suriya388/backoffice-api/pkg/apperror"
	"github.com/suriya388/backoffice-api/pkg/layout"
	"github.com/suriya388/backoffice-api/pkg/ledger"
)

// toAppError translates computation-layer errors into transport-facing ones.
// Anything unrecognized passes through and surfaces as a 500.
func toAppError(err error) error {
	var verr *ledger.ValidationError
	if errors.As(err, &verr) {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: verr.Field, Message: verr.Reason},
		})
	}

	var derr *ledger.DivisionByZeroError
	if errors.As(err, &derr) {
		return &apperror.AppError{
			Code:    http.StatusUnprocessableEntity,
			Message: "Computation impossible: " + derr.Error(),
			Errors: []apperror.FieldError{
				{Field: derr.Field, Message: "must leave weight to divide by"},
			},
		}
	}

	var lerr *layout.LayoutError
	if errors.As(err, &lerr) {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: lerr.Field, Message: "is required for this document"},
		})
	}

	return err
}

// renameItemsField rewrites the "items[i]" prefix of a ledger validation
// error when the aggregator was run over a different collection.
func renameItemsField(err error, collection string) error {
	var verr *ledger.ValidationError
	if errors.As(err, &verr) {
		return &ledger.ValidationError{
			Field:  strings.Replace(verr.Field, "items[", collection+"[", 1),
			Reason: verr.Reason,
		}
	}
	return err
}
