package impl

import (
	domainerrors "autosphere/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct maps validator failures to VALIDATION_FAILED with the field errors as details.
func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
