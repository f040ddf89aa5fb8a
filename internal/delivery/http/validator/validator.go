// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "github.com/Akashi23/anime-quote/internal/domain/errors"
)

// echoValidator wraps a validator instance for use as echo.Echo.Validator.
type echoValidator struct {
	validate *validator.Validate
}

// New constructs the request validator.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks struct tags on a bound request DTO and converts failures
// into the application's validation error.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
