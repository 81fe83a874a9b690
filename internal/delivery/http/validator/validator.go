// Package validator plugs go-playground/validator into echo so request DTOs
// are checked before any handler logic runs.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "tasker/internal/domain/errors"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the echo.Validator used by the HTTP server.
func New() echo.Validator {
	return &echoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate runs struct tag validation and maps failures onto the domain
// validation error so the error middleware renders them uniformly.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
