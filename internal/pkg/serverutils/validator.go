package serverutils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func ValidateRequest(payload interface{}) error {
	if err := validate.Struct(payload); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return fiber.NewError(fiber.StatusBadRequest, validationErrs.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}
	return nil
}
