package handler

import (
	"errors"

	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	fields := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, dto.FieldError{Field: fe.Namespace(), Rule: fe.Tag()})
	}
	return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", fields, err)
}
