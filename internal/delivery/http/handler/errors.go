package handler

import (
	"errors"

	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrHistoryUnavailable):
		return middleware.NewAppError(fiber.StatusNotFound, "History not enabled", nil, err)
	case errors.Is(err, usecase.ErrUpstream):
		return middleware.NewAppError(fiber.StatusBadGateway, "Upstream service unavailable", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
