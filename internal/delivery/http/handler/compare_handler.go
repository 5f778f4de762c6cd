package handler

import (
	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompareHandler struct {
	uc usecase.CompareUsecase
}

func NewCompareHandler(uc usecase.CompareUsecase) *CompareHandler {
	return &CompareHandler{uc: uc}
}

func (h *CompareHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/compare", h.Compare)
}

func (h *CompareHandler) Compare(c fiber.Ctx) error {
	var req dto.CompareRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	res := h.uc.Compare(c.Context(), req.CandidateSkills(), req.RequiredSkills())
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ComparisonResponse{
		Match:      res.Match,
		Categories: res.Categories,
	})
}
