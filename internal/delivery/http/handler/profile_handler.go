package handler

import (
	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/profiles/:username", h.Get)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	username := c.Params("username")
	p, err := h.uc.Preview(c.Context(), username)
	if err != nil {
		return mapUsecaseError(err)
	}

	strengths := make([]dto.StrengthResponse, 0, len(p.Strengths))
	for _, s := range p.Strengths {
		strengths = append(strengths, dto.StrengthResponse{Name: s.Name, Proficiency: s.Proficiency, Weight: s.Weight})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ProfileResponse{
		Username: username,
		Person: dto.PersonResponse{
			Name:                 p.Person.Name,
			ProfessionalHeadline: p.Person.ProfessionalHeadline,
			Picture:              p.Person.Picture,
		},
		Strengths: strengths,
	})
}
