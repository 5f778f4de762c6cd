package handler

import (
	"strconv"
	"strings"

	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobSearchHandler struct {
	uc usecase.JobSearchUsecase
}

func NewJobSearchHandler(uc usecase.JobSearchUsecase) *JobSearchHandler {
	return &JobSearchHandler{uc: uc}
}

func (h *JobSearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs/search", h.Search)
}

func (h *JobSearchHandler) Search(c fiber.Ctx) error {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
		}
		limit = v
	}

	res, err := h.uc.Search(c.Context(), c.Query("q"), limit)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.JobSearchResponse{
		Query:   res.Query,
		Total:   res.Total,
		Results: make([]dto.JobSearchItemResponse, 0, len(res.Results)),
	}
	for _, j := range res.Results {
		locations := j.Locations
		if locations == nil {
			locations = []string{}
		}
		out.Results = append(out.Results, dto.JobSearchItemResponse{
			ID:            j.ID,
			Objective:     j.Objective,
			Organizations: dto.OrganizationNames(j.Organizations),
			Remote:        j.Remote,
			Locations:     locations,
			Compensation:  j.Compensation,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
