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

type AnalysisHandler struct {
	uc usecase.AnalysisUsecase
}

func NewAnalysisHandler(uc usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/analysis")
	grp.Post("/", h.Analyze)
	grp.Get("/history/:username", h.History)
}

func (h *AnalysisHandler) Analyze(c fiber.Ctx) error {
	var req dto.AnalysisRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	res, err := h.uc.Analyze(c.Context(), req.Username, req.JobIDs)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.AnalysisResponse{
		Username: res.Username,
		Person: dto.PersonResponse{
			Name:                 res.Person.Name,
			ProfessionalHeadline: res.Person.ProfessionalHeadline,
			Picture:              res.Person.Picture,
		},
		Comparisons: make([]dto.JobComparisonResponse, 0, len(res.Comparisons)),
	}
	for _, cmp := range res.Comparisons {
		locations := cmp.Job.Locations
		if locations == nil {
			locations = []string{}
		}
		out.Comparisons = append(out.Comparisons, dto.JobComparisonResponse{
			Job: dto.JobSummaryResponse{
				ID:            cmp.Job.ID,
				Objective:     cmp.Job.Objective,
				Organizations: dto.OrganizationNames(cmp.Job.Organizations),
				Remote:        cmp.Job.Remote,
				Locations:     locations,
			},
			Match:      cmp.Match,
			Categories: cmp.Categories,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AnalysisHandler) History(c fiber.Ctx) error {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
		}
		limit = v
	}

	items, err := h.uc.History(c.Context(), c.Params("username"), limit)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.HistoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.HistoryItemResponse{
			ID:           it.ID,
			JobID:        it.JobID,
			JobObjective: it.JobObjective,
			Match:        it.Result,
			Categories:   it.Categories,
			CreatedAt:    it.CreatedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
