package v1

import (
	"skill-gap/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Compare   *handler.CompareHandler
	Analysis  *handler.AnalysisHandler
	Profile   *handler.ProfileHandler
	JobSearch *handler.JobSearchHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Compare != nil {
		h.Compare.RegisterRoutes(r)
	}
	if h.Analysis != nil {
		h.Analysis.RegisterRoutes(r)
	}
	if h.Profile != nil {
		h.Profile.RegisterRoutes(r)
	}
	if h.JobSearch != nil {
		h.JobSearch.RegisterRoutes(r)
	}
}
