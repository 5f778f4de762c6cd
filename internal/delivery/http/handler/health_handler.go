package handler

import (
	"context"
	"time"

	"skill-gap/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is a dependency whose reachability is reported by the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	cache Pinger
}

// NewHealthHandler reports the record cache as "up" or "down" when cache is
// set. The service itself stays healthy without a cache.
func NewHealthHandler(cache Pinger) *HealthHandler {
	return &HealthHandler{cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := fiber.Map{"status": "up"}
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Context(), time.Second)
		defer cancel()
		if err := h.cache.Ping(ctx); err != nil {
			data["cache"] = "down"
		} else {
			data["cache"] = "up"
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
