package routes

import (
	"skill-gap/internal/delivery/http/handler"
	v1 "skill-gap/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	v1     v1.Handlers
}

func NewRegistry(health *handler.HealthHandler, handlers v1.Handlers) *Registry {
	if health == nil {
		health = handler.NewHealthHandler(nil)
	}
	return &Registry{health: health, v1: handlers}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.v1)
}
