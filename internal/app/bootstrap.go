package app

import (
	"fmt"
	"strings"

	"skill-gap/internal/config"
	"skill-gap/internal/delivery/http/handler"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/delivery/http/routes"
	v1 "skill-gap/internal/delivery/http/routes/v1"
	"skill-gap/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

// New wires the HTTP app around already-built use cases.
func New(cfg config.Config, c *Container) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	var log *zap.Logger
	if c != nil {
		log = c.Logger
	}
	log = logger.OrNop(log)

	f.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	f.Use(middleware.NewErrorMiddleware(log).Middleware())

	handlers := v1.Handlers{}
	var health *handler.HealthHandler
	if c != nil {
		if c.Compare != nil {
			handlers.Compare = handler.NewCompareHandler(c.Compare)
		}
		if c.Analysis != nil {
			handlers.Analysis = handler.NewAnalysisHandler(c.Analysis)
		}
		if c.Profile != nil {
			handlers.Profile = handler.NewProfileHandler(c.Profile)
		}
		if c.JobSearch != nil {
			handlers.JobSearch = handler.NewJobSearchHandler(c.JobSearch)
		}
		if c.Cache != nil {
			health = handler.NewHealthHandler(c.Cache)
		}
	}
	routes.NewRegistry(health, handlers).Register(f)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return New(cfg, c), c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
