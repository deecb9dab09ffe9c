package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/http/handlers"
	"github.com/spec-kit/job-board/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Jobs           *handlers.JobsHandler
	Applications   *handlers.ApplicationsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes under the versioned /api prefix.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
	}

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	jobs := api.Group("/jobs")
	jobs.Get("/", cfg.Jobs.List)
	jobs.Post("/", cfg.AuthMiddleware.Handle, cfg.Jobs.Create)
	jobs.Get("/:id", cfg.Jobs.Get)

	applications := api.Group("/applications", cfg.AuthMiddleware.Handle)
	applications.Post("/", cfg.Applications.Apply)
	applications.Get("/", cfg.Applications.ListOwn)
	applications.Get("/employer/received", cfg.Applications.ListReceived)
	applications.Patch("/:applicationId/status", cfg.Applications.UpdateStatus)
}
