package routes

import (
	"github.com/gofiber/fiber/v2"

	"cattle-tracker/interfaces/api/handlers"
)

func SetupHealthRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/health", h.Health.Liveness)
	app.Get("/health/detailed", h.Health.Readiness)
}
