package routes

import (
	"github.com/gofiber/fiber/v2"

	"cattle-tracker/interfaces/api/handlers"
	"cattle-tracker/pkg/config"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, cfg *config.Config) {
	SetupHealthRoutes(app, h)

	// API version group
	api := app.Group("/api/v1")

	SetupAuthRoutes(api, h, cfg)
	SetupCattleRoutes(api, h, cfg)
	SetupPhotoRoutes(api, h, cfg)
	SetupStatsRoutes(api, h, cfg)
}
