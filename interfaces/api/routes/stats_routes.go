package routes

import (
	"github.com/gofiber/fiber/v2"

	"cattle-tracker/interfaces/api/handlers"
	"cattle-tracker/interfaces/api/middleware"
	"cattle-tracker/pkg/config"
)

func SetupStatsRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	stats := api.Group("/stats",
		middleware.Protected(cfg.JWT.Secret),
		middleware.ViewerOrAdmin(),
	)

	stats.Get("/summary", h.Stats.Summary)
	stats.Get("/color", h.Stats.Colors)
	stats.Get("/breed", h.Stats.Breeds)
	stats.Get("/growth", h.Stats.Growth)
}
