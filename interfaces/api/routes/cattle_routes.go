package routes

import (
	"github.com/gofiber/fiber/v2"

	"cattle-tracker/interfaces/api/handlers"
	"cattle-tracker/interfaces/api/middleware"
	"cattle-tracker/pkg/config"
)

func SetupCattleRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	cattle := api.Group("/cattle",
		middleware.Protected(cfg.JWT.Secret),
		middleware.ViewerOrAdmin(),
	)

	cattle.Get("/", h.Cattle.List)
	cattle.Post("/", h.Cattle.Create)
	cattle.Get("/:id", h.Cattle.Get)
	cattle.Put("/:id", h.Cattle.Update)
	cattle.Patch("/:id", h.Cattle.Update)
	cattle.Delete("/:id", h.Cattle.Delete)
	cattle.Post("/:id/archive", h.Cattle.Archive)
	cattle.Get("/:id/lineage", h.Cattle.Lineage)

	// Nested weight history
	cattle.Get("/:id/weights", h.Weight.List)
	cattle.Post("/:id/weights", h.Weight.Create)
	cattle.Delete("/:id/weights/:weightId", h.Weight.Delete)
}
