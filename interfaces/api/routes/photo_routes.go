package routes

import (
	"github.com/gofiber/fiber/v2"

	"cattle-tracker/interfaces/api/handlers"
	"cattle-tracker/interfaces/api/middleware"
	"cattle-tracker/pkg/config"
)

func SetupPhotoRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	photos := api.Group("/photos",
		middleware.Protected(cfg.JWT.Secret),
		middleware.ViewerOrAdmin(),
	)

	photos.Get("/", h.Photo.List)
	photos.Post("/upload", h.Photo.Upload)
	photos.Get("/:id", h.Photo.Get)
	photos.Delete("/:id", h.Photo.Delete)
	photos.Post("/:id/tags", h.Photo.Tag)
}
