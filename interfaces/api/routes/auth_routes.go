package routes

import (
	"github.com/gofiber/fiber/v2"

	"cattle-tracker/interfaces/api/handlers"
	"cattle-tracker/interfaces/api/middleware"
	"cattle-tracker/pkg/config"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	auth := api.Group("/auth")
	authLimiter := middleware.AuthRateLimiter(&cfg.RateLimit)

	auth.Post("/register", authLimiter, h.Auth.Register)
	auth.Post("/login", authLimiter, h.Auth.Login)
	auth.Post("/token/refresh", authLimiter, h.Auth.Refresh)
	auth.Post("/token/verify", h.Auth.Verify)
	auth.Post("/logout", h.Auth.Logout)

	// Protected routes
	auth.Get("/user", middleware.Protected(cfg.JWT.Secret), h.Auth.Me)
	auth.Patch("/user", middleware.Protected(cfg.JWT.Secret), h.Auth.UpdateMe)
}
