package middleware

import (
	"github.com/gofiber/fiber/v2"

	"cattle-tracker/domain/models"
	"cattle-tracker/pkg/utils"
)

// Protected validates the access token and sets the user context.
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		userCtx, err := utils.ValidateAccessToken(token, jwtSecret)
		if err != nil {
			switch err {
			case utils.ErrExpiredToken:
				return utils.UnauthorizedResponse(c, "Token has expired")
			case utils.ErrWrongTokenType:
				return utils.UnauthorizedResponse(c, "Access token required")
			default:
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
		}

		c.Locals("user", userCtx)
		return c.Next()
	}
}

// RequireRole ensures the authenticated user holds the given role.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := utils.GetUserFromContext(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "User not authenticated")
		}

		if user.Role != role {
			return utils.ForbiddenResponse(c, "Insufficient permissions")
		}
		return c.Next()
	}
}

// AdminOnly restricts the route to admins.
func AdminOnly() fiber.Handler {
	return RequireRole(models.RoleAdmin)
}

// ViewerOrAdmin grants admins full access; viewers may only use read methods.
func ViewerOrAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := utils.GetUserFromContext(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "User not authenticated")
		}

		if user.Role == models.RoleAdmin {
			return c.Next()
		}
		if user.Role == models.RoleViewer && isReadMethod(c.Method()) {
			return c.Next()
		}
		return utils.ForbiddenResponse(c, "Insufficient permissions")
	}
}

func isReadMethod(method string) bool {
	switch method {
	case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
		return true
	default:
		return false
	}
}
