package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cattle-tracker/domain/models"
	"cattle-tracker/pkg/utils"
)

// respondServiceError maps the service error taxonomy to HTTP responses.
func respondServiceError(c *fiber.Ctx, err error) error {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return utils.ValidationErrorResponse(c, verr.Fields)
	}

	var cerr *models.ConflictError
	if errors.As(err, &cerr) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, cerr.Message, nil)
	}

	switch {
	case errors.Is(err, models.ErrNotFound):
		return utils.NotFoundResponse(c, "Resource not found")
	case errors.Is(err, models.ErrForbidden):
		return utils.ForbiddenResponse(c, "Access denied")
	case errors.Is(err, models.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "No active account found with the given credentials")
	case errors.Is(err, utils.ErrExpiredToken):
		return utils.UnauthorizedResponse(c, "Token has expired")
	case errors.Is(err, utils.ErrInvalidToken),
		errors.Is(err, utils.ErrMissingToken),
		errors.Is(err, utils.ErrWrongTokenType):
		return utils.UnauthorizedResponse(c, "Token is invalid")
	}

	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error", err)
}
