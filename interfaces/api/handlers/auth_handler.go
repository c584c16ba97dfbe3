package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cattle-tracker/domain/dto"
	"cattle-tracker/domain/services"
	"cattle-tracker/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account with the viewer role
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} utils.Response
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	resp, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.CreatedResponse(c, "User registered successfully", resp)
}

// Login exchanges credentials for an access/refresh token pair
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} utils.Response
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	resp, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Login successful", resp)
}

// Logout revokes the presented refresh token
// @Summary Log out
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if req.Refresh == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Refresh token is required", nil)
	}

	if err := h.authService.Logout(c.Context(), req.Refresh); err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Logged out successfully", nil)
}

// Refresh rotates the token pair
// @Summary Refresh tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} utils.Response
// @Router /api/v1/auth/token/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if req.Refresh == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Refresh token is required", nil)
	}

	pair, err := h.authService.Refresh(c.Context(), req.Refresh)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Token refreshed", pair)
}

// Verify checks a token's signature and expiry
// @Summary Verify a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyRequest true "Token"
// @Success 200 {object} utils.Response
// @Router /api/v1/auth/token/verify [post]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var req dto.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if req.Token == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Token is required", nil)
	}

	if err := h.authService.Verify(c.Context(), req.Token); err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Token is valid", nil)
}

// Me returns the authenticated user's profile
// @Summary Current user profile
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/auth/user [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	user, err := h.authService.GetCurrentUser(c.Context(), userCtx.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "User profile", user)
}

// UpdateMe updates the authenticated user's profile
// @Summary Update current user profile
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.UpdateUserRequest true "Profile fields"
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/auth/user [patch]
func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	user, err := h.authService.UpdateCurrentUser(c.Context(), userCtx.ID, &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Profile updated", user)
}
