package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cattle-tracker/domain/dto"
	"cattle-tracker/domain/services"
	"cattle-tracker/pkg/utils"
)

type WeightHandler struct {
	weightService services.WeightLogService
}

func NewWeightHandler(weightService services.WeightLogService) *WeightHandler {
	return &WeightHandler{weightService: weightService}
}

// List returns all weight samples for one animal, oldest first
// @Summary List weight samples
// @Tags Weights
// @Produce json
// @Param id path string true "Cattle ID"
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/cattle/{id}/weights [get]
func (h *WeightHandler) List(c *fiber.Ctx) error {
	cattleID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid cattle ID", err)
	}

	logs, err := h.weightService.List(c.Context(), cattleID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Weight history", logs)
}

// Create records a new weight sample
// @Summary Record a weight sample
// @Tags Weights
// @Accept json
// @Produce json
// @Param id path string true "Cattle ID"
// @Param request body dto.WeightLogRequest true "Weight sample"
// @Success 201 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/cattle/{id}/weights [post]
func (h *WeightHandler) Create(c *fiber.Ctx) error {
	cattleID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid cattle ID", err)
	}

	var req dto.WeightLogRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	log, err := h.weightService.Create(c.Context(), cattleID, &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.CreatedResponse(c, "Weight recorded", log)
}

// Delete removes one weight sample
// @Summary Delete a weight sample
// @Tags Weights
// @Param id path string true "Cattle ID"
// @Param weightId path string true "Weight log ID"
// @Success 204
// @Security BearerAuth
// @Router /api/v1/cattle/{id}/weights/{weightId} [delete]
func (h *WeightHandler) Delete(c *fiber.Ctx) error {
	cattleID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid cattle ID", err)
	}
	weightID, err := parseID(c, "weightId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid weight log ID", err)
	}

	if err := h.weightService.Delete(c.Context(), cattleID, weightID); err != nil {
		return respondServiceError(c, err)
	}
	return utils.NoContentResponse(c)
}
