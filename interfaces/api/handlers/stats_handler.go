package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cattle-tracker/domain/services"
	"cattle-tracker/pkg/utils"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Summary returns herd-wide totals and average age
// @Summary Herd summary statistics
// @Tags Stats
// @Produce json
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/stats/summary [get]
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	stats, err := h.statsService.Summary(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Herd summary", stats)
}

// Colors returns the active herd's color distribution
// @Summary Color distribution
// @Tags Stats
// @Produce json
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/stats/color [get]
func (h *StatsHandler) Colors(c *fiber.Ctx) error {
	dist, err := h.statsService.ColorDistribution(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Color distribution", dist)
}

// Breeds returns the active herd's breed distribution
// @Summary Breed distribution
// @Tags Stats
// @Produce json
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/stats/breed [get]
func (h *StatsHandler) Breeds(c *fiber.Ctx) error {
	dist, err := h.statsService.BreedDistribution(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Breed distribution", dist)
}

// Growth returns the growth curve for a birth-year cohort
// @Summary Growth curve
// @Tags Stats
// @Produce json
// @Param year query int true "Birth year"
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/stats/growth [get]
func (h *StatsHandler) Growth(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	if year == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "year query parameter is required", nil)
	}

	stats, err := h.statsService.Growth(c.Context(), year)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Growth statistics", stats)
}
