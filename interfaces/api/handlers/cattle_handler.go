package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cattle-tracker/domain/dto"
	"cattle-tracker/domain/services"
	"cattle-tracker/pkg/utils"
)

const dateLayout = "2006-01-02"

type CattleHandler struct {
	cattleService services.CattleService
}

func NewCattleHandler(cattleService services.CattleService) *CattleHandler {
	return &CattleHandler{cattleService: cattleService}
}

// List returns a paginated herd listing
// @Summary List cattle
// @Tags Cattle
// @Produce json
// @Param page query int false "Page number"
// @Param sex query string false "Filter by sex"
// @Param status query string false "Filter by status"
// @Param color query string false "Filter by color (substring)"
// @Param dob__gte query string false "Born on or after (YYYY-MM-DD)"
// @Param dob__lte query string false "Born on or before (YYYY-MM-DD)"
// @Param search query string false "Search tag, name, color, breed"
// @Success 200 {object} utils.Page
// @Security BearerAuth
// @Router /api/v1/cattle [get]
func (h *CattleHandler) List(c *fiber.Ctx) error {
	filter := dto.CattleListFilter{
		Sex:    c.Query("sex"),
		Status: c.Query("status"),
		Color:  c.Query("color"),
		Search: c.Query("search"),
	}

	var err error
	if filter.DOBGte, err = queryDate(c, "dob__gte"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid dob__gte date", err)
	}
	if filter.DOBLte, err = queryDate(c, "dob__lte"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid dob__lte date", err)
	}

	page := utils.ParsePage(c)
	cattle, total, err := h.cattleService.List(c.Context(), filter, page, utils.DefaultPageSize)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(utils.NewPage(c, total, page, utils.DefaultPageSize, cattle))
}

// Create registers a new animal
// @Summary Create a cattle record
// @Tags Cattle
// @Accept json
// @Produce json
// @Param request body dto.CattleRequest true "Cattle data"
// @Success 201 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/cattle [post]
func (h *CattleHandler) Create(c *fiber.Ctx) error {
	var req dto.CattleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	resp, err := h.cattleService.Create(c.Context(), &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.CreatedResponse(c, "Cattle record created", resp)
}

// Get returns one animal's detail view
// @Summary Get a cattle record
// @Tags Cattle
// @Produce json
// @Param id path string true "Cattle ID"
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/cattle/{id} [get]
func (h *CattleHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid cattle ID", err)
	}

	view, err := h.cattleService.Get(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Cattle record", view)
}

// Update applies a partial update to an animal
// @Summary Update a cattle record
// @Tags Cattle
// @Accept json
// @Produce json
// @Param id path string true "Cattle ID"
// @Param request body dto.CattleUpdateRequest true "Fields to update"
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/cattle/{id} [patch]
func (h *CattleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid cattle ID", err)
	}

	var req dto.CattleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	resp, err := h.cattleService.Update(c.Context(), id, &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Cattle record updated", resp)
}

// Delete removes an animal permanently
// @Summary Delete a cattle record
// @Tags Cattle
// @Param id path string true "Cattle ID"
// @Success 204
// @Security BearerAuth
// @Router /api/v1/cattle/{id} [delete]
func (h *CattleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid cattle ID", err)
	}

	if err := h.cattleService.Delete(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return utils.NoContentResponse(c)
}

// Archive marks an animal as archived
// @Summary Archive a cattle record
// @Tags Cattle
// @Produce json
// @Param id path string true "Cattle ID"
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/cattle/{id}/archive [post]
func (h *CattleHandler) Archive(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid cattle ID", err)
	}

	if err := h.cattleService.Archive(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Cattle record archived", nil)
}

// Lineage returns the resolved family tree
// @Summary Cattle lineage
// @Tags Cattle
// @Produce json
// @Param id path string true "Cattle ID"
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/cattle/{id}/lineage [get]
func (h *CattleHandler) Lineage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid cattle ID", err)
	}

	lineage, err := h.cattleService.Lineage(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Cattle lineage", lineage)
}

func parseID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(param))
}

func queryDate(c *fiber.Ctx, param string) (*time.Time, error) {
	raw := c.Query(param)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
