package handlers

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cattle-tracker/domain/dto"
	"cattle-tracker/domain/services"
	"cattle-tracker/pkg/utils"
)

type PhotoHandler struct {
	photoService services.PhotoService
}

func NewPhotoHandler(photoService services.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// Upload accepts a multipart image and stores it with derivatives
// @Summary Upload a photo
// @Tags Photos
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file (JPEG)"
// @Success 201 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/photos/upload [post]
func (h *PhotoHandler) Upload(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing image field", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read uploaded file", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read uploaded file", err)
	}

	upload := &dto.PhotoUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Data:        data,
	}

	resp, err := h.photoService.Upload(c.Context(), userCtx.ID, upload, c.BaseURL())
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.CreatedResponse(c, "Photo uploaded", resp)
}

// List returns a paginated photo listing
// @Summary List photos
// @Tags Photos
// @Produce json
// @Param page query int false "Page number"
// @Param capture_date query string false "Captured on (YYYY-MM-DD)"
// @Param capture_date__gte query string false "Captured on or after"
// @Param capture_date__lte query string false "Captured on or before"
// @Param has_cattle query bool false "Only tagged (true) or untagged (false) photos"
// @Success 200 {object} utils.Page
// @Security BearerAuth
// @Router /api/v1/photos [get]
func (h *PhotoHandler) List(c *fiber.Ctx) error {
	var filter dto.PhotoListFilter
	var err error

	if filter.CaptureDate, err = queryDate(c, "capture_date"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid capture_date", err)
	}
	if filter.CaptureDateGte, err = queryDate(c, "capture_date__gte"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid capture_date__gte", err)
	}
	if filter.CaptureDateLte, err = queryDate(c, "capture_date__lte"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid capture_date__lte", err)
	}
	if raw := c.Query("has_cattle"); raw != "" {
		hasCattle, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid has_cattle value", err)
		}
		filter.HasCattle = &hasCattle
	}

	page := utils.ParsePage(c)
	photos, total, err := h.photoService.List(c.Context(), filter, page, utils.DefaultPageSize, c.BaseURL())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(utils.NewPage(c, total, page, utils.DefaultPageSize, photos))
}

// Get returns one photo with its metadata and tags
// @Summary Get a photo
// @Tags Photos
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/photos/{id} [get]
func (h *PhotoHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid photo ID", err)
	}

	photo, err := h.photoService.Get(c.Context(), id, c.BaseURL())
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Photo", photo)
}

// Delete removes a photo record and its files
// @Summary Delete a photo
// @Tags Photos
// @Param id path string true "Photo ID"
// @Success 204
// @Security BearerAuth
// @Router /api/v1/photos/{id} [delete]
func (h *PhotoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid photo ID", err)
	}

	if err := h.photoService.Delete(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return utils.NoContentResponse(c)
}

// Tag replaces a photo's tagged cattle set
// @Summary Replace photo tags
// @Tags Photos
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Param request body dto.PhotoTagRequest true "Cattle IDs (empty clears all tags)"
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/photos/{id}/tags [post]
func (h *PhotoHandler) Tag(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid photo ID", err)
	}

	var req dto.PhotoTagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	photo, err := h.photoService.ReplaceTags(c.Context(), id, req.CattleIDs, c.BaseURL())
	if err != nil {
		return respondServiceError(c, err)
	}
	return utils.SuccessResponse(c, "Photo tags updated", photo)
}
