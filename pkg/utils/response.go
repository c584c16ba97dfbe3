package utils

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// DefaultPageSize is the fixed page size for list endpoints.
const DefaultPageSize = 20

type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func CreatedResponse(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func NoContentResponse(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return c.Status(status).JSON(resp)
}

// ValidationErrorResponse reports per-field validation failures as a 400.
func ValidationErrorResponse(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Response{
		Success: false,
		Message: "Validation failed",
		Errors:  fields,
	})
}

func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(Response{
		Success: false,
		Message: message,
		Error:   "Authentication required",
	})
}

func ForbiddenResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(Response{
		Success: false,
		Message: message,
		Error:   "Access denied",
	})
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(Response{
		Success: false,
		Message: message,
		Error:   "Not found",
	})
}

// Page is the list envelope: total count plus absolute next/previous URLs.
type Page struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// NewPage builds the page envelope for the current request, preserving query
// parameters other than page.
func NewPage(c *fiber.Ctx, count int64, page, pageSize int, results interface{}) *Page {
	p := &Page{Count: count, Results: results}

	totalPages := int((count + int64(pageSize) - 1) / int64(pageSize))
	if page < totalPages {
		next := pageURL(c, page+1)
		p.Next = &next
	}
	if page > 1 && count > 0 {
		prev := pageURL(c, page-1)
		p.Previous = &prev
	}
	return p
}

func pageURL(c *fiber.Ctx, page int) string {
	values := url.Values{}
	for k, v := range c.Queries() {
		values.Set(k, v)
	}
	values.Set("page", fmt.Sprintf("%d", page))
	return c.BaseURL() + c.Path() + "?" + values.Encode()
}

// ParsePage reads the page query parameter, defaulting to 1.
func ParsePage(c *fiber.Ctx) int {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return page
}
