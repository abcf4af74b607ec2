package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/record-shop/internal/api/dto"
	"github.com/spec-kit/record-shop/internal/service"
)

// SearchHandler exposes free-text search endpoints.
type SearchHandler struct {
	search *service.SearchService
}

// NewSearchHandler constructs handler.
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{search: searchService}
}

// Records handles GET /search/records?q=term.
func (h *SearchHandler) Records(c *fiber.Ctx) error {
	results, err := h.search.SearchRecords(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRecordResponses(results)})
}

// Orders handles GET /search/orders?q=term (admin).
func (h *SearchHandler) Orders(c *fiber.Ctx) error {
	results, err := h.search.SearchOrders(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPurchaseResponses(results)})
}
