package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/record-shop/internal/api/dto"
	"github.com/spec-kit/record-shop/internal/auth"
	"github.com/spec-kit/record-shop/internal/service"
)

// PurchasesHandler exposes order history and admin dashboard endpoints.
type PurchasesHandler struct {
	purchases *service.PurchaseHistoryService
}

// NewPurchasesHandler constructs handler.
func NewPurchasesHandler(purchaseService *service.PurchaseHistoryService) *PurchasesHandler {
	return &PurchasesHandler{purchases: purchaseService}
}

// ListMine handles GET /purchases.
func (h *PurchasesHandler) ListMine(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	purchases, err := h.purchases.ListForUser(c.Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPurchaseResponses(purchases)})
}

// DashboardStats handles GET /admin/dashboard (admin).
func (h *PurchasesHandler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.purchases.DashboardStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}
