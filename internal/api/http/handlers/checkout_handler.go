package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/record-shop/internal/api/dto"
	"github.com/spec-kit/record-shop/internal/auth"
	"github.com/spec-kit/record-shop/internal/service"
)

// CheckoutHandler exposes the checkout endpoint.
type CheckoutHandler struct {
	checkout *service.CheckoutService
}

// NewCheckoutHandler constructs handler.
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkoutService}
}

// Checkout handles POST /basket/checkout.
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CheckoutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, "invalid payload")
		}
	}

	purchase, err := h.checkout.Checkout(c.Context(), claims.UserID, req.CouponCode)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewPurchaseResponse(purchase)})
}
