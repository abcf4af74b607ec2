package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/record-shop/internal/api/dto"
	"github.com/spec-kit/record-shop/internal/auth"
	"github.com/spec-kit/record-shop/internal/service"
)

// BasketHandler exposes shopping basket endpoints. Every route acts on the
// authenticated user's own basket.
type BasketHandler struct {
	baskets *service.BasketService
}

// NewBasketHandler constructs handler.
func NewBasketHandler(basketService *service.BasketService) *BasketHandler {
	return &BasketHandler{baskets: basketService}
}

// Get handles GET /basket.
func (h *BasketHandler) Get(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	basket, err := h.baskets.GetBasket(c.Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.BasketResponse{UserID: basket.UserID, Items: basket.Items}})
}

// AddItem handles POST /basket/items.
func (h *BasketHandler) AddItem(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.AddToBasketRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.baskets.AddToBasket(c.Context(), claims.UserID, req.RecordID, req.Quantity); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// UpdateItem handles PUT /basket/items/:id.
func (h *BasketHandler) UpdateItem(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	recordID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateBasketItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.baskets.UpdateItemQuantity(c.Context(), claims.UserID, recordID, req.Quantity); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// RemoveItem handles DELETE /basket/items/:id.
func (h *BasketHandler) RemoveItem(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	recordID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.baskets.RemoveFromBasket(c.Context(), claims.UserID, recordID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Clear handles DELETE /basket.
func (h *BasketHandler) Clear(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	if err := h.baskets.ClearBasket(c.Context(), claims.UserID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
