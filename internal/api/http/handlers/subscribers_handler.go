package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/record-shop/internal/api/dto"
	"github.com/spec-kit/record-shop/internal/service"
)

// SubscribersHandler exposes the new-release mailing list endpoint.
type SubscribersHandler struct {
	subscribers *service.SubscriberService
}

// NewSubscribersHandler constructs handler.
func NewSubscribersHandler(subscriberService *service.SubscriberService) *SubscribersHandler {
	return &SubscribersHandler{subscribers: subscriberService}
}

// Subscribe handles POST /subscribers.
func (h *SubscribersHandler) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	subscriber, err := h.subscribers.Subscribe(c.Context(), req.Email)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.SubscribeResponse{ID: subscriber.ID, Email: subscriber.Email},
	})
}
