package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/record-shop/internal/api/dto"
	"github.com/spec-kit/record-shop/internal/auth"
	"github.com/spec-kit/record-shop/internal/service"
)

// ReviewsHandler exposes review endpoints.
type ReviewsHandler struct {
	reviews *service.ReviewService
}

// NewReviewsHandler constructs handler.
func NewReviewsHandler(reviewService *service.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviewService}
}

// Create handles POST /reviews. The author is always the authenticated user.
func (h *ReviewsHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	review, err := h.reviews.CreateReview(c.Context(), service.ReviewInput{
		UserID:   claims.UserID,
		RecordID: req.RecordID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewReviewResponse(review)})
}

// Get handles GET /reviews/:id.
func (h *ReviewsHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	review, err := h.reviews.GetReview(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReviewResponse(review)})
}

// ListByRecord handles GET /records/:id/reviews.
func (h *ReviewsHandler) ListByRecord(c *fiber.Ctx) error {
	recordID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	reviews, err := h.reviews.ListReviewsByRecord(c.Context(), recordID)
	if err != nil {
		return err
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, dto.NewReviewResponse(&reviews[i]))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// Update handles PUT /reviews/:id. Only the author may edit.
func (h *ReviewsHandler) Update(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	existing, err := h.reviews.GetReview(c.Context(), id)
	if err != nil {
		return err
	}
	if existing.UserID != claims.UserID && !claims.IsAdmin {
		return fiber.NewError(http.StatusForbidden, "not the review author")
	}

	review, err := h.reviews.UpdateReview(c.Context(), id, req.Rating, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReviewResponse(review)})
}

// Delete handles DELETE /reviews/:id. Only the author or an admin may delete.
func (h *ReviewsHandler) Delete(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	existing, err := h.reviews.GetReview(c.Context(), id)
	if err != nil {
		return err
	}
	if existing.UserID != claims.UserID && !claims.IsAdmin {
		return fiber.NewError(http.StatusForbidden, "not the review author")
	}

	if err := h.reviews.DeleteReview(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
