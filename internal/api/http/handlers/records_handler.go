package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/record-shop/internal/api/dto"
	"github.com/spec-kit/record-shop/internal/service"
)

// RecordsHandler exposes catalog endpoints.
type RecordsHandler struct {
	records *service.RecordService
}

// NewRecordsHandler constructs handler.
func NewRecordsHandler(recordService *service.RecordService) *RecordsHandler {
	return &RecordsHandler{records: recordService}
}

// Create handles POST /records (admin).
func (h *RecordsHandler) Create(c *fiber.Ctx) error {
	var req dto.RecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	record, err := h.records.CreateRecord(c.Context(), service.RecordInput{
		Title:    req.Title,
		Artist:   req.Artist,
		Price:    req.Price,
		Quantity: req.Quantity,
		GenreID:  req.GenreID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewRecordResponse(record)})
}

// Update handles PUT /records/:id (admin).
func (h *RecordsHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req dto.RecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	record, err := h.records.UpdateRecord(c.Context(), id, service.RecordInput{
		Title:    req.Title,
		Artist:   req.Artist,
		Price:    req.Price,
		Quantity: req.Quantity,
		GenreID:  req.GenreID,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRecordResponse(record)})
}

// Delete handles DELETE /records/:id (admin).
func (h *RecordsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.records.DeleteRecord(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// SetQuantity handles PATCH /records/:id/quantity (admin).
func (h *RecordsHandler) SetQuantity(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.records.SetQuantity(c.Context(), id, req.Quantity); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Get handles GET /records/:id.
func (h *RecordsHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	record, err := h.records.GetRecord(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRecordResponse(record)})
}

// List handles GET /records.
func (h *RecordsHandler) List(c *fiber.Ctx) error {
	records, err := h.records.ListRecords(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRecordResponses(records)})
}

func parseIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
