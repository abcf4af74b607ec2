package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/record-shop/internal/service"
)

// GenresHandler exposes genre endpoints.
type GenresHandler struct {
	genres *service.GenreService
}

// NewGenresHandler constructs handler.
func NewGenresHandler(genreService *service.GenreService) *GenresHandler {
	return &GenresHandler{genres: genreService}
}

// Get handles GET /genres/:id.
func (h *GenresHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid genre id")
	}

	genre, err := h.genres.GetGenre(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": genre.ID, "name": genre.Name}})
}

// List handles GET /genres.
func (h *GenresHandler) List(c *fiber.Ctx) error {
	genres, err := h.genres.ListGenres(c.Context())
	if err != nil {
		return err
	}

	items := make([]fiber.Map, 0, len(genres))
	for _, genre := range genres {
		items = append(items, fiber.Map{"id": genre.ID, "name": genre.Name})
	}
	return c.JSON(fiber.Map{"data": items})
}
