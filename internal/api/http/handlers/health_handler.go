package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/record-shop/internal/persistence"
)

// HealthHandler reports process and dependency health.
type HealthHandler struct {
	postgres *persistence.Postgres
	redis    *persistence.Redis
}

// NewHealthHandler constructs handler.
func NewHealthHandler(postgres *persistence.Postgres, redis *persistence.Redis) *HealthHandler {
	return &HealthHandler{postgres: postgres, redis: redis}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := http.StatusOK
	deps := fiber.Map{}

	if h.postgres != nil && h.postgres.Pool != nil {
		if err := h.postgres.Pool.Ping(c.Context()); err != nil {
			deps["postgres"] = "down"
			status = http.StatusServiceUnavailable
		} else {
			deps["postgres"] = "up"
		}
	} else {
		deps["postgres"] = "not configured"
	}

	if err := h.redis.Ping(c.Context()); err != nil {
		deps["redis"] = "down"
		status = http.StatusServiceUnavailable
	} else {
		deps["redis"] = "up"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":       http.StatusText(status),
		"dependencies": deps,
	})
}
