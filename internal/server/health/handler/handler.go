package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/avelichko/mini-erp-cafe/internal/server/health/dto"
	"github.com/avelichko/mini-erp-cafe/pkg/deps"
	"github.com/avelichko/mini-erp-cafe/pkg/logger"
)

type Handler struct {
	Logger *logger.CanonicalLogger
}

func NewHandler(d deps.App) *Handler {
	h := &Handler{
		Logger: d.Logger,
	}

	// Liveness endpoint (no auth required)
	d.Fiber.Get("/health", h.health)

	return h
}

// health godoc
// @Summary     Health check
// @Description Liveness probe; returns a static status and the current timestamp
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.HealthResponse
// @Router      /health [get]
func (h *Handler) health(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "health_check"))

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}
