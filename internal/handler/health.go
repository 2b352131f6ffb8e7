package handler

import (
	"context"
	"time"

	"rurallearn/internal/domain"
	"rurallearn/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}

// HealthHandler reports whether the session cache is reachable
type HealthHandler struct {
	cache domain.Cache
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Check handles GET /healthz
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(HealthResponse{Status: "degraded", Cache: "unreachable"})
	}
	return c.JSON(HealthResponse{Status: "ok", Cache: "ok"})
}
