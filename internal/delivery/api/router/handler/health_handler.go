package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves the unauthenticated liveness check.
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Check reports "ok" while the database answers and 503 otherwise.
func (h *HealthHandler) Check(c echo.Context) error {
	if err := h.db.PingContext(c.Request().Context()); err != nil {
		h.logger.Warn("Health check failed", slog.Any("error", err))

		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
