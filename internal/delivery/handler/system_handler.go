package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/benjaminhze/cribhunter/internal/infrastructure/logging"
)

const healthCheckTimeout = 3 * time.Second

// PingFunc checks that a dependency is reachable.
type PingFunc func(ctx context.Context) error

type SystemHandler struct {
	version string
	pingDB  PingFunc
	logger  *logging.Logger
}

func NewSystemHandler(version string, pingDB PingFunc, logger *logging.Logger) *SystemHandler {
	return &SystemHandler{version: version, pingDB: pingDB, logger: logger}
}

// GET /
func (h *SystemHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "CribHunter API",
		"version": h.version,
		"status":  "running",
	})
}

// GET /health
func (h *SystemHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.pingDB(ctx); err != nil {
		h.logger.Warn("health check failed", "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Service unhealthy: database unreachable")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
