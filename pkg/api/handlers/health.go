package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/directpavers/paverquote/pkg/cache"
	"github.com/directpavers/paverquote/pkg/database"
	"github.com/labstack/echo/v4"
)

// HealthHandler reports service liveness
type HealthHandler struct {
	db    *database.Client
	cache *cache.Client
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.Client, cacheClient *cache.Client) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: cacheClient,
	}
}

// Health godoc
// @Summary Health check
// @Description Check API, database, and cache health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	status := map[string]string{
		"status":   "ok",
		"database": "ok",
		"cache":    "ok",
	}
	code := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		code = http.StatusServiceUnavailable
	}
	if err := h.cache.Redis.Ping(ctx).Err(); err != nil {
		status["status"] = "degraded"
		status["cache"] = "unreachable"
	}

	return c.JSON(code, status)
}
