package handlers

import (
	"context"
	"net/http"
	"time"

	apierrors "github.com/directpavers/paverquote/pkg/api/errors"
	"github.com/directpavers/paverquote/pkg/audit"
	"github.com/directpavers/paverquote/pkg/metrics"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/directpavers/paverquote/pkg/visualizer"
	"github.com/labstack/echo/v4"
)

// SimulateHandler exposes the visualization call outside the wizard, for the
// embeddable try-it widget
type SimulateHandler struct {
	visualizer visualizer.Client
	audit      *audit.Service
	metrics    *metrics.Metrics
	aiTimeout  time.Duration
}

// NewSimulateHandler creates a new standalone simulation handler
func NewSimulateHandler(vis visualizer.Client, auditService *audit.Service, m *metrics.Metrics, aiTimeout time.Duration) *SimulateHandler {
	if aiTimeout <= 0 {
		aiTimeout = 60 * time.Second
	}
	return &SimulateHandler{
		visualizer: vis,
		audit:      auditService,
		metrics:    m,
		aiTimeout:  aiTimeout,
	}
}

// Simulate godoc
// @Summary Generate a visualization
// @Description Apply a paver texture to an uploaded photo and return the render
// @Tags Visualization
// @Accept json
// @Produce json
// @Param request body models.SimulateRequest true "Photo, style, and texture"
// @Success 200 {object} models.SimulateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/v1/simulate [post]
func (h *SimulateHandler) Simulate(c echo.Context) error {
	var req models.SimulateRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.aiTimeout)
	defer cancel()

	started := time.Now()
	result, err := h.visualizer.Generate(ctx, visualizer.Request{
		PhotoDataURL:  req.OriginalImage,
		TextureURL:    req.PaverTexture,
		ProductName:   req.PaverStyle,
		ProductPrompt: req.CustomPrompt,
	})
	elapsed := time.Since(started)

	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordSimulation("failed")
		}
		if h.audit != nil {
			h.audit.Record(ctx, "simulation", audit.StatusError, map[string]any{
				"style":       req.PaverStyle,
				"duration_ms": elapsed.Milliseconds(),
				"error":       err.Error(),
			})
		}
		return respondDomainError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordSimulation("success")
	}
	if h.audit != nil {
		h.audit.Record(ctx, "simulation", audit.StatusSuccess, map[string]any{
			"style":       req.PaverStyle,
			"duration_ms": elapsed.Milliseconds(),
		})
	}
	return c.JSON(http.StatusOK, models.SimulateResponse{GeneratedImage: result.ImageDataURL})
}
