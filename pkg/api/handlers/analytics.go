package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	apierrors "github.com/directpavers/paverquote/pkg/api/errors"
	"github.com/directpavers/paverquote/pkg/analytics"
	"github.com/directpavers/paverquote/pkg/audit"
	"github.com/directpavers/paverquote/pkg/metrics"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles event tracking and the admin overview
type AnalyticsHandler struct {
	service *analytics.Service
	audit   *audit.Service
	metrics *metrics.Metrics
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *analytics.Service, auditService *audit.Service, m *metrics.Metrics) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		audit:   auditService,
		metrics: m,
	}
}

// TrackEvent godoc
// @Summary Track an analytics event
// @Description Accept a funnel event from the storefront. The sink is best-effort and always acknowledges.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param event body models.TrackEventRequest true "Event"
// @Success 202 {object} models.OKResponse
// @Router /api/v1/analytics/events [post]
func (h *AnalyticsHandler) TrackEvent(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var req models.TrackEventRequest
	if err := c.Bind(&req); err == nil {
		h.service.Track(ctx, req)
		if h.metrics != nil {
			h.metrics.RecordEventTracked()
		}
	}

	// Tracking never blocks or fails the storefront
	return c.JSON(http.StatusAccepted, models.OKResponse{OK: true})
}

// Overview godoc
// @Summary Analytics overview
// @Description Funnel, simulation outcomes, CTA clicks, top products, and recent leads
// @Tags Admin
// @Produce json
// @Param days query int false "Window in days (default: 30, max: 365)"
// @Success 200 {object} models.AnalyticsOverview
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security AdminPassword
// @Router /api/v1/admin/analytics/overview [get]
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	days := analytics.DefaultPeriodDays
	if daysStr := c.QueryParam("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 1 || parsed > analytics.MaxPeriodDays {
			return apierrors.BadRequestError(c, "days must be between 1 and 365")
		}
		days = parsed
	}

	overview, err := h.service.Overview(ctx, days)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, overview)
}

// ListLogs godoc
// @Summary List activity logs
// @Description Operational log of captures, edits, and failures, newest first
// @Tags Admin
// @Produce json
// @Param action query string false "Filter by action"
// @Param limit query int false "Max rows (default 100)"
// @Success 200 {array} models.ActivityLogEntry
// @Failure 401 {object} models.ErrorResponse
// @Security AdminPassword
// @Router /api/v1/admin/logs [get]
func (h *AnalyticsHandler) ListLogs(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, _ = strconv.Atoi(limitStr)
	}

	entries, err := h.audit.List(ctx, c.QueryParam("action"), limit)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}
