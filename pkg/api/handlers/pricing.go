package handlers

import (
	"context"
	"net/http"
	"time"

	apierrors "github.com/directpavers/paverquote/pkg/api/errors"
	"github.com/directpavers/paverquote/pkg/audit"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/directpavers/paverquote/pkg/pricing"
	"github.com/labstack/echo/v4"
)

// PricingHandler handles pricing configuration operations
type PricingHandler struct {
	service *pricing.Service
	audit   *audit.Service
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(service *pricing.Service, auditService *audit.Service) *PricingHandler {
	return &PricingHandler{
		service: service,
		audit:   auditService,
	}
}

// GetConfig godoc
// @Summary Get pricing configuration
// @Description Get the live pricing configuration used for new quotes
// @Tags Pricing
// @Produce json
// @Success 200 {object} models.PricingConfig
// @Router /api/v1/pricing [get]
func (h *PricingHandler) GetConfig(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	return c.JSON(http.StatusOK, h.service.GetConfig(ctx))
}

// UpdateConfig godoc
// @Summary Update pricing configuration
// @Description Replace the live pricing configuration. Active sessions keep their snapshot.
// @Tags Admin
// @Accept json
// @Produce json
// @Param config body models.PricingConfig true "Pricing configuration"
// @Success 200 {object} models.PricingConfig
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Security AdminPassword
// @Router /api/v1/admin/pricing [put]
func (h *PricingHandler) UpdateConfig(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.PricingConfig
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	cfg, err := h.service.UpdateConfig(ctx, req)
	if err != nil {
		h.audit.Record(ctx, "pricing_updated", audit.StatusError, map[string]any{"error": err.Error()})
		return respondDomainError(c, err)
	}

	h.audit.Record(ctx, "pricing_updated", audit.StatusSuccess, map[string]any{
		"labor_rate_per_sqft": cfg.LaborRatePerSqft,
		"waste_percentage":    cfg.WastePercentage,
	})
	return c.JSON(http.StatusOK, cfg)
}
