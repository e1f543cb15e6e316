package handlers

import (
	"context"
	"net/http"
	"time"

	apierrors "github.com/directpavers/paverquote/pkg/api/errors"
	"github.com/directpavers/paverquote/pkg/audit"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/directpavers/paverquote/pkg/zones"
	"github.com/labstack/echo/v4"
)

// ZonesHandler handles delivery zone operations
type ZonesHandler struct {
	service *zones.Service
	audit   *audit.Service
}

// NewZonesHandler creates a new zones handler
func NewZonesHandler(service *zones.Service, auditService *audit.Service) *ZonesHandler {
	return &ZonesHandler{
		service: service,
		audit:   auditService,
	}
}

// ListZones godoc
// @Summary List delivery zones
// @Description Get the active delivery zones offered to visitors
// @Tags Zones
// @Produce json
// @Success 200 {array} models.DeliveryZone
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/zones [get]
func (h *ZonesHandler) ListZones(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	zoneList, err := h.service.List(ctx, true)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, zoneList)
}

// AdminListZones godoc
// @Summary List all delivery zones
// @Description Get every delivery zone, inactive ones included
// @Tags Admin
// @Produce json
// @Success 200 {array} models.DeliveryZone
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security AdminPassword
// @Router /api/v1/admin/zones [get]
func (h *ZonesHandler) AdminListZones(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	zoneList, err := h.service.List(ctx, false)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, zoneList)
}

// UpsertZone godoc
// @Summary Create or replace a delivery zone
// @Description Create or replace a delivery zone
// @Tags Admin
// @Accept json
// @Produce json
// @Param zone body models.DeliveryZone true "Delivery zone"
// @Success 200 {object} models.DeliveryZone
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Security AdminPassword
// @Router /api/v1/admin/zones [put]
func (h *ZonesHandler) UpsertZone(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.DeliveryZone
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	zone, err := h.service.Upsert(ctx, req)
	if err != nil {
		return respondDomainError(c, err)
	}

	h.audit.Record(ctx, "zone_saved", audit.StatusSuccess, map[string]any{"zone_id": zone.ID, "fee": zone.Fee})
	return c.JSON(http.StatusOK, zone)
}

// DeleteZone godoc
// @Summary Delete a delivery zone
// @Description Delete a delivery zone
// @Tags Admin
// @Produce json
// @Param id path string true "Zone ID"
// @Success 200 {object} models.OKResponse
// @Failure 404 {object} models.ErrorResponse
// @Security AdminPassword
// @Router /api/v1/admin/zones/{id} [delete]
func (h *ZonesHandler) DeleteZone(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	if err := h.service.Delete(ctx, id); err != nil {
		return respondDomainError(c, err)
	}

	h.audit.Record(ctx, "zone_deleted", audit.StatusSuccess, map[string]any{"zone_id": id})
	return ok(c)
}
