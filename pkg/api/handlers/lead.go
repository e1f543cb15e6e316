package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	apierrors "github.com/directpavers/paverquote/pkg/api/errors"
	"github.com/directpavers/paverquote/pkg/leads"
	"github.com/directpavers/paverquote/pkg/metrics"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/labstack/echo/v4"
)

// LeadHandler handles lead capture and management
type LeadHandler struct {
	service *leads.Service
	metrics *metrics.Metrics
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(service *leads.Service, m *metrics.Metrics) *LeadHandler {
	return &LeadHandler{
		service: service,
		metrics: m,
	}
}

// CreateLead godoc
// @Summary Capture a lead
// @Description Capture visitor contact info from the quote wizard or landing page
// @Tags Leads
// @Accept json
// @Produce json
// @Param lead body models.LeadCreateRequest true "Lead"
// @Success 201 {object} models.LeadResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/leads [post]
func (h *LeadHandler) CreateLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.LeadCreateRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	lead, err := h.service.Create(ctx, req)
	if err != nil {
		return respondDomainError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordLeadCaptured()
	}
	return c.JSON(http.StatusCreated, lead)
}

// ListLeads godoc
// @Summary List leads
// @Description List captured leads, newest first, with optional filters
// @Tags Admin
// @Produce json
// @Param source query string false "Filter by source"
// @Param status query string false "Filter by status (new, contacted, converted)"
// @Param limit query int false "Max rows (default 100)"
// @Success 200 {array} models.LeadResponse
// @Failure 401 {object} models.ErrorResponse
// @Security AdminPassword
// @Router /api/v1/admin/leads [get]
func (h *LeadHandler) ListLeads(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.LeadListRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	list, err := h.service.List(ctx, req)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// UpdateLeadStatus godoc
// @Summary Update lead status
// @Description Move a lead through new → contacted → converted
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param status body models.LeadStatusUpdateRequest true "New status"
// @Success 200 {object} models.LeadResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security AdminPassword
// @Router /api/v1/admin/leads/{id}/status [patch]
func (h *LeadHandler) UpdateLeadStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.BadRequestError(c, "lead id must be numeric")
	}

	var req models.LeadStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	lead, err := h.service.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}
