package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apierrors "github.com/directpavers/paverquote/pkg/api/errors"
	"github.com/directpavers/paverquote/pkg/export"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/labstack/echo/v4"
)

// ExportHandler handles admin lead exports
type ExportHandler struct {
	service *export.Service
}

// NewExportHandler creates a new export handler
func NewExportHandler(service *export.Service) *ExportHandler {
	return &ExportHandler{service: service}
}

// ExportLeads godoc
// @Summary Export leads
// @Description Download the filtered lead list as CSV or Excel
// @Tags Admin
// @Produce application/octet-stream
// @Param format query string false "csv or excel (default csv)"
// @Param source query string false "Filter by source"
// @Param status query string false "Filter by status"
// @Param limit query int false "Max rows (default 100)"
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Security AdminPassword
// @Router /api/v1/admin/leads/export [get]
func (h *ExportHandler) ExportLeads(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	format := c.QueryParam("format")
	if format == "" {
		format = export.FormatCSV
	}

	var req models.LeadListRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	data, contentType, err := h.service.Export(ctx, format, req)
	if err != nil {
		return apierrors.BadRequestError(c, err.Error())
	}

	ext := "csv"
	if format == export.FormatExcel {
		ext = "xlsx"
	}
	filename := fmt.Sprintf("leads-%s.%s", time.Now().Format("2006-01-02"), ext)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	return c.Blob(http.StatusOK, contentType, data)
}
