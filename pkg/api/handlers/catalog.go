package handlers

import (
	"context"
	"net/http"
	"time"

	apierrors "github.com/directpavers/paverquote/pkg/api/errors"
	"github.com/directpavers/paverquote/pkg/audit"
	"github.com/directpavers/paverquote/pkg/catalog"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/labstack/echo/v4"
)

// CatalogHandler handles product catalog operations
type CatalogHandler struct {
	service *catalog.Service
	audit   *audit.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *catalog.Service, auditService *audit.Service) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		audit:   auditService,
	}
}

// ListManufacturers godoc
// @Summary List manufacturers
// @Description Get the catalog's manufacturer tabs
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Manufacturer
// @Router /api/v1/manufacturers [get]
func (h *CatalogHandler) ListManufacturers(c echo.Context) error {
	return c.JSON(http.StatusOK, models.Manufacturers)
}

// ListProducts godoc
// @Summary List products
// @Description Get all products with variants, optionally filtered by manufacturer
// @Tags Catalog
// @Produce json
// @Param manufacturer query string false "Manufacturer ID (flagstone, tremron, tricircle)"
// @Success 200 {array} models.Product
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	manufacturer := c.QueryParam("manufacturer")

	var (
		products []models.Product
		err      error
	)
	if manufacturer != "" {
		products, err = h.service.ListByManufacturer(ctx, manufacturer)
	} else {
		products, err = h.service.List(ctx)
	}
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get a product
// @Description Get one product with its variants
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/products/{id} [get]
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	product, err := h.service.Get(ctx, c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

// UpsertProduct godoc
// @Summary Create or replace a product
// @Description Create or replace a product and its full variant set
// @Tags Admin
// @Accept json
// @Produce json
// @Param product body models.Product true "Product"
// @Success 200 {object} models.Product
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Security AdminPassword
// @Router /api/v1/admin/products [put]
func (h *CatalogHandler) UpsertProduct(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.Product
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	product, err := h.service.Upsert(ctx, req)
	if err != nil {
		h.audit.Record(ctx, "product_saved", audit.StatusError, map[string]any{"product_id": req.ID, "error": err.Error()})
		return respondDomainError(c, err)
	}

	h.audit.Record(ctx, "product_saved", audit.StatusSuccess, map[string]any{"product_id": product.ID})
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product and its variants
// @Tags Admin
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.OKResponse
// @Failure 404 {object} models.ErrorResponse
// @Security AdminPassword
// @Router /api/v1/admin/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	if err := h.service.Delete(ctx, id); err != nil {
		return respondDomainError(c, err)
	}

	h.audit.Record(ctx, "product_deleted", audit.StatusSuccess, map[string]any{"product_id": id})
	return ok(c)
}
