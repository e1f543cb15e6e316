package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	apierrors "github.com/directpavers/paverquote/pkg/api/errors"
	"github.com/directpavers/paverquote/pkg/audit"
	"github.com/directpavers/paverquote/pkg/metrics"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/directpavers/paverquote/pkg/visualizer"
	"github.com/directpavers/paverquote/pkg/wizard"
	"github.com/labstack/echo/v4"
)

// WizardHandler drives quote wizard sessions over HTTP
type WizardHandler struct {
	service    *wizard.Service
	visualizer visualizer.Client
	audit      *audit.Service
	metrics    *metrics.Metrics
	aiTimeout  time.Duration
}

// NewWizardHandler creates a new wizard handler
func NewWizardHandler(service *wizard.Service, vis visualizer.Client, auditService *audit.Service, m *metrics.Metrics, aiTimeout time.Duration) *WizardHandler {
	if aiTimeout <= 0 {
		aiTimeout = 60 * time.Second
	}
	return &WizardHandler{
		service:    service,
		visualizer: vis,
		audit:      auditService,
		metrics:    m,
		aiTimeout:  aiTimeout,
	}
}

// StartSession godoc
// @Summary Start a wizard session
// @Description Open a new quote wizard session on the welcome step
// @Tags Wizard
// @Produce json
// @Success 201 {object} wizard.Session
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/wizard/sessions [post]
func (h *WizardHandler) StartSession(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	sess, err := h.service.Start(ctx)
	if err != nil {
		return respondDomainError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordSessionStarted()
	}
	return c.JSON(http.StatusCreated, sess)
}

// GetSession godoc
// @Summary Get a wizard session
// @Description Get the current state of a wizard session
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} wizard.Session
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/wizard/sessions/{id} [get]
func (h *WizardHandler) GetSession(c echo.Context) error {
	sess, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// Begin godoc
// @Summary Leave the welcome step
// @Description Move the session from welcome to photo upload
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} wizard.Session
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/wizard/sessions/{id}/begin [post]
func (h *WizardHandler) Begin(c echo.Context) error {
	sess, err := h.service.Begin(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// SubmitPhotos godoc
// @Summary Upload project photos
// @Description Attach up to five photos as base64 data URLs and advance to measurements
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param photos body models.WizardPhotosRequest true "Photos"
// @Success 200 {object} wizard.Session
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/wizard/sessions/{id}/photos [post]
func (h *WizardHandler) SubmitPhotos(c echo.Context) error {
	var req models.WizardPhotosRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	sess, err := h.service.SubmitPhotos(c.Request().Context(), c.Param("id"), req.Photos)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// SubmitMeasurements godoc
// @Summary Submit project measurements
// @Description Record width and length in feet and advance
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param measurements body models.WizardMeasurementsRequest true "Measurements"
// @Success 200 {object} wizard.Session
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/wizard/sessions/{id}/measurements [post]
func (h *WizardHandler) SubmitMeasurements(c echo.Context) error {
	var req models.WizardMeasurementsRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	sess, err := h.service.SubmitMeasurements(c.Request().Context(), c.Param("id"), req.WidthFt, req.LengthFt)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// CaptureLead godoc
// @Summary Capture the visitor's contact info
// @Description Save the lead and unlock the results
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param lead body models.LeadCreateRequest true "Lead"
// @Success 200 {object} wizard.Session
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/wizard/sessions/{id}/lead [post]
func (h *WizardHandler) CaptureLead(c echo.Context) error {
	var req models.LeadCreateRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if req.Source == "" {
		req.Source = "quote-wizard"
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	sess, err := h.service.CaptureLead(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondDomainError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordLeadCaptured()
	}
	return c.JSON(http.StatusOK, sess)
}

// SkipLead godoc
// @Summary Skip lead capture
// @Description Skip the contact form when the configuration allows it
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} wizard.Session
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/wizard/sessions/{id}/skip-lead [post]
func (h *WizardHandler) SkipLead(c echo.Context) error {
	sess, err := h.service.SkipLead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// SelectProduct godoc
// @Summary Select a paver product
// @Description Pick the paver and variant for the current photo and queue the render
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param selection body models.WizardSelectProductRequest true "Selection"
// @Success 200 {object} wizard.Session
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/wizard/sessions/{id}/select-product [post]
func (h *WizardHandler) SelectProduct(c echo.Context) error {
	var req models.WizardSelectProductRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	sess, err := h.service.SelectProduct(c.Request().Context(), c.Param("id"), req.ProductID, req.VariantID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// Simulate godoc
// @Summary Render the simulation
// @Description Run the AI visualization for the current photo; the session stays on the review step until approval
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} wizard.Session
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/v1/wizard/sessions/{id}/simulate [post]
func (h *WizardHandler) Simulate(c echo.Context) error {
	id := c.Param("id")

	job, err := h.service.StartSimulation(c.Request().Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.aiTimeout)
	defer cancel()

	started := time.Now()
	result, err := h.visualizer.Generate(ctx, visualizer.Request{
		PhotoDataURL:  job.PhotoDataURL,
		TextureURL:    job.Variant.TextureURL,
		ProductName:   job.Product.Name,
		VariantName:   job.Variant.Name,
		ProductPrompt: job.Product.Prompt,
	})
	h.recordRender(ctx, job, err, time.Since(started))
	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordSimulation("failed")
		}
		if _, failErr := h.service.FailSimulation(c.Request().Context(), id, job.Generation, err.Error()); failErr != nil && !errors.Is(failErr, wizard.ErrStale) {
			return respondDomainError(c, failErr)
		}
		return apierrors.GenerationError(c, err)
	}

	sess, err := h.service.CompleteSimulation(c.Request().Context(), id, job.Generation, result.ImageDataURL)
	if errors.Is(err, wizard.ErrStale) {
		// The session moved on while we rendered; hand back its live state
		if h.metrics != nil {
			h.metrics.RecordSimulation("stale")
		}
		current, getErr := h.service.Get(c.Request().Context(), id)
		if getErr != nil {
			return respondDomainError(c, getErr)
		}
		return c.JSON(http.StatusOK, current)
	}
	if err != nil {
		return respondDomainError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordSimulation("success")
	}
	return c.JSON(http.StatusOK, sess)
}

// Approve godoc
// @Summary Approve the rendered simulation
// @Description Accept the render for the current photo and advance to the next photo or the material quote
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} wizard.Session
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/wizard/sessions/{id}/approve [post]
func (h *WizardHandler) Approve(c echo.Context) error {
	sess, err := h.service.ApproveSimulation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}

	if h.metrics != nil && sess.Step == wizard.StepMaterialQuote {
		h.metrics.RecordQuote("material")
	}
	return c.JSON(http.StatusOK, sess)
}

// TryAnother godoc
// @Summary Try another paver style
// @Description Reject the render and return to product selection with the choice cleared
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} wizard.Session
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/wizard/sessions/{id}/try-another [post]
func (h *WizardHandler) TryAnother(c echo.Context) error {
	sess, err := h.service.TryAnotherStyle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *WizardHandler) recordRender(ctx context.Context, job *wizard.SimulationJob, genErr error, elapsed time.Duration) {
	if h.audit == nil {
		return
	}
	details := map[string]any{
		"session_id":  job.SessionID,
		"product_id":  job.Product.ID,
		"variant_id":  job.Variant.ID,
		"duration_ms": elapsed.Milliseconds(),
	}
	status := audit.StatusSuccess
	if genErr != nil {
		status = audit.StatusError
		details["error"] = genErr.Error()
	}
	h.audit.Record(ctx, "simulation", status, details)
}

// SelectZone godoc
// @Summary Select the delivery zone
// @Description Pick the delivery zone and reprice the quote
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param zone body models.WizardZoneRequest true "Zone"
// @Success 200 {object} wizard.Session
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/wizard/sessions/{id}/zone [post]
func (h *WizardHandler) SelectZone(c echo.Context) error {
	var req models.WizardZoneRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	sess, err := h.service.SelectZone(c.Request().Context(), c.Param("id"), req.ZoneID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// ShowLaborQuote godoc
// @Summary Show the full estimate
// @Description Advance from the material quote to the material plus labor estimate
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} wizard.Session
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/wizard/sessions/{id}/labor-quote [post]
func (h *WizardHandler) ShowLaborQuote(c echo.Context) error {
	sess, err := h.service.ShowLaborQuote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordQuote("labor")
	}
	return c.JSON(http.StatusOK, sess)
}

// RecordCTA godoc
// @Summary Record a contact click
// @Description Track a call or WhatsApp button click on the quote screens
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param cta body models.WizardCTARequest true "CTA"
// @Success 200 {object} models.OKResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/wizard/sessions/{id}/cta [post]
func (h *WizardHandler) RecordCTA(c echo.Context) error {
	var req models.WizardCTARequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	if err := h.service.RecordCTA(c.Request().Context(), c.Param("id"), req.CTA); err != nil {
		return respondDomainError(c, err)
	}
	return ok(c)
}

// Restart godoc
// @Summary Restart the wizard
// @Description Send the session back to the welcome step, keeping its snapshots
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} wizard.Session
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/wizard/sessions/{id}/restart [post]
func (h *WizardHandler) Restart(c echo.Context) error {
	sess, err := h.service.Restart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}
