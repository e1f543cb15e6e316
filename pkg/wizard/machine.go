package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/directpavers/paverquote/pkg/analytics"
	"github.com/directpavers/paverquote/pkg/catalog"
	"github.com/directpavers/paverquote/pkg/domain"
	"github.com/directpavers/paverquote/pkg/leads"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/directpavers/paverquote/pkg/pricing"
	"github.com/directpavers/paverquote/pkg/zones"
	"github.com/google/uuid"
)

// ErrStale marks a simulation response that arrived after the session moved
// on. Callers drop the result without surfacing an error to the visitor.
var ErrStale = errors.New("stale simulation response")

// EventSink receives funnel events. Implementations must swallow their own
// failures; emitting is never allowed to break the wizard.
type EventSink interface {
	Emit(ctx context.Context, sessionID, eventType, step string, data map[string]any)
}

// SimulationJob carries everything the visualizer needs for one render
type SimulationJob struct {
	SessionID    string
	Generation   int
	PhotoDataURL string
	Product      models.Product
	Variant      models.Variant
}

// Service drives wizard sessions through the quote flow
type Service struct {
	store   *Store
	catalog *catalog.Service
	pricing *pricing.Service
	zones   *zones.Service
	leads   *leads.Service
	sink    EventSink
}

// NewService creates a new wizard service
func NewService(store *Store, catalogSvc *catalog.Service, pricingSvc *pricing.Service, zonesSvc *zones.Service, leadsSvc *leads.Service, sink EventSink) *Service {
	return &Service{
		store:   store,
		catalog: catalogSvc,
		pricing: pricingSvc,
		zones:   zonesSvc,
		leads:   leadsSvc,
		sink:    sink,
	}
}

// Start opens a new session on the welcome step with the current pricing
// config and zone list snapshotted in
func (s *Service) Start(ctx context.Context) (*Session, error) {
	cfg := s.pricing.GetConfig(ctx)
	zoneList, err := s.zones.List(ctx, true)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sess := &Session{
		ID:        uuid.NewString(),
		Step:      StepWelcome,
		CreatedAt: now,
		UpdatedAt: now,
		Pricing:   cfg,
		Zones:     zoneList,
	}
	s.store.Put(sess)

	s.emit(ctx, sess.ID, analytics.EventSessionStarted, "", nil)
	s.emit(ctx, sess.ID, analytics.EventStepEntered, string(StepWelcome), nil)
	return copySession(sess), nil
}

// Get returns the current session state
func (s *Service) Get(ctx context.Context, id string) (*Session, error) {
	return s.store.Get(id)
}

// Begin moves from the welcome step to photo upload
func (s *Service) Begin(ctx context.Context, id string) (*Session, error) {
	sess, err := s.store.Update(id, func(w *Session) error {
		if w.Step != StepWelcome {
			return stepError(w.Step, "begin")
		}
		w.Step = StepPhotos
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emitTransition(ctx, id, StepWelcome, StepPhotos)
	return sess, nil
}

// SubmitPhotos attaches the uploaded photos and advances to measurements
func (s *Service) SubmitPhotos(ctx context.Context, id string, photos []string) (*Session, error) {
	if len(photos) == 0 {
		return nil, domain.NewValidationError("at least one photo is required")
	}
	if len(photos) > MaxPhotos {
		return nil, domain.NewValidationError(fmt.Sprintf("at most %d photos are allowed", MaxPhotos))
	}
	for _, p := range photos {
		if !strings.HasPrefix(p, "data:image/") {
			return nil, domain.NewValidationError("photos must be base64 image data URLs")
		}
	}

	sess, err := s.store.Update(id, func(w *Session) error {
		if w.Step != StepPhotos {
			return stepError(w.Step, "photo upload")
		}
		w.Photos = make([]PhotoEntry, len(photos))
		for i, p := range photos {
			w.Photos[i] = PhotoEntry{PhotoDataURL: p}
		}
		w.CurrentPhoto = 0
		w.Step = StepMeasurements
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, id, analytics.EventPhotoUploaded, string(StepPhotos), map[string]any{"count": len(photos)})
	s.emitTransition(ctx, id, StepPhotos, StepMeasurements)
	return sess, nil
}

// SubmitMeasurements records the project dimensions. The next step depends on
// whether the config requires lead capture before results.
func (s *Service) SubmitMeasurements(ctx context.Context, id string, widthFt, lengthFt float64) (*Session, error) {
	if err := pricing.ValidateDimensions(widthFt, lengthFt); err != nil {
		return nil, err
	}

	var next Step
	sess, err := s.store.Update(id, func(w *Session) error {
		if w.Step != StepMeasurements {
			return stepError(w.Step, "measurements")
		}
		w.WidthFt = widthFt
		w.LengthFt = lengthFt
		if w.Pricing.RequireLeadCapture && !w.LeadCaptured {
			next = StepLeadCapture
		} else {
			next = StepPhotoProduct
		}
		w.Step = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emitTransition(ctx, id, StepMeasurements, next)
	return sess, nil
}

// CaptureLead saves the visitor's contact info and unlocks the results
func (s *Service) CaptureLead(ctx context.Context, id string, req models.LeadCreateRequest) (*Session, error) {
	current, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if current.Step != StepLeadCapture {
		return nil, stepError(current.Step, "lead capture")
	}

	req.SessionID = id
	if req.Source == "" {
		req.Source = "quote-wizard"
	}
	lead, err := s.leads.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	sess, err := s.store.Update(id, func(w *Session) error {
		if w.Step != StepLeadCapture {
			return stepError(w.Step, "lead capture")
		}
		w.LeadCaptured = true
		w.Step = StepPhotoProduct
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, id, analytics.EventLeadCaptured, string(StepLeadCapture), map[string]any{"lead_id": lead.ID})
	s.emitTransition(ctx, id, StepLeadCapture, StepPhotoProduct)
	return sess, nil
}

// SkipLead bypasses lead capture when the config allows it
func (s *Service) SkipLead(ctx context.Context, id string) (*Session, error) {
	sess, err := s.store.Update(id, func(w *Session) error {
		if w.Step != StepLeadCapture {
			return stepError(w.Step, "skip")
		}
		if w.Pricing.RequireLeadCapture {
			return domain.NewValidationError("lead capture is required before results")
		}
		w.Step = StepPhotoProduct
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emitTransition(ctx, id, StepLeadCapture, StepPhotoProduct)
	return sess, nil
}

// SelectProduct picks the paver for the current photo and queues a
// simulation. The bumped generation makes any in-flight render stale.
func (s *Service) SelectProduct(ctx context.Context, id, productID, variantID string) (*Session, error) {
	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(product.Variants) == 0 {
		return nil, domain.NewValidationError("product has no selectable variants")
	}

	variant := &product.Variants[0]
	if variantID != "" {
		variant = product.FindVariant(variantID)
		if variant == nil {
			return nil, domain.NewValidationError("unknown product variant")
		}
	}

	sess, err := s.store.Update(id, func(w *Session) error {
		if w.Step != StepPhotoProduct {
			return stepError(w.Step, "product selection")
		}
		entry := w.CurrentEntry()
		if entry == nil {
			return domain.NewValidationError("no photo to apply the product to")
		}
		entry.ProductID = product.ID
		entry.VariantID = variant.ID
		entry.SimulationDataURL = ""
		entry.Done = false
		w.Generation++
		w.Step = StepPhotoSimulation
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, id, analytics.EventProductSelected, string(StepPhotoProduct), map[string]any{
		"product_id":   product.ID,
		"product_name": product.Name,
		"variant_id":   variant.ID,
	})
	s.emitTransition(ctx, id, StepPhotoProduct, StepPhotoSimulation)
	return sess, nil
}

// StartSimulation returns the render job for the current photo. The embedded
// generation must be echoed back on completion or failure.
func (s *Service) StartSimulation(ctx context.Context, id string) (*SimulationJob, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if sess.Step != StepPhotoSimulation {
		return nil, stepError(sess.Step, "simulation")
	}
	entry := sess.CurrentEntry()
	if entry == nil || entry.ProductID == "" {
		return nil, domain.NewValidationError("no product selected for the current photo")
	}

	product, err := s.catalog.Get(ctx, entry.ProductID)
	if err != nil {
		return nil, err
	}
	variant := product.FindVariant(entry.VariantID)
	if variant == nil {
		return nil, domain.NewValidationError("selected variant no longer exists")
	}

	return &SimulationJob{
		SessionID:    id,
		Generation:   sess.Generation,
		PhotoDataURL: entry.PhotoDataURL,
		Product:      *product,
		Variant:      *variant,
	}, nil
}

// CompleteSimulation stores the rendered image for the visitor to review.
// The session stays on the simulation step until they approve it or ask for
// another style. Results from a superseded generation return ErrStale and
// change nothing.
func (s *Service) CompleteSimulation(ctx context.Context, id string, generation int, imageDataURL string) (*Session, error) {
	if !strings.HasPrefix(imageDataURL, "data:image/") {
		return nil, domain.NewGenerationError(fmt.Errorf("render did not produce an image"))
	}

	sess, err := s.store.Update(id, func(w *Session) error {
		if generation != w.Generation || w.Step != StepPhotoSimulation {
			return ErrStale
		}
		entry := w.CurrentEntry()
		if entry == nil || entry.ProductID == "" {
			return ErrStale
		}
		entry.SimulationDataURL = imageDataURL
		return nil
	})
	if err != nil {
		return nil, err
	}

	entry := sess.CurrentEntry()
	s.emit(ctx, id, analytics.EventSimulationGenerated, string(StepPhotoSimulation), map[string]any{
		"product_id": entry.ProductID,
		"variant_id": entry.VariantID,
	})
	return sess, nil
}

// ApproveSimulation accepts the render for the current photo. Intermediate
// photos loop back to product selection for the next one; approving the last
// photo computes the material quote and advances.
func (s *Service) ApproveSimulation(ctx context.Context, id string) (*Session, error) {
	current, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if current.Step != StepPhotoSimulation {
		return nil, stepError(current.Step, "approval")
	}
	entry := current.CurrentEntry()
	if entry == nil || entry.SimulationDataURL == "" {
		return nil, domain.NewValidationError("no rendered simulation to approve")
	}

	product, err := s.catalog.Get(ctx, entry.ProductID)
	if err != nil {
		return nil, err
	}
	variant := product.FindVariant(entry.VariantID)

	var next Step
	sess, err := s.store.Update(id, func(w *Session) error {
		if w.Step != StepPhotoSimulation {
			return stepError(w.Step, "approval")
		}
		e := w.CurrentEntry()
		if e == nil || e.SimulationDataURL == "" {
			return domain.NewValidationError("no rendered simulation to approve")
		}
		e.Done = true

		if w.CurrentPhoto+1 < len(w.Photos) {
			w.CurrentPhoto++
			next = StepPhotoProduct
		} else {
			next = StepMaterialQuote
			if err := computeMaterialWith(w, product, variant); err != nil {
				return err
			}
		}
		w.Step = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emitTransition(ctx, id, StepPhotoSimulation, next)
	if next == StepMaterialQuote {
		s.emit(ctx, id, analytics.EventQuoteViewed, string(StepMaterialQuote), map[string]any{"quote": "material"})
	}
	return sess, nil
}

// TryAnotherStyle rejects the render and returns to product selection with
// the choice cleared. The bumped generation voids any in-flight render.
func (s *Service) TryAnotherStyle(ctx context.Context, id string) (*Session, error) {
	sess, err := s.store.Update(id, func(w *Session) error {
		if w.Step != StepPhotoSimulation {
			return stepError(w.Step, "style change")
		}
		entry := w.CurrentEntry()
		if entry == nil {
			return stepError(w.Step, "style change")
		}
		entry.ProductID = ""
		entry.VariantID = ""
		entry.SimulationDataURL = ""
		entry.Done = false
		w.Generation++
		w.Step = StepPhotoProduct
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emitTransition(ctx, id, StepPhotoSimulation, StepPhotoProduct)
	return sess, nil
}

// FailSimulation records a failed render and returns the session to product
// selection with the previous choice intact
func (s *Service) FailSimulation(ctx context.Context, id string, generation int, reason string) (*Session, error) {
	sess, err := s.store.Update(id, func(w *Session) error {
		if generation != w.Generation || w.Step != StepPhotoSimulation {
			return ErrStale
		}
		w.Step = StepPhotoProduct
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, id, analytics.EventSimulationFailed, string(StepPhotoSimulation), map[string]any{"reason": reason})
	s.emitTransition(ctx, id, StepPhotoSimulation, StepPhotoProduct)
	return sess, nil
}

// SelectZone picks the delivery zone and reprices the quote in place
func (s *Service) SelectZone(ctx context.Context, id, zoneID string) (*Session, error) {
	current, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if current.Step != StepMaterialQuote && current.Step != StepLaborQuote {
		return nil, stepError(current.Step, "zone selection")
	}
	if current.FindZone(zoneID) == nil {
		return nil, domain.NewValidationError("unknown delivery zone")
	}

	last := current.LastDoneEntry()
	if last == nil {
		return nil, domain.NewValidationError("no completed simulation to price")
	}
	product, err := s.catalog.Get(ctx, last.ProductID)
	if err != nil {
		return nil, err
	}
	variant := product.FindVariant(last.VariantID)

	return s.store.Update(id, func(w *Session) error {
		if w.Step != StepMaterialQuote && w.Step != StepLaborQuote {
			return stepError(w.Step, "zone selection")
		}
		w.ZoneID = zoneID
		if err := computeMaterialWith(w, product, variant); err != nil {
			return err
		}
		if w.Labor != nil {
			labor, err := pricing.ComputeLaborQuote(w.WidthFt, w.LengthFt, w.Pricing, *w.Material)
			if err != nil {
				return err
			}
			w.Labor = &labor
		}
		return nil
	})
}

// ShowLaborQuote advances from the material quote to the full estimate
func (s *Service) ShowLaborQuote(ctx context.Context, id string) (*Session, error) {
	sess, err := s.store.Update(id, func(w *Session) error {
		if w.Step != StepMaterialQuote {
			return stepError(w.Step, "labor quote")
		}
		if w.Material == nil {
			return domain.NewValidationError("material quote is not ready")
		}
		labor, err := pricing.ComputeLaborQuote(w.WidthFt, w.LengthFt, w.Pricing, *w.Material)
		if err != nil {
			return err
		}
		w.Labor = &labor
		w.Step = StepLaborQuote
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emitTransition(ctx, id, StepMaterialQuote, StepLaborQuote)
	s.emit(ctx, id, analytics.EventQuoteViewed, string(StepLaborQuote), map[string]any{"quote": "labor"})
	return sess, nil
}

// RecordCTA tracks a contact button click on the quote screens
func (s *Service) RecordCTA(ctx context.Context, id, cta string) error {
	sess, err := s.store.Get(id)
	if err != nil {
		return err
	}
	s.emit(ctx, id, analytics.EventCTAClicked, string(sess.Step), map[string]any{"cta": cta})
	return nil
}

// Restart sends the session back to the welcome step with all wizard state
// cleared. Only the pricing and zone snapshots survive; a second pass asks
// for contact info again (persisted leads are unaffected).
func (s *Service) Restart(ctx context.Context, id string) (*Session, error) {
	sess, err := s.store.Update(id, func(w *Session) error {
		w.Photos = nil
		w.CurrentPhoto = 0
		w.WidthFt = 0
		w.LengthFt = 0
		w.ZoneID = ""
		w.Material = nil
		w.Labor = nil
		w.LeadCaptured = false
		w.Generation++
		w.Step = StepWelcome
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, id, analytics.EventStepEntered, string(StepWelcome), map[string]any{"restart": true})
	return sess, nil
}

func computeMaterialWith(w *Session, product *models.Product, variant *models.Variant) error {
	zone := w.FindZone(w.ZoneID)
	if zone == nil {
		if len(w.Zones) == 0 {
			return domain.NewValidationError("no delivery zones are available")
		}
		zone = &w.Zones[0]
		w.ZoneID = zone.ID
	}

	quote, err := pricing.ComputeMaterialQuote(w.WidthFt, w.LengthFt, w.Pricing, product, variant, zone)
	if err != nil {
		return err
	}
	w.Material = &quote
	return nil
}

func (s *Service) emit(ctx context.Context, sessionID, eventType, step string, data map[string]any) {
	if s.sink != nil {
		s.sink.Emit(ctx, sessionID, eventType, step, data)
	}
}

func (s *Service) emitTransition(ctx context.Context, sessionID string, from, to Step) {
	s.emit(ctx, sessionID, analytics.EventStepCompleted, string(from), nil)
	s.emit(ctx, sessionID, analytics.EventStepEntered, string(to), nil)
}

func stepError(current Step, action string) error {
	return domain.NewValidationError(fmt.Sprintf("%s is not allowed on step %q", action, current))
}
