package wizard

import (
	"time"

	"github.com/directpavers/paverquote/pkg/models"
	"github.com/directpavers/paverquote/pkg/pricing"
)

// Step identifies where a session is in the quote flow
type Step string

// Wizard steps in flow order
const (
	StepWelcome         Step = "welcome"
	StepPhotos          Step = "photos"
	StepMeasurements    Step = "measurements"
	StepLeadCapture     Step = "lead-capture"
	StepPhotoProduct    Step = "photo-product"
	StepPhotoSimulation Step = "photo-simulation"
	StepMaterialQuote   Step = "material-quote"
	StepLaborQuote      Step = "labor-quote"
)

// MaxPhotos bounds how many photos one session can carry
const MaxPhotos = 5

// PhotoEntry is one uploaded photo and its simulation state
type PhotoEntry struct {
	PhotoDataURL      string `json:"photoDataUrl"`
	ProductID         string `json:"productId,omitempty"`
	VariantID         string `json:"variantId,omitempty"`
	SimulationDataURL string `json:"simulationDataUrl,omitempty"`
	Done              bool   `json:"done"`
}

// Session is the full wizard state for one visitor. Pricing config and
// delivery zones are snapshotted at creation so a quote never shifts
// mid-session when an admin edits prices.
type Session struct {
	ID        string    `json:"id"`
	Step      Step      `json:"step"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Pricing models.PricingConfig  `json:"pricing"`
	Zones   []models.DeliveryZone `json:"zones"`

	Photos       []PhotoEntry `json:"photos"`
	CurrentPhoto int          `json:"currentPhoto"`

	WidthFt  float64 `json:"widthFt"`
	LengthFt float64 `json:"lengthFt"`
	ZoneID   string  `json:"zoneId,omitempty"`

	LeadCaptured bool `json:"leadCaptured"`

	// Generation invalidates in-flight simulation responses after the
	// session moves on
	Generation int `json:"generation"`

	Material *pricing.MaterialQuote `json:"material,omitempty"`
	Labor    *pricing.LaborQuote    `json:"labor,omitempty"`
}

// CurrentEntry returns the photo entry being worked on, or nil
func (s *Session) CurrentEntry() *PhotoEntry {
	if s.CurrentPhoto < 0 || s.CurrentPhoto >= len(s.Photos) {
		return nil
	}
	return &s.Photos[s.CurrentPhoto]
}

// LastDoneEntry returns the most recent photo with a finished simulation.
// Quotes and zone recomputes price against this entry's selection.
func (s *Session) LastDoneEntry() *PhotoEntry {
	for i := len(s.Photos) - 1; i >= 0; i-- {
		if s.Photos[i].Done {
			return &s.Photos[i]
		}
	}
	return nil
}

// FindZone returns a zone from the session snapshot, or nil
func (s *Session) FindZone(id string) *models.DeliveryZone {
	for i := range s.Zones {
		if s.Zones[i].ID == id {
			return &s.Zones[i]
		}
	}
	return nil
}
