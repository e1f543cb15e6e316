package models

// WizardPhotosRequest uploads the project photos
type WizardPhotosRequest struct {
	Photos []string `json:"photos" validate:"required,min=1"`
}

// WizardMeasurementsRequest records the project dimensions in feet
type WizardMeasurementsRequest struct {
	WidthFt  float64 `json:"widthFt" validate:"required,gt=0"`
	LengthFt float64 `json:"lengthFt" validate:"required,gt=0"`
}

// WizardSelectProductRequest picks a paver for the current photo. An empty
// variant selects the product's first variant.
type WizardSelectProductRequest struct {
	ProductID string `json:"productId" validate:"required"`
	VariantID string `json:"variantId,omitempty"`
}

// WizardZoneRequest picks the delivery zone for the quote
type WizardZoneRequest struct {
	ZoneID string `json:"zoneId" validate:"required"`
}

// WizardCTARequest records a contact button click
type WizardCTARequest struct {
	CTA string `json:"cta" validate:"required"`
}

// SimulateRequest is the standalone visualization call used by the embed page.
// Images travel as base64 data URLs; the texture is fetched by URL server-side.
type SimulateRequest struct {
	OriginalImage string `json:"originalImage" validate:"required"`
	PaverStyle    string `json:"paverStyle" validate:"required"`
	PaverTexture  string `json:"paverTexture" validate:"required"`
	CustomPrompt  string `json:"customPrompt,omitempty"`
}

// SimulateResponse carries the generated render
type SimulateResponse struct {
	GeneratedImage string `json:"generatedImage"`
}
