package visualizer

import "context"

// Request carries everything needed to render one simulation
type Request struct {
	// PhotoDataURL is the customer photo as a base64 data URL
	PhotoDataURL string
	// TextureURL is the paver swatch, either an https URL or a data URL
	TextureURL  string
	ProductName string
	VariantName string
	// ProductPrompt is optional extra guidance from the catalog
	ProductPrompt string
}

// Result is a completed simulation
type Result struct {
	// ImageDataURL is the edited photo as a base64 data URL
	ImageDataURL string
}

// Client renders paver simulations over customer photos
type Client interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}
