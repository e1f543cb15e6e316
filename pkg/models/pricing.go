package models

// PricingConfig is the single live pricing configuration. It is read at
// wizard start and treated as an immutable snapshot for that session.
type PricingConfig struct {
	LaborRatePerSqft   float64 `json:"laborRatePerSqft" validate:"min=0"`
	WastePercentage    float64 `json:"wastePercentage" validate:"min=0"`
	OwnerPhone         string  `json:"ownerPhone"`
	OwnerWhatsapp      string  `json:"ownerWhatsapp"`
	RequireLeadCapture bool    `json:"requireLeadCapture"`
}

// DefaultPricing is the fallback used when the store has no config row or is
// unreachable
var DefaultPricing = PricingConfig{
	LaborRatePerSqft:   8.00,
	WastePercentage:    10,
	OwnerPhone:         "+18138191450",
	OwnerWhatsapp:      "+18138191450",
	RequireLeadCapture: true,
}

// DeliveryZone is a named service area with a flat delivery fee
type DeliveryZone struct {
	ID                string  `json:"id"`
	Name              string  `json:"name" validate:"required"`
	Label             string  `json:"label"`
	Fee               float64 `json:"fee" validate:"min=0"`
	RadiusDescription string  `json:"radiusDescription,omitempty"`
	SortOrder         int     `json:"sortOrder"`
	Active            bool    `json:"active"`
}

// DefaultDeliveryZones is the fallback zone list when the store is empty
var DefaultDeliveryZones = []DeliveryZone{
	{ID: "tampa", Name: "tampa", Label: "Tampa (+ 25 miles)", Fee: 300, SortOrder: 1, Active: true},
	{ID: "orlando", Name: "orlando", Label: "Orlando (+ 25 miles)", Fee: 400, SortOrder: 2, Active: true},
}
