package pricing

import (
	"math"

	"github.com/directpavers/paverquote/pkg/domain"
	"github.com/directpavers/paverquote/pkg/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallbacks applied when neither the variant nor the product carries a value
const (
	DefaultSqftPerPallet  = 100.0
	DefaultPricePerPallet = 285.0
)

// MaxDimensionFt bounds a single side of the measured area
const MaxDimensionFt = 10000.0

// MaterialQuote is a fully computed material estimate. All dollar amounts are
// exact; formatting happens at render time.
type MaterialQuote struct {
	ProductID        string  `json:"productId"`
	ProductName      string  `json:"productName"`
	VariantID        string  `json:"variantId"`
	VariantName      string  `json:"variantName"`
	ShopifyURL       string  `json:"shopifyUrl,omitempty"`
	AreaSqft         float64 `json:"areaSqft"`
	WastePercentage  float64 `json:"wastePercentage"`
	AreaWithWaste    float64 `json:"areaWithWaste"`
	SqftPerPallet    float64 `json:"sqftPerPallet"`
	PalletsNeeded    int     `json:"palletsNeeded"`
	PricePerPallet   float64 `json:"pricePerPallet"`
	MaterialSubtotal float64 `json:"materialSubtotal"`
	ZoneID           string  `json:"zoneId"`
	ZoneLabel        string  `json:"zoneLabel"`
	DeliveryFee      float64 `json:"deliveryFee"`
	MaterialTotal    float64 `json:"materialTotal"`
}

// LaborQuote is the installation estimate layered on top of a material quote
type LaborQuote struct {
	AreaSqft         float64 `json:"areaSqft"`
	LaborRatePerSqft float64 `json:"laborRatePerSqft"`
	LaborTotal       float64 `json:"laborTotal"`
	MaterialTotal    float64 `json:"materialTotal"`
	GrandTotal       float64 `json:"grandTotal"`
}

// ValidateDimensions rejects measurements the calculator cannot price
func ValidateDimensions(widthFt, lengthFt float64) error {
	if widthFt <= 0 || lengthFt <= 0 {
		return domain.NewValidationError("width and length must be greater than zero")
	}
	if widthFt > MaxDimensionFt || lengthFt > MaxDimensionFt {
		return domain.NewValidationError("width and length are out of range")
	}
	return nil
}

// Area returns the raw project area in square feet
func Area(widthFt, lengthFt float64) float64 {
	return widthFt * lengthFt
}

// AreaWithWaste applies the waste percentage and rounds up to a whole square foot
func AreaWithWaste(areaSqft, wastePercentage float64) float64 {
	return math.Ceil(areaSqft * (1 + wastePercentage/100))
}

// EffectiveSqftPerPallet returns the product coverage, or the default
func EffectiveSqftPerPallet(product *models.Product) float64 {
	if product != nil && product.SqftPerPallet != nil && *product.SqftPerPallet > 0 {
		return *product.SqftPerPallet
	}
	return DefaultSqftPerPallet
}

// EffectivePricePerPallet resolves the pallet price. A variant override wins
// over the product price, and both fall back to the default.
func EffectivePricePerPallet(product *models.Product, variant *models.Variant) float64 {
	if variant != nil && variant.PricePerPallet != nil && *variant.PricePerPallet > 0 {
		return *variant.PricePerPallet
	}
	if product != nil && product.PricePerPallet != nil && *product.PricePerPallet > 0 {
		return *product.PricePerPallet
	}
	return DefaultPricePerPallet
}

// PalletsNeeded rounds the wasted area up to whole pallets
func PalletsNeeded(areaWithWaste, sqftPerPallet float64) int {
	if sqftPerPallet <= 0 {
		sqftPerPallet = DefaultSqftPerPallet
	}
	return int(math.Ceil(areaWithWaste / sqftPerPallet))
}

// ComputeMaterialQuote prices a product selection against measured dimensions,
// the live pricing config, and the chosen delivery zone. Identical inputs
// always produce an identical quote.
func ComputeMaterialQuote(widthFt, lengthFt float64, cfg models.PricingConfig, product *models.Product, variant *models.Variant, zone *models.DeliveryZone) (MaterialQuote, error) {
	if err := ValidateDimensions(widthFt, lengthFt); err != nil {
		return MaterialQuote{}, err
	}
	if product == nil {
		return MaterialQuote{}, domain.NewValidationError("a product selection is required")
	}
	if zone == nil {
		return MaterialQuote{}, domain.NewValidationError("a delivery zone is required")
	}

	area := Area(widthFt, lengthFt)
	wasted := AreaWithWaste(area, cfg.WastePercentage)
	perPallet := EffectiveSqftPerPallet(product)
	pallets := PalletsNeeded(wasted, perPallet)
	price := EffectivePricePerPallet(product, variant)
	subtotal := float64(pallets) * price

	q := MaterialQuote{
		ProductID:        product.ID,
		ProductName:      product.Name,
		AreaSqft:         area,
		WastePercentage:  cfg.WastePercentage,
		AreaWithWaste:    wasted,
		SqftPerPallet:    perPallet,
		PalletsNeeded:    pallets,
		PricePerPallet:   price,
		MaterialSubtotal: subtotal,
		ZoneID:           zone.ID,
		ZoneLabel:        zone.Label,
		DeliveryFee:      zone.Fee,
		MaterialTotal:    subtotal + zone.Fee,
	}
	if variant != nil {
		q.VariantID = variant.ID
		q.VariantName = variant.Name
		q.ShopifyURL = variant.ShopifyURL
	}
	return q, nil
}

// ComputeLaborQuote prices installation over the raw area. Labor is linear and
// carries no waste factor.
func ComputeLaborQuote(widthFt, lengthFt float64, cfg models.PricingConfig, material MaterialQuote) (LaborQuote, error) {
	if err := ValidateDimensions(widthFt, lengthFt); err != nil {
		return LaborQuote{}, err
	}

	area := Area(widthFt, lengthFt)
	labor := area * cfg.LaborRatePerSqft

	return LaborQuote{
		AreaSqft:         area,
		LaborRatePerSqft: cfg.LaborRatePerSqft,
		LaborTotal:       labor,
		MaterialTotal:    material.MaterialTotal,
		GrandTotal:       material.MaterialTotal + labor,
	}, nil
}

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders a dollar amount with grouping separators, e.g. "$1,710.00"
func FormatUSD(amount float64) string {
	return usd.Sprintf("$%.2f", amount)
}
