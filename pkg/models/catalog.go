package models

// Manufacturer identifiers the catalog is organized under
const (
	ManufacturerFlagstone = "flagstone"
	ManufacturerTremron   = "tremron"
	ManufacturerTriCircle = "tricircle"
)

// Manufacturer is a top-level grouping tab in the product selector
type Manufacturer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Manufacturers is the fixed set of catalog groupings
var Manufacturers = []Manufacturer{
	{ID: ManufacturerFlagstone, Name: "Flagstone Pavers", Logo: "/logos/flagstone.png"},
	{ID: ManufacturerTremron, Name: "Tremron", Logo: "/logos/tremron.png"},
	{ID: ManufacturerTriCircle, Name: "TriCircle", Logo: "/logos/tricircle.png"},
}

// Variant is a color/finish option of a product. Its price, when set,
// overrides the product-level price. A missing ID is slug-derived from the
// product and variant names on save.
type Variant struct {
	ID             string   `json:"id"`
	Name           string   `json:"name" validate:"required"`
	TextureURL     string   `json:"textureUrl" validate:"required,url"`
	ExampleURL     string   `json:"exampleUrl" validate:"omitempty,url"`
	ShopifyURL     string   `json:"shopifyUrl,omitempty" validate:"omitempty,url"`
	PricePerPallet *float64 `json:"pricePerPallet,omitempty"`
}

// Product is a paver product with its ordered variants. The first variant is
// the default selection in the wizard. A missing ID is slug-derived from the
// name on save.
type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name" validate:"required"`
	Description     string    `json:"description,omitempty"`
	ManufacturerID  string    `json:"manufacturerId" validate:"required,oneof=flagstone tremron tricircle"`
	Prompt          string    `json:"prompt,omitempty"`
	Variants        []Variant `json:"variants" validate:"dive"`
	PricePerPallet  *float64  `json:"pricePerPallet,omitempty"`
	SqftPerPallet   *float64  `json:"sqftPerPallet,omitempty"`
	WeightPerPallet *float64  `json:"weightPerPallet,omitempty"`
}

// FindVariant returns the variant with the given ID, or nil
func (p *Product) FindVariant(id string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i]
		}
	}
	return nil
}
