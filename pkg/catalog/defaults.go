package catalog

import "github.com/directpavers/paverquote/pkg/models"

func ptr(v float64) *float64 { return &v }

// DefaultCatalog is the built-in product list used when the store is empty.
// Admin edits move the catalog into the database; until then the wizard runs
// off this snapshot.
var DefaultCatalog = []models.Product{
	{
		ID:             "monaco",
		Name:           "Monaco",
		Description:    "Classic three-piece pattern paver with a smooth finish.",
		ManufacturerID: models.ManufacturerFlagstone,
		SqftPerPallet:  ptr(100),
		Variants: []models.Variant{
			{ID: "monaco-sand-dune", Name: "Sand Dune", TextureURL: "https://cdn.directpavers.com/textures/monaco-sand-dune.jpg", ExampleURL: "https://cdn.directpavers.com/examples/monaco-sand-dune.jpg"},
			{ID: "monaco-sierra", Name: "Sierra", TextureURL: "https://cdn.directpavers.com/textures/monaco-sierra.jpg", ExampleURL: "https://cdn.directpavers.com/examples/monaco-sierra.jpg"},
			{ID: "monaco-white-sand", Name: "White Sand", TextureURL: "https://cdn.directpavers.com/textures/monaco-white-sand.jpg", ExampleURL: "https://cdn.directpavers.com/examples/monaco-white-sand.jpg"},
		},
	},
	{
		ID:             "venetian",
		Name:           "Venetian",
		Description:    "Tumbled old-world look with softened edges.",
		ManufacturerID: models.ManufacturerFlagstone,
		SqftPerPallet:  ptr(100),
		Variants: []models.Variant{
			{ID: "venetian-autumn-blend", Name: "Autumn Blend", TextureURL: "https://cdn.directpavers.com/textures/venetian-autumn-blend.jpg", ExampleURL: "https://cdn.directpavers.com/examples/venetian-autumn-blend.jpg"},
			{ID: "venetian-cream", Name: "Cream", TextureURL: "https://cdn.directpavers.com/textures/venetian-cream.jpg", ExampleURL: "https://cdn.directpavers.com/examples/venetian-cream.jpg"},
		},
	},
	{
		ID:             "olde-towne",
		Name:           "Olde Towne",
		Description:    "Cobblestone-style paver for driveways and walkways.",
		ManufacturerID: models.ManufacturerTremron,
		SqftPerPallet:  ptr(100),
		Variants: []models.Variant{
			{ID: "olde-towne-sierra", Name: "Sierra", TextureURL: "https://cdn.directpavers.com/textures/olde-towne-sierra.jpg", ExampleURL: "https://cdn.directpavers.com/examples/olde-towne-sierra.jpg"},
			{ID: "olde-towne-harvest", Name: "Harvest", TextureURL: "https://cdn.directpavers.com/textures/olde-towne-harvest.jpg", ExampleURL: "https://cdn.directpavers.com/examples/olde-towne-harvest.jpg"},
		},
	},
	{
		ID:             "stonehurst",
		Name:           "Stonehurst",
		Description:    "Large-format slabs with a natural stone texture.",
		ManufacturerID: models.ManufacturerTremron,
		SqftPerPallet:  ptr(90),
		Variants: []models.Variant{
			{ID: "stonehurst-graphite", Name: "Graphite", TextureURL: "https://cdn.directpavers.com/textures/stonehurst-graphite.jpg", ExampleURL: "https://cdn.directpavers.com/examples/stonehurst-graphite.jpg"},
			{ID: "stonehurst-linen", Name: "Linen", TextureURL: "https://cdn.directpavers.com/textures/stonehurst-linen.jpg", ExampleURL: "https://cdn.directpavers.com/examples/stonehurst-linen.jpg"},
		},
	},
	{
		ID:             "bella",
		Name:           "Bella",
		Description:    "Modern rectangular paver with crisp edges.",
		ManufacturerID: models.ManufacturerTriCircle,
		SqftPerPallet:  ptr(100),
		Variants: []models.Variant{
			{ID: "bella-slate", Name: "Slate", TextureURL: "https://cdn.directpavers.com/textures/bella-slate.jpg", ExampleURL: "https://cdn.directpavers.com/examples/bella-slate.jpg"},
			{ID: "bella-oyster", Name: "Oyster", TextureURL: "https://cdn.directpavers.com/textures/bella-oyster.jpg", ExampleURL: "https://cdn.directpavers.com/examples/bella-oyster.jpg"},
		},
	},
}
