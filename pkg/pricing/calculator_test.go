package pricing

import (
	"testing"

	"github.com/directpavers/paverquote/pkg/domain"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func testZone() *models.DeliveryZone {
	return &models.DeliveryZone{ID: "tampa", Name: "tampa", Label: "Tampa (+ 25 miles)", Fee: 300, SortOrder: 1, Active: true}
}

func TestComputeMaterialQuote(t *testing.T) {
	cfg := models.PricingConfig{LaborRatePerSqft: 8, WastePercentage: 10}
	product := &models.Product{ID: "monaco", Name: "Monaco"}

	q, err := ComputeMaterialQuote(25, 20, cfg, product, nil, testZone())
	require.NoError(t, err)

	assert.Equal(t, 500.0, q.AreaSqft)
	assert.Equal(t, 550.0, q.AreaWithWaste)
	assert.Equal(t, 100.0, q.SqftPerPallet)
	assert.Equal(t, 6, q.PalletsNeeded)
	assert.Equal(t, 285.0, q.PricePerPallet)
	assert.Equal(t, 1710.0, q.MaterialSubtotal)
	assert.Equal(t, 300.0, q.DeliveryFee)
	assert.Equal(t, 2010.0, q.MaterialTotal)
}

func TestComputeMaterialQuote_VariantPriceOverridesProduct(t *testing.T) {
	cfg := models.PricingConfig{WastePercentage: 10}
	product := &models.Product{
		ID:             "monaco",
		Name:           "Monaco",
		PricePerPallet: floatPtr(310),
	}
	variant := &models.Variant{ID: "monaco-sand", Name: "Sand Dune", PricePerPallet: floatPtr(335)}

	q, err := ComputeMaterialQuote(25, 20, cfg, product, variant, testZone())
	require.NoError(t, err)
	assert.Equal(t, 335.0, q.PricePerPallet)

	// Without a variant override the product price applies
	q, err = ComputeMaterialQuote(25, 20, cfg, product, &models.Variant{ID: "monaco-gray", Name: "Gray"}, testZone())
	require.NoError(t, err)
	assert.Equal(t, 310.0, q.PricePerPallet)
}

func TestComputeMaterialQuote_CustomPalletCoverage(t *testing.T) {
	cfg := models.PricingConfig{WastePercentage: 10}
	product := &models.Product{ID: "venetian", Name: "Venetian", SqftPerPallet: floatPtr(80)}

	q, err := ComputeMaterialQuote(25, 20, cfg, product, nil, testZone())
	require.NoError(t, err)

	// 550 / 80 = 6.875, rounded up
	assert.Equal(t, 7, q.PalletsNeeded)
}

func TestComputeMaterialQuote_RoundsPartialSqftUp(t *testing.T) {
	cfg := models.PricingConfig{WastePercentage: 10}
	product := &models.Product{ID: "monaco", Name: "Monaco"}

	// 10.5 x 10 = 105, with waste 115.5 -> 116
	q, err := ComputeMaterialQuote(10.5, 10, cfg, product, nil, testZone())
	require.NoError(t, err)
	assert.Equal(t, 116.0, q.AreaWithWaste)
	assert.Equal(t, 2, q.PalletsNeeded)
}

func TestComputeMaterialQuote_ZeroWaste(t *testing.T) {
	cfg := models.PricingConfig{WastePercentage: 0}
	product := &models.Product{ID: "monaco", Name: "Monaco"}

	q, err := ComputeMaterialQuote(10, 10, cfg, product, nil, testZone())
	require.NoError(t, err)
	assert.Equal(t, 100.0, q.AreaWithWaste)
	assert.Equal(t, 1, q.PalletsNeeded)
}

func TestComputeMaterialQuote_RejectsInvalidDimensions(t *testing.T) {
	cfg := models.PricingConfig{WastePercentage: 10}
	product := &models.Product{ID: "monaco", Name: "Monaco"}

	_, err := ComputeMaterialQuote(0, 20, cfg, product, nil, testZone())
	assert.True(t, domain.IsValidation(err))

	_, err = ComputeMaterialQuote(25, -3, cfg, product, nil, testZone())
	assert.True(t, domain.IsValidation(err))

	_, err = ComputeMaterialQuote(25000, 20, cfg, product, nil, testZone())
	assert.True(t, domain.IsValidation(err))
}

func TestComputeMaterialQuote_RequiresProductAndZone(t *testing.T) {
	cfg := models.PricingConfig{WastePercentage: 10}

	_, err := ComputeMaterialQuote(25, 20, cfg, nil, nil, testZone())
	assert.True(t, domain.IsValidation(err))

	_, err = ComputeMaterialQuote(25, 20, cfg, &models.Product{ID: "monaco", Name: "Monaco"}, nil, nil)
	assert.True(t, domain.IsValidation(err))
}

func TestComputeLaborQuote(t *testing.T) {
	cfg := models.PricingConfig{LaborRatePerSqft: 8, WastePercentage: 10}
	product := &models.Product{ID: "monaco", Name: "Monaco"}

	material, err := ComputeMaterialQuote(25, 20, cfg, product, nil, testZone())
	require.NoError(t, err)

	labor, err := ComputeLaborQuote(25, 20, cfg, material)
	require.NoError(t, err)

	// Labor covers the raw area, not the wasted area
	assert.Equal(t, 500.0, labor.AreaSqft)
	assert.Equal(t, 4000.0, labor.LaborTotal)
	assert.Equal(t, 2010.0, labor.MaterialTotal)
	assert.Equal(t, 6010.0, labor.GrandTotal)
}

func TestComputeQuotesAreDeterministic(t *testing.T) {
	cfg := models.PricingConfig{LaborRatePerSqft: 8, WastePercentage: 10}
	product := &models.Product{ID: "monaco", Name: "Monaco"}

	first, err := ComputeMaterialQuote(17.3, 21.9, cfg, product, nil, testZone())
	require.NoError(t, err)
	second, err := ComputeMaterialQuote(17.3, 21.9, cfg, product, nil, testZone())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$1,710.00", FormatUSD(1710))
	assert.Equal(t, "$300.00", FormatUSD(300))
	assert.Equal(t, "$6,010.00", FormatUSD(6010))
	assert.Equal(t, "$0.00", FormatUSD(0))
}
