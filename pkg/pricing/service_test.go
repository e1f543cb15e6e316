package pricing

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/directpavers/paverquote/ent"
	"github.com/directpavers/paverquote/ent/enttest"
	"github.com/directpavers/paverquote/pkg/cache"
	"github.com/directpavers/paverquote/pkg/domain"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err, "Failed to create cache client")

	return NewService(client, cacheClient), client
}

func TestGetConfig_DefaultsWhenEmpty(t *testing.T) {
	service, _ := setupTestService(t)

	cfg := service.GetConfig(context.Background())

	assert.Equal(t, models.DefaultPricing, cfg)
}

func TestUpdateConfig_CreatesThenUpdates(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()

	updated, err := service.UpdateConfig(ctx, models.PricingConfig{
		LaborRatePerSqft:   9.5,
		WastePercentage:    12,
		OwnerPhone:         "+18135550100",
		OwnerWhatsapp:      "+18135550100",
		RequireLeadCapture: false,
	})
	require.NoError(t, err)
	assert.Equal(t, 9.5, updated.LaborRatePerSqft)
	assert.Equal(t, 12.0, updated.WastePercentage)
	assert.False(t, updated.RequireLeadCapture)

	// A second update must reuse the single row
	_, err = service.UpdateConfig(ctx, models.PricingConfig{
		LaborRatePerSqft: 10,
		WastePercentage:  12,
		OwnerPhone:       "+18135550100",
		OwnerWhatsapp:    "+18135550100",
	})
	require.NoError(t, err)

	count, err := client.PricingConfig.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	cfg := service.GetConfig(ctx)
	assert.Equal(t, 10.0, cfg.LaborRatePerSqft)
}

func TestUpdateConfig_RejectsNegativeValues(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	_, err := service.UpdateConfig(ctx, models.PricingConfig{LaborRatePerSqft: -1})
	assert.True(t, domain.IsValidation(err))

	_, err = service.UpdateConfig(ctx, models.PricingConfig{WastePercentage: -5})
	assert.True(t, domain.IsValidation(err))
}

func TestGetConfig_CachesAfterFirstRead(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()

	_, err := service.UpdateConfig(ctx, models.PricingConfig{
		LaborRatePerSqft: 9,
		WastePercentage:  10,
		OwnerPhone:       "+18135550100",
		OwnerWhatsapp:    "+18135550100",
	})
	require.NoError(t, err)

	first := service.GetConfig(ctx)
	assert.Equal(t, 9.0, first.LaborRatePerSqft)

	// Mutating the row directly leaves the cached copy in place
	row, err := client.PricingConfig.Query().First(ctx)
	require.NoError(t, err)
	_, err = row.Update().SetLaborRatePerSqft(11).Save(ctx)
	require.NoError(t, err)

	cached := service.GetConfig(ctx)
	assert.Equal(t, 9.0, cached.LaborRatePerSqft)
}
