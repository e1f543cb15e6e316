package catalog

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

func testProduct() models.Product {
	return models.Product{
		Name:           "Monaco",
		Description:    "Three-piece pattern paver",
		ManufacturerID: models.ManufacturerFlagstone,
		Variants: []models.Variant{
			{Name: "Sand Dune", TextureURL: "https://cdn.example.com/textures/monaco-sand-dune.jpg"},
			{Name: "Sierra", TextureURL: "https://cdn.example.com/textures/monaco-sierra.jpg"},
		},
	}
}

func TestList_DefaultCatalogWhenEmpty(t *testing.T) {
	service, _ := setupTestService(t)

	products, err := service.List(context.Background())
	require.NoError(t, err)

	assert.Len(t, products, len(DefaultCatalog))
	assert.Equal(t, "monaco", products[0].ID)
	assert.NotEmpty(t, products[0].Variants)
}

func TestUpsert_CreatesProductWithVariants(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	created, err := service.Upsert(ctx, testProduct())
	require.NoError(t, err)
	assert.Equal(t, "monaco", created.ID)
	require.Len(t, created.Variants, 2)
	assert.Equal(t, "monaco-sand-dune", created.Variants[0].ID)

	got, err := service.Get(ctx, "monaco")
	require.NoError(t, err)
	require.Len(t, got.Variants, 2)
	assert.Equal(t, "Sand Dune", got.Variants[0].Name)
	assert.Equal(t, "Sierra", got.Variants[1].Name)
}

func TestUpsert_ReplacesVariantSet(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()

	p := testProduct()
	_, err := service.Upsert(ctx, p)
	require.NoError(t, err)

	p.Variants = []models.Variant{
		{Name: "White Sand", TextureURL: "https://cdn.example.com/textures/monaco-white-sand.jpg"},
	}
	_, err = service.Upsert(ctx, p)
	require.NoError(t, err)

	got, err := service.Get(ctx, "monaco")
	require.NoError(t, err)
	require.Len(t, got.Variants, 1)
	assert.Equal(t, "monaco-white-sand", got.Variants[0].ID)

	count, err := client.Variant.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpsert_Validation(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	_, err := service.Upsert(ctx, models.Product{ManufacturerID: models.ManufacturerFlagstone})
	assert.True(t, domain.IsValidation(err))

	_, err = service.Upsert(ctx, models.Product{Name: "Monaco", ManufacturerID: "unknown"})
	assert.True(t, domain.IsValidation(err))

	p := testProduct()
	p.Variants[0].TextureURL = ""
	_, err = service.Upsert(ctx, p)
	assert.True(t, domain.IsValidation(err))
}

func TestListByManufacturer(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	_, err := service.Upsert(ctx, testProduct())
	require.NoError(t, err)

	other := testProduct()
	other.Name = "Olde Towne"
	other.ID = ""
	other.ManufacturerID = models.ManufacturerTremron
	for i := range other.Variants {
		other.Variants[i].ID = ""
	}
	_, err = service.Upsert(ctx, other)
	require.NoError(t, err)

	tremron, err := service.ListByManufacturer(ctx, models.ManufacturerTremron)
	require.NoError(t, err)
	require.Len(t, tremron, 1)
	assert.Equal(t, "olde-towne", tremron[0].ID)
}

func TestDelete_RemovesProductAndVariants(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()

	_, err := service.Upsert(ctx, testProduct())
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, "monaco"))

	count, err := client.Variant.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	err = service.Delete(ctx, "monaco")
	assert.True(t, domain.IsNotFound(err))
}

func TestGet_NotFound(t *testing.T) {
	service, _ := setupTestService(t)

	// Defaults are served while the store is empty, so an unknown ID misses
	_, err := service.Get(context.Background(), "no-such-product")
	assert.True(t, domain.IsNotFound(err))
}
