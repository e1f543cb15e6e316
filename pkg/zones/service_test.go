package zones

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

func TestSlugify(t *testing.T) {
	assert.Equal(t, "tampa", Slugify("Tampa"))
	assert.Equal(t, "st-pete-beach", Slugify("St. Pete Beach"))
	assert.Equal(t, "orlando-metro", Slugify("  Orlando   Metro  "))
}

func TestList_DefaultsWhenEmpty(t *testing.T) {
	service, _ := setupTestService(t)

	zones, err := service.List(context.Background(), true)
	require.NoError(t, err)

	require.Len(t, zones, 2)
	assert.Equal(t, "tampa", zones[0].ID)
	assert.Equal(t, 300.0, zones[0].Fee)
	assert.Equal(t, "orlando", zones[1].ID)
	assert.Equal(t, 400.0, zones[1].Fee)
}

func TestUpsert_CreateAndUpdate(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	created, err := service.Upsert(ctx, models.DeliveryZone{
		Name:      "Sarasota",
		Label:     "Sarasota (+ 25 miles)",
		Fee:       450,
		SortOrder: 3,
		Active:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "sarasota", created.ID)

	created.Fee = 475
	updated, err := service.Upsert(ctx, *created)
	require.NoError(t, err)
	assert.Equal(t, 475.0, updated.Fee)

	got, err := service.Get(ctx, "sarasota")
	require.NoError(t, err)
	assert.Equal(t, 475.0, got.Fee)
}

func TestList_OrdersBySortOrderAndFiltersInactive(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	_, err := service.Upsert(ctx, models.DeliveryZone{Name: "Orlando", Fee: 400, SortOrder: 2, Active: true})
	require.NoError(t, err)
	_, err = service.Upsert(ctx, models.DeliveryZone{Name: "Tampa", Fee: 300, SortOrder: 1, Active: true})
	require.NoError(t, err)
	_, err = service.Upsert(ctx, models.DeliveryZone{Name: "Miami", Fee: 600, SortOrder: 3, Active: false})
	require.NoError(t, err)

	all, err := service.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "tampa", all[0].ID)
	assert.Equal(t, "orlando", all[1].ID)

	active, err := service.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, z := range active {
		assert.True(t, z.Active)
	}
}

func TestUpsert_Validation(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	_, err := service.Upsert(ctx, models.DeliveryZone{Name: ""})
	assert.True(t, domain.IsValidation(err))

	_, err = service.Upsert(ctx, models.DeliveryZone{Name: "Tampa", Fee: -10})
	assert.True(t, domain.IsValidation(err))
}

func TestDelete(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	_, err := service.Upsert(ctx, models.DeliveryZone{Name: "Tampa", Fee: 300, Active: true})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, "tampa"))

	err = service.Delete(ctx, "tampa")
	assert.True(t, domain.IsNotFound(err))
}

func TestUpsert_InvalidatesCache(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	_, err := service.Upsert(ctx, models.DeliveryZone{Name: "Tampa", Fee: 300, SortOrder: 1, Active: true})
	require.NoError(t, err)

	first, err := service.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, first, 1)

	_, err = service.Upsert(ctx, models.DeliveryZone{Name: "Orlando", Fee: 400, SortOrder: 2, Active: true})
	require.NoError(t, err)

	second, err := service.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, second, 2)
}
