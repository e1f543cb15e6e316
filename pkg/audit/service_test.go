package audit

import (
	"context"
	"testing"
	"time"

	"github.com/directpavers/paverquote/ent"
	"github.com/directpavers/paverquote/ent/enttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewService(client), client
}

func TestRecordAndList(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	service.Record(ctx, "lead_created", StatusSuccess, map[string]any{"lead_id": 1})
	service.Record(ctx, "simulation_failed", StatusError, map[string]any{"reason": "timeout"})

	entries, err := service.List(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first
	assert.Equal(t, "simulation_failed", entries[0].Action)
	assert.Equal(t, StatusError, entries[0].Status)
	assert.Equal(t, "lead_created", entries[1].Action)
}

func TestList_FilterByAction(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	service.Record(ctx, "lead_created", StatusSuccess, nil)
	service.Record(ctx, "zone_updated", StatusSuccess, nil)
	service.Record(ctx, "lead_created", StatusSuccess, nil)

	entries, err := service.List(ctx, "lead_created", 10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRecord_UnknownStatusBecomesSuccess(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	service.Record(ctx, "config_updated", "weird", nil)

	entries, err := service.List(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, StatusSuccess, entries[0].Status)
}

func TestPurge(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()

	old, err := client.ActivityLog.Create().
		SetAction("lead_created").
		SetCreatedAt(time.Now().Add(-200 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_ = old

	service.Record(ctx, "lead_created", StatusSuccess, nil)

	n, err := service.Purge(ctx, time.Now().Add(-180*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entries, err := service.List(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
