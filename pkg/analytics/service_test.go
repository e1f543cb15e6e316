package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/directpavers/paverquote/ent"
	"github.com/directpavers/paverquote/ent/enttest"
	"github.com/directpavers/paverquote/pkg/cache"
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

func TestTrack(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()

	service.Track(ctx, models.TrackEventRequest{
		SessionID: "sess-1",
		EventType: EventStepEntered,
		Step:      "measurements",
		EventData: map[string]any{"width": 25},
	})

	count, err := client.AnalyticsEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestTrack_DropsMalformedEvents(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()

	service.Track(ctx, models.TrackEventRequest{EventType: EventPageView})
	service.Track(ctx, models.TrackEventRequest{SessionID: "sess-1"})

	count, err := client.AnalyticsEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestOverview(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()

	service.Emit(ctx, "sess-1", EventSessionStarted, "", nil)
	service.Emit(ctx, "sess-1", EventStepEntered, "welcome", nil)
	service.Emit(ctx, "sess-1", EventStepEntered, "measurements", nil)
	service.Emit(ctx, "sess-2", EventSessionStarted, "", nil)
	service.Emit(ctx, "sess-2", EventStepEntered, "welcome", nil)
	service.Emit(ctx, "sess-1", EventSimulationGenerated, "", nil)
	service.Emit(ctx, "sess-1", EventSimulationFailed, "", nil)
	service.Emit(ctx, "sess-1", EventProductSelected, "", map[string]any{"product_name": "Monaco"})
	service.Emit(ctx, "sess-2", EventProductSelected, "", map[string]any{"product_name": "Monaco"})
	service.Emit(ctx, "sess-2", EventProductSelected, "", map[string]any{"product_name": "Bella"})
	service.Emit(ctx, "sess-1", EventCTAClicked, "", map[string]any{"cta": "call"})
	service.Emit(ctx, "sess-1", EventCTAClicked, "", map[string]any{"cta": "whatsapp"})
	service.Emit(ctx, "sess-1", EventCTAClicked, "", map[string]any{"cta": "call"})

	_, err := client.Lead.Create().
		SetName("Jane").
		SetEmail("jane@example.com").
		Save(ctx)
	require.NoError(t, err)

	overview, err := service.Overview(ctx, 30)
	require.NoError(t, err)

	assert.Equal(t, 2, overview.TotalSessions)
	assert.Equal(t, 1, overview.TotalLeads)
	assert.Equal(t, 2, overview.Funnel["welcome"])
	assert.Equal(t, 1, overview.Funnel["measurements"])
	assert.Equal(t, 1, overview.SimulationStats.Success)
	assert.Equal(t, 1, overview.SimulationStats.Failed)
	assert.Equal(t, 2, overview.CTAClicks["call"])
	assert.Equal(t, 1, overview.CTAClicks["whatsapp"])

	require.NotEmpty(t, overview.PopularProducts)
	assert.Equal(t, models.ProductCount{Name: "Monaco", Count: 2}, overview.PopularProducts[0])

	require.Len(t, overview.RecentLeads, 1)
	assert.Equal(t, "Jane", overview.RecentLeads[0].Name)
}

func TestOverview_IsCached(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	service.Emit(ctx, "sess-1", EventSessionStarted, "", nil)

	first, err := service.Overview(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, first.TotalSessions)

	// New events do not appear until the cached window expires
	service.Emit(ctx, "sess-2", EventSessionStarted, "", nil)

	second, err := service.Overview(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, second.TotalSessions)
}

func TestPurgeOlderThan(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()

	_, err := client.AnalyticsEvent.Create().
		SetSessionID("sess-old").
		SetEventType(EventPageView).
		SetCreatedAt(time.Now().AddDate(0, 0, -200)).
		Save(ctx)
	require.NoError(t, err)

	service.Emit(ctx, "sess-new", EventPageView, "", nil)

	n, err := service.PurgeOlderThan(ctx, time.Now().AddDate(0, 0, -180))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	count, err := client.AnalyticsEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
