package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/directpavers/paverquote/ent/enttest"
	"github.com/directpavers/paverquote/pkg/analytics"
	"github.com/directpavers/paverquote/pkg/audit"
	"github.com/directpavers/paverquote/pkg/cache"
	"github.com/directpavers/paverquote/pkg/catalog"
	"github.com/directpavers/paverquote/pkg/domain"
	"github.com/directpavers/paverquote/pkg/email"
	"github.com/directpavers/paverquote/pkg/leads"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/directpavers/paverquote/pkg/pricing"
	"github.com/directpavers/paverquote/pkg/zones"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

const (
	testPhoto  = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg=="
	testRender = "data:image/png;base64,UkVOREVSRUQtSU1BR0U="
)

type testEnv struct {
	wizard    *Service
	pricing   *pricing.Service
	analytics *analytics.Service
}

func setupTestEnv(t *testing.T) *testEnv {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err, "Failed to create cache client")

	pricingSvc := pricing.NewService(client, cacheClient)
	catalogSvc := catalog.NewService(client, cacheClient)
	zonesSvc := zones.NewService(client, cacheClient)
	analyticsSvc := analytics.NewService(client, cacheClient)
	emailSvc := email.NewService("", "quotes@directpavers.com", "Direct Pavers", "")
	leadsSvc := leads.NewService(client, emailSvc, audit.NewService(client))

	store := NewStore(30*time.Minute, time.Minute)
	wizardSvc := NewService(store, catalogSvc, pricingSvc, zonesSvc, leadsSvc, analyticsSvc)

	return &testEnv{wizard: wizardSvc, pricing: pricingSvc, analytics: analyticsSvc}
}

// advance walks a fresh session to the photo-product step with one 25x20
// photo and a captured lead
func advance(t *testing.T, env *testEnv, photos int) *Session {
	t.Helper()
	ctx := context.Background()

	sess, err := env.wizard.Start(ctx)
	require.NoError(t, err)

	sess, err = env.wizard.Begin(ctx, sess.ID)
	require.NoError(t, err)

	uploads := make([]string, photos)
	for i := range uploads {
		uploads[i] = testPhoto
	}
	sess, err = env.wizard.SubmitPhotos(ctx, sess.ID, uploads)
	require.NoError(t, err)

	sess, err = env.wizard.SubmitMeasurements(ctx, sess.ID, 25, 20)
	require.NoError(t, err)
	require.Equal(t, StepLeadCapture, sess.Step)

	sess, err = env.wizard.CaptureLead(ctx, sess.ID, models.LeadCreateRequest{
		Name:  "Jane Smith",
		Email: "jane@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, StepPhotoProduct, sess.Step)
	return sess
}

// simulate selects a product, completes the render, and approves it for the
// current photo
func simulate(t *testing.T, env *testEnv, id string) *Session {
	t.Helper()
	ctx := context.Background()

	sess, err := env.wizard.SelectProduct(ctx, id, "monaco", "")
	require.NoError(t, err)
	require.Equal(t, StepPhotoSimulation, sess.Step)

	job, err := env.wizard.StartSimulation(ctx, id)
	require.NoError(t, err)

	sess, err = env.wizard.CompleteSimulation(ctx, id, job.Generation, testRender)
	require.NoError(t, err)
	require.Equal(t, StepPhotoSimulation, sess.Step)
	require.Equal(t, testRender, sess.CurrentEntry().SimulationDataURL)

	sess, err = env.wizard.ApproveSimulation(ctx, id)
	require.NoError(t, err)
	return sess
}

func TestStart_SnapshotsConfigAndZones(t *testing.T) {
	env := setupTestEnv(t)

	sess, err := env.wizard.Start(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StepWelcome, sess.Step)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, models.DefaultPricing, sess.Pricing)
	require.Len(t, sess.Zones, 2)
	assert.Equal(t, "tampa", sess.Zones[0].ID)
}

func TestFullFlow_SinglePhoto(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	sess := advance(t, env, 1)
	sess = simulate(t, env, sess.ID)

	require.Equal(t, StepMaterialQuote, sess.Step)
	require.NotNil(t, sess.Material)
	assert.Equal(t, 500.0, sess.Material.AreaSqft)
	assert.Equal(t, 550.0, sess.Material.AreaWithWaste)
	assert.Equal(t, 6, sess.Material.PalletsNeeded)
	assert.Equal(t, 1710.0, sess.Material.MaterialSubtotal)
	assert.Equal(t, "tampa", sess.Material.ZoneID)
	assert.Equal(t, 2010.0, sess.Material.MaterialTotal)

	assert.True(t, sess.Photos[0].Done)
	assert.Equal(t, testRender, sess.Photos[0].SimulationDataURL)

	sess, err := env.wizard.ShowLaborQuote(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, StepLaborQuote, sess.Step)
	require.NotNil(t, sess.Labor)
	assert.Equal(t, 4000.0, sess.Labor.LaborTotal)
	assert.Equal(t, 6010.0, sess.Labor.GrandTotal)
}

func TestGuards_RejectOutOfOrderActions(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	sess, err := env.wizard.Start(ctx)
	require.NoError(t, err)

	_, err = env.wizard.SubmitPhotos(ctx, sess.ID, []string{testPhoto})
	assert.True(t, domain.IsValidation(err))

	_, err = env.wizard.SubmitMeasurements(ctx, sess.ID, 25, 20)
	assert.True(t, domain.IsValidation(err))

	_, err = env.wizard.SelectProduct(ctx, sess.ID, "monaco", "")
	assert.True(t, domain.IsValidation(err))

	_, err = env.wizard.ShowLaborQuote(ctx, sess.ID)
	assert.True(t, domain.IsValidation(err))

	_, err = env.wizard.StartSimulation(ctx, sess.ID)
	assert.True(t, domain.IsValidation(err))
}

func TestSubmitPhotos_Validation(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	sess, err := env.wizard.Start(ctx)
	require.NoError(t, err)
	_, err = env.wizard.Begin(ctx, sess.ID)
	require.NoError(t, err)

	_, err = env.wizard.SubmitPhotos(ctx, sess.ID, nil)
	assert.True(t, domain.IsValidation(err))

	_, err = env.wizard.SubmitPhotos(ctx, sess.ID, []string{"https://example.com/photo.jpg"})
	assert.True(t, domain.IsValidation(err))

	tooMany := make([]string, MaxPhotos+1)
	for i := range tooMany {
		tooMany[i] = testPhoto
	}
	_, err = env.wizard.SubmitPhotos(ctx, sess.ID, tooMany)
	assert.True(t, domain.IsValidation(err))
}

func TestLeadCapture_SkipAllowedOnlyWhenOptional(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	sess := advanceToLeadCapture(t, env)

	// Default config requires lead capture
	_, err := env.wizard.SkipLead(ctx, sess.ID)
	assert.True(t, domain.IsValidation(err))
}

func TestLeadCapture_SkippedEntirelyWhenNotRequired(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	cfg := models.DefaultPricing
	cfg.RequireLeadCapture = false
	_, err := env.pricing.UpdateConfig(ctx, cfg)
	require.NoError(t, err)

	sess, err := env.wizard.Start(ctx)
	require.NoError(t, err)
	_, err = env.wizard.Begin(ctx, sess.ID)
	require.NoError(t, err)
	_, err = env.wizard.SubmitPhotos(ctx, sess.ID, []string{testPhoto})
	require.NoError(t, err)

	sess, err = env.wizard.SubmitMeasurements(ctx, sess.ID, 25, 20)
	require.NoError(t, err)
	assert.Equal(t, StepPhotoProduct, sess.Step)
}

func TestMultiPhotoLoop(t *testing.T) {
	env := setupTestEnv(t)

	sess := advance(t, env, 2)

	sess = simulate(t, env, sess.ID)
	require.Equal(t, StepPhotoProduct, sess.Step)
	assert.Equal(t, 1, sess.CurrentPhoto)
	assert.True(t, sess.Photos[0].Done)
	assert.False(t, sess.Photos[1].Done)

	sess = simulate(t, env, sess.ID)
	require.Equal(t, StepMaterialQuote, sess.Step)
	assert.True(t, sess.Photos[1].Done)
	require.NotNil(t, sess.Material)
}

func TestFailSimulation_RevertsButKeepsSelection(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	sess := advance(t, env, 1)

	sess, err := env.wizard.SelectProduct(ctx, sess.ID, "monaco", "monaco-sierra")
	require.NoError(t, err)

	job, err := env.wizard.StartSimulation(ctx, sess.ID)
	require.NoError(t, err)

	sess, err = env.wizard.FailSimulation(ctx, sess.ID, job.Generation, "timeout")
	require.NoError(t, err)

	assert.Equal(t, StepPhotoProduct, sess.Step)
	assert.Equal(t, "monaco", sess.Photos[0].ProductID)
	assert.Equal(t, "monaco-sierra", sess.Photos[0].VariantID)
	assert.False(t, sess.Photos[0].Done)
}

func TestApproveSimulation_RequiresRender(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	sess := advance(t, env, 1)

	// Not on the simulation step yet
	_, err := env.wizard.ApproveSimulation(ctx, sess.ID)
	assert.True(t, domain.IsValidation(err))

	_, err = env.wizard.SelectProduct(ctx, sess.ID, "monaco", "")
	require.NoError(t, err)

	// Render still pending
	_, err = env.wizard.ApproveSimulation(ctx, sess.ID)
	assert.True(t, domain.IsValidation(err))

	job, err := env.wizard.StartSimulation(ctx, sess.ID)
	require.NoError(t, err)
	sess, err = env.wizard.CompleteSimulation(ctx, sess.ID, job.Generation, testRender)
	require.NoError(t, err)

	// The render waits for an explicit decision
	assert.Equal(t, StepPhotoSimulation, sess.Step)
	assert.False(t, sess.Photos[0].Done)
	assert.Nil(t, sess.Material)

	sess, err = env.wizard.ApproveSimulation(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, StepMaterialQuote, sess.Step)
	assert.True(t, sess.Photos[0].Done)
	require.NotNil(t, sess.Material)
}

func TestTryAnotherStyle_ResetsSelection(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	sess := advance(t, env, 1)

	_, err := env.wizard.SelectProduct(ctx, sess.ID, "monaco", "monaco-sierra")
	require.NoError(t, err)
	job, err := env.wizard.StartSimulation(ctx, sess.ID)
	require.NoError(t, err)
	_, err = env.wizard.CompleteSimulation(ctx, sess.ID, job.Generation, testRender)
	require.NoError(t, err)

	sess, err = env.wizard.TryAnotherStyle(ctx, sess.ID)
	require.NoError(t, err)

	assert.Equal(t, StepPhotoProduct, sess.Step)
	assert.Empty(t, sess.Photos[0].ProductID)
	assert.Empty(t, sess.Photos[0].VariantID)
	assert.Empty(t, sess.Photos[0].SimulationDataURL)
	assert.False(t, sess.Photos[0].Done)

	// A render from before the rejection is void
	_, err = env.wizard.CompleteSimulation(ctx, sess.ID, job.Generation, testRender)
	assert.ErrorIs(t, err, ErrStale)
}

func TestCompleteSimulation_StaleGenerationDiscarded(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	sess := advance(t, env, 1)

	_, err := env.wizard.SelectProduct(ctx, sess.ID, "monaco", "")
	require.NoError(t, err)
	staleJob, err := env.wizard.StartSimulation(ctx, sess.ID)
	require.NoError(t, err)

	// The visitor backs out and re-selects, superseding the first render
	_, err = env.wizard.FailSimulation(ctx, sess.ID, staleJob.Generation, "canceled")
	require.NoError(t, err)
	_, err = env.wizard.SelectProduct(ctx, sess.ID, "monaco", "")
	require.NoError(t, err)

	_, err = env.wizard.CompleteSimulation(ctx, sess.ID, staleJob.Generation, testRender)
	assert.ErrorIs(t, err, ErrStale)

	// The session is still waiting on the live render
	current, err := env.wizard.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, StepPhotoSimulation, current.Step)
	assert.False(t, current.Photos[0].Done)
}

func TestSelectZone_RepricesMaterialAndLabor(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	sess := advance(t, env, 1)
	sess = simulate(t, env, sess.ID)
	require.Equal(t, 2010.0, sess.Material.MaterialTotal)

	sess, err := env.wizard.ShowLaborQuote(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, 6010.0, sess.Labor.GrandTotal)

	sess, err = env.wizard.SelectZone(ctx, sess.ID, "orlando")
	require.NoError(t, err)
	assert.Equal(t, "orlando", sess.Material.ZoneID)
	assert.Equal(t, 400.0, sess.Material.DeliveryFee)
	assert.Equal(t, 2110.0, sess.Material.MaterialTotal)
	assert.Equal(t, 6110.0, sess.Labor.GrandTotal)

	_, err = env.wizard.SelectZone(ctx, sess.ID, "nowhere")
	assert.True(t, domain.IsValidation(err))
}

func TestRestart(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	sess := advance(t, env, 1)
	sess = simulate(t, env, sess.ID)
	generationBefore := sess.Generation

	sess, err := env.wizard.Restart(ctx, sess.ID)
	require.NoError(t, err)

	assert.Equal(t, StepWelcome, sess.Step)
	assert.Empty(t, sess.Photos)
	assert.Nil(t, sess.Material)
	assert.Nil(t, sess.Labor)
	assert.Zero(t, sess.WidthFt)
	assert.Greater(t, sess.Generation, generationBefore)
	assert.False(t, sess.LeadCaptured)

	// The second pass asks for contact info again
	_, err = env.wizard.Begin(ctx, sess.ID)
	require.NoError(t, err)
	_, err = env.wizard.SubmitPhotos(ctx, sess.ID, []string{testPhoto})
	require.NoError(t, err)
	sess, err = env.wizard.SubmitMeasurements(ctx, sess.ID, 25, 20)
	require.NoError(t, err)
	assert.Equal(t, StepLeadCapture, sess.Step)
}

func TestPricingSnapshotSurvivesAdminEdit(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	sess := advance(t, env, 1)

	cfg := models.DefaultPricing
	cfg.LaborRatePerSqft = 99
	_, err := env.pricing.UpdateConfig(ctx, cfg)
	require.NoError(t, err)

	sess = simulate(t, env, sess.ID)
	sess, err = env.wizard.ShowLaborQuote(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 8.0, sess.Labor.LaborRatePerSqft)
	assert.Equal(t, 4000.0, sess.Labor.LaborTotal)
}

func TestFlowEmitsFunnelEvents(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	sess := advance(t, env, 1)
	simulate(t, env, sess.ID)
	require.NoError(t, env.wizard.RecordCTA(ctx, sess.ID, "call"))

	overview, err := env.analytics.Overview(ctx, 30)
	require.NoError(t, err)

	assert.Equal(t, 1, overview.TotalSessions)
	assert.Equal(t, 1, overview.Funnel[string(StepWelcome)])
	assert.Equal(t, 1, overview.Funnel[string(StepMeasurements)])
	assert.Equal(t, 1, overview.Funnel[string(StepMaterialQuote)])
	assert.Equal(t, 1, overview.SimulationStats.Success)
	assert.Equal(t, 1, overview.CTAClicks["call"])
	require.NotEmpty(t, overview.PopularProducts)
	assert.Equal(t, "Monaco", overview.PopularProducts[0].Name)
}

func TestGet_UnknownSession(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.wizard.Get(context.Background(), "no-such-session")
	assert.True(t, domain.IsNotFound(err))
}

func advanceToLeadCapture(t *testing.T, env *testEnv) *Session {
	t.Helper()
	ctx := context.Background()

	sess, err := env.wizard.Start(ctx)
	require.NoError(t, err)
	_, err = env.wizard.Begin(ctx, sess.ID)
	require.NoError(t, err)
	_, err = env.wizard.SubmitPhotos(ctx, sess.ID, []string{testPhoto})
	require.NoError(t, err)
	sess, err = env.wizard.SubmitMeasurements(ctx, sess.ID, 25, 20)
	require.NoError(t, err)
	require.Equal(t, StepLeadCapture, sess.Step)
	return sess
}
