package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/directpavers/paverquote/ent/enttest"
	"github.com/directpavers/paverquote/pkg/analytics"
	"github.com/directpavers/paverquote/pkg/audit"
	"github.com/directpavers/paverquote/pkg/cache"
	"github.com/directpavers/paverquote/pkg/catalog"
	"github.com/directpavers/paverquote/pkg/email"
	"github.com/directpavers/paverquote/pkg/leads"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/directpavers/paverquote/pkg/pricing"
	"github.com/directpavers/paverquote/pkg/visualizer"
	"github.com/directpavers/paverquote/pkg/wizard"
	"github.com/directpavers/paverquote/pkg/zones"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

const (
	testPhoto  = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg=="
	testRender = "data:image/png;base64,UkVOREVSRUQtSU1BR0U="
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates a struct
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	return e
}

// fakeVisualizer returns a canned render, or an error when broken
type fakeVisualizer struct {
	broken bool
	calls  int
}

func (f *fakeVisualizer) Generate(ctx context.Context, req visualizer.Request) (*visualizer.Result, error) {
	f.calls++
	if f.broken {
		return nil, errors.New("upstream unavailable")
	}
	return &visualizer.Result{ImageDataURL: testRender}, nil
}

type handlerEnv struct {
	echo       *echo.Echo
	wizard     *WizardHandler
	lead       *LeadHandler
	analytics  *AnalyticsHandler
	catalog    *CatalogHandler
	zones      *ZonesHandler
	zonesSvc   *zones.Service
	visualizer *fakeVisualizer
	service    *wizard.Service
}

func setupHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err, "Failed to create cache client")

	auditSvc := audit.NewService(client)
	emailSvc := email.NewService("", "quotes@directpavers.com", "Direct Pavers", "")
	pricingSvc := pricing.NewService(client, cacheClient)
	catalogSvc := catalog.NewService(client, cacheClient)
	zonesSvc := zones.NewService(client, cacheClient)
	leadsSvc := leads.NewService(client, emailSvc, auditSvc)
	analyticsSvc := analytics.NewService(client, cacheClient)

	store := wizard.NewStore(30*time.Minute, time.Minute)
	t.Cleanup(store.Close)
	wizardSvc := wizard.NewService(store, catalogSvc, pricingSvc, zonesSvc, leadsSvc, analyticsSvc)

	vis := &fakeVisualizer{}
	return &handlerEnv{
		echo:       newTestEcho(),
		wizard:     NewWizardHandler(wizardSvc, vis, auditSvc, nil, 10*time.Second),
		lead:       NewLeadHandler(leadsSvc, nil),
		analytics:  NewAnalyticsHandler(analyticsSvc, auditSvc, nil),
		catalog:    NewCatalogHandler(catalogSvc, auditSvc),
		zones:      NewZonesHandler(zonesSvc, auditSvc),
		zonesSvc:   zonesSvc,
		visualizer: vis,
		service:    wizardSvc,
	}
}

func (env *handlerEnv) post(t *testing.T, id, action, body string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	if id != "" {
		c.SetPath("/api/v1/wizard/sessions/:id/" + action)
		c.SetParamNames("id")
		c.SetParamValues(id)
	}

	require.NoError(t, handler(c))
	return rec
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) wizard.Session {
	t.Helper()
	var sess wizard.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	return sess
}

// walkToPhotoProduct drives a session through the opening steps over HTTP
func walkToPhotoProduct(t *testing.T, env *handlerEnv) string {
	t.Helper()

	rec := env.post(t, "", "", "", env.wizard.StartSession)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeSession(t, rec).ID
	require.NotEmpty(t, id)

	rec = env.post(t, id, "begin", "", env.wizard.Begin)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.post(t, id, "photos", `{"photos":["`+testPhoto+`"]}`, env.wizard.SubmitPhotos)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.post(t, id, "measurements", `{"widthFt":25,"lengthFt":20}`, env.wizard.SubmitMeasurements)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, wizard.StepLeadCapture, decodeSession(t, rec).Step)

	rec = env.post(t, id, "lead", `{"name":"Jane Smith","email":"jane@example.com","source":"quote-wizard"}`, env.wizard.CaptureLead)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, wizard.StepPhotoProduct, decodeSession(t, rec).Step)

	return id
}

func TestWizardHandler_FullFlow(t *testing.T) {
	env := setupHandlerEnv(t)
	id := walkToPhotoProduct(t, env)

	rec := env.post(t, id, "select-product", `{"productId":"monaco"}`, env.wizard.SelectProduct)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, wizard.StepPhotoSimulation, decodeSession(t, rec).Step)

	rec = env.post(t, id, "simulate", "", env.wizard.Simulate)
	require.Equal(t, http.StatusOK, rec.Code)
	sess := decodeSession(t, rec)
	assert.Equal(t, wizard.StepPhotoSimulation, sess.Step)
	assert.Equal(t, 1, env.visualizer.calls)
	require.Len(t, sess.Photos, 1)
	assert.Equal(t, testRender, sess.Photos[0].SimulationDataURL)
	assert.Nil(t, sess.Material)

	rec = env.post(t, id, "approve", "", env.wizard.Approve)
	require.Equal(t, http.StatusOK, rec.Code)
	sess = decodeSession(t, rec)
	assert.Equal(t, wizard.StepMaterialQuote, sess.Step)
	require.NotNil(t, sess.Material)
	assert.Equal(t, 6, sess.Material.PalletsNeeded)
	assert.InDelta(t, 2010.0, sess.Material.MaterialTotal, 0.001)

	rec = env.post(t, id, "labor-quote", "", env.wizard.ShowLaborQuote)
	require.Equal(t, http.StatusOK, rec.Code)
	sess = decodeSession(t, rec)
	assert.Equal(t, wizard.StepLaborQuote, sess.Step)
	require.NotNil(t, sess.Labor)
	assert.InDelta(t, 6010.0, sess.Labor.GrandTotal, 0.001)

	rec = env.post(t, id, "cta", `{"cta":"whatsapp"}`, env.wizard.RecordCTA)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestWizardHandler_SimulateFailureReturns502(t *testing.T) {
	env := setupHandlerEnv(t)
	id := walkToPhotoProduct(t, env)

	rec := env.post(t, id, "select-product", `{"productId":"monaco"}`, env.wizard.SelectProduct)
	require.Equal(t, http.StatusOK, rec.Code)

	env.visualizer.broken = true
	rec = env.post(t, id, "simulate", "", env.wizard.Simulate)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "generation_failed", body["error"])

	// The session fell back to product selection for a retry
	sess, err := env.service.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepPhotoProduct, sess.Step)
}

func TestWizardHandler_TryAnotherStyle(t *testing.T) {
	env := setupHandlerEnv(t)
	id := walkToPhotoProduct(t, env)

	rec := env.post(t, id, "select-product", `{"productId":"monaco"}`, env.wizard.SelectProduct)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.post(t, id, "simulate", "", env.wizard.Simulate)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, testRender, decodeSession(t, rec).Photos[0].SimulationDataURL)

	rec = env.post(t, id, "try-another", "", env.wizard.TryAnother)
	require.Equal(t, http.StatusOK, rec.Code)
	sess := decodeSession(t, rec)
	assert.Equal(t, wizard.StepPhotoProduct, sess.Step)
	assert.Empty(t, sess.Photos[0].ProductID)
	assert.Empty(t, sess.Photos[0].SimulationDataURL)
}

func TestWizardHandler_PhotosRejectedWithoutDataURL(t *testing.T) {
	env := setupHandlerEnv(t)

	rec := env.post(t, "", "", "", env.wizard.StartSession)
	id := decodeSession(t, rec).ID

	rec = env.post(t, id, "begin", "", env.wizard.Begin)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.post(t, id, "photos", `{"photos":["https://example.com/photo.jpg"]}`, env.wizard.SubmitPhotos)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWizardHandler_UnknownSessionReturns404(t *testing.T) {
	env := setupHandlerEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	c.SetPath("/api/v1/wizard/sessions/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, env.wizard.GetSession(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeadHandler_CreateAndValidate(t *testing.T) {
	env := setupHandlerEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads",
		strings.NewReader(`{"name":"John Doe","email":"john@example.com","phone":"813-555-0101","source":"landing-page"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, env.lead.CreateLead(env.echo.NewContext(req, rec)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var lead map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.Equal(t, "john@example.com", lead["email"])
	assert.Equal(t, "+18135550101", lead["phone"])

	// Missing email fails validation
	req = httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(`{"name":"No Email","source":"landing-page"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	require.NoError(t, env.lead.CreateLead(env.echo.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestZonesHandler_PublicListHidesInactive(t *testing.T) {
	env := setupHandlerEnv(t)
	ctx := context.Background()

	for _, z := range models.DefaultDeliveryZones {
		_, err := env.zonesSvc.Upsert(ctx, z)
		require.NoError(t, err)
	}
	_, err := env.zonesSvc.Upsert(ctx, models.DeliveryZone{
		ID: "miami", Name: "miami", Fee: 500, SortOrder: 3, Active: false,
	})
	require.NoError(t, err)

	list := func(handler echo.HandlerFunc, query string) []models.DeliveryZone {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/zones"+query, nil)
		rec := httptest.NewRecorder()
		require.NoError(t, handler(env.echo.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)
		var zoneList []models.DeliveryZone
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &zoneList))
		return zoneList
	}

	// Visitors never see inactive zones, whatever the query says
	assert.Len(t, list(env.zones.ListZones, ""), 2)
	assert.Len(t, list(env.zones.ListZones, "?all=true"), 2)

	assert.Len(t, list(env.zones.AdminListZones, ""), 3)
}

func TestCatalogHandler_UpsertGeneratesMissingIDs(t *testing.T) {
	env := setupHandlerEnv(t)

	body := `{"name":"Mega Olde Towne","manufacturerId":"tremron","variants":[{"name":"Sierra","textureUrl":"https://cdn.example.com/textures/sierra.jpg"}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, env.catalog.UpsertProduct(env.echo.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var saved models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "mega-olde-towne", saved.ID)
	require.Len(t, saved.Variants, 1)
	assert.Equal(t, "mega-olde-towne-sierra", saved.Variants[0].ID)
}

func TestAnalyticsHandler_TrackAlwaysAccepts(t *testing.T) {
	env := setupHandlerEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analytics/events",
		strings.NewReader(`{"session_id":"s1","event_type":"page_view"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, env.analytics.TrackEvent(env.echo.NewContext(req, rec)))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	// Garbage payloads are acknowledged too
	req = httptest.NewRequest(http.MethodPost, "/api/v1/analytics/events", strings.NewReader(`not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	require.NoError(t, env.analytics.TrackEvent(env.echo.NewContext(req, rec)))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
