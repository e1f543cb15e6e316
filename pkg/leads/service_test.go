package leads

import (
	"context"
	"testing"

	"github.com/directpavers/paverquote/ent"
	"github.com/directpavers/paverquote/ent/enttest"
	"github.com/directpavers/paverquote/pkg/audit"
	"github.com/directpavers/paverquote/pkg/domain"
	"github.com/directpavers/paverquote/pkg/email"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	// Log-only email service so capture never reaches the network
	emailService := email.NewService("", "quotes@directpavers.com", "Direct Pavers", "")
	return NewService(client, emailService, audit.NewService(client)), client
}

func TestCreate(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	lead, err := service.Create(ctx, models.LeadCreateRequest{
		Name:      "Jane Smith",
		Email:     "Jane@Example.com",
		Phone:     "(813) 555-0134",
		SessionID: "sess-1",
		Source:    "quote-wizard",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", lead.Name)
	assert.Equal(t, "jane@example.com", lead.Email)
	assert.Equal(t, "+18135550134", lead.Phone)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.NotEmpty(t, lead.CreatedAt)
}

func TestCreate_KeepsRawPhoneWhenUnparseable(t *testing.T) {
	service, _ := setupTestService(t)

	lead, err := service.Create(context.Background(), models.LeadCreateRequest{
		Name:  "Jane Smith",
		Email: "jane@example.com",
		Phone: "call me after 5",
	})
	require.NoError(t, err)
	assert.Equal(t, "call me after 5", lead.Phone)
}

func TestCreate_Validation(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, models.LeadCreateRequest{Email: "jane@example.com"})
	assert.True(t, domain.IsValidation(err))

	_, err = service.Create(ctx, models.LeadCreateRequest{Name: "Jane"})
	assert.True(t, domain.IsValidation(err))
}

func TestCreate_RecordsActivity(t *testing.T) {
	service, client := setupTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, models.LeadCreateRequest{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)

	entries, err := audit.NewService(client).List(ctx, "lead_created", 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestList_FiltersAndOrder(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	first, err := service.Create(ctx, models.LeadCreateRequest{Name: "First", Email: "first@example.com", Source: "quote-wizard"})
	require.NoError(t, err)
	_, err = service.Create(ctx, models.LeadCreateRequest{Name: "Second", Email: "second@example.com", Source: "landing-page"})
	require.NoError(t, err)

	_, err = service.UpdateStatus(ctx, first.ID, models.LeadStatusContacted)
	require.NoError(t, err)

	all, err := service.List(ctx, models.LeadListRequest{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	bySource, err := service.List(ctx, models.LeadListRequest{Source: "landing-page"})
	require.NoError(t, err)
	require.Len(t, bySource, 1)
	assert.Equal(t, "Second", bySource[0].Name)

	byStatus, err := service.List(ctx, models.LeadListRequest{Status: models.LeadStatusContacted})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "First", byStatus[0].Name)
}

func TestUpdateStatus(t *testing.T) {
	service, _ := setupTestService(t)
	ctx := context.Background()

	lead, err := service.Create(ctx, models.LeadCreateRequest{Name: "Jane", Email: "jane@example.com"})
	require.NoError(t, err)

	updated, err := service.UpdateStatus(ctx, lead.ID, models.LeadStatusConverted)
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusConverted, updated.Status)

	_, err = service.UpdateStatus(ctx, lead.ID, "bogus")
	assert.True(t, domain.IsValidation(err))

	_, err = service.UpdateStatus(ctx, 99999, models.LeadStatusContacted)
	assert.True(t, domain.IsNotFound(err))
}
