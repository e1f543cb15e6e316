package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/directpavers/paverquote/ent/enttest"
	"github.com/directpavers/paverquote/pkg/audit"
	"github.com/directpavers/paverquote/pkg/email"
	"github.com/directpavers/paverquote/pkg/leads"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) *Service {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	emailSvc := email.NewService("", "quotes@directpavers.com", "Direct Pavers", "")
	leadsSvc := leads.NewService(client, emailSvc, audit.NewService(client))

	ctx := context.Background()
	_, err := leadsSvc.Create(ctx, models.LeadCreateRequest{Name: "Jane Smith", Email: "jane@example.com", Phone: "8135550134"})
	require.NoError(t, err)
	_, err = leadsSvc.Create(ctx, models.LeadCreateRequest{Name: "John Doe", Email: "john@example.com"})
	require.NoError(t, err)

	return NewService(leadsSvc)
}

func TestExport_CSV(t *testing.T) {
	service := setupTestService(t)

	data, contentType, err := service.Export(context.Background(), FormatCSV, models.LeadListRequest{})
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 leads
	assert.Equal(t, leadHeader, records[0])

	names := []string{records[1][1], records[2][1]}
	assert.Contains(t, names, "Jane Smith")
	assert.Contains(t, names, "John Doe")
}

func TestExport_Excel(t *testing.T) {
	service := setupTestService(t)

	data, contentType, err := service.Export(context.Background(), FormatExcel, models.LeadListRequest{})
	require.NoError(t, err)
	assert.Contains(t, contentType, "spreadsheetml")

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Leads")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][1])
}

func TestExport_UnknownFormat(t *testing.T) {
	service := setupTestService(t)

	_, _, err := service.Export(context.Background(), "pdf", models.LeadListRequest{})
	assert.Error(t, err)
}
