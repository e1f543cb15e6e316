package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/directpavers/paverquote/pkg/leads"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/xuri/excelize/v2"
)

// Formats the lead export supports
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
)

var leadHeader = []string{"ID", "Name", "Email", "Phone", "Session", "Source", "Status", "Captured At"}

// Service renders lead exports for the admin dashboard
type Service struct {
	leads *leads.Service
}

// NewService creates a new export service
func NewService(leadService *leads.Service) *Service {
	return &Service{leads: leadService}
}

// Export renders the filtered lead list in the requested format and returns
// the file bytes with their content type
func (s *Service) Export(ctx context.Context, format string, req models.LeadListRequest) ([]byte, string, error) {
	rows, err := s.leads.List(ctx, req)
	if err != nil {
		return nil, "", err
	}

	switch format {
	case FormatCSV:
		data, err := renderCSV(rows)
		return data, "text/csv", err
	case FormatExcel:
		data, err := renderExcel(rows)
		return data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", err
	default:
		return nil, "", fmt.Errorf("invalid format: must be csv or excel")
	}
}

func renderCSV(rows []models.LeadResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(leadHeader); err != nil {
		return nil, fmt.Errorf("failed writing csv header: %w", err)
	}
	for _, lead := range rows {
		record := []string{
			strconv.Itoa(lead.ID),
			lead.Name,
			lead.Email,
			lead.Phone,
			lead.SessionID,
			lead.Source,
			lead.Status,
			lead.CreatedAt,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed writing csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderExcel(rows []models.LeadResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Leads"
	f.SetSheetName("Sheet1", sheet)

	header := make([]interface{}, len(leadHeader))
	for i, h := range leadHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed writing excel header: %w", err)
	}

	for i, lead := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{lead.ID, lead.Name, lead.Email, lead.Phone, lead.SessionID, lead.Source, lead.Status, lead.CreatedAt}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed writing excel row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed writing excel file: %w", err)
	}
	return buf.Bytes(), nil
}
