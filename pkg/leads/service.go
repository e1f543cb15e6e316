package leads

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/directpavers/paverquote/ent"
	"github.com/directpavers/paverquote/ent/lead"
	"github.com/directpavers/paverquote/pkg/audit"
	"github.com/directpavers/paverquote/pkg/domain"
	"github.com/directpavers/paverquote/pkg/email"
	"github.com/directpavers/paverquote/pkg/models"
	"github.com/directpavers/paverquote/pkg/phone"
)

// DefaultListLimit caps the admin lead view
const DefaultListLimit = 100

// Service captures and manages leads
type Service struct {
	db    *ent.Client
	email *email.Service
	audit *audit.Service
}

// NewService creates a new leads service
func NewService(db *ent.Client, emailService *email.Service, auditService *audit.Service) *Service {
	return &Service{
		db:    db,
		email: emailService,
		audit: auditService,
	}
}

// Create captures a lead. The phone number is normalized to E.164 when it
// parses; otherwise the raw input is stored as-is. The owner notification is
// best-effort and never fails the capture.
func (s *Service) Create(ctx context.Context, req models.LeadCreateRequest) (*models.LeadResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if req.Email == "" {
		return nil, domain.NewValidationError("email is required")
	}
	if req.Source == "" {
		req.Source = "quote-wizard"
	}

	phoneValue := strings.TrimSpace(req.Phone)
	if phoneValue != "" {
		if e164, err := phone.NormalizeE164(phoneValue, phone.DefaultRegion); err == nil {
			phoneValue = e164
		}
	}

	row, err := s.db.Lead.Create().
		SetName(req.Name).
		SetEmail(req.Email).
		SetPhone(phoneValue).
		SetSessionID(req.SessionID).
		SetSource(req.Source).
		Save(ctx)
	if err != nil {
		if s.audit != nil {
			s.audit.Record(ctx, "lead_created", audit.StatusError, map[string]any{"error": err.Error()})
		}
		return nil, err
	}

	resp := toResponse(row)
	if s.audit != nil {
		s.audit.Record(ctx, "lead_created", audit.StatusSuccess, map[string]any{
			"lead_id": row.ID,
			"source":  row.Source,
		})
	}
	if s.email != nil {
		if err := s.email.SendLeadNotification(resp); err != nil {
			log.Printf("⚠️ Failed to send lead notification: %v", err)
		}
	}
	return &resp, nil
}

// List returns leads newest first with optional source/status filters
func (s *Service) List(ctx context.Context, req models.LeadListRequest) ([]models.LeadResponse, error) {
	limit := req.Limit
	if limit <= 0 || limit > 1000 {
		limit = DefaultListLimit
	}

	q := s.db.Lead.Query().
		Order(ent.Desc(lead.FieldCreatedAt)).
		Limit(limit)
	if req.Source != "" {
		q = q.Where(lead.SourceEQ(req.Source))
	}
	if req.Status != "" {
		q = q.Where(lead.StatusEQ(lead.Status(req.Status)))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}

	leads := make([]models.LeadResponse, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, toResponse(row))
	}
	return leads, nil
}

// UpdateStatus moves a lead through its lifecycle
func (s *Service) UpdateStatus(ctx context.Context, id int, status string) (*models.LeadResponse, error) {
	switch status {
	case models.LeadStatusNew, models.LeadStatusContacted, models.LeadStatusConverted:
	default:
		return nil, domain.NewValidationError("unknown lead status")
	}

	row, err := s.db.Lead.UpdateOneID(id).
		SetStatus(lead.Status(status)).
		Save(ctx)
	if ent.IsNotFound(err) {
		return nil, domain.NewNotFoundError("lead")
	}
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		s.audit.Record(ctx, "lead_status_updated", audit.StatusSuccess, map[string]any{
			"lead_id": id,
			"status":  status,
		})
	}
	resp := toResponse(row)
	return &resp, nil
}

// Count returns the total number of captured leads
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.db.Lead.Query().Count(ctx)
}

func toResponse(row *ent.Lead) models.LeadResponse {
	return models.LeadResponse{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		SessionID: row.SessionID,
		Source:    row.Source,
		Status:    string(row.Status),
		CreatedAt: row.CreatedAt.UTC().Format(time.RFC3339),
	}
}
