package audit

import (
	"context"
	"log"
	"time"

	"github.com/directpavers/paverquote/ent"
	"github.com/directpavers/paverquote/ent/activitylog"
	"github.com/directpavers/paverquote/pkg/models"
)

// Statuses an activity log entry can carry
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// DefaultListLimit caps the admin log view
const DefaultListLimit = 100

// Service records and queries the operational activity log
type Service struct {
	db *ent.Client
}

// NewService creates a new audit service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// Record appends an entry. Recording is best-effort; failures are logged and
// swallowed so audit writes never fail the operation they describe.
func (s *Service) Record(ctx context.Context, action, status string, details map[string]any) {
	if status != StatusError {
		status = StatusSuccess
	}

	_, err := s.db.ActivityLog.Create().
		SetAction(action).
		SetStatus(activitylog.Status(status)).
		SetDetails(details).
		Save(ctx)
	if err != nil {
		log.Printf("⚠️ Failed to record activity log %q: %v", action, err)
	}
}

// List returns the newest entries first, optionally filtered by action
func (s *Service) List(ctx context.Context, action string, limit int) ([]models.ActivityLogEntry, error) {
	if limit <= 0 || limit > 1000 {
		limit = DefaultListLimit
	}

	q := s.db.ActivityLog.Query().
		Order(ent.Desc(activitylog.FieldCreatedAt)).
		Limit(limit)
	if action != "" {
		q = q.Where(activitylog.ActionEQ(action))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ActivityLogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.ActivityLogEntry{
			ID:        row.ID,
			Action:    row.Action,
			Status:    string(row.Status),
			Details:   row.Details,
			CreatedAt: row.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return entries, nil
}

// Purge deletes entries older than the cutoff and returns how many went away
func (s *Service) Purge(ctx context.Context, olderThan time.Time) (int, error) {
	return s.db.ActivityLog.Delete().
		Where(activitylog.CreatedAtLT(olderThan)).
		Exec(ctx)
}
