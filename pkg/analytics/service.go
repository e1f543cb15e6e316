package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/directpavers/paverquote/ent"
	"github.com/directpavers/paverquote/ent/analyticsevent"
	"github.com/directpavers/paverquote/ent/lead"
	"github.com/directpavers/paverquote/pkg/cache"
	"github.com/directpavers/paverquote/pkg/models"
)

const (
	overviewCacheTTL = time.Minute

	// DefaultPeriodDays bounds the overview window
	DefaultPeriodDays = 30
	// MaxPeriodDays keeps the aggregation queries cheap
	MaxPeriodDays = 365

	topProductsLimit = 5
	recentLeadsLimit = 5
)

// Service is the analytics event sink and aggregator
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new analytics service
func NewService(db *ent.Client, cacheClient *cache.Client) *Service {
	return &Service{
		db:    db,
		cache: cacheClient,
	}
}

// Track persists an event. The sink is best-effort: malformed or failed
// writes are logged and dropped, never surfaced to the visitor flow.
func (s *Service) Track(ctx context.Context, req models.TrackEventRequest) {
	s.Emit(ctx, req.SessionID, req.EventType, req.Step, req.EventData)
}

// Emit persists a single event with the same no-throw contract as Track
func (s *Service) Emit(ctx context.Context, sessionID, eventType, step string, data map[string]any) {
	if sessionID == "" || eventType == "" {
		log.Printf("⚠️ Dropping analytics event with missing session or type")
		return
	}

	_, err := s.db.AnalyticsEvent.Create().
		SetSessionID(sessionID).
		SetEventType(eventType).
		SetStep(step).
		SetEventData(data).
		Save(ctx)
	if err != nil {
		log.Printf("⚠️ Failed to track analytics event %q: %v", eventType, err)
	}
}

// Overview aggregates the funnel for the admin dashboard
func (s *Service) Overview(ctx context.Context, periodDays int) (*models.AnalyticsOverview, error) {
	if periodDays <= 0 || periodDays > MaxPeriodDays {
		periodDays = DefaultPeriodDays
	}

	cacheKey := overviewCacheKey(periodDays)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey); err == nil {
			var overview models.AnalyticsOverview
			if err := json.Unmarshal([]byte(raw), &overview); err == nil {
				return &overview, nil
			}
		}
	}

	since := time.Now().AddDate(0, 0, -periodDays)
	overview := &models.AnalyticsOverview{
		Funnel:     map[string]int{},
		CTAClicks:  map[string]int{},
		PeriodDays: periodDays,
	}

	// Distinct sessions seen in the window
	sessions, err := s.db.AnalyticsEvent.Query().
		Where(analyticsevent.CreatedAtGTE(since)).
		Unique(true).
		Select(analyticsevent.FieldSessionID).
		Strings(ctx)
	if err != nil {
		return nil, err
	}
	overview.TotalSessions = len(sessions)

	totalLeads, err := s.db.Lead.Query().Count(ctx)
	if err != nil {
		return nil, err
	}
	overview.TotalLeads = totalLeads

	// Funnel: how many sessions reached each step
	var steps []struct {
		Step  string `json:"step"`
		Count int    `json:"count"`
	}
	err = s.db.AnalyticsEvent.Query().
		Where(
			analyticsevent.EventTypeEQ(EventStepEntered),
			analyticsevent.CreatedAtGTE(since),
		).
		GroupBy(analyticsevent.FieldStep).
		Aggregate(ent.Count()).
		Scan(ctx, &steps)
	if err != nil {
		return nil, err
	}
	for _, row := range steps {
		if row.Step != "" {
			overview.Funnel[row.Step] = row.Count
		}
	}

	success, err := s.countEvents(ctx, EventSimulationGenerated, since)
	if err != nil {
		return nil, err
	}
	failed, err := s.countEvents(ctx, EventSimulationFailed, since)
	if err != nil {
		return nil, err
	}
	overview.SimulationStats = models.SimulationStats{Success: success, Failed: failed}

	if err := s.collectCTAClicks(ctx, since, overview); err != nil {
		return nil, err
	}
	if err := s.collectTopProducts(ctx, since, overview); err != nil {
		return nil, err
	}
	if err := s.collectRecentLeads(ctx, overview); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(overview); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, overviewCacheTTL); err != nil {
				log.Printf("⚠️ Failed to cache analytics overview: %v", err)
			}
		}
	}
	return overview, nil
}

// PurgeOlderThan drops events past the retention window
func (s *Service) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	return s.db.AnalyticsEvent.Delete().
		Where(analyticsevent.CreatedAtLT(cutoff)).
		Exec(ctx)
}

func overviewCacheKey(days int) string {
	return fmt.Sprintf("analytics:overview:%dd", days)
}

func (s *Service) countEvents(ctx context.Context, eventType string, since time.Time) (int, error) {
	return s.db.AnalyticsEvent.Query().
		Where(
			analyticsevent.EventTypeEQ(eventType),
			analyticsevent.CreatedAtGTE(since),
		).
		Count(ctx)
}

func (s *Service) collectCTAClicks(ctx context.Context, since time.Time, overview *models.AnalyticsOverview) error {
	rows, err := s.db.AnalyticsEvent.Query().
		Where(
			analyticsevent.EventTypeEQ(EventCTAClicked),
			analyticsevent.CreatedAtGTE(since),
		).
		All(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		name, _ := row.EventData["cta"].(string)
		if name == "" {
			name = "unknown"
		}
		overview.CTAClicks[name]++
	}
	return nil
}

func (s *Service) collectTopProducts(ctx context.Context, since time.Time, overview *models.AnalyticsOverview) error {
	rows, err := s.db.AnalyticsEvent.Query().
		Where(
			analyticsevent.EventTypeEQ(EventProductSelected),
			analyticsevent.CreatedAtGTE(since),
		).
		All(ctx)
	if err != nil {
		return err
	}

	counts := map[string]int{}
	for _, row := range rows {
		name, _ := row.EventData["product_name"].(string)
		if name == "" {
			name, _ = row.EventData["product_id"].(string)
		}
		if name != "" {
			counts[name]++
		}
	}

	products := make([]models.ProductCount, 0, len(counts))
	for name, count := range counts {
		products = append(products, models.ProductCount{Name: name, Count: count})
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].Count != products[j].Count {
			return products[i].Count > products[j].Count
		}
		return products[i].Name < products[j].Name
	})
	if len(products) > topProductsLimit {
		products = products[:topProductsLimit]
	}
	overview.PopularProducts = products
	return nil
}

func (s *Service) collectRecentLeads(ctx context.Context, overview *models.AnalyticsOverview) error {
	rows, err := s.db.Lead.Query().
		Order(ent.Desc(lead.FieldCreatedAt)).
		Limit(recentLeadsLimit).
		All(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		overview.RecentLeads = append(overview.RecentLeads, models.LeadResponse{
			ID:        row.ID,
			Name:      row.Name,
			Email:     row.Email,
			Phone:     row.Phone,
			SessionID: row.SessionID,
			Source:    row.Source,
			Status:    string(row.Status),
			CreatedAt: row.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return nil
}
