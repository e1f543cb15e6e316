package zones

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/directpavers/paverquote/ent"
	"github.com/directpavers/paverquote/ent/deliveryzone"
	"github.com/directpavers/paverquote/pkg/cache"
	"github.com/directpavers/paverquote/pkg/domain"
	"github.com/directpavers/paverquote/pkg/models"
)

const (
	zonesCacheKey = "zones:all"
	zonesCacheTTL = 5 * time.Minute
)

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a stable zone ID from its name
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalid.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Service manages delivery zones
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new zones service
func NewService(db *ent.Client, cacheClient *cache.Client) *Service {
	return &Service{
		db:    db,
		cache: cacheClient,
	}
}

// List returns all zones ordered by sort order. An empty store degrades to
// the built-in defaults so the wizard always has at least one zone to offer.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]models.DeliveryZone, error) {
	all, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return all, nil
	}

	active := make([]models.DeliveryZone, 0, len(all))
	for _, z := range all {
		if z.Active {
			active = append(active, z)
		}
	}
	return active, nil
}

// Get returns a single zone by ID
func (s *Service) Get(ctx context.Context, id string) (*models.DeliveryZone, error) {
	all, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, domain.NewNotFoundError("delivery zone")
}

// Upsert creates or replaces a zone. A missing ID is derived from the name.
func (s *Service) Upsert(ctx context.Context, zone models.DeliveryZone) (*models.DeliveryZone, error) {
	if zone.ID == "" {
		zone.ID = Slugify(zone.Name)
	}
	if zone.ID == "" {
		return nil, domain.NewValidationError("zone name is required")
	}
	if zone.Fee < 0 {
		return nil, domain.NewValidationError("delivery fee cannot be negative")
	}
	if zone.Label == "" {
		zone.Label = zone.Name
	}

	existing, err := s.db.DeliveryZone.Query().
		Where(deliveryzone.ID(zone.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}

	var row *ent.DeliveryZone
	if ent.IsNotFound(err) {
		row, err = s.db.DeliveryZone.Create().
			SetID(zone.ID).
			SetName(zone.Name).
			SetLabel(zone.Label).
			SetFee(zone.Fee).
			SetRadiusDescription(zone.RadiusDescription).
			SetSortOrder(zone.SortOrder).
			SetActive(zone.Active).
			Save(ctx)
	} else {
		row, err = existing.Update().
			SetName(zone.Name).
			SetLabel(zone.Label).
			SetFee(zone.Fee).
			SetRadiusDescription(zone.RadiusDescription).
			SetSortOrder(zone.SortOrder).
			SetActive(zone.Active).
			Save(ctx)
	}
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	result := toModel(row)
	return &result, nil
}

// Delete removes a zone
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.db.DeliveryZone.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return domain.NewNotFoundError("delivery zone")
	}
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) listAll(ctx context.Context) ([]models.DeliveryZone, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, zonesCacheKey); err == nil {
			var zones []models.DeliveryZone
			if err := json.Unmarshal([]byte(raw), &zones); err == nil {
				return zones, nil
			}
		}
	}

	rows, err := s.db.DeliveryZone.Query().All(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return append([]models.DeliveryZone(nil), models.DefaultDeliveryZones...), nil
	}

	zones := make([]models.DeliveryZone, 0, len(rows))
	for _, row := range rows {
		zones = append(zones, toModel(row))
	}
	sort.SliceStable(zones, func(i, j int) bool {
		return zones[i].SortOrder < zones[j].SortOrder
	})

	if s.cache != nil {
		if data, err := json.Marshal(zones); err == nil {
			if err := s.cache.Set(ctx, zonesCacheKey, data, zonesCacheTTL); err != nil {
				log.Printf("⚠️ Failed to cache delivery zones: %v", err)
			}
		}
	}
	return zones, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, zonesCacheKey); err != nil {
		log.Printf("⚠️ Failed to invalidate zones cache: %v", err)
	}
}

func toModel(row *ent.DeliveryZone) models.DeliveryZone {
	return models.DeliveryZone{
		ID:                row.ID,
		Name:              row.Name,
		Label:             row.Label,
		Fee:               row.Fee,
		RadiusDescription: row.RadiusDescription,
		SortOrder:         row.SortOrder,
		Active:            row.Active,
	}
}
