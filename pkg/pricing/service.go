package pricing

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/directpavers/paverquote/ent"
	"github.com/directpavers/paverquote/ent/pricingconfig"
	"github.com/directpavers/paverquote/pkg/cache"
	"github.com/directpavers/paverquote/pkg/domain"
	"github.com/directpavers/paverquote/pkg/models"
)

const (
	configCacheKey = "pricing:config"
	configCacheTTL = 5 * time.Minute
)

// Service reads and updates the live pricing configuration
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new pricing service
func NewService(db *ent.Client, cacheClient *cache.Client) *Service {
	return &Service{
		db:    db,
		cache: cacheClient,
	}
}

// GetConfig returns the live pricing configuration. Missing or unreachable
// storage degrades to the built-in defaults so quoting never stops.
func (s *Service) GetConfig(ctx context.Context) models.PricingConfig {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, configCacheKey); err == nil {
			var cfg models.PricingConfig
			if err := json.Unmarshal([]byte(raw), &cfg); err == nil {
				return cfg
			}
		}
	}

	row, err := s.db.PricingConfig.Query().
		Order(ent.Asc(pricingconfig.FieldID)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			log.Printf("⚠️ Failed to load pricing config, using defaults: %v", err)
		}
		return models.DefaultPricing
	}

	cfg := toModel(row)
	s.cacheConfig(ctx, cfg)
	return cfg
}

// UpdateConfig replaces the live configuration and invalidates the cache
func (s *Service) UpdateConfig(ctx context.Context, cfg models.PricingConfig) (models.PricingConfig, error) {
	if cfg.LaborRatePerSqft < 0 {
		return models.PricingConfig{}, domain.NewValidationError("labor rate cannot be negative")
	}
	if cfg.WastePercentage < 0 {
		return models.PricingConfig{}, domain.NewValidationError("waste percentage cannot be negative")
	}

	row, err := s.db.PricingConfig.Query().
		Order(ent.Asc(pricingconfig.FieldID)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return models.PricingConfig{}, err
	}

	if ent.IsNotFound(err) {
		row, err = s.db.PricingConfig.Create().
			SetLaborRatePerSqft(cfg.LaborRatePerSqft).
			SetWastePercentage(cfg.WastePercentage).
			SetOwnerPhone(cfg.OwnerPhone).
			SetOwnerWhatsapp(cfg.OwnerWhatsapp).
			SetRequireLeadCapture(cfg.RequireLeadCapture).
			Save(ctx)
	} else {
		row, err = row.Update().
			SetLaborRatePerSqft(cfg.LaborRatePerSqft).
			SetWastePercentage(cfg.WastePercentage).
			SetOwnerPhone(cfg.OwnerPhone).
			SetOwnerWhatsapp(cfg.OwnerWhatsapp).
			SetRequireLeadCapture(cfg.RequireLeadCapture).
			Save(ctx)
	}
	if err != nil {
		return models.PricingConfig{}, err
	}

	updated := toModel(row)
	if s.cache != nil {
		if err := s.cache.Delete(ctx, configCacheKey); err != nil {
			log.Printf("⚠️ Failed to invalidate pricing config cache: %v", err)
		}
	}
	return updated, nil
}

func (s *Service) cacheConfig(ctx context.Context, cfg models.PricingConfig) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, configCacheKey, data, configCacheTTL); err != nil {
		log.Printf("⚠️ Failed to cache pricing config: %v", err)
	}
}

func toModel(row *ent.PricingConfig) models.PricingConfig {
	return models.PricingConfig{
		LaborRatePerSqft:   row.LaborRatePerSqft,
		WastePercentage:    row.WastePercentage,
		OwnerPhone:         row.OwnerPhone,
		OwnerWhatsapp:      row.OwnerWhatsapp,
		RequireLeadCapture: row.RequireLeadCapture,
	}
}
