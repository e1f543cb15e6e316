package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/directpavers/paverquote/ent"
	"github.com/directpavers/paverquote/ent/product"
	"github.com/directpavers/paverquote/ent/variant"
	"github.com/directpavers/paverquote/pkg/cache"
	"github.com/directpavers/paverquote/pkg/domain"
	"github.com/directpavers/paverquote/pkg/models"
)

const (
	productsCacheKey = "catalog:products"
	productsCacheTTL = 10 * time.Minute
)

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalid.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Service manages the paver product catalog
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new catalog service
func NewService(db *ent.Client, cacheClient *cache.Client) *Service {
	return &Service{
		db:    db,
		cache: cacheClient,
	}
}

// List returns the full catalog with variants in display order. An empty
// store degrades to the built-in default catalog.
func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, productsCacheKey); err == nil {
			var products []models.Product
			if err := json.Unmarshal([]byte(raw), &products); err == nil {
				return products, nil
			}
		}
	}

	rows, err := s.db.Product.Query().
		WithVariants(func(q *ent.VariantQuery) {
			q.Order(ent.Asc(variant.FieldPosition))
		}).
		Order(ent.Asc(product.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return append([]models.Product(nil), DefaultCatalog...), nil
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toModel(row))
	}

	if s.cache != nil {
		if data, err := json.Marshal(products); err == nil {
			if err := s.cache.Set(ctx, productsCacheKey, data, productsCacheTTL); err != nil {
				log.Printf("⚠️ Failed to cache catalog: %v", err)
			}
		}
	}
	return products, nil
}

// ListByManufacturer filters the catalog to one manufacturer tab
func (s *Service) ListByManufacturer(ctx context.Context, manufacturerID string) ([]models.Product, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Product, 0, len(all))
	for _, p := range all {
		if p.ManufacturerID == manufacturerID {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Get returns a single product with its variants
func (s *Service) Get(ctx context.Context, id string) (*models.Product, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, domain.NewNotFoundError("product")
}

// Upsert creates or replaces a product and its variant set. Variants absent
// from the request are removed.
func (s *Service) Upsert(ctx context.Context, p models.Product) (*models.Product, error) {
	if p.ID == "" {
		p.ID = slugify(p.Name)
	}
	if p.ID == "" {
		return nil, domain.NewValidationError("product name is required")
	}
	if !validManufacturer(p.ManufacturerID) {
		return nil, domain.NewValidationError("unknown manufacturer")
	}
	for i := range p.Variants {
		if p.Variants[i].ID == "" {
			p.Variants[i].ID = fmt.Sprintf("%s-%s", p.ID, slugify(p.Variants[i].Name))
		}
		if p.Variants[i].TextureURL == "" {
			return nil, domain.NewValidationError("every variant needs a texture image")
		}
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, err
	}
	if err := upsertTx(ctx, tx, p); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			log.Printf("⚠️ Rollback failed: %v", rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return &p, nil
}

// Delete removes a product and its variants
func (s *Service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return err
	}

	exists, err := tx.Product.Query().Where(product.ID(id)).Exist(ctx)
	if err == nil && !exists {
		err = domain.NewNotFoundError("product")
	}
	if err == nil {
		_, err = tx.Variant.Delete().Where(variant.HasProductWith(product.ID(id))).Exec(ctx)
	}
	if err == nil {
		err = tx.Product.DeleteOneID(id).Exec(ctx)
	}
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			log.Printf("⚠️ Rollback failed: %v", rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func upsertTx(ctx context.Context, tx *ent.Tx, p models.Product) error {
	existing, err := tx.Product.Query().Where(product.ID(p.ID)).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return err
	}

	if ent.IsNotFound(err) {
		_, err = tx.Product.Create().
			SetID(p.ID).
			SetName(p.Name).
			SetDescription(p.Description).
			SetManufacturerID(product.ManufacturerID(p.ManufacturerID)).
			SetPrompt(p.Prompt).
			SetNillablePricePerPallet(p.PricePerPallet).
			SetNillableSqftPerPallet(p.SqftPerPallet).
			SetNillableWeightPerPallet(p.WeightPerPallet).
			Save(ctx)
	} else {
		upd := existing.Update().
			SetName(p.Name).
			SetDescription(p.Description).
			SetManufacturerID(product.ManufacturerID(p.ManufacturerID)).
			SetPrompt(p.Prompt)
		if p.PricePerPallet != nil {
			upd.SetPricePerPallet(*p.PricePerPallet)
		} else {
			upd.ClearPricePerPallet()
		}
		if p.SqftPerPallet != nil {
			upd.SetSqftPerPallet(*p.SqftPerPallet)
		} else {
			upd.ClearSqftPerPallet()
		}
		if p.WeightPerPallet != nil {
			upd.SetWeightPerPallet(*p.WeightPerPallet)
		} else {
			upd.ClearWeightPerPallet()
		}
		_, err = upd.Save(ctx)
	}
	if err != nil {
		return err
	}

	// Replace the variant set wholesale; positions follow request order
	if _, err := tx.Variant.Delete().Where(variant.HasProductWith(product.ID(p.ID))).Exec(ctx); err != nil {
		return err
	}
	for i, v := range p.Variants {
		_, err := tx.Variant.Create().
			SetID(v.ID).
			SetName(v.Name).
			SetTextureURL(v.TextureURL).
			SetExampleURL(v.ExampleURL).
			SetShopifyURL(v.ShopifyURL).
			SetNillablePricePerPallet(v.PricePerPallet).
			SetPosition(i).
			SetProductID(p.ID).
			Save(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, productsCacheKey); err != nil {
		log.Printf("⚠️ Failed to invalidate catalog cache: %v", err)
	}
}

func validManufacturer(id string) bool {
	for _, m := range models.Manufacturers {
		if m.ID == id {
			return true
		}
	}
	return false
}

func toModel(row *ent.Product) models.Product {
	p := models.Product{
		ID:              row.ID,
		Name:            row.Name,
		Description:     row.Description,
		ManufacturerID:  string(row.ManufacturerID),
		Prompt:          row.Prompt,
		PricePerPallet:  row.PricePerPallet,
		SqftPerPallet:   row.SqftPerPallet,
		WeightPerPallet: row.WeightPerPallet,
	}
	variants := row.Edges.Variants
	sort.SliceStable(variants, func(i, j int) bool {
		return variants[i].Position < variants[j].Position
	})
	for _, v := range variants {
		p.Variants = append(p.Variants, models.Variant{
			ID:             v.ID,
			Name:           v.Name,
			TextureURL:     v.TextureURL,
			ExampleURL:     v.ExampleURL,
			ShopifyURL:     v.ShopifyURL,
			PricePerPallet: v.PricePerPallet,
		})
	}
	return p
}
