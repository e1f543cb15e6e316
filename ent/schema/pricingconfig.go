package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PricingConfig holds the schema definition for the PricingConfig entity.
// A single row holds the live configuration.
type PricingConfig struct {
	ent.Schema
}

// Fields of the PricingConfig.
func (PricingConfig) Fields() []ent.Field {
	return []ent.Field{
		field.Float("labor_rate_per_sqft").
			Default(8.00).
			Min(0),
		field.Float("waste_percentage").
			Default(10).
			Min(0).
			Comment("Percent added to the measured area before pallet rounding"),
		field.String("owner_phone").
			Default("+18138191450"),
		field.String("owner_whatsapp").
			Default("+18138191450"),
		field.Bool("require_lead_capture").
			Default(true),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
