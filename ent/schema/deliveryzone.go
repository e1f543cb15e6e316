package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// DeliveryZone holds the schema definition for the DeliveryZone entity.
type DeliveryZone struct {
	ent.Schema
}

// Fields of the DeliveryZone.
func (DeliveryZone) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Stable slug identifier, e.g. 'tampa'"),
		field.String("name").
			NotEmpty(),
		field.String("label").
			NotEmpty().
			Comment("Customer-facing label, e.g. 'Tampa (+ 25 miles)'"),
		field.Float("fee").
			Min(0).
			Comment("Flat delivery fee in dollars"),
		field.String("radius_description").
			Optional(),
		field.Int("sort_order").
			Default(99),
		field.Bool("active").
			Default(true),
	}
}
