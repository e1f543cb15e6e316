package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Product holds the schema definition for the Product entity.
type Product struct {
	ent.Schema
}

// Fields of the Product.
func (Product) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Stable slug identifier, e.g. 'monaco'"),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Enum("manufacturer_id").
			Values("flagstone", "tremron", "tricircle").
			Comment("Catalog grouping the product is listed under"),
		field.Text("prompt").
			Optional().
			Comment("Extra guidance appended to the visualization prompt"),
		field.Float("price_per_pallet").
			Optional().
			Nillable(),
		field.Float("sqft_per_pallet").
			Optional().
			Nillable(),
		field.Float("weight_per_pallet").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Product.
func (Product) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("variants", Variant.Type),
	}
}

// Indexes of the Product.
func (Product) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("manufacturer_id"),
	}
}
