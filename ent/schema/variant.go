package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Variant holds the schema definition for the Variant entity.
type Variant struct {
	ent.Schema
}

// Fields of the Variant.
func (Variant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Stable slug identifier, e.g. 'monaco-sand-dune'"),
		field.String("name").
			NotEmpty(),
		field.String("texture_url").
			NotEmpty().
			Comment("Swatch image the visualizer applies to the photo"),
		field.String("example_url").
			Optional(),
		field.String("shopify_url").
			Optional().
			Comment("External purchase link shown on the quote"),
		field.Float("price_per_pallet").
			Optional().
			Nillable().
			Comment("Overrides the product price when set"),
		field.Int("position").
			Default(0).
			Comment("Display order within the product"),
	}
}

// Edges of the Variant.
func (Variant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("product", Product.Type).
			Ref("variants").
			Unique().
			Required(),
	}
}
