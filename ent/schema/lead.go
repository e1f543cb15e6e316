package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.String("email").
			NotEmpty(),
		field.String("phone").
			Optional().
			Comment("E.164 when it could be normalized, raw input otherwise"),
		field.String("session_id").
			Optional().
			Comment("Wizard session the lead was captured in"),
		field.String("source").
			Default("quote-wizard").
			Comment("Surface that captured the lead, e.g. 'quote-wizard'"),
		field.Enum("status").
			Values("new", "contacted", "converted").
			Default("new"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
