package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityLog holds the schema definition for the ActivityLog entity.
type ActivityLog struct {
	ent.Schema
}

// Fields of the ActivityLog.
func (ActivityLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("action").
			NotEmpty().
			Comment("Operation name, e.g. 'lead_created' or 'simulation_failed'"),
		field.Enum("status").
			Values("success", "error").
			Default("success"),
		field.JSON("details", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ActivityLog.
func (ActivityLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("action"),
	}
}
