package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalyticsEvent holds the schema definition for the AnalyticsEvent entity.
// Events are append-only; writes are best-effort and must never block the
// visitor flow.
type AnalyticsEvent struct {
	ent.Schema
}

// Fields of the AnalyticsEvent.
func (AnalyticsEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("event_type").
			NotEmpty(),
		field.JSON("event_data", map[string]any{}).
			Optional(),
		field.String("step").
			Optional().
			Comment("Wizard step the event occurred on, when applicable"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AnalyticsEvent.
func (AnalyticsEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("event_type"),
		index.Fields("created_at"),
		index.Fields("event_type", "created_at"),
	}
}
