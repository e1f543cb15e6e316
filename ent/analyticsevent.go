// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/directpavers/paverquote/ent/analyticsevent"
)

// AnalyticsEvent is the model entity for the AnalyticsEvent schema.
type AnalyticsEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// EventData holds the value of the "event_data" field.
	EventData map[string]interface{} `json:"event_data,omitempty"`
	// Wizard step the event occurred on, when applicable
	Step string `json:"step,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalyticsEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analyticsevent.FieldEventData:
			values[i] = new([]byte)
		case analyticsevent.FieldID:
			values[i] = new(sql.NullInt64)
		case analyticsevent.FieldSessionID, analyticsevent.FieldEventType, analyticsevent.FieldStep:
			values[i] = new(sql.NullString)
		case analyticsevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalyticsEvent fields.
func (_m *AnalyticsEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analyticsevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analyticsevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case analyticsevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case analyticsevent.FieldEventData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field event_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EventData); err != nil {
					return fmt.Errorf("unmarshal field event_data: %w", err)
				}
			}
		case analyticsevent.FieldStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step", values[i])
			} else if value.Valid {
				_m.Step = value.String
			}
		case analyticsevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalyticsEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AnalyticsEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnalyticsEvent.
// Note that you need to call AnalyticsEvent.Unwrap() before calling this method if this AnalyticsEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalyticsEvent) Update() *AnalyticsEventUpdateOne {
	return NewAnalyticsEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalyticsEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalyticsEvent) Unwrap() *AnalyticsEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalyticsEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalyticsEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AnalyticsEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("event_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventData))
	builder.WriteString(", ")
	builder.WriteString("step=")
	builder.WriteString(_m.Step)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnalyticsEvents is a parsable slice of AnalyticsEvent.
type AnalyticsEvents []*AnalyticsEvent
