// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/directpavers/paverquote/ent/deliveryzone"
)

// DeliveryZone is the model entity for the DeliveryZone schema.
type DeliveryZone struct {
	config `json:"-"`
	// ID of the ent.
	// Stable slug identifier, e.g. 'tampa'
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Customer-facing label, e.g. 'Tampa (+ 25 miles)'
	Label string `json:"label,omitempty"`
	// Flat delivery fee in dollars
	Fee float64 `json:"fee,omitempty"`
	// RadiusDescription holds the value of the "radius_description" field.
	RadiusDescription string `json:"radius_description,omitempty"`
	// SortOrder holds the value of the "sort_order" field.
	SortOrder int `json:"sort_order,omitempty"`
	// Active holds the value of the "active" field.
	Active       bool `json:"active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeliveryZone) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deliveryzone.FieldActive:
			values[i] = new(sql.NullBool)
		case deliveryzone.FieldFee:
			values[i] = new(sql.NullFloat64)
		case deliveryzone.FieldSortOrder:
			values[i] = new(sql.NullInt64)
		case deliveryzone.FieldID, deliveryzone.FieldName, deliveryzone.FieldLabel, deliveryzone.FieldRadiusDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeliveryZone fields.
func (_m *DeliveryZone) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deliveryzone.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case deliveryzone.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case deliveryzone.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case deliveryzone.FieldFee:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fee", values[i])
			} else if value.Valid {
				_m.Fee = value.Float64
			}
		case deliveryzone.FieldRadiusDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field radius_description", values[i])
			} else if value.Valid {
				_m.RadiusDescription = value.String
			}
		case deliveryzone.FieldSortOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort_order", values[i])
			} else if value.Valid {
				_m.SortOrder = int(value.Int64)
			}
		case deliveryzone.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeliveryZone.
// This includes values selected through modifiers, order, etc.
func (_m *DeliveryZone) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DeliveryZone.
// Note that you need to call DeliveryZone.Unwrap() before calling this method if this DeliveryZone
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeliveryZone) Update() *DeliveryZoneUpdateOne {
	return NewDeliveryZoneClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeliveryZone entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeliveryZone) Unwrap() *DeliveryZone {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeliveryZone is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeliveryZone) String() string {
	var builder strings.Builder
	builder.WriteString("DeliveryZone(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	builder.WriteString("fee=")
	builder.WriteString(fmt.Sprintf("%v", _m.Fee))
	builder.WriteString(", ")
	builder.WriteString("radius_description=")
	builder.WriteString(_m.RadiusDescription)
	builder.WriteString(", ")
	builder.WriteString("sort_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SortOrder))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteByte(')')
	return builder.String()
}

// DeliveryZones is a parsable slice of DeliveryZone.
type DeliveryZones []*DeliveryZone
