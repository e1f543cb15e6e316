// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/directpavers/paverquote/ent/pricingconfig"
)

// PricingConfig is the model entity for the PricingConfig schema.
type PricingConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LaborRatePerSqft holds the value of the "labor_rate_per_sqft" field.
	LaborRatePerSqft float64 `json:"labor_rate_per_sqft,omitempty"`
	// Percent added to the measured area before pallet rounding
	WastePercentage float64 `json:"waste_percentage,omitempty"`
	// OwnerPhone holds the value of the "owner_phone" field.
	OwnerPhone string `json:"owner_phone,omitempty"`
	// OwnerWhatsapp holds the value of the "owner_whatsapp" field.
	OwnerWhatsapp string `json:"owner_whatsapp,omitempty"`
	// RequireLeadCapture holds the value of the "require_lead_capture" field.
	RequireLeadCapture bool `json:"require_lead_capture,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PricingConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pricingconfig.FieldRequireLeadCapture:
			values[i] = new(sql.NullBool)
		case pricingconfig.FieldLaborRatePerSqft, pricingconfig.FieldWastePercentage:
			values[i] = new(sql.NullFloat64)
		case pricingconfig.FieldID:
			values[i] = new(sql.NullInt64)
		case pricingconfig.FieldOwnerPhone, pricingconfig.FieldOwnerWhatsapp:
			values[i] = new(sql.NullString)
		case pricingconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PricingConfig fields.
func (_m *PricingConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pricingconfig.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pricingconfig.FieldLaborRatePerSqft:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field labor_rate_per_sqft", values[i])
			} else if value.Valid {
				_m.LaborRatePerSqft = value.Float64
			}
		case pricingconfig.FieldWastePercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field waste_percentage", values[i])
			} else if value.Valid {
				_m.WastePercentage = value.Float64
			}
		case pricingconfig.FieldOwnerPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_phone", values[i])
			} else if value.Valid {
				_m.OwnerPhone = value.String
			}
		case pricingconfig.FieldOwnerWhatsapp:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_whatsapp", values[i])
			} else if value.Valid {
				_m.OwnerWhatsapp = value.String
			}
		case pricingconfig.FieldRequireLeadCapture:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field require_lead_capture", values[i])
			} else if value.Valid {
				_m.RequireLeadCapture = value.Bool
			}
		case pricingconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PricingConfig.
// This includes values selected through modifiers, order, etc.
func (_m *PricingConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PricingConfig.
// Note that you need to call PricingConfig.Unwrap() before calling this method if this PricingConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PricingConfig) Update() *PricingConfigUpdateOne {
	return NewPricingConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PricingConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PricingConfig) Unwrap() *PricingConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PricingConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PricingConfig) String() string {
	var builder strings.Builder
	builder.WriteString("PricingConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("labor_rate_per_sqft=")
	builder.WriteString(fmt.Sprintf("%v", _m.LaborRatePerSqft))
	builder.WriteString(", ")
	builder.WriteString("waste_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.WastePercentage))
	builder.WriteString(", ")
	builder.WriteString("owner_phone=")
	builder.WriteString(_m.OwnerPhone)
	builder.WriteString(", ")
	builder.WriteString("owner_whatsapp=")
	builder.WriteString(_m.OwnerWhatsapp)
	builder.WriteString(", ")
	builder.WriteString("require_lead_capture=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequireLeadCapture))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PricingConfigs is a parsable slice of PricingConfig.
type PricingConfigs []*PricingConfig
