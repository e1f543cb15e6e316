// Code generated by ent, DO NOT EDIT.

package pricingconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pricingconfig type in the database.
	Label = "pricing_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLaborRatePerSqft holds the string denoting the labor_rate_per_sqft field in the database.
	FieldLaborRatePerSqft = "labor_rate_per_sqft"
	// FieldWastePercentage holds the string denoting the waste_percentage field in the database.
	FieldWastePercentage = "waste_percentage"
	// FieldOwnerPhone holds the string denoting the owner_phone field in the database.
	FieldOwnerPhone = "owner_phone"
	// FieldOwnerWhatsapp holds the string denoting the owner_whatsapp field in the database.
	FieldOwnerWhatsapp = "owner_whatsapp"
	// FieldRequireLeadCapture holds the string denoting the require_lead_capture field in the database.
	FieldRequireLeadCapture = "require_lead_capture"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the pricingconfig in the database.
	Table = "pricing_configs"
)

// Columns holds all SQL columns for pricingconfig fields.
var Columns = []string{
	FieldID,
	FieldLaborRatePerSqft,
	FieldWastePercentage,
	FieldOwnerPhone,
	FieldOwnerWhatsapp,
	FieldRequireLeadCapture,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLaborRatePerSqft holds the default value on creation for the "labor_rate_per_sqft" field.
	DefaultLaborRatePerSqft float64
	// LaborRatePerSqftValidator is a validator for the "labor_rate_per_sqft" field. It is called by the builders before save.
	LaborRatePerSqftValidator func(float64) error
	// DefaultWastePercentage holds the default value on creation for the "waste_percentage" field.
	DefaultWastePercentage float64
	// WastePercentageValidator is a validator for the "waste_percentage" field. It is called by the builders before save.
	WastePercentageValidator func(float64) error
	// DefaultOwnerPhone holds the default value on creation for the "owner_phone" field.
	DefaultOwnerPhone string
	// DefaultOwnerWhatsapp holds the default value on creation for the "owner_whatsapp" field.
	DefaultOwnerWhatsapp string
	// DefaultRequireLeadCapture holds the default value on creation for the "require_lead_capture" field.
	DefaultRequireLeadCapture bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the PricingConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLaborRatePerSqft orders the results by the labor_rate_per_sqft field.
func ByLaborRatePerSqft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLaborRatePerSqft, opts...).ToFunc()
}

// ByWastePercentage orders the results by the waste_percentage field.
func ByWastePercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWastePercentage, opts...).ToFunc()
}

// ByOwnerPhone orders the results by the owner_phone field.
func ByOwnerPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerPhone, opts...).ToFunc()
}

// ByOwnerWhatsapp orders the results by the owner_whatsapp field.
func ByOwnerWhatsapp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerWhatsapp, opts...).ToFunc()
}

// ByRequireLeadCapture orders the results by the require_lead_capture field.
func ByRequireLeadCapture(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequireLeadCapture, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
