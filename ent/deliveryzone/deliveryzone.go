// Code generated by ent, DO NOT EDIT.

package deliveryzone

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the deliveryzone type in the database.
	Label = "delivery_zone"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldFee holds the string denoting the fee field in the database.
	FieldFee = "fee"
	// FieldRadiusDescription holds the string denoting the radius_description field in the database.
	FieldRadiusDescription = "radius_description"
	// FieldSortOrder holds the string denoting the sort_order field in the database.
	FieldSortOrder = "sort_order"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// Table holds the table name of the deliveryzone in the database.
	Table = "delivery_zones"
)

// Columns holds all SQL columns for deliveryzone fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldLabel,
	FieldFee,
	FieldRadiusDescription,
	FieldSortOrder,
	FieldActive,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// LabelValidator is a validator for the "label" field. It is called by the builders before save.
	LabelValidator func(string) error
	// FeeValidator is a validator for the "fee" field. It is called by the builders before save.
	FeeValidator func(float64) error
	// DefaultSortOrder holds the default value on creation for the "sort_order" field.
	DefaultSortOrder int
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the DeliveryZone queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByFee orders the results by the fee field.
func ByFee(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFee, opts...).ToFunc()
}

// ByRadiusDescription orders the results by the radius_description field.
func ByRadiusDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRadiusDescription, opts...).ToFunc()
}

// BySortOrder orders the results by the sort_order field.
func BySortOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSortOrder, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}
