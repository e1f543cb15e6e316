// Code generated by ent, DO NOT EDIT.

package product

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the product type in the database.
	Label = "product"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldManufacturerID holds the string denoting the manufacturer_id field in the database.
	FieldManufacturerID = "manufacturer_id"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldPricePerPallet holds the string denoting the price_per_pallet field in the database.
	FieldPricePerPallet = "price_per_pallet"
	// FieldSqftPerPallet holds the string denoting the sqft_per_pallet field in the database.
	FieldSqftPerPallet = "sqft_per_pallet"
	// FieldWeightPerPallet holds the string denoting the weight_per_pallet field in the database.
	FieldWeightPerPallet = "weight_per_pallet"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeVariants holds the string denoting the variants edge name in mutations.
	EdgeVariants = "variants"
	// Table holds the table name of the product in the database.
	Table = "products"
	// VariantsTable is the table that holds the variants relation/edge.
	VariantsTable = "variants"
	// VariantsInverseTable is the table name for the Variant entity.
	// It exists in this package in order to avoid circular dependency with the "variant" package.
	VariantsInverseTable = "variants"
	// VariantsColumn is the table column denoting the variants relation/edge.
	VariantsColumn = "product_variants"
)

// Columns holds all SQL columns for product fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldManufacturerID,
	FieldPrompt,
	FieldPricePerPallet,
	FieldSqftPerPallet,
	FieldWeightPerPallet,
	FieldCreatedAt,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// ManufacturerID defines the type for the "manufacturer_id" enum field.
type ManufacturerID string

// ManufacturerID values.
const (
	ManufacturerIDFlagstone ManufacturerID = "flagstone"
	ManufacturerIDTremron   ManufacturerID = "tremron"
	ManufacturerIDTricircle ManufacturerID = "tricircle"
)

func (mi ManufacturerID) String() string {
	return string(mi)
}

// ManufacturerIDValidator is a validator for the "manufacturer_id" field enum values. It is called by the builders before save.
func ManufacturerIDValidator(mi ManufacturerID) error {
	switch mi {
	case ManufacturerIDFlagstone, ManufacturerIDTremron, ManufacturerIDTricircle:
		return nil
	default:
		return fmt.Errorf("product: invalid enum value for manufacturer_id field: %q", mi)
	}
}

// OrderOption defines the ordering options for the Product queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByManufacturerID orders the results by the manufacturer_id field.
func ByManufacturerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManufacturerID, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByPricePerPallet orders the results by the price_per_pallet field.
func ByPricePerPallet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPricePerPallet, opts...).ToFunc()
}

// BySqftPerPallet orders the results by the sqft_per_pallet field.
func BySqftPerPallet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSqftPerPallet, opts...).ToFunc()
}

// ByWeightPerPallet orders the results by the weight_per_pallet field.
func ByWeightPerPallet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeightPerPallet, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByVariantsCount orders the results by variants count.
func ByVariantsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVariantsStep(), opts...)
	}
}

// ByVariants orders the results by variants terms.
func ByVariants(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVariantsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newVariantsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VariantsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VariantsTable, VariantsColumn),
	)
}
