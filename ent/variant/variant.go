// Code generated by ent, DO NOT EDIT.

package variant

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the variant type in the database.
	Label = "variant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTextureURL holds the string denoting the texture_url field in the database.
	FieldTextureURL = "texture_url"
	// FieldExampleURL holds the string denoting the example_url field in the database.
	FieldExampleURL = "example_url"
	// FieldShopifyURL holds the string denoting the shopify_url field in the database.
	FieldShopifyURL = "shopify_url"
	// FieldPricePerPallet holds the string denoting the price_per_pallet field in the database.
	FieldPricePerPallet = "price_per_pallet"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// EdgeProduct holds the string denoting the product edge name in mutations.
	EdgeProduct = "product"
	// Table holds the table name of the variant in the database.
	Table = "variants"
	// ProductTable is the table that holds the product relation/edge.
	ProductTable = "variants"
	// ProductInverseTable is the table name for the Product entity.
	// It exists in this package in order to avoid circular dependency with the "product" package.
	ProductInverseTable = "products"
	// ProductColumn is the table column denoting the product relation/edge.
	ProductColumn = "product_variants"
)

// Columns holds all SQL columns for variant fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldTextureURL,
	FieldExampleURL,
	FieldShopifyURL,
	FieldPricePerPallet,
	FieldPosition,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "variants"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"product_variants",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// TextureURLValidator is a validator for the "texture_url" field. It is called by the builders before save.
	TextureURLValidator func(string) error
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Variant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByTextureURL orders the results by the texture_url field.
func ByTextureURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextureURL, opts...).ToFunc()
}

// ByExampleURL orders the results by the example_url field.
func ByExampleURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExampleURL, opts...).ToFunc()
}

// ByShopifyURL orders the results by the shopify_url field.
func ByShopifyURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShopifyURL, opts...).ToFunc()
}

// ByPricePerPallet orders the results by the price_per_pallet field.
func ByPricePerPallet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPricePerPallet, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByProductField orders the results by product field.
func ByProductField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProductStep(), sql.OrderByField(field, opts...))
	}
}
func newProductStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProductInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProductTable, ProductColumn),
	)
}
