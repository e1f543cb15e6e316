// Code generated by ent, DO NOT EDIT.

package variant

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/directpavers/paverquote/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Variant {
	return predicate.Variant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Variant {
	return predicate.Variant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Variant {
	return predicate.Variant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Variant {
	return predicate.Variant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Variant {
	return predicate.Variant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Variant {
	return predicate.Variant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Variant {
	return predicate.Variant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Variant {
	return predicate.Variant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Variant {
	return predicate.Variant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Variant {
	return predicate.Variant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Variant {
	return predicate.Variant(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Variant {
	return predicate.Variant(sql.FieldEQ(FieldName, v))
}

// TextureURL applies equality check predicate on the "texture_url" field. It's identical to TextureURLEQ.
func TextureURL(v string) predicate.Variant {
	return predicate.Variant(sql.FieldEQ(FieldTextureURL, v))
}

// ExampleURL applies equality check predicate on the "example_url" field. It's identical to ExampleURLEQ.
func ExampleURL(v string) predicate.Variant {
	return predicate.Variant(sql.FieldEQ(FieldExampleURL, v))
}

// ShopifyURL applies equality check predicate on the "shopify_url" field. It's identical to ShopifyURLEQ.
func ShopifyURL(v string) predicate.Variant {
	return predicate.Variant(sql.FieldEQ(FieldShopifyURL, v))
}

// PricePerPallet applies equality check predicate on the "price_per_pallet" field. It's identical to PricePerPalletEQ.
func PricePerPallet(v float64) predicate.Variant {
	return predicate.Variant(sql.FieldEQ(FieldPricePerPallet, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Variant {
	return predicate.Variant(sql.FieldEQ(FieldPosition, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Variant {
	return predicate.Variant(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Variant {
	return predicate.Variant(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Variant {
	return predicate.Variant(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Variant {
	return predicate.Variant(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Variant {
	return predicate.Variant(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Variant {
	return predicate.Variant(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Variant {
	return predicate.Variant(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Variant {
	return predicate.Variant(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Variant {
	return predicate.Variant(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Variant {
	return predicate.Variant(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Variant {
	return predicate.Variant(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Variant {
	return predicate.Variant(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Variant {
	return predicate.Variant(sql.FieldContainsFold(FieldName, v))
}

// TextureURLEQ applies the EQ predicate on the "texture_url" field.
func TextureURLEQ(v string) predicate.Variant {
	return predicate.Variant(sql.FieldEQ(FieldTextureURL, v))
}

// TextureURLNEQ applies the NEQ predicate on the "texture_url" field.
func TextureURLNEQ(v string) predicate.Variant {
	return predicate.Variant(sql.FieldNEQ(FieldTextureURL, v))
}

// TextureURLIn applies the In predicate on the "texture_url" field.
func TextureURLIn(vs ...string) predicate.Variant {
	return predicate.Variant(sql.FieldIn(FieldTextureURL, vs...))
}

// TextureURLNotIn applies the NotIn predicate on the "texture_url" field.
func TextureURLNotIn(vs ...string) predicate.Variant {
	return predicate.Variant(sql.FieldNotIn(FieldTextureURL, vs...))
}

// TextureURLGT applies the GT predicate on the "texture_url" field.
func TextureURLGT(v string) predicate.Variant {
	return predicate.Variant(sql.FieldGT(FieldTextureURL, v))
}

// TextureURLGTE applies the GTE predicate on the "texture_url" field.
func TextureURLGTE(v string) predicate.Variant {
	return predicate.Variant(sql.FieldGTE(FieldTextureURL, v))
}

// TextureURLLT applies the LT predicate on the "texture_url" field.
func TextureURLLT(v string) predicate.Variant {
	return predicate.Variant(sql.FieldLT(FieldTextureURL, v))
}

// TextureURLLTE applies the LTE predicate on the "texture_url" field.
func TextureURLLTE(v string) predicate.Variant {
	return predicate.Variant(sql.FieldLTE(FieldTextureURL, v))
}

// TextureURLContains applies the Contains predicate on the "texture_url" field.
func TextureURLContains(v string) predicate.Variant {
	return predicate.Variant(sql.FieldContains(FieldTextureURL, v))
}

// TextureURLHasPrefix applies the HasPrefix predicate on the "texture_url" field.
func TextureURLHasPrefix(v string) predicate.Variant {
	return predicate.Variant(sql.FieldHasPrefix(FieldTextureURL, v))
}

// TextureURLHasSuffix applies the HasSuffix predicate on the "texture_url" field.
func TextureURLHasSuffix(v string) predicate.Variant {
	return predicate.Variant(sql.FieldHasSuffix(FieldTextureURL, v))
}

// TextureURLEqualFold applies the EqualFold predicate on the "texture_url" field.
func TextureURLEqualFold(v string) predicate.Variant {
	return predicate.Variant(sql.FieldEqualFold(FieldTextureURL, v))
}

// TextureURLContainsFold applies the ContainsFold predicate on the "texture_url" field.
func TextureURLContainsFold(v string) predicate.Variant {
	return predicate.Variant(sql.FieldContainsFold(FieldTextureURL, v))
}

// ExampleURLEQ applies the EQ predicate on the "example_url" field.
func ExampleURLEQ(v string) predicate.Variant {
	return predicate.Variant(sql.FieldEQ(FieldExampleURL, v))
}

// ExampleURLNEQ applies the NEQ predicate on the "example_url" field.
func ExampleURLNEQ(v string) predicate.Variant {
	return predicate.Variant(sql.FieldNEQ(FieldExampleURL, v))
}

// ExampleURLIn applies the In predicate on the "example_url" field.
func ExampleURLIn(vs ...string) predicate.Variant {
	return predicate.Variant(sql.FieldIn(FieldExampleURL, vs...))
}

// ExampleURLNotIn applies the NotIn predicate on the "example_url" field.
func ExampleURLNotIn(vs ...string) predicate.Variant {
	return predicate.Variant(sql.FieldNotIn(FieldExampleURL, vs...))
}

// ExampleURLGT applies the GT predicate on the "example_url" field.
func ExampleURLGT(v string) predicate.Variant {
	return predicate.Variant(sql.FieldGT(FieldExampleURL, v))
}

// ExampleURLGTE applies the GTE predicate on the "example_url" field.
func ExampleURLGTE(v string) predicate.Variant {
	return predicate.Variant(sql.FieldGTE(FieldExampleURL, v))
}

// ExampleURLLT applies the LT predicate on the "example_url" field.
func ExampleURLLT(v string) predicate.Variant {
	return predicate.Variant(sql.FieldLT(FieldExampleURL, v))
}

// ExampleURLLTE applies the LTE predicate on the "example_url" field.
func ExampleURLLTE(v string) predicate.Variant {
	return predicate.Variant(sql.FieldLTE(FieldExampleURL, v))
}

// ExampleURLContains applies the Contains predicate on the "example_url" field.
func ExampleURLContains(v string) predicate.Variant {
	return predicate.Variant(sql.FieldContains(FieldExampleURL, v))
}

// ExampleURLHasPrefix applies the HasPrefix predicate on the "example_url" field.
func ExampleURLHasPrefix(v string) predicate.Variant {
	return predicate.Variant(sql.FieldHasPrefix(FieldExampleURL, v))
}

// ExampleURLHasSuffix applies the HasSuffix predicate on the "example_url" field.
func ExampleURLHasSuffix(v string) predicate.Variant {
	return predicate.Variant(sql.FieldHasSuffix(FieldExampleURL, v))
}

// ExampleURLIsNil applies the IsNil predicate on the "example_url" field.
func ExampleURLIsNil() predicate.Variant {
	return predicate.Variant(sql.FieldIsNull(FieldExampleURL))
}

// ExampleURLNotNil applies the NotNil predicate on the "example_url" field.
func ExampleURLNotNil() predicate.Variant {
	return predicate.Variant(sql.FieldNotNull(FieldExampleURL))
}

// ExampleURLEqualFold applies the EqualFold predicate on the "example_url" field.
func ExampleURLEqualFold(v string) predicate.Variant {
	return predicate.Variant(sql.FieldEqualFold(FieldExampleURL, v))
}

// ExampleURLContainsFold applies the ContainsFold predicate on the "example_url" field.
func ExampleURLContainsFold(v string) predicate.Variant {
	return predicate.Variant(sql.FieldContainsFold(FieldExampleURL, v))
}

// ShopifyURLEQ applies the EQ predicate on the "shopify_url" field.
func ShopifyURLEQ(v string) predicate.Variant {
	return predicate.Variant(sql.FieldEQ(FieldShopifyURL, v))
}

// ShopifyURLNEQ applies the NEQ predicate on the "shopify_url" field.
func ShopifyURLNEQ(v string) predicate.Variant {
	return predicate.Variant(sql.FieldNEQ(FieldShopifyURL, v))
}

// ShopifyURLIn applies the In predicate on the "shopify_url" field.
func ShopifyURLIn(vs ...string) predicate.Variant {
	return predicate.Variant(sql.FieldIn(FieldShopifyURL, vs...))
}

// ShopifyURLNotIn applies the NotIn predicate on the "shopify_url" field.
func ShopifyURLNotIn(vs ...string) predicate.Variant {
	return predicate.Variant(sql.FieldNotIn(FieldShopifyURL, vs...))
}

// ShopifyURLGT applies the GT predicate on the "shopify_url" field.
func ShopifyURLGT(v string) predicate.Variant {
	return predicate.Variant(sql.FieldGT(FieldShopifyURL, v))
}

// ShopifyURLGTE applies the GTE predicate on the "shopify_url" field.
func ShopifyURLGTE(v string) predicate.Variant {
	return predicate.Variant(sql.FieldGTE(FieldShopifyURL, v))
}

// ShopifyURLLT applies the LT predicate on the "shopify_url" field.
func ShopifyURLLT(v string) predicate.Variant {
	return predicate.Variant(sql.FieldLT(FieldShopifyURL, v))
}

// ShopifyURLLTE applies the LTE predicate on the "shopify_url" field.
func ShopifyURLLTE(v string) predicate.Variant {
	return predicate.Variant(sql.FieldLTE(FieldShopifyURL, v))
}

// ShopifyURLContains applies the Contains predicate on the "shopify_url" field.
func ShopifyURLContains(v string) predicate.Variant {
	return predicate.Variant(sql.FieldContains(FieldShopifyURL, v))
}

// ShopifyURLHasPrefix applies the HasPrefix predicate on the "shopify_url" field.
func ShopifyURLHasPrefix(v string) predicate.Variant {
	return predicate.Variant(sql.FieldHasPrefix(FieldShopifyURL, v))
}

// ShopifyURLHasSuffix applies the HasSuffix predicate on the "shopify_url" field.
func ShopifyURLHasSuffix(v string) predicate.Variant {
	return predicate.Variant(sql.FieldHasSuffix(FieldShopifyURL, v))
}

// ShopifyURLIsNil applies the IsNil predicate on the "shopify_url" field.
func ShopifyURLIsNil() predicate.Variant {
	return predicate.Variant(sql.FieldIsNull(FieldShopifyURL))
}

// ShopifyURLNotNil applies the NotNil predicate on the "shopify_url" field.
func ShopifyURLNotNil() predicate.Variant {
	return predicate.Variant(sql.FieldNotNull(FieldShopifyURL))
}

// ShopifyURLEqualFold applies the EqualFold predicate on the "shopify_url" field.
func ShopifyURLEqualFold(v string) predicate.Variant {
	return predicate.Variant(sql.FieldEqualFold(FieldShopifyURL, v))
}

// ShopifyURLContainsFold applies the ContainsFold predicate on the "shopify_url" field.
func ShopifyURLContainsFold(v string) predicate.Variant {
	return predicate.Variant(sql.FieldContainsFold(FieldShopifyURL, v))
}

// PricePerPalletEQ applies the EQ predicate on the "price_per_pallet" field.
func PricePerPalletEQ(v float64) predicate.Variant {
	return predicate.Variant(sql.FieldEQ(FieldPricePerPallet, v))
}

// PricePerPalletNEQ applies the NEQ predicate on the "price_per_pallet" field.
func PricePerPalletNEQ(v float64) predicate.Variant {
	return predicate.Variant(sql.FieldNEQ(FieldPricePerPallet, v))
}

// PricePerPalletIn applies the In predicate on the "price_per_pallet" field.
func PricePerPalletIn(vs ...float64) predicate.Variant {
	return predicate.Variant(sql.FieldIn(FieldPricePerPallet, vs...))
}

// PricePerPalletNotIn applies the NotIn predicate on the "price_per_pallet" field.
func PricePerPalletNotIn(vs ...float64) predicate.Variant {
	return predicate.Variant(sql.FieldNotIn(FieldPricePerPallet, vs...))
}

// PricePerPalletGT applies the GT predicate on the "price_per_pallet" field.
func PricePerPalletGT(v float64) predicate.Variant {
	return predicate.Variant(sql.FieldGT(FieldPricePerPallet, v))
}

// PricePerPalletGTE applies the GTE predicate on the "price_per_pallet" field.
func PricePerPalletGTE(v float64) predicate.Variant {
	return predicate.Variant(sql.FieldGTE(FieldPricePerPallet, v))
}

// PricePerPalletLT applies the LT predicate on the "price_per_pallet" field.
func PricePerPalletLT(v float64) predicate.Variant {
	return predicate.Variant(sql.FieldLT(FieldPricePerPallet, v))
}

// PricePerPalletLTE applies the LTE predicate on the "price_per_pallet" field.
func PricePerPalletLTE(v float64) predicate.Variant {
	return predicate.Variant(sql.FieldLTE(FieldPricePerPallet, v))
}

// PricePerPalletIsNil applies the IsNil predicate on the "price_per_pallet" field.
func PricePerPalletIsNil() predicate.Variant {
	return predicate.Variant(sql.FieldIsNull(FieldPricePerPallet))
}

// PricePerPalletNotNil applies the NotNil predicate on the "price_per_pallet" field.
func PricePerPalletNotNil() predicate.Variant {
	return predicate.Variant(sql.FieldNotNull(FieldPricePerPallet))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Variant {
	return predicate.Variant(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Variant {
	return predicate.Variant(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Variant {
	return predicate.Variant(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Variant {
	return predicate.Variant(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Variant {
	return predicate.Variant(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Variant {
	return predicate.Variant(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Variant {
	return predicate.Variant(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Variant {
	return predicate.Variant(sql.FieldLTE(FieldPosition, v))
}

// HasProduct applies the HasEdge predicate on the "product" edge.
func HasProduct() predicate.Variant {
	return predicate.Variant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProductTable, ProductColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProductWith applies the HasEdge predicate on the "product" edge with a given conditions (other predicates).
func HasProductWith(preds ...predicate.Product) predicate.Variant {
	return predicate.Variant(func(s *sql.Selector) {
		step := newProductStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Variant) predicate.Variant {
	return predicate.Variant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Variant) predicate.Variant {
	return predicate.Variant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Variant) predicate.Variant {
	return predicate.Variant(sql.NotPredicates(p))
}
