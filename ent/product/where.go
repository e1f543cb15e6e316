// Code generated by ent, DO NOT EDIT.

package product

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/directpavers/paverquote/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldDescription, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldPrompt, v))
}

// PricePerPallet applies equality check predicate on the "price_per_pallet" field. It's identical to PricePerPalletEQ.
func PricePerPallet(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldPricePerPallet, v))
}

// SqftPerPallet applies equality check predicate on the "sqft_per_pallet" field. It's identical to SqftPerPalletEQ.
func SqftPerPallet(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSqftPerPallet, v))
}

// WeightPerPallet applies equality check predicate on the "weight_per_pallet" field. It's identical to WeightPerPalletEQ.
func WeightPerPallet(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldWeightPerPallet, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldDescription, v))
}

// ManufacturerIDEQ applies the EQ predicate on the "manufacturer_id" field.
func ManufacturerIDEQ(v ManufacturerID) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldManufacturerID, v))
}

// ManufacturerIDNEQ applies the NEQ predicate on the "manufacturer_id" field.
func ManufacturerIDNEQ(v ManufacturerID) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldManufacturerID, v))
}

// ManufacturerIDIn applies the In predicate on the "manufacturer_id" field.
func ManufacturerIDIn(vs ...ManufacturerID) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldManufacturerID, vs...))
}

// ManufacturerIDNotIn applies the NotIn predicate on the "manufacturer_id" field.
func ManufacturerIDNotIn(vs ...ManufacturerID) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldManufacturerID, vs...))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptIsNil applies the IsNil predicate on the "prompt" field.
func PromptIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldPrompt))
}

// PromptNotNil applies the NotNil predicate on the "prompt" field.
func PromptNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldPrompt))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldPrompt, v))
}

// PricePerPalletEQ applies the EQ predicate on the "price_per_pallet" field.
func PricePerPalletEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldPricePerPallet, v))
}

// PricePerPalletNEQ applies the NEQ predicate on the "price_per_pallet" field.
func PricePerPalletNEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldPricePerPallet, v))
}

// PricePerPalletIn applies the In predicate on the "price_per_pallet" field.
func PricePerPalletIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldPricePerPallet, vs...))
}

// PricePerPalletNotIn applies the NotIn predicate on the "price_per_pallet" field.
func PricePerPalletNotIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldPricePerPallet, vs...))
}

// PricePerPalletGT applies the GT predicate on the "price_per_pallet" field.
func PricePerPalletGT(v float64) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldPricePerPallet, v))
}

// PricePerPalletGTE applies the GTE predicate on the "price_per_pallet" field.
func PricePerPalletGTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldPricePerPallet, v))
}

// PricePerPalletLT applies the LT predicate on the "price_per_pallet" field.
func PricePerPalletLT(v float64) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldPricePerPallet, v))
}

// PricePerPalletLTE applies the LTE predicate on the "price_per_pallet" field.
func PricePerPalletLTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldPricePerPallet, v))
}

// PricePerPalletIsNil applies the IsNil predicate on the "price_per_pallet" field.
func PricePerPalletIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldPricePerPallet))
}

// PricePerPalletNotNil applies the NotNil predicate on the "price_per_pallet" field.
func PricePerPalletNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldPricePerPallet))
}

// SqftPerPalletEQ applies the EQ predicate on the "sqft_per_pallet" field.
func SqftPerPalletEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSqftPerPallet, v))
}

// SqftPerPalletNEQ applies the NEQ predicate on the "sqft_per_pallet" field.
func SqftPerPalletNEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldSqftPerPallet, v))
}

// SqftPerPalletIn applies the In predicate on the "sqft_per_pallet" field.
func SqftPerPalletIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldSqftPerPallet, vs...))
}

// SqftPerPalletNotIn applies the NotIn predicate on the "sqft_per_pallet" field.
func SqftPerPalletNotIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldSqftPerPallet, vs...))
}

// SqftPerPalletGT applies the GT predicate on the "sqft_per_pallet" field.
func SqftPerPalletGT(v float64) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldSqftPerPallet, v))
}

// SqftPerPalletGTE applies the GTE predicate on the "sqft_per_pallet" field.
func SqftPerPalletGTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldSqftPerPallet, v))
}

// SqftPerPalletLT applies the LT predicate on the "sqft_per_pallet" field.
func SqftPerPalletLT(v float64) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldSqftPerPallet, v))
}

// SqftPerPalletLTE applies the LTE predicate on the "sqft_per_pallet" field.
func SqftPerPalletLTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldSqftPerPallet, v))
}

// SqftPerPalletIsNil applies the IsNil predicate on the "sqft_per_pallet" field.
func SqftPerPalletIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldSqftPerPallet))
}

// SqftPerPalletNotNil applies the NotNil predicate on the "sqft_per_pallet" field.
func SqftPerPalletNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldSqftPerPallet))
}

// WeightPerPalletEQ applies the EQ predicate on the "weight_per_pallet" field.
func WeightPerPalletEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldWeightPerPallet, v))
}

// WeightPerPalletNEQ applies the NEQ predicate on the "weight_per_pallet" field.
func WeightPerPalletNEQ(v float64) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldWeightPerPallet, v))
}

// WeightPerPalletIn applies the In predicate on the "weight_per_pallet" field.
func WeightPerPalletIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldWeightPerPallet, vs...))
}

// WeightPerPalletNotIn applies the NotIn predicate on the "weight_per_pallet" field.
func WeightPerPalletNotIn(vs ...float64) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldWeightPerPallet, vs...))
}

// WeightPerPalletGT applies the GT predicate on the "weight_per_pallet" field.
func WeightPerPalletGT(v float64) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldWeightPerPallet, v))
}

// WeightPerPalletGTE applies the GTE predicate on the "weight_per_pallet" field.
func WeightPerPalletGTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldWeightPerPallet, v))
}

// WeightPerPalletLT applies the LT predicate on the "weight_per_pallet" field.
func WeightPerPalletLT(v float64) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldWeightPerPallet, v))
}

// WeightPerPalletLTE applies the LTE predicate on the "weight_per_pallet" field.
func WeightPerPalletLTE(v float64) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldWeightPerPallet, v))
}

// WeightPerPalletIsNil applies the IsNil predicate on the "weight_per_pallet" field.
func WeightPerPalletIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldWeightPerPallet))
}

// WeightPerPalletNotNil applies the NotNil predicate on the "weight_per_pallet" field.
func WeightPerPalletNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldWeightPerPallet))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasVariants applies the HasEdge predicate on the "variants" edge.
func HasVariants() predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VariantsTable, VariantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVariantsWith applies the HasEdge predicate on the "variants" edge with a given conditions (other predicates).
func HasVariantsWith(preds ...predicate.Variant) predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := newVariantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Product) predicate.Product {
	return predicate.Product(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Product) predicate.Product {
	return predicate.Product(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Product) predicate.Product {
	return predicate.Product(sql.NotPredicates(p))
}
