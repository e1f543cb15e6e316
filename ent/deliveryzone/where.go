// Code generated by ent, DO NOT EDIT.

package deliveryzone

import (
	"entgo.io/ent/dialect/sql"
	"github.com/directpavers/paverquote/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEQ(FieldName, v))
}

// Fee applies equality check predicate on the "fee" field. It's identical to FeeEQ.
func Fee(v float64) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEQ(FieldFee, v))
}

// RadiusDescription applies equality check predicate on the "radius_description" field. It's identical to RadiusDescriptionEQ.
func RadiusDescription(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEQ(FieldRadiusDescription, v))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEQ(FieldSortOrder, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEQ(FieldActive, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldContainsFold(FieldName, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldContainsFold(FieldLabel, v))
}

// FeeEQ applies the EQ predicate on the "fee" field.
func FeeEQ(v float64) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEQ(FieldFee, v))
}

// FeeNEQ applies the NEQ predicate on the "fee" field.
func FeeNEQ(v float64) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldNEQ(FieldFee, v))
}

// FeeIn applies the In predicate on the "fee" field.
func FeeIn(vs ...float64) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldIn(FieldFee, vs...))
}

// FeeNotIn applies the NotIn predicate on the "fee" field.
func FeeNotIn(vs ...float64) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldNotIn(FieldFee, vs...))
}

// FeeGT applies the GT predicate on the "fee" field.
func FeeGT(v float64) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldGT(FieldFee, v))
}

// FeeGTE applies the GTE predicate on the "fee" field.
func FeeGTE(v float64) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldGTE(FieldFee, v))
}

// FeeLT applies the LT predicate on the "fee" field.
func FeeLT(v float64) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldLT(FieldFee, v))
}

// FeeLTE applies the LTE predicate on the "fee" field.
func FeeLTE(v float64) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldLTE(FieldFee, v))
}

// RadiusDescriptionEQ applies the EQ predicate on the "radius_description" field.
func RadiusDescriptionEQ(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEQ(FieldRadiusDescription, v))
}

// RadiusDescriptionNEQ applies the NEQ predicate on the "radius_description" field.
func RadiusDescriptionNEQ(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldNEQ(FieldRadiusDescription, v))
}

// RadiusDescriptionIn applies the In predicate on the "radius_description" field.
func RadiusDescriptionIn(vs ...string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldIn(FieldRadiusDescription, vs...))
}

// RadiusDescriptionNotIn applies the NotIn predicate on the "radius_description" field.
func RadiusDescriptionNotIn(vs ...string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldNotIn(FieldRadiusDescription, vs...))
}

// RadiusDescriptionGT applies the GT predicate on the "radius_description" field.
func RadiusDescriptionGT(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldGT(FieldRadiusDescription, v))
}

// RadiusDescriptionGTE applies the GTE predicate on the "radius_description" field.
func RadiusDescriptionGTE(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldGTE(FieldRadiusDescription, v))
}

// RadiusDescriptionLT applies the LT predicate on the "radius_description" field.
func RadiusDescriptionLT(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldLT(FieldRadiusDescription, v))
}

// RadiusDescriptionLTE applies the LTE predicate on the "radius_description" field.
func RadiusDescriptionLTE(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldLTE(FieldRadiusDescription, v))
}

// RadiusDescriptionContains applies the Contains predicate on the "radius_description" field.
func RadiusDescriptionContains(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldContains(FieldRadiusDescription, v))
}

// RadiusDescriptionHasPrefix applies the HasPrefix predicate on the "radius_description" field.
func RadiusDescriptionHasPrefix(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldHasPrefix(FieldRadiusDescription, v))
}

// RadiusDescriptionHasSuffix applies the HasSuffix predicate on the "radius_description" field.
func RadiusDescriptionHasSuffix(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldHasSuffix(FieldRadiusDescription, v))
}

// RadiusDescriptionIsNil applies the IsNil predicate on the "radius_description" field.
func RadiusDescriptionIsNil() predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldIsNull(FieldRadiusDescription))
}

// RadiusDescriptionNotNil applies the NotNil predicate on the "radius_description" field.
func RadiusDescriptionNotNil() predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldNotNull(FieldRadiusDescription))
}

// RadiusDescriptionEqualFold applies the EqualFold predicate on the "radius_description" field.
func RadiusDescriptionEqualFold(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEqualFold(FieldRadiusDescription, v))
}

// RadiusDescriptionContainsFold applies the ContainsFold predicate on the "radius_description" field.
func RadiusDescriptionContainsFold(v string) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldContainsFold(FieldRadiusDescription, v))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldLTE(FieldSortOrder, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.FieldNEQ(FieldActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeliveryZone) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeliveryZone) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeliveryZone) predicate.DeliveryZone {
	return predicate.DeliveryZone(sql.NotPredicates(p))
}
