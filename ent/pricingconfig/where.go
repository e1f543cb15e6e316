// Code generated by ent, DO NOT EDIT.

package pricingconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/directpavers/paverquote/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldLTE(FieldID, id))
}

// LaborRatePerSqft applies equality check predicate on the "labor_rate_per_sqft" field. It's identical to LaborRatePerSqftEQ.
func LaborRatePerSqft(v float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldEQ(FieldLaborRatePerSqft, v))
}

// WastePercentage applies equality check predicate on the "waste_percentage" field. It's identical to WastePercentageEQ.
func WastePercentage(v float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldEQ(FieldWastePercentage, v))
}

// OwnerPhone applies equality check predicate on the "owner_phone" field. It's identical to OwnerPhoneEQ.
func OwnerPhone(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldEQ(FieldOwnerPhone, v))
}

// OwnerWhatsapp applies equality check predicate on the "owner_whatsapp" field. It's identical to OwnerWhatsappEQ.
func OwnerWhatsapp(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldEQ(FieldOwnerWhatsapp, v))
}

// RequireLeadCapture applies equality check predicate on the "require_lead_capture" field. It's identical to RequireLeadCaptureEQ.
func RequireLeadCapture(v bool) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldEQ(FieldRequireLeadCapture, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// LaborRatePerSqftEQ applies the EQ predicate on the "labor_rate_per_sqft" field.
func LaborRatePerSqftEQ(v float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldEQ(FieldLaborRatePerSqft, v))
}

// LaborRatePerSqftNEQ applies the NEQ predicate on the "labor_rate_per_sqft" field.
func LaborRatePerSqftNEQ(v float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldNEQ(FieldLaborRatePerSqft, v))
}

// LaborRatePerSqftIn applies the In predicate on the "labor_rate_per_sqft" field.
func LaborRatePerSqftIn(vs ...float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldIn(FieldLaborRatePerSqft, vs...))
}

// LaborRatePerSqftNotIn applies the NotIn predicate on the "labor_rate_per_sqft" field.
func LaborRatePerSqftNotIn(vs ...float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldNotIn(FieldLaborRatePerSqft, vs...))
}

// LaborRatePerSqftGT applies the GT predicate on the "labor_rate_per_sqft" field.
func LaborRatePerSqftGT(v float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldGT(FieldLaborRatePerSqft, v))
}

// LaborRatePerSqftGTE applies the GTE predicate on the "labor_rate_per_sqft" field.
func LaborRatePerSqftGTE(v float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldGTE(FieldLaborRatePerSqft, v))
}

// LaborRatePerSqftLT applies the LT predicate on the "labor_rate_per_sqft" field.
func LaborRatePerSqftLT(v float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldLT(FieldLaborRatePerSqft, v))
}

// LaborRatePerSqftLTE applies the LTE predicate on the "labor_rate_per_sqft" field.
func LaborRatePerSqftLTE(v float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldLTE(FieldLaborRatePerSqft, v))
}

// WastePercentageEQ applies the EQ predicate on the "waste_percentage" field.
func WastePercentageEQ(v float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldEQ(FieldWastePercentage, v))
}

// WastePercentageNEQ applies the NEQ predicate on the "waste_percentage" field.
func WastePercentageNEQ(v float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldNEQ(FieldWastePercentage, v))
}

// WastePercentageIn applies the In predicate on the "waste_percentage" field.
func WastePercentageIn(vs ...float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldIn(FieldWastePercentage, vs...))
}

// WastePercentageNotIn applies the NotIn predicate on the "waste_percentage" field.
func WastePercentageNotIn(vs ...float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldNotIn(FieldWastePercentage, vs...))
}

// WastePercentageGT applies the GT predicate on the "waste_percentage" field.
func WastePercentageGT(v float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldGT(FieldWastePercentage, v))
}

// WastePercentageGTE applies the GTE predicate on the "waste_percentage" field.
func WastePercentageGTE(v float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldGTE(FieldWastePercentage, v))
}

// WastePercentageLT applies the LT predicate on the "waste_percentage" field.
func WastePercentageLT(v float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldLT(FieldWastePercentage, v))
}

// WastePercentageLTE applies the LTE predicate on the "waste_percentage" field.
func WastePercentageLTE(v float64) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldLTE(FieldWastePercentage, v))
}

// OwnerPhoneEQ applies the EQ predicate on the "owner_phone" field.
func OwnerPhoneEQ(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldEQ(FieldOwnerPhone, v))
}

// OwnerPhoneNEQ applies the NEQ predicate on the "owner_phone" field.
func OwnerPhoneNEQ(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldNEQ(FieldOwnerPhone, v))
}

// OwnerPhoneIn applies the In predicate on the "owner_phone" field.
func OwnerPhoneIn(vs ...string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldIn(FieldOwnerPhone, vs...))
}

// OwnerPhoneNotIn applies the NotIn predicate on the "owner_phone" field.
func OwnerPhoneNotIn(vs ...string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldNotIn(FieldOwnerPhone, vs...))
}

// OwnerPhoneGT applies the GT predicate on the "owner_phone" field.
func OwnerPhoneGT(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldGT(FieldOwnerPhone, v))
}

// OwnerPhoneGTE applies the GTE predicate on the "owner_phone" field.
func OwnerPhoneGTE(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldGTE(FieldOwnerPhone, v))
}

// OwnerPhoneLT applies the LT predicate on the "owner_phone" field.
func OwnerPhoneLT(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldLT(FieldOwnerPhone, v))
}

// OwnerPhoneLTE applies the LTE predicate on the "owner_phone" field.
func OwnerPhoneLTE(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldLTE(FieldOwnerPhone, v))
}

// OwnerPhoneContains applies the Contains predicate on the "owner_phone" field.
func OwnerPhoneContains(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldContains(FieldOwnerPhone, v))
}

// OwnerPhoneHasPrefix applies the HasPrefix predicate on the "owner_phone" field.
func OwnerPhoneHasPrefix(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldHasPrefix(FieldOwnerPhone, v))
}

// OwnerPhoneHasSuffix applies the HasSuffix predicate on the "owner_phone" field.
func OwnerPhoneHasSuffix(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldHasSuffix(FieldOwnerPhone, v))
}

// OwnerPhoneEqualFold applies the EqualFold predicate on the "owner_phone" field.
func OwnerPhoneEqualFold(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldEqualFold(FieldOwnerPhone, v))
}

// OwnerPhoneContainsFold applies the ContainsFold predicate on the "owner_phone" field.
func OwnerPhoneContainsFold(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldContainsFold(FieldOwnerPhone, v))
}

// OwnerWhatsappEQ applies the EQ predicate on the "owner_whatsapp" field.
func OwnerWhatsappEQ(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldEQ(FieldOwnerWhatsapp, v))
}

// OwnerWhatsappNEQ applies the NEQ predicate on the "owner_whatsapp" field.
func OwnerWhatsappNEQ(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldNEQ(FieldOwnerWhatsapp, v))
}

// OwnerWhatsappIn applies the In predicate on the "owner_whatsapp" field.
func OwnerWhatsappIn(vs ...string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldIn(FieldOwnerWhatsapp, vs...))
}

// OwnerWhatsappNotIn applies the NotIn predicate on the "owner_whatsapp" field.
func OwnerWhatsappNotIn(vs ...string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldNotIn(FieldOwnerWhatsapp, vs...))
}

// OwnerWhatsappGT applies the GT predicate on the "owner_whatsapp" field.
func OwnerWhatsappGT(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldGT(FieldOwnerWhatsapp, v))
}

// OwnerWhatsappGTE applies the GTE predicate on the "owner_whatsapp" field.
func OwnerWhatsappGTE(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldGTE(FieldOwnerWhatsapp, v))
}

// OwnerWhatsappLT applies the LT predicate on the "owner_whatsapp" field.
func OwnerWhatsappLT(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldLT(FieldOwnerWhatsapp, v))
}

// OwnerWhatsappLTE applies the LTE predicate on the "owner_whatsapp" field.
func OwnerWhatsappLTE(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldLTE(FieldOwnerWhatsapp, v))
}

// OwnerWhatsappContains applies the Contains predicate on the "owner_whatsapp" field.
func OwnerWhatsappContains(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldContains(FieldOwnerWhatsapp, v))
}

// OwnerWhatsappHasPrefix applies the HasPrefix predicate on the "owner_whatsapp" field.
func OwnerWhatsappHasPrefix(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldHasPrefix(FieldOwnerWhatsapp, v))
}

// OwnerWhatsappHasSuffix applies the HasSuffix predicate on the "owner_whatsapp" field.
func OwnerWhatsappHasSuffix(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldHasSuffix(FieldOwnerWhatsapp, v))
}

// OwnerWhatsappEqualFold applies the EqualFold predicate on the "owner_whatsapp" field.
func OwnerWhatsappEqualFold(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldEqualFold(FieldOwnerWhatsapp, v))
}

// OwnerWhatsappContainsFold applies the ContainsFold predicate on the "owner_whatsapp" field.
func OwnerWhatsappContainsFold(v string) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldContainsFold(FieldOwnerWhatsapp, v))
}

// RequireLeadCaptureEQ applies the EQ predicate on the "require_lead_capture" field.
func RequireLeadCaptureEQ(v bool) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldEQ(FieldRequireLeadCapture, v))
}

// RequireLeadCaptureNEQ applies the NEQ predicate on the "require_lead_capture" field.
func RequireLeadCaptureNEQ(v bool) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldNEQ(FieldRequireLeadCapture, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PricingConfig {
	return predicate.PricingConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PricingConfig) predicate.PricingConfig {
	return predicate.PricingConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PricingConfig) predicate.PricingConfig {
	return predicate.PricingConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PricingConfig) predicate.PricingConfig {
	return predicate.PricingConfig(sql.NotPredicates(p))
}
