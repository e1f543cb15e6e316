// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/directpavers/paverquote/ent/activitylog"
	"github.com/directpavers/paverquote/ent/analyticsevent"
	"github.com/directpavers/paverquote/ent/deliveryzone"
	"github.com/directpavers/paverquote/ent/lead"
	"github.com/directpavers/paverquote/ent/pricingconfig"
	"github.com/directpavers/paverquote/ent/product"
	"github.com/directpavers/paverquote/ent/schema"
	"github.com/directpavers/paverquote/ent/variant"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activitylogFields := schema.ActivityLog{}.Fields()
	_ = activitylogFields
	// activitylogDescAction is the schema descriptor for action field.
	activitylogDescAction := activitylogFields[0].Descriptor()
	// activitylog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	activitylog.ActionValidator = activitylogDescAction.Validators[0].(func(string) error)
	// activitylogDescCreatedAt is the schema descriptor for created_at field.
	activitylogDescCreatedAt := activitylogFields[3].Descriptor()
	// activitylog.DefaultCreatedAt holds the default value on creation for the created_at field.
	activitylog.DefaultCreatedAt = activitylogDescCreatedAt.Default.(func() time.Time)
	analyticseventFields := schema.AnalyticsEvent{}.Fields()
	_ = analyticseventFields
	// analyticseventDescSessionID is the schema descriptor for session_id field.
	analyticseventDescSessionID := analyticseventFields[0].Descriptor()
	// analyticsevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	analyticsevent.SessionIDValidator = analyticseventDescSessionID.Validators[0].(func(string) error)
	// analyticseventDescEventType is the schema descriptor for event_type field.
	analyticseventDescEventType := analyticseventFields[1].Descriptor()
	// analyticsevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	analyticsevent.EventTypeValidator = analyticseventDescEventType.Validators[0].(func(string) error)
	// analyticseventDescCreatedAt is the schema descriptor for created_at field.
	analyticseventDescCreatedAt := analyticseventFields[4].Descriptor()
	// analyticsevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	analyticsevent.DefaultCreatedAt = analyticseventDescCreatedAt.Default.(func() time.Time)
	deliveryzoneFields := schema.DeliveryZone{}.Fields()
	_ = deliveryzoneFields
	// deliveryzoneDescName is the schema descriptor for name field.
	deliveryzoneDescName := deliveryzoneFields[1].Descriptor()
	// deliveryzone.NameValidator is a validator for the "name" field. It is called by the builders before save.
	deliveryzone.NameValidator = deliveryzoneDescName.Validators[0].(func(string) error)
	// deliveryzoneDescLabel is the schema descriptor for label field.
	deliveryzoneDescLabel := deliveryzoneFields[2].Descriptor()
	// deliveryzone.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	deliveryzone.LabelValidator = deliveryzoneDescLabel.Validators[0].(func(string) error)
	// deliveryzoneDescFee is the schema descriptor for fee field.
	deliveryzoneDescFee := deliveryzoneFields[3].Descriptor()
	// deliveryzone.FeeValidator is a validator for the "fee" field. It is called by the builders before save.
	deliveryzone.FeeValidator = deliveryzoneDescFee.Validators[0].(func(float64) error)
	// deliveryzoneDescSortOrder is the schema descriptor for sort_order field.
	deliveryzoneDescSortOrder := deliveryzoneFields[5].Descriptor()
	// deliveryzone.DefaultSortOrder holds the default value on creation for the sort_order field.
	deliveryzone.DefaultSortOrder = deliveryzoneDescSortOrder.Default.(int)
	// deliveryzoneDescActive is the schema descriptor for active field.
	deliveryzoneDescActive := deliveryzoneFields[6].Descriptor()
	// deliveryzone.DefaultActive holds the default value on creation for the active field.
	deliveryzone.DefaultActive = deliveryzoneDescActive.Default.(bool)
	// deliveryzoneDescID is the schema descriptor for id field.
	deliveryzoneDescID := deliveryzoneFields[0].Descriptor()
	// deliveryzone.IDValidator is a validator for the "id" field. It is called by the builders before save.
	deliveryzone.IDValidator = deliveryzoneDescID.Validators[0].(func(string) error)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescName is the schema descriptor for name field.
	leadDescName := leadFields[0].Descriptor()
	// lead.NameValidator is a validator for the "name" field. It is called by the builders before save.
	lead.NameValidator = leadDescName.Validators[0].(func(string) error)
	// leadDescEmail is the schema descriptor for email field.
	leadDescEmail := leadFields[1].Descriptor()
	// lead.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	lead.EmailValidator = leadDescEmail.Validators[0].(func(string) error)
	// leadDescSource is the schema descriptor for source field.
	leadDescSource := leadFields[4].Descriptor()
	// lead.DefaultSource holds the default value on creation for the source field.
	lead.DefaultSource = leadDescSource.Default.(string)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[6].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	pricingconfigFields := schema.PricingConfig{}.Fields()
	_ = pricingconfigFields
	// pricingconfigDescLaborRatePerSqft is the schema descriptor for labor_rate_per_sqft field.
	pricingconfigDescLaborRatePerSqft := pricingconfigFields[0].Descriptor()
	// pricingconfig.DefaultLaborRatePerSqft holds the default value on creation for the labor_rate_per_sqft field.
	pricingconfig.DefaultLaborRatePerSqft = pricingconfigDescLaborRatePerSqft.Default.(float64)
	// pricingconfig.LaborRatePerSqftValidator is a validator for the "labor_rate_per_sqft" field. It is called by the builders before save.
	pricingconfig.LaborRatePerSqftValidator = pricingconfigDescLaborRatePerSqft.Validators[0].(func(float64) error)
	// pricingconfigDescWastePercentage is the schema descriptor for waste_percentage field.
	pricingconfigDescWastePercentage := pricingconfigFields[1].Descriptor()
	// pricingconfig.DefaultWastePercentage holds the default value on creation for the waste_percentage field.
	pricingconfig.DefaultWastePercentage = pricingconfigDescWastePercentage.Default.(float64)
	// pricingconfig.WastePercentageValidator is a validator for the "waste_percentage" field. It is called by the builders before save.
	pricingconfig.WastePercentageValidator = pricingconfigDescWastePercentage.Validators[0].(func(float64) error)
	// pricingconfigDescOwnerPhone is the schema descriptor for owner_phone field.
	pricingconfigDescOwnerPhone := pricingconfigFields[2].Descriptor()
	// pricingconfig.DefaultOwnerPhone holds the default value on creation for the owner_phone field.
	pricingconfig.DefaultOwnerPhone = pricingconfigDescOwnerPhone.Default.(string)
	// pricingconfigDescOwnerWhatsapp is the schema descriptor for owner_whatsapp field.
	pricingconfigDescOwnerWhatsapp := pricingconfigFields[3].Descriptor()
	// pricingconfig.DefaultOwnerWhatsapp holds the default value on creation for the owner_whatsapp field.
	pricingconfig.DefaultOwnerWhatsapp = pricingconfigDescOwnerWhatsapp.Default.(string)
	// pricingconfigDescRequireLeadCapture is the schema descriptor for require_lead_capture field.
	pricingconfigDescRequireLeadCapture := pricingconfigFields[4].Descriptor()
	// pricingconfig.DefaultRequireLeadCapture holds the default value on creation for the require_lead_capture field.
	pricingconfig.DefaultRequireLeadCapture = pricingconfigDescRequireLeadCapture.Default.(bool)
	// pricingconfigDescUpdatedAt is the schema descriptor for updated_at field.
	pricingconfigDescUpdatedAt := pricingconfigFields[5].Descriptor()
	// pricingconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pricingconfig.DefaultUpdatedAt = pricingconfigDescUpdatedAt.Default.(func() time.Time)
	// pricingconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pricingconfig.UpdateDefaultUpdatedAt = pricingconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescName is the schema descriptor for name field.
	productDescName := productFields[1].Descriptor()
	// product.NameValidator is a validator for the "name" field. It is called by the builders before save.
	product.NameValidator = productDescName.Validators[0].(func(string) error)
	// productDescCreatedAt is the schema descriptor for created_at field.
	productDescCreatedAt := productFields[8].Descriptor()
	// product.DefaultCreatedAt holds the default value on creation for the created_at field.
	product.DefaultCreatedAt = productDescCreatedAt.Default.(func() time.Time)
	// productDescUpdatedAt is the schema descriptor for updated_at field.
	productDescUpdatedAt := productFields[9].Descriptor()
	// product.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	product.DefaultUpdatedAt = productDescUpdatedAt.Default.(func() time.Time)
	// product.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	product.UpdateDefaultUpdatedAt = productDescUpdatedAt.UpdateDefault.(func() time.Time)
	// productDescID is the schema descriptor for id field.
	productDescID := productFields[0].Descriptor()
	// product.IDValidator is a validator for the "id" field. It is called by the builders before save.
	product.IDValidator = productDescID.Validators[0].(func(string) error)
	variantFields := schema.Variant{}.Fields()
	_ = variantFields
	// variantDescName is the schema descriptor for name field.
	variantDescName := variantFields[1].Descriptor()
	// variant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	variant.NameValidator = variantDescName.Validators[0].(func(string) error)
	// variantDescTextureURL is the schema descriptor for texture_url field.
	variantDescTextureURL := variantFields[2].Descriptor()
	// variant.TextureURLValidator is a validator for the "texture_url" field. It is called by the builders before save.
	variant.TextureURLValidator = variantDescTextureURL.Validators[0].(func(string) error)
	// variantDescPosition is the schema descriptor for position field.
	variantDescPosition := variantFields[6].Descriptor()
	// variant.DefaultPosition holds the default value on creation for the position field.
	variant.DefaultPosition = variantDescPosition.Default.(int)
	// variantDescID is the schema descriptor for id field.
	variantDescID := variantFields[0].Descriptor()
	// variant.IDValidator is a validator for the "id" field. It is called by the builders before save.
	variant.IDValidator = variantDescID.Validators[0].(func(string) error)
}
