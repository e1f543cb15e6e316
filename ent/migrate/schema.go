// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityLogsColumns holds the columns for the "activity_logs" table.
	ActivityLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "action", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "error"}, Default: "success"},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ActivityLogsTable holds the schema information for the "activity_logs" table.
	ActivityLogsTable = &schema.Table{
		Name:       "activity_logs",
		Columns:    ActivityLogsColumns,
		PrimaryKey: []*schema.Column{ActivityLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activitylog_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[4]},
			},
			{
				Name:    "activitylog_action",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[1]},
			},
		},
	}
	// AnalyticsEventsColumns holds the columns for the "analytics_events" table.
	AnalyticsEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "event_data", Type: field.TypeJSON, Nullable: true},
		{Name: "step", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AnalyticsEventsTable holds the schema information for the "analytics_events" table.
	AnalyticsEventsTable = &schema.Table{
		Name:       "analytics_events",
		Columns:    AnalyticsEventsColumns,
		PrimaryKey: []*schema.Column{AnalyticsEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analyticsevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnalyticsEventsColumns[1]},
			},
			{
				Name:    "analyticsevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{AnalyticsEventsColumns[2]},
			},
			{
				Name:    "analyticsevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalyticsEventsColumns[5]},
			},
			{
				Name:    "analyticsevent_event_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalyticsEventsColumns[2], AnalyticsEventsColumns[5]},
			},
		},
	}
	// DeliveryZonesColumns holds the columns for the "delivery_zones" table.
	DeliveryZonesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "label", Type: field.TypeString},
		{Name: "fee", Type: field.TypeFloat64},
		{Name: "radius_description", Type: field.TypeString, Nullable: true},
		{Name: "sort_order", Type: field.TypeInt, Default: 99},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// DeliveryZonesTable holds the schema information for the "delivery_zones" table.
	DeliveryZonesTable = &schema.Table{
		Name:       "delivery_zones",
		Columns:    DeliveryZonesColumns,
		PrimaryKey: []*schema.Column{DeliveryZonesColumns[0]},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Default: "quote-wizard"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "contacted", "converted"}, Default: "new"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lead_email",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[2]},
			},
			{
				Name:    "lead_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[6]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[7]},
			},
		},
	}
	// PricingConfigsColumns holds the columns for the "pricing_configs" table.
	PricingConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "labor_rate_per_sqft", Type: field.TypeFloat64, Default: 8},
		{Name: "waste_percentage", Type: field.TypeFloat64, Default: 10},
		{Name: "owner_phone", Type: field.TypeString, Default: "+18138191450"},
		{Name: "owner_whatsapp", Type: field.TypeString, Default: "+18138191450"},
		{Name: "require_lead_capture", Type: field.TypeBool, Default: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PricingConfigsTable holds the schema information for the "pricing_configs" table.
	PricingConfigsTable = &schema.Table{
		Name:       "pricing_configs",
		Columns:    PricingConfigsColumns,
		PrimaryKey: []*schema.Column{PricingConfigsColumns[0]},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "manufacturer_id", Type: field.TypeEnum, Enums: []string{"flagstone", "tremron", "tricircle"}},
		{Name: "prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "price_per_pallet", Type: field.TypeFloat64, Nullable: true},
		{Name: "sqft_per_pallet", Type: field.TypeFloat64, Nullable: true},
		{Name: "weight_per_pallet", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "product_manufacturer_id",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[3]},
			},
		},
	}
	// VariantsColumns holds the columns for the "variants" table.
	VariantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "texture_url", Type: field.TypeString},
		{Name: "example_url", Type: field.TypeString, Nullable: true},
		{Name: "shopify_url", Type: field.TypeString, Nullable: true},
		{Name: "price_per_pallet", Type: field.TypeFloat64, Nullable: true},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "product_variants", Type: field.TypeString},
	}
	// VariantsTable holds the schema information for the "variants" table.
	VariantsTable = &schema.Table{
		Name:       "variants",
		Columns:    VariantsColumns,
		PrimaryKey: []*schema.Column{VariantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "variants_products_variants",
				Columns:    []*schema.Column{VariantsColumns[7]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityLogsTable,
		AnalyticsEventsTable,
		DeliveryZonesTable,
		LeadsTable,
		PricingConfigsTable,
		ProductsTable,
		VariantsTable,
	}
)

func init() {
	VariantsTable.ForeignKeys[0].RefTable = ProductsTable
}
