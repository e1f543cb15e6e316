// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityLog is the predicate function for activitylog builders.
type ActivityLog func(*sql.Selector)

// AnalyticsEvent is the predicate function for analyticsevent builders.
type AnalyticsEvent func(*sql.Selector)

// DeliveryZone is the predicate function for deliveryzone builders.
type DeliveryZone func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// PricingConfig is the predicate function for pricingconfig builders.
type PricingConfig func(*sql.Selector)

// Product is the predicate function for product builders.
type Product func(*sql.Selector)

// Variant is the predicate function for variant builders.
type Variant func(*sql.Selector)
