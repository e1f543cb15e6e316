// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/directpavers/paverquote/ent/product"
	"github.com/directpavers/paverquote/ent/variant"
)

// Variant is the model entity for the Variant schema.
type Variant struct {
	config `json:"-"`
	// ID of the ent.
	// Stable slug identifier, e.g. 'monaco-sand-dune'
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Swatch image the visualizer applies to the photo
	TextureURL string `json:"texture_url,omitempty"`
	// ExampleURL holds the value of the "example_url" field.
	ExampleURL string `json:"example_url,omitempty"`
	// External purchase link shown on the quote
	ShopifyURL string `json:"shopify_url,omitempty"`
	// Overrides the product price when set
	PricePerPallet *float64 `json:"price_per_pallet,omitempty"`
	// Display order within the product
	Position int `json:"position,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VariantQuery when eager-loading is set.
	Edges            VariantEdges `json:"edges"`
	product_variants *string
	selectValues     sql.SelectValues
}

// VariantEdges holds the relations/edges for other nodes in the graph.
type VariantEdges struct {
	// Product holds the value of the product edge.
	Product *Product `json:"product,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProductOrErr returns the Product value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VariantEdges) ProductOrErr() (*Product, error) {
	if e.Product != nil {
		return e.Product, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: product.Label}
	}
	return nil, &NotLoadedError{edge: "product"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Variant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case variant.FieldPricePerPallet:
			values[i] = new(sql.NullFloat64)
		case variant.FieldPosition:
			values[i] = new(sql.NullInt64)
		case variant.FieldID, variant.FieldName, variant.FieldTextureURL, variant.FieldExampleURL, variant.FieldShopifyURL:
			values[i] = new(sql.NullString)
		case variant.ForeignKeys[0]: // product_variants
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Variant fields.
func (_m *Variant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case variant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case variant.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case variant.FieldTextureURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field texture_url", values[i])
			} else if value.Valid {
				_m.TextureURL = value.String
			}
		case variant.FieldExampleURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field example_url", values[i])
			} else if value.Valid {
				_m.ExampleURL = value.String
			}
		case variant.FieldShopifyURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field shopify_url", values[i])
			} else if value.Valid {
				_m.ShopifyURL = value.String
			}
		case variant.FieldPricePerPallet:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price_per_pallet", values[i])
			} else if value.Valid {
				_m.PricePerPallet = new(float64)
				*_m.PricePerPallet = value.Float64
			}
		case variant.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case variant.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_variants", values[i])
			} else if value.Valid {
				_m.product_variants = new(string)
				*_m.product_variants = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Variant.
// This includes values selected through modifiers, order, etc.
func (_m *Variant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProduct queries the "product" edge of the Variant entity.
func (_m *Variant) QueryProduct() *ProductQuery {
	return NewVariantClient(_m.config).QueryProduct(_m)
}

// Update returns a builder for updating this Variant.
// Note that you need to call Variant.Unwrap() before calling this method if this Variant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Variant) Update() *VariantUpdateOne {
	return NewVariantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Variant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Variant) Unwrap() *Variant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Variant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Variant) String() string {
	var builder strings.Builder
	builder.WriteString("Variant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("texture_url=")
	builder.WriteString(_m.TextureURL)
	builder.WriteString(", ")
	builder.WriteString("example_url=")
	builder.WriteString(_m.ExampleURL)
	builder.WriteString(", ")
	builder.WriteString("shopify_url=")
	builder.WriteString(_m.ShopifyURL)
	builder.WriteString(", ")
	if v := _m.PricePerPallet; v != nil {
		builder.WriteString("price_per_pallet=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteByte(')')
	return builder.String()
}

// Variants is a parsable slice of Variant.
type Variants []*Variant
