// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/directpavers/paverquote/ent/product"
	"github.com/directpavers/paverquote/ent/variant"
)

// VariantCreate is the builder for creating a Variant entity.
type VariantCreate struct {
	config
	mutation *VariantMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *VariantCreate) SetName(v string) *VariantCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTextureURL sets the "texture_url" field.
func (_c *VariantCreate) SetTextureURL(v string) *VariantCreate {
	_c.mutation.SetTextureURL(v)
	return _c
}

// SetExampleURL sets the "example_url" field.
func (_c *VariantCreate) SetExampleURL(v string) *VariantCreate {
	_c.mutation.SetExampleURL(v)
	return _c
}

// SetNillableExampleURL sets the "example_url" field if the given value is not nil.
func (_c *VariantCreate) SetNillableExampleURL(v *string) *VariantCreate {
	if v != nil {
		_c.SetExampleURL(*v)
	}
	return _c
}

// SetShopifyURL sets the "shopify_url" field.
func (_c *VariantCreate) SetShopifyURL(v string) *VariantCreate {
	_c.mutation.SetShopifyURL(v)
	return _c
}

// SetNillableShopifyURL sets the "shopify_url" field if the given value is not nil.
func (_c *VariantCreate) SetNillableShopifyURL(v *string) *VariantCreate {
	if v != nil {
		_c.SetShopifyURL(*v)
	}
	return _c
}

// SetPricePerPallet sets the "price_per_pallet" field.
func (_c *VariantCreate) SetPricePerPallet(v float64) *VariantCreate {
	_c.mutation.SetPricePerPallet(v)
	return _c
}

// SetNillablePricePerPallet sets the "price_per_pallet" field if the given value is not nil.
func (_c *VariantCreate) SetNillablePricePerPallet(v *float64) *VariantCreate {
	if v != nil {
		_c.SetPricePerPallet(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *VariantCreate) SetPosition(v int) *VariantCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *VariantCreate) SetNillablePosition(v *int) *VariantCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VariantCreate) SetID(v string) *VariantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProductID sets the "product" edge to the Product entity by ID.
func (_c *VariantCreate) SetProductID(id string) *VariantCreate {
	_c.mutation.SetProductID(id)
	return _c
}

// SetProduct sets the "product" edge to the Product entity.
func (_c *VariantCreate) SetProduct(v *Product) *VariantCreate {
	return _c.SetProductID(v.ID)
}

// Mutation returns the VariantMutation object of the builder.
func (_c *VariantCreate) Mutation() *VariantMutation {
	return _c.mutation
}

// Save creates the Variant in the database.
func (_c *VariantCreate) Save(ctx context.Context) (*Variant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VariantCreate) SaveX(ctx context.Context) *Variant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VariantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VariantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VariantCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := variant.DefaultPosition
		_c.mutation.SetPosition(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VariantCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Variant.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := variant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Variant.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TextureURL(); !ok {
		return &ValidationError{Name: "texture_url", err: errors.New(`ent: missing required field "Variant.texture_url"`)}
	}
	if v, ok := _c.mutation.TextureURL(); ok {
		if err := variant.TextureURLValidator(v); err != nil {
			return &ValidationError{Name: "texture_url", err: fmt.Errorf(`ent: validator failed for field "Variant.texture_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Variant.position"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := variant.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Variant.id": %w`, err)}
		}
	}
	if len(_c.mutation.ProductIDs()) == 0 {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required edge "Variant.product"`)}
	}
	return nil
}

func (_c *VariantCreate) sqlSave(ctx context.Context) (*Variant, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Variant.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VariantCreate) createSpec() (*Variant, *sqlgraph.CreateSpec) {
	var (
		_node = &Variant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(variant.Table, sqlgraph.NewFieldSpec(variant.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(variant.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.TextureURL(); ok {
		_spec.SetField(variant.FieldTextureURL, field.TypeString, value)
		_node.TextureURL = value
	}
	if value, ok := _c.mutation.ExampleURL(); ok {
		_spec.SetField(variant.FieldExampleURL, field.TypeString, value)
		_node.ExampleURL = value
	}
	if value, ok := _c.mutation.ShopifyURL(); ok {
		_spec.SetField(variant.FieldShopifyURL, field.TypeString, value)
		_node.ShopifyURL = value
	}
	if value, ok := _c.mutation.PricePerPallet(); ok {
		_spec.SetField(variant.FieldPricePerPallet, field.TypeFloat64, value)
		_node.PricePerPallet = &value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(variant.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   variant.ProductTable,
			Columns: []string{variant.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.product_variants = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VariantCreateBulk is the builder for creating many Variant entities in bulk.
type VariantCreateBulk struct {
	config
	err      error
	builders []*VariantCreate
}

// Save creates the Variant entities in the database.
func (_c *VariantCreateBulk) Save(ctx context.Context) ([]*Variant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Variant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VariantMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *VariantCreateBulk) SaveX(ctx context.Context) []*Variant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VariantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VariantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
