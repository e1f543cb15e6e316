// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/directpavers/paverquote/ent/predicate"
	"github.com/directpavers/paverquote/ent/product"
	"github.com/directpavers/paverquote/ent/variant"
)

// VariantUpdate is the builder for updating Variant entities.
type VariantUpdate struct {
	config
	hooks    []Hook
	mutation *VariantMutation
}

// Where appends a list predicates to the VariantUpdate builder.
func (_u *VariantUpdate) Where(ps ...predicate.Variant) *VariantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *VariantUpdate) SetName(v string) *VariantUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VariantUpdate) SetNillableName(v *string) *VariantUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTextureURL sets the "texture_url" field.
func (_u *VariantUpdate) SetTextureURL(v string) *VariantUpdate {
	_u.mutation.SetTextureURL(v)
	return _u
}

// SetNillableTextureURL sets the "texture_url" field if the given value is not nil.
func (_u *VariantUpdate) SetNillableTextureURL(v *string) *VariantUpdate {
	if v != nil {
		_u.SetTextureURL(*v)
	}
	return _u
}

// SetExampleURL sets the "example_url" field.
func (_u *VariantUpdate) SetExampleURL(v string) *VariantUpdate {
	_u.mutation.SetExampleURL(v)
	return _u
}

// SetNillableExampleURL sets the "example_url" field if the given value is not nil.
func (_u *VariantUpdate) SetNillableExampleURL(v *string) *VariantUpdate {
	if v != nil {
		_u.SetExampleURL(*v)
	}
	return _u
}

// ClearExampleURL clears the value of the "example_url" field.
func (_u *VariantUpdate) ClearExampleURL() *VariantUpdate {
	_u.mutation.ClearExampleURL()
	return _u
}

// SetShopifyURL sets the "shopify_url" field.
func (_u *VariantUpdate) SetShopifyURL(v string) *VariantUpdate {
	_u.mutation.SetShopifyURL(v)
	return _u
}

// SetNillableShopifyURL sets the "shopify_url" field if the given value is not nil.
func (_u *VariantUpdate) SetNillableShopifyURL(v *string) *VariantUpdate {
	if v != nil {
		_u.SetShopifyURL(*v)
	}
	return _u
}

// ClearShopifyURL clears the value of the "shopify_url" field.
func (_u *VariantUpdate) ClearShopifyURL() *VariantUpdate {
	_u.mutation.ClearShopifyURL()
	return _u
}

// SetPricePerPallet sets the "price_per_pallet" field.
func (_u *VariantUpdate) SetPricePerPallet(v float64) *VariantUpdate {
	_u.mutation.ResetPricePerPallet()
	_u.mutation.SetPricePerPallet(v)
	return _u
}

// SetNillablePricePerPallet sets the "price_per_pallet" field if the given value is not nil.
func (_u *VariantUpdate) SetNillablePricePerPallet(v *float64) *VariantUpdate {
	if v != nil {
		_u.SetPricePerPallet(*v)
	}
	return _u
}

// AddPricePerPallet adds value to the "price_per_pallet" field.
func (_u *VariantUpdate) AddPricePerPallet(v float64) *VariantUpdate {
	_u.mutation.AddPricePerPallet(v)
	return _u
}

// ClearPricePerPallet clears the value of the "price_per_pallet" field.
func (_u *VariantUpdate) ClearPricePerPallet() *VariantUpdate {
	_u.mutation.ClearPricePerPallet()
	return _u
}

// SetPosition sets the "position" field.
func (_u *VariantUpdate) SetPosition(v int) *VariantUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *VariantUpdate) SetNillablePosition(v *int) *VariantUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *VariantUpdate) AddPosition(v int) *VariantUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetProductID sets the "product" edge to the Product entity by ID.
func (_u *VariantUpdate) SetProductID(id string) *VariantUpdate {
	_u.mutation.SetProductID(id)
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *VariantUpdate) SetProduct(v *Product) *VariantUpdate {
	return _u.SetProductID(v.ID)
}

// Mutation returns the VariantMutation object of the builder.
func (_u *VariantUpdate) Mutation() *VariantMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *VariantUpdate) ClearProduct() *VariantUpdate {
	_u.mutation.ClearProduct()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VariantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VariantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VariantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VariantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VariantUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := variant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Variant.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TextureURL(); ok {
		if err := variant.TextureURLValidator(v); err != nil {
			return &ValidationError{Name: "texture_url", err: fmt.Errorf(`ent: validator failed for field "Variant.texture_url": %w`, err)}
		}
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Variant.product"`)
	}
	return nil
}

func (_u *VariantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(variant.Table, variant.Columns, sqlgraph.NewFieldSpec(variant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(variant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextureURL(); ok {
		_spec.SetField(variant.FieldTextureURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExampleURL(); ok {
		_spec.SetField(variant.FieldExampleURL, field.TypeString, value)
	}
	if _u.mutation.ExampleURLCleared() {
		_spec.ClearField(variant.FieldExampleURL, field.TypeString)
	}
	if value, ok := _u.mutation.ShopifyURL(); ok {
		_spec.SetField(variant.FieldShopifyURL, field.TypeString, value)
	}
	if _u.mutation.ShopifyURLCleared() {
		_spec.ClearField(variant.FieldShopifyURL, field.TypeString)
	}
	if value, ok := _u.mutation.PricePerPallet(); ok {
		_spec.SetField(variant.FieldPricePerPallet, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPricePerPallet(); ok {
		_spec.AddField(variant.FieldPricePerPallet, field.TypeFloat64, value)
	}
	if _u.mutation.PricePerPalletCleared() {
		_spec.ClearField(variant.FieldPricePerPallet, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(variant.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(variant.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.ProductCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{variant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VariantUpdateOne is the builder for updating a single Variant entity.
type VariantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VariantMutation
}

// SetName sets the "name" field.
func (_u *VariantUpdateOne) SetName(v string) *VariantUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VariantUpdateOne) SetNillableName(v *string) *VariantUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTextureURL sets the "texture_url" field.
func (_u *VariantUpdateOne) SetTextureURL(v string) *VariantUpdateOne {
	_u.mutation.SetTextureURL(v)
	return _u
}

// SetNillableTextureURL sets the "texture_url" field if the given value is not nil.
func (_u *VariantUpdateOne) SetNillableTextureURL(v *string) *VariantUpdateOne {
	if v != nil {
		_u.SetTextureURL(*v)
	}
	return _u
}

// SetExampleURL sets the "example_url" field.
func (_u *VariantUpdateOne) SetExampleURL(v string) *VariantUpdateOne {
	_u.mutation.SetExampleURL(v)
	return _u
}

// SetNillableExampleURL sets the "example_url" field if the given value is not nil.
func (_u *VariantUpdateOne) SetNillableExampleURL(v *string) *VariantUpdateOne {
	if v != nil {
		_u.SetExampleURL(*v)
	}
	return _u
}

// ClearExampleURL clears the value of the "example_url" field.
func (_u *VariantUpdateOne) ClearExampleURL() *VariantUpdateOne {
	_u.mutation.ClearExampleURL()
	return _u
}

// SetShopifyURL sets the "shopify_url" field.
func (_u *VariantUpdateOne) SetShopifyURL(v string) *VariantUpdateOne {
	_u.mutation.SetShopifyURL(v)
	return _u
}

// SetNillableShopifyURL sets the "shopify_url" field if the given value is not nil.
func (_u *VariantUpdateOne) SetNillableShopifyURL(v *string) *VariantUpdateOne {
	if v != nil {
		_u.SetShopifyURL(*v)
	}
	return _u
}

// ClearShopifyURL clears the value of the "shopify_url" field.
func (_u *VariantUpdateOne) ClearShopifyURL() *VariantUpdateOne {
	_u.mutation.ClearShopifyURL()
	return _u
}

// SetPricePerPallet sets the "price_per_pallet" field.
func (_u *VariantUpdateOne) SetPricePerPallet(v float64) *VariantUpdateOne {
	_u.mutation.ResetPricePerPallet()
	_u.mutation.SetPricePerPallet(v)
	return _u
}

// SetNillablePricePerPallet sets the "price_per_pallet" field if the given value is not nil.
func (_u *VariantUpdateOne) SetNillablePricePerPallet(v *float64) *VariantUpdateOne {
	if v != nil {
		_u.SetPricePerPallet(*v)
	}
	return _u
}

// AddPricePerPallet adds value to the "price_per_pallet" field.
func (_u *VariantUpdateOne) AddPricePerPallet(v float64) *VariantUpdateOne {
	_u.mutation.AddPricePerPallet(v)
	return _u
}

// ClearPricePerPallet clears the value of the "price_per_pallet" field.
func (_u *VariantUpdateOne) ClearPricePerPallet() *VariantUpdateOne {
	_u.mutation.ClearPricePerPallet()
	return _u
}

// SetPosition sets the "position" field.
func (_u *VariantUpdateOne) SetPosition(v int) *VariantUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *VariantUpdateOne) SetNillablePosition(v *int) *VariantUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *VariantUpdateOne) AddPosition(v int) *VariantUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetProductID sets the "product" edge to the Product entity by ID.
func (_u *VariantUpdateOne) SetProductID(id string) *VariantUpdateOne {
	_u.mutation.SetProductID(id)
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *VariantUpdateOne) SetProduct(v *Product) *VariantUpdateOne {
	return _u.SetProductID(v.ID)
}

// Mutation returns the VariantMutation object of the builder.
func (_u *VariantUpdateOne) Mutation() *VariantMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *VariantUpdateOne) ClearProduct() *VariantUpdateOne {
	_u.mutation.ClearProduct()
	return _u
}

// Where appends a list predicates to the VariantUpdate builder.
func (_u *VariantUpdateOne) Where(ps ...predicate.Variant) *VariantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VariantUpdateOne) Select(field string, fields ...string) *VariantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Variant entity.
func (_u *VariantUpdateOne) Save(ctx context.Context) (*Variant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VariantUpdateOne) SaveX(ctx context.Context) *Variant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VariantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VariantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VariantUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := variant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Variant.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TextureURL(); ok {
		if err := variant.TextureURLValidator(v); err != nil {
			return &ValidationError{Name: "texture_url", err: fmt.Errorf(`ent: validator failed for field "Variant.texture_url": %w`, err)}
		}
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Variant.product"`)
	}
	return nil
}

func (_u *VariantUpdateOne) sqlSave(ctx context.Context) (_node *Variant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(variant.Table, variant.Columns, sqlgraph.NewFieldSpec(variant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Variant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, variant.FieldID)
		for _, f := range fields {
			if !variant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != variant.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(variant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextureURL(); ok {
		_spec.SetField(variant.FieldTextureURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExampleURL(); ok {
		_spec.SetField(variant.FieldExampleURL, field.TypeString, value)
	}
	if _u.mutation.ExampleURLCleared() {
		_spec.ClearField(variant.FieldExampleURL, field.TypeString)
	}
	if value, ok := _u.mutation.ShopifyURL(); ok {
		_spec.SetField(variant.FieldShopifyURL, field.TypeString, value)
	}
	if _u.mutation.ShopifyURLCleared() {
		_spec.ClearField(variant.FieldShopifyURL, field.TypeString)
	}
	if value, ok := _u.mutation.PricePerPallet(); ok {
		_spec.SetField(variant.FieldPricePerPallet, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPricePerPallet(); ok {
		_spec.AddField(variant.FieldPricePerPallet, field.TypeFloat64, value)
	}
	if _u.mutation.PricePerPalletCleared() {
		_spec.ClearField(variant.FieldPricePerPallet, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(variant.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(variant.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.ProductCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Variant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{variant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
