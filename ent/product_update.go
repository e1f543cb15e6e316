// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/directpavers/paverquote/ent/predicate"
	"github.com/directpavers/paverquote/ent/product"
	"github.com/directpavers/paverquote/ent/variant"
)

// ProductUpdate is the builder for updating Product entities.
type ProductUpdate struct {
	config
	hooks    []Hook
	mutation *ProductMutation
}

// Where appends a list predicates to the ProductUpdate builder.
func (_u *ProductUpdate) Where(ps ...predicate.Product) *ProductUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProductUpdate) SetName(v string) *ProductUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableName(v *string) *ProductUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProductUpdate) SetDescription(v string) *ProductUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableDescription(v *string) *ProductUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ProductUpdate) ClearDescription() *ProductUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetManufacturerID sets the "manufacturer_id" field.
func (_u *ProductUpdate) SetManufacturerID(v product.ManufacturerID) *ProductUpdate {
	_u.mutation.SetManufacturerID(v)
	return _u
}

// SetNillableManufacturerID sets the "manufacturer_id" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableManufacturerID(v *product.ManufacturerID) *ProductUpdate {
	if v != nil {
		_u.SetManufacturerID(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ProductUpdate) SetPrompt(v string) *ProductUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ProductUpdate) SetNillablePrompt(v *string) *ProductUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *ProductUpdate) ClearPrompt() *ProductUpdate {
	_u.mutation.ClearPrompt()
	return _u
}

// SetPricePerPallet sets the "price_per_pallet" field.
func (_u *ProductUpdate) SetPricePerPallet(v float64) *ProductUpdate {
	_u.mutation.ResetPricePerPallet()
	_u.mutation.SetPricePerPallet(v)
	return _u
}

// SetNillablePricePerPallet sets the "price_per_pallet" field if the given value is not nil.
func (_u *ProductUpdate) SetNillablePricePerPallet(v *float64) *ProductUpdate {
	if v != nil {
		_u.SetPricePerPallet(*v)
	}
	return _u
}

// AddPricePerPallet adds value to the "price_per_pallet" field.
func (_u *ProductUpdate) AddPricePerPallet(v float64) *ProductUpdate {
	_u.mutation.AddPricePerPallet(v)
	return _u
}

// ClearPricePerPallet clears the value of the "price_per_pallet" field.
func (_u *ProductUpdate) ClearPricePerPallet() *ProductUpdate {
	_u.mutation.ClearPricePerPallet()
	return _u
}

// SetSqftPerPallet sets the "sqft_per_pallet" field.
func (_u *ProductUpdate) SetSqftPerPallet(v float64) *ProductUpdate {
	_u.mutation.ResetSqftPerPallet()
	_u.mutation.SetSqftPerPallet(v)
	return _u
}

// SetNillableSqftPerPallet sets the "sqft_per_pallet" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableSqftPerPallet(v *float64) *ProductUpdate {
	if v != nil {
		_u.SetSqftPerPallet(*v)
	}
	return _u
}

// AddSqftPerPallet adds value to the "sqft_per_pallet" field.
func (_u *ProductUpdate) AddSqftPerPallet(v float64) *ProductUpdate {
	_u.mutation.AddSqftPerPallet(v)
	return _u
}

// ClearSqftPerPallet clears the value of the "sqft_per_pallet" field.
func (_u *ProductUpdate) ClearSqftPerPallet() *ProductUpdate {
	_u.mutation.ClearSqftPerPallet()
	return _u
}

// SetWeightPerPallet sets the "weight_per_pallet" field.
func (_u *ProductUpdate) SetWeightPerPallet(v float64) *ProductUpdate {
	_u.mutation.ResetWeightPerPallet()
	_u.mutation.SetWeightPerPallet(v)
	return _u
}

// SetNillableWeightPerPallet sets the "weight_per_pallet" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableWeightPerPallet(v *float64) *ProductUpdate {
	if v != nil {
		_u.SetWeightPerPallet(*v)
	}
	return _u
}

// AddWeightPerPallet adds value to the "weight_per_pallet" field.
func (_u *ProductUpdate) AddWeightPerPallet(v float64) *ProductUpdate {
	_u.mutation.AddWeightPerPallet(v)
	return _u
}

// ClearWeightPerPallet clears the value of the "weight_per_pallet" field.
func (_u *ProductUpdate) ClearWeightPerPallet() *ProductUpdate {
	_u.mutation.ClearWeightPerPallet()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProductUpdate) SetUpdatedAt(v time.Time) *ProductUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddVariantIDs adds the "variants" edge to the Variant entity by IDs.
func (_u *ProductUpdate) AddVariantIDs(ids ...string) *ProductUpdate {
	_u.mutation.AddVariantIDs(ids...)
	return _u
}

// AddVariants adds the "variants" edges to the Variant entity.
func (_u *ProductUpdate) AddVariants(v ...*Variant) *ProductUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVariantIDs(ids...)
}

// Mutation returns the ProductMutation object of the builder.
func (_u *ProductUpdate) Mutation() *ProductMutation {
	return _u.mutation
}

// ClearVariants clears all "variants" edges to the Variant entity.
func (_u *ProductUpdate) ClearVariants() *ProductUpdate {
	_u.mutation.ClearVariants()
	return _u
}

// RemoveVariantIDs removes the "variants" edge to Variant entities by IDs.
func (_u *ProductUpdate) RemoveVariantIDs(ids ...string) *ProductUpdate {
	_u.mutation.RemoveVariantIDs(ids...)
	return _u
}

// RemoveVariants removes "variants" edges to Variant entities.
func (_u *ProductUpdate) RemoveVariants(v ...*Variant) *ProductUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVariantIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProductUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProductUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := product.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := product.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Product.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ManufacturerID(); ok {
		if err := product.ManufacturerIDValidator(v); err != nil {
			return &ValidationError{Name: "manufacturer_id", err: fmt.Errorf(`ent: validator failed for field "Product.manufacturer_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProductUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(product.Table, product.Columns, sqlgraph.NewFieldSpec(product.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(product.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(product.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(product.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ManufacturerID(); ok {
		_spec.SetField(product.FieldManufacturerID, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(product.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(product.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.PricePerPallet(); ok {
		_spec.SetField(product.FieldPricePerPallet, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPricePerPallet(); ok {
		_spec.AddField(product.FieldPricePerPallet, field.TypeFloat64, value)
	}
	if _u.mutation.PricePerPalletCleared() {
		_spec.ClearField(product.FieldPricePerPallet, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SqftPerPallet(); ok {
		_spec.SetField(product.FieldSqftPerPallet, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSqftPerPallet(); ok {
		_spec.AddField(product.FieldSqftPerPallet, field.TypeFloat64, value)
	}
	if _u.mutation.SqftPerPalletCleared() {
		_spec.ClearField(product.FieldSqftPerPallet, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WeightPerPallet(); ok {
		_spec.SetField(product.FieldWeightPerPallet, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightPerPallet(); ok {
		_spec.AddField(product.FieldWeightPerPallet, field.TypeFloat64, value)
	}
	if _u.mutation.WeightPerPalletCleared() {
		_spec.ClearField(product.FieldWeightPerPallet, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(product.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.VariantsTable,
			Columns: []string{product.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(variant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVariantsIDs(); len(nodes) > 0 && !_u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.VariantsTable,
			Columns: []string{product.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(variant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.VariantsTable,
			Columns: []string{product.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(variant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{product.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProductUpdateOne is the builder for updating a single Product entity.
type ProductUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProductMutation
}

// SetName sets the "name" field.
func (_u *ProductUpdateOne) SetName(v string) *ProductUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableName(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProductUpdateOne) SetDescription(v string) *ProductUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableDescription(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ProductUpdateOne) ClearDescription() *ProductUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetManufacturerID sets the "manufacturer_id" field.
func (_u *ProductUpdateOne) SetManufacturerID(v product.ManufacturerID) *ProductUpdateOne {
	_u.mutation.SetManufacturerID(v)
	return _u
}

// SetNillableManufacturerID sets the "manufacturer_id" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableManufacturerID(v *product.ManufacturerID) *ProductUpdateOne {
	if v != nil {
		_u.SetManufacturerID(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ProductUpdateOne) SetPrompt(v string) *ProductUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillablePrompt(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *ProductUpdateOne) ClearPrompt() *ProductUpdateOne {
	_u.mutation.ClearPrompt()
	return _u
}

// SetPricePerPallet sets the "price_per_pallet" field.
func (_u *ProductUpdateOne) SetPricePerPallet(v float64) *ProductUpdateOne {
	_u.mutation.ResetPricePerPallet()
	_u.mutation.SetPricePerPallet(v)
	return _u
}

// SetNillablePricePerPallet sets the "price_per_pallet" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillablePricePerPallet(v *float64) *ProductUpdateOne {
	if v != nil {
		_u.SetPricePerPallet(*v)
	}
	return _u
}

// AddPricePerPallet adds value to the "price_per_pallet" field.
func (_u *ProductUpdateOne) AddPricePerPallet(v float64) *ProductUpdateOne {
	_u.mutation.AddPricePerPallet(v)
	return _u
}

// ClearPricePerPallet clears the value of the "price_per_pallet" field.
func (_u *ProductUpdateOne) ClearPricePerPallet() *ProductUpdateOne {
	_u.mutation.ClearPricePerPallet()
	return _u
}

// SetSqftPerPallet sets the "sqft_per_pallet" field.
func (_u *ProductUpdateOne) SetSqftPerPallet(v float64) *ProductUpdateOne {
	_u.mutation.ResetSqftPerPallet()
	_u.mutation.SetSqftPerPallet(v)
	return _u
}

// SetNillableSqftPerPallet sets the "sqft_per_pallet" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableSqftPerPallet(v *float64) *ProductUpdateOne {
	if v != nil {
		_u.SetSqftPerPallet(*v)
	}
	return _u
}

// AddSqftPerPallet adds value to the "sqft_per_pallet" field.
func (_u *ProductUpdateOne) AddSqftPerPallet(v float64) *ProductUpdateOne {
	_u.mutation.AddSqftPerPallet(v)
	return _u
}

// ClearSqftPerPallet clears the value of the "sqft_per_pallet" field.
func (_u *ProductUpdateOne) ClearSqftPerPallet() *ProductUpdateOne {
	_u.mutation.ClearSqftPerPallet()
	return _u
}

// SetWeightPerPallet sets the "weight_per_pallet" field.
func (_u *ProductUpdateOne) SetWeightPerPallet(v float64) *ProductUpdateOne {
	_u.mutation.ResetWeightPerPallet()
	_u.mutation.SetWeightPerPallet(v)
	return _u
}

// SetNillableWeightPerPallet sets the "weight_per_pallet" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableWeightPerPallet(v *float64) *ProductUpdateOne {
	if v != nil {
		_u.SetWeightPerPallet(*v)
	}
	return _u
}

// AddWeightPerPallet adds value to the "weight_per_pallet" field.
func (_u *ProductUpdateOne) AddWeightPerPallet(v float64) *ProductUpdateOne {
	_u.mutation.AddWeightPerPallet(v)
	return _u
}

// ClearWeightPerPallet clears the value of the "weight_per_pallet" field.
func (_u *ProductUpdateOne) ClearWeightPerPallet() *ProductUpdateOne {
	_u.mutation.ClearWeightPerPallet()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProductUpdateOne) SetUpdatedAt(v time.Time) *ProductUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddVariantIDs adds the "variants" edge to the Variant entity by IDs.
func (_u *ProductUpdateOne) AddVariantIDs(ids ...string) *ProductUpdateOne {
	_u.mutation.AddVariantIDs(ids...)
	return _u
}

// AddVariants adds the "variants" edges to the Variant entity.
func (_u *ProductUpdateOne) AddVariants(v ...*Variant) *ProductUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVariantIDs(ids...)
}

// Mutation returns the ProductMutation object of the builder.
func (_u *ProductUpdateOne) Mutation() *ProductMutation {
	return _u.mutation
}

// ClearVariants clears all "variants" edges to the Variant entity.
func (_u *ProductUpdateOne) ClearVariants() *ProductUpdateOne {
	_u.mutation.ClearVariants()
	return _u
}

// RemoveVariantIDs removes the "variants" edge to Variant entities by IDs.
func (_u *ProductUpdateOne) RemoveVariantIDs(ids ...string) *ProductUpdateOne {
	_u.mutation.RemoveVariantIDs(ids...)
	return _u
}

// RemoveVariants removes "variants" edges to Variant entities.
func (_u *ProductUpdateOne) RemoveVariants(v ...*Variant) *ProductUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVariantIDs(ids...)
}

// Where appends a list predicates to the ProductUpdate builder.
func (_u *ProductUpdateOne) Where(ps ...predicate.Product) *ProductUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProductUpdateOne) Select(field string, fields ...string) *ProductUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Product entity.
func (_u *ProductUpdateOne) Save(ctx context.Context) (*Product, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductUpdateOne) SaveX(ctx context.Context) *Product {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProductUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := product.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := product.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Product.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ManufacturerID(); ok {
		if err := product.ManufacturerIDValidator(v); err != nil {
			return &ValidationError{Name: "manufacturer_id", err: fmt.Errorf(`ent: validator failed for field "Product.manufacturer_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProductUpdateOne) sqlSave(ctx context.Context) (_node *Product, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(product.Table, product.Columns, sqlgraph.NewFieldSpec(product.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Product.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, product.FieldID)
		for _, f := range fields {
			if !product.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != product.FieldID {
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
		_spec.SetField(product.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(product.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(product.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ManufacturerID(); ok {
		_spec.SetField(product.FieldManufacturerID, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(product.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(product.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.PricePerPallet(); ok {
		_spec.SetField(product.FieldPricePerPallet, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPricePerPallet(); ok {
		_spec.AddField(product.FieldPricePerPallet, field.TypeFloat64, value)
	}
	if _u.mutation.PricePerPalletCleared() {
		_spec.ClearField(product.FieldPricePerPallet, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SqftPerPallet(); ok {
		_spec.SetField(product.FieldSqftPerPallet, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSqftPerPallet(); ok {
		_spec.AddField(product.FieldSqftPerPallet, field.TypeFloat64, value)
	}
	if _u.mutation.SqftPerPalletCleared() {
		_spec.ClearField(product.FieldSqftPerPallet, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WeightPerPallet(); ok {
		_spec.SetField(product.FieldWeightPerPallet, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightPerPallet(); ok {
		_spec.AddField(product.FieldWeightPerPallet, field.TypeFloat64, value)
	}
	if _u.mutation.WeightPerPalletCleared() {
		_spec.ClearField(product.FieldWeightPerPallet, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(product.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.VariantsTable,
			Columns: []string{product.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(variant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVariantsIDs(); len(nodes) > 0 && !_u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.VariantsTable,
			Columns: []string{product.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(variant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.VariantsTable,
			Columns: []string{product.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(variant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Product{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{product.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
