// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/directpavers/paverquote/ent/deliveryzone"
	"github.com/directpavers/paverquote/ent/predicate"
)

// DeliveryZoneUpdate is the builder for updating DeliveryZone entities.
type DeliveryZoneUpdate struct {
	config
	hooks    []Hook
	mutation *DeliveryZoneMutation
}

// Where appends a list predicates to the DeliveryZoneUpdate builder.
func (_u *DeliveryZoneUpdate) Where(ps ...predicate.DeliveryZone) *DeliveryZoneUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *DeliveryZoneUpdate) SetName(v string) *DeliveryZoneUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DeliveryZoneUpdate) SetNillableName(v *string) *DeliveryZoneUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *DeliveryZoneUpdate) SetLabel(v string) *DeliveryZoneUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *DeliveryZoneUpdate) SetNillableLabel(v *string) *DeliveryZoneUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetFee sets the "fee" field.
func (_u *DeliveryZoneUpdate) SetFee(v float64) *DeliveryZoneUpdate {
	_u.mutation.ResetFee()
	_u.mutation.SetFee(v)
	return _u
}

// SetNillableFee sets the "fee" field if the given value is not nil.
func (_u *DeliveryZoneUpdate) SetNillableFee(v *float64) *DeliveryZoneUpdate {
	if v != nil {
		_u.SetFee(*v)
	}
	return _u
}

// AddFee adds value to the "fee" field.
func (_u *DeliveryZoneUpdate) AddFee(v float64) *DeliveryZoneUpdate {
	_u.mutation.AddFee(v)
	return _u
}

// SetRadiusDescription sets the "radius_description" field.
func (_u *DeliveryZoneUpdate) SetRadiusDescription(v string) *DeliveryZoneUpdate {
	_u.mutation.SetRadiusDescription(v)
	return _u
}

// SetNillableRadiusDescription sets the "radius_description" field if the given value is not nil.
func (_u *DeliveryZoneUpdate) SetNillableRadiusDescription(v *string) *DeliveryZoneUpdate {
	if v != nil {
		_u.SetRadiusDescription(*v)
	}
	return _u
}

// ClearRadiusDescription clears the value of the "radius_description" field.
func (_u *DeliveryZoneUpdate) ClearRadiusDescription() *DeliveryZoneUpdate {
	_u.mutation.ClearRadiusDescription()
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *DeliveryZoneUpdate) SetSortOrder(v int) *DeliveryZoneUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *DeliveryZoneUpdate) SetNillableSortOrder(v *int) *DeliveryZoneUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *DeliveryZoneUpdate) AddSortOrder(v int) *DeliveryZoneUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *DeliveryZoneUpdate) SetActive(v bool) *DeliveryZoneUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *DeliveryZoneUpdate) SetNillableActive(v *bool) *DeliveryZoneUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the DeliveryZoneMutation object of the builder.
func (_u *DeliveryZoneUpdate) Mutation() *DeliveryZoneMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeliveryZoneUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliveryZoneUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeliveryZoneUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliveryZoneUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeliveryZoneUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := deliveryzone.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DeliveryZone.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := deliveryzone.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "DeliveryZone.label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fee(); ok {
		if err := deliveryzone.FeeValidator(v); err != nil {
			return &ValidationError{Name: "fee", err: fmt.Errorf(`ent: validator failed for field "DeliveryZone.fee": %w`, err)}
		}
	}
	return nil
}

func (_u *DeliveryZoneUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliveryzone.Table, deliveryzone.Columns, sqlgraph.NewFieldSpec(deliveryzone.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(deliveryzone.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(deliveryzone.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fee(); ok {
		_spec.SetField(deliveryzone.FieldFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFee(); ok {
		_spec.AddField(deliveryzone.FieldFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RadiusDescription(); ok {
		_spec.SetField(deliveryzone.FieldRadiusDescription, field.TypeString, value)
	}
	if _u.mutation.RadiusDescriptionCleared() {
		_spec.ClearField(deliveryzone.FieldRadiusDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(deliveryzone.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(deliveryzone.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(deliveryzone.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliveryzone.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeliveryZoneUpdateOne is the builder for updating a single DeliveryZone entity.
type DeliveryZoneUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeliveryZoneMutation
}

// SetName sets the "name" field.
func (_u *DeliveryZoneUpdateOne) SetName(v string) *DeliveryZoneUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DeliveryZoneUpdateOne) SetNillableName(v *string) *DeliveryZoneUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *DeliveryZoneUpdateOne) SetLabel(v string) *DeliveryZoneUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *DeliveryZoneUpdateOne) SetNillableLabel(v *string) *DeliveryZoneUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetFee sets the "fee" field.
func (_u *DeliveryZoneUpdateOne) SetFee(v float64) *DeliveryZoneUpdateOne {
	_u.mutation.ResetFee()
	_u.mutation.SetFee(v)
	return _u
}

// SetNillableFee sets the "fee" field if the given value is not nil.
func (_u *DeliveryZoneUpdateOne) SetNillableFee(v *float64) *DeliveryZoneUpdateOne {
	if v != nil {
		_u.SetFee(*v)
	}
	return _u
}

// AddFee adds value to the "fee" field.
func (_u *DeliveryZoneUpdateOne) AddFee(v float64) *DeliveryZoneUpdateOne {
	_u.mutation.AddFee(v)
	return _u
}

// SetRadiusDescription sets the "radius_description" field.
func (_u *DeliveryZoneUpdateOne) SetRadiusDescription(v string) *DeliveryZoneUpdateOne {
	_u.mutation.SetRadiusDescription(v)
	return _u
}

// SetNillableRadiusDescription sets the "radius_description" field if the given value is not nil.
func (_u *DeliveryZoneUpdateOne) SetNillableRadiusDescription(v *string) *DeliveryZoneUpdateOne {
	if v != nil {
		_u.SetRadiusDescription(*v)
	}
	return _u
}

// ClearRadiusDescription clears the value of the "radius_description" field.
func (_u *DeliveryZoneUpdateOne) ClearRadiusDescription() *DeliveryZoneUpdateOne {
	_u.mutation.ClearRadiusDescription()
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *DeliveryZoneUpdateOne) SetSortOrder(v int) *DeliveryZoneUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *DeliveryZoneUpdateOne) SetNillableSortOrder(v *int) *DeliveryZoneUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *DeliveryZoneUpdateOne) AddSortOrder(v int) *DeliveryZoneUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *DeliveryZoneUpdateOne) SetActive(v bool) *DeliveryZoneUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *DeliveryZoneUpdateOne) SetNillableActive(v *bool) *DeliveryZoneUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the DeliveryZoneMutation object of the builder.
func (_u *DeliveryZoneUpdateOne) Mutation() *DeliveryZoneMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeliveryZoneUpdate builder.
func (_u *DeliveryZoneUpdateOne) Where(ps ...predicate.DeliveryZone) *DeliveryZoneUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeliveryZoneUpdateOne) Select(field string, fields ...string) *DeliveryZoneUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeliveryZone entity.
func (_u *DeliveryZoneUpdateOne) Save(ctx context.Context) (*DeliveryZone, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliveryZoneUpdateOne) SaveX(ctx context.Context) *DeliveryZone {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeliveryZoneUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliveryZoneUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeliveryZoneUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := deliveryzone.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DeliveryZone.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := deliveryzone.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "DeliveryZone.label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Fee(); ok {
		if err := deliveryzone.FeeValidator(v); err != nil {
			return &ValidationError{Name: "fee", err: fmt.Errorf(`ent: validator failed for field "DeliveryZone.fee": %w`, err)}
		}
	}
	return nil
}

func (_u *DeliveryZoneUpdateOne) sqlSave(ctx context.Context) (_node *DeliveryZone, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliveryzone.Table, deliveryzone.Columns, sqlgraph.NewFieldSpec(deliveryzone.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeliveryZone.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deliveryzone.FieldID)
		for _, f := range fields {
			if !deliveryzone.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deliveryzone.FieldID {
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
		_spec.SetField(deliveryzone.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(deliveryzone.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fee(); ok {
		_spec.SetField(deliveryzone.FieldFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFee(); ok {
		_spec.AddField(deliveryzone.FieldFee, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RadiusDescription(); ok {
		_spec.SetField(deliveryzone.FieldRadiusDescription, field.TypeString, value)
	}
	if _u.mutation.RadiusDescriptionCleared() {
		_spec.ClearField(deliveryzone.FieldRadiusDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(deliveryzone.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(deliveryzone.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(deliveryzone.FieldActive, field.TypeBool, value)
	}
	_node = &DeliveryZone{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliveryzone.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
