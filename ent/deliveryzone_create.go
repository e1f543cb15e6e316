// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/directpavers/paverquote/ent/deliveryzone"
)

// DeliveryZoneCreate is the builder for creating a DeliveryZone entity.
type DeliveryZoneCreate struct {
	config
	mutation *DeliveryZoneMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *DeliveryZoneCreate) SetName(v string) *DeliveryZoneCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *DeliveryZoneCreate) SetLabel(v string) *DeliveryZoneCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetFee sets the "fee" field.
func (_c *DeliveryZoneCreate) SetFee(v float64) *DeliveryZoneCreate {
	_c.mutation.SetFee(v)
	return _c
}

// SetRadiusDescription sets the "radius_description" field.
func (_c *DeliveryZoneCreate) SetRadiusDescription(v string) *DeliveryZoneCreate {
	_c.mutation.SetRadiusDescription(v)
	return _c
}

// SetNillableRadiusDescription sets the "radius_description" field if the given value is not nil.
func (_c *DeliveryZoneCreate) SetNillableRadiusDescription(v *string) *DeliveryZoneCreate {
	if v != nil {
		_c.SetRadiusDescription(*v)
	}
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *DeliveryZoneCreate) SetSortOrder(v int) *DeliveryZoneCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *DeliveryZoneCreate) SetNillableSortOrder(v *int) *DeliveryZoneCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *DeliveryZoneCreate) SetActive(v bool) *DeliveryZoneCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *DeliveryZoneCreate) SetNillableActive(v *bool) *DeliveryZoneCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeliveryZoneCreate) SetID(v string) *DeliveryZoneCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DeliveryZoneMutation object of the builder.
func (_c *DeliveryZoneCreate) Mutation() *DeliveryZoneMutation {
	return _c.mutation
}

// Save creates the DeliveryZone in the database.
func (_c *DeliveryZoneCreate) Save(ctx context.Context) (*DeliveryZone, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeliveryZoneCreate) SaveX(ctx context.Context) *DeliveryZone {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliveryZoneCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliveryZoneCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeliveryZoneCreate) defaults() {
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := deliveryzone.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := deliveryzone.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeliveryZoneCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DeliveryZone.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := deliveryzone.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DeliveryZone.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "DeliveryZone.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := deliveryzone.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "DeliveryZone.label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fee(); !ok {
		return &ValidationError{Name: "fee", err: errors.New(`ent: missing required field "DeliveryZone.fee"`)}
	}
	if v, ok := _c.mutation.Fee(); ok {
		if err := deliveryzone.FeeValidator(v); err != nil {
			return &ValidationError{Name: "fee", err: fmt.Errorf(`ent: validator failed for field "DeliveryZone.fee": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "DeliveryZone.sort_order"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "DeliveryZone.active"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := deliveryzone.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "DeliveryZone.id": %w`, err)}
		}
	}
	return nil
}

func (_c *DeliveryZoneCreate) sqlSave(ctx context.Context) (*DeliveryZone, error) {
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
			return nil, fmt.Errorf("unexpected DeliveryZone.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeliveryZoneCreate) createSpec() (*DeliveryZone, *sqlgraph.CreateSpec) {
	var (
		_node = &DeliveryZone{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deliveryzone.Table, sqlgraph.NewFieldSpec(deliveryzone.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(deliveryzone.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(deliveryzone.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Fee(); ok {
		_spec.SetField(deliveryzone.FieldFee, field.TypeFloat64, value)
		_node.Fee = value
	}
	if value, ok := _c.mutation.RadiusDescription(); ok {
		_spec.SetField(deliveryzone.FieldRadiusDescription, field.TypeString, value)
		_node.RadiusDescription = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(deliveryzone.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(deliveryzone.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// DeliveryZoneCreateBulk is the builder for creating many DeliveryZone entities in bulk.
type DeliveryZoneCreateBulk struct {
	config
	err      error
	builders []*DeliveryZoneCreate
}

// Save creates the DeliveryZone entities in the database.
func (_c *DeliveryZoneCreateBulk) Save(ctx context.Context) ([]*DeliveryZone, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeliveryZone, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeliveryZoneMutation)
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
func (_c *DeliveryZoneCreateBulk) SaveX(ctx context.Context) []*DeliveryZone {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliveryZoneCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliveryZoneCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
