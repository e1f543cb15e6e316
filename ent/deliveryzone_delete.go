// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/directpavers/paverquote/ent/deliveryzone"
	"github.com/directpavers/paverquote/ent/predicate"
)

// DeliveryZoneDelete is the builder for deleting a DeliveryZone entity.
type DeliveryZoneDelete struct {
	config
	hooks    []Hook
	mutation *DeliveryZoneMutation
}

// Where appends a list predicates to the DeliveryZoneDelete builder.
func (_d *DeliveryZoneDelete) Where(ps ...predicate.DeliveryZone) *DeliveryZoneDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DeliveryZoneDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeliveryZoneDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DeliveryZoneDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(deliveryzone.Table, sqlgraph.NewFieldSpec(deliveryzone.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DeliveryZoneDeleteOne is the builder for deleting a single DeliveryZone entity.
type DeliveryZoneDeleteOne struct {
	_d *DeliveryZoneDelete
}

// Where appends a list predicates to the DeliveryZoneDelete builder.
func (_d *DeliveryZoneDeleteOne) Where(ps ...predicate.DeliveryZone) *DeliveryZoneDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DeliveryZoneDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{deliveryzone.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeliveryZoneDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
