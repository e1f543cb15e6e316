// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/directpavers/paverquote/ent/analyticsevent"
	"github.com/directpavers/paverquote/ent/predicate"
)

// AnalyticsEventDelete is the builder for deleting a AnalyticsEvent entity.
type AnalyticsEventDelete struct {
	config
	hooks    []Hook
	mutation *AnalyticsEventMutation
}

// Where appends a list predicates to the AnalyticsEventDelete builder.
func (_d *AnalyticsEventDelete) Where(ps ...predicate.AnalyticsEvent) *AnalyticsEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnalyticsEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalyticsEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnalyticsEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(analyticsevent.Table, sqlgraph.NewFieldSpec(analyticsevent.FieldID, field.TypeInt))
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

// AnalyticsEventDeleteOne is the builder for deleting a single AnalyticsEvent entity.
type AnalyticsEventDeleteOne struct {
	_d *AnalyticsEventDelete
}

// Where appends a list predicates to the AnalyticsEventDelete builder.
func (_d *AnalyticsEventDeleteOne) Where(ps ...predicate.AnalyticsEvent) *AnalyticsEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnalyticsEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{analyticsevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalyticsEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
