// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/directpavers/paverquote/ent/analyticsevent"
)

// AnalyticsEventCreate is the builder for creating a AnalyticsEvent entity.
type AnalyticsEventCreate struct {
	config
	mutation *AnalyticsEventMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AnalyticsEventCreate) SetSessionID(v string) *AnalyticsEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *AnalyticsEventCreate) SetEventType(v string) *AnalyticsEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetEventData sets the "event_data" field.
func (_c *AnalyticsEventCreate) SetEventData(v map[string]interface{}) *AnalyticsEventCreate {
	_c.mutation.SetEventData(v)
	return _c
}

// SetStep sets the "step" field.
func (_c *AnalyticsEventCreate) SetStep(v string) *AnalyticsEventCreate {
	_c.mutation.SetStep(v)
	return _c
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_c *AnalyticsEventCreate) SetNillableStep(v *string) *AnalyticsEventCreate {
	if v != nil {
		_c.SetStep(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalyticsEventCreate) SetCreatedAt(v time.Time) *AnalyticsEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalyticsEventCreate) SetNillableCreatedAt(v *time.Time) *AnalyticsEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the AnalyticsEventMutation object of the builder.
func (_c *AnalyticsEventCreate) Mutation() *AnalyticsEventMutation {
	return _c.mutation
}

// Save creates the AnalyticsEvent in the database.
func (_c *AnalyticsEventCreate) Save(ctx context.Context) (*AnalyticsEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalyticsEventCreate) SaveX(ctx context.Context) *AnalyticsEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalyticsEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalyticsEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalyticsEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analyticsevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalyticsEventCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnalyticsEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := analyticsevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnalyticsEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "AnalyticsEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := analyticsevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "AnalyticsEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalyticsEvent.created_at"`)}
	}
	return nil
}

func (_c *AnalyticsEventCreate) sqlSave(ctx context.Context) (*AnalyticsEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalyticsEventCreate) createSpec() (*AnalyticsEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalyticsEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analyticsevent.Table, sqlgraph.NewFieldSpec(analyticsevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(analyticsevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(analyticsevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.EventData(); ok {
		_spec.SetField(analyticsevent.FieldEventData, field.TypeJSON, value)
		_node.EventData = value
	}
	if value, ok := _c.mutation.Step(); ok {
		_spec.SetField(analyticsevent.FieldStep, field.TypeString, value)
		_node.Step = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analyticsevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AnalyticsEventCreateBulk is the builder for creating many AnalyticsEvent entities in bulk.
type AnalyticsEventCreateBulk struct {
	config
	err      error
	builders []*AnalyticsEventCreate
}

// Save creates the AnalyticsEvent entities in the database.
func (_c *AnalyticsEventCreateBulk) Save(ctx context.Context) ([]*AnalyticsEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalyticsEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalyticsEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *AnalyticsEventCreateBulk) SaveX(ctx context.Context) []*AnalyticsEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalyticsEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalyticsEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
