// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/directpavers/paverquote/ent/pricingconfig"
)

// PricingConfigCreate is the builder for creating a PricingConfig entity.
type PricingConfigCreate struct {
	config
	mutation *PricingConfigMutation
	hooks    []Hook
}

// SetLaborRatePerSqft sets the "labor_rate_per_sqft" field.
func (_c *PricingConfigCreate) SetLaborRatePerSqft(v float64) *PricingConfigCreate {
	_c.mutation.SetLaborRatePerSqft(v)
	return _c
}

// SetNillableLaborRatePerSqft sets the "labor_rate_per_sqft" field if the given value is not nil.
func (_c *PricingConfigCreate) SetNillableLaborRatePerSqft(v *float64) *PricingConfigCreate {
	if v != nil {
		_c.SetLaborRatePerSqft(*v)
	}
	return _c
}

// SetWastePercentage sets the "waste_percentage" field.
func (_c *PricingConfigCreate) SetWastePercentage(v float64) *PricingConfigCreate {
	_c.mutation.SetWastePercentage(v)
	return _c
}

// SetNillableWastePercentage sets the "waste_percentage" field if the given value is not nil.
func (_c *PricingConfigCreate) SetNillableWastePercentage(v *float64) *PricingConfigCreate {
	if v != nil {
		_c.SetWastePercentage(*v)
	}
	return _c
}

// SetOwnerPhone sets the "owner_phone" field.
func (_c *PricingConfigCreate) SetOwnerPhone(v string) *PricingConfigCreate {
	_c.mutation.SetOwnerPhone(v)
	return _c
}

// SetNillableOwnerPhone sets the "owner_phone" field if the given value is not nil.
func (_c *PricingConfigCreate) SetNillableOwnerPhone(v *string) *PricingConfigCreate {
	if v != nil {
		_c.SetOwnerPhone(*v)
	}
	return _c
}

// SetOwnerWhatsapp sets the "owner_whatsapp" field.
func (_c *PricingConfigCreate) SetOwnerWhatsapp(v string) *PricingConfigCreate {
	_c.mutation.SetOwnerWhatsapp(v)
	return _c
}

// SetNillableOwnerWhatsapp sets the "owner_whatsapp" field if the given value is not nil.
func (_c *PricingConfigCreate) SetNillableOwnerWhatsapp(v *string) *PricingConfigCreate {
	if v != nil {
		_c.SetOwnerWhatsapp(*v)
	}
	return _c
}

// SetRequireLeadCapture sets the "require_lead_capture" field.
func (_c *PricingConfigCreate) SetRequireLeadCapture(v bool) *PricingConfigCreate {
	_c.mutation.SetRequireLeadCapture(v)
	return _c
}

// SetNillableRequireLeadCapture sets the "require_lead_capture" field if the given value is not nil.
func (_c *PricingConfigCreate) SetNillableRequireLeadCapture(v *bool) *PricingConfigCreate {
	if v != nil {
		_c.SetRequireLeadCapture(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PricingConfigCreate) SetUpdatedAt(v time.Time) *PricingConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PricingConfigCreate) SetNillableUpdatedAt(v *time.Time) *PricingConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PricingConfigMutation object of the builder.
func (_c *PricingConfigCreate) Mutation() *PricingConfigMutation {
	return _c.mutation
}

// Save creates the PricingConfig in the database.
func (_c *PricingConfigCreate) Save(ctx context.Context) (*PricingConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PricingConfigCreate) SaveX(ctx context.Context) *PricingConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PricingConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PricingConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PricingConfigCreate) defaults() {
	if _, ok := _c.mutation.LaborRatePerSqft(); !ok {
		v := pricingconfig.DefaultLaborRatePerSqft
		_c.mutation.SetLaborRatePerSqft(v)
	}
	if _, ok := _c.mutation.WastePercentage(); !ok {
		v := pricingconfig.DefaultWastePercentage
		_c.mutation.SetWastePercentage(v)
	}
	if _, ok := _c.mutation.OwnerPhone(); !ok {
		v := pricingconfig.DefaultOwnerPhone
		_c.mutation.SetOwnerPhone(v)
	}
	if _, ok := _c.mutation.OwnerWhatsapp(); !ok {
		v := pricingconfig.DefaultOwnerWhatsapp
		_c.mutation.SetOwnerWhatsapp(v)
	}
	if _, ok := _c.mutation.RequireLeadCapture(); !ok {
		v := pricingconfig.DefaultRequireLeadCapture
		_c.mutation.SetRequireLeadCapture(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pricingconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PricingConfigCreate) check() error {
	if _, ok := _c.mutation.LaborRatePerSqft(); !ok {
		return &ValidationError{Name: "labor_rate_per_sqft", err: errors.New(`ent: missing required field "PricingConfig.labor_rate_per_sqft"`)}
	}
	if v, ok := _c.mutation.LaborRatePerSqft(); ok {
		if err := pricingconfig.LaborRatePerSqftValidator(v); err != nil {
			return &ValidationError{Name: "labor_rate_per_sqft", err: fmt.Errorf(`ent: validator failed for field "PricingConfig.labor_rate_per_sqft": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WastePercentage(); !ok {
		return &ValidationError{Name: "waste_percentage", err: errors.New(`ent: missing required field "PricingConfig.waste_percentage"`)}
	}
	if v, ok := _c.mutation.WastePercentage(); ok {
		if err := pricingconfig.WastePercentageValidator(v); err != nil {
			return &ValidationError{Name: "waste_percentage", err: fmt.Errorf(`ent: validator failed for field "PricingConfig.waste_percentage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OwnerPhone(); !ok {
		return &ValidationError{Name: "owner_phone", err: errors.New(`ent: missing required field "PricingConfig.owner_phone"`)}
	}
	if _, ok := _c.mutation.OwnerWhatsapp(); !ok {
		return &ValidationError{Name: "owner_whatsapp", err: errors.New(`ent: missing required field "PricingConfig.owner_whatsapp"`)}
	}
	if _, ok := _c.mutation.RequireLeadCapture(); !ok {
		return &ValidationError{Name: "require_lead_capture", err: errors.New(`ent: missing required field "PricingConfig.require_lead_capture"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PricingConfig.updated_at"`)}
	}
	return nil
}

func (_c *PricingConfigCreate) sqlSave(ctx context.Context) (*PricingConfig, error) {
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

func (_c *PricingConfigCreate) createSpec() (*PricingConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &PricingConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pricingconfig.Table, sqlgraph.NewFieldSpec(pricingconfig.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LaborRatePerSqft(); ok {
		_spec.SetField(pricingconfig.FieldLaborRatePerSqft, field.TypeFloat64, value)
		_node.LaborRatePerSqft = value
	}
	if value, ok := _c.mutation.WastePercentage(); ok {
		_spec.SetField(pricingconfig.FieldWastePercentage, field.TypeFloat64, value)
		_node.WastePercentage = value
	}
	if value, ok := _c.mutation.OwnerPhone(); ok {
		_spec.SetField(pricingconfig.FieldOwnerPhone, field.TypeString, value)
		_node.OwnerPhone = value
	}
	if value, ok := _c.mutation.OwnerWhatsapp(); ok {
		_spec.SetField(pricingconfig.FieldOwnerWhatsapp, field.TypeString, value)
		_node.OwnerWhatsapp = value
	}
	if value, ok := _c.mutation.RequireLeadCapture(); ok {
		_spec.SetField(pricingconfig.FieldRequireLeadCapture, field.TypeBool, value)
		_node.RequireLeadCapture = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pricingconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PricingConfigCreateBulk is the builder for creating many PricingConfig entities in bulk.
type PricingConfigCreateBulk struct {
	config
	err      error
	builders []*PricingConfigCreate
}

// Save creates the PricingConfig entities in the database.
func (_c *PricingConfigCreateBulk) Save(ctx context.Context) ([]*PricingConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PricingConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PricingConfigMutation)
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
func (_c *PricingConfigCreateBulk) SaveX(ctx context.Context) []*PricingConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PricingConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PricingConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
