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
	"github.com/directpavers/paverquote/ent/pricingconfig"
)

// PricingConfigUpdate is the builder for updating PricingConfig entities.
type PricingConfigUpdate struct {
	config
	hooks    []Hook
	mutation *PricingConfigMutation
}

// Where appends a list predicates to the PricingConfigUpdate builder.
func (_u *PricingConfigUpdate) Where(ps ...predicate.PricingConfig) *PricingConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLaborRatePerSqft sets the "labor_rate_per_sqft" field.
func (_u *PricingConfigUpdate) SetLaborRatePerSqft(v float64) *PricingConfigUpdate {
	_u.mutation.ResetLaborRatePerSqft()
	_u.mutation.SetLaborRatePerSqft(v)
	return _u
}

// SetNillableLaborRatePerSqft sets the "labor_rate_per_sqft" field if the given value is not nil.
func (_u *PricingConfigUpdate) SetNillableLaborRatePerSqft(v *float64) *PricingConfigUpdate {
	if v != nil {
		_u.SetLaborRatePerSqft(*v)
	}
	return _u
}

// AddLaborRatePerSqft adds value to the "labor_rate_per_sqft" field.
func (_u *PricingConfigUpdate) AddLaborRatePerSqft(v float64) *PricingConfigUpdate {
	_u.mutation.AddLaborRatePerSqft(v)
	return _u
}

// SetWastePercentage sets the "waste_percentage" field.
func (_u *PricingConfigUpdate) SetWastePercentage(v float64) *PricingConfigUpdate {
	_u.mutation.ResetWastePercentage()
	_u.mutation.SetWastePercentage(v)
	return _u
}

// SetNillableWastePercentage sets the "waste_percentage" field if the given value is not nil.
func (_u *PricingConfigUpdate) SetNillableWastePercentage(v *float64) *PricingConfigUpdate {
	if v != nil {
		_u.SetWastePercentage(*v)
	}
	return _u
}

// AddWastePercentage adds value to the "waste_percentage" field.
func (_u *PricingConfigUpdate) AddWastePercentage(v float64) *PricingConfigUpdate {
	_u.mutation.AddWastePercentage(v)
	return _u
}

// SetOwnerPhone sets the "owner_phone" field.
func (_u *PricingConfigUpdate) SetOwnerPhone(v string) *PricingConfigUpdate {
	_u.mutation.SetOwnerPhone(v)
	return _u
}

// SetNillableOwnerPhone sets the "owner_phone" field if the given value is not nil.
func (_u *PricingConfigUpdate) SetNillableOwnerPhone(v *string) *PricingConfigUpdate {
	if v != nil {
		_u.SetOwnerPhone(*v)
	}
	return _u
}

// SetOwnerWhatsapp sets the "owner_whatsapp" field.
func (_u *PricingConfigUpdate) SetOwnerWhatsapp(v string) *PricingConfigUpdate {
	_u.mutation.SetOwnerWhatsapp(v)
	return _u
}

// SetNillableOwnerWhatsapp sets the "owner_whatsapp" field if the given value is not nil.
func (_u *PricingConfigUpdate) SetNillableOwnerWhatsapp(v *string) *PricingConfigUpdate {
	if v != nil {
		_u.SetOwnerWhatsapp(*v)
	}
	return _u
}

// SetRequireLeadCapture sets the "require_lead_capture" field.
func (_u *PricingConfigUpdate) SetRequireLeadCapture(v bool) *PricingConfigUpdate {
	_u.mutation.SetRequireLeadCapture(v)
	return _u
}

// SetNillableRequireLeadCapture sets the "require_lead_capture" field if the given value is not nil.
func (_u *PricingConfigUpdate) SetNillableRequireLeadCapture(v *bool) *PricingConfigUpdate {
	if v != nil {
		_u.SetRequireLeadCapture(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PricingConfigUpdate) SetUpdatedAt(v time.Time) *PricingConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PricingConfigMutation object of the builder.
func (_u *PricingConfigUpdate) Mutation() *PricingConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PricingConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PricingConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PricingConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PricingConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PricingConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pricingconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PricingConfigUpdate) check() error {
	if v, ok := _u.mutation.LaborRatePerSqft(); ok {
		if err := pricingconfig.LaborRatePerSqftValidator(v); err != nil {
			return &ValidationError{Name: "labor_rate_per_sqft", err: fmt.Errorf(`ent: validator failed for field "PricingConfig.labor_rate_per_sqft": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WastePercentage(); ok {
		if err := pricingconfig.WastePercentageValidator(v); err != nil {
			return &ValidationError{Name: "waste_percentage", err: fmt.Errorf(`ent: validator failed for field "PricingConfig.waste_percentage": %w`, err)}
		}
	}
	return nil
}

func (_u *PricingConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pricingconfig.Table, pricingconfig.Columns, sqlgraph.NewFieldSpec(pricingconfig.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LaborRatePerSqft(); ok {
		_spec.SetField(pricingconfig.FieldLaborRatePerSqft, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLaborRatePerSqft(); ok {
		_spec.AddField(pricingconfig.FieldLaborRatePerSqft, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WastePercentage(); ok {
		_spec.SetField(pricingconfig.FieldWastePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWastePercentage(); ok {
		_spec.AddField(pricingconfig.FieldWastePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OwnerPhone(); ok {
		_spec.SetField(pricingconfig.FieldOwnerPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerWhatsapp(); ok {
		_spec.SetField(pricingconfig.FieldOwnerWhatsapp, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequireLeadCapture(); ok {
		_spec.SetField(pricingconfig.FieldRequireLeadCapture, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pricingconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pricingconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PricingConfigUpdateOne is the builder for updating a single PricingConfig entity.
type PricingConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PricingConfigMutation
}

// SetLaborRatePerSqft sets the "labor_rate_per_sqft" field.
func (_u *PricingConfigUpdateOne) SetLaborRatePerSqft(v float64) *PricingConfigUpdateOne {
	_u.mutation.ResetLaborRatePerSqft()
	_u.mutation.SetLaborRatePerSqft(v)
	return _u
}

// SetNillableLaborRatePerSqft sets the "labor_rate_per_sqft" field if the given value is not nil.
func (_u *PricingConfigUpdateOne) SetNillableLaborRatePerSqft(v *float64) *PricingConfigUpdateOne {
	if v != nil {
		_u.SetLaborRatePerSqft(*v)
	}
	return _u
}

// AddLaborRatePerSqft adds value to the "labor_rate_per_sqft" field.
func (_u *PricingConfigUpdateOne) AddLaborRatePerSqft(v float64) *PricingConfigUpdateOne {
	_u.mutation.AddLaborRatePerSqft(v)
	return _u
}

// SetWastePercentage sets the "waste_percentage" field.
func (_u *PricingConfigUpdateOne) SetWastePercentage(v float64) *PricingConfigUpdateOne {
	_u.mutation.ResetWastePercentage()
	_u.mutation.SetWastePercentage(v)
	return _u
}

// SetNillableWastePercentage sets the "waste_percentage" field if the given value is not nil.
func (_u *PricingConfigUpdateOne) SetNillableWastePercentage(v *float64) *PricingConfigUpdateOne {
	if v != nil {
		_u.SetWastePercentage(*v)
	}
	return _u
}

// AddWastePercentage adds value to the "waste_percentage" field.
func (_u *PricingConfigUpdateOne) AddWastePercentage(v float64) *PricingConfigUpdateOne {
	_u.mutation.AddWastePercentage(v)
	return _u
}

// SetOwnerPhone sets the "owner_phone" field.
func (_u *PricingConfigUpdateOne) SetOwnerPhone(v string) *PricingConfigUpdateOne {
	_u.mutation.SetOwnerPhone(v)
	return _u
}

// SetNillableOwnerPhone sets the "owner_phone" field if the given value is not nil.
func (_u *PricingConfigUpdateOne) SetNillableOwnerPhone(v *string) *PricingConfigUpdateOne {
	if v != nil {
		_u.SetOwnerPhone(*v)
	}
	return _u
}

// SetOwnerWhatsapp sets the "owner_whatsapp" field.
func (_u *PricingConfigUpdateOne) SetOwnerWhatsapp(v string) *PricingConfigUpdateOne {
	_u.mutation.SetOwnerWhatsapp(v)
	return _u
}

// SetNillableOwnerWhatsapp sets the "owner_whatsapp" field if the given value is not nil.
func (_u *PricingConfigUpdateOne) SetNillableOwnerWhatsapp(v *string) *PricingConfigUpdateOne {
	if v != nil {
		_u.SetOwnerWhatsapp(*v)
	}
	return _u
}

// SetRequireLeadCapture sets the "require_lead_capture" field.
func (_u *PricingConfigUpdateOne) SetRequireLeadCapture(v bool) *PricingConfigUpdateOne {
	_u.mutation.SetRequireLeadCapture(v)
	return _u
}

// SetNillableRequireLeadCapture sets the "require_lead_capture" field if the given value is not nil.
func (_u *PricingConfigUpdateOne) SetNillableRequireLeadCapture(v *bool) *PricingConfigUpdateOne {
	if v != nil {
		_u.SetRequireLeadCapture(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PricingConfigUpdateOne) SetUpdatedAt(v time.Time) *PricingConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PricingConfigMutation object of the builder.
func (_u *PricingConfigUpdateOne) Mutation() *PricingConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the PricingConfigUpdate builder.
func (_u *PricingConfigUpdateOne) Where(ps ...predicate.PricingConfig) *PricingConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PricingConfigUpdateOne) Select(field string, fields ...string) *PricingConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PricingConfig entity.
func (_u *PricingConfigUpdateOne) Save(ctx context.Context) (*PricingConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PricingConfigUpdateOne) SaveX(ctx context.Context) *PricingConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PricingConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PricingConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PricingConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pricingconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PricingConfigUpdateOne) check() error {
	if v, ok := _u.mutation.LaborRatePerSqft(); ok {
		if err := pricingconfig.LaborRatePerSqftValidator(v); err != nil {
			return &ValidationError{Name: "labor_rate_per_sqft", err: fmt.Errorf(`ent: validator failed for field "PricingConfig.labor_rate_per_sqft": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WastePercentage(); ok {
		if err := pricingconfig.WastePercentageValidator(v); err != nil {
			return &ValidationError{Name: "waste_percentage", err: fmt.Errorf(`ent: validator failed for field "PricingConfig.waste_percentage": %w`, err)}
		}
	}
	return nil
}

func (_u *PricingConfigUpdateOne) sqlSave(ctx context.Context) (_node *PricingConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pricingconfig.Table, pricingconfig.Columns, sqlgraph.NewFieldSpec(pricingconfig.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PricingConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pricingconfig.FieldID)
		for _, f := range fields {
			if !pricingconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pricingconfig.FieldID {
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
	if value, ok := _u.mutation.LaborRatePerSqft(); ok {
		_spec.SetField(pricingconfig.FieldLaborRatePerSqft, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLaborRatePerSqft(); ok {
		_spec.AddField(pricingconfig.FieldLaborRatePerSqft, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WastePercentage(); ok {
		_spec.SetField(pricingconfig.FieldWastePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWastePercentage(); ok {
		_spec.AddField(pricingconfig.FieldWastePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OwnerPhone(); ok {
		_spec.SetField(pricingconfig.FieldOwnerPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerWhatsapp(); ok {
		_spec.SetField(pricingconfig.FieldOwnerWhatsapp, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequireLeadCapture(); ok {
		_spec.SetField(pricingconfig.FieldRequireLeadCapture, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pricingconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PricingConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pricingconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
