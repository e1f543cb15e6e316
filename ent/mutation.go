// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/directpavers/paverquote/ent/activitylog"
	"github.com/directpavers/paverquote/ent/analyticsevent"
	"github.com/directpavers/paverquote/ent/deliveryzone"
	"github.com/directpavers/paverquote/ent/lead"
	"github.com/directpavers/paverquote/ent/predicate"
	"github.com/directpavers/paverquote/ent/pricingconfig"
	"github.com/directpavers/paverquote/ent/product"
	"github.com/directpavers/paverquote/ent/variant"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActivityLog    = "ActivityLog"
	TypeAnalyticsEvent = "AnalyticsEvent"
	TypeDeliveryZone   = "DeliveryZone"
	TypeLead           = "Lead"
	TypePricingConfig  = "PricingConfig"
	TypeProduct        = "Product"
	TypeVariant        = "Variant"
)

// ActivityLogMutation represents an operation that mutates the ActivityLog nodes in the graph.
type ActivityLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	action        *string
	status        *activitylog.Status
	details       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ActivityLog, error)
	predicates    []predicate.ActivityLog
}

var _ ent.Mutation = (*ActivityLogMutation)(nil)

// activitylogOption allows management of the mutation configuration using functional options.
type activitylogOption func(*ActivityLogMutation)

// newActivityLogMutation creates new mutation for the ActivityLog entity.
func newActivityLogMutation(c config, op Op, opts ...activitylogOption) *ActivityLogMutation {
	m := &ActivityLogMutation{
		config:        c,
		op:            op,
		typ:           TypeActivityLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityLogID sets the ID field of the mutation.
func withActivityLogID(id int) activitylogOption {
	return func(m *ActivityLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ActivityLog
		)
		m.oldValue = func(ctx context.Context) (*ActivityLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActivityLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivityLog sets the old ActivityLog of the mutation.
func withActivityLog(node *ActivityLog) activitylogOption {
	return func(m *ActivityLogMutation) {
		m.oldValue = func(context.Context) (*ActivityLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActivityLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAction sets the "action" field.
func (m *ActivityLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *ActivityLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *ActivityLogMutation) ResetAction() {
	m.action = nil
}

// SetStatus sets the "status" field.
func (m *ActivityLogMutation) SetStatus(a activitylog.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ActivityLogMutation) Status() (r activitylog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldStatus(ctx context.Context) (v activitylog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ActivityLogMutation) ResetStatus() {
	m.status = nil
}

// SetDetails sets the "details" field.
func (m *ActivityLogMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *ActivityLogMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *ActivityLogMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[activitylog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *ActivityLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[activitylog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *ActivityLogMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, activitylog.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *ActivityLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActivityLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActivityLog entity.
// If the ActivityLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActivityLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ActivityLogMutation builder.
func (m *ActivityLogMutation) Where(ps ...predicate.ActivityLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActivityLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActivityLog).
func (m *ActivityLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityLogMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.action != nil {
		fields = append(fields, activitylog.FieldAction)
	}
	if m.status != nil {
		fields = append(fields, activitylog.FieldStatus)
	}
	if m.details != nil {
		fields = append(fields, activitylog.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, activitylog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activitylog.FieldAction:
		return m.Action()
	case activitylog.FieldStatus:
		return m.Status()
	case activitylog.FieldDetails:
		return m.Details()
	case activitylog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activitylog.FieldAction:
		return m.OldAction(ctx)
	case activitylog.FieldStatus:
		return m.OldStatus(ctx)
	case activitylog.FieldDetails:
		return m.OldDetails(ctx)
	case activitylog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActivityLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activitylog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case activitylog.FieldStatus:
		v, ok := value.(activitylog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case activitylog.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case activitylog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ActivityLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activitylog.FieldDetails) {
		fields = append(fields, activitylog.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityLogMutation) ClearField(name string) error {
	switch name {
	case activitylog.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown ActivityLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityLogMutation) ResetField(name string) error {
	switch name {
	case activitylog.FieldAction:
		m.ResetAction()
		return nil
	case activitylog.FieldStatus:
		m.ResetStatus()
		return nil
	case activitylog.FieldDetails:
		m.ResetDetails()
		return nil
	case activitylog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ActivityLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActivityLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActivityLog edge %s", name)
}

// AnalyticsEventMutation represents an operation that mutates the AnalyticsEvent nodes in the graph.
type AnalyticsEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	event_type    *string
	event_data    *map[string]interface{}
	step          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AnalyticsEvent, error)
	predicates    []predicate.AnalyticsEvent
}

var _ ent.Mutation = (*AnalyticsEventMutation)(nil)

// analyticseventOption allows management of the mutation configuration using functional options.
type analyticseventOption func(*AnalyticsEventMutation)

// newAnalyticsEventMutation creates new mutation for the AnalyticsEvent entity.
func newAnalyticsEventMutation(c config, op Op, opts ...analyticseventOption) *AnalyticsEventMutation {
	m := &AnalyticsEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalyticsEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalyticsEventID sets the ID field of the mutation.
func withAnalyticsEventID(id int) analyticseventOption {
	return func(m *AnalyticsEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalyticsEvent
		)
		m.oldValue = func(ctx context.Context) (*AnalyticsEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalyticsEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalyticsEvent sets the old AnalyticsEvent of the mutation.
func withAnalyticsEvent(node *AnalyticsEvent) analyticseventOption {
	return func(m *AnalyticsEventMutation) {
		m.oldValue = func(context.Context) (*AnalyticsEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalyticsEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalyticsEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalyticsEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalyticsEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalyticsEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AnalyticsEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AnalyticsEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AnalyticsEvent entity.
// If the AnalyticsEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyticsEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AnalyticsEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetEventType sets the "event_type" field.
func (m *AnalyticsEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *AnalyticsEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the AnalyticsEvent entity.
// If the AnalyticsEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyticsEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *AnalyticsEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetEventData sets the "event_data" field.
func (m *AnalyticsEventMutation) SetEventData(value map[string]interface{}) {
	m.event_data = &value
}

// EventData returns the value of the "event_data" field in the mutation.
func (m *AnalyticsEventMutation) EventData() (r map[string]interface{}, exists bool) {
	v := m.event_data
	if v == nil {
		return
	}
	return *v, true
}

// OldEventData returns the old "event_data" field's value of the AnalyticsEvent entity.
// If the AnalyticsEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyticsEventMutation) OldEventData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventData: %w", err)
	}
	return oldValue.EventData, nil
}

// ClearEventData clears the value of the "event_data" field.
func (m *AnalyticsEventMutation) ClearEventData() {
	m.event_data = nil
	m.clearedFields[analyticsevent.FieldEventData] = struct{}{}
}

// EventDataCleared returns if the "event_data" field was cleared in this mutation.
func (m *AnalyticsEventMutation) EventDataCleared() bool {
	_, ok := m.clearedFields[analyticsevent.FieldEventData]
	return ok
}

// ResetEventData resets all changes to the "event_data" field.
func (m *AnalyticsEventMutation) ResetEventData() {
	m.event_data = nil
	delete(m.clearedFields, analyticsevent.FieldEventData)
}

// SetStep sets the "step" field.
func (m *AnalyticsEventMutation) SetStep(s string) {
	m.step = &s
}

// Step returns the value of the "step" field in the mutation.
func (m *AnalyticsEventMutation) Step() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the AnalyticsEvent entity.
// If the AnalyticsEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyticsEventMutation) OldStep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// ClearStep clears the value of the "step" field.
func (m *AnalyticsEventMutation) ClearStep() {
	m.step = nil
	m.clearedFields[analyticsevent.FieldStep] = struct{}{}
}

// StepCleared returns if the "step" field was cleared in this mutation.
func (m *AnalyticsEventMutation) StepCleared() bool {
	_, ok := m.clearedFields[analyticsevent.FieldStep]
	return ok
}

// ResetStep resets all changes to the "step" field.
func (m *AnalyticsEventMutation) ResetStep() {
	m.step = nil
	delete(m.clearedFields, analyticsevent.FieldStep)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalyticsEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalyticsEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalyticsEvent entity.
// If the AnalyticsEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyticsEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalyticsEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AnalyticsEventMutation builder.
func (m *AnalyticsEventMutation) Where(ps ...predicate.AnalyticsEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalyticsEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalyticsEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalyticsEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalyticsEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalyticsEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalyticsEvent).
func (m *AnalyticsEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalyticsEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session_id != nil {
		fields = append(fields, analyticsevent.FieldSessionID)
	}
	if m.event_type != nil {
		fields = append(fields, analyticsevent.FieldEventType)
	}
	if m.event_data != nil {
		fields = append(fields, analyticsevent.FieldEventData)
	}
	if m.step != nil {
		fields = append(fields, analyticsevent.FieldStep)
	}
	if m.created_at != nil {
		fields = append(fields, analyticsevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalyticsEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analyticsevent.FieldSessionID:
		return m.SessionID()
	case analyticsevent.FieldEventType:
		return m.EventType()
	case analyticsevent.FieldEventData:
		return m.EventData()
	case analyticsevent.FieldStep:
		return m.Step()
	case analyticsevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalyticsEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analyticsevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case analyticsevent.FieldEventType:
		return m.OldEventType(ctx)
	case analyticsevent.FieldEventData:
		return m.OldEventData(ctx)
	case analyticsevent.FieldStep:
		return m.OldStep(ctx)
	case analyticsevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalyticsEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalyticsEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analyticsevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case analyticsevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case analyticsevent.FieldEventData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventData(v)
		return nil
	case analyticsevent.FieldStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case analyticsevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalyticsEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalyticsEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalyticsEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalyticsEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AnalyticsEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalyticsEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analyticsevent.FieldEventData) {
		fields = append(fields, analyticsevent.FieldEventData)
	}
	if m.FieldCleared(analyticsevent.FieldStep) {
		fields = append(fields, analyticsevent.FieldStep)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalyticsEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalyticsEventMutation) ClearField(name string) error {
	switch name {
	case analyticsevent.FieldEventData:
		m.ClearEventData()
		return nil
	case analyticsevent.FieldStep:
		m.ClearStep()
		return nil
	}
	return fmt.Errorf("unknown AnalyticsEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalyticsEventMutation) ResetField(name string) error {
	switch name {
	case analyticsevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case analyticsevent.FieldEventType:
		m.ResetEventType()
		return nil
	case analyticsevent.FieldEventData:
		m.ResetEventData()
		return nil
	case analyticsevent.FieldStep:
		m.ResetStep()
		return nil
	case analyticsevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalyticsEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalyticsEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalyticsEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalyticsEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalyticsEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalyticsEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalyticsEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalyticsEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnalyticsEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalyticsEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnalyticsEvent edge %s", name)
}

// DeliveryZoneMutation represents an operation that mutates the DeliveryZone nodes in the graph.
type DeliveryZoneMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	label              *string
	fee                *float64
	addfee             *float64
	radius_description *string
	sort_order         *int
	addsort_order      *int
	active             *bool
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*DeliveryZone, error)
	predicates         []predicate.DeliveryZone
}

var _ ent.Mutation = (*DeliveryZoneMutation)(nil)

// deliveryzoneOption allows management of the mutation configuration using functional options.
type deliveryzoneOption func(*DeliveryZoneMutation)

// newDeliveryZoneMutation creates new mutation for the DeliveryZone entity.
func newDeliveryZoneMutation(c config, op Op, opts ...deliveryzoneOption) *DeliveryZoneMutation {
	m := &DeliveryZoneMutation{
		config:        c,
		op:            op,
		typ:           TypeDeliveryZone,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeliveryZoneID sets the ID field of the mutation.
func withDeliveryZoneID(id string) deliveryzoneOption {
	return func(m *DeliveryZoneMutation) {
		var (
			err   error
			once  sync.Once
			value *DeliveryZone
		)
		m.oldValue = func(ctx context.Context) (*DeliveryZone, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeliveryZone.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeliveryZone sets the old DeliveryZone of the mutation.
func withDeliveryZone(node *DeliveryZone) deliveryzoneOption {
	return func(m *DeliveryZoneMutation) {
		m.oldValue = func(context.Context) (*DeliveryZone, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeliveryZoneMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeliveryZoneMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DeliveryZone entities.
func (m *DeliveryZoneMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeliveryZoneMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeliveryZoneMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeliveryZone.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *DeliveryZoneMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DeliveryZoneMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DeliveryZone entity.
// If the DeliveryZone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryZoneMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DeliveryZoneMutation) ResetName() {
	m.name = nil
}

// SetLabel sets the "label" field.
func (m *DeliveryZoneMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *DeliveryZoneMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the DeliveryZone entity.
// If the DeliveryZone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryZoneMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *DeliveryZoneMutation) ResetLabel() {
	m.label = nil
}

// SetFee sets the "fee" field.
func (m *DeliveryZoneMutation) SetFee(f float64) {
	m.fee = &f
	m.addfee = nil
}

// Fee returns the value of the "fee" field in the mutation.
func (m *DeliveryZoneMutation) Fee() (r float64, exists bool) {
	v := m.fee
	if v == nil {
		return
	}
	return *v, true
}

// OldFee returns the old "fee" field's value of the DeliveryZone entity.
// If the DeliveryZone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryZoneMutation) OldFee(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFee: %w", err)
	}
	return oldValue.Fee, nil
}

// AddFee adds f to the "fee" field.
func (m *DeliveryZoneMutation) AddFee(f float64) {
	if m.addfee != nil {
		*m.addfee += f
	} else {
		m.addfee = &f
	}
}

// AddedFee returns the value that was added to the "fee" field in this mutation.
func (m *DeliveryZoneMutation) AddedFee() (r float64, exists bool) {
	v := m.addfee
	if v == nil {
		return
	}
	return *v, true
}

// ResetFee resets all changes to the "fee" field.
func (m *DeliveryZoneMutation) ResetFee() {
	m.fee = nil
	m.addfee = nil
}

// SetRadiusDescription sets the "radius_description" field.
func (m *DeliveryZoneMutation) SetRadiusDescription(s string) {
	m.radius_description = &s
}

// RadiusDescription returns the value of the "radius_description" field in the mutation.
func (m *DeliveryZoneMutation) RadiusDescription() (r string, exists bool) {
	v := m.radius_description
	if v == nil {
		return
	}
	return *v, true
}

// OldRadiusDescription returns the old "radius_description" field's value of the DeliveryZone entity.
// If the DeliveryZone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryZoneMutation) OldRadiusDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRadiusDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRadiusDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRadiusDescription: %w", err)
	}
	return oldValue.RadiusDescription, nil
}

// ClearRadiusDescription clears the value of the "radius_description" field.
func (m *DeliveryZoneMutation) ClearRadiusDescription() {
	m.radius_description = nil
	m.clearedFields[deliveryzone.FieldRadiusDescription] = struct{}{}
}

// RadiusDescriptionCleared returns if the "radius_description" field was cleared in this mutation.
func (m *DeliveryZoneMutation) RadiusDescriptionCleared() bool {
	_, ok := m.clearedFields[deliveryzone.FieldRadiusDescription]
	return ok
}

// ResetRadiusDescription resets all changes to the "radius_description" field.
func (m *DeliveryZoneMutation) ResetRadiusDescription() {
	m.radius_description = nil
	delete(m.clearedFields, deliveryzone.FieldRadiusDescription)
}

// SetSortOrder sets the "sort_order" field.
func (m *DeliveryZoneMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *DeliveryZoneMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the DeliveryZone entity.
// If the DeliveryZone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryZoneMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *DeliveryZoneMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *DeliveryZoneMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *DeliveryZoneMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetActive sets the "active" field.
func (m *DeliveryZoneMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *DeliveryZoneMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the DeliveryZone entity.
// If the DeliveryZone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryZoneMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *DeliveryZoneMutation) ResetActive() {
	m.active = nil
}

// Where appends a list predicates to the DeliveryZoneMutation builder.
func (m *DeliveryZoneMutation) Where(ps ...predicate.DeliveryZone) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeliveryZoneMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeliveryZoneMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeliveryZone, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeliveryZoneMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeliveryZoneMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeliveryZone).
func (m *DeliveryZoneMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeliveryZoneMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, deliveryzone.FieldName)
	}
	if m.label != nil {
		fields = append(fields, deliveryzone.FieldLabel)
	}
	if m.fee != nil {
		fields = append(fields, deliveryzone.FieldFee)
	}
	if m.radius_description != nil {
		fields = append(fields, deliveryzone.FieldRadiusDescription)
	}
	if m.sort_order != nil {
		fields = append(fields, deliveryzone.FieldSortOrder)
	}
	if m.active != nil {
		fields = append(fields, deliveryzone.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeliveryZoneMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deliveryzone.FieldName:
		return m.Name()
	case deliveryzone.FieldLabel:
		return m.Label()
	case deliveryzone.FieldFee:
		return m.Fee()
	case deliveryzone.FieldRadiusDescription:
		return m.RadiusDescription()
	case deliveryzone.FieldSortOrder:
		return m.SortOrder()
	case deliveryzone.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeliveryZoneMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deliveryzone.FieldName:
		return m.OldName(ctx)
	case deliveryzone.FieldLabel:
		return m.OldLabel(ctx)
	case deliveryzone.FieldFee:
		return m.OldFee(ctx)
	case deliveryzone.FieldRadiusDescription:
		return m.OldRadiusDescription(ctx)
	case deliveryzone.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case deliveryzone.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown DeliveryZone field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliveryZoneMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deliveryzone.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case deliveryzone.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case deliveryzone.FieldFee:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFee(v)
		return nil
	case deliveryzone.FieldRadiusDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRadiusDescription(v)
		return nil
	case deliveryzone.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case deliveryzone.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown DeliveryZone field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeliveryZoneMutation) AddedFields() []string {
	var fields []string
	if m.addfee != nil {
		fields = append(fields, deliveryzone.FieldFee)
	}
	if m.addsort_order != nil {
		fields = append(fields, deliveryzone.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeliveryZoneMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deliveryzone.FieldFee:
		return m.AddedFee()
	case deliveryzone.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliveryZoneMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deliveryzone.FieldFee:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFee(v)
		return nil
	case deliveryzone.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown DeliveryZone numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeliveryZoneMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deliveryzone.FieldRadiusDescription) {
		fields = append(fields, deliveryzone.FieldRadiusDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeliveryZoneMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeliveryZoneMutation) ClearField(name string) error {
	switch name {
	case deliveryzone.FieldRadiusDescription:
		m.ClearRadiusDescription()
		return nil
	}
	return fmt.Errorf("unknown DeliveryZone nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeliveryZoneMutation) ResetField(name string) error {
	switch name {
	case deliveryzone.FieldName:
		m.ResetName()
		return nil
	case deliveryzone.FieldLabel:
		m.ResetLabel()
		return nil
	case deliveryzone.FieldFee:
		m.ResetFee()
		return nil
	case deliveryzone.FieldRadiusDescription:
		m.ResetRadiusDescription()
		return nil
	case deliveryzone.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case deliveryzone.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown DeliveryZone field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeliveryZoneMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeliveryZoneMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeliveryZoneMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeliveryZoneMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeliveryZoneMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeliveryZoneMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeliveryZoneMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeliveryZone unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeliveryZoneMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeliveryZone edge %s", name)
}

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	email         *string
	phone         *string
	session_id    *string
	source        *string
	status        *lead.Status
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Lead, error)
	predicates    []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id int) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *LeadMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LeadMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LeadMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *LeadMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *LeadMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *LeadMutation) ResetEmail() {
	m.email = nil
}

// SetPhone sets the "phone" field.
func (m *LeadMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *LeadMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *LeadMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[lead.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *LeadMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[lead.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *LeadMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, lead.FieldPhone)
}

// SetSessionID sets the "session_id" field.
func (m *LeadMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *LeadMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *LeadMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[lead.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *LeadMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[lead.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *LeadMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, lead.FieldSessionID)
}

// SetSource sets the "source" field.
func (m *LeadMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *LeadMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *LeadMutation) ResetSource() {
	m.source = nil
}

// SetStatus sets the "status" field.
func (m *LeadMutation) SetStatus(l lead.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LeadMutation) Status() (r lead.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStatus(ctx context.Context) (v lead.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LeadMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, lead.FieldName)
	}
	if m.email != nil {
		fields = append(fields, lead.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, lead.FieldPhone)
	}
	if m.session_id != nil {
		fields = append(fields, lead.FieldSessionID)
	}
	if m.source != nil {
		fields = append(fields, lead.FieldSource)
	}
	if m.status != nil {
		fields = append(fields, lead.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldName:
		return m.Name()
	case lead.FieldEmail:
		return m.Email()
	case lead.FieldPhone:
		return m.Phone()
	case lead.FieldSessionID:
		return m.SessionID()
	case lead.FieldSource:
		return m.Source()
	case lead.FieldStatus:
		return m.Status()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldName:
		return m.OldName(ctx)
	case lead.FieldEmail:
		return m.OldEmail(ctx)
	case lead.FieldPhone:
		return m.OldPhone(ctx)
	case lead.FieldSessionID:
		return m.OldSessionID(ctx)
	case lead.FieldSource:
		return m.OldSource(ctx)
	case lead.FieldStatus:
		return m.OldStatus(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case lead.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case lead.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case lead.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case lead.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case lead.FieldStatus:
		v, ok := value.(lead.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldPhone) {
		fields = append(fields, lead.FieldPhone)
	}
	if m.FieldCleared(lead.FieldSessionID) {
		fields = append(fields, lead.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldPhone:
		m.ClearPhone()
		return nil
	case lead.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldName:
		m.ResetName()
		return nil
	case lead.FieldEmail:
		m.ResetEmail()
		return nil
	case lead.FieldPhone:
		m.ResetPhone()
		return nil
	case lead.FieldSessionID:
		m.ResetSessionID()
		return nil
	case lead.FieldSource:
		m.ResetSource()
		return nil
	case lead.FieldStatus:
		m.ResetStatus()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Lead edge %s", name)
}

// PricingConfigMutation represents an operation that mutates the PricingConfig nodes in the graph.
type PricingConfigMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	labor_rate_per_sqft    *float64
	addlabor_rate_per_sqft *float64
	waste_percentage       *float64
	addwaste_percentage    *float64
	owner_phone            *string
	owner_whatsapp         *string
	require_lead_capture   *bool
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*PricingConfig, error)
	predicates             []predicate.PricingConfig
}

var _ ent.Mutation = (*PricingConfigMutation)(nil)

// pricingconfigOption allows management of the mutation configuration using functional options.
type pricingconfigOption func(*PricingConfigMutation)

// newPricingConfigMutation creates new mutation for the PricingConfig entity.
func newPricingConfigMutation(c config, op Op, opts ...pricingconfigOption) *PricingConfigMutation {
	m := &PricingConfigMutation{
		config:        c,
		op:            op,
		typ:           TypePricingConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPricingConfigID sets the ID field of the mutation.
func withPricingConfigID(id int) pricingconfigOption {
	return func(m *PricingConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *PricingConfig
		)
		m.oldValue = func(ctx context.Context) (*PricingConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PricingConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPricingConfig sets the old PricingConfig of the mutation.
func withPricingConfig(node *PricingConfig) pricingconfigOption {
	return func(m *PricingConfigMutation) {
		m.oldValue = func(context.Context) (*PricingConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PricingConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PricingConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PricingConfigMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PricingConfigMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PricingConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLaborRatePerSqft sets the "labor_rate_per_sqft" field.
func (m *PricingConfigMutation) SetLaborRatePerSqft(f float64) {
	m.labor_rate_per_sqft = &f
	m.addlabor_rate_per_sqft = nil
}

// LaborRatePerSqft returns the value of the "labor_rate_per_sqft" field in the mutation.
func (m *PricingConfigMutation) LaborRatePerSqft() (r float64, exists bool) {
	v := m.labor_rate_per_sqft
	if v == nil {
		return
	}
	return *v, true
}

// OldLaborRatePerSqft returns the old "labor_rate_per_sqft" field's value of the PricingConfig entity.
// If the PricingConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PricingConfigMutation) OldLaborRatePerSqft(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLaborRatePerSqft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLaborRatePerSqft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLaborRatePerSqft: %w", err)
	}
	return oldValue.LaborRatePerSqft, nil
}

// AddLaborRatePerSqft adds f to the "labor_rate_per_sqft" field.
func (m *PricingConfigMutation) AddLaborRatePerSqft(f float64) {
	if m.addlabor_rate_per_sqft != nil {
		*m.addlabor_rate_per_sqft += f
	} else {
		m.addlabor_rate_per_sqft = &f
	}
}

// AddedLaborRatePerSqft returns the value that was added to the "labor_rate_per_sqft" field in this mutation.
func (m *PricingConfigMutation) AddedLaborRatePerSqft() (r float64, exists bool) {
	v := m.addlabor_rate_per_sqft
	if v == nil {
		return
	}
	return *v, true
}

// ResetLaborRatePerSqft resets all changes to the "labor_rate_per_sqft" field.
func (m *PricingConfigMutation) ResetLaborRatePerSqft() {
	m.labor_rate_per_sqft = nil
	m.addlabor_rate_per_sqft = nil
}

// SetWastePercentage sets the "waste_percentage" field.
func (m *PricingConfigMutation) SetWastePercentage(f float64) {
	m.waste_percentage = &f
	m.addwaste_percentage = nil
}

// WastePercentage returns the value of the "waste_percentage" field in the mutation.
func (m *PricingConfigMutation) WastePercentage() (r float64, exists bool) {
	v := m.waste_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldWastePercentage returns the old "waste_percentage" field's value of the PricingConfig entity.
// If the PricingConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PricingConfigMutation) OldWastePercentage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWastePercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWastePercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWastePercentage: %w", err)
	}
	return oldValue.WastePercentage, nil
}

// AddWastePercentage adds f to the "waste_percentage" field.
func (m *PricingConfigMutation) AddWastePercentage(f float64) {
	if m.addwaste_percentage != nil {
		*m.addwaste_percentage += f
	} else {
		m.addwaste_percentage = &f
	}
}

// AddedWastePercentage returns the value that was added to the "waste_percentage" field in this mutation.
func (m *PricingConfigMutation) AddedWastePercentage() (r float64, exists bool) {
	v := m.addwaste_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetWastePercentage resets all changes to the "waste_percentage" field.
func (m *PricingConfigMutation) ResetWastePercentage() {
	m.waste_percentage = nil
	m.addwaste_percentage = nil
}

// SetOwnerPhone sets the "owner_phone" field.
func (m *PricingConfigMutation) SetOwnerPhone(s string) {
	m.owner_phone = &s
}

// OwnerPhone returns the value of the "owner_phone" field in the mutation.
func (m *PricingConfigMutation) OwnerPhone() (r string, exists bool) {
	v := m.owner_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerPhone returns the old "owner_phone" field's value of the PricingConfig entity.
// If the PricingConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PricingConfigMutation) OldOwnerPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerPhone: %w", err)
	}
	return oldValue.OwnerPhone, nil
}

// ResetOwnerPhone resets all changes to the "owner_phone" field.
func (m *PricingConfigMutation) ResetOwnerPhone() {
	m.owner_phone = nil
}

// SetOwnerWhatsapp sets the "owner_whatsapp" field.
func (m *PricingConfigMutation) SetOwnerWhatsapp(s string) {
	m.owner_whatsapp = &s
}

// OwnerWhatsapp returns the value of the "owner_whatsapp" field in the mutation.
func (m *PricingConfigMutation) OwnerWhatsapp() (r string, exists bool) {
	v := m.owner_whatsapp
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerWhatsapp returns the old "owner_whatsapp" field's value of the PricingConfig entity.
// If the PricingConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PricingConfigMutation) OldOwnerWhatsapp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerWhatsapp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerWhatsapp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerWhatsapp: %w", err)
	}
	return oldValue.OwnerWhatsapp, nil
}

// ResetOwnerWhatsapp resets all changes to the "owner_whatsapp" field.
func (m *PricingConfigMutation) ResetOwnerWhatsapp() {
	m.owner_whatsapp = nil
}

// SetRequireLeadCapture sets the "require_lead_capture" field.
func (m *PricingConfigMutation) SetRequireLeadCapture(b bool) {
	m.require_lead_capture = &b
}

// RequireLeadCapture returns the value of the "require_lead_capture" field in the mutation.
func (m *PricingConfigMutation) RequireLeadCapture() (r bool, exists bool) {
	v := m.require_lead_capture
	if v == nil {
		return
	}
	return *v, true
}

// OldRequireLeadCapture returns the old "require_lead_capture" field's value of the PricingConfig entity.
// If the PricingConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PricingConfigMutation) OldRequireLeadCapture(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequireLeadCapture is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequireLeadCapture requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequireLeadCapture: %w", err)
	}
	return oldValue.RequireLeadCapture, nil
}

// ResetRequireLeadCapture resets all changes to the "require_lead_capture" field.
func (m *PricingConfigMutation) ResetRequireLeadCapture() {
	m.require_lead_capture = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PricingConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PricingConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PricingConfig entity.
// If the PricingConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PricingConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PricingConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PricingConfigMutation builder.
func (m *PricingConfigMutation) Where(ps ...predicate.PricingConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PricingConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PricingConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PricingConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PricingConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PricingConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PricingConfig).
func (m *PricingConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PricingConfigMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.labor_rate_per_sqft != nil {
		fields = append(fields, pricingconfig.FieldLaborRatePerSqft)
	}
	if m.waste_percentage != nil {
		fields = append(fields, pricingconfig.FieldWastePercentage)
	}
	if m.owner_phone != nil {
		fields = append(fields, pricingconfig.FieldOwnerPhone)
	}
	if m.owner_whatsapp != nil {
		fields = append(fields, pricingconfig.FieldOwnerWhatsapp)
	}
	if m.require_lead_capture != nil {
		fields = append(fields, pricingconfig.FieldRequireLeadCapture)
	}
	if m.updated_at != nil {
		fields = append(fields, pricingconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PricingConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pricingconfig.FieldLaborRatePerSqft:
		return m.LaborRatePerSqft()
	case pricingconfig.FieldWastePercentage:
		return m.WastePercentage()
	case pricingconfig.FieldOwnerPhone:
		return m.OwnerPhone()
	case pricingconfig.FieldOwnerWhatsapp:
		return m.OwnerWhatsapp()
	case pricingconfig.FieldRequireLeadCapture:
		return m.RequireLeadCapture()
	case pricingconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PricingConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pricingconfig.FieldLaborRatePerSqft:
		return m.OldLaborRatePerSqft(ctx)
	case pricingconfig.FieldWastePercentage:
		return m.OldWastePercentage(ctx)
	case pricingconfig.FieldOwnerPhone:
		return m.OldOwnerPhone(ctx)
	case pricingconfig.FieldOwnerWhatsapp:
		return m.OldOwnerWhatsapp(ctx)
	case pricingconfig.FieldRequireLeadCapture:
		return m.OldRequireLeadCapture(ctx)
	case pricingconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PricingConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PricingConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pricingconfig.FieldLaborRatePerSqft:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLaborRatePerSqft(v)
		return nil
	case pricingconfig.FieldWastePercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWastePercentage(v)
		return nil
	case pricingconfig.FieldOwnerPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerPhone(v)
		return nil
	case pricingconfig.FieldOwnerWhatsapp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerWhatsapp(v)
		return nil
	case pricingconfig.FieldRequireLeadCapture:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequireLeadCapture(v)
		return nil
	case pricingconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PricingConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PricingConfigMutation) AddedFields() []string {
	var fields []string
	if m.addlabor_rate_per_sqft != nil {
		fields = append(fields, pricingconfig.FieldLaborRatePerSqft)
	}
	if m.addwaste_percentage != nil {
		fields = append(fields, pricingconfig.FieldWastePercentage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PricingConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pricingconfig.FieldLaborRatePerSqft:
		return m.AddedLaborRatePerSqft()
	case pricingconfig.FieldWastePercentage:
		return m.AddedWastePercentage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PricingConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pricingconfig.FieldLaborRatePerSqft:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLaborRatePerSqft(v)
		return nil
	case pricingconfig.FieldWastePercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWastePercentage(v)
		return nil
	}
	return fmt.Errorf("unknown PricingConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PricingConfigMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PricingConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PricingConfigMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PricingConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PricingConfigMutation) ResetField(name string) error {
	switch name {
	case pricingconfig.FieldLaborRatePerSqft:
		m.ResetLaborRatePerSqft()
		return nil
	case pricingconfig.FieldWastePercentage:
		m.ResetWastePercentage()
		return nil
	case pricingconfig.FieldOwnerPhone:
		m.ResetOwnerPhone()
		return nil
	case pricingconfig.FieldOwnerWhatsapp:
		m.ResetOwnerWhatsapp()
		return nil
	case pricingconfig.FieldRequireLeadCapture:
		m.ResetRequireLeadCapture()
		return nil
	case pricingconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PricingConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PricingConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PricingConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PricingConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PricingConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PricingConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PricingConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PricingConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PricingConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PricingConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PricingConfig edge %s", name)
}

// ProductMutation represents an operation that mutates the Product nodes in the graph.
type ProductMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	name                 *string
	description          *string
	manufacturer_id      *product.ManufacturerID
	prompt               *string
	price_per_pallet     *float64
	addprice_per_pallet  *float64
	sqft_per_pallet      *float64
	addsqft_per_pallet   *float64
	weight_per_pallet    *float64
	addweight_per_pallet *float64
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	variants             map[string]struct{}
	removedvariants      map[string]struct{}
	clearedvariants      bool
	done                 bool
	oldValue             func(context.Context) (*Product, error)
	predicates           []predicate.Product
}

var _ ent.Mutation = (*ProductMutation)(nil)

// productOption allows management of the mutation configuration using functional options.
type productOption func(*ProductMutation)

// newProductMutation creates new mutation for the Product entity.
func newProductMutation(c config, op Op, opts ...productOption) *ProductMutation {
	m := &ProductMutation{
		config:        c,
		op:            op,
		typ:           TypeProduct,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProductID sets the ID field of the mutation.
func withProductID(id string) productOption {
	return func(m *ProductMutation) {
		var (
			err   error
			once  sync.Once
			value *Product
		)
		m.oldValue = func(ctx context.Context) (*Product, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Product.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProduct sets the old Product of the mutation.
func withProduct(node *Product) productOption {
	return func(m *ProductMutation) {
		m.oldValue = func(context.Context) (*Product, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProductMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProductMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Product entities.
func (m *ProductMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProductMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProductMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Product.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProductMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProductMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProductMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProductMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProductMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProductMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[product.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProductMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[product.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProductMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, product.FieldDescription)
}

// SetManufacturerID sets the "manufacturer_id" field.
func (m *ProductMutation) SetManufacturerID(pi product.ManufacturerID) {
	m.manufacturer_id = &pi
}

// ManufacturerID returns the value of the "manufacturer_id" field in the mutation.
func (m *ProductMutation) ManufacturerID() (r product.ManufacturerID, exists bool) {
	v := m.manufacturer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldManufacturerID returns the old "manufacturer_id" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldManufacturerID(ctx context.Context) (v product.ManufacturerID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManufacturerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManufacturerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManufacturerID: %w", err)
	}
	return oldValue.ManufacturerID, nil
}

// ResetManufacturerID resets all changes to the "manufacturer_id" field.
func (m *ProductMutation) ResetManufacturerID() {
	m.manufacturer_id = nil
}

// SetPrompt sets the "prompt" field.
func (m *ProductMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *ProductMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ClearPrompt clears the value of the "prompt" field.
func (m *ProductMutation) ClearPrompt() {
	m.prompt = nil
	m.clearedFields[product.FieldPrompt] = struct{}{}
}

// PromptCleared returns if the "prompt" field was cleared in this mutation.
func (m *ProductMutation) PromptCleared() bool {
	_, ok := m.clearedFields[product.FieldPrompt]
	return ok
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *ProductMutation) ResetPrompt() {
	m.prompt = nil
	delete(m.clearedFields, product.FieldPrompt)
}

// SetPricePerPallet sets the "price_per_pallet" field.
func (m *ProductMutation) SetPricePerPallet(f float64) {
	m.price_per_pallet = &f
	m.addprice_per_pallet = nil
}

// PricePerPallet returns the value of the "price_per_pallet" field in the mutation.
func (m *ProductMutation) PricePerPallet() (r float64, exists bool) {
	v := m.price_per_pallet
	if v == nil {
		return
	}
	return *v, true
}

// OldPricePerPallet returns the old "price_per_pallet" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldPricePerPallet(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPricePerPallet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPricePerPallet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPricePerPallet: %w", err)
	}
	return oldValue.PricePerPallet, nil
}

// AddPricePerPallet adds f to the "price_per_pallet" field.
func (m *ProductMutation) AddPricePerPallet(f float64) {
	if m.addprice_per_pallet != nil {
		*m.addprice_per_pallet += f
	} else {
		m.addprice_per_pallet = &f
	}
}

// AddedPricePerPallet returns the value that was added to the "price_per_pallet" field in this mutation.
func (m *ProductMutation) AddedPricePerPallet() (r float64, exists bool) {
	v := m.addprice_per_pallet
	if v == nil {
		return
	}
	return *v, true
}

// ClearPricePerPallet clears the value of the "price_per_pallet" field.
func (m *ProductMutation) ClearPricePerPallet() {
	m.price_per_pallet = nil
	m.addprice_per_pallet = nil
	m.clearedFields[product.FieldPricePerPallet] = struct{}{}
}

// PricePerPalletCleared returns if the "price_per_pallet" field was cleared in this mutation.
func (m *ProductMutation) PricePerPalletCleared() bool {
	_, ok := m.clearedFields[product.FieldPricePerPallet]
	return ok
}

// ResetPricePerPallet resets all changes to the "price_per_pallet" field.
func (m *ProductMutation) ResetPricePerPallet() {
	m.price_per_pallet = nil
	m.addprice_per_pallet = nil
	delete(m.clearedFields, product.FieldPricePerPallet)
}

// SetSqftPerPallet sets the "sqft_per_pallet" field.
func (m *ProductMutation) SetSqftPerPallet(f float64) {
	m.sqft_per_pallet = &f
	m.addsqft_per_pallet = nil
}

// SqftPerPallet returns the value of the "sqft_per_pallet" field in the mutation.
func (m *ProductMutation) SqftPerPallet() (r float64, exists bool) {
	v := m.sqft_per_pallet
	if v == nil {
		return
	}
	return *v, true
}

// OldSqftPerPallet returns the old "sqft_per_pallet" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldSqftPerPallet(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSqftPerPallet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSqftPerPallet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSqftPerPallet: %w", err)
	}
	return oldValue.SqftPerPallet, nil
}

// AddSqftPerPallet adds f to the "sqft_per_pallet" field.
func (m *ProductMutation) AddSqftPerPallet(f float64) {
	if m.addsqft_per_pallet != nil {
		*m.addsqft_per_pallet += f
	} else {
		m.addsqft_per_pallet = &f
	}
}

// AddedSqftPerPallet returns the value that was added to the "sqft_per_pallet" field in this mutation.
func (m *ProductMutation) AddedSqftPerPallet() (r float64, exists bool) {
	v := m.addsqft_per_pallet
	if v == nil {
		return
	}
	return *v, true
}

// ClearSqftPerPallet clears the value of the "sqft_per_pallet" field.
func (m *ProductMutation) ClearSqftPerPallet() {
	m.sqft_per_pallet = nil
	m.addsqft_per_pallet = nil
	m.clearedFields[product.FieldSqftPerPallet] = struct{}{}
}

// SqftPerPalletCleared returns if the "sqft_per_pallet" field was cleared in this mutation.
func (m *ProductMutation) SqftPerPalletCleared() bool {
	_, ok := m.clearedFields[product.FieldSqftPerPallet]
	return ok
}

// ResetSqftPerPallet resets all changes to the "sqft_per_pallet" field.
func (m *ProductMutation) ResetSqftPerPallet() {
	m.sqft_per_pallet = nil
	m.addsqft_per_pallet = nil
	delete(m.clearedFields, product.FieldSqftPerPallet)
}

// SetWeightPerPallet sets the "weight_per_pallet" field.
func (m *ProductMutation) SetWeightPerPallet(f float64) {
	m.weight_per_pallet = &f
	m.addweight_per_pallet = nil
}

// WeightPerPallet returns the value of the "weight_per_pallet" field in the mutation.
func (m *ProductMutation) WeightPerPallet() (r float64, exists bool) {
	v := m.weight_per_pallet
	if v == nil {
		return
	}
	return *v, true
}

// OldWeightPerPallet returns the old "weight_per_pallet" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldWeightPerPallet(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeightPerPallet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeightPerPallet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeightPerPallet: %w", err)
	}
	return oldValue.WeightPerPallet, nil
}

// AddWeightPerPallet adds f to the "weight_per_pallet" field.
func (m *ProductMutation) AddWeightPerPallet(f float64) {
	if m.addweight_per_pallet != nil {
		*m.addweight_per_pallet += f
	} else {
		m.addweight_per_pallet = &f
	}
}

// AddedWeightPerPallet returns the value that was added to the "weight_per_pallet" field in this mutation.
func (m *ProductMutation) AddedWeightPerPallet() (r float64, exists bool) {
	v := m.addweight_per_pallet
	if v == nil {
		return
	}
	return *v, true
}

// ClearWeightPerPallet clears the value of the "weight_per_pallet" field.
func (m *ProductMutation) ClearWeightPerPallet() {
	m.weight_per_pallet = nil
	m.addweight_per_pallet = nil
	m.clearedFields[product.FieldWeightPerPallet] = struct{}{}
}

// WeightPerPalletCleared returns if the "weight_per_pallet" field was cleared in this mutation.
func (m *ProductMutation) WeightPerPalletCleared() bool {
	_, ok := m.clearedFields[product.FieldWeightPerPallet]
	return ok
}

// ResetWeightPerPallet resets all changes to the "weight_per_pallet" field.
func (m *ProductMutation) ResetWeightPerPallet() {
	m.weight_per_pallet = nil
	m.addweight_per_pallet = nil
	delete(m.clearedFields, product.FieldWeightPerPallet)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProductMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProductMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProductMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProductMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProductMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProductMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddVariantIDs adds the "variants" edge to the Variant entity by ids.
func (m *ProductMutation) AddVariantIDs(ids ...string) {
	if m.variants == nil {
		m.variants = make(map[string]struct{})
	}
	for i := range ids {
		m.variants[ids[i]] = struct{}{}
	}
}

// ClearVariants clears the "variants" edge to the Variant entity.
func (m *ProductMutation) ClearVariants() {
	m.clearedvariants = true
}

// VariantsCleared reports if the "variants" edge to the Variant entity was cleared.
func (m *ProductMutation) VariantsCleared() bool {
	return m.clearedvariants
}

// RemoveVariantIDs removes the "variants" edge to the Variant entity by IDs.
func (m *ProductMutation) RemoveVariantIDs(ids ...string) {
	if m.removedvariants == nil {
		m.removedvariants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.variants, ids[i])
		m.removedvariants[ids[i]] = struct{}{}
	}
}

// RemovedVariants returns the removed IDs of the "variants" edge to the Variant entity.
func (m *ProductMutation) RemovedVariantsIDs() (ids []string) {
	for id := range m.removedvariants {
		ids = append(ids, id)
	}
	return
}

// VariantsIDs returns the "variants" edge IDs in the mutation.
func (m *ProductMutation) VariantsIDs() (ids []string) {
	for id := range m.variants {
		ids = append(ids, id)
	}
	return
}

// ResetVariants resets all changes to the "variants" edge.
func (m *ProductMutation) ResetVariants() {
	m.variants = nil
	m.clearedvariants = false
	m.removedvariants = nil
}

// Where appends a list predicates to the ProductMutation builder.
func (m *ProductMutation) Where(ps ...predicate.Product) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProductMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProductMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Product, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProductMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProductMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Product).
func (m *ProductMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProductMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, product.FieldName)
	}
	if m.description != nil {
		fields = append(fields, product.FieldDescription)
	}
	if m.manufacturer_id != nil {
		fields = append(fields, product.FieldManufacturerID)
	}
	if m.prompt != nil {
		fields = append(fields, product.FieldPrompt)
	}
	if m.price_per_pallet != nil {
		fields = append(fields, product.FieldPricePerPallet)
	}
	if m.sqft_per_pallet != nil {
		fields = append(fields, product.FieldSqftPerPallet)
	}
	if m.weight_per_pallet != nil {
		fields = append(fields, product.FieldWeightPerPallet)
	}
	if m.created_at != nil {
		fields = append(fields, product.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, product.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProductMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case product.FieldName:
		return m.Name()
	case product.FieldDescription:
		return m.Description()
	case product.FieldManufacturerID:
		return m.ManufacturerID()
	case product.FieldPrompt:
		return m.Prompt()
	case product.FieldPricePerPallet:
		return m.PricePerPallet()
	case product.FieldSqftPerPallet:
		return m.SqftPerPallet()
	case product.FieldWeightPerPallet:
		return m.WeightPerPallet()
	case product.FieldCreatedAt:
		return m.CreatedAt()
	case product.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProductMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case product.FieldName:
		return m.OldName(ctx)
	case product.FieldDescription:
		return m.OldDescription(ctx)
	case product.FieldManufacturerID:
		return m.OldManufacturerID(ctx)
	case product.FieldPrompt:
		return m.OldPrompt(ctx)
	case product.FieldPricePerPallet:
		return m.OldPricePerPallet(ctx)
	case product.FieldSqftPerPallet:
		return m.OldSqftPerPallet(ctx)
	case product.FieldWeightPerPallet:
		return m.OldWeightPerPallet(ctx)
	case product.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case product.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Product field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductMutation) SetField(name string, value ent.Value) error {
	switch name {
	case product.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case product.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case product.FieldManufacturerID:
		v, ok := value.(product.ManufacturerID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManufacturerID(v)
		return nil
	case product.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case product.FieldPricePerPallet:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPricePerPallet(v)
		return nil
	case product.FieldSqftPerPallet:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSqftPerPallet(v)
		return nil
	case product.FieldWeightPerPallet:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeightPerPallet(v)
		return nil
	case product.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case product.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Product field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProductMutation) AddedFields() []string {
	var fields []string
	if m.addprice_per_pallet != nil {
		fields = append(fields, product.FieldPricePerPallet)
	}
	if m.addsqft_per_pallet != nil {
		fields = append(fields, product.FieldSqftPerPallet)
	}
	if m.addweight_per_pallet != nil {
		fields = append(fields, product.FieldWeightPerPallet)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProductMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case product.FieldPricePerPallet:
		return m.AddedPricePerPallet()
	case product.FieldSqftPerPallet:
		return m.AddedSqftPerPallet()
	case product.FieldWeightPerPallet:
		return m.AddedWeightPerPallet()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductMutation) AddField(name string, value ent.Value) error {
	switch name {
	case product.FieldPricePerPallet:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPricePerPallet(v)
		return nil
	case product.FieldSqftPerPallet:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSqftPerPallet(v)
		return nil
	case product.FieldWeightPerPallet:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeightPerPallet(v)
		return nil
	}
	return fmt.Errorf("unknown Product numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProductMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(product.FieldDescription) {
		fields = append(fields, product.FieldDescription)
	}
	if m.FieldCleared(product.FieldPrompt) {
		fields = append(fields, product.FieldPrompt)
	}
	if m.FieldCleared(product.FieldPricePerPallet) {
		fields = append(fields, product.FieldPricePerPallet)
	}
	if m.FieldCleared(product.FieldSqftPerPallet) {
		fields = append(fields, product.FieldSqftPerPallet)
	}
	if m.FieldCleared(product.FieldWeightPerPallet) {
		fields = append(fields, product.FieldWeightPerPallet)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProductMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProductMutation) ClearField(name string) error {
	switch name {
	case product.FieldDescription:
		m.ClearDescription()
		return nil
	case product.FieldPrompt:
		m.ClearPrompt()
		return nil
	case product.FieldPricePerPallet:
		m.ClearPricePerPallet()
		return nil
	case product.FieldSqftPerPallet:
		m.ClearSqftPerPallet()
		return nil
	case product.FieldWeightPerPallet:
		m.ClearWeightPerPallet()
		return nil
	}
	return fmt.Errorf("unknown Product nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProductMutation) ResetField(name string) error {
	switch name {
	case product.FieldName:
		m.ResetName()
		return nil
	case product.FieldDescription:
		m.ResetDescription()
		return nil
	case product.FieldManufacturerID:
		m.ResetManufacturerID()
		return nil
	case product.FieldPrompt:
		m.ResetPrompt()
		return nil
	case product.FieldPricePerPallet:
		m.ResetPricePerPallet()
		return nil
	case product.FieldSqftPerPallet:
		m.ResetSqftPerPallet()
		return nil
	case product.FieldWeightPerPallet:
		m.ResetWeightPerPallet()
		return nil
	case product.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case product.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Product field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProductMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.variants != nil {
		edges = append(edges, product.EdgeVariants)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProductMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case product.EdgeVariants:
		ids := make([]ent.Value, 0, len(m.variants))
		for id := range m.variants {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProductMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedvariants != nil {
		edges = append(edges, product.EdgeVariants)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProductMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case product.EdgeVariants:
		ids := make([]ent.Value, 0, len(m.removedvariants))
		for id := range m.removedvariants {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProductMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedvariants {
		edges = append(edges, product.EdgeVariants)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProductMutation) EdgeCleared(name string) bool {
	switch name {
	case product.EdgeVariants:
		return m.clearedvariants
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProductMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Product unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProductMutation) ResetEdge(name string) error {
	switch name {
	case product.EdgeVariants:
		m.ResetVariants()
		return nil
	}
	return fmt.Errorf("unknown Product edge %s", name)
}

// VariantMutation represents an operation that mutates the Variant nodes in the graph.
type VariantMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	name                *string
	texture_url         *string
	example_url         *string
	shopify_url         *string
	price_per_pallet    *float64
	addprice_per_pallet *float64
	position            *int
	addposition         *int
	clearedFields       map[string]struct{}
	product             *string
	clearedproduct      bool
	done                bool
	oldValue            func(context.Context) (*Variant, error)
	predicates          []predicate.Variant
}

var _ ent.Mutation = (*VariantMutation)(nil)

// variantOption allows management of the mutation configuration using functional options.
type variantOption func(*VariantMutation)

// newVariantMutation creates new mutation for the Variant entity.
func newVariantMutation(c config, op Op, opts ...variantOption) *VariantMutation {
	m := &VariantMutation{
		config:        c,
		op:            op,
		typ:           TypeVariant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVariantID sets the ID field of the mutation.
func withVariantID(id string) variantOption {
	return func(m *VariantMutation) {
		var (
			err   error
			once  sync.Once
			value *Variant
		)
		m.oldValue = func(ctx context.Context) (*Variant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Variant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVariant sets the old Variant of the mutation.
func withVariant(node *Variant) variantOption {
	return func(m *VariantMutation) {
		m.oldValue = func(context.Context) (*Variant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VariantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VariantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Variant entities.
func (m *VariantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VariantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VariantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Variant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *VariantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *VariantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Variant entity.
// If the Variant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VariantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *VariantMutation) ResetName() {
	m.name = nil
}

// SetTextureURL sets the "texture_url" field.
func (m *VariantMutation) SetTextureURL(s string) {
	m.texture_url = &s
}

// TextureURL returns the value of the "texture_url" field in the mutation.
func (m *VariantMutation) TextureURL() (r string, exists bool) {
	v := m.texture_url
	if v == nil {
		return
	}
	return *v, true
}

// OldTextureURL returns the old "texture_url" field's value of the Variant entity.
// If the Variant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VariantMutation) OldTextureURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextureURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextureURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextureURL: %w", err)
	}
	return oldValue.TextureURL, nil
}

// ResetTextureURL resets all changes to the "texture_url" field.
func (m *VariantMutation) ResetTextureURL() {
	m.texture_url = nil
}

// SetExampleURL sets the "example_url" field.
func (m *VariantMutation) SetExampleURL(s string) {
	m.example_url = &s
}

// ExampleURL returns the value of the "example_url" field in the mutation.
func (m *VariantMutation) ExampleURL() (r string, exists bool) {
	v := m.example_url
	if v == nil {
		return
	}
	return *v, true
}

// OldExampleURL returns the old "example_url" field's value of the Variant entity.
// If the Variant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VariantMutation) OldExampleURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExampleURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExampleURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExampleURL: %w", err)
	}
	return oldValue.ExampleURL, nil
}

// ClearExampleURL clears the value of the "example_url" field.
func (m *VariantMutation) ClearExampleURL() {
	m.example_url = nil
	m.clearedFields[variant.FieldExampleURL] = struct{}{}
}

// ExampleURLCleared returns if the "example_url" field was cleared in this mutation.
func (m *VariantMutation) ExampleURLCleared() bool {
	_, ok := m.clearedFields[variant.FieldExampleURL]
	return ok
}

// ResetExampleURL resets all changes to the "example_url" field.
func (m *VariantMutation) ResetExampleURL() {
	m.example_url = nil
	delete(m.clearedFields, variant.FieldExampleURL)
}

// SetShopifyURL sets the "shopify_url" field.
func (m *VariantMutation) SetShopifyURL(s string) {
	m.shopify_url = &s
}

// ShopifyURL returns the value of the "shopify_url" field in the mutation.
func (m *VariantMutation) ShopifyURL() (r string, exists bool) {
	v := m.shopify_url
	if v == nil {
		return
	}
	return *v, true
}

// OldShopifyURL returns the old "shopify_url" field's value of the Variant entity.
// If the Variant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VariantMutation) OldShopifyURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShopifyURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShopifyURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShopifyURL: %w", err)
	}
	return oldValue.ShopifyURL, nil
}

// ClearShopifyURL clears the value of the "shopify_url" field.
func (m *VariantMutation) ClearShopifyURL() {
	m.shopify_url = nil
	m.clearedFields[variant.FieldShopifyURL] = struct{}{}
}

// ShopifyURLCleared returns if the "shopify_url" field was cleared in this mutation.
func (m *VariantMutation) ShopifyURLCleared() bool {
	_, ok := m.clearedFields[variant.FieldShopifyURL]
	return ok
}

// ResetShopifyURL resets all changes to the "shopify_url" field.
func (m *VariantMutation) ResetShopifyURL() {
	m.shopify_url = nil
	delete(m.clearedFields, variant.FieldShopifyURL)
}

// SetPricePerPallet sets the "price_per_pallet" field.
func (m *VariantMutation) SetPricePerPallet(f float64) {
	m.price_per_pallet = &f
	m.addprice_per_pallet = nil
}

// PricePerPallet returns the value of the "price_per_pallet" field in the mutation.
func (m *VariantMutation) PricePerPallet() (r float64, exists bool) {
	v := m.price_per_pallet
	if v == nil {
		return
	}
	return *v, true
}

// OldPricePerPallet returns the old "price_per_pallet" field's value of the Variant entity.
// If the Variant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VariantMutation) OldPricePerPallet(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPricePerPallet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPricePerPallet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPricePerPallet: %w", err)
	}
	return oldValue.PricePerPallet, nil
}

// AddPricePerPallet adds f to the "price_per_pallet" field.
func (m *VariantMutation) AddPricePerPallet(f float64) {
	if m.addprice_per_pallet != nil {
		*m.addprice_per_pallet += f
	} else {
		m.addprice_per_pallet = &f
	}
}

// AddedPricePerPallet returns the value that was added to the "price_per_pallet" field in this mutation.
func (m *VariantMutation) AddedPricePerPallet() (r float64, exists bool) {
	v := m.addprice_per_pallet
	if v == nil {
		return
	}
	return *v, true
}

// ClearPricePerPallet clears the value of the "price_per_pallet" field.
func (m *VariantMutation) ClearPricePerPallet() {
	m.price_per_pallet = nil
	m.addprice_per_pallet = nil
	m.clearedFields[variant.FieldPricePerPallet] = struct{}{}
}

// PricePerPalletCleared returns if the "price_per_pallet" field was cleared in this mutation.
func (m *VariantMutation) PricePerPalletCleared() bool {
	_, ok := m.clearedFields[variant.FieldPricePerPallet]
	return ok
}

// ResetPricePerPallet resets all changes to the "price_per_pallet" field.
func (m *VariantMutation) ResetPricePerPallet() {
	m.price_per_pallet = nil
	m.addprice_per_pallet = nil
	delete(m.clearedFields, variant.FieldPricePerPallet)
}

// SetPosition sets the "position" field.
func (m *VariantMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *VariantMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Variant entity.
// If the Variant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VariantMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *VariantMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *VariantMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *VariantMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetProductID sets the "product" edge to the Product entity by id.
func (m *VariantMutation) SetProductID(id string) {
	m.product = &id
}

// ClearProduct clears the "product" edge to the Product entity.
func (m *VariantMutation) ClearProduct() {
	m.clearedproduct = true
}

// ProductCleared reports if the "product" edge to the Product entity was cleared.
func (m *VariantMutation) ProductCleared() bool {
	return m.clearedproduct
}

// ProductID returns the "product" edge ID in the mutation.
func (m *VariantMutation) ProductID() (id string, exists bool) {
	if m.product != nil {
		return *m.product, true
	}
	return
}

// ProductIDs returns the "product" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProductID instead. It exists only for internal usage by the builders.
func (m *VariantMutation) ProductIDs() (ids []string) {
	if id := m.product; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProduct resets all changes to the "product" edge.
func (m *VariantMutation) ResetProduct() {
	m.product = nil
	m.clearedproduct = false
}

// Where appends a list predicates to the VariantMutation builder.
func (m *VariantMutation) Where(ps ...predicate.Variant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VariantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VariantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Variant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VariantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VariantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Variant).
func (m *VariantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VariantMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, variant.FieldName)
	}
	if m.texture_url != nil {
		fields = append(fields, variant.FieldTextureURL)
	}
	if m.example_url != nil {
		fields = append(fields, variant.FieldExampleURL)
	}
	if m.shopify_url != nil {
		fields = append(fields, variant.FieldShopifyURL)
	}
	if m.price_per_pallet != nil {
		fields = append(fields, variant.FieldPricePerPallet)
	}
	if m.position != nil {
		fields = append(fields, variant.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VariantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case variant.FieldName:
		return m.Name()
	case variant.FieldTextureURL:
		return m.TextureURL()
	case variant.FieldExampleURL:
		return m.ExampleURL()
	case variant.FieldShopifyURL:
		return m.ShopifyURL()
	case variant.FieldPricePerPallet:
		return m.PricePerPallet()
	case variant.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VariantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case variant.FieldName:
		return m.OldName(ctx)
	case variant.FieldTextureURL:
		return m.OldTextureURL(ctx)
	case variant.FieldExampleURL:
		return m.OldExampleURL(ctx)
	case variant.FieldShopifyURL:
		return m.OldShopifyURL(ctx)
	case variant.FieldPricePerPallet:
		return m.OldPricePerPallet(ctx)
	case variant.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown Variant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VariantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case variant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case variant.FieldTextureURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextureURL(v)
		return nil
	case variant.FieldExampleURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExampleURL(v)
		return nil
	case variant.FieldShopifyURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShopifyURL(v)
		return nil
	case variant.FieldPricePerPallet:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPricePerPallet(v)
		return nil
	case variant.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Variant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VariantMutation) AddedFields() []string {
	var fields []string
	if m.addprice_per_pallet != nil {
		fields = append(fields, variant.FieldPricePerPallet)
	}
	if m.addposition != nil {
		fields = append(fields, variant.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VariantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case variant.FieldPricePerPallet:
		return m.AddedPricePerPallet()
	case variant.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VariantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case variant.FieldPricePerPallet:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPricePerPallet(v)
		return nil
	case variant.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Variant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VariantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(variant.FieldExampleURL) {
		fields = append(fields, variant.FieldExampleURL)
	}
	if m.FieldCleared(variant.FieldShopifyURL) {
		fields = append(fields, variant.FieldShopifyURL)
	}
	if m.FieldCleared(variant.FieldPricePerPallet) {
		fields = append(fields, variant.FieldPricePerPallet)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VariantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VariantMutation) ClearField(name string) error {
	switch name {
	case variant.FieldExampleURL:
		m.ClearExampleURL()
		return nil
	case variant.FieldShopifyURL:
		m.ClearShopifyURL()
		return nil
	case variant.FieldPricePerPallet:
		m.ClearPricePerPallet()
		return nil
	}
	return fmt.Errorf("unknown Variant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VariantMutation) ResetField(name string) error {
	switch name {
	case variant.FieldName:
		m.ResetName()
		return nil
	case variant.FieldTextureURL:
		m.ResetTextureURL()
		return nil
	case variant.FieldExampleURL:
		m.ResetExampleURL()
		return nil
	case variant.FieldShopifyURL:
		m.ResetShopifyURL()
		return nil
	case variant.FieldPricePerPallet:
		m.ResetPricePerPallet()
		return nil
	case variant.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown Variant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VariantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.product != nil {
		edges = append(edges, variant.EdgeProduct)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VariantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case variant.EdgeProduct:
		if id := m.product; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VariantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VariantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VariantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproduct {
		edges = append(edges, variant.EdgeProduct)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VariantMutation) EdgeCleared(name string) bool {
	switch name {
	case variant.EdgeProduct:
		return m.clearedproduct
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VariantMutation) ClearEdge(name string) error {
	switch name {
	case variant.EdgeProduct:
		m.ClearProduct()
		return nil
	}
	return fmt.Errorf("unknown Variant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VariantMutation) ResetEdge(name string) error {
	switch name {
	case variant.EdgeProduct:
		m.ResetProduct()
		return nil
	}
	return fmt.Errorf("unknown Variant edge %s", name)
}
