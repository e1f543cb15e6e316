// Code generated by ent, DO NOT EDIT.

package analyticsevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/directpavers/paverquote/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldEQ(FieldSessionID, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldEQ(FieldEventType, v))
}

// Step applies equality check predicate on the "step" field. It's identical to StepEQ.
func Step(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldEQ(FieldStep, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldContainsFold(FieldEventType, v))
}

// EventDataIsNil applies the IsNil predicate on the "event_data" field.
func EventDataIsNil() predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldIsNull(FieldEventData))
}

// EventDataNotNil applies the NotNil predicate on the "event_data" field.
func EventDataNotNil() predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldNotNull(FieldEventData))
}

// StepEQ applies the EQ predicate on the "step" field.
func StepEQ(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldEQ(FieldStep, v))
}

// StepNEQ applies the NEQ predicate on the "step" field.
func StepNEQ(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldNEQ(FieldStep, v))
}

// StepIn applies the In predicate on the "step" field.
func StepIn(vs ...string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldIn(FieldStep, vs...))
}

// StepNotIn applies the NotIn predicate on the "step" field.
func StepNotIn(vs ...string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldNotIn(FieldStep, vs...))
}

// StepGT applies the GT predicate on the "step" field.
func StepGT(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldGT(FieldStep, v))
}

// StepGTE applies the GTE predicate on the "step" field.
func StepGTE(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldGTE(FieldStep, v))
}

// StepLT applies the LT predicate on the "step" field.
func StepLT(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldLT(FieldStep, v))
}

// StepLTE applies the LTE predicate on the "step" field.
func StepLTE(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldLTE(FieldStep, v))
}

// StepContains applies the Contains predicate on the "step" field.
func StepContains(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldContains(FieldStep, v))
}

// StepHasPrefix applies the HasPrefix predicate on the "step" field.
func StepHasPrefix(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldHasPrefix(FieldStep, v))
}

// StepHasSuffix applies the HasSuffix predicate on the "step" field.
func StepHasSuffix(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldHasSuffix(FieldStep, v))
}

// StepIsNil applies the IsNil predicate on the "step" field.
func StepIsNil() predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldIsNull(FieldStep))
}

// StepNotNil applies the NotNil predicate on the "step" field.
func StepNotNil() predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldNotNull(FieldStep))
}

// StepEqualFold applies the EqualFold predicate on the "step" field.
func StepEqualFold(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldEqualFold(FieldStep, v))
}

// StepContainsFold applies the ContainsFold predicate on the "step" field.
func StepContainsFold(v string) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldContainsFold(FieldStep, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalyticsEvent) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalyticsEvent) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalyticsEvent) predicate.AnalyticsEvent {
	return predicate.AnalyticsEvent(sql.NotPredicates(p))
}
