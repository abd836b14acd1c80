// Code generated by ent, DO NOT EDIT.

package pathevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldTimestamp, v))
}

// PathID applies equality check predicate on the "path_id" field. It's identical to PathIDEQ.
func PathID(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldPathID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldAction, v))
}

// ModuleIndex applies equality check predicate on the "module_index" field. It's identical to ModuleIndexEQ.
func ModuleIndex(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldModuleIndex, v))
}

// Percent applies equality check predicate on the "percent" field. It's identical to PercentEQ.
func Percent(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldPercent, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldTimestamp, v))
}

// PathIDEQ applies the EQ predicate on the "path_id" field.
func PathIDEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldPathID, v))
}

// PathIDNEQ applies the NEQ predicate on the "path_id" field.
func PathIDNEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldPathID, v))
}

// PathIDIn applies the In predicate on the "path_id" field.
func PathIDIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldPathID, vs...))
}

// PathIDNotIn applies the NotIn predicate on the "path_id" field.
func PathIDNotIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldPathID, vs...))
}

// PathIDGT applies the GT predicate on the "path_id" field.
func PathIDGT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldPathID, v))
}

// PathIDGTE applies the GTE predicate on the "path_id" field.
func PathIDGTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldPathID, v))
}

// PathIDLT applies the LT predicate on the "path_id" field.
func PathIDLT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldPathID, v))
}

// PathIDLTE applies the LTE predicate on the "path_id" field.
func PathIDLTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldPathID, v))
}

// PathIDContains applies the Contains predicate on the "path_id" field.
func PathIDContains(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContains(FieldPathID, v))
}

// PathIDHasPrefix applies the HasPrefix predicate on the "path_id" field.
func PathIDHasPrefix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasPrefix(FieldPathID, v))
}

// PathIDHasSuffix applies the HasSuffix predicate on the "path_id" field.
func PathIDHasSuffix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasSuffix(FieldPathID, v))
}

// PathIDEqualFold applies the EqualFold predicate on the "path_id" field.
func PathIDEqualFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEqualFold(FieldPathID, v))
}

// PathIDContainsFold applies the ContainsFold predicate on the "path_id" field.
func PathIDContainsFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContainsFold(FieldPathID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldContainsFold(FieldAction, v))
}

// ModuleIndexEQ applies the EQ predicate on the "module_index" field.
func ModuleIndexEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldModuleIndex, v))
}

// ModuleIndexNEQ applies the NEQ predicate on the "module_index" field.
func ModuleIndexNEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldModuleIndex, v))
}

// ModuleIndexIn applies the In predicate on the "module_index" field.
func ModuleIndexIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldModuleIndex, vs...))
}

// ModuleIndexNotIn applies the NotIn predicate on the "module_index" field.
func ModuleIndexNotIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldModuleIndex, vs...))
}

// ModuleIndexGT applies the GT predicate on the "module_index" field.
func ModuleIndexGT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldModuleIndex, v))
}

// ModuleIndexGTE applies the GTE predicate on the "module_index" field.
func ModuleIndexGTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldModuleIndex, v))
}

// ModuleIndexLT applies the LT predicate on the "module_index" field.
func ModuleIndexLT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldModuleIndex, v))
}

// ModuleIndexLTE applies the LTE predicate on the "module_index" field.
func ModuleIndexLTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldModuleIndex, v))
}

// PercentEQ applies the EQ predicate on the "percent" field.
func PercentEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldEQ(FieldPercent, v))
}

// PercentNEQ applies the NEQ predicate on the "percent" field.
func PercentNEQ(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNEQ(FieldPercent, v))
}

// PercentIn applies the In predicate on the "percent" field.
func PercentIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldIn(FieldPercent, vs...))
}

// PercentNotIn applies the NotIn predicate on the "percent" field.
func PercentNotIn(vs ...int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldNotIn(FieldPercent, vs...))
}

// PercentGT applies the GT predicate on the "percent" field.
func PercentGT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGT(FieldPercent, v))
}

// PercentGTE applies the GTE predicate on the "percent" field.
func PercentGTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldGTE(FieldPercent, v))
}

// PercentLT applies the LT predicate on the "percent" field.
func PercentLT(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLT(FieldPercent, v))
}

// PercentLTE applies the LTE predicate on the "percent" field.
func PercentLTE(v int) predicate.PathEvent {
	return predicate.PathEvent(sql.FieldLTE(FieldPercent, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PathEvent) predicate.PathEvent {
	return predicate.PathEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PathEvent) predicate.PathEvent {
	return predicate.PathEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PathEvent) predicate.PathEvent {
	return predicate.PathEvent(sql.NotPredicates(p))
}
