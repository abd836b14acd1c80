// Code generated by ent, DO NOT EDIT.

package learningpath

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldUserID, v))
}

// Generated applies equality check predicate on the "generated" field. It's identical to GeneratedEQ.
func Generated(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldGenerated, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldProgress, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldContainsFold(FieldUserID, v))
}

// GeneratedEQ applies the EQ predicate on the "generated" field.
func GeneratedEQ(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldGenerated, v))
}

// GeneratedNEQ applies the NEQ predicate on the "generated" field.
func GeneratedNEQ(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldGenerated, v))
}

// GeneratedIn applies the In predicate on the "generated" field.
func GeneratedIn(vs ...time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldGenerated, vs...))
}

// GeneratedNotIn applies the NotIn predicate on the "generated" field.
func GeneratedNotIn(vs ...time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldGenerated, vs...))
}

// GeneratedGT applies the GT predicate on the "generated" field.
func GeneratedGT(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldGenerated, v))
}

// GeneratedGTE applies the GTE predicate on the "generated" field.
func GeneratedGTE(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldGenerated, v))
}

// GeneratedLT applies the LT predicate on the "generated" field.
func GeneratedLT(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldGenerated, v))
}

// GeneratedLTE applies the LTE predicate on the "generated" field.
func GeneratedLTE(v time.Time) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldGenerated, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldStatus, vs...))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.LearningPath {
	return predicate.LearningPath(sql.FieldLTE(FieldProgress, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningPath) predicate.LearningPath {
	return predicate.LearningPath(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningPath) predicate.LearningPath {
	return predicate.LearningPath(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningPath) predicate.LearningPath {
	return predicate.LearningPath(sql.NotPredicates(p))
}
