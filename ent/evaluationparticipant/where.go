// Code generated by ent, DO NOT EDIT.

package evaluationparticipant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldContainsFold(FieldID, id))
}

// EvaluationID applies equality check predicate on the "evaluation_id" field. It's identical to EvaluationIDEQ.
func EvaluationID(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldEQ(FieldEvaluationID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldEQ(FieldUserID, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldEQ(FieldSequence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldEQ(FieldUpdatedAt, v))
}

// EvaluationIDEQ applies the EQ predicate on the "evaluation_id" field.
func EvaluationIDEQ(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldEQ(FieldEvaluationID, v))
}

// EvaluationIDNEQ applies the NEQ predicate on the "evaluation_id" field.
func EvaluationIDNEQ(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldNEQ(FieldEvaluationID, v))
}

// EvaluationIDIn applies the In predicate on the "evaluation_id" field.
func EvaluationIDIn(vs ...string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldIn(FieldEvaluationID, vs...))
}

// EvaluationIDNotIn applies the NotIn predicate on the "evaluation_id" field.
func EvaluationIDNotIn(vs ...string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldNotIn(FieldEvaluationID, vs...))
}

// EvaluationIDGT applies the GT predicate on the "evaluation_id" field.
func EvaluationIDGT(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldGT(FieldEvaluationID, v))
}

// EvaluationIDGTE applies the GTE predicate on the "evaluation_id" field.
func EvaluationIDGTE(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldGTE(FieldEvaluationID, v))
}

// EvaluationIDLT applies the LT predicate on the "evaluation_id" field.
func EvaluationIDLT(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldLT(FieldEvaluationID, v))
}

// EvaluationIDLTE applies the LTE predicate on the "evaluation_id" field.
func EvaluationIDLTE(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldLTE(FieldEvaluationID, v))
}

// EvaluationIDContains applies the Contains predicate on the "evaluation_id" field.
func EvaluationIDContains(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldContains(FieldEvaluationID, v))
}

// EvaluationIDHasPrefix applies the HasPrefix predicate on the "evaluation_id" field.
func EvaluationIDHasPrefix(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldHasPrefix(FieldEvaluationID, v))
}

// EvaluationIDHasSuffix applies the HasSuffix predicate on the "evaluation_id" field.
func EvaluationIDHasSuffix(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldHasSuffix(FieldEvaluationID, v))
}

// EvaluationIDEqualFold applies the EqualFold predicate on the "evaluation_id" field.
func EvaluationIDEqualFold(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldEqualFold(FieldEvaluationID, v))
}

// EvaluationIDContainsFold applies the ContainsFold predicate on the "evaluation_id" field.
func EvaluationIDContainsFold(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldContainsFold(FieldEvaluationID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldContainsFold(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v models.ParticipantStatus) predicate.EvaluationParticipant {
	vc := v
	return predicate.EvaluationParticipant(sql.FieldEQ(FieldStatus, vc))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v models.ParticipantStatus) predicate.EvaluationParticipant {
	vc := v
	return predicate.EvaluationParticipant(sql.FieldNEQ(FieldStatus, vc))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...models.ParticipantStatus) predicate.EvaluationParticipant {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.EvaluationParticipant(sql.FieldIn(FieldStatus, v...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...models.ParticipantStatus) predicate.EvaluationParticipant {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.EvaluationParticipant(sql.FieldNotIn(FieldStatus, v...))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldLTE(FieldSequence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEvaluation applies the HasEdge predicate on the "evaluation" edge.
func HasEvaluation() predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EvaluationTable, EvaluationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationWith applies the HasEdge predicate on the "evaluation" edge with a given conditions (other predicates).
func HasEvaluationWith(preds ...predicate.EvaluationInstance) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(func(s *sql.Selector) {
		step := newEvaluationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvaluationParticipant) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvaluationParticipant) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvaluationParticipant) predicate.EvaluationParticipant {
	return predicate.EvaluationParticipant(sql.NotPredicates(p))
}
