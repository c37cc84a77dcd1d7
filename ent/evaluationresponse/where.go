// Code generated by ent, DO NOT EDIT.

package evaluationresponse

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldContainsFold(FieldID, id))
}

// EvaluationID applies equality check predicate on the "evaluation_id" field. It's identical to EvaluationIDEQ.
func EvaluationID(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldEQ(FieldEvaluationID, v))
}

// ParticipantID applies equality check predicate on the "participant_id" field. It's identical to ParticipantIDEQ.
func ParticipantID(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldEQ(FieldParticipantID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldEQ(FieldUserID, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldEQ(FieldSubmittedAt, v))
}

// EvaluationIDEQ applies the EQ predicate on the "evaluation_id" field.
func EvaluationIDEQ(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldEQ(FieldEvaluationID, v))
}

// EvaluationIDNEQ applies the NEQ predicate on the "evaluation_id" field.
func EvaluationIDNEQ(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldNEQ(FieldEvaluationID, v))
}

// EvaluationIDIn applies the In predicate on the "evaluation_id" field.
func EvaluationIDIn(vs ...string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldIn(FieldEvaluationID, vs...))
}

// EvaluationIDNotIn applies the NotIn predicate on the "evaluation_id" field.
func EvaluationIDNotIn(vs ...string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldNotIn(FieldEvaluationID, vs...))
}

// EvaluationIDGT applies the GT predicate on the "evaluation_id" field.
func EvaluationIDGT(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldGT(FieldEvaluationID, v))
}

// EvaluationIDGTE applies the GTE predicate on the "evaluation_id" field.
func EvaluationIDGTE(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldGTE(FieldEvaluationID, v))
}

// EvaluationIDLT applies the LT predicate on the "evaluation_id" field.
func EvaluationIDLT(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldLT(FieldEvaluationID, v))
}

// EvaluationIDLTE applies the LTE predicate on the "evaluation_id" field.
func EvaluationIDLTE(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldLTE(FieldEvaluationID, v))
}

// EvaluationIDContains applies the Contains predicate on the "evaluation_id" field.
func EvaluationIDContains(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldContains(FieldEvaluationID, v))
}

// EvaluationIDHasPrefix applies the HasPrefix predicate on the "evaluation_id" field.
func EvaluationIDHasPrefix(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldHasPrefix(FieldEvaluationID, v))
}

// EvaluationIDHasSuffix applies the HasSuffix predicate on the "evaluation_id" field.
func EvaluationIDHasSuffix(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldHasSuffix(FieldEvaluationID, v))
}

// EvaluationIDEqualFold applies the EqualFold predicate on the "evaluation_id" field.
func EvaluationIDEqualFold(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldEqualFold(FieldEvaluationID, v))
}

// EvaluationIDContainsFold applies the ContainsFold predicate on the "evaluation_id" field.
func EvaluationIDContainsFold(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldContainsFold(FieldEvaluationID, v))
}

// ParticipantIDEQ applies the EQ predicate on the "participant_id" field.
func ParticipantIDEQ(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldEQ(FieldParticipantID, v))
}

// ParticipantIDNEQ applies the NEQ predicate on the "participant_id" field.
func ParticipantIDNEQ(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldNEQ(FieldParticipantID, v))
}

// ParticipantIDIn applies the In predicate on the "participant_id" field.
func ParticipantIDIn(vs ...string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldIn(FieldParticipantID, vs...))
}

// ParticipantIDNotIn applies the NotIn predicate on the "participant_id" field.
func ParticipantIDNotIn(vs ...string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldNotIn(FieldParticipantID, vs...))
}

// ParticipantIDGT applies the GT predicate on the "participant_id" field.
func ParticipantIDGT(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldGT(FieldParticipantID, v))
}

// ParticipantIDGTE applies the GTE predicate on the "participant_id" field.
func ParticipantIDGTE(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldGTE(FieldParticipantID, v))
}

// ParticipantIDLT applies the LT predicate on the "participant_id" field.
func ParticipantIDLT(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldLT(FieldParticipantID, v))
}

// ParticipantIDLTE applies the LTE predicate on the "participant_id" field.
func ParticipantIDLTE(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldLTE(FieldParticipantID, v))
}

// ParticipantIDContains applies the Contains predicate on the "participant_id" field.
func ParticipantIDContains(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldContains(FieldParticipantID, v))
}

// ParticipantIDHasPrefix applies the HasPrefix predicate on the "participant_id" field.
func ParticipantIDHasPrefix(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldHasPrefix(FieldParticipantID, v))
}

// ParticipantIDHasSuffix applies the HasSuffix predicate on the "participant_id" field.
func ParticipantIDHasSuffix(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldHasSuffix(FieldParticipantID, v))
}

// ParticipantIDEqualFold applies the EqualFold predicate on the "participant_id" field.
func ParticipantIDEqualFold(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldEqualFold(FieldParticipantID, v))
}

// ParticipantIDContainsFold applies the ContainsFold predicate on the "participant_id" field.
func ParticipantIDContainsFold(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldContainsFold(FieldParticipantID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldContainsFold(FieldUserID, v))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.FieldLTE(FieldSubmittedAt, v))
}

// HasEvaluation applies the HasEdge predicate on the "evaluation" edge.
func HasEvaluation() predicate.EvaluationResponse {
	return predicate.EvaluationResponse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EvaluationTable, EvaluationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationWith applies the HasEdge predicate on the "evaluation" edge with a given conditions (other predicates).
func HasEvaluationWith(preds ...predicate.EvaluationInstance) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(func(s *sql.Selector) {
		step := newEvaluationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvaluationResponse) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvaluationResponse) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvaluationResponse) predicate.EvaluationResponse {
	return predicate.EvaluationResponse(sql.NotPredicates(p))
}
