// Code generated by ent, DO NOT EDIT.

package pipelinestage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldContainsFold(FieldID, id))
}

// PipelineID applies equality check predicate on the "pipeline_id" field. It's identical to PipelineIDEQ.
func PipelineID(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldPipelineID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldName, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldOrderIndex, v))
}

// ConductedBy applies equality check predicate on the "conducted_by" field. It's identical to ConductedByEQ.
func ConductedBy(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldConductedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldCreatedAt, v))
}

// PipelineIDEQ applies the EQ predicate on the "pipeline_id" field.
func PipelineIDEQ(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldPipelineID, v))
}

// PipelineIDNEQ applies the NEQ predicate on the "pipeline_id" field.
func PipelineIDNEQ(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNEQ(FieldPipelineID, v))
}

// PipelineIDIn applies the In predicate on the "pipeline_id" field.
func PipelineIDIn(vs ...string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldIn(FieldPipelineID, vs...))
}

// PipelineIDNotIn applies the NotIn predicate on the "pipeline_id" field.
func PipelineIDNotIn(vs ...string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNotIn(FieldPipelineID, vs...))
}

// PipelineIDGT applies the GT predicate on the "pipeline_id" field.
func PipelineIDGT(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldGT(FieldPipelineID, v))
}

// PipelineIDGTE applies the GTE predicate on the "pipeline_id" field.
func PipelineIDGTE(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldGTE(FieldPipelineID, v))
}

// PipelineIDLT applies the LT predicate on the "pipeline_id" field.
func PipelineIDLT(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldLT(FieldPipelineID, v))
}

// PipelineIDLTE applies the LTE predicate on the "pipeline_id" field.
func PipelineIDLTE(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldLTE(FieldPipelineID, v))
}

// PipelineIDContains applies the Contains predicate on the "pipeline_id" field.
func PipelineIDContains(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldContains(FieldPipelineID, v))
}

// PipelineIDHasPrefix applies the HasPrefix predicate on the "pipeline_id" field.
func PipelineIDHasPrefix(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldHasPrefix(FieldPipelineID, v))
}

// PipelineIDHasSuffix applies the HasSuffix predicate on the "pipeline_id" field.
func PipelineIDHasSuffix(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldHasSuffix(FieldPipelineID, v))
}

// PipelineIDEqualFold applies the EqualFold predicate on the "pipeline_id" field.
func PipelineIDEqualFold(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEqualFold(FieldPipelineID, v))
}

// PipelineIDContainsFold applies the ContainsFold predicate on the "pipeline_id" field.
func PipelineIDContainsFold(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldContainsFold(FieldPipelineID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldContainsFold(FieldName, v))
}

// StageTypeEQ applies the EQ predicate on the "stage_type" field.
func StageTypeEQ(v models.StageType) predicate.PipelineStage {
	vc := v
	return predicate.PipelineStage(sql.FieldEQ(FieldStageType, vc))
}

// StageTypeNEQ applies the NEQ predicate on the "stage_type" field.
func StageTypeNEQ(v models.StageType) predicate.PipelineStage {
	vc := v
	return predicate.PipelineStage(sql.FieldNEQ(FieldStageType, vc))
}

// StageTypeIn applies the In predicate on the "stage_type" field.
func StageTypeIn(vs ...models.StageType) predicate.PipelineStage {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.PipelineStage(sql.FieldIn(FieldStageType, v...))
}

// StageTypeNotIn applies the NotIn predicate on the "stage_type" field.
func StageTypeNotIn(vs ...models.StageType) predicate.PipelineStage {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.PipelineStage(sql.FieldNotIn(FieldStageType, v...))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldLTE(FieldOrderIndex, v))
}

// ConductedByEQ applies the EQ predicate on the "conducted_by" field.
func ConductedByEQ(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldConductedBy, v))
}

// ConductedByNEQ applies the NEQ predicate on the "conducted_by" field.
func ConductedByNEQ(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNEQ(FieldConductedBy, v))
}

// ConductedByIn applies the In predicate on the "conducted_by" field.
func ConductedByIn(vs ...string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldIn(FieldConductedBy, vs...))
}

// ConductedByNotIn applies the NotIn predicate on the "conducted_by" field.
func ConductedByNotIn(vs ...string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNotIn(FieldConductedBy, vs...))
}

// ConductedByGT applies the GT predicate on the "conducted_by" field.
func ConductedByGT(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldGT(FieldConductedBy, v))
}

// ConductedByGTE applies the GTE predicate on the "conducted_by" field.
func ConductedByGTE(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldGTE(FieldConductedBy, v))
}

// ConductedByLT applies the LT predicate on the "conducted_by" field.
func ConductedByLT(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldLT(FieldConductedBy, v))
}

// ConductedByLTE applies the LTE predicate on the "conducted_by" field.
func ConductedByLTE(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldLTE(FieldConductedBy, v))
}

// ConductedByContains applies the Contains predicate on the "conducted_by" field.
func ConductedByContains(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldContains(FieldConductedBy, v))
}

// ConductedByHasPrefix applies the HasPrefix predicate on the "conducted_by" field.
func ConductedByHasPrefix(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldHasPrefix(FieldConductedBy, v))
}

// ConductedByHasSuffix applies the HasSuffix predicate on the "conducted_by" field.
func ConductedByHasSuffix(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldHasSuffix(FieldConductedBy, v))
}

// ConductedByIsNil applies the IsNil predicate on the "conducted_by" field.
func ConductedByIsNil() predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldIsNull(FieldConductedBy))
}

// ConductedByNotNil applies the NotNil predicate on the "conducted_by" field.
func ConductedByNotNil() predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNotNull(FieldConductedBy))
}

// ConductedByEqualFold applies the EqualFold predicate on the "conducted_by" field.
func ConductedByEqualFold(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEqualFold(FieldConductedBy, v))
}

// ConductedByContainsFold applies the ContainsFold predicate on the "conducted_by" field.
func ConductedByContainsFold(v string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldContainsFold(FieldConductedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPipeline applies the HasEdge predicate on the "pipeline" edge.
func HasPipeline() predicate.PipelineStage {
	return predicate.PipelineStage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PipelineTable, PipelineColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPipelineWith applies the HasEdge predicate on the "pipeline" edge with a given conditions (other predicates).
func HasPipelineWith(preds ...predicate.Pipeline) predicate.PipelineStage {
	return predicate.PipelineStage(func(s *sql.Selector) {
		step := newPipelineStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineStage) predicate.PipelineStage {
	return predicate.PipelineStage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineStage) predicate.PipelineStage {
	return predicate.PipelineStage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineStage) predicate.PipelineStage {
	return predicate.PipelineStage(sql.NotPredicates(p))
}
