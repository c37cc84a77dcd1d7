// Code generated by ent, DO NOT EDIT.

package applicationpipelinestate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldTenantID, v))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldApplicationID, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldJobID, v))
}

// PipelineID applies equality check predicate on the "pipeline_id" field. It's identical to PipelineIDEQ.
func PipelineID(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldPipelineID, v))
}

// CurrentStageID applies equality check predicate on the "current_stage_id" field. It's identical to CurrentStageIDEQ.
func CurrentStageID(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldCurrentStageID, v))
}

// StatusCode applies equality check predicate on the "status_code" field. It's identical to StatusCodeEQ.
func StatusCode(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldStatusCode, v))
}

// IsTerminal applies equality check predicate on the "is_terminal" field. It's identical to IsTerminalEQ.
func IsTerminal(v bool) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldIsTerminal, v))
}

// EnteredStageAt applies equality check predicate on the "entered_stage_at" field. It's identical to EnteredStageAtEQ.
func EnteredStageAt(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldEnteredStageAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldContainsFold(FieldTenantID, v))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNotIn(FieldApplicationID, vs...))
}

// ApplicationIDGT applies the GT predicate on the "application_id" field.
func ApplicationIDGT(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGT(FieldApplicationID, v))
}

// ApplicationIDGTE applies the GTE predicate on the "application_id" field.
func ApplicationIDGTE(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGTE(FieldApplicationID, v))
}

// ApplicationIDLT applies the LT predicate on the "application_id" field.
func ApplicationIDLT(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLT(FieldApplicationID, v))
}

// ApplicationIDLTE applies the LTE predicate on the "application_id" field.
func ApplicationIDLTE(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLTE(FieldApplicationID, v))
}

// ApplicationIDContains applies the Contains predicate on the "application_id" field.
func ApplicationIDContains(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldContains(FieldApplicationID, v))
}

// ApplicationIDHasPrefix applies the HasPrefix predicate on the "application_id" field.
func ApplicationIDHasPrefix(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldHasPrefix(FieldApplicationID, v))
}

// ApplicationIDHasSuffix applies the HasSuffix predicate on the "application_id" field.
func ApplicationIDHasSuffix(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldHasSuffix(FieldApplicationID, v))
}

// ApplicationIDEqualFold applies the EqualFold predicate on the "application_id" field.
func ApplicationIDEqualFold(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEqualFold(FieldApplicationID, v))
}

// ApplicationIDContainsFold applies the ContainsFold predicate on the "application_id" field.
func ApplicationIDContainsFold(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldContainsFold(FieldApplicationID, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldContainsFold(FieldJobID, v))
}

// PipelineIDEQ applies the EQ predicate on the "pipeline_id" field.
func PipelineIDEQ(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldPipelineID, v))
}

// PipelineIDNEQ applies the NEQ predicate on the "pipeline_id" field.
func PipelineIDNEQ(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNEQ(FieldPipelineID, v))
}

// PipelineIDIn applies the In predicate on the "pipeline_id" field.
func PipelineIDIn(vs ...string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldIn(FieldPipelineID, vs...))
}

// PipelineIDNotIn applies the NotIn predicate on the "pipeline_id" field.
func PipelineIDNotIn(vs ...string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNotIn(FieldPipelineID, vs...))
}

// PipelineIDGT applies the GT predicate on the "pipeline_id" field.
func PipelineIDGT(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGT(FieldPipelineID, v))
}

// PipelineIDGTE applies the GTE predicate on the "pipeline_id" field.
func PipelineIDGTE(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGTE(FieldPipelineID, v))
}

// PipelineIDLT applies the LT predicate on the "pipeline_id" field.
func PipelineIDLT(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLT(FieldPipelineID, v))
}

// PipelineIDLTE applies the LTE predicate on the "pipeline_id" field.
func PipelineIDLTE(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLTE(FieldPipelineID, v))
}

// PipelineIDContains applies the Contains predicate on the "pipeline_id" field.
func PipelineIDContains(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldContains(FieldPipelineID, v))
}

// PipelineIDHasPrefix applies the HasPrefix predicate on the "pipeline_id" field.
func PipelineIDHasPrefix(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldHasPrefix(FieldPipelineID, v))
}

// PipelineIDHasSuffix applies the HasSuffix predicate on the "pipeline_id" field.
func PipelineIDHasSuffix(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldHasSuffix(FieldPipelineID, v))
}

// PipelineIDEqualFold applies the EqualFold predicate on the "pipeline_id" field.
func PipelineIDEqualFold(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEqualFold(FieldPipelineID, v))
}

// PipelineIDContainsFold applies the ContainsFold predicate on the "pipeline_id" field.
func PipelineIDContainsFold(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldContainsFold(FieldPipelineID, v))
}

// CurrentStageIDEQ applies the EQ predicate on the "current_stage_id" field.
func CurrentStageIDEQ(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldCurrentStageID, v))
}

// CurrentStageIDNEQ applies the NEQ predicate on the "current_stage_id" field.
func CurrentStageIDNEQ(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNEQ(FieldCurrentStageID, v))
}

// CurrentStageIDIn applies the In predicate on the "current_stage_id" field.
func CurrentStageIDIn(vs ...string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldIn(FieldCurrentStageID, vs...))
}

// CurrentStageIDNotIn applies the NotIn predicate on the "current_stage_id" field.
func CurrentStageIDNotIn(vs ...string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNotIn(FieldCurrentStageID, vs...))
}

// CurrentStageIDGT applies the GT predicate on the "current_stage_id" field.
func CurrentStageIDGT(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGT(FieldCurrentStageID, v))
}

// CurrentStageIDGTE applies the GTE predicate on the "current_stage_id" field.
func CurrentStageIDGTE(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGTE(FieldCurrentStageID, v))
}

// CurrentStageIDLT applies the LT predicate on the "current_stage_id" field.
func CurrentStageIDLT(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLT(FieldCurrentStageID, v))
}

// CurrentStageIDLTE applies the LTE predicate on the "current_stage_id" field.
func CurrentStageIDLTE(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLTE(FieldCurrentStageID, v))
}

// CurrentStageIDContains applies the Contains predicate on the "current_stage_id" field.
func CurrentStageIDContains(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldContains(FieldCurrentStageID, v))
}

// CurrentStageIDHasPrefix applies the HasPrefix predicate on the "current_stage_id" field.
func CurrentStageIDHasPrefix(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldHasPrefix(FieldCurrentStageID, v))
}

// CurrentStageIDHasSuffix applies the HasSuffix predicate on the "current_stage_id" field.
func CurrentStageIDHasSuffix(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldHasSuffix(FieldCurrentStageID, v))
}

// CurrentStageIDEqualFold applies the EqualFold predicate on the "current_stage_id" field.
func CurrentStageIDEqualFold(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEqualFold(FieldCurrentStageID, v))
}

// CurrentStageIDContainsFold applies the ContainsFold predicate on the "current_stage_id" field.
func CurrentStageIDContainsFold(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldContainsFold(FieldCurrentStageID, v))
}

// StatusCodeEQ applies the EQ predicate on the "status_code" field.
func StatusCodeEQ(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldStatusCode, v))
}

// StatusCodeNEQ applies the NEQ predicate on the "status_code" field.
func StatusCodeNEQ(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNEQ(FieldStatusCode, v))
}

// StatusCodeIn applies the In predicate on the "status_code" field.
func StatusCodeIn(vs ...string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldIn(FieldStatusCode, vs...))
}

// StatusCodeNotIn applies the NotIn predicate on the "status_code" field.
func StatusCodeNotIn(vs ...string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNotIn(FieldStatusCode, vs...))
}

// StatusCodeGT applies the GT predicate on the "status_code" field.
func StatusCodeGT(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGT(FieldStatusCode, v))
}

// StatusCodeGTE applies the GTE predicate on the "status_code" field.
func StatusCodeGTE(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGTE(FieldStatusCode, v))
}

// StatusCodeLT applies the LT predicate on the "status_code" field.
func StatusCodeLT(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLT(FieldStatusCode, v))
}

// StatusCodeLTE applies the LTE predicate on the "status_code" field.
func StatusCodeLTE(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLTE(FieldStatusCode, v))
}

// StatusCodeContains applies the Contains predicate on the "status_code" field.
func StatusCodeContains(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldContains(FieldStatusCode, v))
}

// StatusCodeHasPrefix applies the HasPrefix predicate on the "status_code" field.
func StatusCodeHasPrefix(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldHasPrefix(FieldStatusCode, v))
}

// StatusCodeHasSuffix applies the HasSuffix predicate on the "status_code" field.
func StatusCodeHasSuffix(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldHasSuffix(FieldStatusCode, v))
}

// StatusCodeEqualFold applies the EqualFold predicate on the "status_code" field.
func StatusCodeEqualFold(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEqualFold(FieldStatusCode, v))
}

// StatusCodeContainsFold applies the ContainsFold predicate on the "status_code" field.
func StatusCodeContainsFold(v string) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldContainsFold(FieldStatusCode, v))
}

// OutcomeTypeEQ applies the EQ predicate on the "outcome_type" field.
func OutcomeTypeEQ(v models.OutcomeType) predicate.ApplicationPipelineState {
	vc := v
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldOutcomeType, vc))
}

// OutcomeTypeNEQ applies the NEQ predicate on the "outcome_type" field.
func OutcomeTypeNEQ(v models.OutcomeType) predicate.ApplicationPipelineState {
	vc := v
	return predicate.ApplicationPipelineState(sql.FieldNEQ(FieldOutcomeType, vc))
}

// OutcomeTypeIn applies the In predicate on the "outcome_type" field.
func OutcomeTypeIn(vs ...models.OutcomeType) predicate.ApplicationPipelineState {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.ApplicationPipelineState(sql.FieldIn(FieldOutcomeType, v...))
}

// OutcomeTypeNotIn applies the NotIn predicate on the "outcome_type" field.
func OutcomeTypeNotIn(vs ...models.OutcomeType) predicate.ApplicationPipelineState {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.ApplicationPipelineState(sql.FieldNotIn(FieldOutcomeType, v...))
}

// IsTerminalEQ applies the EQ predicate on the "is_terminal" field.
func IsTerminalEQ(v bool) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldIsTerminal, v))
}

// IsTerminalNEQ applies the NEQ predicate on the "is_terminal" field.
func IsTerminalNEQ(v bool) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNEQ(FieldIsTerminal, v))
}

// EnteredStageAtEQ applies the EQ predicate on the "entered_stage_at" field.
func EnteredStageAtEQ(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldEnteredStageAt, v))
}

// EnteredStageAtNEQ applies the NEQ predicate on the "entered_stage_at" field.
func EnteredStageAtNEQ(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNEQ(FieldEnteredStageAt, v))
}

// EnteredStageAtIn applies the In predicate on the "entered_stage_at" field.
func EnteredStageAtIn(vs ...time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldIn(FieldEnteredStageAt, vs...))
}

// EnteredStageAtNotIn applies the NotIn predicate on the "entered_stage_at" field.
func EnteredStageAtNotIn(vs ...time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNotIn(FieldEnteredStageAt, vs...))
}

// EnteredStageAtGT applies the GT predicate on the "entered_stage_at" field.
func EnteredStageAtGT(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGT(FieldEnteredStageAt, v))
}

// EnteredStageAtGTE applies the GTE predicate on the "entered_stage_at" field.
func EnteredStageAtGTE(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGTE(FieldEnteredStageAt, v))
}

// EnteredStageAtLT applies the LT predicate on the "entered_stage_at" field.
func EnteredStageAtLT(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLT(FieldEnteredStageAt, v))
}

// EnteredStageAtLTE applies the LTE predicate on the "entered_stage_at" field.
func EnteredStageAtLTE(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLTE(FieldEnteredStageAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApplicationPipelineState) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApplicationPipelineState) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApplicationPipelineState) predicate.ApplicationPipelineState {
	return predicate.ApplicationPipelineState(sql.NotPredicates(p))
}
