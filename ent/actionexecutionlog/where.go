// Code generated by ent, DO NOT EDIT.

package actionexecutionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldTenantID, v))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldApplicationID, v))
}

// ActionCode applies equality check predicate on the "action_code" field. It's identical to ActionCodeEQ.
func ActionCode(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldActionCode, v))
}

// StageID applies equality check predicate on the "stage_id" field. It's identical to StageIDEQ.
func StageID(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldStageID, v))
}

// FromStageID applies equality check predicate on the "from_stage_id" field. It's identical to FromStageIDEQ.
func FromStageID(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldFromStageID, v))
}

// ToStageID applies equality check predicate on the "to_stage_id" field. It's identical to ToStageIDEQ.
func ToStageID(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldToStageID, v))
}

// IsTerminal applies equality check predicate on the "is_terminal" field. It's identical to IsTerminalEQ.
func IsTerminal(v bool) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldIsTerminal, v))
}

// StatusCode applies equality check predicate on the "status_code" field. It's identical to StatusCodeEQ.
func StatusCode(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldStatusCode, v))
}

// ExecutedBy applies equality check predicate on the "executed_by" field. It's identical to ExecutedByEQ.
func ExecutedBy(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldExecutedBy, v))
}

// DecisionNote applies equality check predicate on the "decision_note" field. It's identical to DecisionNoteEQ.
func DecisionNote(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldDecisionNote, v))
}

// OverrideReason applies equality check predicate on the "override_reason" field. It's identical to OverrideReasonEQ.
func OverrideReason(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldOverrideReason, v))
}

// ReviewedBy applies equality check predicate on the "reviewed_by" field. It's identical to ReviewedByEQ.
func ReviewedBy(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldReviewedBy, v))
}

// ApprovedBy applies equality check predicate on the "approved_by" field. It's identical to ApprovedByEQ.
func ApprovedBy(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldApprovedBy, v))
}

// ExecutedAt applies equality check predicate on the "executed_at" field. It's identical to ExecutedAtEQ.
func ExecutedAt(v time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldExecutedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldTenantID, v))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldApplicationID, vs...))
}

// ApplicationIDGT applies the GT predicate on the "application_id" field.
func ApplicationIDGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldApplicationID, v))
}

// ApplicationIDGTE applies the GTE predicate on the "application_id" field.
func ApplicationIDGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldApplicationID, v))
}

// ApplicationIDLT applies the LT predicate on the "application_id" field.
func ApplicationIDLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldApplicationID, v))
}

// ApplicationIDLTE applies the LTE predicate on the "application_id" field.
func ApplicationIDLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldApplicationID, v))
}

// ApplicationIDContains applies the Contains predicate on the "application_id" field.
func ApplicationIDContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldApplicationID, v))
}

// ApplicationIDHasPrefix applies the HasPrefix predicate on the "application_id" field.
func ApplicationIDHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldApplicationID, v))
}

// ApplicationIDHasSuffix applies the HasSuffix predicate on the "application_id" field.
func ApplicationIDHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldApplicationID, v))
}

// ApplicationIDEqualFold applies the EqualFold predicate on the "application_id" field.
func ApplicationIDEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldApplicationID, v))
}

// ApplicationIDContainsFold applies the ContainsFold predicate on the "application_id" field.
func ApplicationIDContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldApplicationID, v))
}

// ActionCodeEQ applies the EQ predicate on the "action_code" field.
func ActionCodeEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldActionCode, v))
}

// ActionCodeNEQ applies the NEQ predicate on the "action_code" field.
func ActionCodeNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldActionCode, v))
}

// ActionCodeIn applies the In predicate on the "action_code" field.
func ActionCodeIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldActionCode, vs...))
}

// ActionCodeNotIn applies the NotIn predicate on the "action_code" field.
func ActionCodeNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldActionCode, vs...))
}

// ActionCodeGT applies the GT predicate on the "action_code" field.
func ActionCodeGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldActionCode, v))
}

// ActionCodeGTE applies the GTE predicate on the "action_code" field.
func ActionCodeGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldActionCode, v))
}

// ActionCodeLT applies the LT predicate on the "action_code" field.
func ActionCodeLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldActionCode, v))
}

// ActionCodeLTE applies the LTE predicate on the "action_code" field.
func ActionCodeLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldActionCode, v))
}

// ActionCodeContains applies the Contains predicate on the "action_code" field.
func ActionCodeContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldActionCode, v))
}

// ActionCodeHasPrefix applies the HasPrefix predicate on the "action_code" field.
func ActionCodeHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldActionCode, v))
}

// ActionCodeHasSuffix applies the HasSuffix predicate on the "action_code" field.
func ActionCodeHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldActionCode, v))
}

// ActionCodeEqualFold applies the EqualFold predicate on the "action_code" field.
func ActionCodeEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldActionCode, v))
}

// ActionCodeContainsFold applies the ContainsFold predicate on the "action_code" field.
func ActionCodeContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldActionCode, v))
}

// StageIDEQ applies the EQ predicate on the "stage_id" field.
func StageIDEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldStageID, v))
}

// StageIDNEQ applies the NEQ predicate on the "stage_id" field.
func StageIDNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldStageID, v))
}

// StageIDIn applies the In predicate on the "stage_id" field.
func StageIDIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldStageID, vs...))
}

// StageIDNotIn applies the NotIn predicate on the "stage_id" field.
func StageIDNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldStageID, vs...))
}

// StageIDGT applies the GT predicate on the "stage_id" field.
func StageIDGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldStageID, v))
}

// StageIDGTE applies the GTE predicate on the "stage_id" field.
func StageIDGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldStageID, v))
}

// StageIDLT applies the LT predicate on the "stage_id" field.
func StageIDLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldStageID, v))
}

// StageIDLTE applies the LTE predicate on the "stage_id" field.
func StageIDLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldStageID, v))
}

// StageIDContains applies the Contains predicate on the "stage_id" field.
func StageIDContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldStageID, v))
}

// StageIDHasPrefix applies the HasPrefix predicate on the "stage_id" field.
func StageIDHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldStageID, v))
}

// StageIDHasSuffix applies the HasSuffix predicate on the "stage_id" field.
func StageIDHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldStageID, v))
}

// StageIDIsNil applies the IsNil predicate on the "stage_id" field.
func StageIDIsNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIsNull(FieldStageID))
}

// StageIDNotNil applies the NotNil predicate on the "stage_id" field.
func StageIDNotNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotNull(FieldStageID))
}

// StageIDEqualFold applies the EqualFold predicate on the "stage_id" field.
func StageIDEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldStageID, v))
}

// StageIDContainsFold applies the ContainsFold predicate on the "stage_id" field.
func StageIDContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldStageID, v))
}

// FromStageIDEQ applies the EQ predicate on the "from_stage_id" field.
func FromStageIDEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldFromStageID, v))
}

// FromStageIDNEQ applies the NEQ predicate on the "from_stage_id" field.
func FromStageIDNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldFromStageID, v))
}

// FromStageIDIn applies the In predicate on the "from_stage_id" field.
func FromStageIDIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldFromStageID, vs...))
}

// FromStageIDNotIn applies the NotIn predicate on the "from_stage_id" field.
func FromStageIDNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldFromStageID, vs...))
}

// FromStageIDGT applies the GT predicate on the "from_stage_id" field.
func FromStageIDGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldFromStageID, v))
}

// FromStageIDGTE applies the GTE predicate on the "from_stage_id" field.
func FromStageIDGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldFromStageID, v))
}

// FromStageIDLT applies the LT predicate on the "from_stage_id" field.
func FromStageIDLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldFromStageID, v))
}

// FromStageIDLTE applies the LTE predicate on the "from_stage_id" field.
func FromStageIDLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldFromStageID, v))
}

// FromStageIDContains applies the Contains predicate on the "from_stage_id" field.
func FromStageIDContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldFromStageID, v))
}

// FromStageIDHasPrefix applies the HasPrefix predicate on the "from_stage_id" field.
func FromStageIDHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldFromStageID, v))
}

// FromStageIDHasSuffix applies the HasSuffix predicate on the "from_stage_id" field.
func FromStageIDHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldFromStageID, v))
}

// FromStageIDIsNil applies the IsNil predicate on the "from_stage_id" field.
func FromStageIDIsNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIsNull(FieldFromStageID))
}

// FromStageIDNotNil applies the NotNil predicate on the "from_stage_id" field.
func FromStageIDNotNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotNull(FieldFromStageID))
}

// FromStageIDEqualFold applies the EqualFold predicate on the "from_stage_id" field.
func FromStageIDEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldFromStageID, v))
}

// FromStageIDContainsFold applies the ContainsFold predicate on the "from_stage_id" field.
func FromStageIDContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldFromStageID, v))
}

// ToStageIDEQ applies the EQ predicate on the "to_stage_id" field.
func ToStageIDEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldToStageID, v))
}

// ToStageIDNEQ applies the NEQ predicate on the "to_stage_id" field.
func ToStageIDNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldToStageID, v))
}

// ToStageIDIn applies the In predicate on the "to_stage_id" field.
func ToStageIDIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldToStageID, vs...))
}

// ToStageIDNotIn applies the NotIn predicate on the "to_stage_id" field.
func ToStageIDNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldToStageID, vs...))
}

// ToStageIDGT applies the GT predicate on the "to_stage_id" field.
func ToStageIDGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldToStageID, v))
}

// ToStageIDGTE applies the GTE predicate on the "to_stage_id" field.
func ToStageIDGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldToStageID, v))
}

// ToStageIDLT applies the LT predicate on the "to_stage_id" field.
func ToStageIDLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldToStageID, v))
}

// ToStageIDLTE applies the LTE predicate on the "to_stage_id" field.
func ToStageIDLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldToStageID, v))
}

// ToStageIDContains applies the Contains predicate on the "to_stage_id" field.
func ToStageIDContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldToStageID, v))
}

// ToStageIDHasPrefix applies the HasPrefix predicate on the "to_stage_id" field.
func ToStageIDHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldToStageID, v))
}

// ToStageIDHasSuffix applies the HasSuffix predicate on the "to_stage_id" field.
func ToStageIDHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldToStageID, v))
}

// ToStageIDIsNil applies the IsNil predicate on the "to_stage_id" field.
func ToStageIDIsNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIsNull(FieldToStageID))
}

// ToStageIDNotNil applies the NotNil predicate on the "to_stage_id" field.
func ToStageIDNotNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotNull(FieldToStageID))
}

// ToStageIDEqualFold applies the EqualFold predicate on the "to_stage_id" field.
func ToStageIDEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldToStageID, v))
}

// ToStageIDContainsFold applies the ContainsFold predicate on the "to_stage_id" field.
func ToStageIDContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldToStageID, v))
}

// OutcomeTypeEQ applies the EQ predicate on the "outcome_type" field.
func OutcomeTypeEQ(v models.OutcomeType) predicate.ActionExecutionLog {
	vc := v
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldOutcomeType, vc))
}

// OutcomeTypeNEQ applies the NEQ predicate on the "outcome_type" field.
func OutcomeTypeNEQ(v models.OutcomeType) predicate.ActionExecutionLog {
	vc := v
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldOutcomeType, vc))
}

// OutcomeTypeIn applies the In predicate on the "outcome_type" field.
func OutcomeTypeIn(vs ...models.OutcomeType) predicate.ActionExecutionLog {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.ActionExecutionLog(sql.FieldIn(FieldOutcomeType, v...))
}

// OutcomeTypeNotIn applies the NotIn predicate on the "outcome_type" field.
func OutcomeTypeNotIn(vs ...models.OutcomeType) predicate.ActionExecutionLog {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldOutcomeType, v...))
}

// IsTerminalEQ applies the EQ predicate on the "is_terminal" field.
func IsTerminalEQ(v bool) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldIsTerminal, v))
}

// IsTerminalNEQ applies the NEQ predicate on the "is_terminal" field.
func IsTerminalNEQ(v bool) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldIsTerminal, v))
}

// StatusCodeEQ applies the EQ predicate on the "status_code" field.
func StatusCodeEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldStatusCode, v))
}

// StatusCodeNEQ applies the NEQ predicate on the "status_code" field.
func StatusCodeNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldStatusCode, v))
}

// StatusCodeIn applies the In predicate on the "status_code" field.
func StatusCodeIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldStatusCode, vs...))
}

// StatusCodeNotIn applies the NotIn predicate on the "status_code" field.
func StatusCodeNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldStatusCode, vs...))
}

// StatusCodeGT applies the GT predicate on the "status_code" field.
func StatusCodeGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldStatusCode, v))
}

// StatusCodeGTE applies the GTE predicate on the "status_code" field.
func StatusCodeGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldStatusCode, v))
}

// StatusCodeLT applies the LT predicate on the "status_code" field.
func StatusCodeLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldStatusCode, v))
}

// StatusCodeLTE applies the LTE predicate on the "status_code" field.
func StatusCodeLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldStatusCode, v))
}

// StatusCodeContains applies the Contains predicate on the "status_code" field.
func StatusCodeContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldStatusCode, v))
}

// StatusCodeHasPrefix applies the HasPrefix predicate on the "status_code" field.
func StatusCodeHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldStatusCode, v))
}

// StatusCodeHasSuffix applies the HasSuffix predicate on the "status_code" field.
func StatusCodeHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldStatusCode, v))
}

// StatusCodeEqualFold applies the EqualFold predicate on the "status_code" field.
func StatusCodeEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldStatusCode, v))
}

// StatusCodeContainsFold applies the ContainsFold predicate on the "status_code" field.
func StatusCodeContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldStatusCode, v))
}

// ExecutedByEQ applies the EQ predicate on the "executed_by" field.
func ExecutedByEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldExecutedBy, v))
}

// ExecutedByNEQ applies the NEQ predicate on the "executed_by" field.
func ExecutedByNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldExecutedBy, v))
}

// ExecutedByIn applies the In predicate on the "executed_by" field.
func ExecutedByIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldExecutedBy, vs...))
}

// ExecutedByNotIn applies the NotIn predicate on the "executed_by" field.
func ExecutedByNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldExecutedBy, vs...))
}

// ExecutedByGT applies the GT predicate on the "executed_by" field.
func ExecutedByGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldExecutedBy, v))
}

// ExecutedByGTE applies the GTE predicate on the "executed_by" field.
func ExecutedByGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldExecutedBy, v))
}

// ExecutedByLT applies the LT predicate on the "executed_by" field.
func ExecutedByLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldExecutedBy, v))
}

// ExecutedByLTE applies the LTE predicate on the "executed_by" field.
func ExecutedByLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldExecutedBy, v))
}

// ExecutedByContains applies the Contains predicate on the "executed_by" field.
func ExecutedByContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldExecutedBy, v))
}

// ExecutedByHasPrefix applies the HasPrefix predicate on the "executed_by" field.
func ExecutedByHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldExecutedBy, v))
}

// ExecutedByHasSuffix applies the HasSuffix predicate on the "executed_by" field.
func ExecutedByHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldExecutedBy, v))
}

// ExecutedByEqualFold applies the EqualFold predicate on the "executed_by" field.
func ExecutedByEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldExecutedBy, v))
}

// ExecutedByContainsFold applies the ContainsFold predicate on the "executed_by" field.
func ExecutedByContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldExecutedBy, v))
}

// DecisionNoteEQ applies the EQ predicate on the "decision_note" field.
func DecisionNoteEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldDecisionNote, v))
}

// DecisionNoteNEQ applies the NEQ predicate on the "decision_note" field.
func DecisionNoteNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldDecisionNote, v))
}

// DecisionNoteIn applies the In predicate on the "decision_note" field.
func DecisionNoteIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldDecisionNote, vs...))
}

// DecisionNoteNotIn applies the NotIn predicate on the "decision_note" field.
func DecisionNoteNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldDecisionNote, vs...))
}

// DecisionNoteGT applies the GT predicate on the "decision_note" field.
func DecisionNoteGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldDecisionNote, v))
}

// DecisionNoteGTE applies the GTE predicate on the "decision_note" field.
func DecisionNoteGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldDecisionNote, v))
}

// DecisionNoteLT applies the LT predicate on the "decision_note" field.
func DecisionNoteLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldDecisionNote, v))
}

// DecisionNoteLTE applies the LTE predicate on the "decision_note" field.
func DecisionNoteLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldDecisionNote, v))
}

// DecisionNoteContains applies the Contains predicate on the "decision_note" field.
func DecisionNoteContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldDecisionNote, v))
}

// DecisionNoteHasPrefix applies the HasPrefix predicate on the "decision_note" field.
func DecisionNoteHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldDecisionNote, v))
}

// DecisionNoteHasSuffix applies the HasSuffix predicate on the "decision_note" field.
func DecisionNoteHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldDecisionNote, v))
}

// DecisionNoteIsNil applies the IsNil predicate on the "decision_note" field.
func DecisionNoteIsNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIsNull(FieldDecisionNote))
}

// DecisionNoteNotNil applies the NotNil predicate on the "decision_note" field.
func DecisionNoteNotNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotNull(FieldDecisionNote))
}

// DecisionNoteEqualFold applies the EqualFold predicate on the "decision_note" field.
func DecisionNoteEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldDecisionNote, v))
}

// DecisionNoteContainsFold applies the ContainsFold predicate on the "decision_note" field.
func DecisionNoteContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldDecisionNote, v))
}

// OverrideReasonEQ applies the EQ predicate on the "override_reason" field.
func OverrideReasonEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldOverrideReason, v))
}

// OverrideReasonNEQ applies the NEQ predicate on the "override_reason" field.
func OverrideReasonNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldOverrideReason, v))
}

// OverrideReasonIn applies the In predicate on the "override_reason" field.
func OverrideReasonIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldOverrideReason, vs...))
}

// OverrideReasonNotIn applies the NotIn predicate on the "override_reason" field.
func OverrideReasonNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldOverrideReason, vs...))
}

// OverrideReasonGT applies the GT predicate on the "override_reason" field.
func OverrideReasonGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldOverrideReason, v))
}

// OverrideReasonGTE applies the GTE predicate on the "override_reason" field.
func OverrideReasonGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldOverrideReason, v))
}

// OverrideReasonLT applies the LT predicate on the "override_reason" field.
func OverrideReasonLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldOverrideReason, v))
}

// OverrideReasonLTE applies the LTE predicate on the "override_reason" field.
func OverrideReasonLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldOverrideReason, v))
}

// OverrideReasonContains applies the Contains predicate on the "override_reason" field.
func OverrideReasonContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldOverrideReason, v))
}

// OverrideReasonHasPrefix applies the HasPrefix predicate on the "override_reason" field.
func OverrideReasonHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldOverrideReason, v))
}

// OverrideReasonHasSuffix applies the HasSuffix predicate on the "override_reason" field.
func OverrideReasonHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldOverrideReason, v))
}

// OverrideReasonIsNil applies the IsNil predicate on the "override_reason" field.
func OverrideReasonIsNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIsNull(FieldOverrideReason))
}

// OverrideReasonNotNil applies the NotNil predicate on the "override_reason" field.
func OverrideReasonNotNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotNull(FieldOverrideReason))
}

// OverrideReasonEqualFold applies the EqualFold predicate on the "override_reason" field.
func OverrideReasonEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldOverrideReason, v))
}

// OverrideReasonContainsFold applies the ContainsFold predicate on the "override_reason" field.
func OverrideReasonContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldOverrideReason, v))
}

// ReviewedByEQ applies the EQ predicate on the "reviewed_by" field.
func ReviewedByEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedByNEQ applies the NEQ predicate on the "reviewed_by" field.
func ReviewedByNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldReviewedBy, v))
}

// ReviewedByIn applies the In predicate on the "reviewed_by" field.
func ReviewedByIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldReviewedBy, vs...))
}

// ReviewedByNotIn applies the NotIn predicate on the "reviewed_by" field.
func ReviewedByNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldReviewedBy, vs...))
}

// ReviewedByGT applies the GT predicate on the "reviewed_by" field.
func ReviewedByGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldReviewedBy, v))
}

// ReviewedByGTE applies the GTE predicate on the "reviewed_by" field.
func ReviewedByGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldReviewedBy, v))
}

// ReviewedByLT applies the LT predicate on the "reviewed_by" field.
func ReviewedByLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldReviewedBy, v))
}

// ReviewedByLTE applies the LTE predicate on the "reviewed_by" field.
func ReviewedByLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldReviewedBy, v))
}

// ReviewedByContains applies the Contains predicate on the "reviewed_by" field.
func ReviewedByContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldReviewedBy, v))
}

// ReviewedByHasPrefix applies the HasPrefix predicate on the "reviewed_by" field.
func ReviewedByHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldReviewedBy, v))
}

// ReviewedByHasSuffix applies the HasSuffix predicate on the "reviewed_by" field.
func ReviewedByHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldReviewedBy, v))
}

// ReviewedByIsNil applies the IsNil predicate on the "reviewed_by" field.
func ReviewedByIsNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIsNull(FieldReviewedBy))
}

// ReviewedByNotNil applies the NotNil predicate on the "reviewed_by" field.
func ReviewedByNotNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotNull(FieldReviewedBy))
}

// ReviewedByEqualFold applies the EqualFold predicate on the "reviewed_by" field.
func ReviewedByEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldReviewedBy, v))
}

// ReviewedByContainsFold applies the ContainsFold predicate on the "reviewed_by" field.
func ReviewedByContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldReviewedBy, v))
}

// ApprovedByEQ applies the EQ predicate on the "approved_by" field.
func ApprovedByEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldApprovedBy, v))
}

// ApprovedByNEQ applies the NEQ predicate on the "approved_by" field.
func ApprovedByNEQ(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldApprovedBy, v))
}

// ApprovedByIn applies the In predicate on the "approved_by" field.
func ApprovedByIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldApprovedBy, vs...))
}

// ApprovedByNotIn applies the NotIn predicate on the "approved_by" field.
func ApprovedByNotIn(vs ...string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldApprovedBy, vs...))
}

// ApprovedByGT applies the GT predicate on the "approved_by" field.
func ApprovedByGT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldApprovedBy, v))
}

// ApprovedByGTE applies the GTE predicate on the "approved_by" field.
func ApprovedByGTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldApprovedBy, v))
}

// ApprovedByLT applies the LT predicate on the "approved_by" field.
func ApprovedByLT(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldApprovedBy, v))
}

// ApprovedByLTE applies the LTE predicate on the "approved_by" field.
func ApprovedByLTE(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldApprovedBy, v))
}

// ApprovedByContains applies the Contains predicate on the "approved_by" field.
func ApprovedByContains(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContains(FieldApprovedBy, v))
}

// ApprovedByHasPrefix applies the HasPrefix predicate on the "approved_by" field.
func ApprovedByHasPrefix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasPrefix(FieldApprovedBy, v))
}

// ApprovedByHasSuffix applies the HasSuffix predicate on the "approved_by" field.
func ApprovedByHasSuffix(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldHasSuffix(FieldApprovedBy, v))
}

// ApprovedByIsNil applies the IsNil predicate on the "approved_by" field.
func ApprovedByIsNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIsNull(FieldApprovedBy))
}

// ApprovedByNotNil applies the NotNil predicate on the "approved_by" field.
func ApprovedByNotNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotNull(FieldApprovedBy))
}

// ApprovedByEqualFold applies the EqualFold predicate on the "approved_by" field.
func ApprovedByEqualFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEqualFold(FieldApprovedBy, v))
}

// ApprovedByContainsFold applies the ContainsFold predicate on the "approved_by" field.
func ApprovedByContainsFold(v string) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldContainsFold(FieldApprovedBy, v))
}

// SignalSnapshotIsNil applies the IsNil predicate on the "signal_snapshot" field.
func SignalSnapshotIsNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIsNull(FieldSignalSnapshot))
}

// SignalSnapshotNotNil applies the NotNil predicate on the "signal_snapshot" field.
func SignalSnapshotNotNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotNull(FieldSignalSnapshot))
}

// ConditionsEvaluatedIsNil applies the IsNil predicate on the "conditions_evaluated" field.
func ConditionsEvaluatedIsNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIsNull(FieldConditionsEvaluated))
}

// ConditionsEvaluatedNotNil applies the NotNil predicate on the "conditions_evaluated" field.
func ConditionsEvaluatedNotNil() predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotNull(FieldConditionsEvaluated))
}

// ExecutedAtEQ applies the EQ predicate on the "executed_at" field.
func ExecutedAtEQ(v time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldEQ(FieldExecutedAt, v))
}

// ExecutedAtNEQ applies the NEQ predicate on the "executed_at" field.
func ExecutedAtNEQ(v time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNEQ(FieldExecutedAt, v))
}

// ExecutedAtIn applies the In predicate on the "executed_at" field.
func ExecutedAtIn(vs ...time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldIn(FieldExecutedAt, vs...))
}

// ExecutedAtNotIn applies the NotIn predicate on the "executed_at" field.
func ExecutedAtNotIn(vs ...time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldNotIn(FieldExecutedAt, vs...))
}

// ExecutedAtGT applies the GT predicate on the "executed_at" field.
func ExecutedAtGT(v time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGT(FieldExecutedAt, v))
}

// ExecutedAtGTE applies the GTE predicate on the "executed_at" field.
func ExecutedAtGTE(v time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldGTE(FieldExecutedAt, v))
}

// ExecutedAtLT applies the LT predicate on the "executed_at" field.
func ExecutedAtLT(v time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLT(FieldExecutedAt, v))
}

// ExecutedAtLTE applies the LTE predicate on the "executed_at" field.
func ExecutedAtLTE(v time.Time) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.FieldLTE(FieldExecutedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActionExecutionLog) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActionExecutionLog) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActionExecutionLog) predicate.ActionExecutionLog {
	return predicate.ActionExecutionLog(sql.NotPredicates(p))
}
