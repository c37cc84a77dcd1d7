// Code generated by ent, DO NOT EDIT.

package tenantstageaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldTenantID, v))
}

// StageID applies equality check predicate on the "stage_id" field. It's identical to StageIDEQ.
func StageID(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldStageID, v))
}

// ActionCode applies equality check predicate on the "action_code" field. It's identical to ActionCodeEQ.
func ActionCode(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldActionCode, v))
}

// DisplayLabel applies equality check predicate on the "display_label" field. It's identical to DisplayLabelEQ.
func DisplayLabel(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldDisplayLabel, v))
}

// MovesToNextStage applies equality check predicate on the "moves_to_next_stage" field. It's identical to MovesToNextStageEQ.
func MovesToNextStage(v bool) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldMovesToNextStage, v))
}

// IsTerminal applies equality check predicate on the "is_terminal" field. It's identical to IsTerminalEQ.
func IsTerminal(v bool) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldIsTerminal, v))
}

// RequiredCapability applies equality check predicate on the "required_capability" field. It's identical to RequiredCapabilityEQ.
func RequiredCapability(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldRequiredCapability, v))
}

// RequiresFeedback applies equality check predicate on the "requires_feedback" field. It's identical to RequiresFeedbackEQ.
func RequiresFeedback(v bool) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldRequiresFeedback, v))
}

// RequiresNotes applies equality check predicate on the "requires_notes" field. It's identical to RequiresNotesEQ.
func RequiresNotes(v bool) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldRequiresNotes, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldContainsFold(FieldTenantID, v))
}

// StageIDEQ applies the EQ predicate on the "stage_id" field.
func StageIDEQ(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldStageID, v))
}

// StageIDNEQ applies the NEQ predicate on the "stage_id" field.
func StageIDNEQ(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNEQ(FieldStageID, v))
}

// StageIDIn applies the In predicate on the "stage_id" field.
func StageIDIn(vs ...string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldIn(FieldStageID, vs...))
}

// StageIDNotIn applies the NotIn predicate on the "stage_id" field.
func StageIDNotIn(vs ...string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNotIn(FieldStageID, vs...))
}

// StageIDGT applies the GT predicate on the "stage_id" field.
func StageIDGT(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldGT(FieldStageID, v))
}

// StageIDGTE applies the GTE predicate on the "stage_id" field.
func StageIDGTE(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldGTE(FieldStageID, v))
}

// StageIDLT applies the LT predicate on the "stage_id" field.
func StageIDLT(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldLT(FieldStageID, v))
}

// StageIDLTE applies the LTE predicate on the "stage_id" field.
func StageIDLTE(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldLTE(FieldStageID, v))
}

// StageIDContains applies the Contains predicate on the "stage_id" field.
func StageIDContains(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldContains(FieldStageID, v))
}

// StageIDHasPrefix applies the HasPrefix predicate on the "stage_id" field.
func StageIDHasPrefix(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldHasPrefix(FieldStageID, v))
}

// StageIDHasSuffix applies the HasSuffix predicate on the "stage_id" field.
func StageIDHasSuffix(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldHasSuffix(FieldStageID, v))
}

// StageIDEqualFold applies the EqualFold predicate on the "stage_id" field.
func StageIDEqualFold(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEqualFold(FieldStageID, v))
}

// StageIDContainsFold applies the ContainsFold predicate on the "stage_id" field.
func StageIDContainsFold(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldContainsFold(FieldStageID, v))
}

// ActionCodeEQ applies the EQ predicate on the "action_code" field.
func ActionCodeEQ(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldActionCode, v))
}

// ActionCodeNEQ applies the NEQ predicate on the "action_code" field.
func ActionCodeNEQ(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNEQ(FieldActionCode, v))
}

// ActionCodeIn applies the In predicate on the "action_code" field.
func ActionCodeIn(vs ...string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldIn(FieldActionCode, vs...))
}

// ActionCodeNotIn applies the NotIn predicate on the "action_code" field.
func ActionCodeNotIn(vs ...string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNotIn(FieldActionCode, vs...))
}

// ActionCodeGT applies the GT predicate on the "action_code" field.
func ActionCodeGT(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldGT(FieldActionCode, v))
}

// ActionCodeGTE applies the GTE predicate on the "action_code" field.
func ActionCodeGTE(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldGTE(FieldActionCode, v))
}

// ActionCodeLT applies the LT predicate on the "action_code" field.
func ActionCodeLT(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldLT(FieldActionCode, v))
}

// ActionCodeLTE applies the LTE predicate on the "action_code" field.
func ActionCodeLTE(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldLTE(FieldActionCode, v))
}

// ActionCodeContains applies the Contains predicate on the "action_code" field.
func ActionCodeContains(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldContains(FieldActionCode, v))
}

// ActionCodeHasPrefix applies the HasPrefix predicate on the "action_code" field.
func ActionCodeHasPrefix(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldHasPrefix(FieldActionCode, v))
}

// ActionCodeHasSuffix applies the HasSuffix predicate on the "action_code" field.
func ActionCodeHasSuffix(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldHasSuffix(FieldActionCode, v))
}

// ActionCodeEqualFold applies the EqualFold predicate on the "action_code" field.
func ActionCodeEqualFold(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEqualFold(FieldActionCode, v))
}

// ActionCodeContainsFold applies the ContainsFold predicate on the "action_code" field.
func ActionCodeContainsFold(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldContainsFold(FieldActionCode, v))
}

// DisplayLabelEQ applies the EQ predicate on the "display_label" field.
func DisplayLabelEQ(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldDisplayLabel, v))
}

// DisplayLabelNEQ applies the NEQ predicate on the "display_label" field.
func DisplayLabelNEQ(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNEQ(FieldDisplayLabel, v))
}

// DisplayLabelIn applies the In predicate on the "display_label" field.
func DisplayLabelIn(vs ...string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldIn(FieldDisplayLabel, vs...))
}

// DisplayLabelNotIn applies the NotIn predicate on the "display_label" field.
func DisplayLabelNotIn(vs ...string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNotIn(FieldDisplayLabel, vs...))
}

// DisplayLabelGT applies the GT predicate on the "display_label" field.
func DisplayLabelGT(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldGT(FieldDisplayLabel, v))
}

// DisplayLabelGTE applies the GTE predicate on the "display_label" field.
func DisplayLabelGTE(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldGTE(FieldDisplayLabel, v))
}

// DisplayLabelLT applies the LT predicate on the "display_label" field.
func DisplayLabelLT(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldLT(FieldDisplayLabel, v))
}

// DisplayLabelLTE applies the LTE predicate on the "display_label" field.
func DisplayLabelLTE(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldLTE(FieldDisplayLabel, v))
}

// DisplayLabelContains applies the Contains predicate on the "display_label" field.
func DisplayLabelContains(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldContains(FieldDisplayLabel, v))
}

// DisplayLabelHasPrefix applies the HasPrefix predicate on the "display_label" field.
func DisplayLabelHasPrefix(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldHasPrefix(FieldDisplayLabel, v))
}

// DisplayLabelHasSuffix applies the HasSuffix predicate on the "display_label" field.
func DisplayLabelHasSuffix(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldHasSuffix(FieldDisplayLabel, v))
}

// DisplayLabelIsNil applies the IsNil predicate on the "display_label" field.
func DisplayLabelIsNil() predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldIsNull(FieldDisplayLabel))
}

// DisplayLabelNotNil applies the NotNil predicate on the "display_label" field.
func DisplayLabelNotNil() predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNotNull(FieldDisplayLabel))
}

// DisplayLabelEqualFold applies the EqualFold predicate on the "display_label" field.
func DisplayLabelEqualFold(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEqualFold(FieldDisplayLabel, v))
}

// DisplayLabelContainsFold applies the ContainsFold predicate on the "display_label" field.
func DisplayLabelContainsFold(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldContainsFold(FieldDisplayLabel, v))
}

// OutcomeTypeEQ applies the EQ predicate on the "outcome_type" field.
func OutcomeTypeEQ(v models.OutcomeType) predicate.TenantStageAction {
	vc := v
	return predicate.TenantStageAction(sql.FieldEQ(FieldOutcomeType, vc))
}

// OutcomeTypeNEQ applies the NEQ predicate on the "outcome_type" field.
func OutcomeTypeNEQ(v models.OutcomeType) predicate.TenantStageAction {
	vc := v
	return predicate.TenantStageAction(sql.FieldNEQ(FieldOutcomeType, vc))
}

// OutcomeTypeIn applies the In predicate on the "outcome_type" field.
func OutcomeTypeIn(vs ...models.OutcomeType) predicate.TenantStageAction {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.TenantStageAction(sql.FieldIn(FieldOutcomeType, v...))
}

// OutcomeTypeNotIn applies the NotIn predicate on the "outcome_type" field.
func OutcomeTypeNotIn(vs ...models.OutcomeType) predicate.TenantStageAction {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.TenantStageAction(sql.FieldNotIn(FieldOutcomeType, v...))
}

// OutcomeTypeIsNil applies the IsNil predicate on the "outcome_type" field.
func OutcomeTypeIsNil() predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldIsNull(FieldOutcomeType))
}

// OutcomeTypeNotNil applies the NotNil predicate on the "outcome_type" field.
func OutcomeTypeNotNil() predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNotNull(FieldOutcomeType))
}

// MovesToNextStageEQ applies the EQ predicate on the "moves_to_next_stage" field.
func MovesToNextStageEQ(v bool) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldMovesToNextStage, v))
}

// MovesToNextStageNEQ applies the NEQ predicate on the "moves_to_next_stage" field.
func MovesToNextStageNEQ(v bool) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNEQ(FieldMovesToNextStage, v))
}

// IsTerminalEQ applies the EQ predicate on the "is_terminal" field.
func IsTerminalEQ(v bool) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldIsTerminal, v))
}

// IsTerminalNEQ applies the NEQ predicate on the "is_terminal" field.
func IsTerminalNEQ(v bool) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNEQ(FieldIsTerminal, v))
}

// RequiredCapabilityEQ applies the EQ predicate on the "required_capability" field.
func RequiredCapabilityEQ(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldRequiredCapability, v))
}

// RequiredCapabilityNEQ applies the NEQ predicate on the "required_capability" field.
func RequiredCapabilityNEQ(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNEQ(FieldRequiredCapability, v))
}

// RequiredCapabilityIn applies the In predicate on the "required_capability" field.
func RequiredCapabilityIn(vs ...string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldIn(FieldRequiredCapability, vs...))
}

// RequiredCapabilityNotIn applies the NotIn predicate on the "required_capability" field.
func RequiredCapabilityNotIn(vs ...string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNotIn(FieldRequiredCapability, vs...))
}

// RequiredCapabilityGT applies the GT predicate on the "required_capability" field.
func RequiredCapabilityGT(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldGT(FieldRequiredCapability, v))
}

// RequiredCapabilityGTE applies the GTE predicate on the "required_capability" field.
func RequiredCapabilityGTE(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldGTE(FieldRequiredCapability, v))
}

// RequiredCapabilityLT applies the LT predicate on the "required_capability" field.
func RequiredCapabilityLT(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldLT(FieldRequiredCapability, v))
}

// RequiredCapabilityLTE applies the LTE predicate on the "required_capability" field.
func RequiredCapabilityLTE(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldLTE(FieldRequiredCapability, v))
}

// RequiredCapabilityContains applies the Contains predicate on the "required_capability" field.
func RequiredCapabilityContains(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldContains(FieldRequiredCapability, v))
}

// RequiredCapabilityHasPrefix applies the HasPrefix predicate on the "required_capability" field.
func RequiredCapabilityHasPrefix(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldHasPrefix(FieldRequiredCapability, v))
}

// RequiredCapabilityHasSuffix applies the HasSuffix predicate on the "required_capability" field.
func RequiredCapabilityHasSuffix(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldHasSuffix(FieldRequiredCapability, v))
}

// RequiredCapabilityIsNil applies the IsNil predicate on the "required_capability" field.
func RequiredCapabilityIsNil() predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldIsNull(FieldRequiredCapability))
}

// RequiredCapabilityNotNil applies the NotNil predicate on the "required_capability" field.
func RequiredCapabilityNotNil() predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNotNull(FieldRequiredCapability))
}

// RequiredCapabilityEqualFold applies the EqualFold predicate on the "required_capability" field.
func RequiredCapabilityEqualFold(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEqualFold(FieldRequiredCapability, v))
}

// RequiredCapabilityContainsFold applies the ContainsFold predicate on the "required_capability" field.
func RequiredCapabilityContainsFold(v string) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldContainsFold(FieldRequiredCapability, v))
}

// RequiresFeedbackEQ applies the EQ predicate on the "requires_feedback" field.
func RequiresFeedbackEQ(v bool) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldRequiresFeedback, v))
}

// RequiresFeedbackNEQ applies the NEQ predicate on the "requires_feedback" field.
func RequiresFeedbackNEQ(v bool) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNEQ(FieldRequiresFeedback, v))
}

// RequiresNotesEQ applies the EQ predicate on the "requires_notes" field.
func RequiresNotesEQ(v bool) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldRequiresNotes, v))
}

// RequiresNotesNEQ applies the NEQ predicate on the "requires_notes" field.
func RequiresNotesNEQ(v bool) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNEQ(FieldRequiresNotes, v))
}

// SignalConditionsIsNil applies the IsNil predicate on the "signal_conditions" field.
func SignalConditionsIsNil() predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldIsNull(FieldSignalConditions))
}

// SignalConditionsNotNil applies the NotNil predicate on the "signal_conditions" field.
func SignalConditionsNotNil() predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNotNull(FieldSignalConditions))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TenantStageAction) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TenantStageAction) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TenantStageAction) predicate.TenantStageAction {
	return predicate.TenantStageAction(sql.NotPredicates(p))
}
