// Code generated by ent, DO NOT EDIT.

package applicationstagehistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldTenantID, v))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldApplicationID, v))
}

// ActionCode applies equality check predicate on the "action_code" field. It's identical to ActionCodeEQ.
func ActionCode(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldActionCode, v))
}

// FromStageID applies equality check predicate on the "from_stage_id" field. It's identical to FromStageIDEQ.
func FromStageID(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldFromStageID, v))
}

// ToStageID applies equality check predicate on the "to_stage_id" field. It's identical to ToStageIDEQ.
func ToStageID(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldToStageID, v))
}

// StatusCode applies equality check predicate on the "status_code" field. It's identical to StatusCodeEQ.
func StatusCode(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldStatusCode, v))
}

// IsTerminal applies equality check predicate on the "is_terminal" field. It's identical to IsTerminalEQ.
func IsTerminal(v bool) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldIsTerminal, v))
}

// MovedBy applies equality check predicate on the "moved_by" field. It's identical to MovedByEQ.
func MovedBy(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldMovedBy, v))
}

// EventHash applies equality check predicate on the "event_hash" field. It's identical to EventHashEQ.
func EventHash(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldEventHash, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContainsFold(FieldTenantID, v))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNotIn(FieldApplicationID, vs...))
}

// ApplicationIDGT applies the GT predicate on the "application_id" field.
func ApplicationIDGT(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGT(FieldApplicationID, v))
}

// ApplicationIDGTE applies the GTE predicate on the "application_id" field.
func ApplicationIDGTE(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGTE(FieldApplicationID, v))
}

// ApplicationIDLT applies the LT predicate on the "application_id" field.
func ApplicationIDLT(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLT(FieldApplicationID, v))
}

// ApplicationIDLTE applies the LTE predicate on the "application_id" field.
func ApplicationIDLTE(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLTE(FieldApplicationID, v))
}

// ApplicationIDContains applies the Contains predicate on the "application_id" field.
func ApplicationIDContains(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContains(FieldApplicationID, v))
}

// ApplicationIDHasPrefix applies the HasPrefix predicate on the "application_id" field.
func ApplicationIDHasPrefix(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldHasPrefix(FieldApplicationID, v))
}

// ApplicationIDHasSuffix applies the HasSuffix predicate on the "application_id" field.
func ApplicationIDHasSuffix(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldHasSuffix(FieldApplicationID, v))
}

// ApplicationIDEqualFold applies the EqualFold predicate on the "application_id" field.
func ApplicationIDEqualFold(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEqualFold(FieldApplicationID, v))
}

// ApplicationIDContainsFold applies the ContainsFold predicate on the "application_id" field.
func ApplicationIDContainsFold(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContainsFold(FieldApplicationID, v))
}

// ActionCodeEQ applies the EQ predicate on the "action_code" field.
func ActionCodeEQ(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldActionCode, v))
}

// ActionCodeNEQ applies the NEQ predicate on the "action_code" field.
func ActionCodeNEQ(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNEQ(FieldActionCode, v))
}

// ActionCodeIn applies the In predicate on the "action_code" field.
func ActionCodeIn(vs ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldIn(FieldActionCode, vs...))
}

// ActionCodeNotIn applies the NotIn predicate on the "action_code" field.
func ActionCodeNotIn(vs ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNotIn(FieldActionCode, vs...))
}

// ActionCodeGT applies the GT predicate on the "action_code" field.
func ActionCodeGT(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGT(FieldActionCode, v))
}

// ActionCodeGTE applies the GTE predicate on the "action_code" field.
func ActionCodeGTE(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGTE(FieldActionCode, v))
}

// ActionCodeLT applies the LT predicate on the "action_code" field.
func ActionCodeLT(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLT(FieldActionCode, v))
}

// ActionCodeLTE applies the LTE predicate on the "action_code" field.
func ActionCodeLTE(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLTE(FieldActionCode, v))
}

// ActionCodeContains applies the Contains predicate on the "action_code" field.
func ActionCodeContains(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContains(FieldActionCode, v))
}

// ActionCodeHasPrefix applies the HasPrefix predicate on the "action_code" field.
func ActionCodeHasPrefix(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldHasPrefix(FieldActionCode, v))
}

// ActionCodeHasSuffix applies the HasSuffix predicate on the "action_code" field.
func ActionCodeHasSuffix(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldHasSuffix(FieldActionCode, v))
}

// ActionCodeIsNil applies the IsNil predicate on the "action_code" field.
func ActionCodeIsNil() predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldIsNull(FieldActionCode))
}

// ActionCodeNotNil applies the NotNil predicate on the "action_code" field.
func ActionCodeNotNil() predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNotNull(FieldActionCode))
}

// ActionCodeEqualFold applies the EqualFold predicate on the "action_code" field.
func ActionCodeEqualFold(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEqualFold(FieldActionCode, v))
}

// ActionCodeContainsFold applies the ContainsFold predicate on the "action_code" field.
func ActionCodeContainsFold(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContainsFold(FieldActionCode, v))
}

// FromStageIDEQ applies the EQ predicate on the "from_stage_id" field.
func FromStageIDEQ(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldFromStageID, v))
}

// FromStageIDNEQ applies the NEQ predicate on the "from_stage_id" field.
func FromStageIDNEQ(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNEQ(FieldFromStageID, v))
}

// FromStageIDIn applies the In predicate on the "from_stage_id" field.
func FromStageIDIn(vs ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldIn(FieldFromStageID, vs...))
}

// FromStageIDNotIn applies the NotIn predicate on the "from_stage_id" field.
func FromStageIDNotIn(vs ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNotIn(FieldFromStageID, vs...))
}

// FromStageIDGT applies the GT predicate on the "from_stage_id" field.
func FromStageIDGT(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGT(FieldFromStageID, v))
}

// FromStageIDGTE applies the GTE predicate on the "from_stage_id" field.
func FromStageIDGTE(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGTE(FieldFromStageID, v))
}

// FromStageIDLT applies the LT predicate on the "from_stage_id" field.
func FromStageIDLT(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLT(FieldFromStageID, v))
}

// FromStageIDLTE applies the LTE predicate on the "from_stage_id" field.
func FromStageIDLTE(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLTE(FieldFromStageID, v))
}

// FromStageIDContains applies the Contains predicate on the "from_stage_id" field.
func FromStageIDContains(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContains(FieldFromStageID, v))
}

// FromStageIDHasPrefix applies the HasPrefix predicate on the "from_stage_id" field.
func FromStageIDHasPrefix(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldHasPrefix(FieldFromStageID, v))
}

// FromStageIDHasSuffix applies the HasSuffix predicate on the "from_stage_id" field.
func FromStageIDHasSuffix(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldHasSuffix(FieldFromStageID, v))
}

// FromStageIDIsNil applies the IsNil predicate on the "from_stage_id" field.
func FromStageIDIsNil() predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldIsNull(FieldFromStageID))
}

// FromStageIDNotNil applies the NotNil predicate on the "from_stage_id" field.
func FromStageIDNotNil() predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNotNull(FieldFromStageID))
}

// FromStageIDEqualFold applies the EqualFold predicate on the "from_stage_id" field.
func FromStageIDEqualFold(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEqualFold(FieldFromStageID, v))
}

// FromStageIDContainsFold applies the ContainsFold predicate on the "from_stage_id" field.
func FromStageIDContainsFold(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContainsFold(FieldFromStageID, v))
}

// ToStageIDEQ applies the EQ predicate on the "to_stage_id" field.
func ToStageIDEQ(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldToStageID, v))
}

// ToStageIDNEQ applies the NEQ predicate on the "to_stage_id" field.
func ToStageIDNEQ(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNEQ(FieldToStageID, v))
}

// ToStageIDIn applies the In predicate on the "to_stage_id" field.
func ToStageIDIn(vs ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldIn(FieldToStageID, vs...))
}

// ToStageIDNotIn applies the NotIn predicate on the "to_stage_id" field.
func ToStageIDNotIn(vs ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNotIn(FieldToStageID, vs...))
}

// ToStageIDGT applies the GT predicate on the "to_stage_id" field.
func ToStageIDGT(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGT(FieldToStageID, v))
}

// ToStageIDGTE applies the GTE predicate on the "to_stage_id" field.
func ToStageIDGTE(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGTE(FieldToStageID, v))
}

// ToStageIDLT applies the LT predicate on the "to_stage_id" field.
func ToStageIDLT(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLT(FieldToStageID, v))
}

// ToStageIDLTE applies the LTE predicate on the "to_stage_id" field.
func ToStageIDLTE(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLTE(FieldToStageID, v))
}

// ToStageIDContains applies the Contains predicate on the "to_stage_id" field.
func ToStageIDContains(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContains(FieldToStageID, v))
}

// ToStageIDHasPrefix applies the HasPrefix predicate on the "to_stage_id" field.
func ToStageIDHasPrefix(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldHasPrefix(FieldToStageID, v))
}

// ToStageIDHasSuffix applies the HasSuffix predicate on the "to_stage_id" field.
func ToStageIDHasSuffix(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldHasSuffix(FieldToStageID, v))
}

// ToStageIDEqualFold applies the EqualFold predicate on the "to_stage_id" field.
func ToStageIDEqualFold(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEqualFold(FieldToStageID, v))
}

// ToStageIDContainsFold applies the ContainsFold predicate on the "to_stage_id" field.
func ToStageIDContainsFold(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContainsFold(FieldToStageID, v))
}

// OutcomeTypeEQ applies the EQ predicate on the "outcome_type" field.
func OutcomeTypeEQ(v models.OutcomeType) predicate.ApplicationStageHistory {
	vc := v
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldOutcomeType, vc))
}

// OutcomeTypeNEQ applies the NEQ predicate on the "outcome_type" field.
func OutcomeTypeNEQ(v models.OutcomeType) predicate.ApplicationStageHistory {
	vc := v
	return predicate.ApplicationStageHistory(sql.FieldNEQ(FieldOutcomeType, vc))
}

// OutcomeTypeIn applies the In predicate on the "outcome_type" field.
func OutcomeTypeIn(vs ...models.OutcomeType) predicate.ApplicationStageHistory {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.ApplicationStageHistory(sql.FieldIn(FieldOutcomeType, v...))
}

// OutcomeTypeNotIn applies the NotIn predicate on the "outcome_type" field.
func OutcomeTypeNotIn(vs ...models.OutcomeType) predicate.ApplicationStageHistory {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.ApplicationStageHistory(sql.FieldNotIn(FieldOutcomeType, v...))
}

// StatusCodeEQ applies the EQ predicate on the "status_code" field.
func StatusCodeEQ(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldStatusCode, v))
}

// StatusCodeNEQ applies the NEQ predicate on the "status_code" field.
func StatusCodeNEQ(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNEQ(FieldStatusCode, v))
}

// StatusCodeIn applies the In predicate on the "status_code" field.
func StatusCodeIn(vs ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldIn(FieldStatusCode, vs...))
}

// StatusCodeNotIn applies the NotIn predicate on the "status_code" field.
func StatusCodeNotIn(vs ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNotIn(FieldStatusCode, vs...))
}

// StatusCodeGT applies the GT predicate on the "status_code" field.
func StatusCodeGT(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGT(FieldStatusCode, v))
}

// StatusCodeGTE applies the GTE predicate on the "status_code" field.
func StatusCodeGTE(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGTE(FieldStatusCode, v))
}

// StatusCodeLT applies the LT predicate on the "status_code" field.
func StatusCodeLT(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLT(FieldStatusCode, v))
}

// StatusCodeLTE applies the LTE predicate on the "status_code" field.
func StatusCodeLTE(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLTE(FieldStatusCode, v))
}

// StatusCodeContains applies the Contains predicate on the "status_code" field.
func StatusCodeContains(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContains(FieldStatusCode, v))
}

// StatusCodeHasPrefix applies the HasPrefix predicate on the "status_code" field.
func StatusCodeHasPrefix(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldHasPrefix(FieldStatusCode, v))
}

// StatusCodeHasSuffix applies the HasSuffix predicate on the "status_code" field.
func StatusCodeHasSuffix(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldHasSuffix(FieldStatusCode, v))
}

// StatusCodeEqualFold applies the EqualFold predicate on the "status_code" field.
func StatusCodeEqualFold(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEqualFold(FieldStatusCode, v))
}

// StatusCodeContainsFold applies the ContainsFold predicate on the "status_code" field.
func StatusCodeContainsFold(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContainsFold(FieldStatusCode, v))
}

// IsTerminalEQ applies the EQ predicate on the "is_terminal" field.
func IsTerminalEQ(v bool) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldIsTerminal, v))
}

// IsTerminalNEQ applies the NEQ predicate on the "is_terminal" field.
func IsTerminalNEQ(v bool) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNEQ(FieldIsTerminal, v))
}

// MovedByEQ applies the EQ predicate on the "moved_by" field.
func MovedByEQ(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldMovedBy, v))
}

// MovedByNEQ applies the NEQ predicate on the "moved_by" field.
func MovedByNEQ(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNEQ(FieldMovedBy, v))
}

// MovedByIn applies the In predicate on the "moved_by" field.
func MovedByIn(vs ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldIn(FieldMovedBy, vs...))
}

// MovedByNotIn applies the NotIn predicate on the "moved_by" field.
func MovedByNotIn(vs ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNotIn(FieldMovedBy, vs...))
}

// MovedByGT applies the GT predicate on the "moved_by" field.
func MovedByGT(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGT(FieldMovedBy, v))
}

// MovedByGTE applies the GTE predicate on the "moved_by" field.
func MovedByGTE(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGTE(FieldMovedBy, v))
}

// MovedByLT applies the LT predicate on the "moved_by" field.
func MovedByLT(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLT(FieldMovedBy, v))
}

// MovedByLTE applies the LTE predicate on the "moved_by" field.
func MovedByLTE(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLTE(FieldMovedBy, v))
}

// MovedByContains applies the Contains predicate on the "moved_by" field.
func MovedByContains(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContains(FieldMovedBy, v))
}

// MovedByHasPrefix applies the HasPrefix predicate on the "moved_by" field.
func MovedByHasPrefix(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldHasPrefix(FieldMovedBy, v))
}

// MovedByHasSuffix applies the HasSuffix predicate on the "moved_by" field.
func MovedByHasSuffix(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldHasSuffix(FieldMovedBy, v))
}

// MovedByEqualFold applies the EqualFold predicate on the "moved_by" field.
func MovedByEqualFold(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEqualFold(FieldMovedBy, v))
}

// MovedByContainsFold applies the ContainsFold predicate on the "moved_by" field.
func MovedByContainsFold(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContainsFold(FieldMovedBy, v))
}

// EventHashEQ applies the EQ predicate on the "event_hash" field.
func EventHashEQ(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldEventHash, v))
}

// EventHashNEQ applies the NEQ predicate on the "event_hash" field.
func EventHashNEQ(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNEQ(FieldEventHash, v))
}

// EventHashIn applies the In predicate on the "event_hash" field.
func EventHashIn(vs ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldIn(FieldEventHash, vs...))
}

// EventHashNotIn applies the NotIn predicate on the "event_hash" field.
func EventHashNotIn(vs ...string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNotIn(FieldEventHash, vs...))
}

// EventHashGT applies the GT predicate on the "event_hash" field.
func EventHashGT(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGT(FieldEventHash, v))
}

// EventHashGTE applies the GTE predicate on the "event_hash" field.
func EventHashGTE(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGTE(FieldEventHash, v))
}

// EventHashLT applies the LT predicate on the "event_hash" field.
func EventHashLT(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLT(FieldEventHash, v))
}

// EventHashLTE applies the LTE predicate on the "event_hash" field.
func EventHashLTE(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLTE(FieldEventHash, v))
}

// EventHashContains applies the Contains predicate on the "event_hash" field.
func EventHashContains(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContains(FieldEventHash, v))
}

// EventHashHasPrefix applies the HasPrefix predicate on the "event_hash" field.
func EventHashHasPrefix(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldHasPrefix(FieldEventHash, v))
}

// EventHashHasSuffix applies the HasSuffix predicate on the "event_hash" field.
func EventHashHasSuffix(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldHasSuffix(FieldEventHash, v))
}

// EventHashEqualFold applies the EqualFold predicate on the "event_hash" field.
func EventHashEqualFold(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEqualFold(FieldEventHash, v))
}

// EventHashContainsFold applies the ContainsFold predicate on the "event_hash" field.
func EventHashContainsFold(v string) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldContainsFold(FieldEventHash, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApplicationStageHistory) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApplicationStageHistory) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApplicationStageHistory) predicate.ApplicationStageHistory {
	return predicate.ApplicationStageHistory(sql.NotPredicates(p))
}
