// Code generated by ent, DO NOT EDIT.

package tenantapplicationstatus

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldTenantID, v))
}

// StatusCode applies equality check predicate on the "status_code" field. It's identical to StatusCodeEQ.
func StatusCode(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldStatusCode, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldDisplayName, v))
}

// IsTerminal applies equality check predicate on the "is_terminal" field. It's identical to IsTerminalEQ.
func IsTerminal(v bool) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldIsTerminal, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldIsActive, v))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldSortOrder, v))
}

// ActionCode applies equality check predicate on the "action_code" field. It's identical to ActionCodeEQ.
func ActionCode(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldActionCode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldContainsFold(FieldTenantID, v))
}

// StatusCodeEQ applies the EQ predicate on the "status_code" field.
func StatusCodeEQ(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldStatusCode, v))
}

// StatusCodeNEQ applies the NEQ predicate on the "status_code" field.
func StatusCodeNEQ(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNEQ(FieldStatusCode, v))
}

// StatusCodeIn applies the In predicate on the "status_code" field.
func StatusCodeIn(vs ...string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldIn(FieldStatusCode, vs...))
}

// StatusCodeNotIn applies the NotIn predicate on the "status_code" field.
func StatusCodeNotIn(vs ...string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNotIn(FieldStatusCode, vs...))
}

// StatusCodeGT applies the GT predicate on the "status_code" field.
func StatusCodeGT(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldGT(FieldStatusCode, v))
}

// StatusCodeGTE applies the GTE predicate on the "status_code" field.
func StatusCodeGTE(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldGTE(FieldStatusCode, v))
}

// StatusCodeLT applies the LT predicate on the "status_code" field.
func StatusCodeLT(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldLT(FieldStatusCode, v))
}

// StatusCodeLTE applies the LTE predicate on the "status_code" field.
func StatusCodeLTE(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldLTE(FieldStatusCode, v))
}

// StatusCodeContains applies the Contains predicate on the "status_code" field.
func StatusCodeContains(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldContains(FieldStatusCode, v))
}

// StatusCodeHasPrefix applies the HasPrefix predicate on the "status_code" field.
func StatusCodeHasPrefix(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldHasPrefix(FieldStatusCode, v))
}

// StatusCodeHasSuffix applies the HasSuffix predicate on the "status_code" field.
func StatusCodeHasSuffix(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldHasSuffix(FieldStatusCode, v))
}

// StatusCodeEqualFold applies the EqualFold predicate on the "status_code" field.
func StatusCodeEqualFold(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEqualFold(FieldStatusCode, v))
}

// StatusCodeContainsFold applies the ContainsFold predicate on the "status_code" field.
func StatusCodeContainsFold(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldContainsFold(FieldStatusCode, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldContainsFold(FieldDisplayName, v))
}

// OutcomeTypeEQ applies the EQ predicate on the "outcome_type" field.
func OutcomeTypeEQ(v models.OutcomeType) predicate.TenantApplicationStatus {
	vc := v
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldOutcomeType, vc))
}

// OutcomeTypeNEQ applies the NEQ predicate on the "outcome_type" field.
func OutcomeTypeNEQ(v models.OutcomeType) predicate.TenantApplicationStatus {
	vc := v
	return predicate.TenantApplicationStatus(sql.FieldNEQ(FieldOutcomeType, vc))
}

// OutcomeTypeIn applies the In predicate on the "outcome_type" field.
func OutcomeTypeIn(vs ...models.OutcomeType) predicate.TenantApplicationStatus {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.TenantApplicationStatus(sql.FieldIn(FieldOutcomeType, v...))
}

// OutcomeTypeNotIn applies the NotIn predicate on the "outcome_type" field.
func OutcomeTypeNotIn(vs ...models.OutcomeType) predicate.TenantApplicationStatus {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.TenantApplicationStatus(sql.FieldNotIn(FieldOutcomeType, v...))
}

// IsTerminalEQ applies the EQ predicate on the "is_terminal" field.
func IsTerminalEQ(v bool) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldIsTerminal, v))
}

// IsTerminalNEQ applies the NEQ predicate on the "is_terminal" field.
func IsTerminalNEQ(v bool) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNEQ(FieldIsTerminal, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNEQ(FieldIsActive, v))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldLTE(FieldSortOrder, v))
}

// ActionCodeEQ applies the EQ predicate on the "action_code" field.
func ActionCodeEQ(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldActionCode, v))
}

// ActionCodeNEQ applies the NEQ predicate on the "action_code" field.
func ActionCodeNEQ(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNEQ(FieldActionCode, v))
}

// ActionCodeIn applies the In predicate on the "action_code" field.
func ActionCodeIn(vs ...string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldIn(FieldActionCode, vs...))
}

// ActionCodeNotIn applies the NotIn predicate on the "action_code" field.
func ActionCodeNotIn(vs ...string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNotIn(FieldActionCode, vs...))
}

// ActionCodeGT applies the GT predicate on the "action_code" field.
func ActionCodeGT(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldGT(FieldActionCode, v))
}

// ActionCodeGTE applies the GTE predicate on the "action_code" field.
func ActionCodeGTE(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldGTE(FieldActionCode, v))
}

// ActionCodeLT applies the LT predicate on the "action_code" field.
func ActionCodeLT(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldLT(FieldActionCode, v))
}

// ActionCodeLTE applies the LTE predicate on the "action_code" field.
func ActionCodeLTE(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldLTE(FieldActionCode, v))
}

// ActionCodeContains applies the Contains predicate on the "action_code" field.
func ActionCodeContains(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldContains(FieldActionCode, v))
}

// ActionCodeHasPrefix applies the HasPrefix predicate on the "action_code" field.
func ActionCodeHasPrefix(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldHasPrefix(FieldActionCode, v))
}

// ActionCodeHasSuffix applies the HasSuffix predicate on the "action_code" field.
func ActionCodeHasSuffix(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldHasSuffix(FieldActionCode, v))
}

// ActionCodeIsNil applies the IsNil predicate on the "action_code" field.
func ActionCodeIsNil() predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldIsNull(FieldActionCode))
}

// ActionCodeNotNil applies the NotNil predicate on the "action_code" field.
func ActionCodeNotNil() predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNotNull(FieldActionCode))
}

// ActionCodeEqualFold applies the EqualFold predicate on the "action_code" field.
func ActionCodeEqualFold(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEqualFold(FieldActionCode, v))
}

// ActionCodeContainsFold applies the ContainsFold predicate on the "action_code" field.
func ActionCodeContainsFold(v string) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldContainsFold(FieldActionCode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TenantApplicationStatus) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TenantApplicationStatus) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TenantApplicationStatus) predicate.TenantApplicationStatus {
	return predicate.TenantApplicationStatus(sql.NotPredicates(p))
}
