// Code generated by ent, DO NOT EDIT.

package evaluationinstance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldTenantID, v))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldApplicationID, v))
}

// StageID applies equality check predicate on the "stage_id" field. It's identical to StageIDEQ.
func StageID(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldStageID, v))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateVersion applies equality check predicate on the "template_version" field. It's identical to TemplateVersionEQ.
func TemplateVersion(v int) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldTemplateVersion, v))
}

// ForceCompleted applies equality check predicate on the "force_completed" field. It's identical to ForceCompletedEQ.
func ForceCompleted(v bool) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldForceCompleted, v))
}

// ForceNote applies equality check predicate on the "force_note" field. It's identical to ForceNoteEQ.
func ForceNote(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldForceNote, v))
}

// CompletedBy applies equality check predicate on the "completed_by" field. It's identical to CompletedByEQ.
func CompletedBy(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldCompletedBy, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldCreatedBy, v))
}

// DueAt applies equality check predicate on the "due_at" field. It's identical to DueAtEQ.
func DueAt(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldDueAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldContainsFold(FieldTenantID, v))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotIn(FieldApplicationID, vs...))
}

// ApplicationIDGT applies the GT predicate on the "application_id" field.
func ApplicationIDGT(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGT(FieldApplicationID, v))
}

// ApplicationIDGTE applies the GTE predicate on the "application_id" field.
func ApplicationIDGTE(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGTE(FieldApplicationID, v))
}

// ApplicationIDLT applies the LT predicate on the "application_id" field.
func ApplicationIDLT(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLT(FieldApplicationID, v))
}

// ApplicationIDLTE applies the LTE predicate on the "application_id" field.
func ApplicationIDLTE(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLTE(FieldApplicationID, v))
}

// ApplicationIDContains applies the Contains predicate on the "application_id" field.
func ApplicationIDContains(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldContains(FieldApplicationID, v))
}

// ApplicationIDHasPrefix applies the HasPrefix predicate on the "application_id" field.
func ApplicationIDHasPrefix(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldHasPrefix(FieldApplicationID, v))
}

// ApplicationIDHasSuffix applies the HasSuffix predicate on the "application_id" field.
func ApplicationIDHasSuffix(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldHasSuffix(FieldApplicationID, v))
}

// ApplicationIDEqualFold applies the EqualFold predicate on the "application_id" field.
func ApplicationIDEqualFold(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEqualFold(FieldApplicationID, v))
}

// ApplicationIDContainsFold applies the ContainsFold predicate on the "application_id" field.
func ApplicationIDContainsFold(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldContainsFold(FieldApplicationID, v))
}

// StageIDEQ applies the EQ predicate on the "stage_id" field.
func StageIDEQ(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldStageID, v))
}

// StageIDNEQ applies the NEQ predicate on the "stage_id" field.
func StageIDNEQ(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNEQ(FieldStageID, v))
}

// StageIDIn applies the In predicate on the "stage_id" field.
func StageIDIn(vs ...string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIn(FieldStageID, vs...))
}

// StageIDNotIn applies the NotIn predicate on the "stage_id" field.
func StageIDNotIn(vs ...string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotIn(FieldStageID, vs...))
}

// StageIDGT applies the GT predicate on the "stage_id" field.
func StageIDGT(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGT(FieldStageID, v))
}

// StageIDGTE applies the GTE predicate on the "stage_id" field.
func StageIDGTE(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGTE(FieldStageID, v))
}

// StageIDLT applies the LT predicate on the "stage_id" field.
func StageIDLT(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLT(FieldStageID, v))
}

// StageIDLTE applies the LTE predicate on the "stage_id" field.
func StageIDLTE(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLTE(FieldStageID, v))
}

// StageIDContains applies the Contains predicate on the "stage_id" field.
func StageIDContains(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldContains(FieldStageID, v))
}

// StageIDHasPrefix applies the HasPrefix predicate on the "stage_id" field.
func StageIDHasPrefix(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldHasPrefix(FieldStageID, v))
}

// StageIDHasSuffix applies the HasSuffix predicate on the "stage_id" field.
func StageIDHasSuffix(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldHasSuffix(FieldStageID, v))
}

// StageIDIsNil applies the IsNil predicate on the "stage_id" field.
func StageIDIsNil() predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIsNull(FieldStageID))
}

// StageIDNotNil applies the NotNil predicate on the "stage_id" field.
func StageIDNotNil() predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotNull(FieldStageID))
}

// StageIDEqualFold applies the EqualFold predicate on the "stage_id" field.
func StageIDEqualFold(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEqualFold(FieldStageID, v))
}

// StageIDContainsFold applies the ContainsFold predicate on the "stage_id" field.
func StageIDContainsFold(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldContainsFold(FieldStageID, v))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotIn(FieldTemplateID, vs...))
}

// TemplateIDGT applies the GT predicate on the "template_id" field.
func TemplateIDGT(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGT(FieldTemplateID, v))
}

// TemplateIDGTE applies the GTE predicate on the "template_id" field.
func TemplateIDGTE(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGTE(FieldTemplateID, v))
}

// TemplateIDLT applies the LT predicate on the "template_id" field.
func TemplateIDLT(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLT(FieldTemplateID, v))
}

// TemplateIDLTE applies the LTE predicate on the "template_id" field.
func TemplateIDLTE(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLTE(FieldTemplateID, v))
}

// TemplateIDContains applies the Contains predicate on the "template_id" field.
func TemplateIDContains(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldContains(FieldTemplateID, v))
}

// TemplateIDHasPrefix applies the HasPrefix predicate on the "template_id" field.
func TemplateIDHasPrefix(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldHasPrefix(FieldTemplateID, v))
}

// TemplateIDHasSuffix applies the HasSuffix predicate on the "template_id" field.
func TemplateIDHasSuffix(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldHasSuffix(FieldTemplateID, v))
}

// TemplateIDEqualFold applies the EqualFold predicate on the "template_id" field.
func TemplateIDEqualFold(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEqualFold(FieldTemplateID, v))
}

// TemplateIDContainsFold applies the ContainsFold predicate on the "template_id" field.
func TemplateIDContainsFold(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldContainsFold(FieldTemplateID, v))
}

// TemplateVersionEQ applies the EQ predicate on the "template_version" field.
func TemplateVersionEQ(v int) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldTemplateVersion, v))
}

// TemplateVersionNEQ applies the NEQ predicate on the "template_version" field.
func TemplateVersionNEQ(v int) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNEQ(FieldTemplateVersion, v))
}

// TemplateVersionIn applies the In predicate on the "template_version" field.
func TemplateVersionIn(vs ...int) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIn(FieldTemplateVersion, vs...))
}

// TemplateVersionNotIn applies the NotIn predicate on the "template_version" field.
func TemplateVersionNotIn(vs ...int) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotIn(FieldTemplateVersion, vs...))
}

// TemplateVersionGT applies the GT predicate on the "template_version" field.
func TemplateVersionGT(v int) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGT(FieldTemplateVersion, v))
}

// TemplateVersionGTE applies the GTE predicate on the "template_version" field.
func TemplateVersionGTE(v int) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGTE(FieldTemplateVersion, v))
}

// TemplateVersionLT applies the LT predicate on the "template_version" field.
func TemplateVersionLT(v int) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLT(FieldTemplateVersion, v))
}

// TemplateVersionLTE applies the LTE predicate on the "template_version" field.
func TemplateVersionLTE(v int) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLTE(FieldTemplateVersion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v models.EvaluationStatus) predicate.EvaluationInstance {
	vc := v
	return predicate.EvaluationInstance(sql.FieldEQ(FieldStatus, vc))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v models.EvaluationStatus) predicate.EvaluationInstance {
	vc := v
	return predicate.EvaluationInstance(sql.FieldNEQ(FieldStatus, vc))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...models.EvaluationStatus) predicate.EvaluationInstance {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.EvaluationInstance(sql.FieldIn(FieldStatus, v...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...models.EvaluationStatus) predicate.EvaluationInstance {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.EvaluationInstance(sql.FieldNotIn(FieldStatus, v...))
}

// ForceCompletedEQ applies the EQ predicate on the "force_completed" field.
func ForceCompletedEQ(v bool) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldForceCompleted, v))
}

// ForceCompletedNEQ applies the NEQ predicate on the "force_completed" field.
func ForceCompletedNEQ(v bool) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNEQ(FieldForceCompleted, v))
}

// ForceNoteEQ applies the EQ predicate on the "force_note" field.
func ForceNoteEQ(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldForceNote, v))
}

// ForceNoteNEQ applies the NEQ predicate on the "force_note" field.
func ForceNoteNEQ(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNEQ(FieldForceNote, v))
}

// ForceNoteIn applies the In predicate on the "force_note" field.
func ForceNoteIn(vs ...string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIn(FieldForceNote, vs...))
}

// ForceNoteNotIn applies the NotIn predicate on the "force_note" field.
func ForceNoteNotIn(vs ...string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotIn(FieldForceNote, vs...))
}

// ForceNoteGT applies the GT predicate on the "force_note" field.
func ForceNoteGT(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGT(FieldForceNote, v))
}

// ForceNoteGTE applies the GTE predicate on the "force_note" field.
func ForceNoteGTE(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGTE(FieldForceNote, v))
}

// ForceNoteLT applies the LT predicate on the "force_note" field.
func ForceNoteLT(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLT(FieldForceNote, v))
}

// ForceNoteLTE applies the LTE predicate on the "force_note" field.
func ForceNoteLTE(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLTE(FieldForceNote, v))
}

// ForceNoteContains applies the Contains predicate on the "force_note" field.
func ForceNoteContains(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldContains(FieldForceNote, v))
}

// ForceNoteHasPrefix applies the HasPrefix predicate on the "force_note" field.
func ForceNoteHasPrefix(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldHasPrefix(FieldForceNote, v))
}

// ForceNoteHasSuffix applies the HasSuffix predicate on the "force_note" field.
func ForceNoteHasSuffix(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldHasSuffix(FieldForceNote, v))
}

// ForceNoteIsNil applies the IsNil predicate on the "force_note" field.
func ForceNoteIsNil() predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIsNull(FieldForceNote))
}

// ForceNoteNotNil applies the NotNil predicate on the "force_note" field.
func ForceNoteNotNil() predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotNull(FieldForceNote))
}

// ForceNoteEqualFold applies the EqualFold predicate on the "force_note" field.
func ForceNoteEqualFold(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEqualFold(FieldForceNote, v))
}

// ForceNoteContainsFold applies the ContainsFold predicate on the "force_note" field.
func ForceNoteContainsFold(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldContainsFold(FieldForceNote, v))
}

// CompletedByEQ applies the EQ predicate on the "completed_by" field.
func CompletedByEQ(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldCompletedBy, v))
}

// CompletedByNEQ applies the NEQ predicate on the "completed_by" field.
func CompletedByNEQ(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNEQ(FieldCompletedBy, v))
}

// CompletedByIn applies the In predicate on the "completed_by" field.
func CompletedByIn(vs ...string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIn(FieldCompletedBy, vs...))
}

// CompletedByNotIn applies the NotIn predicate on the "completed_by" field.
func CompletedByNotIn(vs ...string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotIn(FieldCompletedBy, vs...))
}

// CompletedByGT applies the GT predicate on the "completed_by" field.
func CompletedByGT(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGT(FieldCompletedBy, v))
}

// CompletedByGTE applies the GTE predicate on the "completed_by" field.
func CompletedByGTE(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGTE(FieldCompletedBy, v))
}

// CompletedByLT applies the LT predicate on the "completed_by" field.
func CompletedByLT(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLT(FieldCompletedBy, v))
}

// CompletedByLTE applies the LTE predicate on the "completed_by" field.
func CompletedByLTE(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLTE(FieldCompletedBy, v))
}

// CompletedByContains applies the Contains predicate on the "completed_by" field.
func CompletedByContains(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldContains(FieldCompletedBy, v))
}

// CompletedByHasPrefix applies the HasPrefix predicate on the "completed_by" field.
func CompletedByHasPrefix(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldHasPrefix(FieldCompletedBy, v))
}

// CompletedByHasSuffix applies the HasSuffix predicate on the "completed_by" field.
func CompletedByHasSuffix(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldHasSuffix(FieldCompletedBy, v))
}

// CompletedByIsNil applies the IsNil predicate on the "completed_by" field.
func CompletedByIsNil() predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIsNull(FieldCompletedBy))
}

// CompletedByNotNil applies the NotNil predicate on the "completed_by" field.
func CompletedByNotNil() predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotNull(FieldCompletedBy))
}

// CompletedByEqualFold applies the EqualFold predicate on the "completed_by" field.
func CompletedByEqualFold(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEqualFold(FieldCompletedBy, v))
}

// CompletedByContainsFold applies the ContainsFold predicate on the "completed_by" field.
func CompletedByContainsFold(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldContainsFold(FieldCompletedBy, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldContainsFold(FieldCreatedBy, v))
}

// DueAtEQ applies the EQ predicate on the "due_at" field.
func DueAtEQ(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldDueAt, v))
}

// DueAtNEQ applies the NEQ predicate on the "due_at" field.
func DueAtNEQ(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNEQ(FieldDueAt, v))
}

// DueAtIn applies the In predicate on the "due_at" field.
func DueAtIn(vs ...time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIn(FieldDueAt, vs...))
}

// DueAtNotIn applies the NotIn predicate on the "due_at" field.
func DueAtNotIn(vs ...time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotIn(FieldDueAt, vs...))
}

// DueAtGT applies the GT predicate on the "due_at" field.
func DueAtGT(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGT(FieldDueAt, v))
}

// DueAtGTE applies the GTE predicate on the "due_at" field.
func DueAtGTE(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGTE(FieldDueAt, v))
}

// DueAtLT applies the LT predicate on the "due_at" field.
func DueAtLT(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLT(FieldDueAt, v))
}

// DueAtLTE applies the LTE predicate on the "due_at" field.
func DueAtLTE(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLTE(FieldDueAt, v))
}

// DueAtIsNil applies the IsNil predicate on the "due_at" field.
func DueAtIsNil() predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIsNull(FieldDueAt))
}

// DueAtNotNil applies the NotNil predicate on the "due_at" field.
func DueAtNotNil() predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotNull(FieldDueAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasParticipants applies the HasEdge predicate on the "participants" edge.
func HasParticipants() predicate.EvaluationInstance {
	return predicate.EvaluationInstance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ParticipantsTable, ParticipantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantsWith applies the HasEdge predicate on the "participants" edge with a given conditions (other predicates).
func HasParticipantsWith(preds ...predicate.EvaluationParticipant) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(func(s *sql.Selector) {
		step := newParticipantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResponses applies the HasEdge predicate on the "responses" edge.
func HasResponses() predicate.EvaluationInstance {
	return predicate.EvaluationInstance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResponsesTable, ResponsesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResponsesWith applies the HasEdge predicate on the "responses" edge with a given conditions (other predicates).
func HasResponsesWith(preds ...predicate.EvaluationResponse) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(func(s *sql.Selector) {
		step := newResponsesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvaluationInstance) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvaluationInstance) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvaluationInstance) predicate.EvaluationInstance {
	return predicate.EvaluationInstance(sql.NotPredicates(p))
}
