// Code generated by ent, DO NOT EDIT.

package applicationsignal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldTenantID, v))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldApplicationID, v))
}

// SignalKey applies equality check predicate on the "signal_key" field. It's identical to SignalKeyEQ.
func SignalKey(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldSignalKey, v))
}

// ValueBoolean applies equality check predicate on the "value_boolean" field. It's identical to ValueBooleanEQ.
func ValueBoolean(v bool) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldValueBoolean, v))
}

// ValueNumeric applies equality check predicate on the "value_numeric" field. It's identical to ValueNumericEQ.
func ValueNumeric(v float64) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldValueNumeric, v))
}

// ValueText applies equality check predicate on the "value_text" field. It's identical to ValueTextEQ.
func ValueText(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldValueText, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldSourceID, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldNote, v))
}

// SetBy applies equality check predicate on the "set_by" field. It's identical to SetByEQ.
func SetBy(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldSetBy, v))
}

// SetAt applies equality check predicate on the "set_at" field. It's identical to SetAtEQ.
func SetAt(v time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldSetAt, v))
}

// SupersededAt applies equality check predicate on the "superseded_at" field. It's identical to SupersededAtEQ.
func SupersededAt(v time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldSupersededAt, v))
}

// SupersededBy applies equality check predicate on the "superseded_by" field. It's identical to SupersededByEQ.
func SupersededBy(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldSupersededBy, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContainsFold(FieldTenantID, v))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotIn(FieldApplicationID, vs...))
}

// ApplicationIDGT applies the GT predicate on the "application_id" field.
func ApplicationIDGT(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGT(FieldApplicationID, v))
}

// ApplicationIDGTE applies the GTE predicate on the "application_id" field.
func ApplicationIDGTE(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGTE(FieldApplicationID, v))
}

// ApplicationIDLT applies the LT predicate on the "application_id" field.
func ApplicationIDLT(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLT(FieldApplicationID, v))
}

// ApplicationIDLTE applies the LTE predicate on the "application_id" field.
func ApplicationIDLTE(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLTE(FieldApplicationID, v))
}

// ApplicationIDContains applies the Contains predicate on the "application_id" field.
func ApplicationIDContains(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContains(FieldApplicationID, v))
}

// ApplicationIDHasPrefix applies the HasPrefix predicate on the "application_id" field.
func ApplicationIDHasPrefix(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldHasPrefix(FieldApplicationID, v))
}

// ApplicationIDHasSuffix applies the HasSuffix predicate on the "application_id" field.
func ApplicationIDHasSuffix(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldHasSuffix(FieldApplicationID, v))
}

// ApplicationIDEqualFold applies the EqualFold predicate on the "application_id" field.
func ApplicationIDEqualFold(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEqualFold(FieldApplicationID, v))
}

// ApplicationIDContainsFold applies the ContainsFold predicate on the "application_id" field.
func ApplicationIDContainsFold(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContainsFold(FieldApplicationID, v))
}

// SignalKeyEQ applies the EQ predicate on the "signal_key" field.
func SignalKeyEQ(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldSignalKey, v))
}

// SignalKeyNEQ applies the NEQ predicate on the "signal_key" field.
func SignalKeyNEQ(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNEQ(FieldSignalKey, v))
}

// SignalKeyIn applies the In predicate on the "signal_key" field.
func SignalKeyIn(vs ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIn(FieldSignalKey, vs...))
}

// SignalKeyNotIn applies the NotIn predicate on the "signal_key" field.
func SignalKeyNotIn(vs ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotIn(FieldSignalKey, vs...))
}

// SignalKeyGT applies the GT predicate on the "signal_key" field.
func SignalKeyGT(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGT(FieldSignalKey, v))
}

// SignalKeyGTE applies the GTE predicate on the "signal_key" field.
func SignalKeyGTE(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGTE(FieldSignalKey, v))
}

// SignalKeyLT applies the LT predicate on the "signal_key" field.
func SignalKeyLT(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLT(FieldSignalKey, v))
}

// SignalKeyLTE applies the LTE predicate on the "signal_key" field.
func SignalKeyLTE(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLTE(FieldSignalKey, v))
}

// SignalKeyContains applies the Contains predicate on the "signal_key" field.
func SignalKeyContains(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContains(FieldSignalKey, v))
}

// SignalKeyHasPrefix applies the HasPrefix predicate on the "signal_key" field.
func SignalKeyHasPrefix(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldHasPrefix(FieldSignalKey, v))
}

// SignalKeyHasSuffix applies the HasSuffix predicate on the "signal_key" field.
func SignalKeyHasSuffix(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldHasSuffix(FieldSignalKey, v))
}

// SignalKeyEqualFold applies the EqualFold predicate on the "signal_key" field.
func SignalKeyEqualFold(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEqualFold(FieldSignalKey, v))
}

// SignalKeyContainsFold applies the ContainsFold predicate on the "signal_key" field.
func SignalKeyContainsFold(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContainsFold(FieldSignalKey, v))
}

// SignalTypeEQ applies the EQ predicate on the "signal_type" field.
func SignalTypeEQ(v models.SignalType) predicate.ApplicationSignal {
	vc := v
	return predicate.ApplicationSignal(sql.FieldEQ(FieldSignalType, vc))
}

// SignalTypeNEQ applies the NEQ predicate on the "signal_type" field.
func SignalTypeNEQ(v models.SignalType) predicate.ApplicationSignal {
	vc := v
	return predicate.ApplicationSignal(sql.FieldNEQ(FieldSignalType, vc))
}

// SignalTypeIn applies the In predicate on the "signal_type" field.
func SignalTypeIn(vs ...models.SignalType) predicate.ApplicationSignal {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.ApplicationSignal(sql.FieldIn(FieldSignalType, v...))
}

// SignalTypeNotIn applies the NotIn predicate on the "signal_type" field.
func SignalTypeNotIn(vs ...models.SignalType) predicate.ApplicationSignal {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.ApplicationSignal(sql.FieldNotIn(FieldSignalType, v...))
}

// ValueBooleanEQ applies the EQ predicate on the "value_boolean" field.
func ValueBooleanEQ(v bool) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldValueBoolean, v))
}

// ValueBooleanNEQ applies the NEQ predicate on the "value_boolean" field.
func ValueBooleanNEQ(v bool) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNEQ(FieldValueBoolean, v))
}

// ValueBooleanIsNil applies the IsNil predicate on the "value_boolean" field.
func ValueBooleanIsNil() predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIsNull(FieldValueBoolean))
}

// ValueBooleanNotNil applies the NotNil predicate on the "value_boolean" field.
func ValueBooleanNotNil() predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotNull(FieldValueBoolean))
}

// ValueNumericEQ applies the EQ predicate on the "value_numeric" field.
func ValueNumericEQ(v float64) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldValueNumeric, v))
}

// ValueNumericNEQ applies the NEQ predicate on the "value_numeric" field.
func ValueNumericNEQ(v float64) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNEQ(FieldValueNumeric, v))
}

// ValueNumericIn applies the In predicate on the "value_numeric" field.
func ValueNumericIn(vs ...float64) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIn(FieldValueNumeric, vs...))
}

// ValueNumericNotIn applies the NotIn predicate on the "value_numeric" field.
func ValueNumericNotIn(vs ...float64) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotIn(FieldValueNumeric, vs...))
}

// ValueNumericGT applies the GT predicate on the "value_numeric" field.
func ValueNumericGT(v float64) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGT(FieldValueNumeric, v))
}

// ValueNumericGTE applies the GTE predicate on the "value_numeric" field.
func ValueNumericGTE(v float64) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGTE(FieldValueNumeric, v))
}

// ValueNumericLT applies the LT predicate on the "value_numeric" field.
func ValueNumericLT(v float64) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLT(FieldValueNumeric, v))
}

// ValueNumericLTE applies the LTE predicate on the "value_numeric" field.
func ValueNumericLTE(v float64) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLTE(FieldValueNumeric, v))
}

// ValueNumericIsNil applies the IsNil predicate on the "value_numeric" field.
func ValueNumericIsNil() predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIsNull(FieldValueNumeric))
}

// ValueNumericNotNil applies the NotNil predicate on the "value_numeric" field.
func ValueNumericNotNil() predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotNull(FieldValueNumeric))
}

// ValueTextEQ applies the EQ predicate on the "value_text" field.
func ValueTextEQ(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldValueText, v))
}

// ValueTextNEQ applies the NEQ predicate on the "value_text" field.
func ValueTextNEQ(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNEQ(FieldValueText, v))
}

// ValueTextIn applies the In predicate on the "value_text" field.
func ValueTextIn(vs ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIn(FieldValueText, vs...))
}

// ValueTextNotIn applies the NotIn predicate on the "value_text" field.
func ValueTextNotIn(vs ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotIn(FieldValueText, vs...))
}

// ValueTextGT applies the GT predicate on the "value_text" field.
func ValueTextGT(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGT(FieldValueText, v))
}

// ValueTextGTE applies the GTE predicate on the "value_text" field.
func ValueTextGTE(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGTE(FieldValueText, v))
}

// ValueTextLT applies the LT predicate on the "value_text" field.
func ValueTextLT(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLT(FieldValueText, v))
}

// ValueTextLTE applies the LTE predicate on the "value_text" field.
func ValueTextLTE(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLTE(FieldValueText, v))
}

// ValueTextContains applies the Contains predicate on the "value_text" field.
func ValueTextContains(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContains(FieldValueText, v))
}

// ValueTextHasPrefix applies the HasPrefix predicate on the "value_text" field.
func ValueTextHasPrefix(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldHasPrefix(FieldValueText, v))
}

// ValueTextHasSuffix applies the HasSuffix predicate on the "value_text" field.
func ValueTextHasSuffix(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldHasSuffix(FieldValueText, v))
}

// ValueTextIsNil applies the IsNil predicate on the "value_text" field.
func ValueTextIsNil() predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIsNull(FieldValueText))
}

// ValueTextNotNil applies the NotNil predicate on the "value_text" field.
func ValueTextNotNil() predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotNull(FieldValueText))
}

// ValueTextEqualFold applies the EqualFold predicate on the "value_text" field.
func ValueTextEqualFold(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEqualFold(FieldValueText, v))
}

// ValueTextContainsFold applies the ContainsFold predicate on the "value_text" field.
func ValueTextContainsFold(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContainsFold(FieldValueText, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v models.SignalSource) predicate.ApplicationSignal {
	vc := v
	return predicate.ApplicationSignal(sql.FieldEQ(FieldSourceType, vc))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v models.SignalSource) predicate.ApplicationSignal {
	vc := v
	return predicate.ApplicationSignal(sql.FieldNEQ(FieldSourceType, vc))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...models.SignalSource) predicate.ApplicationSignal {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.ApplicationSignal(sql.FieldIn(FieldSourceType, v...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...models.SignalSource) predicate.ApplicationSignal {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.ApplicationSignal(sql.FieldNotIn(FieldSourceType, v...))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDIsNil applies the IsNil predicate on the "source_id" field.
func SourceIDIsNil() predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIsNull(FieldSourceID))
}

// SourceIDNotNil applies the NotNil predicate on the "source_id" field.
func SourceIDNotNil() predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotNull(FieldSourceID))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContainsFold(FieldSourceID, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContainsFold(FieldNote, v))
}

// SetByEQ applies the EQ predicate on the "set_by" field.
func SetByEQ(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldSetBy, v))
}

// SetByNEQ applies the NEQ predicate on the "set_by" field.
func SetByNEQ(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNEQ(FieldSetBy, v))
}

// SetByIn applies the In predicate on the "set_by" field.
func SetByIn(vs ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIn(FieldSetBy, vs...))
}

// SetByNotIn applies the NotIn predicate on the "set_by" field.
func SetByNotIn(vs ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotIn(FieldSetBy, vs...))
}

// SetByGT applies the GT predicate on the "set_by" field.
func SetByGT(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGT(FieldSetBy, v))
}

// SetByGTE applies the GTE predicate on the "set_by" field.
func SetByGTE(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGTE(FieldSetBy, v))
}

// SetByLT applies the LT predicate on the "set_by" field.
func SetByLT(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLT(FieldSetBy, v))
}

// SetByLTE applies the LTE predicate on the "set_by" field.
func SetByLTE(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLTE(FieldSetBy, v))
}

// SetByContains applies the Contains predicate on the "set_by" field.
func SetByContains(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContains(FieldSetBy, v))
}

// SetByHasPrefix applies the HasPrefix predicate on the "set_by" field.
func SetByHasPrefix(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldHasPrefix(FieldSetBy, v))
}

// SetByHasSuffix applies the HasSuffix predicate on the "set_by" field.
func SetByHasSuffix(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldHasSuffix(FieldSetBy, v))
}

// SetByIsNil applies the IsNil predicate on the "set_by" field.
func SetByIsNil() predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIsNull(FieldSetBy))
}

// SetByNotNil applies the NotNil predicate on the "set_by" field.
func SetByNotNil() predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotNull(FieldSetBy))
}

// SetByEqualFold applies the EqualFold predicate on the "set_by" field.
func SetByEqualFold(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEqualFold(FieldSetBy, v))
}

// SetByContainsFold applies the ContainsFold predicate on the "set_by" field.
func SetByContainsFold(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContainsFold(FieldSetBy, v))
}

// SetAtEQ applies the EQ predicate on the "set_at" field.
func SetAtEQ(v time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldSetAt, v))
}

// SetAtNEQ applies the NEQ predicate on the "set_at" field.
func SetAtNEQ(v time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNEQ(FieldSetAt, v))
}

// SetAtIn applies the In predicate on the "set_at" field.
func SetAtIn(vs ...time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIn(FieldSetAt, vs...))
}

// SetAtNotIn applies the NotIn predicate on the "set_at" field.
func SetAtNotIn(vs ...time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotIn(FieldSetAt, vs...))
}

// SetAtGT applies the GT predicate on the "set_at" field.
func SetAtGT(v time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGT(FieldSetAt, v))
}

// SetAtGTE applies the GTE predicate on the "set_at" field.
func SetAtGTE(v time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGTE(FieldSetAt, v))
}

// SetAtLT applies the LT predicate on the "set_at" field.
func SetAtLT(v time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLT(FieldSetAt, v))
}

// SetAtLTE applies the LTE predicate on the "set_at" field.
func SetAtLTE(v time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLTE(FieldSetAt, v))
}

// SupersededAtEQ applies the EQ predicate on the "superseded_at" field.
func SupersededAtEQ(v time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldSupersededAt, v))
}

// SupersededAtNEQ applies the NEQ predicate on the "superseded_at" field.
func SupersededAtNEQ(v time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNEQ(FieldSupersededAt, v))
}

// SupersededAtIn applies the In predicate on the "superseded_at" field.
func SupersededAtIn(vs ...time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIn(FieldSupersededAt, vs...))
}

// SupersededAtNotIn applies the NotIn predicate on the "superseded_at" field.
func SupersededAtNotIn(vs ...time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotIn(FieldSupersededAt, vs...))
}

// SupersededAtGT applies the GT predicate on the "superseded_at" field.
func SupersededAtGT(v time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGT(FieldSupersededAt, v))
}

// SupersededAtGTE applies the GTE predicate on the "superseded_at" field.
func SupersededAtGTE(v time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGTE(FieldSupersededAt, v))
}

// SupersededAtLT applies the LT predicate on the "superseded_at" field.
func SupersededAtLT(v time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLT(FieldSupersededAt, v))
}

// SupersededAtLTE applies the LTE predicate on the "superseded_at" field.
func SupersededAtLTE(v time.Time) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLTE(FieldSupersededAt, v))
}

// SupersededAtIsNil applies the IsNil predicate on the "superseded_at" field.
func SupersededAtIsNil() predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIsNull(FieldSupersededAt))
}

// SupersededAtNotNil applies the NotNil predicate on the "superseded_at" field.
func SupersededAtNotNil() predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotNull(FieldSupersededAt))
}

// SupersededByEQ applies the EQ predicate on the "superseded_by" field.
func SupersededByEQ(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEQ(FieldSupersededBy, v))
}

// SupersededByNEQ applies the NEQ predicate on the "superseded_by" field.
func SupersededByNEQ(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNEQ(FieldSupersededBy, v))
}

// SupersededByIn applies the In predicate on the "superseded_by" field.
func SupersededByIn(vs ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIn(FieldSupersededBy, vs...))
}

// SupersededByNotIn applies the NotIn predicate on the "superseded_by" field.
func SupersededByNotIn(vs ...string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotIn(FieldSupersededBy, vs...))
}

// SupersededByGT applies the GT predicate on the "superseded_by" field.
func SupersededByGT(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGT(FieldSupersededBy, v))
}

// SupersededByGTE applies the GTE predicate on the "superseded_by" field.
func SupersededByGTE(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldGTE(FieldSupersededBy, v))
}

// SupersededByLT applies the LT predicate on the "superseded_by" field.
func SupersededByLT(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLT(FieldSupersededBy, v))
}

// SupersededByLTE applies the LTE predicate on the "superseded_by" field.
func SupersededByLTE(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldLTE(FieldSupersededBy, v))
}

// SupersededByContains applies the Contains predicate on the "superseded_by" field.
func SupersededByContains(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContains(FieldSupersededBy, v))
}

// SupersededByHasPrefix applies the HasPrefix predicate on the "superseded_by" field.
func SupersededByHasPrefix(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldHasPrefix(FieldSupersededBy, v))
}

// SupersededByHasSuffix applies the HasSuffix predicate on the "superseded_by" field.
func SupersededByHasSuffix(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldHasSuffix(FieldSupersededBy, v))
}

// SupersededByIsNil applies the IsNil predicate on the "superseded_by" field.
func SupersededByIsNil() predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldIsNull(FieldSupersededBy))
}

// SupersededByNotNil applies the NotNil predicate on the "superseded_by" field.
func SupersededByNotNil() predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldNotNull(FieldSupersededBy))
}

// SupersededByEqualFold applies the EqualFold predicate on the "superseded_by" field.
func SupersededByEqualFold(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldEqualFold(FieldSupersededBy, v))
}

// SupersededByContainsFold applies the ContainsFold predicate on the "superseded_by" field.
func SupersededByContainsFold(v string) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.FieldContainsFold(FieldSupersededBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApplicationSignal) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApplicationSignal) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApplicationSignal) predicate.ApplicationSignal {
	return predicate.ApplicationSignal(sql.NotPredicates(p))
}
