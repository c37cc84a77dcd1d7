// Code generated by ent, DO NOT EDIT.

package evaluationtemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldTenantID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldDescription, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldVersion, v))
}

// IsLatest applies equality check predicate on the "is_latest" field. It's identical to IsLatestEQ.
func IsLatest(v bool) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldIsLatest, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldContainsFold(FieldTenantID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldContainsFold(FieldDescription, v))
}

// ParticipantTypeEQ applies the EQ predicate on the "participant_type" field.
func ParticipantTypeEQ(v models.ParticipantType) predicate.EvaluationTemplate {
	vc := v
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldParticipantType, vc))
}

// ParticipantTypeNEQ applies the NEQ predicate on the "participant_type" field.
func ParticipantTypeNEQ(v models.ParticipantType) predicate.EvaluationTemplate {
	vc := v
	return predicate.EvaluationTemplate(sql.FieldNEQ(FieldParticipantType, vc))
}

// ParticipantTypeIn applies the In predicate on the "participant_type" field.
func ParticipantTypeIn(vs ...models.ParticipantType) predicate.EvaluationTemplate {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.EvaluationTemplate(sql.FieldIn(FieldParticipantType, v...))
}

// ParticipantTypeNotIn applies the NotIn predicate on the "participant_type" field.
func ParticipantTypeNotIn(vs ...models.ParticipantType) predicate.EvaluationTemplate {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.EvaluationTemplate(sql.FieldNotIn(FieldParticipantType, v...))
}

// DefaultAggregationEQ applies the EQ predicate on the "default_aggregation" field.
func DefaultAggregationEQ(v models.Aggregation) predicate.EvaluationTemplate {
	vc := v
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldDefaultAggregation, vc))
}

// DefaultAggregationNEQ applies the NEQ predicate on the "default_aggregation" field.
func DefaultAggregationNEQ(v models.Aggregation) predicate.EvaluationTemplate {
	vc := v
	return predicate.EvaluationTemplate(sql.FieldNEQ(FieldDefaultAggregation, vc))
}

// DefaultAggregationIn applies the In predicate on the "default_aggregation" field.
func DefaultAggregationIn(vs ...models.Aggregation) predicate.EvaluationTemplate {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.EvaluationTemplate(sql.FieldIn(FieldDefaultAggregation, v...))
}

// DefaultAggregationNotIn applies the NotIn predicate on the "default_aggregation" field.
func DefaultAggregationNotIn(vs ...models.Aggregation) predicate.EvaluationTemplate {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = vs[i]
	}
	return predicate.EvaluationTemplate(sql.FieldNotIn(FieldDefaultAggregation, v...))
}

// DefaultAggregationIsNil applies the IsNil predicate on the "default_aggregation" field.
func DefaultAggregationIsNil() predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldIsNull(FieldDefaultAggregation))
}

// DefaultAggregationNotNil applies the NotNil predicate on the "default_aggregation" field.
func DefaultAggregationNotNil() predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNotNull(FieldDefaultAggregation))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldLTE(FieldVersion, v))
}

// IsLatestEQ applies the EQ predicate on the "is_latest" field.
func IsLatestEQ(v bool) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldIsLatest, v))
}

// IsLatestNEQ applies the NEQ predicate on the "is_latest" field.
func IsLatestNEQ(v bool) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNEQ(FieldIsLatest, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvaluationTemplate) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvaluationTemplate) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvaluationTemplate) predicate.EvaluationTemplate {
	return predicate.EvaluationTemplate(sql.NotPredicates(p))
}
