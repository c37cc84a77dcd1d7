// Code generated by ent, DO NOT EDIT.

package evaluationtemplate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

const (
	// Label holds the string label denoting the evaluationtemplate type in the database.
	Label = "evaluation_template"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldParticipantType holds the string denoting the participant_type field in the database.
	FieldParticipantType = "participant_type"
	// FieldSignalSchema holds the string denoting the signal_schema field in the database.
	FieldSignalSchema = "signal_schema"
	// FieldDefaultAggregation holds the string denoting the default_aggregation field in the database.
	FieldDefaultAggregation = "default_aggregation"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldIsLatest holds the string denoting the is_latest field in the database.
	FieldIsLatest = "is_latest"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the evaluationtemplate in the database.
	Table = "evaluation_templates"
)

// Columns holds all SQL columns for evaluationtemplate fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldName,
	FieldDescription,
	FieldParticipantType,
	FieldSignalSchema,
	FieldDefaultAggregation,
	FieldVersion,
	FieldIsLatest,
	FieldIsActive,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultIsLatest holds the default value on creation for the "is_latest" field.
	DefaultIsLatest bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

const DefaultParticipantType models.ParticipantType = "SINGLE"

// ParticipantTypeValidator is a validator for the "participant_type" field enum values. It is called by the builders before save.
func ParticipantTypeValidator(pt models.ParticipantType) error {
	switch pt {
	case "SINGLE", "PANEL", "SEQUENTIAL":
		return nil
	default:
		return fmt.Errorf("evaluationtemplate: invalid enum value for participant_type field: %q", pt)
	}
}

// DefaultAggregationValidator is a validator for the "default_aggregation" field enum values. It is called by the builders before save.
func DefaultAggregationValidator(da models.Aggregation) error {
	switch da {
	case "MAJORITY", "UNANIMOUS", "ANY", "AVERAGE":
		return nil
	default:
		return fmt.Errorf("evaluationtemplate: invalid enum value for default_aggregation field: %q", da)
	}
}

// OrderOption defines the ordering options for the EvaluationTemplate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByParticipantType orders the results by the participant_type field.
func ByParticipantType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantType, opts...).ToFunc()
}

// ByDefaultAggregation orders the results by the default_aggregation field.
func ByDefaultAggregation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultAggregation, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByIsLatest orders the results by the is_latest field.
func ByIsLatest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsLatest, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
