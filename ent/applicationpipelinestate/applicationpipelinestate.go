// Code generated by ent, DO NOT EDIT.

package applicationpipelinestate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

const (
	// Label holds the string label denoting the applicationpipelinestate type in the database.
	Label = "application_pipeline_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldApplicationID holds the string denoting the application_id field in the database.
	FieldApplicationID = "application_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldPipelineID holds the string denoting the pipeline_id field in the database.
	FieldPipelineID = "pipeline_id"
	// FieldCurrentStageID holds the string denoting the current_stage_id field in the database.
	FieldCurrentStageID = "current_stage_id"
	// FieldStatusCode holds the string denoting the status_code field in the database.
	FieldStatusCode = "status_code"
	// FieldOutcomeType holds the string denoting the outcome_type field in the database.
	FieldOutcomeType = "outcome_type"
	// FieldIsTerminal holds the string denoting the is_terminal field in the database.
	FieldIsTerminal = "is_terminal"
	// FieldEnteredStageAt holds the string denoting the entered_stage_at field in the database.
	FieldEnteredStageAt = "entered_stage_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the applicationpipelinestate in the database.
	Table = "application_pipeline_states"
)

// Columns holds all SQL columns for applicationpipelinestate fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldApplicationID,
	FieldJobID,
	FieldPipelineID,
	FieldCurrentStageID,
	FieldStatusCode,
	FieldOutcomeType,
	FieldIsTerminal,
	FieldEnteredStageAt,
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
	// DefaultIsTerminal holds the default value on creation for the "is_terminal" field.
	DefaultIsTerminal bool
	// DefaultEnteredStageAt holds the default value on creation for the "entered_stage_at" field.
	DefaultEnteredStageAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

const DefaultOutcomeType models.OutcomeType = "ACTIVE"

// OutcomeTypeValidator is a validator for the "outcome_type" field enum values. It is called by the builders before save.
func OutcomeTypeValidator(ot models.OutcomeType) error {
	switch ot {
	case "ACTIVE", "HOLD", "SUCCESS", "FAILURE", "NEUTRAL":
		return nil
	default:
		return fmt.Errorf("applicationpipelinestate: invalid enum value for outcome_type field: %q", ot)
	}
}

// OrderOption defines the ordering options for the ApplicationPipelineState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByApplicationID orders the results by the application_id field.
func ByApplicationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicationID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByPipelineID orders the results by the pipeline_id field.
func ByPipelineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineID, opts...).ToFunc()
}

// ByCurrentStageID orders the results by the current_stage_id field.
func ByCurrentStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStageID, opts...).ToFunc()
}

// ByStatusCode orders the results by the status_code field.
func ByStatusCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusCode, opts...).ToFunc()
}

// ByOutcomeType orders the results by the outcome_type field.
func ByOutcomeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcomeType, opts...).ToFunc()
}

// ByIsTerminal orders the results by the is_terminal field.
func ByIsTerminal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsTerminal, opts...).ToFunc()
}

// ByEnteredStageAt orders the results by the entered_stage_at field.
func ByEnteredStageAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnteredStageAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
