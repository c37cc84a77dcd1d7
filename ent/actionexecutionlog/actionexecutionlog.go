// Code generated by ent, DO NOT EDIT.

package actionexecutionlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

const (
	// Label holds the string label denoting the actionexecutionlog type in the database.
	Label = "action_execution_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldApplicationID holds the string denoting the application_id field in the database.
	FieldApplicationID = "application_id"
	// FieldActionCode holds the string denoting the action_code field in the database.
	FieldActionCode = "action_code"
	// FieldStageID holds the string denoting the stage_id field in the database.
	FieldStageID = "stage_id"
	// FieldFromStageID holds the string denoting the from_stage_id field in the database.
	FieldFromStageID = "from_stage_id"
	// FieldToStageID holds the string denoting the to_stage_id field in the database.
	FieldToStageID = "to_stage_id"
	// FieldOutcomeType holds the string denoting the outcome_type field in the database.
	FieldOutcomeType = "outcome_type"
	// FieldIsTerminal holds the string denoting the is_terminal field in the database.
	FieldIsTerminal = "is_terminal"
	// FieldStatusCode holds the string denoting the status_code field in the database.
	FieldStatusCode = "status_code"
	// FieldExecutedBy holds the string denoting the executed_by field in the database.
	FieldExecutedBy = "executed_by"
	// FieldDecisionNote holds the string denoting the decision_note field in the database.
	FieldDecisionNote = "decision_note"
	// FieldOverrideReason holds the string denoting the override_reason field in the database.
	FieldOverrideReason = "override_reason"
	// FieldReviewedBy holds the string denoting the reviewed_by field in the database.
	FieldReviewedBy = "reviewed_by"
	// FieldApprovedBy holds the string denoting the approved_by field in the database.
	FieldApprovedBy = "approved_by"
	// FieldSignalSnapshot holds the string denoting the signal_snapshot field in the database.
	FieldSignalSnapshot = "signal_snapshot"
	// FieldConditionsEvaluated holds the string denoting the conditions_evaluated field in the database.
	FieldConditionsEvaluated = "conditions_evaluated"
	// FieldExecutedAt holds the string denoting the executed_at field in the database.
	FieldExecutedAt = "executed_at"
	// Table holds the table name of the actionexecutionlog in the database.
	Table = "action_execution_logs"
)

// Columns holds all SQL columns for actionexecutionlog fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldApplicationID,
	FieldActionCode,
	FieldStageID,
	FieldFromStageID,
	FieldToStageID,
	FieldOutcomeType,
	FieldIsTerminal,
	FieldStatusCode,
	FieldExecutedBy,
	FieldDecisionNote,
	FieldOverrideReason,
	FieldReviewedBy,
	FieldApprovedBy,
	FieldSignalSnapshot,
	FieldConditionsEvaluated,
	FieldExecutedAt,
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
	// DefaultExecutedAt holds the default value on creation for the "executed_at" field.
	DefaultExecutedAt func() time.Time
)

// OutcomeTypeValidator is a validator for the "outcome_type" field enum values. It is called by the builders before save.
func OutcomeTypeValidator(ot models.OutcomeType) error {
	switch ot {
	case "ACTIVE", "HOLD", "SUCCESS", "FAILURE", "NEUTRAL":
		return nil
	default:
		return fmt.Errorf("actionexecutionlog: invalid enum value for outcome_type field: %q", ot)
	}
}

// OrderOption defines the ordering options for the ActionExecutionLog queries.
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

// ByActionCode orders the results by the action_code field.
func ByActionCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionCode, opts...).ToFunc()
}

// ByStageID orders the results by the stage_id field.
func ByStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageID, opts...).ToFunc()
}

// ByFromStageID orders the results by the from_stage_id field.
func ByFromStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromStageID, opts...).ToFunc()
}

// ByToStageID orders the results by the to_stage_id field.
func ByToStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToStageID, opts...).ToFunc()
}

// ByOutcomeType orders the results by the outcome_type field.
func ByOutcomeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcomeType, opts...).ToFunc()
}

// ByIsTerminal orders the results by the is_terminal field.
func ByIsTerminal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsTerminal, opts...).ToFunc()
}

// ByStatusCode orders the results by the status_code field.
func ByStatusCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusCode, opts...).ToFunc()
}

// ByExecutedBy orders the results by the executed_by field.
func ByExecutedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutedBy, opts...).ToFunc()
}

// ByDecisionNote orders the results by the decision_note field.
func ByDecisionNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisionNote, opts...).ToFunc()
}

// ByOverrideReason orders the results by the override_reason field.
func ByOverrideReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverrideReason, opts...).ToFunc()
}

// ByReviewedBy orders the results by the reviewed_by field.
func ByReviewedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedBy, opts...).ToFunc()
}

// ByApprovedBy orders the results by the approved_by field.
func ByApprovedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedBy, opts...).ToFunc()
}

// ByExecutedAt orders the results by the executed_at field.
func ByExecutedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutedAt, opts...).ToFunc()
}
