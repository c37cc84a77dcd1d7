// Code generated by ent, DO NOT EDIT.

package applicationstagehistory

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

const (
	// Label holds the string label denoting the applicationstagehistory type in the database.
	Label = "application_stage_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldApplicationID holds the string denoting the application_id field in the database.
	FieldApplicationID = "application_id"
	// FieldActionCode holds the string denoting the action_code field in the database.
	FieldActionCode = "action_code"
	// FieldFromStageID holds the string denoting the from_stage_id field in the database.
	FieldFromStageID = "from_stage_id"
	// FieldToStageID holds the string denoting the to_stage_id field in the database.
	FieldToStageID = "to_stage_id"
	// FieldOutcomeType holds the string denoting the outcome_type field in the database.
	FieldOutcomeType = "outcome_type"
	// FieldStatusCode holds the string denoting the status_code field in the database.
	FieldStatusCode = "status_code"
	// FieldIsTerminal holds the string denoting the is_terminal field in the database.
	FieldIsTerminal = "is_terminal"
	// FieldMovedBy holds the string denoting the moved_by field in the database.
	FieldMovedBy = "moved_by"
	// FieldEventHash holds the string denoting the event_hash field in the database.
	FieldEventHash = "event_hash"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the applicationstagehistory in the database.
	Table = "application_stage_history"
)

// Columns holds all SQL columns for applicationstagehistory fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldApplicationID,
	FieldActionCode,
	FieldFromStageID,
	FieldToStageID,
	FieldOutcomeType,
	FieldStatusCode,
	FieldIsTerminal,
	FieldMovedBy,
	FieldEventHash,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OutcomeTypeValidator is a validator for the "outcome_type" field enum values. It is called by the builders before save.
func OutcomeTypeValidator(ot models.OutcomeType) error {
	switch ot {
	case "ACTIVE", "HOLD", "SUCCESS", "FAILURE", "NEUTRAL":
		return nil
	default:
		return fmt.Errorf("applicationstagehistory: invalid enum value for outcome_type field: %q", ot)
	}
}

// OrderOption defines the ordering options for the ApplicationStageHistory queries.
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

// ByStatusCode orders the results by the status_code field.
func ByStatusCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusCode, opts...).ToFunc()
}

// ByIsTerminal orders the results by the is_terminal field.
func ByIsTerminal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsTerminal, opts...).ToFunc()
}

// ByMovedBy orders the results by the moved_by field.
func ByMovedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMovedBy, opts...).ToFunc()
}

// ByEventHash orders the results by the event_hash field.
func ByEventHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventHash, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
