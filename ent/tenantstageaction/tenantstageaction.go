// Code generated by ent, DO NOT EDIT.

package tenantstageaction

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

const (
	// Label holds the string label denoting the tenantstageaction type in the database.
	Label = "tenant_stage_action"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldStageID holds the string denoting the stage_id field in the database.
	FieldStageID = "stage_id"
	// FieldActionCode holds the string denoting the action_code field in the database.
	FieldActionCode = "action_code"
	// FieldDisplayLabel holds the string denoting the display_label field in the database.
	FieldDisplayLabel = "display_label"
	// FieldOutcomeType holds the string denoting the outcome_type field in the database.
	FieldOutcomeType = "outcome_type"
	// FieldMovesToNextStage holds the string denoting the moves_to_next_stage field in the database.
	FieldMovesToNextStage = "moves_to_next_stage"
	// FieldIsTerminal holds the string denoting the is_terminal field in the database.
	FieldIsTerminal = "is_terminal"
	// FieldRequiredCapability holds the string denoting the required_capability field in the database.
	FieldRequiredCapability = "required_capability"
	// FieldRequiresFeedback holds the string denoting the requires_feedback field in the database.
	FieldRequiresFeedback = "requires_feedback"
	// FieldRequiresNotes holds the string denoting the requires_notes field in the database.
	FieldRequiresNotes = "requires_notes"
	// FieldSignalConditions holds the string denoting the signal_conditions field in the database.
	FieldSignalConditions = "signal_conditions"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the tenantstageaction in the database.
	Table = "tenant_stage_actions"
)

// Columns holds all SQL columns for tenantstageaction fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldStageID,
	FieldActionCode,
	FieldDisplayLabel,
	FieldOutcomeType,
	FieldMovesToNextStage,
	FieldIsTerminal,
	FieldRequiredCapability,
	FieldRequiresFeedback,
	FieldRequiresNotes,
	FieldSignalConditions,
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
	// DefaultMovesToNextStage holds the default value on creation for the "moves_to_next_stage" field.
	DefaultMovesToNextStage bool
	// DefaultIsTerminal holds the default value on creation for the "is_terminal" field.
	DefaultIsTerminal bool
	// DefaultRequiresFeedback holds the default value on creation for the "requires_feedback" field.
	DefaultRequiresFeedback bool
	// DefaultRequiresNotes holds the default value on creation for the "requires_notes" field.
	DefaultRequiresNotes bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OutcomeTypeValidator is a validator for the "outcome_type" field enum values. It is called by the builders before save.
func OutcomeTypeValidator(ot models.OutcomeType) error {
	switch ot {
	case "ACTIVE", "HOLD", "SUCCESS", "FAILURE", "NEUTRAL":
		return nil
	default:
		return fmt.Errorf("tenantstageaction: invalid enum value for outcome_type field: %q", ot)
	}
}

// OrderOption defines the ordering options for the TenantStageAction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByStageID orders the results by the stage_id field.
func ByStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageID, opts...).ToFunc()
}

// ByActionCode orders the results by the action_code field.
func ByActionCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionCode, opts...).ToFunc()
}

// ByDisplayLabel orders the results by the display_label field.
func ByDisplayLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayLabel, opts...).ToFunc()
}

// ByOutcomeType orders the results by the outcome_type field.
func ByOutcomeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcomeType, opts...).ToFunc()
}

// ByMovesToNextStage orders the results by the moves_to_next_stage field.
func ByMovesToNextStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMovesToNextStage, opts...).ToFunc()
}

// ByIsTerminal orders the results by the is_terminal field.
func ByIsTerminal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsTerminal, opts...).ToFunc()
}

// ByRequiredCapability orders the results by the required_capability field.
func ByRequiredCapability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiredCapability, opts...).ToFunc()
}

// ByRequiresFeedback orders the results by the requires_feedback field.
func ByRequiresFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresFeedback, opts...).ToFunc()
}

// ByRequiresNotes orders the results by the requires_notes field.
func ByRequiresNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresNotes, opts...).ToFunc()
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
