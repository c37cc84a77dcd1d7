// Code generated by ent, DO NOT EDIT.

package tenantapplicationstatus

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

const (
	// Label holds the string label denoting the tenantapplicationstatus type in the database.
	Label = "tenant_application_status"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldStatusCode holds the string denoting the status_code field in the database.
	FieldStatusCode = "status_code"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldOutcomeType holds the string denoting the outcome_type field in the database.
	FieldOutcomeType = "outcome_type"
	// FieldIsTerminal holds the string denoting the is_terminal field in the database.
	FieldIsTerminal = "is_terminal"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldSortOrder holds the string denoting the sort_order field in the database.
	FieldSortOrder = "sort_order"
	// FieldActionCode holds the string denoting the action_code field in the database.
	FieldActionCode = "action_code"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the tenantapplicationstatus in the database.
	Table = "tenant_application_status"
)

// Columns holds all SQL columns for tenantapplicationstatus fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldStatusCode,
	FieldDisplayName,
	FieldOutcomeType,
	FieldIsTerminal,
	FieldIsActive,
	FieldSortOrder,
	FieldActionCode,
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
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultSortOrder holds the default value on creation for the "sort_order" field.
	DefaultSortOrder int
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
		return fmt.Errorf("tenantapplicationstatus: invalid enum value for outcome_type field: %q", ot)
	}
}

// OrderOption defines the ordering options for the TenantApplicationStatus queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByStatusCode orders the results by the status_code field.
func ByStatusCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusCode, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByOutcomeType orders the results by the outcome_type field.
func ByOutcomeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcomeType, opts...).ToFunc()
}

// ByIsTerminal orders the results by the is_terminal field.
func ByIsTerminal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsTerminal, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// BySortOrder orders the results by the sort_order field.
func BySortOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSortOrder, opts...).ToFunc()
}

// ByActionCode orders the results by the action_code field.
func ByActionCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionCode, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
