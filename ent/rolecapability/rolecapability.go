// Code generated by ent, DO NOT EDIT.

package rolecapability

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

const (
	// Label holds the string label denoting the rolecapability type in the database.
	Label = "role_capability"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldCapability holds the string denoting the capability field in the database.
	FieldCapability = "capability"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the rolecapability in the database.
	Table = "role_capabilities"
)

// Columns holds all SQL columns for rolecapability fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldRole,
	FieldCapability,
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

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r models.Role) error {
	switch r {
	case "owner", "admin", "hiring_manager", "recruiter", "interviewer":
		return nil
	default:
		return fmt.Errorf("rolecapability: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the RoleCapability queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByCapability orders the results by the capability field.
func ByCapability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapability, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
