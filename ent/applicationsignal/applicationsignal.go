// Code generated by ent, DO NOT EDIT.

package applicationsignal

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

const (
	// Label holds the string label denoting the applicationsignal type in the database.
	Label = "application_signal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldApplicationID holds the string denoting the application_id field in the database.
	FieldApplicationID = "application_id"
	// FieldSignalKey holds the string denoting the signal_key field in the database.
	FieldSignalKey = "signal_key"
	// FieldSignalType holds the string denoting the signal_type field in the database.
	FieldSignalType = "signal_type"
	// FieldValueBoolean holds the string denoting the value_boolean field in the database.
	FieldValueBoolean = "value_boolean"
	// FieldValueNumeric holds the string denoting the value_numeric field in the database.
	FieldValueNumeric = "value_numeric"
	// FieldValueText holds the string denoting the value_text field in the database.
	FieldValueText = "value_text"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldSourceID holds the string denoting the source_id field in the database.
	FieldSourceID = "source_id"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldSetBy holds the string denoting the set_by field in the database.
	FieldSetBy = "set_by"
	// FieldSetAt holds the string denoting the set_at field in the database.
	FieldSetAt = "set_at"
	// FieldSupersededAt holds the string denoting the superseded_at field in the database.
	FieldSupersededAt = "superseded_at"
	// FieldSupersededBy holds the string denoting the superseded_by field in the database.
	FieldSupersededBy = "superseded_by"
	// Table holds the table name of the applicationsignal in the database.
	Table = "application_signals"
)

// Columns holds all SQL columns for applicationsignal fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldApplicationID,
	FieldSignalKey,
	FieldSignalType,
	FieldValueBoolean,
	FieldValueNumeric,
	FieldValueText,
	FieldSourceType,
	FieldSourceID,
	FieldNote,
	FieldSetBy,
	FieldSetAt,
	FieldSupersededAt,
	FieldSupersededBy,
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
	// DefaultSetAt holds the default value on creation for the "set_at" field.
	DefaultSetAt func() time.Time
)

// SignalTypeValidator is a validator for the "signal_type" field enum values. It is called by the builders before save.
func SignalTypeValidator(st models.SignalType) error {
	switch st {
	case "boolean", "integer", "float", "text":
		return nil
	default:
		return fmt.Errorf("applicationsignal: invalid enum value for signal_type field: %q", st)
	}
}

// SourceTypeValidator is a validator for the "source_type" field enum values. It is called by the builders before save.
func SourceTypeValidator(st models.SignalSource) error {
	switch st {
	case "EVALUATION", "MANUAL", "SYSTEM", "INTERVIEW":
		return nil
	default:
		return fmt.Errorf("applicationsignal: invalid enum value for source_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the ApplicationSignal queries.
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

// BySignalKey orders the results by the signal_key field.
func BySignalKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignalKey, opts...).ToFunc()
}

// BySignalType orders the results by the signal_type field.
func BySignalType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignalType, opts...).ToFunc()
}

// ByValueBoolean orders the results by the value_boolean field.
func ByValueBoolean(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueBoolean, opts...).ToFunc()
}

// ByValueNumeric orders the results by the value_numeric field.
func ByValueNumeric(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueNumeric, opts...).ToFunc()
}

// ByValueText orders the results by the value_text field.
func ByValueText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueText, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// BySourceID orders the results by the source_id field.
func BySourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceID, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// BySetBy orders the results by the set_by field.
func BySetBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSetBy, opts...).ToFunc()
}

// BySetAt orders the results by the set_at field.
func BySetAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSetAt, opts...).ToFunc()
}

// BySupersededAt orders the results by the superseded_at field.
func BySupersededAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupersededAt, opts...).ToFunc()
}

// BySupersededBy orders the results by the superseded_by field.
func BySupersededBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupersededBy, opts...).ToFunc()
}
