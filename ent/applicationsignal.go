// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationsignal"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ApplicationSignal is the model entity for the ApplicationSignal schema.
type ApplicationSignal struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID string `json:"application_id,omitempty"`
	// SignalKey holds the value of the "signal_key" field.
	SignalKey string `json:"signal_key,omitempty"`
	// SignalType holds the value of the "signal_type" field.
	SignalType models.SignalType `json:"signal_type,omitempty"`
	// ValueBoolean holds the value of the "value_boolean" field.
	ValueBoolean *bool `json:"value_boolean,omitempty"`
	// ValueNumeric holds the value of the "value_numeric" field.
	ValueNumeric *float64 `json:"value_numeric,omitempty"`
	// ValueText holds the value of the "value_text" field.
	ValueText *string `json:"value_text,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType models.SignalSource `json:"source_type,omitempty"`
	// Producer reference, e.g. the evaluation instance that emitted the signal
	SourceID string `json:"source_id,omitempty"`
	// Note holds the value of the "note" field.
	Note string `json:"note,omitempty"`
	// SetBy holds the value of the "set_by" field.
	SetBy string `json:"set_by,omitempty"`
	// SetAt holds the value of the "set_at" field.
	SetAt time.Time `json:"set_at,omitempty"`
	// SupersededAt holds the value of the "superseded_at" field.
	SupersededAt *time.Time `json:"superseded_at,omitempty"`
	// ID of the signal row that replaced this one
	SupersededBy *string `json:"superseded_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApplicationSignal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case applicationsignal.FieldValueBoolean:
			values[i] = new(sql.NullBool)
		case applicationsignal.FieldValueNumeric:
			values[i] = new(sql.NullFloat64)
		case applicationsignal.FieldID, applicationsignal.FieldTenantID, applicationsignal.FieldApplicationID, applicationsignal.FieldSignalKey, applicationsignal.FieldSignalType, applicationsignal.FieldValueText, applicationsignal.FieldSourceType, applicationsignal.FieldSourceID, applicationsignal.FieldNote, applicationsignal.FieldSetBy, applicationsignal.FieldSupersededBy:
			values[i] = new(sql.NullString)
		case applicationsignal.FieldSetAt, applicationsignal.FieldSupersededAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApplicationSignal fields.
func (_m *ApplicationSignal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case applicationsignal.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case applicationsignal.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case applicationsignal.FieldApplicationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value.Valid {
				_m.ApplicationID = value.String
			}
		case applicationsignal.FieldSignalKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signal_key", values[i])
			} else if value.Valid {
				_m.SignalKey = value.String
			}
		case applicationsignal.FieldSignalType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signal_type", values[i])
			} else if value.Valid {
				_m.SignalType = models.SignalType(value.String)
			}
		case applicationsignal.FieldValueBoolean:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field value_boolean", values[i])
			} else if value.Valid {
				_m.ValueBoolean = new(bool)
				*_m.ValueBoolean = value.Bool
			}
		case applicationsignal.FieldValueNumeric:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value_numeric", values[i])
			} else if value.Valid {
				_m.ValueNumeric = new(float64)
				*_m.ValueNumeric = value.Float64
			}
		case applicationsignal.FieldValueText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value_text", values[i])
			} else if value.Valid {
				_m.ValueText = new(string)
				*_m.ValueText = value.String
			}
		case applicationsignal.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = models.SignalSource(value.String)
			}
		case applicationsignal.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		case applicationsignal.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = value.String
			}
		case applicationsignal.FieldSetBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field set_by", values[i])
			} else if value.Valid {
				_m.SetBy = value.String
			}
		case applicationsignal.FieldSetAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field set_at", values[i])
			} else if value.Valid {
				_m.SetAt = value.Time
			}
		case applicationsignal.FieldSupersededAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field superseded_at", values[i])
			} else if value.Valid {
				_m.SupersededAt = new(time.Time)
				*_m.SupersededAt = value.Time
			}
		case applicationsignal.FieldSupersededBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field superseded_by", values[i])
			} else if value.Valid {
				_m.SupersededBy = new(string)
				*_m.SupersededBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ApplicationSignal.
// This includes values selected through modifiers, order, etc.
func (_m *ApplicationSignal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ApplicationSignal.
// Note that you need to call ApplicationSignal.Unwrap() before calling this method if this ApplicationSignal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApplicationSignal) Update() *ApplicationSignalUpdateOne {
	return NewApplicationSignalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApplicationSignal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApplicationSignal) Unwrap() *ApplicationSignal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApplicationSignal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApplicationSignal) String() string {
	var builder strings.Builder
	builder.WriteString("ApplicationSignal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("application_id=")
	builder.WriteString(_m.ApplicationID)
	builder.WriteString(", ")
	builder.WriteString("signal_key=")
	builder.WriteString(_m.SignalKey)
	builder.WriteString(", ")
	builder.WriteString("signal_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignalType))
	builder.WriteString(", ")
	if v := _m.ValueBoolean; v != nil {
		builder.WriteString("value_boolean=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ValueNumeric; v != nil {
		builder.WriteString("value_numeric=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ValueText; v != nil {
		builder.WriteString("value_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceType))
	builder.WriteString(", ")
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteString(", ")
	builder.WriteString("note=")
	builder.WriteString(_m.Note)
	builder.WriteString(", ")
	builder.WriteString("set_by=")
	builder.WriteString(_m.SetBy)
	builder.WriteString(", ")
	builder.WriteString("set_at=")
	builder.WriteString(_m.SetAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.SupersededAt; v != nil {
		builder.WriteString("superseded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SupersededBy; v != nil {
		builder.WriteString("superseded_by=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ApplicationSignals is a parsable slice of ApplicationSignal.
type ApplicationSignals []*ApplicationSignal
