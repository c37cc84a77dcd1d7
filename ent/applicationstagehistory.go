// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationstagehistory"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ApplicationStageHistory is the model entity for the ApplicationStageHistory schema.
type ApplicationStageHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID string `json:"application_id,omitempty"`
	// Configured action code, or the built-in ATTACH / MOVE_STAGE / UPDATE_STATUS
	ActionCode string `json:"action_code,omitempty"`
	// Empty on the initial attach transition
	FromStageID *string `json:"from_stage_id,omitempty"`
	// ToStageID holds the value of the "to_stage_id" field.
	ToStageID string `json:"to_stage_id,omitempty"`
	// OutcomeType holds the value of the "outcome_type" field.
	OutcomeType models.OutcomeType `json:"outcome_type,omitempty"`
	// StatusCode holds the value of the "status_code" field.
	StatusCode string `json:"status_code,omitempty"`
	// IsTerminal holds the value of the "is_terminal" field.
	IsTerminal bool `json:"is_terminal,omitempty"`
	// MovedBy holds the value of the "moved_by" field.
	MovedBy string `json:"moved_by,omitempty"`
	// EventHash holds the value of the "event_hash" field.
	EventHash string `json:"event_hash,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApplicationStageHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case applicationstagehistory.FieldIsTerminal:
			values[i] = new(sql.NullBool)
		case applicationstagehistory.FieldID, applicationstagehistory.FieldTenantID, applicationstagehistory.FieldApplicationID, applicationstagehistory.FieldActionCode, applicationstagehistory.FieldFromStageID, applicationstagehistory.FieldToStageID, applicationstagehistory.FieldOutcomeType, applicationstagehistory.FieldStatusCode, applicationstagehistory.FieldMovedBy, applicationstagehistory.FieldEventHash:
			values[i] = new(sql.NullString)
		case applicationstagehistory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApplicationStageHistory fields.
func (_m *ApplicationStageHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case applicationstagehistory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case applicationstagehistory.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case applicationstagehistory.FieldApplicationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value.Valid {
				_m.ApplicationID = value.String
			}
		case applicationstagehistory.FieldActionCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_code", values[i])
			} else if value.Valid {
				_m.ActionCode = value.String
			}
		case applicationstagehistory.FieldFromStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_stage_id", values[i])
			} else if value.Valid {
				_m.FromStageID = new(string)
				*_m.FromStageID = value.String
			}
		case applicationstagehistory.FieldToStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_stage_id", values[i])
			} else if value.Valid {
				_m.ToStageID = value.String
			}
		case applicationstagehistory.FieldOutcomeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome_type", values[i])
			} else if value.Valid {
				_m.OutcomeType = models.OutcomeType(value.String)
			}
		case applicationstagehistory.FieldStatusCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_code", values[i])
			} else if value.Valid {
				_m.StatusCode = value.String
			}
		case applicationstagehistory.FieldIsTerminal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_terminal", values[i])
			} else if value.Valid {
				_m.IsTerminal = value.Bool
			}
		case applicationstagehistory.FieldMovedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field moved_by", values[i])
			} else if value.Valid {
				_m.MovedBy = value.String
			}
		case applicationstagehistory.FieldEventHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_hash", values[i])
			} else if value.Valid {
				_m.EventHash = value.String
			}
		case applicationstagehistory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ApplicationStageHistory.
// This includes values selected through modifiers, order, etc.
func (_m *ApplicationStageHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ApplicationStageHistory.
// Note that you need to call ApplicationStageHistory.Unwrap() before calling this method if this ApplicationStageHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApplicationStageHistory) Update() *ApplicationStageHistoryUpdateOne {
	return NewApplicationStageHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApplicationStageHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApplicationStageHistory) Unwrap() *ApplicationStageHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApplicationStageHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApplicationStageHistory) String() string {
	var builder strings.Builder
	builder.WriteString("ApplicationStageHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("application_id=")
	builder.WriteString(_m.ApplicationID)
	builder.WriteString(", ")
	builder.WriteString("action_code=")
	builder.WriteString(_m.ActionCode)
	builder.WriteString(", ")
	if v := _m.FromStageID; v != nil {
		builder.WriteString("from_stage_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("to_stage_id=")
	builder.WriteString(_m.ToStageID)
	builder.WriteString(", ")
	builder.WriteString("outcome_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutcomeType))
	builder.WriteString(", ")
	builder.WriteString("status_code=")
	builder.WriteString(_m.StatusCode)
	builder.WriteString(", ")
	builder.WriteString("is_terminal=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsTerminal))
	builder.WriteString(", ")
	builder.WriteString("moved_by=")
	builder.WriteString(_m.MovedBy)
	builder.WriteString(", ")
	builder.WriteString("event_hash=")
	builder.WriteString(_m.EventHash)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ApplicationStageHistories is a parsable slice of ApplicationStageHistory.
type ApplicationStageHistories []*ApplicationStageHistory
