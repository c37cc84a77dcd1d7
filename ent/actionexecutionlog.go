// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/actionexecutionlog"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ActionExecutionLog is the model entity for the ActionExecutionLog schema.
type ActionExecutionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID string `json:"application_id,omitempty"`
	// ActionCode holds the value of the "action_code" field.
	ActionCode string `json:"action_code,omitempty"`
	// Stage the application was in when the action ran
	StageID string `json:"stage_id,omitempty"`
	// FromStageID holds the value of the "from_stage_id" field.
	FromStageID *string `json:"from_stage_id,omitempty"`
	// ToStageID holds the value of the "to_stage_id" field.
	ToStageID *string `json:"to_stage_id,omitempty"`
	// OutcomeType holds the value of the "outcome_type" field.
	OutcomeType models.OutcomeType `json:"outcome_type,omitempty"`
	// IsTerminal holds the value of the "is_terminal" field.
	IsTerminal bool `json:"is_terminal,omitempty"`
	// Status the application held after the action
	StatusCode string `json:"status_code,omitempty"`
	// ExecutedBy holds the value of the "executed_by" field.
	ExecutedBy string `json:"executed_by,omitempty"`
	// DecisionNote holds the value of the "decision_note" field.
	DecisionNote string `json:"decision_note,omitempty"`
	// OverrideReason holds the value of the "override_reason" field.
	OverrideReason string `json:"override_reason,omitempty"`
	// ReviewedBy holds the value of the "reviewed_by" field.
	ReviewedBy string `json:"reviewed_by,omitempty"`
	// ApprovedBy holds the value of the "approved_by" field.
	ApprovedBy string `json:"approved_by,omitempty"`
	// Current signal values at decision time, keyed by signal key
	SignalSnapshot map[string]interface{} `json:"signal_snapshot,omitempty"`
	// ConditionsEvaluated holds the value of the "conditions_evaluated" field.
	ConditionsEvaluated []models.ConditionResult `json:"conditions_evaluated,omitempty"`
	// ExecutedAt holds the value of the "executed_at" field.
	ExecutedAt   time.Time `json:"executed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActionExecutionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case actionexecutionlog.FieldSignalSnapshot, actionexecutionlog.FieldConditionsEvaluated:
			values[i] = new([]byte)
		case actionexecutionlog.FieldIsTerminal:
			values[i] = new(sql.NullBool)
		case actionexecutionlog.FieldID, actionexecutionlog.FieldTenantID, actionexecutionlog.FieldApplicationID, actionexecutionlog.FieldActionCode, actionexecutionlog.FieldStageID, actionexecutionlog.FieldFromStageID, actionexecutionlog.FieldToStageID, actionexecutionlog.FieldOutcomeType, actionexecutionlog.FieldStatusCode, actionexecutionlog.FieldExecutedBy, actionexecutionlog.FieldDecisionNote, actionexecutionlog.FieldOverrideReason, actionexecutionlog.FieldReviewedBy, actionexecutionlog.FieldApprovedBy:
			values[i] = new(sql.NullString)
		case actionexecutionlog.FieldExecutedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActionExecutionLog fields.
func (_m *ActionExecutionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case actionexecutionlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case actionexecutionlog.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case actionexecutionlog.FieldApplicationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value.Valid {
				_m.ApplicationID = value.String
			}
		case actionexecutionlog.FieldActionCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_code", values[i])
			} else if value.Valid {
				_m.ActionCode = value.String
			}
		case actionexecutionlog.FieldStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_id", values[i])
			} else if value.Valid {
				_m.StageID = value.String
			}
		case actionexecutionlog.FieldFromStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_stage_id", values[i])
			} else if value.Valid {
				_m.FromStageID = new(string)
				*_m.FromStageID = value.String
			}
		case actionexecutionlog.FieldToStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_stage_id", values[i])
			} else if value.Valid {
				_m.ToStageID = new(string)
				*_m.ToStageID = value.String
			}
		case actionexecutionlog.FieldOutcomeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome_type", values[i])
			} else if value.Valid {
				_m.OutcomeType = models.OutcomeType(value.String)
			}
		case actionexecutionlog.FieldIsTerminal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_terminal", values[i])
			} else if value.Valid {
				_m.IsTerminal = value.Bool
			}
		case actionexecutionlog.FieldStatusCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_code", values[i])
			} else if value.Valid {
				_m.StatusCode = value.String
			}
		case actionexecutionlog.FieldExecutedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field executed_by", values[i])
			} else if value.Valid {
				_m.ExecutedBy = value.String
			}
		case actionexecutionlog.FieldDecisionNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision_note", values[i])
			} else if value.Valid {
				_m.DecisionNote = value.String
			}
		case actionexecutionlog.FieldOverrideReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field override_reason", values[i])
			} else if value.Valid {
				_m.OverrideReason = value.String
			}
		case actionexecutionlog.FieldReviewedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_by", values[i])
			} else if value.Valid {
				_m.ReviewedBy = value.String
			}
		case actionexecutionlog.FieldApprovedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approved_by", values[i])
			} else if value.Valid {
				_m.ApprovedBy = value.String
			}
		case actionexecutionlog.FieldSignalSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field signal_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SignalSnapshot); err != nil {
					return fmt.Errorf("unmarshal field signal_snapshot: %w", err)
				}
			}
		case actionexecutionlog.FieldConditionsEvaluated:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conditions_evaluated", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConditionsEvaluated); err != nil {
					return fmt.Errorf("unmarshal field conditions_evaluated: %w", err)
				}
			}
		case actionexecutionlog.FieldExecutedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field executed_at", values[i])
			} else if value.Valid {
				_m.ExecutedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActionExecutionLog.
// This includes values selected through modifiers, order, etc.
func (_m *ActionExecutionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ActionExecutionLog.
// Note that you need to call ActionExecutionLog.Unwrap() before calling this method if this ActionExecutionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActionExecutionLog) Update() *ActionExecutionLogUpdateOne {
	return NewActionExecutionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActionExecutionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActionExecutionLog) Unwrap() *ActionExecutionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ActionExecutionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActionExecutionLog) String() string {
	var builder strings.Builder
	builder.WriteString("ActionExecutionLog(")
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
	builder.WriteString("stage_id=")
	builder.WriteString(_m.StageID)
	builder.WriteString(", ")
	if v := _m.FromStageID; v != nil {
		builder.WriteString("from_stage_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ToStageID; v != nil {
		builder.WriteString("to_stage_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("outcome_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutcomeType))
	builder.WriteString(", ")
	builder.WriteString("is_terminal=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsTerminal))
	builder.WriteString(", ")
	builder.WriteString("status_code=")
	builder.WriteString(_m.StatusCode)
	builder.WriteString(", ")
	builder.WriteString("executed_by=")
	builder.WriteString(_m.ExecutedBy)
	builder.WriteString(", ")
	builder.WriteString("decision_note=")
	builder.WriteString(_m.DecisionNote)
	builder.WriteString(", ")
	builder.WriteString("override_reason=")
	builder.WriteString(_m.OverrideReason)
	builder.WriteString(", ")
	builder.WriteString("reviewed_by=")
	builder.WriteString(_m.ReviewedBy)
	builder.WriteString(", ")
	builder.WriteString("approved_by=")
	builder.WriteString(_m.ApprovedBy)
	builder.WriteString(", ")
	builder.WriteString("signal_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignalSnapshot))
	builder.WriteString(", ")
	builder.WriteString("conditions_evaluated=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConditionsEvaluated))
	builder.WriteString(", ")
	builder.WriteString("executed_at=")
	builder.WriteString(_m.ExecutedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ActionExecutionLogs is a parsable slice of ActionExecutionLog.
type ActionExecutionLogs []*ActionExecutionLog
