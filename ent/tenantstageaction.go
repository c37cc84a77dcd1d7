// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantstageaction"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// TenantStageAction is the model entity for the TenantStageAction schema.
type TenantStageAction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// StageID holds the value of the "stage_id" field.
	StageID string `json:"stage_id,omitempty"`
	// ActionCode holds the value of the "action_code" field.
	ActionCode string `json:"action_code,omitempty"`
	// DisplayLabel holds the value of the "display_label" field.
	DisplayLabel string `json:"display_label,omitempty"`
	// When set, a successful run replaces the application's outcome
	OutcomeType *models.OutcomeType `json:"outcome_type,omitempty"`
	// MovesToNextStage holds the value of the "moves_to_next_stage" field.
	MovesToNextStage bool `json:"moves_to_next_stage,omitempty"`
	// IsTerminal holds the value of the "is_terminal" field.
	IsTerminal bool `json:"is_terminal,omitempty"`
	// RequiredCapability holds the value of the "required_capability" field.
	RequiredCapability string `json:"required_capability,omitempty"`
	// RequiresFeedback holds the value of the "requires_feedback" field.
	RequiresFeedback bool `json:"requires_feedback,omitempty"`
	// RequiresNotes holds the value of the "requires_notes" field.
	RequiresNotes bool `json:"requires_notes,omitempty"`
	// SignalConditions holds the value of the "signal_conditions" field.
	SignalConditions *models.SignalConditions `json:"signal_conditions,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TenantStageAction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tenantstageaction.FieldSignalConditions:
			values[i] = new([]byte)
		case tenantstageaction.FieldMovesToNextStage, tenantstageaction.FieldIsTerminal, tenantstageaction.FieldRequiresFeedback, tenantstageaction.FieldRequiresNotes, tenantstageaction.FieldIsActive:
			values[i] = new(sql.NullBool)
		case tenantstageaction.FieldID, tenantstageaction.FieldTenantID, tenantstageaction.FieldStageID, tenantstageaction.FieldActionCode, tenantstageaction.FieldDisplayLabel, tenantstageaction.FieldOutcomeType, tenantstageaction.FieldRequiredCapability:
			values[i] = new(sql.NullString)
		case tenantstageaction.FieldCreatedAt, tenantstageaction.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TenantStageAction fields.
func (_m *TenantStageAction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tenantstageaction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tenantstageaction.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case tenantstageaction.FieldStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_id", values[i])
			} else if value.Valid {
				_m.StageID = value.String
			}
		case tenantstageaction.FieldActionCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_code", values[i])
			} else if value.Valid {
				_m.ActionCode = value.String
			}
		case tenantstageaction.FieldDisplayLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_label", values[i])
			} else if value.Valid {
				_m.DisplayLabel = value.String
			}
		case tenantstageaction.FieldOutcomeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome_type", values[i])
			} else if value.Valid {
				_m.OutcomeType = new(models.OutcomeType)
				*_m.OutcomeType = models.OutcomeType(value.String)
			}
		case tenantstageaction.FieldMovesToNextStage:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field moves_to_next_stage", values[i])
			} else if value.Valid {
				_m.MovesToNextStage = value.Bool
			}
		case tenantstageaction.FieldIsTerminal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_terminal", values[i])
			} else if value.Valid {
				_m.IsTerminal = value.Bool
			}
		case tenantstageaction.FieldRequiredCapability:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field required_capability", values[i])
			} else if value.Valid {
				_m.RequiredCapability = value.String
			}
		case tenantstageaction.FieldRequiresFeedback:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_feedback", values[i])
			} else if value.Valid {
				_m.RequiresFeedback = value.Bool
			}
		case tenantstageaction.FieldRequiresNotes:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_notes", values[i])
			} else if value.Valid {
				_m.RequiresNotes = value.Bool
			}
		case tenantstageaction.FieldSignalConditions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field signal_conditions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SignalConditions); err != nil {
					return fmt.Errorf("unmarshal field signal_conditions: %w", err)
				}
			}
		case tenantstageaction.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case tenantstageaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tenantstageaction.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TenantStageAction.
// This includes values selected through modifiers, order, etc.
func (_m *TenantStageAction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TenantStageAction.
// Note that you need to call TenantStageAction.Unwrap() before calling this method if this TenantStageAction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TenantStageAction) Update() *TenantStageActionUpdateOne {
	return NewTenantStageActionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TenantStageAction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TenantStageAction) Unwrap() *TenantStageAction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TenantStageAction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TenantStageAction) String() string {
	var builder strings.Builder
	builder.WriteString("TenantStageAction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("stage_id=")
	builder.WriteString(_m.StageID)
	builder.WriteString(", ")
	builder.WriteString("action_code=")
	builder.WriteString(_m.ActionCode)
	builder.WriteString(", ")
	builder.WriteString("display_label=")
	builder.WriteString(_m.DisplayLabel)
	builder.WriteString(", ")
	if v := _m.OutcomeType; v != nil {
		builder.WriteString("outcome_type=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("moves_to_next_stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.MovesToNextStage))
	builder.WriteString(", ")
	builder.WriteString("is_terminal=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsTerminal))
	builder.WriteString(", ")
	builder.WriteString("required_capability=")
	builder.WriteString(_m.RequiredCapability)
	builder.WriteString(", ")
	builder.WriteString("requires_feedback=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiresFeedback))
	builder.WriteString(", ")
	builder.WriteString("requires_notes=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiresNotes))
	builder.WriteString(", ")
	builder.WriteString("signal_conditions=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignalConditions))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TenantStageActions is a parsable slice of TenantStageAction.
type TenantStageActions []*TenantStageAction
