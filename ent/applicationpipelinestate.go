// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationpipelinestate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ApplicationPipelineState is the model entity for the ApplicationPipelineState schema.
type ApplicationPipelineState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID string `json:"application_id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// PipelineID holds the value of the "pipeline_id" field.
	PipelineID string `json:"pipeline_id,omitempty"`
	// CurrentStageID holds the value of the "current_stage_id" field.
	CurrentStageID string `json:"current_stage_id,omitempty"`
	// Presentation code from the tenant status catalog
	StatusCode string `json:"status_code,omitempty"`
	// OutcomeType holds the value of the "outcome_type" field.
	OutcomeType models.OutcomeType `json:"outcome_type,omitempty"`
	// IsTerminal holds the value of the "is_terminal" field.
	IsTerminal bool `json:"is_terminal,omitempty"`
	// EnteredStageAt holds the value of the "entered_stage_at" field.
	EnteredStageAt time.Time `json:"entered_stage_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApplicationPipelineState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case applicationpipelinestate.FieldIsTerminal:
			values[i] = new(sql.NullBool)
		case applicationpipelinestate.FieldID, applicationpipelinestate.FieldTenantID, applicationpipelinestate.FieldApplicationID, applicationpipelinestate.FieldJobID, applicationpipelinestate.FieldPipelineID, applicationpipelinestate.FieldCurrentStageID, applicationpipelinestate.FieldStatusCode, applicationpipelinestate.FieldOutcomeType:
			values[i] = new(sql.NullString)
		case applicationpipelinestate.FieldEnteredStageAt, applicationpipelinestate.FieldCreatedAt, applicationpipelinestate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApplicationPipelineState fields.
func (_m *ApplicationPipelineState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case applicationpipelinestate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case applicationpipelinestate.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case applicationpipelinestate.FieldApplicationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value.Valid {
				_m.ApplicationID = value.String
			}
		case applicationpipelinestate.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case applicationpipelinestate.FieldPipelineID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_id", values[i])
			} else if value.Valid {
				_m.PipelineID = value.String
			}
		case applicationpipelinestate.FieldCurrentStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage_id", values[i])
			} else if value.Valid {
				_m.CurrentStageID = value.String
			}
		case applicationpipelinestate.FieldStatusCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_code", values[i])
			} else if value.Valid {
				_m.StatusCode = value.String
			}
		case applicationpipelinestate.FieldOutcomeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome_type", values[i])
			} else if value.Valid {
				_m.OutcomeType = models.OutcomeType(value.String)
			}
		case applicationpipelinestate.FieldIsTerminal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_terminal", values[i])
			} else if value.Valid {
				_m.IsTerminal = value.Bool
			}
		case applicationpipelinestate.FieldEnteredStageAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field entered_stage_at", values[i])
			} else if value.Valid {
				_m.EnteredStageAt = value.Time
			}
		case applicationpipelinestate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case applicationpipelinestate.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ApplicationPipelineState.
// This includes values selected through modifiers, order, etc.
func (_m *ApplicationPipelineState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ApplicationPipelineState.
// Note that you need to call ApplicationPipelineState.Unwrap() before calling this method if this ApplicationPipelineState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApplicationPipelineState) Update() *ApplicationPipelineStateUpdateOne {
	return NewApplicationPipelineStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApplicationPipelineState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApplicationPipelineState) Unwrap() *ApplicationPipelineState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApplicationPipelineState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApplicationPipelineState) String() string {
	var builder strings.Builder
	builder.WriteString("ApplicationPipelineState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("application_id=")
	builder.WriteString(_m.ApplicationID)
	builder.WriteString(", ")
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("pipeline_id=")
	builder.WriteString(_m.PipelineID)
	builder.WriteString(", ")
	builder.WriteString("current_stage_id=")
	builder.WriteString(_m.CurrentStageID)
	builder.WriteString(", ")
	builder.WriteString("status_code=")
	builder.WriteString(_m.StatusCode)
	builder.WriteString(", ")
	builder.WriteString("outcome_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutcomeType))
	builder.WriteString(", ")
	builder.WriteString("is_terminal=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsTerminal))
	builder.WriteString(", ")
	builder.WriteString("entered_stage_at=")
	builder.WriteString(_m.EnteredStageAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ApplicationPipelineStates is a parsable slice of ApplicationPipelineState.
type ApplicationPipelineStates []*ApplicationPipelineState
