// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationinstance"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// EvaluationInstance is the model entity for the EvaluationInstance schema.
type EvaluationInstance struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID string `json:"application_id,omitempty"`
	// Stage the evaluation was created for, when stage-bound
	StageID string `json:"stage_id,omitempty"`
	// TemplateID holds the value of the "template_id" field.
	TemplateID string `json:"template_id,omitempty"`
	// Version of the template at creation time
	TemplateVersion int `json:"template_version,omitempty"`
	// Status holds the value of the "status" field.
	Status models.EvaluationStatus `json:"status,omitempty"`
	// ForceCompleted holds the value of the "force_completed" field.
	ForceCompleted bool `json:"force_completed,omitempty"`
	// ForceNote holds the value of the "force_note" field.
	ForceNote string `json:"force_note,omitempty"`
	// CompletedBy holds the value of the "completed_by" field.
	CompletedBy string `json:"completed_by,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// DueAt holds the value of the "due_at" field.
	DueAt *time.Time `json:"due_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvaluationInstanceQuery when eager-loading is set.
	Edges        EvaluationInstanceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvaluationInstanceEdges holds the relations/edges for other nodes in the graph.
type EvaluationInstanceEdges struct {
	// Participants holds the value of the participants edge.
	Participants []*EvaluationParticipant `json:"participants,omitempty"`
	// Responses holds the value of the responses edge.
	Responses []*EvaluationResponse `json:"responses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ParticipantsOrErr returns the Participants value or an error if the edge
// was not loaded in eager-loading.
func (e EvaluationInstanceEdges) ParticipantsOrErr() ([]*EvaluationParticipant, error) {
	if e.loadedTypes[0] {
		return e.Participants, nil
	}
	return nil, &NotLoadedError{edge: "participants"}
}

// ResponsesOrErr returns the Responses value or an error if the edge
// was not loaded in eager-loading.
func (e EvaluationInstanceEdges) ResponsesOrErr() ([]*EvaluationResponse, error) {
	if e.loadedTypes[1] {
		return e.Responses, nil
	}
	return nil, &NotLoadedError{edge: "responses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationInstance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationinstance.FieldForceCompleted:
			values[i] = new(sql.NullBool)
		case evaluationinstance.FieldTemplateVersion:
			values[i] = new(sql.NullInt64)
		case evaluationinstance.FieldID, evaluationinstance.FieldTenantID, evaluationinstance.FieldApplicationID, evaluationinstance.FieldStageID, evaluationinstance.FieldTemplateID, evaluationinstance.FieldStatus, evaluationinstance.FieldForceNote, evaluationinstance.FieldCompletedBy, evaluationinstance.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case evaluationinstance.FieldDueAt, evaluationinstance.FieldCompletedAt, evaluationinstance.FieldCreatedAt, evaluationinstance.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationInstance fields.
func (_m *EvaluationInstance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationinstance.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evaluationinstance.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case evaluationinstance.FieldApplicationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value.Valid {
				_m.ApplicationID = value.String
			}
		case evaluationinstance.FieldStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_id", values[i])
			} else if value.Valid {
				_m.StageID = value.String
			}
		case evaluationinstance.FieldTemplateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_id", values[i])
			} else if value.Valid {
				_m.TemplateID = value.String
			}
		case evaluationinstance.FieldTemplateVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field template_version", values[i])
			} else if value.Valid {
				_m.TemplateVersion = int(value.Int64)
			}
		case evaluationinstance.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = models.EvaluationStatus(value.String)
			}
		case evaluationinstance.FieldForceCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field force_completed", values[i])
			} else if value.Valid {
				_m.ForceCompleted = value.Bool
			}
		case evaluationinstance.FieldForceNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field force_note", values[i])
			} else if value.Valid {
				_m.ForceNote = value.String
			}
		case evaluationinstance.FieldCompletedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field completed_by", values[i])
			} else if value.Valid {
				_m.CompletedBy = value.String
			}
		case evaluationinstance.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case evaluationinstance.FieldDueAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_at", values[i])
			} else if value.Valid {
				_m.DueAt = new(time.Time)
				*_m.DueAt = value.Time
			}
		case evaluationinstance.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case evaluationinstance.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case evaluationinstance.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationInstance.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationInstance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParticipants queries the "participants" edge of the EvaluationInstance entity.
func (_m *EvaluationInstance) QueryParticipants() *EvaluationParticipantQuery {
	return NewEvaluationInstanceClient(_m.config).QueryParticipants(_m)
}

// QueryResponses queries the "responses" edge of the EvaluationInstance entity.
func (_m *EvaluationInstance) QueryResponses() *EvaluationResponseQuery {
	return NewEvaluationInstanceClient(_m.config).QueryResponses(_m)
}

// Update returns a builder for updating this EvaluationInstance.
// Note that you need to call EvaluationInstance.Unwrap() before calling this method if this EvaluationInstance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationInstance) Update() *EvaluationInstanceUpdateOne {
	return NewEvaluationInstanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationInstance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationInstance) Unwrap() *EvaluationInstance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationInstance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationInstance) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationInstance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("application_id=")
	builder.WriteString(_m.ApplicationID)
	builder.WriteString(", ")
	builder.WriteString("stage_id=")
	builder.WriteString(_m.StageID)
	builder.WriteString(", ")
	builder.WriteString("template_id=")
	builder.WriteString(_m.TemplateID)
	builder.WriteString(", ")
	builder.WriteString("template_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.TemplateVersion))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("force_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ForceCompleted))
	builder.WriteString(", ")
	builder.WriteString("force_note=")
	builder.WriteString(_m.ForceNote)
	builder.WriteString(", ")
	builder.WriteString("completed_by=")
	builder.WriteString(_m.CompletedBy)
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	if v := _m.DueAt; v != nil {
		builder.WriteString("due_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationInstances is a parsable slice of EvaluationInstance.
type EvaluationInstances []*EvaluationInstance
