// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationinstance"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationparticipant"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// EvaluationParticipant is the model entity for the EvaluationParticipant schema.
type EvaluationParticipant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EvaluationID holds the value of the "evaluation_id" field.
	EvaluationID string `json:"evaluation_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Status holds the value of the "status" field.
	Status models.ParticipantStatus `json:"status,omitempty"`
	// Response order for SEQUENTIAL evaluations; ignored otherwise
	Sequence int `json:"sequence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvaluationParticipantQuery when eager-loading is set.
	Edges        EvaluationParticipantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvaluationParticipantEdges holds the relations/edges for other nodes in the graph.
type EvaluationParticipantEdges struct {
	// Evaluation holds the value of the evaluation edge.
	Evaluation *EvaluationInstance `json:"evaluation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EvaluationOrErr returns the Evaluation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationParticipantEdges) EvaluationOrErr() (*EvaluationInstance, error) {
	if e.Evaluation != nil {
		return e.Evaluation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: evaluationinstance.Label}
	}
	return nil, &NotLoadedError{edge: "evaluation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationParticipant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationparticipant.FieldSequence:
			values[i] = new(sql.NullInt64)
		case evaluationparticipant.FieldID, evaluationparticipant.FieldEvaluationID, evaluationparticipant.FieldUserID, evaluationparticipant.FieldStatus:
			values[i] = new(sql.NullString)
		case evaluationparticipant.FieldCreatedAt, evaluationparticipant.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationParticipant fields.
func (_m *EvaluationParticipant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationparticipant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evaluationparticipant.FieldEvaluationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evaluation_id", values[i])
			} else if value.Valid {
				_m.EvaluationID = value.String
			}
		case evaluationparticipant.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case evaluationparticipant.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = models.ParticipantStatus(value.String)
			}
		case evaluationparticipant.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = int(value.Int64)
			}
		case evaluationparticipant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case evaluationparticipant.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationParticipant.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationParticipant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvaluation queries the "evaluation" edge of the EvaluationParticipant entity.
func (_m *EvaluationParticipant) QueryEvaluation() *EvaluationInstanceQuery {
	return NewEvaluationParticipantClient(_m.config).QueryEvaluation(_m)
}

// Update returns a builder for updating this EvaluationParticipant.
// Note that you need to call EvaluationParticipant.Unwrap() before calling this method if this EvaluationParticipant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationParticipant) Update() *EvaluationParticipantUpdateOne {
	return NewEvaluationParticipantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationParticipant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationParticipant) Unwrap() *EvaluationParticipant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationParticipant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationParticipant) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationParticipant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("evaluation_id=")
	builder.WriteString(_m.EvaluationID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationParticipants is a parsable slice of EvaluationParticipant.
type EvaluationParticipants []*EvaluationParticipant
