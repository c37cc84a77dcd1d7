// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationinstance"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationresponse"
)

// EvaluationResponse is the model entity for the EvaluationResponse schema.
type EvaluationResponse struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// EvaluationID holds the value of the "evaluation_id" field.
	EvaluationID string `json:"evaluation_id,omitempty"`
	// ParticipantID holds the value of the "participant_id" field.
	ParticipantID string `json:"participant_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Signal key to typed literal, validated against the template schema
	ResponseData map[string]interface{} `json:"response_data,omitempty"`
	// SubmittedAt holds the value of the "submitted_at" field.
	SubmittedAt time.Time `json:"submitted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvaluationResponseQuery when eager-loading is set.
	Edges        EvaluationResponseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvaluationResponseEdges holds the relations/edges for other nodes in the graph.
type EvaluationResponseEdges struct {
	// Evaluation holds the value of the evaluation edge.
	Evaluation *EvaluationInstance `json:"evaluation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EvaluationOrErr returns the Evaluation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationResponseEdges) EvaluationOrErr() (*EvaluationInstance, error) {
	if e.Evaluation != nil {
		return e.Evaluation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: evaluationinstance.Label}
	}
	return nil, &NotLoadedError{edge: "evaluation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationResponse) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationresponse.FieldResponseData:
			values[i] = new([]byte)
		case evaluationresponse.FieldID, evaluationresponse.FieldEvaluationID, evaluationresponse.FieldParticipantID, evaluationresponse.FieldUserID:
			values[i] = new(sql.NullString)
		case evaluationresponse.FieldSubmittedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationResponse fields.
func (_m *EvaluationResponse) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationresponse.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evaluationresponse.FieldEvaluationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evaluation_id", values[i])
			} else if value.Valid {
				_m.EvaluationID = value.String
			}
		case evaluationresponse.FieldParticipantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_id", values[i])
			} else if value.Valid {
				_m.ParticipantID = value.String
			}
		case evaluationresponse.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case evaluationresponse.FieldResponseData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseData); err != nil {
					return fmt.Errorf("unmarshal field response_data: %w", err)
				}
			}
		case evaluationresponse.FieldSubmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_at", values[i])
			} else if value.Valid {
				_m.SubmittedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationResponse.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationResponse) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvaluation queries the "evaluation" edge of the EvaluationResponse entity.
func (_m *EvaluationResponse) QueryEvaluation() *EvaluationInstanceQuery {
	return NewEvaluationResponseClient(_m.config).QueryEvaluation(_m)
}

// Update returns a builder for updating this EvaluationResponse.
// Note that you need to call EvaluationResponse.Unwrap() before calling this method if this EvaluationResponse
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationResponse) Update() *EvaluationResponseUpdateOne {
	return NewEvaluationResponseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationResponse entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationResponse) Unwrap() *EvaluationResponse {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationResponse is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationResponse) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationResponse(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("evaluation_id=")
	builder.WriteString(_m.EvaluationID)
	builder.WriteString(", ")
	builder.WriteString("participant_id=")
	builder.WriteString(_m.ParticipantID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("response_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseData))
	builder.WriteString(", ")
	builder.WriteString("submitted_at=")
	builder.WriteString(_m.SubmittedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationResponses is a parsable slice of EvaluationResponse.
type EvaluationResponses []*EvaluationResponse
