// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/pipeline"
	"github.com/ameyzing09/rtr-api-sub000/ent/pipelinestage"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// PipelineStage is the model entity for the PipelineStage schema.
type PipelineStage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PipelineID holds the value of the "pipeline_id" field.
	PipelineID string `json:"pipeline_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// StageType holds the value of the "stage_type" field.
	StageType models.StageType `json:"stage_type,omitempty"`
	// 1-based position within the pipeline
	OrderIndex int `json:"order_index,omitempty"`
	// Label of who runs the stage; HR stages get an HR participant on auto-created evaluations
	ConductedBy string `json:"conducted_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PipelineStageQuery when eager-loading is set.
	Edges        PipelineStageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PipelineStageEdges holds the relations/edges for other nodes in the graph.
type PipelineStageEdges struct {
	// Pipeline holds the value of the pipeline edge.
	Pipeline *Pipeline `json:"pipeline,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PipelineOrErr returns the Pipeline value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PipelineStageEdges) PipelineOrErr() (*Pipeline, error) {
	if e.Pipeline != nil {
		return e.Pipeline, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pipeline.Label}
	}
	return nil, &NotLoadedError{edge: "pipeline"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineStage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinestage.FieldOrderIndex:
			values[i] = new(sql.NullInt64)
		case pipelinestage.FieldID, pipelinestage.FieldPipelineID, pipelinestage.FieldName, pipelinestage.FieldStageType, pipelinestage.FieldConductedBy:
			values[i] = new(sql.NullString)
		case pipelinestage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineStage fields.
func (_m *PipelineStage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinestage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipelinestage.FieldPipelineID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_id", values[i])
			} else if value.Valid {
				_m.PipelineID = value.String
			}
		case pipelinestage.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case pipelinestage.FieldStageType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_type", values[i])
			} else if value.Valid {
				_m.StageType = models.StageType(value.String)
			}
		case pipelinestage.FieldOrderIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order_index", values[i])
			} else if value.Valid {
				_m.OrderIndex = int(value.Int64)
			}
		case pipelinestage.FieldConductedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conducted_by", values[i])
			} else if value.Valid {
				_m.ConductedBy = value.String
			}
		case pipelinestage.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineStage.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineStage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPipeline queries the "pipeline" edge of the PipelineStage entity.
func (_m *PipelineStage) QueryPipeline() *PipelineQuery {
	return NewPipelineStageClient(_m.config).QueryPipeline(_m)
}

// Update returns a builder for updating this PipelineStage.
// Note that you need to call PipelineStage.Unwrap() before calling this method if this PipelineStage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineStage) Update() *PipelineStageUpdateOne {
	return NewPipelineStageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineStage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineStage) Unwrap() *PipelineStage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineStage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineStage) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineStage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pipeline_id=")
	builder.WriteString(_m.PipelineID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("stage_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageType))
	builder.WriteString(", ")
	builder.WriteString("order_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderIndex))
	builder.WriteString(", ")
	builder.WriteString("conducted_by=")
	builder.WriteString(_m.ConductedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PipelineStages is a parsable slice of PipelineStage.
type PipelineStages []*PipelineStage
