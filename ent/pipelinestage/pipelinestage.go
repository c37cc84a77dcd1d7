// Code generated by ent, DO NOT EDIT.

package pipelinestage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

const (
	// Label holds the string label denoting the pipelinestage type in the database.
	Label = "pipeline_stage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPipelineID holds the string denoting the pipeline_id field in the database.
	FieldPipelineID = "pipeline_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStageType holds the string denoting the stage_type field in the database.
	FieldStageType = "stage_type"
	// FieldOrderIndex holds the string denoting the order_index field in the database.
	FieldOrderIndex = "order_index"
	// FieldConductedBy holds the string denoting the conducted_by field in the database.
	FieldConductedBy = "conducted_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePipeline holds the string denoting the pipeline edge name in mutations.
	EdgePipeline = "pipeline"
	// Table holds the table name of the pipelinestage in the database.
	Table = "pipeline_stages"
	// PipelineTable is the table that holds the pipeline relation/edge.
	PipelineTable = "pipeline_stages"
	// PipelineInverseTable is the table name for the Pipeline entity.
	// It exists in this package in order to avoid circular dependency with the "pipeline" package.
	PipelineInverseTable = "pipelines"
	// PipelineColumn is the table column denoting the pipeline relation/edge.
	PipelineColumn = "pipeline_id"
)

// Columns holds all SQL columns for pipelinestage fields.
var Columns = []string{
	FieldID,
	FieldPipelineID,
	FieldName,
	FieldStageType,
	FieldOrderIndex,
	FieldConductedBy,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

const DefaultStageType models.StageType = "screening"

// StageTypeValidator is a validator for the "stage_type" field enum values. It is called by the builders before save.
func StageTypeValidator(st models.StageType) error {
	switch st {
	case "screening", "interview", "decision", "outcome", "review", "final_review":
		return nil
	default:
		return fmt.Errorf("pipelinestage: invalid enum value for stage_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the PipelineStage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPipelineID orders the results by the pipeline_id field.
func ByPipelineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStageType orders the results by the stage_type field.
func ByStageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageType, opts...).ToFunc()
}

// ByOrderIndex orders the results by the order_index field.
func ByOrderIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderIndex, opts...).ToFunc()
}

// ByConductedBy orders the results by the conducted_by field.
func ByConductedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConductedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPipelineField orders the results by pipeline field.
func ByPipelineField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPipelineStep(), sql.OrderByField(field, opts...))
	}
}
func newPipelineStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PipelineInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PipelineTable, PipelineColumn),
	)
}
