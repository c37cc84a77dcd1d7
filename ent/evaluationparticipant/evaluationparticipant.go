// Code generated by ent, DO NOT EDIT.

package evaluationparticipant

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

const (
	// Label holds the string label denoting the evaluationparticipant type in the database.
	Label = "evaluation_participant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEvaluationID holds the string denoting the evaluation_id field in the database.
	FieldEvaluationID = "evaluation_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeEvaluation holds the string denoting the evaluation edge name in mutations.
	EdgeEvaluation = "evaluation"
	// Table holds the table name of the evaluationparticipant in the database.
	Table = "evaluation_participants"
	// EvaluationTable is the table that holds the evaluation relation/edge.
	EvaluationTable = "evaluation_participants"
	// EvaluationInverseTable is the table name for the EvaluationInstance entity.
	// It exists in this package in order to avoid circular dependency with the "evaluationinstance" package.
	EvaluationInverseTable = "evaluation_instances"
	// EvaluationColumn is the table column denoting the evaluation relation/edge.
	EvaluationColumn = "evaluation_id"
)

// Columns holds all SQL columns for evaluationparticipant fields.
var Columns = []string{
	FieldID,
	FieldEvaluationID,
	FieldUserID,
	FieldStatus,
	FieldSequence,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultSequence holds the default value on creation for the "sequence" field.
	DefaultSequence int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

const DefaultStatus models.ParticipantStatus = "PENDING"

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s models.ParticipantStatus) error {
	switch s {
	case "PENDING", "SUBMITTED", "DECLINED":
		return nil
	default:
		return fmt.Errorf("evaluationparticipant: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the EvaluationParticipant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEvaluationID orders the results by the evaluation_id field.
func ByEvaluationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluationID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEvaluationField orders the results by evaluation field.
func ByEvaluationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvaluationStep(), sql.OrderByField(field, opts...))
	}
}
func newEvaluationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvaluationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EvaluationTable, EvaluationColumn),
	)
}
