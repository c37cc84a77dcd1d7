// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ameyzing09/rtr-api-sub000/ent/actionexecutionlog"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
)

// ActionExecutionLogUpdate is the builder for updating ActionExecutionLog entities.
type ActionExecutionLogUpdate struct {
	config
	hooks    []Hook
	mutation *ActionExecutionLogMutation
}

// Where appends a list predicates to the ActionExecutionLogUpdate builder.
func (_u *ActionExecutionLogUpdate) Where(ps ...predicate.ActionExecutionLog) *ActionExecutionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ActionExecutionLogMutation object of the builder.
func (_u *ActionExecutionLogUpdate) Mutation() *ActionExecutionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActionExecutionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionExecutionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActionExecutionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionExecutionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActionExecutionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(actionexecutionlog.Table, actionexecutionlog.Columns, sqlgraph.NewFieldSpec(actionexecutionlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.StageIDCleared() {
		_spec.ClearField(actionexecutionlog.FieldStageID, field.TypeString)
	}
	if _u.mutation.FromStageIDCleared() {
		_spec.ClearField(actionexecutionlog.FieldFromStageID, field.TypeString)
	}
	if _u.mutation.ToStageIDCleared() {
		_spec.ClearField(actionexecutionlog.FieldToStageID, field.TypeString)
	}
	if _u.mutation.DecisionNoteCleared() {
		_spec.ClearField(actionexecutionlog.FieldDecisionNote, field.TypeString)
	}
	if _u.mutation.OverrideReasonCleared() {
		_spec.ClearField(actionexecutionlog.FieldOverrideReason, field.TypeString)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(actionexecutionlog.FieldReviewedBy, field.TypeString)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(actionexecutionlog.FieldApprovedBy, field.TypeString)
	}
	if _u.mutation.SignalSnapshotCleared() {
		_spec.ClearField(actionexecutionlog.FieldSignalSnapshot, field.TypeJSON)
	}
	if _u.mutation.ConditionsEvaluatedCleared() {
		_spec.ClearField(actionexecutionlog.FieldConditionsEvaluated, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionexecutionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActionExecutionLogUpdateOne is the builder for updating a single ActionExecutionLog entity.
type ActionExecutionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActionExecutionLogMutation
}

// Mutation returns the ActionExecutionLogMutation object of the builder.
func (_u *ActionExecutionLogUpdateOne) Mutation() *ActionExecutionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActionExecutionLogUpdate builder.
func (_u *ActionExecutionLogUpdateOne) Where(ps ...predicate.ActionExecutionLog) *ActionExecutionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActionExecutionLogUpdateOne) Select(field string, fields ...string) *ActionExecutionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActionExecutionLog entity.
func (_u *ActionExecutionLogUpdateOne) Save(ctx context.Context) (*ActionExecutionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionExecutionLogUpdateOne) SaveX(ctx context.Context) *ActionExecutionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActionExecutionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionExecutionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActionExecutionLogUpdateOne) sqlSave(ctx context.Context) (_node *ActionExecutionLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(actionexecutionlog.Table, actionexecutionlog.Columns, sqlgraph.NewFieldSpec(actionexecutionlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActionExecutionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actionexecutionlog.FieldID)
		for _, f := range fields {
			if !actionexecutionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != actionexecutionlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.StageIDCleared() {
		_spec.ClearField(actionexecutionlog.FieldStageID, field.TypeString)
	}
	if _u.mutation.FromStageIDCleared() {
		_spec.ClearField(actionexecutionlog.FieldFromStageID, field.TypeString)
	}
	if _u.mutation.ToStageIDCleared() {
		_spec.ClearField(actionexecutionlog.FieldToStageID, field.TypeString)
	}
	if _u.mutation.DecisionNoteCleared() {
		_spec.ClearField(actionexecutionlog.FieldDecisionNote, field.TypeString)
	}
	if _u.mutation.OverrideReasonCleared() {
		_spec.ClearField(actionexecutionlog.FieldOverrideReason, field.TypeString)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(actionexecutionlog.FieldReviewedBy, field.TypeString)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(actionexecutionlog.FieldApprovedBy, field.TypeString)
	}
	if _u.mutation.SignalSnapshotCleared() {
		_spec.ClearField(actionexecutionlog.FieldSignalSnapshot, field.TypeJSON)
	}
	if _u.mutation.ConditionsEvaluatedCleared() {
		_spec.ClearField(actionexecutionlog.FieldConditionsEvaluated, field.TypeJSON)
	}
	_node = &ActionExecutionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionexecutionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
