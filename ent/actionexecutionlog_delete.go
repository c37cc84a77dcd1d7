// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ameyzing09/rtr-api-sub000/ent/actionexecutionlog"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
)

// ActionExecutionLogDelete is the builder for deleting a ActionExecutionLog entity.
type ActionExecutionLogDelete struct {
	config
	hooks    []Hook
	mutation *ActionExecutionLogMutation
}

// Where appends a list predicates to the ActionExecutionLogDelete builder.
func (_d *ActionExecutionLogDelete) Where(ps ...predicate.ActionExecutionLog) *ActionExecutionLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ActionExecutionLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ActionExecutionLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ActionExecutionLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(actionexecutionlog.Table, sqlgraph.NewFieldSpec(actionexecutionlog.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ActionExecutionLogDeleteOne is the builder for deleting a single ActionExecutionLog entity.
type ActionExecutionLogDeleteOne struct {
	_d *ActionExecutionLogDelete
}

// Where appends a list predicates to the ActionExecutionLogDelete builder.
func (_d *ActionExecutionLogDeleteOne) Where(ps ...predicate.ActionExecutionLog) *ActionExecutionLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ActionExecutionLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{actionexecutionlog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ActionExecutionLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
