// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationstagehistory"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
)

// ApplicationStageHistoryDelete is the builder for deleting a ApplicationStageHistory entity.
type ApplicationStageHistoryDelete struct {
	config
	hooks    []Hook
	mutation *ApplicationStageHistoryMutation
}

// Where appends a list predicates to the ApplicationStageHistoryDelete builder.
func (_d *ApplicationStageHistoryDelete) Where(ps ...predicate.ApplicationStageHistory) *ApplicationStageHistoryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ApplicationStageHistoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApplicationStageHistoryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ApplicationStageHistoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(applicationstagehistory.Table, sqlgraph.NewFieldSpec(applicationstagehistory.FieldID, field.TypeString))
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

// ApplicationStageHistoryDeleteOne is the builder for deleting a single ApplicationStageHistory entity.
type ApplicationStageHistoryDeleteOne struct {
	_d *ApplicationStageHistoryDelete
}

// Where appends a list predicates to the ApplicationStageHistoryDelete builder.
func (_d *ApplicationStageHistoryDeleteOne) Where(ps ...predicate.ApplicationStageHistory) *ApplicationStageHistoryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ApplicationStageHistoryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{applicationstagehistory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApplicationStageHistoryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
