// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationsignal"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
)

// ApplicationSignalDelete is the builder for deleting a ApplicationSignal entity.
type ApplicationSignalDelete struct {
	config
	hooks    []Hook
	mutation *ApplicationSignalMutation
}

// Where appends a list predicates to the ApplicationSignalDelete builder.
func (_d *ApplicationSignalDelete) Where(ps ...predicate.ApplicationSignal) *ApplicationSignalDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ApplicationSignalDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApplicationSignalDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ApplicationSignalDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(applicationsignal.Table, sqlgraph.NewFieldSpec(applicationsignal.FieldID, field.TypeString))
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

// ApplicationSignalDeleteOne is the builder for deleting a single ApplicationSignal entity.
type ApplicationSignalDeleteOne struct {
	_d *ApplicationSignalDelete
}

// Where appends a list predicates to the ApplicationSignalDelete builder.
func (_d *ApplicationSignalDeleteOne) Where(ps ...predicate.ApplicationSignal) *ApplicationSignalDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ApplicationSignalDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{applicationsignal.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApplicationSignalDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
