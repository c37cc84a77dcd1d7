// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationpipelinestate"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
)

// ApplicationPipelineStateDelete is the builder for deleting a ApplicationPipelineState entity.
type ApplicationPipelineStateDelete struct {
	config
	hooks    []Hook
	mutation *ApplicationPipelineStateMutation
}

// Where appends a list predicates to the ApplicationPipelineStateDelete builder.
func (_d *ApplicationPipelineStateDelete) Where(ps ...predicate.ApplicationPipelineState) *ApplicationPipelineStateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ApplicationPipelineStateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApplicationPipelineStateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ApplicationPipelineStateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(applicationpipelinestate.Table, sqlgraph.NewFieldSpec(applicationpipelinestate.FieldID, field.TypeString))
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

// ApplicationPipelineStateDeleteOne is the builder for deleting a single ApplicationPipelineState entity.
type ApplicationPipelineStateDeleteOne struct {
	_d *ApplicationPipelineStateDelete
}

// Where appends a list predicates to the ApplicationPipelineStateDelete builder.
func (_d *ApplicationPipelineStateDeleteOne) Where(ps ...predicate.ApplicationPipelineState) *ApplicationPipelineStateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ApplicationPipelineStateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{applicationpipelinestate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApplicationPipelineStateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
