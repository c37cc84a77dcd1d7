// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantapplicationstatus"
)

// TenantApplicationStatusDelete is the builder for deleting a TenantApplicationStatus entity.
type TenantApplicationStatusDelete struct {
	config
	hooks    []Hook
	mutation *TenantApplicationStatusMutation
}

// Where appends a list predicates to the TenantApplicationStatusDelete builder.
func (_d *TenantApplicationStatusDelete) Where(ps ...predicate.TenantApplicationStatus) *TenantApplicationStatusDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TenantApplicationStatusDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TenantApplicationStatusDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TenantApplicationStatusDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(tenantapplicationstatus.Table, sqlgraph.NewFieldSpec(tenantapplicationstatus.FieldID, field.TypeString))
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

// TenantApplicationStatusDeleteOne is the builder for deleting a single TenantApplicationStatus entity.
type TenantApplicationStatusDeleteOne struct {
	_d *TenantApplicationStatusDelete
}

// Where appends a list predicates to the TenantApplicationStatusDelete builder.
func (_d *TenantApplicationStatusDeleteOne) Where(ps ...predicate.TenantApplicationStatus) *TenantApplicationStatusDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TenantApplicationStatusDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{tenantapplicationstatus.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TenantApplicationStatusDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
