// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationstagehistory"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
)

// ApplicationStageHistoryUpdate is the builder for updating ApplicationStageHistory entities.
type ApplicationStageHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationStageHistoryMutation
}

// Where appends a list predicates to the ApplicationStageHistoryUpdate builder.
func (_u *ApplicationStageHistoryUpdate) Where(ps ...predicate.ApplicationStageHistory) *ApplicationStageHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ApplicationStageHistoryMutation object of the builder.
func (_u *ApplicationStageHistoryUpdate) Mutation() *ApplicationStageHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicationStageHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationStageHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicationStageHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationStageHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ApplicationStageHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(applicationstagehistory.Table, applicationstagehistory.Columns, sqlgraph.NewFieldSpec(applicationstagehistory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ActionCodeCleared() {
		_spec.ClearField(applicationstagehistory.FieldActionCode, field.TypeString)
	}
	if _u.mutation.FromStageIDCleared() {
		_spec.ClearField(applicationstagehistory.FieldFromStageID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicationstagehistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicationStageHistoryUpdateOne is the builder for updating a single ApplicationStageHistory entity.
type ApplicationStageHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationStageHistoryMutation
}

// Mutation returns the ApplicationStageHistoryMutation object of the builder.
func (_u *ApplicationStageHistoryUpdateOne) Mutation() *ApplicationStageHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApplicationStageHistoryUpdate builder.
func (_u *ApplicationStageHistoryUpdateOne) Where(ps ...predicate.ApplicationStageHistory) *ApplicationStageHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicationStageHistoryUpdateOne) Select(field string, fields ...string) *ApplicationStageHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApplicationStageHistory entity.
func (_u *ApplicationStageHistoryUpdateOne) Save(ctx context.Context) (*ApplicationStageHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationStageHistoryUpdateOne) SaveX(ctx context.Context) *ApplicationStageHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicationStageHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationStageHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ApplicationStageHistoryUpdateOne) sqlSave(ctx context.Context) (_node *ApplicationStageHistory, err error) {
	_spec := sqlgraph.NewUpdateSpec(applicationstagehistory.Table, applicationstagehistory.Columns, sqlgraph.NewFieldSpec(applicationstagehistory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApplicationStageHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, applicationstagehistory.FieldID)
		for _, f := range fields {
			if !applicationstagehistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != applicationstagehistory.FieldID {
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
	if _u.mutation.ActionCodeCleared() {
		_spec.ClearField(applicationstagehistory.FieldActionCode, field.TypeString)
	}
	if _u.mutation.FromStageIDCleared() {
		_spec.ClearField(applicationstagehistory.FieldFromStageID, field.TypeString)
	}
	_node = &ApplicationStageHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicationstagehistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
