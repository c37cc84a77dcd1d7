// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/ent/stageevaluation"
)

// StageEvaluationUpdate is the builder for updating StageEvaluation entities.
type StageEvaluationUpdate struct {
	config
	hooks    []Hook
	mutation *StageEvaluationMutation
}

// Where appends a list predicates to the StageEvaluationUpdate builder.
func (_u *StageEvaluationUpdate) Where(ps ...predicate.StageEvaluation) *StageEvaluationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAutoCreate sets the "auto_create" field.
func (_u *StageEvaluationUpdate) SetAutoCreate(v bool) *StageEvaluationUpdate {
	_u.mutation.SetAutoCreate(v)
	return _u
}

// SetNillableAutoCreate sets the "auto_create" field if the given value is not nil.
func (_u *StageEvaluationUpdate) SetNillableAutoCreate(v *bool) *StageEvaluationUpdate {
	if v != nil {
		_u.SetAutoCreate(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *StageEvaluationUpdate) SetIsActive(v bool) *StageEvaluationUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *StageEvaluationUpdate) SetNillableIsActive(v *bool) *StageEvaluationUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the StageEvaluationMutation object of the builder.
func (_u *StageEvaluationUpdate) Mutation() *StageEvaluationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageEvaluationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageEvaluationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageEvaluationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageEvaluationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StageEvaluationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(stageevaluation.Table, stageevaluation.Columns, sqlgraph.NewFieldSpec(stageevaluation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AutoCreate(); ok {
		_spec.SetField(stageevaluation.FieldAutoCreate, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(stageevaluation.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageevaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageEvaluationUpdateOne is the builder for updating a single StageEvaluation entity.
type StageEvaluationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageEvaluationMutation
}

// SetAutoCreate sets the "auto_create" field.
func (_u *StageEvaluationUpdateOne) SetAutoCreate(v bool) *StageEvaluationUpdateOne {
	_u.mutation.SetAutoCreate(v)
	return _u
}

// SetNillableAutoCreate sets the "auto_create" field if the given value is not nil.
func (_u *StageEvaluationUpdateOne) SetNillableAutoCreate(v *bool) *StageEvaluationUpdateOne {
	if v != nil {
		_u.SetAutoCreate(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *StageEvaluationUpdateOne) SetIsActive(v bool) *StageEvaluationUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *StageEvaluationUpdateOne) SetNillableIsActive(v *bool) *StageEvaluationUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the StageEvaluationMutation object of the builder.
func (_u *StageEvaluationUpdateOne) Mutation() *StageEvaluationMutation {
	return _u.mutation
}

// Where appends a list predicates to the StageEvaluationUpdate builder.
func (_u *StageEvaluationUpdateOne) Where(ps ...predicate.StageEvaluation) *StageEvaluationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageEvaluationUpdateOne) Select(field string, fields ...string) *StageEvaluationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageEvaluation entity.
func (_u *StageEvaluationUpdateOne) Save(ctx context.Context) (*StageEvaluation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageEvaluationUpdateOne) SaveX(ctx context.Context) *StageEvaluation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageEvaluationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageEvaluationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StageEvaluationUpdateOne) sqlSave(ctx context.Context) (_node *StageEvaluation, err error) {
	_spec := sqlgraph.NewUpdateSpec(stageevaluation.Table, stageevaluation.Columns, sqlgraph.NewFieldSpec(stageevaluation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageEvaluation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stageevaluation.FieldID)
		for _, f := range fields {
			if !stageevaluation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stageevaluation.FieldID {
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
	if value, ok := _u.mutation.AutoCreate(); ok {
		_spec.SetField(stageevaluation.FieldAutoCreate, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(stageevaluation.FieldIsActive, field.TypeBool, value)
	}
	_node = &StageEvaluation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageevaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
