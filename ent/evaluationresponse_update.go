// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationresponse"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
)

// EvaluationResponseUpdate is the builder for updating EvaluationResponse entities.
type EvaluationResponseUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationResponseMutation
}

// Where appends a list predicates to the EvaluationResponseUpdate builder.
func (_u *EvaluationResponseUpdate) Where(ps ...predicate.EvaluationResponse) *EvaluationResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the EvaluationResponseMutation object of the builder.
func (_u *EvaluationResponseUpdate) Mutation() *EvaluationResponseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationResponseUpdate) check() error {
	if _u.mutation.EvaluationCleared() && len(_u.mutation.EvaluationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationResponse.evaluation"`)
	}
	return nil
}

func (_u *EvaluationResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationresponse.Table, evaluationresponse.Columns, sqlgraph.NewFieldSpec(evaluationresponse.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationResponseUpdateOne is the builder for updating a single EvaluationResponse entity.
type EvaluationResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationResponseMutation
}

// Mutation returns the EvaluationResponseMutation object of the builder.
func (_u *EvaluationResponseUpdateOne) Mutation() *EvaluationResponseMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationResponseUpdate builder.
func (_u *EvaluationResponseUpdateOne) Where(ps ...predicate.EvaluationResponse) *EvaluationResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationResponseUpdateOne) Select(field string, fields ...string) *EvaluationResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationResponse entity.
func (_u *EvaluationResponseUpdateOne) Save(ctx context.Context) (*EvaluationResponse, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationResponseUpdateOne) SaveX(ctx context.Context) *EvaluationResponse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationResponseUpdateOne) check() error {
	if _u.mutation.EvaluationCleared() && len(_u.mutation.EvaluationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationResponse.evaluation"`)
	}
	return nil
}

func (_u *EvaluationResponseUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationResponse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationresponse.Table, evaluationresponse.Columns, sqlgraph.NewFieldSpec(evaluationresponse.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationResponse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationresponse.FieldID)
		for _, f := range fields {
			if !evaluationresponse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationresponse.FieldID {
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
	_node = &EvaluationResponse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
