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
	"github.com/ameyzing09/rtr-api-sub000/ent/stagefeedback"
)

// StageFeedbackUpdate is the builder for updating StageFeedback entities.
type StageFeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *StageFeedbackMutation
}

// Where appends a list predicates to the StageFeedbackUpdate builder.
func (_u *StageFeedbackUpdate) Where(ps ...predicate.StageFeedback) *StageFeedbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the StageFeedbackMutation object of the builder.
func (_u *StageFeedbackUpdate) Mutation() *StageFeedbackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageFeedbackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageFeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageFeedbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageFeedbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StageFeedbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(stagefeedback.Table, stagefeedback.Columns, sqlgraph.NewFieldSpec(stagefeedback.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.RatingCleared() {
		_spec.ClearField(stagefeedback.FieldRating, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagefeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageFeedbackUpdateOne is the builder for updating a single StageFeedback entity.
type StageFeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageFeedbackMutation
}

// Mutation returns the StageFeedbackMutation object of the builder.
func (_u *StageFeedbackUpdateOne) Mutation() *StageFeedbackMutation {
	return _u.mutation
}

// Where appends a list predicates to the StageFeedbackUpdate builder.
func (_u *StageFeedbackUpdateOne) Where(ps ...predicate.StageFeedback) *StageFeedbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageFeedbackUpdateOne) Select(field string, fields ...string) *StageFeedbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageFeedback entity.
func (_u *StageFeedbackUpdateOne) Save(ctx context.Context) (*StageFeedback, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageFeedbackUpdateOne) SaveX(ctx context.Context) *StageFeedback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageFeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageFeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StageFeedbackUpdateOne) sqlSave(ctx context.Context) (_node *StageFeedback, err error) {
	_spec := sqlgraph.NewUpdateSpec(stagefeedback.Table, stagefeedback.Columns, sqlgraph.NewFieldSpec(stagefeedback.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageFeedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagefeedback.FieldID)
		for _, f := range fields {
			if !stagefeedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagefeedback.FieldID {
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
	if _u.mutation.RatingCleared() {
		_spec.ClearField(stagefeedback.FieldRating, field.TypeInt)
	}
	_node = &StageFeedback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagefeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
