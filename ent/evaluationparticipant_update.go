// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationparticipant"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// EvaluationParticipantUpdate is the builder for updating EvaluationParticipant entities.
type EvaluationParticipantUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationParticipantMutation
}

// Where appends a list predicates to the EvaluationParticipantUpdate builder.
func (_u *EvaluationParticipantUpdate) Where(ps ...predicate.EvaluationParticipant) *EvaluationParticipantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EvaluationParticipantUpdate) SetStatus(v models.ParticipantStatus) *EvaluationParticipantUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EvaluationParticipantUpdate) SetNillableStatus(v *models.ParticipantStatus) *EvaluationParticipantUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *EvaluationParticipantUpdate) SetSequence(v int) *EvaluationParticipantUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *EvaluationParticipantUpdate) SetNillableSequence(v *int) *EvaluationParticipantUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *EvaluationParticipantUpdate) AddSequence(v int) *EvaluationParticipantUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EvaluationParticipantUpdate) SetUpdatedAt(v time.Time) *EvaluationParticipantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EvaluationParticipantMutation object of the builder.
func (_u *EvaluationParticipantUpdate) Mutation() *EvaluationParticipantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationParticipantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationParticipantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationParticipantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationParticipantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EvaluationParticipantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := evaluationparticipant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationParticipantUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := evaluationparticipant.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EvaluationParticipant.status": %w`, err)}
		}
	}
	if _u.mutation.EvaluationCleared() && len(_u.mutation.EvaluationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationParticipant.evaluation"`)
	}
	return nil
}

func (_u *EvaluationParticipantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationparticipant.Table, evaluationparticipant.Columns, sqlgraph.NewFieldSpec(evaluationparticipant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(evaluationparticipant.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(evaluationparticipant.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(evaluationparticipant.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(evaluationparticipant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationparticipant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationParticipantUpdateOne is the builder for updating a single EvaluationParticipant entity.
type EvaluationParticipantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationParticipantMutation
}

// SetStatus sets the "status" field.
func (_u *EvaluationParticipantUpdateOne) SetStatus(v models.ParticipantStatus) *EvaluationParticipantUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EvaluationParticipantUpdateOne) SetNillableStatus(v *models.ParticipantStatus) *EvaluationParticipantUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *EvaluationParticipantUpdateOne) SetSequence(v int) *EvaluationParticipantUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *EvaluationParticipantUpdateOne) SetNillableSequence(v *int) *EvaluationParticipantUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *EvaluationParticipantUpdateOne) AddSequence(v int) *EvaluationParticipantUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EvaluationParticipantUpdateOne) SetUpdatedAt(v time.Time) *EvaluationParticipantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EvaluationParticipantMutation object of the builder.
func (_u *EvaluationParticipantUpdateOne) Mutation() *EvaluationParticipantMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationParticipantUpdate builder.
func (_u *EvaluationParticipantUpdateOne) Where(ps ...predicate.EvaluationParticipant) *EvaluationParticipantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationParticipantUpdateOne) Select(field string, fields ...string) *EvaluationParticipantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationParticipant entity.
func (_u *EvaluationParticipantUpdateOne) Save(ctx context.Context) (*EvaluationParticipant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationParticipantUpdateOne) SaveX(ctx context.Context) *EvaluationParticipant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationParticipantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationParticipantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EvaluationParticipantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := evaluationparticipant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationParticipantUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := evaluationparticipant.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EvaluationParticipant.status": %w`, err)}
		}
	}
	if _u.mutation.EvaluationCleared() && len(_u.mutation.EvaluationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationParticipant.evaluation"`)
	}
	return nil
}

func (_u *EvaluationParticipantUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationParticipant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationparticipant.Table, evaluationparticipant.Columns, sqlgraph.NewFieldSpec(evaluationparticipant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationParticipant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationparticipant.FieldID)
		for _, f := range fields {
			if !evaluationparticipant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationparticipant.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(evaluationparticipant.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(evaluationparticipant.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(evaluationparticipant.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(evaluationparticipant.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EvaluationParticipant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationparticipant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
