// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ameyzing09/rtr-api-sub000/ent/pipelinestage"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// PipelineStageUpdate is the builder for updating PipelineStage entities.
type PipelineStageUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineStageMutation
}

// Where appends a list predicates to the PipelineStageUpdate builder.
func (_u *PipelineStageUpdate) Where(ps ...predicate.PipelineStage) *PipelineStageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PipelineStageUpdate) SetName(v string) *PipelineStageUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PipelineStageUpdate) SetNillableName(v *string) *PipelineStageUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStageType sets the "stage_type" field.
func (_u *PipelineStageUpdate) SetStageType(v models.StageType) *PipelineStageUpdate {
	_u.mutation.SetStageType(v)
	return _u
}

// SetNillableStageType sets the "stage_type" field if the given value is not nil.
func (_u *PipelineStageUpdate) SetNillableStageType(v *models.StageType) *PipelineStageUpdate {
	if v != nil {
		_u.SetStageType(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *PipelineStageUpdate) SetOrderIndex(v int) *PipelineStageUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *PipelineStageUpdate) SetNillableOrderIndex(v *int) *PipelineStageUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *PipelineStageUpdate) AddOrderIndex(v int) *PipelineStageUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetConductedBy sets the "conducted_by" field.
func (_u *PipelineStageUpdate) SetConductedBy(v string) *PipelineStageUpdate {
	_u.mutation.SetConductedBy(v)
	return _u
}

// SetNillableConductedBy sets the "conducted_by" field if the given value is not nil.
func (_u *PipelineStageUpdate) SetNillableConductedBy(v *string) *PipelineStageUpdate {
	if v != nil {
		_u.SetConductedBy(*v)
	}
	return _u
}

// ClearConductedBy clears the value of the "conducted_by" field.
func (_u *PipelineStageUpdate) ClearConductedBy() *PipelineStageUpdate {
	_u.mutation.ClearConductedBy()
	return _u
}

// Mutation returns the PipelineStageMutation object of the builder.
func (_u *PipelineStageUpdate) Mutation() *PipelineStageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineStageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineStageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineStageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineStageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineStageUpdate) check() error {
	if v, ok := _u.mutation.StageType(); ok {
		if err := pipelinestage.StageTypeValidator(v); err != nil {
			return &ValidationError{Name: "stage_type", err: fmt.Errorf(`ent: validator failed for field "PipelineStage.stage_type": %w`, err)}
		}
	}
	if _u.mutation.PipelineCleared() && len(_u.mutation.PipelineIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineStage.pipeline"`)
	}
	return nil
}

func (_u *PipelineStageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinestage.Table, pipelinestage.Columns, sqlgraph.NewFieldSpec(pipelinestage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pipelinestage.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageType(); ok {
		_spec.SetField(pipelinestage.FieldStageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(pipelinestage.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(pipelinestage.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConductedBy(); ok {
		_spec.SetField(pipelinestage.FieldConductedBy, field.TypeString, value)
	}
	if _u.mutation.ConductedByCleared() {
		_spec.ClearField(pipelinestage.FieldConductedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinestage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineStageUpdateOne is the builder for updating a single PipelineStage entity.
type PipelineStageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineStageMutation
}

// SetName sets the "name" field.
func (_u *PipelineStageUpdateOne) SetName(v string) *PipelineStageUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PipelineStageUpdateOne) SetNillableName(v *string) *PipelineStageUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStageType sets the "stage_type" field.
func (_u *PipelineStageUpdateOne) SetStageType(v models.StageType) *PipelineStageUpdateOne {
	_u.mutation.SetStageType(v)
	return _u
}

// SetNillableStageType sets the "stage_type" field if the given value is not nil.
func (_u *PipelineStageUpdateOne) SetNillableStageType(v *models.StageType) *PipelineStageUpdateOne {
	if v != nil {
		_u.SetStageType(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *PipelineStageUpdateOne) SetOrderIndex(v int) *PipelineStageUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *PipelineStageUpdateOne) SetNillableOrderIndex(v *int) *PipelineStageUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *PipelineStageUpdateOne) AddOrderIndex(v int) *PipelineStageUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetConductedBy sets the "conducted_by" field.
func (_u *PipelineStageUpdateOne) SetConductedBy(v string) *PipelineStageUpdateOne {
	_u.mutation.SetConductedBy(v)
	return _u
}

// SetNillableConductedBy sets the "conducted_by" field if the given value is not nil.
func (_u *PipelineStageUpdateOne) SetNillableConductedBy(v *string) *PipelineStageUpdateOne {
	if v != nil {
		_u.SetConductedBy(*v)
	}
	return _u
}

// ClearConductedBy clears the value of the "conducted_by" field.
func (_u *PipelineStageUpdateOne) ClearConductedBy() *PipelineStageUpdateOne {
	_u.mutation.ClearConductedBy()
	return _u
}

// Mutation returns the PipelineStageMutation object of the builder.
func (_u *PipelineStageUpdateOne) Mutation() *PipelineStageMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineStageUpdate builder.
func (_u *PipelineStageUpdateOne) Where(ps ...predicate.PipelineStage) *PipelineStageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineStageUpdateOne) Select(field string, fields ...string) *PipelineStageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineStage entity.
func (_u *PipelineStageUpdateOne) Save(ctx context.Context) (*PipelineStage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineStageUpdateOne) SaveX(ctx context.Context) *PipelineStage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineStageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineStageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineStageUpdateOne) check() error {
	if v, ok := _u.mutation.StageType(); ok {
		if err := pipelinestage.StageTypeValidator(v); err != nil {
			return &ValidationError{Name: "stage_type", err: fmt.Errorf(`ent: validator failed for field "PipelineStage.stage_type": %w`, err)}
		}
	}
	if _u.mutation.PipelineCleared() && len(_u.mutation.PipelineIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineStage.pipeline"`)
	}
	return nil
}

func (_u *PipelineStageUpdateOne) sqlSave(ctx context.Context) (_node *PipelineStage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinestage.Table, pipelinestage.Columns, sqlgraph.NewFieldSpec(pipelinestage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineStage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinestage.FieldID)
		for _, f := range fields {
			if !pipelinestage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinestage.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(pipelinestage.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageType(); ok {
		_spec.SetField(pipelinestage.FieldStageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(pipelinestage.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(pipelinestage.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConductedBy(); ok {
		_spec.SetField(pipelinestage.FieldConductedBy, field.TypeString, value)
	}
	if _u.mutation.ConductedByCleared() {
		_spec.ClearField(pipelinestage.FieldConductedBy, field.TypeString)
	}
	_node = &PipelineStage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinestage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
