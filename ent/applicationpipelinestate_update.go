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
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationpipelinestate"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ApplicationPipelineStateUpdate is the builder for updating ApplicationPipelineState entities.
type ApplicationPipelineStateUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationPipelineStateMutation
}

// Where appends a list predicates to the ApplicationPipelineStateUpdate builder.
func (_u *ApplicationPipelineStateUpdate) Where(ps ...predicate.ApplicationPipelineState) *ApplicationPipelineStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentStageID sets the "current_stage_id" field.
func (_u *ApplicationPipelineStateUpdate) SetCurrentStageID(v string) *ApplicationPipelineStateUpdate {
	_u.mutation.SetCurrentStageID(v)
	return _u
}

// SetNillableCurrentStageID sets the "current_stage_id" field if the given value is not nil.
func (_u *ApplicationPipelineStateUpdate) SetNillableCurrentStageID(v *string) *ApplicationPipelineStateUpdate {
	if v != nil {
		_u.SetCurrentStageID(*v)
	}
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *ApplicationPipelineStateUpdate) SetStatusCode(v string) *ApplicationPipelineStateUpdate {
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *ApplicationPipelineStateUpdate) SetNillableStatusCode(v *string) *ApplicationPipelineStateUpdate {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// SetOutcomeType sets the "outcome_type" field.
func (_u *ApplicationPipelineStateUpdate) SetOutcomeType(v models.OutcomeType) *ApplicationPipelineStateUpdate {
	_u.mutation.SetOutcomeType(v)
	return _u
}

// SetNillableOutcomeType sets the "outcome_type" field if the given value is not nil.
func (_u *ApplicationPipelineStateUpdate) SetNillableOutcomeType(v *models.OutcomeType) *ApplicationPipelineStateUpdate {
	if v != nil {
		_u.SetOutcomeType(*v)
	}
	return _u
}

// SetIsTerminal sets the "is_terminal" field.
func (_u *ApplicationPipelineStateUpdate) SetIsTerminal(v bool) *ApplicationPipelineStateUpdate {
	_u.mutation.SetIsTerminal(v)
	return _u
}

// SetNillableIsTerminal sets the "is_terminal" field if the given value is not nil.
func (_u *ApplicationPipelineStateUpdate) SetNillableIsTerminal(v *bool) *ApplicationPipelineStateUpdate {
	if v != nil {
		_u.SetIsTerminal(*v)
	}
	return _u
}

// SetEnteredStageAt sets the "entered_stage_at" field.
func (_u *ApplicationPipelineStateUpdate) SetEnteredStageAt(v time.Time) *ApplicationPipelineStateUpdate {
	_u.mutation.SetEnteredStageAt(v)
	return _u
}

// SetNillableEnteredStageAt sets the "entered_stage_at" field if the given value is not nil.
func (_u *ApplicationPipelineStateUpdate) SetNillableEnteredStageAt(v *time.Time) *ApplicationPipelineStateUpdate {
	if v != nil {
		_u.SetEnteredStageAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationPipelineStateUpdate) SetUpdatedAt(v time.Time) *ApplicationPipelineStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ApplicationPipelineStateMutation object of the builder.
func (_u *ApplicationPipelineStateUpdate) Mutation() *ApplicationPipelineStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicationPipelineStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationPipelineStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicationPipelineStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationPipelineStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationPipelineStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := applicationpipelinestate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationPipelineStateUpdate) check() error {
	if v, ok := _u.mutation.OutcomeType(); ok {
		if err := applicationpipelinestate.OutcomeTypeValidator(v); err != nil {
			return &ValidationError{Name: "outcome_type", err: fmt.Errorf(`ent: validator failed for field "ApplicationPipelineState.outcome_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicationPipelineStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(applicationpipelinestate.Table, applicationpipelinestate.Columns, sqlgraph.NewFieldSpec(applicationpipelinestate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentStageID(); ok {
		_spec.SetField(applicationpipelinestate.FieldCurrentStageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(applicationpipelinestate.FieldStatusCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutcomeType(); ok {
		_spec.SetField(applicationpipelinestate.FieldOutcomeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsTerminal(); ok {
		_spec.SetField(applicationpipelinestate.FieldIsTerminal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EnteredStageAt(); ok {
		_spec.SetField(applicationpipelinestate.FieldEnteredStageAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(applicationpipelinestate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicationpipelinestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicationPipelineStateUpdateOne is the builder for updating a single ApplicationPipelineState entity.
type ApplicationPipelineStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationPipelineStateMutation
}

// SetCurrentStageID sets the "current_stage_id" field.
func (_u *ApplicationPipelineStateUpdateOne) SetCurrentStageID(v string) *ApplicationPipelineStateUpdateOne {
	_u.mutation.SetCurrentStageID(v)
	return _u
}

// SetNillableCurrentStageID sets the "current_stage_id" field if the given value is not nil.
func (_u *ApplicationPipelineStateUpdateOne) SetNillableCurrentStageID(v *string) *ApplicationPipelineStateUpdateOne {
	if v != nil {
		_u.SetCurrentStageID(*v)
	}
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *ApplicationPipelineStateUpdateOne) SetStatusCode(v string) *ApplicationPipelineStateUpdateOne {
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *ApplicationPipelineStateUpdateOne) SetNillableStatusCode(v *string) *ApplicationPipelineStateUpdateOne {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// SetOutcomeType sets the "outcome_type" field.
func (_u *ApplicationPipelineStateUpdateOne) SetOutcomeType(v models.OutcomeType) *ApplicationPipelineStateUpdateOne {
	_u.mutation.SetOutcomeType(v)
	return _u
}

// SetNillableOutcomeType sets the "outcome_type" field if the given value is not nil.
func (_u *ApplicationPipelineStateUpdateOne) SetNillableOutcomeType(v *models.OutcomeType) *ApplicationPipelineStateUpdateOne {
	if v != nil {
		_u.SetOutcomeType(*v)
	}
	return _u
}

// SetIsTerminal sets the "is_terminal" field.
func (_u *ApplicationPipelineStateUpdateOne) SetIsTerminal(v bool) *ApplicationPipelineStateUpdateOne {
	_u.mutation.SetIsTerminal(v)
	return _u
}

// SetNillableIsTerminal sets the "is_terminal" field if the given value is not nil.
func (_u *ApplicationPipelineStateUpdateOne) SetNillableIsTerminal(v *bool) *ApplicationPipelineStateUpdateOne {
	if v != nil {
		_u.SetIsTerminal(*v)
	}
	return _u
}

// SetEnteredStageAt sets the "entered_stage_at" field.
func (_u *ApplicationPipelineStateUpdateOne) SetEnteredStageAt(v time.Time) *ApplicationPipelineStateUpdateOne {
	_u.mutation.SetEnteredStageAt(v)
	return _u
}

// SetNillableEnteredStageAt sets the "entered_stage_at" field if the given value is not nil.
func (_u *ApplicationPipelineStateUpdateOne) SetNillableEnteredStageAt(v *time.Time) *ApplicationPipelineStateUpdateOne {
	if v != nil {
		_u.SetEnteredStageAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationPipelineStateUpdateOne) SetUpdatedAt(v time.Time) *ApplicationPipelineStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ApplicationPipelineStateMutation object of the builder.
func (_u *ApplicationPipelineStateUpdateOne) Mutation() *ApplicationPipelineStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApplicationPipelineStateUpdate builder.
func (_u *ApplicationPipelineStateUpdateOne) Where(ps ...predicate.ApplicationPipelineState) *ApplicationPipelineStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicationPipelineStateUpdateOne) Select(field string, fields ...string) *ApplicationPipelineStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApplicationPipelineState entity.
func (_u *ApplicationPipelineStateUpdateOne) Save(ctx context.Context) (*ApplicationPipelineState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationPipelineStateUpdateOne) SaveX(ctx context.Context) *ApplicationPipelineState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicationPipelineStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationPipelineStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationPipelineStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := applicationpipelinestate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationPipelineStateUpdateOne) check() error {
	if v, ok := _u.mutation.OutcomeType(); ok {
		if err := applicationpipelinestate.OutcomeTypeValidator(v); err != nil {
			return &ValidationError{Name: "outcome_type", err: fmt.Errorf(`ent: validator failed for field "ApplicationPipelineState.outcome_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicationPipelineStateUpdateOne) sqlSave(ctx context.Context) (_node *ApplicationPipelineState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(applicationpipelinestate.Table, applicationpipelinestate.Columns, sqlgraph.NewFieldSpec(applicationpipelinestate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApplicationPipelineState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, applicationpipelinestate.FieldID)
		for _, f := range fields {
			if !applicationpipelinestate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != applicationpipelinestate.FieldID {
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
	if value, ok := _u.mutation.CurrentStageID(); ok {
		_spec.SetField(applicationpipelinestate.FieldCurrentStageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(applicationpipelinestate.FieldStatusCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutcomeType(); ok {
		_spec.SetField(applicationpipelinestate.FieldOutcomeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsTerminal(); ok {
		_spec.SetField(applicationpipelinestate.FieldIsTerminal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EnteredStageAt(); ok {
		_spec.SetField(applicationpipelinestate.FieldEnteredStageAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(applicationpipelinestate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ApplicationPipelineState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicationpipelinestate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
