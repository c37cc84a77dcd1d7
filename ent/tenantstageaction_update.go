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
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantstageaction"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// TenantStageActionUpdate is the builder for updating TenantStageAction entities.
type TenantStageActionUpdate struct {
	config
	hooks    []Hook
	mutation *TenantStageActionMutation
}

// Where appends a list predicates to the TenantStageActionUpdate builder.
func (_u *TenantStageActionUpdate) Where(ps ...predicate.TenantStageAction) *TenantStageActionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActionCode sets the "action_code" field.
func (_u *TenantStageActionUpdate) SetActionCode(v string) *TenantStageActionUpdate {
	_u.mutation.SetActionCode(v)
	return _u
}

// SetNillableActionCode sets the "action_code" field if the given value is not nil.
func (_u *TenantStageActionUpdate) SetNillableActionCode(v *string) *TenantStageActionUpdate {
	if v != nil {
		_u.SetActionCode(*v)
	}
	return _u
}

// SetDisplayLabel sets the "display_label" field.
func (_u *TenantStageActionUpdate) SetDisplayLabel(v string) *TenantStageActionUpdate {
	_u.mutation.SetDisplayLabel(v)
	return _u
}

// SetNillableDisplayLabel sets the "display_label" field if the given value is not nil.
func (_u *TenantStageActionUpdate) SetNillableDisplayLabel(v *string) *TenantStageActionUpdate {
	if v != nil {
		_u.SetDisplayLabel(*v)
	}
	return _u
}

// ClearDisplayLabel clears the value of the "display_label" field.
func (_u *TenantStageActionUpdate) ClearDisplayLabel() *TenantStageActionUpdate {
	_u.mutation.ClearDisplayLabel()
	return _u
}

// SetOutcomeType sets the "outcome_type" field.
func (_u *TenantStageActionUpdate) SetOutcomeType(v models.OutcomeType) *TenantStageActionUpdate {
	_u.mutation.SetOutcomeType(v)
	return _u
}

// SetNillableOutcomeType sets the "outcome_type" field if the given value is not nil.
func (_u *TenantStageActionUpdate) SetNillableOutcomeType(v *models.OutcomeType) *TenantStageActionUpdate {
	if v != nil {
		_u.SetOutcomeType(*v)
	}
	return _u
}

// ClearOutcomeType clears the value of the "outcome_type" field.
func (_u *TenantStageActionUpdate) ClearOutcomeType() *TenantStageActionUpdate {
	_u.mutation.ClearOutcomeType()
	return _u
}

// SetMovesToNextStage sets the "moves_to_next_stage" field.
func (_u *TenantStageActionUpdate) SetMovesToNextStage(v bool) *TenantStageActionUpdate {
	_u.mutation.SetMovesToNextStage(v)
	return _u
}

// SetNillableMovesToNextStage sets the "moves_to_next_stage" field if the given value is not nil.
func (_u *TenantStageActionUpdate) SetNillableMovesToNextStage(v *bool) *TenantStageActionUpdate {
	if v != nil {
		_u.SetMovesToNextStage(*v)
	}
	return _u
}

// SetIsTerminal sets the "is_terminal" field.
func (_u *TenantStageActionUpdate) SetIsTerminal(v bool) *TenantStageActionUpdate {
	_u.mutation.SetIsTerminal(v)
	return _u
}

// SetNillableIsTerminal sets the "is_terminal" field if the given value is not nil.
func (_u *TenantStageActionUpdate) SetNillableIsTerminal(v *bool) *TenantStageActionUpdate {
	if v != nil {
		_u.SetIsTerminal(*v)
	}
	return _u
}

// SetRequiredCapability sets the "required_capability" field.
func (_u *TenantStageActionUpdate) SetRequiredCapability(v string) *TenantStageActionUpdate {
	_u.mutation.SetRequiredCapability(v)
	return _u
}

// SetNillableRequiredCapability sets the "required_capability" field if the given value is not nil.
func (_u *TenantStageActionUpdate) SetNillableRequiredCapability(v *string) *TenantStageActionUpdate {
	if v != nil {
		_u.SetRequiredCapability(*v)
	}
	return _u
}

// ClearRequiredCapability clears the value of the "required_capability" field.
func (_u *TenantStageActionUpdate) ClearRequiredCapability() *TenantStageActionUpdate {
	_u.mutation.ClearRequiredCapability()
	return _u
}

// SetRequiresFeedback sets the "requires_feedback" field.
func (_u *TenantStageActionUpdate) SetRequiresFeedback(v bool) *TenantStageActionUpdate {
	_u.mutation.SetRequiresFeedback(v)
	return _u
}

// SetNillableRequiresFeedback sets the "requires_feedback" field if the given value is not nil.
func (_u *TenantStageActionUpdate) SetNillableRequiresFeedback(v *bool) *TenantStageActionUpdate {
	if v != nil {
		_u.SetRequiresFeedback(*v)
	}
	return _u
}

// SetRequiresNotes sets the "requires_notes" field.
func (_u *TenantStageActionUpdate) SetRequiresNotes(v bool) *TenantStageActionUpdate {
	_u.mutation.SetRequiresNotes(v)
	return _u
}

// SetNillableRequiresNotes sets the "requires_notes" field if the given value is not nil.
func (_u *TenantStageActionUpdate) SetNillableRequiresNotes(v *bool) *TenantStageActionUpdate {
	if v != nil {
		_u.SetRequiresNotes(*v)
	}
	return _u
}

// SetSignalConditions sets the "signal_conditions" field.
func (_u *TenantStageActionUpdate) SetSignalConditions(v *models.SignalConditions) *TenantStageActionUpdate {
	_u.mutation.SetSignalConditions(v)
	return _u
}

// ClearSignalConditions clears the value of the "signal_conditions" field.
func (_u *TenantStageActionUpdate) ClearSignalConditions() *TenantStageActionUpdate {
	_u.mutation.ClearSignalConditions()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TenantStageActionUpdate) SetIsActive(v bool) *TenantStageActionUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TenantStageActionUpdate) SetNillableIsActive(v *bool) *TenantStageActionUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantStageActionUpdate) SetUpdatedAt(v time.Time) *TenantStageActionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TenantStageActionMutation object of the builder.
func (_u *TenantStageActionUpdate) Mutation() *TenantStageActionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TenantStageActionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantStageActionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TenantStageActionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantStageActionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantStageActionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenantstageaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TenantStageActionUpdate) check() error {
	if v, ok := _u.mutation.OutcomeType(); ok {
		if err := tenantstageaction.OutcomeTypeValidator(v); err != nil {
			return &ValidationError{Name: "outcome_type", err: fmt.Errorf(`ent: validator failed for field "TenantStageAction.outcome_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SignalConditions(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "signal_conditions", err: fmt.Errorf(`ent: validator failed for field "TenantStageAction.signal_conditions": %w`, err)}
		}
	}
	return nil
}

func (_u *TenantStageActionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenantstageaction.Table, tenantstageaction.Columns, sqlgraph.NewFieldSpec(tenantstageaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActionCode(); ok {
		_spec.SetField(tenantstageaction.FieldActionCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayLabel(); ok {
		_spec.SetField(tenantstageaction.FieldDisplayLabel, field.TypeString, value)
	}
	if _u.mutation.DisplayLabelCleared() {
		_spec.ClearField(tenantstageaction.FieldDisplayLabel, field.TypeString)
	}
	if value, ok := _u.mutation.OutcomeType(); ok {
		_spec.SetField(tenantstageaction.FieldOutcomeType, field.TypeEnum, value)
	}
	if _u.mutation.OutcomeTypeCleared() {
		_spec.ClearField(tenantstageaction.FieldOutcomeType, field.TypeEnum)
	}
	if value, ok := _u.mutation.MovesToNextStage(); ok {
		_spec.SetField(tenantstageaction.FieldMovesToNextStage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsTerminal(); ok {
		_spec.SetField(tenantstageaction.FieldIsTerminal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequiredCapability(); ok {
		_spec.SetField(tenantstageaction.FieldRequiredCapability, field.TypeString, value)
	}
	if _u.mutation.RequiredCapabilityCleared() {
		_spec.ClearField(tenantstageaction.FieldRequiredCapability, field.TypeString)
	}
	if value, ok := _u.mutation.RequiresFeedback(); ok {
		_spec.SetField(tenantstageaction.FieldRequiresFeedback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequiresNotes(); ok {
		_spec.SetField(tenantstageaction.FieldRequiresNotes, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SignalConditions(); ok {
		_spec.SetField(tenantstageaction.FieldSignalConditions, field.TypeJSON, value)
	}
	if _u.mutation.SignalConditionsCleared() {
		_spec.ClearField(tenantstageaction.FieldSignalConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(tenantstageaction.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantstageaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenantstageaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TenantStageActionUpdateOne is the builder for updating a single TenantStageAction entity.
type TenantStageActionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TenantStageActionMutation
}

// SetActionCode sets the "action_code" field.
func (_u *TenantStageActionUpdateOne) SetActionCode(v string) *TenantStageActionUpdateOne {
	_u.mutation.SetActionCode(v)
	return _u
}

// SetNillableActionCode sets the "action_code" field if the given value is not nil.
func (_u *TenantStageActionUpdateOne) SetNillableActionCode(v *string) *TenantStageActionUpdateOne {
	if v != nil {
		_u.SetActionCode(*v)
	}
	return _u
}

// SetDisplayLabel sets the "display_label" field.
func (_u *TenantStageActionUpdateOne) SetDisplayLabel(v string) *TenantStageActionUpdateOne {
	_u.mutation.SetDisplayLabel(v)
	return _u
}

// SetNillableDisplayLabel sets the "display_label" field if the given value is not nil.
func (_u *TenantStageActionUpdateOne) SetNillableDisplayLabel(v *string) *TenantStageActionUpdateOne {
	if v != nil {
		_u.SetDisplayLabel(*v)
	}
	return _u
}

// ClearDisplayLabel clears the value of the "display_label" field.
func (_u *TenantStageActionUpdateOne) ClearDisplayLabel() *TenantStageActionUpdateOne {
	_u.mutation.ClearDisplayLabel()
	return _u
}

// SetOutcomeType sets the "outcome_type" field.
func (_u *TenantStageActionUpdateOne) SetOutcomeType(v models.OutcomeType) *TenantStageActionUpdateOne {
	_u.mutation.SetOutcomeType(v)
	return _u
}

// SetNillableOutcomeType sets the "outcome_type" field if the given value is not nil.
func (_u *TenantStageActionUpdateOne) SetNillableOutcomeType(v *models.OutcomeType) *TenantStageActionUpdateOne {
	if v != nil {
		_u.SetOutcomeType(*v)
	}
	return _u
}

// ClearOutcomeType clears the value of the "outcome_type" field.
func (_u *TenantStageActionUpdateOne) ClearOutcomeType() *TenantStageActionUpdateOne {
	_u.mutation.ClearOutcomeType()
	return _u
}

// SetMovesToNextStage sets the "moves_to_next_stage" field.
func (_u *TenantStageActionUpdateOne) SetMovesToNextStage(v bool) *TenantStageActionUpdateOne {
	_u.mutation.SetMovesToNextStage(v)
	return _u
}

// SetNillableMovesToNextStage sets the "moves_to_next_stage" field if the given value is not nil.
func (_u *TenantStageActionUpdateOne) SetNillableMovesToNextStage(v *bool) *TenantStageActionUpdateOne {
	if v != nil {
		_u.SetMovesToNextStage(*v)
	}
	return _u
}

// SetIsTerminal sets the "is_terminal" field.
func (_u *TenantStageActionUpdateOne) SetIsTerminal(v bool) *TenantStageActionUpdateOne {
	_u.mutation.SetIsTerminal(v)
	return _u
}

// SetNillableIsTerminal sets the "is_terminal" field if the given value is not nil.
func (_u *TenantStageActionUpdateOne) SetNillableIsTerminal(v *bool) *TenantStageActionUpdateOne {
	if v != nil {
		_u.SetIsTerminal(*v)
	}
	return _u
}

// SetRequiredCapability sets the "required_capability" field.
func (_u *TenantStageActionUpdateOne) SetRequiredCapability(v string) *TenantStageActionUpdateOne {
	_u.mutation.SetRequiredCapability(v)
	return _u
}

// SetNillableRequiredCapability sets the "required_capability" field if the given value is not nil.
func (_u *TenantStageActionUpdateOne) SetNillableRequiredCapability(v *string) *TenantStageActionUpdateOne {
	if v != nil {
		_u.SetRequiredCapability(*v)
	}
	return _u
}

// ClearRequiredCapability clears the value of the "required_capability" field.
func (_u *TenantStageActionUpdateOne) ClearRequiredCapability() *TenantStageActionUpdateOne {
	_u.mutation.ClearRequiredCapability()
	return _u
}

// SetRequiresFeedback sets the "requires_feedback" field.
func (_u *TenantStageActionUpdateOne) SetRequiresFeedback(v bool) *TenantStageActionUpdateOne {
	_u.mutation.SetRequiresFeedback(v)
	return _u
}

// SetNillableRequiresFeedback sets the "requires_feedback" field if the given value is not nil.
func (_u *TenantStageActionUpdateOne) SetNillableRequiresFeedback(v *bool) *TenantStageActionUpdateOne {
	if v != nil {
		_u.SetRequiresFeedback(*v)
	}
	return _u
}

// SetRequiresNotes sets the "requires_notes" field.
func (_u *TenantStageActionUpdateOne) SetRequiresNotes(v bool) *TenantStageActionUpdateOne {
	_u.mutation.SetRequiresNotes(v)
	return _u
}

// SetNillableRequiresNotes sets the "requires_notes" field if the given value is not nil.
func (_u *TenantStageActionUpdateOne) SetNillableRequiresNotes(v *bool) *TenantStageActionUpdateOne {
	if v != nil {
		_u.SetRequiresNotes(*v)
	}
	return _u
}

// SetSignalConditions sets the "signal_conditions" field.
func (_u *TenantStageActionUpdateOne) SetSignalConditions(v *models.SignalConditions) *TenantStageActionUpdateOne {
	_u.mutation.SetSignalConditions(v)
	return _u
}

// ClearSignalConditions clears the value of the "signal_conditions" field.
func (_u *TenantStageActionUpdateOne) ClearSignalConditions() *TenantStageActionUpdateOne {
	_u.mutation.ClearSignalConditions()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TenantStageActionUpdateOne) SetIsActive(v bool) *TenantStageActionUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TenantStageActionUpdateOne) SetNillableIsActive(v *bool) *TenantStageActionUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantStageActionUpdateOne) SetUpdatedAt(v time.Time) *TenantStageActionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TenantStageActionMutation object of the builder.
func (_u *TenantStageActionUpdateOne) Mutation() *TenantStageActionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TenantStageActionUpdate builder.
func (_u *TenantStageActionUpdateOne) Where(ps ...predicate.TenantStageAction) *TenantStageActionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TenantStageActionUpdateOne) Select(field string, fields ...string) *TenantStageActionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TenantStageAction entity.
func (_u *TenantStageActionUpdateOne) Save(ctx context.Context) (*TenantStageAction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantStageActionUpdateOne) SaveX(ctx context.Context) *TenantStageAction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TenantStageActionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantStageActionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantStageActionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenantstageaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TenantStageActionUpdateOne) check() error {
	if v, ok := _u.mutation.OutcomeType(); ok {
		if err := tenantstageaction.OutcomeTypeValidator(v); err != nil {
			return &ValidationError{Name: "outcome_type", err: fmt.Errorf(`ent: validator failed for field "TenantStageAction.outcome_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SignalConditions(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "signal_conditions", err: fmt.Errorf(`ent: validator failed for field "TenantStageAction.signal_conditions": %w`, err)}
		}
	}
	return nil
}

func (_u *TenantStageActionUpdateOne) sqlSave(ctx context.Context) (_node *TenantStageAction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tenantstageaction.Table, tenantstageaction.Columns, sqlgraph.NewFieldSpec(tenantstageaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TenantStageAction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tenantstageaction.FieldID)
		for _, f := range fields {
			if !tenantstageaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tenantstageaction.FieldID {
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
	if value, ok := _u.mutation.ActionCode(); ok {
		_spec.SetField(tenantstageaction.FieldActionCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayLabel(); ok {
		_spec.SetField(tenantstageaction.FieldDisplayLabel, field.TypeString, value)
	}
	if _u.mutation.DisplayLabelCleared() {
		_spec.ClearField(tenantstageaction.FieldDisplayLabel, field.TypeString)
	}
	if value, ok := _u.mutation.OutcomeType(); ok {
		_spec.SetField(tenantstageaction.FieldOutcomeType, field.TypeEnum, value)
	}
	if _u.mutation.OutcomeTypeCleared() {
		_spec.ClearField(tenantstageaction.FieldOutcomeType, field.TypeEnum)
	}
	if value, ok := _u.mutation.MovesToNextStage(); ok {
		_spec.SetField(tenantstageaction.FieldMovesToNextStage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsTerminal(); ok {
		_spec.SetField(tenantstageaction.FieldIsTerminal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequiredCapability(); ok {
		_spec.SetField(tenantstageaction.FieldRequiredCapability, field.TypeString, value)
	}
	if _u.mutation.RequiredCapabilityCleared() {
		_spec.ClearField(tenantstageaction.FieldRequiredCapability, field.TypeString)
	}
	if value, ok := _u.mutation.RequiresFeedback(); ok {
		_spec.SetField(tenantstageaction.FieldRequiresFeedback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RequiresNotes(); ok {
		_spec.SetField(tenantstageaction.FieldRequiresNotes, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SignalConditions(); ok {
		_spec.SetField(tenantstageaction.FieldSignalConditions, field.TypeJSON, value)
	}
	if _u.mutation.SignalConditionsCleared() {
		_spec.ClearField(tenantstageaction.FieldSignalConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(tenantstageaction.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantstageaction.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TenantStageAction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenantstageaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
