// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantstageaction"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// TenantStageActionCreate is the builder for creating a TenantStageAction entity.
type TenantStageActionCreate struct {
	config
	mutation *TenantStageActionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *TenantStageActionCreate) SetTenantID(v string) *TenantStageActionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *TenantStageActionCreate) SetStageID(v string) *TenantStageActionCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetActionCode sets the "action_code" field.
func (_c *TenantStageActionCreate) SetActionCode(v string) *TenantStageActionCreate {
	_c.mutation.SetActionCode(v)
	return _c
}

// SetDisplayLabel sets the "display_label" field.
func (_c *TenantStageActionCreate) SetDisplayLabel(v string) *TenantStageActionCreate {
	_c.mutation.SetDisplayLabel(v)
	return _c
}

// SetNillableDisplayLabel sets the "display_label" field if the given value is not nil.
func (_c *TenantStageActionCreate) SetNillableDisplayLabel(v *string) *TenantStageActionCreate {
	if v != nil {
		_c.SetDisplayLabel(*v)
	}
	return _c
}

// SetOutcomeType sets the "outcome_type" field.
func (_c *TenantStageActionCreate) SetOutcomeType(v models.OutcomeType) *TenantStageActionCreate {
	_c.mutation.SetOutcomeType(v)
	return _c
}

// SetNillableOutcomeType sets the "outcome_type" field if the given value is not nil.
func (_c *TenantStageActionCreate) SetNillableOutcomeType(v *models.OutcomeType) *TenantStageActionCreate {
	if v != nil {
		_c.SetOutcomeType(*v)
	}
	return _c
}

// SetMovesToNextStage sets the "moves_to_next_stage" field.
func (_c *TenantStageActionCreate) SetMovesToNextStage(v bool) *TenantStageActionCreate {
	_c.mutation.SetMovesToNextStage(v)
	return _c
}

// SetNillableMovesToNextStage sets the "moves_to_next_stage" field if the given value is not nil.
func (_c *TenantStageActionCreate) SetNillableMovesToNextStage(v *bool) *TenantStageActionCreate {
	if v != nil {
		_c.SetMovesToNextStage(*v)
	}
	return _c
}

// SetIsTerminal sets the "is_terminal" field.
func (_c *TenantStageActionCreate) SetIsTerminal(v bool) *TenantStageActionCreate {
	_c.mutation.SetIsTerminal(v)
	return _c
}

// SetNillableIsTerminal sets the "is_terminal" field if the given value is not nil.
func (_c *TenantStageActionCreate) SetNillableIsTerminal(v *bool) *TenantStageActionCreate {
	if v != nil {
		_c.SetIsTerminal(*v)
	}
	return _c
}

// SetRequiredCapability sets the "required_capability" field.
func (_c *TenantStageActionCreate) SetRequiredCapability(v string) *TenantStageActionCreate {
	_c.mutation.SetRequiredCapability(v)
	return _c
}

// SetNillableRequiredCapability sets the "required_capability" field if the given value is not nil.
func (_c *TenantStageActionCreate) SetNillableRequiredCapability(v *string) *TenantStageActionCreate {
	if v != nil {
		_c.SetRequiredCapability(*v)
	}
	return _c
}

// SetRequiresFeedback sets the "requires_feedback" field.
func (_c *TenantStageActionCreate) SetRequiresFeedback(v bool) *TenantStageActionCreate {
	_c.mutation.SetRequiresFeedback(v)
	return _c
}

// SetNillableRequiresFeedback sets the "requires_feedback" field if the given value is not nil.
func (_c *TenantStageActionCreate) SetNillableRequiresFeedback(v *bool) *TenantStageActionCreate {
	if v != nil {
		_c.SetRequiresFeedback(*v)
	}
	return _c
}

// SetRequiresNotes sets the "requires_notes" field.
func (_c *TenantStageActionCreate) SetRequiresNotes(v bool) *TenantStageActionCreate {
	_c.mutation.SetRequiresNotes(v)
	return _c
}

// SetNillableRequiresNotes sets the "requires_notes" field if the given value is not nil.
func (_c *TenantStageActionCreate) SetNillableRequiresNotes(v *bool) *TenantStageActionCreate {
	if v != nil {
		_c.SetRequiresNotes(*v)
	}
	return _c
}

// SetSignalConditions sets the "signal_conditions" field.
func (_c *TenantStageActionCreate) SetSignalConditions(v *models.SignalConditions) *TenantStageActionCreate {
	_c.mutation.SetSignalConditions(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *TenantStageActionCreate) SetIsActive(v bool) *TenantStageActionCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *TenantStageActionCreate) SetNillableIsActive(v *bool) *TenantStageActionCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TenantStageActionCreate) SetCreatedAt(v time.Time) *TenantStageActionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TenantStageActionCreate) SetNillableCreatedAt(v *time.Time) *TenantStageActionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TenantStageActionCreate) SetUpdatedAt(v time.Time) *TenantStageActionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TenantStageActionCreate) SetNillableUpdatedAt(v *time.Time) *TenantStageActionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TenantStageActionCreate) SetID(v string) *TenantStageActionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TenantStageActionMutation object of the builder.
func (_c *TenantStageActionCreate) Mutation() *TenantStageActionMutation {
	return _c.mutation
}

// Save creates the TenantStageAction in the database.
func (_c *TenantStageActionCreate) Save(ctx context.Context) (*TenantStageAction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TenantStageActionCreate) SaveX(ctx context.Context) *TenantStageAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TenantStageActionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TenantStageActionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TenantStageActionCreate) defaults() {
	if _, ok := _c.mutation.MovesToNextStage(); !ok {
		v := tenantstageaction.DefaultMovesToNextStage
		_c.mutation.SetMovesToNextStage(v)
	}
	if _, ok := _c.mutation.IsTerminal(); !ok {
		v := tenantstageaction.DefaultIsTerminal
		_c.mutation.SetIsTerminal(v)
	}
	if _, ok := _c.mutation.RequiresFeedback(); !ok {
		v := tenantstageaction.DefaultRequiresFeedback
		_c.mutation.SetRequiresFeedback(v)
	}
	if _, ok := _c.mutation.RequiresNotes(); !ok {
		v := tenantstageaction.DefaultRequiresNotes
		_c.mutation.SetRequiresNotes(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := tenantstageaction.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tenantstageaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tenantstageaction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TenantStageActionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "TenantStageAction.tenant_id"`)}
	}
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "TenantStageAction.stage_id"`)}
	}
	if _, ok := _c.mutation.ActionCode(); !ok {
		return &ValidationError{Name: "action_code", err: errors.New(`ent: missing required field "TenantStageAction.action_code"`)}
	}
	if v, ok := _c.mutation.OutcomeType(); ok {
		if err := tenantstageaction.OutcomeTypeValidator(v); err != nil {
			return &ValidationError{Name: "outcome_type", err: fmt.Errorf(`ent: validator failed for field "TenantStageAction.outcome_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MovesToNextStage(); !ok {
		return &ValidationError{Name: "moves_to_next_stage", err: errors.New(`ent: missing required field "TenantStageAction.moves_to_next_stage"`)}
	}
	if _, ok := _c.mutation.IsTerminal(); !ok {
		return &ValidationError{Name: "is_terminal", err: errors.New(`ent: missing required field "TenantStageAction.is_terminal"`)}
	}
	if _, ok := _c.mutation.RequiresFeedback(); !ok {
		return &ValidationError{Name: "requires_feedback", err: errors.New(`ent: missing required field "TenantStageAction.requires_feedback"`)}
	}
	if _, ok := _c.mutation.RequiresNotes(); !ok {
		return &ValidationError{Name: "requires_notes", err: errors.New(`ent: missing required field "TenantStageAction.requires_notes"`)}
	}
	if v, ok := _c.mutation.SignalConditions(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "signal_conditions", err: fmt.Errorf(`ent: validator failed for field "TenantStageAction.signal_conditions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "TenantStageAction.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TenantStageAction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TenantStageAction.updated_at"`)}
	}
	return nil
}

func (_c *TenantStageActionCreate) sqlSave(ctx context.Context) (*TenantStageAction, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TenantStageAction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TenantStageActionCreate) createSpec() (*TenantStageAction, *sqlgraph.CreateSpec) {
	var (
		_node = &TenantStageAction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tenantstageaction.Table, sqlgraph.NewFieldSpec(tenantstageaction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(tenantstageaction.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.StageID(); ok {
		_spec.SetField(tenantstageaction.FieldStageID, field.TypeString, value)
		_node.StageID = value
	}
	if value, ok := _c.mutation.ActionCode(); ok {
		_spec.SetField(tenantstageaction.FieldActionCode, field.TypeString, value)
		_node.ActionCode = value
	}
	if value, ok := _c.mutation.DisplayLabel(); ok {
		_spec.SetField(tenantstageaction.FieldDisplayLabel, field.TypeString, value)
		_node.DisplayLabel = value
	}
	if value, ok := _c.mutation.OutcomeType(); ok {
		_spec.SetField(tenantstageaction.FieldOutcomeType, field.TypeEnum, value)
		_node.OutcomeType = &value
	}
	if value, ok := _c.mutation.MovesToNextStage(); ok {
		_spec.SetField(tenantstageaction.FieldMovesToNextStage, field.TypeBool, value)
		_node.MovesToNextStage = value
	}
	if value, ok := _c.mutation.IsTerminal(); ok {
		_spec.SetField(tenantstageaction.FieldIsTerminal, field.TypeBool, value)
		_node.IsTerminal = value
	}
	if value, ok := _c.mutation.RequiredCapability(); ok {
		_spec.SetField(tenantstageaction.FieldRequiredCapability, field.TypeString, value)
		_node.RequiredCapability = value
	}
	if value, ok := _c.mutation.RequiresFeedback(); ok {
		_spec.SetField(tenantstageaction.FieldRequiresFeedback, field.TypeBool, value)
		_node.RequiresFeedback = value
	}
	if value, ok := _c.mutation.RequiresNotes(); ok {
		_spec.SetField(tenantstageaction.FieldRequiresNotes, field.TypeBool, value)
		_node.RequiresNotes = value
	}
	if value, ok := _c.mutation.SignalConditions(); ok {
		_spec.SetField(tenantstageaction.FieldSignalConditions, field.TypeJSON, value)
		_node.SignalConditions = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(tenantstageaction.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tenantstageaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantstageaction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TenantStageAction.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TenantStageActionUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *TenantStageActionCreate) OnConflict(opts ...sql.ConflictOption) *TenantStageActionUpsertOne {
	_c.conflict = opts
	return &TenantStageActionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TenantStageAction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TenantStageActionCreate) OnConflictColumns(columns ...string) *TenantStageActionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TenantStageActionUpsertOne{
		create: _c,
	}
}

type (
	// TenantStageActionUpsertOne is the builder for "upsert"-ing
	//  one TenantStageAction node.
	TenantStageActionUpsertOne struct {
		create *TenantStageActionCreate
	}

	// TenantStageActionUpsert is the "OnConflict" setter.
	TenantStageActionUpsert struct {
		*sql.UpdateSet
	}
)

// SetActionCode sets the "action_code" field.
func (u *TenantStageActionUpsert) SetActionCode(v string) *TenantStageActionUpsert {
	u.Set(tenantstageaction.FieldActionCode, v)
	return u
}

// UpdateActionCode sets the "action_code" field to the value that was provided on create.
func (u *TenantStageActionUpsert) UpdateActionCode() *TenantStageActionUpsert {
	u.SetExcluded(tenantstageaction.FieldActionCode)
	return u
}

// SetDisplayLabel sets the "display_label" field.
func (u *TenantStageActionUpsert) SetDisplayLabel(v string) *TenantStageActionUpsert {
	u.Set(tenantstageaction.FieldDisplayLabel, v)
	return u
}

// UpdateDisplayLabel sets the "display_label" field to the value that was provided on create.
func (u *TenantStageActionUpsert) UpdateDisplayLabel() *TenantStageActionUpsert {
	u.SetExcluded(tenantstageaction.FieldDisplayLabel)
	return u
}

// ClearDisplayLabel clears the value of the "display_label" field.
func (u *TenantStageActionUpsert) ClearDisplayLabel() *TenantStageActionUpsert {
	u.SetNull(tenantstageaction.FieldDisplayLabel)
	return u
}

// SetOutcomeType sets the "outcome_type" field.
func (u *TenantStageActionUpsert) SetOutcomeType(v models.OutcomeType) *TenantStageActionUpsert {
	u.Set(tenantstageaction.FieldOutcomeType, v)
	return u
}

// UpdateOutcomeType sets the "outcome_type" field to the value that was provided on create.
func (u *TenantStageActionUpsert) UpdateOutcomeType() *TenantStageActionUpsert {
	u.SetExcluded(tenantstageaction.FieldOutcomeType)
	return u
}

// ClearOutcomeType clears the value of the "outcome_type" field.
func (u *TenantStageActionUpsert) ClearOutcomeType() *TenantStageActionUpsert {
	u.SetNull(tenantstageaction.FieldOutcomeType)
	return u
}

// SetMovesToNextStage sets the "moves_to_next_stage" field.
func (u *TenantStageActionUpsert) SetMovesToNextStage(v bool) *TenantStageActionUpsert {
	u.Set(tenantstageaction.FieldMovesToNextStage, v)
	return u
}

// UpdateMovesToNextStage sets the "moves_to_next_stage" field to the value that was provided on create.
func (u *TenantStageActionUpsert) UpdateMovesToNextStage() *TenantStageActionUpsert {
	u.SetExcluded(tenantstageaction.FieldMovesToNextStage)
	return u
}

// SetIsTerminal sets the "is_terminal" field.
func (u *TenantStageActionUpsert) SetIsTerminal(v bool) *TenantStageActionUpsert {
	u.Set(tenantstageaction.FieldIsTerminal, v)
	return u
}

// UpdateIsTerminal sets the "is_terminal" field to the value that was provided on create.
func (u *TenantStageActionUpsert) UpdateIsTerminal() *TenantStageActionUpsert {
	u.SetExcluded(tenantstageaction.FieldIsTerminal)
	return u
}

// SetRequiredCapability sets the "required_capability" field.
func (u *TenantStageActionUpsert) SetRequiredCapability(v string) *TenantStageActionUpsert {
	u.Set(tenantstageaction.FieldRequiredCapability, v)
	return u
}

// UpdateRequiredCapability sets the "required_capability" field to the value that was provided on create.
func (u *TenantStageActionUpsert) UpdateRequiredCapability() *TenantStageActionUpsert {
	u.SetExcluded(tenantstageaction.FieldRequiredCapability)
	return u
}

// ClearRequiredCapability clears the value of the "required_capability" field.
func (u *TenantStageActionUpsert) ClearRequiredCapability() *TenantStageActionUpsert {
	u.SetNull(tenantstageaction.FieldRequiredCapability)
	return u
}

// SetRequiresFeedback sets the "requires_feedback" field.
func (u *TenantStageActionUpsert) SetRequiresFeedback(v bool) *TenantStageActionUpsert {
	u.Set(tenantstageaction.FieldRequiresFeedback, v)
	return u
}

// UpdateRequiresFeedback sets the "requires_feedback" field to the value that was provided on create.
func (u *TenantStageActionUpsert) UpdateRequiresFeedback() *TenantStageActionUpsert {
	u.SetExcluded(tenantstageaction.FieldRequiresFeedback)
	return u
}

// SetRequiresNotes sets the "requires_notes" field.
func (u *TenantStageActionUpsert) SetRequiresNotes(v bool) *TenantStageActionUpsert {
	u.Set(tenantstageaction.FieldRequiresNotes, v)
	return u
}

// UpdateRequiresNotes sets the "requires_notes" field to the value that was provided on create.
func (u *TenantStageActionUpsert) UpdateRequiresNotes() *TenantStageActionUpsert {
	u.SetExcluded(tenantstageaction.FieldRequiresNotes)
	return u
}

// SetSignalConditions sets the "signal_conditions" field.
func (u *TenantStageActionUpsert) SetSignalConditions(v *models.SignalConditions) *TenantStageActionUpsert {
	u.Set(tenantstageaction.FieldSignalConditions, v)
	return u
}

// UpdateSignalConditions sets the "signal_conditions" field to the value that was provided on create.
func (u *TenantStageActionUpsert) UpdateSignalConditions() *TenantStageActionUpsert {
	u.SetExcluded(tenantstageaction.FieldSignalConditions)
	return u
}

// ClearSignalConditions clears the value of the "signal_conditions" field.
func (u *TenantStageActionUpsert) ClearSignalConditions() *TenantStageActionUpsert {
	u.SetNull(tenantstageaction.FieldSignalConditions)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *TenantStageActionUpsert) SetIsActive(v bool) *TenantStageActionUpsert {
	u.Set(tenantstageaction.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TenantStageActionUpsert) UpdateIsActive() *TenantStageActionUpsert {
	u.SetExcluded(tenantstageaction.FieldIsActive)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TenantStageActionUpsert) SetUpdatedAt(v time.Time) *TenantStageActionUpsert {
	u.Set(tenantstageaction.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TenantStageActionUpsert) UpdateUpdatedAt() *TenantStageActionUpsert {
	u.SetExcluded(tenantstageaction.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TenantStageAction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tenantstageaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TenantStageActionUpsertOne) UpdateNewValues() *TenantStageActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(tenantstageaction.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(tenantstageaction.FieldTenantID)
		}
		if _, exists := u.create.mutation.StageID(); exists {
			s.SetIgnore(tenantstageaction.FieldStageID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(tenantstageaction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TenantStageAction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TenantStageActionUpsertOne) Ignore() *TenantStageActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TenantStageActionUpsertOne) DoNothing() *TenantStageActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TenantStageActionCreate.OnConflict
// documentation for more info.
func (u *TenantStageActionUpsertOne) Update(set func(*TenantStageActionUpsert)) *TenantStageActionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TenantStageActionUpsert{UpdateSet: update})
	}))
	return u
}

// SetActionCode sets the "action_code" field.
func (u *TenantStageActionUpsertOne) SetActionCode(v string) *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetActionCode(v)
	})
}

// UpdateActionCode sets the "action_code" field to the value that was provided on create.
func (u *TenantStageActionUpsertOne) UpdateActionCode() *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateActionCode()
	})
}

// SetDisplayLabel sets the "display_label" field.
func (u *TenantStageActionUpsertOne) SetDisplayLabel(v string) *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetDisplayLabel(v)
	})
}

// UpdateDisplayLabel sets the "display_label" field to the value that was provided on create.
func (u *TenantStageActionUpsertOne) UpdateDisplayLabel() *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateDisplayLabel()
	})
}

// ClearDisplayLabel clears the value of the "display_label" field.
func (u *TenantStageActionUpsertOne) ClearDisplayLabel() *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.ClearDisplayLabel()
	})
}

// SetOutcomeType sets the "outcome_type" field.
func (u *TenantStageActionUpsertOne) SetOutcomeType(v models.OutcomeType) *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetOutcomeType(v)
	})
}

// UpdateOutcomeType sets the "outcome_type" field to the value that was provided on create.
func (u *TenantStageActionUpsertOne) UpdateOutcomeType() *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateOutcomeType()
	})
}

// ClearOutcomeType clears the value of the "outcome_type" field.
func (u *TenantStageActionUpsertOne) ClearOutcomeType() *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.ClearOutcomeType()
	})
}

// SetMovesToNextStage sets the "moves_to_next_stage" field.
func (u *TenantStageActionUpsertOne) SetMovesToNextStage(v bool) *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetMovesToNextStage(v)
	})
}

// UpdateMovesToNextStage sets the "moves_to_next_stage" field to the value that was provided on create.
func (u *TenantStageActionUpsertOne) UpdateMovesToNextStage() *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateMovesToNextStage()
	})
}

// SetIsTerminal sets the "is_terminal" field.
func (u *TenantStageActionUpsertOne) SetIsTerminal(v bool) *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetIsTerminal(v)
	})
}

// UpdateIsTerminal sets the "is_terminal" field to the value that was provided on create.
func (u *TenantStageActionUpsertOne) UpdateIsTerminal() *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateIsTerminal()
	})
}

// SetRequiredCapability sets the "required_capability" field.
func (u *TenantStageActionUpsertOne) SetRequiredCapability(v string) *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetRequiredCapability(v)
	})
}

// UpdateRequiredCapability sets the "required_capability" field to the value that was provided on create.
func (u *TenantStageActionUpsertOne) UpdateRequiredCapability() *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateRequiredCapability()
	})
}

// ClearRequiredCapability clears the value of the "required_capability" field.
func (u *TenantStageActionUpsertOne) ClearRequiredCapability() *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.ClearRequiredCapability()
	})
}

// SetRequiresFeedback sets the "requires_feedback" field.
func (u *TenantStageActionUpsertOne) SetRequiresFeedback(v bool) *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetRequiresFeedback(v)
	})
}

// UpdateRequiresFeedback sets the "requires_feedback" field to the value that was provided on create.
func (u *TenantStageActionUpsertOne) UpdateRequiresFeedback() *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateRequiresFeedback()
	})
}

// SetRequiresNotes sets the "requires_notes" field.
func (u *TenantStageActionUpsertOne) SetRequiresNotes(v bool) *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetRequiresNotes(v)
	})
}

// UpdateRequiresNotes sets the "requires_notes" field to the value that was provided on create.
func (u *TenantStageActionUpsertOne) UpdateRequiresNotes() *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateRequiresNotes()
	})
}

// SetSignalConditions sets the "signal_conditions" field.
func (u *TenantStageActionUpsertOne) SetSignalConditions(v *models.SignalConditions) *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetSignalConditions(v)
	})
}

// UpdateSignalConditions sets the "signal_conditions" field to the value that was provided on create.
func (u *TenantStageActionUpsertOne) UpdateSignalConditions() *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateSignalConditions()
	})
}

// ClearSignalConditions clears the value of the "signal_conditions" field.
func (u *TenantStageActionUpsertOne) ClearSignalConditions() *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.ClearSignalConditions()
	})
}

// SetIsActive sets the "is_active" field.
func (u *TenantStageActionUpsertOne) SetIsActive(v bool) *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TenantStageActionUpsertOne) UpdateIsActive() *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateIsActive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TenantStageActionUpsertOne) SetUpdatedAt(v time.Time) *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TenantStageActionUpsertOne) UpdateUpdatedAt() *TenantStageActionUpsertOne {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TenantStageActionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TenantStageActionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TenantStageActionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TenantStageActionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TenantStageActionUpsertOne.ID is not supported by MySQL driver. Use TenantStageActionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TenantStageActionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TenantStageActionCreateBulk is the builder for creating many TenantStageAction entities in bulk.
type TenantStageActionCreateBulk struct {
	config
	err      error
	builders []*TenantStageActionCreate
	conflict []sql.ConflictOption
}

// Save creates the TenantStageAction entities in the database.
func (_c *TenantStageActionCreateBulk) Save(ctx context.Context) ([]*TenantStageAction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TenantStageAction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TenantStageActionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TenantStageActionCreateBulk) SaveX(ctx context.Context) []*TenantStageAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TenantStageActionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TenantStageActionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TenantStageAction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TenantStageActionUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *TenantStageActionCreateBulk) OnConflict(opts ...sql.ConflictOption) *TenantStageActionUpsertBulk {
	_c.conflict = opts
	return &TenantStageActionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TenantStageAction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TenantStageActionCreateBulk) OnConflictColumns(columns ...string) *TenantStageActionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TenantStageActionUpsertBulk{
		create: _c,
	}
}

// TenantStageActionUpsertBulk is the builder for "upsert"-ing
// a bulk of TenantStageAction nodes.
type TenantStageActionUpsertBulk struct {
	create *TenantStageActionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TenantStageAction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tenantstageaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TenantStageActionUpsertBulk) UpdateNewValues() *TenantStageActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(tenantstageaction.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(tenantstageaction.FieldTenantID)
			}
			if _, exists := b.mutation.StageID(); exists {
				s.SetIgnore(tenantstageaction.FieldStageID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(tenantstageaction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TenantStageAction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TenantStageActionUpsertBulk) Ignore() *TenantStageActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TenantStageActionUpsertBulk) DoNothing() *TenantStageActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TenantStageActionCreateBulk.OnConflict
// documentation for more info.
func (u *TenantStageActionUpsertBulk) Update(set func(*TenantStageActionUpsert)) *TenantStageActionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TenantStageActionUpsert{UpdateSet: update})
	}))
	return u
}

// SetActionCode sets the "action_code" field.
func (u *TenantStageActionUpsertBulk) SetActionCode(v string) *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetActionCode(v)
	})
}

// UpdateActionCode sets the "action_code" field to the value that was provided on create.
func (u *TenantStageActionUpsertBulk) UpdateActionCode() *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateActionCode()
	})
}

// SetDisplayLabel sets the "display_label" field.
func (u *TenantStageActionUpsertBulk) SetDisplayLabel(v string) *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetDisplayLabel(v)
	})
}

// UpdateDisplayLabel sets the "display_label" field to the value that was provided on create.
func (u *TenantStageActionUpsertBulk) UpdateDisplayLabel() *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateDisplayLabel()
	})
}

// ClearDisplayLabel clears the value of the "display_label" field.
func (u *TenantStageActionUpsertBulk) ClearDisplayLabel() *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.ClearDisplayLabel()
	})
}

// SetOutcomeType sets the "outcome_type" field.
func (u *TenantStageActionUpsertBulk) SetOutcomeType(v models.OutcomeType) *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetOutcomeType(v)
	})
}

// UpdateOutcomeType sets the "outcome_type" field to the value that was provided on create.
func (u *TenantStageActionUpsertBulk) UpdateOutcomeType() *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateOutcomeType()
	})
}

// ClearOutcomeType clears the value of the "outcome_type" field.
func (u *TenantStageActionUpsertBulk) ClearOutcomeType() *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.ClearOutcomeType()
	})
}

// SetMovesToNextStage sets the "moves_to_next_stage" field.
func (u *TenantStageActionUpsertBulk) SetMovesToNextStage(v bool) *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetMovesToNextStage(v)
	})
}

// UpdateMovesToNextStage sets the "moves_to_next_stage" field to the value that was provided on create.
func (u *TenantStageActionUpsertBulk) UpdateMovesToNextStage() *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateMovesToNextStage()
	})
}

// SetIsTerminal sets the "is_terminal" field.
func (u *TenantStageActionUpsertBulk) SetIsTerminal(v bool) *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetIsTerminal(v)
	})
}

// UpdateIsTerminal sets the "is_terminal" field to the value that was provided on create.
func (u *TenantStageActionUpsertBulk) UpdateIsTerminal() *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateIsTerminal()
	})
}

// SetRequiredCapability sets the "required_capability" field.
func (u *TenantStageActionUpsertBulk) SetRequiredCapability(v string) *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetRequiredCapability(v)
	})
}

// UpdateRequiredCapability sets the "required_capability" field to the value that was provided on create.
func (u *TenantStageActionUpsertBulk) UpdateRequiredCapability() *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateRequiredCapability()
	})
}

// ClearRequiredCapability clears the value of the "required_capability" field.
func (u *TenantStageActionUpsertBulk) ClearRequiredCapability() *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.ClearRequiredCapability()
	})
}

// SetRequiresFeedback sets the "requires_feedback" field.
func (u *TenantStageActionUpsertBulk) SetRequiresFeedback(v bool) *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetRequiresFeedback(v)
	})
}

// UpdateRequiresFeedback sets the "requires_feedback" field to the value that was provided on create.
func (u *TenantStageActionUpsertBulk) UpdateRequiresFeedback() *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateRequiresFeedback()
	})
}

// SetRequiresNotes sets the "requires_notes" field.
func (u *TenantStageActionUpsertBulk) SetRequiresNotes(v bool) *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetRequiresNotes(v)
	})
}

// UpdateRequiresNotes sets the "requires_notes" field to the value that was provided on create.
func (u *TenantStageActionUpsertBulk) UpdateRequiresNotes() *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateRequiresNotes()
	})
}

// SetSignalConditions sets the "signal_conditions" field.
func (u *TenantStageActionUpsertBulk) SetSignalConditions(v *models.SignalConditions) *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetSignalConditions(v)
	})
}

// UpdateSignalConditions sets the "signal_conditions" field to the value that was provided on create.
func (u *TenantStageActionUpsertBulk) UpdateSignalConditions() *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateSignalConditions()
	})
}

// ClearSignalConditions clears the value of the "signal_conditions" field.
func (u *TenantStageActionUpsertBulk) ClearSignalConditions() *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.ClearSignalConditions()
	})
}

// SetIsActive sets the "is_active" field.
func (u *TenantStageActionUpsertBulk) SetIsActive(v bool) *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TenantStageActionUpsertBulk) UpdateIsActive() *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateIsActive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TenantStageActionUpsertBulk) SetUpdatedAt(v time.Time) *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TenantStageActionUpsertBulk) UpdateUpdatedAt() *TenantStageActionUpsertBulk {
	return u.Update(func(s *TenantStageActionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TenantStageActionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TenantStageActionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TenantStageActionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TenantStageActionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
