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
	"github.com/ameyzing09/rtr-api-sub000/ent/actionexecutionlog"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ActionExecutionLogCreate is the builder for creating a ActionExecutionLog entity.
type ActionExecutionLogCreate struct {
	config
	mutation *ActionExecutionLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *ActionExecutionLogCreate) SetTenantID(v string) *ActionExecutionLogCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetApplicationID sets the "application_id" field.
func (_c *ActionExecutionLogCreate) SetApplicationID(v string) *ActionExecutionLogCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetActionCode sets the "action_code" field.
func (_c *ActionExecutionLogCreate) SetActionCode(v string) *ActionExecutionLogCreate {
	_c.mutation.SetActionCode(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *ActionExecutionLogCreate) SetStageID(v string) *ActionExecutionLogCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_c *ActionExecutionLogCreate) SetNillableStageID(v *string) *ActionExecutionLogCreate {
	if v != nil {
		_c.SetStageID(*v)
	}
	return _c
}

// SetFromStageID sets the "from_stage_id" field.
func (_c *ActionExecutionLogCreate) SetFromStageID(v string) *ActionExecutionLogCreate {
	_c.mutation.SetFromStageID(v)
	return _c
}

// SetNillableFromStageID sets the "from_stage_id" field if the given value is not nil.
func (_c *ActionExecutionLogCreate) SetNillableFromStageID(v *string) *ActionExecutionLogCreate {
	if v != nil {
		_c.SetFromStageID(*v)
	}
	return _c
}

// SetToStageID sets the "to_stage_id" field.
func (_c *ActionExecutionLogCreate) SetToStageID(v string) *ActionExecutionLogCreate {
	_c.mutation.SetToStageID(v)
	return _c
}

// SetNillableToStageID sets the "to_stage_id" field if the given value is not nil.
func (_c *ActionExecutionLogCreate) SetNillableToStageID(v *string) *ActionExecutionLogCreate {
	if v != nil {
		_c.SetToStageID(*v)
	}
	return _c
}

// SetOutcomeType sets the "outcome_type" field.
func (_c *ActionExecutionLogCreate) SetOutcomeType(v models.OutcomeType) *ActionExecutionLogCreate {
	_c.mutation.SetOutcomeType(v)
	return _c
}

// SetIsTerminal sets the "is_terminal" field.
func (_c *ActionExecutionLogCreate) SetIsTerminal(v bool) *ActionExecutionLogCreate {
	_c.mutation.SetIsTerminal(v)
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *ActionExecutionLogCreate) SetStatusCode(v string) *ActionExecutionLogCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetExecutedBy sets the "executed_by" field.
func (_c *ActionExecutionLogCreate) SetExecutedBy(v string) *ActionExecutionLogCreate {
	_c.mutation.SetExecutedBy(v)
	return _c
}

// SetDecisionNote sets the "decision_note" field.
func (_c *ActionExecutionLogCreate) SetDecisionNote(v string) *ActionExecutionLogCreate {
	_c.mutation.SetDecisionNote(v)
	return _c
}

// SetNillableDecisionNote sets the "decision_note" field if the given value is not nil.
func (_c *ActionExecutionLogCreate) SetNillableDecisionNote(v *string) *ActionExecutionLogCreate {
	if v != nil {
		_c.SetDecisionNote(*v)
	}
	return _c
}

// SetOverrideReason sets the "override_reason" field.
func (_c *ActionExecutionLogCreate) SetOverrideReason(v string) *ActionExecutionLogCreate {
	_c.mutation.SetOverrideReason(v)
	return _c
}

// SetNillableOverrideReason sets the "override_reason" field if the given value is not nil.
func (_c *ActionExecutionLogCreate) SetNillableOverrideReason(v *string) *ActionExecutionLogCreate {
	if v != nil {
		_c.SetOverrideReason(*v)
	}
	return _c
}

// SetReviewedBy sets the "reviewed_by" field.
func (_c *ActionExecutionLogCreate) SetReviewedBy(v string) *ActionExecutionLogCreate {
	_c.mutation.SetReviewedBy(v)
	return _c
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_c *ActionExecutionLogCreate) SetNillableReviewedBy(v *string) *ActionExecutionLogCreate {
	if v != nil {
		_c.SetReviewedBy(*v)
	}
	return _c
}

// SetApprovedBy sets the "approved_by" field.
func (_c *ActionExecutionLogCreate) SetApprovedBy(v string) *ActionExecutionLogCreate {
	_c.mutation.SetApprovedBy(v)
	return _c
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_c *ActionExecutionLogCreate) SetNillableApprovedBy(v *string) *ActionExecutionLogCreate {
	if v != nil {
		_c.SetApprovedBy(*v)
	}
	return _c
}

// SetSignalSnapshot sets the "signal_snapshot" field.
func (_c *ActionExecutionLogCreate) SetSignalSnapshot(v map[string]interface{}) *ActionExecutionLogCreate {
	_c.mutation.SetSignalSnapshot(v)
	return _c
}

// SetConditionsEvaluated sets the "conditions_evaluated" field.
func (_c *ActionExecutionLogCreate) SetConditionsEvaluated(v []models.ConditionResult) *ActionExecutionLogCreate {
	_c.mutation.SetConditionsEvaluated(v)
	return _c
}

// SetExecutedAt sets the "executed_at" field.
func (_c *ActionExecutionLogCreate) SetExecutedAt(v time.Time) *ActionExecutionLogCreate {
	_c.mutation.SetExecutedAt(v)
	return _c
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_c *ActionExecutionLogCreate) SetNillableExecutedAt(v *time.Time) *ActionExecutionLogCreate {
	if v != nil {
		_c.SetExecutedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActionExecutionLogCreate) SetID(v string) *ActionExecutionLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ActionExecutionLogMutation object of the builder.
func (_c *ActionExecutionLogCreate) Mutation() *ActionExecutionLogMutation {
	return _c.mutation
}

// Save creates the ActionExecutionLog in the database.
func (_c *ActionExecutionLogCreate) Save(ctx context.Context) (*ActionExecutionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActionExecutionLogCreate) SaveX(ctx context.Context) *ActionExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionExecutionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionExecutionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActionExecutionLogCreate) defaults() {
	if _, ok := _c.mutation.ExecutedAt(); !ok {
		v := actionexecutionlog.DefaultExecutedAt()
		_c.mutation.SetExecutedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActionExecutionLogCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ActionExecutionLog.tenant_id"`)}
	}
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "ActionExecutionLog.application_id"`)}
	}
	if _, ok := _c.mutation.ActionCode(); !ok {
		return &ValidationError{Name: "action_code", err: errors.New(`ent: missing required field "ActionExecutionLog.action_code"`)}
	}
	if _, ok := _c.mutation.OutcomeType(); !ok {
		return &ValidationError{Name: "outcome_type", err: errors.New(`ent: missing required field "ActionExecutionLog.outcome_type"`)}
	}
	if v, ok := _c.mutation.OutcomeType(); ok {
		if err := actionexecutionlog.OutcomeTypeValidator(v); err != nil {
			return &ValidationError{Name: "outcome_type", err: fmt.Errorf(`ent: validator failed for field "ActionExecutionLog.outcome_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsTerminal(); !ok {
		return &ValidationError{Name: "is_terminal", err: errors.New(`ent: missing required field "ActionExecutionLog.is_terminal"`)}
	}
	if _, ok := _c.mutation.StatusCode(); !ok {
		return &ValidationError{Name: "status_code", err: errors.New(`ent: missing required field "ActionExecutionLog.status_code"`)}
	}
	if _, ok := _c.mutation.ExecutedBy(); !ok {
		return &ValidationError{Name: "executed_by", err: errors.New(`ent: missing required field "ActionExecutionLog.executed_by"`)}
	}
	if _, ok := _c.mutation.ExecutedAt(); !ok {
		return &ValidationError{Name: "executed_at", err: errors.New(`ent: missing required field "ActionExecutionLog.executed_at"`)}
	}
	return nil
}

func (_c *ActionExecutionLogCreate) sqlSave(ctx context.Context) (*ActionExecutionLog, error) {
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
			return nil, fmt.Errorf("unexpected ActionExecutionLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActionExecutionLogCreate) createSpec() (*ActionExecutionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ActionExecutionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(actionexecutionlog.Table, sqlgraph.NewFieldSpec(actionexecutionlog.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(actionexecutionlog.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.ApplicationID(); ok {
		_spec.SetField(actionexecutionlog.FieldApplicationID, field.TypeString, value)
		_node.ApplicationID = value
	}
	if value, ok := _c.mutation.ActionCode(); ok {
		_spec.SetField(actionexecutionlog.FieldActionCode, field.TypeString, value)
		_node.ActionCode = value
	}
	if value, ok := _c.mutation.StageID(); ok {
		_spec.SetField(actionexecutionlog.FieldStageID, field.TypeString, value)
		_node.StageID = value
	}
	if value, ok := _c.mutation.FromStageID(); ok {
		_spec.SetField(actionexecutionlog.FieldFromStageID, field.TypeString, value)
		_node.FromStageID = &value
	}
	if value, ok := _c.mutation.ToStageID(); ok {
		_spec.SetField(actionexecutionlog.FieldToStageID, field.TypeString, value)
		_node.ToStageID = &value
	}
	if value, ok := _c.mutation.OutcomeType(); ok {
		_spec.SetField(actionexecutionlog.FieldOutcomeType, field.TypeEnum, value)
		_node.OutcomeType = value
	}
	if value, ok := _c.mutation.IsTerminal(); ok {
		_spec.SetField(actionexecutionlog.FieldIsTerminal, field.TypeBool, value)
		_node.IsTerminal = value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(actionexecutionlog.FieldStatusCode, field.TypeString, value)
		_node.StatusCode = value
	}
	if value, ok := _c.mutation.ExecutedBy(); ok {
		_spec.SetField(actionexecutionlog.FieldExecutedBy, field.TypeString, value)
		_node.ExecutedBy = value
	}
	if value, ok := _c.mutation.DecisionNote(); ok {
		_spec.SetField(actionexecutionlog.FieldDecisionNote, field.TypeString, value)
		_node.DecisionNote = value
	}
	if value, ok := _c.mutation.OverrideReason(); ok {
		_spec.SetField(actionexecutionlog.FieldOverrideReason, field.TypeString, value)
		_node.OverrideReason = value
	}
	if value, ok := _c.mutation.ReviewedBy(); ok {
		_spec.SetField(actionexecutionlog.FieldReviewedBy, field.TypeString, value)
		_node.ReviewedBy = value
	}
	if value, ok := _c.mutation.ApprovedBy(); ok {
		_spec.SetField(actionexecutionlog.FieldApprovedBy, field.TypeString, value)
		_node.ApprovedBy = value
	}
	if value, ok := _c.mutation.SignalSnapshot(); ok {
		_spec.SetField(actionexecutionlog.FieldSignalSnapshot, field.TypeJSON, value)
		_node.SignalSnapshot = value
	}
	if value, ok := _c.mutation.ConditionsEvaluated(); ok {
		_spec.SetField(actionexecutionlog.FieldConditionsEvaluated, field.TypeJSON, value)
		_node.ConditionsEvaluated = value
	}
	if value, ok := _c.mutation.ExecutedAt(); ok {
		_spec.SetField(actionexecutionlog.FieldExecutedAt, field.TypeTime, value)
		_node.ExecutedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActionExecutionLog.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActionExecutionLogUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *ActionExecutionLogCreate) OnConflict(opts ...sql.ConflictOption) *ActionExecutionLogUpsertOne {
	_c.conflict = opts
	return &ActionExecutionLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActionExecutionLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActionExecutionLogCreate) OnConflictColumns(columns ...string) *ActionExecutionLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActionExecutionLogUpsertOne{
		create: _c,
	}
}

type (
	// ActionExecutionLogUpsertOne is the builder for "upsert"-ing
	//  one ActionExecutionLog node.
	ActionExecutionLogUpsertOne struct {
		create *ActionExecutionLogCreate
	}

	// ActionExecutionLogUpsert is the "OnConflict" setter.
	ActionExecutionLogUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ActionExecutionLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(actionexecutionlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActionExecutionLogUpsertOne) UpdateNewValues() *ActionExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(actionexecutionlog.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(actionexecutionlog.FieldTenantID)
		}
		if _, exists := u.create.mutation.ApplicationID(); exists {
			s.SetIgnore(actionexecutionlog.FieldApplicationID)
		}
		if _, exists := u.create.mutation.ActionCode(); exists {
			s.SetIgnore(actionexecutionlog.FieldActionCode)
		}
		if _, exists := u.create.mutation.StageID(); exists {
			s.SetIgnore(actionexecutionlog.FieldStageID)
		}
		if _, exists := u.create.mutation.FromStageID(); exists {
			s.SetIgnore(actionexecutionlog.FieldFromStageID)
		}
		if _, exists := u.create.mutation.ToStageID(); exists {
			s.SetIgnore(actionexecutionlog.FieldToStageID)
		}
		if _, exists := u.create.mutation.OutcomeType(); exists {
			s.SetIgnore(actionexecutionlog.FieldOutcomeType)
		}
		if _, exists := u.create.mutation.IsTerminal(); exists {
			s.SetIgnore(actionexecutionlog.FieldIsTerminal)
		}
		if _, exists := u.create.mutation.StatusCode(); exists {
			s.SetIgnore(actionexecutionlog.FieldStatusCode)
		}
		if _, exists := u.create.mutation.ExecutedBy(); exists {
			s.SetIgnore(actionexecutionlog.FieldExecutedBy)
		}
		if _, exists := u.create.mutation.DecisionNote(); exists {
			s.SetIgnore(actionexecutionlog.FieldDecisionNote)
		}
		if _, exists := u.create.mutation.OverrideReason(); exists {
			s.SetIgnore(actionexecutionlog.FieldOverrideReason)
		}
		if _, exists := u.create.mutation.ReviewedBy(); exists {
			s.SetIgnore(actionexecutionlog.FieldReviewedBy)
		}
		if _, exists := u.create.mutation.ApprovedBy(); exists {
			s.SetIgnore(actionexecutionlog.FieldApprovedBy)
		}
		if _, exists := u.create.mutation.SignalSnapshot(); exists {
			s.SetIgnore(actionexecutionlog.FieldSignalSnapshot)
		}
		if _, exists := u.create.mutation.ConditionsEvaluated(); exists {
			s.SetIgnore(actionexecutionlog.FieldConditionsEvaluated)
		}
		if _, exists := u.create.mutation.ExecutedAt(); exists {
			s.SetIgnore(actionexecutionlog.FieldExecutedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActionExecutionLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActionExecutionLogUpsertOne) Ignore() *ActionExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActionExecutionLogUpsertOne) DoNothing() *ActionExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActionExecutionLogCreate.OnConflict
// documentation for more info.
func (u *ActionExecutionLogUpsertOne) Update(set func(*ActionExecutionLogUpsert)) *ActionExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActionExecutionLogUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ActionExecutionLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActionExecutionLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActionExecutionLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActionExecutionLogUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ActionExecutionLogUpsertOne.ID is not supported by MySQL driver. Use ActionExecutionLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActionExecutionLogUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActionExecutionLogCreateBulk is the builder for creating many ActionExecutionLog entities in bulk.
type ActionExecutionLogCreateBulk struct {
	config
	err      error
	builders []*ActionExecutionLogCreate
	conflict []sql.ConflictOption
}

// Save creates the ActionExecutionLog entities in the database.
func (_c *ActionExecutionLogCreateBulk) Save(ctx context.Context) ([]*ActionExecutionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActionExecutionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActionExecutionLogMutation)
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
func (_c *ActionExecutionLogCreateBulk) SaveX(ctx context.Context) []*ActionExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionExecutionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionExecutionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActionExecutionLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActionExecutionLogUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *ActionExecutionLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActionExecutionLogUpsertBulk {
	_c.conflict = opts
	return &ActionExecutionLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActionExecutionLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActionExecutionLogCreateBulk) OnConflictColumns(columns ...string) *ActionExecutionLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActionExecutionLogUpsertBulk{
		create: _c,
	}
}

// ActionExecutionLogUpsertBulk is the builder for "upsert"-ing
// a bulk of ActionExecutionLog nodes.
type ActionExecutionLogUpsertBulk struct {
	create *ActionExecutionLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ActionExecutionLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(actionexecutionlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActionExecutionLogUpsertBulk) UpdateNewValues() *ActionExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(actionexecutionlog.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(actionexecutionlog.FieldTenantID)
			}
			if _, exists := b.mutation.ApplicationID(); exists {
				s.SetIgnore(actionexecutionlog.FieldApplicationID)
			}
			if _, exists := b.mutation.ActionCode(); exists {
				s.SetIgnore(actionexecutionlog.FieldActionCode)
			}
			if _, exists := b.mutation.StageID(); exists {
				s.SetIgnore(actionexecutionlog.FieldStageID)
			}
			if _, exists := b.mutation.FromStageID(); exists {
				s.SetIgnore(actionexecutionlog.FieldFromStageID)
			}
			if _, exists := b.mutation.ToStageID(); exists {
				s.SetIgnore(actionexecutionlog.FieldToStageID)
			}
			if _, exists := b.mutation.OutcomeType(); exists {
				s.SetIgnore(actionexecutionlog.FieldOutcomeType)
			}
			if _, exists := b.mutation.IsTerminal(); exists {
				s.SetIgnore(actionexecutionlog.FieldIsTerminal)
			}
			if _, exists := b.mutation.StatusCode(); exists {
				s.SetIgnore(actionexecutionlog.FieldStatusCode)
			}
			if _, exists := b.mutation.ExecutedBy(); exists {
				s.SetIgnore(actionexecutionlog.FieldExecutedBy)
			}
			if _, exists := b.mutation.DecisionNote(); exists {
				s.SetIgnore(actionexecutionlog.FieldDecisionNote)
			}
			if _, exists := b.mutation.OverrideReason(); exists {
				s.SetIgnore(actionexecutionlog.FieldOverrideReason)
			}
			if _, exists := b.mutation.ReviewedBy(); exists {
				s.SetIgnore(actionexecutionlog.FieldReviewedBy)
			}
			if _, exists := b.mutation.ApprovedBy(); exists {
				s.SetIgnore(actionexecutionlog.FieldApprovedBy)
			}
			if _, exists := b.mutation.SignalSnapshot(); exists {
				s.SetIgnore(actionexecutionlog.FieldSignalSnapshot)
			}
			if _, exists := b.mutation.ConditionsEvaluated(); exists {
				s.SetIgnore(actionexecutionlog.FieldConditionsEvaluated)
			}
			if _, exists := b.mutation.ExecutedAt(); exists {
				s.SetIgnore(actionexecutionlog.FieldExecutedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActionExecutionLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActionExecutionLogUpsertBulk) Ignore() *ActionExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActionExecutionLogUpsertBulk) DoNothing() *ActionExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActionExecutionLogCreateBulk.OnConflict
// documentation for more info.
func (u *ActionExecutionLogUpsertBulk) Update(set func(*ActionExecutionLogUpsert)) *ActionExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActionExecutionLogUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ActionExecutionLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ActionExecutionLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActionExecutionLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActionExecutionLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
