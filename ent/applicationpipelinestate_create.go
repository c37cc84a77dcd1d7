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
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationpipelinestate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ApplicationPipelineStateCreate is the builder for creating a ApplicationPipelineState entity.
type ApplicationPipelineStateCreate struct {
	config
	mutation *ApplicationPipelineStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *ApplicationPipelineStateCreate) SetTenantID(v string) *ApplicationPipelineStateCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetApplicationID sets the "application_id" field.
func (_c *ApplicationPipelineStateCreate) SetApplicationID(v string) *ApplicationPipelineStateCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *ApplicationPipelineStateCreate) SetJobID(v string) *ApplicationPipelineStateCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetPipelineID sets the "pipeline_id" field.
func (_c *ApplicationPipelineStateCreate) SetPipelineID(v string) *ApplicationPipelineStateCreate {
	_c.mutation.SetPipelineID(v)
	return _c
}

// SetCurrentStageID sets the "current_stage_id" field.
func (_c *ApplicationPipelineStateCreate) SetCurrentStageID(v string) *ApplicationPipelineStateCreate {
	_c.mutation.SetCurrentStageID(v)
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *ApplicationPipelineStateCreate) SetStatusCode(v string) *ApplicationPipelineStateCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetOutcomeType sets the "outcome_type" field.
func (_c *ApplicationPipelineStateCreate) SetOutcomeType(v models.OutcomeType) *ApplicationPipelineStateCreate {
	_c.mutation.SetOutcomeType(v)
	return _c
}

// SetNillableOutcomeType sets the "outcome_type" field if the given value is not nil.
func (_c *ApplicationPipelineStateCreate) SetNillableOutcomeType(v *models.OutcomeType) *ApplicationPipelineStateCreate {
	if v != nil {
		_c.SetOutcomeType(*v)
	}
	return _c
}

// SetIsTerminal sets the "is_terminal" field.
func (_c *ApplicationPipelineStateCreate) SetIsTerminal(v bool) *ApplicationPipelineStateCreate {
	_c.mutation.SetIsTerminal(v)
	return _c
}

// SetNillableIsTerminal sets the "is_terminal" field if the given value is not nil.
func (_c *ApplicationPipelineStateCreate) SetNillableIsTerminal(v *bool) *ApplicationPipelineStateCreate {
	if v != nil {
		_c.SetIsTerminal(*v)
	}
	return _c
}

// SetEnteredStageAt sets the "entered_stage_at" field.
func (_c *ApplicationPipelineStateCreate) SetEnteredStageAt(v time.Time) *ApplicationPipelineStateCreate {
	_c.mutation.SetEnteredStageAt(v)
	return _c
}

// SetNillableEnteredStageAt sets the "entered_stage_at" field if the given value is not nil.
func (_c *ApplicationPipelineStateCreate) SetNillableEnteredStageAt(v *time.Time) *ApplicationPipelineStateCreate {
	if v != nil {
		_c.SetEnteredStageAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApplicationPipelineStateCreate) SetCreatedAt(v time.Time) *ApplicationPipelineStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApplicationPipelineStateCreate) SetNillableCreatedAt(v *time.Time) *ApplicationPipelineStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApplicationPipelineStateCreate) SetUpdatedAt(v time.Time) *ApplicationPipelineStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApplicationPipelineStateCreate) SetNillableUpdatedAt(v *time.Time) *ApplicationPipelineStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApplicationPipelineStateCreate) SetID(v string) *ApplicationPipelineStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApplicationPipelineStateMutation object of the builder.
func (_c *ApplicationPipelineStateCreate) Mutation() *ApplicationPipelineStateMutation {
	return _c.mutation
}

// Save creates the ApplicationPipelineState in the database.
func (_c *ApplicationPipelineStateCreate) Save(ctx context.Context) (*ApplicationPipelineState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicationPipelineStateCreate) SaveX(ctx context.Context) *ApplicationPipelineState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationPipelineStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationPipelineStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicationPipelineStateCreate) defaults() {
	if _, ok := _c.mutation.OutcomeType(); !ok {
		v := applicationpipelinestate.DefaultOutcomeType
		_c.mutation.SetOutcomeType(v)
	}
	if _, ok := _c.mutation.IsTerminal(); !ok {
		v := applicationpipelinestate.DefaultIsTerminal
		_c.mutation.SetIsTerminal(v)
	}
	if _, ok := _c.mutation.EnteredStageAt(); !ok {
		v := applicationpipelinestate.DefaultEnteredStageAt()
		_c.mutation.SetEnteredStageAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := applicationpipelinestate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := applicationpipelinestate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicationPipelineStateCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ApplicationPipelineState.tenant_id"`)}
	}
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "ApplicationPipelineState.application_id"`)}
	}
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ApplicationPipelineState.job_id"`)}
	}
	if _, ok := _c.mutation.PipelineID(); !ok {
		return &ValidationError{Name: "pipeline_id", err: errors.New(`ent: missing required field "ApplicationPipelineState.pipeline_id"`)}
	}
	if _, ok := _c.mutation.CurrentStageID(); !ok {
		return &ValidationError{Name: "current_stage_id", err: errors.New(`ent: missing required field "ApplicationPipelineState.current_stage_id"`)}
	}
	if _, ok := _c.mutation.StatusCode(); !ok {
		return &ValidationError{Name: "status_code", err: errors.New(`ent: missing required field "ApplicationPipelineState.status_code"`)}
	}
	if _, ok := _c.mutation.OutcomeType(); !ok {
		return &ValidationError{Name: "outcome_type", err: errors.New(`ent: missing required field "ApplicationPipelineState.outcome_type"`)}
	}
	if v, ok := _c.mutation.OutcomeType(); ok {
		if err := applicationpipelinestate.OutcomeTypeValidator(v); err != nil {
			return &ValidationError{Name: "outcome_type", err: fmt.Errorf(`ent: validator failed for field "ApplicationPipelineState.outcome_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsTerminal(); !ok {
		return &ValidationError{Name: "is_terminal", err: errors.New(`ent: missing required field "ApplicationPipelineState.is_terminal"`)}
	}
	if _, ok := _c.mutation.EnteredStageAt(); !ok {
		return &ValidationError{Name: "entered_stage_at", err: errors.New(`ent: missing required field "ApplicationPipelineState.entered_stage_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApplicationPipelineState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ApplicationPipelineState.updated_at"`)}
	}
	return nil
}

func (_c *ApplicationPipelineStateCreate) sqlSave(ctx context.Context) (*ApplicationPipelineState, error) {
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
			return nil, fmt.Errorf("unexpected ApplicationPipelineState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApplicationPipelineStateCreate) createSpec() (*ApplicationPipelineState, *sqlgraph.CreateSpec) {
	var (
		_node = &ApplicationPipelineState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(applicationpipelinestate.Table, sqlgraph.NewFieldSpec(applicationpipelinestate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(applicationpipelinestate.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.ApplicationID(); ok {
		_spec.SetField(applicationpipelinestate.FieldApplicationID, field.TypeString, value)
		_node.ApplicationID = value
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(applicationpipelinestate.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.PipelineID(); ok {
		_spec.SetField(applicationpipelinestate.FieldPipelineID, field.TypeString, value)
		_node.PipelineID = value
	}
	if value, ok := _c.mutation.CurrentStageID(); ok {
		_spec.SetField(applicationpipelinestate.FieldCurrentStageID, field.TypeString, value)
		_node.CurrentStageID = value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(applicationpipelinestate.FieldStatusCode, field.TypeString, value)
		_node.StatusCode = value
	}
	if value, ok := _c.mutation.OutcomeType(); ok {
		_spec.SetField(applicationpipelinestate.FieldOutcomeType, field.TypeEnum, value)
		_node.OutcomeType = value
	}
	if value, ok := _c.mutation.IsTerminal(); ok {
		_spec.SetField(applicationpipelinestate.FieldIsTerminal, field.TypeBool, value)
		_node.IsTerminal = value
	}
	if value, ok := _c.mutation.EnteredStageAt(); ok {
		_spec.SetField(applicationpipelinestate.FieldEnteredStageAt, field.TypeTime, value)
		_node.EnteredStageAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(applicationpipelinestate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(applicationpipelinestate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApplicationPipelineState.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApplicationPipelineStateUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApplicationPipelineStateCreate) OnConflict(opts ...sql.ConflictOption) *ApplicationPipelineStateUpsertOne {
	_c.conflict = opts
	return &ApplicationPipelineStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApplicationPipelineState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApplicationPipelineStateCreate) OnConflictColumns(columns ...string) *ApplicationPipelineStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApplicationPipelineStateUpsertOne{
		create: _c,
	}
}

type (
	// ApplicationPipelineStateUpsertOne is the builder for "upsert"-ing
	//  one ApplicationPipelineState node.
	ApplicationPipelineStateUpsertOne struct {
		create *ApplicationPipelineStateCreate
	}

	// ApplicationPipelineStateUpsert is the "OnConflict" setter.
	ApplicationPipelineStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetCurrentStageID sets the "current_stage_id" field.
func (u *ApplicationPipelineStateUpsert) SetCurrentStageID(v string) *ApplicationPipelineStateUpsert {
	u.Set(applicationpipelinestate.FieldCurrentStageID, v)
	return u
}

// UpdateCurrentStageID sets the "current_stage_id" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsert) UpdateCurrentStageID() *ApplicationPipelineStateUpsert {
	u.SetExcluded(applicationpipelinestate.FieldCurrentStageID)
	return u
}

// SetStatusCode sets the "status_code" field.
func (u *ApplicationPipelineStateUpsert) SetStatusCode(v string) *ApplicationPipelineStateUpsert {
	u.Set(applicationpipelinestate.FieldStatusCode, v)
	return u
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsert) UpdateStatusCode() *ApplicationPipelineStateUpsert {
	u.SetExcluded(applicationpipelinestate.FieldStatusCode)
	return u
}

// SetOutcomeType sets the "outcome_type" field.
func (u *ApplicationPipelineStateUpsert) SetOutcomeType(v models.OutcomeType) *ApplicationPipelineStateUpsert {
	u.Set(applicationpipelinestate.FieldOutcomeType, v)
	return u
}

// UpdateOutcomeType sets the "outcome_type" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsert) UpdateOutcomeType() *ApplicationPipelineStateUpsert {
	u.SetExcluded(applicationpipelinestate.FieldOutcomeType)
	return u
}

// SetIsTerminal sets the "is_terminal" field.
func (u *ApplicationPipelineStateUpsert) SetIsTerminal(v bool) *ApplicationPipelineStateUpsert {
	u.Set(applicationpipelinestate.FieldIsTerminal, v)
	return u
}

// UpdateIsTerminal sets the "is_terminal" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsert) UpdateIsTerminal() *ApplicationPipelineStateUpsert {
	u.SetExcluded(applicationpipelinestate.FieldIsTerminal)
	return u
}

// SetEnteredStageAt sets the "entered_stage_at" field.
func (u *ApplicationPipelineStateUpsert) SetEnteredStageAt(v time.Time) *ApplicationPipelineStateUpsert {
	u.Set(applicationpipelinestate.FieldEnteredStageAt, v)
	return u
}

// UpdateEnteredStageAt sets the "entered_stage_at" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsert) UpdateEnteredStageAt() *ApplicationPipelineStateUpsert {
	u.SetExcluded(applicationpipelinestate.FieldEnteredStageAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ApplicationPipelineStateUpsert) SetUpdatedAt(v time.Time) *ApplicationPipelineStateUpsert {
	u.Set(applicationpipelinestate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsert) UpdateUpdatedAt() *ApplicationPipelineStateUpsert {
	u.SetExcluded(applicationpipelinestate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ApplicationPipelineState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(applicationpipelinestate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApplicationPipelineStateUpsertOne) UpdateNewValues() *ApplicationPipelineStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(applicationpipelinestate.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(applicationpipelinestate.FieldTenantID)
		}
		if _, exists := u.create.mutation.ApplicationID(); exists {
			s.SetIgnore(applicationpipelinestate.FieldApplicationID)
		}
		if _, exists := u.create.mutation.JobID(); exists {
			s.SetIgnore(applicationpipelinestate.FieldJobID)
		}
		if _, exists := u.create.mutation.PipelineID(); exists {
			s.SetIgnore(applicationpipelinestate.FieldPipelineID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(applicationpipelinestate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApplicationPipelineState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApplicationPipelineStateUpsertOne) Ignore() *ApplicationPipelineStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApplicationPipelineStateUpsertOne) DoNothing() *ApplicationPipelineStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApplicationPipelineStateCreate.OnConflict
// documentation for more info.
func (u *ApplicationPipelineStateUpsertOne) Update(set func(*ApplicationPipelineStateUpsert)) *ApplicationPipelineStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApplicationPipelineStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetCurrentStageID sets the "current_stage_id" field.
func (u *ApplicationPipelineStateUpsertOne) SetCurrentStageID(v string) *ApplicationPipelineStateUpsertOne {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.SetCurrentStageID(v)
	})
}

// UpdateCurrentStageID sets the "current_stage_id" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsertOne) UpdateCurrentStageID() *ApplicationPipelineStateUpsertOne {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.UpdateCurrentStageID()
	})
}

// SetStatusCode sets the "status_code" field.
func (u *ApplicationPipelineStateUpsertOne) SetStatusCode(v string) *ApplicationPipelineStateUpsertOne {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.SetStatusCode(v)
	})
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsertOne) UpdateStatusCode() *ApplicationPipelineStateUpsertOne {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.UpdateStatusCode()
	})
}

// SetOutcomeType sets the "outcome_type" field.
func (u *ApplicationPipelineStateUpsertOne) SetOutcomeType(v models.OutcomeType) *ApplicationPipelineStateUpsertOne {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.SetOutcomeType(v)
	})
}

// UpdateOutcomeType sets the "outcome_type" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsertOne) UpdateOutcomeType() *ApplicationPipelineStateUpsertOne {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.UpdateOutcomeType()
	})
}

// SetIsTerminal sets the "is_terminal" field.
func (u *ApplicationPipelineStateUpsertOne) SetIsTerminal(v bool) *ApplicationPipelineStateUpsertOne {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.SetIsTerminal(v)
	})
}

// UpdateIsTerminal sets the "is_terminal" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsertOne) UpdateIsTerminal() *ApplicationPipelineStateUpsertOne {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.UpdateIsTerminal()
	})
}

// SetEnteredStageAt sets the "entered_stage_at" field.
func (u *ApplicationPipelineStateUpsertOne) SetEnteredStageAt(v time.Time) *ApplicationPipelineStateUpsertOne {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.SetEnteredStageAt(v)
	})
}

// UpdateEnteredStageAt sets the "entered_stage_at" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsertOne) UpdateEnteredStageAt() *ApplicationPipelineStateUpsertOne {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.UpdateEnteredStageAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ApplicationPipelineStateUpsertOne) SetUpdatedAt(v time.Time) *ApplicationPipelineStateUpsertOne {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsertOne) UpdateUpdatedAt() *ApplicationPipelineStateUpsertOne {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ApplicationPipelineStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApplicationPipelineStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApplicationPipelineStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApplicationPipelineStateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ApplicationPipelineStateUpsertOne.ID is not supported by MySQL driver. Use ApplicationPipelineStateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApplicationPipelineStateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApplicationPipelineStateCreateBulk is the builder for creating many ApplicationPipelineState entities in bulk.
type ApplicationPipelineStateCreateBulk struct {
	config
	err      error
	builders []*ApplicationPipelineStateCreate
	conflict []sql.ConflictOption
}

// Save creates the ApplicationPipelineState entities in the database.
func (_c *ApplicationPipelineStateCreateBulk) Save(ctx context.Context) ([]*ApplicationPipelineState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApplicationPipelineState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationPipelineStateMutation)
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
func (_c *ApplicationPipelineStateCreateBulk) SaveX(ctx context.Context) []*ApplicationPipelineState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationPipelineStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationPipelineStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApplicationPipelineState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApplicationPipelineStateUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApplicationPipelineStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApplicationPipelineStateUpsertBulk {
	_c.conflict = opts
	return &ApplicationPipelineStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApplicationPipelineState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApplicationPipelineStateCreateBulk) OnConflictColumns(columns ...string) *ApplicationPipelineStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApplicationPipelineStateUpsertBulk{
		create: _c,
	}
}

// ApplicationPipelineStateUpsertBulk is the builder for "upsert"-ing
// a bulk of ApplicationPipelineState nodes.
type ApplicationPipelineStateUpsertBulk struct {
	create *ApplicationPipelineStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ApplicationPipelineState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(applicationpipelinestate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApplicationPipelineStateUpsertBulk) UpdateNewValues() *ApplicationPipelineStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(applicationpipelinestate.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(applicationpipelinestate.FieldTenantID)
			}
			if _, exists := b.mutation.ApplicationID(); exists {
				s.SetIgnore(applicationpipelinestate.FieldApplicationID)
			}
			if _, exists := b.mutation.JobID(); exists {
				s.SetIgnore(applicationpipelinestate.FieldJobID)
			}
			if _, exists := b.mutation.PipelineID(); exists {
				s.SetIgnore(applicationpipelinestate.FieldPipelineID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(applicationpipelinestate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApplicationPipelineState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApplicationPipelineStateUpsertBulk) Ignore() *ApplicationPipelineStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApplicationPipelineStateUpsertBulk) DoNothing() *ApplicationPipelineStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApplicationPipelineStateCreateBulk.OnConflict
// documentation for more info.
func (u *ApplicationPipelineStateUpsertBulk) Update(set func(*ApplicationPipelineStateUpsert)) *ApplicationPipelineStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApplicationPipelineStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetCurrentStageID sets the "current_stage_id" field.
func (u *ApplicationPipelineStateUpsertBulk) SetCurrentStageID(v string) *ApplicationPipelineStateUpsertBulk {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.SetCurrentStageID(v)
	})
}

// UpdateCurrentStageID sets the "current_stage_id" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsertBulk) UpdateCurrentStageID() *ApplicationPipelineStateUpsertBulk {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.UpdateCurrentStageID()
	})
}

// SetStatusCode sets the "status_code" field.
func (u *ApplicationPipelineStateUpsertBulk) SetStatusCode(v string) *ApplicationPipelineStateUpsertBulk {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.SetStatusCode(v)
	})
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsertBulk) UpdateStatusCode() *ApplicationPipelineStateUpsertBulk {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.UpdateStatusCode()
	})
}

// SetOutcomeType sets the "outcome_type" field.
func (u *ApplicationPipelineStateUpsertBulk) SetOutcomeType(v models.OutcomeType) *ApplicationPipelineStateUpsertBulk {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.SetOutcomeType(v)
	})
}

// UpdateOutcomeType sets the "outcome_type" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsertBulk) UpdateOutcomeType() *ApplicationPipelineStateUpsertBulk {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.UpdateOutcomeType()
	})
}

// SetIsTerminal sets the "is_terminal" field.
func (u *ApplicationPipelineStateUpsertBulk) SetIsTerminal(v bool) *ApplicationPipelineStateUpsertBulk {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.SetIsTerminal(v)
	})
}

// UpdateIsTerminal sets the "is_terminal" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsertBulk) UpdateIsTerminal() *ApplicationPipelineStateUpsertBulk {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.UpdateIsTerminal()
	})
}

// SetEnteredStageAt sets the "entered_stage_at" field.
func (u *ApplicationPipelineStateUpsertBulk) SetEnteredStageAt(v time.Time) *ApplicationPipelineStateUpsertBulk {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.SetEnteredStageAt(v)
	})
}

// UpdateEnteredStageAt sets the "entered_stage_at" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsertBulk) UpdateEnteredStageAt() *ApplicationPipelineStateUpsertBulk {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.UpdateEnteredStageAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ApplicationPipelineStateUpsertBulk) SetUpdatedAt(v time.Time) *ApplicationPipelineStateUpsertBulk {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ApplicationPipelineStateUpsertBulk) UpdateUpdatedAt() *ApplicationPipelineStateUpsertBulk {
	return u.Update(func(s *ApplicationPipelineStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ApplicationPipelineStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApplicationPipelineStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApplicationPipelineStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApplicationPipelineStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
