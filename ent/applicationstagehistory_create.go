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
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationstagehistory"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ApplicationStageHistoryCreate is the builder for creating a ApplicationStageHistory entity.
type ApplicationStageHistoryCreate struct {
	config
	mutation *ApplicationStageHistoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *ApplicationStageHistoryCreate) SetTenantID(v string) *ApplicationStageHistoryCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetApplicationID sets the "application_id" field.
func (_c *ApplicationStageHistoryCreate) SetApplicationID(v string) *ApplicationStageHistoryCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetActionCode sets the "action_code" field.
func (_c *ApplicationStageHistoryCreate) SetActionCode(v string) *ApplicationStageHistoryCreate {
	_c.mutation.SetActionCode(v)
	return _c
}

// SetNillableActionCode sets the "action_code" field if the given value is not nil.
func (_c *ApplicationStageHistoryCreate) SetNillableActionCode(v *string) *ApplicationStageHistoryCreate {
	if v != nil {
		_c.SetActionCode(*v)
	}
	return _c
}

// SetFromStageID sets the "from_stage_id" field.
func (_c *ApplicationStageHistoryCreate) SetFromStageID(v string) *ApplicationStageHistoryCreate {
	_c.mutation.SetFromStageID(v)
	return _c
}

// SetNillableFromStageID sets the "from_stage_id" field if the given value is not nil.
func (_c *ApplicationStageHistoryCreate) SetNillableFromStageID(v *string) *ApplicationStageHistoryCreate {
	if v != nil {
		_c.SetFromStageID(*v)
	}
	return _c
}

// SetToStageID sets the "to_stage_id" field.
func (_c *ApplicationStageHistoryCreate) SetToStageID(v string) *ApplicationStageHistoryCreate {
	_c.mutation.SetToStageID(v)
	return _c
}

// SetOutcomeType sets the "outcome_type" field.
func (_c *ApplicationStageHistoryCreate) SetOutcomeType(v models.OutcomeType) *ApplicationStageHistoryCreate {
	_c.mutation.SetOutcomeType(v)
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *ApplicationStageHistoryCreate) SetStatusCode(v string) *ApplicationStageHistoryCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetIsTerminal sets the "is_terminal" field.
func (_c *ApplicationStageHistoryCreate) SetIsTerminal(v bool) *ApplicationStageHistoryCreate {
	_c.mutation.SetIsTerminal(v)
	return _c
}

// SetMovedBy sets the "moved_by" field.
func (_c *ApplicationStageHistoryCreate) SetMovedBy(v string) *ApplicationStageHistoryCreate {
	_c.mutation.SetMovedBy(v)
	return _c
}

// SetEventHash sets the "event_hash" field.
func (_c *ApplicationStageHistoryCreate) SetEventHash(v string) *ApplicationStageHistoryCreate {
	_c.mutation.SetEventHash(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApplicationStageHistoryCreate) SetCreatedAt(v time.Time) *ApplicationStageHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApplicationStageHistoryCreate) SetNillableCreatedAt(v *time.Time) *ApplicationStageHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApplicationStageHistoryCreate) SetID(v string) *ApplicationStageHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApplicationStageHistoryMutation object of the builder.
func (_c *ApplicationStageHistoryCreate) Mutation() *ApplicationStageHistoryMutation {
	return _c.mutation
}

// Save creates the ApplicationStageHistory in the database.
func (_c *ApplicationStageHistoryCreate) Save(ctx context.Context) (*ApplicationStageHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicationStageHistoryCreate) SaveX(ctx context.Context) *ApplicationStageHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationStageHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationStageHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicationStageHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := applicationstagehistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicationStageHistoryCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ApplicationStageHistory.tenant_id"`)}
	}
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "ApplicationStageHistory.application_id"`)}
	}
	if _, ok := _c.mutation.ToStageID(); !ok {
		return &ValidationError{Name: "to_stage_id", err: errors.New(`ent: missing required field "ApplicationStageHistory.to_stage_id"`)}
	}
	if _, ok := _c.mutation.OutcomeType(); !ok {
		return &ValidationError{Name: "outcome_type", err: errors.New(`ent: missing required field "ApplicationStageHistory.outcome_type"`)}
	}
	if v, ok := _c.mutation.OutcomeType(); ok {
		if err := applicationstagehistory.OutcomeTypeValidator(v); err != nil {
			return &ValidationError{Name: "outcome_type", err: fmt.Errorf(`ent: validator failed for field "ApplicationStageHistory.outcome_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StatusCode(); !ok {
		return &ValidationError{Name: "status_code", err: errors.New(`ent: missing required field "ApplicationStageHistory.status_code"`)}
	}
	if _, ok := _c.mutation.IsTerminal(); !ok {
		return &ValidationError{Name: "is_terminal", err: errors.New(`ent: missing required field "ApplicationStageHistory.is_terminal"`)}
	}
	if _, ok := _c.mutation.MovedBy(); !ok {
		return &ValidationError{Name: "moved_by", err: errors.New(`ent: missing required field "ApplicationStageHistory.moved_by"`)}
	}
	if _, ok := _c.mutation.EventHash(); !ok {
		return &ValidationError{Name: "event_hash", err: errors.New(`ent: missing required field "ApplicationStageHistory.event_hash"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApplicationStageHistory.created_at"`)}
	}
	return nil
}

func (_c *ApplicationStageHistoryCreate) sqlSave(ctx context.Context) (*ApplicationStageHistory, error) {
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
			return nil, fmt.Errorf("unexpected ApplicationStageHistory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApplicationStageHistoryCreate) createSpec() (*ApplicationStageHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &ApplicationStageHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(applicationstagehistory.Table, sqlgraph.NewFieldSpec(applicationstagehistory.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(applicationstagehistory.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.ApplicationID(); ok {
		_spec.SetField(applicationstagehistory.FieldApplicationID, field.TypeString, value)
		_node.ApplicationID = value
	}
	if value, ok := _c.mutation.ActionCode(); ok {
		_spec.SetField(applicationstagehistory.FieldActionCode, field.TypeString, value)
		_node.ActionCode = value
	}
	if value, ok := _c.mutation.FromStageID(); ok {
		_spec.SetField(applicationstagehistory.FieldFromStageID, field.TypeString, value)
		_node.FromStageID = &value
	}
	if value, ok := _c.mutation.ToStageID(); ok {
		_spec.SetField(applicationstagehistory.FieldToStageID, field.TypeString, value)
		_node.ToStageID = value
	}
	if value, ok := _c.mutation.OutcomeType(); ok {
		_spec.SetField(applicationstagehistory.FieldOutcomeType, field.TypeEnum, value)
		_node.OutcomeType = value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(applicationstagehistory.FieldStatusCode, field.TypeString, value)
		_node.StatusCode = value
	}
	if value, ok := _c.mutation.IsTerminal(); ok {
		_spec.SetField(applicationstagehistory.FieldIsTerminal, field.TypeBool, value)
		_node.IsTerminal = value
	}
	if value, ok := _c.mutation.MovedBy(); ok {
		_spec.SetField(applicationstagehistory.FieldMovedBy, field.TypeString, value)
		_node.MovedBy = value
	}
	if value, ok := _c.mutation.EventHash(); ok {
		_spec.SetField(applicationstagehistory.FieldEventHash, field.TypeString, value)
		_node.EventHash = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(applicationstagehistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApplicationStageHistory.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApplicationStageHistoryUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApplicationStageHistoryCreate) OnConflict(opts ...sql.ConflictOption) *ApplicationStageHistoryUpsertOne {
	_c.conflict = opts
	return &ApplicationStageHistoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApplicationStageHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApplicationStageHistoryCreate) OnConflictColumns(columns ...string) *ApplicationStageHistoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApplicationStageHistoryUpsertOne{
		create: _c,
	}
}

type (
	// ApplicationStageHistoryUpsertOne is the builder for "upsert"-ing
	//  one ApplicationStageHistory node.
	ApplicationStageHistoryUpsertOne struct {
		create *ApplicationStageHistoryCreate
	}

	// ApplicationStageHistoryUpsert is the "OnConflict" setter.
	ApplicationStageHistoryUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ApplicationStageHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(applicationstagehistory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApplicationStageHistoryUpsertOne) UpdateNewValues() *ApplicationStageHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(applicationstagehistory.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(applicationstagehistory.FieldTenantID)
		}
		if _, exists := u.create.mutation.ApplicationID(); exists {
			s.SetIgnore(applicationstagehistory.FieldApplicationID)
		}
		if _, exists := u.create.mutation.ActionCode(); exists {
			s.SetIgnore(applicationstagehistory.FieldActionCode)
		}
		if _, exists := u.create.mutation.FromStageID(); exists {
			s.SetIgnore(applicationstagehistory.FieldFromStageID)
		}
		if _, exists := u.create.mutation.ToStageID(); exists {
			s.SetIgnore(applicationstagehistory.FieldToStageID)
		}
		if _, exists := u.create.mutation.OutcomeType(); exists {
			s.SetIgnore(applicationstagehistory.FieldOutcomeType)
		}
		if _, exists := u.create.mutation.StatusCode(); exists {
			s.SetIgnore(applicationstagehistory.FieldStatusCode)
		}
		if _, exists := u.create.mutation.IsTerminal(); exists {
			s.SetIgnore(applicationstagehistory.FieldIsTerminal)
		}
		if _, exists := u.create.mutation.MovedBy(); exists {
			s.SetIgnore(applicationstagehistory.FieldMovedBy)
		}
		if _, exists := u.create.mutation.EventHash(); exists {
			s.SetIgnore(applicationstagehistory.FieldEventHash)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(applicationstagehistory.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApplicationStageHistory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApplicationStageHistoryUpsertOne) Ignore() *ApplicationStageHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApplicationStageHistoryUpsertOne) DoNothing() *ApplicationStageHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApplicationStageHistoryCreate.OnConflict
// documentation for more info.
func (u *ApplicationStageHistoryUpsertOne) Update(set func(*ApplicationStageHistoryUpsert)) *ApplicationStageHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApplicationStageHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ApplicationStageHistoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApplicationStageHistoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApplicationStageHistoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApplicationStageHistoryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ApplicationStageHistoryUpsertOne.ID is not supported by MySQL driver. Use ApplicationStageHistoryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApplicationStageHistoryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApplicationStageHistoryCreateBulk is the builder for creating many ApplicationStageHistory entities in bulk.
type ApplicationStageHistoryCreateBulk struct {
	config
	err      error
	builders []*ApplicationStageHistoryCreate
	conflict []sql.ConflictOption
}

// Save creates the ApplicationStageHistory entities in the database.
func (_c *ApplicationStageHistoryCreateBulk) Save(ctx context.Context) ([]*ApplicationStageHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApplicationStageHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationStageHistoryMutation)
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
func (_c *ApplicationStageHistoryCreateBulk) SaveX(ctx context.Context) []*ApplicationStageHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationStageHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationStageHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApplicationStageHistory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApplicationStageHistoryUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApplicationStageHistoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApplicationStageHistoryUpsertBulk {
	_c.conflict = opts
	return &ApplicationStageHistoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApplicationStageHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApplicationStageHistoryCreateBulk) OnConflictColumns(columns ...string) *ApplicationStageHistoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApplicationStageHistoryUpsertBulk{
		create: _c,
	}
}

// ApplicationStageHistoryUpsertBulk is the builder for "upsert"-ing
// a bulk of ApplicationStageHistory nodes.
type ApplicationStageHistoryUpsertBulk struct {
	create *ApplicationStageHistoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ApplicationStageHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(applicationstagehistory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApplicationStageHistoryUpsertBulk) UpdateNewValues() *ApplicationStageHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(applicationstagehistory.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(applicationstagehistory.FieldTenantID)
			}
			if _, exists := b.mutation.ApplicationID(); exists {
				s.SetIgnore(applicationstagehistory.FieldApplicationID)
			}
			if _, exists := b.mutation.ActionCode(); exists {
				s.SetIgnore(applicationstagehistory.FieldActionCode)
			}
			if _, exists := b.mutation.FromStageID(); exists {
				s.SetIgnore(applicationstagehistory.FieldFromStageID)
			}
			if _, exists := b.mutation.ToStageID(); exists {
				s.SetIgnore(applicationstagehistory.FieldToStageID)
			}
			if _, exists := b.mutation.OutcomeType(); exists {
				s.SetIgnore(applicationstagehistory.FieldOutcomeType)
			}
			if _, exists := b.mutation.StatusCode(); exists {
				s.SetIgnore(applicationstagehistory.FieldStatusCode)
			}
			if _, exists := b.mutation.IsTerminal(); exists {
				s.SetIgnore(applicationstagehistory.FieldIsTerminal)
			}
			if _, exists := b.mutation.MovedBy(); exists {
				s.SetIgnore(applicationstagehistory.FieldMovedBy)
			}
			if _, exists := b.mutation.EventHash(); exists {
				s.SetIgnore(applicationstagehistory.FieldEventHash)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(applicationstagehistory.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApplicationStageHistory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApplicationStageHistoryUpsertBulk) Ignore() *ApplicationStageHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApplicationStageHistoryUpsertBulk) DoNothing() *ApplicationStageHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApplicationStageHistoryCreateBulk.OnConflict
// documentation for more info.
func (u *ApplicationStageHistoryUpsertBulk) Update(set func(*ApplicationStageHistoryUpsert)) *ApplicationStageHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApplicationStageHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ApplicationStageHistoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApplicationStageHistoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApplicationStageHistoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApplicationStageHistoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
