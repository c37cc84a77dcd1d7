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
	"github.com/ameyzing09/rtr-api-sub000/ent/stagefeedback"
)

// StageFeedbackCreate is the builder for creating a StageFeedback entity.
type StageFeedbackCreate struct {
	config
	mutation *StageFeedbackMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *StageFeedbackCreate) SetTenantID(v string) *StageFeedbackCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetApplicationID sets the "application_id" field.
func (_c *StageFeedbackCreate) SetApplicationID(v string) *StageFeedbackCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *StageFeedbackCreate) SetStageID(v string) *StageFeedbackCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *StageFeedbackCreate) SetUserID(v string) *StageFeedbackCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetComments sets the "comments" field.
func (_c *StageFeedbackCreate) SetComments(v string) *StageFeedbackCreate {
	_c.mutation.SetComments(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *StageFeedbackCreate) SetRating(v int) *StageFeedbackCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *StageFeedbackCreate) SetNillableRating(v *int) *StageFeedbackCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StageFeedbackCreate) SetCreatedAt(v time.Time) *StageFeedbackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StageFeedbackCreate) SetNillableCreatedAt(v *time.Time) *StageFeedbackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageFeedbackCreate) SetID(v string) *StageFeedbackCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StageFeedbackMutation object of the builder.
func (_c *StageFeedbackCreate) Mutation() *StageFeedbackMutation {
	return _c.mutation
}

// Save creates the StageFeedback in the database.
func (_c *StageFeedbackCreate) Save(ctx context.Context) (*StageFeedback, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageFeedbackCreate) SaveX(ctx context.Context) *StageFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageFeedbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageFeedbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageFeedbackCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagefeedback.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageFeedbackCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "StageFeedback.tenant_id"`)}
	}
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "StageFeedback.application_id"`)}
	}
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "StageFeedback.stage_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StageFeedback.user_id"`)}
	}
	if _, ok := _c.mutation.Comments(); !ok {
		return &ValidationError{Name: "comments", err: errors.New(`ent: missing required field "StageFeedback.comments"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StageFeedback.created_at"`)}
	}
	return nil
}

func (_c *StageFeedbackCreate) sqlSave(ctx context.Context) (*StageFeedback, error) {
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
			return nil, fmt.Errorf("unexpected StageFeedback.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageFeedbackCreate) createSpec() (*StageFeedback, *sqlgraph.CreateSpec) {
	var (
		_node = &StageFeedback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagefeedback.Table, sqlgraph.NewFieldSpec(stagefeedback.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(stagefeedback.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.ApplicationID(); ok {
		_spec.SetField(stagefeedback.FieldApplicationID, field.TypeString, value)
		_node.ApplicationID = value
	}
	if value, ok := _c.mutation.StageID(); ok {
		_spec.SetField(stagefeedback.FieldStageID, field.TypeString, value)
		_node.StageID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(stagefeedback.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Comments(); ok {
		_spec.SetField(stagefeedback.FieldComments, field.TypeString, value)
		_node.Comments = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(stagefeedback.FieldRating, field.TypeInt, value)
		_node.Rating = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagefeedback.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StageFeedback.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StageFeedbackUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *StageFeedbackCreate) OnConflict(opts ...sql.ConflictOption) *StageFeedbackUpsertOne {
	_c.conflict = opts
	return &StageFeedbackUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StageFeedback.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StageFeedbackCreate) OnConflictColumns(columns ...string) *StageFeedbackUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StageFeedbackUpsertOne{
		create: _c,
	}
}

type (
	// StageFeedbackUpsertOne is the builder for "upsert"-ing
	//  one StageFeedback node.
	StageFeedbackUpsertOne struct {
		create *StageFeedbackCreate
	}

	// StageFeedbackUpsert is the "OnConflict" setter.
	StageFeedbackUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StageFeedback.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagefeedback.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StageFeedbackUpsertOne) UpdateNewValues() *StageFeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stagefeedback.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(stagefeedback.FieldTenantID)
		}
		if _, exists := u.create.mutation.ApplicationID(); exists {
			s.SetIgnore(stagefeedback.FieldApplicationID)
		}
		if _, exists := u.create.mutation.StageID(); exists {
			s.SetIgnore(stagefeedback.FieldStageID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(stagefeedback.FieldUserID)
		}
		if _, exists := u.create.mutation.Comments(); exists {
			s.SetIgnore(stagefeedback.FieldComments)
		}
		if _, exists := u.create.mutation.Rating(); exists {
			s.SetIgnore(stagefeedback.FieldRating)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stagefeedback.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StageFeedback.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StageFeedbackUpsertOne) Ignore() *StageFeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StageFeedbackUpsertOne) DoNothing() *StageFeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StageFeedbackCreate.OnConflict
// documentation for more info.
func (u *StageFeedbackUpsertOne) Update(set func(*StageFeedbackUpsert)) *StageFeedbackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StageFeedbackUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *StageFeedbackUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StageFeedbackCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StageFeedbackUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StageFeedbackUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StageFeedbackUpsertOne.ID is not supported by MySQL driver. Use StageFeedbackUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StageFeedbackUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StageFeedbackCreateBulk is the builder for creating many StageFeedback entities in bulk.
type StageFeedbackCreateBulk struct {
	config
	err      error
	builders []*StageFeedbackCreate
	conflict []sql.ConflictOption
}

// Save creates the StageFeedback entities in the database.
func (_c *StageFeedbackCreateBulk) Save(ctx context.Context) ([]*StageFeedback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageFeedback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageFeedbackMutation)
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
func (_c *StageFeedbackCreateBulk) SaveX(ctx context.Context) []*StageFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageFeedbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageFeedbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StageFeedback.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StageFeedbackUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *StageFeedbackCreateBulk) OnConflict(opts ...sql.ConflictOption) *StageFeedbackUpsertBulk {
	_c.conflict = opts
	return &StageFeedbackUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StageFeedback.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StageFeedbackCreateBulk) OnConflictColumns(columns ...string) *StageFeedbackUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StageFeedbackUpsertBulk{
		create: _c,
	}
}

// StageFeedbackUpsertBulk is the builder for "upsert"-ing
// a bulk of StageFeedback nodes.
type StageFeedbackUpsertBulk struct {
	create *StageFeedbackCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StageFeedback.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stagefeedback.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StageFeedbackUpsertBulk) UpdateNewValues() *StageFeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stagefeedback.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(stagefeedback.FieldTenantID)
			}
			if _, exists := b.mutation.ApplicationID(); exists {
				s.SetIgnore(stagefeedback.FieldApplicationID)
			}
			if _, exists := b.mutation.StageID(); exists {
				s.SetIgnore(stagefeedback.FieldStageID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(stagefeedback.FieldUserID)
			}
			if _, exists := b.mutation.Comments(); exists {
				s.SetIgnore(stagefeedback.FieldComments)
			}
			if _, exists := b.mutation.Rating(); exists {
				s.SetIgnore(stagefeedback.FieldRating)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stagefeedback.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StageFeedback.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StageFeedbackUpsertBulk) Ignore() *StageFeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StageFeedbackUpsertBulk) DoNothing() *StageFeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StageFeedbackCreateBulk.OnConflict
// documentation for more info.
func (u *StageFeedbackUpsertBulk) Update(set func(*StageFeedbackUpsert)) *StageFeedbackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StageFeedbackUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *StageFeedbackUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StageFeedbackCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StageFeedbackCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StageFeedbackUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
