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
	"github.com/ameyzing09/rtr-api-sub000/ent/stageevaluation"
)

// StageEvaluationCreate is the builder for creating a StageEvaluation entity.
type StageEvaluationCreate struct {
	config
	mutation *StageEvaluationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *StageEvaluationCreate) SetTenantID(v string) *StageEvaluationCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *StageEvaluationCreate) SetStageID(v string) *StageEvaluationCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *StageEvaluationCreate) SetTemplateID(v string) *StageEvaluationCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetAutoCreate sets the "auto_create" field.
func (_c *StageEvaluationCreate) SetAutoCreate(v bool) *StageEvaluationCreate {
	_c.mutation.SetAutoCreate(v)
	return _c
}

// SetNillableAutoCreate sets the "auto_create" field if the given value is not nil.
func (_c *StageEvaluationCreate) SetNillableAutoCreate(v *bool) *StageEvaluationCreate {
	if v != nil {
		_c.SetAutoCreate(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *StageEvaluationCreate) SetIsActive(v bool) *StageEvaluationCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *StageEvaluationCreate) SetNillableIsActive(v *bool) *StageEvaluationCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StageEvaluationCreate) SetCreatedAt(v time.Time) *StageEvaluationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StageEvaluationCreate) SetNillableCreatedAt(v *time.Time) *StageEvaluationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageEvaluationCreate) SetID(v string) *StageEvaluationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StageEvaluationMutation object of the builder.
func (_c *StageEvaluationCreate) Mutation() *StageEvaluationMutation {
	return _c.mutation
}

// Save creates the StageEvaluation in the database.
func (_c *StageEvaluationCreate) Save(ctx context.Context) (*StageEvaluation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageEvaluationCreate) SaveX(ctx context.Context) *StageEvaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageEvaluationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageEvaluationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageEvaluationCreate) defaults() {
	if _, ok := _c.mutation.AutoCreate(); !ok {
		v := stageevaluation.DefaultAutoCreate
		_c.mutation.SetAutoCreate(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := stageevaluation.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stageevaluation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageEvaluationCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "StageEvaluation.tenant_id"`)}
	}
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "StageEvaluation.stage_id"`)}
	}
	if _, ok := _c.mutation.TemplateID(); !ok {
		return &ValidationError{Name: "template_id", err: errors.New(`ent: missing required field "StageEvaluation.template_id"`)}
	}
	if _, ok := _c.mutation.AutoCreate(); !ok {
		return &ValidationError{Name: "auto_create", err: errors.New(`ent: missing required field "StageEvaluation.auto_create"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "StageEvaluation.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StageEvaluation.created_at"`)}
	}
	return nil
}

func (_c *StageEvaluationCreate) sqlSave(ctx context.Context) (*StageEvaluation, error) {
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
			return nil, fmt.Errorf("unexpected StageEvaluation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageEvaluationCreate) createSpec() (*StageEvaluation, *sqlgraph.CreateSpec) {
	var (
		_node = &StageEvaluation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stageevaluation.Table, sqlgraph.NewFieldSpec(stageevaluation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(stageevaluation.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.StageID(); ok {
		_spec.SetField(stageevaluation.FieldStageID, field.TypeString, value)
		_node.StageID = value
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(stageevaluation.FieldTemplateID, field.TypeString, value)
		_node.TemplateID = value
	}
	if value, ok := _c.mutation.AutoCreate(); ok {
		_spec.SetField(stageevaluation.FieldAutoCreate, field.TypeBool, value)
		_node.AutoCreate = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(stageevaluation.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stageevaluation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StageEvaluation.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StageEvaluationUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *StageEvaluationCreate) OnConflict(opts ...sql.ConflictOption) *StageEvaluationUpsertOne {
	_c.conflict = opts
	return &StageEvaluationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StageEvaluation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StageEvaluationCreate) OnConflictColumns(columns ...string) *StageEvaluationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StageEvaluationUpsertOne{
		create: _c,
	}
}

type (
	// StageEvaluationUpsertOne is the builder for "upsert"-ing
	//  one StageEvaluation node.
	StageEvaluationUpsertOne struct {
		create *StageEvaluationCreate
	}

	// StageEvaluationUpsert is the "OnConflict" setter.
	StageEvaluationUpsert struct {
		*sql.UpdateSet
	}
)

// SetAutoCreate sets the "auto_create" field.
func (u *StageEvaluationUpsert) SetAutoCreate(v bool) *StageEvaluationUpsert {
	u.Set(stageevaluation.FieldAutoCreate, v)
	return u
}

// UpdateAutoCreate sets the "auto_create" field to the value that was provided on create.
func (u *StageEvaluationUpsert) UpdateAutoCreate() *StageEvaluationUpsert {
	u.SetExcluded(stageevaluation.FieldAutoCreate)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *StageEvaluationUpsert) SetIsActive(v bool) *StageEvaluationUpsert {
	u.Set(stageevaluation.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *StageEvaluationUpsert) UpdateIsActive() *StageEvaluationUpsert {
	u.SetExcluded(stageevaluation.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StageEvaluation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stageevaluation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StageEvaluationUpsertOne) UpdateNewValues() *StageEvaluationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stageevaluation.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(stageevaluation.FieldTenantID)
		}
		if _, exists := u.create.mutation.StageID(); exists {
			s.SetIgnore(stageevaluation.FieldStageID)
		}
		if _, exists := u.create.mutation.TemplateID(); exists {
			s.SetIgnore(stageevaluation.FieldTemplateID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stageevaluation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StageEvaluation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StageEvaluationUpsertOne) Ignore() *StageEvaluationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StageEvaluationUpsertOne) DoNothing() *StageEvaluationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StageEvaluationCreate.OnConflict
// documentation for more info.
func (u *StageEvaluationUpsertOne) Update(set func(*StageEvaluationUpsert)) *StageEvaluationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StageEvaluationUpsert{UpdateSet: update})
	}))
	return u
}

// SetAutoCreate sets the "auto_create" field.
func (u *StageEvaluationUpsertOne) SetAutoCreate(v bool) *StageEvaluationUpsertOne {
	return u.Update(func(s *StageEvaluationUpsert) {
		s.SetAutoCreate(v)
	})
}

// UpdateAutoCreate sets the "auto_create" field to the value that was provided on create.
func (u *StageEvaluationUpsertOne) UpdateAutoCreate() *StageEvaluationUpsertOne {
	return u.Update(func(s *StageEvaluationUpsert) {
		s.UpdateAutoCreate()
	})
}

// SetIsActive sets the "is_active" field.
func (u *StageEvaluationUpsertOne) SetIsActive(v bool) *StageEvaluationUpsertOne {
	return u.Update(func(s *StageEvaluationUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *StageEvaluationUpsertOne) UpdateIsActive() *StageEvaluationUpsertOne {
	return u.Update(func(s *StageEvaluationUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *StageEvaluationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StageEvaluationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StageEvaluationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StageEvaluationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StageEvaluationUpsertOne.ID is not supported by MySQL driver. Use StageEvaluationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StageEvaluationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StageEvaluationCreateBulk is the builder for creating many StageEvaluation entities in bulk.
type StageEvaluationCreateBulk struct {
	config
	err      error
	builders []*StageEvaluationCreate
	conflict []sql.ConflictOption
}

// Save creates the StageEvaluation entities in the database.
func (_c *StageEvaluationCreateBulk) Save(ctx context.Context) ([]*StageEvaluation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageEvaluation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageEvaluationMutation)
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
func (_c *StageEvaluationCreateBulk) SaveX(ctx context.Context) []*StageEvaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageEvaluationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageEvaluationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StageEvaluation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StageEvaluationUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *StageEvaluationCreateBulk) OnConflict(opts ...sql.ConflictOption) *StageEvaluationUpsertBulk {
	_c.conflict = opts
	return &StageEvaluationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StageEvaluation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StageEvaluationCreateBulk) OnConflictColumns(columns ...string) *StageEvaluationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StageEvaluationUpsertBulk{
		create: _c,
	}
}

// StageEvaluationUpsertBulk is the builder for "upsert"-ing
// a bulk of StageEvaluation nodes.
type StageEvaluationUpsertBulk struct {
	create *StageEvaluationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StageEvaluation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stageevaluation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StageEvaluationUpsertBulk) UpdateNewValues() *StageEvaluationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stageevaluation.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(stageevaluation.FieldTenantID)
			}
			if _, exists := b.mutation.StageID(); exists {
				s.SetIgnore(stageevaluation.FieldStageID)
			}
			if _, exists := b.mutation.TemplateID(); exists {
				s.SetIgnore(stageevaluation.FieldTemplateID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stageevaluation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StageEvaluation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StageEvaluationUpsertBulk) Ignore() *StageEvaluationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StageEvaluationUpsertBulk) DoNothing() *StageEvaluationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StageEvaluationCreateBulk.OnConflict
// documentation for more info.
func (u *StageEvaluationUpsertBulk) Update(set func(*StageEvaluationUpsert)) *StageEvaluationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StageEvaluationUpsert{UpdateSet: update})
	}))
	return u
}

// SetAutoCreate sets the "auto_create" field.
func (u *StageEvaluationUpsertBulk) SetAutoCreate(v bool) *StageEvaluationUpsertBulk {
	return u.Update(func(s *StageEvaluationUpsert) {
		s.SetAutoCreate(v)
	})
}

// UpdateAutoCreate sets the "auto_create" field to the value that was provided on create.
func (u *StageEvaluationUpsertBulk) UpdateAutoCreate() *StageEvaluationUpsertBulk {
	return u.Update(func(s *StageEvaluationUpsert) {
		s.UpdateAutoCreate()
	})
}

// SetIsActive sets the "is_active" field.
func (u *StageEvaluationUpsertBulk) SetIsActive(v bool) *StageEvaluationUpsertBulk {
	return u.Update(func(s *StageEvaluationUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *StageEvaluationUpsertBulk) UpdateIsActive() *StageEvaluationUpsertBulk {
	return u.Update(func(s *StageEvaluationUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *StageEvaluationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StageEvaluationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StageEvaluationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StageEvaluationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
