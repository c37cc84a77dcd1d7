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
	"github.com/ameyzing09/rtr-api-sub000/ent/pipeline"
	"github.com/ameyzing09/rtr-api-sub000/ent/pipelinestage"
)

// PipelineCreate is the builder for creating a Pipeline entity.
type PipelineCreate struct {
	config
	mutation *PipelineMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *PipelineCreate) SetTenantID(v string) *PipelineCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PipelineCreate) SetName(v string) *PipelineCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PipelineCreate) SetIsActive(v bool) *PipelineCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PipelineCreate) SetNillableIsActive(v *bool) *PipelineCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineCreate) SetCreatedAt(v time.Time) *PipelineCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineCreate) SetNillableCreatedAt(v *time.Time) *PipelineCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineCreate) SetID(v string) *PipelineCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStageIDs adds the "stages" edge to the PipelineStage entity by IDs.
func (_c *PipelineCreate) AddStageIDs(ids ...string) *PipelineCreate {
	_c.mutation.AddStageIDs(ids...)
	return _c
}

// AddStages adds the "stages" edges to the PipelineStage entity.
func (_c *PipelineCreate) AddStages(v ...*PipelineStage) *PipelineCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStageIDs(ids...)
}

// Mutation returns the PipelineMutation object of the builder.
func (_c *PipelineCreate) Mutation() *PipelineMutation {
	return _c.mutation
}

// Save creates the Pipeline in the database.
func (_c *PipelineCreate) Save(ctx context.Context) (*Pipeline, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineCreate) SaveX(ctx context.Context) *Pipeline {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := pipeline.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipeline.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Pipeline.tenant_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Pipeline.name"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Pipeline.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Pipeline.created_at"`)}
	}
	return nil
}

func (_c *PipelineCreate) sqlSave(ctx context.Context) (*Pipeline, error) {
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
			return nil, fmt.Errorf("unexpected Pipeline.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineCreate) createSpec() (*Pipeline, *sqlgraph.CreateSpec) {
	var (
		_node = &Pipeline{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipeline.Table, sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(pipeline.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(pipeline.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(pipeline.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipeline.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.StagesTable,
			Columns: []string{pipeline.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinestage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Pipeline.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineCreate) OnConflict(opts ...sql.ConflictOption) *PipelineUpsertOne {
	_c.conflict = opts
	return &PipelineUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Pipeline.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineCreate) OnConflictColumns(columns ...string) *PipelineUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineUpsertOne{
		create: _c,
	}
}

type (
	// PipelineUpsertOne is the builder for "upsert"-ing
	//  one Pipeline node.
	PipelineUpsertOne struct {
		create *PipelineCreate
	}

	// PipelineUpsert is the "OnConflict" setter.
	PipelineUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *PipelineUpsert) SetName(v string) *PipelineUpsert {
	u.Set(pipeline.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PipelineUpsert) UpdateName() *PipelineUpsert {
	u.SetExcluded(pipeline.FieldName)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *PipelineUpsert) SetIsActive(v bool) *PipelineUpsert {
	u.Set(pipeline.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PipelineUpsert) UpdateIsActive() *PipelineUpsert {
	u.SetExcluded(pipeline.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Pipeline.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipeline.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineUpsertOne) UpdateNewValues() *PipelineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pipeline.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(pipeline.FieldTenantID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pipeline.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Pipeline.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PipelineUpsertOne) Ignore() *PipelineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineUpsertOne) DoNothing() *PipelineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineCreate.OnConflict
// documentation for more info.
func (u *PipelineUpsertOne) Update(set func(*PipelineUpsert)) *PipelineUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PipelineUpsertOne) SetName(v string) *PipelineUpsertOne {
	return u.Update(func(s *PipelineUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PipelineUpsertOne) UpdateName() *PipelineUpsertOne {
	return u.Update(func(s *PipelineUpsert) {
		s.UpdateName()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PipelineUpsertOne) SetIsActive(v bool) *PipelineUpsertOne {
	return u.Update(func(s *PipelineUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PipelineUpsertOne) UpdateIsActive() *PipelineUpsertOne {
	return u.Update(func(s *PipelineUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *PipelineUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PipelineUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PipelineUpsertOne.ID is not supported by MySQL driver. Use PipelineUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PipelineUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PipelineCreateBulk is the builder for creating many Pipeline entities in bulk.
type PipelineCreateBulk struct {
	config
	err      error
	builders []*PipelineCreate
	conflict []sql.ConflictOption
}

// Save creates the Pipeline entities in the database.
func (_c *PipelineCreateBulk) Save(ctx context.Context) ([]*Pipeline, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Pipeline, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineMutation)
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
func (_c *PipelineCreateBulk) SaveX(ctx context.Context) []*Pipeline {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Pipeline.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineCreateBulk) OnConflict(opts ...sql.ConflictOption) *PipelineUpsertBulk {
	_c.conflict = opts
	return &PipelineUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Pipeline.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineCreateBulk) OnConflictColumns(columns ...string) *PipelineUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineUpsertBulk{
		create: _c,
	}
}

// PipelineUpsertBulk is the builder for "upsert"-ing
// a bulk of Pipeline nodes.
type PipelineUpsertBulk struct {
	create *PipelineCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Pipeline.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipeline.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineUpsertBulk) UpdateNewValues() *PipelineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pipeline.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(pipeline.FieldTenantID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pipeline.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Pipeline.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PipelineUpsertBulk) Ignore() *PipelineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineUpsertBulk) DoNothing() *PipelineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineCreateBulk.OnConflict
// documentation for more info.
func (u *PipelineUpsertBulk) Update(set func(*PipelineUpsert)) *PipelineUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PipelineUpsertBulk) SetName(v string) *PipelineUpsertBulk {
	return u.Update(func(s *PipelineUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PipelineUpsertBulk) UpdateName() *PipelineUpsertBulk {
	return u.Update(func(s *PipelineUpsert) {
		s.UpdateName()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PipelineUpsertBulk) SetIsActive(v bool) *PipelineUpsertBulk {
	return u.Update(func(s *PipelineUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PipelineUpsertBulk) UpdateIsActive() *PipelineUpsertBulk {
	return u.Update(func(s *PipelineUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *PipelineUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PipelineCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
