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
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// PipelineStageCreate is the builder for creating a PipelineStage entity.
type PipelineStageCreate struct {
	config
	mutation *PipelineStageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPipelineID sets the "pipeline_id" field.
func (_c *PipelineStageCreate) SetPipelineID(v string) *PipelineStageCreate {
	_c.mutation.SetPipelineID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PipelineStageCreate) SetName(v string) *PipelineStageCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStageType sets the "stage_type" field.
func (_c *PipelineStageCreate) SetStageType(v models.StageType) *PipelineStageCreate {
	_c.mutation.SetStageType(v)
	return _c
}

// SetNillableStageType sets the "stage_type" field if the given value is not nil.
func (_c *PipelineStageCreate) SetNillableStageType(v *models.StageType) *PipelineStageCreate {
	if v != nil {
		_c.SetStageType(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *PipelineStageCreate) SetOrderIndex(v int) *PipelineStageCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetConductedBy sets the "conducted_by" field.
func (_c *PipelineStageCreate) SetConductedBy(v string) *PipelineStageCreate {
	_c.mutation.SetConductedBy(v)
	return _c
}

// SetNillableConductedBy sets the "conducted_by" field if the given value is not nil.
func (_c *PipelineStageCreate) SetNillableConductedBy(v *string) *PipelineStageCreate {
	if v != nil {
		_c.SetConductedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineStageCreate) SetCreatedAt(v time.Time) *PipelineStageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineStageCreate) SetNillableCreatedAt(v *time.Time) *PipelineStageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineStageCreate) SetID(v string) *PipelineStageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPipeline sets the "pipeline" edge to the Pipeline entity.
func (_c *PipelineStageCreate) SetPipeline(v *Pipeline) *PipelineStageCreate {
	return _c.SetPipelineID(v.ID)
}

// Mutation returns the PipelineStageMutation object of the builder.
func (_c *PipelineStageCreate) Mutation() *PipelineStageMutation {
	return _c.mutation
}

// Save creates the PipelineStage in the database.
func (_c *PipelineStageCreate) Save(ctx context.Context) (*PipelineStage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineStageCreate) SaveX(ctx context.Context) *PipelineStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineStageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineStageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineStageCreate) defaults() {
	if _, ok := _c.mutation.StageType(); !ok {
		v := pipelinestage.DefaultStageType
		_c.mutation.SetStageType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipelinestage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineStageCreate) check() error {
	if _, ok := _c.mutation.PipelineID(); !ok {
		return &ValidationError{Name: "pipeline_id", err: errors.New(`ent: missing required field "PipelineStage.pipeline_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PipelineStage.name"`)}
	}
	if _, ok := _c.mutation.StageType(); !ok {
		return &ValidationError{Name: "stage_type", err: errors.New(`ent: missing required field "PipelineStage.stage_type"`)}
	}
	if v, ok := _c.mutation.StageType(); ok {
		if err := pipelinestage.StageTypeValidator(v); err != nil {
			return &ValidationError{Name: "stage_type", err: fmt.Errorf(`ent: validator failed for field "PipelineStage.stage_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "PipelineStage.order_index"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PipelineStage.created_at"`)}
	}
	if len(_c.mutation.PipelineIDs()) == 0 {
		return &ValidationError{Name: "pipeline", err: errors.New(`ent: missing required edge "PipelineStage.pipeline"`)}
	}
	return nil
}

func (_c *PipelineStageCreate) sqlSave(ctx context.Context) (*PipelineStage, error) {
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
			return nil, fmt.Errorf("unexpected PipelineStage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineStageCreate) createSpec() (*PipelineStage, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineStage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinestage.Table, sqlgraph.NewFieldSpec(pipelinestage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(pipelinestage.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.StageType(); ok {
		_spec.SetField(pipelinestage.FieldStageType, field.TypeEnum, value)
		_node.StageType = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(pipelinestage.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.ConductedBy(); ok {
		_spec.SetField(pipelinestage.FieldConductedBy, field.TypeString, value)
		_node.ConductedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipelinestage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PipelineIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinestage.PipelineTable,
			Columns: []string{pipelinestage.PipelineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PipelineID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineStage.Create().
//		SetPipelineID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineStageUpsert) {
//			SetPipelineID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineStageCreate) OnConflict(opts ...sql.ConflictOption) *PipelineStageUpsertOne {
	_c.conflict = opts
	return &PipelineStageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineStage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineStageCreate) OnConflictColumns(columns ...string) *PipelineStageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineStageUpsertOne{
		create: _c,
	}
}

type (
	// PipelineStageUpsertOne is the builder for "upsert"-ing
	//  one PipelineStage node.
	PipelineStageUpsertOne struct {
		create *PipelineStageCreate
	}

	// PipelineStageUpsert is the "OnConflict" setter.
	PipelineStageUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *PipelineStageUpsert) SetName(v string) *PipelineStageUpsert {
	u.Set(pipelinestage.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PipelineStageUpsert) UpdateName() *PipelineStageUpsert {
	u.SetExcluded(pipelinestage.FieldName)
	return u
}

// SetStageType sets the "stage_type" field.
func (u *PipelineStageUpsert) SetStageType(v models.StageType) *PipelineStageUpsert {
	u.Set(pipelinestage.FieldStageType, v)
	return u
}

// UpdateStageType sets the "stage_type" field to the value that was provided on create.
func (u *PipelineStageUpsert) UpdateStageType() *PipelineStageUpsert {
	u.SetExcluded(pipelinestage.FieldStageType)
	return u
}

// SetOrderIndex sets the "order_index" field.
func (u *PipelineStageUpsert) SetOrderIndex(v int) *PipelineStageUpsert {
	u.Set(pipelinestage.FieldOrderIndex, v)
	return u
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *PipelineStageUpsert) UpdateOrderIndex() *PipelineStageUpsert {
	u.SetExcluded(pipelinestage.FieldOrderIndex)
	return u
}

// AddOrderIndex adds v to the "order_index" field.
func (u *PipelineStageUpsert) AddOrderIndex(v int) *PipelineStageUpsert {
	u.Add(pipelinestage.FieldOrderIndex, v)
	return u
}

// SetConductedBy sets the "conducted_by" field.
func (u *PipelineStageUpsert) SetConductedBy(v string) *PipelineStageUpsert {
	u.Set(pipelinestage.FieldConductedBy, v)
	return u
}

// UpdateConductedBy sets the "conducted_by" field to the value that was provided on create.
func (u *PipelineStageUpsert) UpdateConductedBy() *PipelineStageUpsert {
	u.SetExcluded(pipelinestage.FieldConductedBy)
	return u
}

// ClearConductedBy clears the value of the "conducted_by" field.
func (u *PipelineStageUpsert) ClearConductedBy() *PipelineStageUpsert {
	u.SetNull(pipelinestage.FieldConductedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PipelineStage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinestage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineStageUpsertOne) UpdateNewValues() *PipelineStageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pipelinestage.FieldID)
		}
		if _, exists := u.create.mutation.PipelineID(); exists {
			s.SetIgnore(pipelinestage.FieldPipelineID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(pipelinestage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineStage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PipelineStageUpsertOne) Ignore() *PipelineStageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineStageUpsertOne) DoNothing() *PipelineStageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineStageCreate.OnConflict
// documentation for more info.
func (u *PipelineStageUpsertOne) Update(set func(*PipelineStageUpsert)) *PipelineStageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineStageUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PipelineStageUpsertOne) SetName(v string) *PipelineStageUpsertOne {
	return u.Update(func(s *PipelineStageUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PipelineStageUpsertOne) UpdateName() *PipelineStageUpsertOne {
	return u.Update(func(s *PipelineStageUpsert) {
		s.UpdateName()
	})
}

// SetStageType sets the "stage_type" field.
func (u *PipelineStageUpsertOne) SetStageType(v models.StageType) *PipelineStageUpsertOne {
	return u.Update(func(s *PipelineStageUpsert) {
		s.SetStageType(v)
	})
}

// UpdateStageType sets the "stage_type" field to the value that was provided on create.
func (u *PipelineStageUpsertOne) UpdateStageType() *PipelineStageUpsertOne {
	return u.Update(func(s *PipelineStageUpsert) {
		s.UpdateStageType()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *PipelineStageUpsertOne) SetOrderIndex(v int) *PipelineStageUpsertOne {
	return u.Update(func(s *PipelineStageUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *PipelineStageUpsertOne) AddOrderIndex(v int) *PipelineStageUpsertOne {
	return u.Update(func(s *PipelineStageUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *PipelineStageUpsertOne) UpdateOrderIndex() *PipelineStageUpsertOne {
	return u.Update(func(s *PipelineStageUpsert) {
		s.UpdateOrderIndex()
	})
}

// SetConductedBy sets the "conducted_by" field.
func (u *PipelineStageUpsertOne) SetConductedBy(v string) *PipelineStageUpsertOne {
	return u.Update(func(s *PipelineStageUpsert) {
		s.SetConductedBy(v)
	})
}

// UpdateConductedBy sets the "conducted_by" field to the value that was provided on create.
func (u *PipelineStageUpsertOne) UpdateConductedBy() *PipelineStageUpsertOne {
	return u.Update(func(s *PipelineStageUpsert) {
		s.UpdateConductedBy()
	})
}

// ClearConductedBy clears the value of the "conducted_by" field.
func (u *PipelineStageUpsertOne) ClearConductedBy() *PipelineStageUpsertOne {
	return u.Update(func(s *PipelineStageUpsert) {
		s.ClearConductedBy()
	})
}

// Exec executes the query.
func (u *PipelineStageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineStageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineStageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PipelineStageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PipelineStageUpsertOne.ID is not supported by MySQL driver. Use PipelineStageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PipelineStageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PipelineStageCreateBulk is the builder for creating many PipelineStage entities in bulk.
type PipelineStageCreateBulk struct {
	config
	err      error
	builders []*PipelineStageCreate
	conflict []sql.ConflictOption
}

// Save creates the PipelineStage entities in the database.
func (_c *PipelineStageCreateBulk) Save(ctx context.Context) ([]*PipelineStage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineStage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineStageMutation)
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
func (_c *PipelineStageCreateBulk) SaveX(ctx context.Context) []*PipelineStage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineStageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineStageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineStage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineStageUpsert) {
//			SetPipelineID(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineStageCreateBulk) OnConflict(opts ...sql.ConflictOption) *PipelineStageUpsertBulk {
	_c.conflict = opts
	return &PipelineStageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineStage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineStageCreateBulk) OnConflictColumns(columns ...string) *PipelineStageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineStageUpsertBulk{
		create: _c,
	}
}

// PipelineStageUpsertBulk is the builder for "upsert"-ing
// a bulk of PipelineStage nodes.
type PipelineStageUpsertBulk struct {
	create *PipelineStageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PipelineStage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinestage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineStageUpsertBulk) UpdateNewValues() *PipelineStageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pipelinestage.FieldID)
			}
			if _, exists := b.mutation.PipelineID(); exists {
				s.SetIgnore(pipelinestage.FieldPipelineID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(pipelinestage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineStage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PipelineStageUpsertBulk) Ignore() *PipelineStageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineStageUpsertBulk) DoNothing() *PipelineStageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineStageCreateBulk.OnConflict
// documentation for more info.
func (u *PipelineStageUpsertBulk) Update(set func(*PipelineStageUpsert)) *PipelineStageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineStageUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PipelineStageUpsertBulk) SetName(v string) *PipelineStageUpsertBulk {
	return u.Update(func(s *PipelineStageUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PipelineStageUpsertBulk) UpdateName() *PipelineStageUpsertBulk {
	return u.Update(func(s *PipelineStageUpsert) {
		s.UpdateName()
	})
}

// SetStageType sets the "stage_type" field.
func (u *PipelineStageUpsertBulk) SetStageType(v models.StageType) *PipelineStageUpsertBulk {
	return u.Update(func(s *PipelineStageUpsert) {
		s.SetStageType(v)
	})
}

// UpdateStageType sets the "stage_type" field to the value that was provided on create.
func (u *PipelineStageUpsertBulk) UpdateStageType() *PipelineStageUpsertBulk {
	return u.Update(func(s *PipelineStageUpsert) {
		s.UpdateStageType()
	})
}

// SetOrderIndex sets the "order_index" field.
func (u *PipelineStageUpsertBulk) SetOrderIndex(v int) *PipelineStageUpsertBulk {
	return u.Update(func(s *PipelineStageUpsert) {
		s.SetOrderIndex(v)
	})
}

// AddOrderIndex adds v to the "order_index" field.
func (u *PipelineStageUpsertBulk) AddOrderIndex(v int) *PipelineStageUpsertBulk {
	return u.Update(func(s *PipelineStageUpsert) {
		s.AddOrderIndex(v)
	})
}

// UpdateOrderIndex sets the "order_index" field to the value that was provided on create.
func (u *PipelineStageUpsertBulk) UpdateOrderIndex() *PipelineStageUpsertBulk {
	return u.Update(func(s *PipelineStageUpsert) {
		s.UpdateOrderIndex()
	})
}

// SetConductedBy sets the "conducted_by" field.
func (u *PipelineStageUpsertBulk) SetConductedBy(v string) *PipelineStageUpsertBulk {
	return u.Update(func(s *PipelineStageUpsert) {
		s.SetConductedBy(v)
	})
}

// UpdateConductedBy sets the "conducted_by" field to the value that was provided on create.
func (u *PipelineStageUpsertBulk) UpdateConductedBy() *PipelineStageUpsertBulk {
	return u.Update(func(s *PipelineStageUpsert) {
		s.UpdateConductedBy()
	})
}

// ClearConductedBy clears the value of the "conducted_by" field.
func (u *PipelineStageUpsertBulk) ClearConductedBy() *PipelineStageUpsertBulk {
	return u.Update(func(s *PipelineStageUpsert) {
		s.ClearConductedBy()
	})
}

// Exec executes the query.
func (u *PipelineStageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PipelineStageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineStageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineStageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
