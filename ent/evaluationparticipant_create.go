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
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationinstance"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationparticipant"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// EvaluationParticipantCreate is the builder for creating a EvaluationParticipant entity.
type EvaluationParticipantCreate struct {
	config
	mutation *EvaluationParticipantMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEvaluationID sets the "evaluation_id" field.
func (_c *EvaluationParticipantCreate) SetEvaluationID(v string) *EvaluationParticipantCreate {
	_c.mutation.SetEvaluationID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *EvaluationParticipantCreate) SetUserID(v string) *EvaluationParticipantCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *EvaluationParticipantCreate) SetStatus(v models.ParticipantStatus) *EvaluationParticipantCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EvaluationParticipantCreate) SetNillableStatus(v *models.ParticipantStatus) *EvaluationParticipantCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *EvaluationParticipantCreate) SetSequence(v int) *EvaluationParticipantCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_c *EvaluationParticipantCreate) SetNillableSequence(v *int) *EvaluationParticipantCreate {
	if v != nil {
		_c.SetSequence(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvaluationParticipantCreate) SetCreatedAt(v time.Time) *EvaluationParticipantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvaluationParticipantCreate) SetNillableCreatedAt(v *time.Time) *EvaluationParticipantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EvaluationParticipantCreate) SetUpdatedAt(v time.Time) *EvaluationParticipantCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EvaluationParticipantCreate) SetNillableUpdatedAt(v *time.Time) *EvaluationParticipantCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvaluationParticipantCreate) SetID(v string) *EvaluationParticipantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEvaluation sets the "evaluation" edge to the EvaluationInstance entity.
func (_c *EvaluationParticipantCreate) SetEvaluation(v *EvaluationInstance) *EvaluationParticipantCreate {
	return _c.SetEvaluationID(v.ID)
}

// Mutation returns the EvaluationParticipantMutation object of the builder.
func (_c *EvaluationParticipantCreate) Mutation() *EvaluationParticipantMutation {
	return _c.mutation
}

// Save creates the EvaluationParticipant in the database.
func (_c *EvaluationParticipantCreate) Save(ctx context.Context) (*EvaluationParticipant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationParticipantCreate) SaveX(ctx context.Context) *EvaluationParticipant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationParticipantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationParticipantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationParticipantCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := evaluationparticipant.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		v := evaluationparticipant.DefaultSequence
		_c.mutation.SetSequence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evaluationparticipant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := evaluationparticipant.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationParticipantCreate) check() error {
	if _, ok := _c.mutation.EvaluationID(); !ok {
		return &ValidationError{Name: "evaluation_id", err: errors.New(`ent: missing required field "EvaluationParticipant.evaluation_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "EvaluationParticipant.user_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EvaluationParticipant.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := evaluationparticipant.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EvaluationParticipant.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "EvaluationParticipant.sequence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvaluationParticipant.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EvaluationParticipant.updated_at"`)}
	}
	if len(_c.mutation.EvaluationIDs()) == 0 {
		return &ValidationError{Name: "evaluation", err: errors.New(`ent: missing required edge "EvaluationParticipant.evaluation"`)}
	}
	return nil
}

func (_c *EvaluationParticipantCreate) sqlSave(ctx context.Context) (*EvaluationParticipant, error) {
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
			return nil, fmt.Errorf("unexpected EvaluationParticipant.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationParticipantCreate) createSpec() (*EvaluationParticipant, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationParticipant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationparticipant.Table, sqlgraph.NewFieldSpec(evaluationparticipant.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(evaluationparticipant.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(evaluationparticipant.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(evaluationparticipant.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evaluationparticipant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(evaluationparticipant.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EvaluationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluationparticipant.EvaluationTable,
			Columns: []string{evaluationparticipant.EvaluationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationinstance.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EvaluationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvaluationParticipant.Create().
//		SetEvaluationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluationParticipantUpsert) {
//			SetEvaluationID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluationParticipantCreate) OnConflict(opts ...sql.ConflictOption) *EvaluationParticipantUpsertOne {
	_c.conflict = opts
	return &EvaluationParticipantUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvaluationParticipant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluationParticipantCreate) OnConflictColumns(columns ...string) *EvaluationParticipantUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluationParticipantUpsertOne{
		create: _c,
	}
}

type (
	// EvaluationParticipantUpsertOne is the builder for "upsert"-ing
	//  one EvaluationParticipant node.
	EvaluationParticipantUpsertOne struct {
		create *EvaluationParticipantCreate
	}

	// EvaluationParticipantUpsert is the "OnConflict" setter.
	EvaluationParticipantUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *EvaluationParticipantUpsert) SetStatus(v models.ParticipantStatus) *EvaluationParticipantUpsert {
	u.Set(evaluationparticipant.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EvaluationParticipantUpsert) UpdateStatus() *EvaluationParticipantUpsert {
	u.SetExcluded(evaluationparticipant.FieldStatus)
	return u
}

// SetSequence sets the "sequence" field.
func (u *EvaluationParticipantUpsert) SetSequence(v int) *EvaluationParticipantUpsert {
	u.Set(evaluationparticipant.FieldSequence, v)
	return u
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *EvaluationParticipantUpsert) UpdateSequence() *EvaluationParticipantUpsert {
	u.SetExcluded(evaluationparticipant.FieldSequence)
	return u
}

// AddSequence adds v to the "sequence" field.
func (u *EvaluationParticipantUpsert) AddSequence(v int) *EvaluationParticipantUpsert {
	u.Add(evaluationparticipant.FieldSequence, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EvaluationParticipantUpsert) SetUpdatedAt(v time.Time) *EvaluationParticipantUpsert {
	u.Set(evaluationparticipant.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EvaluationParticipantUpsert) UpdateUpdatedAt() *EvaluationParticipantUpsert {
	u.SetExcluded(evaluationparticipant.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EvaluationParticipant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evaluationparticipant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvaluationParticipantUpsertOne) UpdateNewValues() *EvaluationParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(evaluationparticipant.FieldID)
		}
		if _, exists := u.create.mutation.EvaluationID(); exists {
			s.SetIgnore(evaluationparticipant.FieldEvaluationID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(evaluationparticipant.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(evaluationparticipant.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvaluationParticipant.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EvaluationParticipantUpsertOne) Ignore() *EvaluationParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluationParticipantUpsertOne) DoNothing() *EvaluationParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluationParticipantCreate.OnConflict
// documentation for more info.
func (u *EvaluationParticipantUpsertOne) Update(set func(*EvaluationParticipantUpsert)) *EvaluationParticipantUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluationParticipantUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *EvaluationParticipantUpsertOne) SetStatus(v models.ParticipantStatus) *EvaluationParticipantUpsertOne {
	return u.Update(func(s *EvaluationParticipantUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EvaluationParticipantUpsertOne) UpdateStatus() *EvaluationParticipantUpsertOne {
	return u.Update(func(s *EvaluationParticipantUpsert) {
		s.UpdateStatus()
	})
}

// SetSequence sets the "sequence" field.
func (u *EvaluationParticipantUpsertOne) SetSequence(v int) *EvaluationParticipantUpsertOne {
	return u.Update(func(s *EvaluationParticipantUpsert) {
		s.SetSequence(v)
	})
}

// AddSequence adds v to the "sequence" field.
func (u *EvaluationParticipantUpsertOne) AddSequence(v int) *EvaluationParticipantUpsertOne {
	return u.Update(func(s *EvaluationParticipantUpsert) {
		s.AddSequence(v)
	})
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *EvaluationParticipantUpsertOne) UpdateSequence() *EvaluationParticipantUpsertOne {
	return u.Update(func(s *EvaluationParticipantUpsert) {
		s.UpdateSequence()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EvaluationParticipantUpsertOne) SetUpdatedAt(v time.Time) *EvaluationParticipantUpsertOne {
	return u.Update(func(s *EvaluationParticipantUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EvaluationParticipantUpsertOne) UpdateUpdatedAt() *EvaluationParticipantUpsertOne {
	return u.Update(func(s *EvaluationParticipantUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EvaluationParticipantUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluationParticipantCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluationParticipantUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EvaluationParticipantUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EvaluationParticipantUpsertOne.ID is not supported by MySQL driver. Use EvaluationParticipantUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EvaluationParticipantUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EvaluationParticipantCreateBulk is the builder for creating many EvaluationParticipant entities in bulk.
type EvaluationParticipantCreateBulk struct {
	config
	err      error
	builders []*EvaluationParticipantCreate
	conflict []sql.ConflictOption
}

// Save creates the EvaluationParticipant entities in the database.
func (_c *EvaluationParticipantCreateBulk) Save(ctx context.Context) ([]*EvaluationParticipant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationParticipant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationParticipantMutation)
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
func (_c *EvaluationParticipantCreateBulk) SaveX(ctx context.Context) []*EvaluationParticipant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationParticipantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationParticipantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvaluationParticipant.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluationParticipantUpsert) {
//			SetEvaluationID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluationParticipantCreateBulk) OnConflict(opts ...sql.ConflictOption) *EvaluationParticipantUpsertBulk {
	_c.conflict = opts
	return &EvaluationParticipantUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvaluationParticipant.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluationParticipantCreateBulk) OnConflictColumns(columns ...string) *EvaluationParticipantUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluationParticipantUpsertBulk{
		create: _c,
	}
}

// EvaluationParticipantUpsertBulk is the builder for "upsert"-ing
// a bulk of EvaluationParticipant nodes.
type EvaluationParticipantUpsertBulk struct {
	create *EvaluationParticipantCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EvaluationParticipant.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evaluationparticipant.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvaluationParticipantUpsertBulk) UpdateNewValues() *EvaluationParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(evaluationparticipant.FieldID)
			}
			if _, exists := b.mutation.EvaluationID(); exists {
				s.SetIgnore(evaluationparticipant.FieldEvaluationID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(evaluationparticipant.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(evaluationparticipant.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvaluationParticipant.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EvaluationParticipantUpsertBulk) Ignore() *EvaluationParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluationParticipantUpsertBulk) DoNothing() *EvaluationParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluationParticipantCreateBulk.OnConflict
// documentation for more info.
func (u *EvaluationParticipantUpsertBulk) Update(set func(*EvaluationParticipantUpsert)) *EvaluationParticipantUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluationParticipantUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *EvaluationParticipantUpsertBulk) SetStatus(v models.ParticipantStatus) *EvaluationParticipantUpsertBulk {
	return u.Update(func(s *EvaluationParticipantUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EvaluationParticipantUpsertBulk) UpdateStatus() *EvaluationParticipantUpsertBulk {
	return u.Update(func(s *EvaluationParticipantUpsert) {
		s.UpdateStatus()
	})
}

// SetSequence sets the "sequence" field.
func (u *EvaluationParticipantUpsertBulk) SetSequence(v int) *EvaluationParticipantUpsertBulk {
	return u.Update(func(s *EvaluationParticipantUpsert) {
		s.SetSequence(v)
	})
}

// AddSequence adds v to the "sequence" field.
func (u *EvaluationParticipantUpsertBulk) AddSequence(v int) *EvaluationParticipantUpsertBulk {
	return u.Update(func(s *EvaluationParticipantUpsert) {
		s.AddSequence(v)
	})
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *EvaluationParticipantUpsertBulk) UpdateSequence() *EvaluationParticipantUpsertBulk {
	return u.Update(func(s *EvaluationParticipantUpsert) {
		s.UpdateSequence()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EvaluationParticipantUpsertBulk) SetUpdatedAt(v time.Time) *EvaluationParticipantUpsertBulk {
	return u.Update(func(s *EvaluationParticipantUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EvaluationParticipantUpsertBulk) UpdateUpdatedAt() *EvaluationParticipantUpsertBulk {
	return u.Update(func(s *EvaluationParticipantUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EvaluationParticipantUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EvaluationParticipantCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluationParticipantCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluationParticipantUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
