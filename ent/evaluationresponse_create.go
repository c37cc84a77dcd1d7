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
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationresponse"
)

// EvaluationResponseCreate is the builder for creating a EvaluationResponse entity.
type EvaluationResponseCreate struct {
	config
	mutation *EvaluationResponseMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEvaluationID sets the "evaluation_id" field.
func (_c *EvaluationResponseCreate) SetEvaluationID(v string) *EvaluationResponseCreate {
	_c.mutation.SetEvaluationID(v)
	return _c
}

// SetParticipantID sets the "participant_id" field.
func (_c *EvaluationResponseCreate) SetParticipantID(v string) *EvaluationResponseCreate {
	_c.mutation.SetParticipantID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *EvaluationResponseCreate) SetUserID(v string) *EvaluationResponseCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetResponseData sets the "response_data" field.
func (_c *EvaluationResponseCreate) SetResponseData(v map[string]interface{}) *EvaluationResponseCreate {
	_c.mutation.SetResponseData(v)
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *EvaluationResponseCreate) SetSubmittedAt(v time.Time) *EvaluationResponseCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *EvaluationResponseCreate) SetNillableSubmittedAt(v *time.Time) *EvaluationResponseCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvaluationResponseCreate) SetID(v string) *EvaluationResponseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEvaluation sets the "evaluation" edge to the EvaluationInstance entity.
func (_c *EvaluationResponseCreate) SetEvaluation(v *EvaluationInstance) *EvaluationResponseCreate {
	return _c.SetEvaluationID(v.ID)
}

// Mutation returns the EvaluationResponseMutation object of the builder.
func (_c *EvaluationResponseCreate) Mutation() *EvaluationResponseMutation {
	return _c.mutation
}

// Save creates the EvaluationResponse in the database.
func (_c *EvaluationResponseCreate) Save(ctx context.Context) (*EvaluationResponse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationResponseCreate) SaveX(ctx context.Context) *EvaluationResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationResponseCreate) defaults() {
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		v := evaluationresponse.DefaultSubmittedAt()
		_c.mutation.SetSubmittedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationResponseCreate) check() error {
	if _, ok := _c.mutation.EvaluationID(); !ok {
		return &ValidationError{Name: "evaluation_id", err: errors.New(`ent: missing required field "EvaluationResponse.evaluation_id"`)}
	}
	if _, ok := _c.mutation.ParticipantID(); !ok {
		return &ValidationError{Name: "participant_id", err: errors.New(`ent: missing required field "EvaluationResponse.participant_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "EvaluationResponse.user_id"`)}
	}
	if _, ok := _c.mutation.ResponseData(); !ok {
		return &ValidationError{Name: "response_data", err: errors.New(`ent: missing required field "EvaluationResponse.response_data"`)}
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		return &ValidationError{Name: "submitted_at", err: errors.New(`ent: missing required field "EvaluationResponse.submitted_at"`)}
	}
	if len(_c.mutation.EvaluationIDs()) == 0 {
		return &ValidationError{Name: "evaluation", err: errors.New(`ent: missing required edge "EvaluationResponse.evaluation"`)}
	}
	return nil
}

func (_c *EvaluationResponseCreate) sqlSave(ctx context.Context) (*EvaluationResponse, error) {
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
			return nil, fmt.Errorf("unexpected EvaluationResponse.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationResponseCreate) createSpec() (*EvaluationResponse, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationResponse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationresponse.Table, sqlgraph.NewFieldSpec(evaluationresponse.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParticipantID(); ok {
		_spec.SetField(evaluationresponse.FieldParticipantID, field.TypeString, value)
		_node.ParticipantID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(evaluationresponse.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ResponseData(); ok {
		_spec.SetField(evaluationresponse.FieldResponseData, field.TypeJSON, value)
		_node.ResponseData = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(evaluationresponse.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = value
	}
	if nodes := _c.mutation.EvaluationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluationresponse.EvaluationTable,
			Columns: []string{evaluationresponse.EvaluationColumn},
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
//	client.EvaluationResponse.Create().
//		SetEvaluationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluationResponseUpsert) {
//			SetEvaluationID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluationResponseCreate) OnConflict(opts ...sql.ConflictOption) *EvaluationResponseUpsertOne {
	_c.conflict = opts
	return &EvaluationResponseUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvaluationResponse.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluationResponseCreate) OnConflictColumns(columns ...string) *EvaluationResponseUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluationResponseUpsertOne{
		create: _c,
	}
}

type (
	// EvaluationResponseUpsertOne is the builder for "upsert"-ing
	//  one EvaluationResponse node.
	EvaluationResponseUpsertOne struct {
		create *EvaluationResponseCreate
	}

	// EvaluationResponseUpsert is the "OnConflict" setter.
	EvaluationResponseUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EvaluationResponse.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evaluationresponse.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvaluationResponseUpsertOne) UpdateNewValues() *EvaluationResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(evaluationresponse.FieldID)
		}
		if _, exists := u.create.mutation.EvaluationID(); exists {
			s.SetIgnore(evaluationresponse.FieldEvaluationID)
		}
		if _, exists := u.create.mutation.ParticipantID(); exists {
			s.SetIgnore(evaluationresponse.FieldParticipantID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(evaluationresponse.FieldUserID)
		}
		if _, exists := u.create.mutation.ResponseData(); exists {
			s.SetIgnore(evaluationresponse.FieldResponseData)
		}
		if _, exists := u.create.mutation.SubmittedAt(); exists {
			s.SetIgnore(evaluationresponse.FieldSubmittedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvaluationResponse.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EvaluationResponseUpsertOne) Ignore() *EvaluationResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluationResponseUpsertOne) DoNothing() *EvaluationResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluationResponseCreate.OnConflict
// documentation for more info.
func (u *EvaluationResponseUpsertOne) Update(set func(*EvaluationResponseUpsert)) *EvaluationResponseUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluationResponseUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *EvaluationResponseUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluationResponseCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluationResponseUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EvaluationResponseUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EvaluationResponseUpsertOne.ID is not supported by MySQL driver. Use EvaluationResponseUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EvaluationResponseUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EvaluationResponseCreateBulk is the builder for creating many EvaluationResponse entities in bulk.
type EvaluationResponseCreateBulk struct {
	config
	err      error
	builders []*EvaluationResponseCreate
	conflict []sql.ConflictOption
}

// Save creates the EvaluationResponse entities in the database.
func (_c *EvaluationResponseCreateBulk) Save(ctx context.Context) ([]*EvaluationResponse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationResponse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationResponseMutation)
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
func (_c *EvaluationResponseCreateBulk) SaveX(ctx context.Context) []*EvaluationResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvaluationResponse.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluationResponseUpsert) {
//			SetEvaluationID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluationResponseCreateBulk) OnConflict(opts ...sql.ConflictOption) *EvaluationResponseUpsertBulk {
	_c.conflict = opts
	return &EvaluationResponseUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvaluationResponse.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluationResponseCreateBulk) OnConflictColumns(columns ...string) *EvaluationResponseUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluationResponseUpsertBulk{
		create: _c,
	}
}

// EvaluationResponseUpsertBulk is the builder for "upsert"-ing
// a bulk of EvaluationResponse nodes.
type EvaluationResponseUpsertBulk struct {
	create *EvaluationResponseCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EvaluationResponse.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evaluationresponse.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvaluationResponseUpsertBulk) UpdateNewValues() *EvaluationResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(evaluationresponse.FieldID)
			}
			if _, exists := b.mutation.EvaluationID(); exists {
				s.SetIgnore(evaluationresponse.FieldEvaluationID)
			}
			if _, exists := b.mutation.ParticipantID(); exists {
				s.SetIgnore(evaluationresponse.FieldParticipantID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(evaluationresponse.FieldUserID)
			}
			if _, exists := b.mutation.ResponseData(); exists {
				s.SetIgnore(evaluationresponse.FieldResponseData)
			}
			if _, exists := b.mutation.SubmittedAt(); exists {
				s.SetIgnore(evaluationresponse.FieldSubmittedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvaluationResponse.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EvaluationResponseUpsertBulk) Ignore() *EvaluationResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluationResponseUpsertBulk) DoNothing() *EvaluationResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluationResponseCreateBulk.OnConflict
// documentation for more info.
func (u *EvaluationResponseUpsertBulk) Update(set func(*EvaluationResponseUpsert)) *EvaluationResponseUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluationResponseUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *EvaluationResponseUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EvaluationResponseCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluationResponseCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluationResponseUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
