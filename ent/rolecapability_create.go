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
	"github.com/ameyzing09/rtr-api-sub000/ent/rolecapability"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// RoleCapabilityCreate is the builder for creating a RoleCapability entity.
type RoleCapabilityCreate struct {
	config
	mutation *RoleCapabilityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *RoleCapabilityCreate) SetTenantID(v string) *RoleCapabilityCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *RoleCapabilityCreate) SetRole(v models.Role) *RoleCapabilityCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetCapability sets the "capability" field.
func (_c *RoleCapabilityCreate) SetCapability(v string) *RoleCapabilityCreate {
	_c.mutation.SetCapability(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoleCapabilityCreate) SetCreatedAt(v time.Time) *RoleCapabilityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoleCapabilityCreate) SetNillableCreatedAt(v *time.Time) *RoleCapabilityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoleCapabilityCreate) SetID(v string) *RoleCapabilityCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RoleCapabilityMutation object of the builder.
func (_c *RoleCapabilityCreate) Mutation() *RoleCapabilityMutation {
	return _c.mutation
}

// Save creates the RoleCapability in the database.
func (_c *RoleCapabilityCreate) Save(ctx context.Context) (*RoleCapability, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoleCapabilityCreate) SaveX(ctx context.Context) *RoleCapability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoleCapabilityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoleCapabilityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoleCapabilityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rolecapability.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoleCapabilityCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "RoleCapability.tenant_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "RoleCapability.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := rolecapability.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "RoleCapability.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Capability(); !ok {
		return &ValidationError{Name: "capability", err: errors.New(`ent: missing required field "RoleCapability.capability"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RoleCapability.created_at"`)}
	}
	return nil
}

func (_c *RoleCapabilityCreate) sqlSave(ctx context.Context) (*RoleCapability, error) {
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
			return nil, fmt.Errorf("unexpected RoleCapability.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoleCapabilityCreate) createSpec() (*RoleCapability, *sqlgraph.CreateSpec) {
	var (
		_node = &RoleCapability{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rolecapability.Table, sqlgraph.NewFieldSpec(rolecapability.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(rolecapability.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(rolecapability.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Capability(); ok {
		_spec.SetField(rolecapability.FieldCapability, field.TypeString, value)
		_node.Capability = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rolecapability.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RoleCapability.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoleCapabilityUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *RoleCapabilityCreate) OnConflict(opts ...sql.ConflictOption) *RoleCapabilityUpsertOne {
	_c.conflict = opts
	return &RoleCapabilityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RoleCapability.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoleCapabilityCreate) OnConflictColumns(columns ...string) *RoleCapabilityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoleCapabilityUpsertOne{
		create: _c,
	}
}

type (
	// RoleCapabilityUpsertOne is the builder for "upsert"-ing
	//  one RoleCapability node.
	RoleCapabilityUpsertOne struct {
		create *RoleCapabilityCreate
	}

	// RoleCapabilityUpsert is the "OnConflict" setter.
	RoleCapabilityUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RoleCapability.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rolecapability.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoleCapabilityUpsertOne) UpdateNewValues() *RoleCapabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(rolecapability.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(rolecapability.FieldTenantID)
		}
		if _, exists := u.create.mutation.Role(); exists {
			s.SetIgnore(rolecapability.FieldRole)
		}
		if _, exists := u.create.mutation.Capability(); exists {
			s.SetIgnore(rolecapability.FieldCapability)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(rolecapability.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RoleCapability.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RoleCapabilityUpsertOne) Ignore() *RoleCapabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoleCapabilityUpsertOne) DoNothing() *RoleCapabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoleCapabilityCreate.OnConflict
// documentation for more info.
func (u *RoleCapabilityUpsertOne) Update(set func(*RoleCapabilityUpsert)) *RoleCapabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoleCapabilityUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *RoleCapabilityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoleCapabilityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoleCapabilityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RoleCapabilityUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RoleCapabilityUpsertOne.ID is not supported by MySQL driver. Use RoleCapabilityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RoleCapabilityUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RoleCapabilityCreateBulk is the builder for creating many RoleCapability entities in bulk.
type RoleCapabilityCreateBulk struct {
	config
	err      error
	builders []*RoleCapabilityCreate
	conflict []sql.ConflictOption
}

// Save creates the RoleCapability entities in the database.
func (_c *RoleCapabilityCreateBulk) Save(ctx context.Context) ([]*RoleCapability, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoleCapability, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoleCapabilityMutation)
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
func (_c *RoleCapabilityCreateBulk) SaveX(ctx context.Context) []*RoleCapability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoleCapabilityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoleCapabilityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RoleCapability.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoleCapabilityUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *RoleCapabilityCreateBulk) OnConflict(opts ...sql.ConflictOption) *RoleCapabilityUpsertBulk {
	_c.conflict = opts
	return &RoleCapabilityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RoleCapability.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoleCapabilityCreateBulk) OnConflictColumns(columns ...string) *RoleCapabilityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoleCapabilityUpsertBulk{
		create: _c,
	}
}

// RoleCapabilityUpsertBulk is the builder for "upsert"-ing
// a bulk of RoleCapability nodes.
type RoleCapabilityUpsertBulk struct {
	create *RoleCapabilityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RoleCapability.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rolecapability.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoleCapabilityUpsertBulk) UpdateNewValues() *RoleCapabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(rolecapability.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(rolecapability.FieldTenantID)
			}
			if _, exists := b.mutation.Role(); exists {
				s.SetIgnore(rolecapability.FieldRole)
			}
			if _, exists := b.mutation.Capability(); exists {
				s.SetIgnore(rolecapability.FieldCapability)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(rolecapability.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RoleCapability.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RoleCapabilityUpsertBulk) Ignore() *RoleCapabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoleCapabilityUpsertBulk) DoNothing() *RoleCapabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoleCapabilityCreateBulk.OnConflict
// documentation for more info.
func (u *RoleCapabilityUpsertBulk) Update(set func(*RoleCapabilityUpsert)) *RoleCapabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoleCapabilityUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *RoleCapabilityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RoleCapabilityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoleCapabilityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoleCapabilityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
