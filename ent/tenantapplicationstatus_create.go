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
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantapplicationstatus"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// TenantApplicationStatusCreate is the builder for creating a TenantApplicationStatus entity.
type TenantApplicationStatusCreate struct {
	config
	mutation *TenantApplicationStatusMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *TenantApplicationStatusCreate) SetTenantID(v string) *TenantApplicationStatusCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *TenantApplicationStatusCreate) SetStatusCode(v string) *TenantApplicationStatusCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *TenantApplicationStatusCreate) SetDisplayName(v string) *TenantApplicationStatusCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetOutcomeType sets the "outcome_type" field.
func (_c *TenantApplicationStatusCreate) SetOutcomeType(v models.OutcomeType) *TenantApplicationStatusCreate {
	_c.mutation.SetOutcomeType(v)
	return _c
}

// SetIsTerminal sets the "is_terminal" field.
func (_c *TenantApplicationStatusCreate) SetIsTerminal(v bool) *TenantApplicationStatusCreate {
	_c.mutation.SetIsTerminal(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *TenantApplicationStatusCreate) SetIsActive(v bool) *TenantApplicationStatusCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *TenantApplicationStatusCreate) SetNillableIsActive(v *bool) *TenantApplicationStatusCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *TenantApplicationStatusCreate) SetSortOrder(v int) *TenantApplicationStatusCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *TenantApplicationStatusCreate) SetNillableSortOrder(v *int) *TenantApplicationStatusCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetActionCode sets the "action_code" field.
func (_c *TenantApplicationStatusCreate) SetActionCode(v string) *TenantApplicationStatusCreate {
	_c.mutation.SetActionCode(v)
	return _c
}

// SetNillableActionCode sets the "action_code" field if the given value is not nil.
func (_c *TenantApplicationStatusCreate) SetNillableActionCode(v *string) *TenantApplicationStatusCreate {
	if v != nil {
		_c.SetActionCode(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TenantApplicationStatusCreate) SetCreatedAt(v time.Time) *TenantApplicationStatusCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TenantApplicationStatusCreate) SetNillableCreatedAt(v *time.Time) *TenantApplicationStatusCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TenantApplicationStatusCreate) SetUpdatedAt(v time.Time) *TenantApplicationStatusCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TenantApplicationStatusCreate) SetNillableUpdatedAt(v *time.Time) *TenantApplicationStatusCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TenantApplicationStatusCreate) SetID(v string) *TenantApplicationStatusCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TenantApplicationStatusMutation object of the builder.
func (_c *TenantApplicationStatusCreate) Mutation() *TenantApplicationStatusMutation {
	return _c.mutation
}

// Save creates the TenantApplicationStatus in the database.
func (_c *TenantApplicationStatusCreate) Save(ctx context.Context) (*TenantApplicationStatus, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TenantApplicationStatusCreate) SaveX(ctx context.Context) *TenantApplicationStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TenantApplicationStatusCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TenantApplicationStatusCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TenantApplicationStatusCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := tenantapplicationstatus.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := tenantapplicationstatus.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tenantapplicationstatus.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tenantapplicationstatus.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TenantApplicationStatusCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "TenantApplicationStatus.tenant_id"`)}
	}
	if _, ok := _c.mutation.StatusCode(); !ok {
		return &ValidationError{Name: "status_code", err: errors.New(`ent: missing required field "TenantApplicationStatus.status_code"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "TenantApplicationStatus.display_name"`)}
	}
	if _, ok := _c.mutation.OutcomeType(); !ok {
		return &ValidationError{Name: "outcome_type", err: errors.New(`ent: missing required field "TenantApplicationStatus.outcome_type"`)}
	}
	if v, ok := _c.mutation.OutcomeType(); ok {
		if err := tenantapplicationstatus.OutcomeTypeValidator(v); err != nil {
			return &ValidationError{Name: "outcome_type", err: fmt.Errorf(`ent: validator failed for field "TenantApplicationStatus.outcome_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsTerminal(); !ok {
		return &ValidationError{Name: "is_terminal", err: errors.New(`ent: missing required field "TenantApplicationStatus.is_terminal"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "TenantApplicationStatus.is_active"`)}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "TenantApplicationStatus.sort_order"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TenantApplicationStatus.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TenantApplicationStatus.updated_at"`)}
	}
	return nil
}

func (_c *TenantApplicationStatusCreate) sqlSave(ctx context.Context) (*TenantApplicationStatus, error) {
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
			return nil, fmt.Errorf("unexpected TenantApplicationStatus.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TenantApplicationStatusCreate) createSpec() (*TenantApplicationStatus, *sqlgraph.CreateSpec) {
	var (
		_node = &TenantApplicationStatus{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tenantapplicationstatus.Table, sqlgraph.NewFieldSpec(tenantapplicationstatus.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(tenantapplicationstatus.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(tenantapplicationstatus.FieldStatusCode, field.TypeString, value)
		_node.StatusCode = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(tenantapplicationstatus.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.OutcomeType(); ok {
		_spec.SetField(tenantapplicationstatus.FieldOutcomeType, field.TypeEnum, value)
		_node.OutcomeType = value
	}
	if value, ok := _c.mutation.IsTerminal(); ok {
		_spec.SetField(tenantapplicationstatus.FieldIsTerminal, field.TypeBool, value)
		_node.IsTerminal = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(tenantapplicationstatus.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(tenantapplicationstatus.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := _c.mutation.ActionCode(); ok {
		_spec.SetField(tenantapplicationstatus.FieldActionCode, field.TypeString, value)
		_node.ActionCode = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tenantapplicationstatus.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantapplicationstatus.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TenantApplicationStatus.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TenantApplicationStatusUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *TenantApplicationStatusCreate) OnConflict(opts ...sql.ConflictOption) *TenantApplicationStatusUpsertOne {
	_c.conflict = opts
	return &TenantApplicationStatusUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TenantApplicationStatus.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TenantApplicationStatusCreate) OnConflictColumns(columns ...string) *TenantApplicationStatusUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TenantApplicationStatusUpsertOne{
		create: _c,
	}
}

type (
	// TenantApplicationStatusUpsertOne is the builder for "upsert"-ing
	//  one TenantApplicationStatus node.
	TenantApplicationStatusUpsertOne struct {
		create *TenantApplicationStatusCreate
	}

	// TenantApplicationStatusUpsert is the "OnConflict" setter.
	TenantApplicationStatusUpsert struct {
		*sql.UpdateSet
	}
)

// SetDisplayName sets the "display_name" field.
func (u *TenantApplicationStatusUpsert) SetDisplayName(v string) *TenantApplicationStatusUpsert {
	u.Set(tenantapplicationstatus.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *TenantApplicationStatusUpsert) UpdateDisplayName() *TenantApplicationStatusUpsert {
	u.SetExcluded(tenantapplicationstatus.FieldDisplayName)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *TenantApplicationStatusUpsert) SetIsActive(v bool) *TenantApplicationStatusUpsert {
	u.Set(tenantapplicationstatus.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TenantApplicationStatusUpsert) UpdateIsActive() *TenantApplicationStatusUpsert {
	u.SetExcluded(tenantapplicationstatus.FieldIsActive)
	return u
}

// SetSortOrder sets the "sort_order" field.
func (u *TenantApplicationStatusUpsert) SetSortOrder(v int) *TenantApplicationStatusUpsert {
	u.Set(tenantapplicationstatus.FieldSortOrder, v)
	return u
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *TenantApplicationStatusUpsert) UpdateSortOrder() *TenantApplicationStatusUpsert {
	u.SetExcluded(tenantapplicationstatus.FieldSortOrder)
	return u
}

// AddSortOrder adds v to the "sort_order" field.
func (u *TenantApplicationStatusUpsert) AddSortOrder(v int) *TenantApplicationStatusUpsert {
	u.Add(tenantapplicationstatus.FieldSortOrder, v)
	return u
}

// SetActionCode sets the "action_code" field.
func (u *TenantApplicationStatusUpsert) SetActionCode(v string) *TenantApplicationStatusUpsert {
	u.Set(tenantapplicationstatus.FieldActionCode, v)
	return u
}

// UpdateActionCode sets the "action_code" field to the value that was provided on create.
func (u *TenantApplicationStatusUpsert) UpdateActionCode() *TenantApplicationStatusUpsert {
	u.SetExcluded(tenantapplicationstatus.FieldActionCode)
	return u
}

// ClearActionCode clears the value of the "action_code" field.
func (u *TenantApplicationStatusUpsert) ClearActionCode() *TenantApplicationStatusUpsert {
	u.SetNull(tenantapplicationstatus.FieldActionCode)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TenantApplicationStatusUpsert) SetUpdatedAt(v time.Time) *TenantApplicationStatusUpsert {
	u.Set(tenantapplicationstatus.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TenantApplicationStatusUpsert) UpdateUpdatedAt() *TenantApplicationStatusUpsert {
	u.SetExcluded(tenantapplicationstatus.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TenantApplicationStatus.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tenantapplicationstatus.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TenantApplicationStatusUpsertOne) UpdateNewValues() *TenantApplicationStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(tenantapplicationstatus.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(tenantapplicationstatus.FieldTenantID)
		}
		if _, exists := u.create.mutation.StatusCode(); exists {
			s.SetIgnore(tenantapplicationstatus.FieldStatusCode)
		}
		if _, exists := u.create.mutation.OutcomeType(); exists {
			s.SetIgnore(tenantapplicationstatus.FieldOutcomeType)
		}
		if _, exists := u.create.mutation.IsTerminal(); exists {
			s.SetIgnore(tenantapplicationstatus.FieldIsTerminal)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(tenantapplicationstatus.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TenantApplicationStatus.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TenantApplicationStatusUpsertOne) Ignore() *TenantApplicationStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TenantApplicationStatusUpsertOne) DoNothing() *TenantApplicationStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TenantApplicationStatusCreate.OnConflict
// documentation for more info.
func (u *TenantApplicationStatusUpsertOne) Update(set func(*TenantApplicationStatusUpsert)) *TenantApplicationStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TenantApplicationStatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *TenantApplicationStatusUpsertOne) SetDisplayName(v string) *TenantApplicationStatusUpsertOne {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *TenantApplicationStatusUpsertOne) UpdateDisplayName() *TenantApplicationStatusUpsertOne {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.UpdateDisplayName()
	})
}

// SetIsActive sets the "is_active" field.
func (u *TenantApplicationStatusUpsertOne) SetIsActive(v bool) *TenantApplicationStatusUpsertOne {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TenantApplicationStatusUpsertOne) UpdateIsActive() *TenantApplicationStatusUpsertOne {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.UpdateIsActive()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *TenantApplicationStatusUpsertOne) SetSortOrder(v int) *TenantApplicationStatusUpsertOne {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *TenantApplicationStatusUpsertOne) AddSortOrder(v int) *TenantApplicationStatusUpsertOne {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *TenantApplicationStatusUpsertOne) UpdateSortOrder() *TenantApplicationStatusUpsertOne {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.UpdateSortOrder()
	})
}

// SetActionCode sets the "action_code" field.
func (u *TenantApplicationStatusUpsertOne) SetActionCode(v string) *TenantApplicationStatusUpsertOne {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.SetActionCode(v)
	})
}

// UpdateActionCode sets the "action_code" field to the value that was provided on create.
func (u *TenantApplicationStatusUpsertOne) UpdateActionCode() *TenantApplicationStatusUpsertOne {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.UpdateActionCode()
	})
}

// ClearActionCode clears the value of the "action_code" field.
func (u *TenantApplicationStatusUpsertOne) ClearActionCode() *TenantApplicationStatusUpsertOne {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.ClearActionCode()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TenantApplicationStatusUpsertOne) SetUpdatedAt(v time.Time) *TenantApplicationStatusUpsertOne {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TenantApplicationStatusUpsertOne) UpdateUpdatedAt() *TenantApplicationStatusUpsertOne {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TenantApplicationStatusUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TenantApplicationStatusCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TenantApplicationStatusUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TenantApplicationStatusUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TenantApplicationStatusUpsertOne.ID is not supported by MySQL driver. Use TenantApplicationStatusUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TenantApplicationStatusUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TenantApplicationStatusCreateBulk is the builder for creating many TenantApplicationStatus entities in bulk.
type TenantApplicationStatusCreateBulk struct {
	config
	err      error
	builders []*TenantApplicationStatusCreate
	conflict []sql.ConflictOption
}

// Save creates the TenantApplicationStatus entities in the database.
func (_c *TenantApplicationStatusCreateBulk) Save(ctx context.Context) ([]*TenantApplicationStatus, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TenantApplicationStatus, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TenantApplicationStatusMutation)
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
func (_c *TenantApplicationStatusCreateBulk) SaveX(ctx context.Context) []*TenantApplicationStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TenantApplicationStatusCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TenantApplicationStatusCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TenantApplicationStatus.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TenantApplicationStatusUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *TenantApplicationStatusCreateBulk) OnConflict(opts ...sql.ConflictOption) *TenantApplicationStatusUpsertBulk {
	_c.conflict = opts
	return &TenantApplicationStatusUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TenantApplicationStatus.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TenantApplicationStatusCreateBulk) OnConflictColumns(columns ...string) *TenantApplicationStatusUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TenantApplicationStatusUpsertBulk{
		create: _c,
	}
}

// TenantApplicationStatusUpsertBulk is the builder for "upsert"-ing
// a bulk of TenantApplicationStatus nodes.
type TenantApplicationStatusUpsertBulk struct {
	create *TenantApplicationStatusCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TenantApplicationStatus.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tenantapplicationstatus.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TenantApplicationStatusUpsertBulk) UpdateNewValues() *TenantApplicationStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(tenantapplicationstatus.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(tenantapplicationstatus.FieldTenantID)
			}
			if _, exists := b.mutation.StatusCode(); exists {
				s.SetIgnore(tenantapplicationstatus.FieldStatusCode)
			}
			if _, exists := b.mutation.OutcomeType(); exists {
				s.SetIgnore(tenantapplicationstatus.FieldOutcomeType)
			}
			if _, exists := b.mutation.IsTerminal(); exists {
				s.SetIgnore(tenantapplicationstatus.FieldIsTerminal)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(tenantapplicationstatus.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TenantApplicationStatus.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TenantApplicationStatusUpsertBulk) Ignore() *TenantApplicationStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TenantApplicationStatusUpsertBulk) DoNothing() *TenantApplicationStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TenantApplicationStatusCreateBulk.OnConflict
// documentation for more info.
func (u *TenantApplicationStatusUpsertBulk) Update(set func(*TenantApplicationStatusUpsert)) *TenantApplicationStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TenantApplicationStatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *TenantApplicationStatusUpsertBulk) SetDisplayName(v string) *TenantApplicationStatusUpsertBulk {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *TenantApplicationStatusUpsertBulk) UpdateDisplayName() *TenantApplicationStatusUpsertBulk {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.UpdateDisplayName()
	})
}

// SetIsActive sets the "is_active" field.
func (u *TenantApplicationStatusUpsertBulk) SetIsActive(v bool) *TenantApplicationStatusUpsertBulk {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TenantApplicationStatusUpsertBulk) UpdateIsActive() *TenantApplicationStatusUpsertBulk {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.UpdateIsActive()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *TenantApplicationStatusUpsertBulk) SetSortOrder(v int) *TenantApplicationStatusUpsertBulk {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *TenantApplicationStatusUpsertBulk) AddSortOrder(v int) *TenantApplicationStatusUpsertBulk {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *TenantApplicationStatusUpsertBulk) UpdateSortOrder() *TenantApplicationStatusUpsertBulk {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.UpdateSortOrder()
	})
}

// SetActionCode sets the "action_code" field.
func (u *TenantApplicationStatusUpsertBulk) SetActionCode(v string) *TenantApplicationStatusUpsertBulk {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.SetActionCode(v)
	})
}

// UpdateActionCode sets the "action_code" field to the value that was provided on create.
func (u *TenantApplicationStatusUpsertBulk) UpdateActionCode() *TenantApplicationStatusUpsertBulk {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.UpdateActionCode()
	})
}

// ClearActionCode clears the value of the "action_code" field.
func (u *TenantApplicationStatusUpsertBulk) ClearActionCode() *TenantApplicationStatusUpsertBulk {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.ClearActionCode()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TenantApplicationStatusUpsertBulk) SetUpdatedAt(v time.Time) *TenantApplicationStatusUpsertBulk {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TenantApplicationStatusUpsertBulk) UpdateUpdatedAt() *TenantApplicationStatusUpsertBulk {
	return u.Update(func(s *TenantApplicationStatusUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TenantApplicationStatusUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TenantApplicationStatusCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TenantApplicationStatusCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TenantApplicationStatusUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
