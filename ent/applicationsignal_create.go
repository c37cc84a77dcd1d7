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
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationsignal"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ApplicationSignalCreate is the builder for creating a ApplicationSignal entity.
type ApplicationSignalCreate struct {
	config
	mutation *ApplicationSignalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *ApplicationSignalCreate) SetTenantID(v string) *ApplicationSignalCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetApplicationID sets the "application_id" field.
func (_c *ApplicationSignalCreate) SetApplicationID(v string) *ApplicationSignalCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetSignalKey sets the "signal_key" field.
func (_c *ApplicationSignalCreate) SetSignalKey(v string) *ApplicationSignalCreate {
	_c.mutation.SetSignalKey(v)
	return _c
}

// SetSignalType sets the "signal_type" field.
func (_c *ApplicationSignalCreate) SetSignalType(v models.SignalType) *ApplicationSignalCreate {
	_c.mutation.SetSignalType(v)
	return _c
}

// SetValueBoolean sets the "value_boolean" field.
func (_c *ApplicationSignalCreate) SetValueBoolean(v bool) *ApplicationSignalCreate {
	_c.mutation.SetValueBoolean(v)
	return _c
}

// SetNillableValueBoolean sets the "value_boolean" field if the given value is not nil.
func (_c *ApplicationSignalCreate) SetNillableValueBoolean(v *bool) *ApplicationSignalCreate {
	if v != nil {
		_c.SetValueBoolean(*v)
	}
	return _c
}

// SetValueNumeric sets the "value_numeric" field.
func (_c *ApplicationSignalCreate) SetValueNumeric(v float64) *ApplicationSignalCreate {
	_c.mutation.SetValueNumeric(v)
	return _c
}

// SetNillableValueNumeric sets the "value_numeric" field if the given value is not nil.
func (_c *ApplicationSignalCreate) SetNillableValueNumeric(v *float64) *ApplicationSignalCreate {
	if v != nil {
		_c.SetValueNumeric(*v)
	}
	return _c
}

// SetValueText sets the "value_text" field.
func (_c *ApplicationSignalCreate) SetValueText(v string) *ApplicationSignalCreate {
	_c.mutation.SetValueText(v)
	return _c
}

// SetNillableValueText sets the "value_text" field if the given value is not nil.
func (_c *ApplicationSignalCreate) SetNillableValueText(v *string) *ApplicationSignalCreate {
	if v != nil {
		_c.SetValueText(*v)
	}
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *ApplicationSignalCreate) SetSourceType(v models.SignalSource) *ApplicationSignalCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *ApplicationSignalCreate) SetSourceID(v string) *ApplicationSignalCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_c *ApplicationSignalCreate) SetNillableSourceID(v *string) *ApplicationSignalCreate {
	if v != nil {
		_c.SetSourceID(*v)
	}
	return _c
}

// SetNote sets the "note" field.
func (_c *ApplicationSignalCreate) SetNote(v string) *ApplicationSignalCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *ApplicationSignalCreate) SetNillableNote(v *string) *ApplicationSignalCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetSetBy sets the "set_by" field.
func (_c *ApplicationSignalCreate) SetSetBy(v string) *ApplicationSignalCreate {
	_c.mutation.SetSetBy(v)
	return _c
}

// SetNillableSetBy sets the "set_by" field if the given value is not nil.
func (_c *ApplicationSignalCreate) SetNillableSetBy(v *string) *ApplicationSignalCreate {
	if v != nil {
		_c.SetSetBy(*v)
	}
	return _c
}

// SetSetAt sets the "set_at" field.
func (_c *ApplicationSignalCreate) SetSetAt(v time.Time) *ApplicationSignalCreate {
	_c.mutation.SetSetAt(v)
	return _c
}

// SetNillableSetAt sets the "set_at" field if the given value is not nil.
func (_c *ApplicationSignalCreate) SetNillableSetAt(v *time.Time) *ApplicationSignalCreate {
	if v != nil {
		_c.SetSetAt(*v)
	}
	return _c
}

// SetSupersededAt sets the "superseded_at" field.
func (_c *ApplicationSignalCreate) SetSupersededAt(v time.Time) *ApplicationSignalCreate {
	_c.mutation.SetSupersededAt(v)
	return _c
}

// SetNillableSupersededAt sets the "superseded_at" field if the given value is not nil.
func (_c *ApplicationSignalCreate) SetNillableSupersededAt(v *time.Time) *ApplicationSignalCreate {
	if v != nil {
		_c.SetSupersededAt(*v)
	}
	return _c
}

// SetSupersededBy sets the "superseded_by" field.
func (_c *ApplicationSignalCreate) SetSupersededBy(v string) *ApplicationSignalCreate {
	_c.mutation.SetSupersededBy(v)
	return _c
}

// SetNillableSupersededBy sets the "superseded_by" field if the given value is not nil.
func (_c *ApplicationSignalCreate) SetNillableSupersededBy(v *string) *ApplicationSignalCreate {
	if v != nil {
		_c.SetSupersededBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApplicationSignalCreate) SetID(v string) *ApplicationSignalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApplicationSignalMutation object of the builder.
func (_c *ApplicationSignalCreate) Mutation() *ApplicationSignalMutation {
	return _c.mutation
}

// Save creates the ApplicationSignal in the database.
func (_c *ApplicationSignalCreate) Save(ctx context.Context) (*ApplicationSignal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicationSignalCreate) SaveX(ctx context.Context) *ApplicationSignal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationSignalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationSignalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicationSignalCreate) defaults() {
	if _, ok := _c.mutation.SetAt(); !ok {
		v := applicationsignal.DefaultSetAt()
		_c.mutation.SetSetAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicationSignalCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ApplicationSignal.tenant_id"`)}
	}
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "ApplicationSignal.application_id"`)}
	}
	if _, ok := _c.mutation.SignalKey(); !ok {
		return &ValidationError{Name: "signal_key", err: errors.New(`ent: missing required field "ApplicationSignal.signal_key"`)}
	}
	if _, ok := _c.mutation.SignalType(); !ok {
		return &ValidationError{Name: "signal_type", err: errors.New(`ent: missing required field "ApplicationSignal.signal_type"`)}
	}
	if v, ok := _c.mutation.SignalType(); ok {
		if err := applicationsignal.SignalTypeValidator(v); err != nil {
			return &ValidationError{Name: "signal_type", err: fmt.Errorf(`ent: validator failed for field "ApplicationSignal.signal_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "ApplicationSignal.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := applicationsignal.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "ApplicationSignal.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SetAt(); !ok {
		return &ValidationError{Name: "set_at", err: errors.New(`ent: missing required field "ApplicationSignal.set_at"`)}
	}
	return nil
}

func (_c *ApplicationSignalCreate) sqlSave(ctx context.Context) (*ApplicationSignal, error) {
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
			return nil, fmt.Errorf("unexpected ApplicationSignal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApplicationSignalCreate) createSpec() (*ApplicationSignal, *sqlgraph.CreateSpec) {
	var (
		_node = &ApplicationSignal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(applicationsignal.Table, sqlgraph.NewFieldSpec(applicationsignal.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(applicationsignal.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.ApplicationID(); ok {
		_spec.SetField(applicationsignal.FieldApplicationID, field.TypeString, value)
		_node.ApplicationID = value
	}
	if value, ok := _c.mutation.SignalKey(); ok {
		_spec.SetField(applicationsignal.FieldSignalKey, field.TypeString, value)
		_node.SignalKey = value
	}
	if value, ok := _c.mutation.SignalType(); ok {
		_spec.SetField(applicationsignal.FieldSignalType, field.TypeEnum, value)
		_node.SignalType = value
	}
	if value, ok := _c.mutation.ValueBoolean(); ok {
		_spec.SetField(applicationsignal.FieldValueBoolean, field.TypeBool, value)
		_node.ValueBoolean = &value
	}
	if value, ok := _c.mutation.ValueNumeric(); ok {
		_spec.SetField(applicationsignal.FieldValueNumeric, field.TypeFloat64, value)
		_node.ValueNumeric = &value
	}
	if value, ok := _c.mutation.ValueText(); ok {
		_spec.SetField(applicationsignal.FieldValueText, field.TypeString, value)
		_node.ValueText = &value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(applicationsignal.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(applicationsignal.FieldSourceID, field.TypeString, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(applicationsignal.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.SetBy(); ok {
		_spec.SetField(applicationsignal.FieldSetBy, field.TypeString, value)
		_node.SetBy = value
	}
	if value, ok := _c.mutation.SetAt(); ok {
		_spec.SetField(applicationsignal.FieldSetAt, field.TypeTime, value)
		_node.SetAt = value
	}
	if value, ok := _c.mutation.SupersededAt(); ok {
		_spec.SetField(applicationsignal.FieldSupersededAt, field.TypeTime, value)
		_node.SupersededAt = &value
	}
	if value, ok := _c.mutation.SupersededBy(); ok {
		_spec.SetField(applicationsignal.FieldSupersededBy, field.TypeString, value)
		_node.SupersededBy = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApplicationSignal.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApplicationSignalUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApplicationSignalCreate) OnConflict(opts ...sql.ConflictOption) *ApplicationSignalUpsertOne {
	_c.conflict = opts
	return &ApplicationSignalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApplicationSignal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApplicationSignalCreate) OnConflictColumns(columns ...string) *ApplicationSignalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApplicationSignalUpsertOne{
		create: _c,
	}
}

type (
	// ApplicationSignalUpsertOne is the builder for "upsert"-ing
	//  one ApplicationSignal node.
	ApplicationSignalUpsertOne struct {
		create *ApplicationSignalCreate
	}

	// ApplicationSignalUpsert is the "OnConflict" setter.
	ApplicationSignalUpsert struct {
		*sql.UpdateSet
	}
)

// SetSupersededAt sets the "superseded_at" field.
func (u *ApplicationSignalUpsert) SetSupersededAt(v time.Time) *ApplicationSignalUpsert {
	u.Set(applicationsignal.FieldSupersededAt, v)
	return u
}

// UpdateSupersededAt sets the "superseded_at" field to the value that was provided on create.
func (u *ApplicationSignalUpsert) UpdateSupersededAt() *ApplicationSignalUpsert {
	u.SetExcluded(applicationsignal.FieldSupersededAt)
	return u
}

// ClearSupersededAt clears the value of the "superseded_at" field.
func (u *ApplicationSignalUpsert) ClearSupersededAt() *ApplicationSignalUpsert {
	u.SetNull(applicationsignal.FieldSupersededAt)
	return u
}

// SetSupersededBy sets the "superseded_by" field.
func (u *ApplicationSignalUpsert) SetSupersededBy(v string) *ApplicationSignalUpsert {
	u.Set(applicationsignal.FieldSupersededBy, v)
	return u
}

// UpdateSupersededBy sets the "superseded_by" field to the value that was provided on create.
func (u *ApplicationSignalUpsert) UpdateSupersededBy() *ApplicationSignalUpsert {
	u.SetExcluded(applicationsignal.FieldSupersededBy)
	return u
}

// ClearSupersededBy clears the value of the "superseded_by" field.
func (u *ApplicationSignalUpsert) ClearSupersededBy() *ApplicationSignalUpsert {
	u.SetNull(applicationsignal.FieldSupersededBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ApplicationSignal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(applicationsignal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApplicationSignalUpsertOne) UpdateNewValues() *ApplicationSignalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(applicationsignal.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(applicationsignal.FieldTenantID)
		}
		if _, exists := u.create.mutation.ApplicationID(); exists {
			s.SetIgnore(applicationsignal.FieldApplicationID)
		}
		if _, exists := u.create.mutation.SignalKey(); exists {
			s.SetIgnore(applicationsignal.FieldSignalKey)
		}
		if _, exists := u.create.mutation.SignalType(); exists {
			s.SetIgnore(applicationsignal.FieldSignalType)
		}
		if _, exists := u.create.mutation.ValueBoolean(); exists {
			s.SetIgnore(applicationsignal.FieldValueBoolean)
		}
		if _, exists := u.create.mutation.ValueNumeric(); exists {
			s.SetIgnore(applicationsignal.FieldValueNumeric)
		}
		if _, exists := u.create.mutation.ValueText(); exists {
			s.SetIgnore(applicationsignal.FieldValueText)
		}
		if _, exists := u.create.mutation.SourceType(); exists {
			s.SetIgnore(applicationsignal.FieldSourceType)
		}
		if _, exists := u.create.mutation.SourceID(); exists {
			s.SetIgnore(applicationsignal.FieldSourceID)
		}
		if _, exists := u.create.mutation.Note(); exists {
			s.SetIgnore(applicationsignal.FieldNote)
		}
		if _, exists := u.create.mutation.SetBy(); exists {
			s.SetIgnore(applicationsignal.FieldSetBy)
		}
		if _, exists := u.create.mutation.SetAt(); exists {
			s.SetIgnore(applicationsignal.FieldSetAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApplicationSignal.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ApplicationSignalUpsertOne) Ignore() *ApplicationSignalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApplicationSignalUpsertOne) DoNothing() *ApplicationSignalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApplicationSignalCreate.OnConflict
// documentation for more info.
func (u *ApplicationSignalUpsertOne) Update(set func(*ApplicationSignalUpsert)) *ApplicationSignalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApplicationSignalUpsert{UpdateSet: update})
	}))
	return u
}

// SetSupersededAt sets the "superseded_at" field.
func (u *ApplicationSignalUpsertOne) SetSupersededAt(v time.Time) *ApplicationSignalUpsertOne {
	return u.Update(func(s *ApplicationSignalUpsert) {
		s.SetSupersededAt(v)
	})
}

// UpdateSupersededAt sets the "superseded_at" field to the value that was provided on create.
func (u *ApplicationSignalUpsertOne) UpdateSupersededAt() *ApplicationSignalUpsertOne {
	return u.Update(func(s *ApplicationSignalUpsert) {
		s.UpdateSupersededAt()
	})
}

// ClearSupersededAt clears the value of the "superseded_at" field.
func (u *ApplicationSignalUpsertOne) ClearSupersededAt() *ApplicationSignalUpsertOne {
	return u.Update(func(s *ApplicationSignalUpsert) {
		s.ClearSupersededAt()
	})
}

// SetSupersededBy sets the "superseded_by" field.
func (u *ApplicationSignalUpsertOne) SetSupersededBy(v string) *ApplicationSignalUpsertOne {
	return u.Update(func(s *ApplicationSignalUpsert) {
		s.SetSupersededBy(v)
	})
}

// UpdateSupersededBy sets the "superseded_by" field to the value that was provided on create.
func (u *ApplicationSignalUpsertOne) UpdateSupersededBy() *ApplicationSignalUpsertOne {
	return u.Update(func(s *ApplicationSignalUpsert) {
		s.UpdateSupersededBy()
	})
}

// ClearSupersededBy clears the value of the "superseded_by" field.
func (u *ApplicationSignalUpsertOne) ClearSupersededBy() *ApplicationSignalUpsertOne {
	return u.Update(func(s *ApplicationSignalUpsert) {
		s.ClearSupersededBy()
	})
}

// Exec executes the query.
func (u *ApplicationSignalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApplicationSignalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApplicationSignalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ApplicationSignalUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ApplicationSignalUpsertOne.ID is not supported by MySQL driver. Use ApplicationSignalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ApplicationSignalUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ApplicationSignalCreateBulk is the builder for creating many ApplicationSignal entities in bulk.
type ApplicationSignalCreateBulk struct {
	config
	err      error
	builders []*ApplicationSignalCreate
	conflict []sql.ConflictOption
}

// Save creates the ApplicationSignal entities in the database.
func (_c *ApplicationSignalCreateBulk) Save(ctx context.Context) ([]*ApplicationSignal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApplicationSignal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationSignalMutation)
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
func (_c *ApplicationSignalCreateBulk) SaveX(ctx context.Context) []*ApplicationSignal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationSignalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationSignalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ApplicationSignal.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ApplicationSignalUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *ApplicationSignalCreateBulk) OnConflict(opts ...sql.ConflictOption) *ApplicationSignalUpsertBulk {
	_c.conflict = opts
	return &ApplicationSignalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ApplicationSignal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ApplicationSignalCreateBulk) OnConflictColumns(columns ...string) *ApplicationSignalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ApplicationSignalUpsertBulk{
		create: _c,
	}
}

// ApplicationSignalUpsertBulk is the builder for "upsert"-ing
// a bulk of ApplicationSignal nodes.
type ApplicationSignalUpsertBulk struct {
	create *ApplicationSignalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ApplicationSignal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(applicationsignal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ApplicationSignalUpsertBulk) UpdateNewValues() *ApplicationSignalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(applicationsignal.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(applicationsignal.FieldTenantID)
			}
			if _, exists := b.mutation.ApplicationID(); exists {
				s.SetIgnore(applicationsignal.FieldApplicationID)
			}
			if _, exists := b.mutation.SignalKey(); exists {
				s.SetIgnore(applicationsignal.FieldSignalKey)
			}
			if _, exists := b.mutation.SignalType(); exists {
				s.SetIgnore(applicationsignal.FieldSignalType)
			}
			if _, exists := b.mutation.ValueBoolean(); exists {
				s.SetIgnore(applicationsignal.FieldValueBoolean)
			}
			if _, exists := b.mutation.ValueNumeric(); exists {
				s.SetIgnore(applicationsignal.FieldValueNumeric)
			}
			if _, exists := b.mutation.ValueText(); exists {
				s.SetIgnore(applicationsignal.FieldValueText)
			}
			if _, exists := b.mutation.SourceType(); exists {
				s.SetIgnore(applicationsignal.FieldSourceType)
			}
			if _, exists := b.mutation.SourceID(); exists {
				s.SetIgnore(applicationsignal.FieldSourceID)
			}
			if _, exists := b.mutation.Note(); exists {
				s.SetIgnore(applicationsignal.FieldNote)
			}
			if _, exists := b.mutation.SetBy(); exists {
				s.SetIgnore(applicationsignal.FieldSetBy)
			}
			if _, exists := b.mutation.SetAt(); exists {
				s.SetIgnore(applicationsignal.FieldSetAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ApplicationSignal.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ApplicationSignalUpsertBulk) Ignore() *ApplicationSignalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ApplicationSignalUpsertBulk) DoNothing() *ApplicationSignalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ApplicationSignalCreateBulk.OnConflict
// documentation for more info.
func (u *ApplicationSignalUpsertBulk) Update(set func(*ApplicationSignalUpsert)) *ApplicationSignalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ApplicationSignalUpsert{UpdateSet: update})
	}))
	return u
}

// SetSupersededAt sets the "superseded_at" field.
func (u *ApplicationSignalUpsertBulk) SetSupersededAt(v time.Time) *ApplicationSignalUpsertBulk {
	return u.Update(func(s *ApplicationSignalUpsert) {
		s.SetSupersededAt(v)
	})
}

// UpdateSupersededAt sets the "superseded_at" field to the value that was provided on create.
func (u *ApplicationSignalUpsertBulk) UpdateSupersededAt() *ApplicationSignalUpsertBulk {
	return u.Update(func(s *ApplicationSignalUpsert) {
		s.UpdateSupersededAt()
	})
}

// ClearSupersededAt clears the value of the "superseded_at" field.
func (u *ApplicationSignalUpsertBulk) ClearSupersededAt() *ApplicationSignalUpsertBulk {
	return u.Update(func(s *ApplicationSignalUpsert) {
		s.ClearSupersededAt()
	})
}

// SetSupersededBy sets the "superseded_by" field.
func (u *ApplicationSignalUpsertBulk) SetSupersededBy(v string) *ApplicationSignalUpsertBulk {
	return u.Update(func(s *ApplicationSignalUpsert) {
		s.SetSupersededBy(v)
	})
}

// UpdateSupersededBy sets the "superseded_by" field to the value that was provided on create.
func (u *ApplicationSignalUpsertBulk) UpdateSupersededBy() *ApplicationSignalUpsertBulk {
	return u.Update(func(s *ApplicationSignalUpsert) {
		s.UpdateSupersededBy()
	})
}

// ClearSupersededBy clears the value of the "superseded_by" field.
func (u *ApplicationSignalUpsertBulk) ClearSupersededBy() *ApplicationSignalUpsertBulk {
	return u.Update(func(s *ApplicationSignalUpsert) {
		s.ClearSupersededBy()
	})
}

// Exec executes the query.
func (u *ApplicationSignalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ApplicationSignalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ApplicationSignalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ApplicationSignalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
