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
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationtemplate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// EvaluationTemplateCreate is the builder for creating a EvaluationTemplate entity.
type EvaluationTemplateCreate struct {
	config
	mutation *EvaluationTemplateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *EvaluationTemplateCreate) SetTenantID(v string) *EvaluationTemplateCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *EvaluationTemplateCreate) SetName(v string) *EvaluationTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *EvaluationTemplateCreate) SetDescription(v string) *EvaluationTemplateCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *EvaluationTemplateCreate) SetNillableDescription(v *string) *EvaluationTemplateCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetParticipantType sets the "participant_type" field.
func (_c *EvaluationTemplateCreate) SetParticipantType(v models.ParticipantType) *EvaluationTemplateCreate {
	_c.mutation.SetParticipantType(v)
	return _c
}

// SetNillableParticipantType sets the "participant_type" field if the given value is not nil.
func (_c *EvaluationTemplateCreate) SetNillableParticipantType(v *models.ParticipantType) *EvaluationTemplateCreate {
	if v != nil {
		_c.SetParticipantType(*v)
	}
	return _c
}

// SetSignalSchema sets the "signal_schema" field.
func (_c *EvaluationTemplateCreate) SetSignalSchema(v []models.SignalField) *EvaluationTemplateCreate {
	_c.mutation.SetSignalSchema(v)
	return _c
}

// SetDefaultAggregation sets the "default_aggregation" field.
func (_c *EvaluationTemplateCreate) SetDefaultAggregation(v models.Aggregation) *EvaluationTemplateCreate {
	_c.mutation.SetDefaultAggregation(v)
	return _c
}

// SetNillableDefaultAggregation sets the "default_aggregation" field if the given value is not nil.
func (_c *EvaluationTemplateCreate) SetNillableDefaultAggregation(v *models.Aggregation) *EvaluationTemplateCreate {
	if v != nil {
		_c.SetDefaultAggregation(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *EvaluationTemplateCreate) SetVersion(v int) *EvaluationTemplateCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *EvaluationTemplateCreate) SetNillableVersion(v *int) *EvaluationTemplateCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetIsLatest sets the "is_latest" field.
func (_c *EvaluationTemplateCreate) SetIsLatest(v bool) *EvaluationTemplateCreate {
	_c.mutation.SetIsLatest(v)
	return _c
}

// SetNillableIsLatest sets the "is_latest" field if the given value is not nil.
func (_c *EvaluationTemplateCreate) SetNillableIsLatest(v *bool) *EvaluationTemplateCreate {
	if v != nil {
		_c.SetIsLatest(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *EvaluationTemplateCreate) SetIsActive(v bool) *EvaluationTemplateCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *EvaluationTemplateCreate) SetNillableIsActive(v *bool) *EvaluationTemplateCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvaluationTemplateCreate) SetCreatedAt(v time.Time) *EvaluationTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvaluationTemplateCreate) SetNillableCreatedAt(v *time.Time) *EvaluationTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EvaluationTemplateCreate) SetUpdatedAt(v time.Time) *EvaluationTemplateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EvaluationTemplateCreate) SetNillableUpdatedAt(v *time.Time) *EvaluationTemplateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvaluationTemplateCreate) SetID(v string) *EvaluationTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EvaluationTemplateMutation object of the builder.
func (_c *EvaluationTemplateCreate) Mutation() *EvaluationTemplateMutation {
	return _c.mutation
}

// Save creates the EvaluationTemplate in the database.
func (_c *EvaluationTemplateCreate) Save(ctx context.Context) (*EvaluationTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationTemplateCreate) SaveX(ctx context.Context) *EvaluationTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationTemplateCreate) defaults() {
	if _, ok := _c.mutation.ParticipantType(); !ok {
		v := evaluationtemplate.DefaultParticipantType
		_c.mutation.SetParticipantType(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := evaluationtemplate.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.IsLatest(); !ok {
		v := evaluationtemplate.DefaultIsLatest
		_c.mutation.SetIsLatest(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := evaluationtemplate.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evaluationtemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := evaluationtemplate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationTemplateCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "EvaluationTemplate.tenant_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "EvaluationTemplate.name"`)}
	}
	if _, ok := _c.mutation.ParticipantType(); !ok {
		return &ValidationError{Name: "participant_type", err: errors.New(`ent: missing required field "EvaluationTemplate.participant_type"`)}
	}
	if v, ok := _c.mutation.ParticipantType(); ok {
		if err := evaluationtemplate.ParticipantTypeValidator(v); err != nil {
			return &ValidationError{Name: "participant_type", err: fmt.Errorf(`ent: validator failed for field "EvaluationTemplate.participant_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SignalSchema(); !ok {
		return &ValidationError{Name: "signal_schema", err: errors.New(`ent: missing required field "EvaluationTemplate.signal_schema"`)}
	}
	if v, ok := _c.mutation.DefaultAggregation(); ok {
		if err := evaluationtemplate.DefaultAggregationValidator(v); err != nil {
			return &ValidationError{Name: "default_aggregation", err: fmt.Errorf(`ent: validator failed for field "EvaluationTemplate.default_aggregation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "EvaluationTemplate.version"`)}
	}
	if _, ok := _c.mutation.IsLatest(); !ok {
		return &ValidationError{Name: "is_latest", err: errors.New(`ent: missing required field "EvaluationTemplate.is_latest"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "EvaluationTemplate.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvaluationTemplate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EvaluationTemplate.updated_at"`)}
	}
	return nil
}

func (_c *EvaluationTemplateCreate) sqlSave(ctx context.Context) (*EvaluationTemplate, error) {
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
			return nil, fmt.Errorf("unexpected EvaluationTemplate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationTemplateCreate) createSpec() (*EvaluationTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationtemplate.Table, sqlgraph.NewFieldSpec(evaluationtemplate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(evaluationtemplate.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(evaluationtemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(evaluationtemplate.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ParticipantType(); ok {
		_spec.SetField(evaluationtemplate.FieldParticipantType, field.TypeEnum, value)
		_node.ParticipantType = value
	}
	if value, ok := _c.mutation.SignalSchema(); ok {
		_spec.SetField(evaluationtemplate.FieldSignalSchema, field.TypeJSON, value)
		_node.SignalSchema = value
	}
	if value, ok := _c.mutation.DefaultAggregation(); ok {
		_spec.SetField(evaluationtemplate.FieldDefaultAggregation, field.TypeEnum, value)
		_node.DefaultAggregation = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(evaluationtemplate.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.IsLatest(); ok {
		_spec.SetField(evaluationtemplate.FieldIsLatest, field.TypeBool, value)
		_node.IsLatest = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(evaluationtemplate.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evaluationtemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(evaluationtemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvaluationTemplate.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluationTemplateUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluationTemplateCreate) OnConflict(opts ...sql.ConflictOption) *EvaluationTemplateUpsertOne {
	_c.conflict = opts
	return &EvaluationTemplateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvaluationTemplate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluationTemplateCreate) OnConflictColumns(columns ...string) *EvaluationTemplateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluationTemplateUpsertOne{
		create: _c,
	}
}

type (
	// EvaluationTemplateUpsertOne is the builder for "upsert"-ing
	//  one EvaluationTemplate node.
	EvaluationTemplateUpsertOne struct {
		create *EvaluationTemplateCreate
	}

	// EvaluationTemplateUpsert is the "OnConflict" setter.
	EvaluationTemplateUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *EvaluationTemplateUpsert) SetName(v string) *EvaluationTemplateUpsert {
	u.Set(evaluationtemplate.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EvaluationTemplateUpsert) UpdateName() *EvaluationTemplateUpsert {
	u.SetExcluded(evaluationtemplate.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *EvaluationTemplateUpsert) SetDescription(v string) *EvaluationTemplateUpsert {
	u.Set(evaluationtemplate.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EvaluationTemplateUpsert) UpdateDescription() *EvaluationTemplateUpsert {
	u.SetExcluded(evaluationtemplate.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *EvaluationTemplateUpsert) ClearDescription() *EvaluationTemplateUpsert {
	u.SetNull(evaluationtemplate.FieldDescription)
	return u
}

// SetParticipantType sets the "participant_type" field.
func (u *EvaluationTemplateUpsert) SetParticipantType(v models.ParticipantType) *EvaluationTemplateUpsert {
	u.Set(evaluationtemplate.FieldParticipantType, v)
	return u
}

// UpdateParticipantType sets the "participant_type" field to the value that was provided on create.
func (u *EvaluationTemplateUpsert) UpdateParticipantType() *EvaluationTemplateUpsert {
	u.SetExcluded(evaluationtemplate.FieldParticipantType)
	return u
}

// SetSignalSchema sets the "signal_schema" field.
func (u *EvaluationTemplateUpsert) SetSignalSchema(v []models.SignalField) *EvaluationTemplateUpsert {
	u.Set(evaluationtemplate.FieldSignalSchema, v)
	return u
}

// UpdateSignalSchema sets the "signal_schema" field to the value that was provided on create.
func (u *EvaluationTemplateUpsert) UpdateSignalSchema() *EvaluationTemplateUpsert {
	u.SetExcluded(evaluationtemplate.FieldSignalSchema)
	return u
}

// SetDefaultAggregation sets the "default_aggregation" field.
func (u *EvaluationTemplateUpsert) SetDefaultAggregation(v models.Aggregation) *EvaluationTemplateUpsert {
	u.Set(evaluationtemplate.FieldDefaultAggregation, v)
	return u
}

// UpdateDefaultAggregation sets the "default_aggregation" field to the value that was provided on create.
func (u *EvaluationTemplateUpsert) UpdateDefaultAggregation() *EvaluationTemplateUpsert {
	u.SetExcluded(evaluationtemplate.FieldDefaultAggregation)
	return u
}

// ClearDefaultAggregation clears the value of the "default_aggregation" field.
func (u *EvaluationTemplateUpsert) ClearDefaultAggregation() *EvaluationTemplateUpsert {
	u.SetNull(evaluationtemplate.FieldDefaultAggregation)
	return u
}

// SetVersion sets the "version" field.
func (u *EvaluationTemplateUpsert) SetVersion(v int) *EvaluationTemplateUpsert {
	u.Set(evaluationtemplate.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *EvaluationTemplateUpsert) UpdateVersion() *EvaluationTemplateUpsert {
	u.SetExcluded(evaluationtemplate.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *EvaluationTemplateUpsert) AddVersion(v int) *EvaluationTemplateUpsert {
	u.Add(evaluationtemplate.FieldVersion, v)
	return u
}

// SetIsLatest sets the "is_latest" field.
func (u *EvaluationTemplateUpsert) SetIsLatest(v bool) *EvaluationTemplateUpsert {
	u.Set(evaluationtemplate.FieldIsLatest, v)
	return u
}

// UpdateIsLatest sets the "is_latest" field to the value that was provided on create.
func (u *EvaluationTemplateUpsert) UpdateIsLatest() *EvaluationTemplateUpsert {
	u.SetExcluded(evaluationtemplate.FieldIsLatest)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *EvaluationTemplateUpsert) SetIsActive(v bool) *EvaluationTemplateUpsert {
	u.Set(evaluationtemplate.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *EvaluationTemplateUpsert) UpdateIsActive() *EvaluationTemplateUpsert {
	u.SetExcluded(evaluationtemplate.FieldIsActive)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EvaluationTemplateUpsert) SetUpdatedAt(v time.Time) *EvaluationTemplateUpsert {
	u.Set(evaluationtemplate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EvaluationTemplateUpsert) UpdateUpdatedAt() *EvaluationTemplateUpsert {
	u.SetExcluded(evaluationtemplate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EvaluationTemplate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evaluationtemplate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvaluationTemplateUpsertOne) UpdateNewValues() *EvaluationTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(evaluationtemplate.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(evaluationtemplate.FieldTenantID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(evaluationtemplate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvaluationTemplate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EvaluationTemplateUpsertOne) Ignore() *EvaluationTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluationTemplateUpsertOne) DoNothing() *EvaluationTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluationTemplateCreate.OnConflict
// documentation for more info.
func (u *EvaluationTemplateUpsertOne) Update(set func(*EvaluationTemplateUpsert)) *EvaluationTemplateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluationTemplateUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *EvaluationTemplateUpsertOne) SetName(v string) *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertOne) UpdateName() *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *EvaluationTemplateUpsertOne) SetDescription(v string) *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertOne) UpdateDescription() *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *EvaluationTemplateUpsertOne) ClearDescription() *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.ClearDescription()
	})
}

// SetParticipantType sets the "participant_type" field.
func (u *EvaluationTemplateUpsertOne) SetParticipantType(v models.ParticipantType) *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetParticipantType(v)
	})
}

// UpdateParticipantType sets the "participant_type" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertOne) UpdateParticipantType() *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateParticipantType()
	})
}

// SetSignalSchema sets the "signal_schema" field.
func (u *EvaluationTemplateUpsertOne) SetSignalSchema(v []models.SignalField) *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetSignalSchema(v)
	})
}

// UpdateSignalSchema sets the "signal_schema" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertOne) UpdateSignalSchema() *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateSignalSchema()
	})
}

// SetDefaultAggregation sets the "default_aggregation" field.
func (u *EvaluationTemplateUpsertOne) SetDefaultAggregation(v models.Aggregation) *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetDefaultAggregation(v)
	})
}

// UpdateDefaultAggregation sets the "default_aggregation" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertOne) UpdateDefaultAggregation() *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateDefaultAggregation()
	})
}

// ClearDefaultAggregation clears the value of the "default_aggregation" field.
func (u *EvaluationTemplateUpsertOne) ClearDefaultAggregation() *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.ClearDefaultAggregation()
	})
}

// SetVersion sets the "version" field.
func (u *EvaluationTemplateUpsertOne) SetVersion(v int) *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *EvaluationTemplateUpsertOne) AddVersion(v int) *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertOne) UpdateVersion() *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateVersion()
	})
}

// SetIsLatest sets the "is_latest" field.
func (u *EvaluationTemplateUpsertOne) SetIsLatest(v bool) *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetIsLatest(v)
	})
}

// UpdateIsLatest sets the "is_latest" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertOne) UpdateIsLatest() *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateIsLatest()
	})
}

// SetIsActive sets the "is_active" field.
func (u *EvaluationTemplateUpsertOne) SetIsActive(v bool) *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertOne) UpdateIsActive() *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateIsActive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EvaluationTemplateUpsertOne) SetUpdatedAt(v time.Time) *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertOne) UpdateUpdatedAt() *EvaluationTemplateUpsertOne {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EvaluationTemplateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluationTemplateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluationTemplateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EvaluationTemplateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EvaluationTemplateUpsertOne.ID is not supported by MySQL driver. Use EvaluationTemplateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EvaluationTemplateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EvaluationTemplateCreateBulk is the builder for creating many EvaluationTemplate entities in bulk.
type EvaluationTemplateCreateBulk struct {
	config
	err      error
	builders []*EvaluationTemplateCreate
	conflict []sql.ConflictOption
}

// Save creates the EvaluationTemplate entities in the database.
func (_c *EvaluationTemplateCreateBulk) Save(ctx context.Context) ([]*EvaluationTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationTemplateMutation)
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
func (_c *EvaluationTemplateCreateBulk) SaveX(ctx context.Context) []*EvaluationTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvaluationTemplate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluationTemplateUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluationTemplateCreateBulk) OnConflict(opts ...sql.ConflictOption) *EvaluationTemplateUpsertBulk {
	_c.conflict = opts
	return &EvaluationTemplateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvaluationTemplate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluationTemplateCreateBulk) OnConflictColumns(columns ...string) *EvaluationTemplateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluationTemplateUpsertBulk{
		create: _c,
	}
}

// EvaluationTemplateUpsertBulk is the builder for "upsert"-ing
// a bulk of EvaluationTemplate nodes.
type EvaluationTemplateUpsertBulk struct {
	create *EvaluationTemplateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EvaluationTemplate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evaluationtemplate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvaluationTemplateUpsertBulk) UpdateNewValues() *EvaluationTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(evaluationtemplate.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(evaluationtemplate.FieldTenantID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(evaluationtemplate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvaluationTemplate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EvaluationTemplateUpsertBulk) Ignore() *EvaluationTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluationTemplateUpsertBulk) DoNothing() *EvaluationTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluationTemplateCreateBulk.OnConflict
// documentation for more info.
func (u *EvaluationTemplateUpsertBulk) Update(set func(*EvaluationTemplateUpsert)) *EvaluationTemplateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluationTemplateUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *EvaluationTemplateUpsertBulk) SetName(v string) *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertBulk) UpdateName() *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *EvaluationTemplateUpsertBulk) SetDescription(v string) *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertBulk) UpdateDescription() *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *EvaluationTemplateUpsertBulk) ClearDescription() *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.ClearDescription()
	})
}

// SetParticipantType sets the "participant_type" field.
func (u *EvaluationTemplateUpsertBulk) SetParticipantType(v models.ParticipantType) *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetParticipantType(v)
	})
}

// UpdateParticipantType sets the "participant_type" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertBulk) UpdateParticipantType() *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateParticipantType()
	})
}

// SetSignalSchema sets the "signal_schema" field.
func (u *EvaluationTemplateUpsertBulk) SetSignalSchema(v []models.SignalField) *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetSignalSchema(v)
	})
}

// UpdateSignalSchema sets the "signal_schema" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertBulk) UpdateSignalSchema() *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateSignalSchema()
	})
}

// SetDefaultAggregation sets the "default_aggregation" field.
func (u *EvaluationTemplateUpsertBulk) SetDefaultAggregation(v models.Aggregation) *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetDefaultAggregation(v)
	})
}

// UpdateDefaultAggregation sets the "default_aggregation" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertBulk) UpdateDefaultAggregation() *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateDefaultAggregation()
	})
}

// ClearDefaultAggregation clears the value of the "default_aggregation" field.
func (u *EvaluationTemplateUpsertBulk) ClearDefaultAggregation() *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.ClearDefaultAggregation()
	})
}

// SetVersion sets the "version" field.
func (u *EvaluationTemplateUpsertBulk) SetVersion(v int) *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *EvaluationTemplateUpsertBulk) AddVersion(v int) *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertBulk) UpdateVersion() *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateVersion()
	})
}

// SetIsLatest sets the "is_latest" field.
func (u *EvaluationTemplateUpsertBulk) SetIsLatest(v bool) *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetIsLatest(v)
	})
}

// UpdateIsLatest sets the "is_latest" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertBulk) UpdateIsLatest() *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateIsLatest()
	})
}

// SetIsActive sets the "is_active" field.
func (u *EvaluationTemplateUpsertBulk) SetIsActive(v bool) *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertBulk) UpdateIsActive() *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateIsActive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EvaluationTemplateUpsertBulk) SetUpdatedAt(v time.Time) *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EvaluationTemplateUpsertBulk) UpdateUpdatedAt() *EvaluationTemplateUpsertBulk {
	return u.Update(func(s *EvaluationTemplateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EvaluationTemplateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EvaluationTemplateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluationTemplateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluationTemplateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
