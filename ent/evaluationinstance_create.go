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
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationresponse"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// EvaluationInstanceCreate is the builder for creating a EvaluationInstance entity.
type EvaluationInstanceCreate struct {
	config
	mutation *EvaluationInstanceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *EvaluationInstanceCreate) SetTenantID(v string) *EvaluationInstanceCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetApplicationID sets the "application_id" field.
func (_c *EvaluationInstanceCreate) SetApplicationID(v string) *EvaluationInstanceCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetStageID sets the "stage_id" field.
func (_c *EvaluationInstanceCreate) SetStageID(v string) *EvaluationInstanceCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (_c *EvaluationInstanceCreate) SetNillableStageID(v *string) *EvaluationInstanceCreate {
	if v != nil {
		_c.SetStageID(*v)
	}
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *EvaluationInstanceCreate) SetTemplateID(v string) *EvaluationInstanceCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetTemplateVersion sets the "template_version" field.
func (_c *EvaluationInstanceCreate) SetTemplateVersion(v int) *EvaluationInstanceCreate {
	_c.mutation.SetTemplateVersion(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *EvaluationInstanceCreate) SetStatus(v models.EvaluationStatus) *EvaluationInstanceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EvaluationInstanceCreate) SetNillableStatus(v *models.EvaluationStatus) *EvaluationInstanceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetForceCompleted sets the "force_completed" field.
func (_c *EvaluationInstanceCreate) SetForceCompleted(v bool) *EvaluationInstanceCreate {
	_c.mutation.SetForceCompleted(v)
	return _c
}

// SetNillableForceCompleted sets the "force_completed" field if the given value is not nil.
func (_c *EvaluationInstanceCreate) SetNillableForceCompleted(v *bool) *EvaluationInstanceCreate {
	if v != nil {
		_c.SetForceCompleted(*v)
	}
	return _c
}

// SetForceNote sets the "force_note" field.
func (_c *EvaluationInstanceCreate) SetForceNote(v string) *EvaluationInstanceCreate {
	_c.mutation.SetForceNote(v)
	return _c
}

// SetNillableForceNote sets the "force_note" field if the given value is not nil.
func (_c *EvaluationInstanceCreate) SetNillableForceNote(v *string) *EvaluationInstanceCreate {
	if v != nil {
		_c.SetForceNote(*v)
	}
	return _c
}

// SetCompletedBy sets the "completed_by" field.
func (_c *EvaluationInstanceCreate) SetCompletedBy(v string) *EvaluationInstanceCreate {
	_c.mutation.SetCompletedBy(v)
	return _c
}

// SetNillableCompletedBy sets the "completed_by" field if the given value is not nil.
func (_c *EvaluationInstanceCreate) SetNillableCompletedBy(v *string) *EvaluationInstanceCreate {
	if v != nil {
		_c.SetCompletedBy(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *EvaluationInstanceCreate) SetCreatedBy(v string) *EvaluationInstanceCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *EvaluationInstanceCreate) SetNillableCreatedBy(v *string) *EvaluationInstanceCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *EvaluationInstanceCreate) SetDueAt(v time.Time) *EvaluationInstanceCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_c *EvaluationInstanceCreate) SetNillableDueAt(v *time.Time) *EvaluationInstanceCreate {
	if v != nil {
		_c.SetDueAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *EvaluationInstanceCreate) SetCompletedAt(v time.Time) *EvaluationInstanceCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *EvaluationInstanceCreate) SetNillableCompletedAt(v *time.Time) *EvaluationInstanceCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvaluationInstanceCreate) SetCreatedAt(v time.Time) *EvaluationInstanceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvaluationInstanceCreate) SetNillableCreatedAt(v *time.Time) *EvaluationInstanceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EvaluationInstanceCreate) SetUpdatedAt(v time.Time) *EvaluationInstanceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EvaluationInstanceCreate) SetNillableUpdatedAt(v *time.Time) *EvaluationInstanceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvaluationInstanceCreate) SetID(v string) *EvaluationInstanceCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddParticipantIDs adds the "participants" edge to the EvaluationParticipant entity by IDs.
func (_c *EvaluationInstanceCreate) AddParticipantIDs(ids ...string) *EvaluationInstanceCreate {
	_c.mutation.AddParticipantIDs(ids...)
	return _c
}

// AddParticipants adds the "participants" edges to the EvaluationParticipant entity.
func (_c *EvaluationInstanceCreate) AddParticipants(v ...*EvaluationParticipant) *EvaluationInstanceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddParticipantIDs(ids...)
}

// AddResponseIDs adds the "responses" edge to the EvaluationResponse entity by IDs.
func (_c *EvaluationInstanceCreate) AddResponseIDs(ids ...string) *EvaluationInstanceCreate {
	_c.mutation.AddResponseIDs(ids...)
	return _c
}

// AddResponses adds the "responses" edges to the EvaluationResponse entity.
func (_c *EvaluationInstanceCreate) AddResponses(v ...*EvaluationResponse) *EvaluationInstanceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResponseIDs(ids...)
}

// Mutation returns the EvaluationInstanceMutation object of the builder.
func (_c *EvaluationInstanceCreate) Mutation() *EvaluationInstanceMutation {
	return _c.mutation
}

// Save creates the EvaluationInstance in the database.
func (_c *EvaluationInstanceCreate) Save(ctx context.Context) (*EvaluationInstance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationInstanceCreate) SaveX(ctx context.Context) *EvaluationInstance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationInstanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationInstanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationInstanceCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := evaluationinstance.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ForceCompleted(); !ok {
		v := evaluationinstance.DefaultForceCompleted
		_c.mutation.SetForceCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evaluationinstance.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := evaluationinstance.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationInstanceCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "EvaluationInstance.tenant_id"`)}
	}
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "EvaluationInstance.application_id"`)}
	}
	if _, ok := _c.mutation.TemplateID(); !ok {
		return &ValidationError{Name: "template_id", err: errors.New(`ent: missing required field "EvaluationInstance.template_id"`)}
	}
	if _, ok := _c.mutation.TemplateVersion(); !ok {
		return &ValidationError{Name: "template_version", err: errors.New(`ent: missing required field "EvaluationInstance.template_version"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EvaluationInstance.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := evaluationinstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EvaluationInstance.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ForceCompleted(); !ok {
		return &ValidationError{Name: "force_completed", err: errors.New(`ent: missing required field "EvaluationInstance.force_completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvaluationInstance.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EvaluationInstance.updated_at"`)}
	}
	return nil
}

func (_c *EvaluationInstanceCreate) sqlSave(ctx context.Context) (*EvaluationInstance, error) {
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
			return nil, fmt.Errorf("unexpected EvaluationInstance.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationInstanceCreate) createSpec() (*EvaluationInstance, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationInstance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationinstance.Table, sqlgraph.NewFieldSpec(evaluationinstance.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(evaluationinstance.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.ApplicationID(); ok {
		_spec.SetField(evaluationinstance.FieldApplicationID, field.TypeString, value)
		_node.ApplicationID = value
	}
	if value, ok := _c.mutation.StageID(); ok {
		_spec.SetField(evaluationinstance.FieldStageID, field.TypeString, value)
		_node.StageID = value
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(evaluationinstance.FieldTemplateID, field.TypeString, value)
		_node.TemplateID = value
	}
	if value, ok := _c.mutation.TemplateVersion(); ok {
		_spec.SetField(evaluationinstance.FieldTemplateVersion, field.TypeInt, value)
		_node.TemplateVersion = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(evaluationinstance.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ForceCompleted(); ok {
		_spec.SetField(evaluationinstance.FieldForceCompleted, field.TypeBool, value)
		_node.ForceCompleted = value
	}
	if value, ok := _c.mutation.ForceNote(); ok {
		_spec.SetField(evaluationinstance.FieldForceNote, field.TypeString, value)
		_node.ForceNote = value
	}
	if value, ok := _c.mutation.CompletedBy(); ok {
		_spec.SetField(evaluationinstance.FieldCompletedBy, field.TypeString, value)
		_node.CompletedBy = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(evaluationinstance.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(evaluationinstance.FieldDueAt, field.TypeTime, value)
		_node.DueAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(evaluationinstance.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evaluationinstance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(evaluationinstance.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ParticipantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evaluationinstance.ParticipantsTable,
			Columns: []string{evaluationinstance.ParticipantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationparticipant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResponsesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evaluationinstance.ResponsesTable,
			Columns: []string{evaluationinstance.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationresponse.FieldID, field.TypeString),
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
//	client.EvaluationInstance.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluationInstanceUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluationInstanceCreate) OnConflict(opts ...sql.ConflictOption) *EvaluationInstanceUpsertOne {
	_c.conflict = opts
	return &EvaluationInstanceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvaluationInstance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluationInstanceCreate) OnConflictColumns(columns ...string) *EvaluationInstanceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluationInstanceUpsertOne{
		create: _c,
	}
}

type (
	// EvaluationInstanceUpsertOne is the builder for "upsert"-ing
	//  one EvaluationInstance node.
	EvaluationInstanceUpsertOne struct {
		create *EvaluationInstanceCreate
	}

	// EvaluationInstanceUpsert is the "OnConflict" setter.
	EvaluationInstanceUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *EvaluationInstanceUpsert) SetStatus(v models.EvaluationStatus) *EvaluationInstanceUpsert {
	u.Set(evaluationinstance.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EvaluationInstanceUpsert) UpdateStatus() *EvaluationInstanceUpsert {
	u.SetExcluded(evaluationinstance.FieldStatus)
	return u
}

// SetForceCompleted sets the "force_completed" field.
func (u *EvaluationInstanceUpsert) SetForceCompleted(v bool) *EvaluationInstanceUpsert {
	u.Set(evaluationinstance.FieldForceCompleted, v)
	return u
}

// UpdateForceCompleted sets the "force_completed" field to the value that was provided on create.
func (u *EvaluationInstanceUpsert) UpdateForceCompleted() *EvaluationInstanceUpsert {
	u.SetExcluded(evaluationinstance.FieldForceCompleted)
	return u
}

// SetForceNote sets the "force_note" field.
func (u *EvaluationInstanceUpsert) SetForceNote(v string) *EvaluationInstanceUpsert {
	u.Set(evaluationinstance.FieldForceNote, v)
	return u
}

// UpdateForceNote sets the "force_note" field to the value that was provided on create.
func (u *EvaluationInstanceUpsert) UpdateForceNote() *EvaluationInstanceUpsert {
	u.SetExcluded(evaluationinstance.FieldForceNote)
	return u
}

// ClearForceNote clears the value of the "force_note" field.
func (u *EvaluationInstanceUpsert) ClearForceNote() *EvaluationInstanceUpsert {
	u.SetNull(evaluationinstance.FieldForceNote)
	return u
}

// SetCompletedBy sets the "completed_by" field.
func (u *EvaluationInstanceUpsert) SetCompletedBy(v string) *EvaluationInstanceUpsert {
	u.Set(evaluationinstance.FieldCompletedBy, v)
	return u
}

// UpdateCompletedBy sets the "completed_by" field to the value that was provided on create.
func (u *EvaluationInstanceUpsert) UpdateCompletedBy() *EvaluationInstanceUpsert {
	u.SetExcluded(evaluationinstance.FieldCompletedBy)
	return u
}

// ClearCompletedBy clears the value of the "completed_by" field.
func (u *EvaluationInstanceUpsert) ClearCompletedBy() *EvaluationInstanceUpsert {
	u.SetNull(evaluationinstance.FieldCompletedBy)
	return u
}

// SetDueAt sets the "due_at" field.
func (u *EvaluationInstanceUpsert) SetDueAt(v time.Time) *EvaluationInstanceUpsert {
	u.Set(evaluationinstance.FieldDueAt, v)
	return u
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *EvaluationInstanceUpsert) UpdateDueAt() *EvaluationInstanceUpsert {
	u.SetExcluded(evaluationinstance.FieldDueAt)
	return u
}

// ClearDueAt clears the value of the "due_at" field.
func (u *EvaluationInstanceUpsert) ClearDueAt() *EvaluationInstanceUpsert {
	u.SetNull(evaluationinstance.FieldDueAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *EvaluationInstanceUpsert) SetCompletedAt(v time.Time) *EvaluationInstanceUpsert {
	u.Set(evaluationinstance.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *EvaluationInstanceUpsert) UpdateCompletedAt() *EvaluationInstanceUpsert {
	u.SetExcluded(evaluationinstance.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *EvaluationInstanceUpsert) ClearCompletedAt() *EvaluationInstanceUpsert {
	u.SetNull(evaluationinstance.FieldCompletedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EvaluationInstanceUpsert) SetUpdatedAt(v time.Time) *EvaluationInstanceUpsert {
	u.Set(evaluationinstance.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EvaluationInstanceUpsert) UpdateUpdatedAt() *EvaluationInstanceUpsert {
	u.SetExcluded(evaluationinstance.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EvaluationInstance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evaluationinstance.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvaluationInstanceUpsertOne) UpdateNewValues() *EvaluationInstanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(evaluationinstance.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(evaluationinstance.FieldTenantID)
		}
		if _, exists := u.create.mutation.ApplicationID(); exists {
			s.SetIgnore(evaluationinstance.FieldApplicationID)
		}
		if _, exists := u.create.mutation.StageID(); exists {
			s.SetIgnore(evaluationinstance.FieldStageID)
		}
		if _, exists := u.create.mutation.TemplateID(); exists {
			s.SetIgnore(evaluationinstance.FieldTemplateID)
		}
		if _, exists := u.create.mutation.TemplateVersion(); exists {
			s.SetIgnore(evaluationinstance.FieldTemplateVersion)
		}
		if _, exists := u.create.mutation.CreatedBy(); exists {
			s.SetIgnore(evaluationinstance.FieldCreatedBy)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(evaluationinstance.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvaluationInstance.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EvaluationInstanceUpsertOne) Ignore() *EvaluationInstanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluationInstanceUpsertOne) DoNothing() *EvaluationInstanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluationInstanceCreate.OnConflict
// documentation for more info.
func (u *EvaluationInstanceUpsertOne) Update(set func(*EvaluationInstanceUpsert)) *EvaluationInstanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluationInstanceUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *EvaluationInstanceUpsertOne) SetStatus(v models.EvaluationStatus) *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EvaluationInstanceUpsertOne) UpdateStatus() *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.UpdateStatus()
	})
}

// SetForceCompleted sets the "force_completed" field.
func (u *EvaluationInstanceUpsertOne) SetForceCompleted(v bool) *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.SetForceCompleted(v)
	})
}

// UpdateForceCompleted sets the "force_completed" field to the value that was provided on create.
func (u *EvaluationInstanceUpsertOne) UpdateForceCompleted() *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.UpdateForceCompleted()
	})
}

// SetForceNote sets the "force_note" field.
func (u *EvaluationInstanceUpsertOne) SetForceNote(v string) *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.SetForceNote(v)
	})
}

// UpdateForceNote sets the "force_note" field to the value that was provided on create.
func (u *EvaluationInstanceUpsertOne) UpdateForceNote() *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.UpdateForceNote()
	})
}

// ClearForceNote clears the value of the "force_note" field.
func (u *EvaluationInstanceUpsertOne) ClearForceNote() *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.ClearForceNote()
	})
}

// SetCompletedBy sets the "completed_by" field.
func (u *EvaluationInstanceUpsertOne) SetCompletedBy(v string) *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.SetCompletedBy(v)
	})
}

// UpdateCompletedBy sets the "completed_by" field to the value that was provided on create.
func (u *EvaluationInstanceUpsertOne) UpdateCompletedBy() *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.UpdateCompletedBy()
	})
}

// ClearCompletedBy clears the value of the "completed_by" field.
func (u *EvaluationInstanceUpsertOne) ClearCompletedBy() *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.ClearCompletedBy()
	})
}

// SetDueAt sets the "due_at" field.
func (u *EvaluationInstanceUpsertOne) SetDueAt(v time.Time) *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.SetDueAt(v)
	})
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *EvaluationInstanceUpsertOne) UpdateDueAt() *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.UpdateDueAt()
	})
}

// ClearDueAt clears the value of the "due_at" field.
func (u *EvaluationInstanceUpsertOne) ClearDueAt() *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.ClearDueAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *EvaluationInstanceUpsertOne) SetCompletedAt(v time.Time) *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *EvaluationInstanceUpsertOne) UpdateCompletedAt() *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *EvaluationInstanceUpsertOne) ClearCompletedAt() *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EvaluationInstanceUpsertOne) SetUpdatedAt(v time.Time) *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EvaluationInstanceUpsertOne) UpdateUpdatedAt() *EvaluationInstanceUpsertOne {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EvaluationInstanceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluationInstanceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluationInstanceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EvaluationInstanceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EvaluationInstanceUpsertOne.ID is not supported by MySQL driver. Use EvaluationInstanceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EvaluationInstanceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EvaluationInstanceCreateBulk is the builder for creating many EvaluationInstance entities in bulk.
type EvaluationInstanceCreateBulk struct {
	config
	err      error
	builders []*EvaluationInstanceCreate
	conflict []sql.ConflictOption
}

// Save creates the EvaluationInstance entities in the database.
func (_c *EvaluationInstanceCreateBulk) Save(ctx context.Context) ([]*EvaluationInstance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationInstance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationInstanceMutation)
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
func (_c *EvaluationInstanceCreateBulk) SaveX(ctx context.Context) []*EvaluationInstance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationInstanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationInstanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EvaluationInstance.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvaluationInstanceUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvaluationInstanceCreateBulk) OnConflict(opts ...sql.ConflictOption) *EvaluationInstanceUpsertBulk {
	_c.conflict = opts
	return &EvaluationInstanceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EvaluationInstance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvaluationInstanceCreateBulk) OnConflictColumns(columns ...string) *EvaluationInstanceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvaluationInstanceUpsertBulk{
		create: _c,
	}
}

// EvaluationInstanceUpsertBulk is the builder for "upsert"-ing
// a bulk of EvaluationInstance nodes.
type EvaluationInstanceUpsertBulk struct {
	create *EvaluationInstanceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EvaluationInstance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evaluationinstance.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvaluationInstanceUpsertBulk) UpdateNewValues() *EvaluationInstanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(evaluationinstance.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(evaluationinstance.FieldTenantID)
			}
			if _, exists := b.mutation.ApplicationID(); exists {
				s.SetIgnore(evaluationinstance.FieldApplicationID)
			}
			if _, exists := b.mutation.StageID(); exists {
				s.SetIgnore(evaluationinstance.FieldStageID)
			}
			if _, exists := b.mutation.TemplateID(); exists {
				s.SetIgnore(evaluationinstance.FieldTemplateID)
			}
			if _, exists := b.mutation.TemplateVersion(); exists {
				s.SetIgnore(evaluationinstance.FieldTemplateVersion)
			}
			if _, exists := b.mutation.CreatedBy(); exists {
				s.SetIgnore(evaluationinstance.FieldCreatedBy)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(evaluationinstance.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EvaluationInstance.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EvaluationInstanceUpsertBulk) Ignore() *EvaluationInstanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvaluationInstanceUpsertBulk) DoNothing() *EvaluationInstanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvaluationInstanceCreateBulk.OnConflict
// documentation for more info.
func (u *EvaluationInstanceUpsertBulk) Update(set func(*EvaluationInstanceUpsert)) *EvaluationInstanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvaluationInstanceUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *EvaluationInstanceUpsertBulk) SetStatus(v models.EvaluationStatus) *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EvaluationInstanceUpsertBulk) UpdateStatus() *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.UpdateStatus()
	})
}

// SetForceCompleted sets the "force_completed" field.
func (u *EvaluationInstanceUpsertBulk) SetForceCompleted(v bool) *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.SetForceCompleted(v)
	})
}

// UpdateForceCompleted sets the "force_completed" field to the value that was provided on create.
func (u *EvaluationInstanceUpsertBulk) UpdateForceCompleted() *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.UpdateForceCompleted()
	})
}

// SetForceNote sets the "force_note" field.
func (u *EvaluationInstanceUpsertBulk) SetForceNote(v string) *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.SetForceNote(v)
	})
}

// UpdateForceNote sets the "force_note" field to the value that was provided on create.
func (u *EvaluationInstanceUpsertBulk) UpdateForceNote() *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.UpdateForceNote()
	})
}

// ClearForceNote clears the value of the "force_note" field.
func (u *EvaluationInstanceUpsertBulk) ClearForceNote() *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.ClearForceNote()
	})
}

// SetCompletedBy sets the "completed_by" field.
func (u *EvaluationInstanceUpsertBulk) SetCompletedBy(v string) *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.SetCompletedBy(v)
	})
}

// UpdateCompletedBy sets the "completed_by" field to the value that was provided on create.
func (u *EvaluationInstanceUpsertBulk) UpdateCompletedBy() *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.UpdateCompletedBy()
	})
}

// ClearCompletedBy clears the value of the "completed_by" field.
func (u *EvaluationInstanceUpsertBulk) ClearCompletedBy() *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.ClearCompletedBy()
	})
}

// SetDueAt sets the "due_at" field.
func (u *EvaluationInstanceUpsertBulk) SetDueAt(v time.Time) *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.SetDueAt(v)
	})
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *EvaluationInstanceUpsertBulk) UpdateDueAt() *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.UpdateDueAt()
	})
}

// ClearDueAt clears the value of the "due_at" field.
func (u *EvaluationInstanceUpsertBulk) ClearDueAt() *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.ClearDueAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *EvaluationInstanceUpsertBulk) SetCompletedAt(v time.Time) *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *EvaluationInstanceUpsertBulk) UpdateCompletedAt() *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *EvaluationInstanceUpsertBulk) ClearCompletedAt() *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EvaluationInstanceUpsertBulk) SetUpdatedAt(v time.Time) *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EvaluationInstanceUpsertBulk) UpdateUpdatedAt() *EvaluationInstanceUpsertBulk {
	return u.Update(func(s *EvaluationInstanceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EvaluationInstanceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EvaluationInstanceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvaluationInstanceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvaluationInstanceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
