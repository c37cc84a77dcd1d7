// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationinstance"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationparticipant"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationresponse"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// EvaluationInstanceUpdate is the builder for updating EvaluationInstance entities.
type EvaluationInstanceUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationInstanceMutation
}

// Where appends a list predicates to the EvaluationInstanceUpdate builder.
func (_u *EvaluationInstanceUpdate) Where(ps ...predicate.EvaluationInstance) *EvaluationInstanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EvaluationInstanceUpdate) SetStatus(v models.EvaluationStatus) *EvaluationInstanceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EvaluationInstanceUpdate) SetNillableStatus(v *models.EvaluationStatus) *EvaluationInstanceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetForceCompleted sets the "force_completed" field.
func (_u *EvaluationInstanceUpdate) SetForceCompleted(v bool) *EvaluationInstanceUpdate {
	_u.mutation.SetForceCompleted(v)
	return _u
}

// SetNillableForceCompleted sets the "force_completed" field if the given value is not nil.
func (_u *EvaluationInstanceUpdate) SetNillableForceCompleted(v *bool) *EvaluationInstanceUpdate {
	if v != nil {
		_u.SetForceCompleted(*v)
	}
	return _u
}

// SetForceNote sets the "force_note" field.
func (_u *EvaluationInstanceUpdate) SetForceNote(v string) *EvaluationInstanceUpdate {
	_u.mutation.SetForceNote(v)
	return _u
}

// SetNillableForceNote sets the "force_note" field if the given value is not nil.
func (_u *EvaluationInstanceUpdate) SetNillableForceNote(v *string) *EvaluationInstanceUpdate {
	if v != nil {
		_u.SetForceNote(*v)
	}
	return _u
}

// ClearForceNote clears the value of the "force_note" field.
func (_u *EvaluationInstanceUpdate) ClearForceNote() *EvaluationInstanceUpdate {
	_u.mutation.ClearForceNote()
	return _u
}

// SetCompletedBy sets the "completed_by" field.
func (_u *EvaluationInstanceUpdate) SetCompletedBy(v string) *EvaluationInstanceUpdate {
	_u.mutation.SetCompletedBy(v)
	return _u
}

// SetNillableCompletedBy sets the "completed_by" field if the given value is not nil.
func (_u *EvaluationInstanceUpdate) SetNillableCompletedBy(v *string) *EvaluationInstanceUpdate {
	if v != nil {
		_u.SetCompletedBy(*v)
	}
	return _u
}

// ClearCompletedBy clears the value of the "completed_by" field.
func (_u *EvaluationInstanceUpdate) ClearCompletedBy() *EvaluationInstanceUpdate {
	_u.mutation.ClearCompletedBy()
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *EvaluationInstanceUpdate) SetDueAt(v time.Time) *EvaluationInstanceUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *EvaluationInstanceUpdate) SetNillableDueAt(v *time.Time) *EvaluationInstanceUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// ClearDueAt clears the value of the "due_at" field.
func (_u *EvaluationInstanceUpdate) ClearDueAt() *EvaluationInstanceUpdate {
	_u.mutation.ClearDueAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EvaluationInstanceUpdate) SetCompletedAt(v time.Time) *EvaluationInstanceUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EvaluationInstanceUpdate) SetNillableCompletedAt(v *time.Time) *EvaluationInstanceUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EvaluationInstanceUpdate) ClearCompletedAt() *EvaluationInstanceUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EvaluationInstanceUpdate) SetUpdatedAt(v time.Time) *EvaluationInstanceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddParticipantIDs adds the "participants" edge to the EvaluationParticipant entity by IDs.
func (_u *EvaluationInstanceUpdate) AddParticipantIDs(ids ...string) *EvaluationInstanceUpdate {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the EvaluationParticipant entity.
func (_u *EvaluationInstanceUpdate) AddParticipants(v ...*EvaluationParticipant) *EvaluationInstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// AddResponseIDs adds the "responses" edge to the EvaluationResponse entity by IDs.
func (_u *EvaluationInstanceUpdate) AddResponseIDs(ids ...string) *EvaluationInstanceUpdate {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the EvaluationResponse entity.
func (_u *EvaluationInstanceUpdate) AddResponses(v ...*EvaluationResponse) *EvaluationInstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// Mutation returns the EvaluationInstanceMutation object of the builder.
func (_u *EvaluationInstanceUpdate) Mutation() *EvaluationInstanceMutation {
	return _u.mutation
}

// ClearParticipants clears all "participants" edges to the EvaluationParticipant entity.
func (_u *EvaluationInstanceUpdate) ClearParticipants() *EvaluationInstanceUpdate {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to EvaluationParticipant entities by IDs.
func (_u *EvaluationInstanceUpdate) RemoveParticipantIDs(ids ...string) *EvaluationInstanceUpdate {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to EvaluationParticipant entities.
func (_u *EvaluationInstanceUpdate) RemoveParticipants(v ...*EvaluationParticipant) *EvaluationInstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearResponses clears all "responses" edges to the EvaluationResponse entity.
func (_u *EvaluationInstanceUpdate) ClearResponses() *EvaluationInstanceUpdate {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to EvaluationResponse entities by IDs.
func (_u *EvaluationInstanceUpdate) RemoveResponseIDs(ids ...string) *EvaluationInstanceUpdate {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to EvaluationResponse entities.
func (_u *EvaluationInstanceUpdate) RemoveResponses(v ...*EvaluationResponse) *EvaluationInstanceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationInstanceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationInstanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationInstanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationInstanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EvaluationInstanceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := evaluationinstance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationInstanceUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := evaluationinstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EvaluationInstance.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationInstanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationinstance.Table, evaluationinstance.Columns, sqlgraph.NewFieldSpec(evaluationinstance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.StageIDCleared() {
		_spec.ClearField(evaluationinstance.FieldStageID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(evaluationinstance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ForceCompleted(); ok {
		_spec.SetField(evaluationinstance.FieldForceCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ForceNote(); ok {
		_spec.SetField(evaluationinstance.FieldForceNote, field.TypeString, value)
	}
	if _u.mutation.ForceNoteCleared() {
		_spec.ClearField(evaluationinstance.FieldForceNote, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedBy(); ok {
		_spec.SetField(evaluationinstance.FieldCompletedBy, field.TypeString, value)
	}
	if _u.mutation.CompletedByCleared() {
		_spec.ClearField(evaluationinstance.FieldCompletedBy, field.TypeString)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(evaluationinstance.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(evaluationinstance.FieldDueAt, field.TypeTime, value)
	}
	if _u.mutation.DueAtCleared() {
		_spec.ClearField(evaluationinstance.FieldDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(evaluationinstance.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(evaluationinstance.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(evaluationinstance.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResponsesIDs(); len(nodes) > 0 && !_u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationinstance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationInstanceUpdateOne is the builder for updating a single EvaluationInstance entity.
type EvaluationInstanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationInstanceMutation
}

// SetStatus sets the "status" field.
func (_u *EvaluationInstanceUpdateOne) SetStatus(v models.EvaluationStatus) *EvaluationInstanceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EvaluationInstanceUpdateOne) SetNillableStatus(v *models.EvaluationStatus) *EvaluationInstanceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetForceCompleted sets the "force_completed" field.
func (_u *EvaluationInstanceUpdateOne) SetForceCompleted(v bool) *EvaluationInstanceUpdateOne {
	_u.mutation.SetForceCompleted(v)
	return _u
}

// SetNillableForceCompleted sets the "force_completed" field if the given value is not nil.
func (_u *EvaluationInstanceUpdateOne) SetNillableForceCompleted(v *bool) *EvaluationInstanceUpdateOne {
	if v != nil {
		_u.SetForceCompleted(*v)
	}
	return _u
}

// SetForceNote sets the "force_note" field.
func (_u *EvaluationInstanceUpdateOne) SetForceNote(v string) *EvaluationInstanceUpdateOne {
	_u.mutation.SetForceNote(v)
	return _u
}

// SetNillableForceNote sets the "force_note" field if the given value is not nil.
func (_u *EvaluationInstanceUpdateOne) SetNillableForceNote(v *string) *EvaluationInstanceUpdateOne {
	if v != nil {
		_u.SetForceNote(*v)
	}
	return _u
}

// ClearForceNote clears the value of the "force_note" field.
func (_u *EvaluationInstanceUpdateOne) ClearForceNote() *EvaluationInstanceUpdateOne {
	_u.mutation.ClearForceNote()
	return _u
}

// SetCompletedBy sets the "completed_by" field.
func (_u *EvaluationInstanceUpdateOne) SetCompletedBy(v string) *EvaluationInstanceUpdateOne {
	_u.mutation.SetCompletedBy(v)
	return _u
}

// SetNillableCompletedBy sets the "completed_by" field if the given value is not nil.
func (_u *EvaluationInstanceUpdateOne) SetNillableCompletedBy(v *string) *EvaluationInstanceUpdateOne {
	if v != nil {
		_u.SetCompletedBy(*v)
	}
	return _u
}

// ClearCompletedBy clears the value of the "completed_by" field.
func (_u *EvaluationInstanceUpdateOne) ClearCompletedBy() *EvaluationInstanceUpdateOne {
	_u.mutation.ClearCompletedBy()
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *EvaluationInstanceUpdateOne) SetDueAt(v time.Time) *EvaluationInstanceUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *EvaluationInstanceUpdateOne) SetNillableDueAt(v *time.Time) *EvaluationInstanceUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// ClearDueAt clears the value of the "due_at" field.
func (_u *EvaluationInstanceUpdateOne) ClearDueAt() *EvaluationInstanceUpdateOne {
	_u.mutation.ClearDueAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EvaluationInstanceUpdateOne) SetCompletedAt(v time.Time) *EvaluationInstanceUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EvaluationInstanceUpdateOne) SetNillableCompletedAt(v *time.Time) *EvaluationInstanceUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EvaluationInstanceUpdateOne) ClearCompletedAt() *EvaluationInstanceUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EvaluationInstanceUpdateOne) SetUpdatedAt(v time.Time) *EvaluationInstanceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddParticipantIDs adds the "participants" edge to the EvaluationParticipant entity by IDs.
func (_u *EvaluationInstanceUpdateOne) AddParticipantIDs(ids ...string) *EvaluationInstanceUpdateOne {
	_u.mutation.AddParticipantIDs(ids...)
	return _u
}

// AddParticipants adds the "participants" edges to the EvaluationParticipant entity.
func (_u *EvaluationInstanceUpdateOne) AddParticipants(v ...*EvaluationParticipant) *EvaluationInstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddParticipantIDs(ids...)
}

// AddResponseIDs adds the "responses" edge to the EvaluationResponse entity by IDs.
func (_u *EvaluationInstanceUpdateOne) AddResponseIDs(ids ...string) *EvaluationInstanceUpdateOne {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the EvaluationResponse entity.
func (_u *EvaluationInstanceUpdateOne) AddResponses(v ...*EvaluationResponse) *EvaluationInstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// Mutation returns the EvaluationInstanceMutation object of the builder.
func (_u *EvaluationInstanceUpdateOne) Mutation() *EvaluationInstanceMutation {
	return _u.mutation
}

// ClearParticipants clears all "participants" edges to the EvaluationParticipant entity.
func (_u *EvaluationInstanceUpdateOne) ClearParticipants() *EvaluationInstanceUpdateOne {
	_u.mutation.ClearParticipants()
	return _u
}

// RemoveParticipantIDs removes the "participants" edge to EvaluationParticipant entities by IDs.
func (_u *EvaluationInstanceUpdateOne) RemoveParticipantIDs(ids ...string) *EvaluationInstanceUpdateOne {
	_u.mutation.RemoveParticipantIDs(ids...)
	return _u
}

// RemoveParticipants removes "participants" edges to EvaluationParticipant entities.
func (_u *EvaluationInstanceUpdateOne) RemoveParticipants(v ...*EvaluationParticipant) *EvaluationInstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveParticipantIDs(ids...)
}

// ClearResponses clears all "responses" edges to the EvaluationResponse entity.
func (_u *EvaluationInstanceUpdateOne) ClearResponses() *EvaluationInstanceUpdateOne {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to EvaluationResponse entities by IDs.
func (_u *EvaluationInstanceUpdateOne) RemoveResponseIDs(ids ...string) *EvaluationInstanceUpdateOne {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to EvaluationResponse entities.
func (_u *EvaluationInstanceUpdateOne) RemoveResponses(v ...*EvaluationResponse) *EvaluationInstanceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// Where appends a list predicates to the EvaluationInstanceUpdate builder.
func (_u *EvaluationInstanceUpdateOne) Where(ps ...predicate.EvaluationInstance) *EvaluationInstanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationInstanceUpdateOne) Select(field string, fields ...string) *EvaluationInstanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationInstance entity.
func (_u *EvaluationInstanceUpdateOne) Save(ctx context.Context) (*EvaluationInstance, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationInstanceUpdateOne) SaveX(ctx context.Context) *EvaluationInstance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationInstanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationInstanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EvaluationInstanceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := evaluationinstance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationInstanceUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := evaluationinstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EvaluationInstance.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationInstanceUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationInstance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationinstance.Table, evaluationinstance.Columns, sqlgraph.NewFieldSpec(evaluationinstance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationInstance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationinstance.FieldID)
		for _, f := range fields {
			if !evaluationinstance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationinstance.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.StageIDCleared() {
		_spec.ClearField(evaluationinstance.FieldStageID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(evaluationinstance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ForceCompleted(); ok {
		_spec.SetField(evaluationinstance.FieldForceCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ForceNote(); ok {
		_spec.SetField(evaluationinstance.FieldForceNote, field.TypeString, value)
	}
	if _u.mutation.ForceNoteCleared() {
		_spec.ClearField(evaluationinstance.FieldForceNote, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedBy(); ok {
		_spec.SetField(evaluationinstance.FieldCompletedBy, field.TypeString, value)
	}
	if _u.mutation.CompletedByCleared() {
		_spec.ClearField(evaluationinstance.FieldCompletedBy, field.TypeString)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(evaluationinstance.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(evaluationinstance.FieldDueAt, field.TypeTime, value)
	}
	if _u.mutation.DueAtCleared() {
		_spec.ClearField(evaluationinstance.FieldDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(evaluationinstance.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(evaluationinstance.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(evaluationinstance.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedParticipantsIDs(); len(nodes) > 0 && !_u.mutation.ParticipantsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParticipantsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResponsesIDs(); len(nodes) > 0 && !_u.mutation.ResponsesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EvaluationInstance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationinstance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
