// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationtemplate"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// EvaluationTemplateUpdate is the builder for updating EvaluationTemplate entities.
type EvaluationTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationTemplateMutation
}

// Where appends a list predicates to the EvaluationTemplateUpdate builder.
func (_u *EvaluationTemplateUpdate) Where(ps ...predicate.EvaluationTemplate) *EvaluationTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *EvaluationTemplateUpdate) SetName(v string) *EvaluationTemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EvaluationTemplateUpdate) SetNillableName(v *string) *EvaluationTemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *EvaluationTemplateUpdate) SetDescription(v string) *EvaluationTemplateUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EvaluationTemplateUpdate) SetNillableDescription(v *string) *EvaluationTemplateUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *EvaluationTemplateUpdate) ClearDescription() *EvaluationTemplateUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetParticipantType sets the "participant_type" field.
func (_u *EvaluationTemplateUpdate) SetParticipantType(v models.ParticipantType) *EvaluationTemplateUpdate {
	_u.mutation.SetParticipantType(v)
	return _u
}

// SetNillableParticipantType sets the "participant_type" field if the given value is not nil.
func (_u *EvaluationTemplateUpdate) SetNillableParticipantType(v *models.ParticipantType) *EvaluationTemplateUpdate {
	if v != nil {
		_u.SetParticipantType(*v)
	}
	return _u
}

// SetSignalSchema sets the "signal_schema" field.
func (_u *EvaluationTemplateUpdate) SetSignalSchema(v []models.SignalField) *EvaluationTemplateUpdate {
	_u.mutation.SetSignalSchema(v)
	return _u
}

// AppendSignalSchema appends value to the "signal_schema" field.
func (_u *EvaluationTemplateUpdate) AppendSignalSchema(v []models.SignalField) *EvaluationTemplateUpdate {
	_u.mutation.AppendSignalSchema(v)
	return _u
}

// SetDefaultAggregation sets the "default_aggregation" field.
func (_u *EvaluationTemplateUpdate) SetDefaultAggregation(v models.Aggregation) *EvaluationTemplateUpdate {
	_u.mutation.SetDefaultAggregation(v)
	return _u
}

// SetNillableDefaultAggregation sets the "default_aggregation" field if the given value is not nil.
func (_u *EvaluationTemplateUpdate) SetNillableDefaultAggregation(v *models.Aggregation) *EvaluationTemplateUpdate {
	if v != nil {
		_u.SetDefaultAggregation(*v)
	}
	return _u
}

// ClearDefaultAggregation clears the value of the "default_aggregation" field.
func (_u *EvaluationTemplateUpdate) ClearDefaultAggregation() *EvaluationTemplateUpdate {
	_u.mutation.ClearDefaultAggregation()
	return _u
}

// SetVersion sets the "version" field.
func (_u *EvaluationTemplateUpdate) SetVersion(v int) *EvaluationTemplateUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *EvaluationTemplateUpdate) SetNillableVersion(v *int) *EvaluationTemplateUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *EvaluationTemplateUpdate) AddVersion(v int) *EvaluationTemplateUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIsLatest sets the "is_latest" field.
func (_u *EvaluationTemplateUpdate) SetIsLatest(v bool) *EvaluationTemplateUpdate {
	_u.mutation.SetIsLatest(v)
	return _u
}

// SetNillableIsLatest sets the "is_latest" field if the given value is not nil.
func (_u *EvaluationTemplateUpdate) SetNillableIsLatest(v *bool) *EvaluationTemplateUpdate {
	if v != nil {
		_u.SetIsLatest(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *EvaluationTemplateUpdate) SetIsActive(v bool) *EvaluationTemplateUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *EvaluationTemplateUpdate) SetNillableIsActive(v *bool) *EvaluationTemplateUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EvaluationTemplateUpdate) SetUpdatedAt(v time.Time) *EvaluationTemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EvaluationTemplateMutation object of the builder.
func (_u *EvaluationTemplateUpdate) Mutation() *EvaluationTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationTemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EvaluationTemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := evaluationtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationTemplateUpdate) check() error {
	if v, ok := _u.mutation.ParticipantType(); ok {
		if err := evaluationtemplate.ParticipantTypeValidator(v); err != nil {
			return &ValidationError{Name: "participant_type", err: fmt.Errorf(`ent: validator failed for field "EvaluationTemplate.participant_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultAggregation(); ok {
		if err := evaluationtemplate.DefaultAggregationValidator(v); err != nil {
			return &ValidationError{Name: "default_aggregation", err: fmt.Errorf(`ent: validator failed for field "EvaluationTemplate.default_aggregation": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationtemplate.Table, evaluationtemplate.Columns, sqlgraph.NewFieldSpec(evaluationtemplate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(evaluationtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(evaluationtemplate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(evaluationtemplate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ParticipantType(); ok {
		_spec.SetField(evaluationtemplate.FieldParticipantType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SignalSchema(); ok {
		_spec.SetField(evaluationtemplate.FieldSignalSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSignalSchema(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationtemplate.FieldSignalSchema, value)
		})
	}
	if value, ok := _u.mutation.DefaultAggregation(); ok {
		_spec.SetField(evaluationtemplate.FieldDefaultAggregation, field.TypeEnum, value)
	}
	if _u.mutation.DefaultAggregationCleared() {
		_spec.ClearField(evaluationtemplate.FieldDefaultAggregation, field.TypeEnum)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(evaluationtemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(evaluationtemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsLatest(); ok {
		_spec.SetField(evaluationtemplate.FieldIsLatest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(evaluationtemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(evaluationtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationTemplateUpdateOne is the builder for updating a single EvaluationTemplate entity.
type EvaluationTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationTemplateMutation
}

// SetName sets the "name" field.
func (_u *EvaluationTemplateUpdateOne) SetName(v string) *EvaluationTemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EvaluationTemplateUpdateOne) SetNillableName(v *string) *EvaluationTemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *EvaluationTemplateUpdateOne) SetDescription(v string) *EvaluationTemplateUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EvaluationTemplateUpdateOne) SetNillableDescription(v *string) *EvaluationTemplateUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *EvaluationTemplateUpdateOne) ClearDescription() *EvaluationTemplateUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetParticipantType sets the "participant_type" field.
func (_u *EvaluationTemplateUpdateOne) SetParticipantType(v models.ParticipantType) *EvaluationTemplateUpdateOne {
	_u.mutation.SetParticipantType(v)
	return _u
}

// SetNillableParticipantType sets the "participant_type" field if the given value is not nil.
func (_u *EvaluationTemplateUpdateOne) SetNillableParticipantType(v *models.ParticipantType) *EvaluationTemplateUpdateOne {
	if v != nil {
		_u.SetParticipantType(*v)
	}
	return _u
}

// SetSignalSchema sets the "signal_schema" field.
func (_u *EvaluationTemplateUpdateOne) SetSignalSchema(v []models.SignalField) *EvaluationTemplateUpdateOne {
	_u.mutation.SetSignalSchema(v)
	return _u
}

// AppendSignalSchema appends value to the "signal_schema" field.
func (_u *EvaluationTemplateUpdateOne) AppendSignalSchema(v []models.SignalField) *EvaluationTemplateUpdateOne {
	_u.mutation.AppendSignalSchema(v)
	return _u
}

// SetDefaultAggregation sets the "default_aggregation" field.
func (_u *EvaluationTemplateUpdateOne) SetDefaultAggregation(v models.Aggregation) *EvaluationTemplateUpdateOne {
	_u.mutation.SetDefaultAggregation(v)
	return _u
}

// SetNillableDefaultAggregation sets the "default_aggregation" field if the given value is not nil.
func (_u *EvaluationTemplateUpdateOne) SetNillableDefaultAggregation(v *models.Aggregation) *EvaluationTemplateUpdateOne {
	if v != nil {
		_u.SetDefaultAggregation(*v)
	}
	return _u
}

// ClearDefaultAggregation clears the value of the "default_aggregation" field.
func (_u *EvaluationTemplateUpdateOne) ClearDefaultAggregation() *EvaluationTemplateUpdateOne {
	_u.mutation.ClearDefaultAggregation()
	return _u
}

// SetVersion sets the "version" field.
func (_u *EvaluationTemplateUpdateOne) SetVersion(v int) *EvaluationTemplateUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *EvaluationTemplateUpdateOne) SetNillableVersion(v *int) *EvaluationTemplateUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *EvaluationTemplateUpdateOne) AddVersion(v int) *EvaluationTemplateUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIsLatest sets the "is_latest" field.
func (_u *EvaluationTemplateUpdateOne) SetIsLatest(v bool) *EvaluationTemplateUpdateOne {
	_u.mutation.SetIsLatest(v)
	return _u
}

// SetNillableIsLatest sets the "is_latest" field if the given value is not nil.
func (_u *EvaluationTemplateUpdateOne) SetNillableIsLatest(v *bool) *EvaluationTemplateUpdateOne {
	if v != nil {
		_u.SetIsLatest(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *EvaluationTemplateUpdateOne) SetIsActive(v bool) *EvaluationTemplateUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *EvaluationTemplateUpdateOne) SetNillableIsActive(v *bool) *EvaluationTemplateUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EvaluationTemplateUpdateOne) SetUpdatedAt(v time.Time) *EvaluationTemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EvaluationTemplateMutation object of the builder.
func (_u *EvaluationTemplateUpdateOne) Mutation() *EvaluationTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationTemplateUpdate builder.
func (_u *EvaluationTemplateUpdateOne) Where(ps ...predicate.EvaluationTemplate) *EvaluationTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationTemplateUpdateOne) Select(field string, fields ...string) *EvaluationTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationTemplate entity.
func (_u *EvaluationTemplateUpdateOne) Save(ctx context.Context) (*EvaluationTemplate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationTemplateUpdateOne) SaveX(ctx context.Context) *EvaluationTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EvaluationTemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := evaluationtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.ParticipantType(); ok {
		if err := evaluationtemplate.ParticipantTypeValidator(v); err != nil {
			return &ValidationError{Name: "participant_type", err: fmt.Errorf(`ent: validator failed for field "EvaluationTemplate.participant_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultAggregation(); ok {
		if err := evaluationtemplate.DefaultAggregationValidator(v); err != nil {
			return &ValidationError{Name: "default_aggregation", err: fmt.Errorf(`ent: validator failed for field "EvaluationTemplate.default_aggregation": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationTemplateUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationtemplate.Table, evaluationtemplate.Columns, sqlgraph.NewFieldSpec(evaluationtemplate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationtemplate.FieldID)
		for _, f := range fields {
			if !evaluationtemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationtemplate.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(evaluationtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(evaluationtemplate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(evaluationtemplate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.ParticipantType(); ok {
		_spec.SetField(evaluationtemplate.FieldParticipantType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SignalSchema(); ok {
		_spec.SetField(evaluationtemplate.FieldSignalSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSignalSchema(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationtemplate.FieldSignalSchema, value)
		})
	}
	if value, ok := _u.mutation.DefaultAggregation(); ok {
		_spec.SetField(evaluationtemplate.FieldDefaultAggregation, field.TypeEnum, value)
	}
	if _u.mutation.DefaultAggregationCleared() {
		_spec.ClearField(evaluationtemplate.FieldDefaultAggregation, field.TypeEnum)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(evaluationtemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(evaluationtemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsLatest(); ok {
		_spec.SetField(evaluationtemplate.FieldIsLatest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(evaluationtemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(evaluationtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EvaluationTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
