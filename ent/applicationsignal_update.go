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
	"github.com/ameyzing09/rtr-api-sub000/ent/applicationsignal"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
)

// ApplicationSignalUpdate is the builder for updating ApplicationSignal entities.
type ApplicationSignalUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationSignalMutation
}

// Where appends a list predicates to the ApplicationSignalUpdate builder.
func (_u *ApplicationSignalUpdate) Where(ps ...predicate.ApplicationSignal) *ApplicationSignalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSupersededAt sets the "superseded_at" field.
func (_u *ApplicationSignalUpdate) SetSupersededAt(v time.Time) *ApplicationSignalUpdate {
	_u.mutation.SetSupersededAt(v)
	return _u
}

// SetNillableSupersededAt sets the "superseded_at" field if the given value is not nil.
func (_u *ApplicationSignalUpdate) SetNillableSupersededAt(v *time.Time) *ApplicationSignalUpdate {
	if v != nil {
		_u.SetSupersededAt(*v)
	}
	return _u
}

// ClearSupersededAt clears the value of the "superseded_at" field.
func (_u *ApplicationSignalUpdate) ClearSupersededAt() *ApplicationSignalUpdate {
	_u.mutation.ClearSupersededAt()
	return _u
}

// SetSupersededBy sets the "superseded_by" field.
func (_u *ApplicationSignalUpdate) SetSupersededBy(v string) *ApplicationSignalUpdate {
	_u.mutation.SetSupersededBy(v)
	return _u
}

// SetNillableSupersededBy sets the "superseded_by" field if the given value is not nil.
func (_u *ApplicationSignalUpdate) SetNillableSupersededBy(v *string) *ApplicationSignalUpdate {
	if v != nil {
		_u.SetSupersededBy(*v)
	}
	return _u
}

// ClearSupersededBy clears the value of the "superseded_by" field.
func (_u *ApplicationSignalUpdate) ClearSupersededBy() *ApplicationSignalUpdate {
	_u.mutation.ClearSupersededBy()
	return _u
}

// Mutation returns the ApplicationSignalMutation object of the builder.
func (_u *ApplicationSignalUpdate) Mutation() *ApplicationSignalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicationSignalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationSignalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicationSignalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationSignalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ApplicationSignalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(applicationsignal.Table, applicationsignal.Columns, sqlgraph.NewFieldSpec(applicationsignal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ValueBooleanCleared() {
		_spec.ClearField(applicationsignal.FieldValueBoolean, field.TypeBool)
	}
	if _u.mutation.ValueNumericCleared() {
		_spec.ClearField(applicationsignal.FieldValueNumeric, field.TypeFloat64)
	}
	if _u.mutation.ValueTextCleared() {
		_spec.ClearField(applicationsignal.FieldValueText, field.TypeString)
	}
	if _u.mutation.SourceIDCleared() {
		_spec.ClearField(applicationsignal.FieldSourceID, field.TypeString)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(applicationsignal.FieldNote, field.TypeString)
	}
	if _u.mutation.SetByCleared() {
		_spec.ClearField(applicationsignal.FieldSetBy, field.TypeString)
	}
	if value, ok := _u.mutation.SupersededAt(); ok {
		_spec.SetField(applicationsignal.FieldSupersededAt, field.TypeTime, value)
	}
	if _u.mutation.SupersededAtCleared() {
		_spec.ClearField(applicationsignal.FieldSupersededAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SupersededBy(); ok {
		_spec.SetField(applicationsignal.FieldSupersededBy, field.TypeString, value)
	}
	if _u.mutation.SupersededByCleared() {
		_spec.ClearField(applicationsignal.FieldSupersededBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicationsignal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicationSignalUpdateOne is the builder for updating a single ApplicationSignal entity.
type ApplicationSignalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationSignalMutation
}

// SetSupersededAt sets the "superseded_at" field.
func (_u *ApplicationSignalUpdateOne) SetSupersededAt(v time.Time) *ApplicationSignalUpdateOne {
	_u.mutation.SetSupersededAt(v)
	return _u
}

// SetNillableSupersededAt sets the "superseded_at" field if the given value is not nil.
func (_u *ApplicationSignalUpdateOne) SetNillableSupersededAt(v *time.Time) *ApplicationSignalUpdateOne {
	if v != nil {
		_u.SetSupersededAt(*v)
	}
	return _u
}

// ClearSupersededAt clears the value of the "superseded_at" field.
func (_u *ApplicationSignalUpdateOne) ClearSupersededAt() *ApplicationSignalUpdateOne {
	_u.mutation.ClearSupersededAt()
	return _u
}

// SetSupersededBy sets the "superseded_by" field.
func (_u *ApplicationSignalUpdateOne) SetSupersededBy(v string) *ApplicationSignalUpdateOne {
	_u.mutation.SetSupersededBy(v)
	return _u
}

// SetNillableSupersededBy sets the "superseded_by" field if the given value is not nil.
func (_u *ApplicationSignalUpdateOne) SetNillableSupersededBy(v *string) *ApplicationSignalUpdateOne {
	if v != nil {
		_u.SetSupersededBy(*v)
	}
	return _u
}

// ClearSupersededBy clears the value of the "superseded_by" field.
func (_u *ApplicationSignalUpdateOne) ClearSupersededBy() *ApplicationSignalUpdateOne {
	_u.mutation.ClearSupersededBy()
	return _u
}

// Mutation returns the ApplicationSignalMutation object of the builder.
func (_u *ApplicationSignalUpdateOne) Mutation() *ApplicationSignalMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApplicationSignalUpdate builder.
func (_u *ApplicationSignalUpdateOne) Where(ps ...predicate.ApplicationSignal) *ApplicationSignalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicationSignalUpdateOne) Select(field string, fields ...string) *ApplicationSignalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApplicationSignal entity.
func (_u *ApplicationSignalUpdateOne) Save(ctx context.Context) (*ApplicationSignal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationSignalUpdateOne) SaveX(ctx context.Context) *ApplicationSignal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicationSignalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationSignalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ApplicationSignalUpdateOne) sqlSave(ctx context.Context) (_node *ApplicationSignal, err error) {
	_spec := sqlgraph.NewUpdateSpec(applicationsignal.Table, applicationsignal.Columns, sqlgraph.NewFieldSpec(applicationsignal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApplicationSignal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, applicationsignal.FieldID)
		for _, f := range fields {
			if !applicationsignal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != applicationsignal.FieldID {
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
	if _u.mutation.ValueBooleanCleared() {
		_spec.ClearField(applicationsignal.FieldValueBoolean, field.TypeBool)
	}
	if _u.mutation.ValueNumericCleared() {
		_spec.ClearField(applicationsignal.FieldValueNumeric, field.TypeFloat64)
	}
	if _u.mutation.ValueTextCleared() {
		_spec.ClearField(applicationsignal.FieldValueText, field.TypeString)
	}
	if _u.mutation.SourceIDCleared() {
		_spec.ClearField(applicationsignal.FieldSourceID, field.TypeString)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(applicationsignal.FieldNote, field.TypeString)
	}
	if _u.mutation.SetByCleared() {
		_spec.ClearField(applicationsignal.FieldSetBy, field.TypeString)
	}
	if value, ok := _u.mutation.SupersededAt(); ok {
		_spec.SetField(applicationsignal.FieldSupersededAt, field.TypeTime, value)
	}
	if _u.mutation.SupersededAtCleared() {
		_spec.ClearField(applicationsignal.FieldSupersededAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SupersededBy(); ok {
		_spec.SetField(applicationsignal.FieldSupersededBy, field.TypeString, value)
	}
	if _u.mutation.SupersededByCleared() {
		_spec.ClearField(applicationsignal.FieldSupersededBy, field.TypeString)
	}
	_node = &ApplicationSignal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicationsignal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
