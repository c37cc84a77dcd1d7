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
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantapplicationstatus"
)

// TenantApplicationStatusUpdate is the builder for updating TenantApplicationStatus entities.
type TenantApplicationStatusUpdate struct {
	config
	hooks    []Hook
	mutation *TenantApplicationStatusMutation
}

// Where appends a list predicates to the TenantApplicationStatusUpdate builder.
func (_u *TenantApplicationStatusUpdate) Where(ps ...predicate.TenantApplicationStatus) *TenantApplicationStatusUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *TenantApplicationStatusUpdate) SetDisplayName(v string) *TenantApplicationStatusUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *TenantApplicationStatusUpdate) SetNillableDisplayName(v *string) *TenantApplicationStatusUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TenantApplicationStatusUpdate) SetIsActive(v bool) *TenantApplicationStatusUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TenantApplicationStatusUpdate) SetNillableIsActive(v *bool) *TenantApplicationStatusUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *TenantApplicationStatusUpdate) SetSortOrder(v int) *TenantApplicationStatusUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *TenantApplicationStatusUpdate) SetNillableSortOrder(v *int) *TenantApplicationStatusUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *TenantApplicationStatusUpdate) AddSortOrder(v int) *TenantApplicationStatusUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetActionCode sets the "action_code" field.
func (_u *TenantApplicationStatusUpdate) SetActionCode(v string) *TenantApplicationStatusUpdate {
	_u.mutation.SetActionCode(v)
	return _u
}

// SetNillableActionCode sets the "action_code" field if the given value is not nil.
func (_u *TenantApplicationStatusUpdate) SetNillableActionCode(v *string) *TenantApplicationStatusUpdate {
	if v != nil {
		_u.SetActionCode(*v)
	}
	return _u
}

// ClearActionCode clears the value of the "action_code" field.
func (_u *TenantApplicationStatusUpdate) ClearActionCode() *TenantApplicationStatusUpdate {
	_u.mutation.ClearActionCode()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantApplicationStatusUpdate) SetUpdatedAt(v time.Time) *TenantApplicationStatusUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TenantApplicationStatusMutation object of the builder.
func (_u *TenantApplicationStatusUpdate) Mutation() *TenantApplicationStatusMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TenantApplicationStatusUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantApplicationStatusUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TenantApplicationStatusUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantApplicationStatusUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantApplicationStatusUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenantapplicationstatus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TenantApplicationStatusUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tenantapplicationstatus.Table, tenantapplicationstatus.Columns, sqlgraph.NewFieldSpec(tenantapplicationstatus.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(tenantapplicationstatus.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(tenantapplicationstatus.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(tenantapplicationstatus.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(tenantapplicationstatus.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActionCode(); ok {
		_spec.SetField(tenantapplicationstatus.FieldActionCode, field.TypeString, value)
	}
	if _u.mutation.ActionCodeCleared() {
		_spec.ClearField(tenantapplicationstatus.FieldActionCode, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantapplicationstatus.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenantapplicationstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TenantApplicationStatusUpdateOne is the builder for updating a single TenantApplicationStatus entity.
type TenantApplicationStatusUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TenantApplicationStatusMutation
}

// SetDisplayName sets the "display_name" field.
func (_u *TenantApplicationStatusUpdateOne) SetDisplayName(v string) *TenantApplicationStatusUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *TenantApplicationStatusUpdateOne) SetNillableDisplayName(v *string) *TenantApplicationStatusUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TenantApplicationStatusUpdateOne) SetIsActive(v bool) *TenantApplicationStatusUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TenantApplicationStatusUpdateOne) SetNillableIsActive(v *bool) *TenantApplicationStatusUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *TenantApplicationStatusUpdateOne) SetSortOrder(v int) *TenantApplicationStatusUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *TenantApplicationStatusUpdateOne) SetNillableSortOrder(v *int) *TenantApplicationStatusUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *TenantApplicationStatusUpdateOne) AddSortOrder(v int) *TenantApplicationStatusUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetActionCode sets the "action_code" field.
func (_u *TenantApplicationStatusUpdateOne) SetActionCode(v string) *TenantApplicationStatusUpdateOne {
	_u.mutation.SetActionCode(v)
	return _u
}

// SetNillableActionCode sets the "action_code" field if the given value is not nil.
func (_u *TenantApplicationStatusUpdateOne) SetNillableActionCode(v *string) *TenantApplicationStatusUpdateOne {
	if v != nil {
		_u.SetActionCode(*v)
	}
	return _u
}

// ClearActionCode clears the value of the "action_code" field.
func (_u *TenantApplicationStatusUpdateOne) ClearActionCode() *TenantApplicationStatusUpdateOne {
	_u.mutation.ClearActionCode()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TenantApplicationStatusUpdateOne) SetUpdatedAt(v time.Time) *TenantApplicationStatusUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TenantApplicationStatusMutation object of the builder.
func (_u *TenantApplicationStatusUpdateOne) Mutation() *TenantApplicationStatusMutation {
	return _u.mutation
}

// Where appends a list predicates to the TenantApplicationStatusUpdate builder.
func (_u *TenantApplicationStatusUpdateOne) Where(ps ...predicate.TenantApplicationStatus) *TenantApplicationStatusUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TenantApplicationStatusUpdateOne) Select(field string, fields ...string) *TenantApplicationStatusUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TenantApplicationStatus entity.
func (_u *TenantApplicationStatusUpdateOne) Save(ctx context.Context) (*TenantApplicationStatus, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantApplicationStatusUpdateOne) SaveX(ctx context.Context) *TenantApplicationStatus {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TenantApplicationStatusUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantApplicationStatusUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TenantApplicationStatusUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tenantapplicationstatus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TenantApplicationStatusUpdateOne) sqlSave(ctx context.Context) (_node *TenantApplicationStatus, err error) {
	_spec := sqlgraph.NewUpdateSpec(tenantapplicationstatus.Table, tenantapplicationstatus.Columns, sqlgraph.NewFieldSpec(tenantapplicationstatus.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TenantApplicationStatus.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tenantapplicationstatus.FieldID)
		for _, f := range fields {
			if !tenantapplicationstatus.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tenantapplicationstatus.FieldID {
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
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(tenantapplicationstatus.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(tenantapplicationstatus.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(tenantapplicationstatus.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(tenantapplicationstatus.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActionCode(); ok {
		_spec.SetField(tenantapplicationstatus.FieldActionCode, field.TypeString, value)
	}
	if _u.mutation.ActionCodeCleared() {
		_spec.ClearField(tenantapplicationstatus.FieldActionCode, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tenantapplicationstatus.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TenantApplicationStatus{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenantapplicationstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
