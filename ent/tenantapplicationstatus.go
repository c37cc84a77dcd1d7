// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/tenantapplicationstatus"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// TenantApplicationStatus is the model entity for the TenantApplicationStatus schema.
type TenantApplicationStatus struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// StatusCode holds the value of the "status_code" field.
	StatusCode string `json:"status_code,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// OutcomeType holds the value of the "outcome_type" field.
	OutcomeType models.OutcomeType `json:"outcome_type,omitempty"`
	// IsTerminal holds the value of the "is_terminal" field.
	IsTerminal bool `json:"is_terminal,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// SortOrder holds the value of the "sort_order" field.
	SortOrder int `json:"sort_order,omitempty"`
	// Action whose success transitions an application into this status
	ActionCode string `json:"action_code,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TenantApplicationStatus) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tenantapplicationstatus.FieldIsTerminal, tenantapplicationstatus.FieldIsActive:
			values[i] = new(sql.NullBool)
		case tenantapplicationstatus.FieldSortOrder:
			values[i] = new(sql.NullInt64)
		case tenantapplicationstatus.FieldID, tenantapplicationstatus.FieldTenantID, tenantapplicationstatus.FieldStatusCode, tenantapplicationstatus.FieldDisplayName, tenantapplicationstatus.FieldOutcomeType, tenantapplicationstatus.FieldActionCode:
			values[i] = new(sql.NullString)
		case tenantapplicationstatus.FieldCreatedAt, tenantapplicationstatus.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TenantApplicationStatus fields.
func (_m *TenantApplicationStatus) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tenantapplicationstatus.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tenantapplicationstatus.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case tenantapplicationstatus.FieldStatusCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_code", values[i])
			} else if value.Valid {
				_m.StatusCode = value.String
			}
		case tenantapplicationstatus.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case tenantapplicationstatus.FieldOutcomeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome_type", values[i])
			} else if value.Valid {
				_m.OutcomeType = models.OutcomeType(value.String)
			}
		case tenantapplicationstatus.FieldIsTerminal:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_terminal", values[i])
			} else if value.Valid {
				_m.IsTerminal = value.Bool
			}
		case tenantapplicationstatus.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case tenantapplicationstatus.FieldSortOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort_order", values[i])
			} else if value.Valid {
				_m.SortOrder = int(value.Int64)
			}
		case tenantapplicationstatus.FieldActionCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_code", values[i])
			} else if value.Valid {
				_m.ActionCode = value.String
			}
		case tenantapplicationstatus.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tenantapplicationstatus.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TenantApplicationStatus.
// This includes values selected through modifiers, order, etc.
func (_m *TenantApplicationStatus) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TenantApplicationStatus.
// Note that you need to call TenantApplicationStatus.Unwrap() before calling this method if this TenantApplicationStatus
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TenantApplicationStatus) Update() *TenantApplicationStatusUpdateOne {
	return NewTenantApplicationStatusClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TenantApplicationStatus entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TenantApplicationStatus) Unwrap() *TenantApplicationStatus {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TenantApplicationStatus is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TenantApplicationStatus) String() string {
	var builder strings.Builder
	builder.WriteString("TenantApplicationStatus(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("status_code=")
	builder.WriteString(_m.StatusCode)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("outcome_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutcomeType))
	builder.WriteString(", ")
	builder.WriteString("is_terminal=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsTerminal))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("sort_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SortOrder))
	builder.WriteString(", ")
	builder.WriteString("action_code=")
	builder.WriteString(_m.ActionCode)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TenantApplicationStatusSlice is a parsable slice of TenantApplicationStatus.
type TenantApplicationStatusSlice []*TenantApplicationStatus
