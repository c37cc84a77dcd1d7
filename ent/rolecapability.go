// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/rolecapability"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// RoleCapability is the model entity for the RoleCapability schema.
type RoleCapability struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Role holds the value of the "role" field.
	Role models.Role `json:"role,omitempty"`
	// Capability holds the value of the "capability" field.
	Capability string `json:"capability,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoleCapability) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rolecapability.FieldID, rolecapability.FieldTenantID, rolecapability.FieldRole, rolecapability.FieldCapability:
			values[i] = new(sql.NullString)
		case rolecapability.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoleCapability fields.
func (_m *RoleCapability) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rolecapability.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case rolecapability.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case rolecapability.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = models.Role(value.String)
			}
		case rolecapability.FieldCapability:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field capability", values[i])
			} else if value.Valid {
				_m.Capability = value.String
			}
		case rolecapability.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RoleCapability.
// This includes values selected through modifiers, order, etc.
func (_m *RoleCapability) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RoleCapability.
// Note that you need to call RoleCapability.Unwrap() before calling this method if this RoleCapability
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoleCapability) Update() *RoleCapabilityUpdateOne {
	return NewRoleCapabilityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoleCapability entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoleCapability) Unwrap() *RoleCapability {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoleCapability is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoleCapability) String() string {
	var builder strings.Builder
	builder.WriteString("RoleCapability(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("capability=")
	builder.WriteString(_m.Capability)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RoleCapabilities is a parsable slice of RoleCapability.
type RoleCapabilities []*RoleCapability
