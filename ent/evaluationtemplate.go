// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationtemplate"
	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// EvaluationTemplate is the model entity for the EvaluationTemplate schema.
type EvaluationTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// ParticipantType holds the value of the "participant_type" field.
	ParticipantType models.ParticipantType `json:"participant_type,omitempty"`
	// SignalSchema holds the value of the "signal_schema" field.
	SignalSchema []models.SignalField `json:"signal_schema,omitempty"`
	// Applied to schema fields that do not set their own aggregation
	DefaultAggregation *models.Aggregation `json:"default_aggregation,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// IsLatest holds the value of the "is_latest" field.
	IsLatest bool `json:"is_latest,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationtemplate.FieldSignalSchema:
			values[i] = new([]byte)
		case evaluationtemplate.FieldIsLatest, evaluationtemplate.FieldIsActive:
			values[i] = new(sql.NullBool)
		case evaluationtemplate.FieldVersion:
			values[i] = new(sql.NullInt64)
		case evaluationtemplate.FieldID, evaluationtemplate.FieldTenantID, evaluationtemplate.FieldName, evaluationtemplate.FieldDescription, evaluationtemplate.FieldParticipantType, evaluationtemplate.FieldDefaultAggregation:
			values[i] = new(sql.NullString)
		case evaluationtemplate.FieldCreatedAt, evaluationtemplate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationTemplate fields.
func (_m *EvaluationTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationtemplate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evaluationtemplate.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case evaluationtemplate.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case evaluationtemplate.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case evaluationtemplate.FieldParticipantType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_type", values[i])
			} else if value.Valid {
				_m.ParticipantType = models.ParticipantType(value.String)
			}
		case evaluationtemplate.FieldSignalSchema:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field signal_schema", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SignalSchema); err != nil {
					return fmt.Errorf("unmarshal field signal_schema: %w", err)
				}
			}
		case evaluationtemplate.FieldDefaultAggregation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_aggregation", values[i])
			} else if value.Valid {
				_m.DefaultAggregation = new(models.Aggregation)
				*_m.DefaultAggregation = models.Aggregation(value.String)
			}
		case evaluationtemplate.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case evaluationtemplate.FieldIsLatest:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_latest", values[i])
			} else if value.Valid {
				_m.IsLatest = value.Bool
			}
		case evaluationtemplate.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case evaluationtemplate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case evaluationtemplate.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EvaluationTemplate.
// Note that you need to call EvaluationTemplate.Unwrap() before calling this method if this EvaluationTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationTemplate) Update() *EvaluationTemplateUpdateOne {
	return NewEvaluationTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationTemplate) Unwrap() *EvaluationTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("participant_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParticipantType))
	builder.WriteString(", ")
	builder.WriteString("signal_schema=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignalSchema))
	builder.WriteString(", ")
	if v := _m.DefaultAggregation; v != nil {
		builder.WriteString("default_aggregation=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("is_latest=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsLatest))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationTemplates is a parsable slice of EvaluationTemplate.
type EvaluationTemplates []*EvaluationTemplate
