package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ActionExecutionLog holds the schema definition for the ActionExecutionLog
// entity: the append-only decision audit, one row per successful action.
// Every field is immutable; rows are never updated or deleted.
type ActionExecutionLog struct {
	ent.Schema
}

// Fields of the ActionExecutionLog.
func (ActionExecutionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("application_id").
			Immutable(),
		field.String("action_code").
			Immutable(),
		field.String("stage_id").
			Optional().
			Immutable().
			Comment("Stage the application was in when the action ran"),
		field.String("from_stage_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("to_stage_id").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("outcome_type").
			GoType(models.OutcomeType("")).
			Immutable(),
		field.Bool("is_terminal").
			Immutable(),
		field.String("status_code").
			Immutable().
			Comment("Status the application held after the action"),
		field.String("executed_by").
			Immutable(),
		field.String("decision_note").
			Optional().
			Immutable(),
		field.String("override_reason").
			Optional().
			Immutable(),
		field.String("reviewed_by").
			Optional().
			Immutable(),
		field.String("approved_by").
			Optional().
			Immutable(),
		field.JSON("signal_snapshot", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Current signal values at decision time, keyed by signal key"),
		field.JSON("conditions_evaluated", []models.ConditionResult{}).
			Optional().
			Immutable(),
		field.Time("executed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ActionExecutionLog.
func (ActionExecutionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "application_id", "executed_at"),
		index.Fields("tenant_id", "outcome_type"),
		index.Fields("application_id", "action_code"),
	}
}
