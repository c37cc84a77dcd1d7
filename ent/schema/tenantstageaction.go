package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// TenantStageAction holds the schema definition for the TenantStageAction
// entity: per-tenant, per-stage action configuration driving the decision
// engine (gates, signal conditions, stage advancement and resulting outcome).
type TenantStageAction struct {
	ent.Schema
}

// Fields of the TenantStageAction.
func (TenantStageAction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("stage_id").
			Immutable(),
		field.String("action_code"),
		field.String("display_label").
			Optional(),
		field.Enum("outcome_type").
			GoType(models.OutcomeType("")).
			Optional().
			Nillable().
			Comment("When set, a successful run replaces the application's outcome"),
		field.Bool("moves_to_next_stage").
			Default(false),
		field.Bool("is_terminal").
			Default(false),
		field.String("required_capability").
			Optional(),
		field.Bool("requires_feedback").
			Default(false),
		field.Bool("requires_notes").
			Default(false),
		field.JSON("signal_conditions", &models.SignalConditions{}).
			Optional(),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the TenantStageAction.
func (TenantStageAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "stage_id", "action_code").
			Unique(),
		index.Fields("tenant_id", "stage_id", "is_active"),
	}
}
