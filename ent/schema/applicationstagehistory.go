package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ApplicationStageHistory holds the schema definition for the
// ApplicationStageHistory entity: append-only record of state transitions,
// including status changes that do not move stage. The event_hash unique
// index deduplicates replays of the same logical transition; writers insert
// with ON CONFLICT DO NOTHING.
type ApplicationStageHistory struct {
	ent.Schema
}

// Annotations of the ApplicationStageHistory.
func (ApplicationStageHistory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "application_stage_history"},
	}
}

// Fields of the ApplicationStageHistory.
func (ApplicationStageHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("application_id").
			Immutable(),
		field.String("action_code").
			Optional().
			Immutable().
			Comment("Configured action code, or the built-in ATTACH / MOVE_STAGE / UPDATE_STATUS"),
		field.String("from_stage_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Empty on the initial attach transition"),
		field.String("to_stage_id").
			Immutable(),
		field.Enum("outcome_type").
			GoType(models.OutcomeType("")).
			Immutable(),
		field.String("status_code").
			Immutable(),
		field.Bool("is_terminal").
			Immutable(),
		field.String("moved_by").
			Immutable(),
		field.String("event_hash").
			Unique().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ApplicationStageHistory.
func (ApplicationStageHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "application_id", "created_at"),
		index.Fields("application_id", "to_stage_id"),
	}
}
