package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// EvaluationInstance holds the schema definition for the EvaluationInstance
// entity: one evaluation of one application against a template, filled in by
// one or more participants. The (tenant, application, template, stage) unique
// index makes stage auto-creation idempotent.
type EvaluationInstance struct {
	ent.Schema
}

// Fields of the EvaluationInstance.
func (EvaluationInstance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("application_id").
			Immutable(),
		field.String("stage_id").
			Optional().
			Immutable().
			Comment("Stage the evaluation was created for, when stage-bound"),
		field.String("template_id").
			Immutable(),
		field.Int("template_version").
			Immutable().
			Comment("Version of the template at creation time"),
		field.Enum("status").
			GoType(models.EvaluationStatus("")).
			Default(string(models.EvaluationPending)),
		field.Bool("force_completed").
			Default(false),
		field.String("force_note").
			Optional(),
		field.String("completed_by").
			Optional(),
		field.String("created_by").
			Optional().
			Immutable(),
		field.Time("due_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the EvaluationInstance.
func (EvaluationInstance) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("participants", EvaluationParticipant.Type),
		edge.To("responses", EvaluationResponse.Type),
	}
}

// Indexes of the EvaluationInstance.
func (EvaluationInstance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "application_id", "template_id", "stage_id").
			Unique(),
		index.Fields("application_id", "stage_id"),
		index.Fields("tenant_id", "status"),
	}
}
