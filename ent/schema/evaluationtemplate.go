package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// EvaluationTemplate holds the schema definition for the EvaluationTemplate
// entity. Templates define the signal schema evaluators fill in. Once any
// instance references a template its schema is immutable: structural edits
// create a new version row and move is_latest.
type EvaluationTemplate struct {
	ent.Schema
}

// Fields of the EvaluationTemplate.
func (EvaluationTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("name"),
		field.String("description").
			Optional(),
		field.Enum("participant_type").
			GoType(models.ParticipantType("")).
			Default(string(models.ParticipantSingle)),
		field.JSON("signal_schema", []models.SignalField{}),
		field.Enum("default_aggregation").
			GoType(models.Aggregation("")).
			Optional().
			Nillable().
			Comment("Applied to schema fields that do not set their own aggregation"),
		field.Int("version").
			Default(1),
		field.Bool("is_latest").
			Default(true),
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

// Indexes of the EvaluationTemplate.
func (EvaluationTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "name", "version").
			Unique(),
		index.Fields("tenant_id", "is_active", "is_latest"),
	}
}
