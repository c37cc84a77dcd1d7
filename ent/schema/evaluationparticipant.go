package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// EvaluationParticipant holds the schema definition for the
// EvaluationParticipant entity: a user expected to respond to an evaluation.
type EvaluationParticipant struct {
	ent.Schema
}

// Fields of the EvaluationParticipant.
func (EvaluationParticipant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("evaluation_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("status").
			GoType(models.ParticipantStatus("")).
			Default(string(models.ParticipantPending)),
		field.Int("sequence").
			Default(0).
			Comment("Response order for SEQUENTIAL evaluations; ignored otherwise"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the EvaluationParticipant.
func (EvaluationParticipant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("evaluation", EvaluationInstance.Type).
			Ref("participants").
			Field("evaluation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EvaluationParticipant.
func (EvaluationParticipant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("evaluation_id", "user_id").
			Unique(),
		index.Fields("user_id", "status"),
	}
}
