package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvaluationResponse holds the schema definition for the EvaluationResponse
// entity: one participant's submitted values, keyed by signal key. Responses
// are immutable once written.
type EvaluationResponse struct {
	ent.Schema
}

// Fields of the EvaluationResponse.
func (EvaluationResponse) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("evaluation_id").
			Immutable(),
		field.String("participant_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.JSON("response_data", map[string]interface{}{}).
			Immutable().
			Comment("Signal key to typed literal, validated against the template schema"),
		field.Time("submitted_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EvaluationResponse.
func (EvaluationResponse) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("evaluation", EvaluationInstance.Type).
			Ref("responses").
			Field("evaluation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EvaluationResponse.
func (EvaluationResponse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("evaluation_id", "user_id").
			Unique(),
	}
}
