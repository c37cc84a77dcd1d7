package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageFeedback holds the schema definition for the StageFeedback entity:
// free-form feedback a user leaves on an application at a given stage.
// Actions configured with requires_feedback gate on rows in this table.
type StageFeedback struct {
	ent.Schema
}

// Annotations of the StageFeedback.
func (StageFeedback) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "stage_feedback"},
	}
}

// Fields of the StageFeedback.
func (StageFeedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("application_id").
			Immutable(),
		field.String("stage_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Text("comments").
			Immutable(),
		field.Int("rating").
			Optional().
			Nillable().
			Immutable().
			Comment("Optional 1-5 overall impression"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the StageFeedback.
func (StageFeedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("application_id", "stage_id"),
		index.Fields("tenant_id", "user_id"),
	}
}
