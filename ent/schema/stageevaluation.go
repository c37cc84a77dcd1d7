package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageEvaluation holds the schema definition for the StageEvaluation entity:
// a stage-to-template binding. When an application enters the stage, an
// evaluation instance is auto-created for each active binding.
type StageEvaluation struct {
	ent.Schema
}

// Fields of the StageEvaluation.
func (StageEvaluation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("stage_id").
			Immutable(),
		field.String("template_id").
			Immutable(),
		field.Bool("auto_create").
			Default(true),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the StageEvaluation.
func (StageEvaluation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "stage_id", "template_id").
			Unique(),
		index.Fields("stage_id", "is_active"),
	}
}
