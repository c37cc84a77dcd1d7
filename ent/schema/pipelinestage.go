package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// PipelineStage holds the schema definition for the PipelineStage entity.
// Stages are ordered steps within a pipeline; order_index is unique per
// pipeline. Once any application is attached to a pipeline its stage list
// is frozen.
type PipelineStage struct {
	ent.Schema
}

// Fields of the PipelineStage.
func (PipelineStage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("pipeline_id").
			Immutable(),
		field.String("name"),
		field.Enum("stage_type").
			GoType(models.StageType("")).
			Default(string(models.StageScreening)),
		field.Int("order_index").
			Comment("1-based position within the pipeline"),
		field.String("conducted_by").
			Optional().
			Comment("Label of who runs the stage; HR stages get an HR participant on auto-created evaluations"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PipelineStage.
func (PipelineStage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pipeline", Pipeline.Type).
			Ref("stages").
			Field("pipeline_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PipelineStage.
func (PipelineStage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pipeline_id", "order_index").
			Unique(),
	}
}
