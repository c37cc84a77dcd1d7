package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ApplicationPipelineState holds the schema definition for the
// ApplicationPipelineState entity: the single mutable row tracking where an
// application sits in its pipeline and what its current standing is. Action
// execution locks this row; is_terminal freezes it.
type ApplicationPipelineState struct {
	ent.Schema
}

// Fields of the ApplicationPipelineState.
func (ApplicationPipelineState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("application_id").
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("pipeline_id").
			Immutable(),
		field.String("current_stage_id"),
		field.String("status_code").
			Comment("Presentation code from the tenant status catalog"),
		field.Enum("outcome_type").
			GoType(models.OutcomeType("")).
			Default(string(models.OutcomeActive)),
		field.Bool("is_terminal").
			Default(false),
		field.Time("entered_stage_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ApplicationPipelineState.
func (ApplicationPipelineState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("application_id").
			Unique(),
		index.Fields("tenant_id", "pipeline_id", "current_stage_id"),
		index.Fields("tenant_id", "status_code"),
	}
}
