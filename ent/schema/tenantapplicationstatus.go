package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// TenantApplicationStatus holds the schema definition for the
// TenantApplicationStatus entity: one row per tenant-customizable status in
// the catalog. status_code and outcome_type are frozen after creation.
type TenantApplicationStatus struct {
	ent.Schema
}

// Fields of the TenantApplicationStatus.
func (TenantApplicationStatus) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("status_code").
			Immutable(),
		field.String("display_name"),
		field.Enum("outcome_type").
			GoType(models.OutcomeType("")).
			Immutable(),
		field.Bool("is_terminal").
			Immutable(),
		field.Bool("is_active").
			Default(true),
		field.Int("sort_order").
			Default(0),
		field.String("action_code").
			Optional().
			Comment("Action whose success transitions an application into this status"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the TenantApplicationStatus.
func (TenantApplicationStatus) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "status_code").
			Unique(),
		index.Fields("tenant_id", "outcome_type", "sort_order"),
	}
}
