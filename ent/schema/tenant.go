package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Tenant holds the schema definition for the Tenant entity.
type Tenant struct {
	ent.Schema
}

// Fields of the Tenant.
func (Tenant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("owner_user_id").
			Optional().
			Comment("Fallback HR participant for auto-created evaluations"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
