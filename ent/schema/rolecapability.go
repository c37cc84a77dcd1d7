package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// RoleCapability holds the schema definition for the RoleCapability entity:
// a single capability grant for a role within a tenant. Wildcard grants use
// a trailing "*" segment, e.g. "feedback:*".
type RoleCapability struct {
	ent.Schema
}

// Fields of the RoleCapability.
func (RoleCapability) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.Enum("role").
			GoType(models.Role("")).
			Immutable(),
		field.String("capability").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the RoleCapability.
func (RoleCapability) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "role", "capability").
			Unique(),
		index.Fields("tenant_id", "role"),
	}
}
