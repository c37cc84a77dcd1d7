package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("email"),
		field.String("full_name"),
		field.Enum("role").
			GoType(models.Role("")).
			Default(string(models.RoleInterviewer)),
		field.Bool("is_active").
			Default(true).
			Comment("Deactivated users keep their rows for audit but lose all capabilities"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "email").
			Unique(),
		index.Fields("tenant_id", "role"),
	}
}
