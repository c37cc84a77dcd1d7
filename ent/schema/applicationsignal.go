package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ameyzing09/rtr-api-sub000/pkg/models"
)

// ApplicationSignal holds the schema definition for the ApplicationSignal
// entity. Signals are append-only: writing a key supersedes the previous
// current row instead of updating it, so history is preserved. At most one
// row per (application_id, signal_key) has superseded_at IS NULL; that
// partial unique index lives in raw SQL (see pkg/database migrations).
// superseded_at and superseded_by are the only fields ever written after
// insert, and only once.
type ApplicationSignal struct {
	ent.Schema
}

// Fields of the ApplicationSignal.
func (ApplicationSignal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("application_id").
			Immutable(),
		field.String("signal_key").
			Immutable(),
		field.Enum("signal_type").
			GoType(models.SignalType("")).
			Immutable(),
		field.Bool("value_boolean").
			Optional().
			Nillable().
			Immutable(),
		field.Float("value_numeric").
			Optional().
			Nillable().
			Immutable(),
		field.String("value_text").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("source_type").
			GoType(models.SignalSource("")).
			Immutable(),
		field.String("source_id").
			Optional().
			Immutable().
			Comment("Producer reference, e.g. the evaluation instance that emitted the signal"),
		field.String("note").
			Optional().
			Immutable(),
		field.String("set_by").
			Optional().
			Immutable(),
		field.Time("set_at").
			Default(time.Now).
			Immutable(),
		field.Time("superseded_at").
			Optional().
			Nillable(),
		field.String("superseded_by").
			Optional().
			Nillable().
			Comment("ID of the signal row that replaced this one"),
	}
}

// Indexes of the ApplicationSignal.
func (ApplicationSignal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("application_id", "signal_key"),
		index.Fields("tenant_id", "application_id"),
	}
}
