package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AssignedData is the durable claim of one labeler on one data item. The
// (data_id, profile_id) unique index is the serialization point that keeps
// double-assignment impossible at the durable layer.
type AssignedData struct{ ent.Schema }

func (AssignedData) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "assigned_data"},
	}
}

func (AssignedData) Fields() []ent.Field {
	return []ent.Field{
		field.Int("data_id"),
		field.UUID("profile_id", uuid.UUID{}),
		// queue the item was drawn from; release pushes it back there
		field.Int("queue_id"),
		field.Time("assigned_at").Default(time.Now),
	}
}

func (AssignedData) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("data", Data.Type).
			Ref("assignments").
			Field("data_id").
			Required().
			Unique(),
		edge.From("profile", Profile.Type).
			Ref("assignments").
			Field("profile_id").
			Required().
			Unique(),
		edge.From("queue", Queue.Type).
			Ref("assignments").
			Field("queue_id").
			Required().
			Unique(),
	}
}

func (AssignedData) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("data_id", "profile_id").Unique(),
		index.Fields("profile_id"),
	}
}
