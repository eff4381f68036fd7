package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Queue is a target-length pool of unassigned work items. A null profile_id
// makes it a shared project queue; otherwise it is personal to one labeler.
type Queue struct{ ent.Schema }

func (Queue) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "queues"},
	}
}

func (Queue) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id"),
		field.Int("length").Positive(),
		field.UUID("profile_id", uuid.UUID{}).Optional().Nillable(),
	}
}

func (Queue) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("queues").
			Field("project_id").
			Required().
			Unique(),
		edge.From("profile", Profile.Type).
			Ref("queues").
			Field("profile_id").
			Unique(),
		edge.To("entries", DataQueue.Type),
		edge.To("assignments", AssignedData.Type),
	}
}

func (Queue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "profile_id"),
	}
}
