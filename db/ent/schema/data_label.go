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

// DataLabel is a terminal labeling decision. training_set records the
// generation that was current when the decision was made; it never changes
// afterwards.
type DataLabel struct{ ent.Schema }

func (DataLabel) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "data_labels"},
	}
}

func (DataLabel) Fields() []ent.Field {
	return []ent.Field{
		field.Int("data_id"),
		field.Int("label_id"),
		field.UUID("profile_id", uuid.UUID{}),
		field.Int("training_set").NonNegative().Immutable(),
		field.Time("labeled_at").Default(time.Now),
	}
}

func (DataLabel) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("data", Data.Type).
			Ref("decisions").
			Field("data_id").
			Required().
			Unique(),
		edge.From("label", Label.Type).
			Ref("decisions").
			Field("label_id").
			Required().
			Unique(),
		edge.From("profile", Profile.Type).
			Ref("decisions").
			Field("profile_id").
			Required().
			Unique(),
	}
}

func (DataLabel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("data_id", "profile_id").Unique(),
		index.Fields("training_set"),
	}
}
