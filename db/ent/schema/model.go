package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Model is one trained classifier per completed training generation. The
// path is an opaque reference; only the external trainer reads the blob.
type Model struct{ ent.Schema }

func (Model) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "models"},
	}
}

func (Model) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id"),
		field.String("path").NotEmpty(),
		field.Int("training_set").NonNegative(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Model) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("models").
			Field("project_id").
			Required().
			Unique(),
		edge.To("uncertainties", DataUncertainty.Type),
		edge.To("predictions", DataPrediction.Type),
	}
}

func (Model) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "training_set").Unique(),
	}
}
