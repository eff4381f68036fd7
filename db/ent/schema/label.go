package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Label is one label class of a project.
type Label struct{ ent.Schema }

func (Label) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "labels"},
	}
}

func (Label) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id"),
		field.String("name").NotEmpty(),
	}
}

func (Label) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("labels").
			Field("project_id").
			Required().
			Unique(),
		edge.To("decisions", DataLabel.Type),
		edge.To("predictions", DataPrediction.Type),
	}
}

func (Label) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "name").Unique(),
	}
}
