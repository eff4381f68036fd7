package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Data is one unit of annotatable work. Rows are immutable; the integer id
// provides the total order the feature-matrix row mapping depends on.
type Data struct{ ent.Schema }

func (Data) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "data"},
	}
}

func (Data) Fields() []ent.Field {
	return []ent.Field{
		// explicit FK so queries can filter without a join
		field.Int("project_id"),
		field.String("text").NotEmpty().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (Data) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY data -> ONE project
		edge.From("project", Project.Type).
			Ref("data").
			Field("project_id").
			Required().
			Unique(),
		edge.To("queue_entries", DataQueue.Type),
		edge.To("assignments", AssignedData.Type),
		edge.To("decisions", DataLabel.Type),
		edge.To("uncertainties", DataUncertainty.Type),
		edge.To("predictions", DataPrediction.Type),
	}
}

func (Data) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
	}
}
