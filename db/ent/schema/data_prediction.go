package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DataPrediction stores one per-class probability from a model run. There
// are #classes rows per unlabeled item per model.
type DataPrediction struct{ ent.Schema }

func (DataPrediction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "data_predictions"},
	}
}

func (DataPrediction) Fields() []ent.Field {
	return []ent.Field{
		field.Int("data_id"),
		field.Int("model_id"),
		field.Int("label_id"),
		field.Float("probability"),
	}
}

func (DataPrediction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("data", Data.Type).
			Ref("predictions").
			Field("data_id").
			Required().
			Unique(),
		edge.From("model", Model.Type).
			Ref("predictions").
			Field("model_id").
			Required().
			Unique(),
		edge.From("label", Label.Type).
			Ref("predictions").
			Field("label_id").
			Required().
			Unique(),
	}
}

func (DataPrediction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("data_id", "model_id", "label_id").Unique(),
	}
}
