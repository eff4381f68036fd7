package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DataUncertainty holds the three priority metrics computed for one item
// from one model generation. Rows from earlier models stay around but only
// the newest model's rows are consulted for ranking.
type DataUncertainty struct{ ent.Schema }

func (DataUncertainty) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "data_uncertainties"},
	}
}

func (DataUncertainty) Fields() []ent.Field {
	return []ent.Field{
		field.Int("data_id"),
		field.Int("model_id"),
		field.Float("least_confident"),
		field.Float("margin"),
		field.Float("entropy"),
	}
}

func (DataUncertainty) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("data", Data.Type).
			Ref("uncertainties").
			Field("data_id").
			Required().
			Unique(),
		edge.From("model", Model.Type).
			Ref("uncertainties").
			Field("model_id").
			Required().
			Unique(),
	}
}

func (DataUncertainty) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("data_id", "model_id").Unique(),
		index.Fields("model_id"),
	}
}
