package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/labelworks/annoqueue/constants"
	"github.com/labelworks/annoqueue/db/ent/schema/utils"
)

type Project struct{ ent.Schema }

func (Project) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "projects"},
	}
}

func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty(),
		field.String("classifier").
			Default(string(constants.ClassifierLogisticRegression)).
			Validate(utils.EnumValidator(constants.Classifiers()...)),
		// current training generation; labels record the value that was
		// current when they were created
		field.Int("current_training_set").Default(0).NonNegative(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("data", Data.Type),
		edge.To("labels", Label.Type),
		edge.To("queues", Queue.Type),
		edge.To("models", Model.Type),
	}
}
