package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DataQueue is the current unassigned membership of a queue. A row is
// deleted the moment its item is labeled; assignment hides the item from the
// fast index without touching this table.
type DataQueue struct{ ent.Schema }

func (DataQueue) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "data_queues"},
	}
}

func (DataQueue) Fields() []ent.Field {
	return []ent.Field{
		field.Int("data_id"),
		field.Int("queue_id"),
	}
}

func (DataQueue) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("data", Data.Type).
			Ref("queue_entries").
			Field("data_id").
			Required().
			Unique(),
		edge.From("queue", Queue.Type).
			Ref("entries").
			Field("queue_id").
			Required().
			Unique(),
	}
}

func (DataQueue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("data_id", "queue_id").Unique(),
		index.Fields("queue_id"),
	}
}
