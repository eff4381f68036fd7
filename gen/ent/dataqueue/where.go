// Code generated by ent, DO NOT EDIT.

package dataqueue

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldLTE(FieldID, id))
}

// DataID applies equality check predicate on the "data_id" field. It's identical to DataIDEQ.
func DataID(v int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldEQ(FieldDataID, v))
}

// QueueID applies equality check predicate on the "queue_id" field. It's identical to QueueIDEQ.
func QueueID(v int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldEQ(FieldQueueID, v))
}

// DataIDEQ applies the EQ predicate on the "data_id" field.
func DataIDEQ(v int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldEQ(FieldDataID, v))
}

// DataIDNEQ applies the NEQ predicate on the "data_id" field.
func DataIDNEQ(v int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldNEQ(FieldDataID, v))
}

// DataIDIn applies the In predicate on the "data_id" field.
func DataIDIn(vs ...int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldIn(FieldDataID, vs...))
}

// DataIDNotIn applies the NotIn predicate on the "data_id" field.
func DataIDNotIn(vs ...int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldNotIn(FieldDataID, vs...))
}

// QueueIDEQ applies the EQ predicate on the "queue_id" field.
func QueueIDEQ(v int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldEQ(FieldQueueID, v))
}

// QueueIDNEQ applies the NEQ predicate on the "queue_id" field.
func QueueIDNEQ(v int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldNEQ(FieldQueueID, v))
}

// QueueIDIn applies the In predicate on the "queue_id" field.
func QueueIDIn(vs ...int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldIn(FieldQueueID, vs...))
}

// QueueIDNotIn applies the NotIn predicate on the "queue_id" field.
func QueueIDNotIn(vs ...int) predicate.DataQueue {
	return predicate.DataQueue(sql.FieldNotIn(FieldQueueID, vs...))
}

// HasData applies the HasEdge predicate on the "data" edge.
func HasData() predicate.DataQueue {
	return predicate.DataQueue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DataTable, DataColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDataWith applies the HasEdge predicate on the "data" edge with a given conditions (other predicates).
func HasDataWith(preds ...predicate.Data) predicate.DataQueue {
	return predicate.DataQueue(func(s *sql.Selector) {
		step := newDataStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQueue applies the HasEdge predicate on the "queue" edge.
func HasQueue() predicate.DataQueue {
	return predicate.DataQueue(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QueueTable, QueueColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQueueWith applies the HasEdge predicate on the "queue" edge with a given conditions (other predicates).
func HasQueueWith(preds ...predicate.Queue) predicate.DataQueue {
	return predicate.DataQueue(func(s *sql.Selector) {
		step := newQueueStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DataQueue) predicate.DataQueue {
	return predicate.DataQueue(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DataQueue) predicate.DataQueue {
	return predicate.DataQueue(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DataQueue) predicate.DataQueue {
	return predicate.DataQueue(sql.NotPredicates(p))
}
