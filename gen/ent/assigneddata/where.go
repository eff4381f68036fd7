// Code generated by ent, DO NOT EDIT.

package assigneddata

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldLTE(FieldID, id))
}

// DataID applies equality check predicate on the "data_id" field. It's identical to DataIDEQ.
func DataID(v int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldEQ(FieldDataID, v))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldEQ(FieldProfileID, v))
}

// QueueID applies equality check predicate on the "queue_id" field. It's identical to QueueIDEQ.
func QueueID(v int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldEQ(FieldQueueID, v))
}

// AssignedAt applies equality check predicate on the "assigned_at" field. It's identical to AssignedAtEQ.
func AssignedAt(v time.Time) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldEQ(FieldAssignedAt, v))
}

// DataIDEQ applies the EQ predicate on the "data_id" field.
func DataIDEQ(v int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldEQ(FieldDataID, v))
}

// DataIDNEQ applies the NEQ predicate on the "data_id" field.
func DataIDNEQ(v int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldNEQ(FieldDataID, v))
}

// DataIDIn applies the In predicate on the "data_id" field.
func DataIDIn(vs ...int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldIn(FieldDataID, vs...))
}

// DataIDNotIn applies the NotIn predicate on the "data_id" field.
func DataIDNotIn(vs ...int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldNotIn(FieldDataID, vs...))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldNotIn(FieldProfileID, vs...))
}

// QueueIDEQ applies the EQ predicate on the "queue_id" field.
func QueueIDEQ(v int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldEQ(FieldQueueID, v))
}

// QueueIDNEQ applies the NEQ predicate on the "queue_id" field.
func QueueIDNEQ(v int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldNEQ(FieldQueueID, v))
}

// QueueIDIn applies the In predicate on the "queue_id" field.
func QueueIDIn(vs ...int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldIn(FieldQueueID, vs...))
}

// QueueIDNotIn applies the NotIn predicate on the "queue_id" field.
func QueueIDNotIn(vs ...int) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldNotIn(FieldQueueID, vs...))
}

// AssignedAtEQ applies the EQ predicate on the "assigned_at" field.
func AssignedAtEQ(v time.Time) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldEQ(FieldAssignedAt, v))
}

// AssignedAtNEQ applies the NEQ predicate on the "assigned_at" field.
func AssignedAtNEQ(v time.Time) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldNEQ(FieldAssignedAt, v))
}

// AssignedAtIn applies the In predicate on the "assigned_at" field.
func AssignedAtIn(vs ...time.Time) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldIn(FieldAssignedAt, vs...))
}

// AssignedAtNotIn applies the NotIn predicate on the "assigned_at" field.
func AssignedAtNotIn(vs ...time.Time) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldNotIn(FieldAssignedAt, vs...))
}

// AssignedAtGT applies the GT predicate on the "assigned_at" field.
func AssignedAtGT(v time.Time) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldGT(FieldAssignedAt, v))
}

// AssignedAtGTE applies the GTE predicate on the "assigned_at" field.
func AssignedAtGTE(v time.Time) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldGTE(FieldAssignedAt, v))
}

// AssignedAtLT applies the LT predicate on the "assigned_at" field.
func AssignedAtLT(v time.Time) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldLT(FieldAssignedAt, v))
}

// AssignedAtLTE applies the LTE predicate on the "assigned_at" field.
func AssignedAtLTE(v time.Time) predicate.AssignedData {
	return predicate.AssignedData(sql.FieldLTE(FieldAssignedAt, v))
}

// HasData applies the HasEdge predicate on the "data" edge.
func HasData() predicate.AssignedData {
	return predicate.AssignedData(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DataTable, DataColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDataWith applies the HasEdge predicate on the "data" edge with a given conditions (other predicates).
func HasDataWith(preds ...predicate.Data) predicate.AssignedData {
	return predicate.AssignedData(func(s *sql.Selector) {
		step := newDataStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.AssignedData {
	return predicate.AssignedData(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.AssignedData {
	return predicate.AssignedData(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQueue applies the HasEdge predicate on the "queue" edge.
func HasQueue() predicate.AssignedData {
	return predicate.AssignedData(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QueueTable, QueueColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQueueWith applies the HasEdge predicate on the "queue" edge with a given conditions (other predicates).
func HasQueueWith(preds ...predicate.Queue) predicate.AssignedData {
	return predicate.AssignedData(func(s *sql.Selector) {
		step := newQueueStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssignedData) predicate.AssignedData {
	return predicate.AssignedData(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssignedData) predicate.AssignedData {
	return predicate.AssignedData(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssignedData) predicate.AssignedData {
	return predicate.AssignedData(sql.NotPredicates(p))
}
