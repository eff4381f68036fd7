// Code generated by ent, DO NOT EDIT.

package datalabel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldLTE(FieldID, id))
}

// DataID applies equality check predicate on the "data_id" field. It's identical to DataIDEQ.
func DataID(v int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldEQ(FieldDataID, v))
}

// LabelID applies equality check predicate on the "label_id" field. It's identical to LabelIDEQ.
func LabelID(v int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldEQ(FieldLabelID, v))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldEQ(FieldProfileID, v))
}

// TrainingSet applies equality check predicate on the "training_set" field. It's identical to TrainingSetEQ.
func TrainingSet(v int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldEQ(FieldTrainingSet, v))
}

// LabeledAt applies equality check predicate on the "labeled_at" field. It's identical to LabeledAtEQ.
func LabeledAt(v time.Time) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldEQ(FieldLabeledAt, v))
}

// DataIDEQ applies the EQ predicate on the "data_id" field.
func DataIDEQ(v int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldEQ(FieldDataID, v))
}

// DataIDNEQ applies the NEQ predicate on the "data_id" field.
func DataIDNEQ(v int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldNEQ(FieldDataID, v))
}

// DataIDIn applies the In predicate on the "data_id" field.
func DataIDIn(vs ...int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldIn(FieldDataID, vs...))
}

// DataIDNotIn applies the NotIn predicate on the "data_id" field.
func DataIDNotIn(vs ...int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldNotIn(FieldDataID, vs...))
}

// LabelIDEQ applies the EQ predicate on the "label_id" field.
func LabelIDEQ(v int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldEQ(FieldLabelID, v))
}

// LabelIDNEQ applies the NEQ predicate on the "label_id" field.
func LabelIDNEQ(v int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldNEQ(FieldLabelID, v))
}

// LabelIDIn applies the In predicate on the "label_id" field.
func LabelIDIn(vs ...int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldIn(FieldLabelID, vs...))
}

// LabelIDNotIn applies the NotIn predicate on the "label_id" field.
func LabelIDNotIn(vs ...int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldNotIn(FieldLabelID, vs...))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldNotIn(FieldProfileID, vs...))
}

// TrainingSetEQ applies the EQ predicate on the "training_set" field.
func TrainingSetEQ(v int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldEQ(FieldTrainingSet, v))
}

// TrainingSetNEQ applies the NEQ predicate on the "training_set" field.
func TrainingSetNEQ(v int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldNEQ(FieldTrainingSet, v))
}

// TrainingSetIn applies the In predicate on the "training_set" field.
func TrainingSetIn(vs ...int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldIn(FieldTrainingSet, vs...))
}

// TrainingSetNotIn applies the NotIn predicate on the "training_set" field.
func TrainingSetNotIn(vs ...int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldNotIn(FieldTrainingSet, vs...))
}

// TrainingSetGT applies the GT predicate on the "training_set" field.
func TrainingSetGT(v int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldGT(FieldTrainingSet, v))
}

// TrainingSetGTE applies the GTE predicate on the "training_set" field.
func TrainingSetGTE(v int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldGTE(FieldTrainingSet, v))
}

// TrainingSetLT applies the LT predicate on the "training_set" field.
func TrainingSetLT(v int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldLT(FieldTrainingSet, v))
}

// TrainingSetLTE applies the LTE predicate on the "training_set" field.
func TrainingSetLTE(v int) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldLTE(FieldTrainingSet, v))
}

// LabeledAtEQ applies the EQ predicate on the "labeled_at" field.
func LabeledAtEQ(v time.Time) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldEQ(FieldLabeledAt, v))
}

// LabeledAtNEQ applies the NEQ predicate on the "labeled_at" field.
func LabeledAtNEQ(v time.Time) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldNEQ(FieldLabeledAt, v))
}

// LabeledAtIn applies the In predicate on the "labeled_at" field.
func LabeledAtIn(vs ...time.Time) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldIn(FieldLabeledAt, vs...))
}

// LabeledAtNotIn applies the NotIn predicate on the "labeled_at" field.
func LabeledAtNotIn(vs ...time.Time) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldNotIn(FieldLabeledAt, vs...))
}

// LabeledAtGT applies the GT predicate on the "labeled_at" field.
func LabeledAtGT(v time.Time) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldGT(FieldLabeledAt, v))
}

// LabeledAtGTE applies the GTE predicate on the "labeled_at" field.
func LabeledAtGTE(v time.Time) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldGTE(FieldLabeledAt, v))
}

// LabeledAtLT applies the LT predicate on the "labeled_at" field.
func LabeledAtLT(v time.Time) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldLT(FieldLabeledAt, v))
}

// LabeledAtLTE applies the LTE predicate on the "labeled_at" field.
func LabeledAtLTE(v time.Time) predicate.DataLabel {
	return predicate.DataLabel(sql.FieldLTE(FieldLabeledAt, v))
}

// HasData applies the HasEdge predicate on the "data" edge.
func HasData() predicate.DataLabel {
	return predicate.DataLabel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DataTable, DataColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDataWith applies the HasEdge predicate on the "data" edge with a given conditions (other predicates).
func HasDataWith(preds ...predicate.Data) predicate.DataLabel {
	return predicate.DataLabel(func(s *sql.Selector) {
		step := newDataStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLabel applies the HasEdge predicate on the "label" edge.
func HasLabel() predicate.DataLabel {
	return predicate.DataLabel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LabelTable, LabelColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLabelWith applies the HasEdge predicate on the "label" edge with a given conditions (other predicates).
func HasLabelWith(preds ...predicate.Label) predicate.DataLabel {
	return predicate.DataLabel(func(s *sql.Selector) {
		step := newLabelStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.DataLabel {
	return predicate.DataLabel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.DataLabel {
	return predicate.DataLabel(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DataLabel) predicate.DataLabel {
	return predicate.DataLabel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DataLabel) predicate.DataLabel {
	return predicate.DataLabel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DataLabel) predicate.DataLabel {
	return predicate.DataLabel(sql.NotPredicates(p))
}
