// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// Classifier applies equality check predicate on the "classifier" field. It's identical to ClassifierEQ.
func Classifier(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldClassifier, v))
}

// CurrentTrainingSet applies equality check predicate on the "current_training_set" field. It's identical to CurrentTrainingSetEQ.
func CurrentTrainingSet(v int) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCurrentTrainingSet, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldName, v))
}

// ClassifierEQ applies the EQ predicate on the "classifier" field.
func ClassifierEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldClassifier, v))
}

// ClassifierNEQ applies the NEQ predicate on the "classifier" field.
func ClassifierNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldClassifier, v))
}

// ClassifierIn applies the In predicate on the "classifier" field.
func ClassifierIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldClassifier, vs...))
}

// ClassifierNotIn applies the NotIn predicate on the "classifier" field.
func ClassifierNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldClassifier, vs...))
}

// ClassifierGT applies the GT predicate on the "classifier" field.
func ClassifierGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldClassifier, v))
}

// ClassifierGTE applies the GTE predicate on the "classifier" field.
func ClassifierGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldClassifier, v))
}

// ClassifierLT applies the LT predicate on the "classifier" field.
func ClassifierLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldClassifier, v))
}

// ClassifierLTE applies the LTE predicate on the "classifier" field.
func ClassifierLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldClassifier, v))
}

// ClassifierContains applies the Contains predicate on the "classifier" field.
func ClassifierContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldClassifier, v))
}

// ClassifierHasPrefix applies the HasPrefix predicate on the "classifier" field.
func ClassifierHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldClassifier, v))
}

// ClassifierHasSuffix applies the HasSuffix predicate on the "classifier" field.
func ClassifierHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldClassifier, v))
}

// ClassifierEqualFold applies the EqualFold predicate on the "classifier" field.
func ClassifierEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldClassifier, v))
}

// ClassifierContainsFold applies the ContainsFold predicate on the "classifier" field.
func ClassifierContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldClassifier, v))
}

// CurrentTrainingSetEQ applies the EQ predicate on the "current_training_set" field.
func CurrentTrainingSetEQ(v int) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCurrentTrainingSet, v))
}

// CurrentTrainingSetNEQ applies the NEQ predicate on the "current_training_set" field.
func CurrentTrainingSetNEQ(v int) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCurrentTrainingSet, v))
}

// CurrentTrainingSetIn applies the In predicate on the "current_training_set" field.
func CurrentTrainingSetIn(vs ...int) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCurrentTrainingSet, vs...))
}

// CurrentTrainingSetNotIn applies the NotIn predicate on the "current_training_set" field.
func CurrentTrainingSetNotIn(vs ...int) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCurrentTrainingSet, vs...))
}

// CurrentTrainingSetGT applies the GT predicate on the "current_training_set" field.
func CurrentTrainingSetGT(v int) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCurrentTrainingSet, v))
}

// CurrentTrainingSetGTE applies the GTE predicate on the "current_training_set" field.
func CurrentTrainingSetGTE(v int) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCurrentTrainingSet, v))
}

// CurrentTrainingSetLT applies the LT predicate on the "current_training_set" field.
func CurrentTrainingSetLT(v int) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCurrentTrainingSet, v))
}

// CurrentTrainingSetLTE applies the LTE predicate on the "current_training_set" field.
func CurrentTrainingSetLTE(v int) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCurrentTrainingSet, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasData applies the HasEdge predicate on the "data" edge.
func HasData() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DataTable, DataColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDataWith applies the HasEdge predicate on the "data" edge with a given conditions (other predicates).
func HasDataWith(preds ...predicate.Data) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newDataStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLabels applies the HasEdge predicate on the "labels" edge.
func HasLabels() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LabelsTable, LabelsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLabelsWith applies the HasEdge predicate on the "labels" edge with a given conditions (other predicates).
func HasLabelsWith(preds ...predicate.Label) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newLabelsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQueues applies the HasEdge predicate on the "queues" edge.
func HasQueues() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QueuesTable, QueuesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQueuesWith applies the HasEdge predicate on the "queues" edge with a given conditions (other predicates).
func HasQueuesWith(preds ...predicate.Queue) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newQueuesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasModels applies the HasEdge predicate on the "models" edge.
func HasModels() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ModelsTable, ModelsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasModelsWith applies the HasEdge predicate on the "models" edge with a given conditions (other predicates).
func HasModelsWith(preds ...predicate.Model) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newModelsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
