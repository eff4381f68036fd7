// Code generated by ent, DO NOT EDIT.

package datauncertainty

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldLTE(FieldID, id))
}

// DataID applies equality check predicate on the "data_id" field. It's identical to DataIDEQ.
func DataID(v int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldEQ(FieldDataID, v))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldEQ(FieldModelID, v))
}

// LeastConfident applies equality check predicate on the "least_confident" field. It's identical to LeastConfidentEQ.
func LeastConfident(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldEQ(FieldLeastConfident, v))
}

// Margin applies equality check predicate on the "margin" field. It's identical to MarginEQ.
func Margin(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldEQ(FieldMargin, v))
}

// Entropy applies equality check predicate on the "entropy" field. It's identical to EntropyEQ.
func Entropy(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldEQ(FieldEntropy, v))
}

// DataIDEQ applies the EQ predicate on the "data_id" field.
func DataIDEQ(v int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldEQ(FieldDataID, v))
}

// DataIDNEQ applies the NEQ predicate on the "data_id" field.
func DataIDNEQ(v int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldNEQ(FieldDataID, v))
}

// DataIDIn applies the In predicate on the "data_id" field.
func DataIDIn(vs ...int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldIn(FieldDataID, vs...))
}

// DataIDNotIn applies the NotIn predicate on the "data_id" field.
func DataIDNotIn(vs ...int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldNotIn(FieldDataID, vs...))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...int) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldNotIn(FieldModelID, vs...))
}

// LeastConfidentEQ applies the EQ predicate on the "least_confident" field.
func LeastConfidentEQ(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldEQ(FieldLeastConfident, v))
}

// LeastConfidentNEQ applies the NEQ predicate on the "least_confident" field.
func LeastConfidentNEQ(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldNEQ(FieldLeastConfident, v))
}

// LeastConfidentIn applies the In predicate on the "least_confident" field.
func LeastConfidentIn(vs ...float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldIn(FieldLeastConfident, vs...))
}

// LeastConfidentNotIn applies the NotIn predicate on the "least_confident" field.
func LeastConfidentNotIn(vs ...float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldNotIn(FieldLeastConfident, vs...))
}

// LeastConfidentGT applies the GT predicate on the "least_confident" field.
func LeastConfidentGT(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldGT(FieldLeastConfident, v))
}

// LeastConfidentGTE applies the GTE predicate on the "least_confident" field.
func LeastConfidentGTE(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldGTE(FieldLeastConfident, v))
}

// LeastConfidentLT applies the LT predicate on the "least_confident" field.
func LeastConfidentLT(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldLT(FieldLeastConfident, v))
}

// LeastConfidentLTE applies the LTE predicate on the "least_confident" field.
func LeastConfidentLTE(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldLTE(FieldLeastConfident, v))
}

// MarginEQ applies the EQ predicate on the "margin" field.
func MarginEQ(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldEQ(FieldMargin, v))
}

// MarginNEQ applies the NEQ predicate on the "margin" field.
func MarginNEQ(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldNEQ(FieldMargin, v))
}

// MarginIn applies the In predicate on the "margin" field.
func MarginIn(vs ...float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldIn(FieldMargin, vs...))
}

// MarginNotIn applies the NotIn predicate on the "margin" field.
func MarginNotIn(vs ...float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldNotIn(FieldMargin, vs...))
}

// MarginGT applies the GT predicate on the "margin" field.
func MarginGT(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldGT(FieldMargin, v))
}

// MarginGTE applies the GTE predicate on the "margin" field.
func MarginGTE(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldGTE(FieldMargin, v))
}

// MarginLT applies the LT predicate on the "margin" field.
func MarginLT(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldLT(FieldMargin, v))
}

// MarginLTE applies the LTE predicate on the "margin" field.
func MarginLTE(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldLTE(FieldMargin, v))
}

// EntropyEQ applies the EQ predicate on the "entropy" field.
func EntropyEQ(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldEQ(FieldEntropy, v))
}

// EntropyNEQ applies the NEQ predicate on the "entropy" field.
func EntropyNEQ(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldNEQ(FieldEntropy, v))
}

// EntropyIn applies the In predicate on the "entropy" field.
func EntropyIn(vs ...float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldIn(FieldEntropy, vs...))
}

// EntropyNotIn applies the NotIn predicate on the "entropy" field.
func EntropyNotIn(vs ...float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldNotIn(FieldEntropy, vs...))
}

// EntropyGT applies the GT predicate on the "entropy" field.
func EntropyGT(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldGT(FieldEntropy, v))
}

// EntropyGTE applies the GTE predicate on the "entropy" field.
func EntropyGTE(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldGTE(FieldEntropy, v))
}

// EntropyLT applies the LT predicate on the "entropy" field.
func EntropyLT(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldLT(FieldEntropy, v))
}

// EntropyLTE applies the LTE predicate on the "entropy" field.
func EntropyLTE(v float64) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.FieldLTE(FieldEntropy, v))
}

// HasData applies the HasEdge predicate on the "data" edge.
func HasData() predicate.DataUncertainty {
	return predicate.DataUncertainty(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DataTable, DataColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDataWith applies the HasEdge predicate on the "data" edge with a given conditions (other predicates).
func HasDataWith(preds ...predicate.Data) predicate.DataUncertainty {
	return predicate.DataUncertainty(func(s *sql.Selector) {
		step := newDataStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasModel applies the HasEdge predicate on the "model" edge.
func HasModel() predicate.DataUncertainty {
	return predicate.DataUncertainty(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ModelTable, ModelColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasModelWith applies the HasEdge predicate on the "model" edge with a given conditions (other predicates).
func HasModelWith(preds ...predicate.Model) predicate.DataUncertainty {
	return predicate.DataUncertainty(func(s *sql.Selector) {
		step := newModelStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DataUncertainty) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DataUncertainty) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DataUncertainty) predicate.DataUncertainty {
	return predicate.DataUncertainty(sql.NotPredicates(p))
}
