// Code generated by ent, DO NOT EDIT.

package datauncertainty

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the datauncertainty type in the database.
	Label = "data_uncertainty"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDataID holds the string denoting the data_id field in the database.
	FieldDataID = "data_id"
	// FieldModelID holds the string denoting the model_id field in the database.
	FieldModelID = "model_id"
	// FieldLeastConfident holds the string denoting the least_confident field in the database.
	FieldLeastConfident = "least_confident"
	// FieldMargin holds the string denoting the margin field in the database.
	FieldMargin = "margin"
	// FieldEntropy holds the string denoting the entropy field in the database.
	FieldEntropy = "entropy"
	// EdgeData holds the string denoting the data edge name in mutations.
	EdgeData = "data"
	// EdgeModel holds the string denoting the model edge name in mutations.
	EdgeModel = "model"
	// Table holds the table name of the datauncertainty in the database.
	Table = "data_uncertainties"
	// DataTable is the table that holds the data relation/edge.
	DataTable = "data_uncertainties"
	// DataInverseTable is the table name for the Data entity.
	// It exists in this package in order to avoid circular dependency with the "data" package.
	DataInverseTable = "data"
	// DataColumn is the table column denoting the data relation/edge.
	DataColumn = "data_id"
	// ModelTable is the table that holds the model relation/edge.
	ModelTable = "data_uncertainties"
	// ModelInverseTable is the table name for the Model entity.
	// It exists in this package in order to avoid circular dependency with the "model" package.
	ModelInverseTable = "models"
	// ModelColumn is the table column denoting the model relation/edge.
	ModelColumn = "model_id"
)

// Columns holds all SQL columns for datauncertainty fields.
var Columns = []string{
	FieldID,
	FieldDataID,
	FieldModelID,
	FieldLeastConfident,
	FieldMargin,
	FieldEntropy,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the DataUncertainty queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDataID orders the results by the data_id field.
func ByDataID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataID, opts...).ToFunc()
}

// ByModelID orders the results by the model_id field.
func ByModelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelID, opts...).ToFunc()
}

// ByLeastConfident orders the results by the least_confident field.
func ByLeastConfident(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeastConfident, opts...).ToFunc()
}

// ByMargin orders the results by the margin field.
func ByMargin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMargin, opts...).ToFunc()
}

// ByEntropy orders the results by the entropy field.
func ByEntropy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntropy, opts...).ToFunc()
}

// ByDataField orders the results by data field.
func ByDataField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDataStep(), sql.OrderByField(field, opts...))
	}
}

// ByModelField orders the results by model field.
func ByModelField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newModelStep(), sql.OrderByField(field, opts...))
	}
}
func newDataStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DataInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DataTable, DataColumn),
	)
}
func newModelStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ModelInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ModelTable, ModelColumn),
	)
}
