// Code generated by ent, DO NOT EDIT.

package model

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the model type in the database.
	Label = "model"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldPath holds the string denoting the path field in the database.
	FieldPath = "path"
	// FieldTrainingSet holds the string denoting the training_set field in the database.
	FieldTrainingSet = "training_set"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeUncertainties holds the string denoting the uncertainties edge name in mutations.
	EdgeUncertainties = "uncertainties"
	// EdgePredictions holds the string denoting the predictions edge name in mutations.
	EdgePredictions = "predictions"
	// Table holds the table name of the model in the database.
	Table = "models"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "models"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// UncertaintiesTable is the table that holds the uncertainties relation/edge.
	UncertaintiesTable = "data_uncertainties"
	// UncertaintiesInverseTable is the table name for the DataUncertainty entity.
	// It exists in this package in order to avoid circular dependency with the "datauncertainty" package.
	UncertaintiesInverseTable = "data_uncertainties"
	// UncertaintiesColumn is the table column denoting the uncertainties relation/edge.
	UncertaintiesColumn = "model_id"
	// PredictionsTable is the table that holds the predictions relation/edge.
	PredictionsTable = "data_predictions"
	// PredictionsInverseTable is the table name for the DataPrediction entity.
	// It exists in this package in order to avoid circular dependency with the "dataprediction" package.
	PredictionsInverseTable = "data_predictions"
	// PredictionsColumn is the table column denoting the predictions relation/edge.
	PredictionsColumn = "model_id"
)

// Columns holds all SQL columns for model fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldPath,
	FieldTrainingSet,
	FieldCreatedAt,
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

var (
	// PathValidator is a validator for the "path" field. It is called by the builders before save.
	PathValidator func(string) error
	// TrainingSetValidator is a validator for the "training_set" field. It is called by the builders before save.
	TrainingSetValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Model queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByPath orders the results by the path field.
func ByPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPath, opts...).ToFunc()
}

// ByTrainingSet orders the results by the training_set field.
func ByTrainingSet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrainingSet, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByUncertaintiesCount orders the results by uncertainties count.
func ByUncertaintiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUncertaintiesStep(), opts...)
	}
}

// ByUncertainties orders the results by uncertainties terms.
func ByUncertainties(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUncertaintiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPredictionsCount orders the results by predictions count.
func ByPredictionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPredictionsStep(), opts...)
	}
}

// ByPredictions orders the results by predictions terms.
func ByPredictions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPredictionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newUncertaintiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UncertaintiesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UncertaintiesTable, UncertaintiesColumn),
	)
}
func newPredictionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PredictionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PredictionsTable, PredictionsColumn),
	)
}
