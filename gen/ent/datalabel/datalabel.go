// Code generated by ent, DO NOT EDIT.

package datalabel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the datalabel type in the database.
	Label = "data_label"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDataID holds the string denoting the data_id field in the database.
	FieldDataID = "data_id"
	// FieldLabelID holds the string denoting the label_id field in the database.
	FieldLabelID = "label_id"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldTrainingSet holds the string denoting the training_set field in the database.
	FieldTrainingSet = "training_set"
	// FieldLabeledAt holds the string denoting the labeled_at field in the database.
	FieldLabeledAt = "labeled_at"
	// EdgeData holds the string denoting the data edge name in mutations.
	EdgeData = "data"
	// EdgeLabel holds the string denoting the label edge name in mutations.
	EdgeLabel = "label"
	// EdgeProfile holds the string denoting the profile edge name in mutations.
	EdgeProfile = "profile"
	// Table holds the table name of the datalabel in the database.
	Table = "data_labels"
	// DataTable is the table that holds the data relation/edge.
	DataTable = "data_labels"
	// DataInverseTable is the table name for the Data entity.
	// It exists in this package in order to avoid circular dependency with the "data" package.
	DataInverseTable = "data"
	// DataColumn is the table column denoting the data relation/edge.
	DataColumn = "data_id"
	// LabelTable is the table that holds the label relation/edge.
	LabelTable = "data_labels"
	// LabelInverseTable is the table name for the Label entity.
	// It exists in this package in order to avoid circular dependency with the "label" package.
	LabelInverseTable = "labels"
	// LabelColumn is the table column denoting the label relation/edge.
	LabelColumn = "label_id"
	// ProfileTable is the table that holds the profile relation/edge.
	ProfileTable = "data_labels"
	// ProfileInverseTable is the table name for the Profile entity.
	// It exists in this package in order to avoid circular dependency with the "profile" package.
	ProfileInverseTable = "profiles"
	// ProfileColumn is the table column denoting the profile relation/edge.
	ProfileColumn = "profile_id"
)

// Columns holds all SQL columns for datalabel fields.
var Columns = []string{
	FieldID,
	FieldDataID,
	FieldLabelID,
	FieldProfileID,
	FieldTrainingSet,
	FieldLabeledAt,
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
	// TrainingSetValidator is a validator for the "training_set" field. It is called by the builders before save.
	TrainingSetValidator func(int) error
	// DefaultLabeledAt holds the default value on creation for the "labeled_at" field.
	DefaultLabeledAt func() time.Time
)

// OrderOption defines the ordering options for the DataLabel queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDataID orders the results by the data_id field.
func ByDataID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataID, opts...).ToFunc()
}

// ByLabelID orders the results by the label_id field.
func ByLabelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabelID, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByTrainingSet orders the results by the training_set field.
func ByTrainingSet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrainingSet, opts...).ToFunc()
}

// ByLabeledAt orders the results by the labeled_at field.
func ByLabeledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabeledAt, opts...).ToFunc()
}

// ByDataField orders the results by data field.
func ByDataField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDataStep(), sql.OrderByField(field, opts...))
	}
}

// ByLabelField orders the results by label field.
func ByLabelField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLabelStep(), sql.OrderByField(field, opts...))
	}
}

// ByProfileField orders the results by profile field.
func ByProfileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProfileStep(), sql.OrderByField(field, opts...))
	}
}
func newDataStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DataInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DataTable, DataColumn),
	)
}
func newLabelStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LabelInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LabelTable, LabelColumn),
	)
}
func newProfileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProfileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
	)
}
