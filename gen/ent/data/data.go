// Code generated by ent, DO NOT EDIT.

package data

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the data type in the database.
	Label = "data"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeQueueEntries holds the string denoting the queue_entries edge name in mutations.
	EdgeQueueEntries = "queue_entries"
	// EdgeAssignments holds the string denoting the assignments edge name in mutations.
	EdgeAssignments = "assignments"
	// EdgeDecisions holds the string denoting the decisions edge name in mutations.
	EdgeDecisions = "decisions"
	// EdgeUncertainties holds the string denoting the uncertainties edge name in mutations.
	EdgeUncertainties = "uncertainties"
	// EdgePredictions holds the string denoting the predictions edge name in mutations.
	EdgePredictions = "predictions"
	// Table holds the table name of the data in the database.
	Table = "data"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "data"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// QueueEntriesTable is the table that holds the queue_entries relation/edge.
	QueueEntriesTable = "data_queues"
	// QueueEntriesInverseTable is the table name for the DataQueue entity.
	// It exists in this package in order to avoid circular dependency with the "dataqueue" package.
	QueueEntriesInverseTable = "data_queues"
	// QueueEntriesColumn is the table column denoting the queue_entries relation/edge.
	QueueEntriesColumn = "data_id"
	// AssignmentsTable is the table that holds the assignments relation/edge.
	AssignmentsTable = "assigned_data"
	// AssignmentsInverseTable is the table name for the AssignedData entity.
	// It exists in this package in order to avoid circular dependency with the "assigneddata" package.
	AssignmentsInverseTable = "assigned_data"
	// AssignmentsColumn is the table column denoting the assignments relation/edge.
	AssignmentsColumn = "data_id"
	// DecisionsTable is the table that holds the decisions relation/edge.
	DecisionsTable = "data_labels"
	// DecisionsInverseTable is the table name for the DataLabel entity.
	// It exists in this package in order to avoid circular dependency with the "datalabel" package.
	DecisionsInverseTable = "data_labels"
	// DecisionsColumn is the table column denoting the decisions relation/edge.
	DecisionsColumn = "data_id"
	// UncertaintiesTable is the table that holds the uncertainties relation/edge.
	UncertaintiesTable = "data_uncertainties"
	// UncertaintiesInverseTable is the table name for the DataUncertainty entity.
	// It exists in this package in order to avoid circular dependency with the "datauncertainty" package.
	UncertaintiesInverseTable = "data_uncertainties"
	// UncertaintiesColumn is the table column denoting the uncertainties relation/edge.
	UncertaintiesColumn = "data_id"
	// PredictionsTable is the table that holds the predictions relation/edge.
	PredictionsTable = "data_predictions"
	// PredictionsInverseTable is the table name for the DataPrediction entity.
	// It exists in this package in order to avoid circular dependency with the "dataprediction" package.
	PredictionsInverseTable = "data_predictions"
	// PredictionsColumn is the table column denoting the predictions relation/edge.
	PredictionsColumn = "data_id"
)

// Columns holds all SQL columns for data fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldText,
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
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
)

// OrderOption defines the ordering options for the Data queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByQueueEntriesCount orders the results by queue_entries count.
func ByQueueEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQueueEntriesStep(), opts...)
	}
}

// ByQueueEntries orders the results by queue_entries terms.
func ByQueueEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQueueEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAssignmentsCount orders the results by assignments count.
func ByAssignmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssignmentsStep(), opts...)
	}
}

// ByAssignments orders the results by assignments terms.
func ByAssignments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDecisionsCount orders the results by decisions count.
func ByDecisionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDecisionsStep(), opts...)
	}
}

// ByDecisions orders the results by decisions terms.
func ByDecisions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDecisionsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newQueueEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QueueEntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QueueEntriesTable, QueueEntriesColumn),
	)
}
func newAssignmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
	)
}
func newDecisionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DecisionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DecisionsTable, DecisionsColumn),
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
