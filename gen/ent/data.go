// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/project"
)

// Data is the model entity for the Data schema.
type Data struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID int `json:"project_id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DataQuery when eager-loading is set.
	Edges        DataEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DataEdges holds the relations/edges for other nodes in the graph.
type DataEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// QueueEntries holds the value of the queue_entries edge.
	QueueEntries []*DataQueue `json:"queue_entries,omitempty"`
	// Assignments holds the value of the assignments edge.
	Assignments []*AssignedData `json:"assignments,omitempty"`
	// Decisions holds the value of the decisions edge.
	Decisions []*DataLabel `json:"decisions,omitempty"`
	// Uncertainties holds the value of the uncertainties edge.
	Uncertainties []*DataUncertainty `json:"uncertainties,omitempty"`
	// Predictions holds the value of the predictions edge.
	Predictions []*DataPrediction `json:"predictions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DataEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// QueueEntriesOrErr returns the QueueEntries value or an error if the edge
// was not loaded in eager-loading.
func (e DataEdges) QueueEntriesOrErr() ([]*DataQueue, error) {
	if e.loadedTypes[1] {
		return e.QueueEntries, nil
	}
	return nil, &NotLoadedError{edge: "queue_entries"}
}

// AssignmentsOrErr returns the Assignments value or an error if the edge
// was not loaded in eager-loading.
func (e DataEdges) AssignmentsOrErr() ([]*AssignedData, error) {
	if e.loadedTypes[2] {
		return e.Assignments, nil
	}
	return nil, &NotLoadedError{edge: "assignments"}
}

// DecisionsOrErr returns the Decisions value or an error if the edge
// was not loaded in eager-loading.
func (e DataEdges) DecisionsOrErr() ([]*DataLabel, error) {
	if e.loadedTypes[3] {
		return e.Decisions, nil
	}
	return nil, &NotLoadedError{edge: "decisions"}
}

// UncertaintiesOrErr returns the Uncertainties value or an error if the edge
// was not loaded in eager-loading.
func (e DataEdges) UncertaintiesOrErr() ([]*DataUncertainty, error) {
	if e.loadedTypes[4] {
		return e.Uncertainties, nil
	}
	return nil, &NotLoadedError{edge: "uncertainties"}
}

// PredictionsOrErr returns the Predictions value or an error if the edge
// was not loaded in eager-loading.
func (e DataEdges) PredictionsOrErr() ([]*DataPrediction, error) {
	if e.loadedTypes[5] {
		return e.Predictions, nil
	}
	return nil, &NotLoadedError{edge: "predictions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Data) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case data.FieldID, data.FieldProjectID:
			values[i] = new(sql.NullInt64)
		case data.FieldText:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Data fields.
func (d *Data) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case data.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			d.ID = int(value.Int64)
		case data.FieldProjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				d.ProjectID = int(value.Int64)
			}
		case data.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				d.Text = value.String
			}
		default:
			d.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Data.
// This includes values selected through modifiers, order, etc.
func (d *Data) Value(name string) (ent.Value, error) {
	return d.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Data entity.
func (d *Data) QueryProject() *ProjectQuery {
	return NewDataClient(d.config).QueryProject(d)
}

// QueryQueueEntries queries the "queue_entries" edge of the Data entity.
func (d *Data) QueryQueueEntries() *DataQueueQuery {
	return NewDataClient(d.config).QueryQueueEntries(d)
}

// QueryAssignments queries the "assignments" edge of the Data entity.
func (d *Data) QueryAssignments() *AssignedDataQuery {
	return NewDataClient(d.config).QueryAssignments(d)
}

// QueryDecisions queries the "decisions" edge of the Data entity.
func (d *Data) QueryDecisions() *DataLabelQuery {
	return NewDataClient(d.config).QueryDecisions(d)
}

// QueryUncertainties queries the "uncertainties" edge of the Data entity.
func (d *Data) QueryUncertainties() *DataUncertaintyQuery {
	return NewDataClient(d.config).QueryUncertainties(d)
}

// QueryPredictions queries the "predictions" edge of the Data entity.
func (d *Data) QueryPredictions() *DataPredictionQuery {
	return NewDataClient(d.config).QueryPredictions(d)
}

// Update returns a builder for updating this Data.
// Note that you need to call Data.Unwrap() before calling this method if this Data
// was returned from a transaction, and the transaction was committed or rolled back.
func (d *Data) Update() *DataUpdateOne {
	return NewDataClient(d.config).UpdateOne(d)
}

// Unwrap unwraps the Data entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (d *Data) Unwrap() *Data {
	_tx, ok := d.config.driver.(*txDriver)
	if !ok {
		panic("ent: Data is not a transactional entity")
	}
	d.config.driver = _tx.drv
	return d
}

// String implements the fmt.Stringer.
func (d *Data) String() string {
	var builder strings.Builder
	builder.WriteString("Data(")
	builder.WriteString(fmt.Sprintf("id=%v, ", d.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", d.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(d.Text)
	builder.WriteByte(')')
	return builder.String()
}

// DataSlice is a parsable slice of Data.
type DataSlice []*Data
