// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/labelworks/annoqueue/gen/ent/profile"
	"github.com/labelworks/annoqueue/gen/ent/project"
	"github.com/labelworks/annoqueue/gen/ent/queue"
)

// Queue is the model entity for the Queue schema.
type Queue struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID int `json:"project_id,omitempty"`
	// Length holds the value of the "length" field.
	Length int `json:"length,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID *uuid.UUID `json:"profile_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QueueQuery when eager-loading is set.
	Edges        QueueEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QueueEdges holds the relations/edges for other nodes in the graph.
type QueueEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// Entries holds the value of the entries edge.
	Entries []*DataQueue `json:"entries,omitempty"`
	// Assignments holds the value of the assignments edge.
	Assignments []*AssignedData `json:"assignments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QueueEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QueueEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// EntriesOrErr returns the Entries value or an error if the edge
// was not loaded in eager-loading.
func (e QueueEdges) EntriesOrErr() ([]*DataQueue, error) {
	if e.loadedTypes[2] {
		return e.Entries, nil
	}
	return nil, &NotLoadedError{edge: "entries"}
}

// AssignmentsOrErr returns the Assignments value or an error if the edge
// was not loaded in eager-loading.
func (e QueueEdges) AssignmentsOrErr() ([]*AssignedData, error) {
	if e.loadedTypes[3] {
		return e.Assignments, nil
	}
	return nil, &NotLoadedError{edge: "assignments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Queue) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case queue.FieldProfileID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case queue.FieldID, queue.FieldProjectID, queue.FieldLength:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Queue fields.
func (q *Queue) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case queue.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			q.ID = int(value.Int64)
		case queue.FieldProjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				q.ProjectID = int(value.Int64)
			}
		case queue.FieldLength:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field length", values[i])
			} else if value.Valid {
				q.Length = int(value.Int64)
			}
		case queue.FieldProfileID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				q.ProfileID = new(uuid.UUID)
				*q.ProfileID = *value.S.(*uuid.UUID)
			}
		default:
			q.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Queue.
// This includes values selected through modifiers, order, etc.
func (q *Queue) Value(name string) (ent.Value, error) {
	return q.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Queue entity.
func (q *Queue) QueryProject() *ProjectQuery {
	return NewQueueClient(q.config).QueryProject(q)
}

// QueryProfile queries the "profile" edge of the Queue entity.
func (q *Queue) QueryProfile() *ProfileQuery {
	return NewQueueClient(q.config).QueryProfile(q)
}

// QueryEntries queries the "entries" edge of the Queue entity.
func (q *Queue) QueryEntries() *DataQueueQuery {
	return NewQueueClient(q.config).QueryEntries(q)
}

// QueryAssignments queries the "assignments" edge of the Queue entity.
func (q *Queue) QueryAssignments() *AssignedDataQuery {
	return NewQueueClient(q.config).QueryAssignments(q)
}

// Update returns a builder for updating this Queue.
// Note that you need to call Queue.Unwrap() before calling this method if this Queue
// was returned from a transaction, and the transaction was committed or rolled back.
func (q *Queue) Update() *QueueUpdateOne {
	return NewQueueClient(q.config).UpdateOne(q)
}

// Unwrap unwraps the Queue entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (q *Queue) Unwrap() *Queue {
	_tx, ok := q.config.driver.(*txDriver)
	if !ok {
		panic("ent: Queue is not a transactional entity")
	}
	q.config.driver = _tx.drv
	return q
}

// String implements the fmt.Stringer.
func (q *Queue) String() string {
	var builder strings.Builder
	builder.WriteString("Queue(")
	builder.WriteString(fmt.Sprintf("id=%v, ", q.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", q.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("length=")
	builder.WriteString(fmt.Sprintf("%v", q.Length))
	builder.WriteString(", ")
	if v := q.ProfileID; v != nil {
		builder.WriteString("profile_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Queues is a parsable slice of Queue.
type Queues []*Queue
