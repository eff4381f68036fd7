// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/dataqueue"
	"github.com/labelworks/annoqueue/gen/ent/queue"
)

// DataQueue is the model entity for the DataQueue schema.
type DataQueue struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DataID holds the value of the "data_id" field.
	DataID int `json:"data_id,omitempty"`
	// QueueID holds the value of the "queue_id" field.
	QueueID int `json:"queue_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DataQueueQuery when eager-loading is set.
	Edges        DataQueueEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DataQueueEdges holds the relations/edges for other nodes in the graph.
type DataQueueEdges struct {
	// Data holds the value of the data edge.
	Data *Data `json:"data,omitempty"`
	// Queue holds the value of the queue edge.
	Queue *Queue `json:"queue,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DataOrErr returns the Data value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DataQueueEdges) DataOrErr() (*Data, error) {
	if e.Data != nil {
		return e.Data, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: data.Label}
	}
	return nil, &NotLoadedError{edge: "data"}
}

// QueueOrErr returns the Queue value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DataQueueEdges) QueueOrErr() (*Queue, error) {
	if e.Queue != nil {
		return e.Queue, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: queue.Label}
	}
	return nil, &NotLoadedError{edge: "queue"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DataQueue) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dataqueue.FieldID, dataqueue.FieldDataID, dataqueue.FieldQueueID:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DataQueue fields.
func (dq *DataQueue) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dataqueue.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			dq.ID = int(value.Int64)
		case dataqueue.FieldDataID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field data_id", values[i])
			} else if value.Valid {
				dq.DataID = int(value.Int64)
			}
		case dataqueue.FieldQueueID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field queue_id", values[i])
			} else if value.Valid {
				dq.QueueID = int(value.Int64)
			}
		default:
			dq.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DataQueue.
// This includes values selected through modifiers, order, etc.
func (dq *DataQueue) Value(name string) (ent.Value, error) {
	return dq.selectValues.Get(name)
}

// QueryData queries the "data" edge of the DataQueue entity.
func (dq *DataQueue) QueryData() *DataQuery {
	return NewDataQueueClient(dq.config).QueryData(dq)
}

// QueryQueue queries the "queue" edge of the DataQueue entity.
func (dq *DataQueue) QueryQueue() *QueueQuery {
	return NewDataQueueClient(dq.config).QueryQueue(dq)
}

// Update returns a builder for updating this DataQueue.
// Note that you need to call DataQueue.Unwrap() before calling this method if this DataQueue
// was returned from a transaction, and the transaction was committed or rolled back.
func (dq *DataQueue) Update() *DataQueueUpdateOne {
	return NewDataQueueClient(dq.config).UpdateOne(dq)
}

// Unwrap unwraps the DataQueue entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (dq *DataQueue) Unwrap() *DataQueue {
	_tx, ok := dq.config.driver.(*txDriver)
	if !ok {
		panic("ent: DataQueue is not a transactional entity")
	}
	dq.config.driver = _tx.drv
	return dq
}

// String implements the fmt.Stringer.
func (dq *DataQueue) String() string {
	var builder strings.Builder
	builder.WriteString("DataQueue(")
	builder.WriteString(fmt.Sprintf("id=%v, ", dq.ID))
	builder.WriteString("data_id=")
	builder.WriteString(fmt.Sprintf("%v", dq.DataID))
	builder.WriteString(", ")
	builder.WriteString("queue_id=")
	builder.WriteString(fmt.Sprintf("%v", dq.QueueID))
	builder.WriteByte(')')
	return builder.String()
}

// DataQueues is a parsable slice of DataQueue.
type DataQueues []*DataQueue
