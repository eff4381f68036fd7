// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/labelworks/annoqueue/gen/ent/assigneddata"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/profile"
	"github.com/labelworks/annoqueue/gen/ent/queue"
)

// AssignedData is the model entity for the AssignedData schema.
type AssignedData struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DataID holds the value of the "data_id" field.
	DataID int `json:"data_id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// QueueID holds the value of the "queue_id" field.
	QueueID int `json:"queue_id,omitempty"`
	// AssignedAt holds the value of the "assigned_at" field.
	AssignedAt time.Time `json:"assigned_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssignedDataQuery when eager-loading is set.
	Edges        AssignedDataEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssignedDataEdges holds the relations/edges for other nodes in the graph.
type AssignedDataEdges struct {
	// Data holds the value of the data edge.
	Data *Data `json:"data,omitempty"`
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// Queue holds the value of the queue edge.
	Queue *Queue `json:"queue,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// DataOrErr returns the Data value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssignedDataEdges) DataOrErr() (*Data, error) {
	if e.Data != nil {
		return e.Data, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: data.Label}
	}
	return nil, &NotLoadedError{edge: "data"}
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssignedDataEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// QueueOrErr returns the Queue value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssignedDataEdges) QueueOrErr() (*Queue, error) {
	if e.Queue != nil {
		return e.Queue, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: queue.Label}
	}
	return nil, &NotLoadedError{edge: "queue"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssignedData) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assigneddata.FieldID, assigneddata.FieldDataID, assigneddata.FieldQueueID:
			values[i] = new(sql.NullInt64)
		case assigneddata.FieldAssignedAt:
			values[i] = new(sql.NullTime)
		case assigneddata.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssignedData fields.
func (ad *AssignedData) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assigneddata.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ad.ID = int(value.Int64)
		case assigneddata.FieldDataID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field data_id", values[i])
			} else if value.Valid {
				ad.DataID = int(value.Int64)
			}
		case assigneddata.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				ad.ProfileID = *value
			}
		case assigneddata.FieldQueueID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field queue_id", values[i])
			} else if value.Valid {
				ad.QueueID = int(value.Int64)
			}
		case assigneddata.FieldAssignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_at", values[i])
			} else if value.Valid {
				ad.AssignedAt = value.Time
			}
		default:
			ad.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssignedData.
// This includes values selected through modifiers, order, etc.
func (ad *AssignedData) Value(name string) (ent.Value, error) {
	return ad.selectValues.Get(name)
}

// QueryData queries the "data" edge of the AssignedData entity.
func (ad *AssignedData) QueryData() *DataQuery {
	return NewAssignedDataClient(ad.config).QueryData(ad)
}

// QueryProfile queries the "profile" edge of the AssignedData entity.
func (ad *AssignedData) QueryProfile() *ProfileQuery {
	return NewAssignedDataClient(ad.config).QueryProfile(ad)
}

// QueryQueue queries the "queue" edge of the AssignedData entity.
func (ad *AssignedData) QueryQueue() *QueueQuery {
	return NewAssignedDataClient(ad.config).QueryQueue(ad)
}

// Update returns a builder for updating this AssignedData.
// Note that you need to call AssignedData.Unwrap() before calling this method if this AssignedData
// was returned from a transaction, and the transaction was committed or rolled back.
func (ad *AssignedData) Update() *AssignedDataUpdateOne {
	return NewAssignedDataClient(ad.config).UpdateOne(ad)
}

// Unwrap unwraps the AssignedData entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ad *AssignedData) Unwrap() *AssignedData {
	_tx, ok := ad.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssignedData is not a transactional entity")
	}
	ad.config.driver = _tx.drv
	return ad
}

// String implements the fmt.Stringer.
func (ad *AssignedData) String() string {
	var builder strings.Builder
	builder.WriteString("AssignedData(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ad.ID))
	builder.WriteString("data_id=")
	builder.WriteString(fmt.Sprintf("%v", ad.DataID))
	builder.WriteString(", ")
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", ad.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("queue_id=")
	builder.WriteString(fmt.Sprintf("%v", ad.QueueID))
	builder.WriteString(", ")
	builder.WriteString("assigned_at=")
	builder.WriteString(ad.AssignedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AssignedDataSlice is a parsable slice of AssignedData.
type AssignedDataSlice []*AssignedData
