// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/datalabel"
	"github.com/labelworks/annoqueue/gen/ent/label"
	"github.com/labelworks/annoqueue/gen/ent/profile"
)

// DataLabel is the model entity for the DataLabel schema.
type DataLabel struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DataID holds the value of the "data_id" field.
	DataID int `json:"data_id,omitempty"`
	// LabelID holds the value of the "label_id" field.
	LabelID int `json:"label_id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// TrainingSet holds the value of the "training_set" field.
	TrainingSet int `json:"training_set,omitempty"`
	// LabeledAt holds the value of the "labeled_at" field.
	LabeledAt time.Time `json:"labeled_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DataLabelQuery when eager-loading is set.
	Edges        DataLabelEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DataLabelEdges holds the relations/edges for other nodes in the graph.
type DataLabelEdges struct {
	// Data holds the value of the data edge.
	Data *Data `json:"data,omitempty"`
	// Label holds the value of the label edge.
	Label *Label `json:"label,omitempty"`
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// DataOrErr returns the Data value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DataLabelEdges) DataOrErr() (*Data, error) {
	if e.Data != nil {
		return e.Data, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: data.Label}
	}
	return nil, &NotLoadedError{edge: "data"}
}

// LabelOrErr returns the Label value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DataLabelEdges) LabelOrErr() (*Label, error) {
	if e.Label != nil {
		return e.Label, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: label.Label}
	}
	return nil, &NotLoadedError{edge: "label"}
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DataLabelEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DataLabel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case datalabel.FieldID, datalabel.FieldDataID, datalabel.FieldLabelID, datalabel.FieldTrainingSet:
			values[i] = new(sql.NullInt64)
		case datalabel.FieldLabeledAt:
			values[i] = new(sql.NullTime)
		case datalabel.FieldProfileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DataLabel fields.
func (dl *DataLabel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case datalabel.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			dl.ID = int(value.Int64)
		case datalabel.FieldDataID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field data_id", values[i])
			} else if value.Valid {
				dl.DataID = int(value.Int64)
			}
		case datalabel.FieldLabelID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field label_id", values[i])
			} else if value.Valid {
				dl.LabelID = int(value.Int64)
			}
		case datalabel.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				dl.ProfileID = *value
			}
		case datalabel.FieldTrainingSet:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field training_set", values[i])
			} else if value.Valid {
				dl.TrainingSet = int(value.Int64)
			}
		case datalabel.FieldLabeledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field labeled_at", values[i])
			} else if value.Valid {
				dl.LabeledAt = value.Time
			}
		default:
			dl.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DataLabel.
// This includes values selected through modifiers, order, etc.
func (dl *DataLabel) Value(name string) (ent.Value, error) {
	return dl.selectValues.Get(name)
}

// QueryData queries the "data" edge of the DataLabel entity.
func (dl *DataLabel) QueryData() *DataQuery {
	return NewDataLabelClient(dl.config).QueryData(dl)
}

// QueryLabel queries the "label" edge of the DataLabel entity.
func (dl *DataLabel) QueryLabel() *LabelQuery {
	return NewDataLabelClient(dl.config).QueryLabel(dl)
}

// QueryProfile queries the "profile" edge of the DataLabel entity.
func (dl *DataLabel) QueryProfile() *ProfileQuery {
	return NewDataLabelClient(dl.config).QueryProfile(dl)
}

// Update returns a builder for updating this DataLabel.
// Note that you need to call DataLabel.Unwrap() before calling this method if this DataLabel
// was returned from a transaction, and the transaction was committed or rolled back.
func (dl *DataLabel) Update() *DataLabelUpdateOne {
	return NewDataLabelClient(dl.config).UpdateOne(dl)
}

// Unwrap unwraps the DataLabel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (dl *DataLabel) Unwrap() *DataLabel {
	_tx, ok := dl.config.driver.(*txDriver)
	if !ok {
		panic("ent: DataLabel is not a transactional entity")
	}
	dl.config.driver = _tx.drv
	return dl
}

// String implements the fmt.Stringer.
func (dl *DataLabel) String() string {
	var builder strings.Builder
	builder.WriteString("DataLabel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", dl.ID))
	builder.WriteString("data_id=")
	builder.WriteString(fmt.Sprintf("%v", dl.DataID))
	builder.WriteString(", ")
	builder.WriteString("label_id=")
	builder.WriteString(fmt.Sprintf("%v", dl.LabelID))
	builder.WriteString(", ")
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", dl.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("training_set=")
	builder.WriteString(fmt.Sprintf("%v", dl.TrainingSet))
	builder.WriteString(", ")
	builder.WriteString("labeled_at=")
	builder.WriteString(dl.LabeledAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DataLabels is a parsable slice of DataLabel.
type DataLabels []*DataLabel
