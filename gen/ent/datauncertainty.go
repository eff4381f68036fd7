// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/datauncertainty"
	"github.com/labelworks/annoqueue/gen/ent/model"
)

// DataUncertainty is the model entity for the DataUncertainty schema.
type DataUncertainty struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DataID holds the value of the "data_id" field.
	DataID int `json:"data_id,omitempty"`
	// ModelID holds the value of the "model_id" field.
	ModelID int `json:"model_id,omitempty"`
	// LeastConfident holds the value of the "least_confident" field.
	LeastConfident float64 `json:"least_confident,omitempty"`
	// Margin holds the value of the "margin" field.
	Margin float64 `json:"margin,omitempty"`
	// Entropy holds the value of the "entropy" field.
	Entropy float64 `json:"entropy,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DataUncertaintyQuery when eager-loading is set.
	Edges        DataUncertaintyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DataUncertaintyEdges holds the relations/edges for other nodes in the graph.
type DataUncertaintyEdges struct {
	// Data holds the value of the data edge.
	Data *Data `json:"data,omitempty"`
	// Model holds the value of the model edge.
	Model *Model `json:"model,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DataOrErr returns the Data value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DataUncertaintyEdges) DataOrErr() (*Data, error) {
	if e.Data != nil {
		return e.Data, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: data.Label}
	}
	return nil, &NotLoadedError{edge: "data"}
}

// ModelOrErr returns the Model value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DataUncertaintyEdges) ModelOrErr() (*Model, error) {
	if e.Model != nil {
		return e.Model, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: model.Label}
	}
	return nil, &NotLoadedError{edge: "model"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DataUncertainty) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case datauncertainty.FieldLeastConfident, datauncertainty.FieldMargin, datauncertainty.FieldEntropy:
			values[i] = new(sql.NullFloat64)
		case datauncertainty.FieldID, datauncertainty.FieldDataID, datauncertainty.FieldModelID:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DataUncertainty fields.
func (du *DataUncertainty) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case datauncertainty.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			du.ID = int(value.Int64)
		case datauncertainty.FieldDataID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field data_id", values[i])
			} else if value.Valid {
				du.DataID = int(value.Int64)
			}
		case datauncertainty.FieldModelID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field model_id", values[i])
			} else if value.Valid {
				du.ModelID = int(value.Int64)
			}
		case datauncertainty.FieldLeastConfident:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field least_confident", values[i])
			} else if value.Valid {
				du.LeastConfident = value.Float64
			}
		case datauncertainty.FieldMargin:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field margin", values[i])
			} else if value.Valid {
				du.Margin = value.Float64
			}
		case datauncertainty.FieldEntropy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field entropy", values[i])
			} else if value.Valid {
				du.Entropy = value.Float64
			}
		default:
			du.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DataUncertainty.
// This includes values selected through modifiers, order, etc.
func (du *DataUncertainty) Value(name string) (ent.Value, error) {
	return du.selectValues.Get(name)
}

// QueryData queries the "data" edge of the DataUncertainty entity.
func (du *DataUncertainty) QueryData() *DataQuery {
	return NewDataUncertaintyClient(du.config).QueryData(du)
}

// QueryModel queries the "model" edge of the DataUncertainty entity.
func (du *DataUncertainty) QueryModel() *ModelQuery {
	return NewDataUncertaintyClient(du.config).QueryModel(du)
}

// Update returns a builder for updating this DataUncertainty.
// Note that you need to call DataUncertainty.Unwrap() before calling this method if this DataUncertainty
// was returned from a transaction, and the transaction was committed or rolled back.
func (du *DataUncertainty) Update() *DataUncertaintyUpdateOne {
	return NewDataUncertaintyClient(du.config).UpdateOne(du)
}

// Unwrap unwraps the DataUncertainty entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (du *DataUncertainty) Unwrap() *DataUncertainty {
	_tx, ok := du.config.driver.(*txDriver)
	if !ok {
		panic("ent: DataUncertainty is not a transactional entity")
	}
	du.config.driver = _tx.drv
	return du
}

// String implements the fmt.Stringer.
func (du *DataUncertainty) String() string {
	var builder strings.Builder
	builder.WriteString("DataUncertainty(")
	builder.WriteString(fmt.Sprintf("id=%v, ", du.ID))
	builder.WriteString("data_id=")
	builder.WriteString(fmt.Sprintf("%v", du.DataID))
	builder.WriteString(", ")
	builder.WriteString("model_id=")
	builder.WriteString(fmt.Sprintf("%v", du.ModelID))
	builder.WriteString(", ")
	builder.WriteString("least_confident=")
	builder.WriteString(fmt.Sprintf("%v", du.LeastConfident))
	builder.WriteString(", ")
	builder.WriteString("margin=")
	builder.WriteString(fmt.Sprintf("%v", du.Margin))
	builder.WriteString(", ")
	builder.WriteString("entropy=")
	builder.WriteString(fmt.Sprintf("%v", du.Entropy))
	builder.WriteByte(')')
	return builder.String()
}

// DataUncertainties is a parsable slice of DataUncertainty.
type DataUncertainties []*DataUncertainty
