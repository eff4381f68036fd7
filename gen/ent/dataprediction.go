// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/dataprediction"
	"github.com/labelworks/annoqueue/gen/ent/label"
	"github.com/labelworks/annoqueue/gen/ent/model"
)

// DataPrediction is the model entity for the DataPrediction schema.
type DataPrediction struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DataID holds the value of the "data_id" field.
	DataID int `json:"data_id,omitempty"`
	// ModelID holds the value of the "model_id" field.
	ModelID int `json:"model_id,omitempty"`
	// LabelID holds the value of the "label_id" field.
	LabelID int `json:"label_id,omitempty"`
	// Probability holds the value of the "probability" field.
	Probability float64 `json:"probability,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DataPredictionQuery when eager-loading is set.
	Edges        DataPredictionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DataPredictionEdges holds the relations/edges for other nodes in the graph.
type DataPredictionEdges struct {
	// Data holds the value of the data edge.
	Data *Data `json:"data,omitempty"`
	// Model holds the value of the model edge.
	Model *Model `json:"model,omitempty"`
	// Label holds the value of the label edge.
	Label *Label `json:"label,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// DataOrErr returns the Data value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DataPredictionEdges) DataOrErr() (*Data, error) {
	if e.Data != nil {
		return e.Data, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: data.Label}
	}
	return nil, &NotLoadedError{edge: "data"}
}

// ModelOrErr returns the Model value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DataPredictionEdges) ModelOrErr() (*Model, error) {
	if e.Model != nil {
		return e.Model, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: model.Label}
	}
	return nil, &NotLoadedError{edge: "model"}
}

// LabelOrErr returns the Label value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DataPredictionEdges) LabelOrErr() (*Label, error) {
	if e.Label != nil {
		return e.Label, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: label.Label}
	}
	return nil, &NotLoadedError{edge: "label"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DataPrediction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dataprediction.FieldProbability:
			values[i] = new(sql.NullFloat64)
		case dataprediction.FieldID, dataprediction.FieldDataID, dataprediction.FieldModelID, dataprediction.FieldLabelID:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DataPrediction fields.
func (dp *DataPrediction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dataprediction.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			dp.ID = int(value.Int64)
		case dataprediction.FieldDataID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field data_id", values[i])
			} else if value.Valid {
				dp.DataID = int(value.Int64)
			}
		case dataprediction.FieldModelID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field model_id", values[i])
			} else if value.Valid {
				dp.ModelID = int(value.Int64)
			}
		case dataprediction.FieldLabelID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field label_id", values[i])
			} else if value.Valid {
				dp.LabelID = int(value.Int64)
			}
		case dataprediction.FieldProbability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field probability", values[i])
			} else if value.Valid {
				dp.Probability = value.Float64
			}
		default:
			dp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DataPrediction.
// This includes values selected through modifiers, order, etc.
func (dp *DataPrediction) Value(name string) (ent.Value, error) {
	return dp.selectValues.Get(name)
}

// QueryData queries the "data" edge of the DataPrediction entity.
func (dp *DataPrediction) QueryData() *DataQuery {
	return NewDataPredictionClient(dp.config).QueryData(dp)
}

// QueryModel queries the "model" edge of the DataPrediction entity.
func (dp *DataPrediction) QueryModel() *ModelQuery {
	return NewDataPredictionClient(dp.config).QueryModel(dp)
}

// QueryLabel queries the "label" edge of the DataPrediction entity.
func (dp *DataPrediction) QueryLabel() *LabelQuery {
	return NewDataPredictionClient(dp.config).QueryLabel(dp)
}

// Update returns a builder for updating this DataPrediction.
// Note that you need to call DataPrediction.Unwrap() before calling this method if this DataPrediction
// was returned from a transaction, and the transaction was committed or rolled back.
func (dp *DataPrediction) Update() *DataPredictionUpdateOne {
	return NewDataPredictionClient(dp.config).UpdateOne(dp)
}

// Unwrap unwraps the DataPrediction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (dp *DataPrediction) Unwrap() *DataPrediction {
	_tx, ok := dp.config.driver.(*txDriver)
	if !ok {
		panic("ent: DataPrediction is not a transactional entity")
	}
	dp.config.driver = _tx.drv
	return dp
}

// String implements the fmt.Stringer.
func (dp *DataPrediction) String() string {
	var builder strings.Builder
	builder.WriteString("DataPrediction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", dp.ID))
	builder.WriteString("data_id=")
	builder.WriteString(fmt.Sprintf("%v", dp.DataID))
	builder.WriteString(", ")
	builder.WriteString("model_id=")
	builder.WriteString(fmt.Sprintf("%v", dp.ModelID))
	builder.WriteString(", ")
	builder.WriteString("label_id=")
	builder.WriteString(fmt.Sprintf("%v", dp.LabelID))
	builder.WriteString(", ")
	builder.WriteString("probability=")
	builder.WriteString(fmt.Sprintf("%v", dp.Probability))
	builder.WriteByte(')')
	return builder.String()
}

// DataPredictions is a parsable slice of DataPrediction.
type DataPredictions []*DataPrediction
