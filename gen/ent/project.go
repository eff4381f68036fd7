// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/labelworks/annoqueue/gen/ent/project"
)

// Project is the model entity for the Project schema.
type Project struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Classifier holds the value of the "classifier" field.
	Classifier string `json:"classifier,omitempty"`
	// CurrentTrainingSet holds the value of the "current_training_set" field.
	CurrentTrainingSet int `json:"current_training_set,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectQuery when eager-loading is set.
	Edges        ProjectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectEdges holds the relations/edges for other nodes in the graph.
type ProjectEdges struct {
	// Data holds the value of the data edge.
	Data []*Data `json:"data,omitempty"`
	// Labels holds the value of the labels edge.
	Labels []*Label `json:"labels,omitempty"`
	// Queues holds the value of the queues edge.
	Queues []*Queue `json:"queues,omitempty"`
	// Models holds the value of the models edge.
	Models []*Model `json:"models,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// DataOrErr returns the Data value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) DataOrErr() ([]*Data, error) {
	if e.loadedTypes[0] {
		return e.Data, nil
	}
	return nil, &NotLoadedError{edge: "data"}
}

// LabelsOrErr returns the Labels value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) LabelsOrErr() ([]*Label, error) {
	if e.loadedTypes[1] {
		return e.Labels, nil
	}
	return nil, &NotLoadedError{edge: "labels"}
}

// QueuesOrErr returns the Queues value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) QueuesOrErr() ([]*Queue, error) {
	if e.loadedTypes[2] {
		return e.Queues, nil
	}
	return nil, &NotLoadedError{edge: "queues"}
}

// ModelsOrErr returns the Models value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) ModelsOrErr() ([]*Model, error) {
	if e.loadedTypes[3] {
		return e.Models, nil
	}
	return nil, &NotLoadedError{edge: "models"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Project) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case project.FieldID, project.FieldCurrentTrainingSet:
			values[i] = new(sql.NullInt64)
		case project.FieldName, project.FieldClassifier:
			values[i] = new(sql.NullString)
		case project.FieldCreatedAt, project.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Project fields.
func (pr *Project) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case project.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			pr.ID = int(value.Int64)
		case project.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				pr.Name = value.String
			}
		case project.FieldClassifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classifier", values[i])
			} else if value.Valid {
				pr.Classifier = value.String
			}
		case project.FieldCurrentTrainingSet:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_training_set", values[i])
			} else if value.Valid {
				pr.CurrentTrainingSet = int(value.Int64)
			}
		case project.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				pr.CreatedAt = value.Time
			}
		case project.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				pr.UpdatedAt = value.Time
			}
		default:
			pr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Project.
// This includes values selected through modifiers, order, etc.
func (pr *Project) Value(name string) (ent.Value, error) {
	return pr.selectValues.Get(name)
}

// QueryData queries the "data" edge of the Project entity.
func (pr *Project) QueryData() *DataQuery {
	return NewProjectClient(pr.config).QueryData(pr)
}

// QueryLabels queries the "labels" edge of the Project entity.
func (pr *Project) QueryLabels() *LabelQuery {
	return NewProjectClient(pr.config).QueryLabels(pr)
}

// QueryQueues queries the "queues" edge of the Project entity.
func (pr *Project) QueryQueues() *QueueQuery {
	return NewProjectClient(pr.config).QueryQueues(pr)
}

// QueryModels queries the "models" edge of the Project entity.
func (pr *Project) QueryModels() *ModelQuery {
	return NewProjectClient(pr.config).QueryModels(pr)
}

// Update returns a builder for updating this Project.
// Note that you need to call Project.Unwrap() before calling this method if this Project
// was returned from a transaction, and the transaction was committed or rolled back.
func (pr *Project) Update() *ProjectUpdateOne {
	return NewProjectClient(pr.config).UpdateOne(pr)
}

// Unwrap unwraps the Project entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pr *Project) Unwrap() *Project {
	_tx, ok := pr.config.driver.(*txDriver)
	if !ok {
		panic("ent: Project is not a transactional entity")
	}
	pr.config.driver = _tx.drv
	return pr
}

// String implements the fmt.Stringer.
func (pr *Project) String() string {
	var builder strings.Builder
	builder.WriteString("Project(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pr.ID))
	builder.WriteString("name=")
	builder.WriteString(pr.Name)
	builder.WriteString(", ")
	builder.WriteString("classifier=")
	builder.WriteString(pr.Classifier)
	builder.WriteString(", ")
	builder.WriteString("current_training_set=")
	builder.WriteString(fmt.Sprintf("%v", pr.CurrentTrainingSet))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(pr.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(pr.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Projects is a parsable slice of Project.
type Projects []*Project
