// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssignedData is the predicate function for assigneddata builders.
type AssignedData func(*sql.Selector)

// Data is the predicate function for data builders.
type Data func(*sql.Selector)

// DataLabel is the predicate function for datalabel builders.
type DataLabel func(*sql.Selector)

// DataPrediction is the predicate function for dataprediction builders.
type DataPrediction func(*sql.Selector)

// DataQueue is the predicate function for dataqueue builders.
type DataQueue func(*sql.Selector)

// DataUncertainty is the predicate function for datauncertainty builders.
type DataUncertainty func(*sql.Selector)

// Label is the predicate function for label builders.
type Label func(*sql.Selector)

// Model is the predicate function for model builders.
type Model func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Queue is the predicate function for queue builders.
type Queue func(*sql.Selector)
