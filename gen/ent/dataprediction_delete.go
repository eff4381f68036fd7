// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labelworks/annoqueue/gen/ent/dataprediction"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
)

// DataPredictionDelete is the builder for deleting a DataPrediction entity.
type DataPredictionDelete struct {
	config
	hooks    []Hook
	mutation *DataPredictionMutation
}

// Where appends a list predicates to the DataPredictionDelete builder.
func (dpd *DataPredictionDelete) Where(ps ...predicate.DataPrediction) *DataPredictionDelete {
	dpd.mutation.Where(ps...)
	return dpd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (dpd *DataPredictionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, dpd.sqlExec, dpd.mutation, dpd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (dpd *DataPredictionDelete) ExecX(ctx context.Context) int {
	n, err := dpd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (dpd *DataPredictionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dataprediction.Table, sqlgraph.NewFieldSpec(dataprediction.FieldID, field.TypeInt))
	if ps := dpd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, dpd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	dpd.mutation.done = true
	return affected, err
}

// DataPredictionDeleteOne is the builder for deleting a single DataPrediction entity.
type DataPredictionDeleteOne struct {
	dpd *DataPredictionDelete
}

// Where appends a list predicates to the DataPredictionDelete builder.
func (dpdo *DataPredictionDeleteOne) Where(ps ...predicate.DataPrediction) *DataPredictionDeleteOne {
	dpdo.dpd.mutation.Where(ps...)
	return dpdo
}

// Exec executes the deletion query.
func (dpdo *DataPredictionDeleteOne) Exec(ctx context.Context) error {
	n, err := dpdo.dpd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dataprediction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (dpdo *DataPredictionDeleteOne) ExecX(ctx context.Context) {
	if err := dpdo.Exec(ctx); err != nil {
		panic(err)
	}
}
