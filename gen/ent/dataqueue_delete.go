// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labelworks/annoqueue/gen/ent/dataqueue"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
)

// DataQueueDelete is the builder for deleting a DataQueue entity.
type DataQueueDelete struct {
	config
	hooks    []Hook
	mutation *DataQueueMutation
}

// Where appends a list predicates to the DataQueueDelete builder.
func (dqd *DataQueueDelete) Where(ps ...predicate.DataQueue) *DataQueueDelete {
	dqd.mutation.Where(ps...)
	return dqd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (dqd *DataQueueDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, dqd.sqlExec, dqd.mutation, dqd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (dqd *DataQueueDelete) ExecX(ctx context.Context) int {
	n, err := dqd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (dqd *DataQueueDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dataqueue.Table, sqlgraph.NewFieldSpec(dataqueue.FieldID, field.TypeInt))
	if ps := dqd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, dqd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	dqd.mutation.done = true
	return affected, err
}

// DataQueueDeleteOne is the builder for deleting a single DataQueue entity.
type DataQueueDeleteOne struct {
	dqd *DataQueueDelete
}

// Where appends a list predicates to the DataQueueDelete builder.
func (dqdo *DataQueueDeleteOne) Where(ps ...predicate.DataQueue) *DataQueueDeleteOne {
	dqdo.dqd.mutation.Where(ps...)
	return dqdo
}

// Exec executes the deletion query.
func (dqdo *DataQueueDeleteOne) Exec(ctx context.Context) error {
	n, err := dqdo.dqd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dataqueue.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (dqdo *DataQueueDeleteOne) ExecX(ctx context.Context) {
	if err := dqdo.Exec(ctx); err != nil {
		panic(err)
	}
}
