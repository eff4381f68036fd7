// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labelworks/annoqueue/gen/ent/assigneddata"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
)

// AssignedDataDelete is the builder for deleting a AssignedData entity.
type AssignedDataDelete struct {
	config
	hooks    []Hook
	mutation *AssignedDataMutation
}

// Where appends a list predicates to the AssignedDataDelete builder.
func (add *AssignedDataDelete) Where(ps ...predicate.AssignedData) *AssignedDataDelete {
	add.mutation.Where(ps...)
	return add
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (add *AssignedDataDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, add.sqlExec, add.mutation, add.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (add *AssignedDataDelete) ExecX(ctx context.Context) int {
	n, err := add.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (add *AssignedDataDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(assigneddata.Table, sqlgraph.NewFieldSpec(assigneddata.FieldID, field.TypeInt))
	if ps := add.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, add.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	add.mutation.done = true
	return affected, err
}

// AssignedDataDeleteOne is the builder for deleting a single AssignedData entity.
type AssignedDataDeleteOne struct {
	add *AssignedDataDelete
}

// Where appends a list predicates to the AssignedDataDelete builder.
func (addo *AssignedDataDeleteOne) Where(ps ...predicate.AssignedData) *AssignedDataDeleteOne {
	addo.add.mutation.Where(ps...)
	return addo
}

// Exec executes the deletion query.
func (addo *AssignedDataDeleteOne) Exec(ctx context.Context) error {
	n, err := addo.add.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{assigneddata.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (addo *AssignedDataDeleteOne) ExecX(ctx context.Context) {
	if err := addo.Exec(ctx); err != nil {
		panic(err)
	}
}
