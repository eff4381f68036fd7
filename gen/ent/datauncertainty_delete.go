// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labelworks/annoqueue/gen/ent/datauncertainty"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
)

// DataUncertaintyDelete is the builder for deleting a DataUncertainty entity.
type DataUncertaintyDelete struct {
	config
	hooks    []Hook
	mutation *DataUncertaintyMutation
}

// Where appends a list predicates to the DataUncertaintyDelete builder.
func (dud *DataUncertaintyDelete) Where(ps ...predicate.DataUncertainty) *DataUncertaintyDelete {
	dud.mutation.Where(ps...)
	return dud
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (dud *DataUncertaintyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, dud.sqlExec, dud.mutation, dud.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (dud *DataUncertaintyDelete) ExecX(ctx context.Context) int {
	n, err := dud.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (dud *DataUncertaintyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(datauncertainty.Table, sqlgraph.NewFieldSpec(datauncertainty.FieldID, field.TypeInt))
	if ps := dud.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, dud.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	dud.mutation.done = true
	return affected, err
}

// DataUncertaintyDeleteOne is the builder for deleting a single DataUncertainty entity.
type DataUncertaintyDeleteOne struct {
	dud *DataUncertaintyDelete
}

// Where appends a list predicates to the DataUncertaintyDelete builder.
func (dudo *DataUncertaintyDeleteOne) Where(ps ...predicate.DataUncertainty) *DataUncertaintyDeleteOne {
	dudo.dud.mutation.Where(ps...)
	return dudo
}

// Exec executes the deletion query.
func (dudo *DataUncertaintyDeleteOne) Exec(ctx context.Context) error {
	n, err := dudo.dud.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{datauncertainty.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (dudo *DataUncertaintyDeleteOne) ExecX(ctx context.Context) {
	if err := dudo.Exec(ctx); err != nil {
		panic(err)
	}
}
