// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/dataqueue"
	"github.com/labelworks/annoqueue/gen/ent/queue"
)

// DataQueueCreate is the builder for creating a DataQueue entity.
type DataQueueCreate struct {
	config
	mutation *DataQueueMutation
	hooks    []Hook
}

// SetDataID sets the "data_id" field.
func (dqc *DataQueueCreate) SetDataID(i int) *DataQueueCreate {
	dqc.mutation.SetDataID(i)
	return dqc
}

// SetQueueID sets the "queue_id" field.
func (dqc *DataQueueCreate) SetQueueID(i int) *DataQueueCreate {
	dqc.mutation.SetQueueID(i)
	return dqc
}

// SetData sets the "data" edge to the Data entity.
func (dqc *DataQueueCreate) SetData(d *Data) *DataQueueCreate {
	return dqc.SetDataID(d.ID)
}

// SetQueue sets the "queue" edge to the Queue entity.
func (dqc *DataQueueCreate) SetQueue(q *Queue) *DataQueueCreate {
	return dqc.SetQueueID(q.ID)
}

// Mutation returns the DataQueueMutation object of the builder.
func (dqc *DataQueueCreate) Mutation() *DataQueueMutation {
	return dqc.mutation
}

// Save creates the DataQueue in the database.
func (dqc *DataQueueCreate) Save(ctx context.Context) (*DataQueue, error) {
	return withHooks(ctx, dqc.sqlSave, dqc.mutation, dqc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (dqc *DataQueueCreate) SaveX(ctx context.Context) *DataQueue {
	v, err := dqc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dqc *DataQueueCreate) Exec(ctx context.Context) error {
	_, err := dqc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dqc *DataQueueCreate) ExecX(ctx context.Context) {
	if err := dqc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dqc *DataQueueCreate) check() error {
	if _, ok := dqc.mutation.DataID(); !ok {
		return &ValidationError{Name: "data_id", err: errors.New(`ent: missing required field "DataQueue.data_id"`)}
	}
	if _, ok := dqc.mutation.QueueID(); !ok {
		return &ValidationError{Name: "queue_id", err: errors.New(`ent: missing required field "DataQueue.queue_id"`)}
	}
	if len(dqc.mutation.DataIDs()) == 0 {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required edge "DataQueue.data"`)}
	}
	if len(dqc.mutation.QueueIDs()) == 0 {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required edge "DataQueue.queue"`)}
	}
	return nil
}

func (dqc *DataQueueCreate) sqlSave(ctx context.Context) (*DataQueue, error) {
	if err := dqc.check(); err != nil {
		return nil, err
	}
	_node, _spec := dqc.createSpec()
	if err := sqlgraph.CreateNode(ctx, dqc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	dqc.mutation.id = &_node.ID
	dqc.mutation.done = true
	return _node, nil
}

func (dqc *DataQueueCreate) createSpec() (*DataQueue, *sqlgraph.CreateSpec) {
	var (
		_node = &DataQueue{config: dqc.config}
		_spec = sqlgraph.NewCreateSpec(dataqueue.Table, sqlgraph.NewFieldSpec(dataqueue.FieldID, field.TypeInt))
	)
	if nodes := dqc.mutation.DataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dataqueue.DataTable,
			Columns: []string{dataqueue.DataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(data.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DataID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := dqc.mutation.QueueIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dataqueue.QueueTable,
			Columns: []string{dataqueue.QueueColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(queue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QueueID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DataQueueCreateBulk is the builder for creating many DataQueue entities in bulk.
type DataQueueCreateBulk struct {
	config
	err      error
	builders []*DataQueueCreate
}

// Save creates the DataQueue entities in the database.
func (dqcb *DataQueueCreateBulk) Save(ctx context.Context) ([]*DataQueue, error) {
	if dqcb.err != nil {
		return nil, dqcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(dqcb.builders))
	nodes := make([]*DataQueue, len(dqcb.builders))
	mutators := make([]Mutator, len(dqcb.builders))
	for i := range dqcb.builders {
		func(i int, root context.Context) {
			builder := dqcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DataQueueMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, dqcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, dqcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, dqcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (dqcb *DataQueueCreateBulk) SaveX(ctx context.Context) []*DataQueue {
	v, err := dqcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dqcb *DataQueueCreateBulk) Exec(ctx context.Context) error {
	_, err := dqcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dqcb *DataQueueCreateBulk) ExecX(ctx context.Context) {
	if err := dqcb.Exec(ctx); err != nil {
		panic(err)
	}
}
