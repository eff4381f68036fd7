// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/dataqueue"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
	"github.com/labelworks/annoqueue/gen/ent/queue"
)

// DataQueueUpdate is the builder for updating DataQueue entities.
type DataQueueUpdate struct {
	config
	hooks    []Hook
	mutation *DataQueueMutation
}

// Where appends a list predicates to the DataQueueUpdate builder.
func (dqu *DataQueueUpdate) Where(ps ...predicate.DataQueue) *DataQueueUpdate {
	dqu.mutation.Where(ps...)
	return dqu
}

// SetDataID sets the "data_id" field.
func (dqu *DataQueueUpdate) SetDataID(i int) *DataQueueUpdate {
	dqu.mutation.SetDataID(i)
	return dqu
}

// SetNillableDataID sets the "data_id" field if the given value is not nil.
func (dqu *DataQueueUpdate) SetNillableDataID(i *int) *DataQueueUpdate {
	if i != nil {
		dqu.SetDataID(*i)
	}
	return dqu
}

// SetQueueID sets the "queue_id" field.
func (dqu *DataQueueUpdate) SetQueueID(i int) *DataQueueUpdate {
	dqu.mutation.SetQueueID(i)
	return dqu
}

// SetNillableQueueID sets the "queue_id" field if the given value is not nil.
func (dqu *DataQueueUpdate) SetNillableQueueID(i *int) *DataQueueUpdate {
	if i != nil {
		dqu.SetQueueID(*i)
	}
	return dqu
}

// SetData sets the "data" edge to the Data entity.
func (dqu *DataQueueUpdate) SetData(d *Data) *DataQueueUpdate {
	return dqu.SetDataID(d.ID)
}

// SetQueue sets the "queue" edge to the Queue entity.
func (dqu *DataQueueUpdate) SetQueue(q *Queue) *DataQueueUpdate {
	return dqu.SetQueueID(q.ID)
}

// Mutation returns the DataQueueMutation object of the builder.
func (dqu *DataQueueUpdate) Mutation() *DataQueueMutation {
	return dqu.mutation
}

// ClearData clears the "data" edge to the Data entity.
func (dqu *DataQueueUpdate) ClearData() *DataQueueUpdate {
	dqu.mutation.ClearData()
	return dqu
}

// ClearQueue clears the "queue" edge to the Queue entity.
func (dqu *DataQueueUpdate) ClearQueue() *DataQueueUpdate {
	dqu.mutation.ClearQueue()
	return dqu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (dqu *DataQueueUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, dqu.sqlSave, dqu.mutation, dqu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dqu *DataQueueUpdate) SaveX(ctx context.Context) int {
	affected, err := dqu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (dqu *DataQueueUpdate) Exec(ctx context.Context) error {
	_, err := dqu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dqu *DataQueueUpdate) ExecX(ctx context.Context) {
	if err := dqu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dqu *DataQueueUpdate) check() error {
	if dqu.mutation.DataCleared() && len(dqu.mutation.DataIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataQueue.data"`)
	}
	if dqu.mutation.QueueCleared() && len(dqu.mutation.QueueIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataQueue.queue"`)
	}
	return nil
}

func (dqu *DataQueueUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := dqu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataqueue.Table, dataqueue.Columns, sqlgraph.NewFieldSpec(dataqueue.FieldID, field.TypeInt))
	if ps := dqu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if dqu.mutation.DataCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dqu.mutation.DataIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if dqu.mutation.QueueCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dqu.mutation.QueueIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, dqu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataqueue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	dqu.mutation.done = true
	return n, nil
}

// DataQueueUpdateOne is the builder for updating a single DataQueue entity.
type DataQueueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DataQueueMutation
}

// SetDataID sets the "data_id" field.
func (dquo *DataQueueUpdateOne) SetDataID(i int) *DataQueueUpdateOne {
	dquo.mutation.SetDataID(i)
	return dquo
}

// SetNillableDataID sets the "data_id" field if the given value is not nil.
func (dquo *DataQueueUpdateOne) SetNillableDataID(i *int) *DataQueueUpdateOne {
	if i != nil {
		dquo.SetDataID(*i)
	}
	return dquo
}

// SetQueueID sets the "queue_id" field.
func (dquo *DataQueueUpdateOne) SetQueueID(i int) *DataQueueUpdateOne {
	dquo.mutation.SetQueueID(i)
	return dquo
}

// SetNillableQueueID sets the "queue_id" field if the given value is not nil.
func (dquo *DataQueueUpdateOne) SetNillableQueueID(i *int) *DataQueueUpdateOne {
	if i != nil {
		dquo.SetQueueID(*i)
	}
	return dquo
}

// SetData sets the "data" edge to the Data entity.
func (dquo *DataQueueUpdateOne) SetData(d *Data) *DataQueueUpdateOne {
	return dquo.SetDataID(d.ID)
}

// SetQueue sets the "queue" edge to the Queue entity.
func (dquo *DataQueueUpdateOne) SetQueue(q *Queue) *DataQueueUpdateOne {
	return dquo.SetQueueID(q.ID)
}

// Mutation returns the DataQueueMutation object of the builder.
func (dquo *DataQueueUpdateOne) Mutation() *DataQueueMutation {
	return dquo.mutation
}

// ClearData clears the "data" edge to the Data entity.
func (dquo *DataQueueUpdateOne) ClearData() *DataQueueUpdateOne {
	dquo.mutation.ClearData()
	return dquo
}

// ClearQueue clears the "queue" edge to the Queue entity.
func (dquo *DataQueueUpdateOne) ClearQueue() *DataQueueUpdateOne {
	dquo.mutation.ClearQueue()
	return dquo
}

// Where appends a list predicates to the DataQueueUpdate builder.
func (dquo *DataQueueUpdateOne) Where(ps ...predicate.DataQueue) *DataQueueUpdateOne {
	dquo.mutation.Where(ps...)
	return dquo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (dquo *DataQueueUpdateOne) Select(field string, fields ...string) *DataQueueUpdateOne {
	dquo.fields = append([]string{field}, fields...)
	return dquo
}

// Save executes the query and returns the updated DataQueue entity.
func (dquo *DataQueueUpdateOne) Save(ctx context.Context) (*DataQueue, error) {
	return withHooks(ctx, dquo.sqlSave, dquo.mutation, dquo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dquo *DataQueueUpdateOne) SaveX(ctx context.Context) *DataQueue {
	node, err := dquo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (dquo *DataQueueUpdateOne) Exec(ctx context.Context) error {
	_, err := dquo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dquo *DataQueueUpdateOne) ExecX(ctx context.Context) {
	if err := dquo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dquo *DataQueueUpdateOne) check() error {
	if dquo.mutation.DataCleared() && len(dquo.mutation.DataIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataQueue.data"`)
	}
	if dquo.mutation.QueueCleared() && len(dquo.mutation.QueueIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataQueue.queue"`)
	}
	return nil
}

func (dquo *DataQueueUpdateOne) sqlSave(ctx context.Context) (_node *DataQueue, err error) {
	if err := dquo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataqueue.Table, dataqueue.Columns, sqlgraph.NewFieldSpec(dataqueue.FieldID, field.TypeInt))
	id, ok := dquo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DataQueue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := dquo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dataqueue.FieldID)
		for _, f := range fields {
			if !dataqueue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dataqueue.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := dquo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if dquo.mutation.DataCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dquo.mutation.DataIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if dquo.mutation.QueueCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dquo.mutation.QueueIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DataQueue{config: dquo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, dquo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataqueue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	dquo.mutation.done = true
	return _node, nil
}
