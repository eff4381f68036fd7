// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/labelworks/annoqueue/gen/ent/assigneddata"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
	"github.com/labelworks/annoqueue/gen/ent/profile"
	"github.com/labelworks/annoqueue/gen/ent/queue"
)

// AssignedDataUpdate is the builder for updating AssignedData entities.
type AssignedDataUpdate struct {
	config
	hooks    []Hook
	mutation *AssignedDataMutation
}

// Where appends a list predicates to the AssignedDataUpdate builder.
func (adu *AssignedDataUpdate) Where(ps ...predicate.AssignedData) *AssignedDataUpdate {
	adu.mutation.Where(ps...)
	return adu
}

// SetDataID sets the "data_id" field.
func (adu *AssignedDataUpdate) SetDataID(i int) *AssignedDataUpdate {
	adu.mutation.SetDataID(i)
	return adu
}

// SetNillableDataID sets the "data_id" field if the given value is not nil.
func (adu *AssignedDataUpdate) SetNillableDataID(i *int) *AssignedDataUpdate {
	if i != nil {
		adu.SetDataID(*i)
	}
	return adu
}

// SetProfileID sets the "profile_id" field.
func (adu *AssignedDataUpdate) SetProfileID(u uuid.UUID) *AssignedDataUpdate {
	adu.mutation.SetProfileID(u)
	return adu
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (adu *AssignedDataUpdate) SetNillableProfileID(u *uuid.UUID) *AssignedDataUpdate {
	if u != nil {
		adu.SetProfileID(*u)
	}
	return adu
}

// SetQueueID sets the "queue_id" field.
func (adu *AssignedDataUpdate) SetQueueID(i int) *AssignedDataUpdate {
	adu.mutation.SetQueueID(i)
	return adu
}

// SetNillableQueueID sets the "queue_id" field if the given value is not nil.
func (adu *AssignedDataUpdate) SetNillableQueueID(i *int) *AssignedDataUpdate {
	if i != nil {
		adu.SetQueueID(*i)
	}
	return adu
}

// SetAssignedAt sets the "assigned_at" field.
func (adu *AssignedDataUpdate) SetAssignedAt(t time.Time) *AssignedDataUpdate {
	adu.mutation.SetAssignedAt(t)
	return adu
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (adu *AssignedDataUpdate) SetNillableAssignedAt(t *time.Time) *AssignedDataUpdate {
	if t != nil {
		adu.SetAssignedAt(*t)
	}
	return adu
}

// SetData sets the "data" edge to the Data entity.
func (adu *AssignedDataUpdate) SetData(d *Data) *AssignedDataUpdate {
	return adu.SetDataID(d.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (adu *AssignedDataUpdate) SetProfile(p *Profile) *AssignedDataUpdate {
	return adu.SetProfileID(p.ID)
}

// SetQueue sets the "queue" edge to the Queue entity.
func (adu *AssignedDataUpdate) SetQueue(q *Queue) *AssignedDataUpdate {
	return adu.SetQueueID(q.ID)
}

// Mutation returns the AssignedDataMutation object of the builder.
func (adu *AssignedDataUpdate) Mutation() *AssignedDataMutation {
	return adu.mutation
}

// ClearData clears the "data" edge to the Data entity.
func (adu *AssignedDataUpdate) ClearData() *AssignedDataUpdate {
	adu.mutation.ClearData()
	return adu
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (adu *AssignedDataUpdate) ClearProfile() *AssignedDataUpdate {
	adu.mutation.ClearProfile()
	return adu
}

// ClearQueue clears the "queue" edge to the Queue entity.
func (adu *AssignedDataUpdate) ClearQueue() *AssignedDataUpdate {
	adu.mutation.ClearQueue()
	return adu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (adu *AssignedDataUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, adu.sqlSave, adu.mutation, adu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (adu *AssignedDataUpdate) SaveX(ctx context.Context) int {
	affected, err := adu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (adu *AssignedDataUpdate) Exec(ctx context.Context) error {
	_, err := adu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (adu *AssignedDataUpdate) ExecX(ctx context.Context) {
	if err := adu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (adu *AssignedDataUpdate) check() error {
	if adu.mutation.DataCleared() && len(adu.mutation.DataIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssignedData.data"`)
	}
	if adu.mutation.ProfileCleared() && len(adu.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssignedData.profile"`)
	}
	if adu.mutation.QueueCleared() && len(adu.mutation.QueueIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssignedData.queue"`)
	}
	return nil
}

func (adu *AssignedDataUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := adu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(assigneddata.Table, assigneddata.Columns, sqlgraph.NewFieldSpec(assigneddata.FieldID, field.TypeInt))
	if ps := adu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := adu.mutation.AssignedAt(); ok {
		_spec.SetField(assigneddata.FieldAssignedAt, field.TypeTime, value)
	}
	if adu.mutation.DataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assigneddata.DataTable,
			Columns: []string{assigneddata.DataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(data.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := adu.mutation.DataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assigneddata.DataTable,
			Columns: []string{assigneddata.DataColumn},
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
	if adu.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assigneddata.ProfileTable,
			Columns: []string{assigneddata.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := adu.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assigneddata.ProfileTable,
			Columns: []string{assigneddata.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if adu.mutation.QueueCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assigneddata.QueueTable,
			Columns: []string{assigneddata.QueueColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(queue.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := adu.mutation.QueueIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assigneddata.QueueTable,
			Columns: []string{assigneddata.QueueColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, adu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assigneddata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	adu.mutation.done = true
	return n, nil
}

// AssignedDataUpdateOne is the builder for updating a single AssignedData entity.
type AssignedDataUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssignedDataMutation
}

// SetDataID sets the "data_id" field.
func (aduo *AssignedDataUpdateOne) SetDataID(i int) *AssignedDataUpdateOne {
	aduo.mutation.SetDataID(i)
	return aduo
}

// SetNillableDataID sets the "data_id" field if the given value is not nil.
func (aduo *AssignedDataUpdateOne) SetNillableDataID(i *int) *AssignedDataUpdateOne {
	if i != nil {
		aduo.SetDataID(*i)
	}
	return aduo
}

// SetProfileID sets the "profile_id" field.
func (aduo *AssignedDataUpdateOne) SetProfileID(u uuid.UUID) *AssignedDataUpdateOne {
	aduo.mutation.SetProfileID(u)
	return aduo
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (aduo *AssignedDataUpdateOne) SetNillableProfileID(u *uuid.UUID) *AssignedDataUpdateOne {
	if u != nil {
		aduo.SetProfileID(*u)
	}
	return aduo
}

// SetQueueID sets the "queue_id" field.
func (aduo *AssignedDataUpdateOne) SetQueueID(i int) *AssignedDataUpdateOne {
	aduo.mutation.SetQueueID(i)
	return aduo
}

// SetNillableQueueID sets the "queue_id" field if the given value is not nil.
func (aduo *AssignedDataUpdateOne) SetNillableQueueID(i *int) *AssignedDataUpdateOne {
	if i != nil {
		aduo.SetQueueID(*i)
	}
	return aduo
}

// SetAssignedAt sets the "assigned_at" field.
func (aduo *AssignedDataUpdateOne) SetAssignedAt(t time.Time) *AssignedDataUpdateOne {
	aduo.mutation.SetAssignedAt(t)
	return aduo
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (aduo *AssignedDataUpdateOne) SetNillableAssignedAt(t *time.Time) *AssignedDataUpdateOne {
	if t != nil {
		aduo.SetAssignedAt(*t)
	}
	return aduo
}

// SetData sets the "data" edge to the Data entity.
func (aduo *AssignedDataUpdateOne) SetData(d *Data) *AssignedDataUpdateOne {
	return aduo.SetDataID(d.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (aduo *AssignedDataUpdateOne) SetProfile(p *Profile) *AssignedDataUpdateOne {
	return aduo.SetProfileID(p.ID)
}

// SetQueue sets the "queue" edge to the Queue entity.
func (aduo *AssignedDataUpdateOne) SetQueue(q *Queue) *AssignedDataUpdateOne {
	return aduo.SetQueueID(q.ID)
}

// Mutation returns the AssignedDataMutation object of the builder.
func (aduo *AssignedDataUpdateOne) Mutation() *AssignedDataMutation {
	return aduo.mutation
}

// ClearData clears the "data" edge to the Data entity.
func (aduo *AssignedDataUpdateOne) ClearData() *AssignedDataUpdateOne {
	aduo.mutation.ClearData()
	return aduo
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (aduo *AssignedDataUpdateOne) ClearProfile() *AssignedDataUpdateOne {
	aduo.mutation.ClearProfile()
	return aduo
}

// ClearQueue clears the "queue" edge to the Queue entity.
func (aduo *AssignedDataUpdateOne) ClearQueue() *AssignedDataUpdateOne {
	aduo.mutation.ClearQueue()
	return aduo
}

// Where appends a list predicates to the AssignedDataUpdate builder.
func (aduo *AssignedDataUpdateOne) Where(ps ...predicate.AssignedData) *AssignedDataUpdateOne {
	aduo.mutation.Where(ps...)
	return aduo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aduo *AssignedDataUpdateOne) Select(field string, fields ...string) *AssignedDataUpdateOne {
	aduo.fields = append([]string{field}, fields...)
	return aduo
}

// Save executes the query and returns the updated AssignedData entity.
func (aduo *AssignedDataUpdateOne) Save(ctx context.Context) (*AssignedData, error) {
	return withHooks(ctx, aduo.sqlSave, aduo.mutation, aduo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aduo *AssignedDataUpdateOne) SaveX(ctx context.Context) *AssignedData {
	node, err := aduo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aduo *AssignedDataUpdateOne) Exec(ctx context.Context) error {
	_, err := aduo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aduo *AssignedDataUpdateOne) ExecX(ctx context.Context) {
	if err := aduo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aduo *AssignedDataUpdateOne) check() error {
	if aduo.mutation.DataCleared() && len(aduo.mutation.DataIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssignedData.data"`)
	}
	if aduo.mutation.ProfileCleared() && len(aduo.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssignedData.profile"`)
	}
	if aduo.mutation.QueueCleared() && len(aduo.mutation.QueueIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssignedData.queue"`)
	}
	return nil
}

func (aduo *AssignedDataUpdateOne) sqlSave(ctx context.Context) (_node *AssignedData, err error) {
	if err := aduo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assigneddata.Table, assigneddata.Columns, sqlgraph.NewFieldSpec(assigneddata.FieldID, field.TypeInt))
	id, ok := aduo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssignedData.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aduo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assigneddata.FieldID)
		for _, f := range fields {
			if !assigneddata.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assigneddata.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aduo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aduo.mutation.AssignedAt(); ok {
		_spec.SetField(assigneddata.FieldAssignedAt, field.TypeTime, value)
	}
	if aduo.mutation.DataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assigneddata.DataTable,
			Columns: []string{assigneddata.DataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(data.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := aduo.mutation.DataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assigneddata.DataTable,
			Columns: []string{assigneddata.DataColumn},
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
	if aduo.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assigneddata.ProfileTable,
			Columns: []string{assigneddata.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := aduo.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assigneddata.ProfileTable,
			Columns: []string{assigneddata.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if aduo.mutation.QueueCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assigneddata.QueueTable,
			Columns: []string{assigneddata.QueueColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(queue.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := aduo.mutation.QueueIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assigneddata.QueueTable,
			Columns: []string{assigneddata.QueueColumn},
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
	_node = &AssignedData{config: aduo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aduo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assigneddata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aduo.mutation.done = true
	return _node, nil
}
