// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/labelworks/annoqueue/gen/ent/assigneddata"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/profile"
	"github.com/labelworks/annoqueue/gen/ent/queue"
)

// AssignedDataCreate is the builder for creating a AssignedData entity.
type AssignedDataCreate struct {
	config
	mutation *AssignedDataMutation
	hooks    []Hook
}

// SetDataID sets the "data_id" field.
func (adc *AssignedDataCreate) SetDataID(i int) *AssignedDataCreate {
	adc.mutation.SetDataID(i)
	return adc
}

// SetProfileID sets the "profile_id" field.
func (adc *AssignedDataCreate) SetProfileID(u uuid.UUID) *AssignedDataCreate {
	adc.mutation.SetProfileID(u)
	return adc
}

// SetQueueID sets the "queue_id" field.
func (adc *AssignedDataCreate) SetQueueID(i int) *AssignedDataCreate {
	adc.mutation.SetQueueID(i)
	return adc
}

// SetAssignedAt sets the "assigned_at" field.
func (adc *AssignedDataCreate) SetAssignedAt(t time.Time) *AssignedDataCreate {
	adc.mutation.SetAssignedAt(t)
	return adc
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (adc *AssignedDataCreate) SetNillableAssignedAt(t *time.Time) *AssignedDataCreate {
	if t != nil {
		adc.SetAssignedAt(*t)
	}
	return adc
}

// SetData sets the "data" edge to the Data entity.
func (adc *AssignedDataCreate) SetData(d *Data) *AssignedDataCreate {
	return adc.SetDataID(d.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (adc *AssignedDataCreate) SetProfile(p *Profile) *AssignedDataCreate {
	return adc.SetProfileID(p.ID)
}

// SetQueue sets the "queue" edge to the Queue entity.
func (adc *AssignedDataCreate) SetQueue(q *Queue) *AssignedDataCreate {
	return adc.SetQueueID(q.ID)
}

// Mutation returns the AssignedDataMutation object of the builder.
func (adc *AssignedDataCreate) Mutation() *AssignedDataMutation {
	return adc.mutation
}

// Save creates the AssignedData in the database.
func (adc *AssignedDataCreate) Save(ctx context.Context) (*AssignedData, error) {
	adc.defaults()
	return withHooks(ctx, adc.sqlSave, adc.mutation, adc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (adc *AssignedDataCreate) SaveX(ctx context.Context) *AssignedData {
	v, err := adc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (adc *AssignedDataCreate) Exec(ctx context.Context) error {
	_, err := adc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (adc *AssignedDataCreate) ExecX(ctx context.Context) {
	if err := adc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (adc *AssignedDataCreate) defaults() {
	if _, ok := adc.mutation.AssignedAt(); !ok {
		v := assigneddata.DefaultAssignedAt()
		adc.mutation.SetAssignedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (adc *AssignedDataCreate) check() error {
	if _, ok := adc.mutation.DataID(); !ok {
		return &ValidationError{Name: "data_id", err: errors.New(`ent: missing required field "AssignedData.data_id"`)}
	}
	if _, ok := adc.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "AssignedData.profile_id"`)}
	}
	if _, ok := adc.mutation.QueueID(); !ok {
		return &ValidationError{Name: "queue_id", err: errors.New(`ent: missing required field "AssignedData.queue_id"`)}
	}
	if _, ok := adc.mutation.AssignedAt(); !ok {
		return &ValidationError{Name: "assigned_at", err: errors.New(`ent: missing required field "AssignedData.assigned_at"`)}
	}
	if len(adc.mutation.DataIDs()) == 0 {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required edge "AssignedData.data"`)}
	}
	if len(adc.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "AssignedData.profile"`)}
	}
	if len(adc.mutation.QueueIDs()) == 0 {
		return &ValidationError{Name: "queue", err: errors.New(`ent: missing required edge "AssignedData.queue"`)}
	}
	return nil
}

func (adc *AssignedDataCreate) sqlSave(ctx context.Context) (*AssignedData, error) {
	if err := adc.check(); err != nil {
		return nil, err
	}
	_node, _spec := adc.createSpec()
	if err := sqlgraph.CreateNode(ctx, adc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	adc.mutation.id = &_node.ID
	adc.mutation.done = true
	return _node, nil
}

func (adc *AssignedDataCreate) createSpec() (*AssignedData, *sqlgraph.CreateSpec) {
	var (
		_node = &AssignedData{config: adc.config}
		_spec = sqlgraph.NewCreateSpec(assigneddata.Table, sqlgraph.NewFieldSpec(assigneddata.FieldID, field.TypeInt))
	)
	if value, ok := adc.mutation.AssignedAt(); ok {
		_spec.SetField(assigneddata.FieldAssignedAt, field.TypeTime, value)
		_node.AssignedAt = value
	}
	if nodes := adc.mutation.DataIDs(); len(nodes) > 0 {
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
		_node.DataID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := adc.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := adc.mutation.QueueIDs(); len(nodes) > 0 {
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
		_node.QueueID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AssignedDataCreateBulk is the builder for creating many AssignedData entities in bulk.
type AssignedDataCreateBulk struct {
	config
	err      error
	builders []*AssignedDataCreate
}

// Save creates the AssignedData entities in the database.
func (adcb *AssignedDataCreateBulk) Save(ctx context.Context) ([]*AssignedData, error) {
	if adcb.err != nil {
		return nil, adcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(adcb.builders))
	nodes := make([]*AssignedData, len(adcb.builders))
	mutators := make([]Mutator, len(adcb.builders))
	for i := range adcb.builders {
		func(i int, root context.Context) {
			builder := adcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssignedDataMutation)
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
					_, err = mutators[i+1].Mutate(root, adcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, adcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, adcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (adcb *AssignedDataCreateBulk) SaveX(ctx context.Context) []*AssignedData {
	v, err := adcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (adcb *AssignedDataCreateBulk) Exec(ctx context.Context) error {
	_, err := adcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (adcb *AssignedDataCreateBulk) ExecX(ctx context.Context) {
	if err := adcb.Exec(ctx); err != nil {
		panic(err)
	}
}
