// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/dataprediction"
	"github.com/labelworks/annoqueue/gen/ent/label"
	"github.com/labelworks/annoqueue/gen/ent/model"
)

// DataPredictionCreate is the builder for creating a DataPrediction entity.
type DataPredictionCreate struct {
	config
	mutation *DataPredictionMutation
	hooks    []Hook
}

// SetDataID sets the "data_id" field.
func (dpc *DataPredictionCreate) SetDataID(i int) *DataPredictionCreate {
	dpc.mutation.SetDataID(i)
	return dpc
}

// SetModelID sets the "model_id" field.
func (dpc *DataPredictionCreate) SetModelID(i int) *DataPredictionCreate {
	dpc.mutation.SetModelID(i)
	return dpc
}

// SetLabelID sets the "label_id" field.
func (dpc *DataPredictionCreate) SetLabelID(i int) *DataPredictionCreate {
	dpc.mutation.SetLabelID(i)
	return dpc
}

// SetProbability sets the "probability" field.
func (dpc *DataPredictionCreate) SetProbability(f float64) *DataPredictionCreate {
	dpc.mutation.SetProbability(f)
	return dpc
}

// SetData sets the "data" edge to the Data entity.
func (dpc *DataPredictionCreate) SetData(d *Data) *DataPredictionCreate {
	return dpc.SetDataID(d.ID)
}

// SetModel sets the "model" edge to the Model entity.
func (dpc *DataPredictionCreate) SetModel(m *Model) *DataPredictionCreate {
	return dpc.SetModelID(m.ID)
}

// SetLabel sets the "label" edge to the Label entity.
func (dpc *DataPredictionCreate) SetLabel(l *Label) *DataPredictionCreate {
	return dpc.SetLabelID(l.ID)
}

// Mutation returns the DataPredictionMutation object of the builder.
func (dpc *DataPredictionCreate) Mutation() *DataPredictionMutation {
	return dpc.mutation
}

// Save creates the DataPrediction in the database.
func (dpc *DataPredictionCreate) Save(ctx context.Context) (*DataPrediction, error) {
	return withHooks(ctx, dpc.sqlSave, dpc.mutation, dpc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (dpc *DataPredictionCreate) SaveX(ctx context.Context) *DataPrediction {
	v, err := dpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dpc *DataPredictionCreate) Exec(ctx context.Context) error {
	_, err := dpc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dpc *DataPredictionCreate) ExecX(ctx context.Context) {
	if err := dpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dpc *DataPredictionCreate) check() error {
	if _, ok := dpc.mutation.DataID(); !ok {
		return &ValidationError{Name: "data_id", err: errors.New(`ent: missing required field "DataPrediction.data_id"`)}
	}
	if _, ok := dpc.mutation.ModelID(); !ok {
		return &ValidationError{Name: "model_id", err: errors.New(`ent: missing required field "DataPrediction.model_id"`)}
	}
	if _, ok := dpc.mutation.LabelID(); !ok {
		return &ValidationError{Name: "label_id", err: errors.New(`ent: missing required field "DataPrediction.label_id"`)}
	}
	if _, ok := dpc.mutation.Probability(); !ok {
		return &ValidationError{Name: "probability", err: errors.New(`ent: missing required field "DataPrediction.probability"`)}
	}
	if len(dpc.mutation.DataIDs()) == 0 {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required edge "DataPrediction.data"`)}
	}
	if len(dpc.mutation.ModelIDs()) == 0 {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required edge "DataPrediction.model"`)}
	}
	if len(dpc.mutation.LabelIDs()) == 0 {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required edge "DataPrediction.label"`)}
	}
	return nil
}

func (dpc *DataPredictionCreate) sqlSave(ctx context.Context) (*DataPrediction, error) {
	if err := dpc.check(); err != nil {
		return nil, err
	}
	_node, _spec := dpc.createSpec()
	if err := sqlgraph.CreateNode(ctx, dpc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	dpc.mutation.id = &_node.ID
	dpc.mutation.done = true
	return _node, nil
}

func (dpc *DataPredictionCreate) createSpec() (*DataPrediction, *sqlgraph.CreateSpec) {
	var (
		_node = &DataPrediction{config: dpc.config}
		_spec = sqlgraph.NewCreateSpec(dataprediction.Table, sqlgraph.NewFieldSpec(dataprediction.FieldID, field.TypeInt))
	)
	if value, ok := dpc.mutation.Probability(); ok {
		_spec.SetField(dataprediction.FieldProbability, field.TypeFloat64, value)
		_node.Probability = value
	}
	if nodes := dpc.mutation.DataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dataprediction.DataTable,
			Columns: []string{dataprediction.DataColumn},
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
	if nodes := dpc.mutation.ModelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dataprediction.ModelTable,
			Columns: []string{dataprediction.ModelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(model.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ModelID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := dpc.mutation.LabelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dataprediction.LabelTable,
			Columns: []string{dataprediction.LabelColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(label.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LabelID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DataPredictionCreateBulk is the builder for creating many DataPrediction entities in bulk.
type DataPredictionCreateBulk struct {
	config
	err      error
	builders []*DataPredictionCreate
}

// Save creates the DataPrediction entities in the database.
func (dpcb *DataPredictionCreateBulk) Save(ctx context.Context) ([]*DataPrediction, error) {
	if dpcb.err != nil {
		return nil, dpcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(dpcb.builders))
	nodes := make([]*DataPrediction, len(dpcb.builders))
	mutators := make([]Mutator, len(dpcb.builders))
	for i := range dpcb.builders {
		func(i int, root context.Context) {
			builder := dpcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DataPredictionMutation)
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
					_, err = mutators[i+1].Mutate(root, dpcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, dpcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, dpcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (dpcb *DataPredictionCreateBulk) SaveX(ctx context.Context) []*DataPrediction {
	v, err := dpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dpcb *DataPredictionCreateBulk) Exec(ctx context.Context) error {
	_, err := dpcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dpcb *DataPredictionCreateBulk) ExecX(ctx context.Context) {
	if err := dpcb.Exec(ctx); err != nil {
		panic(err)
	}
}
