// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/datauncertainty"
	"github.com/labelworks/annoqueue/gen/ent/model"
)

// DataUncertaintyCreate is the builder for creating a DataUncertainty entity.
type DataUncertaintyCreate struct {
	config
	mutation *DataUncertaintyMutation
	hooks    []Hook
}

// SetDataID sets the "data_id" field.
func (duc *DataUncertaintyCreate) SetDataID(i int) *DataUncertaintyCreate {
	duc.mutation.SetDataID(i)
	return duc
}

// SetModelID sets the "model_id" field.
func (duc *DataUncertaintyCreate) SetModelID(i int) *DataUncertaintyCreate {
	duc.mutation.SetModelID(i)
	return duc
}

// SetLeastConfident sets the "least_confident" field.
func (duc *DataUncertaintyCreate) SetLeastConfident(f float64) *DataUncertaintyCreate {
	duc.mutation.SetLeastConfident(f)
	return duc
}

// SetMargin sets the "margin" field.
func (duc *DataUncertaintyCreate) SetMargin(f float64) *DataUncertaintyCreate {
	duc.mutation.SetMargin(f)
	return duc
}

// SetEntropy sets the "entropy" field.
func (duc *DataUncertaintyCreate) SetEntropy(f float64) *DataUncertaintyCreate {
	duc.mutation.SetEntropy(f)
	return duc
}

// SetData sets the "data" edge to the Data entity.
func (duc *DataUncertaintyCreate) SetData(d *Data) *DataUncertaintyCreate {
	return duc.SetDataID(d.ID)
}

// SetModel sets the "model" edge to the Model entity.
func (duc *DataUncertaintyCreate) SetModel(m *Model) *DataUncertaintyCreate {
	return duc.SetModelID(m.ID)
}

// Mutation returns the DataUncertaintyMutation object of the builder.
func (duc *DataUncertaintyCreate) Mutation() *DataUncertaintyMutation {
	return duc.mutation
}

// Save creates the DataUncertainty in the database.
func (duc *DataUncertaintyCreate) Save(ctx context.Context) (*DataUncertainty, error) {
	return withHooks(ctx, duc.sqlSave, duc.mutation, duc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (duc *DataUncertaintyCreate) SaveX(ctx context.Context) *DataUncertainty {
	v, err := duc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (duc *DataUncertaintyCreate) Exec(ctx context.Context) error {
	_, err := duc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (duc *DataUncertaintyCreate) ExecX(ctx context.Context) {
	if err := duc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (duc *DataUncertaintyCreate) check() error {
	if _, ok := duc.mutation.DataID(); !ok {
		return &ValidationError{Name: "data_id", err: errors.New(`ent: missing required field "DataUncertainty.data_id"`)}
	}
	if _, ok := duc.mutation.ModelID(); !ok {
		return &ValidationError{Name: "model_id", err: errors.New(`ent: missing required field "DataUncertainty.model_id"`)}
	}
	if _, ok := duc.mutation.LeastConfident(); !ok {
		return &ValidationError{Name: "least_confident", err: errors.New(`ent: missing required field "DataUncertainty.least_confident"`)}
	}
	if _, ok := duc.mutation.Margin(); !ok {
		return &ValidationError{Name: "margin", err: errors.New(`ent: missing required field "DataUncertainty.margin"`)}
	}
	if _, ok := duc.mutation.Entropy(); !ok {
		return &ValidationError{Name: "entropy", err: errors.New(`ent: missing required field "DataUncertainty.entropy"`)}
	}
	if len(duc.mutation.DataIDs()) == 0 {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required edge "DataUncertainty.data"`)}
	}
	if len(duc.mutation.ModelIDs()) == 0 {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required edge "DataUncertainty.model"`)}
	}
	return nil
}

func (duc *DataUncertaintyCreate) sqlSave(ctx context.Context) (*DataUncertainty, error) {
	if err := duc.check(); err != nil {
		return nil, err
	}
	_node, _spec := duc.createSpec()
	if err := sqlgraph.CreateNode(ctx, duc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	duc.mutation.id = &_node.ID
	duc.mutation.done = true
	return _node, nil
}

func (duc *DataUncertaintyCreate) createSpec() (*DataUncertainty, *sqlgraph.CreateSpec) {
	var (
		_node = &DataUncertainty{config: duc.config}
		_spec = sqlgraph.NewCreateSpec(datauncertainty.Table, sqlgraph.NewFieldSpec(datauncertainty.FieldID, field.TypeInt))
	)
	if value, ok := duc.mutation.LeastConfident(); ok {
		_spec.SetField(datauncertainty.FieldLeastConfident, field.TypeFloat64, value)
		_node.LeastConfident = value
	}
	if value, ok := duc.mutation.Margin(); ok {
		_spec.SetField(datauncertainty.FieldMargin, field.TypeFloat64, value)
		_node.Margin = value
	}
	if value, ok := duc.mutation.Entropy(); ok {
		_spec.SetField(datauncertainty.FieldEntropy, field.TypeFloat64, value)
		_node.Entropy = value
	}
	if nodes := duc.mutation.DataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datauncertainty.DataTable,
			Columns: []string{datauncertainty.DataColumn},
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
	if nodes := duc.mutation.ModelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datauncertainty.ModelTable,
			Columns: []string{datauncertainty.ModelColumn},
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
	return _node, _spec
}

// DataUncertaintyCreateBulk is the builder for creating many DataUncertainty entities in bulk.
type DataUncertaintyCreateBulk struct {
	config
	err      error
	builders []*DataUncertaintyCreate
}

// Save creates the DataUncertainty entities in the database.
func (ducb *DataUncertaintyCreateBulk) Save(ctx context.Context) ([]*DataUncertainty, error) {
	if ducb.err != nil {
		return nil, ducb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ducb.builders))
	nodes := make([]*DataUncertainty, len(ducb.builders))
	mutators := make([]Mutator, len(ducb.builders))
	for i := range ducb.builders {
		func(i int, root context.Context) {
			builder := ducb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DataUncertaintyMutation)
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
					_, err = mutators[i+1].Mutate(root, ducb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ducb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ducb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ducb *DataUncertaintyCreateBulk) SaveX(ctx context.Context) []*DataUncertainty {
	v, err := ducb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ducb *DataUncertaintyCreateBulk) Exec(ctx context.Context) error {
	_, err := ducb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ducb *DataUncertaintyCreateBulk) ExecX(ctx context.Context) {
	if err := ducb.Exec(ctx); err != nil {
		panic(err)
	}
}
