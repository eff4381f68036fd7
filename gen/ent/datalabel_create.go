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
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/datalabel"
	"github.com/labelworks/annoqueue/gen/ent/label"
	"github.com/labelworks/annoqueue/gen/ent/profile"
)

// DataLabelCreate is the builder for creating a DataLabel entity.
type DataLabelCreate struct {
	config
	mutation *DataLabelMutation
	hooks    []Hook
}

// SetDataID sets the "data_id" field.
func (dlc *DataLabelCreate) SetDataID(i int) *DataLabelCreate {
	dlc.mutation.SetDataID(i)
	return dlc
}

// SetLabelID sets the "label_id" field.
func (dlc *DataLabelCreate) SetLabelID(i int) *DataLabelCreate {
	dlc.mutation.SetLabelID(i)
	return dlc
}

// SetProfileID sets the "profile_id" field.
func (dlc *DataLabelCreate) SetProfileID(u uuid.UUID) *DataLabelCreate {
	dlc.mutation.SetProfileID(u)
	return dlc
}

// SetTrainingSet sets the "training_set" field.
func (dlc *DataLabelCreate) SetTrainingSet(i int) *DataLabelCreate {
	dlc.mutation.SetTrainingSet(i)
	return dlc
}

// SetLabeledAt sets the "labeled_at" field.
func (dlc *DataLabelCreate) SetLabeledAt(t time.Time) *DataLabelCreate {
	dlc.mutation.SetLabeledAt(t)
	return dlc
}

// SetNillableLabeledAt sets the "labeled_at" field if the given value is not nil.
func (dlc *DataLabelCreate) SetNillableLabeledAt(t *time.Time) *DataLabelCreate {
	if t != nil {
		dlc.SetLabeledAt(*t)
	}
	return dlc
}

// SetData sets the "data" edge to the Data entity.
func (dlc *DataLabelCreate) SetData(d *Data) *DataLabelCreate {
	return dlc.SetDataID(d.ID)
}

// SetLabel sets the "label" edge to the Label entity.
func (dlc *DataLabelCreate) SetLabel(l *Label) *DataLabelCreate {
	return dlc.SetLabelID(l.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (dlc *DataLabelCreate) SetProfile(p *Profile) *DataLabelCreate {
	return dlc.SetProfileID(p.ID)
}

// Mutation returns the DataLabelMutation object of the builder.
func (dlc *DataLabelCreate) Mutation() *DataLabelMutation {
	return dlc.mutation
}

// Save creates the DataLabel in the database.
func (dlc *DataLabelCreate) Save(ctx context.Context) (*DataLabel, error) {
	dlc.defaults()
	return withHooks(ctx, dlc.sqlSave, dlc.mutation, dlc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (dlc *DataLabelCreate) SaveX(ctx context.Context) *DataLabel {
	v, err := dlc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dlc *DataLabelCreate) Exec(ctx context.Context) error {
	_, err := dlc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dlc *DataLabelCreate) ExecX(ctx context.Context) {
	if err := dlc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (dlc *DataLabelCreate) defaults() {
	if _, ok := dlc.mutation.LabeledAt(); !ok {
		v := datalabel.DefaultLabeledAt()
		dlc.mutation.SetLabeledAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dlc *DataLabelCreate) check() error {
	if _, ok := dlc.mutation.DataID(); !ok {
		return &ValidationError{Name: "data_id", err: errors.New(`ent: missing required field "DataLabel.data_id"`)}
	}
	if _, ok := dlc.mutation.LabelID(); !ok {
		return &ValidationError{Name: "label_id", err: errors.New(`ent: missing required field "DataLabel.label_id"`)}
	}
	if _, ok := dlc.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "DataLabel.profile_id"`)}
	}
	if _, ok := dlc.mutation.TrainingSet(); !ok {
		return &ValidationError{Name: "training_set", err: errors.New(`ent: missing required field "DataLabel.training_set"`)}
	}
	if v, ok := dlc.mutation.TrainingSet(); ok {
		if err := datalabel.TrainingSetValidator(v); err != nil {
			return &ValidationError{Name: "training_set", err: fmt.Errorf(`ent: validator failed for field "DataLabel.training_set": %w`, err)}
		}
	}
	if _, ok := dlc.mutation.LabeledAt(); !ok {
		return &ValidationError{Name: "labeled_at", err: errors.New(`ent: missing required field "DataLabel.labeled_at"`)}
	}
	if len(dlc.mutation.DataIDs()) == 0 {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required edge "DataLabel.data"`)}
	}
	if len(dlc.mutation.LabelIDs()) == 0 {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required edge "DataLabel.label"`)}
	}
	if len(dlc.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "DataLabel.profile"`)}
	}
	return nil
}

func (dlc *DataLabelCreate) sqlSave(ctx context.Context) (*DataLabel, error) {
	if err := dlc.check(); err != nil {
		return nil, err
	}
	_node, _spec := dlc.createSpec()
	if err := sqlgraph.CreateNode(ctx, dlc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	dlc.mutation.id = &_node.ID
	dlc.mutation.done = true
	return _node, nil
}

func (dlc *DataLabelCreate) createSpec() (*DataLabel, *sqlgraph.CreateSpec) {
	var (
		_node = &DataLabel{config: dlc.config}
		_spec = sqlgraph.NewCreateSpec(datalabel.Table, sqlgraph.NewFieldSpec(datalabel.FieldID, field.TypeInt))
	)
	if value, ok := dlc.mutation.TrainingSet(); ok {
		_spec.SetField(datalabel.FieldTrainingSet, field.TypeInt, value)
		_node.TrainingSet = value
	}
	if value, ok := dlc.mutation.LabeledAt(); ok {
		_spec.SetField(datalabel.FieldLabeledAt, field.TypeTime, value)
		_node.LabeledAt = value
	}
	if nodes := dlc.mutation.DataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datalabel.DataTable,
			Columns: []string{datalabel.DataColumn},
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
	if nodes := dlc.mutation.LabelIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datalabel.LabelTable,
			Columns: []string{datalabel.LabelColumn},
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
	if nodes := dlc.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   datalabel.ProfileTable,
			Columns: []string{datalabel.ProfileColumn},
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
	return _node, _spec
}

// DataLabelCreateBulk is the builder for creating many DataLabel entities in bulk.
type DataLabelCreateBulk struct {
	config
	err      error
	builders []*DataLabelCreate
}

// Save creates the DataLabel entities in the database.
func (dlcb *DataLabelCreateBulk) Save(ctx context.Context) ([]*DataLabel, error) {
	if dlcb.err != nil {
		return nil, dlcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(dlcb.builders))
	nodes := make([]*DataLabel, len(dlcb.builders))
	mutators := make([]Mutator, len(dlcb.builders))
	for i := range dlcb.builders {
		func(i int, root context.Context) {
			builder := dlcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DataLabelMutation)
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
					_, err = mutators[i+1].Mutate(root, dlcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, dlcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, dlcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (dlcb *DataLabelCreateBulk) SaveX(ctx context.Context) []*DataLabel {
	v, err := dlcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dlcb *DataLabelCreateBulk) Exec(ctx context.Context) error {
	_, err := dlcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dlcb *DataLabelCreateBulk) ExecX(ctx context.Context) {
	if err := dlcb.Exec(ctx); err != nil {
		panic(err)
	}
}
