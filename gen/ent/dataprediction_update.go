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
	"github.com/labelworks/annoqueue/gen/ent/dataprediction"
	"github.com/labelworks/annoqueue/gen/ent/label"
	"github.com/labelworks/annoqueue/gen/ent/model"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
)

// DataPredictionUpdate is the builder for updating DataPrediction entities.
type DataPredictionUpdate struct {
	config
	hooks    []Hook
	mutation *DataPredictionMutation
}

// Where appends a list predicates to the DataPredictionUpdate builder.
func (dpu *DataPredictionUpdate) Where(ps ...predicate.DataPrediction) *DataPredictionUpdate {
	dpu.mutation.Where(ps...)
	return dpu
}

// SetDataID sets the "data_id" field.
func (dpu *DataPredictionUpdate) SetDataID(i int) *DataPredictionUpdate {
	dpu.mutation.SetDataID(i)
	return dpu
}

// SetNillableDataID sets the "data_id" field if the given value is not nil.
func (dpu *DataPredictionUpdate) SetNillableDataID(i *int) *DataPredictionUpdate {
	if i != nil {
		dpu.SetDataID(*i)
	}
	return dpu
}

// SetModelID sets the "model_id" field.
func (dpu *DataPredictionUpdate) SetModelID(i int) *DataPredictionUpdate {
	dpu.mutation.SetModelID(i)
	return dpu
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (dpu *DataPredictionUpdate) SetNillableModelID(i *int) *DataPredictionUpdate {
	if i != nil {
		dpu.SetModelID(*i)
	}
	return dpu
}

// SetLabelID sets the "label_id" field.
func (dpu *DataPredictionUpdate) SetLabelID(i int) *DataPredictionUpdate {
	dpu.mutation.SetLabelID(i)
	return dpu
}

// SetNillableLabelID sets the "label_id" field if the given value is not nil.
func (dpu *DataPredictionUpdate) SetNillableLabelID(i *int) *DataPredictionUpdate {
	if i != nil {
		dpu.SetLabelID(*i)
	}
	return dpu
}

// SetProbability sets the "probability" field.
func (dpu *DataPredictionUpdate) SetProbability(f float64) *DataPredictionUpdate {
	dpu.mutation.ResetProbability()
	dpu.mutation.SetProbability(f)
	return dpu
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (dpu *DataPredictionUpdate) SetNillableProbability(f *float64) *DataPredictionUpdate {
	if f != nil {
		dpu.SetProbability(*f)
	}
	return dpu
}

// AddProbability adds f to the "probability" field.
func (dpu *DataPredictionUpdate) AddProbability(f float64) *DataPredictionUpdate {
	dpu.mutation.AddProbability(f)
	return dpu
}

// SetData sets the "data" edge to the Data entity.
func (dpu *DataPredictionUpdate) SetData(d *Data) *DataPredictionUpdate {
	return dpu.SetDataID(d.ID)
}

// SetModel sets the "model" edge to the Model entity.
func (dpu *DataPredictionUpdate) SetModel(m *Model) *DataPredictionUpdate {
	return dpu.SetModelID(m.ID)
}

// SetLabel sets the "label" edge to the Label entity.
func (dpu *DataPredictionUpdate) SetLabel(l *Label) *DataPredictionUpdate {
	return dpu.SetLabelID(l.ID)
}

// Mutation returns the DataPredictionMutation object of the builder.
func (dpu *DataPredictionUpdate) Mutation() *DataPredictionMutation {
	return dpu.mutation
}

// ClearData clears the "data" edge to the Data entity.
func (dpu *DataPredictionUpdate) ClearData() *DataPredictionUpdate {
	dpu.mutation.ClearData()
	return dpu
}

// ClearModel clears the "model" edge to the Model entity.
func (dpu *DataPredictionUpdate) ClearModel() *DataPredictionUpdate {
	dpu.mutation.ClearModel()
	return dpu
}

// ClearLabel clears the "label" edge to the Label entity.
func (dpu *DataPredictionUpdate) ClearLabel() *DataPredictionUpdate {
	dpu.mutation.ClearLabel()
	return dpu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (dpu *DataPredictionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, dpu.sqlSave, dpu.mutation, dpu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dpu *DataPredictionUpdate) SaveX(ctx context.Context) int {
	affected, err := dpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (dpu *DataPredictionUpdate) Exec(ctx context.Context) error {
	_, err := dpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dpu *DataPredictionUpdate) ExecX(ctx context.Context) {
	if err := dpu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dpu *DataPredictionUpdate) check() error {
	if dpu.mutation.DataCleared() && len(dpu.mutation.DataIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataPrediction.data"`)
	}
	if dpu.mutation.ModelCleared() && len(dpu.mutation.ModelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataPrediction.model"`)
	}
	if dpu.mutation.LabelCleared() && len(dpu.mutation.LabelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataPrediction.label"`)
	}
	return nil
}

func (dpu *DataPredictionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := dpu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataprediction.Table, dataprediction.Columns, sqlgraph.NewFieldSpec(dataprediction.FieldID, field.TypeInt))
	if ps := dpu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dpu.mutation.Probability(); ok {
		_spec.SetField(dataprediction.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := dpu.mutation.AddedProbability(); ok {
		_spec.AddField(dataprediction.FieldProbability, field.TypeFloat64, value)
	}
	if dpu.mutation.DataCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dpu.mutation.DataIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if dpu.mutation.ModelCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dpu.mutation.ModelIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if dpu.mutation.LabelCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dpu.mutation.LabelIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, dpu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataprediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	dpu.mutation.done = true
	return n, nil
}

// DataPredictionUpdateOne is the builder for updating a single DataPrediction entity.
type DataPredictionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DataPredictionMutation
}

// SetDataID sets the "data_id" field.
func (dpuo *DataPredictionUpdateOne) SetDataID(i int) *DataPredictionUpdateOne {
	dpuo.mutation.SetDataID(i)
	return dpuo
}

// SetNillableDataID sets the "data_id" field if the given value is not nil.
func (dpuo *DataPredictionUpdateOne) SetNillableDataID(i *int) *DataPredictionUpdateOne {
	if i != nil {
		dpuo.SetDataID(*i)
	}
	return dpuo
}

// SetModelID sets the "model_id" field.
func (dpuo *DataPredictionUpdateOne) SetModelID(i int) *DataPredictionUpdateOne {
	dpuo.mutation.SetModelID(i)
	return dpuo
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (dpuo *DataPredictionUpdateOne) SetNillableModelID(i *int) *DataPredictionUpdateOne {
	if i != nil {
		dpuo.SetModelID(*i)
	}
	return dpuo
}

// SetLabelID sets the "label_id" field.
func (dpuo *DataPredictionUpdateOne) SetLabelID(i int) *DataPredictionUpdateOne {
	dpuo.mutation.SetLabelID(i)
	return dpuo
}

// SetNillableLabelID sets the "label_id" field if the given value is not nil.
func (dpuo *DataPredictionUpdateOne) SetNillableLabelID(i *int) *DataPredictionUpdateOne {
	if i != nil {
		dpuo.SetLabelID(*i)
	}
	return dpuo
}

// SetProbability sets the "probability" field.
func (dpuo *DataPredictionUpdateOne) SetProbability(f float64) *DataPredictionUpdateOne {
	dpuo.mutation.ResetProbability()
	dpuo.mutation.SetProbability(f)
	return dpuo
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (dpuo *DataPredictionUpdateOne) SetNillableProbability(f *float64) *DataPredictionUpdateOne {
	if f != nil {
		dpuo.SetProbability(*f)
	}
	return dpuo
}

// AddProbability adds f to the "probability" field.
func (dpuo *DataPredictionUpdateOne) AddProbability(f float64) *DataPredictionUpdateOne {
	dpuo.mutation.AddProbability(f)
	return dpuo
}

// SetData sets the "data" edge to the Data entity.
func (dpuo *DataPredictionUpdateOne) SetData(d *Data) *DataPredictionUpdateOne {
	return dpuo.SetDataID(d.ID)
}

// SetModel sets the "model" edge to the Model entity.
func (dpuo *DataPredictionUpdateOne) SetModel(m *Model) *DataPredictionUpdateOne {
	return dpuo.SetModelID(m.ID)
}

// SetLabel sets the "label" edge to the Label entity.
func (dpuo *DataPredictionUpdateOne) SetLabel(l *Label) *DataPredictionUpdateOne {
	return dpuo.SetLabelID(l.ID)
}

// Mutation returns the DataPredictionMutation object of the builder.
func (dpuo *DataPredictionUpdateOne) Mutation() *DataPredictionMutation {
	return dpuo.mutation
}

// ClearData clears the "data" edge to the Data entity.
func (dpuo *DataPredictionUpdateOne) ClearData() *DataPredictionUpdateOne {
	dpuo.mutation.ClearData()
	return dpuo
}

// ClearModel clears the "model" edge to the Model entity.
func (dpuo *DataPredictionUpdateOne) ClearModel() *DataPredictionUpdateOne {
	dpuo.mutation.ClearModel()
	return dpuo
}

// ClearLabel clears the "label" edge to the Label entity.
func (dpuo *DataPredictionUpdateOne) ClearLabel() *DataPredictionUpdateOne {
	dpuo.mutation.ClearLabel()
	return dpuo
}

// Where appends a list predicates to the DataPredictionUpdate builder.
func (dpuo *DataPredictionUpdateOne) Where(ps ...predicate.DataPrediction) *DataPredictionUpdateOne {
	dpuo.mutation.Where(ps...)
	return dpuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (dpuo *DataPredictionUpdateOne) Select(field string, fields ...string) *DataPredictionUpdateOne {
	dpuo.fields = append([]string{field}, fields...)
	return dpuo
}

// Save executes the query and returns the updated DataPrediction entity.
func (dpuo *DataPredictionUpdateOne) Save(ctx context.Context) (*DataPrediction, error) {
	return withHooks(ctx, dpuo.sqlSave, dpuo.mutation, dpuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dpuo *DataPredictionUpdateOne) SaveX(ctx context.Context) *DataPrediction {
	node, err := dpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (dpuo *DataPredictionUpdateOne) Exec(ctx context.Context) error {
	_, err := dpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dpuo *DataPredictionUpdateOne) ExecX(ctx context.Context) {
	if err := dpuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dpuo *DataPredictionUpdateOne) check() error {
	if dpuo.mutation.DataCleared() && len(dpuo.mutation.DataIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataPrediction.data"`)
	}
	if dpuo.mutation.ModelCleared() && len(dpuo.mutation.ModelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataPrediction.model"`)
	}
	if dpuo.mutation.LabelCleared() && len(dpuo.mutation.LabelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataPrediction.label"`)
	}
	return nil
}

func (dpuo *DataPredictionUpdateOne) sqlSave(ctx context.Context) (_node *DataPrediction, err error) {
	if err := dpuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataprediction.Table, dataprediction.Columns, sqlgraph.NewFieldSpec(dataprediction.FieldID, field.TypeInt))
	id, ok := dpuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DataPrediction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := dpuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dataprediction.FieldID)
		for _, f := range fields {
			if !dataprediction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dataprediction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := dpuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dpuo.mutation.Probability(); ok {
		_spec.SetField(dataprediction.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := dpuo.mutation.AddedProbability(); ok {
		_spec.AddField(dataprediction.FieldProbability, field.TypeFloat64, value)
	}
	if dpuo.mutation.DataCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dpuo.mutation.DataIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if dpuo.mutation.ModelCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dpuo.mutation.ModelIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if dpuo.mutation.LabelCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dpuo.mutation.LabelIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DataPrediction{config: dpuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, dpuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataprediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	dpuo.mutation.done = true
	return _node, nil
}
