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
	"github.com/labelworks/annoqueue/gen/ent/datauncertainty"
	"github.com/labelworks/annoqueue/gen/ent/model"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
)

// DataUncertaintyUpdate is the builder for updating DataUncertainty entities.
type DataUncertaintyUpdate struct {
	config
	hooks    []Hook
	mutation *DataUncertaintyMutation
}

// Where appends a list predicates to the DataUncertaintyUpdate builder.
func (duu *DataUncertaintyUpdate) Where(ps ...predicate.DataUncertainty) *DataUncertaintyUpdate {
	duu.mutation.Where(ps...)
	return duu
}

// SetDataID sets the "data_id" field.
func (duu *DataUncertaintyUpdate) SetDataID(i int) *DataUncertaintyUpdate {
	duu.mutation.SetDataID(i)
	return duu
}

// SetNillableDataID sets the "data_id" field if the given value is not nil.
func (duu *DataUncertaintyUpdate) SetNillableDataID(i *int) *DataUncertaintyUpdate {
	if i != nil {
		duu.SetDataID(*i)
	}
	return duu
}

// SetModelID sets the "model_id" field.
func (duu *DataUncertaintyUpdate) SetModelID(i int) *DataUncertaintyUpdate {
	duu.mutation.SetModelID(i)
	return duu
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (duu *DataUncertaintyUpdate) SetNillableModelID(i *int) *DataUncertaintyUpdate {
	if i != nil {
		duu.SetModelID(*i)
	}
	return duu
}

// SetLeastConfident sets the "least_confident" field.
func (duu *DataUncertaintyUpdate) SetLeastConfident(f float64) *DataUncertaintyUpdate {
	duu.mutation.ResetLeastConfident()
	duu.mutation.SetLeastConfident(f)
	return duu
}

// SetNillableLeastConfident sets the "least_confident" field if the given value is not nil.
func (duu *DataUncertaintyUpdate) SetNillableLeastConfident(f *float64) *DataUncertaintyUpdate {
	if f != nil {
		duu.SetLeastConfident(*f)
	}
	return duu
}

// AddLeastConfident adds f to the "least_confident" field.
func (duu *DataUncertaintyUpdate) AddLeastConfident(f float64) *DataUncertaintyUpdate {
	duu.mutation.AddLeastConfident(f)
	return duu
}

// SetMargin sets the "margin" field.
func (duu *DataUncertaintyUpdate) SetMargin(f float64) *DataUncertaintyUpdate {
	duu.mutation.ResetMargin()
	duu.mutation.SetMargin(f)
	return duu
}

// SetNillableMargin sets the "margin" field if the given value is not nil.
func (duu *DataUncertaintyUpdate) SetNillableMargin(f *float64) *DataUncertaintyUpdate {
	if f != nil {
		duu.SetMargin(*f)
	}
	return duu
}

// AddMargin adds f to the "margin" field.
func (duu *DataUncertaintyUpdate) AddMargin(f float64) *DataUncertaintyUpdate {
	duu.mutation.AddMargin(f)
	return duu
}

// SetEntropy sets the "entropy" field.
func (duu *DataUncertaintyUpdate) SetEntropy(f float64) *DataUncertaintyUpdate {
	duu.mutation.ResetEntropy()
	duu.mutation.SetEntropy(f)
	return duu
}

// SetNillableEntropy sets the "entropy" field if the given value is not nil.
func (duu *DataUncertaintyUpdate) SetNillableEntropy(f *float64) *DataUncertaintyUpdate {
	if f != nil {
		duu.SetEntropy(*f)
	}
	return duu
}

// AddEntropy adds f to the "entropy" field.
func (duu *DataUncertaintyUpdate) AddEntropy(f float64) *DataUncertaintyUpdate {
	duu.mutation.AddEntropy(f)
	return duu
}

// SetData sets the "data" edge to the Data entity.
func (duu *DataUncertaintyUpdate) SetData(d *Data) *DataUncertaintyUpdate {
	return duu.SetDataID(d.ID)
}

// SetModel sets the "model" edge to the Model entity.
func (duu *DataUncertaintyUpdate) SetModel(m *Model) *DataUncertaintyUpdate {
	return duu.SetModelID(m.ID)
}

// Mutation returns the DataUncertaintyMutation object of the builder.
func (duu *DataUncertaintyUpdate) Mutation() *DataUncertaintyMutation {
	return duu.mutation
}

// ClearData clears the "data" edge to the Data entity.
func (duu *DataUncertaintyUpdate) ClearData() *DataUncertaintyUpdate {
	duu.mutation.ClearData()
	return duu
}

// ClearModel clears the "model" edge to the Model entity.
func (duu *DataUncertaintyUpdate) ClearModel() *DataUncertaintyUpdate {
	duu.mutation.ClearModel()
	return duu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (duu *DataUncertaintyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, duu.sqlSave, duu.mutation, duu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (duu *DataUncertaintyUpdate) SaveX(ctx context.Context) int {
	affected, err := duu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (duu *DataUncertaintyUpdate) Exec(ctx context.Context) error {
	_, err := duu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (duu *DataUncertaintyUpdate) ExecX(ctx context.Context) {
	if err := duu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (duu *DataUncertaintyUpdate) check() error {
	if duu.mutation.DataCleared() && len(duu.mutation.DataIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataUncertainty.data"`)
	}
	if duu.mutation.ModelCleared() && len(duu.mutation.ModelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataUncertainty.model"`)
	}
	return nil
}

func (duu *DataUncertaintyUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := duu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(datauncertainty.Table, datauncertainty.Columns, sqlgraph.NewFieldSpec(datauncertainty.FieldID, field.TypeInt))
	if ps := duu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := duu.mutation.LeastConfident(); ok {
		_spec.SetField(datauncertainty.FieldLeastConfident, field.TypeFloat64, value)
	}
	if value, ok := duu.mutation.AddedLeastConfident(); ok {
		_spec.AddField(datauncertainty.FieldLeastConfident, field.TypeFloat64, value)
	}
	if value, ok := duu.mutation.Margin(); ok {
		_spec.SetField(datauncertainty.FieldMargin, field.TypeFloat64, value)
	}
	if value, ok := duu.mutation.AddedMargin(); ok {
		_spec.AddField(datauncertainty.FieldMargin, field.TypeFloat64, value)
	}
	if value, ok := duu.mutation.Entropy(); ok {
		_spec.SetField(datauncertainty.FieldEntropy, field.TypeFloat64, value)
	}
	if value, ok := duu.mutation.AddedEntropy(); ok {
		_spec.AddField(datauncertainty.FieldEntropy, field.TypeFloat64, value)
	}
	if duu.mutation.DataCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duu.mutation.DataIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if duu.mutation.ModelCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duu.mutation.ModelIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, duu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datauncertainty.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	duu.mutation.done = true
	return n, nil
}

// DataUncertaintyUpdateOne is the builder for updating a single DataUncertainty entity.
type DataUncertaintyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DataUncertaintyMutation
}

// SetDataID sets the "data_id" field.
func (duuo *DataUncertaintyUpdateOne) SetDataID(i int) *DataUncertaintyUpdateOne {
	duuo.mutation.SetDataID(i)
	return duuo
}

// SetNillableDataID sets the "data_id" field if the given value is not nil.
func (duuo *DataUncertaintyUpdateOne) SetNillableDataID(i *int) *DataUncertaintyUpdateOne {
	if i != nil {
		duuo.SetDataID(*i)
	}
	return duuo
}

// SetModelID sets the "model_id" field.
func (duuo *DataUncertaintyUpdateOne) SetModelID(i int) *DataUncertaintyUpdateOne {
	duuo.mutation.SetModelID(i)
	return duuo
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (duuo *DataUncertaintyUpdateOne) SetNillableModelID(i *int) *DataUncertaintyUpdateOne {
	if i != nil {
		duuo.SetModelID(*i)
	}
	return duuo
}

// SetLeastConfident sets the "least_confident" field.
func (duuo *DataUncertaintyUpdateOne) SetLeastConfident(f float64) *DataUncertaintyUpdateOne {
	duuo.mutation.ResetLeastConfident()
	duuo.mutation.SetLeastConfident(f)
	return duuo
}

// SetNillableLeastConfident sets the "least_confident" field if the given value is not nil.
func (duuo *DataUncertaintyUpdateOne) SetNillableLeastConfident(f *float64) *DataUncertaintyUpdateOne {
	if f != nil {
		duuo.SetLeastConfident(*f)
	}
	return duuo
}

// AddLeastConfident adds f to the "least_confident" field.
func (duuo *DataUncertaintyUpdateOne) AddLeastConfident(f float64) *DataUncertaintyUpdateOne {
	duuo.mutation.AddLeastConfident(f)
	return duuo
}

// SetMargin sets the "margin" field.
func (duuo *DataUncertaintyUpdateOne) SetMargin(f float64) *DataUncertaintyUpdateOne {
	duuo.mutation.ResetMargin()
	duuo.mutation.SetMargin(f)
	return duuo
}

// SetNillableMargin sets the "margin" field if the given value is not nil.
func (duuo *DataUncertaintyUpdateOne) SetNillableMargin(f *float64) *DataUncertaintyUpdateOne {
	if f != nil {
		duuo.SetMargin(*f)
	}
	return duuo
}

// AddMargin adds f to the "margin" field.
func (duuo *DataUncertaintyUpdateOne) AddMargin(f float64) *DataUncertaintyUpdateOne {
	duuo.mutation.AddMargin(f)
	return duuo
}

// SetEntropy sets the "entropy" field.
func (duuo *DataUncertaintyUpdateOne) SetEntropy(f float64) *DataUncertaintyUpdateOne {
	duuo.mutation.ResetEntropy()
	duuo.mutation.SetEntropy(f)
	return duuo
}

// SetNillableEntropy sets the "entropy" field if the given value is not nil.
func (duuo *DataUncertaintyUpdateOne) SetNillableEntropy(f *float64) *DataUncertaintyUpdateOne {
	if f != nil {
		duuo.SetEntropy(*f)
	}
	return duuo
}

// AddEntropy adds f to the "entropy" field.
func (duuo *DataUncertaintyUpdateOne) AddEntropy(f float64) *DataUncertaintyUpdateOne {
	duuo.mutation.AddEntropy(f)
	return duuo
}

// SetData sets the "data" edge to the Data entity.
func (duuo *DataUncertaintyUpdateOne) SetData(d *Data) *DataUncertaintyUpdateOne {
	return duuo.SetDataID(d.ID)
}

// SetModel sets the "model" edge to the Model entity.
func (duuo *DataUncertaintyUpdateOne) SetModel(m *Model) *DataUncertaintyUpdateOne {
	return duuo.SetModelID(m.ID)
}

// Mutation returns the DataUncertaintyMutation object of the builder.
func (duuo *DataUncertaintyUpdateOne) Mutation() *DataUncertaintyMutation {
	return duuo.mutation
}

// ClearData clears the "data" edge to the Data entity.
func (duuo *DataUncertaintyUpdateOne) ClearData() *DataUncertaintyUpdateOne {
	duuo.mutation.ClearData()
	return duuo
}

// ClearModel clears the "model" edge to the Model entity.
func (duuo *DataUncertaintyUpdateOne) ClearModel() *DataUncertaintyUpdateOne {
	duuo.mutation.ClearModel()
	return duuo
}

// Where appends a list predicates to the DataUncertaintyUpdate builder.
func (duuo *DataUncertaintyUpdateOne) Where(ps ...predicate.DataUncertainty) *DataUncertaintyUpdateOne {
	duuo.mutation.Where(ps...)
	return duuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (duuo *DataUncertaintyUpdateOne) Select(field string, fields ...string) *DataUncertaintyUpdateOne {
	duuo.fields = append([]string{field}, fields...)
	return duuo
}

// Save executes the query and returns the updated DataUncertainty entity.
func (duuo *DataUncertaintyUpdateOne) Save(ctx context.Context) (*DataUncertainty, error) {
	return withHooks(ctx, duuo.sqlSave, duuo.mutation, duuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (duuo *DataUncertaintyUpdateOne) SaveX(ctx context.Context) *DataUncertainty {
	node, err := duuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (duuo *DataUncertaintyUpdateOne) Exec(ctx context.Context) error {
	_, err := duuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (duuo *DataUncertaintyUpdateOne) ExecX(ctx context.Context) {
	if err := duuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (duuo *DataUncertaintyUpdateOne) check() error {
	if duuo.mutation.DataCleared() && len(duuo.mutation.DataIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataUncertainty.data"`)
	}
	if duuo.mutation.ModelCleared() && len(duuo.mutation.ModelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataUncertainty.model"`)
	}
	return nil
}

func (duuo *DataUncertaintyUpdateOne) sqlSave(ctx context.Context) (_node *DataUncertainty, err error) {
	if err := duuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datauncertainty.Table, datauncertainty.Columns, sqlgraph.NewFieldSpec(datauncertainty.FieldID, field.TypeInt))
	id, ok := duuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DataUncertainty.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := duuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, datauncertainty.FieldID)
		for _, f := range fields {
			if !datauncertainty.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != datauncertainty.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := duuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := duuo.mutation.LeastConfident(); ok {
		_spec.SetField(datauncertainty.FieldLeastConfident, field.TypeFloat64, value)
	}
	if value, ok := duuo.mutation.AddedLeastConfident(); ok {
		_spec.AddField(datauncertainty.FieldLeastConfident, field.TypeFloat64, value)
	}
	if value, ok := duuo.mutation.Margin(); ok {
		_spec.SetField(datauncertainty.FieldMargin, field.TypeFloat64, value)
	}
	if value, ok := duuo.mutation.AddedMargin(); ok {
		_spec.AddField(datauncertainty.FieldMargin, field.TypeFloat64, value)
	}
	if value, ok := duuo.mutation.Entropy(); ok {
		_spec.SetField(datauncertainty.FieldEntropy, field.TypeFloat64, value)
	}
	if value, ok := duuo.mutation.AddedEntropy(); ok {
		_spec.AddField(datauncertainty.FieldEntropy, field.TypeFloat64, value)
	}
	if duuo.mutation.DataCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duuo.mutation.DataIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if duuo.mutation.ModelCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duuo.mutation.ModelIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DataUncertainty{config: duuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, duuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datauncertainty.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	duuo.mutation.done = true
	return _node, nil
}
