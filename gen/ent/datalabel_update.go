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
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/datalabel"
	"github.com/labelworks/annoqueue/gen/ent/label"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
	"github.com/labelworks/annoqueue/gen/ent/profile"
)

// DataLabelUpdate is the builder for updating DataLabel entities.
type DataLabelUpdate struct {
	config
	hooks    []Hook
	mutation *DataLabelMutation
}

// Where appends a list predicates to the DataLabelUpdate builder.
func (dlu *DataLabelUpdate) Where(ps ...predicate.DataLabel) *DataLabelUpdate {
	dlu.mutation.Where(ps...)
	return dlu
}

// SetDataID sets the "data_id" field.
func (dlu *DataLabelUpdate) SetDataID(i int) *DataLabelUpdate {
	dlu.mutation.SetDataID(i)
	return dlu
}

// SetNillableDataID sets the "data_id" field if the given value is not nil.
func (dlu *DataLabelUpdate) SetNillableDataID(i *int) *DataLabelUpdate {
	if i != nil {
		dlu.SetDataID(*i)
	}
	return dlu
}

// SetLabelID sets the "label_id" field.
func (dlu *DataLabelUpdate) SetLabelID(i int) *DataLabelUpdate {
	dlu.mutation.SetLabelID(i)
	return dlu
}

// SetNillableLabelID sets the "label_id" field if the given value is not nil.
func (dlu *DataLabelUpdate) SetNillableLabelID(i *int) *DataLabelUpdate {
	if i != nil {
		dlu.SetLabelID(*i)
	}
	return dlu
}

// SetProfileID sets the "profile_id" field.
func (dlu *DataLabelUpdate) SetProfileID(u uuid.UUID) *DataLabelUpdate {
	dlu.mutation.SetProfileID(u)
	return dlu
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (dlu *DataLabelUpdate) SetNillableProfileID(u *uuid.UUID) *DataLabelUpdate {
	if u != nil {
		dlu.SetProfileID(*u)
	}
	return dlu
}

// SetLabeledAt sets the "labeled_at" field.
func (dlu *DataLabelUpdate) SetLabeledAt(t time.Time) *DataLabelUpdate {
	dlu.mutation.SetLabeledAt(t)
	return dlu
}

// SetNillableLabeledAt sets the "labeled_at" field if the given value is not nil.
func (dlu *DataLabelUpdate) SetNillableLabeledAt(t *time.Time) *DataLabelUpdate {
	if t != nil {
		dlu.SetLabeledAt(*t)
	}
	return dlu
}

// SetData sets the "data" edge to the Data entity.
func (dlu *DataLabelUpdate) SetData(d *Data) *DataLabelUpdate {
	return dlu.SetDataID(d.ID)
}

// SetLabel sets the "label" edge to the Label entity.
func (dlu *DataLabelUpdate) SetLabel(l *Label) *DataLabelUpdate {
	return dlu.SetLabelID(l.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (dlu *DataLabelUpdate) SetProfile(p *Profile) *DataLabelUpdate {
	return dlu.SetProfileID(p.ID)
}

// Mutation returns the DataLabelMutation object of the builder.
func (dlu *DataLabelUpdate) Mutation() *DataLabelMutation {
	return dlu.mutation
}

// ClearData clears the "data" edge to the Data entity.
func (dlu *DataLabelUpdate) ClearData() *DataLabelUpdate {
	dlu.mutation.ClearData()
	return dlu
}

// ClearLabel clears the "label" edge to the Label entity.
func (dlu *DataLabelUpdate) ClearLabel() *DataLabelUpdate {
	dlu.mutation.ClearLabel()
	return dlu
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (dlu *DataLabelUpdate) ClearProfile() *DataLabelUpdate {
	dlu.mutation.ClearProfile()
	return dlu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (dlu *DataLabelUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, dlu.sqlSave, dlu.mutation, dlu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dlu *DataLabelUpdate) SaveX(ctx context.Context) int {
	affected, err := dlu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (dlu *DataLabelUpdate) Exec(ctx context.Context) error {
	_, err := dlu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dlu *DataLabelUpdate) ExecX(ctx context.Context) {
	if err := dlu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dlu *DataLabelUpdate) check() error {
	if dlu.mutation.DataCleared() && len(dlu.mutation.DataIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataLabel.data"`)
	}
	if dlu.mutation.LabelCleared() && len(dlu.mutation.LabelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataLabel.label"`)
	}
	if dlu.mutation.ProfileCleared() && len(dlu.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataLabel.profile"`)
	}
	return nil
}

func (dlu *DataLabelUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := dlu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(datalabel.Table, datalabel.Columns, sqlgraph.NewFieldSpec(datalabel.FieldID, field.TypeInt))
	if ps := dlu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dlu.mutation.LabeledAt(); ok {
		_spec.SetField(datalabel.FieldLabeledAt, field.TypeTime, value)
	}
	if dlu.mutation.DataCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dlu.mutation.DataIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if dlu.mutation.LabelCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dlu.mutation.LabelIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if dlu.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dlu.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, dlu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datalabel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	dlu.mutation.done = true
	return n, nil
}

// DataLabelUpdateOne is the builder for updating a single DataLabel entity.
type DataLabelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DataLabelMutation
}

// SetDataID sets the "data_id" field.
func (dluo *DataLabelUpdateOne) SetDataID(i int) *DataLabelUpdateOne {
	dluo.mutation.SetDataID(i)
	return dluo
}

// SetNillableDataID sets the "data_id" field if the given value is not nil.
func (dluo *DataLabelUpdateOne) SetNillableDataID(i *int) *DataLabelUpdateOne {
	if i != nil {
		dluo.SetDataID(*i)
	}
	return dluo
}

// SetLabelID sets the "label_id" field.
func (dluo *DataLabelUpdateOne) SetLabelID(i int) *DataLabelUpdateOne {
	dluo.mutation.SetLabelID(i)
	return dluo
}

// SetNillableLabelID sets the "label_id" field if the given value is not nil.
func (dluo *DataLabelUpdateOne) SetNillableLabelID(i *int) *DataLabelUpdateOne {
	if i != nil {
		dluo.SetLabelID(*i)
	}
	return dluo
}

// SetProfileID sets the "profile_id" field.
func (dluo *DataLabelUpdateOne) SetProfileID(u uuid.UUID) *DataLabelUpdateOne {
	dluo.mutation.SetProfileID(u)
	return dluo
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (dluo *DataLabelUpdateOne) SetNillableProfileID(u *uuid.UUID) *DataLabelUpdateOne {
	if u != nil {
		dluo.SetProfileID(*u)
	}
	return dluo
}

// SetLabeledAt sets the "labeled_at" field.
func (dluo *DataLabelUpdateOne) SetLabeledAt(t time.Time) *DataLabelUpdateOne {
	dluo.mutation.SetLabeledAt(t)
	return dluo
}

// SetNillableLabeledAt sets the "labeled_at" field if the given value is not nil.
func (dluo *DataLabelUpdateOne) SetNillableLabeledAt(t *time.Time) *DataLabelUpdateOne {
	if t != nil {
		dluo.SetLabeledAt(*t)
	}
	return dluo
}

// SetData sets the "data" edge to the Data entity.
func (dluo *DataLabelUpdateOne) SetData(d *Data) *DataLabelUpdateOne {
	return dluo.SetDataID(d.ID)
}

// SetLabel sets the "label" edge to the Label entity.
func (dluo *DataLabelUpdateOne) SetLabel(l *Label) *DataLabelUpdateOne {
	return dluo.SetLabelID(l.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (dluo *DataLabelUpdateOne) SetProfile(p *Profile) *DataLabelUpdateOne {
	return dluo.SetProfileID(p.ID)
}

// Mutation returns the DataLabelMutation object of the builder.
func (dluo *DataLabelUpdateOne) Mutation() *DataLabelMutation {
	return dluo.mutation
}

// ClearData clears the "data" edge to the Data entity.
func (dluo *DataLabelUpdateOne) ClearData() *DataLabelUpdateOne {
	dluo.mutation.ClearData()
	return dluo
}

// ClearLabel clears the "label" edge to the Label entity.
func (dluo *DataLabelUpdateOne) ClearLabel() *DataLabelUpdateOne {
	dluo.mutation.ClearLabel()
	return dluo
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (dluo *DataLabelUpdateOne) ClearProfile() *DataLabelUpdateOne {
	dluo.mutation.ClearProfile()
	return dluo
}

// Where appends a list predicates to the DataLabelUpdate builder.
func (dluo *DataLabelUpdateOne) Where(ps ...predicate.DataLabel) *DataLabelUpdateOne {
	dluo.mutation.Where(ps...)
	return dluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (dluo *DataLabelUpdateOne) Select(field string, fields ...string) *DataLabelUpdateOne {
	dluo.fields = append([]string{field}, fields...)
	return dluo
}

// Save executes the query and returns the updated DataLabel entity.
func (dluo *DataLabelUpdateOne) Save(ctx context.Context) (*DataLabel, error) {
	return withHooks(ctx, dluo.sqlSave, dluo.mutation, dluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dluo *DataLabelUpdateOne) SaveX(ctx context.Context) *DataLabel {
	node, err := dluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (dluo *DataLabelUpdateOne) Exec(ctx context.Context) error {
	_, err := dluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dluo *DataLabelUpdateOne) ExecX(ctx context.Context) {
	if err := dluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dluo *DataLabelUpdateOne) check() error {
	if dluo.mutation.DataCleared() && len(dluo.mutation.DataIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataLabel.data"`)
	}
	if dluo.mutation.LabelCleared() && len(dluo.mutation.LabelIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataLabel.label"`)
	}
	if dluo.mutation.ProfileCleared() && len(dluo.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DataLabel.profile"`)
	}
	return nil
}

func (dluo *DataLabelUpdateOne) sqlSave(ctx context.Context) (_node *DataLabel, err error) {
	if err := dluo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(datalabel.Table, datalabel.Columns, sqlgraph.NewFieldSpec(datalabel.FieldID, field.TypeInt))
	id, ok := dluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DataLabel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := dluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, datalabel.FieldID)
		for _, f := range fields {
			if !datalabel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != datalabel.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := dluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dluo.mutation.LabeledAt(); ok {
		_spec.SetField(datalabel.FieldLabeledAt, field.TypeTime, value)
	}
	if dluo.mutation.DataCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dluo.mutation.DataIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if dluo.mutation.LabelCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dluo.mutation.LabelIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if dluo.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dluo.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DataLabel{config: dluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, dluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{datalabel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	dluo.mutation.done = true
	return _node, nil
}
