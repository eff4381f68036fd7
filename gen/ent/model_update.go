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
	"github.com/labelworks/annoqueue/gen/ent/dataprediction"
	"github.com/labelworks/annoqueue/gen/ent/datauncertainty"
	"github.com/labelworks/annoqueue/gen/ent/model"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
	"github.com/labelworks/annoqueue/gen/ent/project"
)

// ModelUpdate is the builder for updating Model entities.
type ModelUpdate struct {
	config
	hooks    []Hook
	mutation *ModelMutation
}

// Where appends a list predicates to the ModelUpdate builder.
func (mu *ModelUpdate) Where(ps ...predicate.Model) *ModelUpdate {
	mu.mutation.Where(ps...)
	return mu
}

// SetProjectID sets the "project_id" field.
func (mu *ModelUpdate) SetProjectID(i int) *ModelUpdate {
	mu.mutation.SetProjectID(i)
	return mu
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (mu *ModelUpdate) SetNillableProjectID(i *int) *ModelUpdate {
	if i != nil {
		mu.SetProjectID(*i)
	}
	return mu
}

// SetPath sets the "path" field.
func (mu *ModelUpdate) SetPath(s string) *ModelUpdate {
	mu.mutation.SetPath(s)
	return mu
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (mu *ModelUpdate) SetNillablePath(s *string) *ModelUpdate {
	if s != nil {
		mu.SetPath(*s)
	}
	return mu
}

// SetTrainingSet sets the "training_set" field.
func (mu *ModelUpdate) SetTrainingSet(i int) *ModelUpdate {
	mu.mutation.ResetTrainingSet()
	mu.mutation.SetTrainingSet(i)
	return mu
}

// SetNillableTrainingSet sets the "training_set" field if the given value is not nil.
func (mu *ModelUpdate) SetNillableTrainingSet(i *int) *ModelUpdate {
	if i != nil {
		mu.SetTrainingSet(*i)
	}
	return mu
}

// AddTrainingSet adds i to the "training_set" field.
func (mu *ModelUpdate) AddTrainingSet(i int) *ModelUpdate {
	mu.mutation.AddTrainingSet(i)
	return mu
}

// SetCreatedAt sets the "created_at" field.
func (mu *ModelUpdate) SetCreatedAt(t time.Time) *ModelUpdate {
	mu.mutation.SetCreatedAt(t)
	return mu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (mu *ModelUpdate) SetNillableCreatedAt(t *time.Time) *ModelUpdate {
	if t != nil {
		mu.SetCreatedAt(*t)
	}
	return mu
}

// SetProject sets the "project" edge to the Project entity.
func (mu *ModelUpdate) SetProject(p *Project) *ModelUpdate {
	return mu.SetProjectID(p.ID)
}

// AddUncertaintyIDs adds the "uncertainties" edge to the DataUncertainty entity by IDs.
func (mu *ModelUpdate) AddUncertaintyIDs(ids ...int) *ModelUpdate {
	mu.mutation.AddUncertaintyIDs(ids...)
	return mu
}

// AddUncertainties adds the "uncertainties" edges to the DataUncertainty entity.
func (mu *ModelUpdate) AddUncertainties(d ...*DataUncertainty) *ModelUpdate {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return mu.AddUncertaintyIDs(ids...)
}

// AddPredictionIDs adds the "predictions" edge to the DataPrediction entity by IDs.
func (mu *ModelUpdate) AddPredictionIDs(ids ...int) *ModelUpdate {
	mu.mutation.AddPredictionIDs(ids...)
	return mu
}

// AddPredictions adds the "predictions" edges to the DataPrediction entity.
func (mu *ModelUpdate) AddPredictions(d ...*DataPrediction) *ModelUpdate {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return mu.AddPredictionIDs(ids...)
}

// Mutation returns the ModelMutation object of the builder.
func (mu *ModelUpdate) Mutation() *ModelMutation {
	return mu.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (mu *ModelUpdate) ClearProject() *ModelUpdate {
	mu.mutation.ClearProject()
	return mu
}

// ClearUncertainties clears all "uncertainties" edges to the DataUncertainty entity.
func (mu *ModelUpdate) ClearUncertainties() *ModelUpdate {
	mu.mutation.ClearUncertainties()
	return mu
}

// RemoveUncertaintyIDs removes the "uncertainties" edge to DataUncertainty entities by IDs.
func (mu *ModelUpdate) RemoveUncertaintyIDs(ids ...int) *ModelUpdate {
	mu.mutation.RemoveUncertaintyIDs(ids...)
	return mu
}

// RemoveUncertainties removes "uncertainties" edges to DataUncertainty entities.
func (mu *ModelUpdate) RemoveUncertainties(d ...*DataUncertainty) *ModelUpdate {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return mu.RemoveUncertaintyIDs(ids...)
}

// ClearPredictions clears all "predictions" edges to the DataPrediction entity.
func (mu *ModelUpdate) ClearPredictions() *ModelUpdate {
	mu.mutation.ClearPredictions()
	return mu
}

// RemovePredictionIDs removes the "predictions" edge to DataPrediction entities by IDs.
func (mu *ModelUpdate) RemovePredictionIDs(ids ...int) *ModelUpdate {
	mu.mutation.RemovePredictionIDs(ids...)
	return mu
}

// RemovePredictions removes "predictions" edges to DataPrediction entities.
func (mu *ModelUpdate) RemovePredictions(d ...*DataPrediction) *ModelUpdate {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return mu.RemovePredictionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (mu *ModelUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, mu.sqlSave, mu.mutation, mu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mu *ModelUpdate) SaveX(ctx context.Context) int {
	affected, err := mu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (mu *ModelUpdate) Exec(ctx context.Context) error {
	_, err := mu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mu *ModelUpdate) ExecX(ctx context.Context) {
	if err := mu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mu *ModelUpdate) check() error {
	if v, ok := mu.mutation.Path(); ok {
		if err := model.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "Model.path": %w`, err)}
		}
	}
	if v, ok := mu.mutation.TrainingSet(); ok {
		if err := model.TrainingSetValidator(v); err != nil {
			return &ValidationError{Name: "training_set", err: fmt.Errorf(`ent: validator failed for field "Model.training_set": %w`, err)}
		}
	}
	if mu.mutation.ProjectCleared() && len(mu.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Model.project"`)
	}
	return nil
}

func (mu *ModelUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := mu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(model.Table, model.Columns, sqlgraph.NewFieldSpec(model.FieldID, field.TypeInt))
	if ps := mu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mu.mutation.Path(); ok {
		_spec.SetField(model.FieldPath, field.TypeString, value)
	}
	if value, ok := mu.mutation.TrainingSet(); ok {
		_spec.SetField(model.FieldTrainingSet, field.TypeInt, value)
	}
	if value, ok := mu.mutation.AddedTrainingSet(); ok {
		_spec.AddField(model.FieldTrainingSet, field.TypeInt, value)
	}
	if value, ok := mu.mutation.CreatedAt(); ok {
		_spec.SetField(model.FieldCreatedAt, field.TypeTime, value)
	}
	if mu.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   model.ProjectTable,
			Columns: []string{model.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := mu.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   model.ProjectTable,
			Columns: []string{model.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if mu.mutation.UncertaintiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   model.UncertaintiesTable,
			Columns: []string{model.UncertaintiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datauncertainty.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := mu.mutation.RemovedUncertaintiesIDs(); len(nodes) > 0 && !mu.mutation.UncertaintiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   model.UncertaintiesTable,
			Columns: []string{model.UncertaintiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datauncertainty.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := mu.mutation.UncertaintiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   model.UncertaintiesTable,
			Columns: []string{model.UncertaintiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datauncertainty.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if mu.mutation.PredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   model.PredictionsTable,
			Columns: []string{model.PredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataprediction.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := mu.mutation.RemovedPredictionsIDs(); len(nodes) > 0 && !mu.mutation.PredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   model.PredictionsTable,
			Columns: []string{model.PredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataprediction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := mu.mutation.PredictionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   model.PredictionsTable,
			Columns: []string{model.PredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataprediction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, mu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{model.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	mu.mutation.done = true
	return n, nil
}

// ModelUpdateOne is the builder for updating a single Model entity.
type ModelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelMutation
}

// SetProjectID sets the "project_id" field.
func (muo *ModelUpdateOne) SetProjectID(i int) *ModelUpdateOne {
	muo.mutation.SetProjectID(i)
	return muo
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (muo *ModelUpdateOne) SetNillableProjectID(i *int) *ModelUpdateOne {
	if i != nil {
		muo.SetProjectID(*i)
	}
	return muo
}

// SetPath sets the "path" field.
func (muo *ModelUpdateOne) SetPath(s string) *ModelUpdateOne {
	muo.mutation.SetPath(s)
	return muo
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (muo *ModelUpdateOne) SetNillablePath(s *string) *ModelUpdateOne {
	if s != nil {
		muo.SetPath(*s)
	}
	return muo
}

// SetTrainingSet sets the "training_set" field.
func (muo *ModelUpdateOne) SetTrainingSet(i int) *ModelUpdateOne {
	muo.mutation.ResetTrainingSet()
	muo.mutation.SetTrainingSet(i)
	return muo
}

// SetNillableTrainingSet sets the "training_set" field if the given value is not nil.
func (muo *ModelUpdateOne) SetNillableTrainingSet(i *int) *ModelUpdateOne {
	if i != nil {
		muo.SetTrainingSet(*i)
	}
	return muo
}

// AddTrainingSet adds i to the "training_set" field.
func (muo *ModelUpdateOne) AddTrainingSet(i int) *ModelUpdateOne {
	muo.mutation.AddTrainingSet(i)
	return muo
}

// SetCreatedAt sets the "created_at" field.
func (muo *ModelUpdateOne) SetCreatedAt(t time.Time) *ModelUpdateOne {
	muo.mutation.SetCreatedAt(t)
	return muo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (muo *ModelUpdateOne) SetNillableCreatedAt(t *time.Time) *ModelUpdateOne {
	if t != nil {
		muo.SetCreatedAt(*t)
	}
	return muo
}

// SetProject sets the "project" edge to the Project entity.
func (muo *ModelUpdateOne) SetProject(p *Project) *ModelUpdateOne {
	return muo.SetProjectID(p.ID)
}

// AddUncertaintyIDs adds the "uncertainties" edge to the DataUncertainty entity by IDs.
func (muo *ModelUpdateOne) AddUncertaintyIDs(ids ...int) *ModelUpdateOne {
	muo.mutation.AddUncertaintyIDs(ids...)
	return muo
}

// AddUncertainties adds the "uncertainties" edges to the DataUncertainty entity.
func (muo *ModelUpdateOne) AddUncertainties(d ...*DataUncertainty) *ModelUpdateOne {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return muo.AddUncertaintyIDs(ids...)
}

// AddPredictionIDs adds the "predictions" edge to the DataPrediction entity by IDs.
func (muo *ModelUpdateOne) AddPredictionIDs(ids ...int) *ModelUpdateOne {
	muo.mutation.AddPredictionIDs(ids...)
	return muo
}

// AddPredictions adds the "predictions" edges to the DataPrediction entity.
func (muo *ModelUpdateOne) AddPredictions(d ...*DataPrediction) *ModelUpdateOne {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return muo.AddPredictionIDs(ids...)
}

// Mutation returns the ModelMutation object of the builder.
func (muo *ModelUpdateOne) Mutation() *ModelMutation {
	return muo.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (muo *ModelUpdateOne) ClearProject() *ModelUpdateOne {
	muo.mutation.ClearProject()
	return muo
}

// ClearUncertainties clears all "uncertainties" edges to the DataUncertainty entity.
func (muo *ModelUpdateOne) ClearUncertainties() *ModelUpdateOne {
	muo.mutation.ClearUncertainties()
	return muo
}

// RemoveUncertaintyIDs removes the "uncertainties" edge to DataUncertainty entities by IDs.
func (muo *ModelUpdateOne) RemoveUncertaintyIDs(ids ...int) *ModelUpdateOne {
	muo.mutation.RemoveUncertaintyIDs(ids...)
	return muo
}

// RemoveUncertainties removes "uncertainties" edges to DataUncertainty entities.
func (muo *ModelUpdateOne) RemoveUncertainties(d ...*DataUncertainty) *ModelUpdateOne {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return muo.RemoveUncertaintyIDs(ids...)
}

// ClearPredictions clears all "predictions" edges to the DataPrediction entity.
func (muo *ModelUpdateOne) ClearPredictions() *ModelUpdateOne {
	muo.mutation.ClearPredictions()
	return muo
}

// RemovePredictionIDs removes the "predictions" edge to DataPrediction entities by IDs.
func (muo *ModelUpdateOne) RemovePredictionIDs(ids ...int) *ModelUpdateOne {
	muo.mutation.RemovePredictionIDs(ids...)
	return muo
}

// RemovePredictions removes "predictions" edges to DataPrediction entities.
func (muo *ModelUpdateOne) RemovePredictions(d ...*DataPrediction) *ModelUpdateOne {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return muo.RemovePredictionIDs(ids...)
}

// Where appends a list predicates to the ModelUpdate builder.
func (muo *ModelUpdateOne) Where(ps ...predicate.Model) *ModelUpdateOne {
	muo.mutation.Where(ps...)
	return muo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (muo *ModelUpdateOne) Select(field string, fields ...string) *ModelUpdateOne {
	muo.fields = append([]string{field}, fields...)
	return muo
}

// Save executes the query and returns the updated Model entity.
func (muo *ModelUpdateOne) Save(ctx context.Context) (*Model, error) {
	return withHooks(ctx, muo.sqlSave, muo.mutation, muo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (muo *ModelUpdateOne) SaveX(ctx context.Context) *Model {
	node, err := muo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (muo *ModelUpdateOne) Exec(ctx context.Context) error {
	_, err := muo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (muo *ModelUpdateOne) ExecX(ctx context.Context) {
	if err := muo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (muo *ModelUpdateOne) check() error {
	if v, ok := muo.mutation.Path(); ok {
		if err := model.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "Model.path": %w`, err)}
		}
	}
	if v, ok := muo.mutation.TrainingSet(); ok {
		if err := model.TrainingSetValidator(v); err != nil {
			return &ValidationError{Name: "training_set", err: fmt.Errorf(`ent: validator failed for field "Model.training_set": %w`, err)}
		}
	}
	if muo.mutation.ProjectCleared() && len(muo.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Model.project"`)
	}
	return nil
}

func (muo *ModelUpdateOne) sqlSave(ctx context.Context) (_node *Model, err error) {
	if err := muo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(model.Table, model.Columns, sqlgraph.NewFieldSpec(model.FieldID, field.TypeInt))
	id, ok := muo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Model.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := muo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, model.FieldID)
		for _, f := range fields {
			if !model.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != model.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := muo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := muo.mutation.Path(); ok {
		_spec.SetField(model.FieldPath, field.TypeString, value)
	}
	if value, ok := muo.mutation.TrainingSet(); ok {
		_spec.SetField(model.FieldTrainingSet, field.TypeInt, value)
	}
	if value, ok := muo.mutation.AddedTrainingSet(); ok {
		_spec.AddField(model.FieldTrainingSet, field.TypeInt, value)
	}
	if value, ok := muo.mutation.CreatedAt(); ok {
		_spec.SetField(model.FieldCreatedAt, field.TypeTime, value)
	}
	if muo.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   model.ProjectTable,
			Columns: []string{model.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := muo.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   model.ProjectTable,
			Columns: []string{model.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if muo.mutation.UncertaintiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   model.UncertaintiesTable,
			Columns: []string{model.UncertaintiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datauncertainty.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := muo.mutation.RemovedUncertaintiesIDs(); len(nodes) > 0 && !muo.mutation.UncertaintiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   model.UncertaintiesTable,
			Columns: []string{model.UncertaintiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datauncertainty.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := muo.mutation.UncertaintiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   model.UncertaintiesTable,
			Columns: []string{model.UncertaintiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datauncertainty.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if muo.mutation.PredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   model.PredictionsTable,
			Columns: []string{model.PredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataprediction.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := muo.mutation.RemovedPredictionsIDs(); len(nodes) > 0 && !muo.mutation.PredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   model.PredictionsTable,
			Columns: []string{model.PredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataprediction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := muo.mutation.PredictionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   model.PredictionsTable,
			Columns: []string{model.PredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataprediction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Model{config: muo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, muo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{model.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	muo.mutation.done = true
	return _node, nil
}
