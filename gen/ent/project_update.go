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
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/label"
	"github.com/labelworks/annoqueue/gen/ent/model"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
	"github.com/labelworks/annoqueue/gen/ent/project"
	"github.com/labelworks/annoqueue/gen/ent/queue"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (pu *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetName sets the "name" field.
func (pu *ProjectUpdate) SetName(s string) *ProjectUpdate {
	pu.mutation.SetName(s)
	return pu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (pu *ProjectUpdate) SetNillableName(s *string) *ProjectUpdate {
	if s != nil {
		pu.SetName(*s)
	}
	return pu
}

// SetClassifier sets the "classifier" field.
func (pu *ProjectUpdate) SetClassifier(s string) *ProjectUpdate {
	pu.mutation.SetClassifier(s)
	return pu
}

// SetNillableClassifier sets the "classifier" field if the given value is not nil.
func (pu *ProjectUpdate) SetNillableClassifier(s *string) *ProjectUpdate {
	if s != nil {
		pu.SetClassifier(*s)
	}
	return pu
}

// SetCurrentTrainingSet sets the "current_training_set" field.
func (pu *ProjectUpdate) SetCurrentTrainingSet(i int) *ProjectUpdate {
	pu.mutation.ResetCurrentTrainingSet()
	pu.mutation.SetCurrentTrainingSet(i)
	return pu
}

// SetNillableCurrentTrainingSet sets the "current_training_set" field if the given value is not nil.
func (pu *ProjectUpdate) SetNillableCurrentTrainingSet(i *int) *ProjectUpdate {
	if i != nil {
		pu.SetCurrentTrainingSet(*i)
	}
	return pu
}

// AddCurrentTrainingSet adds i to the "current_training_set" field.
func (pu *ProjectUpdate) AddCurrentTrainingSet(i int) *ProjectUpdate {
	pu.mutation.AddCurrentTrainingSet(i)
	return pu
}

// SetCreatedAt sets the "created_at" field.
func (pu *ProjectUpdate) SetCreatedAt(t time.Time) *ProjectUpdate {
	pu.mutation.SetCreatedAt(t)
	return pu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (pu *ProjectUpdate) SetNillableCreatedAt(t *time.Time) *ProjectUpdate {
	if t != nil {
		pu.SetCreatedAt(*t)
	}
	return pu
}

// SetUpdatedAt sets the "updated_at" field.
func (pu *ProjectUpdate) SetUpdatedAt(t time.Time) *ProjectUpdate {
	pu.mutation.SetUpdatedAt(t)
	return pu
}

// AddDatumIDs adds the "data" edge to the Data entity by IDs.
func (pu *ProjectUpdate) AddDatumIDs(ids ...int) *ProjectUpdate {
	pu.mutation.AddDatumIDs(ids...)
	return pu
}

// AddData adds the "data" edges to the Data entity.
func (pu *ProjectUpdate) AddData(d ...*Data) *ProjectUpdate {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return pu.AddDatumIDs(ids...)
}

// AddLabelIDs adds the "labels" edge to the Label entity by IDs.
func (pu *ProjectUpdate) AddLabelIDs(ids ...int) *ProjectUpdate {
	pu.mutation.AddLabelIDs(ids...)
	return pu
}

// AddLabels adds the "labels" edges to the Label entity.
func (pu *ProjectUpdate) AddLabels(l ...*Label) *ProjectUpdate {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return pu.AddLabelIDs(ids...)
}

// AddQueueIDs adds the "queues" edge to the Queue entity by IDs.
func (pu *ProjectUpdate) AddQueueIDs(ids ...int) *ProjectUpdate {
	pu.mutation.AddQueueIDs(ids...)
	return pu
}

// AddQueues adds the "queues" edges to the Queue entity.
func (pu *ProjectUpdate) AddQueues(q ...*Queue) *ProjectUpdate {
	ids := make([]int, len(q))
	for i := range q {
		ids[i] = q[i].ID
	}
	return pu.AddQueueIDs(ids...)
}

// AddModelIDs adds the "models" edge to the Model entity by IDs.
func (pu *ProjectUpdate) AddModelIDs(ids ...int) *ProjectUpdate {
	pu.mutation.AddModelIDs(ids...)
	return pu
}

// AddModels adds the "models" edges to the Model entity.
func (pu *ProjectUpdate) AddModels(m ...*Model) *ProjectUpdate {
	ids := make([]int, len(m))
	for i := range m {
		ids[i] = m[i].ID
	}
	return pu.AddModelIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (pu *ProjectUpdate) Mutation() *ProjectMutation {
	return pu.mutation
}

// ClearData clears all "data" edges to the Data entity.
func (pu *ProjectUpdate) ClearData() *ProjectUpdate {
	pu.mutation.ClearData()
	return pu
}

// RemoveDatumIDs removes the "data" edge to Data entities by IDs.
func (pu *ProjectUpdate) RemoveDatumIDs(ids ...int) *ProjectUpdate {
	pu.mutation.RemoveDatumIDs(ids...)
	return pu
}

// RemoveData removes "data" edges to Data entities.
func (pu *ProjectUpdate) RemoveData(d ...*Data) *ProjectUpdate {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return pu.RemoveDatumIDs(ids...)
}

// ClearLabels clears all "labels" edges to the Label entity.
func (pu *ProjectUpdate) ClearLabels() *ProjectUpdate {
	pu.mutation.ClearLabels()
	return pu
}

// RemoveLabelIDs removes the "labels" edge to Label entities by IDs.
func (pu *ProjectUpdate) RemoveLabelIDs(ids ...int) *ProjectUpdate {
	pu.mutation.RemoveLabelIDs(ids...)
	return pu
}

// RemoveLabels removes "labels" edges to Label entities.
func (pu *ProjectUpdate) RemoveLabels(l ...*Label) *ProjectUpdate {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return pu.RemoveLabelIDs(ids...)
}

// ClearQueues clears all "queues" edges to the Queue entity.
func (pu *ProjectUpdate) ClearQueues() *ProjectUpdate {
	pu.mutation.ClearQueues()
	return pu
}

// RemoveQueueIDs removes the "queues" edge to Queue entities by IDs.
func (pu *ProjectUpdate) RemoveQueueIDs(ids ...int) *ProjectUpdate {
	pu.mutation.RemoveQueueIDs(ids...)
	return pu
}

// RemoveQueues removes "queues" edges to Queue entities.
func (pu *ProjectUpdate) RemoveQueues(q ...*Queue) *ProjectUpdate {
	ids := make([]int, len(q))
	for i := range q {
		ids[i] = q[i].ID
	}
	return pu.RemoveQueueIDs(ids...)
}

// ClearModels clears all "models" edges to the Model entity.
func (pu *ProjectUpdate) ClearModels() *ProjectUpdate {
	pu.mutation.ClearModels()
	return pu
}

// RemoveModelIDs removes the "models" edge to Model entities by IDs.
func (pu *ProjectUpdate) RemoveModelIDs(ids ...int) *ProjectUpdate {
	pu.mutation.RemoveModelIDs(ids...)
	return pu
}

// RemoveModels removes "models" edges to Model entities.
func (pu *ProjectUpdate) RemoveModels(m ...*Model) *ProjectUpdate {
	ids := make([]int, len(m))
	for i := range m {
		ids[i] = m[i].ID
	}
	return pu.RemoveModelIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *ProjectUpdate) Save(ctx context.Context) (int, error) {
	pu.defaults()
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *ProjectUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pu *ProjectUpdate) defaults() {
	if _, ok := pu.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		pu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pu *ProjectUpdate) check() error {
	if v, ok := pu.mutation.Name(); ok {
		if err := project.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Project.name": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Classifier(); ok {
		if err := project.ClassifierValidator(v); err != nil {
			return &ValidationError{Name: "classifier", err: fmt.Errorf(`ent: validator failed for field "Project.classifier": %w`, err)}
		}
	}
	if v, ok := pu.mutation.CurrentTrainingSet(); ok {
		if err := project.CurrentTrainingSetValidator(v); err != nil {
			return &ValidationError{Name: "current_training_set", err: fmt.Errorf(`ent: validator failed for field "Project.current_training_set": %w`, err)}
		}
	}
	return nil
}

func (pu *ProjectUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pu.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := pu.mutation.Classifier(); ok {
		_spec.SetField(project.FieldClassifier, field.TypeString, value)
	}
	if value, ok := pu.mutation.CurrentTrainingSet(); ok {
		_spec.SetField(project.FieldCurrentTrainingSet, field.TypeInt, value)
	}
	if value, ok := pu.mutation.AddedCurrentTrainingSet(); ok {
		_spec.AddField(project.FieldCurrentTrainingSet, field.TypeInt, value)
	}
	if value, ok := pu.mutation.CreatedAt(); ok {
		_spec.SetField(project.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := pu.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if pu.mutation.DataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DataTable,
			Columns: []string{project.DataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(data.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.RemovedDataIDs(); len(nodes) > 0 && !pu.mutation.DataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DataTable,
			Columns: []string{project.DataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(data.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.DataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DataTable,
			Columns: []string{project.DataColumn},
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
	if pu.mutation.LabelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.LabelsTable,
			Columns: []string{project.LabelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(label.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.RemovedLabelsIDs(); len(nodes) > 0 && !pu.mutation.LabelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.LabelsTable,
			Columns: []string{project.LabelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(label.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.LabelsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.LabelsTable,
			Columns: []string{project.LabelsColumn},
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
	if pu.mutation.QueuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.QueuesTable,
			Columns: []string{project.QueuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(queue.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.RemovedQueuesIDs(); len(nodes) > 0 && !pu.mutation.QueuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.QueuesTable,
			Columns: []string{project.QueuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(queue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.QueuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.QueuesTable,
			Columns: []string{project.QueuesColumn},
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
	if pu.mutation.ModelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ModelsTable,
			Columns: []string{project.ModelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(model.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.RemovedModelsIDs(); len(nodes) > 0 && !pu.mutation.ModelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ModelsTable,
			Columns: []string{project.ModelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(model.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.ModelsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ModelsTable,
			Columns: []string{project.ModelsColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetName sets the "name" field.
func (puo *ProjectUpdateOne) SetName(s string) *ProjectUpdateOne {
	puo.mutation.SetName(s)
	return puo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (puo *ProjectUpdateOne) SetNillableName(s *string) *ProjectUpdateOne {
	if s != nil {
		puo.SetName(*s)
	}
	return puo
}

// SetClassifier sets the "classifier" field.
func (puo *ProjectUpdateOne) SetClassifier(s string) *ProjectUpdateOne {
	puo.mutation.SetClassifier(s)
	return puo
}

// SetNillableClassifier sets the "classifier" field if the given value is not nil.
func (puo *ProjectUpdateOne) SetNillableClassifier(s *string) *ProjectUpdateOne {
	if s != nil {
		puo.SetClassifier(*s)
	}
	return puo
}

// SetCurrentTrainingSet sets the "current_training_set" field.
func (puo *ProjectUpdateOne) SetCurrentTrainingSet(i int) *ProjectUpdateOne {
	puo.mutation.ResetCurrentTrainingSet()
	puo.mutation.SetCurrentTrainingSet(i)
	return puo
}

// SetNillableCurrentTrainingSet sets the "current_training_set" field if the given value is not nil.
func (puo *ProjectUpdateOne) SetNillableCurrentTrainingSet(i *int) *ProjectUpdateOne {
	if i != nil {
		puo.SetCurrentTrainingSet(*i)
	}
	return puo
}

// AddCurrentTrainingSet adds i to the "current_training_set" field.
func (puo *ProjectUpdateOne) AddCurrentTrainingSet(i int) *ProjectUpdateOne {
	puo.mutation.AddCurrentTrainingSet(i)
	return puo
}

// SetCreatedAt sets the "created_at" field.
func (puo *ProjectUpdateOne) SetCreatedAt(t time.Time) *ProjectUpdateOne {
	puo.mutation.SetCreatedAt(t)
	return puo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (puo *ProjectUpdateOne) SetNillableCreatedAt(t *time.Time) *ProjectUpdateOne {
	if t != nil {
		puo.SetCreatedAt(*t)
	}
	return puo
}

// SetUpdatedAt sets the "updated_at" field.
func (puo *ProjectUpdateOne) SetUpdatedAt(t time.Time) *ProjectUpdateOne {
	puo.mutation.SetUpdatedAt(t)
	return puo
}

// AddDatumIDs adds the "data" edge to the Data entity by IDs.
func (puo *ProjectUpdateOne) AddDatumIDs(ids ...int) *ProjectUpdateOne {
	puo.mutation.AddDatumIDs(ids...)
	return puo
}

// AddData adds the "data" edges to the Data entity.
func (puo *ProjectUpdateOne) AddData(d ...*Data) *ProjectUpdateOne {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return puo.AddDatumIDs(ids...)
}

// AddLabelIDs adds the "labels" edge to the Label entity by IDs.
func (puo *ProjectUpdateOne) AddLabelIDs(ids ...int) *ProjectUpdateOne {
	puo.mutation.AddLabelIDs(ids...)
	return puo
}

// AddLabels adds the "labels" edges to the Label entity.
func (puo *ProjectUpdateOne) AddLabels(l ...*Label) *ProjectUpdateOne {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return puo.AddLabelIDs(ids...)
}

// AddQueueIDs adds the "queues" edge to the Queue entity by IDs.
func (puo *ProjectUpdateOne) AddQueueIDs(ids ...int) *ProjectUpdateOne {
	puo.mutation.AddQueueIDs(ids...)
	return puo
}

// AddQueues adds the "queues" edges to the Queue entity.
func (puo *ProjectUpdateOne) AddQueues(q ...*Queue) *ProjectUpdateOne {
	ids := make([]int, len(q))
	for i := range q {
		ids[i] = q[i].ID
	}
	return puo.AddQueueIDs(ids...)
}

// AddModelIDs adds the "models" edge to the Model entity by IDs.
func (puo *ProjectUpdateOne) AddModelIDs(ids ...int) *ProjectUpdateOne {
	puo.mutation.AddModelIDs(ids...)
	return puo
}

// AddModels adds the "models" edges to the Model entity.
func (puo *ProjectUpdateOne) AddModels(m ...*Model) *ProjectUpdateOne {
	ids := make([]int, len(m))
	for i := range m {
		ids[i] = m[i].ID
	}
	return puo.AddModelIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (puo *ProjectUpdateOne) Mutation() *ProjectMutation {
	return puo.mutation
}

// ClearData clears all "data" edges to the Data entity.
func (puo *ProjectUpdateOne) ClearData() *ProjectUpdateOne {
	puo.mutation.ClearData()
	return puo
}

// RemoveDatumIDs removes the "data" edge to Data entities by IDs.
func (puo *ProjectUpdateOne) RemoveDatumIDs(ids ...int) *ProjectUpdateOne {
	puo.mutation.RemoveDatumIDs(ids...)
	return puo
}

// RemoveData removes "data" edges to Data entities.
func (puo *ProjectUpdateOne) RemoveData(d ...*Data) *ProjectUpdateOne {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return puo.RemoveDatumIDs(ids...)
}

// ClearLabels clears all "labels" edges to the Label entity.
func (puo *ProjectUpdateOne) ClearLabels() *ProjectUpdateOne {
	puo.mutation.ClearLabels()
	return puo
}

// RemoveLabelIDs removes the "labels" edge to Label entities by IDs.
func (puo *ProjectUpdateOne) RemoveLabelIDs(ids ...int) *ProjectUpdateOne {
	puo.mutation.RemoveLabelIDs(ids...)
	return puo
}

// RemoveLabels removes "labels" edges to Label entities.
func (puo *ProjectUpdateOne) RemoveLabels(l ...*Label) *ProjectUpdateOne {
	ids := make([]int, len(l))
	for i := range l {
		ids[i] = l[i].ID
	}
	return puo.RemoveLabelIDs(ids...)
}

// ClearQueues clears all "queues" edges to the Queue entity.
func (puo *ProjectUpdateOne) ClearQueues() *ProjectUpdateOne {
	puo.mutation.ClearQueues()
	return puo
}

// RemoveQueueIDs removes the "queues" edge to Queue entities by IDs.
func (puo *ProjectUpdateOne) RemoveQueueIDs(ids ...int) *ProjectUpdateOne {
	puo.mutation.RemoveQueueIDs(ids...)
	return puo
}

// RemoveQueues removes "queues" edges to Queue entities.
func (puo *ProjectUpdateOne) RemoveQueues(q ...*Queue) *ProjectUpdateOne {
	ids := make([]int, len(q))
	for i := range q {
		ids[i] = q[i].ID
	}
	return puo.RemoveQueueIDs(ids...)
}

// ClearModels clears all "models" edges to the Model entity.
func (puo *ProjectUpdateOne) ClearModels() *ProjectUpdateOne {
	puo.mutation.ClearModels()
	return puo
}

// RemoveModelIDs removes the "models" edge to Model entities by IDs.
func (puo *ProjectUpdateOne) RemoveModelIDs(ids ...int) *ProjectUpdateOne {
	puo.mutation.RemoveModelIDs(ids...)
	return puo
}

// RemoveModels removes "models" edges to Model entities.
func (puo *ProjectUpdateOne) RemoveModels(m ...*Model) *ProjectUpdateOne {
	ids := make([]int, len(m))
	for i := range m {
		ids[i] = m[i].ID
	}
	return puo.RemoveModelIDs(ids...)
}

// Where appends a list predicates to the ProjectUpdate builder.
func (puo *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Project entity.
func (puo *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	puo.defaults()
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (puo *ProjectUpdateOne) defaults() {
	if _, ok := puo.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		puo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (puo *ProjectUpdateOne) check() error {
	if v, ok := puo.mutation.Name(); ok {
		if err := project.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Project.name": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Classifier(); ok {
		if err := project.ClassifierValidator(v); err != nil {
			return &ValidationError{Name: "classifier", err: fmt.Errorf(`ent: validator failed for field "Project.classifier": %w`, err)}
		}
	}
	if v, ok := puo.mutation.CurrentTrainingSet(); ok {
		if err := project.CurrentTrainingSetValidator(v); err != nil {
			return &ValidationError{Name: "current_training_set", err: fmt.Errorf(`ent: validator failed for field "Project.current_training_set": %w`, err)}
		}
	}
	return nil
}

func (puo *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := puo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := puo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := puo.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := puo.mutation.Classifier(); ok {
		_spec.SetField(project.FieldClassifier, field.TypeString, value)
	}
	if value, ok := puo.mutation.CurrentTrainingSet(); ok {
		_spec.SetField(project.FieldCurrentTrainingSet, field.TypeInt, value)
	}
	if value, ok := puo.mutation.AddedCurrentTrainingSet(); ok {
		_spec.AddField(project.FieldCurrentTrainingSet, field.TypeInt, value)
	}
	if value, ok := puo.mutation.CreatedAt(); ok {
		_spec.SetField(project.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := puo.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if puo.mutation.DataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DataTable,
			Columns: []string{project.DataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(data.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.RemovedDataIDs(); len(nodes) > 0 && !puo.mutation.DataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DataTable,
			Columns: []string{project.DataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(data.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.DataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.DataTable,
			Columns: []string{project.DataColumn},
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
	if puo.mutation.LabelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.LabelsTable,
			Columns: []string{project.LabelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(label.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.RemovedLabelsIDs(); len(nodes) > 0 && !puo.mutation.LabelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.LabelsTable,
			Columns: []string{project.LabelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(label.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.LabelsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.LabelsTable,
			Columns: []string{project.LabelsColumn},
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
	if puo.mutation.QueuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.QueuesTable,
			Columns: []string{project.QueuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(queue.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.RemovedQueuesIDs(); len(nodes) > 0 && !puo.mutation.QueuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.QueuesTable,
			Columns: []string{project.QueuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(queue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.QueuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.QueuesTable,
			Columns: []string{project.QueuesColumn},
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
	if puo.mutation.ModelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ModelsTable,
			Columns: []string{project.ModelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(model.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.RemovedModelsIDs(); len(nodes) > 0 && !puo.mutation.ModelsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ModelsTable,
			Columns: []string{project.ModelsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(model.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.ModelsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.ModelsTable,
			Columns: []string{project.ModelsColumn},
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
	_node = &Project{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
