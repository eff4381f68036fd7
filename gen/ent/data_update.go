// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labelworks/annoqueue/gen/ent/assigneddata"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/datalabel"
	"github.com/labelworks/annoqueue/gen/ent/dataprediction"
	"github.com/labelworks/annoqueue/gen/ent/dataqueue"
	"github.com/labelworks/annoqueue/gen/ent/datauncertainty"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
	"github.com/labelworks/annoqueue/gen/ent/project"
)

// DataUpdate is the builder for updating Data entities.
type DataUpdate struct {
	config
	hooks    []Hook
	mutation *DataMutation
}

// Where appends a list predicates to the DataUpdate builder.
func (du *DataUpdate) Where(ps ...predicate.Data) *DataUpdate {
	du.mutation.Where(ps...)
	return du
}

// SetProjectID sets the "project_id" field.
func (du *DataUpdate) SetProjectID(i int) *DataUpdate {
	du.mutation.SetProjectID(i)
	return du
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (du *DataUpdate) SetNillableProjectID(i *int) *DataUpdate {
	if i != nil {
		du.SetProjectID(*i)
	}
	return du
}

// SetProject sets the "project" edge to the Project entity.
func (du *DataUpdate) SetProject(p *Project) *DataUpdate {
	return du.SetProjectID(p.ID)
}

// AddQueueEntryIDs adds the "queue_entries" edge to the DataQueue entity by IDs.
func (du *DataUpdate) AddQueueEntryIDs(ids ...int) *DataUpdate {
	du.mutation.AddQueueEntryIDs(ids...)
	return du
}

// AddQueueEntries adds the "queue_entries" edges to the DataQueue entity.
func (du *DataUpdate) AddQueueEntries(d ...*DataQueue) *DataUpdate {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return du.AddQueueEntryIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the AssignedData entity by IDs.
func (du *DataUpdate) AddAssignmentIDs(ids ...int) *DataUpdate {
	du.mutation.AddAssignmentIDs(ids...)
	return du
}

// AddAssignments adds the "assignments" edges to the AssignedData entity.
func (du *DataUpdate) AddAssignments(a ...*AssignedData) *DataUpdate {
	ids := make([]int, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return du.AddAssignmentIDs(ids...)
}

// AddDecisionIDs adds the "decisions" edge to the DataLabel entity by IDs.
func (du *DataUpdate) AddDecisionIDs(ids ...int) *DataUpdate {
	du.mutation.AddDecisionIDs(ids...)
	return du
}

// AddDecisions adds the "decisions" edges to the DataLabel entity.
func (du *DataUpdate) AddDecisions(d ...*DataLabel) *DataUpdate {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return du.AddDecisionIDs(ids...)
}

// AddUncertaintyIDs adds the "uncertainties" edge to the DataUncertainty entity by IDs.
func (du *DataUpdate) AddUncertaintyIDs(ids ...int) *DataUpdate {
	du.mutation.AddUncertaintyIDs(ids...)
	return du
}

// AddUncertainties adds the "uncertainties" edges to the DataUncertainty entity.
func (du *DataUpdate) AddUncertainties(d ...*DataUncertainty) *DataUpdate {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return du.AddUncertaintyIDs(ids...)
}

// AddPredictionIDs adds the "predictions" edge to the DataPrediction entity by IDs.
func (du *DataUpdate) AddPredictionIDs(ids ...int) *DataUpdate {
	du.mutation.AddPredictionIDs(ids...)
	return du
}

// AddPredictions adds the "predictions" edges to the DataPrediction entity.
func (du *DataUpdate) AddPredictions(d ...*DataPrediction) *DataUpdate {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return du.AddPredictionIDs(ids...)
}

// Mutation returns the DataMutation object of the builder.
func (du *DataUpdate) Mutation() *DataMutation {
	return du.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (du *DataUpdate) ClearProject() *DataUpdate {
	du.mutation.ClearProject()
	return du
}

// ClearQueueEntries clears all "queue_entries" edges to the DataQueue entity.
func (du *DataUpdate) ClearQueueEntries() *DataUpdate {
	du.mutation.ClearQueueEntries()
	return du
}

// RemoveQueueEntryIDs removes the "queue_entries" edge to DataQueue entities by IDs.
func (du *DataUpdate) RemoveQueueEntryIDs(ids ...int) *DataUpdate {
	du.mutation.RemoveQueueEntryIDs(ids...)
	return du
}

// RemoveQueueEntries removes "queue_entries" edges to DataQueue entities.
func (du *DataUpdate) RemoveQueueEntries(d ...*DataQueue) *DataUpdate {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return du.RemoveQueueEntryIDs(ids...)
}

// ClearAssignments clears all "assignments" edges to the AssignedData entity.
func (du *DataUpdate) ClearAssignments() *DataUpdate {
	du.mutation.ClearAssignments()
	return du
}

// RemoveAssignmentIDs removes the "assignments" edge to AssignedData entities by IDs.
func (du *DataUpdate) RemoveAssignmentIDs(ids ...int) *DataUpdate {
	du.mutation.RemoveAssignmentIDs(ids...)
	return du
}

// RemoveAssignments removes "assignments" edges to AssignedData entities.
func (du *DataUpdate) RemoveAssignments(a ...*AssignedData) *DataUpdate {
	ids := make([]int, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return du.RemoveAssignmentIDs(ids...)
}

// ClearDecisions clears all "decisions" edges to the DataLabel entity.
func (du *DataUpdate) ClearDecisions() *DataUpdate {
	du.mutation.ClearDecisions()
	return du
}

// RemoveDecisionIDs removes the "decisions" edge to DataLabel entities by IDs.
func (du *DataUpdate) RemoveDecisionIDs(ids ...int) *DataUpdate {
	du.mutation.RemoveDecisionIDs(ids...)
	return du
}

// RemoveDecisions removes "decisions" edges to DataLabel entities.
func (du *DataUpdate) RemoveDecisions(d ...*DataLabel) *DataUpdate {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return du.RemoveDecisionIDs(ids...)
}

// ClearUncertainties clears all "uncertainties" edges to the DataUncertainty entity.
func (du *DataUpdate) ClearUncertainties() *DataUpdate {
	du.mutation.ClearUncertainties()
	return du
}

// RemoveUncertaintyIDs removes the "uncertainties" edge to DataUncertainty entities by IDs.
func (du *DataUpdate) RemoveUncertaintyIDs(ids ...int) *DataUpdate {
	du.mutation.RemoveUncertaintyIDs(ids...)
	return du
}

// RemoveUncertainties removes "uncertainties" edges to DataUncertainty entities.
func (du *DataUpdate) RemoveUncertainties(d ...*DataUncertainty) *DataUpdate {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return du.RemoveUncertaintyIDs(ids...)
}

// ClearPredictions clears all "predictions" edges to the DataPrediction entity.
func (du *DataUpdate) ClearPredictions() *DataUpdate {
	du.mutation.ClearPredictions()
	return du
}

// RemovePredictionIDs removes the "predictions" edge to DataPrediction entities by IDs.
func (du *DataUpdate) RemovePredictionIDs(ids ...int) *DataUpdate {
	du.mutation.RemovePredictionIDs(ids...)
	return du
}

// RemovePredictions removes "predictions" edges to DataPrediction entities.
func (du *DataUpdate) RemovePredictions(d ...*DataPrediction) *DataUpdate {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return du.RemovePredictionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (du *DataUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, du.sqlSave, du.mutation, du.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (du *DataUpdate) SaveX(ctx context.Context) int {
	affected, err := du.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (du *DataUpdate) Exec(ctx context.Context) error {
	_, err := du.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (du *DataUpdate) ExecX(ctx context.Context) {
	if err := du.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (du *DataUpdate) check() error {
	if du.mutation.ProjectCleared() && len(du.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Data.project"`)
	}
	return nil
}

func (du *DataUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := du.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(data.Table, data.Columns, sqlgraph.NewFieldSpec(data.FieldID, field.TypeInt))
	if ps := du.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if du.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   data.ProjectTable,
			Columns: []string{data.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := du.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   data.ProjectTable,
			Columns: []string{data.ProjectColumn},
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
	if du.mutation.QueueEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.QueueEntriesTable,
			Columns: []string{data.QueueEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataqueue.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := du.mutation.RemovedQueueEntriesIDs(); len(nodes) > 0 && !du.mutation.QueueEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.QueueEntriesTable,
			Columns: []string{data.QueueEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataqueue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := du.mutation.QueueEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.QueueEntriesTable,
			Columns: []string{data.QueueEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataqueue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if du.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.AssignmentsTable,
			Columns: []string{data.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assigneddata.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := du.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !du.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.AssignmentsTable,
			Columns: []string{data.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assigneddata.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := du.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.AssignmentsTable,
			Columns: []string{data.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assigneddata.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if du.mutation.DecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.DecisionsTable,
			Columns: []string{data.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datalabel.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := du.mutation.RemovedDecisionsIDs(); len(nodes) > 0 && !du.mutation.DecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.DecisionsTable,
			Columns: []string{data.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datalabel.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := du.mutation.DecisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.DecisionsTable,
			Columns: []string{data.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datalabel.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if du.mutation.UncertaintiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.UncertaintiesTable,
			Columns: []string{data.UncertaintiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datauncertainty.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := du.mutation.RemovedUncertaintiesIDs(); len(nodes) > 0 && !du.mutation.UncertaintiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.UncertaintiesTable,
			Columns: []string{data.UncertaintiesColumn},
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
	if nodes := du.mutation.UncertaintiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.UncertaintiesTable,
			Columns: []string{data.UncertaintiesColumn},
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
	if du.mutation.PredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.PredictionsTable,
			Columns: []string{data.PredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataprediction.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := du.mutation.RemovedPredictionsIDs(); len(nodes) > 0 && !du.mutation.PredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.PredictionsTable,
			Columns: []string{data.PredictionsColumn},
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
	if nodes := du.mutation.PredictionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.PredictionsTable,
			Columns: []string{data.PredictionsColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, du.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{data.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	du.mutation.done = true
	return n, nil
}

// DataUpdateOne is the builder for updating a single Data entity.
type DataUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DataMutation
}

// SetProjectID sets the "project_id" field.
func (duo *DataUpdateOne) SetProjectID(i int) *DataUpdateOne {
	duo.mutation.SetProjectID(i)
	return duo
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (duo *DataUpdateOne) SetNillableProjectID(i *int) *DataUpdateOne {
	if i != nil {
		duo.SetProjectID(*i)
	}
	return duo
}

// SetProject sets the "project" edge to the Project entity.
func (duo *DataUpdateOne) SetProject(p *Project) *DataUpdateOne {
	return duo.SetProjectID(p.ID)
}

// AddQueueEntryIDs adds the "queue_entries" edge to the DataQueue entity by IDs.
func (duo *DataUpdateOne) AddQueueEntryIDs(ids ...int) *DataUpdateOne {
	duo.mutation.AddQueueEntryIDs(ids...)
	return duo
}

// AddQueueEntries adds the "queue_entries" edges to the DataQueue entity.
func (duo *DataUpdateOne) AddQueueEntries(d ...*DataQueue) *DataUpdateOne {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return duo.AddQueueEntryIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the AssignedData entity by IDs.
func (duo *DataUpdateOne) AddAssignmentIDs(ids ...int) *DataUpdateOne {
	duo.mutation.AddAssignmentIDs(ids...)
	return duo
}

// AddAssignments adds the "assignments" edges to the AssignedData entity.
func (duo *DataUpdateOne) AddAssignments(a ...*AssignedData) *DataUpdateOne {
	ids := make([]int, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return duo.AddAssignmentIDs(ids...)
}

// AddDecisionIDs adds the "decisions" edge to the DataLabel entity by IDs.
func (duo *DataUpdateOne) AddDecisionIDs(ids ...int) *DataUpdateOne {
	duo.mutation.AddDecisionIDs(ids...)
	return duo
}

// AddDecisions adds the "decisions" edges to the DataLabel entity.
func (duo *DataUpdateOne) AddDecisions(d ...*DataLabel) *DataUpdateOne {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return duo.AddDecisionIDs(ids...)
}

// AddUncertaintyIDs adds the "uncertainties" edge to the DataUncertainty entity by IDs.
func (duo *DataUpdateOne) AddUncertaintyIDs(ids ...int) *DataUpdateOne {
	duo.mutation.AddUncertaintyIDs(ids...)
	return duo
}

// AddUncertainties adds the "uncertainties" edges to the DataUncertainty entity.
func (duo *DataUpdateOne) AddUncertainties(d ...*DataUncertainty) *DataUpdateOne {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return duo.AddUncertaintyIDs(ids...)
}

// AddPredictionIDs adds the "predictions" edge to the DataPrediction entity by IDs.
func (duo *DataUpdateOne) AddPredictionIDs(ids ...int) *DataUpdateOne {
	duo.mutation.AddPredictionIDs(ids...)
	return duo
}

// AddPredictions adds the "predictions" edges to the DataPrediction entity.
func (duo *DataUpdateOne) AddPredictions(d ...*DataPrediction) *DataUpdateOne {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return duo.AddPredictionIDs(ids...)
}

// Mutation returns the DataMutation object of the builder.
func (duo *DataUpdateOne) Mutation() *DataMutation {
	return duo.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (duo *DataUpdateOne) ClearProject() *DataUpdateOne {
	duo.mutation.ClearProject()
	return duo
}

// ClearQueueEntries clears all "queue_entries" edges to the DataQueue entity.
func (duo *DataUpdateOne) ClearQueueEntries() *DataUpdateOne {
	duo.mutation.ClearQueueEntries()
	return duo
}

// RemoveQueueEntryIDs removes the "queue_entries" edge to DataQueue entities by IDs.
func (duo *DataUpdateOne) RemoveQueueEntryIDs(ids ...int) *DataUpdateOne {
	duo.mutation.RemoveQueueEntryIDs(ids...)
	return duo
}

// RemoveQueueEntries removes "queue_entries" edges to DataQueue entities.
func (duo *DataUpdateOne) RemoveQueueEntries(d ...*DataQueue) *DataUpdateOne {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return duo.RemoveQueueEntryIDs(ids...)
}

// ClearAssignments clears all "assignments" edges to the AssignedData entity.
func (duo *DataUpdateOne) ClearAssignments() *DataUpdateOne {
	duo.mutation.ClearAssignments()
	return duo
}

// RemoveAssignmentIDs removes the "assignments" edge to AssignedData entities by IDs.
func (duo *DataUpdateOne) RemoveAssignmentIDs(ids ...int) *DataUpdateOne {
	duo.mutation.RemoveAssignmentIDs(ids...)
	return duo
}

// RemoveAssignments removes "assignments" edges to AssignedData entities.
func (duo *DataUpdateOne) RemoveAssignments(a ...*AssignedData) *DataUpdateOne {
	ids := make([]int, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return duo.RemoveAssignmentIDs(ids...)
}

// ClearDecisions clears all "decisions" edges to the DataLabel entity.
func (duo *DataUpdateOne) ClearDecisions() *DataUpdateOne {
	duo.mutation.ClearDecisions()
	return duo
}

// RemoveDecisionIDs removes the "decisions" edge to DataLabel entities by IDs.
func (duo *DataUpdateOne) RemoveDecisionIDs(ids ...int) *DataUpdateOne {
	duo.mutation.RemoveDecisionIDs(ids...)
	return duo
}

// RemoveDecisions removes "decisions" edges to DataLabel entities.
func (duo *DataUpdateOne) RemoveDecisions(d ...*DataLabel) *DataUpdateOne {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return duo.RemoveDecisionIDs(ids...)
}

// ClearUncertainties clears all "uncertainties" edges to the DataUncertainty entity.
func (duo *DataUpdateOne) ClearUncertainties() *DataUpdateOne {
	duo.mutation.ClearUncertainties()
	return duo
}

// RemoveUncertaintyIDs removes the "uncertainties" edge to DataUncertainty entities by IDs.
func (duo *DataUpdateOne) RemoveUncertaintyIDs(ids ...int) *DataUpdateOne {
	duo.mutation.RemoveUncertaintyIDs(ids...)
	return duo
}

// RemoveUncertainties removes "uncertainties" edges to DataUncertainty entities.
func (duo *DataUpdateOne) RemoveUncertainties(d ...*DataUncertainty) *DataUpdateOne {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return duo.RemoveUncertaintyIDs(ids...)
}

// ClearPredictions clears all "predictions" edges to the DataPrediction entity.
func (duo *DataUpdateOne) ClearPredictions() *DataUpdateOne {
	duo.mutation.ClearPredictions()
	return duo
}

// RemovePredictionIDs removes the "predictions" edge to DataPrediction entities by IDs.
func (duo *DataUpdateOne) RemovePredictionIDs(ids ...int) *DataUpdateOne {
	duo.mutation.RemovePredictionIDs(ids...)
	return duo
}

// RemovePredictions removes "predictions" edges to DataPrediction entities.
func (duo *DataUpdateOne) RemovePredictions(d ...*DataPrediction) *DataUpdateOne {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return duo.RemovePredictionIDs(ids...)
}

// Where appends a list predicates to the DataUpdate builder.
func (duo *DataUpdateOne) Where(ps ...predicate.Data) *DataUpdateOne {
	duo.mutation.Where(ps...)
	return duo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (duo *DataUpdateOne) Select(field string, fields ...string) *DataUpdateOne {
	duo.fields = append([]string{field}, fields...)
	return duo
}

// Save executes the query and returns the updated Data entity.
func (duo *DataUpdateOne) Save(ctx context.Context) (*Data, error) {
	return withHooks(ctx, duo.sqlSave, duo.mutation, duo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (duo *DataUpdateOne) SaveX(ctx context.Context) *Data {
	node, err := duo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (duo *DataUpdateOne) Exec(ctx context.Context) error {
	_, err := duo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (duo *DataUpdateOne) ExecX(ctx context.Context) {
	if err := duo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (duo *DataUpdateOne) check() error {
	if duo.mutation.ProjectCleared() && len(duo.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Data.project"`)
	}
	return nil
}

func (duo *DataUpdateOne) sqlSave(ctx context.Context) (_node *Data, err error) {
	if err := duo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(data.Table, data.Columns, sqlgraph.NewFieldSpec(data.FieldID, field.TypeInt))
	id, ok := duo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Data.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := duo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, data.FieldID)
		for _, f := range fields {
			if !data.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != data.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := duo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if duo.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   data.ProjectTable,
			Columns: []string{data.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duo.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   data.ProjectTable,
			Columns: []string{data.ProjectColumn},
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
	if duo.mutation.QueueEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.QueueEntriesTable,
			Columns: []string{data.QueueEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataqueue.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duo.mutation.RemovedQueueEntriesIDs(); len(nodes) > 0 && !duo.mutation.QueueEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.QueueEntriesTable,
			Columns: []string{data.QueueEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataqueue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duo.mutation.QueueEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.QueueEntriesTable,
			Columns: []string{data.QueueEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataqueue.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if duo.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.AssignmentsTable,
			Columns: []string{data.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assigneddata.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duo.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !duo.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.AssignmentsTable,
			Columns: []string{data.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assigneddata.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duo.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.AssignmentsTable,
			Columns: []string{data.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assigneddata.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if duo.mutation.DecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.DecisionsTable,
			Columns: []string{data.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datalabel.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duo.mutation.RemovedDecisionsIDs(); len(nodes) > 0 && !duo.mutation.DecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.DecisionsTable,
			Columns: []string{data.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datalabel.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duo.mutation.DecisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.DecisionsTable,
			Columns: []string{data.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datalabel.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if duo.mutation.UncertaintiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.UncertaintiesTable,
			Columns: []string{data.UncertaintiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(datauncertainty.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duo.mutation.RemovedUncertaintiesIDs(); len(nodes) > 0 && !duo.mutation.UncertaintiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.UncertaintiesTable,
			Columns: []string{data.UncertaintiesColumn},
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
	if nodes := duo.mutation.UncertaintiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.UncertaintiesTable,
			Columns: []string{data.UncertaintiesColumn},
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
	if duo.mutation.PredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.PredictionsTable,
			Columns: []string{data.PredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataprediction.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duo.mutation.RemovedPredictionsIDs(); len(nodes) > 0 && !duo.mutation.PredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.PredictionsTable,
			Columns: []string{data.PredictionsColumn},
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
	if nodes := duo.mutation.PredictionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   data.PredictionsTable,
			Columns: []string{data.PredictionsColumn},
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
	_node = &Data{config: duo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, duo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{data.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	duo.mutation.done = true
	return _node, nil
}
