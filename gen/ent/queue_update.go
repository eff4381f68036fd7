// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/labelworks/annoqueue/gen/ent/assigneddata"
	"github.com/labelworks/annoqueue/gen/ent/dataqueue"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
	"github.com/labelworks/annoqueue/gen/ent/profile"
	"github.com/labelworks/annoqueue/gen/ent/project"
	"github.com/labelworks/annoqueue/gen/ent/queue"
)

// QueueUpdate is the builder for updating Queue entities.
type QueueUpdate struct {
	config
	hooks    []Hook
	mutation *QueueMutation
}

// Where appends a list predicates to the QueueUpdate builder.
func (qu *QueueUpdate) Where(ps ...predicate.Queue) *QueueUpdate {
	qu.mutation.Where(ps...)
	return qu
}

// SetProjectID sets the "project_id" field.
func (qu *QueueUpdate) SetProjectID(i int) *QueueUpdate {
	qu.mutation.SetProjectID(i)
	return qu
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (qu *QueueUpdate) SetNillableProjectID(i *int) *QueueUpdate {
	if i != nil {
		qu.SetProjectID(*i)
	}
	return qu
}

// SetLength sets the "length" field.
func (qu *QueueUpdate) SetLength(i int) *QueueUpdate {
	qu.mutation.ResetLength()
	qu.mutation.SetLength(i)
	return qu
}

// SetNillableLength sets the "length" field if the given value is not nil.
func (qu *QueueUpdate) SetNillableLength(i *int) *QueueUpdate {
	if i != nil {
		qu.SetLength(*i)
	}
	return qu
}

// AddLength adds i to the "length" field.
func (qu *QueueUpdate) AddLength(i int) *QueueUpdate {
	qu.mutation.AddLength(i)
	return qu
}

// SetProfileID sets the "profile_id" field.
func (qu *QueueUpdate) SetProfileID(u uuid.UUID) *QueueUpdate {
	qu.mutation.SetProfileID(u)
	return qu
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (qu *QueueUpdate) SetNillableProfileID(u *uuid.UUID) *QueueUpdate {
	if u != nil {
		qu.SetProfileID(*u)
	}
	return qu
}

// ClearProfileID clears the value of the "profile_id" field.
func (qu *QueueUpdate) ClearProfileID() *QueueUpdate {
	qu.mutation.ClearProfileID()
	return qu
}

// SetProject sets the "project" edge to the Project entity.
func (qu *QueueUpdate) SetProject(p *Project) *QueueUpdate {
	return qu.SetProjectID(p.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (qu *QueueUpdate) SetProfile(p *Profile) *QueueUpdate {
	return qu.SetProfileID(p.ID)
}

// AddEntryIDs adds the "entries" edge to the DataQueue entity by IDs.
func (qu *QueueUpdate) AddEntryIDs(ids ...int) *QueueUpdate {
	qu.mutation.AddEntryIDs(ids...)
	return qu
}

// AddEntries adds the "entries" edges to the DataQueue entity.
func (qu *QueueUpdate) AddEntries(d ...*DataQueue) *QueueUpdate {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return qu.AddEntryIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the AssignedData entity by IDs.
func (qu *QueueUpdate) AddAssignmentIDs(ids ...int) *QueueUpdate {
	qu.mutation.AddAssignmentIDs(ids...)
	return qu
}

// AddAssignments adds the "assignments" edges to the AssignedData entity.
func (qu *QueueUpdate) AddAssignments(a ...*AssignedData) *QueueUpdate {
	ids := make([]int, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return qu.AddAssignmentIDs(ids...)
}

// Mutation returns the QueueMutation object of the builder.
func (qu *QueueUpdate) Mutation() *QueueMutation {
	return qu.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (qu *QueueUpdate) ClearProject() *QueueUpdate {
	qu.mutation.ClearProject()
	return qu
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (qu *QueueUpdate) ClearProfile() *QueueUpdate {
	qu.mutation.ClearProfile()
	return qu
}

// ClearEntries clears all "entries" edges to the DataQueue entity.
func (qu *QueueUpdate) ClearEntries() *QueueUpdate {
	qu.mutation.ClearEntries()
	return qu
}

// RemoveEntryIDs removes the "entries" edge to DataQueue entities by IDs.
func (qu *QueueUpdate) RemoveEntryIDs(ids ...int) *QueueUpdate {
	qu.mutation.RemoveEntryIDs(ids...)
	return qu
}

// RemoveEntries removes "entries" edges to DataQueue entities.
func (qu *QueueUpdate) RemoveEntries(d ...*DataQueue) *QueueUpdate {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return qu.RemoveEntryIDs(ids...)
}

// ClearAssignments clears all "assignments" edges to the AssignedData entity.
func (qu *QueueUpdate) ClearAssignments() *QueueUpdate {
	qu.mutation.ClearAssignments()
	return qu
}

// RemoveAssignmentIDs removes the "assignments" edge to AssignedData entities by IDs.
func (qu *QueueUpdate) RemoveAssignmentIDs(ids ...int) *QueueUpdate {
	qu.mutation.RemoveAssignmentIDs(ids...)
	return qu
}

// RemoveAssignments removes "assignments" edges to AssignedData entities.
func (qu *QueueUpdate) RemoveAssignments(a ...*AssignedData) *QueueUpdate {
	ids := make([]int, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return qu.RemoveAssignmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (qu *QueueUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, qu.sqlSave, qu.mutation, qu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (qu *QueueUpdate) SaveX(ctx context.Context) int {
	affected, err := qu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (qu *QueueUpdate) Exec(ctx context.Context) error {
	_, err := qu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (qu *QueueUpdate) ExecX(ctx context.Context) {
	if err := qu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (qu *QueueUpdate) check() error {
	if v, ok := qu.mutation.Length(); ok {
		if err := queue.LengthValidator(v); err != nil {
			return &ValidationError{Name: "length", err: fmt.Errorf(`ent: validator failed for field "Queue.length": %w`, err)}
		}
	}
	if qu.mutation.ProjectCleared() && len(qu.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Queue.project"`)
	}
	return nil
}

func (qu *QueueUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := qu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(queue.Table, queue.Columns, sqlgraph.NewFieldSpec(queue.FieldID, field.TypeInt))
	if ps := qu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := qu.mutation.Length(); ok {
		_spec.SetField(queue.FieldLength, field.TypeInt, value)
	}
	if value, ok := qu.mutation.AddedLength(); ok {
		_spec.AddField(queue.FieldLength, field.TypeInt, value)
	}
	if qu.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   queue.ProjectTable,
			Columns: []string{queue.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qu.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   queue.ProjectTable,
			Columns: []string{queue.ProjectColumn},
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
	if qu.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   queue.ProfileTable,
			Columns: []string{queue.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qu.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   queue.ProfileTable,
			Columns: []string{queue.ProfileColumn},
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
	if qu.mutation.EntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   queue.EntriesTable,
			Columns: []string{queue.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataqueue.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qu.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !qu.mutation.EntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   queue.EntriesTable,
			Columns: []string{queue.EntriesColumn},
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
	if nodes := qu.mutation.EntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   queue.EntriesTable,
			Columns: []string{queue.EntriesColumn},
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
	if qu.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   queue.AssignmentsTable,
			Columns: []string{queue.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assigneddata.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := qu.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !qu.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   queue.AssignmentsTable,
			Columns: []string{queue.AssignmentsColumn},
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
	if nodes := qu.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   queue.AssignmentsTable,
			Columns: []string{queue.AssignmentsColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, qu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	qu.mutation.done = true
	return n, nil
}

// QueueUpdateOne is the builder for updating a single Queue entity.
type QueueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueMutation
}

// SetProjectID sets the "project_id" field.
func (quo *QueueUpdateOne) SetProjectID(i int) *QueueUpdateOne {
	quo.mutation.SetProjectID(i)
	return quo
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (quo *QueueUpdateOne) SetNillableProjectID(i *int) *QueueUpdateOne {
	if i != nil {
		quo.SetProjectID(*i)
	}
	return quo
}

// SetLength sets the "length" field.
func (quo *QueueUpdateOne) SetLength(i int) *QueueUpdateOne {
	quo.mutation.ResetLength()
	quo.mutation.SetLength(i)
	return quo
}

// SetNillableLength sets the "length" field if the given value is not nil.
func (quo *QueueUpdateOne) SetNillableLength(i *int) *QueueUpdateOne {
	if i != nil {
		quo.SetLength(*i)
	}
	return quo
}

// AddLength adds i to the "length" field.
func (quo *QueueUpdateOne) AddLength(i int) *QueueUpdateOne {
	quo.mutation.AddLength(i)
	return quo
}

// SetProfileID sets the "profile_id" field.
func (quo *QueueUpdateOne) SetProfileID(u uuid.UUID) *QueueUpdateOne {
	quo.mutation.SetProfileID(u)
	return quo
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (quo *QueueUpdateOne) SetNillableProfileID(u *uuid.UUID) *QueueUpdateOne {
	if u != nil {
		quo.SetProfileID(*u)
	}
	return quo
}

// ClearProfileID clears the value of the "profile_id" field.
func (quo *QueueUpdateOne) ClearProfileID() *QueueUpdateOne {
	quo.mutation.ClearProfileID()
	return quo
}

// SetProject sets the "project" edge to the Project entity.
func (quo *QueueUpdateOne) SetProject(p *Project) *QueueUpdateOne {
	return quo.SetProjectID(p.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (quo *QueueUpdateOne) SetProfile(p *Profile) *QueueUpdateOne {
	return quo.SetProfileID(p.ID)
}

// AddEntryIDs adds the "entries" edge to the DataQueue entity by IDs.
func (quo *QueueUpdateOne) AddEntryIDs(ids ...int) *QueueUpdateOne {
	quo.mutation.AddEntryIDs(ids...)
	return quo
}

// AddEntries adds the "entries" edges to the DataQueue entity.
func (quo *QueueUpdateOne) AddEntries(d ...*DataQueue) *QueueUpdateOne {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return quo.AddEntryIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the AssignedData entity by IDs.
func (quo *QueueUpdateOne) AddAssignmentIDs(ids ...int) *QueueUpdateOne {
	quo.mutation.AddAssignmentIDs(ids...)
	return quo
}

// AddAssignments adds the "assignments" edges to the AssignedData entity.
func (quo *QueueUpdateOne) AddAssignments(a ...*AssignedData) *QueueUpdateOne {
	ids := make([]int, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return quo.AddAssignmentIDs(ids...)
}

// Mutation returns the QueueMutation object of the builder.
func (quo *QueueUpdateOne) Mutation() *QueueMutation {
	return quo.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (quo *QueueUpdateOne) ClearProject() *QueueUpdateOne {
	quo.mutation.ClearProject()
	return quo
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (quo *QueueUpdateOne) ClearProfile() *QueueUpdateOne {
	quo.mutation.ClearProfile()
	return quo
}

// ClearEntries clears all "entries" edges to the DataQueue entity.
func (quo *QueueUpdateOne) ClearEntries() *QueueUpdateOne {
	quo.mutation.ClearEntries()
	return quo
}

// RemoveEntryIDs removes the "entries" edge to DataQueue entities by IDs.
func (quo *QueueUpdateOne) RemoveEntryIDs(ids ...int) *QueueUpdateOne {
	quo.mutation.RemoveEntryIDs(ids...)
	return quo
}

// RemoveEntries removes "entries" edges to DataQueue entities.
func (quo *QueueUpdateOne) RemoveEntries(d ...*DataQueue) *QueueUpdateOne {
	ids := make([]int, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return quo.RemoveEntryIDs(ids...)
}

// ClearAssignments clears all "assignments" edges to the AssignedData entity.
func (quo *QueueUpdateOne) ClearAssignments() *QueueUpdateOne {
	quo.mutation.ClearAssignments()
	return quo
}

// RemoveAssignmentIDs removes the "assignments" edge to AssignedData entities by IDs.
func (quo *QueueUpdateOne) RemoveAssignmentIDs(ids ...int) *QueueUpdateOne {
	quo.mutation.RemoveAssignmentIDs(ids...)
	return quo
}

// RemoveAssignments removes "assignments" edges to AssignedData entities.
func (quo *QueueUpdateOne) RemoveAssignments(a ...*AssignedData) *QueueUpdateOne {
	ids := make([]int, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return quo.RemoveAssignmentIDs(ids...)
}

// Where appends a list predicates to the QueueUpdate builder.
func (quo *QueueUpdateOne) Where(ps ...predicate.Queue) *QueueUpdateOne {
	quo.mutation.Where(ps...)
	return quo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (quo *QueueUpdateOne) Select(field string, fields ...string) *QueueUpdateOne {
	quo.fields = append([]string{field}, fields...)
	return quo
}

// Save executes the query and returns the updated Queue entity.
func (quo *QueueUpdateOne) Save(ctx context.Context) (*Queue, error) {
	return withHooks(ctx, quo.sqlSave, quo.mutation, quo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (quo *QueueUpdateOne) SaveX(ctx context.Context) *Queue {
	node, err := quo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (quo *QueueUpdateOne) Exec(ctx context.Context) error {
	_, err := quo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (quo *QueueUpdateOne) ExecX(ctx context.Context) {
	if err := quo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (quo *QueueUpdateOne) check() error {
	if v, ok := quo.mutation.Length(); ok {
		if err := queue.LengthValidator(v); err != nil {
			return &ValidationError{Name: "length", err: fmt.Errorf(`ent: validator failed for field "Queue.length": %w`, err)}
		}
	}
	if quo.mutation.ProjectCleared() && len(quo.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Queue.project"`)
	}
	return nil
}

func (quo *QueueUpdateOne) sqlSave(ctx context.Context) (_node *Queue, err error) {
	if err := quo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queue.Table, queue.Columns, sqlgraph.NewFieldSpec(queue.FieldID, field.TypeInt))
	id, ok := quo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Queue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := quo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queue.FieldID)
		for _, f := range fields {
			if !queue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queue.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := quo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := quo.mutation.Length(); ok {
		_spec.SetField(queue.FieldLength, field.TypeInt, value)
	}
	if value, ok := quo.mutation.AddedLength(); ok {
		_spec.AddField(queue.FieldLength, field.TypeInt, value)
	}
	if quo.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   queue.ProjectTable,
			Columns: []string{queue.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := quo.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   queue.ProjectTable,
			Columns: []string{queue.ProjectColumn},
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
	if quo.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   queue.ProfileTable,
			Columns: []string{queue.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := quo.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   queue.ProfileTable,
			Columns: []string{queue.ProfileColumn},
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
	if quo.mutation.EntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   queue.EntriesTable,
			Columns: []string{queue.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataqueue.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := quo.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !quo.mutation.EntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   queue.EntriesTable,
			Columns: []string{queue.EntriesColumn},
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
	if nodes := quo.mutation.EntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   queue.EntriesTable,
			Columns: []string{queue.EntriesColumn},
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
	if quo.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   queue.AssignmentsTable,
			Columns: []string{queue.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assigneddata.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := quo.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !quo.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   queue.AssignmentsTable,
			Columns: []string{queue.AssignmentsColumn},
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
	if nodes := quo.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   queue.AssignmentsTable,
			Columns: []string{queue.AssignmentsColumn},
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
	_node = &Queue{config: quo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, quo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	quo.mutation.done = true
	return _node, nil
}
