// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/labelworks/annoqueue/gen/ent/assigneddata"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/datalabel"
	"github.com/labelworks/annoqueue/gen/ent/dataprediction"
	"github.com/labelworks/annoqueue/gen/ent/dataqueue"
	"github.com/labelworks/annoqueue/gen/ent/datauncertainty"
	"github.com/labelworks/annoqueue/gen/ent/label"
	"github.com/labelworks/annoqueue/gen/ent/model"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
	"github.com/labelworks/annoqueue/gen/ent/profile"
	"github.com/labelworks/annoqueue/gen/ent/project"
	"github.com/labelworks/annoqueue/gen/ent/queue"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssignedData    = "AssignedData"
	TypeData            = "Data"
	TypeDataLabel       = "DataLabel"
	TypeDataPrediction  = "DataPrediction"
	TypeDataQueue       = "DataQueue"
	TypeDataUncertainty = "DataUncertainty"
	TypeLabel           = "Label"
	TypeModel           = "Model"
	TypeProfile         = "Profile"
	TypeProject         = "Project"
	TypeQueue           = "Queue"
)

// AssignedDataMutation represents an operation that mutates the AssignedData nodes in the graph.
type AssignedDataMutation struct {
	config
	op             Op
	typ            string
	id             *int
	assigned_at    *time.Time
	clearedFields  map[string]struct{}
	data           *int
	cleareddata    bool
	profile        *uuid.UUID
	clearedprofile bool
	queue          *int
	clearedqueue   bool
	done           bool
	oldValue       func(context.Context) (*AssignedData, error)
	predicates     []predicate.AssignedData
}

var _ ent.Mutation = (*AssignedDataMutation)(nil)

// assigneddataOption allows management of the mutation configuration using functional options.
type assigneddataOption func(*AssignedDataMutation)

// newAssignedDataMutation creates new mutation for the AssignedData entity.
func newAssignedDataMutation(c config, op Op, opts ...assigneddataOption) *AssignedDataMutation {
	m := &AssignedDataMutation{
		config:        c,
		op:            op,
		typ:           TypeAssignedData,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssignedDataID sets the ID field of the mutation.
func withAssignedDataID(id int) assigneddataOption {
	return func(m *AssignedDataMutation) {
		var (
			err   error
			once  sync.Once
			value *AssignedData
		)
		m.oldValue = func(ctx context.Context) (*AssignedData, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssignedData.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssignedData sets the old AssignedData of the mutation.
func withAssignedData(node *AssignedData) assigneddataOption {
	return func(m *AssignedDataMutation) {
		m.oldValue = func(context.Context) (*AssignedData, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssignedDataMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssignedDataMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssignedDataMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssignedDataMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssignedData.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDataID sets the "data_id" field.
func (m *AssignedDataMutation) SetDataID(i int) {
	m.data = &i
}

// DataID returns the value of the "data_id" field in the mutation.
func (m *AssignedDataMutation) DataID() (r int, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldDataID returns the old "data_id" field's value of the AssignedData entity.
// If the AssignedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignedDataMutation) OldDataID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataID: %w", err)
	}
	return oldValue.DataID, nil
}

// ResetDataID resets all changes to the "data_id" field.
func (m *AssignedDataMutation) ResetDataID() {
	m.data = nil
}

// SetProfileID sets the "profile_id" field.
func (m *AssignedDataMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *AssignedDataMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the AssignedData entity.
// If the AssignedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignedDataMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *AssignedDataMutation) ResetProfileID() {
	m.profile = nil
}

// SetQueueID sets the "queue_id" field.
func (m *AssignedDataMutation) SetQueueID(i int) {
	m.queue = &i
}

// QueueID returns the value of the "queue_id" field in the mutation.
func (m *AssignedDataMutation) QueueID() (r int, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueueID returns the old "queue_id" field's value of the AssignedData entity.
// If the AssignedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignedDataMutation) OldQueueID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueueID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueueID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueueID: %w", err)
	}
	return oldValue.QueueID, nil
}

// ResetQueueID resets all changes to the "queue_id" field.
func (m *AssignedDataMutation) ResetQueueID() {
	m.queue = nil
}

// SetAssignedAt sets the "assigned_at" field.
func (m *AssignedDataMutation) SetAssignedAt(t time.Time) {
	m.assigned_at = &t
}

// AssignedAt returns the value of the "assigned_at" field in the mutation.
func (m *AssignedDataMutation) AssignedAt() (r time.Time, exists bool) {
	v := m.assigned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAt returns the old "assigned_at" field's value of the AssignedData entity.
// If the AssignedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignedDataMutation) OldAssignedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAt: %w", err)
	}
	return oldValue.AssignedAt, nil
}

// ResetAssignedAt resets all changes to the "assigned_at" field.
func (m *AssignedDataMutation) ResetAssignedAt() {
	m.assigned_at = nil
}

// ClearData clears the "data" edge to the Data entity.
func (m *AssignedDataMutation) ClearData() {
	m.cleareddata = true
	m.clearedFields[assigneddata.FieldDataID] = struct{}{}
}

// DataCleared reports if the "data" edge to the Data entity was cleared.
func (m *AssignedDataMutation) DataCleared() bool {
	return m.cleareddata
}

// DataIDs returns the "data" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DataID instead. It exists only for internal usage by the builders.
func (m *AssignedDataMutation) DataIDs() (ids []int) {
	if id := m.data; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetData resets all changes to the "data" edge.
func (m *AssignedDataMutation) ResetData() {
	m.data = nil
	m.cleareddata = false
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *AssignedDataMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[assigneddata.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *AssignedDataMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *AssignedDataMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *AssignedDataMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// ClearQueue clears the "queue" edge to the Queue entity.
func (m *AssignedDataMutation) ClearQueue() {
	m.clearedqueue = true
	m.clearedFields[assigneddata.FieldQueueID] = struct{}{}
}

// QueueCleared reports if the "queue" edge to the Queue entity was cleared.
func (m *AssignedDataMutation) QueueCleared() bool {
	return m.clearedqueue
}

// QueueIDs returns the "queue" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QueueID instead. It exists only for internal usage by the builders.
func (m *AssignedDataMutation) QueueIDs() (ids []int) {
	if id := m.queue; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQueue resets all changes to the "queue" edge.
func (m *AssignedDataMutation) ResetQueue() {
	m.queue = nil
	m.clearedqueue = false
}

// Where appends a list predicates to the AssignedDataMutation builder.
func (m *AssignedDataMutation) Where(ps ...predicate.AssignedData) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssignedDataMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssignedDataMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssignedData, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssignedDataMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssignedDataMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssignedData).
func (m *AssignedDataMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssignedDataMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.data != nil {
		fields = append(fields, assigneddata.FieldDataID)
	}
	if m.profile != nil {
		fields = append(fields, assigneddata.FieldProfileID)
	}
	if m.queue != nil {
		fields = append(fields, assigneddata.FieldQueueID)
	}
	if m.assigned_at != nil {
		fields = append(fields, assigneddata.FieldAssignedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssignedDataMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assigneddata.FieldDataID:
		return m.DataID()
	case assigneddata.FieldProfileID:
		return m.ProfileID()
	case assigneddata.FieldQueueID:
		return m.QueueID()
	case assigneddata.FieldAssignedAt:
		return m.AssignedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssignedDataMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assigneddata.FieldDataID:
		return m.OldDataID(ctx)
	case assigneddata.FieldProfileID:
		return m.OldProfileID(ctx)
	case assigneddata.FieldQueueID:
		return m.OldQueueID(ctx)
	case assigneddata.FieldAssignedAt:
		return m.OldAssignedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AssignedData field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignedDataMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assigneddata.FieldDataID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataID(v)
		return nil
	case assigneddata.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case assigneddata.FieldQueueID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueueID(v)
		return nil
	case assigneddata.FieldAssignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AssignedData field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssignedDataMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssignedDataMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignedDataMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AssignedData numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssignedDataMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssignedDataMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssignedDataMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AssignedData nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssignedDataMutation) ResetField(name string) error {
	switch name {
	case assigneddata.FieldDataID:
		m.ResetDataID()
		return nil
	case assigneddata.FieldProfileID:
		m.ResetProfileID()
		return nil
	case assigneddata.FieldQueueID:
		m.ResetQueueID()
		return nil
	case assigneddata.FieldAssignedAt:
		m.ResetAssignedAt()
		return nil
	}
	return fmt.Errorf("unknown AssignedData field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssignedDataMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.data != nil {
		edges = append(edges, assigneddata.EdgeData)
	}
	if m.profile != nil {
		edges = append(edges, assigneddata.EdgeProfile)
	}
	if m.queue != nil {
		edges = append(edges, assigneddata.EdgeQueue)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssignedDataMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case assigneddata.EdgeData:
		if id := m.data; id != nil {
			return []ent.Value{*id}
		}
	case assigneddata.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	case assigneddata.EdgeQueue:
		if id := m.queue; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssignedDataMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssignedDataMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssignedDataMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddata {
		edges = append(edges, assigneddata.EdgeData)
	}
	if m.clearedprofile {
		edges = append(edges, assigneddata.EdgeProfile)
	}
	if m.clearedqueue {
		edges = append(edges, assigneddata.EdgeQueue)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssignedDataMutation) EdgeCleared(name string) bool {
	switch name {
	case assigneddata.EdgeData:
		return m.cleareddata
	case assigneddata.EdgeProfile:
		return m.clearedprofile
	case assigneddata.EdgeQueue:
		return m.clearedqueue
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssignedDataMutation) ClearEdge(name string) error {
	switch name {
	case assigneddata.EdgeData:
		m.ClearData()
		return nil
	case assigneddata.EdgeProfile:
		m.ClearProfile()
		return nil
	case assigneddata.EdgeQueue:
		m.ClearQueue()
		return nil
	}
	return fmt.Errorf("unknown AssignedData unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssignedDataMutation) ResetEdge(name string) error {
	switch name {
	case assigneddata.EdgeData:
		m.ResetData()
		return nil
	case assigneddata.EdgeProfile:
		m.ResetProfile()
		return nil
	case assigneddata.EdgeQueue:
		m.ResetQueue()
		return nil
	}
	return fmt.Errorf("unknown AssignedData edge %s", name)
}

// DataMutation represents an operation that mutates the Data nodes in the graph.
type DataMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	text                 *string
	clearedFields        map[string]struct{}
	project              *int
	clearedproject       bool
	queue_entries        map[int]struct{}
	removedqueue_entries map[int]struct{}
	clearedqueue_entries bool
	assignments          map[int]struct{}
	removedassignments   map[int]struct{}
	clearedassignments   bool
	decisions            map[int]struct{}
	removeddecisions     map[int]struct{}
	cleareddecisions     bool
	uncertainties        map[int]struct{}
	removeduncertainties map[int]struct{}
	cleareduncertainties bool
	predictions          map[int]struct{}
	removedpredictions   map[int]struct{}
	clearedpredictions   bool
	done                 bool
	oldValue             func(context.Context) (*Data, error)
	predicates           []predicate.Data
}

var _ ent.Mutation = (*DataMutation)(nil)

// dataOption allows management of the mutation configuration using functional options.
type dataOption func(*DataMutation)

// newDataMutation creates new mutation for the Data entity.
func newDataMutation(c config, op Op, opts ...dataOption) *DataMutation {
	m := &DataMutation{
		config:        c,
		op:            op,
		typ:           TypeData,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDataID sets the ID field of the mutation.
func withDataID(id int) dataOption {
	return func(m *DataMutation) {
		var (
			err   error
			once  sync.Once
			value *Data
		)
		m.oldValue = func(ctx context.Context) (*Data, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Data.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withData sets the old Data of the mutation.
func withData(node *Data) dataOption {
	return func(m *DataMutation) {
		m.oldValue = func(context.Context) (*Data, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DataMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DataMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DataMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DataMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Data.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *DataMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *DataMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Data entity.
// If the Data object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *DataMutation) ResetProjectID() {
	m.project = nil
}

// SetText sets the "text" field.
func (m *DataMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *DataMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Data entity.
// If the Data object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *DataMutation) ResetText() {
	m.text = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *DataMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[data.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *DataMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *DataMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *DataMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddQueueEntryIDs adds the "queue_entries" edge to the DataQueue entity by ids.
func (m *DataMutation) AddQueueEntryIDs(ids ...int) {
	if m.queue_entries == nil {
		m.queue_entries = make(map[int]struct{})
	}
	for i := range ids {
		m.queue_entries[ids[i]] = struct{}{}
	}
}

// ClearQueueEntries clears the "queue_entries" edge to the DataQueue entity.
func (m *DataMutation) ClearQueueEntries() {
	m.clearedqueue_entries = true
}

// QueueEntriesCleared reports if the "queue_entries" edge to the DataQueue entity was cleared.
func (m *DataMutation) QueueEntriesCleared() bool {
	return m.clearedqueue_entries
}

// RemoveQueueEntryIDs removes the "queue_entries" edge to the DataQueue entity by IDs.
func (m *DataMutation) RemoveQueueEntryIDs(ids ...int) {
	if m.removedqueue_entries == nil {
		m.removedqueue_entries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.queue_entries, ids[i])
		m.removedqueue_entries[ids[i]] = struct{}{}
	}
}

// RemovedQueueEntries returns the removed IDs of the "queue_entries" edge to the DataQueue entity.
func (m *DataMutation) RemovedQueueEntriesIDs() (ids []int) {
	for id := range m.removedqueue_entries {
		ids = append(ids, id)
	}
	return
}

// QueueEntriesIDs returns the "queue_entries" edge IDs in the mutation.
func (m *DataMutation) QueueEntriesIDs() (ids []int) {
	for id := range m.queue_entries {
		ids = append(ids, id)
	}
	return
}

// ResetQueueEntries resets all changes to the "queue_entries" edge.
func (m *DataMutation) ResetQueueEntries() {
	m.queue_entries = nil
	m.clearedqueue_entries = false
	m.removedqueue_entries = nil
}

// AddAssignmentIDs adds the "assignments" edge to the AssignedData entity by ids.
func (m *DataMutation) AddAssignmentIDs(ids ...int) {
	if m.assignments == nil {
		m.assignments = make(map[int]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the AssignedData entity.
func (m *DataMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the AssignedData entity was cleared.
func (m *DataMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the AssignedData entity by IDs.
func (m *DataMutation) RemoveAssignmentIDs(ids ...int) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the AssignedData entity.
func (m *DataMutation) RemovedAssignmentsIDs() (ids []int) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *DataMutation) AssignmentsIDs() (ids []int) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *DataMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// AddDecisionIDs adds the "decisions" edge to the DataLabel entity by ids.
func (m *DataMutation) AddDecisionIDs(ids ...int) {
	if m.decisions == nil {
		m.decisions = make(map[int]struct{})
	}
	for i := range ids {
		m.decisions[ids[i]] = struct{}{}
	}
}

// ClearDecisions clears the "decisions" edge to the DataLabel entity.
func (m *DataMutation) ClearDecisions() {
	m.cleareddecisions = true
}

// DecisionsCleared reports if the "decisions" edge to the DataLabel entity was cleared.
func (m *DataMutation) DecisionsCleared() bool {
	return m.cleareddecisions
}

// RemoveDecisionIDs removes the "decisions" edge to the DataLabel entity by IDs.
func (m *DataMutation) RemoveDecisionIDs(ids ...int) {
	if m.removeddecisions == nil {
		m.removeddecisions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.decisions, ids[i])
		m.removeddecisions[ids[i]] = struct{}{}
	}
}

// RemovedDecisions returns the removed IDs of the "decisions" edge to the DataLabel entity.
func (m *DataMutation) RemovedDecisionsIDs() (ids []int) {
	for id := range m.removeddecisions {
		ids = append(ids, id)
	}
	return
}

// DecisionsIDs returns the "decisions" edge IDs in the mutation.
func (m *DataMutation) DecisionsIDs() (ids []int) {
	for id := range m.decisions {
		ids = append(ids, id)
	}
	return
}

// ResetDecisions resets all changes to the "decisions" edge.
func (m *DataMutation) ResetDecisions() {
	m.decisions = nil
	m.cleareddecisions = false
	m.removeddecisions = nil
}

// AddUncertaintyIDs adds the "uncertainties" edge to the DataUncertainty entity by ids.
func (m *DataMutation) AddUncertaintyIDs(ids ...int) {
	if m.uncertainties == nil {
		m.uncertainties = make(map[int]struct{})
	}
	for i := range ids {
		m.uncertainties[ids[i]] = struct{}{}
	}
}

// ClearUncertainties clears the "uncertainties" edge to the DataUncertainty entity.
func (m *DataMutation) ClearUncertainties() {
	m.cleareduncertainties = true
}

// UncertaintiesCleared reports if the "uncertainties" edge to the DataUncertainty entity was cleared.
func (m *DataMutation) UncertaintiesCleared() bool {
	return m.cleareduncertainties
}

// RemoveUncertaintyIDs removes the "uncertainties" edge to the DataUncertainty entity by IDs.
func (m *DataMutation) RemoveUncertaintyIDs(ids ...int) {
	if m.removeduncertainties == nil {
		m.removeduncertainties = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.uncertainties, ids[i])
		m.removeduncertainties[ids[i]] = struct{}{}
	}
}

// RemovedUncertainties returns the removed IDs of the "uncertainties" edge to the DataUncertainty entity.
func (m *DataMutation) RemovedUncertaintiesIDs() (ids []int) {
	for id := range m.removeduncertainties {
		ids = append(ids, id)
	}
	return
}

// UncertaintiesIDs returns the "uncertainties" edge IDs in the mutation.
func (m *DataMutation) UncertaintiesIDs() (ids []int) {
	for id := range m.uncertainties {
		ids = append(ids, id)
	}
	return
}

// ResetUncertainties resets all changes to the "uncertainties" edge.
func (m *DataMutation) ResetUncertainties() {
	m.uncertainties = nil
	m.cleareduncertainties = false
	m.removeduncertainties = nil
}

// AddPredictionIDs adds the "predictions" edge to the DataPrediction entity by ids.
func (m *DataMutation) AddPredictionIDs(ids ...int) {
	if m.predictions == nil {
		m.predictions = make(map[int]struct{})
	}
	for i := range ids {
		m.predictions[ids[i]] = struct{}{}
	}
}

// ClearPredictions clears the "predictions" edge to the DataPrediction entity.
func (m *DataMutation) ClearPredictions() {
	m.clearedpredictions = true
}

// PredictionsCleared reports if the "predictions" edge to the DataPrediction entity was cleared.
func (m *DataMutation) PredictionsCleared() bool {
	return m.clearedpredictions
}

// RemovePredictionIDs removes the "predictions" edge to the DataPrediction entity by IDs.
func (m *DataMutation) RemovePredictionIDs(ids ...int) {
	if m.removedpredictions == nil {
		m.removedpredictions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.predictions, ids[i])
		m.removedpredictions[ids[i]] = struct{}{}
	}
}

// RemovedPredictions returns the removed IDs of the "predictions" edge to the DataPrediction entity.
func (m *DataMutation) RemovedPredictionsIDs() (ids []int) {
	for id := range m.removedpredictions {
		ids = append(ids, id)
	}
	return
}

// PredictionsIDs returns the "predictions" edge IDs in the mutation.
func (m *DataMutation) PredictionsIDs() (ids []int) {
	for id := range m.predictions {
		ids = append(ids, id)
	}
	return
}

// ResetPredictions resets all changes to the "predictions" edge.
func (m *DataMutation) ResetPredictions() {
	m.predictions = nil
	m.clearedpredictions = false
	m.removedpredictions = nil
}

// Where appends a list predicates to the DataMutation builder.
func (m *DataMutation) Where(ps ...predicate.Data) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DataMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DataMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Data, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DataMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DataMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Data).
func (m *DataMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DataMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.project != nil {
		fields = append(fields, data.FieldProjectID)
	}
	if m.text != nil {
		fields = append(fields, data.FieldText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DataMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case data.FieldProjectID:
		return m.ProjectID()
	case data.FieldText:
		return m.Text()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DataMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case data.FieldProjectID:
		return m.OldProjectID(ctx)
	case data.FieldText:
		return m.OldText(ctx)
	}
	return nil, fmt.Errorf("unknown Data field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataMutation) SetField(name string, value ent.Value) error {
	switch name {
	case data.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case data.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	}
	return fmt.Errorf("unknown Data field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DataMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DataMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Data numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DataMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DataMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DataMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Data nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DataMutation) ResetField(name string) error {
	switch name {
	case data.FieldProjectID:
		m.ResetProjectID()
		return nil
	case data.FieldText:
		m.ResetText()
		return nil
	}
	return fmt.Errorf("unknown Data field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DataMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.project != nil {
		edges = append(edges, data.EdgeProject)
	}
	if m.queue_entries != nil {
		edges = append(edges, data.EdgeQueueEntries)
	}
	if m.assignments != nil {
		edges = append(edges, data.EdgeAssignments)
	}
	if m.decisions != nil {
		edges = append(edges, data.EdgeDecisions)
	}
	if m.uncertainties != nil {
		edges = append(edges, data.EdgeUncertainties)
	}
	if m.predictions != nil {
		edges = append(edges, data.EdgePredictions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DataMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case data.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case data.EdgeQueueEntries:
		ids := make([]ent.Value, 0, len(m.queue_entries))
		for id := range m.queue_entries {
			ids = append(ids, id)
		}
		return ids
	case data.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	case data.EdgeDecisions:
		ids := make([]ent.Value, 0, len(m.decisions))
		for id := range m.decisions {
			ids = append(ids, id)
		}
		return ids
	case data.EdgeUncertainties:
		ids := make([]ent.Value, 0, len(m.uncertainties))
		for id := range m.uncertainties {
			ids = append(ids, id)
		}
		return ids
	case data.EdgePredictions:
		ids := make([]ent.Value, 0, len(m.predictions))
		for id := range m.predictions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DataMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedqueue_entries != nil {
		edges = append(edges, data.EdgeQueueEntries)
	}
	if m.removedassignments != nil {
		edges = append(edges, data.EdgeAssignments)
	}
	if m.removeddecisions != nil {
		edges = append(edges, data.EdgeDecisions)
	}
	if m.removeduncertainties != nil {
		edges = append(edges, data.EdgeUncertainties)
	}
	if m.removedpredictions != nil {
		edges = append(edges, data.EdgePredictions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DataMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case data.EdgeQueueEntries:
		ids := make([]ent.Value, 0, len(m.removedqueue_entries))
		for id := range m.removedqueue_entries {
			ids = append(ids, id)
		}
		return ids
	case data.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	case data.EdgeDecisions:
		ids := make([]ent.Value, 0, len(m.removeddecisions))
		for id := range m.removeddecisions {
			ids = append(ids, id)
		}
		return ids
	case data.EdgeUncertainties:
		ids := make([]ent.Value, 0, len(m.removeduncertainties))
		for id := range m.removeduncertainties {
			ids = append(ids, id)
		}
		return ids
	case data.EdgePredictions:
		ids := make([]ent.Value, 0, len(m.removedpredictions))
		for id := range m.removedpredictions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DataMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedproject {
		edges = append(edges, data.EdgeProject)
	}
	if m.clearedqueue_entries {
		edges = append(edges, data.EdgeQueueEntries)
	}
	if m.clearedassignments {
		edges = append(edges, data.EdgeAssignments)
	}
	if m.cleareddecisions {
		edges = append(edges, data.EdgeDecisions)
	}
	if m.cleareduncertainties {
		edges = append(edges, data.EdgeUncertainties)
	}
	if m.clearedpredictions {
		edges = append(edges, data.EdgePredictions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DataMutation) EdgeCleared(name string) bool {
	switch name {
	case data.EdgeProject:
		return m.clearedproject
	case data.EdgeQueueEntries:
		return m.clearedqueue_entries
	case data.EdgeAssignments:
		return m.clearedassignments
	case data.EdgeDecisions:
		return m.cleareddecisions
	case data.EdgeUncertainties:
		return m.cleareduncertainties
	case data.EdgePredictions:
		return m.clearedpredictions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DataMutation) ClearEdge(name string) error {
	switch name {
	case data.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Data unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DataMutation) ResetEdge(name string) error {
	switch name {
	case data.EdgeProject:
		m.ResetProject()
		return nil
	case data.EdgeQueueEntries:
		m.ResetQueueEntries()
		return nil
	case data.EdgeAssignments:
		m.ResetAssignments()
		return nil
	case data.EdgeDecisions:
		m.ResetDecisions()
		return nil
	case data.EdgeUncertainties:
		m.ResetUncertainties()
		return nil
	case data.EdgePredictions:
		m.ResetPredictions()
		return nil
	}
	return fmt.Errorf("unknown Data edge %s", name)
}

// DataLabelMutation represents an operation that mutates the DataLabel nodes in the graph.
type DataLabelMutation struct {
	config
	op              Op
	typ             string
	id              *int
	training_set    *int
	addtraining_set *int
	labeled_at      *time.Time
	clearedFields   map[string]struct{}
	data            *int
	cleareddata     bool
	label           *int
	clearedlabel    bool
	profile         *uuid.UUID
	clearedprofile  bool
	done            bool
	oldValue        func(context.Context) (*DataLabel, error)
	predicates      []predicate.DataLabel
}

var _ ent.Mutation = (*DataLabelMutation)(nil)

// datalabelOption allows management of the mutation configuration using functional options.
type datalabelOption func(*DataLabelMutation)

// newDataLabelMutation creates new mutation for the DataLabel entity.
func newDataLabelMutation(c config, op Op, opts ...datalabelOption) *DataLabelMutation {
	m := &DataLabelMutation{
		config:        c,
		op:            op,
		typ:           TypeDataLabel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDataLabelID sets the ID field of the mutation.
func withDataLabelID(id int) datalabelOption {
	return func(m *DataLabelMutation) {
		var (
			err   error
			once  sync.Once
			value *DataLabel
		)
		m.oldValue = func(ctx context.Context) (*DataLabel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DataLabel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDataLabel sets the old DataLabel of the mutation.
func withDataLabel(node *DataLabel) datalabelOption {
	return func(m *DataLabelMutation) {
		m.oldValue = func(context.Context) (*DataLabel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DataLabelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DataLabelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DataLabelMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DataLabelMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DataLabel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDataID sets the "data_id" field.
func (m *DataLabelMutation) SetDataID(i int) {
	m.data = &i
}

// DataID returns the value of the "data_id" field in the mutation.
func (m *DataLabelMutation) DataID() (r int, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldDataID returns the old "data_id" field's value of the DataLabel entity.
// If the DataLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataLabelMutation) OldDataID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataID: %w", err)
	}
	return oldValue.DataID, nil
}

// ResetDataID resets all changes to the "data_id" field.
func (m *DataLabelMutation) ResetDataID() {
	m.data = nil
}

// SetLabelID sets the "label_id" field.
func (m *DataLabelMutation) SetLabelID(i int) {
	m.label = &i
}

// LabelID returns the value of the "label_id" field in the mutation.
func (m *DataLabelMutation) LabelID() (r int, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelID returns the old "label_id" field's value of the DataLabel entity.
// If the DataLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataLabelMutation) OldLabelID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelID: %w", err)
	}
	return oldValue.LabelID, nil
}

// ResetLabelID resets all changes to the "label_id" field.
func (m *DataLabelMutation) ResetLabelID() {
	m.label = nil
}

// SetProfileID sets the "profile_id" field.
func (m *DataLabelMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *DataLabelMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the DataLabel entity.
// If the DataLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataLabelMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *DataLabelMutation) ResetProfileID() {
	m.profile = nil
}

// SetTrainingSet sets the "training_set" field.
func (m *DataLabelMutation) SetTrainingSet(i int) {
	m.training_set = &i
	m.addtraining_set = nil
}

// TrainingSet returns the value of the "training_set" field in the mutation.
func (m *DataLabelMutation) TrainingSet() (r int, exists bool) {
	v := m.training_set
	if v == nil {
		return
	}
	return *v, true
}

// OldTrainingSet returns the old "training_set" field's value of the DataLabel entity.
// If the DataLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataLabelMutation) OldTrainingSet(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrainingSet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrainingSet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrainingSet: %w", err)
	}
	return oldValue.TrainingSet, nil
}

// AddTrainingSet adds i to the "training_set" field.
func (m *DataLabelMutation) AddTrainingSet(i int) {
	if m.addtraining_set != nil {
		*m.addtraining_set += i
	} else {
		m.addtraining_set = &i
	}
}

// AddedTrainingSet returns the value that was added to the "training_set" field in this mutation.
func (m *DataLabelMutation) AddedTrainingSet() (r int, exists bool) {
	v := m.addtraining_set
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrainingSet resets all changes to the "training_set" field.
func (m *DataLabelMutation) ResetTrainingSet() {
	m.training_set = nil
	m.addtraining_set = nil
}

// SetLabeledAt sets the "labeled_at" field.
func (m *DataLabelMutation) SetLabeledAt(t time.Time) {
	m.labeled_at = &t
}

// LabeledAt returns the value of the "labeled_at" field in the mutation.
func (m *DataLabelMutation) LabeledAt() (r time.Time, exists bool) {
	v := m.labeled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLabeledAt returns the old "labeled_at" field's value of the DataLabel entity.
// If the DataLabel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataLabelMutation) OldLabeledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabeledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabeledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabeledAt: %w", err)
	}
	return oldValue.LabeledAt, nil
}

// ResetLabeledAt resets all changes to the "labeled_at" field.
func (m *DataLabelMutation) ResetLabeledAt() {
	m.labeled_at = nil
}

// ClearData clears the "data" edge to the Data entity.
func (m *DataLabelMutation) ClearData() {
	m.cleareddata = true
	m.clearedFields[datalabel.FieldDataID] = struct{}{}
}

// DataCleared reports if the "data" edge to the Data entity was cleared.
func (m *DataLabelMutation) DataCleared() bool {
	return m.cleareddata
}

// DataIDs returns the "data" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DataID instead. It exists only for internal usage by the builders.
func (m *DataLabelMutation) DataIDs() (ids []int) {
	if id := m.data; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetData resets all changes to the "data" edge.
func (m *DataLabelMutation) ResetData() {
	m.data = nil
	m.cleareddata = false
}

// ClearLabel clears the "label" edge to the Label entity.
func (m *DataLabelMutation) ClearLabel() {
	m.clearedlabel = true
	m.clearedFields[datalabel.FieldLabelID] = struct{}{}
}

// LabelCleared reports if the "label" edge to the Label entity was cleared.
func (m *DataLabelMutation) LabelCleared() bool {
	return m.clearedlabel
}

// LabelIDs returns the "label" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LabelID instead. It exists only for internal usage by the builders.
func (m *DataLabelMutation) LabelIDs() (ids []int) {
	if id := m.label; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLabel resets all changes to the "label" edge.
func (m *DataLabelMutation) ResetLabel() {
	m.label = nil
	m.clearedlabel = false
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *DataLabelMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[datalabel.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *DataLabelMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *DataLabelMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *DataLabelMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// Where appends a list predicates to the DataLabelMutation builder.
func (m *DataLabelMutation) Where(ps ...predicate.DataLabel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DataLabelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DataLabelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DataLabel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DataLabelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DataLabelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DataLabel).
func (m *DataLabelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DataLabelMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.data != nil {
		fields = append(fields, datalabel.FieldDataID)
	}
	if m.label != nil {
		fields = append(fields, datalabel.FieldLabelID)
	}
	if m.profile != nil {
		fields = append(fields, datalabel.FieldProfileID)
	}
	if m.training_set != nil {
		fields = append(fields, datalabel.FieldTrainingSet)
	}
	if m.labeled_at != nil {
		fields = append(fields, datalabel.FieldLabeledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DataLabelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case datalabel.FieldDataID:
		return m.DataID()
	case datalabel.FieldLabelID:
		return m.LabelID()
	case datalabel.FieldProfileID:
		return m.ProfileID()
	case datalabel.FieldTrainingSet:
		return m.TrainingSet()
	case datalabel.FieldLabeledAt:
		return m.LabeledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DataLabelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case datalabel.FieldDataID:
		return m.OldDataID(ctx)
	case datalabel.FieldLabelID:
		return m.OldLabelID(ctx)
	case datalabel.FieldProfileID:
		return m.OldProfileID(ctx)
	case datalabel.FieldTrainingSet:
		return m.OldTrainingSet(ctx)
	case datalabel.FieldLabeledAt:
		return m.OldLabeledAt(ctx)
	}
	return nil, fmt.Errorf("unknown DataLabel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataLabelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case datalabel.FieldDataID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataID(v)
		return nil
	case datalabel.FieldLabelID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelID(v)
		return nil
	case datalabel.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case datalabel.FieldTrainingSet:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrainingSet(v)
		return nil
	case datalabel.FieldLabeledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabeledAt(v)
		return nil
	}
	return fmt.Errorf("unknown DataLabel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DataLabelMutation) AddedFields() []string {
	var fields []string
	if m.addtraining_set != nil {
		fields = append(fields, datalabel.FieldTrainingSet)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DataLabelMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case datalabel.FieldTrainingSet:
		return m.AddedTrainingSet()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataLabelMutation) AddField(name string, value ent.Value) error {
	switch name {
	case datalabel.FieldTrainingSet:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrainingSet(v)
		return nil
	}
	return fmt.Errorf("unknown DataLabel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DataLabelMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DataLabelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DataLabelMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DataLabel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DataLabelMutation) ResetField(name string) error {
	switch name {
	case datalabel.FieldDataID:
		m.ResetDataID()
		return nil
	case datalabel.FieldLabelID:
		m.ResetLabelID()
		return nil
	case datalabel.FieldProfileID:
		m.ResetProfileID()
		return nil
	case datalabel.FieldTrainingSet:
		m.ResetTrainingSet()
		return nil
	case datalabel.FieldLabeledAt:
		m.ResetLabeledAt()
		return nil
	}
	return fmt.Errorf("unknown DataLabel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DataLabelMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.data != nil {
		edges = append(edges, datalabel.EdgeData)
	}
	if m.label != nil {
		edges = append(edges, datalabel.EdgeLabel)
	}
	if m.profile != nil {
		edges = append(edges, datalabel.EdgeProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DataLabelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case datalabel.EdgeData:
		if id := m.data; id != nil {
			return []ent.Value{*id}
		}
	case datalabel.EdgeLabel:
		if id := m.label; id != nil {
			return []ent.Value{*id}
		}
	case datalabel.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DataLabelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DataLabelMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DataLabelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddata {
		edges = append(edges, datalabel.EdgeData)
	}
	if m.clearedlabel {
		edges = append(edges, datalabel.EdgeLabel)
	}
	if m.clearedprofile {
		edges = append(edges, datalabel.EdgeProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DataLabelMutation) EdgeCleared(name string) bool {
	switch name {
	case datalabel.EdgeData:
		return m.cleareddata
	case datalabel.EdgeLabel:
		return m.clearedlabel
	case datalabel.EdgeProfile:
		return m.clearedprofile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DataLabelMutation) ClearEdge(name string) error {
	switch name {
	case datalabel.EdgeData:
		m.ClearData()
		return nil
	case datalabel.EdgeLabel:
		m.ClearLabel()
		return nil
	case datalabel.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown DataLabel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DataLabelMutation) ResetEdge(name string) error {
	switch name {
	case datalabel.EdgeData:
		m.ResetData()
		return nil
	case datalabel.EdgeLabel:
		m.ResetLabel()
		return nil
	case datalabel.EdgeProfile:
		m.ResetProfile()
		return nil
	}
	return fmt.Errorf("unknown DataLabel edge %s", name)
}

// DataPredictionMutation represents an operation that mutates the DataPrediction nodes in the graph.
type DataPredictionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	probability    *float64
	addprobability *float64
	clearedFields  map[string]struct{}
	data           *int
	cleareddata    bool
	model          *int
	clearedmodel   bool
	label          *int
	clearedlabel   bool
	done           bool
	oldValue       func(context.Context) (*DataPrediction, error)
	predicates     []predicate.DataPrediction
}

var _ ent.Mutation = (*DataPredictionMutation)(nil)

// datapredictionOption allows management of the mutation configuration using functional options.
type datapredictionOption func(*DataPredictionMutation)

// newDataPredictionMutation creates new mutation for the DataPrediction entity.
func newDataPredictionMutation(c config, op Op, opts ...datapredictionOption) *DataPredictionMutation {
	m := &DataPredictionMutation{
		config:        c,
		op:            op,
		typ:           TypeDataPrediction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDataPredictionID sets the ID field of the mutation.
func withDataPredictionID(id int) datapredictionOption {
	return func(m *DataPredictionMutation) {
		var (
			err   error
			once  sync.Once
			value *DataPrediction
		)
		m.oldValue = func(ctx context.Context) (*DataPrediction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DataPrediction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDataPrediction sets the old DataPrediction of the mutation.
func withDataPrediction(node *DataPrediction) datapredictionOption {
	return func(m *DataPredictionMutation) {
		m.oldValue = func(context.Context) (*DataPrediction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DataPredictionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DataPredictionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DataPredictionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DataPredictionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DataPrediction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDataID sets the "data_id" field.
func (m *DataPredictionMutation) SetDataID(i int) {
	m.data = &i
}

// DataID returns the value of the "data_id" field in the mutation.
func (m *DataPredictionMutation) DataID() (r int, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldDataID returns the old "data_id" field's value of the DataPrediction entity.
// If the DataPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataPredictionMutation) OldDataID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataID: %w", err)
	}
	return oldValue.DataID, nil
}

// ResetDataID resets all changes to the "data_id" field.
func (m *DataPredictionMutation) ResetDataID() {
	m.data = nil
}

// SetModelID sets the "model_id" field.
func (m *DataPredictionMutation) SetModelID(i int) {
	m.model = &i
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *DataPredictionMutation) ModelID() (r int, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the DataPrediction entity.
// If the DataPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataPredictionMutation) OldModelID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ResetModelID resets all changes to the "model_id" field.
func (m *DataPredictionMutation) ResetModelID() {
	m.model = nil
}

// SetLabelID sets the "label_id" field.
func (m *DataPredictionMutation) SetLabelID(i int) {
	m.label = &i
}

// LabelID returns the value of the "label_id" field in the mutation.
func (m *DataPredictionMutation) LabelID() (r int, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabelID returns the old "label_id" field's value of the DataPrediction entity.
// If the DataPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataPredictionMutation) OldLabelID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabelID: %w", err)
	}
	return oldValue.LabelID, nil
}

// ResetLabelID resets all changes to the "label_id" field.
func (m *DataPredictionMutation) ResetLabelID() {
	m.label = nil
}

// SetProbability sets the "probability" field.
func (m *DataPredictionMutation) SetProbability(f float64) {
	m.probability = &f
	m.addprobability = nil
}

// Probability returns the value of the "probability" field in the mutation.
func (m *DataPredictionMutation) Probability() (r float64, exists bool) {
	v := m.probability
	if v == nil {
		return
	}
	return *v, true
}

// OldProbability returns the old "probability" field's value of the DataPrediction entity.
// If the DataPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataPredictionMutation) OldProbability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProbability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProbability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProbability: %w", err)
	}
	return oldValue.Probability, nil
}

// AddProbability adds f to the "probability" field.
func (m *DataPredictionMutation) AddProbability(f float64) {
	if m.addprobability != nil {
		*m.addprobability += f
	} else {
		m.addprobability = &f
	}
}

// AddedProbability returns the value that was added to the "probability" field in this mutation.
func (m *DataPredictionMutation) AddedProbability() (r float64, exists bool) {
	v := m.addprobability
	if v == nil {
		return
	}
	return *v, true
}

// ResetProbability resets all changes to the "probability" field.
func (m *DataPredictionMutation) ResetProbability() {
	m.probability = nil
	m.addprobability = nil
}

// ClearData clears the "data" edge to the Data entity.
func (m *DataPredictionMutation) ClearData() {
	m.cleareddata = true
	m.clearedFields[dataprediction.FieldDataID] = struct{}{}
}

// DataCleared reports if the "data" edge to the Data entity was cleared.
func (m *DataPredictionMutation) DataCleared() bool {
	return m.cleareddata
}

// DataIDs returns the "data" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DataID instead. It exists only for internal usage by the builders.
func (m *DataPredictionMutation) DataIDs() (ids []int) {
	if id := m.data; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetData resets all changes to the "data" edge.
func (m *DataPredictionMutation) ResetData() {
	m.data = nil
	m.cleareddata = false
}

// ClearModel clears the "model" edge to the Model entity.
func (m *DataPredictionMutation) ClearModel() {
	m.clearedmodel = true
	m.clearedFields[dataprediction.FieldModelID] = struct{}{}
}

// ModelCleared reports if the "model" edge to the Model entity was cleared.
func (m *DataPredictionMutation) ModelCleared() bool {
	return m.clearedmodel
}

// ModelIDs returns the "model" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ModelID instead. It exists only for internal usage by the builders.
func (m *DataPredictionMutation) ModelIDs() (ids []int) {
	if id := m.model; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetModel resets all changes to the "model" edge.
func (m *DataPredictionMutation) ResetModel() {
	m.model = nil
	m.clearedmodel = false
}

// ClearLabel clears the "label" edge to the Label entity.
func (m *DataPredictionMutation) ClearLabel() {
	m.clearedlabel = true
	m.clearedFields[dataprediction.FieldLabelID] = struct{}{}
}

// LabelCleared reports if the "label" edge to the Label entity was cleared.
func (m *DataPredictionMutation) LabelCleared() bool {
	return m.clearedlabel
}

// LabelIDs returns the "label" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LabelID instead. It exists only for internal usage by the builders.
func (m *DataPredictionMutation) LabelIDs() (ids []int) {
	if id := m.label; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLabel resets all changes to the "label" edge.
func (m *DataPredictionMutation) ResetLabel() {
	m.label = nil
	m.clearedlabel = false
}

// Where appends a list predicates to the DataPredictionMutation builder.
func (m *DataPredictionMutation) Where(ps ...predicate.DataPrediction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DataPredictionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DataPredictionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DataPrediction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DataPredictionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DataPredictionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DataPrediction).
func (m *DataPredictionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DataPredictionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.data != nil {
		fields = append(fields, dataprediction.FieldDataID)
	}
	if m.model != nil {
		fields = append(fields, dataprediction.FieldModelID)
	}
	if m.label != nil {
		fields = append(fields, dataprediction.FieldLabelID)
	}
	if m.probability != nil {
		fields = append(fields, dataprediction.FieldProbability)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DataPredictionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dataprediction.FieldDataID:
		return m.DataID()
	case dataprediction.FieldModelID:
		return m.ModelID()
	case dataprediction.FieldLabelID:
		return m.LabelID()
	case dataprediction.FieldProbability:
		return m.Probability()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DataPredictionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dataprediction.FieldDataID:
		return m.OldDataID(ctx)
	case dataprediction.FieldModelID:
		return m.OldModelID(ctx)
	case dataprediction.FieldLabelID:
		return m.OldLabelID(ctx)
	case dataprediction.FieldProbability:
		return m.OldProbability(ctx)
	}
	return nil, fmt.Errorf("unknown DataPrediction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataPredictionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dataprediction.FieldDataID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataID(v)
		return nil
	case dataprediction.FieldModelID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case dataprediction.FieldLabelID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabelID(v)
		return nil
	case dataprediction.FieldProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProbability(v)
		return nil
	}
	return fmt.Errorf("unknown DataPrediction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DataPredictionMutation) AddedFields() []string {
	var fields []string
	if m.addprobability != nil {
		fields = append(fields, dataprediction.FieldProbability)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DataPredictionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dataprediction.FieldProbability:
		return m.AddedProbability()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataPredictionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dataprediction.FieldProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProbability(v)
		return nil
	}
	return fmt.Errorf("unknown DataPrediction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DataPredictionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DataPredictionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DataPredictionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DataPrediction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DataPredictionMutation) ResetField(name string) error {
	switch name {
	case dataprediction.FieldDataID:
		m.ResetDataID()
		return nil
	case dataprediction.FieldModelID:
		m.ResetModelID()
		return nil
	case dataprediction.FieldLabelID:
		m.ResetLabelID()
		return nil
	case dataprediction.FieldProbability:
		m.ResetProbability()
		return nil
	}
	return fmt.Errorf("unknown DataPrediction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DataPredictionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.data != nil {
		edges = append(edges, dataprediction.EdgeData)
	}
	if m.model != nil {
		edges = append(edges, dataprediction.EdgeModel)
	}
	if m.label != nil {
		edges = append(edges, dataprediction.EdgeLabel)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DataPredictionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dataprediction.EdgeData:
		if id := m.data; id != nil {
			return []ent.Value{*id}
		}
	case dataprediction.EdgeModel:
		if id := m.model; id != nil {
			return []ent.Value{*id}
		}
	case dataprediction.EdgeLabel:
		if id := m.label; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DataPredictionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DataPredictionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DataPredictionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddata {
		edges = append(edges, dataprediction.EdgeData)
	}
	if m.clearedmodel {
		edges = append(edges, dataprediction.EdgeModel)
	}
	if m.clearedlabel {
		edges = append(edges, dataprediction.EdgeLabel)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DataPredictionMutation) EdgeCleared(name string) bool {
	switch name {
	case dataprediction.EdgeData:
		return m.cleareddata
	case dataprediction.EdgeModel:
		return m.clearedmodel
	case dataprediction.EdgeLabel:
		return m.clearedlabel
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DataPredictionMutation) ClearEdge(name string) error {
	switch name {
	case dataprediction.EdgeData:
		m.ClearData()
		return nil
	case dataprediction.EdgeModel:
		m.ClearModel()
		return nil
	case dataprediction.EdgeLabel:
		m.ClearLabel()
		return nil
	}
	return fmt.Errorf("unknown DataPrediction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DataPredictionMutation) ResetEdge(name string) error {
	switch name {
	case dataprediction.EdgeData:
		m.ResetData()
		return nil
	case dataprediction.EdgeModel:
		m.ResetModel()
		return nil
	case dataprediction.EdgeLabel:
		m.ResetLabel()
		return nil
	}
	return fmt.Errorf("unknown DataPrediction edge %s", name)
}

// DataQueueMutation represents an operation that mutates the DataQueue nodes in the graph.
type DataQueueMutation struct {
	config
	op            Op
	typ           string
	id            *int
	clearedFields map[string]struct{}
	data          *int
	cleareddata   bool
	queue         *int
	clearedqueue  bool
	done          bool
	oldValue      func(context.Context) (*DataQueue, error)
	predicates    []predicate.DataQueue
}

var _ ent.Mutation = (*DataQueueMutation)(nil)

// dataqueueOption allows management of the mutation configuration using functional options.
type dataqueueOption func(*DataQueueMutation)

// newDataQueueMutation creates new mutation for the DataQueue entity.
func newDataQueueMutation(c config, op Op, opts ...dataqueueOption) *DataQueueMutation {
	m := &DataQueueMutation{
		config:        c,
		op:            op,
		typ:           TypeDataQueue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDataQueueID sets the ID field of the mutation.
func withDataQueueID(id int) dataqueueOption {
	return func(m *DataQueueMutation) {
		var (
			err   error
			once  sync.Once
			value *DataQueue
		)
		m.oldValue = func(ctx context.Context) (*DataQueue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DataQueue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDataQueue sets the old DataQueue of the mutation.
func withDataQueue(node *DataQueue) dataqueueOption {
	return func(m *DataQueueMutation) {
		m.oldValue = func(context.Context) (*DataQueue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DataQueueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DataQueueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DataQueueMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DataQueueMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DataQueue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDataID sets the "data_id" field.
func (m *DataQueueMutation) SetDataID(i int) {
	m.data = &i
}

// DataID returns the value of the "data_id" field in the mutation.
func (m *DataQueueMutation) DataID() (r int, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldDataID returns the old "data_id" field's value of the DataQueue entity.
// If the DataQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataQueueMutation) OldDataID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataID: %w", err)
	}
	return oldValue.DataID, nil
}

// ResetDataID resets all changes to the "data_id" field.
func (m *DataQueueMutation) ResetDataID() {
	m.data = nil
}

// SetQueueID sets the "queue_id" field.
func (m *DataQueueMutation) SetQueueID(i int) {
	m.queue = &i
}

// QueueID returns the value of the "queue_id" field in the mutation.
func (m *DataQueueMutation) QueueID() (r int, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueueID returns the old "queue_id" field's value of the DataQueue entity.
// If the DataQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataQueueMutation) OldQueueID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueueID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueueID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueueID: %w", err)
	}
	return oldValue.QueueID, nil
}

// ResetQueueID resets all changes to the "queue_id" field.
func (m *DataQueueMutation) ResetQueueID() {
	m.queue = nil
}

// ClearData clears the "data" edge to the Data entity.
func (m *DataQueueMutation) ClearData() {
	m.cleareddata = true
	m.clearedFields[dataqueue.FieldDataID] = struct{}{}
}

// DataCleared reports if the "data" edge to the Data entity was cleared.
func (m *DataQueueMutation) DataCleared() bool {
	return m.cleareddata
}

// DataIDs returns the "data" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DataID instead. It exists only for internal usage by the builders.
func (m *DataQueueMutation) DataIDs() (ids []int) {
	if id := m.data; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetData resets all changes to the "data" edge.
func (m *DataQueueMutation) ResetData() {
	m.data = nil
	m.cleareddata = false
}

// ClearQueue clears the "queue" edge to the Queue entity.
func (m *DataQueueMutation) ClearQueue() {
	m.clearedqueue = true
	m.clearedFields[dataqueue.FieldQueueID] = struct{}{}
}

// QueueCleared reports if the "queue" edge to the Queue entity was cleared.
func (m *DataQueueMutation) QueueCleared() bool {
	return m.clearedqueue
}

// QueueIDs returns the "queue" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QueueID instead. It exists only for internal usage by the builders.
func (m *DataQueueMutation) QueueIDs() (ids []int) {
	if id := m.queue; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQueue resets all changes to the "queue" edge.
func (m *DataQueueMutation) ResetQueue() {
	m.queue = nil
	m.clearedqueue = false
}

// Where appends a list predicates to the DataQueueMutation builder.
func (m *DataQueueMutation) Where(ps ...predicate.DataQueue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DataQueueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DataQueueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DataQueue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DataQueueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DataQueueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DataQueue).
func (m *DataQueueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DataQueueMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.data != nil {
		fields = append(fields, dataqueue.FieldDataID)
	}
	if m.queue != nil {
		fields = append(fields, dataqueue.FieldQueueID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DataQueueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dataqueue.FieldDataID:
		return m.DataID()
	case dataqueue.FieldQueueID:
		return m.QueueID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DataQueueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dataqueue.FieldDataID:
		return m.OldDataID(ctx)
	case dataqueue.FieldQueueID:
		return m.OldQueueID(ctx)
	}
	return nil, fmt.Errorf("unknown DataQueue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataQueueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dataqueue.FieldDataID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataID(v)
		return nil
	case dataqueue.FieldQueueID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueueID(v)
		return nil
	}
	return fmt.Errorf("unknown DataQueue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DataQueueMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DataQueueMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataQueueMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DataQueue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DataQueueMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DataQueueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DataQueueMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DataQueue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DataQueueMutation) ResetField(name string) error {
	switch name {
	case dataqueue.FieldDataID:
		m.ResetDataID()
		return nil
	case dataqueue.FieldQueueID:
		m.ResetQueueID()
		return nil
	}
	return fmt.Errorf("unknown DataQueue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DataQueueMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.data != nil {
		edges = append(edges, dataqueue.EdgeData)
	}
	if m.queue != nil {
		edges = append(edges, dataqueue.EdgeQueue)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DataQueueMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dataqueue.EdgeData:
		if id := m.data; id != nil {
			return []ent.Value{*id}
		}
	case dataqueue.EdgeQueue:
		if id := m.queue; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DataQueueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DataQueueMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DataQueueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddata {
		edges = append(edges, dataqueue.EdgeData)
	}
	if m.clearedqueue {
		edges = append(edges, dataqueue.EdgeQueue)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DataQueueMutation) EdgeCleared(name string) bool {
	switch name {
	case dataqueue.EdgeData:
		return m.cleareddata
	case dataqueue.EdgeQueue:
		return m.clearedqueue
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DataQueueMutation) ClearEdge(name string) error {
	switch name {
	case dataqueue.EdgeData:
		m.ClearData()
		return nil
	case dataqueue.EdgeQueue:
		m.ClearQueue()
		return nil
	}
	return fmt.Errorf("unknown DataQueue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DataQueueMutation) ResetEdge(name string) error {
	switch name {
	case dataqueue.EdgeData:
		m.ResetData()
		return nil
	case dataqueue.EdgeQueue:
		m.ResetQueue()
		return nil
	}
	return fmt.Errorf("unknown DataQueue edge %s", name)
}

// DataUncertaintyMutation represents an operation that mutates the DataUncertainty nodes in the graph.
type DataUncertaintyMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	least_confident    *float64
	addleast_confident *float64
	margin             *float64
	addmargin          *float64
	entropy            *float64
	addentropy         *float64
	clearedFields      map[string]struct{}
	data               *int
	cleareddata        bool
	model              *int
	clearedmodel       bool
	done               bool
	oldValue           func(context.Context) (*DataUncertainty, error)
	predicates         []predicate.DataUncertainty
}

var _ ent.Mutation = (*DataUncertaintyMutation)(nil)

// datauncertaintyOption allows management of the mutation configuration using functional options.
type datauncertaintyOption func(*DataUncertaintyMutation)

// newDataUncertaintyMutation creates new mutation for the DataUncertainty entity.
func newDataUncertaintyMutation(c config, op Op, opts ...datauncertaintyOption) *DataUncertaintyMutation {
	m := &DataUncertaintyMutation{
		config:        c,
		op:            op,
		typ:           TypeDataUncertainty,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDataUncertaintyID sets the ID field of the mutation.
func withDataUncertaintyID(id int) datauncertaintyOption {
	return func(m *DataUncertaintyMutation) {
		var (
			err   error
			once  sync.Once
			value *DataUncertainty
		)
		m.oldValue = func(ctx context.Context) (*DataUncertainty, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DataUncertainty.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDataUncertainty sets the old DataUncertainty of the mutation.
func withDataUncertainty(node *DataUncertainty) datauncertaintyOption {
	return func(m *DataUncertaintyMutation) {
		m.oldValue = func(context.Context) (*DataUncertainty, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DataUncertaintyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DataUncertaintyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DataUncertaintyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DataUncertaintyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DataUncertainty.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDataID sets the "data_id" field.
func (m *DataUncertaintyMutation) SetDataID(i int) {
	m.data = &i
}

// DataID returns the value of the "data_id" field in the mutation.
func (m *DataUncertaintyMutation) DataID() (r int, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldDataID returns the old "data_id" field's value of the DataUncertainty entity.
// If the DataUncertainty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataUncertaintyMutation) OldDataID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataID: %w", err)
	}
	return oldValue.DataID, nil
}

// ResetDataID resets all changes to the "data_id" field.
func (m *DataUncertaintyMutation) ResetDataID() {
	m.data = nil
}

// SetModelID sets the "model_id" field.
func (m *DataUncertaintyMutation) SetModelID(i int) {
	m.model = &i
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *DataUncertaintyMutation) ModelID() (r int, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the DataUncertainty entity.
// If the DataUncertainty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataUncertaintyMutation) OldModelID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ResetModelID resets all changes to the "model_id" field.
func (m *DataUncertaintyMutation) ResetModelID() {
	m.model = nil
}

// SetLeastConfident sets the "least_confident" field.
func (m *DataUncertaintyMutation) SetLeastConfident(f float64) {
	m.least_confident = &f
	m.addleast_confident = nil
}

// LeastConfident returns the value of the "least_confident" field in the mutation.
func (m *DataUncertaintyMutation) LeastConfident() (r float64, exists bool) {
	v := m.least_confident
	if v == nil {
		return
	}
	return *v, true
}

// OldLeastConfident returns the old "least_confident" field's value of the DataUncertainty entity.
// If the DataUncertainty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataUncertaintyMutation) OldLeastConfident(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeastConfident is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeastConfident requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeastConfident: %w", err)
	}
	return oldValue.LeastConfident, nil
}

// AddLeastConfident adds f to the "least_confident" field.
func (m *DataUncertaintyMutation) AddLeastConfident(f float64) {
	if m.addleast_confident != nil {
		*m.addleast_confident += f
	} else {
		m.addleast_confident = &f
	}
}

// AddedLeastConfident returns the value that was added to the "least_confident" field in this mutation.
func (m *DataUncertaintyMutation) AddedLeastConfident() (r float64, exists bool) {
	v := m.addleast_confident
	if v == nil {
		return
	}
	return *v, true
}

// ResetLeastConfident resets all changes to the "least_confident" field.
func (m *DataUncertaintyMutation) ResetLeastConfident() {
	m.least_confident = nil
	m.addleast_confident = nil
}

// SetMargin sets the "margin" field.
func (m *DataUncertaintyMutation) SetMargin(f float64) {
	m.margin = &f
	m.addmargin = nil
}

// Margin returns the value of the "margin" field in the mutation.
func (m *DataUncertaintyMutation) Margin() (r float64, exists bool) {
	v := m.margin
	if v == nil {
		return
	}
	return *v, true
}

// OldMargin returns the old "margin" field's value of the DataUncertainty entity.
// If the DataUncertainty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataUncertaintyMutation) OldMargin(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMargin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMargin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMargin: %w", err)
	}
	return oldValue.Margin, nil
}

// AddMargin adds f to the "margin" field.
func (m *DataUncertaintyMutation) AddMargin(f float64) {
	if m.addmargin != nil {
		*m.addmargin += f
	} else {
		m.addmargin = &f
	}
}

// AddedMargin returns the value that was added to the "margin" field in this mutation.
func (m *DataUncertaintyMutation) AddedMargin() (r float64, exists bool) {
	v := m.addmargin
	if v == nil {
		return
	}
	return *v, true
}

// ResetMargin resets all changes to the "margin" field.
func (m *DataUncertaintyMutation) ResetMargin() {
	m.margin = nil
	m.addmargin = nil
}

// SetEntropy sets the "entropy" field.
func (m *DataUncertaintyMutation) SetEntropy(f float64) {
	m.entropy = &f
	m.addentropy = nil
}

// Entropy returns the value of the "entropy" field in the mutation.
func (m *DataUncertaintyMutation) Entropy() (r float64, exists bool) {
	v := m.entropy
	if v == nil {
		return
	}
	return *v, true
}

// OldEntropy returns the old "entropy" field's value of the DataUncertainty entity.
// If the DataUncertainty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DataUncertaintyMutation) OldEntropy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntropy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntropy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntropy: %w", err)
	}
	return oldValue.Entropy, nil
}

// AddEntropy adds f to the "entropy" field.
func (m *DataUncertaintyMutation) AddEntropy(f float64) {
	if m.addentropy != nil {
		*m.addentropy += f
	} else {
		m.addentropy = &f
	}
}

// AddedEntropy returns the value that was added to the "entropy" field in this mutation.
func (m *DataUncertaintyMutation) AddedEntropy() (r float64, exists bool) {
	v := m.addentropy
	if v == nil {
		return
	}
	return *v, true
}

// ResetEntropy resets all changes to the "entropy" field.
func (m *DataUncertaintyMutation) ResetEntropy() {
	m.entropy = nil
	m.addentropy = nil
}

// ClearData clears the "data" edge to the Data entity.
func (m *DataUncertaintyMutation) ClearData() {
	m.cleareddata = true
	m.clearedFields[datauncertainty.FieldDataID] = struct{}{}
}

// DataCleared reports if the "data" edge to the Data entity was cleared.
func (m *DataUncertaintyMutation) DataCleared() bool {
	return m.cleareddata
}

// DataIDs returns the "data" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DataID instead. It exists only for internal usage by the builders.
func (m *DataUncertaintyMutation) DataIDs() (ids []int) {
	if id := m.data; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetData resets all changes to the "data" edge.
func (m *DataUncertaintyMutation) ResetData() {
	m.data = nil
	m.cleareddata = false
}

// ClearModel clears the "model" edge to the Model entity.
func (m *DataUncertaintyMutation) ClearModel() {
	m.clearedmodel = true
	m.clearedFields[datauncertainty.FieldModelID] = struct{}{}
}

// ModelCleared reports if the "model" edge to the Model entity was cleared.
func (m *DataUncertaintyMutation) ModelCleared() bool {
	return m.clearedmodel
}

// ModelIDs returns the "model" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ModelID instead. It exists only for internal usage by the builders.
func (m *DataUncertaintyMutation) ModelIDs() (ids []int) {
	if id := m.model; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetModel resets all changes to the "model" edge.
func (m *DataUncertaintyMutation) ResetModel() {
	m.model = nil
	m.clearedmodel = false
}

// Where appends a list predicates to the DataUncertaintyMutation builder.
func (m *DataUncertaintyMutation) Where(ps ...predicate.DataUncertainty) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DataUncertaintyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DataUncertaintyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DataUncertainty, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DataUncertaintyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DataUncertaintyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DataUncertainty).
func (m *DataUncertaintyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DataUncertaintyMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.data != nil {
		fields = append(fields, datauncertainty.FieldDataID)
	}
	if m.model != nil {
		fields = append(fields, datauncertainty.FieldModelID)
	}
	if m.least_confident != nil {
		fields = append(fields, datauncertainty.FieldLeastConfident)
	}
	if m.margin != nil {
		fields = append(fields, datauncertainty.FieldMargin)
	}
	if m.entropy != nil {
		fields = append(fields, datauncertainty.FieldEntropy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DataUncertaintyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case datauncertainty.FieldDataID:
		return m.DataID()
	case datauncertainty.FieldModelID:
		return m.ModelID()
	case datauncertainty.FieldLeastConfident:
		return m.LeastConfident()
	case datauncertainty.FieldMargin:
		return m.Margin()
	case datauncertainty.FieldEntropy:
		return m.Entropy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DataUncertaintyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case datauncertainty.FieldDataID:
		return m.OldDataID(ctx)
	case datauncertainty.FieldModelID:
		return m.OldModelID(ctx)
	case datauncertainty.FieldLeastConfident:
		return m.OldLeastConfident(ctx)
	case datauncertainty.FieldMargin:
		return m.OldMargin(ctx)
	case datauncertainty.FieldEntropy:
		return m.OldEntropy(ctx)
	}
	return nil, fmt.Errorf("unknown DataUncertainty field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataUncertaintyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case datauncertainty.FieldDataID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataID(v)
		return nil
	case datauncertainty.FieldModelID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case datauncertainty.FieldLeastConfident:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeastConfident(v)
		return nil
	case datauncertainty.FieldMargin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMargin(v)
		return nil
	case datauncertainty.FieldEntropy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntropy(v)
		return nil
	}
	return fmt.Errorf("unknown DataUncertainty field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DataUncertaintyMutation) AddedFields() []string {
	var fields []string
	if m.addleast_confident != nil {
		fields = append(fields, datauncertainty.FieldLeastConfident)
	}
	if m.addmargin != nil {
		fields = append(fields, datauncertainty.FieldMargin)
	}
	if m.addentropy != nil {
		fields = append(fields, datauncertainty.FieldEntropy)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DataUncertaintyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case datauncertainty.FieldLeastConfident:
		return m.AddedLeastConfident()
	case datauncertainty.FieldMargin:
		return m.AddedMargin()
	case datauncertainty.FieldEntropy:
		return m.AddedEntropy()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DataUncertaintyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case datauncertainty.FieldLeastConfident:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLeastConfident(v)
		return nil
	case datauncertainty.FieldMargin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMargin(v)
		return nil
	case datauncertainty.FieldEntropy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEntropy(v)
		return nil
	}
	return fmt.Errorf("unknown DataUncertainty numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DataUncertaintyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DataUncertaintyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DataUncertaintyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DataUncertainty nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DataUncertaintyMutation) ResetField(name string) error {
	switch name {
	case datauncertainty.FieldDataID:
		m.ResetDataID()
		return nil
	case datauncertainty.FieldModelID:
		m.ResetModelID()
		return nil
	case datauncertainty.FieldLeastConfident:
		m.ResetLeastConfident()
		return nil
	case datauncertainty.FieldMargin:
		m.ResetMargin()
		return nil
	case datauncertainty.FieldEntropy:
		m.ResetEntropy()
		return nil
	}
	return fmt.Errorf("unknown DataUncertainty field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DataUncertaintyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.data != nil {
		edges = append(edges, datauncertainty.EdgeData)
	}
	if m.model != nil {
		edges = append(edges, datauncertainty.EdgeModel)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DataUncertaintyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case datauncertainty.EdgeData:
		if id := m.data; id != nil {
			return []ent.Value{*id}
		}
	case datauncertainty.EdgeModel:
		if id := m.model; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DataUncertaintyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DataUncertaintyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DataUncertaintyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddata {
		edges = append(edges, datauncertainty.EdgeData)
	}
	if m.clearedmodel {
		edges = append(edges, datauncertainty.EdgeModel)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DataUncertaintyMutation) EdgeCleared(name string) bool {
	switch name {
	case datauncertainty.EdgeData:
		return m.cleareddata
	case datauncertainty.EdgeModel:
		return m.clearedmodel
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DataUncertaintyMutation) ClearEdge(name string) error {
	switch name {
	case datauncertainty.EdgeData:
		m.ClearData()
		return nil
	case datauncertainty.EdgeModel:
		m.ClearModel()
		return nil
	}
	return fmt.Errorf("unknown DataUncertainty unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DataUncertaintyMutation) ResetEdge(name string) error {
	switch name {
	case datauncertainty.EdgeData:
		m.ResetData()
		return nil
	case datauncertainty.EdgeModel:
		m.ResetModel()
		return nil
	}
	return fmt.Errorf("unknown DataUncertainty edge %s", name)
}

// LabelMutation represents an operation that mutates the Label nodes in the graph.
type LabelMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	name               *string
	clearedFields      map[string]struct{}
	project            *int
	clearedproject     bool
	decisions          map[int]struct{}
	removeddecisions   map[int]struct{}
	cleareddecisions   bool
	predictions        map[int]struct{}
	removedpredictions map[int]struct{}
	clearedpredictions bool
	done               bool
	oldValue           func(context.Context) (*Label, error)
	predicates         []predicate.Label
}

var _ ent.Mutation = (*LabelMutation)(nil)

// labelOption allows management of the mutation configuration using functional options.
type labelOption func(*LabelMutation)

// newLabelMutation creates new mutation for the Label entity.
func newLabelMutation(c config, op Op, opts ...labelOption) *LabelMutation {
	m := &LabelMutation{
		config:        c,
		op:            op,
		typ:           TypeLabel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLabelID sets the ID field of the mutation.
func withLabelID(id int) labelOption {
	return func(m *LabelMutation) {
		var (
			err   error
			once  sync.Once
			value *Label
		)
		m.oldValue = func(ctx context.Context) (*Label, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Label.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLabel sets the old Label of the mutation.
func withLabel(node *Label) labelOption {
	return func(m *LabelMutation) {
		m.oldValue = func(context.Context) (*Label, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LabelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LabelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LabelMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LabelMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Label.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *LabelMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *LabelMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *LabelMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *LabelMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LabelMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Label entity.
// If the Label object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LabelMutation) ResetName() {
	m.name = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *LabelMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[label.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *LabelMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *LabelMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *LabelMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddDecisionIDs adds the "decisions" edge to the DataLabel entity by ids.
func (m *LabelMutation) AddDecisionIDs(ids ...int) {
	if m.decisions == nil {
		m.decisions = make(map[int]struct{})
	}
	for i := range ids {
		m.decisions[ids[i]] = struct{}{}
	}
}

// ClearDecisions clears the "decisions" edge to the DataLabel entity.
func (m *LabelMutation) ClearDecisions() {
	m.cleareddecisions = true
}

// DecisionsCleared reports if the "decisions" edge to the DataLabel entity was cleared.
func (m *LabelMutation) DecisionsCleared() bool {
	return m.cleareddecisions
}

// RemoveDecisionIDs removes the "decisions" edge to the DataLabel entity by IDs.
func (m *LabelMutation) RemoveDecisionIDs(ids ...int) {
	if m.removeddecisions == nil {
		m.removeddecisions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.decisions, ids[i])
		m.removeddecisions[ids[i]] = struct{}{}
	}
}

// RemovedDecisions returns the removed IDs of the "decisions" edge to the DataLabel entity.
func (m *LabelMutation) RemovedDecisionsIDs() (ids []int) {
	for id := range m.removeddecisions {
		ids = append(ids, id)
	}
	return
}

// DecisionsIDs returns the "decisions" edge IDs in the mutation.
func (m *LabelMutation) DecisionsIDs() (ids []int) {
	for id := range m.decisions {
		ids = append(ids, id)
	}
	return
}

// ResetDecisions resets all changes to the "decisions" edge.
func (m *LabelMutation) ResetDecisions() {
	m.decisions = nil
	m.cleareddecisions = false
	m.removeddecisions = nil
}

// AddPredictionIDs adds the "predictions" edge to the DataPrediction entity by ids.
func (m *LabelMutation) AddPredictionIDs(ids ...int) {
	if m.predictions == nil {
		m.predictions = make(map[int]struct{})
	}
	for i := range ids {
		m.predictions[ids[i]] = struct{}{}
	}
}

// ClearPredictions clears the "predictions" edge to the DataPrediction entity.
func (m *LabelMutation) ClearPredictions() {
	m.clearedpredictions = true
}

// PredictionsCleared reports if the "predictions" edge to the DataPrediction entity was cleared.
func (m *LabelMutation) PredictionsCleared() bool {
	return m.clearedpredictions
}

// RemovePredictionIDs removes the "predictions" edge to the DataPrediction entity by IDs.
func (m *LabelMutation) RemovePredictionIDs(ids ...int) {
	if m.removedpredictions == nil {
		m.removedpredictions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.predictions, ids[i])
		m.removedpredictions[ids[i]] = struct{}{}
	}
}

// RemovedPredictions returns the removed IDs of the "predictions" edge to the DataPrediction entity.
func (m *LabelMutation) RemovedPredictionsIDs() (ids []int) {
	for id := range m.removedpredictions {
		ids = append(ids, id)
	}
	return
}

// PredictionsIDs returns the "predictions" edge IDs in the mutation.
func (m *LabelMutation) PredictionsIDs() (ids []int) {
	for id := range m.predictions {
		ids = append(ids, id)
	}
	return
}

// ResetPredictions resets all changes to the "predictions" edge.
func (m *LabelMutation) ResetPredictions() {
	m.predictions = nil
	m.clearedpredictions = false
	m.removedpredictions = nil
}

// Where appends a list predicates to the LabelMutation builder.
func (m *LabelMutation) Where(ps ...predicate.Label) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LabelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LabelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Label, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LabelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LabelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Label).
func (m *LabelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LabelMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.project != nil {
		fields = append(fields, label.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, label.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LabelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case label.FieldProjectID:
		return m.ProjectID()
	case label.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LabelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case label.FieldProjectID:
		return m.OldProjectID(ctx)
	case label.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Label field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case label.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case label.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Label field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LabelMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LabelMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabelMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Label numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LabelMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LabelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LabelMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Label nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LabelMutation) ResetField(name string) error {
	switch name {
	case label.FieldProjectID:
		m.ResetProjectID()
		return nil
	case label.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Label field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LabelMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, label.EdgeProject)
	}
	if m.decisions != nil {
		edges = append(edges, label.EdgeDecisions)
	}
	if m.predictions != nil {
		edges = append(edges, label.EdgePredictions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LabelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case label.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case label.EdgeDecisions:
		ids := make([]ent.Value, 0, len(m.decisions))
		for id := range m.decisions {
			ids = append(ids, id)
		}
		return ids
	case label.EdgePredictions:
		ids := make([]ent.Value, 0, len(m.predictions))
		for id := range m.predictions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LabelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddecisions != nil {
		edges = append(edges, label.EdgeDecisions)
	}
	if m.removedpredictions != nil {
		edges = append(edges, label.EdgePredictions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LabelMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case label.EdgeDecisions:
		ids := make([]ent.Value, 0, len(m.removeddecisions))
		for id := range m.removeddecisions {
			ids = append(ids, id)
		}
		return ids
	case label.EdgePredictions:
		ids := make([]ent.Value, 0, len(m.removedpredictions))
		for id := range m.removedpredictions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LabelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, label.EdgeProject)
	}
	if m.cleareddecisions {
		edges = append(edges, label.EdgeDecisions)
	}
	if m.clearedpredictions {
		edges = append(edges, label.EdgePredictions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LabelMutation) EdgeCleared(name string) bool {
	switch name {
	case label.EdgeProject:
		return m.clearedproject
	case label.EdgeDecisions:
		return m.cleareddecisions
	case label.EdgePredictions:
		return m.clearedpredictions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LabelMutation) ClearEdge(name string) error {
	switch name {
	case label.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Label unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LabelMutation) ResetEdge(name string) error {
	switch name {
	case label.EdgeProject:
		m.ResetProject()
		return nil
	case label.EdgeDecisions:
		m.ResetDecisions()
		return nil
	case label.EdgePredictions:
		m.ResetPredictions()
		return nil
	}
	return fmt.Errorf("unknown Label edge %s", name)
}

// ModelMutation represents an operation that mutates the Model nodes in the graph.
type ModelMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	_path                *string
	training_set         *int
	addtraining_set      *int
	created_at           *time.Time
	clearedFields        map[string]struct{}
	project              *int
	clearedproject       bool
	uncertainties        map[int]struct{}
	removeduncertainties map[int]struct{}
	cleareduncertainties bool
	predictions          map[int]struct{}
	removedpredictions   map[int]struct{}
	clearedpredictions   bool
	done                 bool
	oldValue             func(context.Context) (*Model, error)
	predicates           []predicate.Model
}

var _ ent.Mutation = (*ModelMutation)(nil)

// modelOption allows management of the mutation configuration using functional options.
type modelOption func(*ModelMutation)

// newModelMutation creates new mutation for the Model entity.
func newModelMutation(c config, op Op, opts ...modelOption) *ModelMutation {
	m := &ModelMutation{
		config:        c,
		op:            op,
		typ:           TypeModel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelID sets the ID field of the mutation.
func withModelID(id int) modelOption {
	return func(m *ModelMutation) {
		var (
			err   error
			once  sync.Once
			value *Model
		)
		m.oldValue = func(ctx context.Context) (*Model, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Model.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModel sets the old Model of the mutation.
func withModel(node *Model) modelOption {
	return func(m *ModelMutation) {
		m.oldValue = func(context.Context) (*Model, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Model.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ModelMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ModelMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Model entity.
// If the Model object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ModelMutation) ResetProjectID() {
	m.project = nil
}

// SetPath sets the "path" field.
func (m *ModelMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *ModelMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Model entity.
// If the Model object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *ModelMutation) ResetPath() {
	m._path = nil
}

// SetTrainingSet sets the "training_set" field.
func (m *ModelMutation) SetTrainingSet(i int) {
	m.training_set = &i
	m.addtraining_set = nil
}

// TrainingSet returns the value of the "training_set" field in the mutation.
func (m *ModelMutation) TrainingSet() (r int, exists bool) {
	v := m.training_set
	if v == nil {
		return
	}
	return *v, true
}

// OldTrainingSet returns the old "training_set" field's value of the Model entity.
// If the Model object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelMutation) OldTrainingSet(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrainingSet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrainingSet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrainingSet: %w", err)
	}
	return oldValue.TrainingSet, nil
}

// AddTrainingSet adds i to the "training_set" field.
func (m *ModelMutation) AddTrainingSet(i int) {
	if m.addtraining_set != nil {
		*m.addtraining_set += i
	} else {
		m.addtraining_set = &i
	}
}

// AddedTrainingSet returns the value that was added to the "training_set" field in this mutation.
func (m *ModelMutation) AddedTrainingSet() (r int, exists bool) {
	v := m.addtraining_set
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrainingSet resets all changes to the "training_set" field.
func (m *ModelMutation) ResetTrainingSet() {
	m.training_set = nil
	m.addtraining_set = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Model entity.
// If the Model object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ModelMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[model.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ModelMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ModelMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ModelMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddUncertaintyIDs adds the "uncertainties" edge to the DataUncertainty entity by ids.
func (m *ModelMutation) AddUncertaintyIDs(ids ...int) {
	if m.uncertainties == nil {
		m.uncertainties = make(map[int]struct{})
	}
	for i := range ids {
		m.uncertainties[ids[i]] = struct{}{}
	}
}

// ClearUncertainties clears the "uncertainties" edge to the DataUncertainty entity.
func (m *ModelMutation) ClearUncertainties() {
	m.cleareduncertainties = true
}

// UncertaintiesCleared reports if the "uncertainties" edge to the DataUncertainty entity was cleared.
func (m *ModelMutation) UncertaintiesCleared() bool {
	return m.cleareduncertainties
}

// RemoveUncertaintyIDs removes the "uncertainties" edge to the DataUncertainty entity by IDs.
func (m *ModelMutation) RemoveUncertaintyIDs(ids ...int) {
	if m.removeduncertainties == nil {
		m.removeduncertainties = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.uncertainties, ids[i])
		m.removeduncertainties[ids[i]] = struct{}{}
	}
}

// RemovedUncertainties returns the removed IDs of the "uncertainties" edge to the DataUncertainty entity.
func (m *ModelMutation) RemovedUncertaintiesIDs() (ids []int) {
	for id := range m.removeduncertainties {
		ids = append(ids, id)
	}
	return
}

// UncertaintiesIDs returns the "uncertainties" edge IDs in the mutation.
func (m *ModelMutation) UncertaintiesIDs() (ids []int) {
	for id := range m.uncertainties {
		ids = append(ids, id)
	}
	return
}

// ResetUncertainties resets all changes to the "uncertainties" edge.
func (m *ModelMutation) ResetUncertainties() {
	m.uncertainties = nil
	m.cleareduncertainties = false
	m.removeduncertainties = nil
}

// AddPredictionIDs adds the "predictions" edge to the DataPrediction entity by ids.
func (m *ModelMutation) AddPredictionIDs(ids ...int) {
	if m.predictions == nil {
		m.predictions = make(map[int]struct{})
	}
	for i := range ids {
		m.predictions[ids[i]] = struct{}{}
	}
}

// ClearPredictions clears the "predictions" edge to the DataPrediction entity.
func (m *ModelMutation) ClearPredictions() {
	m.clearedpredictions = true
}

// PredictionsCleared reports if the "predictions" edge to the DataPrediction entity was cleared.
func (m *ModelMutation) PredictionsCleared() bool {
	return m.clearedpredictions
}

// RemovePredictionIDs removes the "predictions" edge to the DataPrediction entity by IDs.
func (m *ModelMutation) RemovePredictionIDs(ids ...int) {
	if m.removedpredictions == nil {
		m.removedpredictions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.predictions, ids[i])
		m.removedpredictions[ids[i]] = struct{}{}
	}
}

// RemovedPredictions returns the removed IDs of the "predictions" edge to the DataPrediction entity.
func (m *ModelMutation) RemovedPredictionsIDs() (ids []int) {
	for id := range m.removedpredictions {
		ids = append(ids, id)
	}
	return
}

// PredictionsIDs returns the "predictions" edge IDs in the mutation.
func (m *ModelMutation) PredictionsIDs() (ids []int) {
	for id := range m.predictions {
		ids = append(ids, id)
	}
	return
}

// ResetPredictions resets all changes to the "predictions" edge.
func (m *ModelMutation) ResetPredictions() {
	m.predictions = nil
	m.clearedpredictions = false
	m.removedpredictions = nil
}

// Where appends a list predicates to the ModelMutation builder.
func (m *ModelMutation) Where(ps ...predicate.Model) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Model, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Model).
func (m *ModelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.project != nil {
		fields = append(fields, model.FieldProjectID)
	}
	if m._path != nil {
		fields = append(fields, model.FieldPath)
	}
	if m.training_set != nil {
		fields = append(fields, model.FieldTrainingSet)
	}
	if m.created_at != nil {
		fields = append(fields, model.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case model.FieldProjectID:
		return m.ProjectID()
	case model.FieldPath:
		return m.Path()
	case model.FieldTrainingSet:
		return m.TrainingSet()
	case model.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case model.FieldProjectID:
		return m.OldProjectID(ctx)
	case model.FieldPath:
		return m.OldPath(ctx)
	case model.FieldTrainingSet:
		return m.OldTrainingSet(ctx)
	case model.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Model field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case model.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case model.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case model.FieldTrainingSet:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrainingSet(v)
		return nil
	case model.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Model field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelMutation) AddedFields() []string {
	var fields []string
	if m.addtraining_set != nil {
		fields = append(fields, model.FieldTrainingSet)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case model.FieldTrainingSet:
		return m.AddedTrainingSet()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelMutation) AddField(name string, value ent.Value) error {
	switch name {
	case model.FieldTrainingSet:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrainingSet(v)
		return nil
	}
	return fmt.Errorf("unknown Model numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Model nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelMutation) ResetField(name string) error {
	switch name {
	case model.FieldProjectID:
		m.ResetProjectID()
		return nil
	case model.FieldPath:
		m.ResetPath()
		return nil
	case model.FieldTrainingSet:
		m.ResetTrainingSet()
		return nil
	case model.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Model field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, model.EdgeProject)
	}
	if m.uncertainties != nil {
		edges = append(edges, model.EdgeUncertainties)
	}
	if m.predictions != nil {
		edges = append(edges, model.EdgePredictions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case model.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case model.EdgeUncertainties:
		ids := make([]ent.Value, 0, len(m.uncertainties))
		for id := range m.uncertainties {
			ids = append(ids, id)
		}
		return ids
	case model.EdgePredictions:
		ids := make([]ent.Value, 0, len(m.predictions))
		for id := range m.predictions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeduncertainties != nil {
		edges = append(edges, model.EdgeUncertainties)
	}
	if m.removedpredictions != nil {
		edges = append(edges, model.EdgePredictions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case model.EdgeUncertainties:
		ids := make([]ent.Value, 0, len(m.removeduncertainties))
		for id := range m.removeduncertainties {
			ids = append(ids, id)
		}
		return ids
	case model.EdgePredictions:
		ids := make([]ent.Value, 0, len(m.removedpredictions))
		for id := range m.removedpredictions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, model.EdgeProject)
	}
	if m.cleareduncertainties {
		edges = append(edges, model.EdgeUncertainties)
	}
	if m.clearedpredictions {
		edges = append(edges, model.EdgePredictions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelMutation) EdgeCleared(name string) bool {
	switch name {
	case model.EdgeProject:
		return m.clearedproject
	case model.EdgeUncertainties:
		return m.cleareduncertainties
	case model.EdgePredictions:
		return m.clearedpredictions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelMutation) ClearEdge(name string) error {
	switch name {
	case model.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Model unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelMutation) ResetEdge(name string) error {
	switch name {
	case model.EdgeProject:
		m.ResetProject()
		return nil
	case model.EdgeUncertainties:
		m.ResetUncertainties()
		return nil
	case model.EdgePredictions:
		m.ResetPredictions()
		return nil
	}
	return fmt.Errorf("unknown Model edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	username           *string
	email              *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	queues             map[int]struct{}
	removedqueues      map[int]struct{}
	clearedqueues      bool
	assignments        map[int]struct{}
	removedassignments map[int]struct{}
	clearedassignments bool
	decisions          map[int]struct{}
	removeddecisions   map[int]struct{}
	cleareddecisions   bool
	done               bool
	oldValue           func(context.Context) (*Profile, error)
	predicates         []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id uuid.UUID) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Profile entities.
func (m *ProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *ProfileMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *ProfileMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *ProfileMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *ProfileMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ProfileMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ProfileMutation) ResetEmail() {
	m.email = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddQueueIDs adds the "queues" edge to the Queue entity by ids.
func (m *ProfileMutation) AddQueueIDs(ids ...int) {
	if m.queues == nil {
		m.queues = make(map[int]struct{})
	}
	for i := range ids {
		m.queues[ids[i]] = struct{}{}
	}
}

// ClearQueues clears the "queues" edge to the Queue entity.
func (m *ProfileMutation) ClearQueues() {
	m.clearedqueues = true
}

// QueuesCleared reports if the "queues" edge to the Queue entity was cleared.
func (m *ProfileMutation) QueuesCleared() bool {
	return m.clearedqueues
}

// RemoveQueueIDs removes the "queues" edge to the Queue entity by IDs.
func (m *ProfileMutation) RemoveQueueIDs(ids ...int) {
	if m.removedqueues == nil {
		m.removedqueues = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.queues, ids[i])
		m.removedqueues[ids[i]] = struct{}{}
	}
}

// RemovedQueues returns the removed IDs of the "queues" edge to the Queue entity.
func (m *ProfileMutation) RemovedQueuesIDs() (ids []int) {
	for id := range m.removedqueues {
		ids = append(ids, id)
	}
	return
}

// QueuesIDs returns the "queues" edge IDs in the mutation.
func (m *ProfileMutation) QueuesIDs() (ids []int) {
	for id := range m.queues {
		ids = append(ids, id)
	}
	return
}

// ResetQueues resets all changes to the "queues" edge.
func (m *ProfileMutation) ResetQueues() {
	m.queues = nil
	m.clearedqueues = false
	m.removedqueues = nil
}

// AddAssignmentIDs adds the "assignments" edge to the AssignedData entity by ids.
func (m *ProfileMutation) AddAssignmentIDs(ids ...int) {
	if m.assignments == nil {
		m.assignments = make(map[int]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the AssignedData entity.
func (m *ProfileMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the AssignedData entity was cleared.
func (m *ProfileMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the AssignedData entity by IDs.
func (m *ProfileMutation) RemoveAssignmentIDs(ids ...int) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the AssignedData entity.
func (m *ProfileMutation) RemovedAssignmentsIDs() (ids []int) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *ProfileMutation) AssignmentsIDs() (ids []int) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *ProfileMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// AddDecisionIDs adds the "decisions" edge to the DataLabel entity by ids.
func (m *ProfileMutation) AddDecisionIDs(ids ...int) {
	if m.decisions == nil {
		m.decisions = make(map[int]struct{})
	}
	for i := range ids {
		m.decisions[ids[i]] = struct{}{}
	}
}

// ClearDecisions clears the "decisions" edge to the DataLabel entity.
func (m *ProfileMutation) ClearDecisions() {
	m.cleareddecisions = true
}

// DecisionsCleared reports if the "decisions" edge to the DataLabel entity was cleared.
func (m *ProfileMutation) DecisionsCleared() bool {
	return m.cleareddecisions
}

// RemoveDecisionIDs removes the "decisions" edge to the DataLabel entity by IDs.
func (m *ProfileMutation) RemoveDecisionIDs(ids ...int) {
	if m.removeddecisions == nil {
		m.removeddecisions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.decisions, ids[i])
		m.removeddecisions[ids[i]] = struct{}{}
	}
}

// RemovedDecisions returns the removed IDs of the "decisions" edge to the DataLabel entity.
func (m *ProfileMutation) RemovedDecisionsIDs() (ids []int) {
	for id := range m.removeddecisions {
		ids = append(ids, id)
	}
	return
}

// DecisionsIDs returns the "decisions" edge IDs in the mutation.
func (m *ProfileMutation) DecisionsIDs() (ids []int) {
	for id := range m.decisions {
		ids = append(ids, id)
	}
	return
}

// ResetDecisions resets all changes to the "decisions" edge.
func (m *ProfileMutation) ResetDecisions() {
	m.decisions = nil
	m.cleareddecisions = false
	m.removeddecisions = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.username != nil {
		fields = append(fields, profile.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, profile.FieldEmail)
	}
	if m.created_at != nil {
		fields = append(fields, profile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, profile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldUsername:
		return m.Username()
	case profile.FieldEmail:
		return m.Email()
	case profile.FieldCreatedAt:
		return m.CreatedAt()
	case profile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldUsername:
		return m.OldUsername(ctx)
	case profile.FieldEmail:
		return m.OldEmail(ctx)
	case profile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case profile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case profile.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case profile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case profile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldUsername:
		m.ResetUsername()
		return nil
	case profile.FieldEmail:
		m.ResetEmail()
		return nil
	case profile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case profile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.queues != nil {
		edges = append(edges, profile.EdgeQueues)
	}
	if m.assignments != nil {
		edges = append(edges, profile.EdgeAssignments)
	}
	if m.decisions != nil {
		edges = append(edges, profile.EdgeDecisions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeQueues:
		ids := make([]ent.Value, 0, len(m.queues))
		for id := range m.queues {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeDecisions:
		ids := make([]ent.Value, 0, len(m.decisions))
		for id := range m.decisions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedqueues != nil {
		edges = append(edges, profile.EdgeQueues)
	}
	if m.removedassignments != nil {
		edges = append(edges, profile.EdgeAssignments)
	}
	if m.removeddecisions != nil {
		edges = append(edges, profile.EdgeDecisions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeQueues:
		ids := make([]ent.Value, 0, len(m.removedqueues))
		for id := range m.removedqueues {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeDecisions:
		ids := make([]ent.Value, 0, len(m.removeddecisions))
		for id := range m.removeddecisions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedqueues {
		edges = append(edges, profile.EdgeQueues)
	}
	if m.clearedassignments {
		edges = append(edges, profile.EdgeAssignments)
	}
	if m.cleareddecisions {
		edges = append(edges, profile.EdgeDecisions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case profile.EdgeQueues:
		return m.clearedqueues
	case profile.EdgeAssignments:
		return m.clearedassignments
	case profile.EdgeDecisions:
		return m.cleareddecisions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	switch name {
	case profile.EdgeQueues:
		m.ResetQueues()
		return nil
	case profile.EdgeAssignments:
		m.ResetAssignments()
		return nil
	case profile.EdgeDecisions:
		m.ResetDecisions()
		return nil
	}
	return fmt.Errorf("unknown Profile edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	name                    *string
	classifier              *string
	current_training_set    *int
	addcurrent_training_set *int
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	data                    map[int]struct{}
	removeddata             map[int]struct{}
	cleareddata             bool
	labels                  map[int]struct{}
	removedlabels           map[int]struct{}
	clearedlabels           bool
	queues                  map[int]struct{}
	removedqueues           map[int]struct{}
	clearedqueues           bool
	models                  map[int]struct{}
	removedmodels           map[int]struct{}
	clearedmodels           bool
	done                    bool
	oldValue                func(context.Context) (*Project, error)
	predicates              []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id int) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetClassifier sets the "classifier" field.
func (m *ProjectMutation) SetClassifier(s string) {
	m.classifier = &s
}

// Classifier returns the value of the "classifier" field in the mutation.
func (m *ProjectMutation) Classifier() (r string, exists bool) {
	v := m.classifier
	if v == nil {
		return
	}
	return *v, true
}

// OldClassifier returns the old "classifier" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldClassifier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassifier: %w", err)
	}
	return oldValue.Classifier, nil
}

// ResetClassifier resets all changes to the "classifier" field.
func (m *ProjectMutation) ResetClassifier() {
	m.classifier = nil
}

// SetCurrentTrainingSet sets the "current_training_set" field.
func (m *ProjectMutation) SetCurrentTrainingSet(i int) {
	m.current_training_set = &i
	m.addcurrent_training_set = nil
}

// CurrentTrainingSet returns the value of the "current_training_set" field in the mutation.
func (m *ProjectMutation) CurrentTrainingSet() (r int, exists bool) {
	v := m.current_training_set
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentTrainingSet returns the old "current_training_set" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCurrentTrainingSet(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentTrainingSet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentTrainingSet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentTrainingSet: %w", err)
	}
	return oldValue.CurrentTrainingSet, nil
}

// AddCurrentTrainingSet adds i to the "current_training_set" field.
func (m *ProjectMutation) AddCurrentTrainingSet(i int) {
	if m.addcurrent_training_set != nil {
		*m.addcurrent_training_set += i
	} else {
		m.addcurrent_training_set = &i
	}
}

// AddedCurrentTrainingSet returns the value that was added to the "current_training_set" field in this mutation.
func (m *ProjectMutation) AddedCurrentTrainingSet() (r int, exists bool) {
	v := m.addcurrent_training_set
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentTrainingSet resets all changes to the "current_training_set" field.
func (m *ProjectMutation) ResetCurrentTrainingSet() {
	m.current_training_set = nil
	m.addcurrent_training_set = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDatumIDs adds the "data" edge to the Data entity by ids.
func (m *ProjectMutation) AddDatumIDs(ids ...int) {
	if m.data == nil {
		m.data = make(map[int]struct{})
	}
	for i := range ids {
		m.data[ids[i]] = struct{}{}
	}
}

// ClearData clears the "data" edge to the Data entity.
func (m *ProjectMutation) ClearData() {
	m.cleareddata = true
}

// DataCleared reports if the "data" edge to the Data entity was cleared.
func (m *ProjectMutation) DataCleared() bool {
	return m.cleareddata
}

// RemoveDatumIDs removes the "data" edge to the Data entity by IDs.
func (m *ProjectMutation) RemoveDatumIDs(ids ...int) {
	if m.removeddata == nil {
		m.removeddata = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.data, ids[i])
		m.removeddata[ids[i]] = struct{}{}
	}
}

// RemovedData returns the removed IDs of the "data" edge to the Data entity.
func (m *ProjectMutation) RemovedDataIDs() (ids []int) {
	for id := range m.removeddata {
		ids = append(ids, id)
	}
	return
}

// DataIDs returns the "data" edge IDs in the mutation.
func (m *ProjectMutation) DataIDs() (ids []int) {
	for id := range m.data {
		ids = append(ids, id)
	}
	return
}

// ResetData resets all changes to the "data" edge.
func (m *ProjectMutation) ResetData() {
	m.data = nil
	m.cleareddata = false
	m.removeddata = nil
}

// AddLabelIDs adds the "labels" edge to the Label entity by ids.
func (m *ProjectMutation) AddLabelIDs(ids ...int) {
	if m.labels == nil {
		m.labels = make(map[int]struct{})
	}
	for i := range ids {
		m.labels[ids[i]] = struct{}{}
	}
}

// ClearLabels clears the "labels" edge to the Label entity.
func (m *ProjectMutation) ClearLabels() {
	m.clearedlabels = true
}

// LabelsCleared reports if the "labels" edge to the Label entity was cleared.
func (m *ProjectMutation) LabelsCleared() bool {
	return m.clearedlabels
}

// RemoveLabelIDs removes the "labels" edge to the Label entity by IDs.
func (m *ProjectMutation) RemoveLabelIDs(ids ...int) {
	if m.removedlabels == nil {
		m.removedlabels = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.labels, ids[i])
		m.removedlabels[ids[i]] = struct{}{}
	}
}

// RemovedLabels returns the removed IDs of the "labels" edge to the Label entity.
func (m *ProjectMutation) RemovedLabelsIDs() (ids []int) {
	for id := range m.removedlabels {
		ids = append(ids, id)
	}
	return
}

// LabelsIDs returns the "labels" edge IDs in the mutation.
func (m *ProjectMutation) LabelsIDs() (ids []int) {
	for id := range m.labels {
		ids = append(ids, id)
	}
	return
}

// ResetLabels resets all changes to the "labels" edge.
func (m *ProjectMutation) ResetLabels() {
	m.labels = nil
	m.clearedlabels = false
	m.removedlabels = nil
}

// AddQueueIDs adds the "queues" edge to the Queue entity by ids.
func (m *ProjectMutation) AddQueueIDs(ids ...int) {
	if m.queues == nil {
		m.queues = make(map[int]struct{})
	}
	for i := range ids {
		m.queues[ids[i]] = struct{}{}
	}
}

// ClearQueues clears the "queues" edge to the Queue entity.
func (m *ProjectMutation) ClearQueues() {
	m.clearedqueues = true
}

// QueuesCleared reports if the "queues" edge to the Queue entity was cleared.
func (m *ProjectMutation) QueuesCleared() bool {
	return m.clearedqueues
}

// RemoveQueueIDs removes the "queues" edge to the Queue entity by IDs.
func (m *ProjectMutation) RemoveQueueIDs(ids ...int) {
	if m.removedqueues == nil {
		m.removedqueues = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.queues, ids[i])
		m.removedqueues[ids[i]] = struct{}{}
	}
}

// RemovedQueues returns the removed IDs of the "queues" edge to the Queue entity.
func (m *ProjectMutation) RemovedQueuesIDs() (ids []int) {
	for id := range m.removedqueues {
		ids = append(ids, id)
	}
	return
}

// QueuesIDs returns the "queues" edge IDs in the mutation.
func (m *ProjectMutation) QueuesIDs() (ids []int) {
	for id := range m.queues {
		ids = append(ids, id)
	}
	return
}

// ResetQueues resets all changes to the "queues" edge.
func (m *ProjectMutation) ResetQueues() {
	m.queues = nil
	m.clearedqueues = false
	m.removedqueues = nil
}

// AddModelIDs adds the "models" edge to the Model entity by ids.
func (m *ProjectMutation) AddModelIDs(ids ...int) {
	if m.models == nil {
		m.models = make(map[int]struct{})
	}
	for i := range ids {
		m.models[ids[i]] = struct{}{}
	}
}

// ClearModels clears the "models" edge to the Model entity.
func (m *ProjectMutation) ClearModels() {
	m.clearedmodels = true
}

// ModelsCleared reports if the "models" edge to the Model entity was cleared.
func (m *ProjectMutation) ModelsCleared() bool {
	return m.clearedmodels
}

// RemoveModelIDs removes the "models" edge to the Model entity by IDs.
func (m *ProjectMutation) RemoveModelIDs(ids ...int) {
	if m.removedmodels == nil {
		m.removedmodels = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.models, ids[i])
		m.removedmodels[ids[i]] = struct{}{}
	}
}

// RemovedModels returns the removed IDs of the "models" edge to the Model entity.
func (m *ProjectMutation) RemovedModelsIDs() (ids []int) {
	for id := range m.removedmodels {
		ids = append(ids, id)
	}
	return
}

// ModelsIDs returns the "models" edge IDs in the mutation.
func (m *ProjectMutation) ModelsIDs() (ids []int) {
	for id := range m.models {
		ids = append(ids, id)
	}
	return
}

// ResetModels resets all changes to the "models" edge.
func (m *ProjectMutation) ResetModels() {
	m.models = nil
	m.clearedmodels = false
	m.removedmodels = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.classifier != nil {
		fields = append(fields, project.FieldClassifier)
	}
	if m.current_training_set != nil {
		fields = append(fields, project.FieldCurrentTrainingSet)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldClassifier:
		return m.Classifier()
	case project.FieldCurrentTrainingSet:
		return m.CurrentTrainingSet()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldClassifier:
		return m.OldClassifier(ctx)
	case project.FieldCurrentTrainingSet:
		return m.OldCurrentTrainingSet(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldClassifier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassifier(v)
		return nil
	case project.FieldCurrentTrainingSet:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentTrainingSet(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_training_set != nil {
		fields = append(fields, project.FieldCurrentTrainingSet)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case project.FieldCurrentTrainingSet:
		return m.AddedCurrentTrainingSet()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case project.FieldCurrentTrainingSet:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentTrainingSet(v)
		return nil
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldClassifier:
		m.ResetClassifier()
		return nil
	case project.FieldCurrentTrainingSet:
		m.ResetCurrentTrainingSet()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.data != nil {
		edges = append(edges, project.EdgeData)
	}
	if m.labels != nil {
		edges = append(edges, project.EdgeLabels)
	}
	if m.queues != nil {
		edges = append(edges, project.EdgeQueues)
	}
	if m.models != nil {
		edges = append(edges, project.EdgeModels)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeData:
		ids := make([]ent.Value, 0, len(m.data))
		for id := range m.data {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeLabels:
		ids := make([]ent.Value, 0, len(m.labels))
		for id := range m.labels {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeQueues:
		ids := make([]ent.Value, 0, len(m.queues))
		for id := range m.queues {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeModels:
		ids := make([]ent.Value, 0, len(m.models))
		for id := range m.models {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removeddata != nil {
		edges = append(edges, project.EdgeData)
	}
	if m.removedlabels != nil {
		edges = append(edges, project.EdgeLabels)
	}
	if m.removedqueues != nil {
		edges = append(edges, project.EdgeQueues)
	}
	if m.removedmodels != nil {
		edges = append(edges, project.EdgeModels)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeData:
		ids := make([]ent.Value, 0, len(m.removeddata))
		for id := range m.removeddata {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeLabels:
		ids := make([]ent.Value, 0, len(m.removedlabels))
		for id := range m.removedlabels {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeQueues:
		ids := make([]ent.Value, 0, len(m.removedqueues))
		for id := range m.removedqueues {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeModels:
		ids := make([]ent.Value, 0, len(m.removedmodels))
		for id := range m.removedmodels {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cleareddata {
		edges = append(edges, project.EdgeData)
	}
	if m.clearedlabels {
		edges = append(edges, project.EdgeLabels)
	}
	if m.clearedqueues {
		edges = append(edges, project.EdgeQueues)
	}
	if m.clearedmodels {
		edges = append(edges, project.EdgeModels)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeData:
		return m.cleareddata
	case project.EdgeLabels:
		return m.clearedlabels
	case project.EdgeQueues:
		return m.clearedqueues
	case project.EdgeModels:
		return m.clearedmodels
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeData:
		m.ResetData()
		return nil
	case project.EdgeLabels:
		m.ResetLabels()
		return nil
	case project.EdgeQueues:
		m.ResetQueues()
		return nil
	case project.EdgeModels:
		m.ResetModels()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// QueueMutation represents an operation that mutates the Queue nodes in the graph.
type QueueMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	length             *int
	addlength          *int
	clearedFields      map[string]struct{}
	project            *int
	clearedproject     bool
	profile            *uuid.UUID
	clearedprofile     bool
	entries            map[int]struct{}
	removedentries     map[int]struct{}
	clearedentries     bool
	assignments        map[int]struct{}
	removedassignments map[int]struct{}
	clearedassignments bool
	done               bool
	oldValue           func(context.Context) (*Queue, error)
	predicates         []predicate.Queue
}

var _ ent.Mutation = (*QueueMutation)(nil)

// queueOption allows management of the mutation configuration using functional options.
type queueOption func(*QueueMutation)

// newQueueMutation creates new mutation for the Queue entity.
func newQueueMutation(c config, op Op, opts ...queueOption) *QueueMutation {
	m := &QueueMutation{
		config:        c,
		op:            op,
		typ:           TypeQueue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueID sets the ID field of the mutation.
func withQueueID(id int) queueOption {
	return func(m *QueueMutation) {
		var (
			err   error
			once  sync.Once
			value *Queue
		)
		m.oldValue = func(ctx context.Context) (*Queue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Queue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueue sets the old Queue of the mutation.
func withQueue(node *Queue) queueOption {
	return func(m *QueueMutation) {
		m.oldValue = func(context.Context) (*Queue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Queue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *QueueMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *QueueMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Queue entity.
// If the Queue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *QueueMutation) ResetProjectID() {
	m.project = nil
}

// SetLength sets the "length" field.
func (m *QueueMutation) SetLength(i int) {
	m.length = &i
	m.addlength = nil
}

// Length returns the value of the "length" field in the mutation.
func (m *QueueMutation) Length() (r int, exists bool) {
	v := m.length
	if v == nil {
		return
	}
	return *v, true
}

// OldLength returns the old "length" field's value of the Queue entity.
// If the Queue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMutation) OldLength(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLength: %w", err)
	}
	return oldValue.Length, nil
}

// AddLength adds i to the "length" field.
func (m *QueueMutation) AddLength(i int) {
	if m.addlength != nil {
		*m.addlength += i
	} else {
		m.addlength = &i
	}
}

// AddedLength returns the value that was added to the "length" field in this mutation.
func (m *QueueMutation) AddedLength() (r int, exists bool) {
	v := m.addlength
	if v == nil {
		return
	}
	return *v, true
}

// ResetLength resets all changes to the "length" field.
func (m *QueueMutation) ResetLength() {
	m.length = nil
	m.addlength = nil
}

// SetProfileID sets the "profile_id" field.
func (m *QueueMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *QueueMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the Queue entity.
// If the Queue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMutation) OldProfileID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ClearProfileID clears the value of the "profile_id" field.
func (m *QueueMutation) ClearProfileID() {
	m.profile = nil
	m.clearedFields[queue.FieldProfileID] = struct{}{}
}

// ProfileIDCleared returns if the "profile_id" field was cleared in this mutation.
func (m *QueueMutation) ProfileIDCleared() bool {
	_, ok := m.clearedFields[queue.FieldProfileID]
	return ok
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *QueueMutation) ResetProfileID() {
	m.profile = nil
	delete(m.clearedFields, queue.FieldProfileID)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *QueueMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[queue.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *QueueMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *QueueMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *QueueMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *QueueMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[queue.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *QueueMutation) ProfileCleared() bool {
	return m.ProfileIDCleared() || m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *QueueMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *QueueMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// AddEntryIDs adds the "entries" edge to the DataQueue entity by ids.
func (m *QueueMutation) AddEntryIDs(ids ...int) {
	if m.entries == nil {
		m.entries = make(map[int]struct{})
	}
	for i := range ids {
		m.entries[ids[i]] = struct{}{}
	}
}

// ClearEntries clears the "entries" edge to the DataQueue entity.
func (m *QueueMutation) ClearEntries() {
	m.clearedentries = true
}

// EntriesCleared reports if the "entries" edge to the DataQueue entity was cleared.
func (m *QueueMutation) EntriesCleared() bool {
	return m.clearedentries
}

// RemoveEntryIDs removes the "entries" edge to the DataQueue entity by IDs.
func (m *QueueMutation) RemoveEntryIDs(ids ...int) {
	if m.removedentries == nil {
		m.removedentries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.entries, ids[i])
		m.removedentries[ids[i]] = struct{}{}
	}
}

// RemovedEntries returns the removed IDs of the "entries" edge to the DataQueue entity.
func (m *QueueMutation) RemovedEntriesIDs() (ids []int) {
	for id := range m.removedentries {
		ids = append(ids, id)
	}
	return
}

// EntriesIDs returns the "entries" edge IDs in the mutation.
func (m *QueueMutation) EntriesIDs() (ids []int) {
	for id := range m.entries {
		ids = append(ids, id)
	}
	return
}

// ResetEntries resets all changes to the "entries" edge.
func (m *QueueMutation) ResetEntries() {
	m.entries = nil
	m.clearedentries = false
	m.removedentries = nil
}

// AddAssignmentIDs adds the "assignments" edge to the AssignedData entity by ids.
func (m *QueueMutation) AddAssignmentIDs(ids ...int) {
	if m.assignments == nil {
		m.assignments = make(map[int]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the AssignedData entity.
func (m *QueueMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the AssignedData entity was cleared.
func (m *QueueMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the AssignedData entity by IDs.
func (m *QueueMutation) RemoveAssignmentIDs(ids ...int) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the AssignedData entity.
func (m *QueueMutation) RemovedAssignmentsIDs() (ids []int) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *QueueMutation) AssignmentsIDs() (ids []int) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *QueueMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// Where appends a list predicates to the QueueMutation builder.
func (m *QueueMutation) Where(ps ...predicate.Queue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Queue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Queue).
func (m *QueueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.project != nil {
		fields = append(fields, queue.FieldProjectID)
	}
	if m.length != nil {
		fields = append(fields, queue.FieldLength)
	}
	if m.profile != nil {
		fields = append(fields, queue.FieldProfileID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queue.FieldProjectID:
		return m.ProjectID()
	case queue.FieldLength:
		return m.Length()
	case queue.FieldProfileID:
		return m.ProfileID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queue.FieldProjectID:
		return m.OldProjectID(ctx)
	case queue.FieldLength:
		return m.OldLength(ctx)
	case queue.FieldProfileID:
		return m.OldProfileID(ctx)
	}
	return nil, fmt.Errorf("unknown Queue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queue.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case queue.FieldLength:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLength(v)
		return nil
	case queue.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	}
	return fmt.Errorf("unknown Queue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueMutation) AddedFields() []string {
	var fields []string
	if m.addlength != nil {
		fields = append(fields, queue.FieldLength)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queue.FieldLength:
		return m.AddedLength()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queue.FieldLength:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLength(v)
		return nil
	}
	return fmt.Errorf("unknown Queue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queue.FieldProfileID) {
		fields = append(fields, queue.FieldProfileID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueMutation) ClearField(name string) error {
	switch name {
	case queue.FieldProfileID:
		m.ClearProfileID()
		return nil
	}
	return fmt.Errorf("unknown Queue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueMutation) ResetField(name string) error {
	switch name {
	case queue.FieldProjectID:
		m.ResetProjectID()
		return nil
	case queue.FieldLength:
		m.ResetLength()
		return nil
	case queue.FieldProfileID:
		m.ResetProfileID()
		return nil
	}
	return fmt.Errorf("unknown Queue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.project != nil {
		edges = append(edges, queue.EdgeProject)
	}
	if m.profile != nil {
		edges = append(edges, queue.EdgeProfile)
	}
	if m.entries != nil {
		edges = append(edges, queue.EdgeEntries)
	}
	if m.assignments != nil {
		edges = append(edges, queue.EdgeAssignments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case queue.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case queue.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	case queue.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.entries))
		for id := range m.entries {
			ids = append(ids, id)
		}
		return ids
	case queue.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedentries != nil {
		edges = append(edges, queue.EdgeEntries)
	}
	if m.removedassignments != nil {
		edges = append(edges, queue.EdgeAssignments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case queue.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.removedentries))
		for id := range m.removedentries {
			ids = append(ids, id)
		}
		return ids
	case queue.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedproject {
		edges = append(edges, queue.EdgeProject)
	}
	if m.clearedprofile {
		edges = append(edges, queue.EdgeProfile)
	}
	if m.clearedentries {
		edges = append(edges, queue.EdgeEntries)
	}
	if m.clearedassignments {
		edges = append(edges, queue.EdgeAssignments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueMutation) EdgeCleared(name string) bool {
	switch name {
	case queue.EdgeProject:
		return m.clearedproject
	case queue.EdgeProfile:
		return m.clearedprofile
	case queue.EdgeEntries:
		return m.clearedentries
	case queue.EdgeAssignments:
		return m.clearedassignments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueMutation) ClearEdge(name string) error {
	switch name {
	case queue.EdgeProject:
		m.ClearProject()
		return nil
	case queue.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown Queue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueMutation) ResetEdge(name string) error {
	switch name {
	case queue.EdgeProject:
		m.ResetProject()
		return nil
	case queue.EdgeProfile:
		m.ResetProfile()
		return nil
	case queue.EdgeEntries:
		m.ResetEntries()
		return nil
	case queue.EdgeAssignments:
		m.ResetAssignments()
		return nil
	}
	return fmt.Errorf("unknown Queue edge %s", name)
}
