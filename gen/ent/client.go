// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/labelworks/annoqueue/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/labelworks/annoqueue/gen/ent/assigneddata"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/datalabel"
	"github.com/labelworks/annoqueue/gen/ent/dataprediction"
	"github.com/labelworks/annoqueue/gen/ent/dataqueue"
	"github.com/labelworks/annoqueue/gen/ent/datauncertainty"
	"github.com/labelworks/annoqueue/gen/ent/label"
	"github.com/labelworks/annoqueue/gen/ent/model"
	"github.com/labelworks/annoqueue/gen/ent/profile"
	"github.com/labelworks/annoqueue/gen/ent/project"
	"github.com/labelworks/annoqueue/gen/ent/queue"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AssignedData is the client for interacting with the AssignedData builders.
	AssignedData *AssignedDataClient
	// Data is the client for interacting with the Data builders.
	Data *DataClient
	// DataLabel is the client for interacting with the DataLabel builders.
	DataLabel *DataLabelClient
	// DataPrediction is the client for interacting with the DataPrediction builders.
	DataPrediction *DataPredictionClient
	// DataQueue is the client for interacting with the DataQueue builders.
	DataQueue *DataQueueClient
	// DataUncertainty is the client for interacting with the DataUncertainty builders.
	DataUncertainty *DataUncertaintyClient
	// Label is the client for interacting with the Label builders.
	Label *LabelClient
	// Model is the client for interacting with the Model builders.
	Model *ModelClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// Queue is the client for interacting with the Queue builders.
	Queue *QueueClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AssignedData = NewAssignedDataClient(c.config)
	c.Data = NewDataClient(c.config)
	c.DataLabel = NewDataLabelClient(c.config)
	c.DataPrediction = NewDataPredictionClient(c.config)
	c.DataQueue = NewDataQueueClient(c.config)
	c.DataUncertainty = NewDataUncertaintyClient(c.config)
	c.Label = NewLabelClient(c.config)
	c.Model = NewModelClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.Queue = NewQueueClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AssignedData:    NewAssignedDataClient(cfg),
		Data:            NewDataClient(cfg),
		DataLabel:       NewDataLabelClient(cfg),
		DataPrediction:  NewDataPredictionClient(cfg),
		DataQueue:       NewDataQueueClient(cfg),
		DataUncertainty: NewDataUncertaintyClient(cfg),
		Label:           NewLabelClient(cfg),
		Model:           NewModelClient(cfg),
		Profile:         NewProfileClient(cfg),
		Project:         NewProjectClient(cfg),
		Queue:           NewQueueClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AssignedData:    NewAssignedDataClient(cfg),
		Data:            NewDataClient(cfg),
		DataLabel:       NewDataLabelClient(cfg),
		DataPrediction:  NewDataPredictionClient(cfg),
		DataQueue:       NewDataQueueClient(cfg),
		DataUncertainty: NewDataUncertaintyClient(cfg),
		Label:           NewLabelClient(cfg),
		Model:           NewModelClient(cfg),
		Profile:         NewProfileClient(cfg),
		Project:         NewProjectClient(cfg),
		Queue:           NewQueueClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AssignedData.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AssignedData, c.Data, c.DataLabel, c.DataPrediction, c.DataQueue,
		c.DataUncertainty, c.Label, c.Model, c.Profile, c.Project, c.Queue,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AssignedData, c.Data, c.DataLabel, c.DataPrediction, c.DataQueue,
		c.DataUncertainty, c.Label, c.Model, c.Profile, c.Project, c.Queue,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssignedDataMutation:
		return c.AssignedData.mutate(ctx, m)
	case *DataMutation:
		return c.Data.mutate(ctx, m)
	case *DataLabelMutation:
		return c.DataLabel.mutate(ctx, m)
	case *DataPredictionMutation:
		return c.DataPrediction.mutate(ctx, m)
	case *DataQueueMutation:
		return c.DataQueue.mutate(ctx, m)
	case *DataUncertaintyMutation:
		return c.DataUncertainty.mutate(ctx, m)
	case *LabelMutation:
		return c.Label.mutate(ctx, m)
	case *ModelMutation:
		return c.Model.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *QueueMutation:
		return c.Queue.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssignedDataClient is a client for the AssignedData schema.
type AssignedDataClient struct {
	config
}

// NewAssignedDataClient returns a client for the AssignedData from the given config.
func NewAssignedDataClient(c config) *AssignedDataClient {
	return &AssignedDataClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assigneddata.Hooks(f(g(h())))`.
func (c *AssignedDataClient) Use(hooks ...Hook) {
	c.hooks.AssignedData = append(c.hooks.AssignedData, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assigneddata.Intercept(f(g(h())))`.
func (c *AssignedDataClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssignedData = append(c.inters.AssignedData, interceptors...)
}

// Create returns a builder for creating a AssignedData entity.
func (c *AssignedDataClient) Create() *AssignedDataCreate {
	mutation := newAssignedDataMutation(c.config, OpCreate)
	return &AssignedDataCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssignedData entities.
func (c *AssignedDataClient) CreateBulk(builders ...*AssignedDataCreate) *AssignedDataCreateBulk {
	return &AssignedDataCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssignedDataClient) MapCreateBulk(slice any, setFunc func(*AssignedDataCreate, int)) *AssignedDataCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssignedDataCreateBulk{err: fmt.Errorf("calling to AssignedDataClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssignedDataCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssignedDataCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssignedData.
func (c *AssignedDataClient) Update() *AssignedDataUpdate {
	mutation := newAssignedDataMutation(c.config, OpUpdate)
	return &AssignedDataUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssignedDataClient) UpdateOne(ad *AssignedData) *AssignedDataUpdateOne {
	mutation := newAssignedDataMutation(c.config, OpUpdateOne, withAssignedData(ad))
	return &AssignedDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssignedDataClient) UpdateOneID(id int) *AssignedDataUpdateOne {
	mutation := newAssignedDataMutation(c.config, OpUpdateOne, withAssignedDataID(id))
	return &AssignedDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssignedData.
func (c *AssignedDataClient) Delete() *AssignedDataDelete {
	mutation := newAssignedDataMutation(c.config, OpDelete)
	return &AssignedDataDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssignedDataClient) DeleteOne(ad *AssignedData) *AssignedDataDeleteOne {
	return c.DeleteOneID(ad.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssignedDataClient) DeleteOneID(id int) *AssignedDataDeleteOne {
	builder := c.Delete().Where(assigneddata.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssignedDataDeleteOne{builder}
}

// Query returns a query builder for AssignedData.
func (c *AssignedDataClient) Query() *AssignedDataQuery {
	return &AssignedDataQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssignedData},
		inters: c.Interceptors(),
	}
}

// Get returns a AssignedData entity by its id.
func (c *AssignedDataClient) Get(ctx context.Context, id int) (*AssignedData, error) {
	return c.Query().Where(assigneddata.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssignedDataClient) GetX(ctx context.Context, id int) *AssignedData {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryData queries the data edge of a AssignedData.
func (c *AssignedDataClient) QueryData(ad *AssignedData) *DataQuery {
	query := (&DataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ad.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assigneddata.Table, assigneddata.FieldID, id),
			sqlgraph.To(data.Table, data.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assigneddata.DataTable, assigneddata.DataColumn),
		)
		fromV = sqlgraph.Neighbors(ad.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProfile queries the profile edge of a AssignedData.
func (c *AssignedDataClient) QueryProfile(ad *AssignedData) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ad.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assigneddata.Table, assigneddata.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assigneddata.ProfileTable, assigneddata.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(ad.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQueue queries the queue edge of a AssignedData.
func (c *AssignedDataClient) QueryQueue(ad *AssignedData) *QueueQuery {
	query := (&QueueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ad.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assigneddata.Table, assigneddata.FieldID, id),
			sqlgraph.To(queue.Table, queue.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assigneddata.QueueTable, assigneddata.QueueColumn),
		)
		fromV = sqlgraph.Neighbors(ad.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AssignedDataClient) Hooks() []Hook {
	return c.hooks.AssignedData
}

// Interceptors returns the client interceptors.
func (c *AssignedDataClient) Interceptors() []Interceptor {
	return c.inters.AssignedData
}

func (c *AssignedDataClient) mutate(ctx context.Context, m *AssignedDataMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssignedDataCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssignedDataUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssignedDataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssignedDataDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssignedData mutation op: %q", m.Op())
	}
}

// DataClient is a client for the Data schema.
type DataClient struct {
	config
}

// NewDataClient returns a client for the Data from the given config.
func NewDataClient(c config) *DataClient {
	return &DataClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `data.Hooks(f(g(h())))`.
func (c *DataClient) Use(hooks ...Hook) {
	c.hooks.Data = append(c.hooks.Data, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `data.Intercept(f(g(h())))`.
func (c *DataClient) Intercept(interceptors ...Interceptor) {
	c.inters.Data = append(c.inters.Data, interceptors...)
}

// Create returns a builder for creating a Data entity.
func (c *DataClient) Create() *DataCreate {
	mutation := newDataMutation(c.config, OpCreate)
	return &DataCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Data entities.
func (c *DataClient) CreateBulk(builders ...*DataCreate) *DataCreateBulk {
	return &DataCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DataClient) MapCreateBulk(slice any, setFunc func(*DataCreate, int)) *DataCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DataCreateBulk{err: fmt.Errorf("calling to DataClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DataCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DataCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Data.
func (c *DataClient) Update() *DataUpdate {
	mutation := newDataMutation(c.config, OpUpdate)
	return &DataUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DataClient) UpdateOne(d *Data) *DataUpdateOne {
	mutation := newDataMutation(c.config, OpUpdateOne, withData(d))
	return &DataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DataClient) UpdateOneID(id int) *DataUpdateOne {
	mutation := newDataMutation(c.config, OpUpdateOne, withDataID(id))
	return &DataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Data.
func (c *DataClient) Delete() *DataDelete {
	mutation := newDataMutation(c.config, OpDelete)
	return &DataDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DataClient) DeleteOne(d *Data) *DataDeleteOne {
	return c.DeleteOneID(d.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DataClient) DeleteOneID(id int) *DataDeleteOne {
	builder := c.Delete().Where(data.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DataDeleteOne{builder}
}

// Query returns a query builder for Data.
func (c *DataClient) Query() *DataQuery {
	return &DataQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeData},
		inters: c.Interceptors(),
	}
}

// Get returns a Data entity by its id.
func (c *DataClient) Get(ctx context.Context, id int) (*Data, error) {
	return c.Query().Where(data.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DataClient) GetX(ctx context.Context, id int) *Data {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Data.
func (c *DataClient) QueryProject(d *Data) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := d.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(data.Table, data.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, data.ProjectTable, data.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(d.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQueueEntries queries the queue_entries edge of a Data.
func (c *DataClient) QueryQueueEntries(d *Data) *DataQueueQuery {
	query := (&DataQueueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := d.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(data.Table, data.FieldID, id),
			sqlgraph.To(dataqueue.Table, dataqueue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, data.QueueEntriesTable, data.QueueEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(d.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssignments queries the assignments edge of a Data.
func (c *DataClient) QueryAssignments(d *Data) *AssignedDataQuery {
	query := (&AssignedDataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := d.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(data.Table, data.FieldID, id),
			sqlgraph.To(assigneddata.Table, assigneddata.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, data.AssignmentsTable, data.AssignmentsColumn),
		)
		fromV = sqlgraph.Neighbors(d.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDecisions queries the decisions edge of a Data.
func (c *DataClient) QueryDecisions(d *Data) *DataLabelQuery {
	query := (&DataLabelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := d.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(data.Table, data.FieldID, id),
			sqlgraph.To(datalabel.Table, datalabel.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, data.DecisionsTable, data.DecisionsColumn),
		)
		fromV = sqlgraph.Neighbors(d.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUncertainties queries the uncertainties edge of a Data.
func (c *DataClient) QueryUncertainties(d *Data) *DataUncertaintyQuery {
	query := (&DataUncertaintyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := d.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(data.Table, data.FieldID, id),
			sqlgraph.To(datauncertainty.Table, datauncertainty.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, data.UncertaintiesTable, data.UncertaintiesColumn),
		)
		fromV = sqlgraph.Neighbors(d.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPredictions queries the predictions edge of a Data.
func (c *DataClient) QueryPredictions(d *Data) *DataPredictionQuery {
	query := (&DataPredictionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := d.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(data.Table, data.FieldID, id),
			sqlgraph.To(dataprediction.Table, dataprediction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, data.PredictionsTable, data.PredictionsColumn),
		)
		fromV = sqlgraph.Neighbors(d.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DataClient) Hooks() []Hook {
	return c.hooks.Data
}

// Interceptors returns the client interceptors.
func (c *DataClient) Interceptors() []Interceptor {
	return c.inters.Data
}

func (c *DataClient) mutate(ctx context.Context, m *DataMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DataCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DataUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DataDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Data mutation op: %q", m.Op())
	}
}

// DataLabelClient is a client for the DataLabel schema.
type DataLabelClient struct {
	config
}

// NewDataLabelClient returns a client for the DataLabel from the given config.
func NewDataLabelClient(c config) *DataLabelClient {
	return &DataLabelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `datalabel.Hooks(f(g(h())))`.
func (c *DataLabelClient) Use(hooks ...Hook) {
	c.hooks.DataLabel = append(c.hooks.DataLabel, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `datalabel.Intercept(f(g(h())))`.
func (c *DataLabelClient) Intercept(interceptors ...Interceptor) {
	c.inters.DataLabel = append(c.inters.DataLabel, interceptors...)
}

// Create returns a builder for creating a DataLabel entity.
func (c *DataLabelClient) Create() *DataLabelCreate {
	mutation := newDataLabelMutation(c.config, OpCreate)
	return &DataLabelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DataLabel entities.
func (c *DataLabelClient) CreateBulk(builders ...*DataLabelCreate) *DataLabelCreateBulk {
	return &DataLabelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DataLabelClient) MapCreateBulk(slice any, setFunc func(*DataLabelCreate, int)) *DataLabelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DataLabelCreateBulk{err: fmt.Errorf("calling to DataLabelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DataLabelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DataLabelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DataLabel.
func (c *DataLabelClient) Update() *DataLabelUpdate {
	mutation := newDataLabelMutation(c.config, OpUpdate)
	return &DataLabelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DataLabelClient) UpdateOne(dl *DataLabel) *DataLabelUpdateOne {
	mutation := newDataLabelMutation(c.config, OpUpdateOne, withDataLabel(dl))
	return &DataLabelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DataLabelClient) UpdateOneID(id int) *DataLabelUpdateOne {
	mutation := newDataLabelMutation(c.config, OpUpdateOne, withDataLabelID(id))
	return &DataLabelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DataLabel.
func (c *DataLabelClient) Delete() *DataLabelDelete {
	mutation := newDataLabelMutation(c.config, OpDelete)
	return &DataLabelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DataLabelClient) DeleteOne(dl *DataLabel) *DataLabelDeleteOne {
	return c.DeleteOneID(dl.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DataLabelClient) DeleteOneID(id int) *DataLabelDeleteOne {
	builder := c.Delete().Where(datalabel.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DataLabelDeleteOne{builder}
}

// Query returns a query builder for DataLabel.
func (c *DataLabelClient) Query() *DataLabelQuery {
	return &DataLabelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDataLabel},
		inters: c.Interceptors(),
	}
}

// Get returns a DataLabel entity by its id.
func (c *DataLabelClient) Get(ctx context.Context, id int) (*DataLabel, error) {
	return c.Query().Where(datalabel.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DataLabelClient) GetX(ctx context.Context, id int) *DataLabel {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryData queries the data edge of a DataLabel.
func (c *DataLabelClient) QueryData(dl *DataLabel) *DataQuery {
	query := (&DataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := dl.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(datalabel.Table, datalabel.FieldID, id),
			sqlgraph.To(data.Table, data.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, datalabel.DataTable, datalabel.DataColumn),
		)
		fromV = sqlgraph.Neighbors(dl.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLabel queries the label edge of a DataLabel.
func (c *DataLabelClient) QueryLabel(dl *DataLabel) *LabelQuery {
	query := (&LabelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := dl.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(datalabel.Table, datalabel.FieldID, id),
			sqlgraph.To(label.Table, label.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, datalabel.LabelTable, datalabel.LabelColumn),
		)
		fromV = sqlgraph.Neighbors(dl.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProfile queries the profile edge of a DataLabel.
func (c *DataLabelClient) QueryProfile(dl *DataLabel) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := dl.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(datalabel.Table, datalabel.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, datalabel.ProfileTable, datalabel.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(dl.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DataLabelClient) Hooks() []Hook {
	return c.hooks.DataLabel
}

// Interceptors returns the client interceptors.
func (c *DataLabelClient) Interceptors() []Interceptor {
	return c.inters.DataLabel
}

func (c *DataLabelClient) mutate(ctx context.Context, m *DataLabelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DataLabelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DataLabelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DataLabelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DataLabelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DataLabel mutation op: %q", m.Op())
	}
}

// DataPredictionClient is a client for the DataPrediction schema.
type DataPredictionClient struct {
	config
}

// NewDataPredictionClient returns a client for the DataPrediction from the given config.
func NewDataPredictionClient(c config) *DataPredictionClient {
	return &DataPredictionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dataprediction.Hooks(f(g(h())))`.
func (c *DataPredictionClient) Use(hooks ...Hook) {
	c.hooks.DataPrediction = append(c.hooks.DataPrediction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dataprediction.Intercept(f(g(h())))`.
func (c *DataPredictionClient) Intercept(interceptors ...Interceptor) {
	c.inters.DataPrediction = append(c.inters.DataPrediction, interceptors...)
}

// Create returns a builder for creating a DataPrediction entity.
func (c *DataPredictionClient) Create() *DataPredictionCreate {
	mutation := newDataPredictionMutation(c.config, OpCreate)
	return &DataPredictionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DataPrediction entities.
func (c *DataPredictionClient) CreateBulk(builders ...*DataPredictionCreate) *DataPredictionCreateBulk {
	return &DataPredictionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DataPredictionClient) MapCreateBulk(slice any, setFunc func(*DataPredictionCreate, int)) *DataPredictionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DataPredictionCreateBulk{err: fmt.Errorf("calling to DataPredictionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DataPredictionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DataPredictionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DataPrediction.
func (c *DataPredictionClient) Update() *DataPredictionUpdate {
	mutation := newDataPredictionMutation(c.config, OpUpdate)
	return &DataPredictionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DataPredictionClient) UpdateOne(dp *DataPrediction) *DataPredictionUpdateOne {
	mutation := newDataPredictionMutation(c.config, OpUpdateOne, withDataPrediction(dp))
	return &DataPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DataPredictionClient) UpdateOneID(id int) *DataPredictionUpdateOne {
	mutation := newDataPredictionMutation(c.config, OpUpdateOne, withDataPredictionID(id))
	return &DataPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DataPrediction.
func (c *DataPredictionClient) Delete() *DataPredictionDelete {
	mutation := newDataPredictionMutation(c.config, OpDelete)
	return &DataPredictionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DataPredictionClient) DeleteOne(dp *DataPrediction) *DataPredictionDeleteOne {
	return c.DeleteOneID(dp.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DataPredictionClient) DeleteOneID(id int) *DataPredictionDeleteOne {
	builder := c.Delete().Where(dataprediction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DataPredictionDeleteOne{builder}
}

// Query returns a query builder for DataPrediction.
func (c *DataPredictionClient) Query() *DataPredictionQuery {
	return &DataPredictionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDataPrediction},
		inters: c.Interceptors(),
	}
}

// Get returns a DataPrediction entity by its id.
func (c *DataPredictionClient) Get(ctx context.Context, id int) (*DataPrediction, error) {
	return c.Query().Where(dataprediction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DataPredictionClient) GetX(ctx context.Context, id int) *DataPrediction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryData queries the data edge of a DataPrediction.
func (c *DataPredictionClient) QueryData(dp *DataPrediction) *DataQuery {
	query := (&DataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := dp.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dataprediction.Table, dataprediction.FieldID, id),
			sqlgraph.To(data.Table, data.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dataprediction.DataTable, dataprediction.DataColumn),
		)
		fromV = sqlgraph.Neighbors(dp.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryModel queries the model edge of a DataPrediction.
func (c *DataPredictionClient) QueryModel(dp *DataPrediction) *ModelQuery {
	query := (&ModelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := dp.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dataprediction.Table, dataprediction.FieldID, id),
			sqlgraph.To(model.Table, model.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dataprediction.ModelTable, dataprediction.ModelColumn),
		)
		fromV = sqlgraph.Neighbors(dp.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLabel queries the label edge of a DataPrediction.
func (c *DataPredictionClient) QueryLabel(dp *DataPrediction) *LabelQuery {
	query := (&LabelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := dp.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dataprediction.Table, dataprediction.FieldID, id),
			sqlgraph.To(label.Table, label.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dataprediction.LabelTable, dataprediction.LabelColumn),
		)
		fromV = sqlgraph.Neighbors(dp.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DataPredictionClient) Hooks() []Hook {
	return c.hooks.DataPrediction
}

// Interceptors returns the client interceptors.
func (c *DataPredictionClient) Interceptors() []Interceptor {
	return c.inters.DataPrediction
}

func (c *DataPredictionClient) mutate(ctx context.Context, m *DataPredictionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DataPredictionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DataPredictionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DataPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DataPredictionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DataPrediction mutation op: %q", m.Op())
	}
}

// DataQueueClient is a client for the DataQueue schema.
type DataQueueClient struct {
	config
}

// NewDataQueueClient returns a client for the DataQueue from the given config.
func NewDataQueueClient(c config) *DataQueueClient {
	return &DataQueueClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dataqueue.Hooks(f(g(h())))`.
func (c *DataQueueClient) Use(hooks ...Hook) {
	c.hooks.DataQueue = append(c.hooks.DataQueue, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dataqueue.Intercept(f(g(h())))`.
func (c *DataQueueClient) Intercept(interceptors ...Interceptor) {
	c.inters.DataQueue = append(c.inters.DataQueue, interceptors...)
}

// Create returns a builder for creating a DataQueue entity.
func (c *DataQueueClient) Create() *DataQueueCreate {
	mutation := newDataQueueMutation(c.config, OpCreate)
	return &DataQueueCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DataQueue entities.
func (c *DataQueueClient) CreateBulk(builders ...*DataQueueCreate) *DataQueueCreateBulk {
	return &DataQueueCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DataQueueClient) MapCreateBulk(slice any, setFunc func(*DataQueueCreate, int)) *DataQueueCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DataQueueCreateBulk{err: fmt.Errorf("calling to DataQueueClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DataQueueCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DataQueueCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DataQueue.
func (c *DataQueueClient) Update() *DataQueueUpdate {
	mutation := newDataQueueMutation(c.config, OpUpdate)
	return &DataQueueUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DataQueueClient) UpdateOne(dq *DataQueue) *DataQueueUpdateOne {
	mutation := newDataQueueMutation(c.config, OpUpdateOne, withDataQueue(dq))
	return &DataQueueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DataQueueClient) UpdateOneID(id int) *DataQueueUpdateOne {
	mutation := newDataQueueMutation(c.config, OpUpdateOne, withDataQueueID(id))
	return &DataQueueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DataQueue.
func (c *DataQueueClient) Delete() *DataQueueDelete {
	mutation := newDataQueueMutation(c.config, OpDelete)
	return &DataQueueDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DataQueueClient) DeleteOne(dq *DataQueue) *DataQueueDeleteOne {
	return c.DeleteOneID(dq.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DataQueueClient) DeleteOneID(id int) *DataQueueDeleteOne {
	builder := c.Delete().Where(dataqueue.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DataQueueDeleteOne{builder}
}

// Query returns a query builder for DataQueue.
func (c *DataQueueClient) Query() *DataQueueQuery {
	return &DataQueueQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDataQueue},
		inters: c.Interceptors(),
	}
}

// Get returns a DataQueue entity by its id.
func (c *DataQueueClient) Get(ctx context.Context, id int) (*DataQueue, error) {
	return c.Query().Where(dataqueue.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DataQueueClient) GetX(ctx context.Context, id int) *DataQueue {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryData queries the data edge of a DataQueue.
func (c *DataQueueClient) QueryData(dq *DataQueue) *DataQuery {
	query := (&DataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := dq.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dataqueue.Table, dataqueue.FieldID, id),
			sqlgraph.To(data.Table, data.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dataqueue.DataTable, dataqueue.DataColumn),
		)
		fromV = sqlgraph.Neighbors(dq.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQueue queries the queue edge of a DataQueue.
func (c *DataQueueClient) QueryQueue(dq *DataQueue) *QueueQuery {
	query := (&QueueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := dq.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dataqueue.Table, dataqueue.FieldID, id),
			sqlgraph.To(queue.Table, queue.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dataqueue.QueueTable, dataqueue.QueueColumn),
		)
		fromV = sqlgraph.Neighbors(dq.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DataQueueClient) Hooks() []Hook {
	return c.hooks.DataQueue
}

// Interceptors returns the client interceptors.
func (c *DataQueueClient) Interceptors() []Interceptor {
	return c.inters.DataQueue
}

func (c *DataQueueClient) mutate(ctx context.Context, m *DataQueueMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DataQueueCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DataQueueUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DataQueueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DataQueueDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DataQueue mutation op: %q", m.Op())
	}
}

// DataUncertaintyClient is a client for the DataUncertainty schema.
type DataUncertaintyClient struct {
	config
}

// NewDataUncertaintyClient returns a client for the DataUncertainty from the given config.
func NewDataUncertaintyClient(c config) *DataUncertaintyClient {
	return &DataUncertaintyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `datauncertainty.Hooks(f(g(h())))`.
func (c *DataUncertaintyClient) Use(hooks ...Hook) {
	c.hooks.DataUncertainty = append(c.hooks.DataUncertainty, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `datauncertainty.Intercept(f(g(h())))`.
func (c *DataUncertaintyClient) Intercept(interceptors ...Interceptor) {
	c.inters.DataUncertainty = append(c.inters.DataUncertainty, interceptors...)
}

// Create returns a builder for creating a DataUncertainty entity.
func (c *DataUncertaintyClient) Create() *DataUncertaintyCreate {
	mutation := newDataUncertaintyMutation(c.config, OpCreate)
	return &DataUncertaintyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DataUncertainty entities.
func (c *DataUncertaintyClient) CreateBulk(builders ...*DataUncertaintyCreate) *DataUncertaintyCreateBulk {
	return &DataUncertaintyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DataUncertaintyClient) MapCreateBulk(slice any, setFunc func(*DataUncertaintyCreate, int)) *DataUncertaintyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DataUncertaintyCreateBulk{err: fmt.Errorf("calling to DataUncertaintyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DataUncertaintyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DataUncertaintyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DataUncertainty.
func (c *DataUncertaintyClient) Update() *DataUncertaintyUpdate {
	mutation := newDataUncertaintyMutation(c.config, OpUpdate)
	return &DataUncertaintyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DataUncertaintyClient) UpdateOne(du *DataUncertainty) *DataUncertaintyUpdateOne {
	mutation := newDataUncertaintyMutation(c.config, OpUpdateOne, withDataUncertainty(du))
	return &DataUncertaintyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DataUncertaintyClient) UpdateOneID(id int) *DataUncertaintyUpdateOne {
	mutation := newDataUncertaintyMutation(c.config, OpUpdateOne, withDataUncertaintyID(id))
	return &DataUncertaintyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DataUncertainty.
func (c *DataUncertaintyClient) Delete() *DataUncertaintyDelete {
	mutation := newDataUncertaintyMutation(c.config, OpDelete)
	return &DataUncertaintyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DataUncertaintyClient) DeleteOne(du *DataUncertainty) *DataUncertaintyDeleteOne {
	return c.DeleteOneID(du.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DataUncertaintyClient) DeleteOneID(id int) *DataUncertaintyDeleteOne {
	builder := c.Delete().Where(datauncertainty.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DataUncertaintyDeleteOne{builder}
}

// Query returns a query builder for DataUncertainty.
func (c *DataUncertaintyClient) Query() *DataUncertaintyQuery {
	return &DataUncertaintyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDataUncertainty},
		inters: c.Interceptors(),
	}
}

// Get returns a DataUncertainty entity by its id.
func (c *DataUncertaintyClient) Get(ctx context.Context, id int) (*DataUncertainty, error) {
	return c.Query().Where(datauncertainty.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DataUncertaintyClient) GetX(ctx context.Context, id int) *DataUncertainty {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryData queries the data edge of a DataUncertainty.
func (c *DataUncertaintyClient) QueryData(du *DataUncertainty) *DataQuery {
	query := (&DataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := du.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(datauncertainty.Table, datauncertainty.FieldID, id),
			sqlgraph.To(data.Table, data.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, datauncertainty.DataTable, datauncertainty.DataColumn),
		)
		fromV = sqlgraph.Neighbors(du.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryModel queries the model edge of a DataUncertainty.
func (c *DataUncertaintyClient) QueryModel(du *DataUncertainty) *ModelQuery {
	query := (&ModelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := du.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(datauncertainty.Table, datauncertainty.FieldID, id),
			sqlgraph.To(model.Table, model.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, datauncertainty.ModelTable, datauncertainty.ModelColumn),
		)
		fromV = sqlgraph.Neighbors(du.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DataUncertaintyClient) Hooks() []Hook {
	return c.hooks.DataUncertainty
}

// Interceptors returns the client interceptors.
func (c *DataUncertaintyClient) Interceptors() []Interceptor {
	return c.inters.DataUncertainty
}

func (c *DataUncertaintyClient) mutate(ctx context.Context, m *DataUncertaintyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DataUncertaintyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DataUncertaintyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DataUncertaintyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DataUncertaintyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DataUncertainty mutation op: %q", m.Op())
	}
}

// LabelClient is a client for the Label schema.
type LabelClient struct {
	config
}

// NewLabelClient returns a client for the Label from the given config.
func NewLabelClient(c config) *LabelClient {
	return &LabelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `label.Hooks(f(g(h())))`.
func (c *LabelClient) Use(hooks ...Hook) {
	c.hooks.Label = append(c.hooks.Label, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `label.Intercept(f(g(h())))`.
func (c *LabelClient) Intercept(interceptors ...Interceptor) {
	c.inters.Label = append(c.inters.Label, interceptors...)
}

// Create returns a builder for creating a Label entity.
func (c *LabelClient) Create() *LabelCreate {
	mutation := newLabelMutation(c.config, OpCreate)
	return &LabelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Label entities.
func (c *LabelClient) CreateBulk(builders ...*LabelCreate) *LabelCreateBulk {
	return &LabelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LabelClient) MapCreateBulk(slice any, setFunc func(*LabelCreate, int)) *LabelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LabelCreateBulk{err: fmt.Errorf("calling to LabelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LabelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LabelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Label.
func (c *LabelClient) Update() *LabelUpdate {
	mutation := newLabelMutation(c.config, OpUpdate)
	return &LabelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LabelClient) UpdateOne(l *Label) *LabelUpdateOne {
	mutation := newLabelMutation(c.config, OpUpdateOne, withLabel(l))
	return &LabelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LabelClient) UpdateOneID(id int) *LabelUpdateOne {
	mutation := newLabelMutation(c.config, OpUpdateOne, withLabelID(id))
	return &LabelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Label.
func (c *LabelClient) Delete() *LabelDelete {
	mutation := newLabelMutation(c.config, OpDelete)
	return &LabelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LabelClient) DeleteOne(l *Label) *LabelDeleteOne {
	return c.DeleteOneID(l.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LabelClient) DeleteOneID(id int) *LabelDeleteOne {
	builder := c.Delete().Where(label.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LabelDeleteOne{builder}
}

// Query returns a query builder for Label.
func (c *LabelClient) Query() *LabelQuery {
	return &LabelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLabel},
		inters: c.Interceptors(),
	}
}

// Get returns a Label entity by its id.
func (c *LabelClient) Get(ctx context.Context, id int) (*Label, error) {
	return c.Query().Where(label.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LabelClient) GetX(ctx context.Context, id int) *Label {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Label.
func (c *LabelClient) QueryProject(l *Label) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := l.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(label.Table, label.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, label.ProjectTable, label.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(l.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDecisions queries the decisions edge of a Label.
func (c *LabelClient) QueryDecisions(l *Label) *DataLabelQuery {
	query := (&DataLabelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := l.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(label.Table, label.FieldID, id),
			sqlgraph.To(datalabel.Table, datalabel.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, label.DecisionsTable, label.DecisionsColumn),
		)
		fromV = sqlgraph.Neighbors(l.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPredictions queries the predictions edge of a Label.
func (c *LabelClient) QueryPredictions(l *Label) *DataPredictionQuery {
	query := (&DataPredictionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := l.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(label.Table, label.FieldID, id),
			sqlgraph.To(dataprediction.Table, dataprediction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, label.PredictionsTable, label.PredictionsColumn),
		)
		fromV = sqlgraph.Neighbors(l.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LabelClient) Hooks() []Hook {
	return c.hooks.Label
}

// Interceptors returns the client interceptors.
func (c *LabelClient) Interceptors() []Interceptor {
	return c.inters.Label
}

func (c *LabelClient) mutate(ctx context.Context, m *LabelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LabelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LabelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LabelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LabelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Label mutation op: %q", m.Op())
	}
}

// ModelClient is a client for the Model schema.
type ModelClient struct {
	config
}

// NewModelClient returns a client for the Model from the given config.
func NewModelClient(c config) *ModelClient {
	return &ModelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `model.Hooks(f(g(h())))`.
func (c *ModelClient) Use(hooks ...Hook) {
	c.hooks.Model = append(c.hooks.Model, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `model.Intercept(f(g(h())))`.
func (c *ModelClient) Intercept(interceptors ...Interceptor) {
	c.inters.Model = append(c.inters.Model, interceptors...)
}

// Create returns a builder for creating a Model entity.
func (c *ModelClient) Create() *ModelCreate {
	mutation := newModelMutation(c.config, OpCreate)
	return &ModelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Model entities.
func (c *ModelClient) CreateBulk(builders ...*ModelCreate) *ModelCreateBulk {
	return &ModelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelClient) MapCreateBulk(slice any, setFunc func(*ModelCreate, int)) *ModelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelCreateBulk{err: fmt.Errorf("calling to ModelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Model.
func (c *ModelClient) Update() *ModelUpdate {
	mutation := newModelMutation(c.config, OpUpdate)
	return &ModelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelClient) UpdateOne(m *Model) *ModelUpdateOne {
	mutation := newModelMutation(c.config, OpUpdateOne, withModel(m))
	return &ModelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelClient) UpdateOneID(id int) *ModelUpdateOne {
	mutation := newModelMutation(c.config, OpUpdateOne, withModelID(id))
	return &ModelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Model.
func (c *ModelClient) Delete() *ModelDelete {
	mutation := newModelMutation(c.config, OpDelete)
	return &ModelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelClient) DeleteOne(m *Model) *ModelDeleteOne {
	return c.DeleteOneID(m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelClient) DeleteOneID(id int) *ModelDeleteOne {
	builder := c.Delete().Where(model.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelDeleteOne{builder}
}

// Query returns a query builder for Model.
func (c *ModelClient) Query() *ModelQuery {
	return &ModelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModel},
		inters: c.Interceptors(),
	}
}

// Get returns a Model entity by its id.
func (c *ModelClient) Get(ctx context.Context, id int) (*Model, error) {
	return c.Query().Where(model.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelClient) GetX(ctx context.Context, id int) *Model {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Model.
func (c *ModelClient) QueryProject(m *Model) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(model.Table, model.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, model.ProjectTable, model.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUncertainties queries the uncertainties edge of a Model.
func (c *ModelClient) QueryUncertainties(m *Model) *DataUncertaintyQuery {
	query := (&DataUncertaintyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(model.Table, model.FieldID, id),
			sqlgraph.To(datauncertainty.Table, datauncertainty.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, model.UncertaintiesTable, model.UncertaintiesColumn),
		)
		fromV = sqlgraph.Neighbors(m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPredictions queries the predictions edge of a Model.
func (c *ModelClient) QueryPredictions(m *Model) *DataPredictionQuery {
	query := (&DataPredictionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(model.Table, model.FieldID, id),
			sqlgraph.To(dataprediction.Table, dataprediction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, model.PredictionsTable, model.PredictionsColumn),
		)
		fromV = sqlgraph.Neighbors(m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ModelClient) Hooks() []Hook {
	return c.hooks.Model
}

// Interceptors returns the client interceptors.
func (c *ModelClient) Interceptors() []Interceptor {
	return c.inters.Model
}

func (c *ModelClient) mutate(ctx context.Context, m *ModelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Model mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(pr *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(pr))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id uuid.UUID) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(pr *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(pr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id uuid.UUID) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id uuid.UUID) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQueues queries the queues edge of a Profile.
func (c *ProfileClient) QueryQueues(pr *Profile) *QueueQuery {
	query := (&QueueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := pr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(queue.Table, queue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.QueuesTable, profile.QueuesColumn),
		)
		fromV = sqlgraph.Neighbors(pr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssignments queries the assignments edge of a Profile.
func (c *ProfileClient) QueryAssignments(pr *Profile) *AssignedDataQuery {
	query := (&AssignedDataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := pr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(assigneddata.Table, assigneddata.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.AssignmentsTable, profile.AssignmentsColumn),
		)
		fromV = sqlgraph.Neighbors(pr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDecisions queries the decisions edge of a Profile.
func (c *ProfileClient) QueryDecisions(pr *Profile) *DataLabelQuery {
	query := (&DataLabelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := pr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(datalabel.Table, datalabel.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.DecisionsTable, profile.DecisionsColumn),
		)
		fromV = sqlgraph.Neighbors(pr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(pr *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(pr))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id int) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(pr *Project) *ProjectDeleteOne {
	return c.DeleteOneID(pr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id int) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id int) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id int) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryData queries the data edge of a Project.
func (c *ProjectClient) QueryData(pr *Project) *DataQuery {
	query := (&DataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := pr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(data.Table, data.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.DataTable, project.DataColumn),
		)
		fromV = sqlgraph.Neighbors(pr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLabels queries the labels edge of a Project.
func (c *ProjectClient) QueryLabels(pr *Project) *LabelQuery {
	query := (&LabelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := pr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(label.Table, label.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.LabelsTable, project.LabelsColumn),
		)
		fromV = sqlgraph.Neighbors(pr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQueues queries the queues edge of a Project.
func (c *ProjectClient) QueryQueues(pr *Project) *QueueQuery {
	query := (&QueueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := pr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(queue.Table, queue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.QueuesTable, project.QueuesColumn),
		)
		fromV = sqlgraph.Neighbors(pr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryModels queries the models edge of a Project.
func (c *ProjectClient) QueryModels(pr *Project) *ModelQuery {
	query := (&ModelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := pr.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(model.Table, model.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.ModelsTable, project.ModelsColumn),
		)
		fromV = sqlgraph.Neighbors(pr.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// QueueClient is a client for the Queue schema.
type QueueClient struct {
	config
}

// NewQueueClient returns a client for the Queue from the given config.
func NewQueueClient(c config) *QueueClient {
	return &QueueClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `queue.Hooks(f(g(h())))`.
func (c *QueueClient) Use(hooks ...Hook) {
	c.hooks.Queue = append(c.hooks.Queue, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `queue.Intercept(f(g(h())))`.
func (c *QueueClient) Intercept(interceptors ...Interceptor) {
	c.inters.Queue = append(c.inters.Queue, interceptors...)
}

// Create returns a builder for creating a Queue entity.
func (c *QueueClient) Create() *QueueCreate {
	mutation := newQueueMutation(c.config, OpCreate)
	return &QueueCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Queue entities.
func (c *QueueClient) CreateBulk(builders ...*QueueCreate) *QueueCreateBulk {
	return &QueueCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueueClient) MapCreateBulk(slice any, setFunc func(*QueueCreate, int)) *QueueCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueueCreateBulk{err: fmt.Errorf("calling to QueueClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueueCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueueCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Queue.
func (c *QueueClient) Update() *QueueUpdate {
	mutation := newQueueMutation(c.config, OpUpdate)
	return &QueueUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueueClient) UpdateOne(q *Queue) *QueueUpdateOne {
	mutation := newQueueMutation(c.config, OpUpdateOne, withQueue(q))
	return &QueueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueueClient) UpdateOneID(id int) *QueueUpdateOne {
	mutation := newQueueMutation(c.config, OpUpdateOne, withQueueID(id))
	return &QueueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Queue.
func (c *QueueClient) Delete() *QueueDelete {
	mutation := newQueueMutation(c.config, OpDelete)
	return &QueueDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueueClient) DeleteOne(q *Queue) *QueueDeleteOne {
	return c.DeleteOneID(q.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueueClient) DeleteOneID(id int) *QueueDeleteOne {
	builder := c.Delete().Where(queue.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueueDeleteOne{builder}
}

// Query returns a query builder for Queue.
func (c *QueueClient) Query() *QueueQuery {
	return &QueueQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueue},
		inters: c.Interceptors(),
	}
}

// Get returns a Queue entity by its id.
func (c *QueueClient) Get(ctx context.Context, id int) (*Queue, error) {
	return c.Query().Where(queue.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueueClient) GetX(ctx context.Context, id int) *Queue {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Queue.
func (c *QueueClient) QueryProject(q *Queue) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := q.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(queue.Table, queue.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, queue.ProjectTable, queue.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(q.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProfile queries the profile edge of a Queue.
func (c *QueueClient) QueryProfile(q *Queue) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := q.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(queue.Table, queue.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, queue.ProfileTable, queue.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(q.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntries queries the entries edge of a Queue.
func (c *QueueClient) QueryEntries(q *Queue) *DataQueueQuery {
	query := (&DataQueueClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := q.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(queue.Table, queue.FieldID, id),
			sqlgraph.To(dataqueue.Table, dataqueue.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, queue.EntriesTable, queue.EntriesColumn),
		)
		fromV = sqlgraph.Neighbors(q.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssignments queries the assignments edge of a Queue.
func (c *QueueClient) QueryAssignments(q *Queue) *AssignedDataQuery {
	query := (&AssignedDataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := q.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(queue.Table, queue.FieldID, id),
			sqlgraph.To(assigneddata.Table, assigneddata.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, queue.AssignmentsTable, queue.AssignmentsColumn),
		)
		fromV = sqlgraph.Neighbors(q.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QueueClient) Hooks() []Hook {
	return c.hooks.Queue
}

// Interceptors returns the client interceptors.
func (c *QueueClient) Interceptors() []Interceptor {
	return c.inters.Queue
}

func (c *QueueClient) mutate(ctx context.Context, m *QueueMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueueCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueueUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueueDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Queue mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AssignedData, Data, DataLabel, DataPrediction, DataQueue, DataUncertainty,
		Label, Model, Profile, Project, Queue []ent.Hook
	}
	inters struct {
		AssignedData, Data, DataLabel, DataPrediction, DataQueue, DataUncertainty,
		Label, Model, Profile, Project, Queue []ent.Interceptor
	}
)
