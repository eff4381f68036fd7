// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/dataqueue"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
	"github.com/labelworks/annoqueue/gen/ent/queue"
)

// DataQueueQuery is the builder for querying DataQueue entities.
type DataQueueQuery struct {
	config
	ctx        *QueryContext
	order      []dataqueue.OrderOption
	inters     []Interceptor
	predicates []predicate.DataQueue
	withData   *DataQuery
	withQueue  *QueueQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DataQueueQuery builder.
func (dqq *DataQueueQuery) Where(ps ...predicate.DataQueue) *DataQueueQuery {
	dqq.predicates = append(dqq.predicates, ps...)
	return dqq
}

// Limit the number of records to be returned by this query.
func (dqq *DataQueueQuery) Limit(limit int) *DataQueueQuery {
	dqq.ctx.Limit = &limit
	return dqq
}

// Offset to start from.
func (dqq *DataQueueQuery) Offset(offset int) *DataQueueQuery {
	dqq.ctx.Offset = &offset
	return dqq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (dqq *DataQueueQuery) Unique(unique bool) *DataQueueQuery {
	dqq.ctx.Unique = &unique
	return dqq
}

// Order specifies how the records should be ordered.
func (dqq *DataQueueQuery) Order(o ...dataqueue.OrderOption) *DataQueueQuery {
	dqq.order = append(dqq.order, o...)
	return dqq
}

// QueryData chains the current query on the "data" edge.
func (dqq *DataQueueQuery) QueryData() *DataQuery {
	query := (&DataClient{config: dqq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := dqq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := dqq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(dataqueue.Table, dataqueue.FieldID, selector),
			sqlgraph.To(data.Table, data.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dataqueue.DataTable, dataqueue.DataColumn),
		)
		fromU = sqlgraph.SetNeighbors(dqq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryQueue chains the current query on the "queue" edge.
func (dqq *DataQueueQuery) QueryQueue() *QueueQuery {
	query := (&QueueClient{config: dqq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := dqq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := dqq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(dataqueue.Table, dataqueue.FieldID, selector),
			sqlgraph.To(queue.Table, queue.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dataqueue.QueueTable, dataqueue.QueueColumn),
		)
		fromU = sqlgraph.SetNeighbors(dqq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DataQueue entity from the query.
// Returns a *NotFoundError when no DataQueue was found.
func (dqq *DataQueueQuery) First(ctx context.Context) (*DataQueue, error) {
	nodes, err := dqq.Limit(1).All(setContextOp(ctx, dqq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{dataqueue.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (dqq *DataQueueQuery) FirstX(ctx context.Context) *DataQueue {
	node, err := dqq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DataQueue ID from the query.
// Returns a *NotFoundError when no DataQueue ID was found.
func (dqq *DataQueueQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = dqq.Limit(1).IDs(setContextOp(ctx, dqq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{dataqueue.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (dqq *DataQueueQuery) FirstIDX(ctx context.Context) int {
	id, err := dqq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DataQueue entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DataQueue entity is found.
// Returns a *NotFoundError when no DataQueue entities are found.
func (dqq *DataQueueQuery) Only(ctx context.Context) (*DataQueue, error) {
	nodes, err := dqq.Limit(2).All(setContextOp(ctx, dqq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{dataqueue.Label}
	default:
		return nil, &NotSingularError{dataqueue.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (dqq *DataQueueQuery) OnlyX(ctx context.Context) *DataQueue {
	node, err := dqq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DataQueue ID in the query.
// Returns a *NotSingularError when more than one DataQueue ID is found.
// Returns a *NotFoundError when no entities are found.
func (dqq *DataQueueQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = dqq.Limit(2).IDs(setContextOp(ctx, dqq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{dataqueue.Label}
	default:
		err = &NotSingularError{dataqueue.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (dqq *DataQueueQuery) OnlyIDX(ctx context.Context) int {
	id, err := dqq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DataQueues.
func (dqq *DataQueueQuery) All(ctx context.Context) ([]*DataQueue, error) {
	ctx = setContextOp(ctx, dqq.ctx, ent.OpQueryAll)
	if err := dqq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DataQueue, *DataQueueQuery]()
	return withInterceptors[[]*DataQueue](ctx, dqq, qr, dqq.inters)
}

// AllX is like All, but panics if an error occurs.
func (dqq *DataQueueQuery) AllX(ctx context.Context) []*DataQueue {
	nodes, err := dqq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DataQueue IDs.
func (dqq *DataQueueQuery) IDs(ctx context.Context) (ids []int, err error) {
	if dqq.ctx.Unique == nil && dqq.path != nil {
		dqq.Unique(true)
	}
	ctx = setContextOp(ctx, dqq.ctx, ent.OpQueryIDs)
	if err = dqq.Select(dataqueue.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (dqq *DataQueueQuery) IDsX(ctx context.Context) []int {
	ids, err := dqq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (dqq *DataQueueQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, dqq.ctx, ent.OpQueryCount)
	if err := dqq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, dqq, querierCount[*DataQueueQuery](), dqq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (dqq *DataQueueQuery) CountX(ctx context.Context) int {
	count, err := dqq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (dqq *DataQueueQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, dqq.ctx, ent.OpQueryExist)
	switch _, err := dqq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (dqq *DataQueueQuery) ExistX(ctx context.Context) bool {
	exist, err := dqq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DataQueueQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (dqq *DataQueueQuery) Clone() *DataQueueQuery {
	if dqq == nil {
		return nil
	}
	return &DataQueueQuery{
		config:     dqq.config,
		ctx:        dqq.ctx.Clone(),
		order:      append([]dataqueue.OrderOption{}, dqq.order...),
		inters:     append([]Interceptor{}, dqq.inters...),
		predicates: append([]predicate.DataQueue{}, dqq.predicates...),
		withData:   dqq.withData.Clone(),
		withQueue:  dqq.withQueue.Clone(),
		// clone intermediate query.
		sql:  dqq.sql.Clone(),
		path: dqq.path,
	}
}

// WithData tells the query-builder to eager-load the nodes that are connected to
// the "data" edge. The optional arguments are used to configure the query builder of the edge.
func (dqq *DataQueueQuery) WithData(opts ...func(*DataQuery)) *DataQueueQuery {
	query := (&DataClient{config: dqq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	dqq.withData = query
	return dqq
}

// WithQueue tells the query-builder to eager-load the nodes that are connected to
// the "queue" edge. The optional arguments are used to configure the query builder of the edge.
func (dqq *DataQueueQuery) WithQueue(opts ...func(*QueueQuery)) *DataQueueQuery {
	query := (&QueueClient{config: dqq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	dqq.withQueue = query
	return dqq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DataID int `json:"data_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DataQueue.Query().
//		GroupBy(dataqueue.FieldDataID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (dqq *DataQueueQuery) GroupBy(field string, fields ...string) *DataQueueGroupBy {
	dqq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DataQueueGroupBy{build: dqq}
	grbuild.flds = &dqq.ctx.Fields
	grbuild.label = dataqueue.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DataID int `json:"data_id,omitempty"`
//	}
//
//	client.DataQueue.Query().
//		Select(dataqueue.FieldDataID).
//		Scan(ctx, &v)
func (dqq *DataQueueQuery) Select(fields ...string) *DataQueueSelect {
	dqq.ctx.Fields = append(dqq.ctx.Fields, fields...)
	sbuild := &DataQueueSelect{DataQueueQuery: dqq}
	sbuild.label = dataqueue.Label
	sbuild.flds, sbuild.scan = &dqq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DataQueueSelect configured with the given aggregations.
func (dqq *DataQueueQuery) Aggregate(fns ...AggregateFunc) *DataQueueSelect {
	return dqq.Select().Aggregate(fns...)
}

func (dqq *DataQueueQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range dqq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, dqq); err != nil {
				return err
			}
		}
	}
	for _, f := range dqq.ctx.Fields {
		if !dataqueue.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if dqq.path != nil {
		prev, err := dqq.path(ctx)
		if err != nil {
			return err
		}
		dqq.sql = prev
	}
	return nil
}

func (dqq *DataQueueQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DataQueue, error) {
	var (
		nodes       = []*DataQueue{}
		_spec       = dqq.querySpec()
		loadedTypes = [2]bool{
			dqq.withData != nil,
			dqq.withQueue != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DataQueue).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DataQueue{config: dqq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, dqq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := dqq.withData; query != nil {
		if err := dqq.loadData(ctx, query, nodes, nil,
			func(n *DataQueue, e *Data) { n.Edges.Data = e }); err != nil {
			return nil, err
		}
	}
	if query := dqq.withQueue; query != nil {
		if err := dqq.loadQueue(ctx, query, nodes, nil,
			func(n *DataQueue, e *Queue) { n.Edges.Queue = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (dqq *DataQueueQuery) loadData(ctx context.Context, query *DataQuery, nodes []*DataQueue, init func(*DataQueue), assign func(*DataQueue, *Data)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*DataQueue)
	for i := range nodes {
		fk := nodes[i].DataID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(data.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "data_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (dqq *DataQueueQuery) loadQueue(ctx context.Context, query *QueueQuery, nodes []*DataQueue, init func(*DataQueue), assign func(*DataQueue, *Queue)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*DataQueue)
	for i := range nodes {
		fk := nodes[i].QueueID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(queue.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "queue_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (dqq *DataQueueQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := dqq.querySpec()
	_spec.Node.Columns = dqq.ctx.Fields
	if len(dqq.ctx.Fields) > 0 {
		_spec.Unique = dqq.ctx.Unique != nil && *dqq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, dqq.driver, _spec)
}

func (dqq *DataQueueQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(dataqueue.Table, dataqueue.Columns, sqlgraph.NewFieldSpec(dataqueue.FieldID, field.TypeInt))
	_spec.From = dqq.sql
	if unique := dqq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if dqq.path != nil {
		_spec.Unique = true
	}
	if fields := dqq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dataqueue.FieldID)
		for i := range fields {
			if fields[i] != dataqueue.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if dqq.withData != nil {
			_spec.Node.AddColumnOnce(dataqueue.FieldDataID)
		}
		if dqq.withQueue != nil {
			_spec.Node.AddColumnOnce(dataqueue.FieldQueueID)
		}
	}
	if ps := dqq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := dqq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := dqq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := dqq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (dqq *DataQueueQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(dqq.driver.Dialect())
	t1 := builder.Table(dataqueue.Table)
	columns := dqq.ctx.Fields
	if len(columns) == 0 {
		columns = dataqueue.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if dqq.sql != nil {
		selector = dqq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if dqq.ctx.Unique != nil && *dqq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range dqq.predicates {
		p(selector)
	}
	for _, p := range dqq.order {
		p(selector)
	}
	if offset := dqq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := dqq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DataQueueGroupBy is the group-by builder for DataQueue entities.
type DataQueueGroupBy struct {
	selector
	build *DataQueueQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (dqgb *DataQueueGroupBy) Aggregate(fns ...AggregateFunc) *DataQueueGroupBy {
	dqgb.fns = append(dqgb.fns, fns...)
	return dqgb
}

// Scan applies the selector query and scans the result into the given value.
func (dqgb *DataQueueGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dqgb.build.ctx, ent.OpQueryGroupBy)
	if err := dqgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DataQueueQuery, *DataQueueGroupBy](ctx, dqgb.build, dqgb, dqgb.build.inters, v)
}

func (dqgb *DataQueueGroupBy) sqlScan(ctx context.Context, root *DataQueueQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(dqgb.fns))
	for _, fn := range dqgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*dqgb.flds)+len(dqgb.fns))
		for _, f := range *dqgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*dqgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dqgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DataQueueSelect is the builder for selecting fields of DataQueue entities.
type DataQueueSelect struct {
	*DataQueueQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (dqs *DataQueueSelect) Aggregate(fns ...AggregateFunc) *DataQueueSelect {
	dqs.fns = append(dqs.fns, fns...)
	return dqs
}

// Scan applies the selector query and scans the result into the given value.
func (dqs *DataQueueSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dqs.ctx, ent.OpQuerySelect)
	if err := dqs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DataQueueQuery, *DataQueueSelect](ctx, dqs.DataQueueQuery, dqs, dqs.inters, v)
}

func (dqs *DataQueueSelect) sqlScan(ctx context.Context, root *DataQueueQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(dqs.fns))
	for _, fn := range dqs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*dqs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dqs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
