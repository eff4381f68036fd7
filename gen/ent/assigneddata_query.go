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
	"github.com/google/uuid"
	"github.com/labelworks/annoqueue/gen/ent/assigneddata"
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
	"github.com/labelworks/annoqueue/gen/ent/profile"
	"github.com/labelworks/annoqueue/gen/ent/queue"
)

// AssignedDataQuery is the builder for querying AssignedData entities.
type AssignedDataQuery struct {
	config
	ctx         *QueryContext
	order       []assigneddata.OrderOption
	inters      []Interceptor
	predicates  []predicate.AssignedData
	withData    *DataQuery
	withProfile *ProfileQuery
	withQueue   *QueueQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AssignedDataQuery builder.
func (adq *AssignedDataQuery) Where(ps ...predicate.AssignedData) *AssignedDataQuery {
	adq.predicates = append(adq.predicates, ps...)
	return adq
}

// Limit the number of records to be returned by this query.
func (adq *AssignedDataQuery) Limit(limit int) *AssignedDataQuery {
	adq.ctx.Limit = &limit
	return adq
}

// Offset to start from.
func (adq *AssignedDataQuery) Offset(offset int) *AssignedDataQuery {
	adq.ctx.Offset = &offset
	return adq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (adq *AssignedDataQuery) Unique(unique bool) *AssignedDataQuery {
	adq.ctx.Unique = &unique
	return adq
}

// Order specifies how the records should be ordered.
func (adq *AssignedDataQuery) Order(o ...assigneddata.OrderOption) *AssignedDataQuery {
	adq.order = append(adq.order, o...)
	return adq
}

// QueryData chains the current query on the "data" edge.
func (adq *AssignedDataQuery) QueryData() *DataQuery {
	query := (&DataClient{config: adq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := adq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := adq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(assigneddata.Table, assigneddata.FieldID, selector),
			sqlgraph.To(data.Table, data.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assigneddata.DataTable, assigneddata.DataColumn),
		)
		fromU = sqlgraph.SetNeighbors(adq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryProfile chains the current query on the "profile" edge.
func (adq *AssignedDataQuery) QueryProfile() *ProfileQuery {
	query := (&ProfileClient{config: adq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := adq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := adq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(assigneddata.Table, assigneddata.FieldID, selector),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assigneddata.ProfileTable, assigneddata.ProfileColumn),
		)
		fromU = sqlgraph.SetNeighbors(adq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryQueue chains the current query on the "queue" edge.
func (adq *AssignedDataQuery) QueryQueue() *QueueQuery {
	query := (&QueueClient{config: adq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := adq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := adq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(assigneddata.Table, assigneddata.FieldID, selector),
			sqlgraph.To(queue.Table, queue.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assigneddata.QueueTable, assigneddata.QueueColumn),
		)
		fromU = sqlgraph.SetNeighbors(adq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AssignedData entity from the query.
// Returns a *NotFoundError when no AssignedData was found.
func (adq *AssignedDataQuery) First(ctx context.Context) (*AssignedData, error) {
	nodes, err := adq.Limit(1).All(setContextOp(ctx, adq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{assigneddata.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (adq *AssignedDataQuery) FirstX(ctx context.Context) *AssignedData {
	node, err := adq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AssignedData ID from the query.
// Returns a *NotFoundError when no AssignedData ID was found.
func (adq *AssignedDataQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = adq.Limit(1).IDs(setContextOp(ctx, adq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{assigneddata.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (adq *AssignedDataQuery) FirstIDX(ctx context.Context) int {
	id, err := adq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AssignedData entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AssignedData entity is found.
// Returns a *NotFoundError when no AssignedData entities are found.
func (adq *AssignedDataQuery) Only(ctx context.Context) (*AssignedData, error) {
	nodes, err := adq.Limit(2).All(setContextOp(ctx, adq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{assigneddata.Label}
	default:
		return nil, &NotSingularError{assigneddata.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (adq *AssignedDataQuery) OnlyX(ctx context.Context) *AssignedData {
	node, err := adq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AssignedData ID in the query.
// Returns a *NotSingularError when more than one AssignedData ID is found.
// Returns a *NotFoundError when no entities are found.
func (adq *AssignedDataQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = adq.Limit(2).IDs(setContextOp(ctx, adq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{assigneddata.Label}
	default:
		err = &NotSingularError{assigneddata.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (adq *AssignedDataQuery) OnlyIDX(ctx context.Context) int {
	id, err := adq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AssignedDataSlice.
func (adq *AssignedDataQuery) All(ctx context.Context) ([]*AssignedData, error) {
	ctx = setContextOp(ctx, adq.ctx, ent.OpQueryAll)
	if err := adq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AssignedData, *AssignedDataQuery]()
	return withInterceptors[[]*AssignedData](ctx, adq, qr, adq.inters)
}

// AllX is like All, but panics if an error occurs.
func (adq *AssignedDataQuery) AllX(ctx context.Context) []*AssignedData {
	nodes, err := adq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AssignedData IDs.
func (adq *AssignedDataQuery) IDs(ctx context.Context) (ids []int, err error) {
	if adq.ctx.Unique == nil && adq.path != nil {
		adq.Unique(true)
	}
	ctx = setContextOp(ctx, adq.ctx, ent.OpQueryIDs)
	if err = adq.Select(assigneddata.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (adq *AssignedDataQuery) IDsX(ctx context.Context) []int {
	ids, err := adq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (adq *AssignedDataQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, adq.ctx, ent.OpQueryCount)
	if err := adq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, adq, querierCount[*AssignedDataQuery](), adq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (adq *AssignedDataQuery) CountX(ctx context.Context) int {
	count, err := adq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (adq *AssignedDataQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, adq.ctx, ent.OpQueryExist)
	switch _, err := adq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (adq *AssignedDataQuery) ExistX(ctx context.Context) bool {
	exist, err := adq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AssignedDataQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (adq *AssignedDataQuery) Clone() *AssignedDataQuery {
	if adq == nil {
		return nil
	}
	return &AssignedDataQuery{
		config:      adq.config,
		ctx:         adq.ctx.Clone(),
		order:       append([]assigneddata.OrderOption{}, adq.order...),
		inters:      append([]Interceptor{}, adq.inters...),
		predicates:  append([]predicate.AssignedData{}, adq.predicates...),
		withData:    adq.withData.Clone(),
		withProfile: adq.withProfile.Clone(),
		withQueue:   adq.withQueue.Clone(),
		// clone intermediate query.
		sql:  adq.sql.Clone(),
		path: adq.path,
	}
}

// WithData tells the query-builder to eager-load the nodes that are connected to
// the "data" edge. The optional arguments are used to configure the query builder of the edge.
func (adq *AssignedDataQuery) WithData(opts ...func(*DataQuery)) *AssignedDataQuery {
	query := (&DataClient{config: adq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	adq.withData = query
	return adq
}

// WithProfile tells the query-builder to eager-load the nodes that are connected to
// the "profile" edge. The optional arguments are used to configure the query builder of the edge.
func (adq *AssignedDataQuery) WithProfile(opts ...func(*ProfileQuery)) *AssignedDataQuery {
	query := (&ProfileClient{config: adq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	adq.withProfile = query
	return adq
}

// WithQueue tells the query-builder to eager-load the nodes that are connected to
// the "queue" edge. The optional arguments are used to configure the query builder of the edge.
func (adq *AssignedDataQuery) WithQueue(opts ...func(*QueueQuery)) *AssignedDataQuery {
	query := (&QueueClient{config: adq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	adq.withQueue = query
	return adq
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
//	client.AssignedData.Query().
//		GroupBy(assigneddata.FieldDataID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (adq *AssignedDataQuery) GroupBy(field string, fields ...string) *AssignedDataGroupBy {
	adq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AssignedDataGroupBy{build: adq}
	grbuild.flds = &adq.ctx.Fields
	grbuild.label = assigneddata.Label
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
//	client.AssignedData.Query().
//		Select(assigneddata.FieldDataID).
//		Scan(ctx, &v)
func (adq *AssignedDataQuery) Select(fields ...string) *AssignedDataSelect {
	adq.ctx.Fields = append(adq.ctx.Fields, fields...)
	sbuild := &AssignedDataSelect{AssignedDataQuery: adq}
	sbuild.label = assigneddata.Label
	sbuild.flds, sbuild.scan = &adq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AssignedDataSelect configured with the given aggregations.
func (adq *AssignedDataQuery) Aggregate(fns ...AggregateFunc) *AssignedDataSelect {
	return adq.Select().Aggregate(fns...)
}

func (adq *AssignedDataQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range adq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, adq); err != nil {
				return err
			}
		}
	}
	for _, f := range adq.ctx.Fields {
		if !assigneddata.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if adq.path != nil {
		prev, err := adq.path(ctx)
		if err != nil {
			return err
		}
		adq.sql = prev
	}
	return nil
}

func (adq *AssignedDataQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AssignedData, error) {
	var (
		nodes       = []*AssignedData{}
		_spec       = adq.querySpec()
		loadedTypes = [3]bool{
			adq.withData != nil,
			adq.withProfile != nil,
			adq.withQueue != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AssignedData).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AssignedData{config: adq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, adq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := adq.withData; query != nil {
		if err := adq.loadData(ctx, query, nodes, nil,
			func(n *AssignedData, e *Data) { n.Edges.Data = e }); err != nil {
			return nil, err
		}
	}
	if query := adq.withProfile; query != nil {
		if err := adq.loadProfile(ctx, query, nodes, nil,
			func(n *AssignedData, e *Profile) { n.Edges.Profile = e }); err != nil {
			return nil, err
		}
	}
	if query := adq.withQueue; query != nil {
		if err := adq.loadQueue(ctx, query, nodes, nil,
			func(n *AssignedData, e *Queue) { n.Edges.Queue = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (adq *AssignedDataQuery) loadData(ctx context.Context, query *DataQuery, nodes []*AssignedData, init func(*AssignedData), assign func(*AssignedData, *Data)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*AssignedData)
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
func (adq *AssignedDataQuery) loadProfile(ctx context.Context, query *ProfileQuery, nodes []*AssignedData, init func(*AssignedData), assign func(*AssignedData, *Profile)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*AssignedData)
	for i := range nodes {
		fk := nodes[i].ProfileID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(profile.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "profile_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (adq *AssignedDataQuery) loadQueue(ctx context.Context, query *QueueQuery, nodes []*AssignedData, init func(*AssignedData), assign func(*AssignedData, *Queue)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*AssignedData)
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

func (adq *AssignedDataQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := adq.querySpec()
	_spec.Node.Columns = adq.ctx.Fields
	if len(adq.ctx.Fields) > 0 {
		_spec.Unique = adq.ctx.Unique != nil && *adq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, adq.driver, _spec)
}

func (adq *AssignedDataQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(assigneddata.Table, assigneddata.Columns, sqlgraph.NewFieldSpec(assigneddata.FieldID, field.TypeInt))
	_spec.From = adq.sql
	if unique := adq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if adq.path != nil {
		_spec.Unique = true
	}
	if fields := adq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assigneddata.FieldID)
		for i := range fields {
			if fields[i] != assigneddata.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if adq.withData != nil {
			_spec.Node.AddColumnOnce(assigneddata.FieldDataID)
		}
		if adq.withProfile != nil {
			_spec.Node.AddColumnOnce(assigneddata.FieldProfileID)
		}
		if adq.withQueue != nil {
			_spec.Node.AddColumnOnce(assigneddata.FieldQueueID)
		}
	}
	if ps := adq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := adq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := adq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := adq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (adq *AssignedDataQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(adq.driver.Dialect())
	t1 := builder.Table(assigneddata.Table)
	columns := adq.ctx.Fields
	if len(columns) == 0 {
		columns = assigneddata.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if adq.sql != nil {
		selector = adq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if adq.ctx.Unique != nil && *adq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range adq.predicates {
		p(selector)
	}
	for _, p := range adq.order {
		p(selector)
	}
	if offset := adq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := adq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AssignedDataGroupBy is the group-by builder for AssignedData entities.
type AssignedDataGroupBy struct {
	selector
	build *AssignedDataQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (adgb *AssignedDataGroupBy) Aggregate(fns ...AggregateFunc) *AssignedDataGroupBy {
	adgb.fns = append(adgb.fns, fns...)
	return adgb
}

// Scan applies the selector query and scans the result into the given value.
func (adgb *AssignedDataGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, adgb.build.ctx, ent.OpQueryGroupBy)
	if err := adgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AssignedDataQuery, *AssignedDataGroupBy](ctx, adgb.build, adgb, adgb.build.inters, v)
}

func (adgb *AssignedDataGroupBy) sqlScan(ctx context.Context, root *AssignedDataQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(adgb.fns))
	for _, fn := range adgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*adgb.flds)+len(adgb.fns))
		for _, f := range *adgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*adgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := adgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AssignedDataSelect is the builder for selecting fields of AssignedData entities.
type AssignedDataSelect struct {
	*AssignedDataQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ads *AssignedDataSelect) Aggregate(fns ...AggregateFunc) *AssignedDataSelect {
	ads.fns = append(ads.fns, fns...)
	return ads
}

// Scan applies the selector query and scans the result into the given value.
func (ads *AssignedDataSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ads.ctx, ent.OpQuerySelect)
	if err := ads.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AssignedDataQuery, *AssignedDataSelect](ctx, ads.AssignedDataQuery, ads, ads.inters, v)
}

func (ads *AssignedDataSelect) sqlScan(ctx context.Context, root *AssignedDataQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ads.fns))
	for _, fn := range ads.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ads.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ads.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
