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
	"github.com/labelworks/annoqueue/gen/ent/dataprediction"
	"github.com/labelworks/annoqueue/gen/ent/label"
	"github.com/labelworks/annoqueue/gen/ent/model"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
)

// DataPredictionQuery is the builder for querying DataPrediction entities.
type DataPredictionQuery struct {
	config
	ctx        *QueryContext
	order      []dataprediction.OrderOption
	inters     []Interceptor
	predicates []predicate.DataPrediction
	withData   *DataQuery
	withModel  *ModelQuery
	withLabel  *LabelQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DataPredictionQuery builder.
func (dpq *DataPredictionQuery) Where(ps ...predicate.DataPrediction) *DataPredictionQuery {
	dpq.predicates = append(dpq.predicates, ps...)
	return dpq
}

// Limit the number of records to be returned by this query.
func (dpq *DataPredictionQuery) Limit(limit int) *DataPredictionQuery {
	dpq.ctx.Limit = &limit
	return dpq
}

// Offset to start from.
func (dpq *DataPredictionQuery) Offset(offset int) *DataPredictionQuery {
	dpq.ctx.Offset = &offset
	return dpq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (dpq *DataPredictionQuery) Unique(unique bool) *DataPredictionQuery {
	dpq.ctx.Unique = &unique
	return dpq
}

// Order specifies how the records should be ordered.
func (dpq *DataPredictionQuery) Order(o ...dataprediction.OrderOption) *DataPredictionQuery {
	dpq.order = append(dpq.order, o...)
	return dpq
}

// QueryData chains the current query on the "data" edge.
func (dpq *DataPredictionQuery) QueryData() *DataQuery {
	query := (&DataClient{config: dpq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := dpq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := dpq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(dataprediction.Table, dataprediction.FieldID, selector),
			sqlgraph.To(data.Table, data.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dataprediction.DataTable, dataprediction.DataColumn),
		)
		fromU = sqlgraph.SetNeighbors(dpq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryModel chains the current query on the "model" edge.
func (dpq *DataPredictionQuery) QueryModel() *ModelQuery {
	query := (&ModelClient{config: dpq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := dpq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := dpq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(dataprediction.Table, dataprediction.FieldID, selector),
			sqlgraph.To(model.Table, model.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dataprediction.ModelTable, dataprediction.ModelColumn),
		)
		fromU = sqlgraph.SetNeighbors(dpq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLabel chains the current query on the "label" edge.
func (dpq *DataPredictionQuery) QueryLabel() *LabelQuery {
	query := (&LabelClient{config: dpq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := dpq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := dpq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(dataprediction.Table, dataprediction.FieldID, selector),
			sqlgraph.To(label.Table, label.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dataprediction.LabelTable, dataprediction.LabelColumn),
		)
		fromU = sqlgraph.SetNeighbors(dpq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DataPrediction entity from the query.
// Returns a *NotFoundError when no DataPrediction was found.
func (dpq *DataPredictionQuery) First(ctx context.Context) (*DataPrediction, error) {
	nodes, err := dpq.Limit(1).All(setContextOp(ctx, dpq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{dataprediction.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (dpq *DataPredictionQuery) FirstX(ctx context.Context) *DataPrediction {
	node, err := dpq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DataPrediction ID from the query.
// Returns a *NotFoundError when no DataPrediction ID was found.
func (dpq *DataPredictionQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = dpq.Limit(1).IDs(setContextOp(ctx, dpq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{dataprediction.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (dpq *DataPredictionQuery) FirstIDX(ctx context.Context) int {
	id, err := dpq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DataPrediction entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DataPrediction entity is found.
// Returns a *NotFoundError when no DataPrediction entities are found.
func (dpq *DataPredictionQuery) Only(ctx context.Context) (*DataPrediction, error) {
	nodes, err := dpq.Limit(2).All(setContextOp(ctx, dpq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{dataprediction.Label}
	default:
		return nil, &NotSingularError{dataprediction.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (dpq *DataPredictionQuery) OnlyX(ctx context.Context) *DataPrediction {
	node, err := dpq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DataPrediction ID in the query.
// Returns a *NotSingularError when more than one DataPrediction ID is found.
// Returns a *NotFoundError when no entities are found.
func (dpq *DataPredictionQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = dpq.Limit(2).IDs(setContextOp(ctx, dpq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{dataprediction.Label}
	default:
		err = &NotSingularError{dataprediction.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (dpq *DataPredictionQuery) OnlyIDX(ctx context.Context) int {
	id, err := dpq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DataPredictions.
func (dpq *DataPredictionQuery) All(ctx context.Context) ([]*DataPrediction, error) {
	ctx = setContextOp(ctx, dpq.ctx, ent.OpQueryAll)
	if err := dpq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DataPrediction, *DataPredictionQuery]()
	return withInterceptors[[]*DataPrediction](ctx, dpq, qr, dpq.inters)
}

// AllX is like All, but panics if an error occurs.
func (dpq *DataPredictionQuery) AllX(ctx context.Context) []*DataPrediction {
	nodes, err := dpq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DataPrediction IDs.
func (dpq *DataPredictionQuery) IDs(ctx context.Context) (ids []int, err error) {
	if dpq.ctx.Unique == nil && dpq.path != nil {
		dpq.Unique(true)
	}
	ctx = setContextOp(ctx, dpq.ctx, ent.OpQueryIDs)
	if err = dpq.Select(dataprediction.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (dpq *DataPredictionQuery) IDsX(ctx context.Context) []int {
	ids, err := dpq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (dpq *DataPredictionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, dpq.ctx, ent.OpQueryCount)
	if err := dpq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, dpq, querierCount[*DataPredictionQuery](), dpq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (dpq *DataPredictionQuery) CountX(ctx context.Context) int {
	count, err := dpq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (dpq *DataPredictionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, dpq.ctx, ent.OpQueryExist)
	switch _, err := dpq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (dpq *DataPredictionQuery) ExistX(ctx context.Context) bool {
	exist, err := dpq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DataPredictionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (dpq *DataPredictionQuery) Clone() *DataPredictionQuery {
	if dpq == nil {
		return nil
	}
	return &DataPredictionQuery{
		config:     dpq.config,
		ctx:        dpq.ctx.Clone(),
		order:      append([]dataprediction.OrderOption{}, dpq.order...),
		inters:     append([]Interceptor{}, dpq.inters...),
		predicates: append([]predicate.DataPrediction{}, dpq.predicates...),
		withData:   dpq.withData.Clone(),
		withModel:  dpq.withModel.Clone(),
		withLabel:  dpq.withLabel.Clone(),
		// clone intermediate query.
		sql:  dpq.sql.Clone(),
		path: dpq.path,
	}
}

// WithData tells the query-builder to eager-load the nodes that are connected to
// the "data" edge. The optional arguments are used to configure the query builder of the edge.
func (dpq *DataPredictionQuery) WithData(opts ...func(*DataQuery)) *DataPredictionQuery {
	query := (&DataClient{config: dpq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	dpq.withData = query
	return dpq
}

// WithModel tells the query-builder to eager-load the nodes that are connected to
// the "model" edge. The optional arguments are used to configure the query builder of the edge.
func (dpq *DataPredictionQuery) WithModel(opts ...func(*ModelQuery)) *DataPredictionQuery {
	query := (&ModelClient{config: dpq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	dpq.withModel = query
	return dpq
}

// WithLabel tells the query-builder to eager-load the nodes that are connected to
// the "label" edge. The optional arguments are used to configure the query builder of the edge.
func (dpq *DataPredictionQuery) WithLabel(opts ...func(*LabelQuery)) *DataPredictionQuery {
	query := (&LabelClient{config: dpq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	dpq.withLabel = query
	return dpq
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
//	client.DataPrediction.Query().
//		GroupBy(dataprediction.FieldDataID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (dpq *DataPredictionQuery) GroupBy(field string, fields ...string) *DataPredictionGroupBy {
	dpq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DataPredictionGroupBy{build: dpq}
	grbuild.flds = &dpq.ctx.Fields
	grbuild.label = dataprediction.Label
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
//	client.DataPrediction.Query().
//		Select(dataprediction.FieldDataID).
//		Scan(ctx, &v)
func (dpq *DataPredictionQuery) Select(fields ...string) *DataPredictionSelect {
	dpq.ctx.Fields = append(dpq.ctx.Fields, fields...)
	sbuild := &DataPredictionSelect{DataPredictionQuery: dpq}
	sbuild.label = dataprediction.Label
	sbuild.flds, sbuild.scan = &dpq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DataPredictionSelect configured with the given aggregations.
func (dpq *DataPredictionQuery) Aggregate(fns ...AggregateFunc) *DataPredictionSelect {
	return dpq.Select().Aggregate(fns...)
}

func (dpq *DataPredictionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range dpq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, dpq); err != nil {
				return err
			}
		}
	}
	for _, f := range dpq.ctx.Fields {
		if !dataprediction.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if dpq.path != nil {
		prev, err := dpq.path(ctx)
		if err != nil {
			return err
		}
		dpq.sql = prev
	}
	return nil
}

func (dpq *DataPredictionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DataPrediction, error) {
	var (
		nodes       = []*DataPrediction{}
		_spec       = dpq.querySpec()
		loadedTypes = [3]bool{
			dpq.withData != nil,
			dpq.withModel != nil,
			dpq.withLabel != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DataPrediction).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DataPrediction{config: dpq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, dpq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := dpq.withData; query != nil {
		if err := dpq.loadData(ctx, query, nodes, nil,
			func(n *DataPrediction, e *Data) { n.Edges.Data = e }); err != nil {
			return nil, err
		}
	}
	if query := dpq.withModel; query != nil {
		if err := dpq.loadModel(ctx, query, nodes, nil,
			func(n *DataPrediction, e *Model) { n.Edges.Model = e }); err != nil {
			return nil, err
		}
	}
	if query := dpq.withLabel; query != nil {
		if err := dpq.loadLabel(ctx, query, nodes, nil,
			func(n *DataPrediction, e *Label) { n.Edges.Label = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (dpq *DataPredictionQuery) loadData(ctx context.Context, query *DataQuery, nodes []*DataPrediction, init func(*DataPrediction), assign func(*DataPrediction, *Data)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*DataPrediction)
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
func (dpq *DataPredictionQuery) loadModel(ctx context.Context, query *ModelQuery, nodes []*DataPrediction, init func(*DataPrediction), assign func(*DataPrediction, *Model)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*DataPrediction)
	for i := range nodes {
		fk := nodes[i].ModelID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(model.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "model_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (dpq *DataPredictionQuery) loadLabel(ctx context.Context, query *LabelQuery, nodes []*DataPrediction, init func(*DataPrediction), assign func(*DataPrediction, *Label)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*DataPrediction)
	for i := range nodes {
		fk := nodes[i].LabelID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(label.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "label_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (dpq *DataPredictionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := dpq.querySpec()
	_spec.Node.Columns = dpq.ctx.Fields
	if len(dpq.ctx.Fields) > 0 {
		_spec.Unique = dpq.ctx.Unique != nil && *dpq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, dpq.driver, _spec)
}

func (dpq *DataPredictionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(dataprediction.Table, dataprediction.Columns, sqlgraph.NewFieldSpec(dataprediction.FieldID, field.TypeInt))
	_spec.From = dpq.sql
	if unique := dpq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if dpq.path != nil {
		_spec.Unique = true
	}
	if fields := dpq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dataprediction.FieldID)
		for i := range fields {
			if fields[i] != dataprediction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if dpq.withData != nil {
			_spec.Node.AddColumnOnce(dataprediction.FieldDataID)
		}
		if dpq.withModel != nil {
			_spec.Node.AddColumnOnce(dataprediction.FieldModelID)
		}
		if dpq.withLabel != nil {
			_spec.Node.AddColumnOnce(dataprediction.FieldLabelID)
		}
	}
	if ps := dpq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := dpq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := dpq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := dpq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (dpq *DataPredictionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(dpq.driver.Dialect())
	t1 := builder.Table(dataprediction.Table)
	columns := dpq.ctx.Fields
	if len(columns) == 0 {
		columns = dataprediction.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if dpq.sql != nil {
		selector = dpq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if dpq.ctx.Unique != nil && *dpq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range dpq.predicates {
		p(selector)
	}
	for _, p := range dpq.order {
		p(selector)
	}
	if offset := dpq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := dpq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DataPredictionGroupBy is the group-by builder for DataPrediction entities.
type DataPredictionGroupBy struct {
	selector
	build *DataPredictionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (dpgb *DataPredictionGroupBy) Aggregate(fns ...AggregateFunc) *DataPredictionGroupBy {
	dpgb.fns = append(dpgb.fns, fns...)
	return dpgb
}

// Scan applies the selector query and scans the result into the given value.
func (dpgb *DataPredictionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dpgb.build.ctx, ent.OpQueryGroupBy)
	if err := dpgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DataPredictionQuery, *DataPredictionGroupBy](ctx, dpgb.build, dpgb, dpgb.build.inters, v)
}

func (dpgb *DataPredictionGroupBy) sqlScan(ctx context.Context, root *DataPredictionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(dpgb.fns))
	for _, fn := range dpgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*dpgb.flds)+len(dpgb.fns))
		for _, f := range *dpgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*dpgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dpgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DataPredictionSelect is the builder for selecting fields of DataPrediction entities.
type DataPredictionSelect struct {
	*DataPredictionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (dps *DataPredictionSelect) Aggregate(fns ...AggregateFunc) *DataPredictionSelect {
	dps.fns = append(dps.fns, fns...)
	return dps
}

// Scan applies the selector query and scans the result into the given value.
func (dps *DataPredictionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dps.ctx, ent.OpQuerySelect)
	if err := dps.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DataPredictionQuery, *DataPredictionSelect](ctx, dps.DataPredictionQuery, dps, dps.inters, v)
}

func (dps *DataPredictionSelect) sqlScan(ctx context.Context, root *DataPredictionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(dps.fns))
	for _, fn := range dps.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*dps.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dps.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
