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
	"github.com/labelworks/annoqueue/gen/ent/datauncertainty"
	"github.com/labelworks/annoqueue/gen/ent/model"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
)

// DataUncertaintyQuery is the builder for querying DataUncertainty entities.
type DataUncertaintyQuery struct {
	config
	ctx        *QueryContext
	order      []datauncertainty.OrderOption
	inters     []Interceptor
	predicates []predicate.DataUncertainty
	withData   *DataQuery
	withModel  *ModelQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DataUncertaintyQuery builder.
func (duq *DataUncertaintyQuery) Where(ps ...predicate.DataUncertainty) *DataUncertaintyQuery {
	duq.predicates = append(duq.predicates, ps...)
	return duq
}

// Limit the number of records to be returned by this query.
func (duq *DataUncertaintyQuery) Limit(limit int) *DataUncertaintyQuery {
	duq.ctx.Limit = &limit
	return duq
}

// Offset to start from.
func (duq *DataUncertaintyQuery) Offset(offset int) *DataUncertaintyQuery {
	duq.ctx.Offset = &offset
	return duq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (duq *DataUncertaintyQuery) Unique(unique bool) *DataUncertaintyQuery {
	duq.ctx.Unique = &unique
	return duq
}

// Order specifies how the records should be ordered.
func (duq *DataUncertaintyQuery) Order(o ...datauncertainty.OrderOption) *DataUncertaintyQuery {
	duq.order = append(duq.order, o...)
	return duq
}

// QueryData chains the current query on the "data" edge.
func (duq *DataUncertaintyQuery) QueryData() *DataQuery {
	query := (&DataClient{config: duq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := duq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := duq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(datauncertainty.Table, datauncertainty.FieldID, selector),
			sqlgraph.To(data.Table, data.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, datauncertainty.DataTable, datauncertainty.DataColumn),
		)
		fromU = sqlgraph.SetNeighbors(duq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryModel chains the current query on the "model" edge.
func (duq *DataUncertaintyQuery) QueryModel() *ModelQuery {
	query := (&ModelClient{config: duq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := duq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := duq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(datauncertainty.Table, datauncertainty.FieldID, selector),
			sqlgraph.To(model.Table, model.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, datauncertainty.ModelTable, datauncertainty.ModelColumn),
		)
		fromU = sqlgraph.SetNeighbors(duq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DataUncertainty entity from the query.
// Returns a *NotFoundError when no DataUncertainty was found.
func (duq *DataUncertaintyQuery) First(ctx context.Context) (*DataUncertainty, error) {
	nodes, err := duq.Limit(1).All(setContextOp(ctx, duq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{datauncertainty.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (duq *DataUncertaintyQuery) FirstX(ctx context.Context) *DataUncertainty {
	node, err := duq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DataUncertainty ID from the query.
// Returns a *NotFoundError when no DataUncertainty ID was found.
func (duq *DataUncertaintyQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = duq.Limit(1).IDs(setContextOp(ctx, duq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{datauncertainty.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (duq *DataUncertaintyQuery) FirstIDX(ctx context.Context) int {
	id, err := duq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DataUncertainty entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DataUncertainty entity is found.
// Returns a *NotFoundError when no DataUncertainty entities are found.
func (duq *DataUncertaintyQuery) Only(ctx context.Context) (*DataUncertainty, error) {
	nodes, err := duq.Limit(2).All(setContextOp(ctx, duq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{datauncertainty.Label}
	default:
		return nil, &NotSingularError{datauncertainty.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (duq *DataUncertaintyQuery) OnlyX(ctx context.Context) *DataUncertainty {
	node, err := duq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DataUncertainty ID in the query.
// Returns a *NotSingularError when more than one DataUncertainty ID is found.
// Returns a *NotFoundError when no entities are found.
func (duq *DataUncertaintyQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = duq.Limit(2).IDs(setContextOp(ctx, duq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{datauncertainty.Label}
	default:
		err = &NotSingularError{datauncertainty.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (duq *DataUncertaintyQuery) OnlyIDX(ctx context.Context) int {
	id, err := duq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DataUncertainties.
func (duq *DataUncertaintyQuery) All(ctx context.Context) ([]*DataUncertainty, error) {
	ctx = setContextOp(ctx, duq.ctx, ent.OpQueryAll)
	if err := duq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DataUncertainty, *DataUncertaintyQuery]()
	return withInterceptors[[]*DataUncertainty](ctx, duq, qr, duq.inters)
}

// AllX is like All, but panics if an error occurs.
func (duq *DataUncertaintyQuery) AllX(ctx context.Context) []*DataUncertainty {
	nodes, err := duq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DataUncertainty IDs.
func (duq *DataUncertaintyQuery) IDs(ctx context.Context) (ids []int, err error) {
	if duq.ctx.Unique == nil && duq.path != nil {
		duq.Unique(true)
	}
	ctx = setContextOp(ctx, duq.ctx, ent.OpQueryIDs)
	if err = duq.Select(datauncertainty.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (duq *DataUncertaintyQuery) IDsX(ctx context.Context) []int {
	ids, err := duq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (duq *DataUncertaintyQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, duq.ctx, ent.OpQueryCount)
	if err := duq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, duq, querierCount[*DataUncertaintyQuery](), duq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (duq *DataUncertaintyQuery) CountX(ctx context.Context) int {
	count, err := duq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (duq *DataUncertaintyQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, duq.ctx, ent.OpQueryExist)
	switch _, err := duq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (duq *DataUncertaintyQuery) ExistX(ctx context.Context) bool {
	exist, err := duq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DataUncertaintyQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (duq *DataUncertaintyQuery) Clone() *DataUncertaintyQuery {
	if duq == nil {
		return nil
	}
	return &DataUncertaintyQuery{
		config:     duq.config,
		ctx:        duq.ctx.Clone(),
		order:      append([]datauncertainty.OrderOption{}, duq.order...),
		inters:     append([]Interceptor{}, duq.inters...),
		predicates: append([]predicate.DataUncertainty{}, duq.predicates...),
		withData:   duq.withData.Clone(),
		withModel:  duq.withModel.Clone(),
		// clone intermediate query.
		sql:  duq.sql.Clone(),
		path: duq.path,
	}
}

// WithData tells the query-builder to eager-load the nodes that are connected to
// the "data" edge. The optional arguments are used to configure the query builder of the edge.
func (duq *DataUncertaintyQuery) WithData(opts ...func(*DataQuery)) *DataUncertaintyQuery {
	query := (&DataClient{config: duq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	duq.withData = query
	return duq
}

// WithModel tells the query-builder to eager-load the nodes that are connected to
// the "model" edge. The optional arguments are used to configure the query builder of the edge.
func (duq *DataUncertaintyQuery) WithModel(opts ...func(*ModelQuery)) *DataUncertaintyQuery {
	query := (&ModelClient{config: duq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	duq.withModel = query
	return duq
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
//	client.DataUncertainty.Query().
//		GroupBy(datauncertainty.FieldDataID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (duq *DataUncertaintyQuery) GroupBy(field string, fields ...string) *DataUncertaintyGroupBy {
	duq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DataUncertaintyGroupBy{build: duq}
	grbuild.flds = &duq.ctx.Fields
	grbuild.label = datauncertainty.Label
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
//	client.DataUncertainty.Query().
//		Select(datauncertainty.FieldDataID).
//		Scan(ctx, &v)
func (duq *DataUncertaintyQuery) Select(fields ...string) *DataUncertaintySelect {
	duq.ctx.Fields = append(duq.ctx.Fields, fields...)
	sbuild := &DataUncertaintySelect{DataUncertaintyQuery: duq}
	sbuild.label = datauncertainty.Label
	sbuild.flds, sbuild.scan = &duq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DataUncertaintySelect configured with the given aggregations.
func (duq *DataUncertaintyQuery) Aggregate(fns ...AggregateFunc) *DataUncertaintySelect {
	return duq.Select().Aggregate(fns...)
}

func (duq *DataUncertaintyQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range duq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, duq); err != nil {
				return err
			}
		}
	}
	for _, f := range duq.ctx.Fields {
		if !datauncertainty.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if duq.path != nil {
		prev, err := duq.path(ctx)
		if err != nil {
			return err
		}
		duq.sql = prev
	}
	return nil
}

func (duq *DataUncertaintyQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DataUncertainty, error) {
	var (
		nodes       = []*DataUncertainty{}
		_spec       = duq.querySpec()
		loadedTypes = [2]bool{
			duq.withData != nil,
			duq.withModel != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DataUncertainty).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DataUncertainty{config: duq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, duq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := duq.withData; query != nil {
		if err := duq.loadData(ctx, query, nodes, nil,
			func(n *DataUncertainty, e *Data) { n.Edges.Data = e }); err != nil {
			return nil, err
		}
	}
	if query := duq.withModel; query != nil {
		if err := duq.loadModel(ctx, query, nodes, nil,
			func(n *DataUncertainty, e *Model) { n.Edges.Model = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (duq *DataUncertaintyQuery) loadData(ctx context.Context, query *DataQuery, nodes []*DataUncertainty, init func(*DataUncertainty), assign func(*DataUncertainty, *Data)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*DataUncertainty)
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
func (duq *DataUncertaintyQuery) loadModel(ctx context.Context, query *ModelQuery, nodes []*DataUncertainty, init func(*DataUncertainty), assign func(*DataUncertainty, *Model)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*DataUncertainty)
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

func (duq *DataUncertaintyQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := duq.querySpec()
	_spec.Node.Columns = duq.ctx.Fields
	if len(duq.ctx.Fields) > 0 {
		_spec.Unique = duq.ctx.Unique != nil && *duq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, duq.driver, _spec)
}

func (duq *DataUncertaintyQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(datauncertainty.Table, datauncertainty.Columns, sqlgraph.NewFieldSpec(datauncertainty.FieldID, field.TypeInt))
	_spec.From = duq.sql
	if unique := duq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if duq.path != nil {
		_spec.Unique = true
	}
	if fields := duq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, datauncertainty.FieldID)
		for i := range fields {
			if fields[i] != datauncertainty.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if duq.withData != nil {
			_spec.Node.AddColumnOnce(datauncertainty.FieldDataID)
		}
		if duq.withModel != nil {
			_spec.Node.AddColumnOnce(datauncertainty.FieldModelID)
		}
	}
	if ps := duq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := duq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := duq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := duq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (duq *DataUncertaintyQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(duq.driver.Dialect())
	t1 := builder.Table(datauncertainty.Table)
	columns := duq.ctx.Fields
	if len(columns) == 0 {
		columns = datauncertainty.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if duq.sql != nil {
		selector = duq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if duq.ctx.Unique != nil && *duq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range duq.predicates {
		p(selector)
	}
	for _, p := range duq.order {
		p(selector)
	}
	if offset := duq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := duq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DataUncertaintyGroupBy is the group-by builder for DataUncertainty entities.
type DataUncertaintyGroupBy struct {
	selector
	build *DataUncertaintyQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (dugb *DataUncertaintyGroupBy) Aggregate(fns ...AggregateFunc) *DataUncertaintyGroupBy {
	dugb.fns = append(dugb.fns, fns...)
	return dugb
}

// Scan applies the selector query and scans the result into the given value.
func (dugb *DataUncertaintyGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dugb.build.ctx, ent.OpQueryGroupBy)
	if err := dugb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DataUncertaintyQuery, *DataUncertaintyGroupBy](ctx, dugb.build, dugb, dugb.build.inters, v)
}

func (dugb *DataUncertaintyGroupBy) sqlScan(ctx context.Context, root *DataUncertaintyQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(dugb.fns))
	for _, fn := range dugb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*dugb.flds)+len(dugb.fns))
		for _, f := range *dugb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*dugb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dugb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DataUncertaintySelect is the builder for selecting fields of DataUncertainty entities.
type DataUncertaintySelect struct {
	*DataUncertaintyQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (dus *DataUncertaintySelect) Aggregate(fns ...AggregateFunc) *DataUncertaintySelect {
	dus.fns = append(dus.fns, fns...)
	return dus
}

// Scan applies the selector query and scans the result into the given value.
func (dus *DataUncertaintySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dus.ctx, ent.OpQuerySelect)
	if err := dus.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DataUncertaintyQuery, *DataUncertaintySelect](ctx, dus.DataUncertaintyQuery, dus, dus.inters, v)
}

func (dus *DataUncertaintySelect) sqlScan(ctx context.Context, root *DataUncertaintyQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(dus.fns))
	for _, fn := range dus.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*dus.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dus.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
