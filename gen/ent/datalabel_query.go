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
	"github.com/labelworks/annoqueue/gen/ent/data"
	"github.com/labelworks/annoqueue/gen/ent/datalabel"
	"github.com/labelworks/annoqueue/gen/ent/label"
	"github.com/labelworks/annoqueue/gen/ent/predicate"
	"github.com/labelworks/annoqueue/gen/ent/profile"
)

// DataLabelQuery is the builder for querying DataLabel entities.
type DataLabelQuery struct {
	config
	ctx         *QueryContext
	order       []datalabel.OrderOption
	inters      []Interceptor
	predicates  []predicate.DataLabel
	withData    *DataQuery
	withLabel   *LabelQuery
	withProfile *ProfileQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DataLabelQuery builder.
func (dlq *DataLabelQuery) Where(ps ...predicate.DataLabel) *DataLabelQuery {
	dlq.predicates = append(dlq.predicates, ps...)
	return dlq
}

// Limit the number of records to be returned by this query.
func (dlq *DataLabelQuery) Limit(limit int) *DataLabelQuery {
	dlq.ctx.Limit = &limit
	return dlq
}

// Offset to start from.
func (dlq *DataLabelQuery) Offset(offset int) *DataLabelQuery {
	dlq.ctx.Offset = &offset
	return dlq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (dlq *DataLabelQuery) Unique(unique bool) *DataLabelQuery {
	dlq.ctx.Unique = &unique
	return dlq
}

// Order specifies how the records should be ordered.
func (dlq *DataLabelQuery) Order(o ...datalabel.OrderOption) *DataLabelQuery {
	dlq.order = append(dlq.order, o...)
	return dlq
}

// QueryData chains the current query on the "data" edge.
func (dlq *DataLabelQuery) QueryData() *DataQuery {
	query := (&DataClient{config: dlq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := dlq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := dlq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(datalabel.Table, datalabel.FieldID, selector),
			sqlgraph.To(data.Table, data.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, datalabel.DataTable, datalabel.DataColumn),
		)
		fromU = sqlgraph.SetNeighbors(dlq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLabel chains the current query on the "label" edge.
func (dlq *DataLabelQuery) QueryLabel() *LabelQuery {
	query := (&LabelClient{config: dlq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := dlq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := dlq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(datalabel.Table, datalabel.FieldID, selector),
			sqlgraph.To(label.Table, label.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, datalabel.LabelTable, datalabel.LabelColumn),
		)
		fromU = sqlgraph.SetNeighbors(dlq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryProfile chains the current query on the "profile" edge.
func (dlq *DataLabelQuery) QueryProfile() *ProfileQuery {
	query := (&ProfileClient{config: dlq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := dlq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := dlq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(datalabel.Table, datalabel.FieldID, selector),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, datalabel.ProfileTable, datalabel.ProfileColumn),
		)
		fromU = sqlgraph.SetNeighbors(dlq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DataLabel entity from the query.
// Returns a *NotFoundError when no DataLabel was found.
func (dlq *DataLabelQuery) First(ctx context.Context) (*DataLabel, error) {
	nodes, err := dlq.Limit(1).All(setContextOp(ctx, dlq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{datalabel.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (dlq *DataLabelQuery) FirstX(ctx context.Context) *DataLabel {
	node, err := dlq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DataLabel ID from the query.
// Returns a *NotFoundError when no DataLabel ID was found.
func (dlq *DataLabelQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = dlq.Limit(1).IDs(setContextOp(ctx, dlq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{datalabel.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (dlq *DataLabelQuery) FirstIDX(ctx context.Context) int {
	id, err := dlq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DataLabel entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DataLabel entity is found.
// Returns a *NotFoundError when no DataLabel entities are found.
func (dlq *DataLabelQuery) Only(ctx context.Context) (*DataLabel, error) {
	nodes, err := dlq.Limit(2).All(setContextOp(ctx, dlq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{datalabel.Label}
	default:
		return nil, &NotSingularError{datalabel.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (dlq *DataLabelQuery) OnlyX(ctx context.Context) *DataLabel {
	node, err := dlq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DataLabel ID in the query.
// Returns a *NotSingularError when more than one DataLabel ID is found.
// Returns a *NotFoundError when no entities are found.
func (dlq *DataLabelQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = dlq.Limit(2).IDs(setContextOp(ctx, dlq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{datalabel.Label}
	default:
		err = &NotSingularError{datalabel.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (dlq *DataLabelQuery) OnlyIDX(ctx context.Context) int {
	id, err := dlq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DataLabels.
func (dlq *DataLabelQuery) All(ctx context.Context) ([]*DataLabel, error) {
	ctx = setContextOp(ctx, dlq.ctx, ent.OpQueryAll)
	if err := dlq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DataLabel, *DataLabelQuery]()
	return withInterceptors[[]*DataLabel](ctx, dlq, qr, dlq.inters)
}

// AllX is like All, but panics if an error occurs.
func (dlq *DataLabelQuery) AllX(ctx context.Context) []*DataLabel {
	nodes, err := dlq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DataLabel IDs.
func (dlq *DataLabelQuery) IDs(ctx context.Context) (ids []int, err error) {
	if dlq.ctx.Unique == nil && dlq.path != nil {
		dlq.Unique(true)
	}
	ctx = setContextOp(ctx, dlq.ctx, ent.OpQueryIDs)
	if err = dlq.Select(datalabel.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (dlq *DataLabelQuery) IDsX(ctx context.Context) []int {
	ids, err := dlq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (dlq *DataLabelQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, dlq.ctx, ent.OpQueryCount)
	if err := dlq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, dlq, querierCount[*DataLabelQuery](), dlq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (dlq *DataLabelQuery) CountX(ctx context.Context) int {
	count, err := dlq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (dlq *DataLabelQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, dlq.ctx, ent.OpQueryExist)
	switch _, err := dlq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (dlq *DataLabelQuery) ExistX(ctx context.Context) bool {
	exist, err := dlq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DataLabelQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (dlq *DataLabelQuery) Clone() *DataLabelQuery {
	if dlq == nil {
		return nil
	}
	return &DataLabelQuery{
		config:      dlq.config,
		ctx:         dlq.ctx.Clone(),
		order:       append([]datalabel.OrderOption{}, dlq.order...),
		inters:      append([]Interceptor{}, dlq.inters...),
		predicates:  append([]predicate.DataLabel{}, dlq.predicates...),
		withData:    dlq.withData.Clone(),
		withLabel:   dlq.withLabel.Clone(),
		withProfile: dlq.withProfile.Clone(),
		// clone intermediate query.
		sql:  dlq.sql.Clone(),
		path: dlq.path,
	}
}

// WithData tells the query-builder to eager-load the nodes that are connected to
// the "data" edge. The optional arguments are used to configure the query builder of the edge.
func (dlq *DataLabelQuery) WithData(opts ...func(*DataQuery)) *DataLabelQuery {
	query := (&DataClient{config: dlq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	dlq.withData = query
	return dlq
}

// WithLabel tells the query-builder to eager-load the nodes that are connected to
// the "label" edge. The optional arguments are used to configure the query builder of the edge.
func (dlq *DataLabelQuery) WithLabel(opts ...func(*LabelQuery)) *DataLabelQuery {
	query := (&LabelClient{config: dlq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	dlq.withLabel = query
	return dlq
}

// WithProfile tells the query-builder to eager-load the nodes that are connected to
// the "profile" edge. The optional arguments are used to configure the query builder of the edge.
func (dlq *DataLabelQuery) WithProfile(opts ...func(*ProfileQuery)) *DataLabelQuery {
	query := (&ProfileClient{config: dlq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	dlq.withProfile = query
	return dlq
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
//	client.DataLabel.Query().
//		GroupBy(datalabel.FieldDataID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (dlq *DataLabelQuery) GroupBy(field string, fields ...string) *DataLabelGroupBy {
	dlq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DataLabelGroupBy{build: dlq}
	grbuild.flds = &dlq.ctx.Fields
	grbuild.label = datalabel.Label
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
//	client.DataLabel.Query().
//		Select(datalabel.FieldDataID).
//		Scan(ctx, &v)
func (dlq *DataLabelQuery) Select(fields ...string) *DataLabelSelect {
	dlq.ctx.Fields = append(dlq.ctx.Fields, fields...)
	sbuild := &DataLabelSelect{DataLabelQuery: dlq}
	sbuild.label = datalabel.Label
	sbuild.flds, sbuild.scan = &dlq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DataLabelSelect configured with the given aggregations.
func (dlq *DataLabelQuery) Aggregate(fns ...AggregateFunc) *DataLabelSelect {
	return dlq.Select().Aggregate(fns...)
}

func (dlq *DataLabelQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range dlq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, dlq); err != nil {
				return err
			}
		}
	}
	for _, f := range dlq.ctx.Fields {
		if !datalabel.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if dlq.path != nil {
		prev, err := dlq.path(ctx)
		if err != nil {
			return err
		}
		dlq.sql = prev
	}
	return nil
}

func (dlq *DataLabelQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DataLabel, error) {
	var (
		nodes       = []*DataLabel{}
		_spec       = dlq.querySpec()
		loadedTypes = [3]bool{
			dlq.withData != nil,
			dlq.withLabel != nil,
			dlq.withProfile != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DataLabel).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DataLabel{config: dlq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, dlq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := dlq.withData; query != nil {
		if err := dlq.loadData(ctx, query, nodes, nil,
			func(n *DataLabel, e *Data) { n.Edges.Data = e }); err != nil {
			return nil, err
		}
	}
	if query := dlq.withLabel; query != nil {
		if err := dlq.loadLabel(ctx, query, nodes, nil,
			func(n *DataLabel, e *Label) { n.Edges.Label = e }); err != nil {
			return nil, err
		}
	}
	if query := dlq.withProfile; query != nil {
		if err := dlq.loadProfile(ctx, query, nodes, nil,
			func(n *DataLabel, e *Profile) { n.Edges.Profile = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (dlq *DataLabelQuery) loadData(ctx context.Context, query *DataQuery, nodes []*DataLabel, init func(*DataLabel), assign func(*DataLabel, *Data)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*DataLabel)
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
func (dlq *DataLabelQuery) loadLabel(ctx context.Context, query *LabelQuery, nodes []*DataLabel, init func(*DataLabel), assign func(*DataLabel, *Label)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*DataLabel)
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
func (dlq *DataLabelQuery) loadProfile(ctx context.Context, query *ProfileQuery, nodes []*DataLabel, init func(*DataLabel), assign func(*DataLabel, *Profile)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*DataLabel)
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

func (dlq *DataLabelQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := dlq.querySpec()
	_spec.Node.Columns = dlq.ctx.Fields
	if len(dlq.ctx.Fields) > 0 {
		_spec.Unique = dlq.ctx.Unique != nil && *dlq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, dlq.driver, _spec)
}

func (dlq *DataLabelQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(datalabel.Table, datalabel.Columns, sqlgraph.NewFieldSpec(datalabel.FieldID, field.TypeInt))
	_spec.From = dlq.sql
	if unique := dlq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if dlq.path != nil {
		_spec.Unique = true
	}
	if fields := dlq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, datalabel.FieldID)
		for i := range fields {
			if fields[i] != datalabel.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if dlq.withData != nil {
			_spec.Node.AddColumnOnce(datalabel.FieldDataID)
		}
		if dlq.withLabel != nil {
			_spec.Node.AddColumnOnce(datalabel.FieldLabelID)
		}
		if dlq.withProfile != nil {
			_spec.Node.AddColumnOnce(datalabel.FieldProfileID)
		}
	}
	if ps := dlq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := dlq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := dlq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := dlq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (dlq *DataLabelQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(dlq.driver.Dialect())
	t1 := builder.Table(datalabel.Table)
	columns := dlq.ctx.Fields
	if len(columns) == 0 {
		columns = datalabel.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if dlq.sql != nil {
		selector = dlq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if dlq.ctx.Unique != nil && *dlq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range dlq.predicates {
		p(selector)
	}
	for _, p := range dlq.order {
		p(selector)
	}
	if offset := dlq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := dlq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DataLabelGroupBy is the group-by builder for DataLabel entities.
type DataLabelGroupBy struct {
	selector
	build *DataLabelQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (dlgb *DataLabelGroupBy) Aggregate(fns ...AggregateFunc) *DataLabelGroupBy {
	dlgb.fns = append(dlgb.fns, fns...)
	return dlgb
}

// Scan applies the selector query and scans the result into the given value.
func (dlgb *DataLabelGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dlgb.build.ctx, ent.OpQueryGroupBy)
	if err := dlgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DataLabelQuery, *DataLabelGroupBy](ctx, dlgb.build, dlgb, dlgb.build.inters, v)
}

func (dlgb *DataLabelGroupBy) sqlScan(ctx context.Context, root *DataLabelQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(dlgb.fns))
	for _, fn := range dlgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*dlgb.flds)+len(dlgb.fns))
		for _, f := range *dlgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*dlgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dlgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DataLabelSelect is the builder for selecting fields of DataLabel entities.
type DataLabelSelect struct {
	*DataLabelQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (dls *DataLabelSelect) Aggregate(fns ...AggregateFunc) *DataLabelSelect {
	dls.fns = append(dls.fns, fns...)
	return dls
}

// Scan applies the selector query and scans the result into the given value.
func (dls *DataLabelSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dls.ctx, ent.OpQuerySelect)
	if err := dls.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DataLabelQuery, *DataLabelSelect](ctx, dls.DataLabelQuery, dls, dls.inters, v)
}

func (dls *DataLabelSelect) sqlScan(ctx context.Context, root *DataLabelQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(dls.fns))
	for _, fn := range dls.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*dls.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dls.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
