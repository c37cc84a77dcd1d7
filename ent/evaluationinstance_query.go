// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationinstance"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationparticipant"
	"github.com/ameyzing09/rtr-api-sub000/ent/evaluationresponse"
	"github.com/ameyzing09/rtr-api-sub000/ent/predicate"
)

// EvaluationInstanceQuery is the builder for querying EvaluationInstance entities.
type EvaluationInstanceQuery struct {
	config
	ctx              *QueryContext
	order            []evaluationinstance.OrderOption
	inters           []Interceptor
	predicates       []predicate.EvaluationInstance
	withParticipants *EvaluationParticipantQuery
	withResponses    *EvaluationResponseQuery
	modifiers        []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the EvaluationInstanceQuery builder.
func (_q *EvaluationInstanceQuery) Where(ps ...predicate.EvaluationInstance) *EvaluationInstanceQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *EvaluationInstanceQuery) Limit(limit int) *EvaluationInstanceQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *EvaluationInstanceQuery) Offset(offset int) *EvaluationInstanceQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *EvaluationInstanceQuery) Unique(unique bool) *EvaluationInstanceQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *EvaluationInstanceQuery) Order(o ...evaluationinstance.OrderOption) *EvaluationInstanceQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryParticipants chains the current query on the "participants" edge.
func (_q *EvaluationInstanceQuery) QueryParticipants() *EvaluationParticipantQuery {
	query := (&EvaluationParticipantClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluationinstance.Table, evaluationinstance.FieldID, selector),
			sqlgraph.To(evaluationparticipant.Table, evaluationparticipant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, evaluationinstance.ParticipantsTable, evaluationinstance.ParticipantsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryResponses chains the current query on the "responses" edge.
func (_q *EvaluationInstanceQuery) QueryResponses() *EvaluationResponseQuery {
	query := (&EvaluationResponseClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluationinstance.Table, evaluationinstance.FieldID, selector),
			sqlgraph.To(evaluationresponse.Table, evaluationresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, evaluationinstance.ResponsesTable, evaluationinstance.ResponsesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first EvaluationInstance entity from the query.
// Returns a *NotFoundError when no EvaluationInstance was found.
func (_q *EvaluationInstanceQuery) First(ctx context.Context) (*EvaluationInstance, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{evaluationinstance.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *EvaluationInstanceQuery) FirstX(ctx context.Context) *EvaluationInstance {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first EvaluationInstance ID from the query.
// Returns a *NotFoundError when no EvaluationInstance ID was found.
func (_q *EvaluationInstanceQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{evaluationinstance.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *EvaluationInstanceQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single EvaluationInstance entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one EvaluationInstance entity is found.
// Returns a *NotFoundError when no EvaluationInstance entities are found.
func (_q *EvaluationInstanceQuery) Only(ctx context.Context) (*EvaluationInstance, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{evaluationinstance.Label}
	default:
		return nil, &NotSingularError{evaluationinstance.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *EvaluationInstanceQuery) OnlyX(ctx context.Context) *EvaluationInstance {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only EvaluationInstance ID in the query.
// Returns a *NotSingularError when more than one EvaluationInstance ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *EvaluationInstanceQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{evaluationinstance.Label}
	default:
		err = &NotSingularError{evaluationinstance.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *EvaluationInstanceQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of EvaluationInstances.
func (_q *EvaluationInstanceQuery) All(ctx context.Context) ([]*EvaluationInstance, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*EvaluationInstance, *EvaluationInstanceQuery]()
	return withInterceptors[[]*EvaluationInstance](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *EvaluationInstanceQuery) AllX(ctx context.Context) []*EvaluationInstance {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of EvaluationInstance IDs.
func (_q *EvaluationInstanceQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(evaluationinstance.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *EvaluationInstanceQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *EvaluationInstanceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*EvaluationInstanceQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *EvaluationInstanceQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *EvaluationInstanceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *EvaluationInstanceQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the EvaluationInstanceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *EvaluationInstanceQuery) Clone() *EvaluationInstanceQuery {
	if _q == nil {
		return nil
	}
	return &EvaluationInstanceQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]evaluationinstance.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.EvaluationInstance{}, _q.predicates...),
		withParticipants: _q.withParticipants.Clone(),
		withResponses:    _q.withResponses.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithParticipants tells the query-builder to eager-load the nodes that are connected to
// the "participants" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EvaluationInstanceQuery) WithParticipants(opts ...func(*EvaluationParticipantQuery)) *EvaluationInstanceQuery {
	query := (&EvaluationParticipantClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withParticipants = query
	return _q
}

// WithResponses tells the query-builder to eager-load the nodes that are connected to
// the "responses" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *EvaluationInstanceQuery) WithResponses(opts ...func(*EvaluationResponseQuery)) *EvaluationInstanceQuery {
	query := (&EvaluationResponseClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withResponses = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TenantID string `json:"tenant_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.EvaluationInstance.Query().
//		GroupBy(evaluationinstance.FieldTenantID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *EvaluationInstanceQuery) GroupBy(field string, fields ...string) *EvaluationInstanceGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &EvaluationInstanceGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = evaluationinstance.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TenantID string `json:"tenant_id,omitempty"`
//	}
//
//	client.EvaluationInstance.Query().
//		Select(evaluationinstance.FieldTenantID).
//		Scan(ctx, &v)
func (_q *EvaluationInstanceQuery) Select(fields ...string) *EvaluationInstanceSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &EvaluationInstanceSelect{EvaluationInstanceQuery: _q}
	sbuild.label = evaluationinstance.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a EvaluationInstanceSelect configured with the given aggregations.
func (_q *EvaluationInstanceQuery) Aggregate(fns ...AggregateFunc) *EvaluationInstanceSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *EvaluationInstanceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !evaluationinstance.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *EvaluationInstanceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*EvaluationInstance, error) {
	var (
		nodes       = []*EvaluationInstance{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withParticipants != nil,
			_q.withResponses != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*EvaluationInstance).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &EvaluationInstance{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withParticipants; query != nil {
		if err := _q.loadParticipants(ctx, query, nodes,
			func(n *EvaluationInstance) { n.Edges.Participants = []*EvaluationParticipant{} },
			func(n *EvaluationInstance, e *EvaluationParticipant) {
				n.Edges.Participants = append(n.Edges.Participants, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withResponses; query != nil {
		if err := _q.loadResponses(ctx, query, nodes,
			func(n *EvaluationInstance) { n.Edges.Responses = []*EvaluationResponse{} },
			func(n *EvaluationInstance, e *EvaluationResponse) { n.Edges.Responses = append(n.Edges.Responses, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *EvaluationInstanceQuery) loadParticipants(ctx context.Context, query *EvaluationParticipantQuery, nodes []*EvaluationInstance, init func(*EvaluationInstance), assign func(*EvaluationInstance, *EvaluationParticipant)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*EvaluationInstance)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(evaluationparticipant.FieldEvaluationID)
	}
	query.Where(predicate.EvaluationParticipant(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(evaluationinstance.ParticipantsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EvaluationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "evaluation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *EvaluationInstanceQuery) loadResponses(ctx context.Context, query *EvaluationResponseQuery, nodes []*EvaluationInstance, init func(*EvaluationInstance), assign func(*EvaluationInstance, *EvaluationResponse)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*EvaluationInstance)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(evaluationresponse.FieldEvaluationID)
	}
	query.Where(predicate.EvaluationResponse(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(evaluationinstance.ResponsesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.EvaluationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "evaluation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *EvaluationInstanceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *EvaluationInstanceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(evaluationinstance.Table, evaluationinstance.Columns, sqlgraph.NewFieldSpec(evaluationinstance.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationinstance.FieldID)
		for i := range fields {
			if fields[i] != evaluationinstance.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *EvaluationInstanceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(evaluationinstance.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = evaluationinstance.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *EvaluationInstanceQuery) ForUpdate(opts ...sql.LockOption) *EvaluationInstanceQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *EvaluationInstanceQuery) ForShare(opts ...sql.LockOption) *EvaluationInstanceQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// EvaluationInstanceGroupBy is the group-by builder for EvaluationInstance entities.
type EvaluationInstanceGroupBy struct {
	selector
	build *EvaluationInstanceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *EvaluationInstanceGroupBy) Aggregate(fns ...AggregateFunc) *EvaluationInstanceGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *EvaluationInstanceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EvaluationInstanceQuery, *EvaluationInstanceGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *EvaluationInstanceGroupBy) sqlScan(ctx context.Context, root *EvaluationInstanceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// EvaluationInstanceSelect is the builder for selecting fields of EvaluationInstance entities.
type EvaluationInstanceSelect struct {
	*EvaluationInstanceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *EvaluationInstanceSelect) Aggregate(fns ...AggregateFunc) *EvaluationInstanceSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *EvaluationInstanceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*EvaluationInstanceQuery, *EvaluationInstanceSelect](ctx, _s.EvaluationInstanceQuery, _s, _s.inters, v)
}

func (_s *EvaluationInstanceSelect) sqlScan(ctx context.Context, root *EvaluationInstanceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
