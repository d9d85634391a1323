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
	"github.com/payloop/billing/ent/paymentcredentials"
	"github.com/payloop/billing/ent/predicate"
	"github.com/payloop/billing/ent/user"
)

// PaymentCredentialsQuery is the builder for querying PaymentCredentials entities.
type PaymentCredentialsQuery struct {
	config
	ctx        *QueryContext
	order      []paymentcredentials.OrderOption
	inters     []Interceptor
	predicates []predicate.PaymentCredentials
	withOwner  *UserQuery
	withFKs    bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PaymentCredentialsQuery builder.
func (pcq *PaymentCredentialsQuery) Where(ps ...predicate.PaymentCredentials) *PaymentCredentialsQuery {
	pcq.predicates = append(pcq.predicates, ps...)
	return pcq
}

// Limit the number of records to be returned by this query.
func (pcq *PaymentCredentialsQuery) Limit(limit int) *PaymentCredentialsQuery {
	pcq.ctx.Limit = &limit
	return pcq
}

// Offset to start from.
func (pcq *PaymentCredentialsQuery) Offset(offset int) *PaymentCredentialsQuery {
	pcq.ctx.Offset = &offset
	return pcq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (pcq *PaymentCredentialsQuery) Unique(unique bool) *PaymentCredentialsQuery {
	pcq.ctx.Unique = &unique
	return pcq
}

// Order specifies how the records should be ordered.
func (pcq *PaymentCredentialsQuery) Order(o ...paymentcredentials.OrderOption) *PaymentCredentialsQuery {
	pcq.order = append(pcq.order, o...)
	return pcq
}

// QueryOwner chains the current query on the "owner" edge.
func (pcq *PaymentCredentialsQuery) QueryOwner() *UserQuery {
	query := (&UserClient{config: pcq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := pcq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := pcq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(paymentcredentials.Table, paymentcredentials.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, paymentcredentials.OwnerTable, paymentcredentials.OwnerColumn),
		)
		fromU = sqlgraph.SetNeighbors(pcq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PaymentCredentials entity from the query.
// Returns a *NotFoundError when no PaymentCredentials was found.
func (pcq *PaymentCredentialsQuery) First(ctx context.Context) (*PaymentCredentials, error) {
	nodes, err := pcq.Limit(1).All(setContextOp(ctx, pcq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{paymentcredentials.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (pcq *PaymentCredentialsQuery) FirstX(ctx context.Context) *PaymentCredentials {
	node, err := pcq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PaymentCredentials ID from the query.
// Returns a *NotFoundError when no PaymentCredentials ID was found.
func (pcq *PaymentCredentialsQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = pcq.Limit(1).IDs(setContextOp(ctx, pcq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{paymentcredentials.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (pcq *PaymentCredentialsQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := pcq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PaymentCredentials entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PaymentCredentials entity is found.
// Returns a *NotFoundError when no PaymentCredentials entities are found.
func (pcq *PaymentCredentialsQuery) Only(ctx context.Context) (*PaymentCredentials, error) {
	nodes, err := pcq.Limit(2).All(setContextOp(ctx, pcq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{paymentcredentials.Label}
	default:
		return nil, &NotSingularError{paymentcredentials.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (pcq *PaymentCredentialsQuery) OnlyX(ctx context.Context) *PaymentCredentials {
	node, err := pcq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PaymentCredentials ID in the query.
// Returns a *NotSingularError when more than one PaymentCredentials ID is found.
// Returns a *NotFoundError when no entities are found.
func (pcq *PaymentCredentialsQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = pcq.Limit(2).IDs(setContextOp(ctx, pcq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{paymentcredentials.Label}
	default:
		err = &NotSingularError{paymentcredentials.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (pcq *PaymentCredentialsQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := pcq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PaymentCredentialsSlice.
func (pcq *PaymentCredentialsQuery) All(ctx context.Context) ([]*PaymentCredentials, error) {
	ctx = setContextOp(ctx, pcq.ctx, ent.OpQueryAll)
	if err := pcq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PaymentCredentials, *PaymentCredentialsQuery]()
	return withInterceptors[[]*PaymentCredentials](ctx, pcq, qr, pcq.inters)
}

// AllX is like All, but panics if an error occurs.
func (pcq *PaymentCredentialsQuery) AllX(ctx context.Context) []*PaymentCredentials {
	nodes, err := pcq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PaymentCredentials IDs.
func (pcq *PaymentCredentialsQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if pcq.ctx.Unique == nil && pcq.path != nil {
		pcq.Unique(true)
	}
	ctx = setContextOp(ctx, pcq.ctx, ent.OpQueryIDs)
	if err = pcq.Select(paymentcredentials.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (pcq *PaymentCredentialsQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := pcq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (pcq *PaymentCredentialsQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, pcq.ctx, ent.OpQueryCount)
	if err := pcq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, pcq, querierCount[*PaymentCredentialsQuery](), pcq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (pcq *PaymentCredentialsQuery) CountX(ctx context.Context) int {
	count, err := pcq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (pcq *PaymentCredentialsQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, pcq.ctx, ent.OpQueryExist)
	switch _, err := pcq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (pcq *PaymentCredentialsQuery) ExistX(ctx context.Context) bool {
	exist, err := pcq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PaymentCredentialsQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (pcq *PaymentCredentialsQuery) Clone() *PaymentCredentialsQuery {
	if pcq == nil {
		return nil
	}
	return &PaymentCredentialsQuery{
		config:     pcq.config,
		ctx:        pcq.ctx.Clone(),
		order:      append([]paymentcredentials.OrderOption{}, pcq.order...),
		inters:     append([]Interceptor{}, pcq.inters...),
		predicates: append([]predicate.PaymentCredentials{}, pcq.predicates...),
		withOwner:  pcq.withOwner.Clone(),
		// clone intermediate query.
		sql:  pcq.sql.Clone(),
		path: pcq.path,
	}
}

// WithOwner tells the query-builder to eager-load the nodes that are connected to
// the "owner" edge. The optional arguments are used to configure the query builder of the edge.
func (pcq *PaymentCredentialsQuery) WithOwner(opts ...func(*UserQuery)) *PaymentCredentialsQuery {
	query := (&UserClient{config: pcq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	pcq.withOwner = query
	return pcq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PaymentCredentials.Query().
//		GroupBy(paymentcredentials.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (pcq *PaymentCredentialsQuery) GroupBy(field string, fields ...string) *PaymentCredentialsGroupBy {
	pcq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PaymentCredentialsGroupBy{build: pcq}
	grbuild.flds = &pcq.ctx.Fields
	grbuild.label = paymentcredentials.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.PaymentCredentials.Query().
//		Select(paymentcredentials.FieldCreatedAt).
//		Scan(ctx, &v)
func (pcq *PaymentCredentialsQuery) Select(fields ...string) *PaymentCredentialsSelect {
	pcq.ctx.Fields = append(pcq.ctx.Fields, fields...)
	sbuild := &PaymentCredentialsSelect{PaymentCredentialsQuery: pcq}
	sbuild.label = paymentcredentials.Label
	sbuild.flds, sbuild.scan = &pcq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PaymentCredentialsSelect configured with the given aggregations.
func (pcq *PaymentCredentialsQuery) Aggregate(fns ...AggregateFunc) *PaymentCredentialsSelect {
	return pcq.Select().Aggregate(fns...)
}

func (pcq *PaymentCredentialsQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range pcq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, pcq); err != nil {
				return err
			}
		}
	}
	for _, f := range pcq.ctx.Fields {
		if !paymentcredentials.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if pcq.path != nil {
		prev, err := pcq.path(ctx)
		if err != nil {
			return err
		}
		pcq.sql = prev
	}
	return nil
}

func (pcq *PaymentCredentialsQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PaymentCredentials, error) {
	var (
		nodes       = []*PaymentCredentials{}
		withFKs     = pcq.withFKs
		_spec       = pcq.querySpec()
		loadedTypes = [1]bool{
			pcq.withOwner != nil,
		}
	)
	if pcq.withOwner != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, paymentcredentials.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PaymentCredentials).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PaymentCredentials{config: pcq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, pcq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := pcq.withOwner; query != nil {
		if err := pcq.loadOwner(ctx, query, nodes, nil,
			func(n *PaymentCredentials, e *User) { n.Edges.Owner = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (pcq *PaymentCredentialsQuery) loadOwner(ctx context.Context, query *UserQuery, nodes []*PaymentCredentials, init func(*PaymentCredentials), assign func(*PaymentCredentials, *User)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*PaymentCredentials)
	for i := range nodes {
		if nodes[i].user_payment_credentials == nil {
			continue
		}
		fk := *nodes[i].user_payment_credentials
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_payment_credentials" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (pcq *PaymentCredentialsQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := pcq.querySpec()
	_spec.Node.Columns = pcq.ctx.Fields
	if len(pcq.ctx.Fields) > 0 {
		_spec.Unique = pcq.ctx.Unique != nil && *pcq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, pcq.driver, _spec)
}

func (pcq *PaymentCredentialsQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(paymentcredentials.Table, paymentcredentials.Columns, sqlgraph.NewFieldSpec(paymentcredentials.FieldID, field.TypeUUID))
	_spec.From = pcq.sql
	if unique := pcq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if pcq.path != nil {
		_spec.Unique = true
	}
	if fields := pcq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paymentcredentials.FieldID)
		for i := range fields {
			if fields[i] != paymentcredentials.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := pcq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := pcq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := pcq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := pcq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (pcq *PaymentCredentialsQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(pcq.driver.Dialect())
	t1 := builder.Table(paymentcredentials.Table)
	columns := pcq.ctx.Fields
	if len(columns) == 0 {
		columns = paymentcredentials.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if pcq.sql != nil {
		selector = pcq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if pcq.ctx.Unique != nil && *pcq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range pcq.predicates {
		p(selector)
	}
	for _, p := range pcq.order {
		p(selector)
	}
	if offset := pcq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := pcq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PaymentCredentialsGroupBy is the group-by builder for PaymentCredentials entities.
type PaymentCredentialsGroupBy struct {
	selector
	build *PaymentCredentialsQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (pcgb *PaymentCredentialsGroupBy) Aggregate(fns ...AggregateFunc) *PaymentCredentialsGroupBy {
	pcgb.fns = append(pcgb.fns, fns...)
	return pcgb
}

// Scan applies the selector query and scans the result into the given value.
func (pcgb *PaymentCredentialsGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pcgb.build.ctx, ent.OpQueryGroupBy)
	if err := pcgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PaymentCredentialsQuery, *PaymentCredentialsGroupBy](ctx, pcgb.build, pcgb, pcgb.build.inters, v)
}

func (pcgb *PaymentCredentialsGroupBy) sqlScan(ctx context.Context, root *PaymentCredentialsQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(pcgb.fns))
	for _, fn := range pcgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*pcgb.flds)+len(pcgb.fns))
		for _, f := range *pcgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*pcgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pcgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PaymentCredentialsSelect is the builder for selecting fields of PaymentCredentials entities.
type PaymentCredentialsSelect struct {
	*PaymentCredentialsQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (pcs *PaymentCredentialsSelect) Aggregate(fns ...AggregateFunc) *PaymentCredentialsSelect {
	pcs.fns = append(pcs.fns, fns...)
	return pcs
}

// Scan applies the selector query and scans the result into the given value.
func (pcs *PaymentCredentialsSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pcs.ctx, ent.OpQuerySelect)
	if err := pcs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PaymentCredentialsQuery, *PaymentCredentialsSelect](ctx, pcs.PaymentCredentialsQuery, pcs, pcs.inters, v)
}

func (pcs *PaymentCredentialsSelect) sqlScan(ctx context.Context, root *PaymentCredentialsQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(pcs.fns))
	for _, fn := range pcs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*pcs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pcs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
