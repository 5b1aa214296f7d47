package graphql

import (
	"github.com/jhoicas/materials-ledger/internal/application/dto"
	"github.com/jhoicas/materials-ledger/internal/application/ledger"
	"github.com/jhoicas/materials-ledger/pkg/relay"
)

type connectionArgs struct {
	First *int32
	After *string
}

func (a connectionArgs) page() dto.PageArgs {
	return dto.PageArgs{First: a.First, After: a.After}
}

// edge<N> y connection<N> sirven a las cinco conexiones del esquema.
type edge[N any] struct {
	node   N
	cursor string
}

func (e *edge[N]) Node() N        { return e.node }
func (e *edge[N]) Cursor() string { return e.cursor }

type connection[N any] struct {
	edges    []*edge[N]
	pageInfo *pageInfoResolver
}

func (c *connection[N]) Edges() *[]*edge[N]          { return &c.edges }
func (c *connection[N]) PageInfo() *pageInfoResolver { return c.pageInfo }

type pageInfoResolver struct {
	hasNext, hasPrev       bool
	startCursor, endCursor *string
}

func (p *pageInfoResolver) HasNextPage() bool     { return p.hasNext }
func (p *pageInfoResolver) HasPreviousPage() bool { return p.hasPrev }
func (p *pageInfoResolver) StartCursor() *string  { return p.startCursor }
func (p *pageInfoResolver) EndCursor() *string    { return p.endCursor }

func newConnection[T any, N any](p *ledger.Page[T], idOf func(T) int64, wrap func(T) N) *connection[N] {
	edges := make([]*edge[N], len(p.Items))
	for i, item := range p.Items {
		edges[i] = &edge[N]{node: wrap(item), cursor: relay.EncodeCursor(idOf(item))}
	}
	info := &pageInfoResolver{hasNext: p.HasNextPage, hasPrev: p.HasPreviousPage}
	if len(edges) > 0 {
		info.startCursor = &edges[0].cursor
		info.endCursor = &edges[len(edges)-1].cursor
	}
	return &connection[N]{edges: edges, pageInfo: info}
}
