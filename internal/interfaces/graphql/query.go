package graphql

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/materials-ledger/internal/application/ledger"
	"github.com/jhoicas/materials-ledger/internal/domain/entity"
	"github.com/jhoicas/materials-ledger/pkg/relay"
)

type idArgs struct {
	ID gql.ID
}

func (r *Resolver) Node(ctx context.Context, args idArgs) (*nodeResolver, error) {
	n, err := r.queries.Node(ctx, string(args.ID))
	if err != nil {
		return nil, publicError(ctx, err)
	}
	switch v := n.(type) {
	case *entity.Client:
		return &nodeResolver{r.client(v)}, nil
	case *entity.Supplier:
		return &nodeResolver{r.supplier(v)}, nil
	case *entity.MaterialsInvoice:
		return &nodeResolver{r.invoice(v)}, nil
	case *entity.Transaction:
		return &nodeResolver{r.transaction(v)}, nil
	case *entity.Debt:
		return &nodeResolver{r.debt(v)}, nil
	}
	return nil, nil
}

func (r *Resolver) Clients(ctx context.Context, args connectionArgs) (*connection[*clientResolver], error) {
	p, err := r.queries.Clients(ctx, args.page())
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return newConnection(p, func(c *entity.Client) int64 { return c.ID }, r.client), nil
}

func (r *Resolver) Suppliers(ctx context.Context, args connectionArgs) (*connection[*supplierResolver], error) {
	p, err := r.queries.Suppliers(ctx, args.page())
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return newConnection(p, func(s *entity.Supplier) int64 { return s.ID }, r.supplier), nil
}

func (r *Resolver) Invoices(ctx context.Context, args connectionArgs) (*connection[*invoiceResolver], error) {
	p, err := r.queries.Invoices(ctx, args.page())
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return newConnection(p, invoiceID, r.invoice), nil
}

func (r *Resolver) Transactions(ctx context.Context, args connectionArgs) (*connection[*transactionResolver], error) {
	p, err := r.queries.Transactions(ctx, args.page())
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return newConnection(p, func(t *entity.Transaction) int64 { return t.ID }, r.transaction), nil
}

func (r *Resolver) Debts(ctx context.Context, args connectionArgs) (*connection[*debtResolver], error) {
	p, err := r.queries.Debts(ctx, args.page())
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return newConnection(p, debtID, r.debt), nil
}

// Las consultas por ID aceptan ID global o numérico; un ID ilegible resuelve a null.

func (r *Resolver) Client(ctx context.Context, args idArgs) (*clientResolver, error) {
	id, err := relay.ResolveID(ledger.TypeClient, string(args.ID))
	if err != nil {
		return nil, nil
	}
	c, err := r.queries.Client(ctx, id)
	if err != nil || c == nil {
		return nil, publicError(ctx, err)
	}
	return r.client(c), nil
}

func (r *Resolver) Supplier(ctx context.Context, args idArgs) (*supplierResolver, error) {
	id, err := relay.ResolveID(ledger.TypeSupplier, string(args.ID))
	if err != nil {
		return nil, nil
	}
	s, err := r.queries.Supplier(ctx, id)
	if err != nil || s == nil {
		return nil, publicError(ctx, err)
	}
	return r.supplier(s), nil
}

func (r *Resolver) Invoice(ctx context.Context, args idArgs) (*invoiceResolver, error) {
	id, err := relay.ResolveID(ledger.TypeInvoice, string(args.ID))
	if err != nil {
		return nil, nil
	}
	inv, err := r.queries.Invoice(ctx, id)
	if err != nil || inv == nil {
		return nil, publicError(ctx, err)
	}
	return r.invoice(inv), nil
}

func (r *Resolver) Transaction(ctx context.Context, args idArgs) (*transactionResolver, error) {
	id, err := relay.ResolveID(ledger.TypeTransaction, string(args.ID))
	if err != nil {
		return nil, nil
	}
	t, err := r.queries.Transaction(ctx, id)
	if err != nil || t == nil {
		return nil, publicError(ctx, err)
	}
	return r.transaction(t), nil
}

func (r *Resolver) Debt(ctx context.Context, args idArgs) (*debtResolver, error) {
	id, err := relay.ResolveID(ledger.TypeDebt, string(args.ID))
	if err != nil {
		return nil, nil
	}
	d, err := r.queries.Debt(ctx, id)
	if err != nil || d == nil {
		return nil, publicError(ctx, err)
	}
	return r.debt(d), nil
}

func invoiceID(i *entity.MaterialsInvoice) int64 { return i.ID }
func debtID(d *entity.Debt) int64                { return d.ID }
