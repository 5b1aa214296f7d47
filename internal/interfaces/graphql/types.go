package graphql

import (
	"context"
	"fmt"
	"time"

	gql "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/materials-ledger/internal/application/ledger"
	"github.com/jhoicas/materials-ledger/internal/domain"
	"github.com/jhoicas/materials-ledger/internal/domain/entity"
	"github.com/jhoicas/materials-ledger/pkg/relay"
)

// Fechas en RFC3339 (UTC), montos como Float.
func formatTime(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func (r *Resolver) client(c *entity.Client) *clientResolver       { return &clientResolver{r: r, c: c} }
func (r *Resolver) supplier(s *entity.Supplier) *supplierResolver { return &supplierResolver{r: r, s: s} }
func (r *Resolver) invoice(i *entity.MaterialsInvoice) *invoiceResolver {
	return &invoiceResolver{r: r, inv: i}
}
func (r *Resolver) transaction(t *entity.Transaction) *transactionResolver {
	return &transactionResolver{r: r, t: t}
}
func (r *Resolver) debt(d *entity.Debt) *debtResolver { return &debtResolver{r: r, d: d} }

// ── Client ────────────────────────────────────────────────────────────────────

type clientResolver struct {
	r *Resolver
	c *entity.Client
}

func (c *clientResolver) ID() gql.ID          { return gql.ID(relay.ToGlobalID(ledger.TypeClient, c.c.ID)) }
func (c *clientResolver) Name() string        { return c.c.Name }
func (c *clientResolver) MarkupRate() float64 { return c.c.MarkupRate.InexactFloat64() }
func (c *clientResolver) CreatedAt() string   { return formatTime(c.c.CreatedAt) }

func (c *clientResolver) Invoices(ctx context.Context, args connectionArgs) (*connection[*invoiceResolver], error) {
	p, err := c.r.queries.InvoicesByClient(ctx, c.c.ID, args.page())
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return newConnection(p, invoiceID, c.r.invoice), nil
}

// ── Supplier ──────────────────────────────────────────────────────────────────

type supplierResolver struct {
	r *Resolver
	s *entity.Supplier
}

func (s *supplierResolver) ID() gql.ID        { return gql.ID(relay.ToGlobalID(ledger.TypeSupplier, s.s.ID)) }
func (s *supplierResolver) Name() string      { return s.s.Name }
func (s *supplierResolver) CreatedAt() string { return formatTime(s.s.CreatedAt) }

func (s *supplierResolver) Invoices(ctx context.Context, args connectionArgs) (*connection[*invoiceResolver], error) {
	p, err := s.r.queries.InvoicesBySupplier(ctx, s.s.ID, args.page())
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return newConnection(p, invoiceID, s.r.invoice), nil
}

// ── MaterialsInvoice ──────────────────────────────────────────────────────────

type invoiceResolver struct {
	r   *Resolver
	inv *entity.MaterialsInvoice
}

func (i *invoiceResolver) ID() gql.ID          { return gql.ID(relay.ToGlobalID(ledger.TypeInvoice, i.inv.ID)) }
func (i *invoiceResolver) InvoiceDate() string { return formatTime(i.inv.InvoiceDate) }
func (i *invoiceResolver) BaseAmount() float64 { return i.inv.BaseAmount.InexactFloat64() }
func (i *invoiceResolver) Status() string      { return string(i.inv.Status) }

func (i *invoiceResolver) Client(ctx context.Context) (*clientResolver, error) {
	c, err := i.r.queries.Client(ctx, i.inv.ClientID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	if c == nil {
		return nil, fmt.Errorf("cliente %d: %w", i.inv.ClientID, domain.ErrNotFound)
	}
	return i.r.client(c), nil
}

func (i *invoiceResolver) Supplier(ctx context.Context) (*supplierResolver, error) {
	s, err := i.r.queries.Supplier(ctx, i.inv.SupplierID)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	if s == nil {
		return nil, fmt.Errorf("proveedor %d: %w", i.inv.SupplierID, domain.ErrNotFound)
	}
	return i.r.supplier(s), nil
}

func (i *invoiceResolver) Transaction(ctx context.Context) (*transactionResolver, error) {
	t, err := i.r.queries.TransactionByInvoice(ctx, i.inv.ID)
	if err != nil || t == nil {
		return nil, publicError(ctx, err)
	}
	return i.r.transaction(t), nil
}

func (i *invoiceResolver) Debts(ctx context.Context, args connectionArgs) (*connection[*debtResolver], error) {
	p, err := i.r.queries.DebtsByInvoice(ctx, i.inv.ID, args.page())
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return newConnection(p, debtID, i.r.debt), nil
}

// ── Transaction ───────────────────────────────────────────────────────────────

type transactionResolver struct {
	r *Resolver
	t *entity.Transaction
}

func (t *transactionResolver) ID() gql.ID {
	return gql.ID(relay.ToGlobalID(ledger.TypeTransaction, t.t.ID))
}
func (t *transactionResolver) TransactionDate() string { return formatTime(t.t.TransactionDate) }
func (t *transactionResolver) Amount() float64         { return t.t.Amount.InexactFloat64() }

func (t *transactionResolver) Invoice(ctx context.Context) (*invoiceResolver, error) {
	return t.r.invoiceOf(ctx, t.t.InvoiceID)
}

// ── Debt ──────────────────────────────────────────────────────────────────────

type debtResolver struct {
	r *Resolver
	d *entity.Debt
}

func (d *debtResolver) ID() gql.ID          { return gql.ID(relay.ToGlobalID(ledger.TypeDebt, d.d.ID)) }
func (d *debtResolver) Party() string       { return d.d.Party }
func (d *debtResolver) Amount() float64     { return d.d.Amount.InexactFloat64() }
func (d *debtResolver) CreatedDate() string { return formatTime(d.d.CreatedDate) }

func (d *debtResolver) Invoice(ctx context.Context) (*invoiceResolver, error) {
	return d.r.invoiceOf(ctx, d.d.InvoiceID)
}

func (r *Resolver) invoiceOf(ctx context.Context, id int64) (*invoiceResolver, error) {
	inv, err := r.queries.Invoice(ctx, id)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	if inv == nil {
		return nil, fmt.Errorf("factura %d: %w", id, domain.ErrNotFound)
	}
	return r.invoice(inv), nil
}

// ── Node ──────────────────────────────────────────────────────────────────────

type identified interface {
	ID() gql.ID
}

type nodeResolver struct {
	n identified
}

func (n *nodeResolver) ID() gql.ID { return n.n.ID() }

func (n *nodeResolver) ToClient() (*clientResolver, bool) {
	c, ok := n.n.(*clientResolver)
	return c, ok
}

func (n *nodeResolver) ToSupplier() (*supplierResolver, bool) {
	s, ok := n.n.(*supplierResolver)
	return s, ok
}

func (n *nodeResolver) ToMaterialsInvoice() (*invoiceResolver, bool) {
	i, ok := n.n.(*invoiceResolver)
	return i, ok
}

func (n *nodeResolver) ToTransaction() (*transactionResolver, bool) {
	t, ok := n.n.(*transactionResolver)
	return t, ok
}

func (n *nodeResolver) ToDebt() (*debtResolver, bool) {
	d, ok := n.n.(*debtResolver)
	return d, ok
}
