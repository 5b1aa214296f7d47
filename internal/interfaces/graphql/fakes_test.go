package graphql_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/materials-ledger/internal/domain"
	"github.com/jhoicas/materials-ledger/internal/domain/entity"
	"github.com/jhoicas/materials-ledger/internal/domain/repository"
)

// store en memoria; basta para ejercitar el esquema de punta a punta.
type store struct {
	mu           sync.Mutex
	clients      []*entity.Client
	suppliers    []*entity.Supplier
	invoices     []*entity.MaterialsInvoice
	transactions []*entity.Transaction
	debts        []*entity.Debt
}

var created = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

func (s *store) addClient(name, markup string) *entity.Client {
	c := &entity.Client{ID: int64(len(s.clients) + 1), Name: name, MarkupRate: decimal.RequireFromString(markup), CreatedAt: created}
	s.clients = append(s.clients, c)
	return c
}

func (s *store) addSupplier(name string) *entity.Supplier {
	sp := &entity.Supplier{ID: int64(len(s.suppliers) + 1), Name: name, CreatedAt: created}
	s.suppliers = append(s.suppliers, sp)
	return sp
}

func page[T any](items []*T, id func(*T) int64, q repository.PageQuery, keep func(*T) bool) []*T {
	var out []*T
	for _, it := range items {
		if id(it) <= q.AfterID || (keep != nil && !keep(it)) {
			continue
		}
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
		out = append(out, it)
	}
	return out
}

func byID[T any](items []*T, id func(*T) int64, want int64) *T {
	for _, it := range items {
		if id(it) == want {
			return it
		}
	}
	return nil
}

func clientID(c *entity.Client) int64            { return c.ID }
func supplierID(s *entity.Supplier) int64        { return s.ID }
func invoiceID(i *entity.MaterialsInvoice) int64 { return i.ID }
func txID(t *entity.Transaction) int64           { return t.ID }
func debtID(d *entity.Debt) int64                { return d.ID }

type clientRepo struct{ s *store }

func (r clientRepo) Create(_ context.Context, c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = int64(len(r.s.clients) + 1)
	c.CreatedAt = created
	r.s.clients = append(r.s.clients, c)
	return nil
}

func (r clientRepo) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return byID(r.s.clients, clientID, id), nil
}

func (r clientRepo) List(_ context.Context, q repository.PageQuery) ([]*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return page(r.s.clients, clientID, q, nil), nil
}

type supplierRepo struct{ s *store }

func (r supplierRepo) Create(_ context.Context, sp *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sp.ID = int64(len(r.s.suppliers) + 1)
	sp.CreatedAt = created
	r.s.suppliers = append(r.s.suppliers, sp)
	return nil
}

func (r supplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return byID(r.s.suppliers, supplierID, id), nil
}

func (r supplierRepo) List(_ context.Context, q repository.PageQuery) ([]*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return page(r.s.suppliers, supplierID, q, nil), nil
}

// Los repos de factura, transacción y deuda no bloquean: el runner ya tiene el lock.
type invoiceRepo struct{ s *store }

func (r invoiceRepo) Create(_ context.Context, inv *entity.MaterialsInvoice) error {
	inv.ID = int64(len(r.s.invoices) + 1)
	r.s.invoices = append(r.s.invoices, inv)
	return nil
}

func (r invoiceRepo) GetByID(_ context.Context, id int64) (*entity.MaterialsInvoice, error) {
	return byID(r.s.invoices, invoiceID, id), nil
}

func (r invoiceRepo) List(_ context.Context, q repository.PageQuery) ([]*entity.MaterialsInvoice, error) {
	return page(r.s.invoices, invoiceID, q, nil), nil
}

func (r invoiceRepo) ListByClient(_ context.Context, id int64, q repository.PageQuery) ([]*entity.MaterialsInvoice, error) {
	return page(r.s.invoices, invoiceID, q, func(i *entity.MaterialsInvoice) bool { return i.ClientID == id }), nil
}

func (r invoiceRepo) ListBySupplier(_ context.Context, id int64, q repository.PageQuery) ([]*entity.MaterialsInvoice, error) {
	return page(r.s.invoices, invoiceID, q, func(i *entity.MaterialsInvoice) bool { return i.SupplierID == id }), nil
}

func (r invoiceRepo) UpdateStatus(_ context.Context, id int64, st entity.InvoiceStatus) error {
	inv := byID(r.s.invoices, invoiceID, id)
	if inv == nil {
		return domain.ErrNotFound
	}
	inv.Status = st
	return nil
}

type txRepo struct{ s *store }

func (r txRepo) Create(_ context.Context, t *entity.Transaction) error {
	t.ID = int64(len(r.s.transactions) + 1)
	r.s.transactions = append(r.s.transactions, t)
	return nil
}

func (r txRepo) GetByID(_ context.Context, id int64) (*entity.Transaction, error) {
	return byID(r.s.transactions, txID, id), nil
}

func (r txRepo) GetByInvoiceID(_ context.Context, invID int64) (*entity.Transaction, error) {
	for _, t := range r.s.transactions {
		if t.InvoiceID == invID {
			return t, nil
		}
	}
	return nil, nil
}

func (r txRepo) List(_ context.Context, q repository.PageQuery) ([]*entity.Transaction, error) {
	return page(r.s.transactions, txID, q, nil), nil
}

type debtRepo struct{ s *store }

func (r debtRepo) Create(_ context.Context, d *entity.Debt) error {
	d.ID = int64(len(r.s.debts) + 1)
	r.s.debts = append(r.s.debts, d)
	return nil
}

func (r debtRepo) GetByID(_ context.Context, id int64) (*entity.Debt, error) {
	return byID(r.s.debts, debtID, id), nil
}

func (r debtRepo) List(_ context.Context, q repository.PageQuery) ([]*entity.Debt, error) {
	return page(r.s.debts, debtID, q, nil), nil
}

func (r debtRepo) ListByInvoice(_ context.Context, invID int64, q repository.PageQuery) ([]*entity.Debt, error) {
	return page(r.s.debts, debtID, q, func(d *entity.Debt) bool { return d.InvoiceID == invID }), nil
}

type txRunner struct{ s *store }

func (r txRunner) RunLedger(_ context.Context, fn func(repository.InvoiceRepository, repository.TransactionRepository, repository.DebtRepository) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(invoiceRepo{r.s}, txRepo{r.s}, debtRepo{r.s})
}
