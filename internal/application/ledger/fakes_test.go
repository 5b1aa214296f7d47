package ledger_test

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/materials-ledger/internal/domain"
	"github.com/jhoicas/materials-ledger/internal/domain/entity"
	"github.com/jhoicas/materials-ledger/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

var errDBDown = errors.New("conexión rechazada")

type memStore struct {
	mu           sync.Mutex
	clients      []*entity.Client
	suppliers    []*entity.Supplier
	invoices     []*entity.MaterialsInvoice
	transactions []*entity.Transaction
	debts        []*entity.Debt
	seq          map[string]int64

	failDebtParty string // si no está vacío, crear una deuda de esa parte falla
	failReads     bool
}

func newMemStore() *memStore {
	return &memStore{seq: map[string]int64{}}
}

func (s *memStore) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func (s *memStore) clone() *memStore {
	c := &memStore{
		clients:       append([]*entity.Client(nil), s.clients...),
		suppliers:     append([]*entity.Supplier(nil), s.suppliers...),
		invoices:      append([]*entity.MaterialsInvoice(nil), s.invoices...),
		transactions:  append([]*entity.Transaction(nil), s.transactions...),
		debts:         append([]*entity.Debt(nil), s.debts...),
		seq:           map[string]int64{},
		failDebtParty: s.failDebtParty,
	}
	for k, v := range s.seq {
		c.seq[k] = v
	}
	return c
}

func (s *memStore) replace(o *memStore) {
	s.clients, s.suppliers, s.invoices = o.clients, o.suppliers, o.invoices
	s.transactions, s.debts, s.seq = o.transactions, o.debts, o.seq
}

func (s *memStore) addClient(name, markup string) *entity.Client {
	c := &entity.Client{ID: s.next("clients"), Name: name, MarkupRate: dec(markup)}
	s.clients = append(s.clients, c)
	return c
}

func (s *memStore) addSupplier(name string) *entity.Supplier {
	sp := &entity.Supplier{ID: s.next("suppliers"), Name: name}
	s.suppliers = append(s.suppliers, sp)
	return sp
}

// window aplica PageQuery a una lista ordenada por ID.
func window[T any](items []*T, idOf func(*T) int64, page repository.PageQuery, keep func(*T) bool) []*T {
	var out []*T
	for _, it := range items {
		if idOf(it) <= page.AfterID || (keep != nil && !keep(it)) {
			continue
		}
		out = append(out, it)
		if page.Limit > 0 && len(out) == page.Limit {
			break
		}
	}
	return out
}

func find[T any](items []*T, idOf func(*T) int64, id int64) *T {
	for _, it := range items {
		if idOf(it) == id {
			return it
		}
	}
	return nil
}

type memClientRepo struct{ s *memStore }

func (r memClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.next("clients")
	r.s.clients = append(r.s.clients, c)
	return nil
}

func (r memClientRepo) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failReads {
		return nil, errDBDown
	}
	return find(r.s.clients, func(c *entity.Client) int64 { return c.ID }, id), nil
}

func (r memClientRepo) List(_ context.Context, page repository.PageQuery) ([]*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return window(r.s.clients, func(c *entity.Client) int64 { return c.ID }, page, nil), nil
}

type memSupplierRepo struct{ s *memStore }

func (r memSupplierRepo) Create(_ context.Context, sp *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sp.ID = r.s.next("suppliers")
	r.s.suppliers = append(r.s.suppliers, sp)
	return nil
}

func (r memSupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return find(r.s.suppliers, func(s *entity.Supplier) int64 { return s.ID }, id), nil
}

func (r memSupplierRepo) List(_ context.Context, page repository.PageQuery) ([]*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return window(r.s.suppliers, func(s *entity.Supplier) int64 { return s.ID }, page, nil), nil
}

type memInvoiceRepo struct{ s *memStore }

func invoiceID(i *entity.MaterialsInvoice) int64 { return i.ID }

func (r memInvoiceRepo) Create(_ context.Context, inv *entity.MaterialsInvoice) error {
	inv.ID = r.s.next("invoices")
	r.s.invoices = append(r.s.invoices, inv)
	return nil
}

func (r memInvoiceRepo) GetByID(_ context.Context, id int64) (*entity.MaterialsInvoice, error) {
	return find(r.s.invoices, invoiceID, id), nil
}

func (r memInvoiceRepo) List(_ context.Context, page repository.PageQuery) ([]*entity.MaterialsInvoice, error) {
	return window(r.s.invoices, invoiceID, page, nil), nil
}

func (r memInvoiceRepo) ListByClient(_ context.Context, clientID int64, page repository.PageQuery) ([]*entity.MaterialsInvoice, error) {
	return window(r.s.invoices, invoiceID, page, func(i *entity.MaterialsInvoice) bool { return i.ClientID == clientID }), nil
}

func (r memInvoiceRepo) ListBySupplier(_ context.Context, supplierID int64, page repository.PageQuery) ([]*entity.MaterialsInvoice, error) {
	return window(r.s.invoices, invoiceID, page, func(i *entity.MaterialsInvoice) bool { return i.SupplierID == supplierID }), nil
}

func (r memInvoiceRepo) UpdateStatus(_ context.Context, id int64, status entity.InvoiceStatus) error {
	inv := find(r.s.invoices, invoiceID, id)
	if inv == nil {
		return domain.ErrNotFound
	}
	cp := *inv
	cp.Status = status
	for i, it := range r.s.invoices {
		if it.ID == id {
			r.s.invoices[i] = &cp
		}
	}
	return nil
}

type memTxRepo struct{ s *memStore }

func txID(t *entity.Transaction) int64 { return t.ID }

func (r memTxRepo) Create(_ context.Context, t *entity.Transaction) error {
	t.ID = r.s.next("transactions")
	r.s.transactions = append(r.s.transactions, t)
	return nil
}

func (r memTxRepo) GetByID(_ context.Context, id int64) (*entity.Transaction, error) {
	return find(r.s.transactions, txID, id), nil
}

func (r memTxRepo) GetByInvoiceID(_ context.Context, invID int64) (*entity.Transaction, error) {
	for _, t := range r.s.transactions {
		if t.InvoiceID == invID {
			return t, nil
		}
	}
	return nil, nil
}

func (r memTxRepo) List(_ context.Context, page repository.PageQuery) ([]*entity.Transaction, error) {
	return window(r.s.transactions, txID, page, nil), nil
}

type memDebtRepo struct{ s *memStore }

func debtID(d *entity.Debt) int64 { return d.ID }

func (r memDebtRepo) Create(_ context.Context, d *entity.Debt) error {
	if r.s.failDebtParty != "" && r.s.failDebtParty == d.Party {
		return errDBDown
	}
	d.ID = r.s.next("debts")
	r.s.debts = append(r.s.debts, d)
	return nil
}

func (r memDebtRepo) GetByID(_ context.Context, id int64) (*entity.Debt, error) {
	return find(r.s.debts, debtID, id), nil
}

func (r memDebtRepo) List(_ context.Context, page repository.PageQuery) ([]*entity.Debt, error) {
	return window(r.s.debts, debtID, page, nil), nil
}

func (r memDebtRepo) ListByInvoice(_ context.Context, invID int64, page repository.PageQuery) ([]*entity.Debt, error) {
	return window(r.s.debts, debtID, page, func(d *entity.Debt) bool { return d.InvoiceID == invID }), nil
}

// memTxRunner trabaja sobre una copia y la publica solo si fn termina sin error (rollback implícito).
type memTxRunner struct {
	s     *memStore
	calls int
}

func (r *memTxRunner) RunLedger(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	txRepo repository.TransactionRepository,
	debtRepo repository.DebtRepository,
) error) error {
	r.calls++
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	staged := r.s.clone()
	if err := fn(memInvoiceRepo{staged}, memTxRepo{staged}, memDebtRepo{staged}); err != nil {
		return err
	}
	r.s.replace(staged)
	return nil
}

type recordingMetrics struct {
	outcomes []string
	parties  []string
}

func (m *recordingMetrics) InvoiceCreation(outcome string) { m.outcomes = append(m.outcomes, outcome) }
func (m *recordingMetrics) DebtRecorded(party string)      { m.parties = append(m.parties, party) }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
