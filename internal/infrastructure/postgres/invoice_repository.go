package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/materials-ledger/internal/domain"
	"github.com/jhoicas/materials-ledger/internal/domain/entity"
	"github.com/jhoicas/materials-ledger/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementa repository.InvoiceRepository con pgx.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el repositorio (pool o tx).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, client_id, supplier_id, invoice_date, base_amount, status`

// Create inserta la factura y asigna inv.ID.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.MaterialsInvoice) error {
	const query = `
		INSERT INTO materials_invoices (client_id, supplier_id, invoice_date, base_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		inv.ClientID, inv.SupplierID, inv.InvoiceDate, inv.BaseAmount, string(inv.Status),
	).Scan(&inv.ID)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return fmt.Errorf("insert materials invoice: %w", domain.ErrNotFound)
		case isCheckViolation(err):
			return fmt.Errorf("insert materials invoice: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert materials invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.MaterialsInvoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM materials_invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get materials invoice: %w", err)
	}
	return inv, nil
}

func (r *InvoiceRepo) List(ctx context.Context, page repository.PageQuery) ([]*entity.MaterialsInvoice, error) {
	query, args := pageClause(`SELECT `+invoiceColumns+` FROM materials_invoices`, nil, page.AfterID, page.Limit, false)
	return r.list(ctx, query, args)
}

func (r *InvoiceRepo) ListByClient(ctx context.Context, clientID int64, page repository.PageQuery) ([]*entity.MaterialsInvoice, error) {
	query, args := pageClause(`SELECT `+invoiceColumns+` FROM materials_invoices WHERE client_id = $1`,
		[]any{clientID}, page.AfterID, page.Limit, true)
	return r.list(ctx, query, args)
}

func (r *InvoiceRepo) ListBySupplier(ctx context.Context, supplierID int64, page repository.PageQuery) ([]*entity.MaterialsInvoice, error) {
	query, args := pageClause(`SELECT `+invoiceColumns+` FROM materials_invoices WHERE supplier_id = $1`,
		[]any{supplierID}, page.AfterID, page.Limit, true)
	return r.list(ctx, query, args)
}

// UpdateStatus cambia solo el estado; domain.ErrNotFound si no se afectó ninguna fila.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id int64, status entity.InvoiceStatus) error {
	tag, err := r.q.Exec(ctx, `UPDATE materials_invoices SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("update invoice status: %w", domain.ErrInvalidStatus)
		}
		return fmt.Errorf("update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InvoiceRepo) list(ctx context.Context, query string, args []any) ([]*entity.MaterialsInvoice, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list materials invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.MaterialsInvoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan materials invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.MaterialsInvoice, error) {
	var inv entity.MaterialsInvoice
	var status string
	if err := row.Scan(&inv.ID, &inv.ClientID, &inv.SupplierID, &inv.InvoiceDate, &inv.BaseAmount, &status); err != nil {
		return nil, err
	}
	inv.Status = entity.InvoiceStatus(status)
	return &inv, nil
}
