package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/materials-ledger/internal/domain"
	"github.com/jhoicas/materials-ledger/internal/domain/entity"
	"github.com/jhoicas/materials-ledger/internal/domain/repository"
)

var _ repository.DebtRepository = (*DebtRepo)(nil)

// DebtRepo implementa repository.DebtRepository con pgx.
type DebtRepo struct {
	q Querier
}

func NewDebtRepository(q Querier) *DebtRepo {
	return &DebtRepo{q: q}
}

const debtColumns = `id, invoice_id, party, amount, created_date`

// Create inserta la deuda y asigna d.ID. Sin CreatedDate se usa la hora actual (UTC).
func (r *DebtRepo) Create(ctx context.Context, d *entity.Debt) error {
	const query = `
		INSERT INTO debts (invoice_id, party, amount, created_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if d.CreatedDate.IsZero() {
		d.CreatedDate = time.Now().UTC()
	}
	if err := r.q.QueryRow(ctx, query, d.InvoiceID, d.Party, d.Amount, d.CreatedDate).Scan(&d.ID); err != nil {
		switch {
		case isForeignKeyViolation(err):
			return fmt.Errorf("insert debt: %w", domain.ErrNotFound)
		case isCheckViolation(err):
			return fmt.Errorf("insert debt: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert debt: %w", err)
	}
	return nil
}

func (r *DebtRepo) GetByID(ctx context.Context, id int64) (*entity.Debt, error) {
	var d entity.Debt
	err := r.q.QueryRow(ctx, `SELECT `+debtColumns+` FROM debts WHERE id = $1`, id).
		Scan(&d.ID, &d.InvoiceID, &d.Party, &d.Amount, &d.CreatedDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get debt: %w", err)
	}
	return &d, nil
}

func (r *DebtRepo) List(ctx context.Context, page repository.PageQuery) ([]*entity.Debt, error) {
	query, args := pageClause(`SELECT `+debtColumns+` FROM debts`, nil, page.AfterID, page.Limit, false)
	return r.list(ctx, query, args)
}

func (r *DebtRepo) ListByInvoice(ctx context.Context, invoiceID int64, page repository.PageQuery) ([]*entity.Debt, error) {
	query, args := pageClause(`SELECT `+debtColumns+` FROM debts WHERE invoice_id = $1`,
		[]any{invoiceID}, page.AfterID, page.Limit, true)
	return r.list(ctx, query, args)
}

func (r *DebtRepo) list(ctx context.Context, query string, args []any) ([]*entity.Debt, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Debt
	for rows.Next() {
		var d entity.Debt
		if err := rows.Scan(&d.ID, &d.InvoiceID, &d.Party, &d.Amount, &d.CreatedDate); err != nil {
			return nil, fmt.Errorf("scan debt: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
