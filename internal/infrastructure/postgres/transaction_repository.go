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

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementa repository.TransactionRepository con pgx.
type TransactionRepo struct {
	q Querier
}

func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `id, invoice_id, transaction_date, amount`

func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	const query = `INSERT INTO transactions (invoice_id, transaction_date, amount) VALUES ($1, $2, $3) RETURNING id`
	if err := r.q.QueryRow(ctx, query, t.InvoiceID, t.TransactionDate, t.Amount).Scan(&t.ID); err != nil {
		switch {
		case isForeignKeyViolation(err):
			return fmt.Errorf("insert transaction: %w", domain.ErrNotFound)
		case isUniqueViolation(err):
			return fmt.Errorf("insert transaction: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	return r.getOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
}

// GetByInvoiceID devuelve (nil, nil) si la factura no tiene transacción.
func (r *TransactionRepo) GetByInvoiceID(ctx context.Context, invoiceID int64) (*entity.Transaction, error) {
	return r.getOne(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE invoice_id = $1 ORDER BY id LIMIT 1`, invoiceID)
}

func (r *TransactionRepo) List(ctx context.Context, page repository.PageQuery) ([]*entity.Transaction, error) {
	query, args := pageClause(`SELECT `+transactionColumns+` FROM transactions`, nil, page.AfterID, page.Limit, false)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.InvoiceID, &t.TransactionDate, &t.Amount); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *TransactionRepo) getOne(ctx context.Context, query string, arg int64) (*entity.Transaction, error) {
	var t entity.Transaction
	err := r.q.QueryRow(ctx, query, arg).Scan(&t.ID, &t.InvoiceID, &t.TransactionDate, &t.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}
