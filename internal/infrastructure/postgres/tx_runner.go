package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/materials-ledger/internal/application/ledger"
	"github.com/jhoicas/materials-ledger/internal/domain/repository"
)

var _ ledger.LedgerTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db TxBeginner
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(db TxBeginner) *TxRunner {
	return &TxRunner{db: db}
}

// RunLedger inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunLedger(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	txRepo repository.TransactionRepository,
	debtRepo repository.DebtRepository,
) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInvoiceRepository(tx), NewTransactionRepository(tx), NewDebtRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
