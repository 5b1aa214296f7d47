package repository

import (
	"context"

	"github.com/jhoicas/materials-ledger/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para Transaction.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id int64) (*entity.Transaction, error)
	// GetByInvoiceID devuelve (nil, nil) si la factura no tiene transacción.
	GetByInvoiceID(ctx context.Context, invoiceID int64) (*entity.Transaction, error)
	List(ctx context.Context, page PageQuery) ([]*entity.Transaction, error)
}
