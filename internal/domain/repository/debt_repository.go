package repository

import (
	"context"

	"github.com/jhoicas/materials-ledger/internal/domain/entity"
)

// DebtRepository define el puerto de persistencia para Debt.
type DebtRepository interface {
	Create(ctx context.Context, debt *entity.Debt) error
	GetByID(ctx context.Context, id int64) (*entity.Debt, error)
	List(ctx context.Context, page PageQuery) ([]*entity.Debt, error)
	ListByInvoice(ctx context.Context, invoiceID int64, page PageQuery) ([]*entity.Debt, error)
}
