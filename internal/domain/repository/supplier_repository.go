package repository

import (
	"context"

	"github.com/jhoicas/materials-ledger/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	List(ctx context.Context, page PageQuery) ([]*entity.Supplier, error)
}
