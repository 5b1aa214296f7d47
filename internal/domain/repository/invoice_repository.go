package repository

import (
	"context"

	"github.com/jhoicas/materials-ledger/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para MaterialsInvoice.
type InvoiceRepository interface {
	// Create inserta la factura y asigna invoice.ID.
	Create(ctx context.Context, invoice *entity.MaterialsInvoice) error
	GetByID(ctx context.Context, id int64) (*entity.MaterialsInvoice, error)
	List(ctx context.Context, page PageQuery) ([]*entity.MaterialsInvoice, error)
	ListByClient(ctx context.Context, clientID int64, page PageQuery) ([]*entity.MaterialsInvoice, error)
	ListBySupplier(ctx context.Context, supplierID int64, page PageQuery) ([]*entity.MaterialsInvoice, error)
	// UpdateStatus devuelve domain.ErrNotFound si la factura no existe.
	UpdateStatus(ctx context.Context, id int64, status entity.InvoiceStatus) error
}
