package ledger

import (
	"context"
	"fmt"

	"github.com/jhoicas/materials-ledger/internal/domain"
	"github.com/jhoicas/materials-ledger/internal/domain/entity"
	"github.com/jhoicas/materials-ledger/internal/domain/repository"
	"github.com/jhoicas/materials-ledger/pkg/logger"
	"github.com/jhoicas/materials-ledger/pkg/relay"
)

// InvoiceStatusUseCase cambia el estado de una factura existente (no toca montos ni deudas).
type InvoiceStatusUseCase struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceStatusUseCase construye el caso de uso.
func NewInvoiceStatusUseCase(invoiceRepo repository.InvoiceRepository) *InvoiceStatusUseCase {
	return &InvoiceStatusUseCase{invoiceRepo: invoiceRepo}
}

// UpdateStatus valida el estado y lo persiste. invoiceID acepta ID global o numérico.
func (uc *InvoiceStatusUseCase) UpdateStatus(ctx context.Context, invoiceID, status string) (*entity.MaterialsInvoice, error) {
	id, err := relay.ResolveID(TypeInvoice, invoiceID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	st, err := entity.ParseInvoiceStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, err.Error())
	}
	if err := uc.invoiceRepo.UpdateStatus(ctx, id, st); err != nil {
		return nil, err
	}
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	logger.FromContext(ctx).Info().
		Int64("invoice_id", id).
		Str("status", string(st)).
		Msg("estado de factura actualizado")
	return inv, nil
}
