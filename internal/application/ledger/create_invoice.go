package ledger

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/materials-ledger/internal/application/dto"
	"github.com/jhoicas/materials-ledger/internal/domain/entity"
	domainledger "github.com/jhoicas/materials-ledger/internal/domain/ledger"
	"github.com/jhoicas/materials-ledger/internal/domain/repository"
	"github.com/jhoicas/materials-ledger/pkg/logger"
	"github.com/jhoicas/materials-ledger/pkg/relay"
)

// Formatos aceptados para invoiceDate.
var invoiceDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CreateInvoiceUseCase crea una factura de materiales con su transacción y las dos deudas
// (cliente y proveedor) en una sola transacción de base de datos.
type CreateInvoiceUseCase struct {
	txRunner     LedgerTxRunner
	clientRepo   repository.ClientRepository
	supplierRepo repository.SupplierRepository
	metrics      Metrics
	now          func() time.Time
}

// NewCreateInvoiceUseCase construye el caso de uso. metrics puede ser nil.
func NewCreateInvoiceUseCase(
	txRunner LedgerTxRunner,
	clientRepo repository.ClientRepository,
	supplierRepo repository.SupplierRepository,
	metrics Metrics,
) *CreateInvoiceUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &CreateInvoiceUseCase{
		txRunner:     txRunner,
		clientRepo:   clientRepo,
		supplierRepo: supplierRepo,
		metrics:      metrics,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CreateInvoice valida la entrada y persiste factura, transacción y deudas.
// Los fallos (de validación o de base de datos) se devuelven en Errors y no se persiste nada.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) *dto.CreateInvoiceResult {
	log := logger.FromContext(ctx).With().
		Str("client_id", in.ClientID).
		Str("supplier_id", in.SupplierID).
		Float64("base_amount", in.BaseAmount).
		Logger()
	log.Info().Msg("creando factura de materiales")

	// NaN/Inf no se convierten a decimal; se rechazan junto con los montos no positivos.
	finiteBase := !math.IsNaN(in.BaseAmount) && !math.IsInf(in.BaseAmount, 0)
	var baseAmount decimal.Decimal
	if finiteBase {
		baseAmount = domainledger.RoundMoney(decimal.NewFromFloat(in.BaseAmount))
	}

	invoiceDate, err := parseInvoiceDate(in.InvoiceDate)
	if err != nil {
		return uc.reject(&log, fmt.Sprintf("Error creating invoice: %v", err))
	}

	client, err := uc.findClient(ctx, in.ClientID)
	if err != nil {
		return uc.fail(&log, fmt.Sprintf("Error creating invoice: %v", err), err)
	}
	if client == nil {
		return uc.reject(&log, fmt.Sprintf("Client not found for ID=%s", in.ClientID))
	}

	supplier, err := uc.findSupplier(ctx, in.SupplierID)
	if err != nil {
		return uc.fail(&log, fmt.Sprintf("Error creating invoice: %v", err), err)
	}
	if supplier == nil {
		return uc.reject(&log, fmt.Sprintf("Supplier not found for ID=%s", in.SupplierID))
	}

	if !finiteBase || !baseAmount.IsPositive() {
		return uc.reject(&log, "Base amount must be a positive number.")
	}
	if client.MarkupRate.IsNegative() {
		return uc.reject(&log, fmt.Sprintf("Invalid markup_rate: %s. Must be >= 0.", client.MarkupRate.String()))
	}
	if in.ClientID == in.SupplierID {
		return uc.reject(&log, "Client and supplier cannot be the same entity.")
	}

	status := entity.InvoiceStatusUnpaid
	if in.Status != nil && *in.Status != "" {
		status, err = entity.ParseInvoiceStatus(*in.Status)
		if err != nil {
			return uc.reject(&log, fmt.Sprintf("Invalid status: %s. Must be one of: %s", *in.Status, entity.InvoiceStatusNames()))
		}
	}

	invoice := &entity.MaterialsInvoice{
		ClientID:    client.ID,
		SupplierID:  supplier.ID,
		InvoiceDate: invoiceDate,
		BaseAmount:  baseAmount,
		Status:      status,
	}
	amount := domainledger.TransactionAmount(baseAmount, client.MarkupRate)

	err = uc.txRunner.RunLedger(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		txRepo repository.TransactionRepository,
		debtRepo repository.DebtRepository,
	) error {
		// 1) Factura (asigna ID)
		if err := invoiceRepo.Create(ctx, invoice); err != nil {
			return err
		}
		now := uc.now()

		// 2) Transacción con el recargo del cliente
		if err := txRepo.Create(ctx, &entity.Transaction{
			InvoiceID:       invoice.ID,
			TransactionDate: now,
			Amount:          amount,
		}); err != nil {
			return err
		}

		// 3) Deuda del cliente (monto con recargo) y del proveedor (monto base)
		if err := debtRepo.Create(ctx, &entity.Debt{
			InvoiceID:   invoice.ID,
			Party:       entity.PartyClient,
			Amount:      amount,
			CreatedDate: now,
		}); err != nil {
			return err
		}
		return debtRepo.Create(ctx, &entity.Debt{
			InvoiceID:   invoice.ID,
			Party:       entity.PartySupplier,
			Amount:      baseAmount,
			CreatedDate: now,
		})
	})
	if err != nil {
		return uc.fail(&log, fmt.Sprintf("Database error during invoice creation: %v", err), err)
	}

	uc.metrics.InvoiceCreation(OutcomeCreated)
	uc.metrics.DebtRecorded(entity.PartyClient)
	uc.metrics.DebtRecorded(entity.PartySupplier)
	log.Info().
		Int64("invoice_id", invoice.ID).
		Str("transaction_amount", amount.StringFixed(domainledger.MoneyScale)).
		Msg("factura creada")
	return &dto.CreateInvoiceResult{Invoice: invoice}
}

func (uc *CreateInvoiceUseCase) findClient(ctx context.Context, rawID string) (*entity.Client, error) {
	id, err := relay.ResolveID(TypeClient, rawID)
	if err != nil {
		return nil, nil // un ID ilegible equivale a inexistente
	}
	return uc.clientRepo.GetByID(ctx, id)
}

func (uc *CreateInvoiceUseCase) findSupplier(ctx context.Context, rawID string) (*entity.Supplier, error) {
	id, err := relay.ResolveID(TypeSupplier, rawID)
	if err != nil {
		return nil, nil
	}
	return uc.supplierRepo.GetByID(ctx, id)
}

func (uc *CreateInvoiceUseCase) reject(log *zerolog.Logger, msg string) *dto.CreateInvoiceResult {
	log.Error().Str("reason", msg).Msg("factura rechazada")
	uc.metrics.InvoiceCreation(OutcomeRejected)
	return &dto.CreateInvoiceResult{Errors: []string{msg}}
}

func (uc *CreateInvoiceUseCase) fail(log *zerolog.Logger, msg string, err error) *dto.CreateInvoiceResult {
	log.Error().Err(err).Msg("error creando factura")
	uc.metrics.InvoiceCreation(OutcomeFailed)
	return &dto.CreateInvoiceResult{Errors: []string{msg}}
}

func parseInvoiceDate(s string) (time.Time, error) {
	for _, layout := range invoiceDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid isoformat string: %q", s)
}
