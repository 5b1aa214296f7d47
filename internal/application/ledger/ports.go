package ledger

import (
	"context"

	"github.com/jhoicas/materials-ledger/internal/domain/repository"
)

// LedgerTxRunner ejecuta una función dentro de una transacción con los repos de factura,
// transacción y deudas atados a ella. Si fn retorna error se hace rollback.
type LedgerTxRunner interface {
	RunLedger(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		txRepo repository.TransactionRepository,
		debtRepo repository.DebtRepository,
	) error) error
}

// Resultados posibles de la creación de facturas (etiqueta de métricas).
const (
	OutcomeCreated  = "created"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics puerto de instrumentación de los casos de uso.
type Metrics interface {
	InvoiceCreation(outcome string)
	DebtRecorded(party string)
}

type nopMetrics struct{}

func (nopMetrics) InvoiceCreation(string) {}
func (nopMetrics) DebtRecorded(string)    {}

// StatementPDFGenerator genera la representación en PDF de un estado de cuenta de factura.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, st *Statement) ([]byte, error)
}
