package ledger

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/materials-ledger/internal/domain"
	"github.com/jhoicas/materials-ledger/internal/domain/entity"
	"github.com/jhoicas/materials-ledger/internal/domain/repository"
)

// Statement estado de cuenta de una factura: partes, transacción y deudas.
type Statement struct {
	Invoice     *entity.MaterialsInvoice
	Client      *entity.Client
	Supplier    *entity.Supplier
	Transaction *entity.Transaction // nil si la factura no tiene transacción
	Debts       []*entity.Debt
}

// StatementUseCase arma el estado de cuenta y su PDF.
type StatementUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	clientRepo   repository.ClientRepository
	supplierRepo repository.SupplierRepository
	txRepo       repository.TransactionRepository
	debtRepo     repository.DebtRepository
	generator    StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso inyectando todas sus dependencias.
func NewStatementUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	supplierRepo repository.SupplierRepository,
	txRepo repository.TransactionRepository,
	debtRepo repository.DebtRepository,
	generator StatementPDFGenerator,
) *StatementUseCase {
	return &StatementUseCase{
		invoiceRepo:  invoiceRepo,
		clientRepo:   clientRepo,
		supplierRepo: supplierRepo,
		txRepo:       txRepo,
		debtRepo:     debtRepo,
		generator:    generator,
	}
}

// BuildStatement carga la factura y, en paralelo, cliente, proveedor, transacción y deudas.
//
// Retorna domain.ErrNotFound si la factura no existe.
func (uc *StatementUseCase) BuildStatement(ctx context.Context, invoiceID int64) (*Statement, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("statement: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	st := &Statement{Invoice: inv}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := uc.clientRepo.GetByID(gctx, inv.ClientID)
		if err != nil {
			return fmt.Errorf("statement: obtener cliente: %w", err)
		}
		if c == nil {
			return fmt.Errorf("statement: cliente %d: %w", inv.ClientID, domain.ErrNotFound)
		}
		st.Client = c
		return nil
	})
	g.Go(func() error {
		s, err := uc.supplierRepo.GetByID(gctx, inv.SupplierID)
		if err != nil {
			return fmt.Errorf("statement: obtener proveedor: %w", err)
		}
		if s == nil {
			return fmt.Errorf("statement: proveedor %d: %w", inv.SupplierID, domain.ErrNotFound)
		}
		st.Supplier = s
		return nil
	})
	g.Go(func() error {
		tx, err := uc.txRepo.GetByInvoiceID(gctx, inv.ID)
		if err != nil {
			return fmt.Errorf("statement: obtener transacción: %w", err)
		}
		st.Transaction = tx
		return nil
	})
	g.Go(func() error {
		debts, err := uc.debtRepo.ListByInvoice(gctx, inv.ID, repository.PageQuery{})
		if err != nil {
			return fmt.Errorf("statement: listar deudas: %w", err)
		}
		st.Debts = debts
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return st, nil
}

// DownloadStatementPDF genera el PDF del estado de cuenta.
func (uc *StatementUseCase) DownloadStatementPDF(ctx context.Context, invoiceID int64) (pdfBytes []byte, filename string, err error) {
	st, err := uc.BuildStatement(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateStatementPDF(ctx, st)
	if err != nil {
		return nil, "", fmt.Errorf("statement: generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("estado-factura-%d.pdf", invoiceID), nil
}
