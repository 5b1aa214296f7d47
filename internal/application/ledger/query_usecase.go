package ledger

import (
	"context"

	"github.com/jhoicas/materials-ledger/internal/application/dto"
	"github.com/jhoicas/materials-ledger/internal/domain/entity"
	"github.com/jhoicas/materials-ledger/internal/domain/repository"
	"github.com/jhoicas/materials-ledger/pkg/relay"
)

// Nombres de tipo GraphQL codificados en los IDs globales.
const (
	TypeClient      = "Client"
	TypeSupplier    = "Supplier"
	TypeInvoice     = "MaterialsInvoice"
	TypeTransaction = "Transaction"
	TypeDebt        = "Debt"
)

// QueryUseCase consultas de solo lectura sobre el libro: búsquedas por ID, listados paginados
// y resolución de nodos por ID global.
type QueryUseCase struct {
	clientRepo   repository.ClientRepository
	supplierRepo repository.SupplierRepository
	invoiceRepo  repository.InvoiceRepository
	txRepo       repository.TransactionRepository
	debtRepo     repository.DebtRepository
	maxPageSize  int
}

// NewQueryUseCase construye el caso de uso. maxPageSize <= 0 usa DefaultMaxPageSize.
func NewQueryUseCase(
	clientRepo repository.ClientRepository,
	supplierRepo repository.SupplierRepository,
	invoiceRepo repository.InvoiceRepository,
	txRepo repository.TransactionRepository,
	debtRepo repository.DebtRepository,
	maxPageSize int,
) *QueryUseCase {
	if maxPageSize <= 0 {
		maxPageSize = DefaultMaxPageSize
	}
	return &QueryUseCase{
		clientRepo:   clientRepo,
		supplierRepo: supplierRepo,
		invoiceRepo:  invoiceRepo,
		txRepo:       txRepo,
		debtRepo:     debtRepo,
		maxPageSize:  maxPageSize,
	}
}

// Búsquedas por ID de base de datos; (nil, nil) si no existe.

func (uc *QueryUseCase) Client(ctx context.Context, id int64) (*entity.Client, error) {
	return uc.clientRepo.GetByID(ctx, id)
}

func (uc *QueryUseCase) Supplier(ctx context.Context, id int64) (*entity.Supplier, error) {
	return uc.supplierRepo.GetByID(ctx, id)
}

func (uc *QueryUseCase) Invoice(ctx context.Context, id int64) (*entity.MaterialsInvoice, error) {
	return uc.invoiceRepo.GetByID(ctx, id)
}

func (uc *QueryUseCase) Transaction(ctx context.Context, id int64) (*entity.Transaction, error) {
	return uc.txRepo.GetByID(ctx, id)
}

func (uc *QueryUseCase) Debt(ctx context.Context, id int64) (*entity.Debt, error) {
	return uc.debtRepo.GetByID(ctx, id)
}

// TransactionByInvoice transacción de la factura o nil.
func (uc *QueryUseCase) TransactionByInvoice(ctx context.Context, invoiceID int64) (*entity.Transaction, error) {
	return uc.txRepo.GetByInvoiceID(ctx, invoiceID)
}

// Listados paginados.

func (uc *QueryUseCase) Clients(ctx context.Context, args dto.PageArgs) (*Page[*entity.Client], error) {
	return paginate(ctx, args, uc.maxPageSize, uc.clientRepo.List)
}

func (uc *QueryUseCase) Suppliers(ctx context.Context, args dto.PageArgs) (*Page[*entity.Supplier], error) {
	return paginate(ctx, args, uc.maxPageSize, uc.supplierRepo.List)
}

func (uc *QueryUseCase) Invoices(ctx context.Context, args dto.PageArgs) (*Page[*entity.MaterialsInvoice], error) {
	return paginate(ctx, args, uc.maxPageSize, uc.invoiceRepo.List)
}

func (uc *QueryUseCase) Transactions(ctx context.Context, args dto.PageArgs) (*Page[*entity.Transaction], error) {
	return paginate(ctx, args, uc.maxPageSize, uc.txRepo.List)
}

func (uc *QueryUseCase) Debts(ctx context.Context, args dto.PageArgs) (*Page[*entity.Debt], error) {
	return paginate(ctx, args, uc.maxPageSize, uc.debtRepo.List)
}

// InvoicesByClient facturas de un cliente.
func (uc *QueryUseCase) InvoicesByClient(ctx context.Context, clientID int64, args dto.PageArgs) (*Page[*entity.MaterialsInvoice], error) {
	return paginate(ctx, args, uc.maxPageSize, func(ctx context.Context, page repository.PageQuery) ([]*entity.MaterialsInvoice, error) {
		return uc.invoiceRepo.ListByClient(ctx, clientID, page)
	})
}

// InvoicesBySupplier facturas de un proveedor.
func (uc *QueryUseCase) InvoicesBySupplier(ctx context.Context, supplierID int64, args dto.PageArgs) (*Page[*entity.MaterialsInvoice], error) {
	return paginate(ctx, args, uc.maxPageSize, func(ctx context.Context, page repository.PageQuery) ([]*entity.MaterialsInvoice, error) {
		return uc.invoiceRepo.ListBySupplier(ctx, supplierID, page)
	})
}

// DebtsByInvoice deudas de una factura.
func (uc *QueryUseCase) DebtsByInvoice(ctx context.Context, invoiceID int64, args dto.PageArgs) (*Page[*entity.Debt], error) {
	return paginate(ctx, args, uc.maxPageSize, func(ctx context.Context, page repository.PageQuery) ([]*entity.Debt, error) {
		return uc.debtRepo.ListByInvoice(ctx, invoiceID, page)
	})
}

// Node resuelve un ID global a la entidad correspondiente (*entity.Client, *entity.Supplier, ...).
// Un ID mal formado o de tipo desconocido devuelve (nil, nil).
func (uc *QueryUseCase) Node(ctx context.Context, globalID string) (any, error) {
	typeName, id, err := relay.FromGlobalID(globalID)
	if err != nil {
		return nil, nil
	}
	switch typeName {
	case TypeClient:
		return nilIfAbsent(uc.clientRepo.GetByID(ctx, id))
	case TypeSupplier:
		return nilIfAbsent(uc.supplierRepo.GetByID(ctx, id))
	case TypeInvoice:
		return nilIfAbsent(uc.invoiceRepo.GetByID(ctx, id))
	case TypeTransaction:
		return nilIfAbsent(uc.txRepo.GetByID(ctx, id))
	case TypeDebt:
		return nilIfAbsent(uc.debtRepo.GetByID(ctx, id))
	}
	return nil, nil
}

// nilIfAbsent evita devolver un puntero nil tipado dentro de any.
func nilIfAbsent[T any](v *T, err error) (any, error) {
	if err != nil || v == nil {
		return nil, err
	}
	return v, nil
}
