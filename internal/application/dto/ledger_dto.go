package dto

import "github.com/jhoicas/materials-ledger/internal/domain/entity"

// CreateInvoiceRequest argumentos de la mutación createMaterialsInvoice.
// ClientID y SupplierID aceptan ID global o ID numérico.
type CreateInvoiceRequest struct {
	ClientID    string
	SupplierID  string
	InvoiceDate string // ISO-8601
	BaseAmount  float64
	Status      *string // opcional; por defecto UNPAID
}

// CreateInvoiceResult resultado de la mutación: Invoice o Errors, nunca ambos.
type CreateInvoiceResult struct {
	Invoice *entity.MaterialsInvoice
	Errors  []string
}

// CreateClientRequest argumentos de createClient.
type CreateClientRequest struct {
	Name       string  `validate:"required,max=100"`
	MarkupRate float64 `validate:"gte=0,lt=1000000"`
}

// CreateSupplierRequest argumentos de createSupplier.
type CreateSupplierRequest struct {
	Name string `validate:"required,max=100"`
}
