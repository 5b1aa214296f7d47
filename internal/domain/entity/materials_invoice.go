package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado de una factura de materiales.
type InvoiceStatus string

// Estados válidos (deben coincidir con el CHECK de materials_invoices.status).
const (
	InvoiceStatusDraft   InvoiceStatus = "DRAFT"
	InvoiceStatusPending InvoiceStatus = "PENDING"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusUnpaid  InvoiceStatus = "UNPAID"
)

// InvoiceStatuses en el orden en que se declaran en el esquema.
var InvoiceStatuses = []InvoiceStatus{
	InvoiceStatusDraft,
	InvoiceStatusPending,
	InvoiceStatusPaid,
	InvoiceStatusUnpaid,
}

// ParseInvoiceStatus convierte el nombre exacto (sensible a mayúsculas) en InvoiceStatus.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	for _, st := range InvoiceStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("estado %q: debe ser uno de %s", s, InvoiceStatusNames())
}

// InvoiceStatusNames lista los nombres válidos separados por coma.
func InvoiceStatusNames() string {
	names := make([]string, len(InvoiceStatuses))
	for i, st := range InvoiceStatuses {
		names[i] = string(st)
	}
	return strings.Join(names, ", ")
}

// MaterialsInvoice factura de compra de materiales de un proveedor, facturada a un cliente.
type MaterialsInvoice struct {
	ID          int64
	ClientID    int64
	SupplierID  int64
	InvoiceDate time.Time
	BaseAmount  decimal.Decimal // NUMERIC(10,2), monto del proveedor sin recargo
	Status      InvoiceStatus
}
