package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Partes deudoras posibles.
const (
	PartyClient   = "client"
	PartySupplier = "supplier"
)

// Debt registra un monto adeudado por una parte y ligado a una factura.
type Debt struct {
	ID          int64
	InvoiceID   int64
	Party       string // PartyClient | PartySupplier
	Amount      decimal.Decimal
	CreatedDate time.Time
}
