package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction movimiento financiero asociado 1:1 a una factura (monto con recargo del cliente).
type Transaction struct {
	ID              int64
	InvoiceID       int64
	TransactionDate time.Time
	Amount          decimal.Decimal
}
