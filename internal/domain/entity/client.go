package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client representa una organización que encarga materiales y paga con recargo.
type Client struct {
	ID         int64
	Name       string
	MarkupRate decimal.Decimal // fracción, ej. 0.15 = 15% (NUMERIC(10,4))
	CreatedAt  time.Time
}
