package ledger

import "github.com/shopspring/decimal"

// MoneyScale decimales con los que se persisten los montos (NUMERIC(10,2)).
const MoneyScale = 2

var one = decimal.NewFromInt(1)

// TransactionAmount aplica el recargo del cliente al monto base del proveedor (servicio de dominio).
// Monto = Base * (1 + MarkupRate), redondeado a MoneyScale.
func TransactionAmount(base, markupRate decimal.Decimal) decimal.Decimal {
	return RoundMoney(base.Mul(one.Add(markupRate)))
}

// RoundMoney redondea half-up (lejos de cero) a la escala de las columnas de montos.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}
