package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es un hecho inmutable: nunca se actualiza ni se borra.
// UnitPrice es una fotografía del precio del producto al momento de la venta;
// cambios posteriores de precio no la afectan.
type Sale struct {
	ID         int64
	ProductID  int64
	CashierID  int64
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal // UnitPrice × Quantity, calculado al registrar

	// IdempotencyKey es el UUID opcional suministrado por el cliente para
	// deduplicar reintentos de POST /sales. Vacío si el cliente no envió uno.
	IdempotencyKey string

	CreatedAt time.Time

	// Campos denormalizados para listados (JOIN con products y users).
	ProductName  string
	CashierEmail string
	CashierName  string
}
