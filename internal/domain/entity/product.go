package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo vendible en el punto de venta.
// StockQuantity nunca es negativo: el invariante se garantiza en la transacción
// de venta (decremento condicional), no con correcciones posteriores.
type Product struct {
	ID            int64
	Name          string
	Price         decimal.Decimal // precio de venta vigente (NUMERIC, nunca float)
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
