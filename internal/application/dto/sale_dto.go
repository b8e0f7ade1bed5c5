package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest registro de una venta. IdempotencyKey es un UUID opcional:
// si el cliente reintenta con la misma clave, recibe la venta original en vez
// de registrar una segunda.
type RecordSaleRequest struct {
	ProductID      int64  `json:"product_id"`
	Quantity       int    `json:"quantity"`
	IdempotencyKey string `json:"idempotency_key"`
}

// SaleResponse representación HTTP de una venta registrada.
type SaleResponse struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	CashierID    int64           `json:"cashier_id"`
	CashierEmail string          `json:"cashier_email,omitempty"`
	CashierName  string          `json:"cashier_name,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	CreatedAt    time.Time       `json:"created_at"`
}
