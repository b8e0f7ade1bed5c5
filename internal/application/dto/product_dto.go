package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductRequest datos de alta o actualización de producto. En update los
// tres campos mutables se reemplazan completos, igual que en el POS original.
type SaveProductRequest struct {
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
