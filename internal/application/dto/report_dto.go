package dto

import "github.com/shopspring/decimal"

// PeriodSummaryResponse resumen de un período truncado (week/month/year).
type PeriodSummaryResponse struct {
	Revenue decimal.Decimal `json:"revenue"`
	Items   int64           `json:"items"`
}

// TotalsResponse resumen de todos los tiempos para el dashboard del dueño.
type TotalsResponse struct {
	TotalProducts int64           `json:"totalProducts"`
	TotalCashiers int64           `json:"totalCashiers"`
	Revenue       decimal.Decimal `json:"revenue"`
	Orders        int64           `json:"orders"`
	Items         int64           `json:"items"`
}

// HeatmapPointResponse ventas de un día calendario dentro de la ventana.
type HeatmapPointResponse struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Count   int64           `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}
