package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodSummaryResult ingresos y unidades vendidas desde el inicio del período.
type PeriodSummaryResult struct {
	Revenue decimal.Decimal
	Items   int64
}

// TotalsResult agregados de todos los tiempos para el resumen del dueño.
type TotalsResult struct {
	Revenue       decimal.Decimal
	Orders        int64
	Items         int64
	TotalProducts int64
	TotalCashiers int64
}

// HeatmapBucket ventas y recaudo de un día calendario.
type HeatmapBucket struct {
	Day     time.Time
	Count   int64
	Revenue decimal.Decimal
}

// ReportRepository consultas de solo lectura sobre estado comprometido.
// No adquiere locks: los resultados son fotografías, no insumos de control.
//
// El parámetro trunc de PeriodSummary llega ya validado contra la lista
// cerrada {week, month, year}; el adaptador nunca interpola texto del caller.
type ReportRepository interface {
	PeriodSummary(ctx context.Context, trunc string) (*PeriodSummaryResult, error)
	Totals(ctx context.Context) (*TotalsResult, error)
	Heatmap(ctx context.Context, days int) ([]HeatmapBucket, error)
}
