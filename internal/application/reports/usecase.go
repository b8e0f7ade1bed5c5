// Package reports contiene el proyector de reportes: agregaciones de solo
// lectura sobre estado comprometido. No muta nada y no toma locks.
package reports

import (
	"context"
	"strings"

	"github.com/tu-usuario/punto-venta/internal/application/dto"
	"github.com/tu-usuario/punto-venta/internal/domain"
	"github.com/tu-usuario/punto-venta/internal/domain/repository"
)

// allowedPeriods lista cerrada de unidades de truncado. Cualquier otro valor
// es ErrInvalidInput: texto del caller jamás llega al SQL.
var allowedPeriods = map[string]string{
	"week":  "week",
	"month": "month",
	"year":  "year",
}

// Config límites de la ventana del heatmap.
type Config struct {
	HeatmapDays    int // ventana por defecto
	HeatmapMaxDays int // tope
}

// UseCase proyector de reportes del dueño.
type UseCase struct {
	repo repository.ReportRepository
	cfg  Config
}

// New construye el caso de uso.
func New(repo repository.ReportRepository, cfg Config) *UseCase {
	if cfg.HeatmapDays <= 0 {
		cfg.HeatmapDays = 90
	}
	if cfg.HeatmapMaxDays <= 0 {
		cfg.HeatmapMaxDays = 365
	}
	return &UseCase{repo: repo, cfg: cfg}
}

// PeriodSummary ingresos y unidades desde el inicio del período (date_trunc).
func (uc *UseCase) PeriodSummary(ctx context.Context, period string) (*dto.PeriodSummaryResponse, error) {
	trunc, ok := allowedPeriods[strings.ToLower(period)]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	res, err := uc.repo.PeriodSummary(ctx, trunc)
	if err != nil {
		return nil, err
	}
	return &dto.PeriodSummaryResponse{Revenue: res.Revenue, Items: res.Items}, nil
}

// Totals agregados de todos los tiempos más conteos de productos y cajeros.
func (uc *UseCase) Totals(ctx context.Context) (*dto.TotalsResponse, error) {
	res, err := uc.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TotalsResponse{
		TotalProducts: res.TotalProducts,
		TotalCashiers: res.TotalCashiers,
		Revenue:       res.Revenue,
		Orders:        res.Orders,
		Items:         res.Items,
	}, nil
}

// Heatmap ventas por día de los últimos N días. N se acota a [1, HeatmapMaxDays].
func (uc *UseCase) Heatmap(ctx context.Context, days int) ([]dto.HeatmapPointResponse, error) {
	if days <= 0 {
		days = uc.cfg.HeatmapDays
	}
	if days > uc.cfg.HeatmapMaxDays {
		days = uc.cfg.HeatmapMaxDays
	}
	buckets, err := uc.repo.Heatmap(ctx, days)
	if err != nil {
		return nil, err
	}
	points := make([]dto.HeatmapPointResponse, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, dto.HeatmapPointResponse{
			Date:    b.Day.Format("2006-01-02"),
			Count:   b.Count,
			Revenue: b.Revenue,
		})
	}
	return points, nil
}
