package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/punto-venta/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el resumen y el heatmap del dueño.
// Lee estado comprometido; nunca muta ni toma locks.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// PeriodSummary ingresos y unidades desde date_trunc(período, now()).
// El parámetro trunc llega validado contra la lista cerrada {week,month,year}
// en la capa de aplicación; aun así viaja como parámetro, no interpolado.
func (r *ReportRepo) PeriodSummary(ctx context.Context, trunc string) (*repository.PeriodSummaryResult, error) {
	const query = `
	SELECT
	    COALESCE(SUM(total_price), 0) AS revenue,
	    COALESCE(SUM(quantity),    0) AS items
	FROM sales
	WHERE created_at >= date_trunc($1, now())`

	var res repository.PeriodSummaryResult
	if err := r.pool.QueryRow(ctx, query, trunc).Scan(&res.Revenue, &res.Items); err != nil {
		return nil, fmt.Errorf("reports.PeriodSummary: %w", err)
	}
	return &res, nil
}

// Totals agregados de todos los tiempos más conteos de productos y cajeros.
func (r *ReportRepo) Totals(ctx context.Context) (*repository.TotalsResult, error) {
	const query = `
	SELECT
	    COALESCE(SUM(total_price), 0)                        AS revenue,
	    COUNT(*)                                             AS orders,
	    COALESCE(SUM(quantity), 0)                           AS items,
	    (SELECT COUNT(*) FROM products)                      AS total_products,
	    (SELECT COUNT(*) FROM users WHERE role = 'CASHIER')  AS total_cashiers
	FROM sales`

	var res repository.TotalsResult
	err := r.pool.QueryRow(ctx, query).Scan(
		&res.Revenue, &res.Orders, &res.Items, &res.TotalProducts, &res.TotalCashiers,
	)
	if err != nil {
		return nil, fmt.Errorf("reports.Totals: %w", err)
	}
	return &res, nil
}

// Heatmap agrega ventas por día calendario de los últimos `days` días.
// La ventana viaja como parámetro entero (make_interval), nunca como texto
// concatenado al SQL.
func (r *ReportRepo) Heatmap(ctx context.Context, days int) ([]repository.HeatmapBucket, error) {
	const query = `
	SELECT
	    date_trunc('day', created_at)  AS day,
	    COUNT(*)                       AS count,
	    COALESCE(SUM(total_price), 0)  AS revenue
	FROM sales
	WHERE created_at >= now() - make_interval(days => $1)
	GROUP BY 1
	ORDER BY 1`

	rows, err := r.pool.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("reports.Heatmap: %w", err)
	}
	defer rows.Close()
	var buckets []repository.HeatmapBucket
	for rows.Next() {
		var b repository.HeatmapBucket
		if err := rows.Scan(&b.Day, &b.Count, &b.Revenue); err != nil {
			return nil, fmt.Errorf("reports.Heatmap scan: %w", err)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}
