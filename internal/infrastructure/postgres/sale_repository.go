package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/punto-venta/internal/domain"
	"github.com/tu-usuario/punto-venta/internal/domain/entity"
	"github.com/tu-usuario/punto-venta/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee: una venta jamás se actualiza ni se borra.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta y completa ID y created_at. Una colisión del índice
// único de idempotency_key (dos reintentos con la misma clave compitiendo) se
// reporta como ErrConflict para que el caller devuelva la venta ganadora.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (product_id, cashier_id, quantity, unit_price, total_price, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		sale.ProductID, sale.CashierID, sale.Quantity,
		sale.UnitPrice, sale.TotalPrice, sale.IdempotencyKey,
	).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

const saleSelect = `
	SELECT s.id,
	       s.product_id,
	       COALESCE(p.name, '')                                 AS product_name,
	       s.cashier_id,
	       COALESCE(u.email, '')                                AS cashier_email,
	       COALESCE(u.name, split_part(u.email, '@', 1), '')    AS cashier_name,
	       s.quantity,
	       s.unit_price,
	       s.total_price,
	       s.created_at
	FROM sales s
	LEFT JOIN products p ON p.id = s.product_id
	LEFT JOIN users    u ON u.id = s.cashier_id`

// GetByID obtiene una venta por ID. Devuelve nil sin error si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx, saleSelect+` WHERE s.id = $1`, id).Scan(
		&s.ID, &s.ProductID, &s.ProductName, &s.CashierID, &s.CashierEmail,
		&s.CashierName, &s.Quantity, &s.UnitPrice, &s.TotalPrice, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetByIdempotencyKey obtiene la venta registrada con esa clave, o nil.
func (r *SaleRepo) GetByIdempotencyKey(ctx context.Context, key string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx, saleSelect+` WHERE s.idempotency_key = $1`, key).Scan(
		&s.ID, &s.ProductID, &s.ProductName, &s.CashierID, &s.CashierEmail,
		&s.CashierName, &s.Quantity, &s.UnitPrice, &s.TotalPrice, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale by idempotency key: %w", err)
	}
	s.IdempotencyKey = key
	return &s, nil
}

// ExistsForProduct indica si alguna venta referencia al producto (RESTRICT).
func (r *SaleRepo) ExistsForProduct(ctx context.Context, productID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sales WHERE product_id = $1)`, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("sales exist for product: %w", err)
	}
	return exists, nil
}

// List lista ventas con filtros opcionales, más recientes primero.
func (r *SaleRepo) List(ctx context.Context, filter repository.SaleFilter) ([]*entity.Sale, error) {
	query := saleSelect + ` WHERE 1=1`
	args := []any{}
	if filter.CashierID > 0 {
		args = append(args, filter.CashierID)
		query += fmt.Sprintf(" AND s.cashier_id = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND s.created_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND s.created_at <= $%d", len(args))
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 500
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY s.created_at DESC LIMIT $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.ProductName, &s.CashierID, &s.CashierEmail,
			&s.CashierName, &s.Quantity, &s.UnitPrice, &s.TotalPrice, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
