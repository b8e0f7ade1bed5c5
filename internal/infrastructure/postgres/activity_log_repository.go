package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/punto-venta/internal/domain/entity"
	"github.com/tu-usuario/punto-venta/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación del registro de auditoría sobre PostgreSQL
// (usable con pool o tx). Append-only: no existe UPDATE ni DELETE sobre
// activity_logs en todo el código.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Append inserta una entrada. Se invoca siempre dentro de la transacción de la
// mutación que documenta: si esa tx hace rollback, la entrada desaparece con
// ella. No hay durabilidad de auditoría independiente de la transacción.
func (r *ActivityLogRepo) Append(ctx context.Context, entry *entity.ActivityLogEntry) error {
	details := entry.Details
	if len(details) == 0 {
		details = []byte(`{}`)
	}
	query := `
		INSERT INTO activity_logs (actor_id, actor_role, action, product_id, details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		entry.ActorID, entry.ActorRole, entry.Action, entry.ProductID, details,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("append activity log: %w", err)
	}
	return nil
}

// List devuelve las entradas más recientes primero con actor y producto
// resueltos por JOIN. product_name llega NULL si el producto fue eliminado
// (la FK es SET NULL, la entrada sobrevive).
func (r *ActivityLogRepo) List(ctx context.Context, limit int) ([]*entity.ActivityLogEntry, error) {
	query := `
		SELECT a.id,
		       a.actor_id,
		       COALESCE(u.email, '')                              AS actor_email,
		       COALESCE(u.name, split_part(u.email, '@', 1), '')  AS actor_name,
		       a.actor_role,
		       a.action,
		       a.product_id,
		       p.name                                             AS product_name,
		       a.details,
		       a.created_at
		FROM activity_logs a
		LEFT JOIN users    u ON u.id = a.actor_id
		LEFT JOIN products p ON p.id = a.product_id
		ORDER BY a.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityLogEntry
	for rows.Next() {
		var e entity.ActivityLogEntry
		if err := rows.Scan(
			&e.ID, &e.ActorID, &e.ActorEmail, &e.ActorName, &e.ActorRole,
			&e.Action, &e.ProductID, &e.ProductName, &e.Details, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
