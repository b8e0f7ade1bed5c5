package repository

import (
	"context"

	"github.com/tu-usuario/punto-venta/internal/domain/entity"
)

// ActivityLogRepository define el puerto del registro de auditoría (DIP).
// Append-only: no existe update ni delete. Append se invoca siempre dentro de
// la transacción de la mutación que documenta; si esa transacción hace
// rollback, la entrada se descarta con ella.
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *entity.ActivityLogEntry) error
	// List devuelve entradas de la más reciente a la más antigua, con email y
	// nombre del actor y nombre del producto resueltos por JOIN.
	List(ctx context.Context, limit int) ([]*entity.ActivityLogEntry, error)
}
