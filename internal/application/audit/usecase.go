// Package audit expone la lectura del registro de actividad. La escritura no
// vive aquí: Append siempre ocurre dentro de la transacción del ledger que
// documenta, nunca como efecto suelto.
package audit

import (
	"context"

	"github.com/tu-usuario/punto-venta/internal/application/dto"
	"github.com/tu-usuario/punto-venta/internal/domain/entity"
	"github.com/tu-usuario/punto-venta/internal/domain/repository"
)

// Config límites de paginación del listado.
type Config struct {
	DefaultLimit int // aplicado cuando el caller no pide nada
	MaxLimit     int // tope duro, sin importar lo pedido
}

// UseCase lectura del registro de auditoría (snapshot consistente, sin tx).
type UseCase struct {
	repo repository.ActivityLogRepository
	cfg  Config
}

// New construye el caso de uso.
func New(repo repository.ActivityLogRepository, cfg Config) *UseCase {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 200
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 500
	}
	return &UseCase{repo: repo, cfg: cfg}
}

// List devuelve las entradas más recientes primero. El límite pedido se acota
// a [1, MaxLimit] para mantener la respuesta de tamaño razonable.
func (uc *UseCase) List(ctx context.Context, limit int) ([]dto.ActivityEntryResponse, error) {
	if limit <= 0 {
		limit = uc.cfg.DefaultLimit
	}
	if limit > uc.cfg.MaxLimit {
		limit = uc.cfg.MaxLimit
	}
	entries, err := uc.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivityEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, toEntryResponse(e))
	}
	return items, nil
}

func toEntryResponse(e *entity.ActivityLogEntry) dto.ActivityEntryResponse {
	return dto.ActivityEntryResponse{
		ID:          e.ID,
		ActorID:     e.ActorID,
		ActorEmail:  e.ActorEmail,
		ActorName:   e.ActorName,
		ActorRole:   e.ActorRole,
		Action:      e.Action,
		ProductID:   e.ProductID,
		ProductName: e.ProductName,
		Details:     e.Details,
		CreatedAt:   e.CreatedAt,
	}
}
