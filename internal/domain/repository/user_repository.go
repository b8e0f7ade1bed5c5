package repository

import (
	"context"

	"github.com/tu-usuario/punto-venta/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los usuarios nunca se eliminan desde este subsistema y su rol es inmutable.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ListCashiers(ctx context.Context) ([]*entity.User, error)
}
