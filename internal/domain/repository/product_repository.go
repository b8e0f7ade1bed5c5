package repository

import (
	"context"

	"github.com/tu-usuario/punto-venta/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las mutaciones solo se invocan desde transacciones del Ledger.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// Update actualiza name, price y stock_quantity y sube updated_at.
	// Devuelve domain.ErrNotFound si ninguna fila coincide.
	Update(ctx context.Context, product *entity.Product) error
	// DecrementStock resta qty de forma condicional:
	//   UPDATE ... SET stock_quantity = stock_quantity - qty
	//   WHERE id = ? AND stock_quantity >= qty
	// Cero filas afectadas se traduce a domain.ErrInsufficientStock (o
	// domain.ErrNotFound si la fila ya no existe). Esta es la verificación
	// autoritativa contra oversell; el chequeo previo fuera de la transacción
	// es solo un atajo para fallar rápido.
	DecrementStock(ctx context.Context, id int64, qty int) error
	// Delete elimina el producto. Devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id int64) error
}
