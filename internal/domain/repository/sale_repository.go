package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/punto-venta/internal/domain/entity"
)

// SaleFilter filtros del listado de ventas. CashierID > 0 restringe a un
// cajero (los CASHIER solo ven sus propias ventas).
type SaleFilter struct {
	CashierID int64
	From      *time.Time
	To        *time.Time
	Limit     int
}

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Una venta es un hecho: solo Create y lecturas, nunca update ni delete.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	// GetByIdempotencyKey devuelve la venta ya registrada con esa clave,
	// o nil si la clave no se ha usado.
	GetByIdempotencyKey(ctx context.Context, key string) (*entity.Sale, error)
	// ExistsForProduct indica si alguna venta referencia al producto
	// (RESTRICT: bloquea el borrado del producto).
	ExistsForProduct(ctx context.Context, productID int64) (bool, error)
	List(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)
}
