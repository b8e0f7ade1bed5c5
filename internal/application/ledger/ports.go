package ledger

import (
	"context"

	"github.com/tu-usuario/punto-venta/internal/domain/entity"
	"github.com/tu-usuario/punto-venta/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger: si fn
// devuelve error, todo lo escrito dentro (stock, venta, auditoría) se revierte.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		activityRepo repository.ActivityLogRepository,
	) error) error
}

// ReceiptGenerator produce el PDF del recibo de una venta ya registrada.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale) ([]byte, error)
}
