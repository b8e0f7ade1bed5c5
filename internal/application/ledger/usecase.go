package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/punto-venta/internal/application/dto"
	"github.com/tu-usuario/punto-venta/internal/domain"
	"github.com/tu-usuario/punto-venta/internal/domain/entity"
	"github.com/tu-usuario/punto-venta/internal/domain/repository"
)

// Actor es la identidad ya resuelta por el gate de autenticación. El ledger
// confía en ella: no vuelve a verificar credenciales, solo la registra en la
// auditoría como fotografía (id + rol al momento de la acción).
type Actor struct {
	ID   int64
	Role string
}

// Config parámetros operativos del ledger.
type Config struct {
	// OpTimeout acota cada operación transaccional. Una espera de lock que
	// supere el plazo aborta con domain.ErrTimeout (reintentable).
	OpTimeout time.Duration
	// SalesMaxLimit tope del listado de ventas.
	SalesMaxLimit int
}

// UseCase es el Ledger de inventario: valida stock, descuenta, registra la
// venta y anota la auditoría como una sola unidad atómica. Las mutaciones de
// producto siguen el mismo patrón sin chequeo de stock.
//
// No hay locks en memoria: la seguridad bajo concurrencia la da la capa de
// almacenamiento (decremento condicional dentro de la transacción).
type UseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	cfg         Config
}

// New construye el ledger con el manejador de almacenamiento explícito
// (nada de singletons: el pool se adquiere al arrancar y se inyecta aquí).
func New(txRunner TxRunner, productRepo repository.ProductRepository, saleRepo repository.SaleRepository, cfg Config) *UseCase {
	if cfg.OpTimeout <= 0 {
		cfg.OpTimeout = 5 * time.Second
	}
	if cfg.SalesMaxLimit <= 0 {
		cfg.SalesMaxLimit = 500
	}
	return &UseCase{txRunner: txRunner, productRepo: productRepo, saleRepo: saleRepo, cfg: cfg}
}

// RecordSale registra una venta: descuenta stock, inserta la venta con el
// precio vigente como fotografía y anota SALE_RECORD, todo en una transacción.
//
// El chequeo de stock previo a la transacción es solo para fallar rápido; el
// chequeo autoritativo es el decremento condicional dentro de la tx, que cierra
// la ventana de carrera entre cajeros concurrentes.
func (uc *UseCase) RecordSale(ctx context.Context, actor Actor, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID <= 0 || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidRole(actor.Role) {
		return nil, domain.ErrForbidden
	}
	if in.IdempotencyKey != "" {
		if _, err := uuid.Parse(in.IdempotencyKey); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.OpTimeout)
	defer cancel()

	// Reintento con la misma clave: devolver la venta original, no duplicar.
	if in.IdempotencyKey != "" {
		existing, err := uc.saleRepo.GetByIdempotencyKey(ctx, in.IdempotencyKey)
		if err != nil {
			return nil, mapCtxErr(ctx, err)
		}
		if existing != nil {
			return toSaleResponse(existing), nil
		}
	}

	// Fallar rápido antes de abrir la transacción (optimización, no garantía).
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, mapCtxErr(ctx, err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.StockQuantity < in.Quantity {
		return nil, domain.ErrInsufficientStock
	}

	var sale *entity.Sale
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		activityRepo repository.ActivityLogRepository,
	) error {
		// Decremento condicional: cero filas afectadas = stock insuficiente.
		if err := productRepo.DecrementStock(ctx, in.ProductID, in.Quantity); err != nil {
			return err
		}
		// Releer dentro de la tx: la fotografía de precio debe ser la vigente
		// al momento del commit, no la de la lectura previa.
		current, err := productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}

		qty := decimal.NewFromInt(int64(in.Quantity))
		sale = &entity.Sale{
			ProductID:      in.ProductID,
			CashierID:      actor.ID,
			Quantity:       in.Quantity,
			UnitPrice:      current.Price,
			TotalPrice:     current.Price.Mul(qty),
			IdempotencyKey: in.IdempotencyKey,
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		details, _ := json.Marshal(map[string]any{
			"quantity":   in.Quantity,
			"unitPrice":  sale.UnitPrice,
			"totalPrice": sale.TotalPrice,
		})
		return activityRepo.Append(ctx, &entity.ActivityLogEntry{
			ActorID:   actor.ID,
			ActorRole: actor.Role,
			Action:    entity.ActionSaleRecord,
			ProductID: &in.ProductID,
			Details:   details,
		})
	})
	if err != nil {
		// Dos requests con la misma clave compitiendo: el perdedor choca con el
		// índice único; devolver la venta que ganó.
		if in.IdempotencyKey != "" && errors.Is(err, domain.ErrConflict) {
			if existing, lookupErr := uc.saleRepo.GetByIdempotencyKey(ctx, in.IdempotencyKey); lookupErr == nil && existing != nil {
				return toSaleResponse(existing), nil
			}
		}
		return nil, mapCtxErr(ctx, err)
	}
	return toSaleResponse(sale), nil
}

// AddProduct inserta el producto y la entrada PRODUCT_ADD en una transacción.
// La autorización OWNER ya ocurrió en el gate; aquí solo se exige un actor válido.
func (uc *UseCase) AddProduct(ctx context.Context, actor Actor, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.OpTimeout)
	defer cancel()

	var product *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
		activityRepo repository.ActivityLogRepository,
	) error {
		product = &entity.Product{
			Name:          in.Name,
			Price:         in.Price,
			StockQuantity: in.StockQuantity,
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		details, _ := json.Marshal(map[string]any{
			"name":           in.Name,
			"price":          in.Price,
			"stock_quantity": in.StockQuantity,
		})
		return activityRepo.Append(ctx, &entity.ActivityLogEntry{
			ActorID:   actor.ID,
			ActorRole: actor.Role,
			Action:    entity.ActionProductAdd,
			ProductID: &product.ID,
			Details:   details,
		})
	})
	if err != nil {
		return nil, mapCtxErr(ctx, err)
	}
	return toProductResponse(product), nil
}

// UpdateProduct reemplaza los tres campos mutables y anota PRODUCT_UPDATE.
// Si ninguna fila coincide, la transacción entera se revierte: jamás queda una
// entrada de auditoría de una mutación que no ocurrió.
func (uc *UseCase) UpdateProduct(ctx context.Context, actor Actor, productID int64, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.OpTimeout)
	defer cancel()

	product := &entity.Product{
		ID:            productID,
		Name:          in.Name,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
	}
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
		activityRepo repository.ActivityLogRepository,
	) error {
		if err := productRepo.Update(ctx, product); err != nil {
			return err
		}
		details, _ := json.Marshal(map[string]any{
			"name":           in.Name,
			"price":          in.Price,
			"stock_quantity": in.StockQuantity,
		})
		return activityRepo.Append(ctx, &entity.ActivityLogEntry{
			ActorID:   actor.ID,
			ActorRole: actor.Role,
			Action:    entity.ActionProductUpdate,
			ProductID: &productID,
			Details:   details,
		})
	})
	if err != nil {
		return nil, mapCtxErr(ctx, err)
	}
	return toProductResponse(product), nil
}

// DeleteProduct elimina un producto sin ventas asociadas.
//
// Orden crítico dentro de la transacción: primero la entrada PRODUCT_DELETE
// (la FK de activity_logs exige que el producto exista al insertar), después
// el DELETE. Invertir el orden violaría la constraint o dejaría un borrado
// sin auditar.
func (uc *UseCase) DeleteProduct(ctx context.Context, actor Actor, productID int64) error {
	if productID <= 0 {
		return domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.OpTimeout)
	defer cancel()

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		activityRepo repository.ActivityLogRepository,
	) error {
		// RESTRICT: un producto con ventas no se elimina.
		hasSales, err := saleRepo.ExistsForProduct(ctx, productID)
		if err != nil {
			return err
		}
		if hasSales {
			return domain.ErrConflict
		}

		product, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		details, _ := json.Marshal(map[string]string{"name": product.Name})
		if err := activityRepo.Append(ctx, &entity.ActivityLogEntry{
			ActorID:   actor.ID,
			ActorRole: actor.Role,
			Action:    entity.ActionProductDelete,
			ProductID: &productID,
			Details:   details,
		}); err != nil {
			return err
		}
		return productRepo.Delete(ctx, productID)
	})
	return mapCtxErr(ctx, err)
}

// ListProducts lista los productos más recientes primero (pantalla del POS).
func (uc *UseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// ListSales lista ventas de la más reciente a la más antigua. Un CASHIER solo
// ve las suyas; el OWNER las ve todas. from/to acotan por created_at.
func (uc *UseCase) ListSales(ctx context.Context, actor Actor, from, to *time.Time) ([]dto.SaleResponse, error) {
	filter := repository.SaleFilter{From: from, To: to, Limit: uc.cfg.SalesMaxLimit}
	if actor.Role == entity.RoleCashier {
		filter.CashierID = actor.ID
	}
	list, err := uc.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return items, nil
}

// GetSaleForActor devuelve una venta para el recibo. Un CASHIER solo puede
// pedir ventas propias; ajeno devuelve ErrForbidden sin revelar existencia.
func (uc *UseCase) GetSaleForActor(ctx context.Context, actor Actor, saleID int64) (*entity.Sale, error) {
	if saleID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if actor.Role == entity.RoleCashier && sale.CashierID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return sale, nil
}

func validateProductInput(in dto.SaveProductRequest) error {
	if in.Name == "" || in.Price.IsNegative() || in.StockQuantity < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// mapCtxErr traduce el vencimiento del plazo a ErrTimeout (reintentable) y
// deja pasar los errores de dominio terminales tal cual.
func mapCtxErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.ErrTimeout
	}
	return err
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:           s.ID,
		ProductID:    s.ProductID,
		ProductName:  s.ProductName,
		CashierID:    s.CashierID,
		CashierEmail: s.CashierEmail,
		CashierName:  s.CashierName,
		Quantity:     s.Quantity,
		UnitPrice:    s.UnitPrice,
		TotalPrice:   s.TotalPrice,
		CreatedAt:    s.CreatedAt,
	}
}
