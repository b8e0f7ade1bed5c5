package ledger_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/punto-venta/internal/application/dto"
	"github.com/tu-usuario/punto-venta/internal/application/ledger"
	"github.com/tu-usuario/punto-venta/internal/domain"
	"github.com/tu-usuario/punto-venta/internal/domain/entity"
	"github.com/tu-usuario/punto-venta/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria con semántica transaccional
//
// Run trabaja sobre un borrador clonado del estado; si fn falla, el borrador
// se descarta (rollback) y si termina bien, el borrador reemplaza al estado
// comprometido (commit). El mutex serializa las transacciones, igual que el
// lock de fila de PostgreSQL serializa los decrementos concurrentes.
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	products       map[int64]*entity.Product
	sales          []*entity.Sale
	activity       []*entity.ActivityLogEntry
	nextProductID  int64
	nextSaleID     int64
	nextActivityID int64
}

func newMemState() *memState {
	return &memState{products: make(map[int64]*entity.Product)}
}

func (s *memState) clone() *memState {
	c := &memState{
		products:       make(map[int64]*entity.Product, len(s.products)),
		sales:          make([]*entity.Sale, len(s.sales)),
		activity:       make([]*entity.ActivityLogEntry, len(s.activity)),
		nextProductID:  s.nextProductID,
		nextSaleID:     s.nextSaleID,
		nextActivityID: s.nextActivityID,
	}
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	copy(c.sales, s.sales)
	copy(c.activity, s.activity)
	return c
}

type memStore struct {
	mu        sync.Mutex
	state     *memState
	appendErr error // inyecta fallo en Append para probar rollback
}

func newMemStore() *memStore {
	return &memStore{state: newMemState()}
}

func (st *memStore) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	activityRepo repository.ActivityLogRepository,
) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	draft := st.state.clone()
	err := fn(
		&fakeProductRepo{s: draft},
		&fakeSaleRepo{s: draft},
		&fakeActivityRepo{s: draft, fail: st.appendErr},
	)
	if err != nil {
		return err
	}
	st.state = draft
	return nil
}

// productRepo devuelve la vista comprometida (lecturas fuera de tx).
func (st *memStore) productRepo() repository.ProductRepository {
	return &fakeProductRepo{store: st}
}

func (st *memStore) saleRepo() repository.SaleRepository {
	return &fakeSaleRepo{store: st}
}

func (st *memStore) addProduct(name string, price string, stock int) int64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state.nextProductID++
	id := st.state.nextProductID
	st.state.products[id] = &entity.Product{
		ID:            id,
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	return id
}

func (st *memStore) product(id int64) *entity.Product {
	st.mu.Lock()
	defer st.mu.Unlock()
	p, ok := st.state.products[id]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func (st *memStore) allSales() []*entity.Sale {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]*entity.Sale(nil), st.state.sales...)
}

func (st *memStore) allActivity() []*entity.ActivityLogEntry {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]*entity.ActivityLogEntry(nil), st.state.activity...)
}

// ── repos falsos ──────────────────────────────────────────────────────────────
//
// Con s poblado operan sobre el borrador de una tx; con store poblado operan
// sobre el estado comprometido bajo el mutex.

type fakeProductRepo struct {
	store *memStore
	s     *memState
}

func (r *fakeProductRepo) state() (*memState, func()) {
	if r.store != nil {
		r.store.mu.Lock()
		return r.store.state, r.store.mu.Unlock
	}
	return r.s, func() {}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	s, unlock := r.state()
	defer unlock()
	s.nextProductID++
	product.ID = s.nextProductID
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	cp := *product
	s.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	s, unlock := r.state()
	defer unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	s, unlock := r.state()
	defer unlock()
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	s, unlock := r.state()
	defer unlock()
	existing, ok := s.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Name = product.Name
	existing.Price = product.Price
	existing.StockQuantity = product.StockQuantity
	existing.UpdatedAt = time.Now()
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = existing.UpdatedAt
	return nil
}

func (r *fakeProductRepo) DecrementStock(_ context.Context, id int64, qty int) error {
	s, unlock := r.state()
	defer unlock()
	p, ok := s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.StockQuantity < qty {
		return domain.ErrInsufficientStock
	}
	p.StockQuantity -= qty
	p.UpdatedAt = time.Now()
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	s, unlock := r.state()
	defer unlock()
	if _, ok := s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

type fakeSaleRepo struct {
	store *memStore
	s     *memState
}

func (r *fakeSaleRepo) state() (*memState, func()) {
	if r.store != nil {
		r.store.mu.Lock()
		return r.store.state, r.store.mu.Unlock
	}
	return r.s, func() {}
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	s, unlock := r.state()
	defer unlock()
	if sale.IdempotencyKey != "" {
		for _, existing := range s.sales {
			if existing.IdempotencyKey == sale.IdempotencyKey {
				return domain.ErrConflict
			}
		}
	}
	s.nextSaleID++
	sale.ID = s.nextSaleID
	sale.CreatedAt = time.Now()
	cp := *sale
	s.sales = append(s.sales, &cp)
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	s, unlock := r.state()
	defer unlock()
	for _, sale := range s.sales {
		if sale.ID == id {
			cp := *sale
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) GetByIdempotencyKey(_ context.Context, key string) (*entity.Sale, error) {
	s, unlock := r.state()
	defer unlock()
	for _, sale := range s.sales {
		if sale.IdempotencyKey == key {
			cp := *sale
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) ExistsForProduct(_ context.Context, productID int64) (bool, error) {
	s, unlock := r.state()
	defer unlock()
	for _, sale := range s.sales {
		if sale.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSaleRepo) List(_ context.Context, filter repository.SaleFilter) ([]*entity.Sale, error) {
	s, unlock := r.state()
	defer unlock()
	out := make([]*entity.Sale, 0, len(s.sales))
	for i := len(s.sales) - 1; i >= 0; i-- {
		sale := s.sales[i]
		if filter.CashierID > 0 && sale.CashierID != filter.CashierID {
			continue
		}
		if filter.From != nil && sale.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && sale.CreatedAt.After(*filter.To) {
			continue
		}
		cp := *sale
		out = append(out, &cp)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

type fakeActivityRepo struct {
	s    *memState
	fail error
}

func (r *fakeActivityRepo) Append(_ context.Context, entry *entity.ActivityLogEntry) error {
	if r.fail != nil {
		return r.fail
	}
	r.s.nextActivityID++
	entry.ID = r.s.nextActivityID
	entry.CreatedAt = time.Now()
	cp := *entry
	r.s.activity = append(r.s.activity, &cp)
	return nil
}

func (r *fakeActivityRepo) List(_ context.Context, limit int) ([]*entity.ActivityLogEntry, error) {
	out := make([]*entity.ActivityLogEntry, 0, limit)
	for i := len(r.s.activity) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *r.s.activity[i]
		out = append(out, &cp)
	}
	return out, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

var (
	owner   = ledger.Actor{ID: 1, Role: entity.RoleOwner}
	cashier = ledger.Actor{ID: 2, Role: entity.RoleCashier}
)

func newLedger(st *memStore) *ledger.UseCase {
	return ledger.New(st, st.productRepo(), st.saleRepo(), ledger.Config{
		OpTimeout:     5 * time.Second,
		SalesMaxLimit: 500,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale
// ──────────────────────────────────────────────────────────────────────────────

// Caso feliz: la venta descuenta stock, toma el precio vigente como fotografía
// y deja exactamente una entrada SALE_RECORD, todo en la misma transacción.
func TestRecordSale_DescuentaStockYAudita(t *testing.T) {
	st := newMemStore()
	id := st.addProduct("Café molido", "12.50", 10)
	uc := newLedger(st)

	out, err := uc.RecordSale(context.Background(), cashier, dto.RecordSaleRequest{ProductID: id, Quantity: 3})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, id, out.ProductID)
	assert.Equal(t, cashier.ID, out.CashierID)
	assert.Equal(t, 3, out.Quantity)
	assert.True(t, out.UnitPrice.Equal(decimal.RequireFromString("12.50")), "precio unitario = fotografía del precio vigente")
	assert.True(t, out.TotalPrice.Equal(decimal.RequireFromString("37.50")), "total = precio x cantidad")

	assert.Equal(t, 7, st.product(id).StockQuantity, "el stock debe quedar descontado")

	activity := st.allActivity()
	require.Len(t, activity, 1, "exactamente una entrada de auditoría")
	assert.Equal(t, entity.ActionSaleRecord, activity[0].Action)
	assert.Equal(t, cashier.ID, activity[0].ActorID)
	assert.Equal(t, entity.RoleCashier, activity[0].ActorRole)
	require.NotNil(t, activity[0].ProductID)
	assert.Equal(t, id, *activity[0].ProductID)
}

// Stock insuficiente: la operación se rechaza sin tocar nada.
func TestRecordSale_StockInsuficiente(t *testing.T) {
	st := newMemStore()
	id := st.addProduct("Azúcar", "3.00", 2)
	uc := newLedger(st)

	_, err := uc.RecordSale(context.Background(), cashier, dto.RecordSaleRequest{ProductID: id, Quantity: 5})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 2, st.product(id).StockQuantity, "el stock no debe cambiar")
	assert.Empty(t, st.allSales(), "no debe registrarse venta alguna")
	assert.Empty(t, st.allActivity(), "no debe quedar rastro en la auditoría")
}

func TestRecordSale_ProductoInexistente(t *testing.T) {
	st := newMemStore()
	uc := newLedger(st)

	_, err := uc.RecordSale(context.Background(), cashier, dto.RecordSaleRequest{ProductID: 99, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordSale_EntradaInvalida(t *testing.T) {
	st := newMemStore()
	id := st.addProduct("Sal", "1.00", 5)
	uc := newLedger(st)

	casos := []dto.RecordSaleRequest{
		{ProductID: 0, Quantity: 1},
		{ProductID: id, Quantity: 0},
		{ProductID: id, Quantity: -3},
		{ProductID: id, Quantity: 1, IdempotencyKey: "no-es-un-uuid"},
	}
	for _, in := range casos {
		_, err := uc.RecordSale(context.Background(), cashier, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "petición %+v debe rechazarse", in)
	}
}

// Concurrencia: con stock 5 y 10 cajeros comprando a la vez, exactamente 5
// ventas entran y 5 se rechazan. El stock jamás baja de cero.
func TestRecordSale_ConcurrenciaNoSobrevende(t *testing.T) {
	st := newMemStore()
	id := st.addProduct("Último lote", "9.99", 5)
	uc := newLedger(st)

	const intentos = 10
	errs := make(chan error, intentos)
	var wg sync.WaitGroup
	for i := 0; i < intentos; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RecordSale(context.Background(), cashier, dto.RecordSaleRequest{ProductID: id, Quantity: 1})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var exitos, rechazos int
	for err := range errs {
		switch {
		case err == nil:
			exitos++
		case errors.Is(err, domain.ErrInsufficientStock):
			rechazos++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 5, exitos, "deben entrar exactamente tantas ventas como stock había")
	assert.Equal(t, 5, rechazos)
	assert.Equal(t, 0, st.product(id).StockQuantity)
	assert.Len(t, st.allSales(), 5)
	assert.Len(t, st.allActivity(), 5, "una entrada de auditoría por venta comprometida")
}

// Atomicidad: si la entrada de auditoría no puede escribirse, la transacción
// entera se revierte. Nunca queda una venta sin su entrada SALE_RECORD.
func TestRecordSale_RollbackSiAuditoriaFalla(t *testing.T) {
	st := newMemStore()
	id := st.addProduct("Harina", "4.20", 8)
	st.appendErr = errors.New("disco lleno")
	uc := newLedger(st)

	_, err := uc.RecordSale(context.Background(), cashier, dto.RecordSaleRequest{ProductID: id, Quantity: 2})
	require.Error(t, err)

	assert.Equal(t, 8, st.product(id).StockQuantity, "el decremento debe revertirse")
	assert.Empty(t, st.allSales(), "la venta debe revertirse junto con la auditoría")
}

// Fotografía de precio: cambiar el precio del producto después no altera las
// ventas ya registradas.
func TestRecordSale_FotografiaDePrecio(t *testing.T) {
	st := newMemStore()
	id := st.addProduct("Té verde", "10.00", 10)
	uc := newLedger(st)
	ctx := context.Background()

	primera, err := uc.RecordSale(ctx, cashier, dto.RecordSaleRequest{ProductID: id, Quantity: 1})
	require.NoError(t, err)

	_, err = uc.UpdateProduct(ctx, owner, id, dto.SaveProductRequest{
		Name: "Té verde", Price: decimal.RequireFromString("12.00"), StockQuantity: 9,
	})
	require.NoError(t, err)

	segunda, err := uc.RecordSale(ctx, cashier, dto.RecordSaleRequest{ProductID: id, Quantity: 1})
	require.NoError(t, err)

	assert.True(t, primera.UnitPrice.Equal(decimal.RequireFromString("10.00")), "la venta vieja conserva su precio")
	assert.True(t, segunda.UnitPrice.Equal(decimal.RequireFromString("12.00")), "la venta nueva toma el precio vigente")
}

// Reintento con la misma clave de idempotencia: misma venta, un solo descuento.
func TestRecordSale_ReintentoIdempotente(t *testing.T) {
	st := newMemStore()
	id := st.addProduct("Pan", "2.00", 10)
	uc := newLedger(st)
	ctx := context.Background()
	key := "7f1c9a34-6a0b-4c7e-9b1f-3a9d2e8c5b10"

	primera, err := uc.RecordSale(ctx, cashier, dto.RecordSaleRequest{ProductID: id, Quantity: 4, IdempotencyKey: key})
	require.NoError(t, err)

	segunda, err := uc.RecordSale(ctx, cashier, dto.RecordSaleRequest{ProductID: id, Quantity: 4, IdempotencyKey: key})
	require.NoError(t, err)

	assert.Equal(t, primera.ID, segunda.ID, "el reintento devuelve la venta original")
	assert.Equal(t, 6, st.product(id).StockQuantity, "el stock se descuenta una sola vez")
	assert.Len(t, st.allSales(), 1)
}

// Escenario completo: stock 5, venta de 3, venta de 2, tercer intento falla.
func TestRecordSale_EscenarioHastaAgotarStock(t *testing.T) {
	st := newMemStore()
	id := st.addProduct("Edición limitada", "50.00", 5)
	uc := newLedger(st)
	ctx := context.Background()

	_, err := uc.RecordSale(ctx, cashier, dto.RecordSaleRequest{ProductID: id, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, st.product(id).StockQuantity)

	_, err = uc.RecordSale(ctx, cashier, dto.RecordSaleRequest{ProductID: id, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 0, st.product(id).StockQuantity)

	_, err = uc.RecordSale(ctx, cashier, dto.RecordSaleRequest{ProductID: id, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 0, st.product(id).StockQuantity, "el stock nunca queda negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones de producto
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduct_CreaYAudita(t *testing.T) {
	st := newMemStore()
	uc := newLedger(st)

	out, err := uc.AddProduct(context.Background(), owner, dto.SaveProductRequest{
		Name: "Chocolate", Price: decimal.RequireFromString("8.75"), StockQuantity: 20,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotZero(t, out.ID)

	activity := st.allActivity()
	require.Len(t, activity, 1)
	assert.Equal(t, entity.ActionProductAdd, activity[0].Action)
	assert.Equal(t, owner.ID, activity[0].ActorID)
	require.NotNil(t, activity[0].ProductID)
	assert.Equal(t, out.ID, *activity[0].ProductID)
}

func TestAddProduct_EntradaInvalida(t *testing.T) {
	st := newMemStore()
	uc := newLedger(st)

	casos := []dto.SaveProductRequest{
		{Name: "", Price: decimal.NewFromInt(1), StockQuantity: 1},
		{Name: "Negativo", Price: decimal.NewFromInt(-1), StockQuantity: 1},
		{Name: "Stock negativo", Price: decimal.NewFromInt(1), StockQuantity: -1},
	}
	for _, in := range casos {
		_, err := uc.AddProduct(context.Background(), owner, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "petición %+v debe rechazarse", in)
	}
	assert.Empty(t, st.allActivity(), "entradas rechazadas no dejan auditoría")
}

// Update de un producto inexistente revierte la transacción completa: no puede
// quedar una entrada PRODUCT_UPDATE de una mutación que no ocurrió.
func TestUpdateProduct_InexistenteSinRastro(t *testing.T) {
	st := newMemStore()
	uc := newLedger(st)

	_, err := uc.UpdateProduct(context.Background(), owner, 42, dto.SaveProductRequest{
		Name: "Fantasma", Price: decimal.NewFromInt(1), StockQuantity: 1,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, st.allActivity())
}

func TestUpdateProduct_ReemplazaCampos(t *testing.T) {
	st := newMemStore()
	id := st.addProduct("Vino", "30.00", 6)
	uc := newLedger(st)

	out, err := uc.UpdateProduct(context.Background(), owner, id, dto.SaveProductRequest{
		Name: "Vino reserva", Price: decimal.RequireFromString("45.00"), StockQuantity: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Vino reserva", out.Name)

	p := st.product(id)
	assert.Equal(t, "Vino reserva", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("45.00")))
	assert.Equal(t, 4, p.StockQuantity)

	activity := st.allActivity()
	require.Len(t, activity, 1)
	assert.Equal(t, entity.ActionProductUpdate, activity[0].Action)
}

// Un producto con ventas registradas no puede eliminarse: el historial de
// ventas referencia sus datos.
func TestDeleteProduct_ConVentasRechazado(t *testing.T) {
	st := newMemStore()
	id := st.addProduct("Queso", "15.00", 10)
	uc := newLedger(st)
	ctx := context.Background()

	_, err := uc.RecordSale(ctx, cashier, dto.RecordSaleRequest{ProductID: id, Quantity: 1})
	require.NoError(t, err)

	err = uc.DeleteProduct(ctx, owner, id)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotNil(t, st.product(id), "el producto debe sobrevivir")
}

// La entrada PRODUCT_DELETE se escribe en la misma transacción que el borrado
// y conserva el nombre del producto para el historial.
func TestDeleteProduct_AuditaYElimina(t *testing.T) {
	st := newMemStore()
	id := st.addProduct("Descontinuado", "5.00", 0)
	uc := newLedger(st)

	err := uc.DeleteProduct(context.Background(), owner, id)
	require.NoError(t, err)

	assert.Nil(t, st.product(id), "el producto debe desaparecer")
	activity := st.allActivity()
	require.Len(t, activity, 1)
	assert.Equal(t, entity.ActionProductDelete, activity[0].Action)
	assert.Contains(t, string(activity[0].Details), "Descontinuado", "los detalles conservan el nombre")
}

func TestDeleteProduct_Inexistente(t *testing.T) {
	st := newMemStore()
	uc := newLedger(st)

	err := uc.DeleteProduct(context.Background(), owner, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, st.allActivity())
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas con alcance por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestListSales_CashierSoloVeLasSuyas(t *testing.T) {
	st := newMemStore()
	id := st.addProduct("Gaseosa", "2.50", 100)
	uc := newLedger(st)
	ctx := context.Background()

	otroCajero := ledger.Actor{ID: 3, Role: entity.RoleCashier}
	_, err := uc.RecordSale(ctx, cashier, dto.RecordSaleRequest{ProductID: id, Quantity: 1})
	require.NoError(t, err)
	_, err = uc.RecordSale(ctx, otroCajero, dto.RecordSaleRequest{ProductID: id, Quantity: 2})
	require.NoError(t, err)

	propias, err := uc.ListSales(ctx, cashier, nil, nil)
	require.NoError(t, err)
	require.Len(t, propias, 1)
	assert.Equal(t, cashier.ID, propias[0].CashierID)

	todas, err := uc.ListSales(ctx, owner, nil, nil)
	require.NoError(t, err)
	assert.Len(t, todas, 2, "el dueño ve todas las ventas")
}

func TestGetSaleForActor_CashierAjenoProhibido(t *testing.T) {
	st := newMemStore()
	id := st.addProduct("Galletas", "1.50", 10)
	uc := newLedger(st)
	ctx := context.Background()

	venta, err := uc.RecordSale(ctx, cashier, dto.RecordSaleRequest{ProductID: id, Quantity: 1})
	require.NoError(t, err)

	otroCajero := ledger.Actor{ID: 3, Role: entity.RoleCashier}
	_, err = uc.GetSaleForActor(ctx, otroCajero, venta.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "un cajero no accede a ventas ajenas")

	propia, err := uc.GetSaleForActor(ctx, cashier, venta.ID)
	require.NoError(t, err)
	assert.Equal(t, venta.ID, propia.ID)

	delDueno, err := uc.GetSaleForActor(ctx, owner, venta.ID)
	require.NoError(t, err)
	assert.Equal(t, venta.ID, delDueno.ID)
}
