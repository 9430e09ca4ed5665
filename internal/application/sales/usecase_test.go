package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ErpAdmin-api/internal/application/dto"
	"github.com/jhoicas/ErpAdmin-api/internal/application/sales"
	"github.com/jhoicas/ErpAdmin-api/internal/domain"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

const (
	companyID = "co-1"
	userID    = "u-1"
	whID      = "wh-1"
)

type memStockRepo struct {
	byKey map[string]*entity.Stock
}

func stockKey(productID, warehouseID string) string { return productID + "|" + warehouseID }

func (m *memStockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	return m.byKey[stockKey(productID, warehouseID)], nil
}

func (m *memStockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	if s, ok := m.byKey[stockKey(productID, warehouseID)]; ok {
		return s, nil
	}
	// La fila se crea al vuelo como en el upsert real.
	s := &entity.Stock{ProductID: productID, WarehouseID: warehouseID}
	m.byKey[stockKey(productID, warehouseID)] = s
	return s, nil
}

func (m *memStockRepo) Upsert(stock *entity.Stock) error {
	m.byKey[stockKey(stock.ProductID, stock.WarehouseID)] = stock
	return nil
}

type memSalesOrderRepo struct {
	orders map[string]*entity.SalesOrder
	items  map[string][]*entity.SalesOrderItem
	seq    int
}

func newMemSalesOrderRepo() *memSalesOrderRepo {
	return &memSalesOrderRepo{
		orders: map[string]*entity.SalesOrder{},
		items:  map[string][]*entity.SalesOrderItem{},
	}
}

func (m *memSalesOrderRepo) Create(order *entity.SalesOrder, items []*entity.SalesOrderItem) error {
	o := *order
	m.orders[order.ID] = &o
	m.items[order.ID] = items
	return nil
}

func (m *memSalesOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	if o, ok := m.orders[id]; ok {
		c := *o
		return &c, nil
	}
	return nil, nil
}

func (m *memSalesOrderRepo) GetItems(orderID string) ([]*entity.SalesOrderItem, error) {
	return m.items[orderID], nil
}

func (m *memSalesOrderRepo) UpdateStatus(order *entity.SalesOrder) error {
	o := *order
	m.orders[order.ID] = &o
	return nil
}

func (m *memSalesOrderRepo) NextNumber(string) (string, error) {
	m.seq++
	return "SO-000001", nil
}

func (m *memSalesOrderRepo) List(context.Context, repository.SalesOrderFilter) ([]*entity.SalesOrder, int, error) {
	return nil, 0, nil
}

type memProductRepo struct {
	byID map[string]*entity.Product
}

func (m *memProductRepo) Create(*entity.Product) error { return nil }
func (m *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return m.byID[id], nil
}
func (m *memProductRepo) GetByCompanyAndSKU(string, string) (*entity.Product, error) {
	return nil, nil
}
func (m *memProductRepo) Update(*entity.Product) error { return nil }
func (m *memProductRepo) UpdateCost(string, decimal.Decimal) error { return nil }
func (m *memProductRepo) Delete(string) error { return nil }
func (m *memProductRepo) ListByCompany(string, int, int) ([]*entity.Product, int, error) {
	return nil, 0, nil
}

type memWarehouseRepo struct {
	byID map[string]*entity.Warehouse
}

func (m *memWarehouseRepo) Create(*entity.Warehouse) error { return nil }
func (m *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return m.byID[id], nil
}
func (m *memWarehouseRepo) Update(*entity.Warehouse) error { return nil }
func (m *memWarehouseRepo) Delete(string) error            { return nil }
func (m *memWarehouseRepo) ListByCompany(string, int, int) ([]*entity.Warehouse, int, error) {
	return nil, 0, nil
}

// fakeTxRunner ejecuta el callback directamente con los repos en memoria.
// Si fn falla se descarta el estado nuevo del stock para emular el rollback.
type fakeTxRunner struct {
	stockRepo *memStockRepo
	orderRepo *memSalesOrderRepo
}

func (r *fakeTxRunner) RunSales(_ context.Context, fn func(
	repository.InventoryMovementRepository,
	repository.StockRepository,
	repository.ProductRepository,
	repository.SalesOrderRepository,
) error) error {
	before := make(map[string]entity.Stock, len(r.stockRepo.byKey))
	for k, v := range r.stockRepo.byKey {
		before[k] = *v
	}
	if err := fn(nil, r.stockRepo, nil, r.orderRepo); err != nil {
		restored := make(map[string]*entity.Stock, len(before))
		for k, v := range before {
			s := v
			restored[k] = &s
		}
		r.stockRepo.byKey = restored
		return err
	}
	return nil
}

// fakeInventoryUC registra los despachos y aplica el efecto sobre el stock:
// consume cantidad y reserva en la misma proporción.
type fakeInventoryUC struct {
	dispatched []string // productIDs despachados, en orden
}

func (f *fakeInventoryUC) DispatchOUTInTx(
	_ repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
	product *entity.Product,
	warehouseID, _ string,
	quantity decimal.Decimal,
	now time.Time,
	_, _ string,
) error {
	stock, err := stockRepo.GetForUpdate(product.ID, warehouseID)
	if err != nil {
		return err
	}
	if stock.Available().Add(stock.Reserved).LessThan(quantity) {
		return domain.ErrInsufficientStock
	}
	stock.Quantity = stock.Quantity.Sub(quantity)
	stock.Reserved = stock.Reserved.Sub(quantity)
	stock.UpdatedAt = now
	if err := stockRepo.Upsert(stock); err != nil {
		return err
	}
	f.dispatched = append(f.dispatched, product.ID)
	return nil
}

// fixture arma el caso de uso con una bodega, dos productos y stock inicial.
type fixture struct {
	uc          *sales.SalesOrderUseCase
	stockRepo   *memStockRepo
	orderRepo   *memSalesOrderRepo
	inventoryUC *fakeInventoryUC
}

func newFixture() *fixture {
	stockRepo := &memStockRepo{byKey: map[string]*entity.Stock{
		stockKey("p-1", whID): {ProductID: "p-1", WarehouseID: whID, Quantity: dec("10")},
		stockKey("p-2", whID): {ProductID: "p-2", WarehouseID: whID, Quantity: dec("5"), Reserved: dec("4")},
	}}
	orderRepo := newMemSalesOrderRepo()
	productRepo := &memProductRepo{byID: map[string]*entity.Product{
		"p-1": {ID: "p-1", CompanyID: companyID, SKU: "SKU-1", Price: dec("1000")},
		"p-2": {ID: "p-2", CompanyID: companyID, SKU: "SKU-2", Price: dec("2500")},
	}}
	warehouseRepo := &memWarehouseRepo{byID: map[string]*entity.Warehouse{
		whID: {ID: whID, CompanyID: companyID, Name: "Bodega Central"},
	}}
	inventoryUC := &fakeInventoryUC{}
	uc := sales.NewSalesOrderUseCase(&fakeTxRunner{stockRepo: stockRepo, orderRepo: orderRepo}, inventoryUC, orderRepo, productRepo, warehouseRepo)
	return &fixture{uc: uc, stockRepo: stockRepo, orderRepo: orderRepo, inventoryUC: inventoryUC}
}

func (f *fixture) stock(productID string) *entity.Stock {
	return f.stockRepo.byKey[stockKey(productID, whID)]
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — reserva de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesCreate_ReservaStockYCalculaTotal(t *testing.T) {
	f := newFixture()
	price := dec("900")
	resp, err := f.uc.Create(context.Background(), companyID, userID, dto.CreateSalesOrderRequest{
		CustomerName: "Ferretería El Martillo",
		WarehouseID:  whID,
		Items: []dto.SalesOrderItemRequest{
			{ProductID: "p-1", Quantity: dec("3"), UnitPrice: &price},
			{ProductID: "p-2", Quantity: dec("1")}, // sin precio: usa el del producto
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SalesStatusPending, resp.Status)
	assert.Equal(t, "SO-000001", resp.Number)
	// 3 × 900 + 1 × 2500 (precio vigente del producto)
	assert.True(t, resp.Total.Equal(dec("5200")))

	assert.True(t, f.stock("p-1").Reserved.Equal(dec("3")), "crear la orden debe reservar la línea")
	assert.True(t, f.stock("p-1").Quantity.Equal(dec("10")), "la cantidad en mano no cambia al reservar")
	assert.True(t, f.stock("p-2").Reserved.Equal(dec("5")))
}

func TestSalesCreate_DisponibleInsuficiente_RollbackDeReservas(t *testing.T) {
	f := newFixture()
	// p-1 tiene 10 disponibles; p-2 solo 1 (5 en mano, 4 reservados).
	_, err := f.uc.Create(context.Background(), companyID, userID, dto.CreateSalesOrderRequest{
		CustomerName: "Cliente",
		WarehouseID:  whID,
		Items: []dto.SalesOrderItemRequest{
			{ProductID: "p-1", Quantity: dec("2")},
			{ProductID: "p-2", Quantity: dec("2")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La reserva de p-1 (hecha antes de fallar p-2) debe deshacerse completa.
	assert.True(t, f.stock("p-1").Reserved.IsZero(), "el rollback debe liberar las reservas parciales")
	assert.True(t, f.stock("p-2").Reserved.Equal(dec("4")))
}

func TestSalesCreate_BodegaDeOtraEmpresa_RetornaNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Create(context.Background(), "otra-empresa", userID, dto.CreateSalesOrderRequest{
		CustomerName: "Cliente",
		WarehouseID:  whID,
		Items:        []dto.SalesOrderItemRequest{{ProductID: "p-1", Quantity: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSalesCreate_SinLineas_RetornaErrInvalidInput(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Create(context.Background(), companyID, userID, dto.CreateSalesOrderRequest{
		CustomerName: "Cliente",
		WarehouseID:  whID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSalesCreate_CantidadCero_RetornaErrInvalidInput(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Create(context.Background(), companyID, userID, dto.CreateSalesOrderRequest{
		CustomerName: "Cliente",
		WarehouseID:  whID,
		Items:        []dto.SalesOrderItemRequest{{ProductID: "p-1", Quantity: decimal.Zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dispatch / Deliver / Cancel — transiciones de estado
// ──────────────────────────────────────────────────────────────────────────────

func createPendingOrder(t *testing.T, f *fixture, qty string) *dto.SalesOrderResponse {
	t.Helper()
	resp, err := f.uc.Create(context.Background(), companyID, userID, dto.CreateSalesOrderRequest{
		CustomerName: "Cliente",
		WarehouseID:  whID,
		Items:        []dto.SalesOrderItemRequest{{ProductID: "p-1", Quantity: dec(qty)}},
	})
	require.NoError(t, err)
	return resp
}

func TestSalesDispatch_ConsumeReservaYMarcaDespachada(t *testing.T) {
	f := newFixture()
	order := createPendingOrder(t, f, "4")

	resp, err := f.uc.Dispatch(context.Background(), companyID, userID, order.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.SalesStatusDispatched, resp.Status)
	assert.NotNil(t, resp.DispatchedAt)
	assert.Equal(t, []string{"p-1"}, f.inventoryUC.dispatched)
	assert.True(t, f.stock("p-1").Quantity.Equal(dec("6")), "el despacho descuenta la cantidad en mano")
	assert.True(t, f.stock("p-1").Reserved.IsZero(), "el despacho consume la reserva")
}

func TestSalesDispatch_OrdenYaDespachada_RetornaInvalidTransition(t *testing.T) {
	f := newFixture()
	order := createPendingOrder(t, f, "2")
	_, err := f.uc.Dispatch(context.Background(), companyID, userID, order.ID)
	require.NoError(t, err)

	_, err = f.uc.Dispatch(context.Background(), companyID, userID, order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSalesDeliver_SoloDesdeDespachada(t *testing.T) {
	f := newFixture()
	order := createPendingOrder(t, f, "2")

	// pending → delivered no es válido
	_, err := f.uc.Deliver(context.Background(), companyID, order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.uc.Dispatch(context.Background(), companyID, userID, order.ID)
	require.NoError(t, err)

	resp, err := f.uc.Deliver(context.Background(), companyID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SalesStatusDelivered, resp.Status)
}

func TestSalesCancel_LiberaLaReserva(t *testing.T) {
	f := newFixture()
	order := createPendingOrder(t, f, "4")
	require.True(t, f.stock("p-1").Reserved.Equal(dec("4")))

	resp, err := f.uc.Cancel(context.Background(), companyID, order.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.SalesStatusCancelled, resp.Status)
	assert.True(t, f.stock("p-1").Reserved.IsZero(), "cancelar debe liberar la reserva")
	assert.True(t, f.stock("p-1").Quantity.Equal(dec("10")), "cancelar no toca la cantidad en mano")
}

func TestSalesCancel_OrdenDespachada_NoSePuedeCancelar(t *testing.T) {
	f := newFixture()
	order := createPendingOrder(t, f, "2")
	_, err := f.uc.Dispatch(context.Background(), companyID, userID, order.ID)
	require.NoError(t, err)

	_, err = f.uc.Cancel(context.Background(), companyID, order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSalesGetByID_OtraEmpresa_RetornaNotFound(t *testing.T) {
	f := newFixture()
	order := createPendingOrder(t, f, "1")

	_, err := f.uc.GetByID("otra-empresa", order.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
