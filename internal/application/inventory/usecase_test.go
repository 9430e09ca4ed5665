package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/ErpAdmin-api/internal/application/inventory"
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

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

const (
	companyID = "co-1"
	userID    = "u-1"
	productID = "p-1"
	whA       = "wh-a"
	whB       = "wh-b"
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
	s := &entity.Stock{ProductID: productID, WarehouseID: warehouseID}
	m.byKey[stockKey(productID, warehouseID)] = s
	return s, nil
}

func (m *memStockRepo) Upsert(stock *entity.Stock) error {
	m.byKey[stockKey(stock.ProductID, stock.WarehouseID)] = stock
	return nil
}

type memMovementRepo struct {
	movements []*entity.InventoryMovement
}

func (m *memMovementRepo) Create(mov *entity.InventoryMovement) error {
	m.movements = append(m.movements, mov)
	return nil
}

func (m *memMovementRepo) List(context.Context, repository.MovementFilter) ([]*entity.InventoryMovement, int, error) {
	return m.movements, len(m.movements), nil
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
func (m *memProductRepo) UpdateCost(productID string, cost decimal.Decimal) error {
	if p, ok := m.byID[productID]; ok {
		p.Cost = cost
	}
	return nil
}
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
func (m *memWarehouseRepo) Delete(string) error { return nil }
func (m *memWarehouseRepo) ListByCompany(string, int, int) ([]*entity.Warehouse, int, error) {
	return nil, 0, nil
}

// fakeTxRunner pasa los repos en memoria al callback. Si fn falla, restaura el
// stock y descarta los movimientos creados para emular el rollback.
type fakeTxRunner struct {
	movRepo     *memMovementRepo
	stockRepo   *memStockRepo
	productRepo *memProductRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	repository.InventoryMovementRepository,
	repository.StockRepository,
	repository.ProductRepository,
) error) error {
	stockBefore := make(map[string]entity.Stock, len(r.stockRepo.byKey))
	for k, v := range r.stockRepo.byKey {
		stockBefore[k] = *v
	}
	movsBefore := len(r.movRepo.movements)
	if err := fn(r.movRepo, r.stockRepo, r.productRepo); err != nil {
		restored := make(map[string]*entity.Stock, len(stockBefore))
		for k, v := range stockBefore {
			s := v
			restored[k] = &s
		}
		r.stockRepo.byKey = restored
		r.movRepo.movements = r.movRepo.movements[:movsBefore]
		return err
	}
	return nil
}

type fixture struct {
	uc        *appinventory.RegisterMovementUseCase
	stockRepo *memStockRepo
	movRepo   *memMovementRepo
	product   *entity.Product
}

// newFixture arma el caso de uso con un producto (costo promedio 800) y
// 10 unidades en la bodega A, de las cuales 2 están reservadas.
func newFixture() *fixture {
	product := &entity.Product{ID: productID, CompanyID: companyID, SKU: "SKU-1", Cost: dec("800")}
	stockRepo := &memStockRepo{byKey: map[string]*entity.Stock{
		stockKey(productID, whA): {ProductID: productID, WarehouseID: whA, Quantity: dec("10"), Reserved: dec("2")},
	}}
	movRepo := &memMovementRepo{}
	productRepo := &memProductRepo{byID: map[string]*entity.Product{productID: product}}
	warehouseRepo := &memWarehouseRepo{byID: map[string]*entity.Warehouse{
		whA: {ID: whA, CompanyID: companyID, Name: "Bodega A"},
		whB: {ID: whB, CompanyID: companyID, Name: "Bodega B"},
	}}
	runner := &fakeTxRunner{movRepo: movRepo, stockRepo: stockRepo, productRepo: productRepo}
	uc := appinventory.NewRegisterMovementUseCase(runner, productRepo, warehouseRepo)
	return &fixture{uc: uc, stockRepo: stockRepo, movRepo: movRepo, product: product}
}

func (f *fixture) stock(warehouseID string) *entity.Stock {
	return f.stockRepo.byKey[stockKey(productID, warehouseID)]
}

// ──────────────────────────────────────────────────────────────────────────────
// IN — entradas y costo promedio ponderado
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_IN_SumaStockYRecalculaCostoPromedio(t *testing.T) {
	f := newFixture()
	err := f.uc.RegisterMovement(context.Background(), appinventory.MovementInputDTO{
		CompanyID:   companyID,
		UserID:      userID,
		ProductID:   productID,
		WarehouseID: whA,
		Type:        entity.MovementTypeIN,
		Quantity:    dec("10"),
		UnitCost:    decPtr("1000"),
		Reference:   "OC-001",
	})
	require.NoError(t, err)

	assert.True(t, f.stock(whA).Quantity.Equal(dec("20")))
	// (10 × 800 + 10 × 1000) / 20 = 900
	assert.True(t, f.product.Cost.Equal(dec("900")),
		"el costo del producto debe pasar al promedio ponderado")

	require.Len(t, f.movRepo.movements, 1)
	mov := f.movRepo.movements[0]
	assert.Equal(t, entity.MovementTypeIN, mov.Type)
	assert.True(t, mov.Quantity.Equal(dec("10")))
	assert.True(t, mov.UnitCost.Equal(dec("1000")), "el movimiento guarda el costo de la entrada, no el promedio")
	assert.True(t, mov.TotalCost.Equal(dec("10000")))
	assert.Equal(t, "OC-001", mov.Reference)
	assert.Equal(t, userID, mov.CreatedBy)
}

func TestRegisterMovement_IN_SinCosto_RetornaErrInvalidInput(t *testing.T) {
	f := newFixture()
	err := f.uc.RegisterMovement(context.Background(), appinventory.MovementInputDTO{
		CompanyID:   companyID,
		ProductID:   productID,
		WarehouseID: whA,
		Type:        entity.MovementTypeIN,
		Quantity:    dec("5"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_ProductoDeOtraEmpresa_RetornaErrForbidden(t *testing.T) {
	f := newFixture()
	err := f.uc.RegisterMovement(context.Background(), appinventory.MovementInputDTO{
		CompanyID:   "otra-empresa",
		ProductID:   productID,
		WarehouseID: whA,
		Type:        entity.MovementTypeIN,
		Quantity:    dec("5"),
		UnitCost:    decPtr("100"),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// OUT — salidas contra el disponible
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_OUT_RestaStockAlCostoPromedio(t *testing.T) {
	f := newFixture()
	err := f.uc.RegisterMovement(context.Background(), appinventory.MovementInputDTO{
		CompanyID:   companyID,
		UserID:      userID,
		ProductID:   productID,
		WarehouseID: whA,
		Type:        entity.MovementTypeOUT,
		Quantity:    dec("3"),
	})
	require.NoError(t, err)

	assert.True(t, f.stock(whA).Quantity.Equal(dec("7")))
	require.Len(t, f.movRepo.movements, 1)
	mov := f.movRepo.movements[0]
	assert.True(t, mov.Quantity.Equal(dec("-3")), "las salidas se registran con cantidad negativa")
	assert.True(t, mov.UnitCost.Equal(dec("800")), "la salida se valora al costo promedio vigente")
	assert.True(t, mov.TotalCost.Equal(dec("-2400")))
}

func TestRegisterMovement_OUT_RespetaLaReserva(t *testing.T) {
	// 10 en mano, 2 reservados → disponible 8; pedir 9 debe fallar.
	f := newFixture()
	err := f.uc.RegisterMovement(context.Background(), appinventory.MovementInputDTO{
		CompanyID:   companyID,
		ProductID:   productID,
		WarehouseID: whA,
		Type:        entity.MovementTypeOUT,
		Quantity:    dec("9"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, f.stock(whA).Quantity.Equal(dec("10")), "la cantidad no debe cambiar tras el rollback")
	assert.Empty(t, f.movRepo.movements, "no debe quedar movimiento registrado")
}

// ──────────────────────────────────────────────────────────────────────────────
// ADJUSTMENT
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_AjusteNegativo_ActuaComoSalida(t *testing.T) {
	f := newFixture()
	err := f.uc.RegisterMovement(context.Background(), appinventory.MovementInputDTO{
		CompanyID:   companyID,
		ProductID:   productID,
		WarehouseID: whA,
		Type:        entity.MovementTypeADJUSTMENT,
		Quantity:    dec("-4"),
	})
	require.NoError(t, err)

	assert.True(t, f.stock(whA).Quantity.Equal(dec("6")))
	require.Len(t, f.movRepo.movements, 1)
	assert.True(t, f.movRepo.movements[0].Quantity.Equal(dec("-4")))
}

// ──────────────────────────────────────────────────────────────────────────────
// TRANSFER
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_Traslado_MueveEntreBodegas(t *testing.T) {
	f := newFixture()
	err := f.uc.RegisterMovement(context.Background(), appinventory.MovementInputDTO{
		CompanyID:       companyID,
		UserID:          userID,
		ProductID:       productID,
		FromWarehouseID: whA,
		ToWarehouseID:   whB,
		Type:            entity.MovementTypeTRANSFER,
		Quantity:        dec("4"),
	})
	require.NoError(t, err)

	assert.True(t, f.stock(whA).Quantity.Equal(dec("6")))
	assert.True(t, f.stock(whB).Quantity.Equal(dec("4")))

	// Dos asientos (salida origen, entrada destino) ligados por el mismo TransactionID.
	require.Len(t, f.movRepo.movements, 2)
	out, in := f.movRepo.movements[0], f.movRepo.movements[1]
	assert.Equal(t, out.TransactionID, in.TransactionID)
	assert.True(t, out.Quantity.Equal(dec("-4")))
	assert.Equal(t, whA, out.WarehouseID)
	assert.True(t, in.Quantity.Equal(dec("4")))
	assert.Equal(t, whB, in.WarehouseID)
}

func TestRegisterMovement_TrasladoMismaBodega_RetornaErrInvalidInput(t *testing.T) {
	f := newFixture()
	err := f.uc.RegisterMovement(context.Background(), appinventory.MovementInputDTO{
		CompanyID:       companyID,
		ProductID:       productID,
		FromWarehouseID: whA,
		ToWarehouseID:   whA,
		Type:            entity.MovementTypeTRANSFER,
		Quantity:        dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_TrasladoSinDisponible_RetornaErrInsufficientStock(t *testing.T) {
	// Disponible en A: 8 (10 en mano - 2 reservados); trasladar 9 debe fallar.
	f := newFixture()
	err := f.uc.RegisterMovement(context.Background(), appinventory.MovementInputDTO{
		CompanyID:       companyID,
		ProductID:       productID,
		FromWarehouseID: whA,
		ToWarehouseID:   whB,
		Type:            entity.MovementTypeTRANSFER,
		Quantity:        dec("9"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, f.stock(whA).Quantity.Equal(dec("10")))
}
