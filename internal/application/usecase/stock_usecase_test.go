package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ErpAdmin-api/internal/application/dto"
	"github.com/jhoicas/ErpAdmin-api/internal/application/usecase"
	"github.com/jhoicas/ErpAdmin-api/internal/domain"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de listado
// ──────────────────────────────────────────────────────────────────────────────

// fakeStockListRepo devuelve filas fijas y captura el último filtro recibido
// para verificar cómo el caso de uso traduce el request.
type fakeStockListRepo struct {
	total      int
	rows       []repository.StockListRow
	summary    repository.StockSummaryRow
	lastFilter repository.StockListFilter
}

func (f *fakeStockListRepo) Count(_ context.Context, filter repository.StockListFilter) (int, error) {
	f.lastFilter = filter
	return f.total, nil
}

func (f *fakeStockListRepo) List(_ context.Context, filter repository.StockListFilter) ([]repository.StockListRow, error) {
	f.lastFilter = filter
	return f.rows, nil
}

func (f *fakeStockListRepo) Summary(_ context.Context, filter repository.StockListFilter) (*repository.StockSummaryRow, error) {
	f.lastFilter = filter
	s := f.summary
	return &s, nil
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func sampleRow(productID, sku string, qty, reserved, reorder string) repository.StockListRow {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	return repository.StockListRow{
		ProductID:     productID,
		SKU:           sku,
		Name:          "Producto " + sku,
		CategoryID:    "cat-1",
		CategoryName:  "Herramientas",
		WarehouseID:   "wh-1",
		WarehouseName: "Bodega Central",
		Quantity:      dec(qty),
		Reserved:      dec(reserved),
		ReorderPoint:  dec(reorder),
		Price:         dec("15000"),
		Cost:          dec("9500"),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

const testCompanyID = "00000000-0000-0000-0000-0000000000aa"

// ──────────────────────────────────────────────────────────────────────────────
// List — traducción del filtro
// ──────────────────────────────────────────────────────────────────────────────

func TestStockList_NormalizaBusquedaYResuelveOrden(t *testing.T) {
	repo := &fakeStockListRepo{total: 1, rows: []repository.StockListRow{sampleRow("p1", "SKU-1", "10", "0", "3")}}
	uc := usecase.NewStockUseCase(repo)

	_, err := uc.List(context.Background(), testCompanyID, dto.StockListRequest{
		Search: "  Tornillería  ",
		Sort:   "Name",
		Dir:    "ASC",
	})
	require.NoError(t, err)

	assert.Equal(t, testCompanyID, repo.lastFilter.CompanyID)
	assert.Equal(t, "tornilleria", repo.lastFilter.Search,
		"la búsqueda debe quedar sin tildes, en minúsculas y sin espacios extremos")
	assert.Equal(t, "p.name", repo.lastFilter.SortColumn,
		"el alias de orden debe resolverse contra la lista blanca sin importar mayúsculas")
	assert.Equal(t, "ASC", repo.lastFilter.SortDir)
}

func TestStockList_OrdenDesconocido_UsaElDefault(t *testing.T) {
	repo := &fakeStockListRepo{total: 0}
	uc := usecase.NewStockUseCase(repo)

	_, err := uc.List(context.Background(), testCompanyID, dto.StockListRequest{Sort: "precio_venta; DROP TABLE"})
	require.NoError(t, err)

	assert.Equal(t, "p.updated_at", repo.lastFilter.SortColumn,
		"un alias desconocido nunca llega a SQL, cae al orden por defecto")
	assert.Equal(t, "DESC", repo.lastFilter.SortDir)
}

func TestStockList_EstadoInvalido_RetornaErrInvalidInput(t *testing.T) {
	repo := &fakeStockListRepo{}
	uc := usecase.NewStockUseCase(repo)

	_, err := uc.List(context.Background(), testCompanyID, dto.StockListRequest{Status: "agotado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// List — paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestStockList_PaginaMasAllaDelFinal_SeAjustaALaUltima(t *testing.T) {
	// 45 ítems con páginas de 20 → 3 páginas; pedir la 99 debe devolver la 3.
	repo := &fakeStockListRepo{total: 45, rows: []repository.StockListRow{sampleRow("p1", "SKU-1", "10", "0", "3")}}
	uc := usecase.NewStockUseCase(repo)

	resp, err := uc.List(context.Background(), testCompanyID, dto.StockListRequest{Page: 99, PageSize: 20})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Page.Page)
	assert.Equal(t, 3, resp.Page.TotalPages)
	assert.Equal(t, 40, repo.lastFilter.Offset, "el offset debe corresponder a la página ajustada")
	assert.Equal(t, 20, repo.lastFilter.Limit)
	assert.True(t, resp.Page.HasPrev)
	assert.False(t, resp.Page.HasNext)
}

func TestStockList_SinResultados_NoConsultaFilas(t *testing.T) {
	repo := &fakeStockListRepo{total: 0}
	uc := usecase.NewStockUseCase(repo)

	resp, err := uc.List(context.Background(), testCompanyID, dto.StockListRequest{Search: "no existe"})
	require.NoError(t, err)

	assert.NotNil(t, resp.Items, "items debe serializar como [] y no como null")
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.Page.TotalPages)
	assert.Equal(t, 0, resp.Page.StartItem)
	assert.Equal(t, 0, resp.Page.EndItem)
	assert.Equal(t, 0, repo.lastFilter.Limit,
		"con total cero no debe pedirse ninguna fila")
}

// ──────────────────────────────────────────────────────────────────────────────
// List — derivados por fila
// ──────────────────────────────────────────────────────────────────────────────

func TestStockList_CalculaDisponibleYEstado(t *testing.T) {
	repo := &fakeStockListRepo{
		total: 3,
		rows: []repository.StockListRow{
			sampleRow("p1", "SKU-1", "10", "4", "3"),  // disponible 6, sobre el punto de reorden
			sampleRow("p2", "SKU-2", "2", "0", "5"),   // bajo stock
			sampleRow("p3", "SKU-3", "0", "0", "5"),   // agotado
		},
	}
	uc := usecase.NewStockUseCase(repo)

	resp, err := uc.List(context.Background(), testCompanyID, dto.StockListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 3)

	assert.True(t, resp.Items[0].Available.Equal(dec("6")),
		"disponible = cantidad - reservado")
	assert.Equal(t, "in_stock", resp.Items[0].Status)
	assert.Equal(t, "low_stock", resp.Items[1].Status)
	assert.Equal(t, "out_of_stock", resp.Items[2].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Summary
// ──────────────────────────────────────────────────────────────────────────────

func TestStockSummary_RedondeaValorYPropagaFiltro(t *testing.T) {
	repo := &fakeStockListRepo{
		summary: repository.StockSummaryRow{
			TotalSKUs:       12,
			TotalUnits:      dec("540"),
			InventoryValue:  dec("1234567.891"),
			LowStockCount:   2,
			OutOfStockCount: 1,
		},
	}
	uc := usecase.NewStockUseCase(repo)

	resp, err := uc.Summary(context.Background(), testCompanyID, dto.StockListRequest{
		WarehouseID: "wh-1",
		Status:      "low_stock",
	})
	require.NoError(t, err)

	assert.Equal(t, 12, resp.TotalSKUs)
	assert.True(t, resp.InventoryValue.Equal(dec("1234567.89")),
		"el valor del inventario se redondea a dos decimales")
	assert.Equal(t, 2, resp.LowStockCount)
	assert.Equal(t, "wh-1", repo.lastFilter.WarehouseID,
		"el resumen usa exactamente el mismo filtro que el listado")
	assert.Equal(t, "low_stock", repo.lastFilter.Status)
}

func TestStockSummary_EstadoInvalido_RetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewStockUseCase(&fakeStockListRepo{})
	_, err := uc.Summary(context.Background(), testCompanyID, dto.StockListRequest{Status: "todo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
