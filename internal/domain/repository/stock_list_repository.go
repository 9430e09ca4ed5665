package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockListFilter parámetros de la consulta del listado de inventario.
// Search llega ya normalizado (listing.NormalizeSearch); SortColumn/SortDir
// llegan ya resueltos contra la lista blanca (listing.SortMap) — la
// implementación los interpola confiando en esa garantía.
type StockListFilter struct {
	CompanyID   string
	Search      string
	CategoryID  string
	WarehouseID string
	Status      string // in_stock | low_stock | out_of_stock | "" (todos)
	SortColumn  string
	SortDir     string
	Limit       int
	Offset      int
}

// StockListRow fila cruda del listado (producto + categoría + bodega + cantidades).
type StockListRow struct {
	ProductID     string
	SKU           string
	Name          string
	CategoryID    string
	CategoryName  string
	WarehouseID   string
	WarehouseName string
	Quantity      decimal.Decimal
	Reserved      decimal.Decimal
	ReorderPoint  decimal.Decimal
	Price         decimal.Decimal
	Cost          decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StockSummaryRow agregados del listado bajo el mismo filtro.
type StockSummaryRow struct {
	TotalSKUs      int
	TotalUnits     decimal.Decimal
	InventoryValue decimal.Decimal // SUM(quantity * cost)
	LowStockCount  int
	OutOfStockCount int
}

// StockListRepository consultas read-only del listado de inventario.
// Count y List deben evaluar exactamente el mismo filtro: el caso de uso
// usa Count para calcular la ventana de página antes de pedir las filas.
type StockListRepository interface {
	Count(ctx context.Context, f StockListFilter) (int, error)
	List(ctx context.Context, f StockListFilter) ([]StockListRow, error)
	Summary(ctx context.Context, f StockListFilter) (*StockSummaryRow, error)
}
