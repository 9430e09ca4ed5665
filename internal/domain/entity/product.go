package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario (multi-bodega).
// Cost es promedio ponderado calculado desde movimientos; las cantidades
// se manejan por bodega en Stock.
type Product struct {
	ID           string
	CompanyID    string
	SKU          string // código único por empresa
	Name         string
	Description  string
	CategoryID   string
	Price        decimal.Decimal // precio de venta
	Cost         decimal.Decimal // costo promedio ponderado (inicia en 0)
	ReorderPoint decimal.Decimal // umbral de stock bajo
	UnitMeasure  string
	Attributes   json.RawMessage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Estados derivados de un ítem de stock según cantidad vs punto de reorden.
const (
	StockStatusInStock    = "in_stock"
	StockStatusLowStock   = "low_stock"
	StockStatusOutOfStock = "out_of_stock"
)

// StockStatus deriva el estado a partir de la cantidad disponible y el punto de reorden.
// La lista y el resumen usan esta misma derivación para no contradecirse.
func StockStatus(quantity, reorderPoint decimal.Decimal) string {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return StockStatusOutOfStock
	}
	if quantity.LessThanOrEqual(reorderPoint) {
		return StockStatusLowStock
	}
	return StockStatusInStock
}
