package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockListRequest parámetros de GET /api/stock.
type StockListRequest struct {
	Page        int    `query:"page"`
	PageSize    int    `query:"page_size"`
	Search      string `query:"search"`
	CategoryID  string `query:"category_id"`
	WarehouseID string `query:"warehouse_id"`
	Status      string `query:"status" validate:"omitempty,oneof=in_stock low_stock out_of_stock"`
	Sort        string `query:"sort"`
	Dir         string `query:"dir" validate:"omitempty,oneof=asc desc"`
}

// StockItemResponse un ítem del listado de inventario (por SKU y bodega).
type StockItemResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	Reserved      decimal.Decimal `json:"reserved"`
	Available     decimal.Decimal `json:"available"`
	ReorderPoint  decimal.Decimal `json:"reorder_point"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Status        string          `json:"status"` // in_stock | low_stock | out_of_stock
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StockListResponse lista paginada del inventario.
type StockListResponse struct {
	Items []StockItemResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// StockSummaryResponse agregados del inventario bajo el mismo filtro del listado.
type StockSummaryResponse struct {
	TotalSKUs       int             `json:"total_skus"`
	TotalUnits      decimal.Decimal `json:"total_units"`
	InventoryValue  decimal.Decimal `json:"inventory_value"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
}
