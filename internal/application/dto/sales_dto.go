package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrderListRequest parámetros de GET /api/sales-orders.
type SalesOrderListRequest struct {
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
	Search   string `query:"search"`
	Status   string `query:"status" validate:"omitempty,oneof=pending dispatched delivered cancelled"`
}

// SalesOrderItemRequest línea de una orden de venta a crear.
// UnitPrice opcional: si es nil se usa el precio vigente del producto.
type SalesOrderItemRequest struct {
	ProductID string           `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreateSalesOrderRequest body de POST /api/sales-orders.
type CreateSalesOrderRequest struct {
	CustomerName string                  `json:"customer_name" validate:"required,min=1,max=200"`
	WarehouseID  string                  `json:"warehouse_id" validate:"required,uuid"`
	Notes        string                  `json:"notes"`
	Items        []SalesOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SalesOrderItemResponse línea de una orden de venta.
type SalesOrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SalesOrderResponse salida de una orden de venta.
type SalesOrderResponse struct {
	ID           string                   `json:"id"`
	CompanyID    string                   `json:"company_id"`
	Number       string                   `json:"number"`
	CustomerName string                   `json:"customer_name"`
	WarehouseID  string                   `json:"warehouse_id"`
	Status       string                   `json:"status"`
	Total        decimal.Decimal          `json:"total"`
	Notes        string                   `json:"notes"`
	OrderedAt    time.Time                `json:"ordered_at"`
	DispatchedAt *time.Time               `json:"dispatched_at,omitempty"`
	Items        []SalesOrderItemResponse `json:"items,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// SalesOrderListResponse lista paginada de órdenes de venta.
type SalesOrderListResponse struct {
	Items []SalesOrderResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
