package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del inventario actual más los totales del mes en curso.
type DashboardSummaryDTO struct {
	// Estado actual del inventario
	InventoryValue  decimal.Decimal `json:"inventory_value"`
	TotalSKUs       int             `json:"total_skus"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`

	// Mes en curso (día 1 – hoy)
	MonthlySales     decimal.Decimal `json:"monthly_sales"`
	MonthlySalesOrders int           `json:"monthly_sales_orders"`
	MonthlyPurchases decimal.Decimal `json:"monthly_purchases"`
	MonthlyPurchaseOrders int        `json:"monthly_purchase_orders"`

	// Órdenes pendientes de gestión
	PendingSalesOrders    int `json:"pending_sales_orders"`
	PendingPurchaseOrders int `json:"pending_purchase_orders"`

	// Metadatos del período
	DateLabel string `json:"date_label"` // ej: "Agosto 2026"
}

// MonthlyValuePoint un punto de la serie mensual de valor de inventario.
type MonthlyValuePoint struct {
	Month string          `json:"month"` // "2026-08"
	Label string          `json:"label"` // "Agosto 2026"
	Value decimal.Decimal `json:"value"`
}

// MonthlyInventoryValueDTO respuesta de GET /api/dashboard/inventory-value/monthly.
// Serie de los últimos N meses, con meses sin actividad rellenados.
type MonthlyInventoryValueDTO struct {
	Months []MonthlyValuePoint `json:"months"`
}
