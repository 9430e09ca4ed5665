package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyInventoryValueResult valor de cierre del inventario para un mes.
// Lo produce la DB desde el libro de movimientos; el use case rellena los
// meses sin actividad con el valor del mes anterior.
type MonthlyInventoryValueResult struct {
	Month time.Time // primer día del mes, 00:00 en la zona del servidor
	Value decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetSalesMetrics devuelve el total vendido y el número de órdenes de venta
	// no canceladas de la empresa en el rango de fechas dado.
	// Usa COALESCE para devolver cero si no hay órdenes en el período.
	GetSalesMetrics(
		ctx context.Context,
		companyID string,
		startDate, endDate time.Time,
	) (total decimal.Decimal, count int, err error)

	// GetPurchaseMetrics devuelve el total comprado y el número de órdenes de
	// compra no canceladas en el rango de fechas dado.
	GetPurchaseMetrics(
		ctx context.Context,
		companyID string,
		startDate, endDate time.Time,
	) (total decimal.Decimal, count int, err error)

	// CountPendingOrders devuelve cuántas órdenes de venta y de compra siguen
	// pendientes para la empresa.
	CountPendingOrders(ctx context.Context, companyID string) (pendingSales, pendingPurchases int, err error)

	// GetMonthlyInventoryValue devuelve el valor de cierre del inventario
	// (acumulado del costo firmado de los movimientos) por mes, para los
	// últimos `months` meses. Solo incluye meses con actividad.
	GetMonthlyInventoryValue(ctx context.Context, companyID string, months int) ([]MonthlyInventoryValueResult, error)
}
