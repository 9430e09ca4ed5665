package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only del dashboard sobre PostgreSQL.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesMetrics devuelve el total vendido y el número de órdenes de venta
// no canceladas en el rango de fechas dado. COALESCE devuelve cero sin órdenes.
func (r *AnalyticsRepo) GetSalesMetrics(
	ctx context.Context,
	companyID string,
	startDate, endDate time.Time,
) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM sales_orders
		WHERE company_id = $1
		  AND status <> 'cancelled'
		  AND ordered_at BETWEEN $2 AND $3`
	var total decimal.Decimal
	var count int
	if err := r.pool.QueryRow(ctx, query, companyID, startDate, endDate).Scan(&total, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("sales metrics: %w", err)
	}
	return total, count, nil
}

// GetPurchaseMetrics devuelve el total comprado y el número de órdenes de
// compra no canceladas en el rango de fechas dado.
func (r *AnalyticsRepo) GetPurchaseMetrics(
	ctx context.Context,
	companyID string,
	startDate, endDate time.Time,
) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM purchase_orders
		WHERE company_id = $1
		  AND status <> 'cancelled'
		  AND ordered_at BETWEEN $2 AND $3`
	var total decimal.Decimal
	var count int
	if err := r.pool.QueryRow(ctx, query, companyID, startDate, endDate).Scan(&total, &count); err != nil {
		return decimal.Zero, 0, fmt.Errorf("purchase metrics: %w", err)
	}
	return total, count, nil
}

// CountPendingOrders devuelve cuántas órdenes de venta y de compra siguen pendientes.
func (r *AnalyticsRepo) CountPendingOrders(ctx context.Context, companyID string) (int, int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM sales_orders    WHERE company_id = $1 AND status = 'pending'),
			(SELECT COUNT(*) FROM purchase_orders WHERE company_id = $1 AND status = 'pending')`
	var pendingSales, pendingPurchases int
	if err := r.pool.QueryRow(ctx, query, companyID).Scan(&pendingSales, &pendingPurchases); err != nil {
		return 0, 0, fmt.Errorf("pending orders: %w", err)
	}
	return pendingSales, pendingPurchases, nil
}

// GetMonthlyInventoryValue devuelve el valor de cierre del inventario por mes
// para los últimos `months` meses. El valor es el acumulado del costo firmado
// de los movimientos (las entradas suman, las salidas restan); la actividad
// anterior a la ventana se pliega en su primer mes para que el acumulado arranque
// con el valor real y no en cero.
func (r *AnalyticsRepo) GetMonthlyInventoryValue(ctx context.Context, companyID string, months int) ([]repository.MonthlyInventoryValueResult, error) {
	query := `
		WITH bounds AS (
			SELECT date_trunc('month', now()) - make_interval(months => $2 - 1) AS start_month
		),
		monthly AS (
			SELECT GREATEST(date_trunc('month', m.date), b.start_month) AS month,
			       SUM(m.total_cost) AS delta
			FROM inventory_movements m
			JOIN products p ON p.id = m.product_id
			CROSS JOIN bounds b
			WHERE p.company_id = $1
			GROUP BY 1
		)
		SELECT month, SUM(delta) OVER (ORDER BY month) AS value
		FROM monthly
		ORDER BY month ASC`
	rows, err := r.pool.Query(ctx, query, companyID, months)
	if err != nil {
		return nil, fmt.Errorf("monthly inventory value: %w", err)
	}
	defer rows.Close()

	var list []repository.MonthlyInventoryValueResult
	for rows.Next() {
		var res repository.MonthlyInventoryValueResult
		if err := rows.Scan(&res.Month, &res.Value); err != nil {
			return nil, fmt.Errorf("scan monthly value: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}
