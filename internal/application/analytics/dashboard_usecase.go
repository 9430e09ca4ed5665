// Package analytics contiene los casos de uso de lectura para el dashboard
// ejecutivo: KPIs del período y la serie mensual de valor de inventario.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ErpAdmin-api/internal/application/dto"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

// monthlySeriesLength meses de la serie de valor de inventario.
const monthlySeriesLength = 12

// DashboardUseCase genera el resumen ejecutivo del tenant.
//
// Fuente de datos: AnalyticsRepository y StockListRepository (consultas read-only).
// No accede directamente a las tablas de órdenes; delega todo en los repositorios.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	stockListRepo repository.StockListRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	stockListRepo repository.StockListRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		stockListRepo: stockListRepo,
	}
}

// GetSummary construye el DashboardSummaryDTO para la empresa indicada.
//
// Cuatro llamadas en paralelo:
//  1. Summary(inventario)      → InventoryValue + TotalSKUs + conteos de stock
//  2. GetSalesMetrics(mes)     → MonthlySales + MonthlySalesOrders
//  3. GetPurchaseMetrics(mes)  → MonthlyPurchases + MonthlyPurchaseOrders
//  4. CountPendingOrders       → PendingSalesOrders + PendingPurchaseOrders
func (uc *DashboardUseCase) GetSummary(
	ctx context.Context,
	companyID string,
) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// ── Rango de fechas: mes en curso, día 1 a las 00:00 – hoy 23:59:59 ───────
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		Add(24*time.Hour - time.Nanosecond)

	// ── Goroutines para paralelizar las 4 consultas DB ────────────────────────
	type stockResult struct {
		row *repository.StockSummaryRow
		err error
	}
	type metricsResult struct {
		total decimal.Decimal
		count int
		err   error
	}
	type pendingResult struct {
		sales     int
		purchases int
		err       error
	}

	stockCh := make(chan stockResult, 1)
	salesCh := make(chan metricsResult, 1)
	purchCh := make(chan metricsResult, 1)
	pendCh := make(chan pendingResult, 1)

	go func() {
		row, err := uc.stockListRepo.Summary(ctx, repository.StockListFilter{CompanyID: companyID})
		stockCh <- stockResult{row, err}
	}()
	go func() {
		total, count, err := uc.analyticsRepo.GetSalesMetrics(ctx, companyID, monthStart, monthEnd)
		salesCh <- metricsResult{total, count, err}
	}()
	go func() {
		total, count, err := uc.analyticsRepo.GetPurchaseMetrics(ctx, companyID, monthStart, monthEnd)
		purchCh <- metricsResult{total, count, err}
	}()
	go func() {
		sales, purchases, err := uc.analyticsRepo.CountPendingOrders(ctx, companyID)
		pendCh <- pendingResult{sales, purchases, err}
	}()

	stock := <-stockCh
	sales := <-salesCh
	purchases := <-purchCh
	pending := <-pendCh

	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: resumen de inventario: %w", stock.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de ventas: %w", sales.err)
	}
	if purchases.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de compras: %w", purchases.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes pendientes: %w", pending.err)
	}

	return &dto.DashboardSummaryDTO{
		InventoryValue:        stock.row.InventoryValue.Round(2),
		TotalSKUs:             stock.row.TotalSKUs,
		LowStockCount:         stock.row.LowStockCount,
		OutOfStockCount:       stock.row.OutOfStockCount,
		MonthlySales:          sales.total.Round(2),
		MonthlySalesOrders:    sales.count,
		MonthlyPurchases:      purchases.total.Round(2),
		MonthlyPurchaseOrders: purchases.count,
		PendingSalesOrders:    pending.sales,
		PendingPurchaseOrders: pending.purchases,
		DateLabel:             monthLabel(now),
	}, nil
}

// GetMonthlyInventoryValue construye la serie de valor de inventario de los
// últimos 12 meses. La DB solo devuelve los meses con actividad; los meses sin
// movimientos heredan el valor del mes anterior (cero antes del primer movimiento).
func (uc *DashboardUseCase) GetMonthlyInventoryValue(
	ctx context.Context,
	companyID string,
) (*dto.MonthlyInventoryValueDTO, error) {
	rows, err := uc.analyticsRepo.GetMonthlyInventoryValue(ctx, companyID, monthlySeriesLength)
	if err != nil {
		return nil, fmt.Errorf("dashboard: valor mensual de inventario: %w", err)
	}

	valueByMonth := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		valueByMonth[r.Month.Format("2006-01")] = r.Value
	}

	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(monthlySeriesLength - 1), 0)

	months := make([]dto.MonthlyValuePoint, 0, monthlySeriesLength)
	last := decimal.Zero
	for i := 0; i < monthlySeriesLength; i++ {
		m := first.AddDate(0, i, 0)
		key := m.Format("2006-01")
		if v, ok := valueByMonth[key]; ok {
			last = v
		}
		months = append(months, dto.MonthlyValuePoint{
			Month: key,
			Label: monthLabel(m),
			Value: last.Round(2),
		})
	}
	return &dto.MonthlyInventoryValueDTO{Months: months}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
