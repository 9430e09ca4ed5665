package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ErpAdmin-api/internal/application/analytics"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeAnalyticsRepo struct {
	salesTotal    decimal.Decimal
	salesCount    int
	purchTotal    decimal.Decimal
	purchCount    int
	pendingSales  int
	pendingPurch  int
	monthlyValues []repository.MonthlyInventoryValueResult
}

func (f *fakeAnalyticsRepo) GetSalesMetrics(_ context.Context, _ string, _, _ time.Time) (decimal.Decimal, int, error) {
	return f.salesTotal, f.salesCount, nil
}

func (f *fakeAnalyticsRepo) GetPurchaseMetrics(_ context.Context, _ string, _, _ time.Time) (decimal.Decimal, int, error) {
	return f.purchTotal, f.purchCount, nil
}

func (f *fakeAnalyticsRepo) CountPendingOrders(_ context.Context, _ string) (int, int, error) {
	return f.pendingSales, f.pendingPurch, nil
}

func (f *fakeAnalyticsRepo) GetMonthlyInventoryValue(_ context.Context, _ string, _ int) ([]repository.MonthlyInventoryValueResult, error) {
	return f.monthlyValues, nil
}

type fakeStockSummaryRepo struct {
	summary repository.StockSummaryRow
}

func (f *fakeStockSummaryRepo) Count(_ context.Context, _ repository.StockListFilter) (int, error) {
	return 0, nil
}

func (f *fakeStockSummaryRepo) List(_ context.Context, _ repository.StockListFilter) ([]repository.StockListRow, error) {
	return nil, nil
}

func (f *fakeStockSummaryRepo) Summary(_ context.Context, _ repository.StockListFilter) (*repository.StockSummaryRow, error) {
	s := f.summary
	return &s, nil
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// startOfMonth devuelve el día 1 del mes de hace `ago` meses, zona local.
func startOfMonth(ago int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -ago, 0)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardSummary_AgregaLasCuatroFuentes(t *testing.T) {
	analyticsRepo := &fakeAnalyticsRepo{
		salesTotal:   dec("2500000.456"),
		salesCount:   18,
		purchTotal:   dec("1200000"),
		purchCount:   7,
		pendingSales: 3,
		pendingPurch: 2,
	}
	stockRepo := &fakeStockSummaryRepo{summary: repository.StockSummaryRow{
		TotalSKUs:       120,
		InventoryValue:  dec("8400000.005"),
		LowStockCount:   9,
		OutOfStockCount: 4,
	}}
	uc := analytics.NewDashboardUseCase(analyticsRepo, stockRepo)

	got, err := uc.GetSummary(context.Background(), "company-1")
	require.NoError(t, err)

	assert.True(t, got.InventoryValue.Equal(dec("8400000.01")), "el valor de inventario se redondea a 2 decimales")
	assert.Equal(t, 120, got.TotalSKUs)
	assert.Equal(t, 9, got.LowStockCount)
	assert.Equal(t, 4, got.OutOfStockCount)
	assert.True(t, got.MonthlySales.Equal(dec("2500000.46")))
	assert.Equal(t, 18, got.MonthlySalesOrders)
	assert.True(t, got.MonthlyPurchases.Equal(dec("1200000")))
	assert.Equal(t, 7, got.MonthlyPurchaseOrders)
	assert.Equal(t, 3, got.PendingSalesOrders)
	assert.Equal(t, 2, got.PendingPurchaseOrders)
	assert.NotEmpty(t, got.DateLabel)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetMonthlyInventoryValue — relleno de meses sin actividad
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthlyInventoryValue_RellenaMesesSinActividad(t *testing.T) {
	// Actividad solo hace 10 y hace 4 meses; el resto hereda el último valor.
	analyticsRepo := &fakeAnalyticsRepo{
		monthlyValues: []repository.MonthlyInventoryValueResult{
			{Month: startOfMonth(10), Value: dec("500000")},
			{Month: startOfMonth(4), Value: dec("750000.129")},
		},
	}
	uc := analytics.NewDashboardUseCase(analyticsRepo, &fakeStockSummaryRepo{})

	got, err := uc.GetMonthlyInventoryValue(context.Background(), "company-1")
	require.NoError(t, err)
	require.Len(t, got.Months, 12)

	// Antes del primer movimiento la serie vale cero.
	assert.True(t, got.Months[0].Value.IsZero(), "mes anterior al primer movimiento debe valer cero")

	// Índices: la serie arranca 11 meses atrás; hace 10 meses = índice 1.
	assert.True(t, got.Months[1].Value.Equal(dec("500000")))
	assert.True(t, got.Months[2].Value.Equal(dec("500000")), "mes sin actividad hereda el valor anterior")
	assert.True(t, got.Months[6].Value.Equal(dec("500000")))

	// Hace 4 meses = índice 7; de ahí al presente continúa el nuevo valor.
	assert.True(t, got.Months[7].Value.Equal(dec("750000.13")), "los valores se redondean a 2 decimales")
	assert.True(t, got.Months[11].Value.Equal(dec("750000.13")))

	// Los meses van en orden cronológico con clave YYYY-MM.
	assert.Equal(t, startOfMonth(11).Format("2006-01"), got.Months[0].Month)
	assert.Equal(t, startOfMonth(0).Format("2006-01"), got.Months[11].Month)
}

func TestMonthlyInventoryValue_SinMovimientos_SerieEnCero(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{}, &fakeStockSummaryRepo{})

	got, err := uc.GetMonthlyInventoryValue(context.Background(), "company-1")
	require.NoError(t, err)
	require.Len(t, got.Months, 12)
	for _, m := range got.Months {
		assert.True(t, m.Value.IsZero())
	}
}
