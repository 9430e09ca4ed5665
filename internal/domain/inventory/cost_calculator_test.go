package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/inventory"
)

func TestWeightedAverageCost_MezclaDeCostos(t *testing.T) {
	// 10 unidades a $100 + 10 unidades a $200 = 20 unidades a $150
	got := inventory.WeightedAverageCost(
		decimal.NewFromInt(10), decimal.NewFromInt(100),
		decimal.NewFromInt(10), decimal.NewFromInt(200),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(150)), "esperaba 150, obtuve %s", got)
}

func TestWeightedAverageCost_SinStockPrevio_UsaCostoEntrada(t *testing.T) {
	got := inventory.WeightedAverageCost(
		decimal.Zero, decimal.Zero,
		decimal.NewFromInt(5), decimal.NewFromInt(80),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(80)))
}

func TestWeightedAverageCost_SumaCero_RetornaCero(t *testing.T) {
	got := inventory.WeightedAverageCost(
		decimal.Zero, decimal.NewFromInt(100),
		decimal.Zero, decimal.NewFromInt(200),
	)
	assert.True(t, got.IsZero(), "sin cantidades no hay costo que promediar")
}
