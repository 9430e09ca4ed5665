package purchasing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

// PurchasingTxRunner ejecuta una función dentro de una transacción que incluye repos de inventario y compras.
type PurchasingTxRunner interface {
	RunPurchasing(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error) error
}

// InventoryUseCase interfaz para integrar compras con el motor de inventario.
// ReceiveINInTx ejecuta una entrada (IN) usando los repositorios del caller (misma transacción)
// y recalcula el costo promedio ponderado del producto.
type InventoryUseCase interface {
	ReceiveINInTx(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		product *entity.Product,
		warehouseID, userID string,
		quantity, unitCost decimal.Decimal,
		now time.Time,
		transactionID, reference string,
	) error
}
