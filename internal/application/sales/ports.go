package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

// SalesTxRunner ejecuta una función dentro de una transacción que incluye repos de inventario y ventas.
type SalesTxRunner interface {
	RunSales(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.SalesOrderRepository,
	) error) error
}

// InventoryUseCase interfaz para integrar ventas con el motor de inventario.
// DispatchOUTInTx ejecuta una salida (OUT) que consume la reserva de la orden,
// usando los repositorios del caller (misma transacción).
// Si retorna error (ej: ErrInsufficientStock), el caller debe hacer rollback.
type InventoryUseCase interface {
	DispatchOUTInTx(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		product *entity.Product,
		warehouseID, userID string,
		quantity decimal.Decimal,
		now time.Time,
		transactionID, reference string,
	) error
}
