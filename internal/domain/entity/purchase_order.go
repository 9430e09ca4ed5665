package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusReceived  = "received"
	PurchaseStatusCancelled = "cancelled"
)

// PurchaseOrder representa una orden de compra a un proveedor.
// Al recibirla se generan movimientos IN por línea y se actualiza el costo promedio.
type PurchaseOrder struct {
	ID          string
	CompanyID   string
	Number      string // consecutivo legible, ej: "PO-000042"
	SupplierID  string
	WarehouseID string // bodega destino de la recepción
	Status      string
	Total       decimal.Decimal
	Notes       string
	OrderedAt   time.Time
	ReceivedAt  *time.Time // nil mientras esté pendiente
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PurchaseOrderItem línea de una orden de compra.
type PurchaseOrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  decimal.Decimal
	UnitCost  decimal.Decimal
	Subtotal  decimal.Decimal
}
