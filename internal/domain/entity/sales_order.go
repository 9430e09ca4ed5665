package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de venta.
const (
	SalesStatusPending    = "pending"
	SalesStatusDispatched = "dispatched"
	SalesStatusDelivered  = "delivered"
	SalesStatusCancelled  = "cancelled"
)

// SalesOrder representa una orden de venta.
// El despacho genera movimientos OUT por línea dentro de la misma transacción.
type SalesOrder struct {
	ID           string
	CompanyID    string
	Number       string // consecutivo legible, ej: "SO-000317"
	CustomerName string
	WarehouseID  string // bodega origen del despacho
	Status       string
	Total        decimal.Decimal
	Notes        string
	OrderedAt    time.Time
	DispatchedAt *time.Time // nil mientras esté pendiente
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SalesOrderItem línea de una orden de venta.
type SalesOrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
