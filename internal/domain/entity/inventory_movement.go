package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"         // entrada (compra, recepción de OC)
	MovementTypeOUT        = "OUT"        // salida (venta, despacho)
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste
	MovementTypeTRANSFER   = "TRANSFER"   // traslado entre bodegas
)

// InventoryMovement representa un movimiento de inventario (entrada, salida, ajuste o traslado).
// TransactionID agrupa los movimientos de una misma operación (ej. las dos patas de un traslado
// o las líneas de una recepción de orden de compra).
type InventoryMovement struct {
	ID            string
	TransactionID string
	ProductID     string
	WarehouseID   string
	Type          string
	Quantity      decimal.Decimal // positivo entrada/ajuste+, negativo salida
	UnitCost      decimal.Decimal
	TotalCost     decimal.Decimal
	Reference     string // ej. número de orden de compra o venta
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string
}
