package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa el stock actual de un producto en una bodega (tabla materializada).
// Reserved es la cantidad comprometida en órdenes de venta pendientes de despacho.
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	Reserved    decimal.Decimal
	UpdatedAt   time.Time
}

// Available devuelve la cantidad disponible (en mano menos reservada).
func (s *Stock) Available() decimal.Decimal {
	return s.Quantity.Sub(s.Reserved)
}
