package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
)

// MovementFilter filtros del listado del libro de movimientos.
type MovementFilter struct {
	CompanyID   string
	ProductID   string
	WarehouseID string
	Type        string // IN | OUT | ADJUSTMENT | TRANSFER | "" (todos)
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// InventoryMovementRepository define el puerto del libro de movimientos.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	// List devuelve la página de movimientos y el total bajo el mismo filtro.
	List(ctx context.Context, f MovementFilter) ([]*entity.InventoryMovement, int, error)
}
