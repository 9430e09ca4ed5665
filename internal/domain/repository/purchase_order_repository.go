package repository

import (
	"context"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
)

// PurchaseOrderFilter filtros del listado de órdenes de compra.
type PurchaseOrderFilter struct {
	CompanyID  string
	SupplierID string
	Status     string
	Search     string // número de orden, ya normalizado
	Limit      int
	Offset     int
}

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	// Create persiste cabecera y líneas; llamar dentro de una transacción.
	Create(order *entity.PurchaseOrder, items []*entity.PurchaseOrderItem) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	GetItems(orderID string) ([]*entity.PurchaseOrderItem, error)
	UpdateStatus(order *entity.PurchaseOrder) error
	// NextNumber devuelve el siguiente consecutivo legible de la empresa (ej. "PO-000042").
	NextNumber(companyID string) (string, error)
	// List devuelve la página de órdenes y el total bajo el mismo filtro.
	List(ctx context.Context, f PurchaseOrderFilter) ([]*entity.PurchaseOrder, int, error)
}
