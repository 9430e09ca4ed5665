package repository

import (
	"context"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
)

// SalesOrderFilter filtros del listado de órdenes de venta.
type SalesOrderFilter struct {
	CompanyID string
	Status    string
	Search    string // número de orden o nombre del cliente, ya normalizado
	Limit     int
	Offset    int
}

// SalesOrderRepository define el puerto de persistencia para órdenes de venta.
type SalesOrderRepository interface {
	// Create persiste cabecera y líneas; llamar dentro de una transacción.
	Create(order *entity.SalesOrder, items []*entity.SalesOrderItem) error
	GetByID(id string) (*entity.SalesOrder, error)
	GetItems(orderID string) ([]*entity.SalesOrderItem, error)
	UpdateStatus(order *entity.SalesOrder) error
	// NextNumber devuelve el siguiente consecutivo legible de la empresa (ej. "SO-000317").
	NextNumber(companyID string) (string, error)
	// List devuelve la página de órdenes y el total bajo el mismo filtro.
	List(ctx context.Context, f SalesOrderFilter) ([]*entity.SalesOrder, int, error)
}
