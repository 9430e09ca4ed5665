package repository

import "github.com/jhoicas/ErpAdmin-api/internal/domain/entity"

// StockRepository define el puerto para el stock materializado por producto y bodega.
type StockRepository interface {
	Get(productID, warehouseID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de una transacción.
	GetForUpdate(productID, warehouseID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
}
