package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateCost(productID string, cost decimal.Decimal) error
	// ListByCompany devuelve la página de productos y el total de la empresa.
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, int, error)
	Delete(id string) error
}
