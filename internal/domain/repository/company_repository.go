package repository

import (
	"context"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company y sus módulos SaaS (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(limit, offset int) ([]*entity.Company, int, error)

	// Módulos SaaS del tenant
	GetModules(companyID string) ([]*entity.CompanyModule, error)
	SetModuleActive(companyID, moduleName string, active bool) error
	HasActiveModule(ctx context.Context, companyID, moduleName string) (bool, error)
}
