package repository

import (
	"context"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
)

// EmployeeFilter filtros del directorio de empleados.
// Search llega ya normalizado (nombre, email o cargo).
type EmployeeFilter struct {
	CompanyID  string
	Search     string
	Department string
	Status     string
	Limit      int
	Offset     int
}

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
	// List devuelve la página de empleados y el total bajo el mismo filtro.
	List(ctx context.Context, f EmployeeFilter) ([]*entity.Employee, int, error)
}
