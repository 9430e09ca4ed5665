package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeListRequest parámetros de GET /api/employees.
type EmployeeListRequest struct {
	Page       int    `query:"page"`
	PageSize   int    `query:"page_size"`
	Search     string `query:"search"`
	Department string `query:"department"`
	Status     string `query:"status" validate:"omitempty,oneof=active on_leave terminated"`
}

// CreateEmployeeRequest entrada para crear un empleado.
type CreateEmployeeRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Email      string          `json:"email" validate:"omitempty,email"`
	Phone      string          `json:"phone"`
	Position   string          `json:"position" validate:"required,max=150"`
	Department string          `json:"department" validate:"required,max=150"`
	Salary     decimal.Decimal `json:"salary"`
	HiredAt    time.Time       `json:"hired_at"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado.
type UpdateEmployeeRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Email      *string          `json:"email" validate:"omitempty,email"`
	Phone      *string          `json:"phone"`
	Position   *string          `json:"position"`
	Department *string          `json:"department"`
	Salary     *decimal.Decimal `json:"salary"`
	Status     *string          `json:"status" validate:"omitempty,oneof=active on_leave terminated"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID         string          `json:"id"`
	CompanyID  string          `json:"company_id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	Status     string          `json:"status"`
	HiredAt    time.Time       `json:"hired_at"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
