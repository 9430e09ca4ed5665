package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa un registro del directorio de personal.
// Es distinto de User: un empleado no necesariamente tiene acceso al sistema.
type Employee struct {
	ID         string
	CompanyID  string
	Name       string
	Email      string
	Phone      string
	Position   string
	Department string
	Salary     decimal.Decimal
	Status     string // active, on_leave, terminated
	HiredAt    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
