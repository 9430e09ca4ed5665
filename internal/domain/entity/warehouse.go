package entity

import "time"

// Warehouse bodega física de la empresa; el stock se lleva por producto y bodega.
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
