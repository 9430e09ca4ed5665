package entity

import "time"

// AuditEvent representa una entrada del log de auditoría.
// Lo escribe el middleware HTTP para cada petición mutadora autenticada.
type AuditEvent struct {
	ID         string
	CompanyID  string
	UserID     string
	Action     string // ej: "product.create", "sales_order.dispatch"
	EntityType string // ej: "product", "purchase_order"
	EntityID   string // vacío si la operación no apunta a una entidad concreta
	StatusCode int    // código HTTP con el que terminó la petición
	IP         string
	OccurredAt time.Time
}
