package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
)

// AuditFilter filtros del listado de auditoría.
type AuditFilter struct {
	CompanyID  string
	UserID     string
	Action     string
	EntityType string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// AuditEventRepository define el puerto del log de auditoría.
// Create se llama desde el middleware HTTP; un fallo al auditar no debe
// tumbar la petición original, por eso el caller solo lo registra en el log.
type AuditEventRepository interface {
	Create(ctx context.Context, event *entity.AuditEvent) error
	// List devuelve la página de eventos y el total bajo el mismo filtro.
	List(ctx context.Context, f AuditFilter) ([]*entity.AuditEvent, int, error)
}
