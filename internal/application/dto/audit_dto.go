package dto

import "time"

// AuditListRequest parámetros de GET /api/audit.
type AuditListRequest struct {
	Page       int    `query:"page"`
	PageSize   int    `query:"page_size"`
	UserID     string `query:"user_id"`
	Action     string `query:"action"`
	EntityType string `query:"entity_type"`
	From       string `query:"from"` // YYYY-MM-DD
	To         string `query:"to"`   // YYYY-MM-DD
}

// AuditEventResponse un evento del log de auditoría.
type AuditEventResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id,omitempty"`
	StatusCode int       `json:"status_code"`
	IP         string    `json:"ip"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AuditListResponse lista paginada de eventos de auditoría.
type AuditListResponse struct {
	Items []AuditEventResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
