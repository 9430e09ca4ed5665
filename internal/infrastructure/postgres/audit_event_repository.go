package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

var _ repository.AuditEventRepository = (*AuditEventRepo)(nil)

// AuditEventRepo implementación del log de auditoría sobre PostgreSQL.
type AuditEventRepo struct {
	pool *pgxpool.Pool
}

// NewAuditEventRepository construye el adaptador del log de auditoría.
func NewAuditEventRepository(pool *pgxpool.Pool) *AuditEventRepo {
	return &AuditEventRepo{pool: pool}
}

// Create persiste un evento de auditoría.
func (r *AuditEventRepo) Create(ctx context.Context, event *entity.AuditEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	query := `
		INSERT INTO audit_events (id, company_id, user_id, action, entity_type, entity_id, status_code, ip, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	entityID := (*string)(nil)
	if event.EntityID != "" {
		entityID = &event.EntityID
	}
	_, err := r.pool.Exec(ctx, query,
		event.ID, event.CompanyID, event.UserID, event.Action, event.EntityType,
		entityID, event.StatusCode, event.IP, event.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("create audit event: %w", err)
	}
	return nil
}

// buildAuditWhere arma el WHERE con placeholders posicionales según el filtro.
func buildAuditWhere(f repository.AuditFilter) (string, []any) {
	where := ` WHERE company_id = $1`
	args := []any{f.CompanyID}
	pos := 2

	if f.UserID != "" {
		where += fmt.Sprintf(" AND user_id = $%d", pos)
		args = append(args, f.UserID)
		pos++
	}
	if f.Action != "" {
		where += fmt.Sprintf(" AND action = $%d", pos)
		args = append(args, f.Action)
		pos++
	}
	if f.EntityType != "" {
		where += fmt.Sprintf(" AND entity_type = $%d", pos)
		args = append(args, f.EntityType)
		pos++
	}
	if f.From != nil {
		where += fmt.Sprintf(" AND occurred_at >= $%d", pos)
		args = append(args, *f.From)
		pos++
	}
	if f.To != nil {
		where += fmt.Sprintf(" AND occurred_at < $%d", pos)
		args = append(args, *f.To)
		pos++
	}
	return where, args
}

// List devuelve la página de eventos y el total bajo el mismo filtro.
func (r *AuditEventRepo) List(ctx context.Context, f repository.AuditFilter) ([]*entity.AuditEvent, int, error) {
	where, args := buildAuditWhere(f)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM audit_events`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit events: %w", err)
	}

	pos := len(args) + 1
	query := `
		SELECT id, company_id, user_id, action, entity_type, entity_id, status_code, ip, occurred_at
		FROM audit_events` + where +
		fmt.Sprintf(` ORDER BY occurred_at DESC LIMIT $%d OFFSET $%d`, pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditEvent
	for rows.Next() {
		var e entity.AuditEvent
		var entityID *string
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.UserID, &e.Action, &e.EntityType,
			&entityID, &e.StatusCode, &e.IP, &e.OccurredAt); err != nil {
			return nil, 0, fmt.Errorf("scan audit event: %w", err)
		}
		if entityID != nil {
			e.EntityID = *entityID
		}
		list = append(list, &e)
	}
	return list, total, rows.Err()
}
