package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/ErpAdmin-api/internal/application/dto"
	"github.com/jhoicas/ErpAdmin-api/internal/domain"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/listing"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

// AuditUseCase consulta paginada del log de auditoría del tenant.
type AuditUseCase struct {
	auditRepo repository.AuditEventRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(auditRepo repository.AuditEventRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// List devuelve una página del log de auditoría filtrado por usuario, acción,
// tipo de entidad y rango de fechas (formato YYYY-MM-DD, inclusivo).
func (uc *AuditUseCase) List(ctx context.Context, companyID string, in dto.AuditListRequest) (*dto.AuditListResponse, error) {
	f := repository.AuditFilter{
		CompanyID:  companyID,
		UserID:     in.UserID,
		Action:     in.Action,
		EntityType: in.EntityType,
	}
	if in.From != "" {
		from, err := time.ParseInLocation("2006-01-02", in.From, time.Local)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		f.From = &from
	}
	if in.To != "" {
		to, err := time.ParseInLocation("2006-01-02", in.To, time.Local)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// Inclusivo: la consulta usa < To, así que se corre al día siguiente
		to = to.AddDate(0, 0, 1)
		f.To = &to
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, domain.ErrInvalidInput
	}

	win := listing.NewPage(in.Page, in.PageSize, -1)
	f.Limit = win.PageSize
	f.Offset = (win.Page - 1) * win.PageSize

	list, total, err := uc.auditRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	final := listing.NewPage(win.Page, win.PageSize, total)
	if len(list) == 0 && total > 0 && final.Page != win.Page {
		f.Limit = final.PageSize
		f.Offset = final.Offset
		list, _, err = uc.auditRepo.List(ctx, f)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.AuditEventResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.AuditEventResponse{
			ID:         e.ID,
			UserID:     e.UserID,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			StatusCode: e.StatusCode,
			IP:         e.IP,
			OccurredAt: e.OccurredAt,
		})
	}
	return &dto.AuditListResponse{
		Items: items,
		Page:  dto.ToPageResponse(final),
	}, nil
}
