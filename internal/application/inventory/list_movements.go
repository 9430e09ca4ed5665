package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/ErpAdmin-api/internal/application/dto"
	"github.com/jhoicas/ErpAdmin-api/internal/domain"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/listing"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

// ListMovementsUseCase consulta paginada del libro de movimientos.
type ListMovementsUseCase struct {
	movRepo repository.InventoryMovementRepository
}

// NewListMovementsUseCase construye el caso de uso.
func NewListMovementsUseCase(movRepo repository.InventoryMovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{movRepo: movRepo}
}

// List devuelve una página del libro de movimientos filtrado por producto,
// bodega, tipo y rango de fechas (formato YYYY-MM-DD, inclusivo).
func (uc *ListMovementsUseCase) List(ctx context.Context, companyID string, in dto.MovementListRequest) (*dto.MovementListResponse, error) {
	switch in.Type {
	case "", entity.MovementTypeIN, entity.MovementTypeOUT, entity.MovementTypeADJUSTMENT, entity.MovementTypeTRANSFER:
	default:
		return nil, domain.ErrInvalidInput
	}

	f := repository.MovementFilter{
		CompanyID:   companyID,
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Type:        in.Type,
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

	list, total, err := uc.movRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	final := listing.NewPage(win.Page, win.PageSize, total)
	if len(list) == 0 && total > 0 && final.Page != win.Page {
		f.Limit = final.PageSize
		f.Offset = final.Offset
		list, _, err = uc.movRepo.List(ctx, f)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			ProductID:     m.ProductID,
			WarehouseID:   m.WarehouseID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			UnitCost:      m.UnitCost,
			TotalCost:     m.TotalCost,
			Reference:     m.Reference,
			Date:          m.Date,
			CreatedBy:     m.CreatedBy,
		})
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.ToPageResponse(final),
	}, nil
}
