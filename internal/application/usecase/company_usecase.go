package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ErpAdmin-api/internal/application/dto"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/listing"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

// CompanyUseCase casos de uso para el registro de empresas/tenants.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una nueva empresa con valores por defecto razonables.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanySettingsResponse, error) {
	now := time.Now()
	currency := in.Currency
	if currency == "" {
		currency = "COP"
	}
	timezone := in.Timezone
	if timezone == "" {
		timezone = "America/Bogota"
	}
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Currency:  currency,
		Timezone:  timezone,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanySettingsResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// List lista empresas con paginación por número de página.
func (uc *CompanyUseCase) List(page, pageSize int) (*dto.CompanyListResponse, error) {
	win := listing.NewPage(page, pageSize, -1)
	list, total, err := uc.repo.List(win.PageSize, (win.Page-1)*win.PageSize)
	if err != nil {
		return nil, err
	}
	final := listing.NewPage(win.Page, win.PageSize, total)
	if len(list) == 0 && total > 0 && final.Page != win.Page {
		list, _, err = uc.repo.List(final.PageSize, final.Offset)
		if err != nil {
			return nil, err
		}
	}
	items := make([]dto.CompanySettingsResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.ToPageResponse(final),
	}, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanySettingsResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanySettingsResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Currency:  c.Currency,
		Timezone:  c.Timezone,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
