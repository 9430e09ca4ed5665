package usecase

import (
	"time"

	"github.com/jhoicas/ErpAdmin-api/internal/application/dto"
	"github.com/jhoicas/ErpAdmin-api/internal/domain"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

// validModules módulos reconocidos para activación por tenant.
var validModules = map[string]bool{
	entity.ModuleInventory:  true,
	entity.ModuleSales:      true,
	entity.ModulePurchasing: true,
	entity.ModuleEmployees:  true,
	entity.ModuleAnalytics:  true,
}

// SettingsUseCase lectura y actualización del perfil del tenant y sus módulos SaaS.
type SettingsUseCase struct {
	companyRepo repository.CompanyRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(companyRepo repository.CompanyRepository) *SettingsUseCase {
	return &SettingsUseCase{companyRepo: companyRepo}
}

// GetCompany devuelve el perfil del tenant autenticado.
func (uc *SettingsUseCase) GetCompany(companyID string) (*dto.CompanySettingsResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// UpdateCompany actualiza el perfil del tenant (solo campos enviados).
func (uc *SettingsUseCase) UpdateCompany(companyID string, in dto.UpdateCompanySettingsRequest) (*dto.CompanySettingsResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.TaxID != nil {
		company.TaxID = *in.TaxID
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.Currency != nil {
		company.Currency = *in.Currency
	}
	if in.Timezone != nil {
		// Se valida contra la base de datos de zonas del sistema
		if _, err := time.LoadLocation(*in.Timezone); err != nil {
			return nil, domain.ErrInvalidInput
		}
		company.Timezone = *in.Timezone
	}
	company.UpdatedAt = time.Now()
	if err := uc.companyRepo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// ListModules devuelve el estado de todos los módulos SaaS del tenant.
// Los módulos sin registro en DB aparecen como inactivos.
func (uc *SettingsUseCase) ListModules(companyID string) (*dto.ModuleListResponse, error) {
	rows, err := uc.companyRepo.GetModules(companyID)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*entity.CompanyModule, len(rows))
	for _, m := range rows {
		byName[m.ModuleName] = m
	}
	// Orden estable de presentación
	names := []string{
		entity.ModuleInventory, entity.ModuleSales, entity.ModulePurchasing,
		entity.ModuleEmployees, entity.ModuleAnalytics,
	}
	out := make([]dto.ModuleStatusResponse, 0, len(names))
	for _, name := range names {
		if m, ok := byName[name]; ok {
			out = append(out, dto.ModuleStatusResponse{
				ModuleName:  m.ModuleName,
				IsActive:    m.IsActive,
				ActivatedAt: m.ActivatedAt,
				ExpiresAt:   m.ExpiresAt,
			})
			continue
		}
		out = append(out, dto.ModuleStatusResponse{ModuleName: name, IsActive: false})
	}
	return &dto.ModuleListResponse{Modules: out}, nil
}

// SetModule activa o desactiva un módulo SaaS del tenant.
func (uc *SettingsUseCase) SetModule(companyID, moduleName string, active bool) error {
	if !validModules[moduleName] {
		return domain.ErrInvalidInput
	}
	return uc.companyRepo.SetModuleActive(companyID, moduleName, active)
}
