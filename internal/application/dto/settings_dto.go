package dto

import "time"

// CompanySettingsResponse perfil del tenant (GET /api/settings/company).
type CompanySettingsResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Currency  string    `json:"currency"`
	Timezone  string    `json:"timezone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateCompanySettingsRequest body de PUT /api/settings/company.
type UpdateCompanySettingsRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	TaxID    *string `json:"tax_id" validate:"omitempty,max=50"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Currency *string `json:"currency" validate:"omitempty,len=3"`
	Timezone *string `json:"timezone"`
}

// ModuleStatusResponse estado de un módulo SaaS del tenant.
type ModuleStatusResponse struct {
	ModuleName  string     `json:"module_name"`
	IsActive    bool       `json:"is_active"`
	ActivatedAt time.Time  `json:"activated_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// ModuleListResponse estado de todos los módulos del tenant.
type ModuleListResponse struct {
	Modules []ModuleStatusResponse `json:"modules"`
}

// SetModuleRequest body de PUT /api/settings/modules/:name.
type SetModuleRequest struct {
	IsActive bool `json:"is_active"`
}

// ── Empresas (registro de tenants) ────────────────────────────────────────────

// CreateCompanyRequest entrada para crear una empresa/tenant.
type CreateCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	TaxID    string `json:"tax_id" validate:"required,max=50"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"omitempty,email"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
	Timezone string `json:"timezone"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanySettingsResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}
