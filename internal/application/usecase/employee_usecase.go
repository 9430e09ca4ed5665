package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ErpAdmin-api/internal/application/dto"
	"github.com/jhoicas/ErpAdmin-api/internal/domain"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/listing"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

// EmployeeUseCase gestiona el directorio de personal del tenant.
type EmployeeUseCase struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(employeeRepo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employeeRepo: employeeRepo}
}

// Create registra un empleado nuevo con estado activo.
func (uc *EmployeeUseCase) Create(companyID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.Position == "" || in.Department == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	hiredAt := in.HiredAt
	if hiredAt.IsZero() {
		hiredAt = now
	}
	employee := &entity.Employee{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Position:   in.Position,
		Department: in.Department,
		Salary:     in.Salary,
		Status:     "active",
		HiredAt:    hiredAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.employeeRepo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID devuelve un empleado del tenant.
func (uc *EmployeeUseCase) GetByID(companyID, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.employeeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil || employee.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// Update modifica los campos enviados de un empleado.
func (uc *EmployeeUseCase) Update(companyID, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.employeeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil || employee.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		employee.Name = *in.Name
	}
	if in.Email != nil {
		employee.Email = *in.Email
	}
	if in.Phone != nil {
		employee.Phone = *in.Phone
	}
	if in.Position != nil {
		employee.Position = *in.Position
	}
	if in.Department != nil {
		employee.Department = *in.Department
	}
	if in.Salary != nil {
		employee.Salary = *in.Salary
	}
	if in.Status != nil {
		switch *in.Status {
		case "active", "on_leave", "terminated":
			employee.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	employee.UpdatedAt = time.Now()
	if err := uc.employeeRepo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina un empleado del tenant.
func (uc *EmployeeUseCase) Delete(companyID, id string) error {
	employee, err := uc.employeeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil || employee.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.employeeRepo.Delete(id)
}

// List devuelve una página del directorio filtrado por búsqueda,
// departamento y estado.
func (uc *EmployeeUseCase) List(ctx context.Context, companyID string, in dto.EmployeeListRequest) (*dto.EmployeeListResponse, error) {
	switch in.Status {
	case "", "active", "on_leave", "terminated":
	default:
		return nil, domain.ErrInvalidInput
	}

	f := repository.EmployeeFilter{
		CompanyID:  companyID,
		Search:     listing.NormalizeSearch(in.Search),
		Department: in.Department,
		Status:     in.Status,
	}
	win := listing.NewPage(in.Page, in.PageSize, -1)
	f.Limit = win.PageSize
	f.Offset = (win.Page - 1) * win.PageSize

	list, total, err := uc.employeeRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	final := listing.NewPage(win.Page, win.PageSize, total)
	if len(list) == 0 && total > 0 && final.Page != win.Page {
		f.Limit = final.PageSize
		f.Offset = final.Offset
		list, _, err = uc.employeeRepo.List(ctx, f)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.ToPageResponse(final),
	}, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:         e.ID,
		CompanyID:  e.CompanyID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Department: e.Department,
		Salary:     e.Salary,
		Status:     e.Status,
		HiredAt:    e.HiredAt,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
