package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/talentbridge/ats-api/internal/application/dto"
	"github.com/talentbridge/ats-api/internal/domain"
	"github.com/talentbridge/ats-api/internal/domain/entity"
	"github.com/talentbridge/ats-api/internal/domain/repository"
)

// DepartmentUseCase casos de uso de departamentos, scoped por company.
type DepartmentUseCase struct {
	deptRepo repository.DepartmentRepository
}

// NewDepartmentUseCase construye el caso de uso de departments.
func NewDepartmentUseCase(deptRepo repository.DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{deptRepo: deptRepo}
}

// Create crea un departamento en la company actuante. El padre, si viene, debe
// pertenecer al mismo tenant.
func (uc *DepartmentUseCase) Create(ctx context.Context, companyID string, in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	if in.ParentDepartmentID != nil {
		parent, err := uc.deptRepo.GetByID(ctx, *in.ParentDepartmentID, companyID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, fmt.Errorf("%w: departamento padre %s", domain.ErrInvalidInput, *in.ParentDepartmentID)
		}
	}
	department := &entity.Department{
		ID:                 uuid.New().String(),
		CompanyID:          companyID,
		Name:               in.Name,
		ParentDepartmentID: in.ParentDepartmentID,
	}
	if err := uc.deptRepo.Create(ctx, department); err != nil {
		return nil, err
	}
	return toDepartmentResponse(department), nil
}

// Get obtiene un departamento del tenant actuante.
func (uc *DepartmentUseCase) Get(ctx context.Context, companyID, id string) (*dto.DepartmentResponse, error) {
	department, err := uc.deptRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrNotFound
	}
	return toDepartmentResponse(department), nil
}

// List devuelve los departamentos del tenant.
func (uc *DepartmentUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.DepartmentListResponse, error) {
	page.DefaultPage()
	departments, err := uc.deptRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.DepartmentListResponse{
		Items: make([]dto.DepartmentResponse, 0, len(departments)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, d := range departments {
		out.Items = append(out.Items, *toDepartmentResponse(d))
	}
	return out, nil
}

// Update actualiza nombre y/o padre de un departamento del tenant.
func (uc *DepartmentUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	department, err := uc.deptRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		department.Name = *in.Name
	}
	if in.ParentDepartmentID != nil {
		parent, err := uc.deptRepo.GetByID(ctx, *in.ParentDepartmentID, companyID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, fmt.Errorf("%w: departamento padre %s", domain.ErrInvalidInput, *in.ParentDepartmentID)
		}
		department.ParentDepartmentID = in.ParentDepartmentID
	}
	if err := uc.deptRepo.Update(ctx, department); err != nil {
		return nil, err
	}
	return toDepartmentResponse(department), nil
}

// Delete elimina un departamento del tenant.
func (uc *DepartmentUseCase) Delete(ctx context.Context, companyID, id string) error {
	department, err := uc.deptRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if department == nil {
		return domain.ErrNotFound
	}
	return uc.deptRepo.Delete(ctx, id, companyID)
}

func toDepartmentResponse(d *entity.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{
		DepartmentID:       d.ID,
		CompanyID:          d.CompanyID,
		Name:               d.Name,
		ParentDepartmentID: d.ParentDepartmentID,
	}
}
