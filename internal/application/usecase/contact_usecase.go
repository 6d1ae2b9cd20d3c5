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

// ContactUseCase casos de uso de contactos, scoped por company.
type ContactUseCase struct {
	contactRepo repository.ContactRepository
	deptRepo    repository.DepartmentRepository
}

// NewContactUseCase construye el caso de uso de contacts.
func NewContactUseCase(contactRepo repository.ContactRepository, deptRepo repository.DepartmentRepository) *ContactUseCase {
	return &ContactUseCase{contactRepo: contactRepo, deptRepo: deptRepo}
}

// Create crea un contacto en la company actuante. El departamento, si viene,
// debe pertenecer al mismo tenant.
func (uc *ContactUseCase) Create(ctx context.Context, companyID string, in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	if err := uc.validateDepartment(ctx, companyID, in.DepartmentID); err != nil {
		return nil, err
	}
	contact := &entity.Contact{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		DepartmentID: in.DepartmentID,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
	}
	if err := uc.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// Get obtiene un contacto del tenant actuante.
func (uc *ContactUseCase) Get(ctx context.Context, companyID, id string) (*dto.ContactResponse, error) {
	contact, err := uc.contactRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	return toContactResponse(contact), nil
}

// List devuelve los contactos del tenant.
func (uc *ContactUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.ContactListResponse, error) {
	page.DefaultPage()
	contacts, err := uc.contactRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ContactListResponse{
		Items: make([]dto.ContactResponse, 0, len(contacts)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, c := range contacts {
		out.Items = append(out.Items, *toContactResponse(c))
	}
	return out, nil
}

// Update actualiza los datos de un contacto del tenant.
func (uc *ContactUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	contact, err := uc.contactRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	if in.DepartmentID != nil {
		if err := uc.validateDepartment(ctx, companyID, in.DepartmentID); err != nil {
			return nil, err
		}
		contact.DepartmentID = in.DepartmentID
	}
	if in.Name != nil {
		contact.Name = *in.Name
	}
	if in.Email != nil {
		contact.Email = *in.Email
	}
	if in.Phone != nil {
		contact.Phone = *in.Phone
	}
	if err := uc.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// Delete elimina un contacto del tenant.
func (uc *ContactUseCase) Delete(ctx context.Context, companyID, id string) error {
	contact, err := uc.contactRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if contact == nil {
		return domain.ErrNotFound
	}
	return uc.contactRepo.Delete(ctx, id, companyID)
}

func (uc *ContactUseCase) validateDepartment(ctx context.Context, companyID string, departmentID *string) error {
	if departmentID == nil {
		return nil
	}
	department, err := uc.deptRepo.GetByID(ctx, *departmentID, companyID)
	if err != nil {
		return err
	}
	if department == nil {
		return fmt.Errorf("%w: departamento %s", domain.ErrInvalidInput, *departmentID)
	}
	return nil
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		ContactID:    c.ID,
		CompanyID:    c.CompanyID,
		DepartmentID: c.DepartmentID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
	}
}
