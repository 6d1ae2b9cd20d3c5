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

// RoleUseCase casos de uso del catálogo global de roles.
type RoleUseCase struct {
	roleRepo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso de roles.
func NewRoleUseCase(roleRepo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{roleRepo: roleRepo}
}

// Create registra un rol nuevo. Nombre duplicado devuelve domain.ErrConflict.
func (uc *RoleUseCase) Create(ctx context.Context, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	role := &entity.Role{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Permissions: in.Permissions,
	}
	if err := uc.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// Get obtiene un rol por ID.
func (uc *RoleUseCase) Get(ctx context.Context, id string) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	return toRoleResponse(role), nil
}

// List devuelve roles con paginación.
func (uc *RoleUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.RoleListResponse, error) {
	page.DefaultPage()
	roles, err := uc.roleRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.RoleListResponse{
		Items: make([]dto.RoleResponse, 0, len(roles)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, r := range roles {
		out.Items = append(out.Items, *toRoleResponse(r))
	}
	return out, nil
}

// Update actualiza nombre y/o permisos de un rol.
func (uc *RoleUseCase) Update(ctx context.Context, id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		role.Name = *in.Name
	}
	if in.Permissions != nil {
		role.Permissions = in.Permissions
	}
	if err := uc.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// Delete elimina un rol por ID.
func (uc *RoleUseCase) Delete(ctx context.Context, id string) error {
	role, err := uc.roleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	return uc.roleRepo.Delete(ctx, id)
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	return &dto.RoleResponse{
		RoleID:      r.ID,
		Name:        r.Name,
		Permissions: r.Permissions,
	}
}
