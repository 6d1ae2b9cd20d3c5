package repository

import (
	"context"

	"github.com/talentbridge/ats-api/internal/domain/entity"
)

// RoleRepository define el puerto de persistencia para Role.
// Los roles son un catálogo global: no se filtran por company.
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	GetByID(ctx context.Context, id string) (*entity.Role, error)
	GetByName(ctx context.Context, name string) (*entity.Role, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Role, error)
	Update(ctx context.Context, role *entity.Role) error
	Delete(ctx context.Context, id string) error
}
