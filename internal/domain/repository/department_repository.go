package repository

import (
	"context"

	"github.com/talentbridge/ats-api/internal/domain/entity"
)

// DepartmentRepository define el puerto de persistencia para Department
// (scoping directo por company_id, mismo patrón que Job).
type DepartmentRepository interface {
	Create(ctx context.Context, department *entity.Department) error
	GetByID(ctx context.Context, id, companyID string) (*entity.Department, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Department, error)
	Update(ctx context.Context, department *entity.Department) error
	Delete(ctx context.Context, id, companyID string) error
}
