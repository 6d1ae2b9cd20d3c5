package repository

import (
	"context"

	"github.com/talentbridge/ats-api/internal/domain/entity"
)

// ContactRepository define el puerto de persistencia para Contact
// (scoping directo por company_id).
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	GetByID(ctx context.Context, id, companyID string) (*entity.Contact, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, id, companyID string) error
}
