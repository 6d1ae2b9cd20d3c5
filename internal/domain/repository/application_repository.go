package repository

import (
	"context"

	"github.com/talentbridge/ats-api/internal/domain/entity"
)

// ApplicationRepository define el puerto de persistencia para Application.
// El tenant de una Application es el de su Job: el scoping se hace con un join
// applications→jobs filtrando jobs.company_id.
type ApplicationRepository interface {
	Create(ctx context.Context, application *entity.Application) error
	// GetByID scoped vía join con jobs; carga el historial de estados.
	GetByID(ctx context.Context, id, companyID string) (*entity.Application, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Application, error)
	// ListByCandidate se usa en autoservicio (/me); no aplica scoping por company.
	ListByCandidate(ctx context.Context, candidateID string) ([]*entity.Application, error)
	Update(ctx context.Context, application *entity.Application) error
	Delete(ctx context.Context, id string) error
	AppendStatusEvent(ctx context.Context, event *entity.ApplicationStatusEvent) error
	ListStatusEvents(ctx context.Context, applicationID string) ([]entity.ApplicationStatusEvent, error)
}
