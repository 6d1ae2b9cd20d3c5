package repository

import (
	"context"

	"github.com/talentbridge/ats-api/internal/domain/entity"
)

// JobRepository define el puerto de persistencia para Job.
// Todas las lecturas/escrituras scoped exigen el company_id del tenant actuante;
// un miss de scoping devuelve (nil, nil), indistinguible de la no existencia.
type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	// GetByID aplica el filtro directo por company_id y carga el historial de estados.
	GetByID(ctx context.Context, id, companyID string) (*entity.Job, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Job, error)
	// Update reemplaza el payload; la cláusula WHERE incluye company_id.
	Update(ctx context.Context, job *entity.Job) error
	Delete(ctx context.Context, id, companyID string) error
	// AppendStatusEvent agrega un evento al historial; nunca muta eventos previos.
	AppendStatusEvent(ctx context.Context, event *entity.JobStatusEvent) error
	ListStatusEvents(ctx context.Context, jobID string) ([]entity.JobStatusEvent, error)
}
