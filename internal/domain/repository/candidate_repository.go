package repository

import (
	"context"

	"github.com/talentbridge/ats-api/internal/domain/entity"
)

// CandidateRepository define el puerto de persistencia para Candidate.
//
// Candidate no tiene company_id: la accesibilidad por tenant se deriva siempre.
// IsAccessible implementa la regla central del sistema y ListByCompany el listado
// scoped (solo la rama por application; ver decisión en DESIGN.md).
type CandidateRepository interface {
	Create(ctx context.Context, candidate *entity.Candidate) error
	// GetByID NO aplica scoping: los llamadores deben pasar antes por IsAccessible
	// (o estar en modo autoservicio, donde el candidato es dueño de su perfil).
	GetByID(ctx context.Context, id string) (*entity.Candidate, error)
	GetByEmail(ctx context.Context, email string) (*entity.Candidate, error)
	// IsAccessible responde si el candidato es visible para la company: tiene una
	// Application a un Job de esa company, O fue creado por un User de esa company.
	// OR inclusivo: ambas ramas son suficientes por sí solas y un candidato puede
	// ser visible para varias companies simultáneamente.
	IsAccessible(ctx context.Context, candidateID, companyID string) (bool, error)
	// ListByCompany devuelve el conjunto DISTINCT de candidatos alcanzables vía la
	// rama Application→Job. La rama created_by no participa del listado.
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Candidate, error)
	// Update nunca toca created_by_user_id ni date_created.
	Update(ctx context.Context, candidate *entity.Candidate) error
	Delete(ctx context.Context, id string) error
}
