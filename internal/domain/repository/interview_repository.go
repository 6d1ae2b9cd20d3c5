package repository

import (
	"context"

	"github.com/talentbridge/ats-api/internal/domain/entity"
)

// InterviewRepository define el puerto de persistencia para Interview y sus
// Interviewers/Evaluations. El scoping es el join de dos saltos
// interviews→applications→jobs filtrando jobs.company_id.
type InterviewRepository interface {
	Create(ctx context.Context, interview *entity.Interview) error
	AddInterviewer(ctx context.Context, interviewer *entity.Interviewer) error
	// GetByID scoped con join de dos saltos; carga interviewers y evaluations.
	GetByID(ctx context.Context, id, companyID string) (*entity.Interview, error)
	// ListByCandidate se usa en autoservicio (/me/interviews).
	ListByCandidate(ctx context.Context, candidateID string) ([]*entity.Interview, error)
	CreateEvaluation(ctx context.Context, evaluation *entity.Evaluation) error
}
