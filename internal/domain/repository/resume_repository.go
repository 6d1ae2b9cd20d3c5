package repository

import (
	"context"

	"github.com/talentbridge/ats-api/internal/domain/entity"
)

// ResumeRepository define el puerto de persistencia para Resume.
// Resume no tiene company_id: el llamador decide el acceso con
// CandidateRepository.IsAccessible sobre el candidate_id del resume.
type ResumeRepository interface {
	Create(ctx context.Context, resume *entity.Resume) error
	GetByID(ctx context.Context, id string) (*entity.Resume, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]*entity.Resume, error)
	Update(ctx context.Context, resume *entity.Resume) error
	Delete(ctx context.Context, id string) error
}
