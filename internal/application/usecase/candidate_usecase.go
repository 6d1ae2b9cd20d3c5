package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/talentbridge/ats-api/internal/application/dto"
	"github.com/talentbridge/ats-api/internal/domain"
	"github.com/talentbridge/ats-api/internal/domain/entity"
	"github.com/talentbridge/ats-api/internal/domain/repository"
)

// CandidateUseCase casos de uso de candidatos. El acceso por tenant se decide
// con IsAccessible: un candidato fuera de alcance se reporta como
// domain.ErrNotFound para no filtrar su existencia.
type CandidateUseCase struct {
	candidateRepo repository.CandidateRepository
	appRepo       repository.ApplicationRepository
	ivRepo        repository.InterviewRepository
}

// NewCandidateUseCase construye el caso de uso de candidates.
func NewCandidateUseCase(
	candidateRepo repository.CandidateRepository,
	appRepo repository.ApplicationRepository,
	ivRepo repository.InterviewRepository,
) *CandidateUseCase {
	return &CandidateUseCase{candidateRepo: candidateRepo, appRepo: appRepo, ivRepo: ivRepo}
}

// Create crea un candidato, idempotente por email: si ya existe uno con ese
// email se devuelve el existente sin modificarlo. created_by_user_id se estampa
// con el usuario actuante y enlaza al candidato con el tenant de ese usuario.
func (uc *CandidateUseCase) Create(ctx context.Context, userID string, in dto.CreateCandidateRequest) (*dto.CandidateResponse, error) {
	if in.Email == "" {
		return nil, fmt.Errorf("%w: email es obligatorio", domain.ErrInvalidInput)
	}
	existing, err := uc.candidateRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toCandidateResponse(existing), nil
	}
	candidate := &entity.Candidate{
		ID:              uuid.New().String(),
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		Address:         in.Address,
		LinkedinProfile: in.LinkedinProfile,
		JobTitle:        in.JobTitle,
		CreatedByUserID: &userID,
		DateCreated:     time.Now(),
	}
	if err := uc.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, err
	}
	return toCandidateResponse(candidate), nil
}

// Get obtiene un candidato visible para el tenant actuante.
func (uc *CandidateUseCase) Get(ctx context.Context, companyID, candidateID string) (*dto.CandidateResponse, error) {
	candidate, err := uc.accessible(ctx, companyID, candidateID)
	if err != nil {
		return nil, err
	}
	return toCandidateResponse(candidate), nil
}

// List devuelve los candidatos alcanzables vía postulaciones a jobs del tenant.
func (uc *CandidateUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.CandidateListResponse, error) {
	page.DefaultPage()
	candidates, err := uc.candidateRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.CandidateListResponse{
		Items: make([]dto.CandidateResponse, 0, len(candidates)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, c := range candidates {
		out.Items = append(out.Items, *toCandidateResponse(c))
	}
	return out, nil
}

// Update actualiza el perfil de un candidato visible para el tenant.
func (uc *CandidateUseCase) Update(ctx context.Context, companyID, candidateID string, in dto.UpdateCandidateRequest) (*dto.CandidateResponse, error) {
	candidate, err := uc.accessible(ctx, companyID, candidateID)
	if err != nil {
		return nil, err
	}
	applyCandidateUpdate(candidate, in)
	if err := uc.candidateRepo.Update(ctx, candidate); err != nil {
		return nil, err
	}
	return toCandidateResponse(candidate), nil
}

// Delete elimina un candidato visible para el tenant.
func (uc *CandidateUseCase) Delete(ctx context.Context, companyID, candidateID string) error {
	if _, err := uc.accessible(ctx, companyID, candidateID); err != nil {
		return err
	}
	return uc.candidateRepo.Delete(ctx, candidateID)
}

// GetProfile autoservicio: el candidato autenticado lee su propio perfil.
func (uc *CandidateUseCase) GetProfile(ctx context.Context, candidateID string) (*dto.CandidateResponse, error) {
	candidate, err := uc.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, domain.ErrNotFound
	}
	return toCandidateResponse(candidate), nil
}

// UpdateProfile autoservicio: el candidato actualiza su propio perfil.
func (uc *CandidateUseCase) UpdateProfile(ctx context.Context, candidateID string, in dto.UpdateCandidateRequest) (*dto.CandidateResponse, error) {
	candidate, err := uc.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, domain.ErrNotFound
	}
	applyCandidateUpdate(candidate, in)
	if err := uc.candidateRepo.Update(ctx, candidate); err != nil {
		return nil, err
	}
	return toCandidateResponse(candidate), nil
}

// ListOwnApplications autoservicio: postulaciones del candidato autenticado.
func (uc *CandidateUseCase) ListOwnApplications(ctx context.Context, candidateID string) ([]dto.ApplicationResponse, error) {
	apps, err := uc.appRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		a.StatusHistory, err = uc.appRepo.ListStatusEvents(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toApplicationResponse(a))
	}
	return out, nil
}

// ListOwnInterviews autoservicio: entrevistas del candidato autenticado.
func (uc *CandidateUseCase) ListOwnInterviews(ctx context.Context, candidateID string) ([]dto.InterviewResponse, error) {
	interviews, err := uc.ivRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InterviewResponse, 0, len(interviews))
	for _, iv := range interviews {
		out = append(out, *toInterviewResponse(iv))
	}
	return out, nil
}

// accessible resuelve el gate de visibilidad y devuelve el candidato, o
// domain.ErrNotFound si está fuera del alcance del tenant.
func (uc *CandidateUseCase) accessible(ctx context.Context, companyID, candidateID string) (*entity.Candidate, error) {
	ok, err := uc.candidateRepo.IsAccessible(ctx, candidateID, companyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	candidate, err := uc.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, domain.ErrNotFound
	}
	return candidate, nil
}

func applyCandidateUpdate(c *entity.Candidate, in dto.UpdateCandidateRequest) {
	if in.FirstName != nil {
		c.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		c.LastName = *in.LastName
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.LinkedinProfile != nil {
		c.LinkedinProfile = *in.LinkedinProfile
	}
	if in.JobTitle != nil {
		c.JobTitle = *in.JobTitle
	}
}

func toCandidateResponse(c *entity.Candidate) *dto.CandidateResponse {
	return &dto.CandidateResponse{
		CandidateID:     c.ID,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         c.Address,
		LinkedinProfile: c.LinkedinProfile,
		JobTitle:        c.JobTitle,
		DateCreated:     c.DateCreated,
	}
}
