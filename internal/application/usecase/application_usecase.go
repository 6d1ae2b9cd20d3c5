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

// ApplicationUseCase casos de uso de postulaciones. El tenant de una
// postulación es el de su job: toda referencia a un job se valida contra el
// tenant actuante antes de escribir.
type ApplicationUseCase struct {
	appRepo       repository.ApplicationRepository
	jobRepo       repository.JobRepository
	candidateRepo repository.CandidateRepository
	tx            TxRunner
}

// NewApplicationUseCase construye el caso de uso de applications.
func NewApplicationUseCase(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	candidateRepo repository.CandidateRepository,
	tx TxRunner,
) *ApplicationUseCase {
	return &ApplicationUseCase{appRepo: appRepo, jobRepo: jobRepo, candidateRepo: candidateRepo, tx: tx}
}

// Create crea la postulación y su evento inicial applied en una transacción.
// El job debe pertenecer al tenant actuante; un job ajeno o inexistente es
// ErrNotFound.
func (uc *ApplicationUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if in.JobID == "" || in.CandidateID == "" {
		return nil, fmt.Errorf("%w: job_id y candidate_id son obligatorios", domain.ErrInvalidInput)
	}
	job, err := uc.jobRepo.GetByID(ctx, in.JobID, companyID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	candidate, err := uc.candidateRepo.GetByID(ctx, in.CandidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	app := &entity.Application{
		ID:          uuid.New().String(),
		JobID:       in.JobID,
		CandidateID: in.CandidateID,
		Source:      in.Source,
		AppliedAt:   now,
	}
	event := entity.ApplicationStatusEvent{
		ID:              uuid.New().String(),
		ApplicationID:   app.ID,
		Status:          entity.ApplicationStatusApplied,
		ChangedByUserID: userID,
		CreatedAt:       now,
	}
	err = uc.tx.RunApplication(ctx, func(appRepo repository.ApplicationRepository, _ repository.CandidateRepository) error {
		if err := appRepo.Create(ctx, app); err != nil {
			return err
		}
		return appRepo.AppendStatusEvent(ctx, &event)
	})
	if err != nil {
		return nil, err
	}
	app.StatusHistory = []entity.ApplicationStatusEvent{event}
	return toApplicationResponse(app), nil
}

// Get obtiene una postulación del tenant actuante.
func (uc *ApplicationUseCase) Get(ctx context.Context, companyID, applicationID string) (*dto.ApplicationResponse, error) {
	app, err := uc.appRepo.GetByID(ctx, applicationID, companyID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	return toApplicationResponse(app), nil
}

// List devuelve las postulaciones a jobs del tenant con paginación.
func (uc *ApplicationUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.ApplicationListResponse, error) {
	page.DefaultPage()
	apps, err := uc.appRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ApplicationListResponse{
		Items: make([]dto.ApplicationResponse, 0, len(apps)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, a := range apps {
		out.Items = append(out.Items, *toApplicationResponse(a))
	}
	return out, nil
}

// Update actualiza job_id y/o source. Si cambia el job, el nuevo también debe
// pertenecer al tenant: mover una postulación a un job ajeno es ErrNotFound.
func (uc *ApplicationUseCase) Update(ctx context.Context, companyID, applicationID string, in dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error) {
	app, err := uc.appRepo.GetByID(ctx, applicationID, companyID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	if in.JobID != nil && *in.JobID != app.JobID {
		job, err := uc.jobRepo.GetByID(ctx, *in.JobID, companyID)
		if err != nil {
			return nil, err
		}
		if job == nil {
			return nil, domain.ErrNotFound
		}
		app.JobID = *in.JobID
	}
	if in.Source != nil {
		app.Source = *in.Source
	}
	if err := uc.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return toApplicationResponse(app), nil
}

// UpdateStatus agrega un evento al historial de la postulación.
func (uc *ApplicationUseCase) UpdateStatus(ctx context.Context, companyID, applicationID, userID string, in dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	if !entity.ValidApplicationStatus(in.Status) {
		return nil, fmt.Errorf("%w: estado de application %q", domain.ErrInvalidInput, in.Status)
	}
	app, err := uc.appRepo.GetByID(ctx, applicationID, companyID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	event := entity.ApplicationStatusEvent{
		ID:              uuid.New().String(),
		ApplicationID:   app.ID,
		Status:          in.Status,
		ChangedByUserID: userID,
		Reason:          in.Reason,
		NextActionDate:  in.NextActionDate,
		CreatedAt:       time.Now(),
	}
	if err := uc.appRepo.AppendStatusEvent(ctx, &event); err != nil {
		return nil, err
	}
	app.StatusHistory = append(app.StatusHistory, event)
	return toApplicationResponse(app), nil
}

// Delete elimina una postulación del tenant.
func (uc *ApplicationUseCase) Delete(ctx context.Context, companyID, applicationID string) error {
	app, err := uc.appRepo.GetByID(ctx, applicationID, companyID)
	if err != nil {
		return err
	}
	if app == nil {
		return domain.ErrNotFound
	}
	return uc.appRepo.Delete(ctx, app.ID)
}

func toApplicationResponse(a *entity.Application) *dto.ApplicationResponse {
	out := &dto.ApplicationResponse{
		ApplicationID: a.ID,
		JobID:         a.JobID,
		CandidateID:   a.CandidateID,
		Source:        a.Source,
		Status:        a.CurrentStatus(),
		AppliedAt:     a.AppliedAt,
	}
	for _, e := range a.StatusHistory {
		out.StatusHistory = append(out.StatusHistory, dto.ApplicationStatusEventResponse{
			EventID:         e.ID,
			Status:          e.Status,
			ChangedByUserID: e.ChangedByUserID,
			Reason:          e.Reason,
			NextActionDate:  e.NextActionDate,
			CreatedAt:       e.CreatedAt,
		})
	}
	return out
}
