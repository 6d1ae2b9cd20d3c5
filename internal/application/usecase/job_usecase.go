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

// JobUseCase casos de uso de vacantes. Todas las operaciones reciben el
// companyID del tenant actuante; un miss de scoping se reporta como
// domain.ErrNotFound, nunca como ErrForbidden.
type JobUseCase struct {
	jobRepo repository.JobRepository
	tx      TxRunner
}

// NewJobUseCase construye el caso de uso de jobs.
func NewJobUseCase(jobRepo repository.JobRepository, tx TxRunner) *JobUseCase {
	return &JobUseCase{jobRepo: jobRepo, tx: tx}
}

// Create crea la vacante y su primer evento de estado en una transacción.
// Sin estado explícito, la vacante nace en draft.
func (uc *JobUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateJobRequest) (*dto.JobResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.JobStatusDraft
	}
	if !entity.ValidJobStatus(status) {
		return nil, fmt.Errorf("%w: estado de job %q", domain.ErrInvalidInput, status)
	}
	now := time.Now()
	job := &entity.Job{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Data:      in.JobData,
		CreatedAt: now,
	}
	job.Data.JobID = job.ID
	event := entity.JobStatusEvent{
		ID:              uuid.New().String(),
		JobID:           job.ID,
		Status:          status,
		ChangedByUserID: userID,
		CreatedAt:       now,
	}
	err := uc.tx.RunJob(ctx, func(jobRepo repository.JobRepository) error {
		if err := jobRepo.Create(ctx, job); err != nil {
			return err
		}
		return jobRepo.AppendStatusEvent(ctx, &event)
	})
	if err != nil {
		return nil, err
	}
	job.StatusHistory = []entity.JobStatusEvent{event}
	return toJobResponse(job), nil
}

// Get obtiene una vacante del tenant actuante.
func (uc *JobUseCase) Get(ctx context.Context, companyID, jobID string) (*dto.JobResponse, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID, companyID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	return toJobResponse(job), nil
}

// List devuelve las vacantes del tenant con paginación.
func (uc *JobUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.JobListResponse, error) {
	page.DefaultPage()
	jobs, err := uc.jobRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.JobListResponse{
		Items: make([]dto.JobResponse, 0, len(jobs)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, job := range jobs {
		out.Items = append(out.Items, *toJobResponse(job))
	}
	return out, nil
}

// Update reemplaza el payload de la vacante. El estado no cambia por esta vía.
func (uc *JobUseCase) Update(ctx context.Context, companyID, jobID string, in dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID, companyID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	job.Data = in.JobData
	job.Data.JobID = job.ID
	if err := uc.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// UpdateStatus agrega un evento al historial de la vacante. El evento se
// registra aunque repita el estado actual: el historial es la fuente de verdad.
func (uc *JobUseCase) UpdateStatus(ctx context.Context, companyID, jobID, userID string, in dto.UpdateJobStatusRequest) (*dto.JobResponse, error) {
	if !entity.ValidJobStatus(in.Status) {
		return nil, fmt.Errorf("%w: estado de job %q", domain.ErrInvalidInput, in.Status)
	}
	job, err := uc.jobRepo.GetByID(ctx, jobID, companyID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	event := entity.JobStatusEvent{
		ID:              uuid.New().String(),
		JobID:           job.ID,
		Status:          in.Status,
		ChangedByUserID: userID,
		Reason:          in.Reason,
		CreatedAt:       time.Now(),
	}
	if err := uc.jobRepo.AppendStatusEvent(ctx, &event); err != nil {
		return nil, err
	}
	job.StatusHistory = append(job.StatusHistory, event)
	return toJobResponse(job), nil
}

// Delete elimina una vacante del tenant.
func (uc *JobUseCase) Delete(ctx context.Context, companyID, jobID string) error {
	job, err := uc.jobRepo.GetByID(ctx, jobID, companyID)
	if err != nil {
		return err
	}
	if job == nil {
		return domain.ErrNotFound
	}
	return uc.jobRepo.Delete(ctx, jobID, companyID)
}

func toJobResponse(j *entity.Job) *dto.JobResponse {
	out := &dto.JobResponse{
		JobData:   j.Data,
		CompanyID: j.CompanyID,
		Status:    j.CurrentStatus(),
		CreatedAt: j.CreatedAt,
	}
	out.JobData.JobID = j.ID
	for _, e := range j.StatusHistory {
		out.StatusHistory = append(out.StatusHistory, dto.JobStatusEventResponse{
			EventID:         e.ID,
			Status:          e.Status,
			ChangedByUserID: e.ChangedByUserID,
			Reason:          e.Reason,
			CreatedAt:       e.CreatedAt,
		})
	}
	return out
}
