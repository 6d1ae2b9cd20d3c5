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

// InterviewUseCase casos de uso de entrevistas. La entrevista y sus
// interviewers se crean en una sola transacción; el tenant se valida a través
// de la postulación.
type InterviewUseCase struct {
	ivRepo   repository.InterviewRepository
	appRepo  repository.ApplicationRepository
	userRepo repository.UserRepository
	tx       TxRunner
}

// NewInterviewUseCase construye el caso de uso de interviews.
func NewInterviewUseCase(
	ivRepo repository.InterviewRepository,
	appRepo repository.ApplicationRepository,
	userRepo repository.UserRepository,
	tx TxRunner,
) *InterviewUseCase {
	return &InterviewUseCase{ivRepo: ivRepo, appRepo: appRepo, userRepo: userRepo, tx: tx}
}

// Create agenda una entrevista para una postulación del tenant. Entrevista e
// interviewers se confirman juntos o no se confirma nada.
func (uc *InterviewUseCase) Create(ctx context.Context, companyID string, in dto.CreateInterviewRequest) (*dto.InterviewResponse, error) {
	if !entity.ValidInterviewType(in.InterviewType) {
		return nil, fmt.Errorf("%w: tipo de entrevista %q", domain.ErrInvalidInput, in.InterviewType)
	}
	if in.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration_minutes debe ser positivo", domain.ErrInvalidInput)
	}
	if len(in.InterviewerUserIDs) == 0 {
		return nil, fmt.Errorf("%w: se requiere al menos un entrevistador", domain.ErrInvalidInput)
	}
	app, err := uc.appRepo.GetByID(ctx, in.ApplicationID, companyID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	for _, userID := range in.InterviewerUserIDs {
		user, err := uc.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("%w: entrevistador %s", domain.ErrInvalidInput, userID)
		}
	}

	interview := &entity.Interview{
		ID:              uuid.New().String(),
		ApplicationID:   in.ApplicationID,
		ScheduledAt:     in.ScheduledAt,
		DurationMinutes: in.DurationMinutes,
		InterviewType:   in.InterviewType,
	}
	for _, userID := range in.InterviewerUserIDs {
		interview.Interviewers = append(interview.Interviewers, entity.Interviewer{
			ID:          uuid.New().String(),
			InterviewID: interview.ID,
			UserID:      userID,
		})
	}
	err = uc.tx.RunInterview(ctx, func(ivRepo repository.InterviewRepository) error {
		if err := ivRepo.Create(ctx, interview); err != nil {
			return err
		}
		for i := range interview.Interviewers {
			if err := ivRepo.AddInterviewer(ctx, &interview.Interviewers[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInterviewResponse(interview), nil
}

// Get obtiene una entrevista del tenant actuante.
func (uc *InterviewUseCase) Get(ctx context.Context, companyID, interviewID string) (*dto.InterviewResponse, error) {
	interview, err := uc.ivRepo.GetByID(ctx, interviewID, companyID)
	if err != nil {
		return nil, err
	}
	if interview == nil {
		return nil, domain.ErrNotFound
	}
	return toInterviewResponse(interview), nil
}

// CreateEvaluation registra el feedback de un entrevistador asignado a la
// entrevista. Un interviewer_id que no pertenece a la entrevista es inválido.
func (uc *InterviewUseCase) CreateEvaluation(ctx context.Context, companyID, interviewID string, in dto.CreateEvaluationRequest) (*dto.EvaluationResponse, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("%w: rating debe estar entre 1 y 5", domain.ErrInvalidInput)
	}
	interview, err := uc.ivRepo.GetByID(ctx, interviewID, companyID)
	if err != nil {
		return nil, err
	}
	if interview == nil {
		return nil, domain.ErrNotFound
	}
	assigned := false
	for _, p := range interview.Interviewers {
		if p.ID == in.InterviewerID {
			assigned = true
			break
		}
	}
	if !assigned {
		return nil, fmt.Errorf("%w: el entrevistador no está asignado a esta entrevista", domain.ErrInvalidInput)
	}
	evaluation := &entity.Evaluation{
		ID:            uuid.New().String(),
		InterviewID:   interview.ID,
		InterviewerID: in.InterviewerID,
		Rating:        in.Rating,
		Feedback:      in.Feedback,
		CreatedAt:     time.Now(),
	}
	if err := uc.ivRepo.CreateEvaluation(ctx, evaluation); err != nil {
		return nil, err
	}
	return &dto.EvaluationResponse{
		EvaluationID:  evaluation.ID,
		InterviewerID: evaluation.InterviewerID,
		Rating:        evaluation.Rating,
		Feedback:      evaluation.Feedback,
		CreatedAt:     evaluation.CreatedAt,
	}, nil
}

func toInterviewResponse(iv *entity.Interview) *dto.InterviewResponse {
	out := &dto.InterviewResponse{
		InterviewID:     iv.ID,
		ApplicationID:   iv.ApplicationID,
		ScheduledAt:     iv.ScheduledAt,
		DurationMinutes: iv.DurationMinutes,
		InterviewType:   iv.InterviewType,
	}
	for _, p := range iv.Interviewers {
		out.Interviewers = append(out.Interviewers, dto.InterviewerResponse{
			InterviewerID: p.ID,
			UserID:        p.UserID,
		})
	}
	for _, e := range iv.Evaluations {
		out.Evaluations = append(out.Evaluations, dto.EvaluationResponse{
			EvaluationID:  e.ID,
			InterviewerID: e.InterviewerID,
			Rating:        e.Rating,
			Feedback:      e.Feedback,
			CreatedAt:     e.CreatedAt,
		})
	}
	return out
}
