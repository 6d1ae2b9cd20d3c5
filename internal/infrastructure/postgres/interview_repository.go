package postgres

import (
	"context"
	"fmt"

	"github.com/talentbridge/ats-api/internal/domain/entity"
	"github.com/talentbridge/ats-api/internal/domain/repository"
)

// Asegura que InterviewRepo implementa repository.InterviewRepository.
var _ repository.InterviewRepository = (*InterviewRepo)(nil)

// InterviewRepo implementación del puerto InterviewRepository sobre PostgreSQL.
// El tenant de una Interview se deriva en dos saltos:
// interviews→applications→jobs, filtrando jobs.company_id.
type InterviewRepo struct {
	q Querier
}

// NewInterviewRepository construye el adaptador de persistencia para interviews.
func NewInterviewRepository(q Querier) *InterviewRepo {
	return &InterviewRepo{q: q}
}

// Create persiste la entrevista base; los interviewers se agregan con
// AddInterviewer dentro de la misma transacción.
func (r *InterviewRepo) Create(ctx context.Context, interview *entity.Interview) error {
	query := `
		INSERT INTO interviews (interview_id, application_id, scheduled_at, duration_minutes, interview_type)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		interview.ID, interview.ApplicationID, interview.ScheduledAt,
		interview.DurationMinutes, interview.InterviewType,
	)
	if err != nil {
		return fmt.Errorf("insert interview: %w", err)
	}
	return nil
}

// AddInterviewer asocia un user como entrevistador de la entrevista.
func (r *InterviewRepo) AddInterviewer(ctx context.Context, interviewer *entity.Interviewer) error {
	query := `
		INSERT INTO interviewers (interviewer_id, interview_id, user_id)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, interviewer.ID, interviewer.InterviewID, interviewer.UserID)
	if err != nil {
		return fmt.Errorf("insert interviewer: %w", err)
	}
	return nil
}

// GetByID obtiene una entrevista scoped con el join de dos saltos y carga
// interviewers y evaluations.
func (r *InterviewRepo) GetByID(ctx context.Context, id, companyID string) (*entity.Interview, error) {
	query := `
		SELECT i.interview_id, i.application_id, i.scheduled_at, i.duration_minutes, i.interview_type
		FROM interviews i
		JOIN applications a ON a.application_id = i.application_id
		JOIN jobs j ON j.job_id = a.job_id
		WHERE i.interview_id = $1 AND j.company_id = $2`
	iv, err := r.scanOne(r.q.QueryRow(ctx, query, id, companyID))
	if err != nil || iv == nil {
		return iv, err
	}
	if err := r.loadChildren(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// ListByCandidate devuelve las entrevistas del candidato (autoservicio /me).
func (r *InterviewRepo) ListByCandidate(ctx context.Context, candidateID string) ([]*entity.Interview, error) {
	query := `
		SELECT i.interview_id, i.application_id, i.scheduled_at, i.duration_minutes, i.interview_type
		FROM interviews i
		JOIN applications a ON a.application_id = i.application_id
		WHERE a.candidate_id = $1
		ORDER BY i.scheduled_at`
	rows, err := r.q.Query(ctx, query, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	defer rows.Close()

	var list []*entity.Interview
	for rows.Next() {
		iv, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, iv := range list {
		if err := r.loadChildren(ctx, iv); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// CreateEvaluation registra el feedback de un entrevistador.
func (r *InterviewRepo) CreateEvaluation(ctx context.Context, evaluation *entity.Evaluation) error {
	query := `
		INSERT INTO evaluations (evaluation_id, interview_id, interviewer_id, rating, feedback, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		evaluation.ID, evaluation.InterviewID, evaluation.InterviewerID,
		evaluation.Rating, evaluation.Feedback, evaluation.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

func (r *InterviewRepo) loadChildren(ctx context.Context, iv *entity.Interview) error {
	rows, err := r.q.Query(ctx,
		`SELECT interviewer_id, interview_id, user_id FROM interviewers WHERE interview_id = $1`, iv.ID)
	if err != nil {
		return fmt.Errorf("list interviewers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.Interviewer
		if err := rows.Scan(&p.ID, &p.InterviewID, &p.UserID); err != nil {
			return fmt.Errorf("scan interviewer: %w", err)
		}
		iv.Interviewers = append(iv.Interviewers, p)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	evRows, err := r.q.Query(ctx, `
		SELECT evaluation_id, interview_id, interviewer_id, rating, feedback, created_at
		FROM evaluations WHERE interview_id = $1 ORDER BY created_at`, iv.ID)
	if err != nil {
		return fmt.Errorf("list evaluations: %w", err)
	}
	defer evRows.Close()
	for evRows.Next() {
		var e entity.Evaluation
		if err := evRows.Scan(&e.ID, &e.InterviewID, &e.InterviewerID, &e.Rating, &e.Feedback, &e.CreatedAt); err != nil {
			return fmt.Errorf("scan evaluation: %w", err)
		}
		iv.Evaluations = append(iv.Evaluations, e)
	}
	return evRows.Err()
}

func (r *InterviewRepo) scanOne(row interface{ Scan(dest ...any) error }) (*entity.Interview, error) {
	var iv entity.Interview
	err := row.Scan(&iv.ID, &iv.ApplicationID, &iv.ScheduledAt, &iv.DurationMinutes, &iv.InterviewType)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan interview: %w", err)
	}
	return &iv, nil
}
