package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talentbridge/ats-api/internal/domain/entity"
	"github.com/talentbridge/ats-api/internal/domain/repository"
)

// Asegura que JobRepo implementa repository.JobRepository.
var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo implementación del puerto JobRepository sobre PostgreSQL.
// Job es el caso más simple de scoping: filtro directo por company_id en la
// cláusula WHERE. Department y Contact siguen este mismo patrón.
type JobRepo struct {
	q Querier
}

// NewJobRepository construye el adaptador de persistencia para jobs.
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

// Create persiste una nueva vacante con su payload serializado a jsonb.
func (r *JobRepo) Create(ctx context.Context, job *entity.Job) error {
	data, err := json.Marshal(job.Data)
	if err != nil {
		return fmt.Errorf("marshal job data: %w", err)
	}
	query := `
		INSERT INTO jobs (job_id, company_id, data, created_at)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(ctx, query, job.ID, job.CompanyID, data, job.CreatedAt); err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// GetByID obtiene una vacante scoped por company_id y carga su historial.
// Un job de otra company devuelve (nil, nil), igual que uno inexistente.
func (r *JobRepo) GetByID(ctx context.Context, id, companyID string) (*entity.Job, error) {
	query := `
		SELECT job_id, company_id, data, created_at
		FROM jobs WHERE job_id = $1 AND company_id = $2`
	job, err := r.scanJob(r.q.QueryRow(ctx, query, id, companyID))
	if err != nil || job == nil {
		return job, err
	}
	job.StatusHistory, err = r.ListStatusEvents(ctx, job.ID)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// ListByCompany devuelve las vacantes de una company con paginación.
func (r *JobRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Job, error) {
	query := `
		SELECT job_id, company_id, data, created_at
		FROM jobs WHERE company_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var list []*entity.Job
	for rows.Next() {
		job, err := r.scanJob(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, job)
	}
	return list, rows.Err()
}

// Update reemplaza el payload. El WHERE incluye company_id: una company nunca
// puede modificar la vacante de otra aunque conozca el ID.
func (r *JobRepo) Update(ctx context.Context, job *entity.Job) error {
	data, err := json.Marshal(job.Data)
	if err != nil {
		return fmt.Errorf("marshal job data: %w", err)
	}
	query := `UPDATE jobs SET data = $3 WHERE job_id = $1 AND company_id = $2`
	if _, err := r.q.Exec(ctx, query, job.ID, job.CompanyID, data); err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// Delete elimina una vacante, scoped por company_id.
func (r *JobRepo) Delete(ctx context.Context, id, companyID string) error {
	query := `DELETE FROM jobs WHERE job_id = $1 AND company_id = $2`
	if _, err := r.q.Exec(ctx, query, id, companyID); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

// AppendStatusEvent agrega un evento al historial. Solo INSERT: los eventos
// previos nunca se actualizan ni se borran.
func (r *JobRepo) AppendStatusEvent(ctx context.Context, event *entity.JobStatusEvent) error {
	query := `
		INSERT INTO job_status_events (event_id, job_id, status, changed_by_user_id, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		event.ID, event.JobID, event.Status, event.ChangedByUserID, event.Reason, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job status event: %w", err)
	}
	return nil
}

// ListStatusEvents devuelve el historial en orden de creación; el estado actual
// es el último elemento.
func (r *JobRepo) ListStatusEvents(ctx context.Context, jobID string) ([]entity.JobStatusEvent, error) {
	query := `
		SELECT event_id, job_id, status, changed_by_user_id, reason, created_at
		FROM job_status_events WHERE job_id = $1 ORDER BY created_at, event_id`
	rows, err := r.q.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("list job status events: %w", err)
	}
	defer rows.Close()

	var events []entity.JobStatusEvent
	for rows.Next() {
		var e entity.JobStatusEvent
		if err := rows.Scan(&e.ID, &e.JobID, &e.Status, &e.ChangedByUserID, &e.Reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan job status event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *JobRepo) scanJob(row interface{ Scan(dest ...any) error }) (*entity.Job, error) {
	var job entity.Job
	var data []byte
	err := row.Scan(&job.ID, &job.CompanyID, &data, &job.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan job: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &job.Data); err != nil {
			return nil, fmt.Errorf("unmarshal job data: %w", err)
		}
	}
	return &job, nil
}
