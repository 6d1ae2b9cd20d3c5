package postgres

import (
	"context"
	"fmt"

	"github.com/talentbridge/ats-api/internal/domain/entity"
	"github.com/talentbridge/ats-api/internal/domain/repository"
)

// Asegura que ApplicationRepo implementa repository.ApplicationRepository.
var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

// ApplicationRepo implementación del puerto ApplicationRepository sobre
// PostgreSQL. Application no guarda company_id: su tenant es el de su Job, así
// que el scoping se resuelve con un join applications→jobs.
type ApplicationRepo struct {
	q Querier
}

// NewApplicationRepository construye el adaptador de persistencia para applications.
func NewApplicationRepository(q Querier) *ApplicationRepo {
	return &ApplicationRepo{q: q}
}

// Create persiste una nueva postulación.
func (r *ApplicationRepo) Create(ctx context.Context, application *entity.Application) error {
	query := `
		INSERT INTO applications (application_id, job_id, candidate_id, source, applied_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		application.ID, application.JobID, application.CandidateID,
		application.Source, application.AppliedAt,
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// GetByID obtiene una postulación scoped vía join con jobs y carga su historial.
func (r *ApplicationRepo) GetByID(ctx context.Context, id, companyID string) (*entity.Application, error) {
	query := `
		SELECT a.application_id, a.job_id, a.candidate_id, a.source, a.applied_at
		FROM applications a
		JOIN jobs j ON j.job_id = a.job_id
		WHERE a.application_id = $1 AND j.company_id = $2`
	app, err := r.scanOne(r.q.QueryRow(ctx, query, id, companyID))
	if err != nil || app == nil {
		return app, err
	}
	app.StatusHistory, err = r.ListStatusEvents(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// ListByCompany devuelve las postulaciones a jobs de la company, con paginación.
func (r *ApplicationRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Application, error) {
	query := `
		SELECT a.application_id, a.job_id, a.candidate_id, a.source, a.applied_at
		FROM applications a
		JOIN jobs j ON j.job_id = a.job_id
		WHERE j.company_id = $1
		ORDER BY a.applied_at DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, companyID, limit, offset)
}

// ListByCandidate devuelve las postulaciones de un candidato (autoservicio /me).
func (r *ApplicationRepo) ListByCandidate(ctx context.Context, candidateID string) ([]*entity.Application, error) {
	query := `
		SELECT application_id, job_id, candidate_id, source, applied_at
		FROM applications WHERE candidate_id = $1
		ORDER BY applied_at DESC`
	return r.list(ctx, query, candidateID)
}

// Update actualiza job_id y source. El caso de uso revalida el nuevo job contra
// el tenant antes de llegar aquí.
func (r *ApplicationRepo) Update(ctx context.Context, application *entity.Application) error {
	query := `UPDATE applications SET job_id = $2, source = $3 WHERE application_id = $1`
	_, err := r.q.Exec(ctx, query, application.ID, application.JobID, application.Source)
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	return nil
}

// Delete elimina una postulación por ID. El gate de tenant es del caso de uso.
func (r *ApplicationRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM applications WHERE application_id = $1`, id); err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	return nil
}

// AppendStatusEvent agrega un evento al historial, nunca muta los previos.
func (r *ApplicationRepo) AppendStatusEvent(ctx context.Context, event *entity.ApplicationStatusEvent) error {
	query := `
		INSERT INTO application_status_events
			(event_id, application_id, status, changed_by_user_id, reason, next_action_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		event.ID, event.ApplicationID, event.Status, event.ChangedByUserID,
		event.Reason, event.NextActionDate, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert application status event: %w", err)
	}
	return nil
}

// ListStatusEvents devuelve el historial en orden de creación.
func (r *ApplicationRepo) ListStatusEvents(ctx context.Context, applicationID string) ([]entity.ApplicationStatusEvent, error) {
	query := `
		SELECT event_id, application_id, status, changed_by_user_id, reason, next_action_date, created_at
		FROM application_status_events
		WHERE application_id = $1 ORDER BY created_at, event_id`
	rows, err := r.q.Query(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("list application status events: %w", err)
	}
	defer rows.Close()

	var events []entity.ApplicationStatusEvent
	for rows.Next() {
		var e entity.ApplicationStatusEvent
		err := rows.Scan(&e.ID, &e.ApplicationID, &e.Status, &e.ChangedByUserID,
			&e.Reason, &e.NextActionDate, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan application status event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *ApplicationRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Application, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var list []*entity.Application
	for rows.Next() {
		app, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, app)
	}
	return list, rows.Err()
}

func (r *ApplicationRepo) scanOne(row interface{ Scan(dest ...any) error }) (*entity.Application, error) {
	var a entity.Application
	err := row.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.Source, &a.AppliedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan application: %w", err)
	}
	return &a, nil
}
