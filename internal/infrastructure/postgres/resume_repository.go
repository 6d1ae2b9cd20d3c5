package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talentbridge/ats-api/internal/domain/entity"
	"github.com/talentbridge/ats-api/internal/domain/repository"
)

// Asegura que ResumeRepo implementa repository.ResumeRepository.
var _ repository.ResumeRepository = (*ResumeRepo)(nil)

// ResumeRepo implementación del puerto ResumeRepository sobre PostgreSQL.
// El payload parseado va en una columna jsonb; el acceso por tenant lo decide
// el caso de uso con IsAccessible sobre el candidate_id.
type ResumeRepo struct {
	q Querier
}

// NewResumeRepository construye el adaptador de persistencia para resumes.
func NewResumeRepository(q Querier) *ResumeRepo {
	return &ResumeRepo{q: q}
}

// Create persiste una nueva hoja de vida.
func (r *ResumeRepo) Create(ctx context.Context, resume *entity.Resume) error {
	data, err := json.Marshal(resume.ParsedData)
	if err != nil {
		return fmt.Errorf("marshal resume data: %w", err)
	}
	query := `
		INSERT INTO resumes (resume_id, candidate_id, file_location, parse_status, parsed_data, date_created)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.q.Exec(ctx, query,
		resume.ID, resume.CandidateID, resume.FileLocation,
		resume.ParseStatus, data, resume.DateCreated,
	)
	if err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}
	return nil
}

// GetByID obtiene una hoja de vida por ID, sin scoping.
func (r *ResumeRepo) GetByID(ctx context.Context, id string) (*entity.Resume, error) {
	query := `
		SELECT resume_id, candidate_id, file_location, parse_status, parsed_data, date_created
		FROM resumes WHERE resume_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// ListByCandidate devuelve las hojas de vida de un candidato.
func (r *ResumeRepo) ListByCandidate(ctx context.Context, candidateID string) ([]*entity.Resume, error) {
	query := `
		SELECT resume_id, candidate_id, file_location, parse_status, parsed_data, date_created
		FROM resumes WHERE candidate_id = $1 ORDER BY date_created DESC`
	rows, err := r.q.Query(ctx, query, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Resume
	for rows.Next() {
		resume, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, resume)
	}
	return list, rows.Err()
}

// Update reemplaza payload, estado de parseo y ubicación del archivo.
func (r *ResumeRepo) Update(ctx context.Context, resume *entity.Resume) error {
	data, err := json.Marshal(resume.ParsedData)
	if err != nil {
		return fmt.Errorf("marshal resume data: %w", err)
	}
	query := `
		UPDATE resumes
		SET file_location = $2, parse_status = $3, parsed_data = $4
		WHERE resume_id = $1`
	if _, err := r.q.Exec(ctx, query, resume.ID, resume.FileLocation, resume.ParseStatus, data); err != nil {
		return fmt.Errorf("update resume: %w", err)
	}
	return nil
}

// Delete elimina una hoja de vida por ID.
func (r *ResumeRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM resumes WHERE resume_id = $1`, id); err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	return nil
}

func (r *ResumeRepo) scanOne(row interface{ Scan(dest ...any) error }) (*entity.Resume, error) {
	var resume entity.Resume
	var data []byte
	err := row.Scan(&resume.ID, &resume.CandidateID, &resume.FileLocation,
		&resume.ParseStatus, &data, &resume.DateCreated)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan resume: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &resume.ParsedData); err != nil {
			return nil, fmt.Errorf("unmarshal resume data: %w", err)
		}
	}
	return &resume, nil
}
