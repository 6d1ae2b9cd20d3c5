package postgres

import (
	"context"
	"fmt"

	"github.com/talentbridge/ats-api/internal/domain"
	"github.com/talentbridge/ats-api/internal/domain/entity"
	"github.com/talentbridge/ats-api/internal/domain/repository"
)

// Asegura que CandidateRepo implementa repository.CandidateRepository.
var _ repository.CandidateRepository = (*CandidateRepo)(nil)

// CandidateRepo implementación del puerto CandidateRepository sobre PostgreSQL.
// Aquí vive la regla central de multi-tenancy: candidates no tiene company_id y
// la visibilidad se deriva con joins en cada consulta.
type CandidateRepo struct {
	q Querier
}

// NewCandidateRepository construye el adaptador de persistencia para candidates.
func NewCandidateRepository(q Querier) *CandidateRepo {
	return &CandidateRepo{q: q}
}

const candidateColumns = `candidate_id, first_name, last_name, email, phone, address, linkedin_profile, job_title, created_by_user_id, date_created`

// Create persiste un nuevo candidato. created_by_user_id se estampa aquí y no
// vuelve a tocarse nunca (Update lo excluye). Un email duplicado (dos creates
// concurrentes que pasaron el chequeo de idempotencia) se traduce a
// domain.ErrEmailAlreadyExists para que el handler responda 409.
func (r *CandidateRepo) Create(ctx context.Context, candidate *entity.Candidate) error {
	query := `
		INSERT INTO candidates (` + candidateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		candidate.ID, candidate.FirstName, candidate.LastName, candidate.Email,
		candidate.Phone, candidate.Address, candidate.LinkedinProfile,
		candidate.JobTitle, candidate.CreatedByUserID, candidate.DateCreated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

// GetByID obtiene un candidato por ID, SIN scoping. Los casos de uso deben
// consultar IsAccessible antes, salvo en modo autoservicio.
func (r *CandidateRepo) GetByID(ctx context.Context, id string) (*entity.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE candidate_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByEmail obtiene un candidato por email (único).
func (r *CandidateRepo) GetByEmail(ctx context.Context, email string) (*entity.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE email = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, email))
}

// IsAccessible evalúa la regla de acceso derivado en una sola consulta:
//
//	rama 1: el candidato tiene una Application a un Job de la company
//	rama 2: el candidato fue creado por un User de la company
//
// OR inclusivo: cada rama es suficiente por sí sola. Un candidato enlazado a la
// company A por application y creado por un user de la company B es accesible
// para ambas.
func (r *CandidateRepo) IsAccessible(ctx context.Context, candidateID, companyID string) (bool, error) {
	const query = `
		SELECT
			EXISTS (
				SELECT 1
				FROM applications a
				JOIN jobs j ON j.job_id = a.job_id
				WHERE a.candidate_id = $1 AND j.company_id = $2
			)
			OR
			EXISTS (
				SELECT 1
				FROM candidates c
				JOIN users u ON u.user_id = c.created_by_user_id
				WHERE c.candidate_id = $1 AND u.company_id = $2
			)`
	var accessible bool
	if err := r.q.QueryRow(ctx, query, candidateID, companyID).Scan(&accessible); err != nil {
		return false, fmt.Errorf("check candidate access: %w", err)
	}
	return accessible, nil
}

// ListByCompany devuelve el conjunto DISTINCT de candidatos alcanzables vía la
// rama application→job. Deliberadamente NO une la rama created_by: un candidato
// creado a mano sin applications no aparece en el listado aunque sí sea
// accesible por ID (ver DESIGN.md).
func (r *CandidateRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Candidate, error) {
	query := `
		SELECT DISTINCT c.candidate_id, c.first_name, c.last_name, c.email, c.phone,
		       c.address, c.linkedin_profile, c.job_title, c.created_by_user_id, c.date_created
		FROM candidates c
		JOIN applications a ON a.candidate_id = c.candidate_id
		JOIN jobs j ON j.job_id = a.job_id
		WHERE j.company_id = $1
		ORDER BY c.candidate_id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var list []*entity.Candidate
	for rows.Next() {
		c, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza los datos de perfil. created_by_user_id y date_created
// quedan fuera del SET: se estampan en la creación y nunca más.
func (r *CandidateRepo) Update(ctx context.Context, candidate *entity.Candidate) error {
	query := `
		UPDATE candidates
		SET first_name = $2, last_name = $3, email = $4, phone = $5,
		    address = $6, linkedin_profile = $7, job_title = $8
		WHERE candidate_id = $1`
	_, err := r.q.Exec(ctx, query,
		candidate.ID, candidate.FirstName, candidate.LastName, candidate.Email,
		candidate.Phone, candidate.Address, candidate.LinkedinProfile, candidate.JobTitle,
	)
	if err != nil {
		return fmt.Errorf("update candidate: %w", err)
	}
	return nil
}

// Delete elimina un candidato por ID. El gate de acceso es del caso de uso.
func (r *CandidateRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM candidates WHERE candidate_id = $1`, id); err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	return nil
}

func (r *CandidateRepo) scanOne(row interface{ Scan(dest ...any) error }) (*entity.Candidate, error) {
	var c entity.Candidate
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.Address, &c.LinkedinProfile, &c.JobTitle, &c.CreatedByUserID, &c.DateCreated,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan candidate: %w", err)
	}
	return &c, nil
}
