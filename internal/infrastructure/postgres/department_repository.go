package postgres

import (
	"context"
	"fmt"

	"github.com/talentbridge/ats-api/internal/domain/entity"
	"github.com/talentbridge/ats-api/internal/domain/repository"
)

// Asegura que DepartmentRepo implementa repository.DepartmentRepository.
var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación del puerto DepartmentRepository sobre
// PostgreSQL. Scoping directo por company_id, igual que jobs.
type DepartmentRepo struct {
	q Querier
}

// NewDepartmentRepository construye el adaptador de persistencia para departments.
func NewDepartmentRepository(q Querier) *DepartmentRepo {
	return &DepartmentRepo{q: q}
}

// Create persiste un nuevo departamento.
func (r *DepartmentRepo) Create(ctx context.Context, department *entity.Department) error {
	query := `
		INSERT INTO departments (department_id, company_id, name, parent_department_id)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query,
		department.ID, department.CompanyID, department.Name, department.ParentDepartmentID,
	)
	if err != nil {
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}

// GetByID obtiene un departamento scoped por company_id.
func (r *DepartmentRepo) GetByID(ctx context.Context, id, companyID string) (*entity.Department, error) {
	query := `
		SELECT department_id, company_id, name, parent_department_id
		FROM departments WHERE department_id = $1 AND company_id = $2`
	var d entity.Department
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(&d.ID, &d.CompanyID, &d.Name, &d.ParentDepartmentID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &d, nil
}

// ListByCompany devuelve los departamentos de la company.
func (r *DepartmentRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Department, error) {
	query := `
		SELECT department_id, company_id, name, parent_department_id
		FROM departments WHERE company_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Name, &d.ParentDepartmentID); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza nombre y departamento padre, scoped por company_id.
func (r *DepartmentRepo) Update(ctx context.Context, department *entity.Department) error {
	query := `
		UPDATE departments SET name = $3, parent_department_id = $4
		WHERE department_id = $1 AND company_id = $2`
	_, err := r.q.Exec(ctx, query,
		department.ID, department.CompanyID, department.Name, department.ParentDepartmentID,
	)
	if err != nil {
		return fmt.Errorf("update department: %w", err)
	}
	return nil
}

// Delete elimina un departamento, scoped por company_id.
func (r *DepartmentRepo) Delete(ctx context.Context, id, companyID string) error {
	query := `DELETE FROM departments WHERE department_id = $1 AND company_id = $2`
	if _, err := r.q.Exec(ctx, query, id, companyID); err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}
