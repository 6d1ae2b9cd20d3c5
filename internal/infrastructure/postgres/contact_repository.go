package postgres

import (
	"context"
	"fmt"

	"github.com/talentbridge/ats-api/internal/domain/entity"
	"github.com/talentbridge/ats-api/internal/domain/repository"
)

// Asegura que ContactRepo implementa repository.ContactRepository.
var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación del puerto ContactRepository sobre PostgreSQL.
// Scoping directo por company_id.
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador de persistencia para contacts.
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

// Create persiste un nuevo contacto.
func (r *ContactRepo) Create(ctx context.Context, contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (contact_id, company_id, department_id, name, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		contact.ID, contact.CompanyID, contact.DepartmentID,
		contact.Name, contact.Email, contact.Phone,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByID obtiene un contacto scoped por company_id.
func (r *ContactRepo) GetByID(ctx context.Context, id, companyID string) (*entity.Contact, error) {
	query := `
		SELECT contact_id, company_id, department_id, name, email, phone
		FROM contacts WHERE contact_id = $1 AND company_id = $2`
	var c entity.Contact
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(
		&c.ID, &c.CompanyID, &c.DepartmentID, &c.Name, &c.Email, &c.Phone,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}

// ListByCompany devuelve los contactos de la company.
func (r *ContactRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Contact, error) {
	query := `
		SELECT contact_id, company_id, department_id, name, email, phone
		FROM contacts WHERE company_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Contact
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.DepartmentID, &c.Name, &c.Email, &c.Phone); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los datos del contacto, scoped por company_id.
func (r *ContactRepo) Update(ctx context.Context, contact *entity.Contact) error {
	query := `
		UPDATE contacts SET department_id = $3, name = $4, email = $5, phone = $6
		WHERE contact_id = $1 AND company_id = $2`
	_, err := r.q.Exec(ctx, query,
		contact.ID, contact.CompanyID, contact.DepartmentID,
		contact.Name, contact.Email, contact.Phone,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

// Delete elimina un contacto, scoped por company_id.
func (r *ContactRepo) Delete(ctx context.Context, id, companyID string) error {
	query := `DELETE FROM contacts WHERE contact_id = $1 AND company_id = $2`
	if _, err := r.q.Exec(ctx, query, id, companyID); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
