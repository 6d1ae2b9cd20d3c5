package postgres

import (
	"context"
	"fmt"

	"github.com/talentbridge/ats-api/internal/domain"
	"github.com/talentbridge/ats-api/internal/domain/entity"
	"github.com/talentbridge/ats-api/internal/domain/repository"
)

// Asegura que RoleRepo implementa repository.RoleRepository.
var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
// Los roles son catálogo global: ninguna query filtra por company.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un nuevo rol. Un nombre duplicado devuelve domain.ErrConflict.
func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	query := `
		INSERT INTO roles (role_id, name, permissions)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, role.ID, role.Name, role.Permissions)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(ctx context.Context, id string) (*entity.Role, error) {
	query := `SELECT role_id, name, permissions FROM roles WHERE role_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByName obtiene un rol por nombre (único).
func (r *RoleRepo) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	query := `SELECT role_id, name, permissions FROM roles WHERE name = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, name))
}

// List devuelve roles con paginación.
func (r *RoleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Role, error) {
	query := `SELECT role_id, name, permissions FROM roles ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Permissions); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Update actualiza nombre y permisos de un rol.
func (r *RoleRepo) Update(ctx context.Context, role *entity.Role) error {
	query := `UPDATE roles SET name = $2, permissions = $3 WHERE role_id = $1`
	_, err := r.q.Exec(ctx, query, role.ID, role.Name, role.Permissions)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// Delete elimina un rol por ID.
func (r *RoleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM roles WHERE role_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

func (r *RoleRepo) scanOne(row interface{ Scan(dest ...any) error }) (*entity.Role, error) {
	var role entity.Role
	err := row.Scan(&role.ID, &role.Name, &role.Permissions)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}
