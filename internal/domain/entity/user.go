package entity

import "time"

// User usuario del sistema. CompanyID es nil para cuentas de candidato
// (autoservicio); CandidateID enlaza esas cuentas con su perfil de candidato.
type User struct {
	ID           string
	CompanyID    *string
	Email        string
	PasswordHash string // hash bcrypt, nunca en claro después de persistir
	FirstName    string
	LastName     string
	RoleID       string
	CandidateID  *string
	CreatedAt    time.Time
}

// TenantID devuelve el company_id efectivo ("" para principals candidato).
func (u *User) TenantID() string {
	if u == nil || u.CompanyID == nil {
		return ""
	}
	return *u.CompanyID
}
