package dto

import "time"

// RegisterUserRequest entrada para registrar un usuario de company.
type RegisterUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	CompanyID string `json:"company_id" validate:"required"`
	RoleName  string `json:"role_name" validate:"required"`
}

// RegisterCandidateRequest entrada para el autoregistro de un candidato.
// Crea el Candidate y su cuenta User (rol candidate, sin company) a la vez.
type RegisterCandidateRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
	JobTitle  string `json:"job_title"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse respuesta de autenticación exitosa.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	UserID      string    `json:"user_id"`
	CompanyID   *string   `json:"company_id,omitempty"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	RoleID      string    `json:"role_id"`
	CandidateID *string   `json:"candidate_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
