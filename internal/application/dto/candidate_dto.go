package dto

import "time"

// CreateCandidateRequest entrada para crear un candidato. La creación es
// idempotente por email: si ya existe, se devuelve el candidato existente.
type CreateCandidateRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	LinkedinProfile string `json:"linkedin_profile"`
	JobTitle        string `json:"job_title"`
}

// UpdateCandidateRequest entrada para actualizar el perfil de un candidato.
type UpdateCandidateRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	LinkedinProfile *string `json:"linkedin_profile"`
	JobTitle        *string `json:"job_title"`
}

// CandidateResponse salida de un candidato.
type CandidateResponse struct {
	CandidateID     string    `json:"candidate_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Address         string    `json:"address,omitempty"`
	LinkedinProfile string    `json:"linkedin_profile,omitempty"`
	JobTitle        string    `json:"job_title,omitempty"`
	DateCreated     time.Time `json:"date_created"`
}

// CandidateListResponse lista paginada de candidatos.
type CandidateListResponse struct {
	Items []CandidateResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
