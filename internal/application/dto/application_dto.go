package dto

import "time"

// CreateApplicationRequest entrada para crear una postulación.
type CreateApplicationRequest struct {
	JobID       string `json:"job_id" validate:"required"`
	CandidateID string `json:"candidate_id" validate:"required"`
	Source      string `json:"source"`
}

// UpdateApplicationRequest entrada para actualizar una postulación. Un cambio
// de job_id obliga a revalidar que el nuevo job pertenezca al tenant.
type UpdateApplicationRequest struct {
	JobID  *string `json:"job_id"`
	Source *string `json:"source"`
}

// UpdateApplicationStatusRequest entrada para registrar un cambio de estado.
type UpdateApplicationStatusRequest struct {
	Status         string     `json:"status" validate:"required"`
	Reason         string     `json:"reason"`
	NextActionDate *time.Time `json:"next_action_date"`
}

// ApplicationResponse salida de una postulación; status es el derivado del
// último evento del historial.
type ApplicationResponse struct {
	ApplicationID string                           `json:"application_id"`
	JobID         string                           `json:"job_id"`
	CandidateID   string                           `json:"candidate_id"`
	Source        string                           `json:"source,omitempty"`
	Status        string                           `json:"status"`
	StatusHistory []ApplicationStatusEventResponse `json:"status_history,omitempty"`
	AppliedAt     time.Time                        `json:"applied_at"`
}

// ApplicationStatusEventResponse un evento del historial de la postulación.
type ApplicationStatusEventResponse struct {
	EventID         string     `json:"event_id"`
	Status          string     `json:"status"`
	ChangedByUserID string     `json:"changed_by_user_id"`
	Reason          string     `json:"reason,omitempty"`
	NextActionDate  *time.Time `json:"next_action_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ApplicationListResponse lista paginada de postulaciones.
type ApplicationListResponse struct {
	Items []ApplicationResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
