package dto

import (
	"time"

	"github.com/talentbridge/ats-api/internal/domain/entity"
)

// CreateJobRequest entrada para crear una vacante. El payload estructurado
// viaja tal cual (camelCase) y se persiste como jsonb.
type CreateJobRequest struct {
	entity.JobData
	// Status inicial opcional; por defecto draft.
	Status string `json:"status"`
}

// UpdateJobRequest entrada para reemplazar el payload de una vacante. El
// estado NO se toca por esta vía: solo vía el endpoint de status.
type UpdateJobRequest struct {
	entity.JobData
}

// UpdateJobStatusRequest entrada para registrar un cambio de estado.
type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason"`
}

// JobResponse salida de una vacante. JobID viene dentro del payload embebido
// (campo jobId); status es el derivado del último evento del historial.
type JobResponse struct {
	entity.JobData
	CompanyID     string                   `json:"companyId"`
	Status        string                   `json:"status"`
	StatusHistory []JobStatusEventResponse `json:"statusHistory,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// JobStatusEventResponse un evento del historial de estados de la vacante.
type JobStatusEventResponse struct {
	EventID         string    `json:"event_id"`
	Status          string    `json:"status"`
	ChangedByUserID string    `json:"changed_by_user_id"`
	Reason          string    `json:"reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// JobListResponse lista paginada de vacantes.
type JobListResponse struct {
	Items []JobResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
