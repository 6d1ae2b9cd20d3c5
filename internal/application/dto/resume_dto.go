package dto

import (
	"time"

	"github.com/talentbridge/ats-api/internal/domain/entity"
)

// ResumeResponse salida de una hoja de vida; el payload parseado viaja en
// parsed_data con el esquema unificado.
type ResumeResponse struct {
	ResumeID     string            `json:"resume_id"`
	CandidateID  string            `json:"candidate_id"`
	FileLocation string            `json:"file_location,omitempty"`
	ParseStatus  string            `json:"parse_status"`
	ParsedData   entity.ResumeData `json:"parsed_data"`
	DateCreated  time.Time         `json:"date_created"`
}

// ResumeListResponse hojas de vida de un candidato.
type ResumeListResponse struct {
	Items []ResumeResponse `json:"items"`
}
