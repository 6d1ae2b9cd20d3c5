package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un Job.
const (
	JobStatusDraft  = "draft"
	JobStatusOpen   = "open"
	JobStatusPaused = "paused"
	JobStatusFilled = "filled"
	JobStatusClosed = "closed"
)

// ValidJobStatus informa si s es un estado de job conocido.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusDraft, JobStatusOpen, JobStatusPaused, JobStatusFilled, JobStatusClosed:
		return true
	}
	return false
}

// Job vacante publicada por una Company. El detalle vive en Data (columna jsonb);
// el estado actual NO se almacena aparte: se deriva del último evento del historial.
type Job struct {
	ID            string
	CompanyID     string
	Data          JobData
	StatusHistory []JobStatusEvent
	CreatedAt     time.Time
}

// CurrentStatus devuelve el estado del último evento (por orden de creación),
// o "" si el historial está vacío.
func (j *Job) CurrentStatus() string {
	if j == nil || len(j.StatusHistory) == 0 {
		return ""
	}
	return j.StatusHistory[len(j.StatusHistory)-1].Status
}

// JobStatusEvent evento de cambio de estado de un Job. El historial es
// append-only: nunca se muta ni se borra un evento anterior.
type JobStatusEvent struct {
	ID              string
	JobID           string
	Status          string
	ChangedByUserID string
	Reason          string
	CreatedAt       time.Time
}

// JobData payload estructurado de la vacante (se serializa tal cual a jsonb).
// Los nombres de campo siguen el formato camelCase del payload original.
type JobData struct {
	JobID            string           `json:"jobId"`
	Descriptions     []JobDescription `json:"descriptions"`
	Location         LocationInfo     `json:"location"`
	EmploymentType   string           `json:"employmentType"`
	Responsibilities []string         `json:"responsibilities"`
	Requirements     []Requirement    `json:"requirements,omitempty"`
	NiceToHaves      []Requirement    `json:"niceToHaves,omitempty"`
	Department       string           `json:"department,omitempty"`
	ExperienceLevel  string           `json:"experienceLevel,omitempty"`
	Compensation     *Compensation    `json:"compensation,omitempty"`
	PostedDate       *time.Time       `json:"postedDate,omitempty"`
	ClosingDate      *time.Time       `json:"closingDate,omitempty"`
	ApplyURL         string           `json:"applyUrl,omitempty"`
	InterviewProcess []InterviewStep  `json:"interviewProcess,omitempty"`
	HiringManager    *HiringManager   `json:"hiringManager,omitempty"`
	Openings         int              `json:"openings,omitempty"`
}

// JobDescription una descripción de la vacante orientada a una plataforma/idioma.
type JobDescription struct {
	Text           string `json:"text"`
	Goal           string `json:"goal,omitempty"`
	TargetPlatform string `json:"target_platform,omitempty"`
	Language       string `json:"language,omitempty"`
}

// LocationInfo ubicación del puesto.
type LocationInfo struct {
	Type         string            `json:"type"`
	Address      map[string]string `json:"address,omitempty"`
	RemotePolicy string            `json:"remotePolicy,omitempty"`
}

// Requirement requisito ponderado de la vacante.
type Requirement struct {
	Description string `json:"description"`
	Weight      *int   `json:"weight,omitempty"`
}

// Compensation rango salarial. Los montos usan decimal para no perder precisión.
type Compensation struct {
	Type      string           `json:"type"`
	Currency  string           `json:"currency"`
	MinAmount *decimal.Decimal `json:"minAmount,omitempty"`
	MaxAmount *decimal.Decimal `json:"maxAmount,omitempty"`
	Summary   string           `json:"summary,omitempty"`
	Benefits  []Benefit        `json:"benefits,omitempty"`
}

// Benefit beneficio incluido en la compensación.
type Benefit struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// InterviewStep paso del proceso de entrevistas publicado en la vacante.
type InterviewStep struct {
	Step        int    `json:"step"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// HiringManager responsable de la contratación asociado a la vacante.
type HiringManager struct {
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
}
