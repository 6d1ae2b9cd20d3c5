package entity

import "time"

// Estados válidos de una Application.
const (
	ApplicationStatusApplied   = "applied"
	ApplicationStatusScreening = "screening"
	ApplicationStatusInterview = "interview"
	ApplicationStatusOffer     = "offer"
	ApplicationStatusHired     = "hired"
	ApplicationStatusRejected  = "rejected"
)

// ValidApplicationStatus informa si s es un estado de application conocido.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusScreening, ApplicationStatusInterview,
		ApplicationStatusOffer, ApplicationStatusHired, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application enlaza un Candidate con un Job. Su tenant es el de su Job.
type Application struct {
	ID            string
	JobID         string
	CandidateID   string
	Source        string
	AppliedAt     time.Time
	StatusHistory []ApplicationStatusEvent
}

// CurrentStatus devuelve el estado del último evento, o "" si no hay historial.
func (a *Application) CurrentStatus() string {
	if a == nil || len(a.StatusHistory) == 0 {
		return ""
	}
	return a.StatusHistory[len(a.StatusHistory)-1].Status
}

// ApplicationStatusEvent evento append-only del historial de una Application.
type ApplicationStatusEvent struct {
	ID              string
	ApplicationID   string
	Status          string
	ChangedByUserID string
	Reason          string
	NextActionDate  *time.Time
	CreatedAt       time.Time
}
