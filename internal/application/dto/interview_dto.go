package dto

import "time"

// CreateInterviewRequest entrada para agendar una entrevista. La entrevista y
// sus interviewers se crean en una sola transacción.
type CreateInterviewRequest struct {
	ApplicationID      string    `json:"application_id" validate:"required"`
	ScheduledAt        time.Time `json:"scheduled_at" validate:"required"`
	DurationMinutes    int       `json:"duration_minutes" validate:"required,min=1"`
	InterviewType      string    `json:"interview_type" validate:"required"`
	InterviewerUserIDs []string  `json:"interviewer_user_ids" validate:"required,min=1"`
}

// CreateEvaluationRequest entrada para registrar feedback de un entrevistador.
type CreateEvaluationRequest struct {
	InterviewerID string `json:"interviewer_id" validate:"required"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Feedback      string `json:"feedback"`
}

// InterviewResponse salida de una entrevista con interviewers y evaluaciones.
type InterviewResponse struct {
	InterviewID     string                `json:"interview_id"`
	ApplicationID   string                `json:"application_id"`
	ScheduledAt     time.Time             `json:"scheduled_at"`
	DurationMinutes int                   `json:"duration_minutes"`
	InterviewType   string                `json:"interview_type"`
	Interviewers    []InterviewerResponse `json:"interviewers,omitempty"`
	Evaluations     []EvaluationResponse  `json:"evaluations,omitempty"`
}

// InterviewerResponse asociación user↔entrevista.
type InterviewerResponse struct {
	InterviewerID string `json:"interviewer_id"`
	UserID        string `json:"user_id"`
}

// EvaluationResponse feedback registrado sobre una entrevista.
type EvaluationResponse struct {
	EvaluationID  string    `json:"evaluation_id"`
	InterviewerID string    `json:"interviewer_id"`
	Rating        int       `json:"rating"`
	Feedback      string    `json:"feedback,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
