package entity

import "time"

// Tipos válidos de entrevista.
const (
	InterviewTypePhone  = "phone"
	InterviewTypeVideo  = "video"
	InterviewTypeOnsite = "onsite"
)

// ValidInterviewType informa si s es un tipo de entrevista conocido.
func ValidInterviewType(s string) bool {
	switch s {
	case InterviewTypePhone, InterviewTypeVideo, InterviewTypeOnsite:
		return true
	}
	return false
}

// Interview entrevista agendada para una Application. Su tenant se deriva
// transitivamente: Interview → Application → Job → Company.
type Interview struct {
	ID              string
	ApplicationID   string
	ScheduledAt     time.Time
	DurationMinutes int
	InterviewType   string
	Interviewers    []Interviewer
	Evaluations     []Evaluation
}

// Interviewer asocia un User con una Interview.
type Interviewer struct {
	ID          string
	InterviewID string
	UserID      string
}

// Evaluation feedback de un entrevistador sobre una entrevista.
type Evaluation struct {
	ID            string
	InterviewID   string
	InterviewerID string
	Rating        int
	Feedback      string
	CreatedAt     time.Time
}
