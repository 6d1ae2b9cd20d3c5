package entity

import "time"

// Candidate perfil de un candidato. NO tiene company_id: la visibilidad para un
// tenant se deriva siempre (vía Application→Job o vía created_by→User), nunca se
// almacena, porque un candidato puede ser visible por varias companies a la vez.
type Candidate struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Address         string
	LinkedinProfile string
	JobTitle        string
	CreatedByUserID *string // nil cuando el candidato se auto-registró
	DateCreated     time.Time
}
