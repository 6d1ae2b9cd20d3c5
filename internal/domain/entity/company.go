package entity

import "time"

// Company raíz del tenant: es dueña de Users, Jobs, Departments y Contacts.
type Company struct {
	ID        string
	Name      string
	Industry  string
	CreatedAt time.Time
}
