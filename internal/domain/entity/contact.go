package entity

// Contact contacto de una Company, opcionalmente ligado a un Department.
// Scoping directo por company_id.
type Contact struct {
	ID           string
	CompanyID    string
	DepartmentID *string
	Name         string
	Email        string
	Phone        string
}
