package dto

// CreateContactRequest entrada para crear un contacto.
type CreateContactRequest struct {
	DepartmentID *string `json:"department_id"`
	Name         string  `json:"name" validate:"required,min=1,max=200"`
	Email        string  `json:"email" validate:"omitempty,email"`
	Phone        string  `json:"phone"`
}

// UpdateContactRequest entrada para actualizar un contacto.
type UpdateContactRequest struct {
	DepartmentID *string `json:"department_id"`
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone"`
}

// ContactResponse salida de un contacto.
type ContactResponse struct {
	ContactID    string  `json:"contact_id"`
	CompanyID    string  `json:"company_id"`
	DepartmentID *string `json:"department_id,omitempty"`
	Name         string  `json:"name"`
	Email        string  `json:"email,omitempty"`
	Phone        string  `json:"phone,omitempty"`
}

// ContactListResponse lista paginada de contactos.
type ContactListResponse struct {
	Items []ContactResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
