package dto

// CreateDepartmentRequest entrada para crear un departamento.
type CreateDepartmentRequest struct {
	Name               string  `json:"name" validate:"required,min=1,max=200"`
	ParentDepartmentID *string `json:"parent_department_id"`
}

// UpdateDepartmentRequest entrada para actualizar un departamento.
type UpdateDepartmentRequest struct {
	Name               *string `json:"name" validate:"omitempty,min=1,max=200"`
	ParentDepartmentID *string `json:"parent_department_id"`
}

// DepartmentResponse salida de un departamento.
type DepartmentResponse struct {
	DepartmentID       string  `json:"department_id"`
	CompanyID          string  `json:"company_id"`
	Name               string  `json:"name"`
	ParentDepartmentID *string `json:"parent_department_id,omitempty"`
}

// DepartmentListResponse lista paginada de departamentos.
type DepartmentListResponse struct {
	Items []DepartmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
