package dto

import "time"

// CreateCompanyRequest entrada para crear una company.
type CreateCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Industry string `json:"industry"`
}

// CompanyResponse salida de una company.
type CompanyResponse struct {
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	CreatedAt time.Time `json:"created_at"`
}

// CompanyListResponse lista paginada de companies.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
