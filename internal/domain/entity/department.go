package entity

// Department área de una Company. Scoping directo por company_id.
type Department struct {
	ID                 string
	CompanyID          string
	Name               string
	ParentDepartmentID *string
}
