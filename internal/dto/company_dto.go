package dto

type CreateCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Industry string `json:"industry"`
	Address  string `json:"address"`
}

type UpdateCompanyRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Industry *string `json:"industry,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// CompanyRepresentative is a client actor affiliated with an organization.
type CompanyRepresentative struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
