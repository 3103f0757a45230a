package dto

type CreateRequirementRequest struct {
	Title             string   `json:"title" validate:"required,min=2"`
	Description       string   `json:"description"`
	Skills            []string `json:"skills" validate:"required,min=1"`
	YearsOfExperience int      `json:"years_of_experience" validate:"min=0"`
	NumberOfPositions int      `json:"number_of_positions" validate:"required,min=1"`
	PricePerInterview float64  `json:"price_per_interview" validate:"min=0"`
	OrganizationID    string   `json:"organization_id" validate:"required,uuid"`
}

type UpdateRequirementRequest struct {
	Title             *string  `json:"title,omitempty" validate:"omitempty,min=2"`
	Description       *string  `json:"description,omitempty"`
	Skills            []string `json:"skills,omitempty"`
	YearsOfExperience *int     `json:"years_of_experience,omitempty" validate:"omitempty,min=0"`
	NumberOfPositions *int     `json:"number_of_positions,omitempty" validate:"omitempty,min=1"`
	PricePerInterview *float64 `json:"price_per_interview,omitempty" validate:"omitempty,min=0"`
}

type CloseRequirementRequest struct {
	Status string `json:"status" validate:"required,oneof=Fulfilled Canceled"`
}
