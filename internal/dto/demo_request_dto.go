package dto

type DemoRequestInput struct {
	FullName    string `json:"full_name" validate:"required,min=2"`
	WorkEmail   string `json:"work_email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	CompanyName string `json:"company_name" validate:"required"`
	JobTitle    string `json:"job_title,omitempty"`
	TeamSize    string `json:"team_size,omitempty"`
	HiringGoals string `json:"hiring_goals,omitempty"`
	HowHeard    string `json:"how_heard,omitempty"`
}
