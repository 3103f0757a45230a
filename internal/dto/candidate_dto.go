package dto

type CreateCandidateRequest struct {
	FullName      string `json:"full_name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	ResumeURL     string `json:"resume_url,omitempty" validate:"omitempty,url"`
	RequirementID string `json:"requirement_id,omitempty" validate:"omitempty,uuid"`
}

type UpdateCandidateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=New Shortlisted Interviewed Hired Rejected"`
}
