package dto

type CreateInterviewerRequest struct {
	Name           string   `json:"name" validate:"required,min=2"`
	Email          string   `json:"email" validate:"required,email"`
	Skills         []string `json:"skills"`
	OrganizationID string   `json:"organization_id,omitempty" validate:"omitempty,uuid"`
}

type UpdateInterviewerRequest struct {
	Name   *string  `json:"name,omitempty" validate:"omitempty,min=2"`
	Email  *string  `json:"email,omitempty" validate:"omitempty,email"`
	Skills []string `json:"skills,omitempty"`
	Status *string  `json:"status,omitempty" validate:"omitempty,oneof=Active Busy 'On Leave' Inactive"`
}

// InterviewerAvailability is the derived busy indicator: busy iff the
// interviewer has a Scheduled or In Progress interview inside the window.
type InterviewerAvailability struct {
	InterviewerID string `json:"interviewer_id"`
	Available     bool   `json:"available"`
	BusyCount     int64  `json:"busy_count"`
}
