package dto

import "time"

type ScheduleInterviewRequest struct {
	CandidateID   string    `json:"candidate_id" validate:"required,uuid"`
	InterviewerID string    `json:"interviewer_id" validate:"required,uuid"`
	RequirementID string    `json:"requirement_id" validate:"required,uuid"`
	ScheduledAt   time.Time `json:"scheduled_at" validate:"required"`
}

type UpdateInterviewStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SubmitFeedbackRequest completes an interview. Feedback and completion are
// one atomic operation; there is no separate "complete" call.
type SubmitFeedbackRequest struct {
	Rating         int      `json:"rating" validate:"required,min=1,max=5"`
	Comments       string   `json:"comments" validate:"required"`
	Strengths      []string `json:"strengths,omitempty"`
	Weaknesses     []string `json:"weaknesses,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
}
