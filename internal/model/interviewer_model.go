package model

import (
	"time"

	"github.com/google/uuid"
)

type InterviewerStatus string

const (
	InterviewerActive   InterviewerStatus = "Active"
	InterviewerBusy     InterviewerStatus = "Busy"
	InterviewerOnLeave  InterviewerStatus = "On Leave"
	InterviewerInactive InterviewerStatus = "Inactive"
)

// Interviewer conducts interviews. Status is informational; the busy
// indicator served to clients is derived from the interview table, not from
// this column.
type Interviewer struct {
	ID             uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name           string            `gorm:"type:varchar(255)" json:"name"`
	Email          string            `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Skills         StringList        `gorm:"type:jsonb" json:"skills"`
	Status         InterviewerStatus `gorm:"type:varchar(50)" json:"status"`
	OrganizationID *uuid.UUID        `gorm:"type:uuid" json:"organization_id,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (i *Interviewer) TableName() string {
	return "interviewers"
}

// InterviewerStats is the admin dashboard summary.
type InterviewerStats struct {
	TotalInterviewers     int64 `json:"total_interviewers"`
	AvailableInterviewers int64 `json:"available_interviewers"`
	NewInterviewers       int64 `json:"new_interviewers"`
}
