package model

import (
	"time"

	"github.com/google/uuid"
)

type CandidateStatus string

const (
	CandidateNew         CandidateStatus = "New"
	CandidateShortlisted CandidateStatus = "Shortlisted"
	CandidateInterviewed CandidateStatus = "Interviewed"
	CandidateHired       CandidateStatus = "Hired"
	CandidateRejected    CandidateStatus = "Rejected"
)

type Candidate struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FullName      string          `gorm:"type:varchar(255)" json:"full_name"`
	Email         string          `gorm:"type:varchar(255)" json:"email"`
	ResumeURL     string          `gorm:"type:text" json:"resume_url,omitempty"`
	Status        CandidateStatus `gorm:"type:varchar(50)" json:"status"`
	RequirementID *uuid.UUID      `gorm:"type:uuid" json:"requirement_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (c *Candidate) TableName() string {
	return "candidates"
}
