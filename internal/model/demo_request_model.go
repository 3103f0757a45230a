package model

import (
	"time"

	"github.com/google/uuid"
)

// DemoRequest is the free-form sales intake form. Unrelated to the hiring
// pipeline; stored as submitted.
type DemoRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FullName    string    `gorm:"type:varchar(255)" json:"full_name"`
	WorkEmail   string    `gorm:"type:varchar(255)" json:"work_email"`
	PhoneNumber string    `gorm:"type:varchar(50)" json:"phone_number"`
	CompanyName string    `gorm:"type:varchar(255)" json:"company_name"`
	JobTitle    string    `gorm:"type:varchar(255)" json:"job_title,omitempty"`
	TeamSize    string    `gorm:"type:varchar(50)" json:"team_size,omitempty"`
	HiringGoals string    `gorm:"type:text" json:"hiring_goals,omitempty"`
	HowHeard    string    `gorm:"type:varchar(255)" json:"how_heard,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (d *DemoRequest) TableName() string {
	return "demo_requests"
}
