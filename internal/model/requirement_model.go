package model

import (
	"time"

	"github.com/google/uuid"
)

type RequirementStatus string

const (
	RequirementPending   RequirementStatus = "Pending"
	RequirementApproved  RequirementStatus = "Approved"
	RequirementFulfilled RequirementStatus = "Fulfilled"
	RequirementCanceled  RequirementStatus = "Canceled"
)

// Requirement is a hiring need raised by a client on behalf of an
// organization. New requirements always start Pending.
type Requirement struct {
	ID                uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title             string            `gorm:"type:varchar(255)" json:"title"`
	Description       string            `gorm:"type:text" json:"description"`
	Skills            StringList        `gorm:"type:jsonb" json:"skills"`
	YearsOfExperience int               `json:"years_of_experience"`
	NumberOfPositions int               `json:"number_of_positions"`
	PricePerInterview float64           `json:"price_per_interview"`
	Status            RequirementStatus `gorm:"type:varchar(50)" json:"status"`
	OrganizationID    uuid.UUID         `gorm:"type:uuid" json:"organization_id"`
	RaisedBy          uuid.UUID         `gorm:"type:uuid" json:"raised_by"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func (r *Requirement) TableName() string {
	return "requirements"
}
