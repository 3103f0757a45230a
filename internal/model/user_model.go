package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated actor. Role is assigned at registration and never
// changes through normal use.
type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FullName       string     `gorm:"type:varchar(255)" json:"full_name"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	PasswordHash   string     `gorm:"type:varchar(255)" json:"-"`
	Role           Role       `gorm:"type:varchar(50)" json:"role"`
	OrganizationID *uuid.UUID `gorm:"type:uuid" json:"organization_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}
