package model

import (
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex" json:"name"`
	Category  string    `gorm:"type:varchar(255)" json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Skill) TableName() string {
	return "skills"
}
