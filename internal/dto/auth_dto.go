package dto

import (
	"github.com/google/uuid"

	"github.com/intervue/platform-api/internal/model"
)

type RegisterRequest struct {
	FullName       string `json:"full_name" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Role           string `json:"role" validate:"required"`
	OrganizationID string `json:"organization_id,omitempty" validate:"omitempty,uuid"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Profile is what the session hands to clients: just enough to route and
// render a header, never the password hash.
type Profile struct {
	ID             uuid.UUID  `json:"id"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Role           model.Role `json:"role"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	DashboardPath  string     `json:"dashboard_path"`
}

type LoginResponse struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

func ProfileFromUser(u *model.User) Profile {
	return Profile{
		ID:             u.ID,
		FullName:       u.FullName,
		Email:          u.Email,
		Role:           u.Role,
		OrganizationID: u.OrganizationID,
		DashboardPath:  model.DashboardPath(u.Role),
	}
}
