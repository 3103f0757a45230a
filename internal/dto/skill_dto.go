package dto

type CreateSkillRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Category string `json:"category" validate:"required,min=1"`
}

type UpdateSkillRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Category *string `json:"category,omitempty" validate:"omitempty,min=1"`
}
