package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/intervue/platform-api/internal/model"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db}
}

func (r *SkillRepository) Create(ctx context.Context, s *model.Skill) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SkillRepository) Update(ctx context.Context, s *model.Skill) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Skill{}, "id = ?", id).Error
}

func (r *SkillRepository) FindByID(ctx context.Context, id string) (*model.Skill, error) {
	var s model.Skill
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SkillRepository) List(ctx context.Context, search, category string) ([]model.Skill, error) {
	var skills []model.Skill
	q := r.db.WithContext(ctx).Order("name")
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&skills).Error
	return skills, err
}
