package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/intervue/platform-api/internal/model"
)

type RequirementRepository struct {
	db *gorm.DB
}

func NewRequirementRepository(db *gorm.DB) *RequirementRepository {
	return &RequirementRepository{db}
}

func (r *RequirementRepository) Create(ctx context.Context, req *model.Requirement) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *RequirementRepository) Update(ctx context.Context, req *model.Requirement) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *RequirementRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Requirement{}, "id = ?", id).Error
}

func (r *RequirementRepository) FindByID(ctx context.Context, id string) (*model.Requirement, error) {
	var req model.Requirement
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RequirementRepository) List(ctx context.Context, status model.RequirementStatus, orgID string) ([]model.Requirement, error) {
	var reqs []model.Requirement
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if orgID != "" {
		q = q.Where("organization_id = ?", orgID)
	}
	err := q.Find(&reqs).Error
	return reqs, err
}

func (r *RequirementRepository) UpdateStatus(ctx context.Context, id string, status model.RequirementStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Requirement{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountDependents reports interviews and candidates still referencing the
// requirement.
func (r *RequirementRepository) CountDependents(ctx context.Context, id string) (interviews, candidates int64, err error) {
	if err = r.db.WithContext(ctx).Model(&model.Interview{}).Where("requirement_id = ?", id).Count(&interviews).Error; err != nil {
		return
	}
	err = r.db.WithContext(ctx).Model(&model.Candidate{}).Where("requirement_id = ?", id).Count(&candidates).Error
	return
}
