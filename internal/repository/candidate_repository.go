package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/intervue/platform-api/internal/model"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

func (r *CandidateRepository) Create(ctx context.Context, c *model.Candidate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CandidateRepository) Update(ctx context.Context, c *model.Candidate) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CandidateRepository) FindByID(ctx context.Context, id string) (*model.Candidate, error) {
	var c model.Candidate
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepository) FindByEmail(ctx context.Context, email string) (*model.Candidate, error) {
	var c model.Candidate
	err := r.db.WithContext(ctx).First(&c, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepository) List(ctx context.Context, requirementID string) ([]model.Candidate, error) {
	var cs []model.Candidate
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if requirementID != "" {
		q = q.Where("requirement_id = ?", requirementID)
	}
	err := q.Find(&cs).Error
	return cs, err
}

func (r *CandidateRepository) UpdateStatus(ctx context.Context, id string, status model.CandidateStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Candidate{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
