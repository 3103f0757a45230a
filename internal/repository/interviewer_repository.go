package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/intervue/platform-api/internal/model"
)

type InterviewerRepository struct {
	db *gorm.DB
}

func NewInterviewerRepository(db *gorm.DB) *InterviewerRepository {
	return &InterviewerRepository{db}
}

func (r *InterviewerRepository) Create(ctx context.Context, iv *model.Interviewer) error {
	return r.db.WithContext(ctx).Create(iv).Error
}

func (r *InterviewerRepository) Update(ctx context.Context, iv *model.Interviewer) error {
	return r.db.WithContext(ctx).Save(iv).Error
}

func (r *InterviewerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Interviewer{}, "id = ?", id).Error
}

func (r *InterviewerRepository) FindByID(ctx context.Context, id string) (*model.Interviewer, error) {
	var iv model.Interviewer
	err := r.db.WithContext(ctx).First(&iv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *InterviewerRepository) FindByEmail(ctx context.Context, email string) (*model.Interviewer, error) {
	var iv model.Interviewer
	err := r.db.WithContext(ctx).First(&iv, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *InterviewerRepository) List(ctx context.Context, orgID string) ([]model.Interviewer, error) {
	var ivs []model.Interviewer
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if orgID != "" {
		q = q.Where("organization_id = ?", orgID)
	}
	err := q.Find(&ivs).Error
	return ivs, err
}

func (r *InterviewerRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Interviewer{}).Count(&n).Error
	return n, err
}

func (r *InterviewerRepository) CountByStatus(ctx context.Context, status model.InterviewerStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Interviewer{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *InterviewerRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Interviewer{}).Where("created_at >= ?", since).Count(&n).Error
	return n, err
}
